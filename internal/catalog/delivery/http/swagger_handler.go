package http

// SearchProducts godoc
// @Summary Search products
// @Description Case-insensitive search over name and description, 20 per page ordered by name
// @Tags Products
// @Produce json
// @Param searchQuery query string false "Search text"
// @Param page query int false "Zero-based page"
// @Success 200 {object} object{success=bool,message=string,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /product [get]
func (h *ProductHandler) SearchProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /product/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product with an optional image (Admin only)
// @Tags Products
// @Security SessionCookie
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param price formData number true "Price"
// @Param salePrice formData number false "Sale price"
// @Param stock formData int false "Stock"
// @Param imageUrl formData string false "Image URL"
// @Param file formData file false "Image file"
// @Success 201 {object} object{success=bool,message=string,data=object,redirect=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /product [post]
func (h *ProductHandler) CreateProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace a product's fields; the image is kept when none is sent (Admin only)
// @Tags Products
// @Security SessionCookie
// @Accept multipart/form-data
// @Produce json
// @Param id formData int true "Product ID"
// @Param name formData string true "Name"
// @Param description formData string true "Description"
// @Param price formData number true "Price"
// @Param salePrice formData number false "Sale price"
// @Param stock formData int false "Stock"
// @Param imageUrl formData string false "Image URL"
// @Param file formData file false "Image file"
// @Success 200 {object} object{success=bool,message=string,data=object,redirect=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /product [patch]
func (h *ProductHandler) UpdateProductDoc() {}
