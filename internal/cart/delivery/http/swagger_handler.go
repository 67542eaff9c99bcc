package http

// AddItem godoc
// @Summary Add a product to the cart
// @Description One line per product; quantity must be at least 1 and within stock
// @Tags Cart
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Cart line"
// @Success 201 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /cartitem [post]
func (h *CartHandler) AddItemDoc() {}

// ListItems godoc
// @Summary List cart items
// @Description Cart lines in insertion order with their products
// @Tags Cart
// @Security SessionCookie
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=array}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /cartitem [get]
func (h *CartHandler) ListItemsDoc() {}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Tags Cart
// @Security SessionCookie
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param request body UpdateItemRequest true "New quantity"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /cartitem/{id} [put]
func (h *CartHandler) UpdateItemDoc() {}

// RemoveItem godoc
// @Summary Remove a cart item
// @Tags Cart
// @Security SessionCookie
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /cartitem/{id} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// ClearCart godoc
// @Summary Clear the cart
// @Description Removes every cart item; succeeds on an empty cart
// @Tags Cart
// @Security SessionCookie
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 401 {object} object{success=bool,error=string,redirect=string}
// @Router /cartitem [delete]
func (h *CartHandler) ClearCartDoc() {}
