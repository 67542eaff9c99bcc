package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/command"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/httpx"
)

// maxUploadBytes bounds the multipart product form
const maxUploadBytes = 10 << 20

// ProductHandler handles HTTP requests for the catalog using CQRS pattern
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler

	getProductHandler *query.GetProductHandler
	searchHandler     *query.SearchProductsHandler
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	getProductHandler *query.GetProductHandler,
	searchHandler *query.SearchProductsHandler,
) *ProductHandler {
	return &ProductHandler{
		createHandler:     createHandler,
		updateHandler:     updateHandler,
		getProductHandler: getProductHandler,
		searchHandler:     searchHandler,
	}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router, guards httpx.Guards) {
	// Public routes
	router.HandleFunc("/product", httpx.Metrics("/product", h.SearchProducts)).Methods("GET")
	router.HandleFunc("/product/{id:[0-9]+}", httpx.Metrics("/product/{id}", h.GetProduct)).Methods("GET")

	// Catalog management
	router.HandleFunc("/product", httpx.Metrics("/product", guards.ManageCatalog(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/product", httpx.Metrics("/product", guards.ManageCatalog(h.UpdateProduct))).Methods("PATCH")
}

// SearchProducts handles GET /product
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			httpx.RespondError(w, r, apperror.InvalidValue("Invalid page"))
			return
		}
		page = p
	}

	result, err := h.searchHandler.Handle(r.Context(), query.SearchProductsQuery{
		Query: r.URL.Query().Get("searchQuery"),
		Page:  page,
	})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, fmt.Sprintf("Got %d products", len(result.Products)), result.Products)
}

// GetProduct handles GET /product/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpx.RespondError(w, r, apperror.NotFound(domain.MsgInvalidProductID))
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: uint(id)})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Got product", product)
}

// CreateProduct handles POST /product (multipart form)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	defer form.close()

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		Name:        form.name,
		Description: form.description,
		Price:       form.price,
		SalePrice:   form.salePrice,
		Stock:       form.stock,
		ImageURL:    form.imageURL,
		Image:       form.image,
	})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, httpx.Response{
		Success:  true,
		Message:  "Product created",
		Data:     product,
		Redirect: fmt.Sprintf("/product/%d", product.ID),
	})
}

// UpdateProduct handles PATCH /product (multipart form carrying id)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	form, err := parseProductForm(r)
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}
	defer form.close()

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		httpx.RespondError(w, r, apperror.InvalidValue(domain.MsgInvalidProductID))
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), command.UpdateProductCommand{
		ID:          uint(id),
		Name:        form.name,
		Description: form.description,
		Price:       form.price,
		SalePrice:   form.salePrice,
		Stock:       form.stock,
		ImageURL:    form.imageURL,
		Image:       form.image,
	})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success:  true,
		Message:  "Product updated",
		Data:     product,
		Redirect: fmt.Sprintf("/product/%d", product.ID),
	})
}

type productForm struct {
	name        string
	description string
	price       decimal.Decimal
	salePrice   *decimal.Decimal
	stock       *int
	imageURL    string
	image       *domain.ImageUpload
	closeFn     func()
}

func (f *productForm) close() {
	if f.closeFn != nil {
		f.closeFn()
	}
}

func parseProductForm(r *http.Request) (*productForm, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, apperror.InvalidValue("Invalid form")
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, apperror.InvalidValue("Invalid form")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("price")))
	if err != nil {
		return nil, apperror.InvalidValue(domain.MsgInvalidPrice)
	}

	form := &productForm{
		name:        r.FormValue("name"),
		description: r.FormValue("description"),
		price:       price,
		imageURL:    r.FormValue("imageUrl"),
	}

	if raw := strings.TrimSpace(r.FormValue("salePrice")); raw != "" {
		sale, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, apperror.InvalidValue(domain.MsgInvalidPrice)
		}
		form.salePrice = &sale
	}

	if raw := strings.TrimSpace(r.FormValue("stock")); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperror.InvalidValue("Invalid stock")
		}
		form.stock = &stock
	}

	if r.MultipartForm != nil {
		file, header, err := r.FormFile("file")
		if err == nil {
			form.image = &domain.ImageUpload{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Body:        file,
			}
			form.closeFn = func() { file.Close() }
		}
	}

	return form, nil
}
