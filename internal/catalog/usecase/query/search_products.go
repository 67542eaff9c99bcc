package query

import (
	"context"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
)

// SearchProductsQuery searches name and description; Page is zero-based
type SearchProductsQuery struct {
	Query string
	Page  int
}

// SearchResult is one page of products
type SearchResult struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// SearchProductsHandler handles product search query
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle executes the search products query
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) (*SearchResult, error) {
	if q.Page < 0 {
		return nil, apperror.InvalidValue("Invalid page")
	}

	products, total, err := h.repo.Search(ctx, q.Query, domain.PageSize, q.Page*domain.PageSize)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}

	return &SearchResult{
		Products: products,
		Total:    total,
		Page:     q.Page,
		PageSize: domain.PageSize,
	}, nil
}
