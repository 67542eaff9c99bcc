package query

import (
	"context"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperror"
)

// ListItemsQuery represents the query to read a buyer's cart
type ListItemsQuery struct {
	BuyerID uint
}

// ListItemsHandler handles cart listing
type ListItemsHandler struct {
	repo domain.CartRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.CartRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle returns the cart in insertion order; an empty cart is an empty slice
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) ([]domain.CartItem, error) {
	if q.BuyerID == 0 {
		return nil, apperror.Unauthorized()
	}
	return h.repo.FindByBuyer(ctx, q.BuyerID)
}
