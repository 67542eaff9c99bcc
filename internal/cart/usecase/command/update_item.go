package command

import (
	"context"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
)

// UpdateItemCommand sets the quantity of one cart line
type UpdateItemCommand struct {
	BuyerID  uint
	ItemID   uint
	Quantity int
}

// UpdateItemHandler handles cart quantity updates. Concurrent updates of the
// same line are last-write-wins.
type UpdateItemHandler struct {
	repo     domain.CartRepository
	products catalog.ProductRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.CartRepository, products catalog.ProductRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo, products: products}
}

// Handle executes the update item command
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if cmd.BuyerID == 0 {
		return apperror.Unauthorized()
	}
	if cmd.Quantity < 1 {
		return apperror.InvalidValue(domain.MsgInvalidQuantity)
	}

	item, err := h.repo.FindByBuyerAndID(ctx, cmd.BuyerID, cmd.ItemID)
	if err != nil {
		return err
	}

	// Check against current stock, not the preloaded copy
	product, err := h.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if !product.CanSupply(cmd.Quantity) {
		return apperror.InvalidValue(domain.MsgInvalidQuantity)
	}

	return h.repo.UpdateQuantity(ctx, cmd.BuyerID, item.ID, cmd.Quantity)
}
