package command

import (
	"context"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
)

// ClearCartCommand empties the buyer's cart
type ClearCartCommand struct {
	BuyerID uint
}

// ClearCartHandler deletes every line of a cart. Clearing an empty cart succeeds.
type ClearCartHandler struct {
	repo domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(repo domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{repo: repo}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if cmd.BuyerID == 0 {
		return apperror.Unauthorized()
	}

	removed, err := h.repo.DeleteByBuyer(ctx, cmd.BuyerID)
	if err != nil {
		return err
	}

	logger.Debug(ctx).
		Uint("buyer_id", cmd.BuyerID).
		Int64("removed", removed).
		Msg("Cart cleared")
	return nil
}
