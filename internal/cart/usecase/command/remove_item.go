package command

import (
	"context"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperror"
)

// RemoveItemCommand deletes one cart line
type RemoveItemCommand struct {
	BuyerID uint
	ItemID  uint
}

// RemoveItemHandler handles cart line removal
type RemoveItemHandler struct {
	repo domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if cmd.BuyerID == 0 {
		return apperror.Unauthorized()
	}
	if cmd.ItemID == 0 {
		return apperror.InvalidValue(domain.MsgInvalidCartItemID)
	}
	return h.repo.Delete(ctx, cmd.BuyerID, cmd.ItemID)
}
