package command

import (
	"context"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// ReduceStockCommand takes Quantity units of Product out of stock
type ReduceStockCommand struct {
	Product  *domain.Product
	Quantity int
}

// ReduceStockHandler is the only path that decrements stock
type ReduceStockHandler struct {
	repo domain.ProductRepository
}

// NewReduceStockHandler creates a new reduce stock handler
func NewReduceStockHandler(repo domain.ProductRepository) *ReduceStockHandler {
	return &ReduceStockHandler{repo: repo}
}

// Handle rejects the reduction with "Invalid quantity" when stock would go
// negative, either by the caller's view of the product or by the row itself.
func (h *ReduceStockHandler) Handle(ctx context.Context, cmd ReduceStockCommand) (*domain.Product, error) {
	if cmd.Product == nil || cmd.Product.ID == 0 {
		return nil, apperror.InvalidValue(domain.MsgInvalidProductID)
	}
	if cmd.Quantity < 1 || !cmd.Product.CanSupply(cmd.Quantity) {
		metrics.StockRejections.Inc()
		return nil, apperror.InvalidValue(domain.MsgInvalidQuantity)
	}

	reduced, err := h.repo.ReduceStock(ctx, cmd.Product.ID, cmd.Quantity)
	if err != nil {
		return nil, err
	}
	if !reduced {
		metrics.StockRejections.Inc()
		logger.Warn(ctx).
			Uint("product_id", cmd.Product.ID).
			Int("quantity", cmd.Quantity).
			Msg("Stock changed underneath reduction")
		return nil, apperror.InvalidValue(domain.MsgInvalidQuantity)
	}

	return h.repo.FindByID(ctx, cmd.Product.ID)
}
