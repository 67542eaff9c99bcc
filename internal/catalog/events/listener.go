package events

import (
	"context"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/kafka"
)

// NewStockChangedHandler drops cached copies of every product a committed
// checkout took stock from
func NewStockChangedHandler(cache domain.ProductCache) kafka.EventHandler {
	return func(ctx context.Context, event kafka.TransactionCreatedEvent) error {
		ids := event.ProductIDs()
		if len(ids) == 0 {
			return nil
		}
		return cache.Invalidate(ctx, ids...)
	}
}
