package query

import (
	"context"
	"errors"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// GetProductQuery represents the query to get a product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler reads a product through the cache
type GetProductHandler struct {
	repo  domain.ProductRepository
	cache domain.ProductCache
}

// NewGetProductHandler creates a new get product handler. cache may be nil.
func NewGetProductHandler(repo domain.ProductRepository, cache domain.ProductCache) *GetProductHandler {
	return &GetProductHandler{repo: repo, cache: cache}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, apperror.NotFound(domain.MsgInvalidProductID)
	}

	if h.cache != nil {
		product, err := h.cache.Get(ctx, q.ID)
		switch {
		case err == nil:
			metrics.ProductCacheLookups.WithLabelValues("hit").Inc()
			return product, nil
		case errors.Is(err, domain.ErrCacheMiss):
			metrics.ProductCacheLookups.WithLabelValues("miss").Inc()
		default:
			metrics.ProductCacheLookups.WithLabelValues("error").Inc()
			logger.Warn(ctx).Err(err).Uint("product_id", q.ID).Msg("Product cache unavailable")
		}
	}

	product, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, product); err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", q.ID).Msg("Failed to cache product")
		}
	}

	return product, nil
}
