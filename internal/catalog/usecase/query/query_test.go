package query

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/database/dbtest"
)

type memoryCache struct {
	items map[uint]domain.Product
	err   error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[uint]domain.Product{}}
}

func (c *memoryCache) Get(_ context.Context, id uint) (*domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.items[id]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return &p, nil
}

func (c *memoryCache) Set(_ context.Context, p *domain.Product) error {
	c.items[p.ID] = *p
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, ids ...uint) error {
	for _, id := range ids {
		delete(c.items, id)
	}
	return nil
}

func setup(t *testing.T) (*repository.GormProductRepository, *domain.Product) {
	t.Helper()
	repo := repository.NewGormProductRepository(dbtest.NewSQLite(t, &domain.Product{}))
	p := &domain.Product{Name: "Mug", Description: "Ceramic", Price: decimal.RequireFromString("4.50")}
	require.NoError(t, repo.Create(context.Background(), p))
	return repo, p
}

func TestGetProductReadThrough(t *testing.T) {
	repo, p := setup(t)
	cache := newMemoryCache()
	h := NewGetProductHandler(repo, cache)
	ctx := context.Background()

	got, err := h.Handle(ctx, GetProductQuery{ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.Name)
	assert.Contains(t, cache.items, p.ID)

	// served from cache even after the row changes
	_, err = repo.UpdateLocked(ctx, p.ID, func(p *domain.Product) error {
		p.Name = "Cup"
		return nil
	})
	require.NoError(t, err)

	got, err = h.Handle(ctx, GetProductQuery{ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.Name)

	require.NoError(t, cache.Invalidate(ctx, p.ID))
	got, err = h.Handle(ctx, GetProductQuery{ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, "Cup", got.Name)
}

func TestGetProductCacheDown(t *testing.T) {
	repo, p := setup(t)
	cache := newMemoryCache()
	cache.err = assert.AnError

	got, err := NewGetProductHandler(repo, cache).Handle(context.Background(), GetProductQuery{ID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestGetProductMissing(t *testing.T) {
	repo, _ := setup(t)
	h := NewGetProductHandler(repo, nil)

	for _, id := range []uint{0, 42} {
		_, err := h.Handle(context.Background(), GetProductQuery{ID: id})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Equal(t, domain.MsgInvalidProductID, apperror.MessageOf(err))
	}
}

func TestSearchProducts(t *testing.T) {
	repo, _ := setup(t)
	h := NewSearchProductsHandler(repo)

	res, err := h.Handle(context.Background(), SearchProductsQuery{Query: "CERAMIC"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	assert.Equal(t, domain.PageSize, res.PageSize)

	res, err = h.Handle(context.Background(), SearchProductsQuery{Query: "nothing", Page: 3})
	require.NoError(t, err)
	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)

	_, err = h.Handle(context.Background(), SearchProductsQuery{Page: -1})
	assert.ErrorIs(t, err, apperror.ErrInvalidValue)
}
