package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/internal/catalog/domain"
)

// RedisProductCache caches product JSON under product:<id>
type RedisProductCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisProductCache creates a cache on an existing Redis client
func NewRedisProductCache(client redis.Cmdable, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{client: client, ttl: ttl}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Get returns domain.ErrCacheMiss when the key is absent
func (c *RedisProductCache) Get(ctx context.Context, id uint) (*domain.Product, error) {
	data, err := c.client.Get(ctx, productCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product from cache: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to decode cached product: %w", err)
	}
	return &product, nil
}

func (c *RedisProductCache) Set(ctx context.Context, product *domain.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	if err := c.client.Set(ctx, productCacheKey(product.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache product: %w", err)
	}
	return nil
}

func (c *RedisProductCache) Invalidate(ctx context.Context, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productCacheKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate products: %w", err)
	}
	return nil
}

// NoopProductCache always misses; used when Redis is not configured
type NoopProductCache struct{}

func (NoopProductCache) Get(context.Context, uint) (*domain.Product, error) {
	return nil, domain.ErrCacheMiss
}

func (NoopProductCache) Set(context.Context, *domain.Product) error { return nil }

func (NoopProductCache) Invalidate(context.Context, ...uint) error { return nil }
