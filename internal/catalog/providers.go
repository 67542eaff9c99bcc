package catalog

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/catalog/delivery/http"
	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/catalog/storage"
	"github.com/tair/storefront/internal/catalog/usecase/command"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/config"
)

// ProvideProductRepository provides the traced product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewTracingProductRepository(repository.NewGormProductRepository(db))
}

// ProvideProductCache provides the Redis product cache
func ProvideProductCache(client *redis.Client, cfg *config.Config) domain.ProductCache {
	if client == nil {
		return repository.NoopProductCache{}
	}
	return repository.NewRedisProductCache(client, cfg.Catalog.CacheTTL)
}

// ProvideImageStore provides the S3 image store
func ProvideImageStore(cfg *config.Config) (domain.ImageStore, error) {
	return storage.NewS3ImageStore(cfg.Storage)
}

// Command Handlers Providers
func ProvideCreateProductHandler(repo domain.ProductRepository, images domain.ImageStore, cfg *config.Config) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo, images, cfg.Catalog.DefaultImageURL)
}

func ProvideUpdateProductHandler(repo domain.ProductRepository, images domain.ImageStore, cache domain.ProductCache) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(repo, images, cache)
}

// Query Handlers Providers
func ProvideGetProductHandler(repo domain.ProductRepository, cache domain.ProductCache) *query.GetProductHandler {
	return query.NewGetProductHandler(repo, cache)
}

func ProvideSearchProductsHandler(repo domain.ProductRepository) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideProductCache,
	ProvideImageStore,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideUpdateProductHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetProductHandler,
	ProvideSearchProductsHandler,
)

var ProviderSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	http.NewProductHandler,
)
