package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/cart/delivery/http"
	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
)

// ProvideCartRepository provides the gorm cart repository
func ProvideCartRepository(db *gorm.DB) domain.CartRepository {
	return repository.NewGormCartRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewAddItemHandler,
	command.NewUpdateItemHandler,
	command.NewRemoveItemHandler,
	command.NewClearCartHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListItemsHandler,
)

var ProviderSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	http.NewCartHandler,
)
