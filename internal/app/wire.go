//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/tair/storefront/internal/account"
	"github.com/tair/storefront/internal/cart"
	"github.com/tair/storefront/internal/catalog"
	"github.com/tair/storefront/internal/checkout"
	"github.com/tair/storefront/pkg/config"
)

var InfrastructureSet = wire.NewSet(
	ProvideDatabase,
	ProvideRedis,
	ProvideKafkaPublisher,
)

// InitializeApp assembles the storefront from configuration
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		InfrastructureSet,
		account.ProviderSet,
		catalog.ProviderSet,
		cart.ProviderSet,
		checkout.ProviderSet,
		NewHealthHandler,
		wire.Struct(new(Handlers), "*"),
		NewRouter,
		NewApp,
	)
	return nil, nil, nil
}
