package app

import (
	"fmt"

	"gorm.io/gorm"

	accountrepo "github.com/tair/storefront/internal/account/repository"
	cartrepo "github.com/tair/storefront/internal/cart/repository"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	checkoutrepo "github.com/tair/storefront/internal/checkout/repository"
)

type migrator interface {
	AutoMigrate() error
}

// Migrate creates or updates every table. Order follows foreign keys.
func Migrate(db *gorm.DB) error {
	steps := []struct {
		name string
		m    migrator
	}{
		{"users", accountrepo.NewGormUserRepository(db)},
		{"products", catalogrepo.NewGormProductRepository(db)},
		{"cart_items", cartrepo.NewGormCartRepository(db)},
		{"transactions", checkoutrepo.NewGormTransactionRepository(db)},
	}
	for _, s := range steps {
		if err := s.m.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", s.name, err)
		}
	}
	return nil
}
