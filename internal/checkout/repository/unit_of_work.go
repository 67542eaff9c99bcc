package repository

import (
	"context"

	"gorm.io/gorm"

	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/checkout/domain"
)

// GormUnitOfWork binds the product and transaction stores to one gorm
// transaction per Execute call
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new unit of work
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, repos domain.TxRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, domain.TxRepositories{
			Products:     catalogrepo.NewTracingProductRepository(catalogrepo.NewGormProductRepository(tx)),
			Transactions: NewGormTransactionRepository(tx),
		})
	})
}
