package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/pkg/apperror"
)

// GormTransactionRepository implements domain.TransactionRepository
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new transaction repository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Transaction{})
}

func (r *GormTransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *GormTransactionRepository) FindByID(ctx context.Context, id uint) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := r.db.WithContext(ctx).First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.InvalidValue(domain.MsgInvalidTransactionID)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return &txn, nil
}

// FindByBuyer returns the buyer's history newest first
func (r *GormTransactionRepository) FindByBuyer(ctx context.Context, buyerID uint) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
