package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperror"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.CartItem{})
}

func (r *GormCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.InvalidValue(domain.MsgInvalidProductID)
	}
	if err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

func (r *GormCartRepository) FindByBuyer(ctx context.Context, buyerID uint) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("buyer_id = ?", buyerID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return items, nil
}

func (r *GormCartRepository) FindByBuyerAndID(ctx context.Context, buyerID, id uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND buyer_id = ?", id, buyerID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.InvalidValue(domain.MsgInvalidCartItemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	return &item, nil
}

func (r *GormCartRepository) HasProduct(ctx context.Context, buyerID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check cart: %w", err)
	}
	return count > 0, nil
}

func (r *GormCartRepository) UpdateQuantity(ctx context.Context, buyerID, id uint, quantity int) error {
	res := r.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("id = ? AND buyer_id = ?", id, buyerID).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidValue(domain.MsgInvalidCartItemID)
	}
	return nil
}

func (r *GormCartRepository) Delete(ctx context.Context, buyerID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND buyer_id = ?", id, buyerID).
		Delete(&domain.CartItem{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.InvalidValue(domain.MsgInvalidCartItemID)
	}
	return nil
}

func (r *GormCartRepository) DeleteByBuyer(ctx context.Context, buyerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Delete(&domain.CartItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", res.Error)
	}
	return res.RowsAffected, nil
}
