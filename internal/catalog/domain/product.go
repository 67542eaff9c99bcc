package domain

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// PageSize is the number of products returned per search page
const PageSize = 20

// Product represents a catalog entry. Stock nil means "unset" and counts
// as zero units available.
type Product struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Name        string              `json:"name" gorm:"not null;index"`
	Description string              `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal     `json:"price" gorm:"type:decimal(12,2);not null"`
	SalePrice   decimal.NullDecimal `json:"salePrice" gorm:"type:decimal(12,2)"`
	Stock       *int                `json:"stock"`
	ImageURL    string              `json:"imageUrl"`
	Version     uint                `json:"-" gorm:"not null;default:1"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// EffectivePrice is the sale price when set, otherwise the list price
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.Valid {
		return p.SalePrice.Decimal
	}
	return p.Price
}

// AvailableStock returns the stock count, zero when unset
func (p *Product) AvailableStock() int {
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}

// CanSupply reports whether quantity units can be taken from stock
func (p *Product) CanSupply(quantity int) bool {
	return p.AvailableStock()-quantity >= 0
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	// UpdateLocked loads the row FOR UPDATE, applies mutate and saves it in one transaction
	UpdateLocked(ctx context.Context, id uint, mutate func(*Product) error) (*Product, error)
	// ReduceStock decrements stock only when at least quantity units remain.
	// It reports false when the guard rejected the update.
	ReduceStock(ctx context.Context, id uint, quantity int) (bool, error)
	Search(ctx context.Context, query string, limit, offset int) ([]Product, int64, error)
}

// ProductCache is a read-through cache for single products
type ProductCache interface {
	Get(ctx context.Context, id uint) (*Product, error)
	Set(ctx context.Context, product *Product) error
	Invalidate(ctx context.Context, ids ...uint) error
}

// ImageStore stores an uploaded product image and returns its public URL
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
