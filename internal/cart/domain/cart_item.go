package domain

import (
	"context"
	"time"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// Messages surfaced to clients
const (
	MsgInvalidProductID  = catalog.MsgInvalidProductID
	MsgInvalidQuantity   = catalog.MsgInvalidQuantity
	MsgInvalidCartItemID = "Invalid cart item id"
)

// CartItem is one (product, quantity) line in a buyer's cart. A buyer holds
// at most one line per product.
type CartItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	BuyerID   uint            `json:"-" gorm:"not null;uniqueIndex:idx_cart_items_buyer_product"`
	ProductID uint            `json:"productId" gorm:"not null;uniqueIndex:idx_cart_items_buyer_product"`
	Product   catalog.Product `json:"product" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// CartRepository defines the contract for cart data access. Every lookup is
// scoped by buyer so one user can never reach another user's lines.
type CartRepository interface {
	Create(ctx context.Context, item *CartItem) error
	// FindByBuyer returns the cart in insertion order with products loaded
	FindByBuyer(ctx context.Context, buyerID uint) ([]CartItem, error)
	FindByBuyerAndID(ctx context.Context, buyerID, id uint) (*CartItem, error)
	HasProduct(ctx context.Context, buyerID, productID uint) (bool, error)
	UpdateQuantity(ctx context.Context, buyerID, id uint, quantity int) error
	Delete(ctx context.Context, buyerID, id uint) error
	DeleteByBuyer(ctx context.Context, buyerID uint) (int64, error)
}
