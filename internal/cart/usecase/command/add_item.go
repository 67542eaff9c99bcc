package command

import (
	"context"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/logger"
)

// AddItemCommand puts Quantity units of a product into the buyer's cart
type AddItemCommand struct {
	BuyerID   uint
	ProductID uint
	Quantity  int
}

// AddItemHandler handles add-to-cart command
type AddItemHandler struct {
	repo     domain.CartRepository
	products catalog.ProductRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.CartRepository, products catalog.ProductRepository) *AddItemHandler {
	return &AddItemHandler{repo: repo, products: products}
}

// Handle validates in the order the storefront client expects its messages:
// product id, quantity, duplicate line, product lookup, stock.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.CartItem, error) {
	if cmd.BuyerID == 0 {
		return nil, apperror.Unauthorized()
	}
	if cmd.ProductID == 0 {
		return nil, apperror.InvalidValue(domain.MsgInvalidProductID)
	}
	if cmd.Quantity < 1 {
		return nil, apperror.InvalidValue(domain.MsgInvalidQuantity)
	}

	exists, err := h.repo.HasProduct(ctx, cmd.BuyerID, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.InvalidValue(domain.MsgInvalidProductID)
	}

	product, err := h.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, apperror.InvalidValue(domain.MsgInvalidProductID)
		}
		return nil, err
	}

	if !product.CanSupply(cmd.Quantity) {
		return nil, apperror.InvalidValue(domain.MsgInvalidQuantity)
	}

	item := &domain.CartItem{
		BuyerID:   cmd.BuyerID,
		ProductID: product.ID,
		Quantity:  cmd.Quantity,
	}
	if err := h.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Product = *product

	logger.Debug(ctx).
		Uint("buyer_id", cmd.BuyerID).
		Uint("product_id", product.ID).
		Int("quantity", cmd.Quantity).
		Msg("Added to cart")

	return item, nil
}
