package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/database/dbtest"
)

const buyer uint = 7

type CartCommandSuite struct {
	suite.Suite
	ctx      context.Context
	carts    *repository.GormCartRepository
	products *catalogrepo.GormProductRepository

	add    *AddItemHandler
	update *UpdateItemHandler
	remove *RemoveItemHandler
	clear  *ClearCartHandler
}

func TestCartCommandSuite(t *testing.T) {
	suite.Run(t, new(CartCommandSuite))
}

func (s *CartCommandSuite) SetupTest() {
	db := dbtest.NewSQLite(s.T(), &catalog.Product{}, &domain.CartItem{})
	s.ctx = context.Background()
	s.carts = repository.NewGormCartRepository(db)
	s.products = catalogrepo.NewGormProductRepository(db)

	s.add = NewAddItemHandler(s.carts, s.products)
	s.update = NewUpdateItemHandler(s.carts, s.products)
	s.remove = NewRemoveItemHandler(s.carts)
	s.clear = NewClearCartHandler(s.carts)
}

func (s *CartCommandSuite) product(stock *int) *catalog.Product {
	p := &catalog.Product{
		Name:        "Mug",
		Description: "Stoneware",
		Price:       decimal.RequireFromString("12.50"),
		Stock:       stock,
	}
	s.Require().NoError(s.products.Create(s.ctx, p))
	return p
}

func (s *CartCommandSuite) assertInvalid(err error, msg string) {
	s.Require().Error(err)
	s.Equal(apperror.KindInvalidValue, apperror.KindOf(err))
	s.Equal(msg, apperror.MessageOf(err))
}

func stock(n int) *int { return &n }

func (s *CartCommandSuite) TestAddItemValidationOrder() {
	p := s.product(stock(3))

	_, err := s.add.Handle(s.ctx, AddItemCommand{ProductID: p.ID, Quantity: 1})
	s.Equal(apperror.KindUnauthorized, apperror.KindOf(err))

	_, err = s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, Quantity: 1})
	s.assertInvalid(err, domain.MsgInvalidProductID)

	_, err = s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID})
	s.assertInvalid(err, domain.MsgInvalidQuantity)

	_, err = s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: 9999, Quantity: 1})
	s.assertInvalid(err, domain.MsgInvalidProductID)
}

func (s *CartCommandSuite) TestAddItemStockBoundary() {
	p := s.product(stock(4))

	_, err := s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 5})
	s.assertInvalid(err, domain.MsgInvalidQuantity)

	item, err := s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 4})
	s.Require().NoError(err)
	s.Equal(4, item.Quantity)
	s.Equal(p.ID, item.Product.ID)
}

func (s *CartCommandSuite) TestAddItemUnsetStockCountsAsZero() {
	p := s.product(nil)

	_, err := s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 1})
	s.assertInvalid(err, domain.MsgInvalidQuantity)
}

func (s *CartCommandSuite) TestAddItemRejectsDuplicateProduct() {
	p := s.product(stock(10))

	_, err := s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 1})
	s.Require().NoError(err)

	_, err = s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 2})
	s.assertInvalid(err, domain.MsgInvalidProductID)

	items, err := s.carts.FindByBuyer(s.ctx, buyer)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal(1, items[0].Quantity, "quantities are not merged")

	// Another buyer may hold the same product
	_, err = s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer + 1, ProductID: p.ID, Quantity: 2})
	s.NoError(err)
}

func (s *CartCommandSuite) TestUpdateItem() {
	p := s.product(stock(5))
	item, err := s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 1})
	s.Require().NoError(err)

	s.assertInvalid(s.update.Handle(s.ctx, UpdateItemCommand{BuyerID: buyer, ItemID: item.ID, Quantity: 0}), domain.MsgInvalidQuantity)
	s.assertInvalid(s.update.Handle(s.ctx, UpdateItemCommand{BuyerID: buyer, ItemID: item.ID, Quantity: 6}), domain.MsgInvalidQuantity)
	s.assertInvalid(s.update.Handle(s.ctx, UpdateItemCommand{BuyerID: buyer + 1, ItemID: item.ID, Quantity: 2}), domain.MsgInvalidCartItemID)

	s.Require().NoError(s.update.Handle(s.ctx, UpdateItemCommand{BuyerID: buyer, ItemID: item.ID, Quantity: 5}))

	got, err := s.carts.FindByBuyerAndID(s.ctx, buyer, item.ID)
	s.Require().NoError(err)
	s.Equal(5, got.Quantity)
	s.Equal(p.ID, got.ProductID)
}

func (s *CartCommandSuite) TestRemoveItem() {
	p := s.product(stock(5))
	item, err := s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 1})
	s.Require().NoError(err)

	s.assertInvalid(s.remove.Handle(s.ctx, RemoveItemCommand{BuyerID: buyer + 1, ItemID: item.ID}), domain.MsgInvalidCartItemID)
	s.Require().NoError(s.remove.Handle(s.ctx, RemoveItemCommand{BuyerID: buyer, ItemID: item.ID}))
	s.assertInvalid(s.remove.Handle(s.ctx, RemoveItemCommand{BuyerID: buyer, ItemID: item.ID}), domain.MsgInvalidCartItemID)

	// The product survives its cart line
	_, err = s.products.FindByID(s.ctx, p.ID)
	s.NoError(err)
}

func (s *CartCommandSuite) TestClearCartIsIdempotent() {
	a := s.product(stock(5))
	b := s.product(stock(5))
	for _, p := range []*catalog.Product{a, b} {
		_, err := s.add.Handle(s.ctx, AddItemCommand{BuyerID: buyer, ProductID: p.ID, Quantity: 1})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.clear.Handle(s.ctx, ClearCartCommand{BuyerID: buyer}))
	s.Require().NoError(s.clear.Handle(s.ctx, ClearCartCommand{BuyerID: buyer}))

	items, err := s.carts.FindByBuyer(s.ctx, buyer)
	s.Require().NoError(err)
	s.Empty(items)
}

func TestClearCartRequiresBuyer(t *testing.T) {
	h := NewClearCartHandler(nil)
	err := h.Handle(context.Background(), ClearCartCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}
