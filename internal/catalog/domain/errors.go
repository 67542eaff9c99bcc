package domain

import (
	"errors"

	"github.com/tair/storefront/pkg/apperror"
)

// Messages surfaced to clients
const (
	MsgInvalidProductID   = "Invalid product id"
	MsgInvalidQuantity    = "Invalid quantity"
	MsgNoName             = "No product name"
	MsgNoDescription      = "No product description"
	MsgInvalidPrice       = "Invalid price"
	MsgNegativeSalePrice  = "Sale price cannot be negative"
	MsgSalePriceOverPrice = "Sale price cannot be greater than price"
)

// ErrCacheMiss is returned by ProductCache.Get when the product is not cached
var ErrCacheMiss = errors.New("product not cached")

// ErrInsufficientStock is returned when a reduction would make stock negative
var ErrInsufficientStock = apperror.InvalidValue(MsgInvalidQuantity)
