package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

func TestNewLineItemPrefersSalePrice(t *testing.T) {
	p := catalog.Product{
		ID:        3,
		Name:      "Teapot",
		Price:     decimal.RequireFromString("20.00"),
		SalePrice: decimal.NewNullDecimal(decimal.RequireFromString("18.00")),
	}

	line := NewLineItem(p, 2)
	assert.True(t, decimal.RequireFromString("18").Equal(line.UnitPrice))
	assert.True(t, decimal.RequireFromString("36").Equal(line.LineTotal))
	assert.True(t, line.SalePrice.Valid)

	p.SalePrice = decimal.NullDecimal{}
	assert.True(t, decimal.RequireFromString("40").Equal(NewLineItem(p, 2).LineTotal))
}

func TestLineItemsColumnRoundTrip(t *testing.T) {
	items := LineItems{
		{ProductID: 1, Name: "Cup", Quantity: 2, Price: decimal.RequireFromString("3.10"), UnitPrice: decimal.RequireFromString("3.10"), LineTotal: decimal.RequireFromString("6.20")},
	}

	v, err := items.Value()
	require.NoError(t, err)

	var fromString, fromBytes LineItems
	require.NoError(t, fromString.Scan(v))
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.Equal(t, 1, len(fromString))
	assert.True(t, items.Total().Equal(fromBytes.Total()))

	var empty LineItems
	require.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
	assert.Error(t, empty.Scan(42))
}

func TestStateTransitions(t *testing.T) {
	path := []State{StateValidating, StateReducingStock, StateRecordingTransaction, StateClearingCart, StateDone}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, path[i].CanTransition(path[i+1]), "%s -> %s", path[i], path[i+1])
	}

	assert.True(t, StateValidating.CanTransition(StateAborted))
	assert.False(t, StateClearingCart.CanTransition(StateAborted), "a committed checkout cannot abort")
	assert.False(t, StateDone.CanTransition(StateValidating))
	assert.False(t, StateValidating.CanTransition(StateRecordingTransaction))
}
