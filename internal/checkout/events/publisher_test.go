package events

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/kafka"
)

type captureSender struct {
	events []kafka.TransactionCreatedEvent
}

func (c *captureSender) PublishTransactionCreated(_ context.Context, e kafka.TransactionCreatedEvent) error {
	c.events = append(c.events, e)
	return nil
}

func TestPublishTransactionCreatedMapsLines(t *testing.T) {
	sender := &captureSender{}
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	err := NewKafkaEventPublisher(sender).PublishTransactionCreated(context.Background(), &domain.Transaction{
		ID:      4,
		BuyerID: 2,
		Items: domain.LineItems{
			{ProductID: 10, Quantity: 2, UnitPrice: decimal.RequireFromString("18")},
			{ProductID: 11, Quantity: 1, UnitPrice: decimal.RequireFromString("5.5")},
		},
		Total:     decimal.RequireFromString("41.5"),
		CreatedAt: created,
	})
	require.NoError(t, err)
	require.Len(t, sender.events, 1)

	e := sender.events[0]
	assert.Equal(t, uint(4), e.TransactionID)
	assert.Equal(t, uint(2), e.BuyerID)
	assert.Equal(t, "41.50", e.Total)
	assert.Equal(t, []uint{10, 11}, e.ProductIDs())
	assert.Equal(t, "18.00", e.Lines[0].UnitPrice)
	assert.Equal(t, created, e.Timestamp)
}

func TestNoopEventPublisher(t *testing.T) {
	assert.NoError(t, NoopEventPublisher{}.PublishTransactionCreated(context.Background(), &domain.Transaction{}))
}
