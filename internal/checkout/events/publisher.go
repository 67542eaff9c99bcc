package events

import (
	"context"

	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/kafka"
)

// Sender is implemented by *kafka.Publisher
type Sender interface {
	PublishTransactionCreated(ctx context.Context, event kafka.TransactionCreatedEvent) error
}

// KafkaEventPublisher turns committed transactions into Kafka events
type KafkaEventPublisher struct {
	sender Sender
}

// NewKafkaEventPublisher creates a new event publisher
func NewKafkaEventPublisher(sender Sender) *KafkaEventPublisher {
	return &KafkaEventPublisher{sender: sender}
}

func (p *KafkaEventPublisher) PublishTransactionCreated(ctx context.Context, txn *domain.Transaction) error {
	return p.sender.PublishTransactionCreated(ctx, NewTransactionCreatedEvent(txn))
}

// NewTransactionCreatedEvent builds the wire event for txn
func NewTransactionCreatedEvent(txn *domain.Transaction) kafka.TransactionCreatedEvent {
	lines := make([]kafka.PurchasedLine, 0, len(txn.Items))
	for _, item := range txn.Items {
		lines = append(lines, kafka.PurchasedLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		})
	}
	return kafka.TransactionCreatedEvent{
		TransactionID: txn.ID,
		BuyerID:       txn.BuyerID,
		Total:         txn.Total.StringFixed(2),
		Lines:         lines,
		Timestamp:     txn.CreatedAt,
	}
}

// NoopEventPublisher is used when Kafka is disabled
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishTransactionCreated(context.Context, *domain.Transaction) error {
	return nil
}
