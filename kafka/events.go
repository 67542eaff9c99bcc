package kafka

import "time"

// PurchasedLine is one product taken out of stock by a checkout
type PurchasedLine struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// TransactionCreatedEvent is emitted once a checkout has committed
type TransactionCreatedEvent struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	TransactionID uint            `json:"transaction_id"`
	BuyerID       uint            `json:"buyer_id"`
	Total         string          `json:"total"`
	Lines         []PurchasedLine `json:"lines"`
	Timestamp     time.Time       `json:"timestamp"`
}

// ProductIDs lists the products whose stock the checkout changed
func (e TransactionCreatedEvent) ProductIDs() []uint {
	ids := make([]uint, 0, len(e.Lines))
	for _, l := range e.Lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

const (
	EventTypeTransactionCreated = "transaction.created"

	// TopicTransactionCreated is keyed by buyer so one buyer's events stay ordered
	TopicTransactionCreated = "storefront-transactions"
)

// Record headers carried next to the trace context
const (
	headerEventType = "event_type"
	headerEventID   = "event_id"
)
