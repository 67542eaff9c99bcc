package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// Transaction is a completed checkout. Its lines and total are frozen at
// creation and never follow later product changes.
type Transaction struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	BuyerID   uint            `json:"-" gorm:"not null;index"`
	Items     LineItems       `json:"items" gorm:"type:text;not null"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TableName specifies the table name
func (Transaction) TableName() string {
	return "transactions"
}

// LineItem is the snapshot of one cart line as it was paid for
type LineItem struct {
	ProductID uint                `json:"productId"`
	Name      string              `json:"name"`
	Quantity  int                 `json:"quantity"`
	Price     decimal.Decimal     `json:"price"`
	SalePrice decimal.NullDecimal `json:"salePrice"`
	UnitPrice decimal.Decimal     `json:"unitPrice"`
	LineTotal decimal.Decimal     `json:"lineTotal"`
}

// NewLineItem prices quantity units of p at its current effective price
func NewLineItem(p catalog.Product, quantity int) LineItem {
	unit := p.EffectivePrice()
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  quantity,
		Price:     p.Price,
		SalePrice: p.SalePrice,
		UnitPrice: unit,
		LineTotal: unit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// LineItems is stored as a JSON document in a single column
type LineItems []LineItem

// Total sums the line totals
func (l LineItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l {
		total = total.Add(item.LineTotal)
	}
	return total
}

// Value implements driver.Valuer
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *LineItems) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = LineItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported line items column type %T", src)
	}
	return json.Unmarshal(raw, l)
}

// State is a step of the checkout workflow
type State string

const (
	StateValidating           State = "validating"
	StateReducingStock        State = "reducing_stock"
	StateRecordingTransaction State = "recording_transaction"
	StateClearingCart         State = "clearing_cart"
	StateDone                 State = "done"
	StateAborted              State = "aborted"
)

var transitions = map[State][]State{
	StateValidating:           {StateReducingStock, StateAborted},
	StateReducingStock:        {StateRecordingTransaction, StateAborted},
	StateRecordingTransaction: {StateClearingCart, StateAborted},
	StateClearingCart:         {StateDone},
}

// ErrIllegalTransition is returned when a checkout skips or repeats a step
var ErrIllegalTransition = errors.New("illegal checkout state transition")

// CanTransition reports whether a checkout may move from s to next.
// Stock reduction and recording share one database transaction, so a
// failure in either rolls back and ends in Aborted like a failed validation.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Messages
const (
	MsgInvalidCart          = "Invalid cart"
	MsgInvalidTransactionID = "Invalid transaction id"
)

// TransactionRepository defines the contract for transaction data access
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	FindByID(ctx context.Context, id uint) (*Transaction, error)
	FindByBuyer(ctx context.Context, buyerID uint) ([]Transaction, error)
}

// TxRepositories are the stores bound to one database transaction
type TxRepositories struct {
	Products     catalog.ProductRepository
	Transactions TransactionRepository
}

// UnitOfWork runs fn inside a single database transaction. fn's error rolls
// everything back and is returned unchanged.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}

// EventPublisher announces committed transactions
type EventPublisher interface {
	PublishTransactionCreated(ctx context.Context, txn *Transaction) error
}
