package query

import (
	"context"

	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/pkg/apperror"
)

// GetTransactionQuery represents the query to read one transaction
type GetTransactionQuery struct {
	ID      uint
	BuyerID uint
}

// GetTransactionHandler handles get transaction query
type GetTransactionHandler struct {
	repo domain.TransactionRepository
}

// NewGetTransactionHandler creates a new get transaction handler
func NewGetTransactionHandler(repo domain.TransactionRepository) *GetTransactionHandler {
	return &GetTransactionHandler{repo: repo}
}

// Handle returns the transaction only to its buyer. A transaction owned by
// someone else is reported exactly like a missing one, whatever the
// caller's role.
func (h *GetTransactionHandler) Handle(ctx context.Context, q GetTransactionQuery) (*domain.Transaction, error) {
	if q.BuyerID == 0 {
		return nil, apperror.Unauthorized()
	}
	if q.ID == 0 {
		return nil, apperror.InvalidValue(domain.MsgInvalidTransactionID)
	}

	txn, err := h.repo.FindByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if txn.BuyerID != q.BuyerID {
		return nil, apperror.InvalidValue(domain.MsgInvalidTransactionID)
	}
	return txn, nil
}
