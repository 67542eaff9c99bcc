package query

import (
	"context"

	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/pkg/apperror"
)

// ListTransactionsQuery represents the query for a buyer's purchase history
type ListTransactionsQuery struct {
	BuyerID uint
}

// ListTransactionsHandler handles purchase history reads
type ListTransactionsHandler struct {
	repo domain.TransactionRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(repo domain.TransactionRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

func (h *ListTransactionsHandler) Handle(ctx context.Context, q ListTransactionsQuery) ([]domain.Transaction, error) {
	if q.BuyerID == 0 {
		return nil, apperror.Unauthorized()
	}
	return h.repo.FindByBuyer(ctx, q.BuyerID)
}
