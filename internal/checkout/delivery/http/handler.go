package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/internal/checkout/usecase/command"
	"github.com/tair/storefront/internal/checkout/usecase/query"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/httpx"
)

// TransactionHandler handles HTTP requests for checkout and purchase history
type TransactionHandler struct {
	createHandler *command.CreateTransactionHandler

	getHandler  *query.GetTransactionHandler
	listHandler *query.ListTransactionsHandler
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	createHandler *command.CreateTransactionHandler,
	getHandler *query.GetTransactionHandler,
	listHandler *query.ListTransactionsHandler,
) *TransactionHandler {
	return &TransactionHandler{
		createHandler: createHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

func (h *TransactionHandler) RegisterRoutes(router *mux.Router, guards httpx.Guards) {
	router.HandleFunc("/transaction", httpx.Metrics("/transaction", guards.Shop(h.CreateTransaction))).Methods("POST")
	router.HandleFunc("/transaction", httpx.Metrics("/transaction", guards.Authenticated(h.ListTransactions))).Methods("GET")
	router.HandleFunc("/transaction/{id:[0-9]+}", httpx.Metrics("/transaction/{id}", guards.Authenticated(h.GetTransaction))).Methods("GET")
}

// CreateTransaction handles POST /transaction
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	txn, err := h.createHandler.Handle(r.Context(), command.CreateTransactionCommand{BuyerID: buyerID(r)})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusCreated, "Created transaction", txn)
}

// ListTransactions handles GET /transaction
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.listHandler.Handle(r.Context(), query.ListTransactionsQuery{BuyerID: buyerID(r)})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, fmt.Sprintf("Got %d transactions", len(txns)), txns)
}

// GetTransaction handles GET /transaction/{id}
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpx.RespondError(w, r, apperror.InvalidValue(domain.MsgInvalidTransactionID))
		return
	}

	txn, err := h.getHandler.Handle(r.Context(), query.GetTransactionQuery{ID: uint(id), BuyerID: buyerID(r)})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Got transaction", txn)
}

func buyerID(r *http.Request) uint {
	id, _ := httpx.IdentityFrom(r.Context())
	return id.UserID
}
