package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/httpx"
)

// CartHandler handles HTTP requests for the buyer's cart
type CartHandler struct {
	addHandler    *command.AddItemHandler
	updateHandler *command.UpdateItemHandler
	removeHandler *command.RemoveItemHandler
	clearHandler  *command.ClearCartHandler

	listHandler *query.ListItemsHandler
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateItemHandler,
	removeHandler *command.RemoveItemHandler,
	clearHandler *command.ClearCartHandler,
	listHandler *query.ListItemsHandler,
) *CartHandler {
	return &CartHandler{
		addHandler:    addHandler,
		updateHandler: updateHandler,
		removeHandler: removeHandler,
		clearHandler:  clearHandler,
		listHandler:   listHandler,
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router, guards httpx.Guards) {
	router.HandleFunc("/cartitem", httpx.Metrics("/cartitem", guards.Shop(h.AddItem))).Methods("POST")
	router.HandleFunc("/cartitem", httpx.Metrics("/cartitem", guards.Shop(h.ListItems))).Methods("GET")
	router.HandleFunc("/cartitem", httpx.Metrics("/cartitem", guards.Shop(h.ClearCart))).Methods("DELETE")
	router.HandleFunc("/cartitem/{id:[0-9]+}", httpx.Metrics("/cartitem/{id}", guards.Shop(h.UpdateItem))).Methods("PUT")
	router.HandleFunc("/cartitem/{id:[0-9]+}", httpx.Metrics("/cartitem/{id}", guards.Shop(h.RemoveItem))).Methods("DELETE")
}

// AddItemRequest is the body of POST /cartitem
type AddItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// UpdateItemRequest is the body of PUT /cartitem/{id}
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// AddItem handles POST /cartitem
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, r, apperror.InvalidValue(domain.MsgInvalidProductID))
		return
	}

	if _, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		BuyerID:   buyerID(r),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusCreated, "Added to cart", nil)
}

// ListItems handles GET /cartitem
func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.listHandler.Handle(r.Context(), query.ListItemsQuery{BuyerID: buyerID(r)})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, fmt.Sprintf("Got %d cart items", len(items)), items)
}

// UpdateItem handles PUT /cartitem/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, r, apperror.InvalidValue(domain.MsgInvalidQuantity))
		return
	}

	if err := h.updateHandler.Handle(r.Context(), command.UpdateItemCommand{
		BuyerID:  buyerID(r),
		ItemID:   id,
		Quantity: req.Quantity,
	}); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Updated cart item quantity", nil)
}

// RemoveItem handles DELETE /cartitem/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		BuyerID: buyerID(r),
		ItemID:  id,
	}); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Deleted cart item", nil)
}

// ClearCart handles DELETE /cartitem; clearing an empty cart succeeds
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{BuyerID: buyerID(r)}); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Cleared cart", nil)
}

func buyerID(r *http.Request) uint {
	id, _ := httpx.IdentityFrom(r.Context())
	return id.UserID
}

func itemID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpx.RespondError(w, r, apperror.InvalidValue(domain.MsgInvalidCartItemID))
		return 0, false
	}
	return uint(id), true
}
