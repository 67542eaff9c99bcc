package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/pkg/database/dbtest"
	"github.com/tair/storefront/pkg/httpx"
)

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Error    string          `json:"error"`
	Redirect string          `json:"redirect"`
}

// signedIn injects a fixed caller the way the session guard does
func signedIn(userID uint) httpx.Guards {
	g := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := httpx.WithIdentity(r.Context(), httpx.Identity{UserID: userID, Username: "buyer", Role: "USER"})
			next(w, r.WithContext(ctx))
		}
	}
	return httpx.Guards{Authenticated: g, ManageCatalog: g, Shop: g}
}

func setup(t *testing.T, guards httpx.Guards) (*mux.Router, *catalog.Product) {
	t.Helper()
	db := dbtest.NewSQLite(t, &catalog.Product{}, &domain.CartItem{})
	products := catalogrepo.NewGormProductRepository(db)
	carts := repository.NewGormCartRepository(db)

	stock := 3
	p := &catalog.Product{Name: "Lamp", Description: "Desk lamp", Price: decimal.NewFromInt(40), Stock: &stock}
	require.NoError(t, products.Create(context.Background(), p))

	h := NewCartHandler(
		command.NewAddItemHandler(carts, products),
		command.NewUpdateItemHandler(carts, products),
		command.NewRemoveItemHandler(carts),
		command.NewClearCartHandler(carts),
		query.NewListItemsHandler(carts),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router, guards)
	return router, p
}

func do(router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestCartFlow(t *testing.T) {
	router, p := setup(t, signedIn(11))

	rec, env := do(router, http.MethodPost, "/cartitem", fmt.Sprintf(`{"productId":%d,"quantity":2}`, p.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Added to cart", env.Message)

	rec, env = do(router, http.MethodGet, "/cartitem", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Got 1 cart items", env.Message)

	var items []struct {
		ID        uint `json:"id"`
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, p.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)

	path := fmt.Sprintf("/cartitem/%d", items[0].ID)
	rec, env = do(router, http.MethodPut, path, `{"quantity":4}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.MsgInvalidQuantity, env.Error)

	rec, env = do(router, http.MethodPut, path, `{"quantity":3}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Updated cart item quantity", env.Message)

	rec, env = do(router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deleted cart item", env.Message)

	rec, env = do(router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.MsgInvalidCartItemID, env.Error)
}

func TestAddItemValidation(t *testing.T) {
	router, p := setup(t, signedIn(11))

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing product", `{"quantity":1}`, domain.MsgInvalidProductID},
		{"missing quantity", fmt.Sprintf(`{"productId":%d}`, p.ID), domain.MsgInvalidQuantity},
		{"over stock", fmt.Sprintf(`{"productId":%d,"quantity":4}`, p.ID), domain.MsgInvalidQuantity},
		{"malformed body", `{`, domain.MsgInvalidProductID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(router, http.MethodPost, "/cartitem", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, env.Error)
		})
	}
}

func TestAnonymousCallerIsRedirected(t *testing.T) {
	router, _ := setup(t, httpx.Open())

	rec, env := do(router, http.MethodGet, "/cartitem", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, httpx.LoginRedirect, env.Redirect)
}

func TestClearCart(t *testing.T) {
	router, p := setup(t, signedIn(12))

	rec, _ := do(router, http.MethodPost, "/cartitem", fmt.Sprintf(`{"productId":%d,"quantity":1}`, p.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(router, http.MethodDelete, "/cartitem", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cleared cart", env.Message)

	_, env = do(router, http.MethodGet, "/cartitem", "")
	assert.Equal(t, "Got 0 cart items", env.Message)

	// second clear is a no-op
	rec, _ = do(router, http.MethodDelete, "/cartitem", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
