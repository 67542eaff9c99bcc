package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/internal/account/repository"
	"github.com/tair/storefront/internal/account/session"
	"github.com/tair/storefront/internal/account/usecase/command"
	"github.com/tair/storefront/internal/account/usecase/query"
	"github.com/tair/storefront/pkg/auth"
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

const cookieName = "storefront_session"

type fixture struct {
	router *mux.Router
	users  *repository.GormUserRepository
	guards httpx.Guards
}

func setup(t *testing.T) fixture {
	t.Helper()
	users := repository.NewGormUserRepository(dbtest.NewSQLite(t, &domain.User{}))
	signer, err := auth.NewTokenSigner("handler-secret", "storefront")
	require.NoError(t, err)
	store := session.NewMemorySessionStore()
	cookie := CookieConfig{Name: cookieName}

	h := NewAccountHandler(
		command.NewRegisterUserHandler(users),
		command.NewStartSessionHandler(command.NewAuthenticateHandler(users), store, signer, time.Hour),
		command.NewEndSessionHandler(store, signer),
		query.NewGetUserHandler(users),
		cookie,
		nil,
	)
	guards := NewSessionGuards(query.NewResolveSessionHandler(signer, store, users), cookie).Guards()

	router := mux.NewRouter()
	h.RegisterRoutes(router, guards)
	return fixture{router: router, users: users, guards: guards}
}

func (f fixture) do(method, path string, body interface{}, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func TestRegisterLoginLogout(t *testing.T) {
	f := setup(t)

	rec, env := f.do(http.MethodPost, "/user", CreateUserRequest{
		FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Username: "alan", Password: "enigma",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Created user", env.Message)
	assert.Equal(t, "/login", env.Redirect)

	rec, env = f.do(http.MethodPost, "/session", CreateSessionRequest{Identifier: "alan@example.com", Password: "enigma"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Logged in", env.Message)
	assert.Equal(t, "/", env.Redirect)
	assert.NotContains(t, string(env.Data), "enigma")
	assert.NotContains(t, string(env.Data), "password")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	rec, env = f.do(http.MethodGet, "/session", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alan", me.Username)
	assert.Equal(t, "USER", me.Role)

	rec, env = f.do(http.MethodDelete, "/session", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out", env.Message)
	assert.Equal(t, "/login", env.Redirect)

	rec, env = f.do(http.MethodGet, "/session", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", env.Redirect)
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	f := setup(t)
	_, _ = f.do(http.MethodPost, "/user", CreateUserRequest{
		FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Username: "alan", Password: "enigma",
	})

	recWrong, envWrong := f.do(http.MethodPost, "/session", CreateSessionRequest{Identifier: "alan", Password: "bombe"})
	recUnknown, envUnknown := f.do(http.MethodPost, "/session", CreateSessionRequest{Identifier: "nobody", Password: "bombe"})

	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, recWrong.Code, recUnknown.Code)
	assert.Equal(t, envWrong.Error, envUnknown.Error)
	assert.Empty(t, envWrong.Redirect)
	assert.Nil(t, sessionCookie(recWrong))
}

func TestCapabilityGuards(t *testing.T) {
	f := setup(t)
	_, _ = f.do(http.MethodPost, "/user", CreateUserRequest{
		FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Username: "alan", Password: "enigma",
	})
	rec, _ := f.do(http.MethodPost, "/session", CreateSessionRequest{Identifier: "alan", Password: "enigma"})
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)

	reached := func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.IdentityFrom(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		httpx.RespondOK(w, http.StatusOK, id.Username, nil)
	}

	call := func(mw httpx.Middleware, c *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if c != nil {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		mw(reached)(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, call(f.guards.Shop, cookie).Code)
	assert.Equal(t, http.StatusOK, call(f.guards.Authenticated, cookie).Code)
	assert.Equal(t, http.StatusUnauthorized, call(f.guards.ManageCatalog, cookie).Code, "USER cannot manage the catalog")
	assert.Equal(t, http.StatusUnauthorized, call(f.guards.Shop, nil).Code)
}

func TestCreateUserValidation(t *testing.T) {
	f := setup(t)

	rec, env := f.do(http.MethodPost, "/user", CreateUserRequest{FirstName: "A", LastName: "B", Email: "a@example.com", Username: "no spaces", Password: "p"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.MsgInvalidUsername, env.Error)
}
