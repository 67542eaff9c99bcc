package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/internal/account/usecase/command"
	"github.com/tair/storefront/internal/account/usecase/query"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/httpx"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

// AccountHandler handles registration and sessions
type AccountHandler struct {
	registerHandler *command.RegisterUserHandler
	startHandler    *command.StartSessionHandler
	endHandler      *command.EndSessionHandler

	getUserHandler *query.GetUserHandler

	cookie       CookieConfig
	loginLimiter httpx.Middleware
}

// NewAccountHandler creates a new account handler. loginLimiter may be nil.
func NewAccountHandler(
	registerHandler *command.RegisterUserHandler,
	startHandler *command.StartSessionHandler,
	endHandler *command.EndSessionHandler,
	getUserHandler *query.GetUserHandler,
	cookie CookieConfig,
	loginLimiter httpx.Middleware,
) *AccountHandler {
	if loginLimiter == nil {
		loginLimiter = func(next http.HandlerFunc) http.HandlerFunc { return next }
	}
	return &AccountHandler{
		registerHandler: registerHandler,
		startHandler:    startHandler,
		endHandler:      endHandler,
		getUserHandler:  getUserHandler,
		cookie:          cookie,
		loginLimiter:    loginLimiter,
	}
}

func (h *AccountHandler) RegisterRoutes(router *mux.Router, guards httpx.Guards) {
	router.HandleFunc("/user", httpx.Metrics("/user", h.CreateUser)).Methods("POST")

	router.HandleFunc("/session", httpx.Metrics("/session", h.loginLimiter(h.CreateSession))).Methods("POST")
	router.HandleFunc("/session", httpx.Metrics("/session", guards.Authenticated(h.GetSession))).Methods("GET")
	router.HandleFunc("/session", httpx.Metrics("/session", h.DeleteSession)).Methods("DELETE")
}

// CreateUserRequest is the body of POST /user
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// CreateSessionRequest is the body of POST /session
type CreateSessionRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// CreateUser handles POST /user
func (h *AccountHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, r, apperror.InvalidValue(domain.MsgInvalidUser))
		return
	}

	if _, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	}); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, httpx.Response{
		Success:  true,
		Message:  "Created user",
		Redirect: httpx.LoginRedirect,
	})
}

// CreateSession handles POST /session
func (h *AccountHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.RespondError(w, r, apperror.InvalidValue(domain.MsgInvalidCredentials))
		return
	}

	session, err := h.startHandler.Handle(r.Context(), command.AuthenticateCommand{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success:  true,
		Message:  "Logged in",
		Data:     session.User,
		Redirect: "/",
	})
}

// GetSession handles GET /session
func (h *AccountHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.IdentityFrom(r.Context())
	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: id.UserID})
	if err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	httpx.RespondOK(w, http.StatusOK, "Got session", user)
}

// DeleteSession handles DELETE /session
func (h *AccountHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.endHandler.Handle(r.Context(), sessionToken(r, h.cookie.Name)); err != nil {
		httpx.RespondError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	httpx.RespondJSON(w, http.StatusOK, httpx.Response{
		Success:  true,
		Message:  "Logged out",
		Redirect: httpx.LoginRedirect,
	})
}
