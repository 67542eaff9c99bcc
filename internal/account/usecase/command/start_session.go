package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// Session is a logged-in user with the signed token naming their session
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// StartSessionHandler logs a user in
type StartSessionHandler struct {
	authenticate *AuthenticateHandler
	sessions     domain.SessionStore
	signer       *auth.TokenSigner
	ttl          time.Duration
}

// NewStartSessionHandler creates a new login handler
func NewStartSessionHandler(authenticate *AuthenticateHandler, sessions domain.SessionStore, signer *auth.TokenSigner, ttl time.Duration) *StartSessionHandler {
	return &StartSessionHandler{authenticate: authenticate, sessions: sessions, signer: signer, ttl: ttl}
}

// Handle executes the login command
func (h *StartSessionHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (*Session, error) {
	user, err := h.authenticate.Handle(ctx, cmd)
	if err != nil {
		outcome := "error"
		if apperror.KindOf(err) == apperror.KindInvalidCredentials {
			outcome = "invalid_credentials"
		}
		metrics.LoginAttempts.WithLabelValues(outcome).Inc()
		return nil, err
	}

	sid, err := h.sessions.Create(ctx, user.ID, h.ttl)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	token, err := h.signer.GenerateToken(sid, h.ttl)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Info(ctx).
		Uint("user_id", user.ID).
		Msg("Logged in")

	return &Session{
		Token:     token,
		ExpiresAt: time.Now().Add(h.ttl),
		User:      user,
	}, nil
}
