package command

import (
	"context"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/pkg/auth"
)

// EndSessionHandler logs a user out
type EndSessionHandler struct {
	sessions domain.SessionStore
	signer   *auth.TokenSigner
}

// NewEndSessionHandler creates a new logout handler
func NewEndSessionHandler(sessions domain.SessionStore, signer *auth.TokenSigner) *EndSessionHandler {
	return &EndSessionHandler{sessions: sessions, signer: signer}
}

// Handle deletes the session named by token. Logging out without a valid
// session succeeds.
func (h *EndSessionHandler) Handle(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sid, err := h.signer.ValidateToken(token)
	if err != nil {
		return nil
	}
	return h.sessions.Delete(ctx, sid)
}
