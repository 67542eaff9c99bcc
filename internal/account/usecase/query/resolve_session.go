package query

import (
	"context"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/auth"
)

// ResolveSessionHandler turns a session token into the logged-in user
type ResolveSessionHandler struct {
	signer   *auth.TokenSigner
	sessions domain.SessionStore
	users    domain.UserRepository
}

// NewResolveSessionHandler creates a new session resolver
func NewResolveSessionHandler(signer *auth.TokenSigner, sessions domain.SessionStore, users domain.UserRepository) *ResolveSessionHandler {
	return &ResolveSessionHandler{signer: signer, sessions: sessions, users: users}
}

// Handle returns Unauthorized for a bad token, an unknown session or a user
// that no longer exists. Store outages come back as internal errors.
func (h *ResolveSessionHandler) Handle(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, apperror.Unauthorized()
	}
	sid, err := h.signer.ValidateToken(token)
	if err != nil {
		return nil, apperror.Unauthorized()
	}

	userID, err := h.sessions.Resolve(ctx, sid)
	if err != nil {
		return nil, err
	}

	user, err := h.users.FindByID(ctx, userID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, apperror.Unauthorized()
		}
		return nil, err
	}
	return user, nil
}
