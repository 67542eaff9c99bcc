package command

import (
	"context"
	"strings"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/auth"
)

// AuthenticateCommand carries a username or email and a password
type AuthenticateCommand struct {
	Identifier string
	Password   string
}

// AuthenticateHandler verifies credentials
type AuthenticateHandler struct {
	repo domain.UserRepository
}

// NewAuthenticateHandler creates a new authenticate handler
func NewAuthenticateHandler(repo domain.UserRepository) *AuthenticateHandler {
	return &AuthenticateHandler{repo: repo}
}

// Handle matches the identifier as a username first, then as an email.
// Unknown user and wrong password fail identically.
func (h *AuthenticateHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (*domain.User, error) {
	identifier := strings.TrimSpace(cmd.Identifier)
	if identifier == "" || cmd.Password == "" {
		return nil, apperror.InvalidValue(domain.MsgInvalidCredentials)
	}

	user, err := h.repo.FindByUsername(ctx, identifier)
	if apperror.KindOf(err) == apperror.KindNotFound {
		user, err = h.repo.FindByEmail(ctx, identifier)
	}
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, apperror.InvalidCredentials()
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, apperror.InvalidCredentials()
	}
	return user, nil
}
