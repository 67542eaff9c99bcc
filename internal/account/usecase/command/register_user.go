package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/validation"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	FirstName string `validate:"notblank"`
	LastName  string `validate:"notblank"`
	Email     string `validate:"notblank,shopemail"`
	Username  string `validate:"notblank,username"`
	Password  string `validate:"notblank"`
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle registers a USER. Any blank field is "Invalid user"; shape
// failures of username and email are reported after that.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	cmd.FirstName = strings.TrimSpace(cmd.FirstName)
	cmd.LastName = strings.TrimSpace(cmd.LastName)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Username = strings.TrimSpace(cmd.Username)

	if err := validation.Struct(cmd); err != nil {
		return nil, registrationError(err)
	}

	if _, err := h.repo.FindByUsername(ctx, cmd.Username); err == nil {
		return nil, apperror.InvalidValue(domain.MsgUsernameInUse)
	} else if apperror.KindOf(err) != apperror.KindNotFound {
		return nil, err
	}
	if _, err := h.repo.FindByEmail(ctx, cmd.Email); err == nil {
		return nil, apperror.InvalidValue(domain.MsgEmailInUse)
	} else if apperror.KindOf(err) != apperror.KindNotFound {
		return nil, err
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Email:     cmd.Email,
		Username:  cmd.Username,
		Password:  hashed,
		Role:      domain.RoleUser,
	}
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("user_id", user.ID).
		Str("username", user.Username).
		Msg("User registered")

	return user, nil
}

func registrationError(err error) error {
	for _, field := range []string{"FirstName", "LastName", "Email", "Username", "Password"} {
		if validation.FailedTag(err, field) == "notblank" {
			return apperror.InvalidValue(domain.MsgInvalidUser)
		}
	}
	if validation.FailedTag(err, "Username") != "" {
		return apperror.InvalidValue(domain.MsgInvalidUsername)
	}
	if validation.FailedTag(err, "Email") != "" {
		return apperror.InvalidValue(domain.MsgInvalidEmail)
	}
	return apperror.InvalidValue(domain.MsgInvalidUser)
}
