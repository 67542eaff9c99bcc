package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/internal/account/repository"
	"github.com/tair/storefront/internal/account/session"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/database/dbtest"
)

func TestResolveSession(t *testing.T) {
	ctx := context.Background()
	users := repository.NewGormUserRepository(dbtest.NewSQLite(t, &domain.User{}))
	user := &domain.User{FirstName: "G", LastName: "H", Email: "g@example.com", Username: "grace", Password: "x", Role: domain.RoleAdmin}
	require.NoError(t, users.Create(ctx, user))

	signer, err := auth.NewTokenSigner("secret", "storefront")
	require.NoError(t, err)
	store := session.NewMemorySessionStore()
	h := NewResolveSessionHandler(signer, store, users)

	sid, err := store.Create(ctx, user.ID, time.Hour)
	require.NoError(t, err)
	token, err := signer.GenerateToken(sid, time.Hour)
	require.NoError(t, err)

	got, err := h.Handle(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "grace", got.Username)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	orphanSID, err := store.Create(ctx, 999, time.Hour)
	require.NoError(t, err)
	orphan, err := signer.GenerateToken(orphanSID, time.Hour)
	require.NoError(t, err)
	unknown, err := signer.GenerateToken("no-such-session", time.Hour)
	require.NoError(t, err)

	for name, tok := range map[string]string{"empty": "", "garbage": "abc", "unknown session": unknown, "deleted user": orphan} {
		t.Run(name, func(t *testing.T) {
			_, err := h.Handle(ctx, tok)
			assert.ErrorIs(t, err, apperror.ErrUnauthorized)
		})
	}
}

func TestGetUser(t *testing.T) {
	users := repository.NewGormUserRepository(dbtest.NewSQLite(t, &domain.User{}))
	h := NewGetUserHandler(users)

	_, err := h.Handle(context.Background(), GetUserQuery{})
	assert.Equal(t, apperror.KindUnauthorized, apperror.KindOf(err))

	_, err = h.Handle(context.Background(), GetUserQuery{ID: 5})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
