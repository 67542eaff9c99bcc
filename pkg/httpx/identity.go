package httpx

import "context"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller resolved from the session
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// WithIdentity stores id in ctx
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom returns the caller stored in ctx, if any
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok && id.UserID != 0
}
