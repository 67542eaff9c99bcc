package http

import (
	"net/http"

	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/internal/account/usecase/query"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/httpx"
	"github.com/tair/storefront/pkg/logger"
)

// SessionGuards resolves the session cookie into an httpx.Identity
type SessionGuards struct {
	resolve    *query.ResolveSessionHandler
	cookieName string
}

// NewSessionGuards creates guards reading the named cookie
func NewSessionGuards(resolve *query.ResolveSessionHandler, cookie CookieConfig) *SessionGuards {
	return &SessionGuards{resolve: resolve, cookieName: cookie.Name}
}

// Guards returns the middleware set handed to every context's routes
func (g *SessionGuards) Guards() httpx.Guards {
	return httpx.Guards{
		Authenticated: g.require(""),
		ManageCatalog: g.require(domain.CapabilityManageCatalog),
		Shop:          g.require(domain.CapabilityShop),
	}
}

func (g *SessionGuards) require(capability domain.Capability) httpx.Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, err := g.resolve.Handle(r.Context(), sessionToken(r, g.cookieName))
			if err != nil {
				httpx.RespondError(w, r, err)
				return
			}
			if capability != "" && !user.Can(capability) {
				logger.Warn(r.Context()).
					Uint("user_id", user.ID).
					Str("capability", string(capability)).
					Msg("Capability denied")
				httpx.RespondError(w, r, apperror.Unauthorized())
				return
			}

			ctx := httpx.WithIdentity(r.Context(), httpx.Identity{
				UserID:   user.ID,
				Username: user.Username,
				Role:     string(user.Role),
			})
			next(w, r.WithContext(ctx))
		}
	}
}

func sessionToken(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
