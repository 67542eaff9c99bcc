package account

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/account/delivery/http"
	"github.com/tair/storefront/internal/account/domain"
	"github.com/tair/storefront/internal/account/repository"
	"github.com/tair/storefront/internal/account/session"
	"github.com/tair/storefront/internal/account/usecase/command"
	"github.com/tair/storefront/internal/account/usecase/query"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/httpx"
	"github.com/tair/storefront/pkg/logger"
)

// ProvideUserRepository provides the traced user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewTracingUserRepository(repository.NewGormUserRepository(db))
}

// ProvideSessionStore keeps sessions in Redis, or in process when no Redis
// address is configured
func ProvideSessionStore(client *redis.Client, cfg *config.Config) domain.SessionStore {
	if client == nil || cfg.Redis.Addr == "" {
		logger.Logger.Warn().Msg("Redis not configured, sessions are kept in memory")
		return session.NewMemorySessionStore()
	}
	return session.NewRedisSessionStore(client)
}

// ProvideTokenSigner provides the session cookie signer
func ProvideTokenSigner(cfg *config.Config) (*auth.TokenSigner, error) {
	return auth.NewTokenSigner(cfg.Session.Secret, cfg.ServiceName)
}

func ProvideCookieConfig(cfg *config.Config) http.CookieConfig {
	return http.CookieConfig{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure}
}

// ProvideLoginLimiter limits POST /session per client IP
func ProvideLoginLimiter(client *redis.Client, cfg *config.Config) httpx.Middleware {
	if client == nil || cfg.Session.LoginRateLimit <= 0 {
		return nil
	}
	return httpx.NewRateLimiter(client, "login", cfg.Session.LoginRateLimit, cfg.Session.LoginWindow).Middleware
}

func ProvideStartSessionHandler(authenticate *command.AuthenticateHandler, sessions domain.SessionStore, signer *auth.TokenSigner, cfg *config.Config) *command.StartSessionHandler {
	return command.NewStartSessionHandler(authenticate, sessions, signer, cfg.Session.TTL)
}

// ProvideGuards builds the route guards every context uses
func ProvideGuards(g *http.SessionGuards) httpx.Guards {
	return g.Guards()
}

var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideSessionStore,
	ProvideTokenSigner,
)

var CommandHandlerSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewAuthenticateHandler,
	ProvideStartSessionHandler,
	command.NewEndSessionHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetUserHandler,
	query.NewResolveSessionHandler,
)

var ProviderSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	ProvideCookieConfig,
	ProvideLoginLimiter,
	http.NewSessionGuards,
	ProvideGuards,
	http.NewAccountHandler,
)
