package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
	catalogevents "github.com/tair/storefront/internal/catalog/events"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// App is the assembled storefront service
type App struct {
	cfg     *config.Config
	db      *gorm.DB
	handler http.Handler
	cache   catalogdomain.ProductCache
}

// NewApp creates a new App
func NewApp(cfg *config.Config, db *gorm.DB, handler http.Handler, cache catalogdomain.ProductCache) *App {
	return &App{cfg: cfg, db: db, handler: handler, cache: cache}
}

// Handler exposes the HTTP surface
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run migrates the schema, starts the event consumer and serves HTTP until
// ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	if err := Migrate(a.db); err != nil {
		return err
	}
	logger.Logger.Info().Msg("Database migrated")

	if a.cfg.Kafka.Enabled {
		consumer, err := kafka.NewConsumer(a.cfg.Kafka.Brokers, a.cfg.Kafka.GroupID, []string{kafka.TopicTransactionCreated})
		if err != nil {
			return err
		}
		defer consumer.Close()
		consumer.RegisterHandler(kafka.EventTypeTransactionCreated, catalogevents.NewStockChangedHandler(a.cache))
		if err := consumer.Start(ctx); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              ":" + a.cfg.HTTPPort,
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().
			Str("port", a.cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
