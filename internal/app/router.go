package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/storefront/docs"
	accounthttp "github.com/tair/storefront/internal/account/delivery/http"
	carthttp "github.com/tair/storefront/internal/cart/delivery/http"
	cataloghttp "github.com/tair/storefront/internal/catalog/delivery/http"
	checkouthttp "github.com/tair/storefront/internal/checkout/delivery/http"
	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/httpx"
)

const requestTimeout = 30 * time.Second

// Handlers groups the per-context HTTP handlers
type Handlers struct {
	Account  *accounthttp.AccountHandler
	Catalog  *cataloghttp.ProductHandler
	Cart     *carthttp.CartHandler
	Checkout *checkouthttp.TransactionHandler
	Health   *HealthHandler
}

// NewRouter builds the full HTTP surface behind CORS
func NewRouter(cfg *config.Config, h Handlers, guards httpx.Guards) http.Handler {
	router := mux.NewRouter()

	// Request id and span exist before the access log line is written
	router.Use(httpx.RecoveryMiddleware)
	router.Use(httpx.RequestIDMiddleware)
	router.Use(httpx.TracingMiddleware("http-request"))
	router.Use(httpx.LoggingMiddleware)
	router.Use(httpx.TimeoutMiddleware(requestTimeout))

	h.Account.RegisterRoutes(router, guards)
	h.Catalog.RegisterRoutes(router, guards)
	h.Cart.RegisterRoutes(router, guards)
	h.Checkout.RegisterRoutes(router, guards)

	router.Handle("/health", h.Health).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}
