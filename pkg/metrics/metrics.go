// Package metrics declares the Prometheus collectors shared by the
// storefront handlers and use cases. Collectors are registered once at
// package init so handlers can be constructed any number of times.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_requests_total",
			Help: "Total number of HTTP requests to the storefront",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_request_duration_seconds",
			Help:    "Duration of storefront requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	RequestSummary = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "storefront_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkouts_total",
			Help: "Checkout attempts by outcome",
		},
		[]string{"outcome"},
	)

	CheckoutRevenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_checkout_revenue_total",
			Help: "Sum of committed transaction totals",
		},
	)

	CartClearFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_cart_clear_failures_total",
			Help: "Carts left stale because clearing failed after a committed checkout",
		},
	)

	StockRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_stock_rejections_total",
			Help: "Stock reductions rejected for insufficient stock",
		},
	)

	ProductCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_product_cache_lookups_total",
			Help: "Product cache lookups by result",
		},
		[]string{"result"},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_events_published_total",
			Help: "Kafka events published by type and status",
		},
		[]string{"event_type", "status"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_events_consumed_total",
			Help: "Kafka events consumed by type and result",
		},
		[]string{"event_type", "result"},
	)
)

// Checkout outcomes
const (
	OutcomeSuccess      = "success"
	OutcomeEmptyCart    = "empty_cart"
	OutcomeInsufficient = "insufficient_stock"
	OutcomeError        = "error"
)
