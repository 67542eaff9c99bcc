package app

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/storefront/pkg/httpx"
)

// HealthHandler reports database and Redis reachability
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new health handler; redis may be nil
func NewHealthHandler(db *gorm.DB, client *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: client}
}

type healthStatus struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// ServeHTTP handles GET /health. Only the database is required; a Redis
// outage degrades sessions and caching but is reported as healthy.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := healthStatus{Database: "ok", Redis: "disabled"}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status.Database = "unavailable"
		healthy = false
	}
	if h.redis != nil {
		status.Redis = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			status.Redis = "unavailable"
		}
	}

	if !healthy {
		httpx.RespondJSON(w, http.StatusServiceUnavailable, httpx.Response{
			Success: false,
			Error:   "Database unavailable",
			Data:    status,
		})
		return
	}
	httpx.RespondOK(w, http.StatusOK, "Storefront is healthy", status)
}
