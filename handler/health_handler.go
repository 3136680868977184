package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const serviceName = "discussion-fetcher"

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler. db may be nil when no store is wired.
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Live handles GET /health.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
	})
}

// Ready handles GET /health/ready and checks the database.
func (h *HealthHandler) Ready(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status":  "unavailable",
				"service": serviceName,
				"reason":  "database unreachable",
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ready",
		"service": serviceName,
	})
}
