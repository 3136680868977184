package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	appmiddleware "discussion-fetcher/middleware"
)

// NewHTTPServer creates and configures the Echo HTTP server.
func NewHTTPServer(deps *Dependencies, otelEnabled bool, otelServiceName string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler(deps.Logger)

	if otelEnabled {
		e.Use(otelecho.Middleware(otelServiceName, otelecho.WithSkipper(func(c echo.Context) bool {
			return isProbePath(c.Request().URL.Path)
		})))
		e.Use(appmiddleware.OTelStatusMiddleware())
	}

	e.Use(appmiddleware.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(loggingUnlessProbe(deps.Logger))

	e.GET("/health", deps.HealthHandler.Live)
	e.GET("/health/ready", deps.HealthHandler.Ready)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	if deps.Config.Auth.Enabled {
		api.Use(deps.ServiceAuth.Require())
	} else {
		deps.Logger.Warn("service auth disabled, /api/v1 is unauthenticated")
	}
	api.POST("/discussions/:content_id/fetch", deps.DiscussionHandler.Fetch)
	api.GET("/discussions/:content_id", deps.DiscussionHandler.Get)

	return e
}

// StartHTTPServer starts the HTTP server in a goroutine.
func StartHTTPServer(e *echo.Echo, port int, log *slog.Logger) {
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info("Starting HTTP server", "port", port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()
}

func isProbePath(path string) bool {
	return path == "/health" || path == "/health/ready" || path == "/metrics"
}

func loggingUnlessProbe(log *slog.Logger) echo.MiddlewareFunc {
	logging := appmiddleware.LoggingMiddleware(log)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := logging(next)
		return func(c echo.Context) error {
			if isProbePath(c.Request().URL.Path) {
				return next(c)
			}
			return logged(c)
		}
	}
}
