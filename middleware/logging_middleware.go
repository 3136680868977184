// ABOUTME: This file provides HTTP access logging middleware
// ABOUTME: One completion line per request with status, size and duration
package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"discussion-fetcher/utils/logger"
)

func LoggingMiddleware(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()

			ctx := logger.WithOperation(req.Context(), req.Method+" "+c.Path())
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				// let the error handler write the response so the logged status is final
				c.Error(err)
			}

			res := c.Response()
			level := slog.LevelInfo
			if res.Status >= 500 {
				level = slog.LevelError
			}
			logger.FromContext(ctx, base).Log(ctx, level, "request completed",
				"log_type", "access",
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", res.Status,
				"response_size", res.Size,
				"ip_address", c.RealIP(),
				"user_agent", req.UserAgent(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}
