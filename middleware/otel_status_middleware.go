// ABOUTME: This file provides OpenTelemetry span status middleware
// ABOUTME: Marks server spans as errors for 5xx responses and tags the route
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelStatusMiddleware must run inside otelecho.Middleware, which creates the span.
// 4xx responses leave the status unset since they are client errors.
func OTelStatusMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			span := trace.SpanFromContext(c.Request().Context())
			if !span.SpanContext().IsValid() {
				return err
			}

			status := c.Response().Status
			span.SetAttributes(
				attribute.Int("http.response.status_code", status),
				attribute.String("http.route", c.Path()),
			)
			if contentID := c.Param("content_id"); contentID != "" {
				span.SetAttributes(attribute.String("content_id", contentID))
			}

			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
				if err != nil {
					span.RecordError(err)
				}
			}
			return err
		}
	}
}
