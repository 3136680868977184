// ABOUTME: Centralized error handling middleware for Echo framework
// ABOUTME: Converts AppContextError to secure HTTP responses, hides internal details
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "discussion-fetcher/utils/errors"
	"discussion-fetcher/utils/logger"
)

const genericErrorMessage = "An unexpected error occurred. Please try again later."

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
//
// Error handling priority:
// 1. AppContextError - uses ToSecureHTTPResponse() for consistent format
// 2. echo.HTTPError - status preserved, 5xx messages hidden
// 3. Unknown errors - generic 500 response
func CustomHTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		requestID := logger.RequestIDFrom(ctx)

		var (
			response apperrors.SecureHTTPResponse
			status   int
			appErr   *apperrors.AppContextError
			httpErr  *echo.HTTPError
		)

		switch {
		case errors.As(err, &appErr):
			status = appErr.HTTPStatusCode()
			response = appErr.ToSecureHTTPResponse()

			log.ErrorContext(ctx, "application error",
				"request_id", requestID,
				"error_id", appErr.ErrorID,
				"code", appErr.Code,
				"message", appErr.Message,
				"layer", appErr.Layer,
				"component", appErr.Component,
				"operation", appErr.Operation,
				"cause", appErr.Cause,
				"context", appErr.Context,
			)

		case errors.As(err, &httpErr):
			status = httpErr.Code
			msg := http.StatusText(status)
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}

			safeMsg := msg
			if status >= http.StatusInternalServerError {
				safeMsg = genericErrorMessage
			}

			response = apperrors.SecureHTTPResponse{
				Error: apperrors.SecureErrorDetail{
					Code:      "HTTP_ERROR",
					Message:   safeMsg,
					Retryable: apperrors.IsRetryableHTTPStatus(status),
				},
			}

			log.WarnContext(ctx, "HTTP error",
				"request_id", requestID,
				"status", status,
				"message", msg,
			)

		default:
			status = http.StatusInternalServerError
			response = apperrors.SecureHTTPResponse{
				Error: apperrors.SecureErrorDetail{
					Code:    "INTERNAL_ERROR",
					Message: genericErrorMessage,
				},
			}

			log.ErrorContext(ctx, "unhandled error",
				"request_id", requestID,
				"error", err.Error(),
			)
		}

		if err := c.JSON(status, response); err != nil {
			log.ErrorContext(ctx, "failed to send error response",
				"request_id", requestID,
				"error", err,
			)
		}
	}
}
