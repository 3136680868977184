// ABOUTME: Tests for centralized error handling middleware
// ABOUTME: Verifies error responses are secure and consistent
package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "discussion-fetcher/utils/errors"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, apperrors.SecureHTTPResponse) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler(quietLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/discussions/x/fetch", nil)
	rec := httptest.NewRecorder()
	e.HTTPErrorHandler(err, e.NewContext(req, rec))

	var resp apperrors.SecureHTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCustomHTTPErrorHandler(t *testing.T) {
	tests := map[string]struct {
		err           error
		wantStatus    int
		wantCode      string
		wantMessage   string
		hiddenMessage string
		wantRetryable bool
	}{
		"validation error shows message": {
			err:         apperrors.NewValidationContextError("content_id must be a UUID", "handler", "DiscussionHandler", "Fetch", nil),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "content_id must be a UUID",
		},
		"not found error shows message": {
			err:         apperrors.NewNotFoundContextError("discussion not found", "handler", "DiscussionHandler", "Get", nil),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND_ERROR",
			wantMessage: "discussion not found",
		},
		"database error hides details": {
			err:           apperrors.NewDatabaseContextError("pgx: connection refused", "service", "Ingestion", "Upsert", errors.New("dial tcp"), nil),
			wantStatus:    http.StatusInternalServerError,
			wantCode:      "DATABASE_ERROR",
			hiddenMessage: "pgx: connection refused",
		},
		"wrapped app error is unwrapped": {
			err:         fmt.Errorf("handler: %w", apperrors.NewValidationContextError("bad cap", "handler", "DiscussionHandler", "Fetch", nil)),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_ERROR",
			wantMessage: "bad cap",
		},
		"echo client error keeps message": {
			err:         echo.NewHTTPError(http.StatusUnauthorized, "missing service token"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "HTTP_ERROR",
			wantMessage: "missing service token",
		},
		"echo server error hides message": {
			err:           echo.NewHTTPError(http.StatusServiceUnavailable, "redis down"),
			wantStatus:    http.StatusServiceUnavailable,
			wantCode:      "HTTP_ERROR",
			hiddenMessage: "redis down",
			wantRetryable: true,
		},
		"unknown error is internal": {
			err:           errors.New("something unexpected"),
			wantStatus:    http.StatusInternalServerError,
			wantCode:      "INTERNAL_ERROR",
			hiddenMessage: "something unexpected",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec, resp := handleError(t, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
			assert.Equal(t, tc.wantRetryable, resp.Error.Retryable)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, resp.Error.Message)
			}
			if tc.hiddenMessage != "" {
				assert.NotEqual(t, tc.hiddenMessage, resp.Error.Message)
				assert.NotEmpty(t, resp.Error.Message)
			}
		})
	}
}

func TestCustomHTTPErrorHandler_ErrorIDPresent(t *testing.T) {
	_, resp := handleError(t, apperrors.NewInternalContextError("boom", "handler", "Test", "Op", nil, nil))
	assert.NotEmpty(t, resp.Error.ErrorID)
}

func TestCustomHTTPErrorHandler_ResponseCommitted(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler(quietLogger())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Response().WriteHeader(http.StatusOK)

	e.HTTPErrorHandler(apperrors.NewInternalContextError("late", "handler", "Test", "Op", nil, nil), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
