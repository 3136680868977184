package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"discussion-fetcher/utils/logger"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := map[string]struct {
		incoming string
		keep     bool
	}{
		"generated when absent":  {incoming: ""},
		"propagated when given":  {incoming: "req-123", keep: true},
		"replaced when too long": {incoming: strings.Repeat("x", 200)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := echo.New()
			var seen string
			e.Use(RequestIDMiddleware())
			e.GET("/health", func(c echo.Context) error {
				seen = logger.RequestIDFrom(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tc.incoming != "" {
				req.Header.Set(requestIDHeader, tc.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(requestIDHeader)
			assert.Equal(t, seen, got)
			if tc.keep {
				assert.Equal(t, tc.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLoggingMiddleware_WritesErrorResponse(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler(quietLogger())
	e.Use(LoggingMiddleware(quietLogger()))
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "nope")
}
