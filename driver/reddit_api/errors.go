package reddit_api

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("reddit api %s: status %d: %s", e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("reddit api %s: status %d", e.URL, e.StatusCode)
}

func (e *APIError) HTTPStatus() int { return e.StatusCode }

func (e *APIError) RateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }
func (e *APIError) Forbidden() bool   { return e.StatusCode == http.StatusForbidden }
func (e *APIError) NotFound() bool    { return e.StatusCode == http.StatusNotFound }
func (e *APIError) BadRequest() bool  { return e.StatusCode == http.StatusBadRequest }
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}
