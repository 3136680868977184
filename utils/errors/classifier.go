// ABOUTME: Error classifier for timeout detection and upstream HTTP status codes
// ABOUTME: Shared by the fetchers, the ingestion orchestrator and the HTTP layer
package errors

import (
	"context"
	"errors"
	"net"
)

// StatusCoder is implemented by errors that carry an upstream HTTP status code.
type StatusCoder interface {
	HTTPStatus() int
}

// StatusCode returns the HTTP status carried anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus(), true
	}
	return 0, false
}

// IsTimeout reports whether err is a transport timeout: a deadline, or a net.Error
// (including *url.Error from net/http) that timed out.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

// IsRetryableHTTPStatus determines if an HTTP status code indicates a retryable condition.
func IsRetryableHTTPStatus(status int) bool {
	switch {
	case status >= 500 && status <= 599:
		return true
	case status == 408: // Request Timeout
		return true
	case status == 429: // Too Many Requests
		return true
	default:
		return false
	}
}
