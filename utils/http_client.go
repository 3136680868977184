package utils

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient returns a pooled, traced client that stamps every request with userAgent.
// A zero timeout leaves deadlines to the request context.
func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewTransport(userAgent),
	}
}

// NewTransport builds the round tripper behind NewHTTPClient. Callers that need to
// layer their own transport on top (oauth2) start from here.
func NewTransport(userAgent string) http.RoundTripper {
	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &userAgentTransport{
		userAgent: userAgent,
		next:      otelhttp.NewTransport(base),
	}
}

type userAgentTransport struct {
	userAgent string
	next      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(clone)
}
