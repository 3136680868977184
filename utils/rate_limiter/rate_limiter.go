// ABOUTME: Per-host request pacing for outbound fetches
// ABOUTME: One token-bucket limiter per host, created on first use
package rate_limiter

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type HostRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	interval time.Duration
	burst    int
}

// NewHostRateLimiter allows one request per interval per host, with the given burst.
// A non-positive interval disables pacing.
func NewHostRateLimiter(interval time.Duration, burst int) *HostRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
		burst:    burst,
	}
}

// WaitForHost blocks until a request to urlStr's host is allowed or ctx is done.
func (h *HostRateLimiter) WaitForHost(ctx context.Context, urlStr string) error {
	if h == nil || h.interval <= 0 {
		return ctx.Err()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return err
	}

	host := strings.ToLower(parsedURL.Host)
	if host == "" {
		return &url.Error{Op: "parse", URL: urlStr, Err: errors.New("missing host in URL")}
	}

	return h.getLimiterForHost(host).Wait(ctx)
}

func (h *HostRateLimiter) getLimiterForHost(host string) *rate.Limiter {
	h.mu.RLock()
	limiter, exists := h.limiters[host]
	h.mu.RUnlock()

	if exists {
		return limiter
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if limiter, exists := h.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Every(h.interval), h.burst)
	h.limiters[host] = limiter
	return limiter
}
