// ABOUTME: Fetches Techmeme cluster pages over plain HTTP
// ABOUTME: Bodies are kept in a small expiring LRU keyed by page URL
package techmeme_web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"discussion-fetcher/config"
	"discussion-fetcher/utils"
	"discussion-fetcher/utils/rate_limiter"
)

const maxPageBytes = 4 << 20

// StatusError is a non-2xx page response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("techmeme page %s returned status %d", e.URL, e.StatusCode)
}

func (e *StatusError) HTTPStatus() int { return e.StatusCode }

type Client struct {
	httpClient *http.Client
	limiter    *rate_limiter.HostRateLimiter
	cache      *expirable.LRU[string, []byte]
}

func NewClient(cfg config.TechmemeConfig, userAgent string) *Client {
	return NewClientWithHTTP(
		utils.NewHTTPClient(cfg.RequestTimeout, userAgent),
		rate_limiter.NewHostRateLimiter(cfg.MinInterval, 1),
		cfg.PageCacheSize,
		cfg.PageCacheTTL,
	)
}

// NewClientWithHTTP builds a client around httpClient. A non-positive cacheSize disables caching.
func NewClientWithHTTP(httpClient *http.Client, limiter *rate_limiter.HostRateLimiter, cacheSize int, ttl time.Duration) *Client {
	c := &Client{httpClient: httpClient, limiter: limiter}
	if cacheSize > 0 {
		c.cache = expirable.NewLRU[string, []byte](cacheSize, nil, ttl)
	}
	return c
}

// FetchPage returns the HTML body of pageURL. pageURL should already be fragment free.
func (c *Client) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(pageURL); ok {
			return body, nil
		}
	}

	if err := c.limiter.WaitForHost(ctx, pageURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build techmeme request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPageBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: pageURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read techmeme page: %w", err)
	}

	if c.cache != nil {
		c.cache.Add(pageURL, body)
	}
	return body, nil
}
