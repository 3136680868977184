// ABOUTME: Client for the Hacker News Firebase item API
// ABOUTME: One GET per item; a JSON null body means the item does not exist
package hackernews_api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"discussion-fetcher/config"
	"discussion-fetcher/utils"
	"discussion-fetcher/utils/rate_limiter"
)

const maxItemBodyBytes = 1 << 20

// ErrNotObject is returned when the item endpoint answers with something other than a JSON object.
var ErrNotObject = errors.New("hackernews item is not an object")

// Item is the subset of the item schema the comment walk reads.
type Item struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	By          string  `json:"by"`
	Text        string  `json:"text"`
	Time        int64   `json:"time"`
	Kids        []int64 `json:"kids"`
	Parent      int64   `json:"parent"`
	Deleted     bool    `json:"deleted"`
	Dead        bool    `json:"dead"`
	Descendants *int    `json:"descendants"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
}

// APIError reports a non-2xx answer from the item endpoint.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hackernews api returned status %d for %s", e.StatusCode, e.URL)
}

func (e *APIError) HTTPStatus() int { return e.StatusCode }

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate_limiter.HostRateLimiter
}

// NewClient builds a client from configuration.
func NewClient(cfg config.HackerNewsConfig, userAgent string) *Client {
	return NewClientWithHTTP(
		cfg.APIBaseURL,
		utils.NewHTTPClient(cfg.RequestTimeout, userAgent),
		rate_limiter.NewHostRateLimiter(cfg.MinInterval, 1),
	)
}

// NewClientWithHTTP is used by tests to point the client at a stub server. limiter may be nil.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, limiter *rate_limiter.HostRateLimiter) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// ItemURL is the API location of an item.
func (c *Client) ItemURL(id int64) string {
	return c.baseURL + "/item/" + strconv.FormatInt(id, 10) + ".json"
}

// GetItem fetches one item. A missing item yields (nil, nil).
func (c *Client) GetItem(ctx context.Context, id int64) (*Item, error) {
	endpoint := c.ItemURL(id)

	if err := c.limiter.WaitForHost(ctx, endpoint); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build hackernews request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxItemBodyBytes))
		return nil, &APIError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxItemBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read hackernews item %d: %w", id, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	if body[0] != '{' {
		return nil, fmt.Errorf("item %d: %w", id, ErrNotObject)
	}

	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("decode hackernews item %d: %w", id, err)
	}
	return &item, nil
}
