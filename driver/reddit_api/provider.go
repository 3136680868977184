package reddit_api

import (
	"sync"

	"discussion-fetcher/config"
)

// Provider builds the authenticated client on first use and hands the same one
// to every later caller.
type Provider struct {
	once   sync.Once
	build  func() (*Client, error)
	client *Client
	err    error
}

func NewProvider(cfg config.RedditConfig, userAgent string) *Provider {
	return &Provider{build: func() (*Client, error) { return NewClient(cfg, userAgent) }}
}

// NewStaticProvider wraps an existing client.
func NewStaticProvider(client *Client) *Provider {
	return &Provider{build: func() (*Client, error) { return client, nil }}
}

// Client returns the shared client or domain.ErrRedditClientNotConfigured.
func (p *Provider) Client() (*Client, error) {
	p.once.Do(func() {
		p.client, p.err = p.build()
	})
	return p.client, p.err
}
