package config

import (
	"fmt"
	"net/url"
	"time"
)

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive: %v", config.Server.ShutdownTimeout)
	}

	if config.Database.MaxConns <= 0 || config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("invalid database pool size: min=%d max=%d", config.Database.MinConns, config.Database.MaxConns)
	}

	if config.Fetch.MaxCommentCap <= 0 {
		return fmt.Errorf("max comment cap must be positive: %d", config.Fetch.MaxCommentCap)
	}

	if config.Fetch.DefaultCommentCap <= 0 || config.Fetch.DefaultCommentCap > config.Fetch.MaxCommentCap {
		return fmt.Errorf("default comment cap must be in (0, %d]: %d", config.Fetch.MaxCommentCap, config.Fetch.DefaultCommentCap)
	}

	if config.Fetch.CompactBudget <= 1 {
		return fmt.Errorf("compact text budget must be greater than 1: %d", config.Fetch.CompactBudget)
	}

	if config.Fetch.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}

	for name, timeout := range map[string]time.Duration{
		"hackernews request timeout": config.HackerNews.RequestTimeout,
		"techmeme request timeout":   config.Techmeme.RequestTimeout,
		"reddit request timeout":     config.Reddit.RequestTimeout,
	} {
		if timeout <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if _, err := url.ParseRequestURI(config.HackerNews.APIBaseURL); err != nil {
		return fmt.Errorf("invalid hackernews api base url: %w", err)
	}

	if config.HackerNews.PrefetchConcurrency < 1 {
		return fmt.Errorf("hackernews prefetch concurrency must be at least 1: %d", config.HackerNews.PrefetchConcurrency)
	}

	if config.Techmeme.PageCacheSize <= 0 {
		return fmt.Errorf("techmeme page cache size must be positive: %d", config.Techmeme.PageCacheSize)
	}

	if config.Reddit.ClientID != "" && config.Reddit.ClientSecret == "" {
		return fmt.Errorf("reddit client secret is required when client id is set")
	}

	if (config.Reddit.Username == "") != (config.Reddit.Password == "") {
		return fmt.Errorf("reddit username and password must be set together")
	}

	if config.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry max attempts must be positive: %d", config.Retry.MaxAttempts)
	}

	if config.Retry.BackoffFactor <= 1.0 {
		return fmt.Errorf("backoff factor must be greater than 1.0: %f", config.Retry.BackoffFactor)
	}

	if config.Retry.JitterFactor < 0 || config.Retry.JitterFactor > 1 {
		return fmt.Errorf("jitter factor must be between 0 and 1: %f", config.Retry.JitterFactor)
	}

	if config.Consumer.Enabled {
		if config.Consumer.StreamKey == "" || config.Consumer.GroupName == "" {
			return fmt.Errorf("consumer stream key and group are required when the consumer is enabled")
		}
		if config.Consumer.BatchSize <= 0 {
			return fmt.Errorf("consumer batch size must be positive: %d", config.Consumer.BatchSize)
		}
	}

	if config.Auth.Enabled && len(config.Auth.Secret) < 32 {
		return fmt.Errorf("service token secret must be at least 32 bytes when auth is enabled")
	}

	return nil
}
