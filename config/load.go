package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadConfig builds the configuration from defaults and overrides provided via environment variables.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func loadFromEnv(config *Config) error {
	loaders := []struct {
		name string
		fn   func() error
	}{
		{"server", func() error { return loadServerConfig(&config.Server) }},
		{"database", func() error { return loadDatabaseConfig(&config.Database) }},
		{"fetch", func() error { return loadFetchConfig(&config.Fetch) }},
		{"hackernews", func() error { return loadHackerNewsConfig(&config.HackerNews) }},
		{"techmeme", func() error { return loadTechmemeConfig(&config.Techmeme) }},
		{"reddit", func() error { return loadRedditConfig(&config.Reddit) }},
		{"retry", func() error { return loadRetryConfig(&config.Retry) }},
		{"consumer", func() error { return loadConsumerConfig(&config.Consumer) }},
		{"auth", func() error { return loadAuthConfig(&config.Auth) }},
	}

	for _, l := range loaders {
		if err := l.fn(); err != nil {
			return fmt.Errorf("failed to load %s config: %w", l.name, err)
		}
	}
	return nil
}

func loadServerConfig(cfg *ServerConfig) error {
	var err error
	if cfg.Port, err = parseIntEnv("SERVER_PORT", cfg.Port); err != nil {
		return err
	}
	if cfg.ShutdownTimeout, err = parseDurationEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return err
	}
	if cfg.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return err
	}
	if cfg.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return err
	}
	return nil
}

func loadDatabaseConfig(cfg *DatabaseConfig) error {
	var err error
	cfg.Host = parseStringEnv("DB_HOST", cfg.Host)
	cfg.Port = parseStringEnv("DB_PORT", cfg.Port)
	cfg.User = parseStringEnv("DB_USER", cfg.User)
	cfg.Password = parseStringEnv("DB_PASSWORD", cfg.Password)
	cfg.Name = parseStringEnv("DB_NAME", cfg.Name)
	cfg.SSLMode = parseStringEnv("DB_SSL_MODE", cfg.SSLMode)
	cfg.SSLRootCert = parseStringEnv("DB_SSL_ROOT_CERT", cfg.SSLRootCert)
	cfg.SSLCert = parseStringEnv("DB_SSL_CERT", cfg.SSLCert)
	cfg.SSLKey = parseStringEnv("DB_SSL_KEY", cfg.SSLKey)
	if cfg.MaxConns, err = parseIntEnv("DB_MAX_CONNS", cfg.MaxConns); err != nil {
		return err
	}
	if cfg.MinConns, err = parseIntEnv("DB_MIN_CONNS", cfg.MinConns); err != nil {
		return err
	}
	return nil
}

func loadFetchConfig(cfg *FetchConfig) error {
	var err error
	if cfg.DefaultCommentCap, err = parseIntEnv("DISCUSSION_COMMENT_CAP", cfg.DefaultCommentCap); err != nil {
		return err
	}
	if cfg.MaxCommentCap, err = parseIntEnv("DISCUSSION_MAX_COMMENT_CAP", cfg.MaxCommentCap); err != nil {
		return err
	}
	if cfg.CompactBudget, err = parseIntEnv("COMPACT_TEXT_BUDGET", cfg.CompactBudget); err != nil {
		return err
	}
	cfg.UserAgent = parseStringEnv("DISCUSSION_USER_AGENT", cfg.UserAgent)
	return nil
}

func loadHackerNewsConfig(cfg *HackerNewsConfig) error {
	var err error
	cfg.APIBaseURL = strings.TrimRight(parseStringEnv("HN_API_BASE_URL", cfg.APIBaseURL), "/")
	if cfg.RequestTimeout, err = parseDurationEnv("HN_REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	if cfg.PrefetchConcurrency, err = parseIntEnv("HN_PREFETCH_CONCURRENCY", cfg.PrefetchConcurrency); err != nil {
		return err
	}
	if cfg.MinInterval, err = parseDurationEnv("HN_MIN_INTERVAL", cfg.MinInterval); err != nil {
		return err
	}
	return nil
}

func loadTechmemeConfig(cfg *TechmemeConfig) error {
	var err error
	if cfg.RequestTimeout, err = parseDurationEnv("TECHMEME_REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	if cfg.PageCacheSize, err = parseIntEnv("TECHMEME_PAGE_CACHE_SIZE", cfg.PageCacheSize); err != nil {
		return err
	}
	if cfg.PageCacheTTL, err = parseDurationEnv("TECHMEME_PAGE_CACHE_TTL", cfg.PageCacheTTL); err != nil {
		return err
	}
	if cfg.MinInterval, err = parseDurationEnv("TECHMEME_MIN_INTERVAL", cfg.MinInterval); err != nil {
		return err
	}
	return nil
}

func loadRedditConfig(cfg *RedditConfig) error {
	var err error
	cfg.ClientID = parseStringEnv("REDDIT_CLIENT_ID", cfg.ClientID)
	cfg.ClientSecret = parseStringEnv("REDDIT_CLIENT_SECRET", cfg.ClientSecret)
	cfg.Username = parseStringEnv("REDDIT_USERNAME", cfg.Username)
	cfg.Password = parseStringEnv("REDDIT_PASSWORD", cfg.Password)
	cfg.APIBaseURL = strings.TrimRight(parseStringEnv("REDDIT_API_BASE_URL", cfg.APIBaseURL), "/")
	cfg.TokenURL = parseStringEnv("REDDIT_TOKEN_URL", cfg.TokenURL)
	if cfg.RequestTimeout, err = parseDurationEnv("REDDIT_REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	if cfg.MoreChildrenLimit, err = parseIntEnv("REDDIT_MORE_CHILDREN_LIMIT", cfg.MoreChildrenLimit); err != nil {
		return err
	}
	return nil
}

func loadRetryConfig(cfg *RetryConfig) error {
	var err error
	if cfg.MaxAttempts, err = parseIntEnv("RETRY_MAX_ATTEMPTS", cfg.MaxAttempts); err != nil {
		return err
	}
	if cfg.BaseDelay, err = parseDurationEnv("RETRY_BASE_DELAY", cfg.BaseDelay); err != nil {
		return err
	}
	if cfg.MaxDelay, err = parseDurationEnv("RETRY_MAX_DELAY", cfg.MaxDelay); err != nil {
		return err
	}
	if cfg.BackoffFactor, err = parseFloatEnv("RETRY_BACKOFF_FACTOR", cfg.BackoffFactor); err != nil {
		return err
	}
	if cfg.JitterFactor, err = parseFloatEnv("RETRY_JITTER_FACTOR", cfg.JitterFactor); err != nil {
		return err
	}
	return nil
}

func loadConsumerConfig(cfg *ConsumerConfig) error {
	var err error
	if cfg.Enabled, err = parseBoolEnv("CONSUMER_ENABLED", cfg.Enabled); err != nil {
		return err
	}
	cfg.RedisURL = parseStringEnv("REDIS_STREAMS_URL", cfg.RedisURL)
	cfg.StreamKey = parseStringEnv("CONSUMER_STREAM_KEY", cfg.StreamKey)
	cfg.GroupName = parseStringEnv("CONSUMER_GROUP", cfg.GroupName)
	cfg.ConsumerName = parseStringEnv("CONSUMER_NAME", cfg.ConsumerName)
	if cfg.BatchSize, err = parseIntEnv("CONSUMER_BATCH_SIZE", cfg.BatchSize); err != nil {
		return err
	}
	if cfg.BlockTimeout, err = parseDurationEnv("CONSUMER_BLOCK_TIMEOUT", cfg.BlockTimeout); err != nil {
		return err
	}
	if cfg.ClaimIdle, err = parseDurationEnv("CONSUMER_CLAIM_IDLE_TIME", cfg.ClaimIdle); err != nil {
		return err
	}
	return nil
}

func loadAuthConfig(cfg *AuthConfig) error {
	var err error
	if cfg.Enabled, err = parseBoolEnv("SERVICE_AUTH_ENABLED", cfg.Enabled); err != nil {
		return err
	}
	cfg.Secret = parseStringEnv("SERVICE_TOKEN_SECRET", cfg.Secret)
	cfg.Issuer = parseStringEnv("SERVICE_TOKEN_ISSUER", cfg.Issuer)
	cfg.Audience = parseStringEnv("SERVICE_TOKEN_AUDIENCE", cfg.Audience)
	return nil
}

func parseStringEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return d, nil
	}
	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return i, nil
	}
	return defaultValue, nil
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return b, nil
	}
	return defaultValue, nil
}

func parseFloatEnv(key string, defaultValue float64) (float64, error) {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return f, nil
	}
	return defaultValue, nil
}
