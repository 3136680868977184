package config

import "time"

// Config aggregates all service configuration blocks.
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	Fetch      FetchConfig      `json:"fetch"`
	HackerNews HackerNewsConfig `json:"hackernews"`
	Techmeme   TechmemeConfig   `json:"techmeme"`
	Reddit     RedditConfig     `json:"reddit"`
	Retry      RetryConfig      `json:"retry"`
	Consumer   ConsumerConfig   `json:"consumer"`
	Auth       AuthConfig       `json:"auth"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host        string `json:"host" env:"DB_HOST" default:"localhost"`
	Port        string `json:"port" env:"DB_PORT" default:"5432"`
	User        string `json:"user" env:"DB_USER" default:"devuser"`
	Password    string `json:"-" env:"DB_PASSWORD" default:"devpassword"`
	Name        string `json:"name" env:"DB_NAME" default:"devdb"`
	SSLMode     string `json:"ssl_mode" env:"DB_SSL_MODE" default:"prefer"`
	SSLRootCert string `json:"ssl_root_cert" env:"DB_SSL_ROOT_CERT"`
	SSLCert     string `json:"ssl_cert" env:"DB_SSL_CERT"`
	SSLKey      string `json:"-" env:"DB_SSL_KEY"`
	MaxConns    int    `json:"max_conns" env:"DB_MAX_CONNS" default:"10"`
	MinConns    int    `json:"min_conns" env:"DB_MIN_CONNS" default:"2"`
}

// FetchConfig holds settings shared by every discussion source.
type FetchConfig struct {
	DefaultCommentCap int    `json:"default_comment_cap" env:"DISCUSSION_COMMENT_CAP" default:"200"`
	MaxCommentCap     int    `json:"max_comment_cap" env:"DISCUSSION_MAX_COMMENT_CAP" default:"1000"`
	UserAgent         string `json:"user_agent" env:"DISCUSSION_USER_AGENT" default:"Mozilla/5.0 (compatible; AltDiscussionBot/1.0; +https://alt.example.com/bot)"`
	CompactBudget     int    `json:"compact_budget" env:"COMPACT_TEXT_BUDGET" default:"400"`
}

type HackerNewsConfig struct {
	APIBaseURL          string        `json:"api_base_url" env:"HN_API_BASE_URL" default:"https://hacker-news.firebaseio.com/v0"`
	RequestTimeout      time.Duration `json:"request_timeout" env:"HN_REQUEST_TIMEOUT" default:"10s"`
	PrefetchConcurrency int           `json:"prefetch_concurrency" env:"HN_PREFETCH_CONCURRENCY" default:"4"`
	MinInterval         time.Duration `json:"min_interval" env:"HN_MIN_INTERVAL" default:"0s"`
}

type TechmemeConfig struct {
	RequestTimeout time.Duration `json:"request_timeout" env:"TECHMEME_REQUEST_TIMEOUT" default:"15s"`
	PageCacheSize  int           `json:"page_cache_size" env:"TECHMEME_PAGE_CACHE_SIZE" default:"64"`
	PageCacheTTL   time.Duration `json:"page_cache_ttl" env:"TECHMEME_PAGE_CACHE_TTL" default:"5m"`
	MinInterval    time.Duration `json:"min_interval" env:"TECHMEME_MIN_INTERVAL" default:"1s"`
}

type RedditConfig struct {
	ClientID          string        `json:"client_id" env:"REDDIT_CLIENT_ID"`
	ClientSecret      string        `json:"-" env:"REDDIT_CLIENT_SECRET"`
	Username          string        `json:"username" env:"REDDIT_USERNAME"`
	Password          string        `json:"-" env:"REDDIT_PASSWORD"`
	APIBaseURL        string        `json:"api_base_url" env:"REDDIT_API_BASE_URL" default:"https://oauth.reddit.com"`
	TokenURL          string        `json:"token_url" env:"REDDIT_TOKEN_URL" default:"https://www.reddit.com/api/v1/access_token"`
	RequestTimeout    time.Duration `json:"request_timeout" env:"REDDIT_REQUEST_TIMEOUT" default:"20s"`
	MoreChildrenLimit int           `json:"more_children_limit" env:"REDDIT_MORE_CHILDREN_LIMIT" default:"100"`
}

// Configured reports whether credentials for the forum API are present.
func (c RedditConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type RetryConfig struct {
	MaxAttempts   int           `json:"max_attempts" env:"RETRY_MAX_ATTEMPTS" default:"3"`
	BaseDelay     time.Duration `json:"base_delay" env:"RETRY_BASE_DELAY" default:"200ms"`
	MaxDelay      time.Duration `json:"max_delay" env:"RETRY_MAX_DELAY" default:"5s"`
	BackoffFactor float64       `json:"backoff_factor" env:"RETRY_BACKOFF_FACTOR" default:"2.0"`
	JitterFactor  float64       `json:"jitter_factor" env:"RETRY_JITTER_FACTOR" default:"0.1"`
}

type ConsumerConfig struct {
	Enabled      bool          `json:"enabled" env:"CONSUMER_ENABLED" default:"false"`
	RedisURL     string        `json:"redis_url" env:"REDIS_STREAMS_URL" default:"redis://localhost:6379"`
	StreamKey    string        `json:"stream_key" env:"CONSUMER_STREAM_KEY" default:"alt:events:discussions"`
	GroupName    string        `json:"group_name" env:"CONSUMER_GROUP" default:"discussion-fetcher-group"`
	ConsumerName string        `json:"consumer_name" env:"CONSUMER_NAME"`
	BatchSize    int           `json:"batch_size" env:"CONSUMER_BATCH_SIZE" default:"10"`
	BlockTimeout time.Duration `json:"block_timeout" env:"CONSUMER_BLOCK_TIMEOUT" default:"5s"`
	ClaimIdle    time.Duration `json:"claim_idle_time" env:"CONSUMER_CLAIM_IDLE_TIME" default:"30s"`
}

type AuthConfig struct {
	Enabled  bool   `json:"enabled" env:"SERVICE_AUTH_ENABLED" default:"false"`
	Secret   string `json:"-" env:"SERVICE_TOKEN_SECRET"`
	Issuer   string `json:"issuer" env:"SERVICE_TOKEN_ISSUER" default:"alt-backend"`
	Audience string `json:"audience" env:"SERVICE_TOKEN_AUDIENCE" default:"discussion-fetcher"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            9300,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    120 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "devuser",
			Password: "devpassword",
			Name:     "devdb",
			SSLMode:  "prefer",
			MaxConns: 10,
			MinConns: 2,
		},
		Fetch: FetchConfig{
			DefaultCommentCap: 200,
			MaxCommentCap:     1000,
			UserAgent:         "Mozilla/5.0 (compatible; AltDiscussionBot/1.0; +https://alt.example.com/bot)",
			CompactBudget:     400,
		},
		HackerNews: HackerNewsConfig{
			APIBaseURL:          "https://hacker-news.firebaseio.com/v0",
			RequestTimeout:      10 * time.Second,
			PrefetchConcurrency: 4,
		},
		Techmeme: TechmemeConfig{
			RequestTimeout: 15 * time.Second,
			PageCacheSize:  64,
			PageCacheTTL:   5 * time.Minute,
			MinInterval:    time.Second,
		},
		Reddit: RedditConfig{
			APIBaseURL:        "https://oauth.reddit.com",
			TokenURL:          "https://www.reddit.com/api/v1/access_token",
			RequestTimeout:    20 * time.Second,
			MoreChildrenLimit: 100,
		},
		Retry: RetryConfig{
			MaxAttempts:   3,
			BaseDelay:     200 * time.Millisecond,
			MaxDelay:      5 * time.Second,
			BackoffFactor: 2.0,
			JitterFactor:  0.1,
		},
		Consumer: ConsumerConfig{
			RedisURL:     "redis://localhost:6379",
			StreamKey:    "alt:events:discussions",
			GroupName:    "discussion-fetcher-group",
			BatchSize:    10,
			BlockTimeout: 5 * time.Second,
			ClaimIdle:    30 * time.Second,
		},
		Auth: AuthConfig{
			Issuer:   "alt-backend",
			Audience: "discussion-fetcher",
		},
	}
}
