package driver

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"discussion-fetcher/config"
	logger "discussion-fetcher/utils/logger"
)

// PgxIface is the subset of *pgxpool.Pool the SQL functions need. pgxmock satisfies it too.
type PgxIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BuildConnectionString renders cfg as a postgres URL.
func BuildConnectionString(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.Name,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	if cfg.SSLRootCert != "" {
		q.Set("sslrootcert", cfg.SSLRootCert)
	}
	if cfg.SSLCert != "" {
		q.Set("sslcert", cfg.SSLCert)
	}
	if cfg.SSLKey != "" {
		q.Set("sslkey", cfg.SSLKey)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// InitDB opens and pings a connection pool.
func InitDB(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if err := ValidateSSLConfig(cfg); err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.ConnConfig.Tracer = &QueryTracer{}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to connect to database", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to ping database", "error", err, "sslmode", cfg.SSLMode)
		pool.Close()
		return nil, err
	}

	logger.Logger.InfoContext(ctx, "Connected to database pool",
		"host", cfg.Host,
		"database", cfg.Name,
		"max_conns", poolConfig.MaxConns,
		"min_conns", poolConfig.MinConns)

	return pool, nil
}
