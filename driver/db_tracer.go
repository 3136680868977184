package driver

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	logger "discussion-fetcher/utils/logger"
)

const queryDurationThreshold = 100 * time.Millisecond

type queryStartKey struct{}

// QueryTracer logs statements slower than queryDurationThreshold.
type QueryTracer struct{}

func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: time.Now(), sql: data.SQL})
}

func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}

	if duration := time.Since(start.at); duration > queryDurationThreshold {
		logger.Logger.WarnContext(ctx, "slow query",
			"duration_ms", duration.Milliseconds(),
			"sql", start.sql,
			"rows", data.CommandTag.RowsAffected(),
			"error", data.Err)
	}
}

type queryStart struct {
	at  time.Time
	sql string
}
