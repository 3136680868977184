package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestUnifiedLogger_JSONFormat(t *testing.T) {
	tests := map[string]struct {
		level   string
		logFn   func(l *slog.Logger)
		want    map[string]any
		silence bool
	}{
		"info record": {
			level: "info",
			logFn: func(l *slog.Logger) { l.Info("discussion stored", "content_id", "c1", "comments", 3) },
			want:  map[string]any{"level": "info", "msg": "discussion stored", "content_id": "c1", "comments": float64(3)},
		},
		"error record": {
			level: "debug",
			logFn: func(l *slog.Logger) { l.Error("fetch failed", "retryable", true) },
			want:  map[string]any{"level": "error", "msg": "fetch failed", "retryable": true},
		},
		"below level is dropped": {
			level:   "warn",
			logFn:   func(l *slog.Logger) { l.Info("quiet") },
			silence: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			ul := NewUnifiedLoggerWithLevel(&buf, "discussion-fetcher", tc.level)
			tc.logFn(ul.Slog())

			if tc.silence {
				assert.Zero(t, buf.Len())
				return
			}
			got := decodeLine(t, &buf)
			for k, v := range tc.want {
				assert.Equal(t, v, got[k], k)
			}
			assert.Equal(t, "discussion-fetcher", got["service"])
			assert.Equal(t, "1.0.0", got["version"])
		})
	}
}

func TestUnifiedLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	ul := NewUnifiedLoggerWithLevel(&buf, "svc", "info")

	ctx := WithOperation(WithRequestID(context.Background(), "req-1"), "fetch_discussion")
	ul.WithContext(ctx).Info("hello")

	got := decodeLine(t, &buf)
	assert.Equal(t, "req-1", got["request_id"])
	assert.Equal(t, "fetch_discussion", got["operation"])
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
}

func TestUnifiedLogger_AddsTraceContext(t *testing.T) {
	var buf bytes.Buffer
	ul := NewUnifiedLoggerWithLevel(&buf, "svc", "info")

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	ul.Slog().InfoContext(ctx, "inside span")
	span.End()

	got := decodeLine(t, &buf)
	assert.Equal(t, span.SpanContext().TraceID().String(), got["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), got["span_id"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
