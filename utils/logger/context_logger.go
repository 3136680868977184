package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	OperationKey ContextKey = "operation"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationKey, operation)
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	s, _ := ctx.Value(RequestIDKey).(string)
	return s
}

// FromContext decorates base with the request id and operation found in ctx.
func FromContext(ctx context.Context, base *slog.Logger) *slog.Logger {
	var fields []any
	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		fields = append(fields, "request_id", requestID)
	}
	if operation := ctx.Value(OperationKey); operation != nil {
		fields = append(fields, "operation", operation)
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}
