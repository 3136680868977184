// ABOUTME: slog-based unified logger writing lower-cased JSON records to stdout
// ABOUTME: Optionally fans out to OpenTelemetry through the otelslog bridge
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the process-wide logger used by drivers. main replaces it at startup;
// the default keeps tests from hitting a nil logger.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))

// UnifiedLogger wraps a JSON slog logger pre-tagged with service and version
type UnifiedLogger struct {
	logger      *slog.Logger
	serviceName string
}

func jsonHandler(output io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: "level", Value: slog.StringValue(strings.ToLower(lvl.String()))}
				}
			}
			return a
		},
	})
}

// NewUnifiedLoggerWithLevel creates a UnifiedLogger writing to output at the given level
func NewUnifiedLoggerWithLevel(output io.Writer, serviceName, level string) *UnifiedLogger {
	handler := NewTraceContextHandler(jsonHandler(output, ParseLevel(level)))
	return &UnifiedLogger{
		logger:      slog.New(handler).With("service", serviceName, "version", "1.0.0"),
		serviceName: serviceName,
	}
}

// NewUnifiedLoggerWithOTel creates a UnifiedLogger that also exports records through the
// global OTel logger provider when enableOTel is set
func NewUnifiedLoggerWithOTel(output io.Writer, serviceName, level string, enableOTel bool) *UnifiedLogger {
	if !enableOTel {
		return NewUnifiedLoggerWithLevel(output, serviceName, level)
	}

	stdout := NewTraceContextHandler(jsonHandler(output, ParseLevel(level)))
	handler := NewMultiHandler(serviceName, stdout)
	return &UnifiedLogger{
		logger:      slog.New(handler).With("service", serviceName, "version", "1.0.0"),
		serviceName: serviceName,
	}
}

// Init builds the logger from cfg, installs it as Logger and slog's default, and returns it.
func Init(cfg *LoggerConfig) *slog.Logger {
	ul := NewUnifiedLoggerWithOTel(os.Stdout, cfg.ServiceName, cfg.Level, cfg.EnableOTel)
	Logger = ul.Slog()
	slog.SetDefault(Logger)
	return Logger
}

// Slog returns the underlying *slog.Logger
func (ul *UnifiedLogger) Slog() *slog.Logger {
	return ul.logger
}

// WithContext returns a logger carrying request id and operation from ctx
func (ul *UnifiedLogger) WithContext(ctx context.Context) *slog.Logger {
	return FromContext(ctx, ul.logger)
}
