// ABOUTME: Logger configuration loaded from the environment
// ABOUTME: LOG_LEVEL, SERVICE_NAME and OTEL_ENABLED drive the unified logger
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig is the logger part of the service configuration
type LoggerConfig struct {
	Level       string
	ServiceName string
	EnableOTel  bool
}

// LoadLoggerConfigFromEnv loads configuration from environment variables
func LoadLoggerConfigFromEnv() *LoggerConfig {
	return &LoggerConfig{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "discussion-fetcher"),
		EnableOTel:  getEnvOrDefault("OTEL_ENABLED", "false") == "true",
	}
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
