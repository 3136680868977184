package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"discussion-fetcher/config"
	logger "discussion-fetcher/utils/logger"
	"discussion-fetcher/utils/otel"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the HTTP server and the stream consumer, then waits for a shutdown signal.
func Run(ctx context.Context) error {
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to shutdown OpenTelemetry: %v\n", err)
		}
	}()

	loggerConfig := logger.LoadLoggerConfigFromEnv()
	loggerConfig.EnableOTel = otelCfg.Enabled
	log := logger.Init(loggerConfig)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Info("Starting discussion-fetcher service",
		"log_level", loggerConfig.Level,
		"otel_enabled", otelCfg.Enabled,
		"consumer_enabled", cfg.Consumer.Enabled,
		"reddit_configured", cfg.Reddit.Configured(),
		"auth_enabled", cfg.Auth.Enabled)

	deps, cleanup, err := BuildDependencies(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	if err := deps.RedisConsumer.Start(consumerCtx); err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	httpServer := NewHTTPServer(deps, otelCfg.Enabled, otelCfg.ServiceName)
	StartHTTPServer(httpServer, cfg.Server.Port, log)

	log.Info("discussion-fetcher service started successfully")
	waitForShutdown(ctx, httpServer, deps, log)
	return nil
}

func waitForShutdown(ctx context.Context, httpServer *echo.Echo, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		log.Info("Shutting down discussion-fetcher service", "signal", sig.String())
	case <-ctx.Done():
		log.Info("Shutting down discussion-fetcher service", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down HTTP server", "error", err)
	}
	deps.RedisConsumer.Stop()

	log.Info("discussion-fetcher service stopped")
}
