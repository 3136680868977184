// ABOUTME: Exponential backoff retry with jitter
// ABOUTME: Used around database writes that can hit transient contention
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

type RetryConfig struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterFactor  float64
}

type ErrorClassifier func(error) bool

type Retrier struct {
	config      RetryConfig
	isRetryable ErrorClassifier
	logger      *slog.Logger
}

func NewRetrier(config RetryConfig, classifier ErrorClassifier, logger *slog.Logger) *Retrier {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Retrier{
		config:      config,
		isRetryable: classifier,
		logger:      logger,
	}
}

// Do runs operation until it succeeds, returns a non-retryable error, or attempts run out.
// A non-retryable error is returned as is.
func (r *Retrier) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		lastErr = operation(ctx)
		if lastErr == nil {
			if attempt > 1 {
				r.logger.InfoContext(ctx, "operation succeeded after retry", "attempt", attempt)
			}
			return nil
		}

		retryable := r.isRetryable != nil && r.isRetryable(lastErr)
		if !retryable {
			return lastErr
		}
		if attempt == r.config.MaxAttempts {
			break
		}

		delay := r.calculateDelay(attempt)
		r.logger.WarnContext(ctx, "operation attempt failed, backing off",
			"attempt", attempt,
			"error", lastErr,
			"retry_delay_ms", delay.Milliseconds())

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", r.config.MaxAttempts, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.BackoffFactor, float64(attempt-1))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	// ±JitterFactor/2 around the computed delay
	jitter := 1.0 + (rand.Float64()-0.5)*r.config.JitterFactor
	return time.Duration(delay * jitter)
}
