// Package retry provides a bounded fixed-delay retry loop for startup
// dependencies that may not be reachable yet.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Default values matching the startup readiness protocol.
const (
	DefaultMaxAttempts = 10
	DefaultDelay       = 2 * time.Second
)

// Config holds retry parameters.
type Config struct {
	// MaxAttempts bounds the total number of calls to the operation.
	// Default: 10
	MaxAttempts int

	// Delay is the fixed wait between failed attempts.
	// Default: 2 seconds
	Delay time.Duration

	// OnRetry is called after each failed attempt with the attempt
	// number (1-based) and the error. If nil, failures are silent.
	OnRetry func(attempt int, err error)
}

// DefaultConfig returns the default retry configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultDelay,
	}
}

// Do calls op until it succeeds, the attempt budget is exhausted, or the
// context is cancelled. It sleeps cfg.Delay between attempts but not after
// the final one. The returned error is the last operation error wrapped
// with the attempt count, or ctx.Err() if cancelled mid-wait.
func Do(ctx context.Context, cfg *Config, op func(ctx context.Context) error) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr)
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.Delay):
		}
	}

	return fmt.Errorf("giving up after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
