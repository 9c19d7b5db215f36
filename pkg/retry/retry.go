package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/alumniconnect/portal-api/pkg/logger"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// Config holds retry configuration
type Config struct {
	// MaxTries counts the first attempt
	MaxTries     uint
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// Jitter is the randomization factor applied to each delay, 0 disables it
	Jitter float64
}

// DefaultConfig returns sensible retry defaults
func DefaultConfig() Config {
	return Config{
		MaxTries:     4,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.25,
	}
}

// StartupConfig tolerates dependencies (database, Redis) that come up after the API container
func StartupConfig() Config {
	config := DefaultConfig()
	config.MaxTries = 8
	config.InitialDelay = 500 * time.Millisecond
	config.MaxDelay = 10 * time.Second
	return config
}

// Permanent marks err as not worth retrying
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (c Config) backOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.InitialDelay
	b.MaxInterval = c.MaxDelay
	b.Multiplier = c.Multiplier
	b.RandomizationFactor = c.Jitter
	return b
}

// DoWithResult executes fn with exponential backoff and returns its result
func DoWithResult[T any](ctx context.Context, config Config, operation string, fn func() (T, error)) (T, error) {
	attempt := 0
	result, err := backoff.Retry(ctx, func() (T, error) {
		attempt++
		return fn()
	},
		backoff.WithBackOff(config.backOff()),
		backoff.WithMaxTries(config.MaxTries),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, delay time.Duration) {
			logger.Warn("Operation failed, retrying",
				zap.String("operation", operation),
				zap.Int("attempt", attempt),
				zap.Uint("max_tries", config.MaxTries),
				zap.Duration("delay", delay),
				zap.Error(err))
		}),
	)
	if err != nil {
		logger.Error("Operation failed after retries",
			zap.String("operation", operation),
			zap.Int("attempts", attempt),
			zap.Error(err))
		return result, fmt.Errorf("%s failed after %d attempts: %w", operation, attempt, err)
	}

	if attempt > 1 {
		logger.Info("Operation succeeded after retry",
			zap.String("operation", operation),
			zap.Int("attempt", attempt))
	}
	return result, nil
}
