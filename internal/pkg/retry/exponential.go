package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // upper bound for any delay
	Multiplier float64       // growth factor between delays
	Jitter     bool          // add up to 10% random delay
	Retryable  func(error) bool
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs a function with exponential backoff between attempts
type Retrier struct {
	config Config
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{config: config}
}

// Execute calls fn until it succeeds, returns a non-retryable error, runs out of
// attempts or ctx is done
func (r *Retrier) Execute(ctx context.Context, name string, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return fmt.Errorf("%w (last error: %v)", err, lastErr)
			}
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("Operation succeeded after retries",
					logger.String("operation", name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.config.Retryable != nil && !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		logger.Debug("Operation failed, retrying",
			logger.String("operation", name),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Err(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr)
		case <-timer.C:
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
