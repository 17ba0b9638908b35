package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), "op", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_GivesUp(t *testing.T) {
	calls := 0
	errTransient := errors.New("transient")
	err := New(fastConfig()).Execute(context.Background(), "op", func(context.Context) error {
		calls++
		return errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestExecute_NonRetryable(t *testing.T) {
	errFatal := errors.New("fatal")
	cfg := fastConfig()
	cfg.Retryable = func(err error) bool { return !errors.Is(err, errFatal) }

	calls := 0
	err := New(cfg).Execute(context.Background(), "op", func(context.Context) error {
		calls++
		return errFatal
	})
	assert.Equal(t, errFatal, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.BaseDelay = time.Hour
	cfg.MaxDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := New(cfg).Execute(ctx, "op", func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDelay(t *testing.T) {
	r := New(Config{BaseDelay: 10 * time.Millisecond, MaxDelay: 30 * time.Millisecond, Multiplier: 2})
	assert.Equal(t, 10*time.Millisecond, r.delay(0))
	assert.Equal(t, 20*time.Millisecond, r.delay(1))
	assert.Equal(t, 30*time.Millisecond, r.delay(5))

	r = New(Config{BaseDelay: 10 * time.Millisecond, Multiplier: 1, Jitter: true})
	d := r.delay(3)
	assert.GreaterOrEqual(t, d, 10*time.Millisecond)
	assert.LessOrEqual(t, d, 11*time.Millisecond)
}
