package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/logger"
)

// ErrOpen is returned without calling the guarded function while the breaker is open
var ErrOpen = errors.New("circuit breaker is open")

// State represents the circuit breaker state
type State int

const (
	// StateClosed lets every call through
	StateClosed State = iota
	// StateOpen rejects calls until Timeout has passed
	StateOpen
	// StateHalfOpen lets a single probe through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds circuit breaker configuration
type Config struct {
	Name             string        // used in logs
	FailureThreshold uint32        // consecutive failures that open the breaker
	Timeout          time.Duration // how long the breaker stays open before a probe
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
	}
}

// CircuitBreaker stops calling a failing dependency for a while after repeated failures
type CircuitBreaker struct {
	config Config
	now    func() time.Time

	mu                  sync.Mutex
	state               State
	consecutiveFailures uint32
	probing             bool
	openedAt            time.Time
}

// New creates a new circuit breaker
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 5
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &CircuitBreaker{
		config: config,
		now:    time.Now,
		state:  StateClosed,
	}
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.beforeCall(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.afterCall(err)
	return err
}

func (cb *CircuitBreaker) beforeCall() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.config.Timeout {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			return ErrOpen
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) afterCall(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
	if err == nil {
		cb.consecutiveFailures = 0
		cb.setState(StateClosed)
		return
	}

	cb.consecutiveFailures++
	if cb.state == StateHalfOpen || cb.consecutiveFailures >= cb.config.FailureThreshold {
		cb.openedAt = cb.now()
		cb.setState(StateOpen)
	}
}

// setState changes the state and logs the transition
func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state

	logger.Warn("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Uint32("consecutive_failures", cb.consecutiveFailures))
}

// State returns the current state of the circuit breaker
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Name returns the circuit breaker name
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}
