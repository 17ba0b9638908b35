package health

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/database"
	"github.com/safetrail/safetrail/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// NewPostgresHealthChecker creates a PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisHealthChecker creates a Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// Pinger is anything with a context-free liveness check, such as an NSQ producer
type Pinger interface {
	Ping() error
}

// NewPingerHealthChecker wraps a Pinger, honouring ctx cancellation
func NewPingerHealthChecker(p Pinger) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		done := make(chan error, 1)
		go func() { done <- p.Ping() }()
		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return errors.New("health check timed out")
		}
	})
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{checkers: make(map[string]HealthChecker)}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checkers[name].CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			response.Status = StatusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return response
}
