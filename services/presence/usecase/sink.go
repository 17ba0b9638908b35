package usecase

import (
	"context"
	"errors"

	"github.com/safetrail/safetrail/internal/pkg/circuitbreaker"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// sink targets, each guarded by its own breaker
const (
	targetMirror  = "mirror"
	targetHistory = "history"
	targetAlerts  = "alerts"
)

// sinkJob is one side effect outside process memory
type sinkJob struct {
	target   string
	name     string
	identity string
	fn       func(ctx context.Context) error
}

func newBreakers(cfg models.PresenceConfig) map[string]*circuitbreaker.CircuitBreaker {
	breakers := make(map[string]*circuitbreaker.CircuitBreaker, 3)
	for _, target := range []string{targetMirror, targetHistory, targetAlerts} {
		breakers[target] = circuitbreaker.New(circuitbreaker.Config{
			Name:             "presence_" + target,
			FailureThreshold: cfg.BreakerThreshold,
			Timeout:          cfg.BreakerTimeout,
		})
	}
	return breakers
}

// enqueueSink hands a job to the sink worker without blocking; a full queue drops the job
func (uc *PresenceUC) enqueueSink(target, name, identity string, fn func(ctx context.Context) error) {
	select {
	case uc.sink <- sinkJob{target: target, name: name, identity: identity, fn: fn}:
	default:
		logger.Warn("Sink queue full, dropping job",
			logger.String("job", name),
			logger.Identity(identity))
	}
}

// runSink executes jobs one at a time until the queue is closed. Each job gets its own
// timeout, and a target whose breaker is open is skipped without waiting on it.
func (uc *PresenceUC) runSink() {
	for job := range uc.sink {
		ctx, cancel := context.WithTimeout(context.Background(), uc.cfg.SinkTimeout)
		err := uc.breakers[job.target].Execute(ctx, job.fn)
		cancel()

		switch {
		case err == nil:
		case errors.Is(err, circuitbreaker.ErrOpen):
			logger.Debug("Sink target unavailable, skipping job",
				logger.String("target", job.target),
				logger.String("job", job.name),
				logger.Identity(job.identity))
		default:
			logger.Warn("Sink job failed",
				logger.String("job", job.name),
				logger.Identity(job.identity),
				logger.Err(err))
		}
	}
}
