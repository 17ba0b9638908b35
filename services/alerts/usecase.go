package alerts

import (
	"context"
	"errors"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/models"
)

// ErrInvalidAlert is returned for alerts that cannot be recorded and must not be retried
var ErrInvalidAlert = errors.New("invalid panic alert")

// AlertUC defines the interface for the panic alert audit log
type AlertUC interface {
	Record(ctx context.Context, alert *models.PanicAlert) error
	Recent(ctx context.Context, since time.Time, limit int) ([]*models.PanicAlert, error)
}
