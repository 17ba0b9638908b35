package alerts

import (
	"context"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/models"
)

// AlertRepo persists panic alerts
type AlertRepo interface {
	// Insert stores alert and reports false when the same alert was already stored
	Insert(ctx context.Context, alert *models.PanicAlert) (bool, error)
	ListSince(ctx context.Context, since time.Time, limit int) ([]*models.PanicAlert, error)
}
