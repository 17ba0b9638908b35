package presence

import (
	"context"

	"github.com/safetrail/safetrail/internal/pkg/models"
)

// AlertGW forwards panic alerts to systems outside this process
type AlertGW interface {
	PublishPanicAlert(ctx context.Context, alert *models.PanicAlert) error
}
