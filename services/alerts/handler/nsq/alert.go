package nsq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	nsqpkg "github.com/safetrail/safetrail/internal/pkg/nsq"
	"github.com/safetrail/safetrail/services/alerts"
)

const recordTimeout = 5 * time.Second

// AlertHandler consumes published panic alerts
type AlertHandler struct {
	alertUC alerts.AlertUC
}

// NewAlertHandler creates a new NSQ alert handler
func NewAlertHandler(alertUC alerts.AlertUC) *AlertHandler {
	return &AlertHandler{alertUC: alertUC}
}

// HandleMessage records one alert. Messages that can never succeed are finished without
// an error so NSQ does not redeliver them; store failures are returned for a requeue.
func (h *AlertHandler) HandleMessage(body []byte) error {
	var alert models.PanicAlert
	if err := nsqpkg.UnmarshalMessage(body, &alert); err != nil {
		logger.Error("Dropping undecodable panic alert",
			logger.Int("bytes", len(body)),
			logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := h.alertUC.Record(ctx, &alert); err != nil {
		if errors.Is(err, alerts.ErrInvalidAlert) {
			logger.Warn("Dropping invalid panic alert",
				logger.Identity(alert.TouristID))
			return nil
		}
		return fmt.Errorf("failed to record panic alert: %w", err)
	}
	return nil
}
