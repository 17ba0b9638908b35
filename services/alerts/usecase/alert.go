package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/services/alerts"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// AlertUC records panic alerts for later review
type AlertUC struct {
	alertRepo alerts.AlertRepo
}

// NewAlertUC creates a new alert use case
func NewAlertUC(alertRepo alerts.AlertRepo) *AlertUC {
	return &AlertUC{alertRepo: alertRepo}
}

// Record stores alert. Alerts without a tourist or a timestamp are rejected with ErrInvalidAlert.
func (uc *AlertUC) Record(ctx context.Context, alert *models.PanicAlert) error {
	if alert == nil || alert.TouristID == "" || alert.Timestamp.IsZero() {
		return alerts.ErrInvalidAlert
	}
	if alert.Type == "" {
		alert.Type = models.AlertTypePanic
	}

	inserted, err := uc.alertRepo.Insert(ctx, alert)
	if err != nil {
		return fmt.Errorf("failed to record alert: %w", err)
	}
	if !inserted {
		logger.InfoCtx(ctx, "Duplicate panic alert ignored",
			logger.Identity(alert.TouristID))
		return nil
	}

	logger.InfoCtx(ctx, "Panic alert recorded",
		logger.Identity(alert.TouristID),
		logger.String("type", alert.Type),
		logger.Position(alert.Location.Lat, alert.Location.Lng))
	return nil
}

// Recent lists alerts raised since the given time, newest first
func (uc *AlertUC) Recent(ctx context.Context, since time.Time, limit int) ([]*models.PanicAlert, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return uc.alertRepo.ListSince(ctx, since, limit)
}
