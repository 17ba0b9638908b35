package presence

import (
	"context"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/models"
)

// PresenceRepo mirrors the latest sample of each identity into a shared store
type PresenceRepo interface {
	SaveLatest(ctx context.Context, sample *models.PositionSample) error
	RemoveLatest(ctx context.Context, identity string) error
	Nearby(ctx context.Context, pos models.Location, radiusMeters float64, limit int) ([]models.NearbyTourist, error)
}

// HistoryRepo stores every accepted sample for later queries
type HistoryRepo interface {
	StoreSample(ctx context.Context, sample *models.PositionSample) error
	History(ctx context.Context, filter models.HistoryFilter) (*models.HistoryPage, error)
	HighRisk(ctx context.Context, maxScore float64, since time.Time, limit int) ([]*models.PositionSample, error)
	Stats(ctx context.Context, touristID string, since time.Time) (*models.LocationStats, error)
}
