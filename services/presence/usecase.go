package presence

import (
	"context"
	"errors"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/models"
)

var (
	// ErrInvalidSample is returned for samples with missing, non-finite or out of range fields
	ErrInvalidSample = errors.New("invalid position sample")
	// ErrStopped is returned once the dispatch loop has exited
	ErrStopped = errors.New("presence service stopped")
	// ErrHistoryDisabled is returned by history queries when no history store is configured
	ErrHistoryDisabled = errors.New("location history is not configured")
)

// Subscriber receives broadcast events. Send must not block; it reports whether the
// event was queued.
type Subscriber interface {
	Send(event string, data interface{}) bool
}

// PresenceUC defines the interface for the location ingestion service
type PresenceUC interface {
	// Connect registers a subscriber for identity and greets it with a connected event
	Connect(ctx context.Context, identity, userID string, sub Subscriber) error
	// Submit validates and stores a sample, then broadcasts it to every subscriber
	Submit(ctx context.Context, identity string, req *models.SubmitLocationRequest) (*models.PositionSample, error)
	// Snapshot returns a copy of the latest sample of every identity
	Snapshot(ctx context.Context) (map[string]*models.PositionSample, error)
	// Disconnect forgets identity and tells the remaining subscribers
	Disconnect(ctx context.Context, identity string) error
	// PanicAlert tags an alert with identity and server time and broadcasts it
	PanicAlert(ctx context.Context, identity string, req *models.PanicAlertRequest) (*models.PanicAlert, error)

	Nearby(ctx context.Context, pos models.Location, radiusMeters float64, limit int) ([]models.NearbyTourist, error)

	History(ctx context.Context, filter models.HistoryFilter) (*models.HistoryPage, error)
	HighRisk(ctx context.Context, maxScore float64, since time.Time, limit int) ([]*models.PositionSample, error)
	Stats(ctx context.Context, touristID string, since time.Time) (*models.LocationStats, error)
}
