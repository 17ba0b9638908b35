package risk

import (
	"context"
	"errors"

	"github.com/safetrail/safetrail/internal/pkg/models"
)

// ErrInvalidPosition is returned for coordinates that are not finite or out of range
var ErrInvalidPosition = errors.New("invalid position")

// RiskUC defines the interface for zone lookup and position scoring
type RiskUC interface {
	// GetZones returns the zones of the geohash cell containing pos and of its neighbours
	GetZones(ctx context.Context, pos models.Location) ([]models.RiskZone, error)
	// Score assesses pos against GetZones(pos)
	Score(ctx context.Context, pos models.Location) (*models.RiskAssessment, error)
}
