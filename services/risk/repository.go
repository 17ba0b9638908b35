package risk

import (
	"context"

	"github.com/safetrail/safetrail/internal/pkg/models"
)

// ZoneRepo caches the zone set of each geohash cell
type ZoneRepo interface {
	GetCell(ctx context.Context, cell string) ([]models.RiskZone, bool)
	SaveCell(ctx context.Context, cell string, zones []models.RiskZone)
	Count() int
}
