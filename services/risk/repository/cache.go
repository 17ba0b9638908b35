package repository

import (
	"context"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/services/risk"
)

type zoneCache struct {
	cells cmap.ConcurrentMap[string, []models.RiskZone]
}

// NewZoneCache creates an in-process zone cache shared by all connections
func NewZoneCache() risk.ZoneRepo {
	return &zoneCache{cells: cmap.New[[]models.RiskZone]()}
}

func (c *zoneCache) GetCell(_ context.Context, cell string) ([]models.RiskZone, bool) {
	return c.cells.Get(cell)
}

// SaveCell keeps the first zone set stored for a cell
func (c *zoneCache) SaveCell(_ context.Context, cell string, zones []models.RiskZone) {
	c.cells.SetIfAbsent(cell, zones)
}

func (c *zoneCache) Count() int {
	return c.cells.Count()
}
