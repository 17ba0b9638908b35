package usecase

import (
	"context"

	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
	"github.com/safetrail/safetrail/services/risk"
	"github.com/safetrail/safetrail/services/risk/scorer"
)

// RiskUC implements the risk use case
type RiskUC struct {
	cfg      models.RiskConfig
	zoneRepo risk.ZoneRepo
}

// NewRiskUC creates a new risk use case
func NewRiskUC(cfg models.RiskConfig, zoneRepo risk.ZoneRepo) *RiskUC {
	if cfg.GeohashPrecision == 0 {
		cfg.GeohashPrecision = 5
	}
	if cfg.ZonesPerCell <= 0 {
		cfg.ZonesPerCell = 8
	}
	return &RiskUC{cfg: cfg, zoneRepo: zoneRepo}
}

// GetZones returns the zones of the cell containing pos and its eight neighbours, so a
// position near a cell edge still sees the zones just across it
func (uc *RiskUC) GetZones(ctx context.Context, pos models.Location) ([]models.RiskZone, error) {
	if !utils.ValidCoordinates(pos.Latitude, pos.Longitude) {
		return nil, risk.ErrInvalidPosition
	}

	cell := utils.EncodeLocation(pos, uc.cfg.GeohashPrecision)
	cells := append([]string{cell}, utils.GetNeighbors(cell)...)

	seen := make(map[string]struct{}, len(cells))
	zones := make([]models.RiskZone, 0, len(cells)*uc.cfg.ZonesPerCell)
	for _, c := range cells {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		zones = append(zones, uc.cellZones(ctx, c)...)
	}
	return zones, nil
}

// Score assesses pos against the zones around it
func (uc *RiskUC) Score(ctx context.Context, pos models.Location) (*models.RiskAssessment, error) {
	zones, err := uc.GetZones(ctx, pos)
	if err != nil {
		return nil, err
	}
	return scorer.Assess(pos, zones), nil
}

func (uc *RiskUC) cellZones(ctx context.Context, cell string) []models.RiskZone {
	if zones, ok := uc.zoneRepo.GetCell(ctx, cell); ok {
		return zones
	}

	zones := GenerateCellZones(cell, uc.cfg.ZonesPerCell)
	uc.zoneRepo.SaveCell(ctx, cell, zones)
	logger.DebugCtx(ctx, "Generated risk zones",
		logger.Cell(cell),
		logger.Int("zones", len(zones)),
		logger.Int("cached_cells", uc.zoneRepo.Count()))
	return zones
}
