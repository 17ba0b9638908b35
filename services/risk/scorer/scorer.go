// Package scorer turns a position and a set of circular risk zones into a bounded safety score.
package scorer

import (
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
)

const (
	// BaselineScore is the score of a position outside every zone
	BaselineScore = 100
	MinScore      = 0
	MaxScore      = 100
)

// Adjustment is the score contribution of one containing zone
var Adjustment = map[models.Severity]int{
	models.SeverityHigh:   -25,
	models.SeverityMedium: -15,
	models.SeverityLow:    5,
}

// Contains reports whether pos lies strictly inside zone
func Contains(zone models.RiskZone, pos models.Location) bool {
	return utils.HaversineMeters(pos, zone.Center) < zone.Radius
}

// Score returns the clamped safety score of pos and whether any zone contains it.
// Contributions of overlapping zones are summed before clamping, so zone order is irrelevant.
func Score(pos models.Location, zones []models.RiskZone) (int, bool) {
	score := BaselineScore
	inAnyZone := false
	for _, zone := range zones {
		if !Contains(zone, pos) {
			continue
		}
		inAnyZone = true
		score += Adjustment[zone.Severity]
	}
	return clamp(score), inAnyZone
}

// Assess is Score plus the list of containing zones
func Assess(pos models.Location, zones []models.RiskZone) *models.RiskAssessment {
	assessment := &models.RiskAssessment{
		Location:        pos,
		ContainingZones: make([]models.RiskZone, 0),
	}
	for _, zone := range zones {
		if Contains(zone, pos) {
			assessment.ContainingZones = append(assessment.ContainingZones, zone)
		}
	}
	assessment.Score, assessment.InAnyZone = Score(pos, assessment.ContainingZones)
	return assessment
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
