package usecase

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
)

type zoneType struct {
	name     string
	severity models.Severity
	radius   float64
}

var zoneTypes = []zoneType{
	{name: "Construction Site", severity: models.SeverityHigh, radius: 800},
	{name: "Dense Traffic Area", severity: models.SeverityMedium, radius: 1200},
	{name: "Crowded Market", severity: models.SeverityMedium, radius: 600},
	{name: "Industrial Zone", severity: models.SeverityHigh, radius: 1500},
	{name: "Railway Crossing", severity: models.SeverityHigh, radius: 400},
	{name: "Bus Terminal", severity: models.SeverityMedium, radius: 800},
	{name: "Dark Alley", severity: models.SeverityHigh, radius: 300},
	{name: "Tourist Hotspot", severity: models.SeverityLow, radius: 1000},
	{name: "Police Station Area", severity: models.SeverityLow, radius: 500},
	{name: "Hospital Zone", severity: models.SeverityLow, radius: 700},
}

// GenerateCellZones synthesizes the zones of one geohash cell. Zones are spread evenly
// around the cell center, 0.01 to 0.03 degrees out. The random source is seeded from the
// cell hash, so every caller on every instance gets the same zones for the same cell.
func GenerateCellZones(cell string, count int) []models.RiskZone {
	center := utils.CellCenter(cell)
	rng := rand.New(rand.NewSource(cellSeed(cell)))

	zones := make([]models.RiskZone, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) * (360.0 / float64(count)) * math.Pi / 180
		distance := 0.01 + rng.Float64()*0.02
		zt := zoneTypes[rng.Intn(len(zoneTypes))]

		zones = append(zones, models.RiskZone{
			ID:   fmt.Sprintf("%s-%d", cell, i),
			Name: zt.name,
			Center: models.Location{
				Latitude:  clampLatitude(center.Latitude + distance*math.Cos(angle)),
				Longitude: wrapLongitude(center.Longitude + distance*math.Sin(angle)),
			},
			Radius:    zt.radius + rng.Float64()*200,
			Severity:  zt.severity,
			Intensity: 0.3 + rng.Float64()*0.4,
		})
	}
	return zones
}

func cellSeed(cell string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(cell))
	return int64(h.Sum64())
}

func clampLatitude(lat float64) float64 {
	return math.Max(-90, math.Min(90, lat))
}

func wrapLongitude(lng float64) float64 {
	if lng > 180 {
		return lng - 360
	}
	if lng < -180 {
		return lng + 360
	}
	return lng
}
