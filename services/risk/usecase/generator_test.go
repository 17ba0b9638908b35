package usecase

import (
	"testing"

	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCellZones_Deterministic(t *testing.T) {
	a := GenerateCellZones("tur5h", 8)
	b := GenerateCellZones("tur5h", 8)
	assert.Equal(t, a, b)

	other := GenerateCellZones("tur5j", 8)
	assert.NotEqual(t, a, other)
}

func TestGenerateCellZones_Shape(t *testing.T) {
	cell := "tur5h"
	center := utils.CellCenter(cell)
	zones := GenerateCellZones(cell, 8)
	require.Len(t, zones, 8)

	ids := make(map[string]bool)
	for _, z := range zones {
		ids[z.ID] = true
		assert.True(t, z.Severity.Valid())
		assert.Greater(t, z.Radius, 0.0)
		assert.GreaterOrEqual(t, z.Intensity, 0.3)
		assert.Less(t, z.Intensity, 0.7)

		var base float64
		for _, zt := range zoneTypes {
			if zt.name == z.Name {
				base = zt.radius
				assert.Equal(t, zt.severity, z.Severity)
			}
		}
		require.NotZero(t, base, "unknown zone type %s", z.Name)
		assert.GreaterOrEqual(t, z.Radius, base)
		assert.Less(t, z.Radius, base+200)

		// offset of 0.01..0.03 degrees from the cell center
		offsetMeters := utils.HaversineMeters(center, z.Center)
		assert.Greater(t, offsetMeters, 0.0099*111000*0.8)
		assert.Less(t, offsetMeters, 0.0301*111200)
	}
	assert.Len(t, ids, 8)
	assert.Equal(t, "tur5h-0", zones[0].ID)
}

func TestGenerateCellZones_FirstZoneIsNorth(t *testing.T) {
	cell := "tur5h"
	center := utils.CellCenter(cell)
	zones := GenerateCellZones(cell, 8)

	assert.Greater(t, zones[0].Center.Latitude, center.Latitude)
	assert.InDelta(t, center.Longitude, zones[0].Center.Longitude, 1e-9)
	assert.Greater(t, zones[2].Center.Longitude, center.Longitude)
	assert.InDelta(t, center.Latitude, zones[2].Center.Latitude, 1e-9)
}

func TestGenerateCellZones_EdgeOfMap(t *testing.T) {
	for _, pos := range []models.Location{
		{Latitude: 89.99, Longitude: 179.99},
		{Latitude: -89.99, Longitude: -179.99},
	} {
		cell := utils.EncodeLocation(pos, 5)
		for _, z := range GenerateCellZones(cell, 8) {
			assert.True(t, utils.ValidCoordinates(z.Center.Latitude, z.Center.Longitude), z.ID)
		}
	}
}
