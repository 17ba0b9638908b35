package usecase

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonesToGeoJSON(t *testing.T) {
	zone := models.RiskZone{
		ID:        "tur5h-0",
		Name:      "Dark Alley",
		Center:    models.Location{Latitude: 26.1445, Longitude: 91.7362},
		Radius:    300,
		Severity:  models.SeverityHigh,
		Intensity: 0.5,
	}

	fc := ZonesToGeoJSON([]models.RiskZone{zone})
	require.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.Equal(t, "tur5h-0", feature.ID)
	assert.Equal(t, "high", feature.Properties["severity"])
	assert.Equal(t, "Dark Alley", feature.Properties["name"])

	polygon, ok := feature.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, polygon, 1)
	ring := polygon[0]
	assert.Len(t, ring, circleSegments+1)
	assert.True(t, ring.Closed())

	center := orb.Point{zone.Center.Longitude, zone.Center.Latitude}
	for _, p := range ring {
		assert.InDelta(t, zone.Radius, geo.Distance(center, p), 1.0)
	}

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
	assert.Contains(t, string(raw), `"type":"Polygon"`)
}

func TestZonesToGeoJSON_Empty(t *testing.T) {
	raw, err := json.Marshal(ZonesToGeoJSON(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(raw))
}
