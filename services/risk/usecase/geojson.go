package usecase

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// circleSegments is the number of ring vertices used to draw a zone circle
const circleSegments = 32

// ZonesToGeoJSON renders zones as polygons approximating their circles. Each feature carries
// the zone fields as properties so map front-ends can style by severity.
func ZonesToGeoJSON(zones []models.RiskZone) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, zone := range zones {
		feature := geojson.NewFeature(circlePolygon(zone))
		feature.ID = zone.ID
		feature.Properties["id"] = zone.ID
		feature.Properties["name"] = zone.Name
		feature.Properties["severity"] = string(zone.Severity)
		feature.Properties["radius"] = zone.Radius
		feature.Properties["intensity"] = zone.Intensity
		feature.Properties["center"] = []float64{zone.Center.Longitude, zone.Center.Latitude}
		fc.Append(feature)
	}
	return fc
}

func circlePolygon(zone models.RiskZone) orb.Polygon {
	center := orb.Point{zone.Center.Longitude, zone.Center.Latitude}
	ring := make(orb.Ring, 0, circleSegments+1)
	for i := 0; i < circleSegments; i++ {
		bearing := float64(i) * 360 / circleSegments
		ring = append(ring, geo.PointAtBearingAndDistance(center, bearing, zone.Radius))
	}
	ring = append(ring, ring[0])
	return orb.Polygon{ring}
}
