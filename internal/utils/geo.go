package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// EarthRadiusMeters is the mean Earth radius used by every distance computation
const EarthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two points in meters
func HaversineMeters(p1, p2 models.Location) float64 {
	lat1 := p1.Latitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	dLat := (p2.Latitude - p1.Latitude) * math.Pi / 180.0
	dLon := (p2.Longitude - p1.Longitude) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// ValidCoordinates reports whether lat/lng are finite and within range
func ValidCoordinates(lat, lng float64) bool {
	if !IsFinite(lat) || !IsFinite(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CellCenter returns the center point of a geohash cell
func CellCenter(hash string) models.Location {
	lat, lng := geohash.DecodeCenter(hash)
	return models.Location{Latitude: lat, Longitude: lng}
}

// GetNeighbors returns the neighboring geohashes of a given geohash
func GetNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
