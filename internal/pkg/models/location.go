package models

import (
	"encoding/json"
	"time"
)

// Location is a bare geographic point in decimal degrees
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PositionSample is the latest known fix reported by an identity
type PositionSample struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Accuracy    *float64  `json:"accuracy,omitempty"`
	SafetyScore *float64  `json:"safetyScore,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Location returns the point of the sample
func (s *PositionSample) Location() Location {
	return Location{Latitude: s.Latitude, Longitude: s.Longitude}
}

// SubmitLocationRequest is the payload of a submit-location event.
// Coordinates are pointers so that a missing field can be told apart from zero.
// Timestamp is kept raw and read with ParseClientTime.
type SubmitLocationRequest struct {
	Latitude    *float64        `json:"latitude"`
	Longitude   *float64        `json:"longitude"`
	Accuracy    *float64        `json:"accuracy,omitempty"`
	SafetyScore *float64        `json:"safetyScore,omitempty"`
	Timestamp   json.RawMessage `json:"timestamp,omitempty"`
}

// Connected is sent to a connection right after it joins
type Connected struct {
	ID     string `json:"id"`
	UserID string `json:"userId,omitempty"`
}

// NearbyTourist is a connected identity found around a point
type NearbyTourist struct {
	ID             string          `json:"id"`
	DistanceMeters float64         `json:"distanceMeters"`
	Sample         *PositionSample `json:"sample,omitempty"`
}

// HistoryFilter narrows a location history query
type HistoryFilter struct {
	TouristID string
	StartTime *time.Time
	EndTime   *time.Time
	MinScore  *float64
	MaxScore  *float64
	Page      int
	Limit     int
	Ascending bool
}

// HistoryPage is one page of location history
type HistoryPage struct {
	Samples []*PositionSample `json:"samples"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Total   int               `json:"total"`
	Pages   int               `json:"pages"`
}

// LocationStats summarises stored samples over a window
type LocationStats struct {
	TotalLocations     int     `json:"totalLocations" db:"total_locations"`
	AverageSafetyScore float64 `json:"averageSafetyScore" db:"average_safety_score"`
	MaxSafetyScore     float64 `json:"maxSafetyScore" db:"max_safety_score"`
	MinSafetyScore     float64 `json:"minSafetyScore" db:"min_safety_score"`
	UniqueTourists     int     `json:"uniqueTouristCount" db:"unique_tourists"`
}
