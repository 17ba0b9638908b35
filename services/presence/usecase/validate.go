package usecase

import (
	"time"

	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/utils"
	"github.com/safetrail/safetrail/services/presence"
)

const (
	minSafetyScore = 0
	maxSafetyScore = 100
)

// buildSample validates req and turns it into a sample for identity. A missing or
// unreadable timestamp becomes now.
func buildSample(identity string, req *models.SubmitLocationRequest, now time.Time) (*models.PositionSample, error) {
	if req == nil || req.Latitude == nil || req.Longitude == nil {
		return nil, presence.ErrInvalidSample
	}
	if !utils.ValidCoordinates(*req.Latitude, *req.Longitude) {
		return nil, presence.ErrInvalidSample
	}
	if req.Accuracy != nil && (!utils.IsFinite(*req.Accuracy) || *req.Accuracy < 0) {
		return nil, presence.ErrInvalidSample
	}
	if req.SafetyScore != nil {
		score := *req.SafetyScore
		if !utils.IsFinite(score) || score < minSafetyScore || score > maxSafetyScore {
			return nil, presence.ErrInvalidSample
		}
	}

	sample := &models.PositionSample{
		ID:          identity,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Accuracy:    copyFloat(req.Accuracy),
		SafetyScore: copyFloat(req.SafetyScore),
		Timestamp:   now,
	}
	if ts := models.ParseClientTime(req.Timestamp); ts != nil && !ts.IsZero() {
		sample.Timestamp = *ts
	}
	return sample, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
