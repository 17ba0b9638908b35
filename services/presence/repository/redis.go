package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/database"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/services/presence"
)

// DefaultSampleTTL is how long a mirrored sample survives without a refresh
const DefaultSampleTTL = 10 * time.Minute

type presenceRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewPresenceRepository creates a Redis mirror of the connected-identity table
func NewPresenceRepository(redisClient *database.RedisClient, ttl time.Duration) presence.PresenceRepo {
	if ttl <= 0 {
		ttl = DefaultSampleTTL
	}
	return &presenceRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// SaveLatest stores the sample as JSON and indexes its position in the GEO set
func (r *presenceRepo) SaveLatest(ctx context.Context, sample *models.PositionSample) error {
	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to encode sample: %w", err)
	}

	key := fmt.Sprintf(constants.KeyPresenceSample, sample.ID)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to store sample: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyPresenceGeo, sample.Longitude, sample.Latitude, sample.ID); err != nil {
		return fmt.Errorf("failed to index sample position: %w", err)
	}
	return nil
}

// RemoveLatest deletes the sample and its GEO entry
func (r *presenceRepo) RemoveLatest(ctx context.Context, identity string) error {
	key := fmt.Sprintf(constants.KeyPresenceSample, identity)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to remove sample: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyPresenceGeo, identity); err != nil {
		return fmt.Errorf("failed to remove sample position: %w", err)
	}
	return nil
}

// Nearby queries the GEO set, nearest first. Members whose sample key has expired are
// skipped, so identities from a crashed instance age out with the TTL. The GEO query
// is widened until limit live samples are found or the radius holds no more members.
func (r *presenceRepo) Nearby(ctx context.Context, pos models.Location, radiusMeters float64, limit int) ([]models.NearbyTourist, error) {
	fetch := limit
	for {
		locations, err := r.redisClient.GeoRadius(ctx, constants.KeyPresenceGeo, pos.Longitude, pos.Latitude, radiusMeters, fetch)
		if err != nil {
			return nil, fmt.Errorf("failed to query nearby identities: %w", err)
		}

		found, err := r.loadSamples(ctx, locations)
		if err != nil {
			return nil, err
		}

		exhausted := fetch <= 0 || len(locations) < fetch
		if limit > 0 && len(found) >= limit {
			return found[:limit], nil
		}
		if exhausted {
			return found, nil
		}
		fetch *= 2
	}
}

// loadSamples resolves GEO members to their latest samples, dropping expired ones
func (r *presenceRepo) loadSamples(ctx context.Context, locations []redis.GeoLocation) ([]models.NearbyTourist, error) {
	found := make([]models.NearbyTourist, 0, len(locations))
	if len(locations) == 0 {
		return found, nil
	}

	keys := make([]string, len(locations))
	for i, loc := range locations {
		keys[i] = fmt.Sprintf(constants.KeyPresenceSample, loc.Name)
	}
	values, err := r.redisClient.MGet(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to load nearby samples: %w", err)
	}

	for i, loc := range locations {
		raw, ok := values[i].(string)
		if !ok {
			continue
		}

		var sample models.PositionSample
		if err := json.Unmarshal([]byte(raw), &sample); err != nil {
			continue
		}
		found = append(found, models.NearbyTourist{
			ID:             loc.Name,
			DistanceMeters: loc.Dist,
			Sample:         &sample,
		})
	}
	return found, nil
}
