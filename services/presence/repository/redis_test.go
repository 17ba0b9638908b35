package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/database"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func score(v float64) *float64 { return &v }

func TestSaveLatest(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewPresenceRepository(client, time.Minute)
	ctx := context.Background()

	sample := &models.PositionSample{
		ID:          "tourist-1",
		Latitude:    26.1445,
		Longitude:   91.7362,
		SafetyScore: score(75),
		Timestamp:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveLatest(ctx, sample))

	key := fmt.Sprintf(constants.KeyPresenceSample, "tourist-1")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	raw, err := mr.Get(key)
	require.NoError(t, err)
	var stored models.PositionSample
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, sample.Latitude, stored.Latitude)
	assert.Equal(t, 75.0, *stored.SafetyScore)

	members, err := mr.ZMembers(constants.KeyPresenceGeo)
	require.NoError(t, err)
	assert.Equal(t, []string{"tourist-1"}, members)
}

func TestSaveLatest_RedisError(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewPresenceRepository(client, 0)
	mr.Close()

	err := repo.SaveLatest(context.Background(), &models.PositionSample{ID: "a"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store sample")
}

func TestRemoveLatest(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewPresenceRepository(client, 0)
	ctx := context.Background()

	require.NoError(t, repo.SaveLatest(ctx, &models.PositionSample{ID: "a", Latitude: 1, Longitude: 1}))
	require.NoError(t, repo.SaveLatest(ctx, &models.PositionSample{ID: "b", Latitude: 1, Longitude: 1}))
	require.NoError(t, repo.RemoveLatest(ctx, "a"))

	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyPresenceSample, "a")))
	members, err := mr.ZMembers(constants.KeyPresenceGeo)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, members)

	// removing an unknown identity is not an error
	assert.NoError(t, repo.RemoveLatest(ctx, "ghost"))
}

func TestNearby(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewPresenceRepository(client, 0)
	ctx := context.Background()

	for _, s := range []*models.PositionSample{
		{ID: "near", Latitude: 26.1446, Longitude: 91.7362},
		{ID: "mid", Latitude: 26.1500, Longitude: 91.7362},
		{ID: "far", Latitude: 26.3000, Longitude: 91.9000},
		{ID: "expired", Latitude: 26.1447, Longitude: 91.7362},
	} {
		require.NoError(t, repo.SaveLatest(ctx, s))
	}
	mr.Del(fmt.Sprintf(constants.KeyPresenceSample, "expired"))

	pos := models.Location{Latitude: 26.1445, Longitude: 91.7362}
	found, err := repo.Nearby(ctx, pos, 1000, 0)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "near", found[0].ID)
	assert.Equal(t, "mid", found[1].ID)
	assert.Less(t, found[0].DistanceMeters, found[1].DistanceMeters)
	require.NotNil(t, found[0].Sample)
	assert.Equal(t, 26.1446, found[0].Sample.Latitude)

	found, err = repo.Nearby(ctx, models.Location{Latitude: -10, Longitude: -10}, 1000, 5)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestNearby_LimitCountsLiveSamplesOnly(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewPresenceRepository(client, 0)
	ctx := context.Background()

	// the three closest members have expired samples
	for i, id := range []string{"gone-1", "gone-2", "gone-3", "live-1", "live-2", "live-3"} {
		sample := &models.PositionSample{ID: id, Latitude: 26.1446 + float64(i)*0.0005, Longitude: 91.7362}
		require.NoError(t, repo.SaveLatest(ctx, sample))
	}
	for _, id := range []string{"gone-1", "gone-2", "gone-3"} {
		mr.Del(fmt.Sprintf(constants.KeyPresenceSample, id))
	}

	pos := models.Location{Latitude: 26.1445, Longitude: 91.7362}
	found, err := repo.Nearby(ctx, pos, 5000, 2)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "live-1", found[0].ID)
	assert.Equal(t, "live-2", found[1].ID)

	found, err = repo.Nearby(ctx, pos, 5000, 10)
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "live-3", found[2].ID)
}
