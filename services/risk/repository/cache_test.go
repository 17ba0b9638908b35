package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestZoneCache(t *testing.T) {
	ctx := context.Background()
	cache := NewZoneCache()

	_, ok := cache.GetCell(ctx, "tur5h")
	assert.False(t, ok)

	first := []models.RiskZone{{ID: "tur5h-0"}}
	cache.SaveCell(ctx, "tur5h", first)
	cache.SaveCell(ctx, "tur5h", []models.RiskZone{{ID: "other"}})

	zones, ok := cache.GetCell(ctx, "tur5h")
	assert.True(t, ok)
	assert.Equal(t, first, zones)
	assert.Equal(t, 1, cache.Count())
}

func TestZoneCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	cache := NewZoneCache()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cell := []string{"a", "b", "c", "d"}[i%4]
			cache.SaveCell(ctx, cell, []models.RiskZone{{ID: cell}})
			_, _ = cache.GetCell(ctx, cell)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 4, cache.Count())
}
