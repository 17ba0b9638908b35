package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// RedisClient represents a Redis client
type RedisClient struct {
	Client *redis.Client
}

// NewRedisClient creates a new Redis client and verifies the connection
func NewRedisClient(config models.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
		PoolSize: config.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// GetClient returns the underlying Redis client
func (r *RedisClient) GetClient() *redis.Client {
	return r.Client
}

// Ping checks the connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Set stores a key-value pair with an optional expiration
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.Client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// MGet retrieves several values at once; missing keys come back as nil
func (r *RedisClient) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	return r.Client.MGet(ctx, keys...).Result()
}

// Delete removes a key
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}

// GeoAdd adds geospatial data to a sorted set
func (r *RedisClient) GeoAdd(ctx context.Context, key string, longitude, latitude float64, member string) error {
	return r.Client.GeoAdd(ctx, key, &redis.GeoLocation{
		Longitude: longitude,
		Latitude:  latitude,
		Name:      member,
	}).Err()
}

// GeoRadius finds members within a radius (meters) from a point, nearest first
func (r *RedisClient) GeoRadius(ctx context.Context, key string, longitude, latitude, radiusMeters float64, count int) ([]redis.GeoLocation, error) {
	return r.Client.GeoRadius(ctx, key, longitude, latitude, &redis.GeoRadiusQuery{
		Radius:    radiusMeters,
		Unit:      "m",
		WithCoord: true,
		WithDist:  true,
		Count:     count,
		Sort:      "ASC",
	}).Result()
}

// ZRem removes members from a sorted set, including GEO sets
func (r *RedisClient) ZRem(ctx context.Context, key string, members ...interface{}) error {
	return r.Client.ZRem(ctx, key, members...).Err()
}

// Close closes the Redis client
func (r *RedisClient) Close() error {
	return r.Client.Close()
}
