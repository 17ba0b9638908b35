package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware limits requests per client IP using a fixed window counter in Redis.
// Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			n, err := config.RedisClient.Incr(ctx, key).Result()
			if err == nil && n == 1 {
				err = config.RedisClient.Expire(ctx, key, config.Period).Err()
			}
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			count := int(n)
			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > config.Limit {
				ttl := config.RedisClient.TTL(ctx, key).Val()
				if ttl < 0 {
					ttl = config.Period
				}
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				header.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			header.Set("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:ip",
		Limit:       limit,
		Period:      period,
	})
}
