package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
)

const headerRequestID = "X-Request-ID"

// LoggerMiddleware writes one access log line per request
func LoggerMiddleware(accessLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the error so the logged status is the real one
				c.Error(err)
			}

			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			accessLogger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				c.Response().Header().Get(headerRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)
			return nil
		}
	}
}

// RequestIDMiddleware adds a unique request ID to each request and its context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(headerRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(headerRequestID, requestID)
			c.Set("request_id", requestID)
			c.SetRequest(c.Request().WithContext(logger.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}
