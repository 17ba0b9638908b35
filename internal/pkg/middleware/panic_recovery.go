package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/safetrail/safetrail/internal/pkg/logger"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize int
	Logger    *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize: 4 << 10, // 4 KB
	}
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics, logs them
// with a stack trace and answers 500
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					err = handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) error {
	stack := debug.Stack()
	if config.StackSize > 0 && len(stack) > config.StackSize {
		stack = stack[:config.StackSize]
	}

	requestID := c.Response().Header().Get(headerRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(headerRequestID)
	}

	config.Logger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(stack)),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", c.Request().UserAgent()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return nil
	}
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"success":    false,
		"error":      "Internal Server Error",
		"request_id": requestID,
	})
}
