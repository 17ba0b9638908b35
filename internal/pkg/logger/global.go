package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	// once ensures the fallback logger is built only once
	once sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	identityKey
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, or a production logger if none is set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	current := globalLogger
	mu.RUnlock()
	if current != nil {
		return current
	}

	once.Do(func() {
		defaultLogger, _ := zap.NewProduction()
		mu.Lock()
		if globalLogger == nil {
			globalLogger = &ZapLogger{
				Logger: defaultLogger,
				sugar:  defaultLogger.Sugar(),
			}
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WithRequestID stores a request id in ctx for the *Ctx helpers
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithIdentity stores a presence identity in ctx for the *Ctx helpers
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func contextFields(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		fields = append(fields, String("request_id", v))
	}
	if v, ok := ctx.Value(identityKey).(string); ok && v != "" {
		fields = append(fields, Identity(v))
	}
	return fields
}

// InfoCtx logs an info message enriched with context values
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, contextFields(ctx, fields)...)
}

// WarnCtx logs a warning message enriched with context values
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, contextFields(ctx, fields)...)
}

// ErrorCtx logs an error message enriched with context values
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, contextFields(ctx, fields)...)
}

// DebugCtx logs a debug message enriched with context values
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, contextFields(ctx, fields)...)
}
