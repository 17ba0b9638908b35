package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/safetrail/safetrail/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the structured application logger, writing JSON to stdout and optionally a file
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	service  string
	filePath string
	file     *os.File
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config ZapConfig) (*ZapLogger, error) {
	return newZapLogger(config, os.Stdout)
}

func newZapLogger(config ZapConfig, out io.Writer) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(out), level)}

	zapLogger := &ZapLogger{
		service:  config.Service,
		filePath: config.FilePath,
	}

	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	base := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if config.Service != "" {
		base = base.With(zap.String("service", config.Service))
	}

	zapLogger.Logger = base
	zapLogger.sugar = base.Sugar()
	return zapLogger, nil
}

// setupFileOutput configures file output for the logger
func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close syncs the logger and closes the log file
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// InitZapLoggerFromConfig initializes the Zap logger directly from config models
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	level := configs.Logger.Level
	if configs.App.Debug {
		level = "debug"
	}
	return NewZapLogger(ZapConfig{
		Level:    level,
		FilePath: configs.Logger.FilePath,
		Service:  configs.App.Name,
	})
}

// WithFields adds custom fields to log entry
func (zl *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zl.Logger.With(zapFields...)
}

// WithError creates a logger with an error field
func (zl *ZapLogger) WithError(err error) *zap.Logger {
	return zl.Logger.With(zap.Error(err))
}

// Sugar returns the sugared logger for easier use
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// GetFilePath returns the current log file path
func (zl *ZapLogger) GetFilePath() string {
	return zl.filePath
}

// Info logs an info message with optional fields
func (zl *ZapLogger) Info(msg string, fields ...zap.Field) {
	zl.Logger.Info(msg, fields...)
}

// Error logs an error message with optional fields
func (zl *ZapLogger) Error(msg string, fields ...zap.Field) {
	zl.Logger.Error(msg, fields...)
}

// Warn logs a warning message with optional fields
func (zl *ZapLogger) Warn(msg string, fields ...zap.Field) {
	zl.Logger.Warn(msg, fields...)
}

// Debug logs a debug message with optional fields
func (zl *ZapLogger) Debug(msg string, fields ...zap.Field) {
	zl.Logger.Debug(msg, fields...)
}

// Fatal logs a fatal message and exits
func (zl *ZapLogger) Fatal(msg string, fields ...zap.Field) {
	zl.Logger.Fatal(msg, fields...)
}

// NewNopZapLogger returns a logger that discards everything
func NewNopZapLogger() *ZapLogger {
	nop := zap.NewNop()
	return &ZapLogger{Logger: nop, sugar: nop.Sugar()}
}
