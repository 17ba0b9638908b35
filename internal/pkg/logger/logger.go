package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// AppLogger writes HTTP access logs as JSON lines through logrus
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds access logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Service  string `json:"service" mapstructure:"service"`
}

// NewAppLogger creates a new access logger
func NewAppLogger(config Config) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:  logger,
		service: config.Service,
	}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput sends entries to both stdout and the file
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// WithFields adds custom fields to log entry, always including the service name
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	if al.service != "" {
		fields["service"] = al.service
	}
	return al.Logger.WithFields(fields)
}

// LogHTTPRequest logs one HTTP request at a level chosen by its status code
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.WithFields(logrus.Fields{
		"status":     statusCode,
		"latency":    latency.String(),
		"latency_ms": latency.Milliseconds(),
		"client_ip":  clientIP,
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	if err != nil {
		entry = entry.WithError(err)
	}

	switch {
	case statusCode >= 500:
		entry.Error("Server error")
	case statusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}
