package nsq

import (
	"strings"

	"github.com/safetrail/safetrail/internal/pkg/logger"
)

// nsqLogger routes go-nsq's internal logging into the structured logger
type nsqLogger struct {
	component string
}

func newNSQLogger(component string) *nsqLogger {
	return &nsqLogger{component: component}
}

// Output implements the go-nsq logger interface
func (l *nsqLogger) Output(_ int, s string) error {
	msg := strings.TrimSpace(s)
	fields := []logger.Field{logger.String("component", "nsq_"+l.component)}
	switch {
	case strings.HasPrefix(msg, "ERR"):
		logger.Error(msg, fields...)
	case strings.HasPrefix(msg, "WRN"):
		logger.Warn(msg, fields...)
	default:
		logger.Debug(msg, fields...)
	}
	return nil
}
