package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/safetrail/safetrail/internal/pkg/constants"
	"github.com/safetrail/safetrail/internal/pkg/models"
	"github.com/safetrail/safetrail/internal/pkg/retry"
	"github.com/safetrail/safetrail/services/presence"
)

// Publisher is the part of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type alertGW struct {
	producer Publisher
	topic    string
	retrier  *retry.Retrier
}

// NewAlertGW creates a gateway that publishes panic alerts to NSQ
func NewAlertGW(producer Publisher, topic string) presence.AlertGW {
	return newAlertGW(producer, topic, retry.Config{
		MaxRetries: 2,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2,
		Jitter:     true,
	})
}

func newAlertGW(producer Publisher, topic string, retryCfg retry.Config) *alertGW {
	if topic == "" {
		topic = constants.TopicPanicAlert
	}
	return &alertGW{
		producer: producer,
		topic:    topic,
		retrier:  retry.New(retryCfg),
	}
}

// PublishPanicAlert publishes the alert for the audit recorder, retrying within ctx
func (g *alertGW) PublishPanicAlert(ctx context.Context, alert *models.PanicAlert) error {
	err := g.retrier.Execute(ctx, "publish_panic_alert", func(context.Context) error {
		return g.producer.Publish(g.topic, alert)
	})
	if err != nil {
		return fmt.Errorf("failed to publish panic alert: %w", err)
	}
	return nil
}
