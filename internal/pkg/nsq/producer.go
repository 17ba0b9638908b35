package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer
func NewProducer(cfg models.NSQConfig) (*Producer, error) {
	producer, err := nsq.NewProducer(cfg.Address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(newNSQLogger("producer"), nsq.LogLevelWarning)

	// Ping the NSQ daemon to ensure connectivity
	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends a JSON-encoded message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message",
		logger.String("topic", topic),
		logger.Int("bytes", len(msgBytes)))
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
