package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/safetrail/safetrail/internal/pkg/logger"
	"github.com/safetrail/safetrail/internal/pkg/models"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for a topic/channel and connects it through lookupd when
// lookup addresses are configured, otherwise directly to nsqd
func NewConsumer(cfg models.NSQConfig, topic, channel string, handler MessageHandler) (*Consumer, error) {
	consumer, err := nsq.NewConsumer(topic, channel, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(newNSQLogger("consumer"), nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(topic, handler))

	c := &Consumer{consumer: consumer}
	if len(cfg.LookupAddrs) > 0 {
		if err := c.ConnectToLookupd(cfg.LookupAddrs); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := consumer.ConnectToNSQD(cfg.Address); err != nil {
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return c, nil
}

// wrapHandler adapts a MessageHandler; a returned error makes go-nsq requeue the message
func wrapHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		if err := handler(message.Body); err != nil {
			logger.Warn("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		if err := c.consumer.ConnectToNSQLookupd(addr); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
