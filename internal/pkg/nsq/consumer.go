package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/canyfix/repairdesk/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// DefaultMaxAttempts caps redeliveries of a failing message
const DefaultMaxAttempts = 5

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	topic    string
}

// NewConsumer creates a consumer for a topic/channel. A handler error
// requeues the message until DefaultMaxAttempts is reached.
func NewConsumer(topic, channel string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	config.MaxAttempts = DefaultMaxAttempts

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)

	consumer.AddHandler(nsq.HandlerFunc(func(message *nsq.Message) error {
		if err := handler(message.Body); err != nil {
			logger.Error("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}))

	return &Consumer{consumer: consumer, topic: topic}, nil
}

// Connect attaches the consumer to lookupd when addresses are given,
// otherwise directly to the NSQ daemon
func (c *Consumer) Connect(nsqdAddress string, lookupdAddresses []string) error {
	if len(lookupdAddresses) > 0 {
		if err := c.consumer.ConnectToNSQLookupds(lookupdAddresses); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd: %w", err)
		}
		return nil
	}

	if err := c.consumer.ConnectToNSQD(nsqdAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon at %s: %w", nsqdAddress, err)
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
