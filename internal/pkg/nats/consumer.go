package nats

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject
type Consumer struct {
	conn         *nats.Conn
	subscription *nats.Subscription
	ownsConn     bool
}

// NewConsumer connects to NATS and subscribes to a subject, optionally
// in a queue group so replicas share the work
func NewConsumer(subject, queueGroup, address string, handler MessageHandler) (*Consumer, error) {
	conn, err := nats.Connect(address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	consumer := &Consumer{conn: conn, ownsConn: true}
	if err := consumer.subscribe(subject, queueGroup, handler); err != nil {
		conn.Close()
		return nil, err
	}

	return consumer, nil
}

// NewConsumerWithClient subscribes on an existing client connection
func NewConsumerWithClient(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	consumer := &Consumer{conn: client.GetConn()}
	if err := consumer.subscribe(subject, queueGroup, handler); err != nil {
		return nil, err
	}

	return consumer, nil
}

func (c *Consumer) subscribe(subject, queueGroup string, handler MessageHandler) error {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Debug("Error processing message",
				logger.String("subject", subject),
				logger.String("queue_group", queueGroup),
				logger.Err(err))
		}
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queueGroup != "" {
		sub, err = c.conn.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		sub, err = c.conn.Subscribe(subject, wrapped)
	}
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject: %w", err)
	}

	c.subscription = sub
	return nil
}

// IsActive returns true if the consumer is actively consuming messages
func (c *Consumer) IsActive() bool {
	return c.subscription != nil && c.subscription.IsValid()
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	if c.subscription != nil {
		c.subscription.Unsubscribe()
		c.subscription = nil
	}

	if c.ownsConn && c.conn != nil {
		c.conn.Close()
	}
}
