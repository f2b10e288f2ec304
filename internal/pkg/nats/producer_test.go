package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProducer(t *testing.T) {
	t.Run("NewProducer with invalid address", func(t *testing.T) {
		producer, err := NewProducer("invalid://address")
		assert.Error(t, err)
		assert.Nil(t, producer)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})
}

func TestNewClient(t *testing.T) {
	t.Run("NewClient with invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})
}

func TestNewConsumer(t *testing.T) {
	t.Run("NewConsumer with invalid address", func(t *testing.T) {
		consumer, err := NewConsumer("observation.ingest", "tracking", "invalid://address", func([]byte) error { return nil })
		assert.Error(t, err)
		assert.Nil(t, consumer)
	})
}
