package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twigalabs/rangertrack/internal/pkg/constants"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/metrics"
	natspkg "github.com/twigalabs/rangertrack/internal/pkg/nats"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/services/tracking"
)

const natsServiceName = "rangertrack-tracking"

// NATSHandler consumes externally pushed observations
type NATSHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNATSHandler creates a new NATS handler
func NewNATSHandler(trackingUC tracking.TrackingUC, natsClient *natspkg.Client) *NATSHandler {
	return &NATSHandler{
		trackingUC: trackingUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the observation ingest subject. Replicas share
// the work through a queue group.
func (h *NATSHandler) InitConsumers() error {
	consumer, err := natspkg.NewConsumerWithClient(
		h.natsClient,
		constants.SubjectObservationIngest,
		constants.QueueGroupTracking,
		h.handleObservationIngest,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectObservationIngest, err)
	}
	h.consumers = append(h.consumers, consumer)

	logger.Info("NATS consumers initialized",
		logger.String("subject", constants.SubjectObservationIngest),
		logger.String("queue_group", constants.QueueGroupTracking))
	return nil
}

func (h *NATSHandler) handleObservationIngest(msg []byte) error {
	var event models.ObservationIngestEvent
	err := json.Unmarshal(msg, &event)
	metrics.RecordNATSConsume(natsServiceName, constants.SubjectObservationIngest, err)
	if err != nil {
		logger.Error("Failed to unmarshal ingested observation", logger.Err(err))
		return err
	}

	if err := h.trackingUC.IngestObservation(context.Background(), event.Observation); err != nil {
		logger.Error("Failed to apply ingested observation",
			logger.String("source_id", event.Observation.SourceID),
			logger.Err(err))
		return err
	}

	logger.Debug("Applied ingested observation",
		logger.String("source_id", event.Observation.SourceID))
	return nil
}

// Stop unsubscribes all consumers
func (h *NATSHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
	h.consumers = nil
}
