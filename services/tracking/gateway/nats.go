package gateway

import (
	"context"

	"github.com/twigalabs/rangertrack/internal/pkg/constants"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/metrics"
	natspkg "github.com/twigalabs/rangertrack/internal/pkg/nats"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

const gatewayServiceName = "rangertrack-tracking"

// EventsGateway publishes fleet events to NATS
type EventsGateway struct {
	producer *natspkg.Producer
}

// NewEventsGateway creates a new events gateway
func NewEventsGateway(producer *natspkg.Producer) *EventsGateway {
	return &EventsGateway{producer: producer}
}

// PublishLocationUpdated announces a unit's new last known location
func (g *EventsGateway) PublishLocationUpdated(ctx context.Context, event *models.LocationUpdatedEvent) error {
	err := g.producer.Publish(constants.SubjectLocationUpdated, event)
	metrics.RecordNATSPublish(gatewayServiceName, constants.SubjectLocationUpdated, err)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish location update",
			logger.Err(err),
			logger.String("source_id", event.SourceID))
		return err
	}
	return nil
}

// PublishBatteryCritical announces a unit battery dropping to critical
func (g *EventsGateway) PublishBatteryCritical(ctx context.Context, event *models.BatteryAlertEvent) error {
	err := g.producer.Publish(constants.SubjectBatteryCritical, event)
	metrics.RecordNATSPublish(gatewayServiceName, constants.SubjectBatteryCritical, err)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish battery alert",
			logger.Err(err),
			logger.String("source_id", event.SourceID))
		return err
	}
	return nil
}

// PublishFleetRefreshed announces the outcome of a refresh pass
func (g *EventsGateway) PublishFleetRefreshed(ctx context.Context, summary *models.FleetRefreshSummary) error {
	err := g.producer.Publish(constants.SubjectFleetRefreshed, summary)
	metrics.RecordNATSPublish(gatewayServiceName, constants.SubjectFleetRefreshed, err)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to publish fleet refresh summary",
			logger.Err(err),
			logger.String("provider", summary.Provider))
		return err
	}
	return nil
}
