package tracking

import (
	"context"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/twigalabs/rangertrack/services/tracking RangerGW,EventsGW

// RangerGW defines the interface to the upstream tracking server
type RangerGW interface {
	// ValidateCredentials authenticates the given credentials against the
	// upstream server without touching the service's own session
	ValidateCredentials(ctx context.Context, username, password string) error
	GetSources(ctx context.Context) ([]models.Source, error)
	GetObservations(ctx context.Context, sourceIDs []string, since, until time.Time) ([]models.Observation, error)
	GetPatrols(ctx context.Context, since, until time.Time, status string) ([]models.Patrol, error)
}

// EventsGW defines the interface for publishing fleet events
type EventsGW interface {
	PublishLocationUpdated(ctx context.Context, event *models.LocationUpdatedEvent) error
	PublishBatteryCritical(ctx context.Context, event *models.BatteryAlertEvent) error
	PublishFleetRefreshed(ctx context.Context, summary *models.FleetRefreshSummary) error
}
