package tracking

import (
	"context"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/twigalabs/rangertrack/services/tracking TrackingUC

// TrackingUC defines the interface for tracking business logic
type TrackingUC interface {
	// Login validates upstream credentials and issues a local session token
	Login(ctx context.Context, username, password string) (token string, expiresAt int64, err error)

	// Fleet queries
	ListUnits(ctx context.Context, provider string) ([]models.Source, error)
	GetUnitHealth(ctx context.Context, sourceID string) (*models.UnitHealth, error)
	GetUnitTrack(ctx context.Context, sourceID string, since, until time.Time) (*models.Track, error)
	GetLatestLocations(ctx context.Context) ([]*models.LastKnownLocation, error)
	GetNearbyUnits(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyUnit, error)
	GetPatrols(ctx context.Context, since, until time.Time, status string) ([]*models.PatrolWithTrack, error)

	// RefreshFleet fetches the window of observations for every active unit
	// of the provider, assembles tracks, updates the last-known store and
	// publishes events. A failing unit is logged and skipped.
	RefreshFleet(ctx context.Context, provider string) (*models.FleetRefreshSummary, error)

	// IngestObservation applies one externally pushed fix to the last-known
	// store without a full refresh
	IngestObservation(ctx context.Context, observation models.Observation) error

	// StartRefreshLoop runs RefreshFleet periodically until ctx is cancelled
	StartRefreshLoop(ctx context.Context)
}
