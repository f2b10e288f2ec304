package tracking

import (
	"context"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/twigalabs/rangertrack/services/tracking LastKnownRepo,TrackRepo

// LastKnownRepo defines the interface for the hot last-known-location store
type LastKnownRepo interface {
	// StoreLastKnown upserts a unit's latest fix and refreshes its TTL
	StoreLastKnown(ctx context.Context, location *models.LastKnownLocation) error
	// GetLastKnown returns ErrNoLocation when nothing is stored for the unit
	GetLastKnown(ctx context.Context, sourceID string) (*models.LastKnownLocation, error)
	// GetAllLastKnown returns the latest fix of every unit seen in the
	// current window; an empty fleet yields an empty slice, not an error
	GetAllLastKnown(ctx context.Context) ([]*models.LastKnownLocation, error)
	// GetNearbyUnits returns units within radiusKm of the point, nearest first
	GetNearbyUnits(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyUnit, error)
	// RemoveUnit drops a unit from the store and the geo index
	RemoveUnit(ctx context.Context, sourceID string) error
}

// TrackRepo defines the interface for the track and health archive
type TrackRepo interface {
	// StoreTrack archives an assembled track with its points
	StoreTrack(ctx context.Context, track *models.Track) error
	// GetTracksByKey returns archived tracks for a track key overlapping the
	// window, newest first
	GetTracksByKey(ctx context.Context, trackKey string, since, until time.Time) ([]*models.Track, error)
	// StoreUnitHealth archives a unit health snapshot
	StoreUnitHealth(ctx context.Context, health *models.UnitHealth) error
	// GetLatestUnitHealth returns the most recent health snapshot for a unit,
	// or ErrUnitNotFound when none exists
	GetLatestUnitHealth(ctx context.Context, sourceID string) (*models.UnitHealth, error)
}
