package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/constants"
	"github.com/twigalabs/rangertrack/internal/pkg/database"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/services/tracking"
)

// LastKnownRepository keeps each unit's latest fix in Redis: one hash per
// unit plus a shared geo set for radius queries
type LastKnownRepository struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewLastKnownRepository creates a new last-known-location repository
func NewLastKnownRepository(cfg *models.Config, redisClient *database.RedisClient) *LastKnownRepository {
	return &LastKnownRepository{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

func (r *LastKnownRepository) ttl() time.Duration {
	hours := r.cfg.Tracking.LocationTTLHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// StoreLastKnown upserts the unit's hash, refreshes its TTL and updates the
// geo index and active set
func (r *LastKnownRepository) StoreLastKnown(ctx context.Context, location *models.LastKnownLocation) error {
	key := fmt.Sprintf(constants.KeyUnitLocation, location.SourceID)

	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: location.RecordedAt.UTC().Format(time.RFC3339),
		constants.FieldStatus:    string(location.BatteryStatus),
		constants.FieldGeohash:   location.Geohash,
	}
	if location.BatteryVoltage != nil {
		fields[constants.FieldVoltage] = strconv.FormatFloat(*location.BatteryVoltage, 'f', -1, 64)
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store last known location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, r.ttl()); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyUnitsGeo,
		location.Location.Longitude, location.Location.Latitude, location.SourceID); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	if err := r.redisClient.SAdd(ctx, constants.KeyActiveUnits, location.SourceID); err != nil {
		return fmt.Errorf("failed to update active unit set: %w", err)
	}

	return nil
}

// GetLastKnown reads one unit's hash. A missing or expired hash yields
// ErrNoLocation.
func (r *LastKnownRepository) GetLastKnown(ctx context.Context, sourceID string) (*models.LastKnownLocation, error) {
	key := fmt.Sprintf(constants.KeyUnitLocation, sourceID)

	values, err := r.redisClient.HMGet(ctx, key,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldTimestamp,
		constants.FieldVoltage,
		constants.FieldStatus,
		constants.FieldGeohash,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read last known location: %w", err)
	}

	if values[0] == "" || values[1] == "" {
		return nil, tracking.ErrNoLocation
	}

	latitude, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored latitude for %s: %w", sourceID, err)
	}
	longitude, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stored longitude for %s: %w", sourceID, err)
	}

	location := &models.LastKnownLocation{
		SourceID: sourceID,
		Location: models.Location{
			Latitude:  latitude,
			Longitude: longitude,
		},
		BatteryStatus: models.BatteryUnknown,
		Geohash:       values[5],
	}

	if values[2] != "" {
		recordedAt, err := time.Parse(time.RFC3339, values[2])
		if err != nil {
			return nil, fmt.Errorf("invalid stored timestamp for %s: %w", sourceID, err)
		}
		location.RecordedAt = recordedAt
	}
	if values[3] != "" {
		voltage, err := strconv.ParseFloat(values[3], 64)
		if err == nil {
			location.BatteryVoltage = &voltage
		}
	}
	if values[4] != "" {
		location.BatteryStatus = models.BatteryStatus(values[4])
	}

	return location, nil
}

// GetAllLastKnown walks the active unit set. Units whose hashes have expired
// are pruned from the set instead of failing the listing.
func (r *LastKnownRepository) GetAllLastKnown(ctx context.Context) ([]*models.LastKnownLocation, error) {
	sourceIDs, err := r.redisClient.SMembers(ctx, constants.KeyActiveUnits)
	if err != nil {
		return nil, fmt.Errorf("failed to list active units: %w", err)
	}

	locations := make([]*models.LastKnownLocation, 0, len(sourceIDs))
	for _, sourceID := range sourceIDs {
		location, err := r.GetLastKnown(ctx, sourceID)
		if err == tracking.ErrNoLocation {
			_ = r.RemoveUnit(ctx, sourceID)
			continue
		}
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	return locations, nil
}

// GetNearbyUnits queries the geo index for units within radiusKm of the
// point, nearest first
func (r *LastKnownRepository) GetNearbyUnits(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyUnit, error) {
	results, err := r.redisClient.GeoRadius(ctx, constants.KeyUnitsGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby units: %w", err)
	}

	units := make([]*models.NearbyUnit, 0, len(results))
	for _, result := range results {
		units = append(units, &models.NearbyUnit{
			SourceID:   result.Name,
			Latitude:   result.Latitude,
			Longitude:  result.Longitude,
			DistanceKm: result.Dist,
		})
	}

	return units, nil
}

// RemoveUnit drops a unit from the location store, the geo index and the
// active set
func (r *LastKnownRepository) RemoveUnit(ctx context.Context, sourceID string) error {
	key := fmt.Sprintf(constants.KeyUnitLocation, sourceID)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete location hash: %w", err)
	}
	if err := r.redisClient.GeoRemove(ctx, constants.KeyUnitsGeo, sourceID); err != nil {
		return fmt.Errorf("failed to remove unit from geo index: %w", err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyActiveUnits, sourceID); err != nil {
		return fmt.Errorf("failed to remove unit from active set: %w", err)
	}

	return nil
}
