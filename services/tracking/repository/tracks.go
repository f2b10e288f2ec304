package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/database"
	"github.com/twigalabs/rangertrack/internal/pkg/metrics"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/services/tracking"
)

const trackServiceName = "rangertrack-tracking"

// TrackRepository archives assembled tracks and unit health snapshots in
// Postgres
type TrackRepository struct {
	cfg      *models.Config
	pgClient *database.PostgresClient
}

// NewTrackRepository creates a new track archive repository
func NewTrackRepository(cfg *models.Config, pgClient *database.PostgresClient) *TrackRepository {
	return &TrackRepository{
		cfg:      cfg,
		pgClient: pgClient,
	}
}

// StoreTrack archives a track and its points in one transaction
func (r *TrackRepository) StoreTrack(ctx context.Context, track *models.Track) error {
	start := time.Now()
	err := r.storeTrack(ctx, track)
	metrics.RecordDatabaseQuery(trackServiceName, "store_track", err, time.Since(start))
	return err
}

func (r *TrackRepository) storeTrack(ctx context.Context, track *models.Track) error {
	tx, err := r.pgClient.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tracks (id, track_key, point_count, length_km, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`,
		track.ID, track.TrackKey, track.PointCount, track.LengthKm, track.StartTime, track.EndTime)
	if err != nil {
		return fmt.Errorf("failed to insert track: %w", err)
	}

	for i, point := range track.Points {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO track_points (track_id, seq, latitude, longitude, recorded_at)
			VALUES ($1, $2, $3, $4, $5)`,
			track.ID, i, point.Latitude, point.Longitude, point.RecordedAt)
		if err != nil {
			return fmt.Errorf("failed to insert track point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit track: %w", err)
	}
	return nil
}

// GetTracksByKey returns archived tracks whose window overlaps [since, until],
// newest first, with their points loaded in recorded order
func (r *TrackRepository) GetTracksByKey(ctx context.Context, trackKey string, since, until time.Time) ([]*models.Track, error) {
	start := time.Now()
	tracks, err := r.getTracksByKey(ctx, trackKey, since, until)
	metrics.RecordDatabaseQuery(trackServiceName, "get_tracks", err, time.Since(start))
	return tracks, err
}

func (r *TrackRepository) getTracksByKey(ctx context.Context, trackKey string, since, until time.Time) ([]*models.Track, error) {
	var tracks []*models.Track
	err := r.pgClient.GetDB().SelectContext(ctx, &tracks, `
		SELECT id, track_key, point_count, length_km, start_time, end_time, created_at
		FROM tracks
		WHERE track_key = $1 AND start_time <= $2 AND end_time >= $3
		ORDER BY start_time DESC`,
		trackKey, until, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}

	for _, track := range tracks {
		err := r.pgClient.GetDB().SelectContext(ctx, &track.Points, `
			SELECT latitude, longitude, recorded_at
			FROM track_points
			WHERE track_id = $1
			ORDER BY seq ASC`,
			track.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load points for track %s: %w", track.ID, err)
		}
	}

	return tracks, nil
}

// StoreUnitHealth archives one health snapshot
func (r *TrackRepository) StoreUnitHealth(ctx context.Context, health *models.UnitHealth) error {
	start := time.Now()
	_, err := r.pgClient.GetDB().ExecContext(ctx, `
		INSERT INTO unit_health (
			source_id, source_name, provider, window_days, observation_count,
			fixes_per_day, mean_battery, battery_readings, battery_status,
			last_fix_at, under_reporting, checked_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		health.SourceID, health.SourceName, health.Provider, health.WindowDays,
		health.ObservationCount, health.FixesPerDay, health.MeanBattery,
		health.BatteryReadings, health.BatteryStatus, health.LastFixAt,
		health.UnderReporting, health.CheckedAt)
	metrics.RecordDatabaseQuery(trackServiceName, "store_unit_health", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to insert unit health: %w", err)
	}
	return nil
}

// GetLatestUnitHealth returns the most recent snapshot for a unit
func (r *TrackRepository) GetLatestUnitHealth(ctx context.Context, sourceID string) (*models.UnitHealth, error) {
	start := time.Now()
	health, err := r.getLatestUnitHealth(ctx, sourceID)
	metrics.RecordDatabaseQuery(trackServiceName, "get_unit_health", err, time.Since(start))
	return health, err
}

func (r *TrackRepository) getLatestUnitHealth(ctx context.Context, sourceID string) (*models.UnitHealth, error) {
	var health models.UnitHealth
	err := r.pgClient.GetDB().GetContext(ctx, &health, `
		SELECT source_id, source_name, provider, window_days, observation_count,
		       fixes_per_day, mean_battery, battery_readings, battery_status,
		       last_fix_at, under_reporting, checked_at
		FROM unit_health
		WHERE source_id = $1
		ORDER BY checked_at DESC
		LIMIT 1`,
		sourceID)
	if err == sql.ErrNoRows {
		return nil, tracking.ErrUnitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query unit health: %w", err)
	}
	return &health, nil
}
