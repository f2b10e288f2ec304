package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twigalabs/rangertrack/internal/pkg/database"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/services/tracking"
)

func setupTrackRepo(t *testing.T) (*TrackRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	pgClient := database.NewPostgresClientFromDB(sqlx.NewDb(mockDB, "pgx"))
	return NewTrackRepository(&models.Config{}, pgClient), mock
}

func sampleTrack() *models.Track {
	start := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)
	return &models.Track{
		ID:       "track-1",
		TrackKey: "collar-7",
		Points: []models.TrackPoint{
			{Latitude: -1.2921, Longitude: 36.8219, RecordedAt: start},
			{Latitude: -1.3000, Longitude: 36.8300, RecordedAt: start.Add(time.Hour)},
		},
		PointCount: 2,
		LengthKm:   1.26,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}
}

func TestStoreTrack(t *testing.T) {
	repo, mock := setupTrackRepo(t)
	track := sampleTrack()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tracks").
		WithArgs(track.ID, track.TrackKey, track.PointCount, track.LengthKm, track.StartTime, track.EndTime).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO track_points").
		WithArgs(track.ID, 0, track.Points[0].Latitude, track.Points[0].Longitude, track.Points[0].RecordedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO track_points").
		WithArgs(track.ID, 1, track.Points[1].Latitude, track.Points[1].Longitude, track.Points[1].RecordedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.StoreTrack(context.Background(), track)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreTrack_RollsBackOnPointFailure(t *testing.T) {
	repo, mock := setupTrackRepo(t)
	track := sampleTrack()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tracks").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO track_points").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.StoreTrack(context.Background(), track)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert track point")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTracksByKey(t *testing.T) {
	repo, mock := setupTrackRepo(t)
	start := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, track_key, point_count").
		WithArgs("collar-7", start.Add(24*time.Hour), start.Add(-24*time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "track_key", "point_count", "length_km", "start_time", "end_time", "created_at",
		}).AddRow("track-1", "collar-7", 2, 1.26, start, start.Add(time.Hour), start.Add(time.Hour)))
	mock.ExpectQuery("SELECT latitude, longitude, recorded_at").
		WithArgs("track-1").
		WillReturnRows(sqlmock.NewRows([]string{"latitude", "longitude", "recorded_at"}).
			AddRow(-1.2921, 36.8219, start).
			AddRow(-1.3000, 36.8300, start.Add(time.Hour)))

	tracks, err := repo.GetTracksByKey(context.Background(),
		"collar-7", start.Add(-24*time.Hour), start.Add(24*time.Hour))

	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "collar-7", tracks[0].TrackKey)
	require.Len(t, tracks[0].Points, 2)
	assert.InDelta(t, -1.2921, tracks[0].Points[0].Latitude, 0.0001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreUnitHealth(t *testing.T) {
	repo, mock := setupTrackRepo(t)

	voltage := 3.4
	lastFix := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	health := &models.UnitHealth{
		SourceID:         "collar-7",
		SourceName:       "Twiga 7",
		Provider:         "savannah",
		WindowDays:       30,
		ObservationCount: 120,
		FixesPerDay:      4.0,
		MeanBattery:      &voltage,
		BatteryReadings:  118,
		BatteryStatus:    models.BatteryWarning,
		LastFixAt:        &lastFix,
		UnderReporting:   false,
		CheckedAt:        time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO unit_health").
		WithArgs(health.SourceID, health.SourceName, health.Provider, health.WindowDays,
			health.ObservationCount, health.FixesPerDay, health.MeanBattery,
			health.BatteryReadings, health.BatteryStatus, health.LastFixAt,
			health.UnderReporting, health.CheckedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.StoreUnitHealth(context.Background(), health)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestUnitHealth(t *testing.T) {
	repo, mock := setupTrackRepo(t)
	checkedAt := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT source_id, source_name, provider").
		WithArgs("collar-7").
		WillReturnRows(sqlmock.NewRows([]string{
			"source_id", "source_name", "provider", "window_days", "observation_count",
			"fixes_per_day", "mean_battery", "battery_readings", "battery_status",
			"last_fix_at", "under_reporting", "checked_at",
		}).AddRow("collar-7", "Twiga 7", "savannah", 30, 120, 4.0, 3.4, 118, "Warning", nil, false, checkedAt))

	health, err := repo.GetLatestUnitHealth(context.Background(), "collar-7")

	require.NoError(t, err)
	assert.Equal(t, "collar-7", health.SourceID)
	assert.Equal(t, models.BatteryWarning, health.BatteryStatus)
	assert.Equal(t, 4.0, health.FixesPerDay)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestUnitHealth_NotFound(t *testing.T) {
	repo, mock := setupTrackRepo(t)

	mock.ExpectQuery("SELECT source_id, source_name, provider").
		WithArgs("collar-404").
		WillReturnRows(sqlmock.NewRows([]string{"source_id"}))

	_, err := repo.GetLatestUnitHealth(context.Background(), "collar-404")

	assert.ErrorIs(t, err, tracking.ErrUnitNotFound)
}
