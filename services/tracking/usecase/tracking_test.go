package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twigalabs/rangertrack/internal/pkg/jwt"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/services/tracking"
	"github.com/twigalabs/rangertrack/services/tracking/mocks"
)

type usecaseMocks struct {
	lastKnown *mocks.MockLastKnownRepo
	tracks    *mocks.MockTrackRepo
	ranger    *mocks.MockRangerGW
	events    *mocks.MockEventsGW
}

func setupUsecase(t *testing.T, cfg *models.Config) (*TrackingUsecase, usecaseMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := usecaseMocks{
		lastKnown: mocks.NewMockLastKnownRepo(ctrl),
		tracks:    mocks.NewMockTrackRepo(ctrl),
		ranger:    mocks.NewMockRangerGW(ctrl),
		events:    mocks.NewMockEventsGW(ctrl),
	}

	if cfg == nil {
		cfg = &models.Config{
			JWT: models.JWTConfig{
				Secret:     "test-secret",
				Expiration: 60,
				Issuer:     "rangertrack",
			},
			Tracking: models.TrackingConfig{
				WindowDays:     30,
				SearchRadiusKm: 10,
			},
		}
	}

	return NewTrackingUsecase(cfg, m.lastKnown, m.tracks, m.ranger, m.events), m
}

func fleetSources() []models.Source {
	return []models.Source{
		{ID: "src-1", Name: "collar-7", Provider: "savannah", IsActive: true},
		{ID: "src-2", Name: "collar-9", Provider: "savannah", IsActive: true},
		{ID: "src-3", Name: "test-unit", Provider: "dummy", IsActive: true},
		{ID: "src-4", Name: "retired", Provider: "savannah", IsActive: false},
		{ID: "src-5", Name: "eartag-1", Provider: "lowveld", IsActive: true},
	}
}

func fixes(sourceID string, count int, battery float64) []models.Observation {
	base := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)
	observations := make([]models.Observation, count)
	for i := 0; i < count; i++ {
		var additional map[string]interface{}
		if battery > 0 {
			additional = map[string]interface{}{"battery": battery}
		}
		observations[i] = models.Observation{
			ID:         sourceID + "-fix",
			SourceID:   sourceID,
			RecordedAt: base.Add(time.Duration(i) * time.Hour),
			Location:   models.Location{Latitude: -1.29 + float64(i)*0.001, Longitude: 36.82},
			Additional: additional,
		}
	}
	return observations
}

func TestLogin(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.ranger.EXPECT().ValidateCredentials(ctx, "ranger.one", "secret").Return(nil)

	token, expiresAt, err := uc.Login(ctx, "ranger.one", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := jwt.ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "ranger.one", (*claims)["username"])
}

func TestLogin_BadCredentials(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.ranger.EXPECT().ValidateCredentials(ctx, "ranger.one", "wrong").Return(assert.AnError)

	_, _, err := uc.Login(ctx, "ranger.one", "wrong")

	assert.Error(t, err)
}

func TestListUnits_FiltersDummyAndInactive(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.ranger.EXPECT().GetSources(ctx).Return(fleetSources(), nil)

	units, err := uc.ListUnits(ctx, "")

	require.NoError(t, err)
	require.Len(t, units, 3)
	for _, unit := range units {
		assert.NotEqual(t, "dummy", unit.Provider)
		assert.True(t, unit.IsActive)
	}
}

func TestListUnits_ProviderFilter(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.ranger.EXPECT().GetSources(ctx).Return(fleetSources(), nil)

	units, err := uc.ListUnits(ctx, "lowveld")

	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "src-5", units[0].ID)
}

func TestGetUnitTrack(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, since, until).
		Return(fixes("src-1", 3, 3.7), nil)

	track, err := uc.GetUnitTrack(ctx, "src-1", since, until)

	require.NoError(t, err)
	assert.Equal(t, "src-1", track.TrackKey)
	assert.Equal(t, 3, track.PointCount)
	assert.Greater(t, track.LengthKm, 0.0)
}

func TestGetUnitTrack_SingleFix(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, since, until).
		Return(fixes("src-1", 1, 3.7), nil)

	_, err := uc.GetUnitTrack(ctx, "src-1", since, until)

	assert.ErrorIs(t, err, tracking.ErrNoLocation)
}

func TestGetUnitHealth_FromArchive(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	archived := &models.UnitHealth{SourceID: "src-1", ObservationCount: 120}
	m.tracks.EXPECT().GetLatestUnitHealth(ctx, "src-1").Return(archived, nil)

	health, err := uc.GetUnitHealth(ctx, "src-1")

	require.NoError(t, err)
	assert.Equal(t, archived, health)
}

func TestGetUnitHealth_ComputedWhenMissing(t *testing.T) {
	cfg := &models.Config{
		Tracking: models.TrackingConfig{
			WindowDays:          30,
			ExpectedFixesPerDay: 4.0,
		},
	}
	uc, m := setupUsecase(t, cfg)
	ctx := context.Background()

	m.tracks.EXPECT().GetLatestUnitHealth(ctx, "src-1").Return(nil, tracking.ErrUnitNotFound)
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, gomock.Any(), gomock.Any()).
		Return(fixes("src-1", 60, 3.2), nil)
	m.tracks.EXPECT().StoreUnitHealth(ctx, gomock.Any()).Return(nil)

	health, err := uc.GetUnitHealth(ctx, "src-1")

	require.NoError(t, err)
	assert.Equal(t, 60, health.ObservationCount)
	assert.InDelta(t, 2.0, health.FixesPerDay, 0.0001)
	assert.Equal(t, models.BatteryWarning, health.BatteryStatus)
	require.NotNil(t, health.MeanBattery)
	assert.InDelta(t, 3.2, *health.MeanBattery, 0.0001)
	// 2 fixes/day against an expected 4
	assert.True(t, health.UnderReporting)
}

func TestGetUnitHealth_NoExpectedRateNeverFlags(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.tracks.EXPECT().GetLatestUnitHealth(ctx, "src-1").Return(nil, tracking.ErrUnitNotFound)
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, gomock.Any(), gomock.Any()).
		Return(fixes("src-1", 1, 3.7), nil)
	m.tracks.EXPECT().StoreUnitHealth(ctx, gomock.Any()).Return(nil)

	health, err := uc.GetUnitHealth(ctx, "src-1")

	require.NoError(t, err)
	assert.False(t, health.UnderReporting)
}

func TestRefreshFleet(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.ranger.EXPECT().GetSources(ctx).Return([]models.Source{
		{ID: "src-1", Name: "collar-7", Provider: "savannah", IsActive: true},
		{ID: "src-2", Name: "collar-9", Provider: "savannah", IsActive: true},
	}, nil)

	// src-1 reports a healthy window of fixes
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, gomock.Any(), gomock.Any()).
		Return(fixes("src-1", 3, 3.7), nil)
	m.lastKnown.EXPECT().GetLastKnown(ctx, "src-1").Return(nil, tracking.ErrNoLocation)
	m.lastKnown.EXPECT().StoreLastKnown(ctx, gomock.Any()).Return(nil)
	m.events.EXPECT().PublishLocationUpdated(ctx, gomock.Any()).Return(nil)
	m.tracks.EXPECT().StoreTrack(ctx, gomock.Any()).Return(nil)
	m.tracks.EXPECT().StoreUnitHealth(ctx, gomock.Any()).Return(nil)

	// src-2 fails upstream and is skipped
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-2"}, gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	m.events.EXPECT().PublishFleetRefreshed(ctx, gomock.Any()).Return(nil)

	summary, err := uc.RefreshFleet(ctx, "savannah")

	require.NoError(t, err)
	assert.Equal(t, "savannah", summary.Provider)
	assert.Equal(t, 2, summary.Sources)
	assert.Equal(t, 3, summary.Observations)
	assert.Equal(t, 1, summary.Tracks)
	assert.Equal(t, []string{"src-2"}, summary.FailedUnits)
	assert.False(t, summary.FinishedAt.Before(summary.StartedAt))
}

func TestRefreshFleet_BatteryCriticalTransition(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.ranger.EXPECT().GetSources(ctx).Return([]models.Source{
		{ID: "src-1", Name: "collar-7", Provider: "savannah", IsActive: true},
	}, nil)
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, gomock.Any(), gomock.Any()).
		Return(fixes("src-1", 2, 2.7), nil)

	// Previously Good, now Critical
	m.lastKnown.EXPECT().GetLastKnown(ctx, "src-1").
		Return(&models.LastKnownLocation{SourceID: "src-1", BatteryStatus: models.BatteryGood}, nil)
	m.lastKnown.EXPECT().StoreLastKnown(ctx, gomock.Any()).Return(nil)
	m.events.EXPECT().PublishLocationUpdated(ctx, gomock.Any()).Return(nil)
	m.events.EXPECT().PublishBatteryCritical(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.BatteryAlertEvent) error {
			assert.Equal(t, "src-1", event.SourceID)
			assert.Equal(t, "collar-7", event.SourceName)
			assert.InDelta(t, 2.7, event.Voltage, 0.0001)
			return nil
		})
	m.tracks.EXPECT().StoreTrack(ctx, gomock.Any()).Return(nil)
	m.tracks.EXPECT().StoreUnitHealth(ctx, gomock.Any()).Return(nil)
	m.events.EXPECT().PublishFleetRefreshed(ctx, gomock.Any()).Return(nil)

	_, err := uc.RefreshFleet(ctx, "savannah")

	require.NoError(t, err)
}

func TestRefreshFleet_AlreadyCriticalNoRepeatAlert(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.ranger.EXPECT().GetSources(ctx).Return([]models.Source{
		{ID: "src-1", Name: "collar-7", Provider: "savannah", IsActive: true},
	}, nil)
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, gomock.Any(), gomock.Any()).
		Return(fixes("src-1", 2, 2.7), nil)
	m.lastKnown.EXPECT().GetLastKnown(ctx, "src-1").
		Return(&models.LastKnownLocation{SourceID: "src-1", BatteryStatus: models.BatteryCritical}, nil)
	m.lastKnown.EXPECT().StoreLastKnown(ctx, gomock.Any()).Return(nil)
	m.events.EXPECT().PublishLocationUpdated(ctx, gomock.Any()).Return(nil)
	m.tracks.EXPECT().StoreTrack(ctx, gomock.Any()).Return(nil)
	m.tracks.EXPECT().StoreUnitHealth(ctx, gomock.Any()).Return(nil)
	m.events.EXPECT().PublishFleetRefreshed(ctx, gomock.Any()).Return(nil)

	_, err := uc.RefreshFleet(ctx, "savannah")

	require.NoError(t, err)
}

func TestIngestObservation(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	obs := fixes("src-1", 1, 3.7)[0]

	m.lastKnown.EXPECT().GetLastKnown(ctx, "src-1").Return(nil, tracking.ErrNoLocation)
	m.lastKnown.EXPECT().StoreLastKnown(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, location *models.LastKnownLocation) error {
			assert.Equal(t, "src-1", location.SourceID)
			assert.Equal(t, obs.RecordedAt, location.RecordedAt)
			return nil
		})
	m.events.EXPECT().PublishLocationUpdated(ctx, gomock.Any()).Return(nil)

	err := uc.IngestObservation(ctx, obs)

	require.NoError(t, err)
}

func TestIngestObservation_StaleFixIgnored(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	obs := fixes("src-1", 1, 3.7)[0]

	m.lastKnown.EXPECT().GetLastKnown(ctx, "src-1").
		Return(&models.LastKnownLocation{
			SourceID:   "src-1",
			RecordedAt: obs.RecordedAt.Add(time.Hour),
		}, nil)

	err := uc.IngestObservation(ctx, obs)

	require.NoError(t, err)
}

func TestIngestObservation_NoSourceID(t *testing.T) {
	uc, _ := setupUsecase(t, nil)

	err := uc.IngestObservation(context.Background(), models.Observation{})

	assert.Error(t, err)
}

func TestGetNearbyUnits_DefaultRadius(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()

	m.lastKnown.EXPECT().
		GetNearbyUnits(ctx, -1.2921, 36.8219, 10.0).
		Return([]*models.NearbyUnit{{SourceID: "src-1", DistanceKm: 2.4}}, nil)

	units, err := uc.GetNearbyUnits(ctx, -1.2921, 36.8219, 0)

	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "src-1", units[0].SourceID)
}

func TestGetPatrols_ReconstructsTracks(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	patrolStart := time.Date(2026, 8, 10, 6, 0, 0, 0, time.UTC)
	patrols := []models.Patrol{
		{ID: "patrol-1", Title: "boundary sweep", State: "done", StartTime: patrolStart, EndTime: patrolStart.Add(8 * time.Hour), SubjectID: "src-1"},
		{ID: "patrol-2", Title: "no subject", State: "done", StartTime: patrolStart},
	}

	m.ranger.EXPECT().GetPatrols(ctx, since, until, "done").Return(patrols, nil)
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, patrolStart, patrolStart.Add(8*time.Hour)).
		Return(fixes("src-1", 4, 3.7), nil)

	results, err := uc.GetPatrols(ctx, since, until, "done")

	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NotNil(t, results[0].Track)
	assert.Equal(t, "patrol-1", results[0].Track.TrackKey)
	assert.Equal(t, 4, results[0].Track.PointCount)

	assert.Nil(t, results[1].Track)
}

func TestGetPatrols_FetchFailureLeavesPatrolWithoutTrack(t *testing.T) {
	uc, m := setupUsecase(t, nil)
	ctx := context.Background()
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	patrolStart := time.Date(2026, 8, 10, 6, 0, 0, 0, time.UTC)
	m.ranger.EXPECT().GetPatrols(ctx, since, until, "").Return([]models.Patrol{
		{ID: "patrol-1", StartTime: patrolStart, EndTime: patrolStart.Add(time.Hour), SubjectID: "src-1"},
	}, nil)
	m.ranger.EXPECT().
		GetObservations(ctx, []string{"src-1"}, patrolStart, patrolStart.Add(time.Hour)).
		Return(nil, assert.AnError)

	results, err := uc.GetPatrols(ctx, since, until, "")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Track)
}
