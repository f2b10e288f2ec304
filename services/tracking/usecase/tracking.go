package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/twigalabs/rangertrack/internal/pkg/jwt"
	"github.com/twigalabs/rangertrack/internal/pkg/logger"
	"github.com/twigalabs/rangertrack/internal/pkg/metrics"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/services/tracking"
	"github.com/twigalabs/rangertrack/services/tracking/services"
)

const (
	serviceName           = "rangertrack-tracking"
	defaultWindowDays     = 30
	defaultRefreshMinutes = 15
)

// TrackingUsecase implements the tracking.TrackingUC interface
type TrackingUsecase struct {
	cfg           *models.Config
	lastKnownRepo tracking.LastKnownRepo
	trackRepo     tracking.TrackRepo
	rangerGW      tracking.RangerGW
	eventsGW      tracking.EventsGW

	// Fleet roster from the last successful source fetch, keyed by source ID
	mu      sync.RWMutex
	sources map[string]models.Source
}

// NewTrackingUsecase creates a new tracking use case
func NewTrackingUsecase(
	cfg *models.Config,
	lastKnownRepo tracking.LastKnownRepo,
	trackRepo tracking.TrackRepo,
	rangerGW tracking.RangerGW,
	eventsGW tracking.EventsGW,
) *TrackingUsecase {
	return &TrackingUsecase{
		cfg:           cfg,
		lastKnownRepo: lastKnownRepo,
		trackRepo:     trackRepo,
		rangerGW:      rangerGW,
		eventsGW:      eventsGW,
		sources:       make(map[string]models.Source),
	}
}

func (uc *TrackingUsecase) windowDays() int {
	if uc.cfg.Tracking.WindowDays > 0 {
		return uc.cfg.Tracking.WindowDays
	}
	return defaultWindowDays
}

// Login validates the caller's upstream credentials and issues a local
// session token
func (uc *TrackingUsecase) Login(ctx context.Context, username, password string) (string, int64, error) {
	if err := uc.rangerGW.ValidateCredentials(ctx, username, password); err != nil {
		return "", 0, err
	}
	return jwt.GenerateToken(username, "ranger", uc.cfg)
}

// ListUnits returns the active fleet, excluding dummy-provider and inactive
// units, optionally narrowed to one provider tag
func (uc *TrackingUsecase) ListUnits(ctx context.Context, provider string) ([]models.Source, error) {
	sources, err := uc.rangerGW.GetSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fleet: %w", err)
	}

	units := filterSources(sources, provider)
	uc.rememberSources(units)
	return units, nil
}

func filterSources(sources []models.Source, provider string) []models.Source {
	units := make([]models.Source, 0, len(sources))
	for _, source := range sources {
		if source.Provider == "dummy" || !source.IsActive {
			continue
		}
		if provider != "" && source.Provider != provider {
			continue
		}
		units = append(units, source)
	}
	return units
}

func (uc *TrackingUsecase) rememberSources(sources []models.Source) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, source := range sources {
		uc.sources[source.ID] = source
	}
}

func (uc *TrackingUsecase) sourceByID(sourceID string) (models.Source, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	source, ok := uc.sources[sourceID]
	return source, ok
}

// GetUnitHealth returns the latest archived health snapshot for a unit,
// computing a fresh one from upstream when none exists yet
func (uc *TrackingUsecase) GetUnitHealth(ctx context.Context, sourceID string) (*models.UnitHealth, error) {
	health, err := uc.trackRepo.GetLatestUnitHealth(ctx, sourceID)
	if err == nil {
		return health, nil
	}
	if !errors.Is(err, tracking.ErrUnitNotFound) {
		return nil, err
	}

	until := time.Now()
	since := until.AddDate(0, 0, -uc.windowDays())
	observations, err := uc.rangerGW.GetObservations(ctx, []string{sourceID}, since, until)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch observations for %s: %w", sourceID, err)
	}

	source, _ := uc.sourceByID(sourceID)
	health = uc.computeUnitHealth(sourceID, source, observations)

	if err := uc.trackRepo.StoreUnitHealth(ctx, health); err != nil {
		logger.WarnCtx(ctx, "Failed to archive unit health snapshot",
			logger.Err(err),
			logger.String("source_id", sourceID))
	}
	return health, nil
}

func (uc *TrackingUsecase) computeUnitHealth(sourceID string, source models.Source, observations []models.Observation) *models.UnitHealth {
	windowDays := uc.windowDays()
	health := &models.UnitHealth{
		SourceID:      sourceID,
		SourceName:    source.Name,
		Provider:      source.Provider,
		WindowDays:    windowDays,
		BatteryStatus: models.BatteryUnknown,
		CheckedAt:     time.Now().UTC(),
	}

	health.ObservationCount = len(observations)
	health.FixesPerDay = float64(len(observations)) / float64(windowDays)

	var (
		batterySum      float64
		latestFix       time.Time
		latestBatteryAt time.Time
		latestVoltage   *float64
	)
	for _, obs := range observations {
		if obs.RecordedAt.After(latestFix) {
			latestFix = obs.RecordedAt
		}
		if voltage, ok := services.BatteryVoltage(obs.Additional); ok {
			batterySum += voltage
			health.BatteryReadings++
			if latestVoltage == nil || obs.RecordedAt.After(latestBatteryAt) {
				latestBatteryAt = obs.RecordedAt
				v := voltage
				latestVoltage = &v
			}
		}
	}

	if !latestFix.IsZero() {
		fix := latestFix
		health.LastFixAt = &fix
	}
	if health.BatteryReadings > 0 {
		mean := batterySum / float64(health.BatteryReadings)
		health.MeanBattery = &mean
	}
	health.BatteryStatus = services.BatteryStatusFor(latestVoltage)

	// Cadence expectations vary per device model; only flag when configured
	expected := uc.cfg.Tracking.ExpectedFixesPerDay
	if expected > 0 && health.FixesPerDay < expected {
		health.UnderReporting = true
	}

	return health
}

// GetUnitTrack assembles the unit's polyline over [since, until] from
// upstream observations. Fewer than two fixes yield ErrNoLocation.
func (uc *TrackingUsecase) GetUnitTrack(ctx context.Context, sourceID string, since, until time.Time) (*models.Track, error) {
	observations, err := uc.rangerGW.GetObservations(ctx, []string{sourceID}, since, until)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch observations for %s: %w", sourceID, err)
	}

	result := services.AssembleTracks(observations, services.KeyBySource)
	if len(result.Tracks) == 0 {
		return nil, tracking.ErrNoLocation
	}
	return result.Tracks[0], nil
}

// GetLatestLocations returns the last known location of every active unit
func (uc *TrackingUsecase) GetLatestLocations(ctx context.Context) ([]*models.LastKnownLocation, error) {
	return uc.lastKnownRepo.GetAllLastKnown(ctx)
}

// GetNearbyUnits returns units within radiusKm of the point, falling back to
// the configured default radius
func (uc *TrackingUsecase) GetNearbyUnits(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.NearbyUnit, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Tracking.SearchRadiusKm
	}
	if radiusKm <= 0 {
		radiusKm = 10.0
	}
	return uc.lastKnownRepo.GetNearbyUnits(ctx, latitude, longitude, radiusKm)
}

// GetPatrols returns patrols in the window with their reconstructed tracks.
// A patrol whose fixes cannot be fetched is returned without a track.
func (uc *TrackingUsecase) GetPatrols(ctx context.Context, since, until time.Time, status string) ([]*models.PatrolWithTrack, error) {
	patrols, err := uc.rangerGW.GetPatrols(ctx, since, until, status)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patrols: %w", err)
	}

	results := make([]*models.PatrolWithTrack, 0, len(patrols))
	for _, patrol := range patrols {
		entry := &models.PatrolWithTrack{Patrol: patrol}
		results = append(results, entry)

		if patrol.SubjectID == "" {
			continue
		}

		patrolEnd := patrol.EndTime
		if patrolEnd.IsZero() {
			patrolEnd = time.Now()
		}
		observations, err := uc.rangerGW.GetObservations(ctx, []string{patrol.SubjectID}, patrol.StartTime, patrolEnd)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to fetch patrol fixes, returning patrol without track",
				logger.Err(err),
				logger.String("patrol_id", patrol.ID))
			continue
		}

		patrolID := patrol.ID
		assembled := services.AssembleTracks(observations, func(models.Observation) string { return patrolID })
		if len(assembled.Tracks) > 0 {
			entry.Track = assembled.Tracks[0]
		}
	}
	return results, nil
}

// RefreshFleet pulls the observation window for every active unit of the
// provider, assembles and archives tracks, updates the last-known store and
// publishes events. One failing unit never aborts the pass.
func (uc *TrackingUsecase) RefreshFleet(ctx context.Context, provider string) (*models.FleetRefreshSummary, error) {
	if provider == "" {
		provider = uc.cfg.Tracking.DefaultProvider
	}

	summary := &models.FleetRefreshSummary{
		Provider:  provider,
		StartedAt: time.Now().UTC(),
	}

	sources, err := uc.ListUnits(ctx, provider)
	if err != nil {
		return nil, err
	}
	summary.Sources = len(sources)

	until := time.Now()
	since := until.AddDate(0, 0, -uc.windowDays())

	for _, source := range sources {
		observations, err := uc.rangerGW.GetObservations(ctx, []string{source.ID}, since, until)
		if err != nil {
			logger.WarnCtx(ctx, "Unit fetch failed, continuing with the rest",
				logger.Err(err),
				logger.String("source_id", source.ID),
				logger.String("source_name", source.Name))
			summary.FailedUnits = append(summary.FailedUnits, source.ID)
			continue
		}
		summary.Observations += len(observations)

		uc.applyLatest(ctx, source, observations)

		assembled := services.AssembleTracks(observations, services.KeyBySource)
		summary.Skipped = append(summary.Skipped, assembled.Skipped...)
		for _, track := range assembled.Tracks {
			if err := uc.trackRepo.StoreTrack(ctx, track); err != nil {
				logger.WarnCtx(ctx, "Failed to archive track",
					logger.Err(err),
					logger.String("track_key", track.TrackKey))
				continue
			}
			summary.Tracks++
		}

		health := uc.computeUnitHealth(source.ID, source, observations)
		if err := uc.trackRepo.StoreUnitHealth(ctx, health); err != nil {
			logger.WarnCtx(ctx, "Failed to archive unit health snapshot",
				logger.Err(err),
				logger.String("source_id", source.ID))
		}
	}

	summary.FinishedAt = time.Now().UTC()
	metrics.RecordFleetRefresh(serviceName, provider,
		summary.Observations, summary.Tracks, len(summary.Skipped), len(summary.FailedUnits),
		summary.FinishedAt.Sub(summary.StartedAt))

	if err := uc.eventsGW.PublishFleetRefreshed(ctx, summary); err != nil {
		logger.WarnCtx(ctx, "Failed to publish refresh summary", logger.Err(err))
	}

	logger.InfoCtx(ctx, "Fleet refresh finished",
		logger.String("provider", provider),
		logger.Int("sources", summary.Sources),
		logger.Int("observations", summary.Observations),
		logger.Int("tracks", summary.Tracks),
		logger.Int("failed_units", len(summary.FailedUnits)))

	return summary, nil
}

// applyLatest updates the last-known store from a unit's fresh observations
// and publishes the resulting events
func (uc *TrackingUsecase) applyLatest(ctx context.Context, source models.Source, observations []models.Observation) {
	latest := services.LatestPerUnit(observations)
	if len(latest) == 0 {
		return
	}
	// Observations were fetched for a single unit
	location := latest[0]

	previous, err := uc.lastKnownRepo.GetLastKnown(ctx, location.SourceID)
	previousCritical := err == nil && previous.BatteryStatus == models.BatteryCritical

	if err := uc.lastKnownRepo.StoreLastKnown(ctx, location); err != nil {
		logger.WarnCtx(ctx, "Failed to store last known location",
			logger.Err(err),
			logger.String("source_id", location.SourceID))
		return
	}

	if err := uc.eventsGW.PublishLocationUpdated(ctx, &models.LocationUpdatedEvent{
		SourceID:   location.SourceID,
		Location:   location.Location,
		RecordedAt: location.RecordedAt,
		Geohash:    location.Geohash,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish location update",
			logger.Err(err),
			logger.String("source_id", location.SourceID))
	}

	if location.BatteryStatus == models.BatteryCritical && !previousCritical {
		uc.alertBatteryCritical(ctx, source.Name, location)
	}
}

func (uc *TrackingUsecase) alertBatteryCritical(ctx context.Context, sourceName string, location *models.LastKnownLocation) {
	voltage := 0.0
	if location.BatteryVoltage != nil {
		voltage = *location.BatteryVoltage
	}
	if err := uc.eventsGW.PublishBatteryCritical(ctx, &models.BatteryAlertEvent{
		SourceID:   location.SourceID,
		SourceName: sourceName,
		Voltage:    voltage,
		Status:     location.BatteryStatus,
		RecordedAt: location.RecordedAt,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish battery alert",
			logger.Err(err),
			logger.String("source_id", location.SourceID))
	}
}

// IngestObservation applies one externally pushed fix. Older fixes than the
// stored last-known are ignored.
func (uc *TrackingUsecase) IngestObservation(ctx context.Context, observation models.Observation) error {
	if observation.SourceID == "" {
		return fmt.Errorf("observation has no source ID")
	}

	latest := services.LatestPerUnit([]models.Observation{observation})
	location := latest[0]

	previous, err := uc.lastKnownRepo.GetLastKnown(ctx, observation.SourceID)
	if err == nil && previous.RecordedAt.After(location.RecordedAt) {
		logger.DebugCtx(ctx, "Ignoring stale ingested fix",
			logger.String("source_id", observation.SourceID),
			logger.Time("recorded_at", location.RecordedAt),
			logger.Time("stored_at", previous.RecordedAt))
		return nil
	}
	if err != nil && !errors.Is(err, tracking.ErrNoLocation) {
		return err
	}
	previousCritical := err == nil && previous.BatteryStatus == models.BatteryCritical

	if err := uc.lastKnownRepo.StoreLastKnown(ctx, location); err != nil {
		return err
	}

	if err := uc.eventsGW.PublishLocationUpdated(ctx, &models.LocationUpdatedEvent{
		SourceID:   location.SourceID,
		Location:   location.Location,
		RecordedAt: location.RecordedAt,
		Geohash:    location.Geohash,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish location update",
			logger.Err(err),
			logger.String("source_id", location.SourceID))
	}

	if location.BatteryStatus == models.BatteryCritical && !previousCritical {
		source, _ := uc.sourceByID(location.SourceID)
		uc.alertBatteryCritical(ctx, source.Name, location)
	}
	return nil
}

// StartRefreshLoop runs RefreshFleet on the configured interval until the
// context is cancelled. The first pass runs immediately.
func (uc *TrackingUsecase) StartRefreshLoop(ctx context.Context) {
	minutes := uc.cfg.Tracking.RefreshIntervalMin
	if minutes <= 0 {
		minutes = defaultRefreshMinutes
	}
	interval := time.Duration(minutes) * time.Minute

	run := func() {
		if _, err := uc.RefreshFleet(ctx, uc.cfg.Tracking.DefaultProvider); err != nil {
			logger.Error("Scheduled fleet refresh failed", logger.Err(err))
		}
	}

	logger.Info("Starting fleet refresh loop", logger.Duration("interval", interval))
	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("Fleet refresh loop stopped")
			return
		case <-ticker.C:
			run()
		}
	}
}
