package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/internal/utils"
)

// TrackKeyFunc chooses the grouping key for track assembly
type TrackKeyFunc func(models.Observation) string

// KeyBySource groups observations into one track per tracking unit
func KeyBySource(obs models.Observation) string {
	return obs.SourceID
}

// AssembleTracks groups observations by track key and builds an ordered
// polyline per group. Points are sorted ascending by recorded-at; the sort is
// stable, so fixes with equal timestamps keep their input order. Groups with
// fewer than two points cannot form a line and are reported as skipped
// diagnostics rather than errors.
func AssembleTracks(observations []models.Observation, keyFn TrackKeyFunc) *models.AssemblyResult {
	if keyFn == nil {
		keyFn = KeyBySource
	}

	groups := make(map[string][]models.Observation)
	var order []string
	for _, obs := range observations {
		key := keyFn(obs)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], obs)
	}

	result := &models.AssemblyResult{}
	for _, key := range order {
		group := groups[key]
		if len(group) < 2 {
			result.Skipped = append(result.Skipped, models.SkippedTrack{
				TrackKey:   key,
				PointCount: len(group),
				Reason:     "fewer than two points",
			})
			continue
		}
		result.Tracks = append(result.Tracks, buildTrack(key, group))
	}
	return result
}

func buildTrack(key string, group []models.Observation) *models.Track {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].RecordedAt.Before(group[j].RecordedAt)
	})

	points := make([]models.TrackPoint, len(group))
	for i, obs := range group {
		points[i] = models.TrackPoint{
			Latitude:   obs.Location.Latitude,
			Longitude:  obs.Location.Longitude,
			RecordedAt: obs.RecordedAt,
		}
	}

	length := 0.0
	for i := 1; i < len(points); i++ {
		length += utils.FlatDistanceKm(
			utils.GeoPoint{Latitude: points[i-1].Latitude, Longitude: points[i-1].Longitude},
			utils.GeoPoint{Latitude: points[i].Latitude, Longitude: points[i].Longitude},
		)
	}

	return &models.Track{
		ID:         uuid.New().String(),
		TrackKey:   key,
		Points:     points,
		PointCount: len(points),
		LengthKm:   length,
		StartTime:  points[0].RecordedAt,
		EndTime:    points[len(points)-1].RecordedAt,
	}
}
