package services

import (
	"sort"

	"github.com/twigalabs/rangertrack/internal/pkg/models"
	"github.com/twigalabs/rangertrack/internal/utils"
)

// LatestPerUnit reduces a batch of observations to the most recent fix per
// unit, enriched with the latest battery reading and a geohash. Any non-empty
// input yields exactly one record per distinct source ID; an empty input
// yields an empty slice. Results are sorted by source ID for stable output.
func LatestPerUnit(observations []models.Observation) []*models.LastKnownLocation {
	latest := make(map[string]models.Observation)
	for _, obs := range observations {
		current, seen := latest[obs.SourceID]
		if !seen || obs.RecordedAt.After(current.RecordedAt) {
			latest[obs.SourceID] = obs
		}
	}

	results := make([]*models.LastKnownLocation, 0, len(latest))
	for _, obs := range latest {
		results = append(results, lastKnownFrom(obs))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].SourceID < results[j].SourceID
	})
	return results
}

func lastKnownFrom(obs models.Observation) *models.LastKnownLocation {
	location := &models.LastKnownLocation{
		SourceID:   obs.SourceID,
		Location:   obs.Location,
		RecordedAt: obs.RecordedAt,
		Geohash:    utils.EncodeLocation(obs.Location, 9),
	}

	if voltage, ok := BatteryVoltage(obs.Additional); ok {
		location.BatteryVoltage = &voltage
	}
	location.BatteryStatus = BatteryStatusFor(location.BatteryVoltage)

	return location
}
