package models

import "time"

// LocationUpdatedEvent is published whenever a unit's last known location
// changes after a refresh or an ingested fix
type LocationUpdatedEvent struct {
	SourceID   string    `json:"source_id"`
	Location   Location  `json:"location"`
	RecordedAt time.Time `json:"recorded_at"`
	Geohash    string    `json:"geohash,omitempty"`
}

// BatteryAlertEvent is published when a unit's battery status degrades to
// Critical
type BatteryAlertEvent struct {
	SourceID   string        `json:"source_id"`
	SourceName string        `json:"source_name,omitempty"`
	Voltage    float64       `json:"voltage"`
	Status     BatteryStatus `json:"status"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// ObservationIngestEvent carries an externally pushed fix consumed from NATS
type ObservationIngestEvent struct {
	Observation Observation `json:"observation"`
	ReceivedAt  time.Time   `json:"received_at"`
}

// FleetRefreshSummary reports the outcome of one fleet refresh pass
type FleetRefreshSummary struct {
	Provider     string         `json:"provider"`
	Sources      int            `json:"sources"`
	Observations int            `json:"observations"`
	Tracks       int            `json:"tracks"`
	Skipped      []SkippedTrack `json:"skipped,omitempty"`
	FailedUnits  []string       `json:"failed_units,omitempty"`
	StartedAt    time.Time      `json:"started_at"`
	FinishedAt   time.Time      `json:"finished_at"`
}
