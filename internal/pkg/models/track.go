package models

import "time"

// TrackPoint is one vertex of an assembled track polyline
type TrackPoint struct {
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// Track is an ordered polyline assembled from the observations sharing one
// track key. Derived, never persisted upstream; a track requires at least two
// points to form a line.
type Track struct {
	ID         string       `json:"id" db:"id"`
	TrackKey   string       `json:"track_key" db:"track_key"`
	Points     []TrackPoint `json:"points"`
	PointCount int          `json:"point_count" db:"point_count"`
	// Approximate length in kilometers (flat-earth degree conversion)
	LengthKm  float64   `json:"length_km" db:"length_km"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

// SkippedTrack records a track key that could not form a line. This is a
// diagnostic, not an error: a single fix is still a valid last known location.
type SkippedTrack struct {
	TrackKey   string `json:"track_key"`
	PointCount int    `json:"point_count"`
	Reason     string `json:"reason"`
}

// AssemblyResult is the output of one track assembly pass
type AssemblyResult struct {
	Tracks  []*Track       `json:"tracks"`
	Skipped []SkippedTrack `json:"skipped,omitempty"`
}

// PatrolWithTrack pairs a patrol with the track reconstructed from its
// subject's fixes over the patrol window. Track is nil when fewer than two
// fixes exist.
type PatrolWithTrack struct {
	Patrol Patrol `json:"patrol"`
	Track  *Track `json:"track,omitempty"`
}
