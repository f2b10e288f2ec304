package models

import "time"

// Location represents a geographic position
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Observation is a single reported fix from a tracking device. Immutable once
// received; Additional carries the manufacturer-specific telemetry bag
// (battery voltage, temperature, etc.) whose keys vary per device vendor.
type Observation struct {
	ID         string                 `json:"id"`
	SourceID   string                 `json:"source"`
	RecordedAt time.Time              `json:"recorded_at"`
	Location   Location               `json:"location"`
	Additional map[string]interface{} `json:"additional,omitempty"`
}

// Source identifies a tracking unit registered in the upstream platform
type Source struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Provider       string `json:"provider"`
	Manufacturer   string `json:"manufacturer"`
	ManufacturerID string `json:"manufacturer_id,omitempty"`
	Model          string `json:"model,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// Patrol is a logical journey recorded in the upstream platform. Its track is
// derived from the observations of its subjects over the patrol window.
type Patrol struct {
	ID        string    `json:"id"`
	Serial    int64     `json:"serial_number"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitempty"`
	SubjectID string    `json:"subject_id,omitempty"`
}
