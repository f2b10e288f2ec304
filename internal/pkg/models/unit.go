package models

import "time"

// BatteryStatus classifies the latest battery reading of a unit
type BatteryStatus string

const (
	BatteryGood     BatteryStatus = "Good"
	BatteryWarning  BatteryStatus = "Warning"
	BatteryCritical BatteryStatus = "Critical"
	BatteryUnknown  BatteryStatus = "Unknown"
)

// LastKnownLocation is the most recent fix for one unit, enriched with the
// latest battery reading and a geohash of the position
type LastKnownLocation struct {
	SourceID       string        `json:"source_id"`
	Location       Location      `json:"location"`
	RecordedAt     time.Time     `json:"recorded_at"`
	BatteryVoltage *float64      `json:"battery_voltage,omitempty"`
	BatteryStatus  BatteryStatus `json:"battery_status"`
	Geohash        string        `json:"geohash,omitempty"`
}

// UnitHealth summarizes one unit's behavior over the reporting window
type UnitHealth struct {
	SourceID         string        `json:"source_id" db:"source_id"`
	SourceName       string        `json:"source_name" db:"source_name"`
	Provider         string        `json:"provider" db:"provider"`
	WindowDays       int           `json:"window_days" db:"window_days"`
	ObservationCount int           `json:"observation_count" db:"observation_count"`
	FixesPerDay      float64       `json:"fixes_per_day" db:"fixes_per_day"`
	MeanBattery      *float64      `json:"mean_battery,omitempty" db:"mean_battery"`
	BatteryReadings  int           `json:"battery_readings" db:"battery_readings"`
	BatteryStatus    BatteryStatus `json:"battery_status" db:"battery_status"`
	LastFixAt        *time.Time    `json:"last_fix_at,omitempty" db:"last_fix_at"`
	// True when ExpectedFixesPerDay is configured and the unit reports below it
	UnderReporting bool      `json:"under_reporting" db:"under_reporting"`
	CheckedAt      time.Time `json:"checked_at" db:"checked_at"`
}

// NearbyUnit is a unit returned by a radius query around a point
type NearbyUnit struct {
	SourceID   string  `json:"source_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}
