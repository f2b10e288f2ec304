package services

import (
	"strconv"

	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

// Device vendors report battery voltage under different keys; the list is
// ordered by how common each key is across the fleet.
var batteryKeys = []string{"battery", "battery_voltage", "voltage", "batt", "battery_v"}

// Plausible collar battery voltages sit in the single-digit volt range.
// Readings outside it are percentages or raw ADC values, not volts.
const (
	minPlausibleVoltage = 0.0
	maxPlausibleVoltage = 10.0
)

// BatteryVoltage extracts a battery voltage from a device's additional
// telemetry bag. It tries each candidate key in order and returns the first
// value that parses to a plausible voltage.
func BatteryVoltage(additional map[string]interface{}) (float64, bool) {
	for _, key := range batteryKeys {
		raw, ok := additional[key]
		if !ok {
			continue
		}
		voltage, ok := toFloat(raw)
		if !ok {
			continue
		}
		if voltage > minPlausibleVoltage && voltage < maxPlausibleVoltage {
			return voltage, true
		}
	}
	return 0, false
}

// BatteryStatusFor classifies a battery reading. A nil reading means the
// device never reported a voltage.
func BatteryStatusFor(voltage *float64) models.BatteryStatus {
	if voltage == nil {
		return models.BatteryUnknown
	}
	switch {
	case *voltage >= 3.5:
		return models.BatteryGood
	case *voltage >= 3.0:
		return models.BatteryWarning
	default:
		return models.BatteryCritical
	}
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
