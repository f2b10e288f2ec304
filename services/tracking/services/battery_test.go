package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

func TestBatteryVoltage(t *testing.T) {
	tests := []struct {
		name       string
		additional map[string]interface{}
		expected   float64
		found      bool
	}{
		{
			name:       "battery key",
			additional: map[string]interface{}{"battery": 3.7},
			expected:   3.7,
			found:      true,
		},
		{
			name:       "battery_voltage key",
			additional: map[string]interface{}{"battery_voltage": 3.2},
			expected:   3.2,
			found:      true,
		},
		{
			name:       "voltage key",
			additional: map[string]interface{}{"voltage": 2.9},
			expected:   2.9,
			found:      true,
		},
		{
			name:       "batt key",
			additional: map[string]interface{}{"batt": 3.55},
			expected:   3.55,
			found:      true,
		},
		{
			name:       "battery_v key",
			additional: map[string]interface{}{"battery_v": 4.1},
			expected:   4.1,
			found:      true,
		},
		{
			name:       "string value parses",
			additional: map[string]interface{}{"battery": "3.65"},
			expected:   3.65,
			found:      true,
		},
		{
			name:       "earlier key wins",
			additional: map[string]interface{}{"battery": 3.8, "voltage": 2.1},
			expected:   3.8,
			found:      true,
		},
		{
			name:       "implausible percentage skipped for later key",
			additional: map[string]interface{}{"battery": 87.0, "voltage": 3.4},
			expected:   3.4,
			found:      true,
		},
		{
			name:       "zero is not plausible",
			additional: map[string]interface{}{"battery": 0.0},
			found:      false,
		},
		{
			name:       "negative is not plausible",
			additional: map[string]interface{}{"battery": -1.2},
			found:      false,
		},
		{
			name:       "unparseable string",
			additional: map[string]interface{}{"battery": "low"},
			found:      false,
		},
		{
			name:       "no candidate keys",
			additional: map[string]interface{}{"temperature": 25.1},
			found:      false,
		},
		{
			name:       "nil bag",
			additional: nil,
			found:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voltage, found := BatteryVoltage(tt.additional)

			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.InDelta(t, tt.expected, voltage, 0.0001)
			}
		})
	}
}

func TestBatteryStatusFor(t *testing.T) {
	voltage := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		voltage  *float64
		expected models.BatteryStatus
	}{
		{"nil reading", nil, models.BatteryUnknown},
		{"healthy", voltage(3.9), models.BatteryGood},
		{"exactly good threshold", voltage(3.5), models.BatteryGood},
		{"warning band", voltage(3.2), models.BatteryWarning},
		{"exactly warning threshold", voltage(3.0), models.BatteryWarning},
		{"critical", voltage(2.8), models.BatteryCritical},
		{"zero volts", voltage(0), models.BatteryCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BatteryStatusFor(tt.voltage))
		})
	}
}
