package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/twigalabs/rangertrack/internal/pkg/models"
)

func TestEncodeLocation(t *testing.T) {
	location := models.Location{
		Latitude:  -1.2921,
		Longitude: 36.8219,
		Timestamp: time.Now(),
	}

	hash := EncodeLocation(location, 9)

	assert.Len(t, hash, 9)

	lat, lon := DecodeGeohash(hash)
	assert.InDelta(t, location.Latitude, lat, 0.001)
	assert.InDelta(t, location.Longitude, lon, 0.001)
}

func TestCalculateDistance(t *testing.T) {
	// Nairobi to Mombasa, roughly 440 km
	nairobi := GeoPoint{Latitude: -1.2921, Longitude: 36.8219}
	mombasa := GeoPoint{Latitude: -4.0435, Longitude: 39.6682}

	distance := CalculateDistance(nairobi, mombasa)

	assert.InDelta(t, 440.0, distance, 10.0)
}

func TestCalculateDistance_SamePoint(t *testing.T) {
	point := GeoPoint{Latitude: -1.2921, Longitude: 36.8219}

	assert.Equal(t, 0.0, CalculateDistance(point, point))
}

func TestFlatDistanceKm(t *testing.T) {
	from := GeoPoint{Latitude: 0, Longitude: 0}
	to := GeoPoint{Latitude: 0, Longitude: 1}

	assert.InDelta(t, 111.0, FlatDistanceKm(from, to), 0.001)

	// 3-4-5 triangle scaled down
	from = GeoPoint{Latitude: 0, Longitude: 0}
	to = GeoPoint{Latitude: 0.03, Longitude: 0.04}
	assert.InDelta(t, 0.05*111.0, FlatDistanceKm(from, to), 0.0001)
}

func TestGetNeighbors(t *testing.T) {
	hash := EncodeLocation(models.Location{Latitude: -1.2921, Longitude: 36.8219}, 6)

	neighbors := GetNeighbors(hash)

	assert.Len(t, neighbors, 8)
	for _, n := range neighbors {
		assert.Len(t, n, 6)
		assert.NotEqual(t, hash, n)
	}
}
