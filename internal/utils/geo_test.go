package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		minKm      float64
		maxKm      float64
	}{
		{"same point", 40.7128, -74.0060, 40.7128, -74.0060, 0, 0.1},
		{"NYC to LA", 40.7128, -74.0060, 34.0522, -118.2437, 3500, 4300},
		{"one degree of latitude", 0, 0, 1, 0, 111.1, 111.3},
		{"across the antimeridian", 0, 179.5, 0, -179.5, 111.1, 111.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.GreaterOrEqual(t, d, tt.minKm)
			assert.LessOrEqual(t, d, tt.maxKm)
		})
	}
}

func TestHaversine_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(51.5074, -0.1278, 51.5074, -0.1278))
}

func TestHaversine_Symmetric(t *testing.T) {
	ab := Haversine(48.8566, 2.3522, 52.5200, 13.4050)
	ba := Haversine(52.5200, 13.4050, 48.8566, 2.3522)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestCalculateBounds(t *testing.T) {
	lat, lon := 40.7128, -74.0060
	bounds := CalculateBounds(lat, lon, 50)

	assert.True(t, bounds.Contains(lat, lon))
	assert.False(t, bounds.CrossesPoleOrAntimeridian())

	// Points just inside the radius along each axis must fall inside the box.
	assert.True(t, bounds.Contains(lat+0.44, lon))
	assert.True(t, bounds.Contains(lat, lon+0.58))
	assert.False(t, bounds.Contains(lat+1, lon))
}

func TestCalculateBounds_CoversWidestLongitude(t *testing.T) {
	tests := []struct {
		name             string
		lat, lon, radius float64
		pointLat         float64
		pointLon         float64
	}{
		{"poleward of a high latitude centre", 60, 0, 1000, 61.2, 18.2},
		{"poleward of a southern centre", -55, 20, 800, -55.7, 32.59},
		{"far north", 70, 25, 300, 70.2, 32.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.LessOrEqual(t, Haversine(tt.lat, tt.lon, tt.pointLat, tt.pointLon), tt.radius)
			bounds := CalculateBounds(tt.lat, tt.lon, tt.radius)
			assert.True(t, bounds.Contains(tt.pointLat, tt.pointLon))
		})
	}
}

func TestCalculateBounds_Crossing(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		radiusKm float64
		crosses  bool
	}{
		{"mid latitudes", 45, 10, 100, false},
		{"near north pole", 89.5, 0, 100, true},
		{"near antimeridian", 0, 179.9, 50, true},
		{"at the pole", 90, 0, 1, true},
		{"circle reaching the pole", 80, 0, 1200, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := CalculateBounds(tt.lat, tt.lon, tt.radiusKm)
			assert.Equal(t, tt.crosses, bounds.CrossesPoleOrAntimeridian())
		})
	}
}
