package utils

import "math"

// EarthRadiusKm is the mean Earth radius used for all distance calculations.
const EarthRadiusKm = 6371.0

// kmPerDegreeLat is the length of one degree of latitude.
const kmPerDegreeLat = EarthRadiusKm * math.Pi / 180

type CoordinateBounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Haversine returns the great-circle distance in kilometers between two points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// CalculateBounds returns a box that contains every point within radiusKm of (lat, lon).
// The longitude half-width is taken at the latitude where the circle is widest,
// which lies poleward of the centre. A circle that reaches a pole gets a
// full-width box. The box is not clamped, so callers must check
// CrossesPoleOrAntimeridian before using it against an index.
func CalculateBounds(lat, lon, radiusKm float64) CoordinateBounds {
	latDelta := radiusKm / kmPerDegreeLat

	sinAngular := math.Sin(radiusKm / EarthRadiusKm)
	cosLat := math.Cos(lat * math.Pi / 180)
	lonDelta := 360.0
	if radiusKm < EarthRadiusKm*math.Pi/2 && sinAngular < cosLat {
		lonDelta = math.Asin(sinAngular/cosLat) * 180 / math.Pi
	}

	return CoordinateBounds{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

// CrossesPoleOrAntimeridian reports whether the box leaves the valid coordinate range.
func (b CoordinateBounds) CrossesPoleOrAntimeridian() bool {
	return b.MinLat < -90 || b.MaxLat > 90 || b.MinLon < -180 || b.MaxLon > 180
}

// Contains reports whether the point lies inside the box, edges included.
func (b CoordinateBounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}
