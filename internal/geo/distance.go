// Package geo provides great-circle distance helpers for the nearby
// attraction and hotel lookups.
package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the Haversine distance between two coordinates in
// kilometers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WithinRadius reports whether the point (lat2, lon2) lies within radiusKm
// of (lat1, lon1).
func WithinRadius(lat1, lon1, lat2, lon2, radiusKm float64) bool {
	return DistanceKm(lat1, lon1, lat2, lon2) <= radiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
