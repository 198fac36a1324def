// Package geo provides great-circle distance calculations between
// geographic coordinates using the haversine formula.
package geo

import "math"

// earthRadiusMeters is the mean Earth radius
const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance in meters between two
// points given as decimal-degree latitude/longitude pairs. This is a
// straight-line proxy for travel distance, not a road-network distance.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLng := toRadians(lng2 - lng1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
