// Package geo derives distance, speed, pace, and elevation metrics from GPS
// point sequences. All distances are meters, speeds are meters per second.
package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance in meters between two
// coordinates given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	deltaLat := degreesToRadians(lat2 - lat1)
	deltaLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// PaceMinPerKm converts a distance and elapsed seconds into minutes per
// kilometer. A zero distance yields a zero pace.
func PaceMinPerKm(distanceMeters, elapsedSeconds float64) float64 {
	if distanceMeters <= 0 || elapsedSeconds <= 0 {
		return 0
	}
	return (elapsedSeconds / 60) / (distanceMeters / 1000)
}
