package maps

import "math"

const (
	earthRadiusKM = 6371.0
	kRad          = math.Pi / 180.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// HaversineDistance returns the great-circle distance between two points in
// kilometers.
func HaversineDistance(from, to Point) float64 {
	latOne := from.Latitude * kRad
	latTwo := to.Latitude * kRad
	longOne := from.Longitude * kRad
	longTwo := to.Longitude * kRad

	sqrtHavAngle := math.Sqrt(havFunction(latOne-latTwo) +
		math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo))
	centralAngleRad := 2.0 * math.Asin(sqrtHavAngle)
	return earthRadiusKM * centralAngleRad
}
