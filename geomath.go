package guidance

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// AngularDeviation returns absolute angular difference between two bearings folded into [0;180] (degrees)
func AngularDeviation(angle, from float64) float64 {
	deviation := math.Abs(angle - from)
	return math.Min(360-deviation, deviation)
}

// Bearing returns initial bearing from one point towards another one normalized to [0;360) (degrees)
func Bearing(from, to orb.Point) float64 {
	bearing := geo.Bearing(from, to)
	if bearing < 0 {
		bearing += 360
	}
	return bearing
}

// pointOnSegmentByFraction returns a point on given segment using distance assuming knowledge about fraction
func pointOnSegmentByFraction(p, q orb.Point, fraction float64) orb.Point {
	return orb.Point{
		(1-fraction)*p.Lon() + (fraction * q.Lon()),
		(1-fraction)*p.Lat() + (fraction * q.Lat()),
	}
}
