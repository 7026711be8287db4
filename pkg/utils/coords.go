package utils

import "math"

// Coordinate validation for route endpoints and weather lookups.
//
// Backend rows default unset coordinates to 0, so an exact 0 is read as
// "absent" rather than a point on the equator or prime meridian. A 0,0 pair
// would otherwise render a bogus pin near the Gulf of Guinea. This is an
// inherited client convention, not a geodetic rule.

func IsValidLatitude(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v != 0 && v >= -90 && v <= 90
}

func IsValidLongitude(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v != 0 && v >= -180 && v <= 180
}

// IsValidCoordinate reports whether a lat/lng pair is renderable.
func IsValidCoordinate(lat, lng float64) bool {
	return IsValidLatitude(lat) && IsValidLongitude(lng)
}
