// SPDX-License-Identifier: MIT

// Package geo provides geographic coordinates and great-circle distances
// used to measure straight-line route lengths and to project stops onto a map.
//
// Distances are computed with the haversine formula on a spherical Earth
// of radius EarthRadius meters.
package geo

import "math"

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

// Coordinates is a point on the Earth surface in decimal degrees.
type Coordinates struct {
	Lat float64 // latitude, [-90, 90]
	Lng float64 // longitude, [-180, 180]
}

// Equal reports whether both coordinates are exactly the same point.
func (c Coordinates) Equal(o Coordinates) bool {
	return c.Lat == o.Lat && c.Lng == o.Lng
}

// Valid reports whether c lies inside the latitude/longitude ranges and holds no NaN.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Distance returns the great-circle distance between from and to in meters.
// Identical points yield exactly zero.
// Complexity: O(1).
func Distance(from, to Coordinates) float64 {
	if from.Equal(to) {
		return 0
	}
	const rad = math.Pi / 180.0

	lat1 := from.Lat * rad
	lat2 := to.Lat * rad
	dLat := lat2 - lat1
	dLng := (to.Lng - from.Lng) * rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
