// Package geo provides plain coordinate values and great-circle distance.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Coordinate is a plain latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinate creates a coordinate. It does not validate; use Valid.
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lng}
}

// Valid reports whether latitude is in [-90,90] and longitude in [-180,180].
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// IsZero reports whether the coordinate is the zero value (null island).
func (c Coordinate) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// point converts to an orb.Point ([lng, lat] order).
func (c Coordinate) point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// DistanceKm returns the great-circle distance between two coordinates
// in kilometers.
func DistanceKm(a, b Coordinate) float64 {
	return orbgeo.DistanceHaversine(a.point(), b.point()) / 1000
}

// Unreachable is the distance assigned to entities without a coordinate;
// they sort after every reachable entity under distance ordering.
const Unreachable = math.MaxFloat64
