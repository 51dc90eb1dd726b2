package catalog

import "github.com/fitlocal/classdex/internal/domain/geo"

// Venue is a physical location snapshot.
type Venue struct {
	ID           string
	Name         string
	Address      string
	Neighborhood string
	Location     geo.Coordinate
	Rating       float64
	ReviewCount  int
	HasParking   bool
	IsAccessible bool
}
