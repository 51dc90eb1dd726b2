// Package catalog holds read-only entity snapshots served by the catalog
// repository. The search core never mutates these values; it filters, wraps,
// and orders views over them.
package catalog

import (
	"time"

	"github.com/fitlocal/classdex/internal/domain/geo"
)

// Class is a scheduled activity session snapshot.
type Class struct {
	ID              string
	Title           string
	Description     string
	Category        Category
	Difficulty      Difficulty
	Price           float64
	StartAt         time.Time
	EndAt           time.Time
	DurationMinutes int
	MaxParticipants int
	BookedCount     int
	Rating          float64
	ReviewCount     int
	InstructorID    string
	InstructorName  string
	VenueID         string
	VenueName       string
	Neighborhood    string
	Location        geo.Coordinate
	Tags            []string
	IsOnline        bool
	HasParking      bool
	IsAccessible    bool
}

// IsFree reports whether the class costs nothing.
func (c Class) IsFree() bool { return c.Price == 0 }

// SpotsLeft returns the number of unbooked spots, never negative.
func (c Class) SpotsLeft() int {
	left := c.MaxParticipants - c.BookedCount
	if left < 0 {
		return 0
	}
	return left
}

// IsFull reports whether no spots remain.
func (c Class) IsFull() bool { return c.SpotsLeft() == 0 }

// IsUpcoming reports whether the class starts after now.
func (c Class) IsUpcoming(now time.Time) bool { return c.StartAt.After(now) }

// StartHour returns the local start hour, 0-23.
func (c Class) StartHour() int { return c.StartAt.Hour() }

// Weekday returns the start weekday using the 1=Sunday..7=Saturday convention.
func (c Class) Weekday() int { return int(c.StartAt.Weekday()) + 1 }
