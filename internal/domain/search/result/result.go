// Package result defines the tagged search result over the three entity
// kinds and the adapter that derives its display fields.
package result

import (
	"time"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
)

// Kind discriminates the entity variant inside an Item.
type Kind string

// Kind constants.
const (
	KindClass      Kind = "class"
	KindInstructor Kind = "instructor"
	KindVenue      Kind = "venue"
)

// Label returns the display label for the kind.
func (k Kind) Label() string {
	switch k {
	case KindClass:
		return "Class"
	case KindInstructor:
		return "Instructor"
	case KindVenue:
		return "Venue"
	}
	return "Unknown"
}

// Icon returns the icon name for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindClass:
		return "calendar"
	case KindInstructor:
		return "person"
	case KindVenue:
		return "mappin"
	}
	return "questionmark"
}

// Item is a tagged union over exactly one of class, instructor, or venue.
// Every derived field is total: variants where a concept does not apply
// report an explicit absence instead of a fabricated value.
type Item struct {
	kind       Kind
	class      *catalog.Class
	instructor *catalog.Instructor
	venue      *catalog.Venue
}

// FromClass adapts a class snapshot.
func FromClass(c catalog.Class) Item {
	return Item{kind: KindClass, class: &c}
}

// FromInstructor adapts an instructor snapshot.
func FromInstructor(i catalog.Instructor) Item {
	return Item{kind: KindInstructor, instructor: &i}
}

// FromVenue adapts a venue snapshot.
func FromVenue(v catalog.Venue) Item {
	return Item{kind: KindVenue, venue: &v}
}

// Kind returns the variant discriminator.
func (it Item) Kind() Kind { return it.kind }

// Key returns a stable identity key, unique across kinds even when raw
// entity identifiers collide.
func (it Item) Key() string {
	return string(it.kind) + ":" + it.id()
}

func (it Item) id() string {
	switch it.kind {
	case KindClass:
		return it.class.ID
	case KindInstructor:
		return it.instructor.ID
	case KindVenue:
		return it.venue.ID
	}
	return ""
}

// Title returns the display title.
func (it Item) Title() string {
	switch it.kind {
	case KindClass:
		return it.class.Title
	case KindInstructor:
		return it.instructor.Name
	case KindVenue:
		return it.venue.Name
	}
	return ""
}

// Subtitle returns the display subtitle.
func (it Item) Subtitle() string {
	switch it.kind {
	case KindClass:
		if it.class.IsOnline {
			return it.class.InstructorName + " · Online"
		}
		return it.class.InstructorName + " · " + it.class.VenueName
	case KindInstructor:
		return it.instructor.Bio
	case KindVenue:
		return it.venue.Address
	}
	return ""
}

// Price returns the display price. ok is false for variants without a
// price (instructors and venues).
func (it Item) Price() (float64, bool) {
	if it.kind == KindClass {
		return it.class.Price, true
	}
	return 0, false
}

// Rating returns the display rating; zero means unrated.
func (it Item) Rating() float64 {
	switch it.kind {
	case KindClass:
		return it.class.Rating
	case KindInstructor:
		return it.instructor.Rating
	case KindVenue:
		return it.venue.Rating
	}
	return 0
}

// Coordinate returns the entity position. ok is false for instructors,
// which have no coordinate.
func (it Item) Coordinate() (geo.Coordinate, bool) {
	switch it.kind {
	case KindClass:
		return it.class.Location, true
	case KindVenue:
		return it.venue.Location, true
	}
	return geo.Coordinate{}, false
}

// StartAt returns the scheduled start. ok is false for non-class variants.
func (it Item) StartAt() (time.Time, bool) {
	if it.kind == KindClass {
		return it.class.StartAt, true
	}
	return time.Time{}, false
}

// ExactMatch reports whether the item was an exact query match. Nothing in
// the pipeline derives this true, which makes the relevance ordering a
// documented no-op. Preserved as-is; do not invent a scoring function.
func (it Item) ExactMatch() bool { return false }

// Class returns the class payload.
func (it Item) Class() (catalog.Class, bool) {
	if it.kind == KindClass {
		return *it.class, true
	}
	return catalog.Class{}, false
}

// Instructor returns the instructor payload.
func (it Item) Instructor() (catalog.Instructor, bool) {
	if it.kind == KindInstructor {
		return *it.instructor, true
	}
	return catalog.Instructor{}, false
}

// Venue returns the venue payload.
func (it Item) Venue() (catalog.Venue, bool) {
	if it.kind == KindVenue {
		return *it.venue, true
	}
	return catalog.Venue{}, false
}
