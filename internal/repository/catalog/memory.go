package catalog

import (
	"context"
	"time"

	domcat "github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
)

// MemoryRepo serves catalog snapshots from memory. Snapshots are read-only
// after construction, so the repo is safe for concurrent use.
type MemoryRepo struct {
	classes     []domcat.Class
	instructors []domcat.Instructor
	venues      []domcat.Venue
}

// NewMemory creates an in-memory catalog.
func NewMemory(
	classes []domcat.Class,
	instructors []domcat.Instructor,
	venues []domcat.Venue,
) *MemoryRepo {
	return &MemoryRepo{classes: classes, instructors: instructors, venues: venues}
}

// ListClasses returns the class snapshots.
func (r *MemoryRepo) ListClasses(_ context.Context) ([]domcat.Class, error) {
	return r.classes, nil
}

// ListInstructors returns the instructor snapshots.
func (r *MemoryRepo) ListInstructors(_ context.Context) ([]domcat.Instructor, error) {
	return r.instructors, nil
}

// ListVenues returns the venue snapshots.
func (r *MemoryRepo) ListVenues(_ context.Context) ([]domcat.Venue, error) {
	return r.venues, nil
}

// HealthCheck always passes for the in-memory driver.
func (r *MemoryRepo) HealthCheck(_ context.Context) error { return nil }

// NewMemorySeeded creates an in-memory catalog with a small demo working
// set, used by the local environment.
func NewMemorySeeded(now time.Time) *MemoryRepo {
	studioLoc := geo.NewCoordinate(52.5200, 13.4050)
	poolLoc := geo.NewCoordinate(52.4800, 13.4350)
	hallLoc := geo.NewCoordinate(52.5300, 13.3800)

	day := func(d int, hour int) time.Time {
		t := now.AddDate(0, 0, d)
		return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
	}

	classes := []domcat.Class{
		{
			ID: "cls-1", Title: "Sunrise Vinyasa", Description: "Flow into the day",
			Category: domcat.CategoryYoga, Difficulty: domcat.DifficultyAllLevels,
			Price: 18, StartAt: day(1, 7), EndAt: day(1, 8), DurationMinutes: 60,
			MaxParticipants: 15, BookedCount: 9, Rating: 4.8, ReviewCount: 120,
			InstructorID: "ins-1", InstructorName: "Mara Lindt",
			VenueID: "ven-1", VenueName: "Kiez Studio", Neighborhood: "Mitte",
			Location: studioLoc, Tags: []string{"vinyasa", "morning"},
			HasParking: true, IsAccessible: true,
		},
		{
			ID: "cls-2", Title: "Community Swim", Description: "Open lanes for everyone",
			Category: domcat.CategorySwimming, Difficulty: domcat.DifficultyBeginner,
			Price: 0, StartAt: day(2, 18), EndAt: day(2, 19), DurationMinutes: 60,
			MaxParticipants: 30, BookedCount: 30, Rating: 4.2, ReviewCount: 54,
			InstructorID: "ins-2", InstructorName: "Jonas Beck",
			VenueID: "ven-2", VenueName: "Stadtbad", Neighborhood: "Neukölln",
			Location: poolLoc, Tags: []string{"free", "swim"},
			IsAccessible: true,
		},
		{
			ID: "cls-3", Title: "Powerlifting Basics", Description: "Barbell fundamentals",
			Category: domcat.CategoryFitness, Difficulty: domcat.DifficultyIntermediate,
			Price: 35, StartAt: day(6, 10), EndAt: day(6, 12), DurationMinutes: 120,
			MaxParticipants: 8, BookedCount: 5, Rating: 4.9, ReviewCount: 77,
			InstructorID: "ins-2", InstructorName: "Jonas Beck",
			VenueID: "ven-3", VenueName: "Iron Hall", Neighborhood: "Wedding",
			Location: hallLoc, Tags: []string{"strength"},
			HasParking: true,
		},
		{
			ID: "cls-4", Title: "Evening Salsa Online", Description: "Dance from your living room",
			Category: domcat.CategoryDance, Difficulty: domcat.DifficultyBeginner,
			Price: 12, StartAt: day(3, 19), EndAt: day(3, 20), DurationMinutes: 60,
			MaxParticipants: 50, BookedCount: 12, Rating: 4.5, ReviewCount: 31,
			InstructorID: "ins-3", InstructorName: "Lucia Vega",
			VenueID: "ven-1", VenueName: "Kiez Studio", Neighborhood: "Mitte",
			Location: studioLoc, Tags: []string{"salsa", "online"},
			IsOnline: true,
		},
	}

	instructors := []domcat.Instructor{
		{
			ID: "ins-1", Name: "Mara Lindt", Bio: "Yoga and breathwork teacher",
			Specialties: []domcat.Category{domcat.CategoryYoga, domcat.CategoryPilates},
			Rating:      4.8, ReviewCount: 210, YearsExperience: 9,
		},
		{
			ID: "ins-2", Name: "Jonas Beck", Bio: "Strength and swim coach",
			Specialties: []domcat.Category{domcat.CategoryFitness, domcat.CategorySwimming},
			Rating:      4.6, ReviewCount: 98, YearsExperience: 12,
		},
		{
			ID: "ins-3", Name: "Lucia Vega", Bio: "Latin dance instructor",
			Specialties: []domcat.Category{domcat.CategoryDance},
			Rating:      4.4, ReviewCount: 45, YearsExperience: 6,
		},
	}

	venues := []domcat.Venue{
		{
			ID: "ven-1", Name: "Kiez Studio", Address: "Torstr. 12",
			Neighborhood: "Mitte", Location: studioLoc,
			Rating: 4.7, ReviewCount: 300, HasParking: true, IsAccessible: true,
		},
		{
			ID: "ven-2", Name: "Stadtbad", Address: "Ganghoferstr. 3",
			Neighborhood: "Neukölln", Location: poolLoc,
			Rating: 4.1, ReviewCount: 150, IsAccessible: true,
		},
		{
			ID: "ven-3", Name: "Iron Hall", Address: "Müllerstr. 88",
			Neighborhood: "Wedding", Location: hallLoc,
			Rating: 4.5, ReviewCount: 89, HasParking: true,
		},
	}

	return NewMemory(classes, instructors, venues)
}
