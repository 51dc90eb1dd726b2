package search

import (
	"context"
	"time"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
	"github.com/fitlocal/classdex/internal/domain/history"
)

// Fixed clock shared by the tests: Wednesday, 2026-03-11 12:00 UTC.
var testNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

// mockCatalog implements Catalog with overridable functions.
type mockCatalog struct {
	listClassesFn     func(ctx context.Context) ([]catalog.Class, error)
	listInstructorsFn func(ctx context.Context) ([]catalog.Instructor, error)
	listVenuesFn      func(ctx context.Context) ([]catalog.Venue, error)
}

func (m *mockCatalog) ListClasses(ctx context.Context) ([]catalog.Class, error) {
	if m.listClassesFn != nil {
		return m.listClassesFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) ListInstructors(ctx context.Context) ([]catalog.Instructor, error) {
	if m.listInstructorsFn != nil {
		return m.listInstructorsFn(ctx)
	}
	return nil, nil
}

func (m *mockCatalog) ListVenues(ctx context.Context) ([]catalog.Venue, error) {
	if m.listVenuesFn != nil {
		return m.listVenuesFn(ctx)
	}
	return nil, nil
}

// mockHistory implements History with overridable functions.
type mockHistory struct {
	recordFn func(ctx context.Context, e history.Entry) error
	recentFn func(ctx context.Context, limit int) ([]history.Entry, error)
	recorded []history.Entry
}

func (m *mockHistory) Record(ctx context.Context, e history.Entry) error {
	if m.recordFn != nil {
		return m.recordFn(ctx, e)
	}
	m.recorded = append(m.recorded, e)
	return nil
}

func (m *mockHistory) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, limit)
	}
	return m.recorded, nil
}

// fixtureCatalog returns a small, mixed catalog: three classes, two
// instructors, one venue.
func fixtureCatalog() *mockCatalog {
	classes := []catalog.Class{
		{
			ID:              "cls-1",
			Title:           "Sunrise Yoga",
			Category:        catalog.CategoryYoga,
			Difficulty:      catalog.DifficultyBeginner,
			Price:           18,
			StartAt:         testNow.Add(20 * time.Hour),
			DurationMinutes: 60,
			MaxParticipants: 12,
			BookedCount:     3,
			Rating:          4.8,
			InstructorName:  "Anna",
			VenueName:       "Studio One",
			Neighborhood:    "Mitte",
			Location:        geo.NewCoordinate(52.5200, 13.4050),
		},
		{
			ID:              "cls-2",
			Title:           "Lap Swimming",
			Category:        catalog.CategorySwimming,
			Difficulty:      catalog.DifficultyIntermediate,
			Price:           0,
			StartAt:         testNow.Add(48 * time.Hour),
			DurationMinutes: 45,
			MaxParticipants: 8,
			BookedCount:     8,
			Rating:          4.1,
			InstructorName:  "Ben",
			VenueName:       "City Pool",
			Neighborhood:    "Neukölln",
			Location:        geo.NewCoordinate(52.4810, 13.4350),
		},
		{
			ID:              "cls-3",
			Title:           "Strength Basics",
			Category:        catalog.CategoryFitness,
			Difficulty:      catalog.DifficultyBeginner,
			Price:           35,
			StartAt:         testNow.Add(-2 * time.Hour), // already started
			DurationMinutes: 90,
			MaxParticipants: 20,
			BookedCount:     5,
			Rating:          3.9,
			InstructorName:  "Cara",
			VenueName:       "Iron Hall",
			Neighborhood:    "Wedding",
			Location:        geo.NewCoordinate(52.5470, 13.3550),
		},
	}
	instructors := []catalog.Instructor{
		{ID: "ins-1", Name: "Anna", Bio: "Vinyasa yoga teacher", Specialties: []catalog.Category{catalog.CategoryYoga}, Rating: 4.7},
		{ID: "ins-2", Name: "Ben", Bio: "Swim coach", Specialties: []catalog.Category{catalog.CategorySwimming}, Rating: 4.0},
	}
	venues := []catalog.Venue{
		{ID: "ven-1", Name: "Studio One", Address: "Torstr. 1", Neighborhood: "Mitte", Location: geo.NewCoordinate(52.5285, 13.4015), Rating: 4.5, HasParking: true},
	}

	return &mockCatalog{
		listClassesFn: func(context.Context) ([]catalog.Class, error) {
			return classes, nil
		},
		listInstructorsFn: func(context.Context) ([]catalog.Instructor, error) {
			return instructors, nil
		},
		listVenuesFn: func(context.Context) ([]catalog.Venue, error) {
			return venues, nil
		},
	}
}
