package result

import (
	"testing"
	"time"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
)

func testClass() catalog.Class {
	return catalog.Class{
		ID:             "cls-1",
		Title:          "Sunrise Yoga",
		Price:          18,
		Rating:         4.8,
		StartAt:        time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		InstructorName: "Anna",
		VenueName:      "Studio One",
		Location:       geo.NewCoordinate(52.52, 13.405),
	}
}

func TestItemClassVariant(t *testing.T) {
	it := FromClass(testClass())

	if it.Kind() != KindClass {
		t.Fatalf("Kind() = %q, want class", it.Kind())
	}
	if it.Key() != "class:cls-1" {
		t.Errorf("Key() = %q, want class:cls-1", it.Key())
	}
	if it.Title() != "Sunrise Yoga" {
		t.Errorf("Title() = %q", it.Title())
	}
	if it.Subtitle() != "Anna · Studio One" {
		t.Errorf("Subtitle() = %q", it.Subtitle())
	}

	price, ok := it.Price()
	if !ok || price != 18 {
		t.Errorf("Price() = (%v, %v), want (18, true)", price, ok)
	}
	if _, ok := it.StartAt(); !ok {
		t.Error("class should have a start time")
	}
	if _, ok := it.Coordinate(); !ok {
		t.Error("class should have a coordinate")
	}
}

func TestItemOnlineClassSubtitle(t *testing.T) {
	c := testClass()
	c.IsOnline = true
	if got := FromClass(c).Subtitle(); got != "Anna · Online" {
		t.Errorf("Subtitle() = %q, want online form", got)
	}
}

func TestItemInstructorVariant(t *testing.T) {
	it := FromInstructor(catalog.Instructor{ID: "ins-1", Name: "Anna", Bio: "Vinyasa teacher", Rating: 4.6})

	if it.Key() != "instructor:ins-1" {
		t.Errorf("Key() = %q", it.Key())
	}
	if it.Subtitle() != "Vinyasa teacher" {
		t.Errorf("Subtitle() = %q, want bio", it.Subtitle())
	}
	if _, ok := it.Price(); ok {
		t.Error("instructor must not report a price")
	}
	if _, ok := it.StartAt(); ok {
		t.Error("instructor must not report a start time")
	}
	if _, ok := it.Coordinate(); ok {
		t.Error("instructor must not report a coordinate")
	}
}

func TestItemVenueVariant(t *testing.T) {
	it := FromVenue(catalog.Venue{ID: "ven-1", Name: "Studio One", Address: "Torstr. 1", Rating: 4.4})

	if it.Key() != "venue:ven-1" {
		t.Errorf("Key() = %q", it.Key())
	}
	if it.Subtitle() != "Torstr. 1" {
		t.Errorf("Subtitle() = %q, want address", it.Subtitle())
	}
	if _, ok := it.Price(); ok {
		t.Error("venue must not report a price")
	}
	if _, ok := it.StartAt(); ok {
		t.Error("venue must not report a start time")
	}
	if _, ok := it.Coordinate(); !ok {
		t.Error("venue should have a coordinate")
	}
}

func TestItemKeyDisambiguatesKinds(t *testing.T) {
	// Same raw ID across kinds must yield distinct keys.
	a := FromClass(catalog.Class{ID: "x"})
	b := FromInstructor(catalog.Instructor{ID: "x"})
	c := FromVenue(catalog.Venue{ID: "x"})

	if a.Key() == b.Key() || b.Key() == c.Key() || a.Key() == c.Key() {
		t.Errorf("keys collide: %q %q %q", a.Key(), b.Key(), c.Key())
	}
}

func TestItemExactMatchIsConstant(t *testing.T) {
	if FromClass(testClass()).ExactMatch() {
		t.Error("exact match is never derived true")
	}
}

func TestKindLabelsAndIcons(t *testing.T) {
	tests := []struct {
		kind  Kind
		label string
		icon  string
	}{
		{KindClass, "Class", "calendar"},
		{KindInstructor, "Instructor", "person"},
		{KindVenue, "Venue", "mappin"},
	}

	for _, tt := range tests {
		if tt.kind.Label() != tt.label || tt.kind.Icon() != tt.icon {
			t.Errorf("%q = (%q, %q), want (%q, %q)",
				tt.kind, tt.kind.Label(), tt.kind.Icon(), tt.label, tt.icon)
		}
	}
}
