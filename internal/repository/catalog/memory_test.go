package catalog

import (
	"context"
	"testing"
	"time"
)

func TestMemorySeeded(t *testing.T) {
	now := time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)
	repo := NewMemorySeeded(now)
	ctx := context.Background()

	classes, err := repo.ListClasses(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(classes) != 4 {
		t.Errorf("len(classes) = %d, want 4", len(classes))
	}
	for _, c := range classes {
		if !c.Category.IsValid() || !c.Difficulty.IsValid() {
			t.Errorf("class %s has invalid vocabulary: %q/%q", c.ID, c.Category, c.Difficulty)
		}
		if !c.IsUpcoming(now) {
			t.Errorf("seeded class %s should be upcoming relative to the seed time", c.ID)
		}
	}

	instructors, err := repo.ListInstructors(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instructors) != 3 {
		t.Errorf("len(instructors) = %d, want 3", len(instructors))
	}

	venues, err := repo.ListVenues(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(venues) != 3 {
		t.Errorf("len(venues) = %d, want 3", len(venues))
	}
	for _, v := range venues {
		if !v.Location.Valid() || v.Location.IsZero() {
			t.Errorf("venue %s has bad location %+v", v.ID, v.Location)
		}
	}

	if err := repo.HealthCheck(ctx); err != nil {
		t.Errorf("memory health check should pass: %v", err)
	}
}
