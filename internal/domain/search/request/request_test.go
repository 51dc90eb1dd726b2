package request

import (
	"strings"
	"testing"

	"github.com/fitlocal/classdex/internal/domain/geo"
	"github.com/fitlocal/classdex/internal/domain/search/filter"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("yoga", "", nil, 0, -5, 0, filter.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Scope() != ScopeAll {
		t.Errorf("Scope() = %q, want all", r.Scope())
	}
	if r.Offset() != 0 {
		t.Errorf("negative offset should clamp to 0, got %d", r.Offset())
	}
	if r.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), DefaultLimit)
	}
	if r.SortBy() != sortby.Default {
		t.Errorf("SortBy() = %q, want default", r.SortBy())
	}
}

func TestNew_LimitClamp(t *testing.T) {
	r, err := New("", ScopeClasses, nil, 0, 0, 1000, filter.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Limit() != MaxLimit {
		t.Errorf("Limit() = %d, want %d", r.Limit(), MaxLimit)
	}
}

func TestNew_QueryTooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxQueryLength+1), ScopeAll, nil, 0, 0, 10, filter.New(), "")
	if err == nil {
		t.Fatal("expected error for oversized query")
	}
}

func TestNew_InvalidScope(t *testing.T) {
	_, err := New("", "teachers", nil, 0, 0, 10, filter.New(), "")
	if err == nil {
		t.Fatal("expected error for unknown scope")
	}
}

func TestNew_InvalidLocation(t *testing.T) {
	loc := geo.NewCoordinate(95, 0)
	_, err := New("", ScopeAll, &loc, 0, 0, 10, filter.New(), "")
	if err == nil {
		t.Fatal("expected error for out-of-range latitude")
	}
}

func TestNew_NegativeRadius(t *testing.T) {
	_, err := New("", ScopeAll, nil, -1, 0, 10, filter.New(), "")
	if err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestNew_InvalidSort(t *testing.T) {
	_, err := New("", ScopeAll, nil, 0, 0, 10, filter.New(), "alphabetical")
	if err == nil {
		t.Fatal("expected error for unknown sort strategy")
	}
}

func TestNew_SortFallsBackToFilters(t *testing.T) {
	spec := filter.New().WithSortBy(sortby.Rating)
	r, err := New("", ScopeAll, nil, 0, 0, 10, spec, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SortBy() != sortby.Rating {
		t.Errorf("SortBy() = %q, want rating from the filter spec", r.SortBy())
	}
}

func TestNew_ExplicitSortWins(t *testing.T) {
	spec := filter.New().WithSortBy(sortby.Rating)
	r, err := New("", ScopeAll, nil, 0, 0, 10, spec, sortby.PriceAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SortBy() != sortby.PriceAsc {
		t.Errorf("SortBy() = %q, want explicit price_asc", r.SortBy())
	}
	if r.Filters().SortBy() != sortby.PriceAsc {
		t.Error("explicit sort should be reflected in the stored filters")
	}
}

func TestNew_RadiusTightensFilters(t *testing.T) {
	r, err := New("", ScopeAll, nil, 2.5, 0, 10, filter.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Filters().RadiusKm() != 2.5 {
		t.Errorf("filters RadiusKm() = %v, want 2.5", r.Filters().RadiusKm())
	}
	if r.Filters().ActiveCount() != 1 {
		t.Errorf("radius should activate the distance facet, ActiveCount() = %d", r.Filters().ActiveCount())
	}
}
