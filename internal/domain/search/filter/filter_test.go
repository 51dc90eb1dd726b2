package filter

import (
	"testing"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
)

func TestNew_Unconstrained(t *testing.T) {
	s := New()

	if s.HasActive() {
		t.Error("fresh spec should have no active facets")
	}
	if got := s.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount() = %d, want 0", got)
	}
	minPrice, maxPrice := s.PriceRange()
	if minPrice != 0 || maxPrice != MaxPrice {
		t.Errorf("PriceRange() = (%v, %v), want (0, %v)", minPrice, maxPrice, MaxPrice)
	}
	if !s.IncludeFree() {
		t.Error("free classes should be included by default")
	}
	if s.SortBy() != sortby.Default {
		t.Errorf("SortBy() = %q, want %q", s.SortBy(), sortby.Default)
	}
}

func TestWith_CopySemantics(t *testing.T) {
	base := New()
	derived := base.WithMinRating(4.5).WithCategories(catalog.CategoryYoga)

	if base.HasActive() {
		t.Error("base spec was mutated by With* call")
	}
	if derived.MinRating() != 4.5 {
		t.Errorf("derived MinRating() = %v, want 4.5", derived.MinRating())
	}
	if got := derived.ActiveCount(); got != 2 {
		t.Errorf("derived ActiveCount() = %d, want 2", got)
	}
}

func TestActiveCount_OnePerFacet(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{
			"three categories count once",
			New().WithCategories(catalog.CategoryYoga, catalog.CategoryDance, catalog.CategoryArt),
			1,
		},
		{
			"categories plus rating",
			New().
				WithCategories(catalog.CategoryYoga, catalog.CategoryDance, catalog.CategoryArt).
				WithMinRating(4.0),
			2,
		},
		{"min price only", New().WithPriceRange(10, MaxPrice), 1},
		{"exclude free only", New().WithIncludeFree(false), 1},
		{"radius only", New().WithRadiusKm(3), 1},
		{
			"distance bucket plus radius is one facet",
			New().WithDistance(Within10Km).WithRadiusKm(3),
			1,
		},
		{"sort strategy is not a facet", New().WithSortBy(sortby.PriceAsc), 0},
		{
			"every facet",
			New().
				WithCategories(catalog.CategoryYoga).
				WithPriceRange(5, 50).
				WithIncludeFree(false).
				WithDifficulties(catalog.DifficultyBeginner).
				WithDateRange(DateThisWeek).
				WithTimesOfDay(Morning).
				WithWeekdays(Monday).
				WithDuration(DurationMedium).
				WithClassSize(SizeSmall).
				WithDistance(Within5Km).
				WithOnlyUpcoming(true).
				WithOnlyAvailable(true).
				WithHasParking(true).
				WithAccessible(true).
				WithOnlineOnly(true).
				WithMinRating(4).
				WithNeighborhoods("Mitte"),
			16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.ActiveCount(); got != tt.want {
				t.Errorf("ActiveCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEffectiveLimitKm(t *testing.T) {
	tests := []struct {
		name   string
		spec   Spec
		want   float64
		wantOK bool
	}{
		{"neither", New(), 0, false},
		{"bucket only", New().WithDistance(Within10Km), 10, true},
		{"radius only", New().WithRadiusKm(7), 7, true},
		{"radius tighter than bucket", New().WithDistance(Within10Km).WithRadiusKm(3), 3, true},
		{"bucket tighter than radius", New().WithDistance(Within10Km).WithRadiusKm(30), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, ok := tt.spec.effectiveLimitKm()
			if limit != tt.want || ok != tt.wantOK {
				t.Errorf("effectiveLimitKm() = (%v, %v), want (%v, %v)", limit, ok, tt.want, tt.wantOK)
			}
		})
	}
}
