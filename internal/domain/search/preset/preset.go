// Package preset holds the fixed table of named filter presets and the
// trending-category summaries. Presets are data, not behavior: applying one
// replaces the caller's filter spec wholesale.
package preset

import (
	"sort"
	"time"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/search/filter"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
)

// Preset is a named, pre-built filter spec for a common user intent.
type Preset struct {
	ID          string
	Name        string
	Description string
	Spec        filter.Spec
}

// Preset identifiers.
const (
	FreeClasses      = "free_classes"
	ThisWeekend      = "this_weekend"
	TopRated         = "top_rated"
	BeginnerFriendly = "beginner_friendly"
	MorningWorkouts  = "morning_workouts"
	OnlineClasses    = "online_classes"
	NearMe           = "near_me"
)

// All returns the preset table in display order.
func All() []Preset {
	return []Preset{
		{
			ID:          FreeClasses,
			Name:        "Free classes",
			Description: "Sessions that cost nothing to join",
			Spec:        filter.New().WithPriceRange(0, 0).WithIncludeFree(true),
		},
		{
			ID:          ThisWeekend,
			Name:        "This weekend",
			Description: "Saturday and Sunday sessions this week",
			Spec: filter.New().
				WithDateRange(filter.DateThisWeek).
				WithWeekdays(filter.Saturday, filter.Sunday),
		},
		{
			ID:          TopRated,
			Name:        "Top rated",
			Description: "Sessions rated 4.5 and above",
			Spec:        filter.New().WithMinRating(4.5).WithSortBy(sortby.Rating),
		},
		{
			ID:          BeginnerFriendly,
			Name:        "Beginner friendly",
			Description: "No experience needed",
			Spec: filter.New().
				WithDifficulties(catalog.DifficultyBeginner, catalog.DifficultyAllLevels),
		},
		{
			ID:          MorningWorkouts,
			Name:        "Morning workouts",
			Description: "Upcoming morning fitness, yoga, and pilates",
			Spec: filter.New().
				WithCategories(catalog.CategoryFitness, catalog.CategoryYoga, catalog.CategoryPilates).
				WithTimesOfDay(filter.Morning).
				WithOnlyUpcoming(true),
		},
		{
			ID:          OnlineClasses,
			Name:        "Online classes",
			Description: "Join from anywhere",
			Spec:        filter.New().WithOnlineOnly(true),
		},
		{
			ID:          NearMe,
			Name:        "Near me",
			Description: "Within five kilometers, closest first",
			Spec: filter.New().
				WithDistance(filter.Within5Km).
				WithSortBy(sortby.Distance),
		},
	}
}

// ByID looks up a preset by identifier.
func ByID(id string) (Preset, bool) {
	for _, p := range All() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// CategoryTrend summarizes upcoming activity for one category, paired with
// a spec that reproduces the summary as a search.
type CategoryTrend struct {
	Category      catalog.Category
	UpcomingCount int
	Spec          filter.Spec
}

// TrendingCategories counts upcoming classes per category and returns the
// top categories by count, ties broken by category name for a stable order.
func TrendingCategories(classes []catalog.Class, now time.Time, limit int) []CategoryTrend {
	counts := make(map[catalog.Category]int)
	for _, c := range classes {
		if c.IsUpcoming(now) {
			counts[c.Category]++
		}
	}

	trends := make([]CategoryTrend, 0, len(counts))
	for cat, n := range counts {
		trends = append(trends, CategoryTrend{
			Category:      cat,
			UpcomingCount: n,
			Spec:          filter.New().WithCategories(cat).WithOnlyUpcoming(true),
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].UpcomingCount != trends[j].UpcomingCount {
			return trends[i].UpcomingCount > trends[j].UpcomingCount
		}
		return trends[i].Category < trends[j].Category
	})

	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}
