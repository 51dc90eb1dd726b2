package classdex

import (
	"fmt"
	"time"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	domhist "github.com/fitlocal/classdex/internal/domain/history"
	"github.com/fitlocal/classdex/internal/domain/search/filter"
	"github.com/fitlocal/classdex/internal/domain/search/preset"
	"github.com/fitlocal/classdex/internal/domain/search/result"
)

// LatLng is a geographic point in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Filters narrows search results. Zero values leave a facet inactive.
type Filters struct {
	Categories    []string
	MinPrice      float64
	MaxPrice      float64 // 0 means "no upper bound"
	ExcludeFree   bool
	Difficulties  []string
	DateRange     string
	TimesOfDay    []string
	Weekdays      []int // 1=Sunday .. 7=Saturday
	Duration      string
	ClassSize     string
	Distance      string
	OnlyUpcoming  bool
	OnlyAvailable bool
	HasParking    bool
	IsAccessible  bool
	OnlineOnly    bool
	MinRating     float64
	Neighborhoods []string
}

// Query describes one search.
type Query struct {
	Text     string
	Scope    string // "", "all", "classes", "instructors" or "venues"
	Preset   string // preset ID; replaces Filters when set
	Location *LatLng
	RadiusKm float64
	Offset   int
	Limit    int
	SortBy   string
	Filters  *Filters
}

// Item is a single search hit.
type Item struct {
	Key      string
	Kind     string
	Title    string
	Subtitle string
	Price    *float64 // nil for instructors and venues
	Rating   float64
	StartAt  *time.Time
	Location *LatLng
}

// Preset is a curated filter combination.
type Preset struct {
	ID            string
	Name          string
	Description   string
	ActiveFilters int
}

// Trend is a category ranked by upcoming class count.
type Trend struct {
	Category      string
	UpcomingCount int
}

// HistoryEntry is a previously recorded search.
type HistoryEntry struct {
	ID            string
	Query         string
	Scope         string
	SortBy        string
	ActiveFilters int
	ResultCount   int
	SearchedAt    time.Time
}

// specFromFilters validates public filters and builds a domain spec.
func specFromFilters(f *Filters) (filter.Spec, error) {
	spec := filter.New()
	if f == nil {
		return spec, nil
	}

	if len(f.Categories) > 0 {
		cats := make([]catalog.Category, len(f.Categories))
		for i, c := range f.Categories {
			cat := catalog.Category(c)
			if !cat.IsValid() {
				return filter.Spec{}, fmt.Errorf("classdex: unknown category %q", c)
			}
			cats[i] = cat
		}
		spec = spec.WithCategories(cats...)
	}

	maxPrice := f.MaxPrice
	if maxPrice <= 0 {
		_, maxPrice = spec.PriceRange()
	}
	spec = spec.WithPriceRange(f.MinPrice, maxPrice).WithIncludeFree(!f.ExcludeFree)

	if len(f.Difficulties) > 0 {
		levels := make([]catalog.Difficulty, len(f.Difficulties))
		for i, d := range f.Difficulties {
			level := catalog.Difficulty(d)
			if !level.IsValid() {
				return filter.Spec{}, fmt.Errorf("classdex: unknown difficulty %q", d)
			}
			levels[i] = level
		}
		spec = spec.WithDifficulties(levels...)
	}

	if f.DateRange != "" {
		dr := filter.DateRange(f.DateRange)
		if !dr.IsValid() {
			return filter.Spec{}, fmt.Errorf("classdex: unknown date range %q", f.DateRange)
		}
		spec = spec.WithDateRange(dr)
	}

	if len(f.TimesOfDay) > 0 {
		buckets := make([]filter.TimeOfDay, len(f.TimesOfDay))
		for i, t := range f.TimesOfDay {
			bucket := filter.TimeOfDay(t)
			if !bucket.IsValid() {
				return filter.Spec{}, fmt.Errorf("classdex: unknown time of day %q", t)
			}
			buckets[i] = bucket
		}
		spec = spec.WithTimesOfDay(buckets...)
	}

	if len(f.Weekdays) > 0 {
		days := make([]filter.Weekday, len(f.Weekdays))
		for i, d := range f.Weekdays {
			day := filter.Weekday(d)
			if !day.IsValid() {
				return filter.Spec{}, fmt.Errorf("classdex: weekday %d out of range 1-7", d)
			}
			days[i] = day
		}
		spec = spec.WithWeekdays(days...)
	}

	if f.Duration != "" {
		dur := filter.DurationRange(f.Duration)
		if !dur.IsValid() {
			return filter.Spec{}, fmt.Errorf("classdex: unknown duration %q", f.Duration)
		}
		spec = spec.WithDuration(dur)
	}

	if f.ClassSize != "" {
		size := filter.ClassSizeRange(f.ClassSize)
		if !size.IsValid() {
			return filter.Spec{}, fmt.Errorf("classdex: unknown class size %q", f.ClassSize)
		}
		spec = spec.WithClassSize(size)
	}

	if f.Distance != "" {
		dist := filter.DistanceRange(f.Distance)
		if !dist.IsValid() {
			return filter.Spec{}, fmt.Errorf("classdex: unknown distance %q", f.Distance)
		}
		spec = spec.WithDistance(dist)
	}

	return spec.
		WithOnlyUpcoming(f.OnlyUpcoming).
		WithOnlyAvailable(f.OnlyAvailable).
		WithHasParking(f.HasParking).
		WithAccessible(f.IsAccessible).
		WithOnlineOnly(f.OnlineOnly).
		WithMinRating(f.MinRating).
		WithNeighborhoods(f.Neighborhoods...), nil
}

func itemFromResult(it result.Item) Item {
	out := Item{
		Key:      it.Key(),
		Kind:     string(it.Kind()),
		Title:    it.Title(),
		Subtitle: it.Subtitle(),
		Rating:   it.Rating(),
	}
	if price, ok := it.Price(); ok {
		out.Price = &price
	}
	if start, ok := it.StartAt(); ok {
		out.StartAt = &start
	}
	if loc, ok := it.Coordinate(); ok {
		out.Location = &LatLng{Lat: loc.Latitude, Lng: loc.Longitude}
	}
	return out
}

func presetFromDomain(p preset.Preset) Preset {
	return Preset{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		ActiveFilters: p.Spec.ActiveCount(),
	}
}

func historyFromDomain(e domhist.Entry) HistoryEntry {
	return HistoryEntry{
		ID:            e.ID,
		Query:         e.Query,
		Scope:         e.Scope,
		SortBy:        e.SortBy,
		ActiveFilters: e.ActiveFilters,
		ResultCount:   e.ResultCount,
		SearchedAt:    e.SearchedAt,
	}
}
