// Package filter defines the multi-facet search filter and its evaluator.
//
// A Spec is a bundle of independent facet constraints. Every facet defaults
// to "unconstrained", so the zero-configured Spec matches everything.
// Mutation is by replacement: the With* helpers return a modified copy and
// never touch the receiver.
package filter

import (
	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
)

// MaxPrice is the price ceiling of the unconstrained price facet.
const MaxPrice = 500.0

// Spec is an immutable filter specification.
type Spec struct {
	categories    []catalog.Category
	minPrice      float64
	maxPrice      float64
	includeFree   bool
	difficulties  []catalog.Difficulty
	dateRange     DateRange
	timesOfDay    []TimeOfDay
	weekdays      []Weekday
	duration      DurationRange
	classSize     ClassSizeRange
	distance      DistanceRange
	radiusKm      float64
	onlyUpcoming  bool
	onlyAvailable bool
	hasParking    bool
	isAccessible  bool
	onlineOnly    bool
	minRating     float64
	neighborhoods []string
	sortBy        sortby.Strategy
}

// New creates an unconstrained Spec that matches every entity.
func New() Spec {
	return Spec{
		minPrice:    0,
		maxPrice:    MaxPrice,
		includeFree: true,
		dateRange:   DateAny,
		duration:    DurationAny,
		classSize:   SizeAny,
		distance:    DistanceAny,
		sortBy:      sortby.Default,
	}
}

// WithCategories replaces the category facet.
func (s Spec) WithCategories(cats ...catalog.Category) Spec {
	s.categories = cats
	return s
}

// WithPriceRange replaces the price facet bounds. A degenerate range
// (min > max) excludes every priced entity; that is documented behavior,
// not an error.
func (s Spec) WithPriceRange(minPrice, maxPrice float64) Spec {
	s.minPrice = minPrice
	s.maxPrice = maxPrice
	return s
}

// WithIncludeFree sets whether zero-priced classes are included.
func (s Spec) WithIncludeFree(include bool) Spec {
	s.includeFree = include
	return s
}

// WithDifficulties replaces the difficulty facet.
func (s Spec) WithDifficulties(levels ...catalog.Difficulty) Spec {
	s.difficulties = levels
	return s
}

// WithDateRange sets the calendar bucket facet.
func (s Spec) WithDateRange(d DateRange) Spec {
	s.dateRange = d
	return s
}

// WithTimesOfDay replaces the time-of-day facet.
func (s Spec) WithTimesOfDay(buckets ...TimeOfDay) Spec {
	s.timesOfDay = buckets
	return s
}

// WithWeekdays replaces the weekday facet.
func (s Spec) WithWeekdays(days ...Weekday) Spec {
	s.weekdays = days
	return s
}

// WithDuration sets the duration bucket facet.
func (s Spec) WithDuration(d DurationRange) Spec {
	s.duration = d
	return s
}

// WithClassSize sets the class-size bucket facet.
func (s Spec) WithClassSize(size ClassSizeRange) Spec {
	s.classSize = size
	return s
}

// WithDistance sets the distance bucket facet.
func (s Spec) WithDistance(d DistanceRange) Spec {
	s.distance = d
	return s
}

// WithRadiusKm sets a free-form distance limit in kilometers, used when the
// caller supplies a radius instead of a distance bucket. Zero means unset.
func (s Spec) WithRadiusKm(km float64) Spec {
	s.radiusKm = km
	return s
}

// WithOnlyUpcoming sets the upcoming-only flag.
func (s Spec) WithOnlyUpcoming(v bool) Spec {
	s.onlyUpcoming = v
	return s
}

// WithOnlyAvailable sets the spots-remaining flag.
func (s Spec) WithOnlyAvailable(v bool) Spec {
	s.onlyAvailable = v
	return s
}

// WithHasParking sets the parking flag.
func (s Spec) WithHasParking(v bool) Spec {
	s.hasParking = v
	return s
}

// WithAccessible sets the accessibility flag.
func (s Spec) WithAccessible(v bool) Spec {
	s.isAccessible = v
	return s
}

// WithOnlineOnly sets the online-attendance flag.
func (s Spec) WithOnlineOnly(v bool) Spec {
	s.onlineOnly = v
	return s
}

// WithMinRating sets the minimum rating facet.
func (s Spec) WithMinRating(r float64) Spec {
	s.minRating = r
	return s
}

// WithNeighborhoods replaces the neighborhood facet.
func (s Spec) WithNeighborhoods(names ...string) Spec {
	s.neighborhoods = names
	return s
}

// WithSortBy sets the active sort strategy.
func (s Spec) WithSortBy(strategy sortby.Strategy) Spec {
	s.sortBy = strategy
	return s
}

// Categories returns the selected categories.
func (s Spec) Categories() []catalog.Category { return s.categories }

// PriceRange returns the price bounds.
func (s Spec) PriceRange() (minPrice, maxPrice float64) { return s.minPrice, s.maxPrice }

// IncludeFree reports whether zero-priced classes are included.
func (s Spec) IncludeFree() bool { return s.includeFree }

// Difficulties returns the selected difficulty levels.
func (s Spec) Difficulties() []catalog.Difficulty { return s.difficulties }

// DateRange returns the calendar bucket.
func (s Spec) DateRange() DateRange { return s.dateRange }

// TimesOfDay returns the selected time-of-day buckets.
func (s Spec) TimesOfDay() []TimeOfDay { return s.timesOfDay }

// Weekdays returns the selected weekdays.
func (s Spec) Weekdays() []Weekday { return s.weekdays }

// Duration returns the duration bucket.
func (s Spec) Duration() DurationRange { return s.duration }

// ClassSize returns the class-size bucket.
func (s Spec) ClassSize() ClassSizeRange { return s.classSize }

// Distance returns the distance bucket.
func (s Spec) Distance() DistanceRange { return s.distance }

// RadiusKm returns the free-form distance limit, zero when unset.
func (s Spec) RadiusKm() float64 { return s.radiusKm }

// OnlyUpcoming reports the upcoming-only flag.
func (s Spec) OnlyUpcoming() bool { return s.onlyUpcoming }

// OnlyAvailable reports the spots-remaining flag.
func (s Spec) OnlyAvailable() bool { return s.onlyAvailable }

// HasParking reports the parking flag.
func (s Spec) HasParking() bool { return s.hasParking }

// Accessible reports the accessibility flag.
func (s Spec) Accessible() bool { return s.isAccessible }

// OnlineOnly reports the online-attendance flag.
func (s Spec) OnlineOnly() bool { return s.onlineOnly }

// MinRating returns the minimum rating facet, zero when unset.
func (s Spec) MinRating() float64 { return s.minRating }

// Neighborhoods returns the selected neighborhoods.
func (s Spec) Neighborhoods() []string { return s.neighborhoods }

// SortBy returns the active sort strategy.
func (s Spec) SortBy() sortby.Strategy { return s.sortBy }

// priceActive reports whether the price facet deviates from its default.
func (s Spec) priceActive() bool {
	return s.minPrice > 0 || s.maxPrice < MaxPrice || !s.includeFree
}

// distanceActive reports whether any distance limit is configured.
func (s Spec) distanceActive() bool {
	_, bucketed := s.distance.LimitKm()
	return bucketed || s.radiusKm > 0
}

// effectiveLimitKm resolves the distance facet to a single limit: the
// tighter of the bucket limit and the free-form radius.
func (s Spec) effectiveLimitKm() (float64, bool) {
	limit, ok := s.distance.LimitKm()
	if s.radiusKm > 0 && (!ok || s.radiusKm < limit) {
		return s.radiusKm, true
	}
	return limit, ok
}

// HasActive reports whether any facet deviates from its default.
func (s Spec) HasActive() bool { return s.ActiveCount() > 0 }

// ActiveCount returns the number of active facets. Each facet contributes
// one unit regardless of how many values are selected within it; the sort
// strategy is not a facet.
func (s Spec) ActiveCount() int {
	count := 0
	for _, active := range []bool{
		len(s.categories) > 0,
		s.priceActive(),
		len(s.difficulties) > 0,
		s.dateRange != DateAny,
		len(s.timesOfDay) > 0,
		len(s.weekdays) > 0,
		s.duration != DurationAny,
		s.classSize != SizeAny,
		s.distanceActive(),
		s.onlyUpcoming,
		s.onlyAvailable,
		s.hasParking,
		s.isAccessible,
		s.onlineOnly,
		s.minRating > 0,
		len(s.neighborhoods) > 0,
	} {
		if active {
			count++
		}
	}
	return count
}
