package filter

import (
	"strings"
	"time"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
)

// MatchesClass reports whether the class passes every active facet.
// Facets are independent and combined with logical AND; a facet at its
// default never constrains. Pure: the receiver, the class, and the
// location are never modified.
//
// Free classes are governed solely by the includeFree flag: a zero-priced
// class is excluded iff includeFree is false, and is never excluded by the
// numeric price range. A degenerate range (min > max) excludes every
// priced class.
func (s Spec) MatchesClass(c catalog.Class, userLoc *geo.Coordinate, now time.Time) bool {
	if len(s.categories) > 0 && !containsCategory(s.categories, c.Category) {
		return false
	}

	if c.IsFree() {
		if !s.includeFree {
			return false
		}
	} else if s.minPrice > 0 || s.maxPrice < MaxPrice {
		if c.Price < s.minPrice || c.Price > s.maxPrice {
			return false
		}
	}

	if len(s.difficulties) > 0 && !containsDifficulty(s.difficulties, c.Difficulty) {
		return false
	}

	if s.minRating > 0 && c.Rating < s.minRating {
		return false
	}

	if !s.duration.Matches(c.DurationMinutes) {
		return false
	}

	if !s.classSize.Matches(c.MaxParticipants) {
		return false
	}

	if limit, ok := s.effectiveLimitKm(); ok && userLoc != nil {
		if geo.DistanceKm(*userLoc, c.Location) > limit {
			return false
		}
	}

	if start, end, ok := s.dateRange.Interval(now); ok {
		if c.StartAt.Before(start) || !c.StartAt.Before(end) {
			return false
		}
	}

	if len(s.timesOfDay) > 0 && !anyBucketContains(s.timesOfDay, c.StartHour()) {
		return false
	}

	if len(s.weekdays) > 0 && !containsWeekday(s.weekdays, Weekday(c.Weekday())) {
		return false
	}

	if s.onlyUpcoming && !c.IsUpcoming(now) {
		return false
	}
	if s.onlyAvailable && c.IsFull() {
		return false
	}
	if s.hasParking && !c.HasParking {
		return false
	}
	if s.isAccessible && !c.IsAccessible {
		return false
	}
	if s.onlineOnly && !c.IsOnline {
		return false
	}

	if len(s.neighborhoods) > 0 && !containsFold(s.neighborhoods, c.Neighborhood) {
		return false
	}

	return true
}

// MatchesInstructor applies the facet subset defined on instructors:
// minimum rating and category (against specialties). All other facets are
// vacuously true.
func (s Spec) MatchesInstructor(i catalog.Instructor) bool {
	if s.minRating > 0 && i.Rating < s.minRating {
		return false
	}
	if len(s.categories) > 0 {
		for _, c := range s.categories {
			if i.Teaches(c) {
				return true
			}
		}
		return false
	}
	return true
}

// MatchesVenue applies the facet subset defined on venues: minimum rating,
// neighborhood, parking, accessibility, and distance. All other facets are
// vacuously true.
func (s Spec) MatchesVenue(v catalog.Venue, userLoc *geo.Coordinate) bool {
	if s.minRating > 0 && v.Rating < s.minRating {
		return false
	}
	if len(s.neighborhoods) > 0 && !containsFold(s.neighborhoods, v.Neighborhood) {
		return false
	}
	if s.hasParking && !v.HasParking {
		return false
	}
	if s.isAccessible && !v.IsAccessible {
		return false
	}
	if limit, ok := s.effectiveLimitKm(); ok && userLoc != nil {
		if geo.DistanceKm(*userLoc, v.Location) > limit {
			return false
		}
	}
	return true
}

func containsCategory(set []catalog.Category, c catalog.Category) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsDifficulty(set []catalog.Difficulty, d catalog.Difficulty) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}

func containsWeekday(set []Weekday, w Weekday) bool {
	for _, v := range set {
		if v == w {
			return true
		}
	}
	return false
}

func anyBucketContains(set []TimeOfDay, hour int) bool {
	for _, b := range set {
		if b.Contains(hour) {
			return true
		}
	}
	return false
}

func containsFold(set []string, s string) bool {
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
