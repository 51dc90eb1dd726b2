package filter

import "time"

// DateRange buckets class start dates by calendar semantics relative to now.
type DateRange string

// DateRange constants.
const (
	DateAny       DateRange = "any"
	DateToday     DateRange = "today"
	DateThisWeek  DateRange = "this_week"
	DateNextWeek  DateRange = "next_week"
	DateThisMonth DateRange = "this_month"
	DateNextMonth DateRange = "next_month"
	// DateCustom has no resolved interval and always passes. Known gap,
	// kept deliberately until the open-ended picker ships.
	DateCustom DateRange = "custom"
)

// IsValid checks if the bucket is one of the supported values.
func (d DateRange) IsValid() bool {
	switch d {
	case DateAny, DateToday, DateThisWeek, DateNextWeek,
		DateThisMonth, DateNextMonth, DateCustom:
		return true
	}
	return false
}

// Interval resolves the bucket to a [start, end) interval relative to now.
// Returns ok=false for buckets without an interval (any, custom), which are
// treated as unconstrained.
func (d DateRange) Interval(now time.Time) (start, end time.Time, ok bool) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// ISO weeks start on Monday.
	weekStart := dayStart.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	switch d {
	case DateToday:
		return dayStart, dayStart.AddDate(0, 0, 1), true
	case DateThisWeek:
		return weekStart, weekStart.AddDate(0, 0, 7), true
	case DateNextWeek:
		return weekStart.AddDate(0, 0, 7), weekStart.AddDate(0, 0, 14), true
	case DateThisMonth:
		return monthStart, monthStart.AddDate(0, 1, 0), true
	case DateNextMonth:
		return monthStart.AddDate(0, 1, 0), monthStart.AddDate(0, 2, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// TimeOfDay buckets class start hours.
type TimeOfDay string

// TimeOfDay constants.
const (
	Morning   TimeOfDay = "morning"   // 05-11
	Afternoon TimeOfDay = "afternoon" // 12-16
	Evening   TimeOfDay = "evening"   // 17-20
	Night     TimeOfDay = "night"     // 21-04
)

// IsValid checks if the bucket is one of the supported values.
func (t TimeOfDay) IsValid() bool {
	switch t {
	case Morning, Afternoon, Evening, Night:
		return true
	}
	return false
}

// Contains reports whether the hour (0-23) falls in the bucket.
func (t TimeOfDay) Contains(hour int) bool {
	switch t {
	case Morning:
		return hour >= 5 && hour <= 11
	case Afternoon:
		return hour >= 12 && hour <= 16
	case Evening:
		return hour >= 17 && hour <= 20
	case Night:
		return hour >= 21 || hour <= 4
	}
	return false
}

// Weekday uses the 1=Sunday..7=Saturday convention.
type Weekday int

// Weekday constants.
const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// IsValid checks if the weekday index is in range.
func (w Weekday) IsValid() bool { return w >= Sunday && w <= Saturday }

// DurationRange buckets class durations in minutes.
type DurationRange string

// DurationRange constants.
const (
	DurationAny      DurationRange = "any"
	DurationShort    DurationRange = "short"    // under 30 min
	DurationMedium   DurationRange = "medium"   // 30-60 min
	DurationLong     DurationRange = "long"     // 60-120 min
	DurationExtended DurationRange = "extended" // over 120 min
)

// IsValid checks if the bucket is one of the supported values.
func (d DurationRange) IsValid() bool {
	switch d {
	case DurationAny, DurationShort, DurationMedium, DurationLong, DurationExtended:
		return true
	}
	return false
}

// Matches reports whether the duration in minutes falls in the bucket.
// DurationAny has no interval and matches everything.
func (d DurationRange) Matches(minutes int) bool {
	switch d {
	case DurationShort:
		return minutes < 30
	case DurationMedium:
		return minutes >= 30 && minutes < 60
	case DurationLong:
		return minutes >= 60 && minutes <= 120
	case DurationExtended:
		return minutes > 120
	}
	return true
}

// ClassSizeRange buckets classes by maximum participant count.
type ClassSizeRange string

// ClassSizeRange constants.
const (
	SizeAny      ClassSizeRange = "any"
	SizeIntimate ClassSizeRange = "intimate" // up to 5
	SizeSmall    ClassSizeRange = "small"    // 6-12
	SizeMedium   ClassSizeRange = "medium"   // 13-25
	SizeLarge    ClassSizeRange = "large"    // 26+
)

// IsValid checks if the bucket is one of the supported values.
func (s ClassSizeRange) IsValid() bool {
	switch s {
	case SizeAny, SizeIntimate, SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Matches reports whether the participant capacity falls in the bucket.
func (s ClassSizeRange) Matches(maxParticipants int) bool {
	switch s {
	case SizeIntimate:
		return maxParticipants <= 5
	case SizeSmall:
		return maxParticipants >= 6 && maxParticipants <= 12
	case SizeMedium:
		return maxParticipants >= 13 && maxParticipants <= 25
	case SizeLarge:
		return maxParticipants >= 26
	}
	return true
}

// DistanceRange buckets maximum distance from the user location.
type DistanceRange string

// DistanceRange constants.
const (
	DistanceAny DistanceRange = "any"
	Within1Km   DistanceRange = "1km"
	Within5Km   DistanceRange = "5km"
	Within10Km  DistanceRange = "10km"
	Within25Km  DistanceRange = "25km"
)

// IsValid checks if the bucket is one of the supported values.
func (d DistanceRange) IsValid() bool {
	switch d {
	case DistanceAny, Within1Km, Within5Km, Within10Km, Within25Km:
		return true
	}
	return false
}

// LimitKm returns the finite distance limit in kilometers.
// Returns ok=false for DistanceAny, which is unconstrained.
func (d DistanceRange) LimitKm() (float64, bool) {
	switch d {
	case Within1Km:
		return 1, true
	case Within5Km:
		return 5, true
	case Within10Km:
		return 10, true
	case Within25Km:
		return 25, true
	}
	return 0, false
}
