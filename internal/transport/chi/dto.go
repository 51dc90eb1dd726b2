package chi

import (
	"fmt"
	"time"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
	domhist "github.com/fitlocal/classdex/internal/domain/history"
	"github.com/fitlocal/classdex/internal/domain/search/filter"
	"github.com/fitlocal/classdex/internal/domain/search/preset"
	"github.com/fitlocal/classdex/internal/domain/search/result"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeNotConfigured    = "not_configured"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type locationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type filtersDTO struct {
	Categories    []string `json:"categories,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	IncludeFree   *bool    `json:"include_free,omitempty"`
	Difficulties  []string `json:"difficulties,omitempty"`
	DateRange     string   `json:"date_range,omitempty"`
	TimesOfDay    []string `json:"times_of_day,omitempty"`
	Weekdays      []int    `json:"weekdays,omitempty"`
	Duration      string   `json:"duration,omitempty"`
	ClassSize     string   `json:"class_size,omitempty"`
	Distance      string   `json:"distance,omitempty"`
	OnlyUpcoming  bool     `json:"only_upcoming,omitempty"`
	OnlyAvailable bool     `json:"only_available,omitempty"`
	HasParking    bool     `json:"has_parking,omitempty"`
	IsAccessible  bool     `json:"is_accessible,omitempty"`
	OnlineOnly    bool     `json:"online_only,omitempty"`
	MinRating     float64  `json:"min_rating,omitempty"`
	Neighborhoods []string `json:"neighborhoods,omitempty"`
}

type searchRequestDTO struct {
	Query    string       `json:"query"`
	Scope    string       `json:"scope,omitempty"`
	Preset   string       `json:"preset,omitempty"`
	Location *locationDTO `json:"location,omitempty"`
	RadiusKm float64      `json:"radius_km,omitempty"`
	Offset   int          `json:"offset,omitempty"`
	Limit    int          `json:"limit,omitempty"`
	SortBy   string       `json:"sort_by,omitempty"`
	Filters  *filtersDTO  `json:"filters,omitempty"`
}

type searchItemDTO struct {
	Key       string       `json:"key"`
	Kind      string       `json:"kind"`
	KindLabel string       `json:"kind_label"`
	KindIcon  string       `json:"kind_icon"`
	Title     string       `json:"title"`
	Subtitle  string       `json:"subtitle"`
	Price     *float64     `json:"price,omitempty"`
	Rating    float64      `json:"rating"`
	StartAt   *time.Time   `json:"start_at,omitempty"`
	Location  *locationDTO `json:"location,omitempty"`
}

type searchResponseDTO struct {
	Items  []searchItemDTO `json:"items"`
	Total  int             `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

type presetDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ActiveFilters int    `json:"active_filters"`
}

type trendDTO struct {
	Category      string `json:"category"`
	UpcomingCount int    `json:"upcoming_count"`
}

type historyEntryDTO struct {
	ID            string    `json:"id"`
	Query         string    `json:"query"`
	Scope         string    `json:"scope"`
	SortBy        string    `json:"sort_by"`
	ActiveFilters int       `json:"active_filters"`
	ResultCount   int       `json:"result_count"`
	SearchedAt    time.Time `json:"searched_at"`
}

// specFromDTO validates the wire filters and builds a filter spec.
func specFromDTO(dto *filtersDTO) (filter.Spec, error) {
	spec := filter.New()
	if dto == nil {
		return spec, nil
	}

	if len(dto.Categories) > 0 {
		cats := make([]catalog.Category, len(dto.Categories))
		for i, c := range dto.Categories {
			cat := catalog.Category(c)
			if !cat.IsValid() {
				return filter.Spec{}, fmt.Errorf("unknown category %q", c)
			}
			cats[i] = cat
		}
		spec = spec.WithCategories(cats...)
	}

	minPrice, maxPrice := spec.PriceRange()
	if dto.MinPrice != nil {
		minPrice = *dto.MinPrice
	}
	if dto.MaxPrice != nil {
		maxPrice = *dto.MaxPrice
	}
	spec = spec.WithPriceRange(minPrice, maxPrice)
	if dto.IncludeFree != nil {
		spec = spec.WithIncludeFree(*dto.IncludeFree)
	}

	if len(dto.Difficulties) > 0 {
		levels := make([]catalog.Difficulty, len(dto.Difficulties))
		for i, d := range dto.Difficulties {
			level := catalog.Difficulty(d)
			if !level.IsValid() {
				return filter.Spec{}, fmt.Errorf("unknown difficulty %q", d)
			}
			levels[i] = level
		}
		spec = spec.WithDifficulties(levels...)
	}

	if dto.DateRange != "" {
		dr := filter.DateRange(dto.DateRange)
		if !dr.IsValid() {
			return filter.Spec{}, fmt.Errorf("unknown date range %q", dto.DateRange)
		}
		spec = spec.WithDateRange(dr)
	}

	if len(dto.TimesOfDay) > 0 {
		buckets := make([]filter.TimeOfDay, len(dto.TimesOfDay))
		for i, t := range dto.TimesOfDay {
			bucket := filter.TimeOfDay(t)
			if !bucket.IsValid() {
				return filter.Spec{}, fmt.Errorf("unknown time of day %q", t)
			}
			buckets[i] = bucket
		}
		spec = spec.WithTimesOfDay(buckets...)
	}

	if len(dto.Weekdays) > 0 {
		days := make([]filter.Weekday, len(dto.Weekdays))
		for i, d := range dto.Weekdays {
			day := filter.Weekday(d)
			if !day.IsValid() {
				return filter.Spec{}, fmt.Errorf("weekday %d out of range 1-7", d)
			}
			days[i] = day
		}
		spec = spec.WithWeekdays(days...)
	}

	if dto.Duration != "" {
		dur := filter.DurationRange(dto.Duration)
		if !dur.IsValid() {
			return filter.Spec{}, fmt.Errorf("unknown duration %q", dto.Duration)
		}
		spec = spec.WithDuration(dur)
	}

	if dto.ClassSize != "" {
		size := filter.ClassSizeRange(dto.ClassSize)
		if !size.IsValid() {
			return filter.Spec{}, fmt.Errorf("unknown class size %q", dto.ClassSize)
		}
		spec = spec.WithClassSize(size)
	}

	if dto.Distance != "" {
		dist := filter.DistanceRange(dto.Distance)
		if !dist.IsValid() {
			return filter.Spec{}, fmt.Errorf("unknown distance %q", dto.Distance)
		}
		spec = spec.WithDistance(dist)
	}

	spec = spec.
		WithOnlyUpcoming(dto.OnlyUpcoming).
		WithOnlyAvailable(dto.OnlyAvailable).
		WithHasParking(dto.HasParking).
		WithAccessible(dto.IsAccessible).
		WithOnlineOnly(dto.OnlineOnly).
		WithMinRating(dto.MinRating).
		WithNeighborhoods(dto.Neighborhoods...)

	return spec, nil
}

func itemToDTO(it result.Item) searchItemDTO {
	dto := searchItemDTO{
		Key:       it.Key(),
		Kind:      string(it.Kind()),
		KindLabel: it.Kind().Label(),
		KindIcon:  it.Kind().Icon(),
		Title:     it.Title(),
		Subtitle:  it.Subtitle(),
		Rating:    it.Rating(),
	}
	if price, ok := it.Price(); ok {
		dto.Price = &price
	}
	if start, ok := it.StartAt(); ok {
		dto.StartAt = &start
	}
	if loc, ok := it.Coordinate(); ok {
		dto.Location = &locationDTO{Lat: loc.Latitude, Lng: loc.Longitude}
	}
	return dto
}

func presetToDTO(p preset.Preset) presetDTO {
	return presetDTO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		ActiveFilters: p.Spec.ActiveCount(),
	}
}

func historyToDTO(e domhist.Entry) historyEntryDTO {
	return historyEntryDTO{
		ID:            e.ID,
		Query:         e.Query,
		Scope:         e.Scope,
		SortBy:        e.SortBy,
		ActiveFilters: e.ActiveFilters,
		ResultCount:   e.ResultCount,
		SearchedAt:    e.SearchedAt,
	}
}

func locationFromDTO(dto *locationDTO) *geo.Coordinate {
	if dto == nil {
		return nil
	}
	c := geo.NewCoordinate(dto.Lat, dto.Lng)
	return &c
}
