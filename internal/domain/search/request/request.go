// Package request defines validated search parameters.
package request

import (
	"fmt"

	"github.com/fitlocal/classdex/internal/domain/geo"
	"github.com/fitlocal/classdex/internal/domain/search/filter"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 256
	DefaultLimit   = 20
	MaxLimit       = 100
)

// Scope restricts which entity kinds a search considers.
type Scope string

// Scope constants.
const (
	ScopeAll         Scope = "all"
	ScopeClasses     Scope = "classes"
	ScopeInstructors Scope = "instructors"
	ScopeVenues      Scope = "venues"
)

// IsValid checks if the scope is one of the supported values.
func (s Scope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeClasses, ScopeInstructors, ScopeVenues:
		return true
	}
	return false
}

// Request is a validated, immutable search invocation.
type Request struct {
	query    string
	scope    Scope
	location *geo.Coordinate
	radiusKm float64
	offset   int
	limit    int
	filters  filter.Spec
	sortBy   sortby.Strategy
}

// New validates and normalizes search parameters.
// Defaults: scope=all, limit=20, sort from the filter spec. Offset is
// clamped to zero; limit is clamped to [1, MaxLimit].
func New(
	query string,
	scope Scope,
	location *geo.Coordinate,
	radiusKm float64,
	offset, limit int,
	filters filter.Spec,
	sortBy sortby.Strategy,
) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if scope == "" {
		scope = ScopeAll
	}
	if !scope.IsValid() {
		return Request{}, fmt.Errorf("invalid scope: %q", scope)
	}
	if location != nil && !location.Valid() {
		return Request{}, fmt.Errorf("invalid coordinates: %.4f,%.4f", location.Latitude, location.Longitude)
	}
	if radiusKm < 0 {
		return Request{}, fmt.Errorf("radius must be non-negative")
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if sortBy == "" {
		sortBy = filters.SortBy()
	}
	if !sortBy.IsValid() {
		return Request{}, fmt.Errorf("invalid sort strategy: %q", sortBy)
	}

	// A caller radius tightens the filter's distance facet.
	if radiusKm > 0 {
		filters = filters.WithRadiusKm(radiusKm)
	}

	return Request{
		query:    query,
		scope:    scope,
		location: location,
		radiusKm: radiusKm,
		offset:   offset,
		limit:    limit,
		filters:  filters.WithSortBy(sortBy),
		sortBy:   sortBy,
	}, nil
}

// Query returns the free-text query.
func (r *Request) Query() string { return r.query }

// Scope returns the entity-kind restriction.
func (r *Request) Scope() Scope { return r.scope }

// Location returns the optional user location.
func (r *Request) Location() *geo.Coordinate { return r.location }

// RadiusKm returns the optional search radius, zero when unset.
func (r *Request) RadiusKm() float64 { return r.radiusKm }

// Offset returns the pagination offset.
func (r *Request) Offset() int { return r.offset }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Filters returns the filter specification.
func (r *Request) Filters() filter.Spec { return r.filters }

// SortBy returns the result ordering strategy.
func (r *Request) SortBy() sortby.Strategy { return r.sortBy }
