// Package search implements the search orchestrator: collect, filter,
// adapt, match, rank, paginate.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fitlocal/classdex/internal/domain"
	"github.com/fitlocal/classdex/internal/domain/history"
	"github.com/fitlocal/classdex/internal/domain/search/preset"
	"github.com/fitlocal/classdex/internal/domain/search/request"
	"github.com/fitlocal/classdex/internal/domain/search/result"
	"github.com/fitlocal/classdex/internal/logger"
)

// Service executes searches over catalog snapshots, fully in memory.
type Service struct {
	catalog Catalog
	history History
	now     func() time.Time
}

// New creates a search service.
func New(cat Catalog) *Service {
	return &Service{catalog: cat, now: time.Now}
}

// WithHistory attaches an optional recent-search log.
func (s *Service) WithHistory(h History) *Service {
	s.history = h
	return s
}

// WithClock overrides the time source. Used by tests; calendar-bucket
// facets resolve their intervals against this clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Search runs the fixed pipeline: collect raw entities for the scope,
// apply facet filters, adapt survivors, apply the query matcher, rank, and
// slice [offset, offset+limit) clamped to bounds. Returns the page and the
// total matched count. Filtering precedes adaptation so derived fields are
// only computed for survivors; matching follows adaptation because title
// and subtitle are adapter-derived.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Item, int, error) {
	now := s.now()
	spec := req.Filters()
	loc := req.Location()

	var items []result.Item

	if req.Scope() == request.ScopeAll || req.Scope() == request.ScopeClasses {
		classes, err := s.catalog.ListClasses(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("list classes: %w", err)
		}
		for _, c := range classes {
			if spec.MatchesClass(c, loc, now) {
				items = append(items, result.FromClass(c))
			}
		}
	}

	if req.Scope() == request.ScopeAll || req.Scope() == request.ScopeInstructors {
		instructors, err := s.catalog.ListInstructors(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("list instructors: %w", err)
		}
		for _, i := range instructors {
			if spec.MatchesInstructor(i) {
				items = append(items, result.FromInstructor(i))
			}
		}
	}

	if req.Scope() == request.ScopeAll || req.Scope() == request.ScopeVenues {
		venues, err := s.catalog.ListVenues(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("list venues: %w", err)
		}
		for _, v := range venues {
			if spec.MatchesVenue(v, loc) {
				items = append(items, result.FromVenue(v))
			}
		}
	}

	if q := req.Query(); q != "" {
		matched := items[:0]
		for _, it := range items {
			if textMatches(q, it) {
				matched = append(matched, it)
			}
		}
		items = matched
	}

	ranked := rankItems(items, req.SortBy(), loc)
	total := len(ranked)
	page := paginate(ranked, req.Offset(), req.Limit())

	s.recordHistory(ctx, req, total, now)

	return page, total, nil
}

// Trending summarizes upcoming class counts per category.
func (s *Service) Trending(ctx context.Context, limit int) ([]preset.CategoryTrend, error) {
	classes, err := s.catalog.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return preset.TrendingCategories(classes, s.now(), limit), nil
}

// Recent returns the most recent recorded searches.
func (s *Service) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryDisabled
	}
	entries, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	return entries, nil
}

// recordHistory logs the search best-effort; failures never fail the search.
func (s *Service) recordHistory(ctx context.Context, req *request.Request, total int, now time.Time) {
	if s.history == nil {
		return
	}
	entry := history.Entry{
		Query:         req.Query(),
		Scope:         string(req.Scope()),
		SortBy:        string(req.SortBy()),
		ActiveFilters: req.Filters().ActiveCount(),
		ResultCount:   total,
		SearchedAt:    now,
	}
	if err := s.history.Record(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn("record search history", zap.Error(err))
	}
}

// paginate slices [offset, offset+limit) clamped to bounds. Out-of-range
// offsets return an empty page, never an error.
func paginate(items []result.Item, offset, limit int) []result.Item {
	if offset >= len(items) {
		return []result.Item{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
