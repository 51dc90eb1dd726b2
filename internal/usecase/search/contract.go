package search

import (
	"context"

	"github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/history"
)

// Catalog provides read-only entity snapshots. The service does not fetch,
// cache, or page upstream; it assumes the repository holds the working set.
type Catalog interface {
	ListClasses(ctx context.Context) ([]catalog.Class, error)
	ListInstructors(ctx context.Context) ([]catalog.Instructor, error)
	ListVenues(ctx context.Context) ([]catalog.Venue, error)
}

// History records executed searches. Optional collaborator.
type History interface {
	Record(ctx context.Context, e history.Entry) error
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}
