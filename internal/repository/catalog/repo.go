// Package catalog implements the entity-catalog collaborator over three
// storage drivers: redis JSON snapshots, sqlite tables, and an in-memory
// fixture set.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	domcat "github.com/fitlocal/classdex/internal/domain/catalog"
)

// DefaultKeyPrefix namespaces catalog keys.
const DefaultKeyPrefix = "classdex:"

// store is the consumer interface for the redis driver (ISP).
type store interface {
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo reads catalog snapshots stored as JSON documents under
// <prefix>class:<id>, <prefix>instructor:<id>, <prefix>venue:<id>.
type Repo struct {
	store  store
	prefix string
}

// New creates a redis-backed catalog repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: DefaultKeyPrefix}
}

// WithKeyPrefix overrides the key prefix.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// ListClasses returns all class snapshots.
func (r *Repo) ListClasses(ctx context.Context) ([]domcat.Class, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"class:*")
	if err != nil {
		return nil, fmt.Errorf("scan classes: %w", err)
	}

	classes := make([]domcat.Class, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		var doc classDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		classes = append(classes, doc.toDomain())
	}
	return classes, nil
}

// ListInstructors returns all instructor snapshots.
func (r *Repo) ListInstructors(ctx context.Context) ([]domcat.Instructor, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"instructor:*")
	if err != nil {
		return nil, fmt.Errorf("scan instructors: %w", err)
	}

	instructors := make([]domcat.Instructor, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		var doc instructorDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		instructors = append(instructors, doc.toDomain())
	}
	return instructors, nil
}

// ListVenues returns all venue snapshots.
func (r *Repo) ListVenues(ctx context.Context) ([]domcat.Venue, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"venue:*")
	if err != nil {
		return nil, fmt.Errorf("scan venues: %w", err)
	}

	venues := make([]domcat.Venue, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		var doc venueDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		venues = append(venues, doc.toDomain())
	}
	return venues, nil
}

// HealthCheck verifies the snapshot keyspace is reachable.
func (r *Repo) HealthCheck(ctx context.Context) error {
	if _, err := r.store.Scan(ctx, r.prefix+"class:*"); err != nil {
		return fmt.Errorf("catalog health: %w", err)
	}
	return nil
}
