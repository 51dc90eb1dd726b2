// Package history persists the recent-search log as TTL'd KV entries.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	domhist "github.com/fitlocal/classdex/internal/domain/history"
)

// DefaultTTL is how long a recorded search is retained.
const DefaultTTL = 7 * 24 * time.Hour

// store is the consumer interface for the history log (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Store records executed searches.
type Store struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New creates a history store.
func New(s store, keyPrefix string) *Store {
	return &Store{store: s, prefix: keyPrefix, ttl: DefaultTTL}
}

// WithTTL overrides the retention period.
func (s *Store) WithTTL(ttl time.Duration) *Store {
	if ttl > 0 {
		s.ttl = ttl
	}
	return s
}

// Record stores one search entry. Assigns an id when the entry has none.
func (s *Store) Record(ctx context.Context, e domhist.Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode history entry: %w", err)
	}
	if err := s.store.SetWithTTL(ctx, s.key(e.ID), data, s.ttl); err != nil {
		return fmt.Errorf("store history entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domhist.Entry, error) {
	keys, err := s.store.Scan(ctx, s.prefix+"history:*")
	if err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}

	entries := make([]domhist.Entry, 0, len(keys))
	for _, key := range keys {
		raw, err := s.store.Get(ctx, key)
		if err != nil {
			// Entry may have expired between scan and get.
			continue
		}
		var e domhist.Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode %s: %w", key, err)
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SearchedAt.After(entries[j].SearchedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) key(id string) string {
	return s.prefix + "history:" + id
}
