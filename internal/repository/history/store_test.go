package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domhist "github.com/fitlocal/classdex/internal/domain/history"
)

// memKV is an in-memory store implementation for tests.
type memKV struct {
	data    map[string][]byte
	lastTTL time.Duration
	setErr  error
	getErr  map[string]error
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}, getErr: map[string]error{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	if err := m.getErr[key]; err != nil {
		return nil, err
	}
	return m.data[key], nil
}

func (m *memKV) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.lastTTL = ttl
	return nil
}

func (m *memKV) Scan(_ context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func at(min int) time.Time {
	return time.Date(2026, 3, 11, 12, min, 0, 0, time.UTC)
}

func TestRecord_AssignsID(t *testing.T) {
	kv := newMemKV()
	s := New(kv, "classdex:")

	if err := s.Record(context.Background(), domhist.Entry{Query: "yoga", SearchedAt: at(0)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(kv.data) != 1 {
		t.Fatalf("stored %d keys, want 1", len(kv.data))
	}
	for k := range kv.data {
		if !strings.HasPrefix(k, "classdex:history:") {
			t.Errorf("key = %q, want classdex:history: prefix", k)
		}
		if strings.TrimPrefix(k, "classdex:history:") == "" {
			t.Error("entry id should be assigned when empty")
		}
	}
	if kv.lastTTL != DefaultTTL {
		t.Errorf("ttl = %v, want default %v", kv.lastTTL, DefaultTTL)
	}
}

func TestRecord_KeepsExplicitID(t *testing.T) {
	kv := newMemKV()
	s := New(kv, "classdex:").WithTTL(time.Hour)

	if err := s.Record(context.Background(), domhist.Entry{ID: "fixed", SearchedAt: at(0)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := kv.data["classdex:history:fixed"]; !ok {
		t.Errorf("keys = %v, want classdex:history:fixed", kv.data)
	}
	if kv.lastTTL != time.Hour {
		t.Errorf("ttl = %v, want overridden 1h", kv.lastTTL)
	}
}

func TestRecord_StoreError(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("redis gone")
	s := New(kv, "classdex:")

	if err := s.Record(context.Background(), domhist.Entry{}); !errors.Is(err, kv.setErr) {
		t.Errorf("err = %v, want wrapped store error", err)
	}
}

func TestRecent_NewestFirstAndLimited(t *testing.T) {
	kv := newMemKV()
	s := New(kv, "classdex:")
	ctx := context.Background()

	for i, q := range []string{"oldest", "middle", "newest"} {
		err := s.Record(ctx, domhist.Entry{ID: q, Query: q, SearchedAt: at(i)})
		if err != nil {
			t.Fatalf("record %q: %v", q, err)
		}
	}

	entries, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Query != "newest" || entries[1].Query != "middle" {
		t.Errorf("order = %q, %q, want newest, middle", entries[0].Query, entries[1].Query)
	}
}

func TestRecent_SkipsExpiredEntries(t *testing.T) {
	kv := newMemKV()
	s := New(kv, "classdex:")
	ctx := context.Background()

	if err := s.Record(ctx, domhist.Entry{ID: "live", Query: "live", SearchedAt: at(0)}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := s.Record(ctx, domhist.Entry{ID: "gone", Query: "gone", SearchedAt: at(1)}); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Simulate expiry between scan and get.
	kv.getErr["classdex:history:gone"] = errors.New("key not found")

	entries, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Query != "live" {
		t.Errorf("entries = %+v, want only the live entry", entries)
	}
}
