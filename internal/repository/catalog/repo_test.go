package catalog

import (
	"context"
	"errors"
	"testing"
)

// mockStore implements the store interface with overridable functions.
type mockStore struct {
	jsonGetFn func(ctx context.Context, key string, paths ...string) ([]byte, error)
	scanFn    func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	return m.jsonGetFn(ctx, key, paths...)
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	return m.scanFn(ctx, pattern)
}

func TestListClasses(t *testing.T) {
	docs := map[string]string{
		"classdex:class:cls-1": `{
			"id": "cls-1", "title": "Sunrise Yoga", "category": "yoga",
			"difficulty": "beginner", "price": 18,
			"start_at": "2026-03-14T08:00:00Z", "end_at": "2026-03-14T09:00:00Z",
			"duration_minutes": 60, "max_participants": 15, "booked_count": 9,
			"rating": 4.8, "neighborhood": "Mitte",
			"location": {"lat": 52.52, "lng": 13.405},
			"has_parking": true
		}`,
	}

	store := &mockStore{
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			if pattern != "classdex:class:*" {
				t.Errorf("pattern = %q", pattern)
			}
			return []string{"classdex:class:cls-1"}, nil
		},
		jsonGetFn: func(_ context.Context, key string, _ ...string) ([]byte, error) {
			return []byte(docs[key]), nil
		},
	}

	classes, err := New(store).ListClasses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("len = %d, want 1", len(classes))
	}

	c := classes[0]
	if c.ID != "cls-1" || c.Title != "Sunrise Yoga" {
		t.Errorf("class = %+v", c)
	}
	if string(c.Category) != "yoga" || c.Price != 18 || !c.HasParking {
		t.Errorf("decoded fields wrong: %+v", c)
	}
	if c.Location.Latitude != 52.52 || c.Location.Longitude != 13.405 {
		t.Errorf("location = %+v", c.Location)
	}
	if c.StartAt.Hour() != 8 {
		t.Errorf("StartAt = %v", c.StartAt)
	}
}

func TestListInstructors_KeyPrefixOverride(t *testing.T) {
	store := &mockStore{
		scanFn: func(_ context.Context, pattern string) ([]string, error) {
			if pattern != "other:instructor:*" {
				t.Errorf("pattern = %q", pattern)
			}
			return []string{"other:instructor:ins-1"}, nil
		},
		jsonGetFn: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return []byte(`{"id": "ins-1", "name": "Anna", "specialties": ["yoga"], "rating": 4.7}`), nil
		},
	}

	instructors, err := New(store).WithKeyPrefix("other:").ListInstructors(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(instructors) != 1 || instructors[0].Name != "Anna" {
		t.Fatalf("instructors = %+v", instructors)
	}
	if len(instructors[0].Specialties) != 1 || string(instructors[0].Specialties[0]) != "yoga" {
		t.Errorf("specialties = %v", instructors[0].Specialties)
	}
}

func TestListVenues_EmptyKeyspace(t *testing.T) {
	store := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return nil, nil
		},
	}

	venues, err := New(store).ListVenues(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(venues) != 0 {
		t.Errorf("venues = %+v, want none", venues)
	}
}

func TestListClasses_ScanError(t *testing.T) {
	wantErr := errors.New("connection refused")
	store := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return nil, wantErr
		},
	}

	if _, err := New(store).ListClasses(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped scan error", err)
	}
}

func TestListClasses_DecodeError(t *testing.T) {
	store := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return []string{"classdex:class:bad"}, nil
		},
		jsonGetFn: func(context.Context, string, ...string) ([]byte, error) {
			return []byte(`{not json`), nil
		},
	}

	if _, err := New(store).ListClasses(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHealthCheck(t *testing.T) {
	healthy := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) { return nil, nil },
	}
	if err := New(healthy).HealthCheck(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	broken := &mockStore{
		scanFn: func(context.Context, string) ([]string, error) {
			return nil, errors.New("down")
		},
	}
	if err := New(broken).HealthCheck(context.Background()); err == nil {
		t.Error("expected health check failure")
	}
}
