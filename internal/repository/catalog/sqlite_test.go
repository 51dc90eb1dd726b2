package catalog

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := repo.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}

	_, err := repo.db.Exec(`
		INSERT INTO classes (
			id, title, category, difficulty, price, start_at, end_at,
			duration_minutes, max_participants, booked_count, rating,
			neighborhood, lat, lng, tags, is_online
		) VALUES (
			'cls-1', 'Sunrise Yoga', 'yoga', 'beginner', 18,
			'2026-03-14T08:00:00Z', '2026-03-14T09:00:00Z',
			60, 15, 9, 4.8, 'Mitte', 52.52, 13.405, 'vinyasa, morning', 0
		)`)
	if err != nil {
		t.Fatalf("insert class: %v", err)
	}
	_, err = repo.db.Exec(`
		INSERT INTO instructors (id, name, bio, specialties, rating)
		VALUES ('ins-1', 'Anna', 'Yoga teacher', 'yoga,pilates', 4.7)`)
	if err != nil {
		t.Fatalf("insert instructor: %v", err)
	}
	_, err = repo.db.Exec(`
		INSERT INTO venues (id, name, address, neighborhood, lat, lng, rating, has_parking)
		VALUES ('ven-1', 'Kiez Studio', 'Torstr. 12', 'Mitte', 52.52, 13.405, 4.7, 1)`)
	if err != nil {
		t.Fatalf("insert venue: %v", err)
	}

	classes, err := repo.ListClasses(ctx)
	if err != nil {
		t.Fatalf("ListClasses: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("len(classes) = %d, want 1", len(classes))
	}
	c := classes[0]
	if c.Title != "Sunrise Yoga" || string(c.Category) != "yoga" || c.Price != 18 {
		t.Errorf("class = %+v", c)
	}
	if c.StartAt.Hour() != 8 || c.Weekday() != 7 {
		t.Errorf("schedule decoded wrong: %v", c.StartAt)
	}
	if len(c.Tags) != 2 || c.Tags[0] != "vinyasa" || c.Tags[1] != "morning" {
		t.Errorf("tags = %v", c.Tags)
	}

	instructors, err := repo.ListInstructors(ctx)
	if err != nil {
		t.Fatalf("ListInstructors: %v", err)
	}
	if len(instructors) != 1 || len(instructors[0].Specialties) != 2 {
		t.Fatalf("instructors = %+v", instructors)
	}

	venues, err := repo.ListVenues(ctx)
	if err != nil {
		t.Fatalf("ListVenues: %v", err)
	}
	if len(venues) != 1 || !venues[0].HasParking {
		t.Fatalf("venues = %+v", venues)
	}
}

func TestSQLiteListClasses_BadTimestamp(t *testing.T) {
	repo := openTestDB(t)

	_, err := repo.db.Exec(`
		INSERT INTO classes (id, title, category, difficulty, start_at, end_at)
		VALUES ('cls-bad', 'Broken', 'yoga', 'beginner', 'not-a-time', 'not-a-time')`)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := repo.ListClasses(context.Background()); err == nil {
		t.Fatal("expected parse error for malformed start_at")
	}
}
