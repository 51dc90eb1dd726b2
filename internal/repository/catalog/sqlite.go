package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	domcat "github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
)

// SQLiteRepo reads catalog snapshots from a sqlite database with three
// tables: classes, instructors, venues.
type SQLiteRepo struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the catalog database and ensures the schema.
func OpenSQLite(path string) (*SQLiteRepo, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo := &SQLiteRepo{db: conn}
	if err := repo.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return repo, nil
}

// Close releases the database handle.
func (r *SQLiteRepo) Close() error { return r.db.Close() }

// Ping checks database availability.
func (r *SQLiteRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}
	return nil
}

// HealthCheck verifies the snapshot tables are readable.
func (r *SQLiteRepo) HealthCheck(ctx context.Context) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes`).Scan(&n); err != nil {
		return fmt.Errorf("catalog health: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS classes (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL,
	difficulty TEXT NOT NULL,
	price REAL NOT NULL DEFAULT 0,
	start_at TEXT NOT NULL,
	end_at TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL DEFAULT 0,
	max_participants INTEGER NOT NULL DEFAULT 0,
	booked_count INTEGER NOT NULL DEFAULT 0,
	rating REAL NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	instructor_id TEXT NOT NULL DEFAULT '',
	instructor_name TEXT NOT NULL DEFAULT '',
	venue_id TEXT NOT NULL DEFAULT '',
	venue_name TEXT NOT NULL DEFAULT '',
	neighborhood TEXT NOT NULL DEFAULT '',
	lat REAL NOT NULL DEFAULT 0,
	lng REAL NOT NULL DEFAULT 0,
	tags TEXT NOT NULL DEFAULT '',
	is_online INTEGER NOT NULL DEFAULT 0,
	has_parking INTEGER NOT NULL DEFAULT 0,
	is_accessible INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS instructors (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	bio TEXT NOT NULL DEFAULT '',
	specialties TEXT NOT NULL DEFAULT '',
	rating REAL NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	years_experience INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS venues (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	neighborhood TEXT NOT NULL DEFAULT '',
	lat REAL NOT NULL DEFAULT 0,
	lng REAL NOT NULL DEFAULT 0,
	rating REAL NOT NULL DEFAULT 0,
	review_count INTEGER NOT NULL DEFAULT 0,
	has_parking INTEGER NOT NULL DEFAULT 0,
	is_accessible INTEGER NOT NULL DEFAULT 0
);`
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate catalog schema: %w", err)
	}
	return nil
}

// ListClasses returns all class snapshots.
func (r *SQLiteRepo) ListClasses(ctx context.Context) ([]domcat.Class, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, category, difficulty, price,
			start_at, end_at, duration_minutes, max_participants, booked_count,
			rating, review_count, instructor_id, instructor_name,
			venue_id, venue_name, neighborhood, lat, lng, tags,
			is_online, has_parking, is_accessible
		FROM classes`)
	if err != nil {
		return nil, fmt.Errorf("query classes: %w", err)
	}
	defer rows.Close()

	var classes []domcat.Class
	for rows.Next() {
		var c domcat.Class
		var category, difficulty, startAt, endAt, tags string
		var lat, lng float64
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &category, &difficulty, &c.Price,
			&startAt, &endAt, &c.DurationMinutes, &c.MaxParticipants, &c.BookedCount,
			&c.Rating, &c.ReviewCount, &c.InstructorID, &c.InstructorName,
			&c.VenueID, &c.VenueName, &c.Neighborhood, &lat, &lng, &tags,
			&c.IsOnline, &c.HasParking, &c.IsAccessible,
		); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		c.Category = domcat.Category(category)
		c.Difficulty = domcat.Difficulty(difficulty)
		c.Location = geo.NewCoordinate(lat, lng)
		if c.StartAt, err = parseTime(startAt); err != nil {
			return nil, fmt.Errorf("class %s start_at: %w", c.ID, err)
		}
		if c.EndAt, err = parseTime(endAt); err != nil {
			return nil, fmt.Errorf("class %s end_at: %w", c.ID, err)
		}
		c.Tags = splitList(tags)
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// ListInstructors returns all instructor snapshots.
func (r *SQLiteRepo) ListInstructors(ctx context.Context) ([]domcat.Instructor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, bio, specialties, rating, review_count, years_experience
		FROM instructors`)
	if err != nil {
		return nil, fmt.Errorf("query instructors: %w", err)
	}
	defer rows.Close()

	var instructors []domcat.Instructor
	for rows.Next() {
		var i domcat.Instructor
		var specialties string
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Bio, &specialties,
			&i.Rating, &i.ReviewCount, &i.YearsExperience,
		); err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		for _, s := range splitList(specialties) {
			i.Specialties = append(i.Specialties, domcat.Category(s))
		}
		instructors = append(instructors, i)
	}
	return instructors, rows.Err()
}

// ListVenues returns all venue snapshots.
func (r *SQLiteRepo) ListVenues(ctx context.Context) ([]domcat.Venue, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address, neighborhood, lat, lng,
			rating, review_count, has_parking, is_accessible
		FROM venues`)
	if err != nil {
		return nil, fmt.Errorf("query venues: %w", err)
	}
	defer rows.Close()

	var venues []domcat.Venue
	for rows.Next() {
		var v domcat.Venue
		var lat, lng float64
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Address, &v.Neighborhood, &lat, &lng,
			&v.Rating, &v.ReviewCount, &v.HasParking, &v.IsAccessible,
		); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		v.Location = geo.NewCoordinate(lat, lng)
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// splitList decodes a comma-separated column into a slice, empty for "".
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
