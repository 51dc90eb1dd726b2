package catalog

import (
	"time"

	domcat "github.com/fitlocal/classdex/internal/domain/catalog"
	"github.com/fitlocal/classdex/internal/domain/geo"
)

// Storage documents for catalog snapshots.

type coordinateDoc struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type classDoc struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	Difficulty      string        `json:"difficulty"`
	Price           float64       `json:"price"`
	StartAt         time.Time     `json:"start_at"`
	EndAt           time.Time     `json:"end_at"`
	DurationMinutes int           `json:"duration_minutes"`
	MaxParticipants int           `json:"max_participants"`
	BookedCount     int           `json:"booked_count"`
	Rating          float64       `json:"rating"`
	ReviewCount     int           `json:"review_count"`
	InstructorID    string        `json:"instructor_id"`
	InstructorName  string        `json:"instructor_name"`
	VenueID         string        `json:"venue_id"`
	VenueName       string        `json:"venue_name"`
	Neighborhood    string        `json:"neighborhood"`
	Location        coordinateDoc `json:"location"`
	Tags            []string      `json:"tags,omitempty"`
	IsOnline        bool          `json:"is_online"`
	HasParking      bool          `json:"has_parking"`
	IsAccessible    bool          `json:"is_accessible"`
}

type instructorDoc struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio"`
	Specialties     []string `json:"specialties,omitempty"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	YearsExperience int      `json:"years_experience"`
}

type venueDoc struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Neighborhood string        `json:"neighborhood"`
	Location     coordinateDoc `json:"location"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"review_count"`
	HasParking   bool          `json:"has_parking"`
	IsAccessible bool          `json:"is_accessible"`
}

func (d classDoc) toDomain() domcat.Class {
	return domcat.Class{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		Category:        domcat.Category(d.Category),
		Difficulty:      domcat.Difficulty(d.Difficulty),
		Price:           d.Price,
		StartAt:         d.StartAt,
		EndAt:           d.EndAt,
		DurationMinutes: d.DurationMinutes,
		MaxParticipants: d.MaxParticipants,
		BookedCount:     d.BookedCount,
		Rating:          d.Rating,
		ReviewCount:     d.ReviewCount,
		InstructorID:    d.InstructorID,
		InstructorName:  d.InstructorName,
		VenueID:         d.VenueID,
		VenueName:       d.VenueName,
		Neighborhood:    d.Neighborhood,
		Location:        geo.NewCoordinate(d.Location.Lat, d.Location.Lng),
		Tags:            d.Tags,
		IsOnline:        d.IsOnline,
		HasParking:      d.HasParking,
		IsAccessible:    d.IsAccessible,
	}
}

func (d instructorDoc) toDomain() domcat.Instructor {
	specs := make([]domcat.Category, len(d.Specialties))
	for i, s := range d.Specialties {
		specs[i] = domcat.Category(s)
	}
	return domcat.Instructor{
		ID:              d.ID,
		Name:            d.Name,
		Bio:             d.Bio,
		Specialties:     specs,
		Rating:          d.Rating,
		ReviewCount:     d.ReviewCount,
		YearsExperience: d.YearsExperience,
	}
}

func (d venueDoc) toDomain() domcat.Venue {
	return domcat.Venue{
		ID:           d.ID,
		Name:         d.Name,
		Address:      d.Address,
		Neighborhood: d.Neighborhood,
		Location:     geo.NewCoordinate(d.Location.Lat, d.Location.Lng),
		Rating:       d.Rating,
		ReviewCount:  d.ReviewCount,
		HasParking:   d.HasParking,
		IsAccessible: d.IsAccessible,
	}
}
