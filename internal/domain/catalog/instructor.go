package catalog

// Instructor is a teacher profile snapshot. Instructors have no price,
// schedule, or coordinate of their own.
type Instructor struct {
	ID              string
	Name            string
	Bio             string
	Specialties     []Category
	Rating          float64
	ReviewCount     int
	YearsExperience int
}

// Teaches reports whether the instructor lists the category as a specialty.
func (i Instructor) Teaches(c Category) bool {
	for _, s := range i.Specialties {
		if s == c {
			return true
		}
	}
	return false
}
