package catalog

// Category is the activity category vocabulary.
type Category string

// Category constants.
const (
	CategoryYoga     Category = "yoga"
	CategoryPilates  Category = "pilates"
	CategoryFitness  Category = "fitness"
	CategoryDance    Category = "dance"
	CategoryMartial  Category = "martial_arts"
	CategorySwimming Category = "swimming"
	CategoryClimbing Category = "climbing"
	CategoryCooking  Category = "cooking"
	CategoryArt      Category = "art"
	CategoryMusic    Category = "music"
)

// Categories lists all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryYoga, CategoryPilates, CategoryFitness, CategoryDance,
		CategoryMartial, CategorySwimming, CategoryClimbing,
		CategoryCooking, CategoryArt, CategoryMusic,
	}
}

// IsValid checks if the category is one of the known values.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Difficulty is the class difficulty vocabulary.
type Difficulty string

// Difficulty constants.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyAllLevels    Difficulty = "all_levels"
)

// IsValid checks if the difficulty is one of the known values.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyAllLevels:
		return true
	}
	return false
}
