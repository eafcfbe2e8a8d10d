package catalog

// Difficulty represents a course difficulty tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Expert       Difficulty = "expert"
)

// AllDifficulties returns all tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced, Expert}
}

// Ordinal maps a difficulty tier to its 1-4 rank.
// Unknown tiers map to the Intermediate rank.
func (d Difficulty) Ordinal() int {
	switch d {
	case Beginner:
		return 1
	case Intermediate:
		return 2
	case Advanced:
		return 3
	case Expert:
		return 4
	default:
		return 2
	}
}

// Valid reports whether d is one of the four known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced, Expert:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for a difficulty tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	case Expert:
		return "Expert"
	default:
		return string(d)
	}
}

// Course describes one catalog entry. Courses are immutable value
// snapshots; the engine never writes back to the catalog.
type Course struct {
	ID            string
	Title         string
	Description   string
	Difficulty    Difficulty
	SkillsTaught  []string
	Prerequisites []string // skill names, not course IDs
	DurationHours float64
	Enrollments   int
}

// TeachesAny reports whether the course teaches at least one of the given skills.
func (c Course) TeachesAny(skills map[string]bool) bool {
	for _, s := range c.SkillsTaught {
		if skills[s] {
			return true
		}
	}
	return false
}

// PrereqsMet reports whether every prerequisite skill is in the learned set.
func (c Course) PrereqsMet(learned map[string]bool) bool {
	for _, p := range c.Prerequisites {
		if !learned[p] {
			return false
		}
	}
	return true
}
