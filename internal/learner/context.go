package learner

import (
	"time"

	"github.com/arjunrao/learnpath/internal/catalog"
)

// AttemptRecord is an immutable snapshot of one assessment attempt.
type AttemptRecord struct {
	// SkillScores maps skill name to accuracy in [0, 1] for that attempt.
	SkillScores map[string]float64
	// ScorePercentage is the attempt's overall score in [0, 100].
	ScorePercentage float64
	// Timestamp orders attempts for recency weighting.
	Timestamp time.Time
}

// Context is the read-only learner snapshot the engine computes against.
// The engine never mutates it.
type Context struct {
	CurrentSkills       SkillLevels
	TargetSkills        map[string]bool
	CompletedCourseIDs  map[string]bool
	PreferredDifficulty catalog.Difficulty
	StudyHoursPerWeek   float64
}

// Goal describes what the learner is working toward.
type Goal struct {
	Description  string
	TargetRole   string
	TargetSkills map[string]bool
}

// TargetSkillNames returns the goal's target skills in lexicographic order.
func (g Goal) TargetSkillNames() []string {
	return sortedKeys(g.TargetSkills)
}
