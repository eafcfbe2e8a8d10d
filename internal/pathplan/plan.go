// Package pathplan builds ordered, prerequisite-respecting course sequences.
package pathplan

import (
	"time"

	"github.com/arjunrao/learnpath/internal/catalog"
)

// Step is one course in a learning path. Sequence numbers are 1-based
// and contiguous.
type Step struct {
	Sequence        int                `json:"sequence"`
	CourseID        string             `json:"course_id"`
	Title           string             `json:"title"`
	Difficulty      catalog.Difficulty `json:"difficulty"`
	SkillsGained    []string           `json:"skills_gained"` // gap skills this step closes, lexicographic
	DurationHours   float64            `json:"duration_hours"`
	CumulativeHours float64            `json:"cumulative_hours"`
}

// Metadata summarizes a generated path.
type Metadata struct {
	TotalCourses        int       `json:"total_courses"`
	TotalHours          float64   `json:"total_hours"`
	EstimatedWeeks      int       `json:"estimated_weeks"`
	StudyHoursPerWeek   float64   `json:"study_hours_per_week"`
	EstimatedCompletion time.Time `json:"estimated_completion"`
	SkillsCovered       []string  `json:"skills_covered"` // learned after the path, lexicographic
	RemainingGaps       []string  `json:"remaining_gaps"` // target skills still unreachable
	CompletionPercent   int       `json:"completion_percent"` // share of target skills covered
}

// Path is the planner output: ordered steps plus metadata.
// An empty step list is a valid result, not an error.
type Path struct {
	Steps []Step   `json:"steps"`
	Meta  Metadata `json:"metadata"`
}
