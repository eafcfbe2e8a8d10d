// Package gaps compares current skill levels against goal targets.
package gaps

// GapSize classifies how far a skill is from proficiency.
type GapSize string

const (
	GapLarge  GapSize = "large"
	GapMedium GapSize = "medium"
	GapSmall  GapSize = "small"
)

// Priority orders which gaps to close first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank maps a priority to its sort position (high first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// SkillGap is one target skill below full proficiency.
type SkillGap struct {
	Skill        string
	CurrentLevel float64
	GapSize      GapSize
	Priority     Priority
}

// Strength is a skill at or above the proficient threshold,
// independent of any goal.
type Strength struct {
	Skill string
	Level float64
}

// ReadinessStatus labels overall progress toward a goal.
type ReadinessStatus string

const (
	StatusReady              ReadinessStatus = "ready"
	StatusProgressing        ReadinessStatus = "progressing"
	StatusBuildingFoundation ReadinessStatus = "building_foundation"
)

// Readiness summarizes how close the learner is to the goal.
type Readiness struct {
	Percentage   int
	Status       ReadinessStatus
	Acquired     int
	TotalTargets int
}

// FocusKind tags an analyzer recommendation.
type FocusKind string

const (
	FocusGaps      FocusKind = "focus_area"
	FocusStrengths FocusKind = "leverage_strength"
)

// Focus is a short, human-readable study suggestion.
type Focus struct {
	Kind    FocusKind
	Message string
	Skills  []string
}

// Report is the full gap analysis output.
type Report struct {
	Gaps       []SkillGap // highest priority first
	Strengths  []Strength // highest level first
	Readiness  Readiness
	Focus      []Focus
}
