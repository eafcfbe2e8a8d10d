package learner

import "sort"

const (
	// MinLevel and MaxLevel bound every skill proficiency estimate.
	MinLevel = 0.0
	MaxLevel = 10.0

	// ProficientThreshold is the level at which a skill counts as acquired.
	ProficientThreshold = 7.0

	// StrugglingThreshold is the level below which a skill needs attention.
	StrugglingThreshold = 5.0
)

// SkillLevels maps a skill name to a 0-10 proficiency estimate.
// Absence of a key means "no evidence", which is distinct from a proven zero.
type SkillLevels map[string]float64

// Level returns the estimate for a skill, or 0 if the skill is absent.
func (s SkillLevels) Level(skill string) float64 {
	return s[skill]
}

// Has reports whether any estimate exists for the skill.
func (s SkillLevels) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

// Known returns the set of skills that have an estimate.
func (s SkillLevels) Known() map[string]bool {
	known := make(map[string]bool, len(s))
	for skill := range s {
		known[skill] = true
	}
	return known
}

// Names returns all skill names in lexicographic order.
func (s SkillLevels) Names() []string {
	names := make([]string, 0, len(s))
	for skill := range s {
		names = append(names, skill)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of the map.
func (s SkillLevels) Clone() SkillLevels {
	out := make(SkillLevels, len(s))
	for skill, level := range s {
		out[skill] = level
	}
	return out
}

// ClampLevel forces a value into the [MinLevel, MaxLevel] range.
func ClampLevel(v float64) float64 {
	if v < MinLevel {
		return MinLevel
	}
	if v > MaxLevel {
		return MaxLevel
	}
	return v
}
