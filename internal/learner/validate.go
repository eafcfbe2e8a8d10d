package learner

import (
	"fmt"
	"sort"
	"strings"
)

// Validate performs structural checks on the context.
// Returns a combined error describing all problems found, or nil if valid.
// Zero study hours is allowed; downstream pace math substitutes 1.
func (c Context) Validate() error {
	var errs []string

	for skill, level := range c.CurrentSkills {
		if skill == "" {
			errs = append(errs, "current skills: empty skill name")
		}
		if level < MinLevel || level > MaxLevel {
			errs = append(errs, fmt.Sprintf("skill %q: level %.1f outside [%g, %g]", skill, level, MinLevel, MaxLevel))
		}
	}
	for skill := range c.TargetSkills {
		if skill == "" {
			errs = append(errs, "target skills: empty skill name")
		}
	}
	if !c.PreferredDifficulty.Valid() {
		errs = append(errs, fmt.Sprintf("unknown preferred difficulty %q", c.PreferredDifficulty))
	}
	if c.StudyHoursPerWeek < 0 {
		errs = append(errs, fmt.Sprintf("negative study hours per week: %.1f", c.StudyHoursPerWeek))
	}

	if len(errs) > 0 {
		return fmt.Errorf("learner context validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ValidateAttempts checks a batch of attempt records.
func ValidateAttempts(attempts []AttemptRecord) error {
	var errs []string
	for i, a := range attempts {
		for skill, acc := range a.SkillScores {
			if skill == "" {
				errs = append(errs, fmt.Sprintf("attempt %d: empty skill name", i))
			}
			if acc < 0 || acc > 1 {
				errs = append(errs, fmt.Sprintf("attempt %d: skill %q accuracy %.2f outside [0, 1]", i, skill, acc))
			}
		}
		if a.ScorePercentage < 0 || a.ScorePercentage > 100 {
			errs = append(errs, fmt.Sprintf("attempt %d: score percentage %.1f outside [0, 100]", i, a.ScorePercentage))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("attempt validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
