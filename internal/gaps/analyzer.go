package gaps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arjunrao/learnpath/internal/learner"
)

const (
	largeGapCeiling = 3.0
	readyFloor      = 80
	progressFloor   = 50
)

// Analyze compares the learner's current skills against the goal's
// targets. Gaps are sorted by priority rank, ties broken by skill name.
// Readiness is 100% when the goal has no target skills.
func Analyze(ctx learner.Context, goal learner.Goal) Report {
	gaps := make([]SkillGap, 0, len(goal.TargetSkills))
	for _, skill := range goal.TargetSkillNames() {
		level := ctx.CurrentSkills.Level(skill)
		gaps = append(gaps, SkillGap{
			Skill:        skill,
			CurrentLevel: level,
			GapSize:      sizeFor(level),
			Priority:     priorityFor(level),
		})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Priority.Rank() != gaps[j].Priority.Rank() {
			return gaps[i].Priority.Rank() < gaps[j].Priority.Rank()
		}
		return gaps[i].Skill < gaps[j].Skill
	})

	strengths := findStrengths(ctx.CurrentSkills)

	return Report{
		Gaps:      gaps,
		Strengths: strengths,
		Readiness: readiness(ctx.CurrentSkills, goal.TargetSkills),
		Focus:     focusSuggestions(gaps, strengths),
	}
}

func sizeFor(level float64) GapSize {
	switch {
	case level < largeGapCeiling:
		return GapLarge
	case level < learner.ProficientThreshold:
		return GapMedium
	default:
		return GapSmall
	}
}

func priorityFor(level float64) Priority {
	switch {
	case level < largeGapCeiling:
		return PriorityHigh
	case level < learner.ProficientThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// findStrengths returns skills at or above the proficient threshold,
// highest level first, ties broken by skill name.
func findStrengths(skills learner.SkillLevels) []Strength {
	var strengths []Strength
	for _, skill := range skills.Names() {
		if level := skills[skill]; level >= learner.ProficientThreshold {
			strengths = append(strengths, Strength{Skill: skill, Level: level})
		}
	}
	sort.SliceStable(strengths, func(i, j int) bool {
		if strengths[i].Level != strengths[j].Level {
			return strengths[i].Level > strengths[j].Level
		}
		return strengths[i].Skill < strengths[j].Skill
	})
	return strengths
}

func readiness(current learner.SkillLevels, targets map[string]bool) Readiness {
	if len(targets) == 0 {
		return Readiness{Percentage: 100, Status: StatusReady}
	}

	acquired := 0
	for skill := range targets {
		if current.Level(skill) >= learner.ProficientThreshold {
			acquired++
		}
	}
	pct := acquired * 100 / len(targets)

	status := StatusBuildingFoundation
	switch {
	case pct >= readyFloor:
		status = StatusReady
	case pct >= progressFloor:
		status = StatusProgressing
	}

	return Readiness{
		Percentage:   pct,
		Status:       status,
		Acquired:     acquired,
		TotalTargets: len(targets),
	}
}

func focusSuggestions(gaps []SkillGap, strengths []Strength) []Focus {
	var out []Focus

	var high []string
	for _, g := range gaps {
		if g.Priority == PriorityHigh {
			high = append(high, g.Skill)
		}
	}
	if len(high) > 0 {
		out = append(out, Focus{
			Kind:    FocusGaps,
			Message: fmt.Sprintf("Focus on foundational skills: %s", strings.Join(firstN(high, 3), ", ")),
			Skills:  high,
		})
	}

	if len(strengths) > 0 {
		names := make([]string, len(strengths))
		for i, s := range strengths {
			names[i] = s.Skill
		}
		out = append(out, Focus{
			Kind:    FocusStrengths,
			Message: fmt.Sprintf("Build on your strengths in %s", strings.Join(firstN(names, 2), ", ")),
			Skills:  names,
		})
	}
	return out
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
