package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

const maxReasons = 4

// Reason thresholds. A reason is emitted only when its factor clears
// the bar, in the fixed priority order below.
const (
	reasonSkillMatchFloor = 20.0
	reasonDifficultyFloor = 15.0
	reasonAlignmentFloor  = 15.0
	reasonPopularityFloor = 5.0
	quickWinHours         = 10.0
	fewSkillsCeiling      = 3
)

// reasons generates at most four human-readable explanations for a
// recommendation, deterministically from the sub-scores.
func reasons(course catalog.Course, ctx learner.Context, goals []learner.Goal, scores SubScores) []string {
	var out []string

	if scores.SkillMatch > reasonSkillMatchFloor {
		if matching := matchingSkills(course, ctx.TargetSkills); len(matching) > 0 {
			out = append(out, fmt.Sprintf("Teaches %s - skills you're targeting", strings.Join(matching, ", ")))
		}
	}

	if scores.DifficultyMatch >= reasonDifficultyFloor {
		out = append(out, "Well matched to your preferred difficulty level")
	}

	if scores.GoalAlignment > reasonAlignmentFloor {
		for _, goal := range goals {
			if goal.TargetRole != "" && strings.Contains(strings.ToLower(course.Title), strings.ToLower(goal.TargetRole)) {
				out = append(out, fmt.Sprintf("Aligns with your goal: %s", goal.Description))
				break
			}
		}
	}

	if scores.Popularity > reasonPopularityFloor {
		out = append(out, fmt.Sprintf("Popular course with %d+ students", course.Enrollments))
	}

	if course.DurationHours > 0 && course.DurationHours <= quickWinHours {
		out = append(out, "Quick to complete - great for building momentum")
	}

	if course.Difficulty == catalog.Beginner && len(ctx.CurrentSkills) > 0 && len(ctx.CurrentSkills) < fewSkillsCeiling {
		out = append(out, "Great foundation course for beginners")
	}

	if len(out) > maxReasons {
		out = out[:maxReasons]
	}
	return out
}

// matchingSkills returns up to three taught skills that are also
// targets, in lexicographic order.
func matchingSkills(course catalog.Course, targets map[string]bool) []string {
	var matching []string
	for _, s := range course.SkillsTaught {
		if targets[s] {
			matching = append(matching, s)
		}
	}
	sort.Strings(matching)
	if len(matching) > 3 {
		matching = matching[:3]
	}
	return matching
}
