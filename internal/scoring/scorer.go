// Package scoring computes multi-factor course recommendation scores.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

// Factor weights. Fixed constants, not learned; the five sub-scores
// sum to a total in [0, 100] by construction.
const (
	WeightSkillMatch      = 40.0
	WeightDifficultyMatch = 20.0
	WeightGoalAlignment   = 25.0
	WeightPopularity      = 10.0
	WeightPrereqReady     = 5.0

	goalSkillBonus = 15.0
	goalRoleBonus  = 10.0

	// popularityScale normalizes enrollment counts; 100 enrollments
	// earn the full popularity weight.
	popularityScale = 100.0
)

// SubScores breaks a recommendation score into its factors.
type SubScores struct {
	SkillMatch      float64
	DifficultyMatch float64
	GoalAlignment   float64
	Popularity      float64
	PrereqReady     float64
}

// Sum returns the total of all factors.
func (s SubScores) Sum() float64 {
	return s.SkillMatch + s.DifficultyMatch + s.GoalAlignment + s.Popularity + s.PrereqReady
}

// ScoredCourse is one scored recommendation candidate.
type ScoredCourse struct {
	CourseID string
	Title    string
	Total    float64
	Scores   SubScores
	Reasons  []string // at most 4, fixed priority order
}

// Score computes the five-factor score for one course against the
// learner context and active goals.
func Score(course catalog.Course, ctx learner.Context, goals []learner.Goal) ScoredCourse {
	scores := SubScores{
		SkillMatch:      skillMatch(course, ctx.TargetSkills),
		DifficultyMatch: difficultyMatch(course.Difficulty, ctx.PreferredDifficulty),
		GoalAlignment:   goalAlignment(course, goals),
		Popularity:      popularity(course.Enrollments),
		PrereqReady:     prereqReady(course, ctx.CurrentSkills),
	}

	return ScoredCourse{
		CourseID: course.ID,
		Title:    course.Title,
		Total:    scores.Sum(),
		Scores:   scores,
		Reasons:  reasons(course, ctx, goals, scores),
	}
}

// Rank scores every course the learner hasn't completed and returns
// the top limit results, descending by total score, ties broken by
// course ID ascending. limit <= 0 means no cap.
func Rank(ctx learner.Context, goals []learner.Goal, cat *catalog.Catalog, limit int) []ScoredCourse {
	var ranked []ScoredCourse
	for _, course := range cat.Courses() {
		if ctx.CompletedCourseIDs[course.ID] {
			continue
		}
		ranked = append(ranked, Score(course, ctx, goals))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].CourseID < ranked[j].CourseID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// skillMatch is the Jaccard overlap of taught and target skills,
// scaled to the skill-match weight. Zero if either set is empty.
func skillMatch(course catalog.Course, targets map[string]bool) float64 {
	if len(course.SkillsTaught) == 0 || len(targets) == 0 {
		return 0
	}

	taught := make(map[string]bool, len(course.SkillsTaught))
	for _, s := range course.SkillsTaught {
		taught[s] = true
	}

	overlap := 0
	union := len(taught)
	for t := range targets {
		if taught[t] {
			overlap++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(overlap) / float64(union) * WeightSkillMatch
}

// difficultyMatch rewards courses at or slightly above the preferred
// tier. A course one tier harder scores better than one tier easier.
func difficultyMatch(course, preferred catalog.Difficulty) float64 {
	courseOrd := course.Ordinal()
	preferredOrd := preferred.Ordinal()
	diff := courseOrd - preferredOrd
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return WeightDifficultyMatch
	case diff == 1 && courseOrd > preferredOrd:
		return 15
	case diff == 1:
		return 10
	default:
		return math.Max(0, WeightDifficultyMatch-float64(diff)*5)
	}
}

// goalAlignment sums per-goal bonuses, capped at the alignment weight.
func goalAlignment(course catalog.Course, goals []learner.Goal) float64 {
	total := 0.0
	for _, goal := range goals {
		if course.TeachesAny(goal.TargetSkills) {
			total += goalSkillBonus
		}
		if roleMentioned(goal.TargetRole, course) {
			total += goalRoleBonus
		}
	}
	return math.Min(total, WeightGoalAlignment)
}

// roleMentioned checks whether any keyword of the target role appears
// in the course title or description.
func roleMentioned(role string, course catalog.Course) bool {
	if role == "" {
		return false
	}
	text := strings.ToLower(course.Title + " " + course.Description)
	for _, keyword := range strings.Fields(strings.ToLower(role)) {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func popularity(enrollments int) float64 {
	if enrollments < 0 {
		enrollments = 0
	}
	return math.Min(float64(enrollments)/popularityScale*WeightPopularity, WeightPopularity)
}

// prereqReady is the fraction of prerequisite skills the learner
// already has evidence for. No prerequisites means fully ready.
func prereqReady(course catalog.Course, current learner.SkillLevels) float64 {
	if len(course.Prerequisites) == 0 {
		return WeightPrereqReady
	}
	met := 0
	for _, p := range course.Prerequisites {
		if current.Has(p) {
			met++
		}
	}
	return float64(met) / float64(len(course.Prerequisites)) * WeightPrereqReady
}
