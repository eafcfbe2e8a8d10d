package pathplan

import (
	"math"
	"sort"
	"time"

	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

// DefaultMaxIterations caps the greedy loop against pathological catalogs.
const DefaultMaxIterations = 20

// Config holds planner settings.
type Config struct {
	MaxIterations int
	// Now supplies the clock for completion-date estimates.
	// Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns sensible planner defaults.
func DefaultConfig() Config {
	return Config{MaxIterations: DefaultMaxIterations}
}

// Planner greedily sequences courses to close all goal gaps while
// respecting prerequisite skills.
type Planner struct {
	cfg Config
}

// New creates a Planner with the given config.
func New(cfg Config) *Planner {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Planner{cfg: cfg}
}

// BuildPath selects and orders courses toward the goal. Each step's
// prerequisites are covered by current skills plus earlier steps, no
// course repeats, and identical inputs always produce identical output.
// Unreachable gaps end the path early; they are reported in metadata,
// not as an error.
func (p *Planner) BuildPath(ctx learner.Context, goal learner.Goal, cat *catalog.Catalog) Path {
	learned := ctx.CurrentSkills.Known()
	gaps := missingSkills(goal.TargetSkills, learned)
	taken := make(map[string]bool)

	var steps []Step
	var totalHours float64

	for i := 0; i < p.cfg.MaxIterations && len(gaps) > 0; i++ {
		best, bestScore := p.pickCourse(cat, learned, taken, gaps)
		if bestScore <= 0 {
			break // remaining gaps unreachable with this catalog
		}

		taken[best.ID] = true
		gained := gainedSkills(best, gaps)
		for _, s := range best.SkillsTaught {
			learned[s] = true
		}
		gaps = missingSkills(goal.TargetSkills, learned)

		totalHours += best.DurationHours
		steps = append(steps, Step{
			Sequence:        len(steps) + 1,
			CourseID:        best.ID,
			Title:           best.Title,
			Difficulty:      best.Difficulty,
			SkillsGained:    gained,
			DurationHours:   best.DurationHours,
			CumulativeHours: totalHours,
		})
	}

	return Path{
		Steps: steps,
		Meta:  p.metadata(ctx, goal, learned, gaps, totalHours, len(steps)),
	}
}

// pickCourse finds the candidate with the highest local score.
// Candidates are visited in ascending ID order and only a strictly
// higher score displaces the incumbent, so ties always resolve to the
// lowest course ID.
func (p *Planner) pickCourse(cat *catalog.Catalog, learned, taken, gaps map[string]bool) (catalog.Course, float64) {
	var best catalog.Course
	bestScore := 0.0

	for _, course := range cat.Available(learned, taken) {
		score := localScore(course, gaps)
		if score > bestScore {
			bestScore = score
			best = course
		}
	}
	return best, bestScore
}

// localScore values courses that close many gaps quickly: 1.5 points
// per new gap skill plus a short-duration bonus.
func localScore(course catalog.Course, gaps map[string]bool) float64 {
	newSkills := 0
	for _, s := range course.SkillsTaught {
		if gaps[s] {
			newSkills++
		}
	}

	score := float64(newSkills) + 0.5*float64(newSkills)
	if course.DurationHours > 0 {
		score += (1 / course.DurationHours) * 2
	}
	if newSkills == 0 {
		return 0
	}
	return score
}

func (p *Planner) metadata(ctx learner.Context, goal learner.Goal, learned, gaps map[string]bool, totalHours float64, courses int) Metadata {
	hoursPerWeek := ctx.StudyHoursPerWeek
	if hoursPerWeek <= 0 {
		hoursPerWeek = 1 // guard the pace division
	}
	weeks := int(math.Ceil(totalHours / hoursPerWeek))

	covered := 0
	for skill := range goal.TargetSkills {
		if learned[skill] {
			covered++
		}
	}
	pct := 0
	if len(goal.TargetSkills) > 0 {
		pct = covered * 100 / len(goal.TargetSkills)
	}

	return Metadata{
		TotalCourses:        courses,
		TotalHours:          totalHours,
		EstimatedWeeks:      weeks,
		StudyHoursPerWeek:   hoursPerWeek,
		EstimatedCompletion: p.cfg.Now().AddDate(0, 0, weeks*7),
		SkillsCovered:       setToSorted(learned),
		RemainingGaps:       setToSorted(gaps),
		CompletionPercent:   pct,
	}
}

func missingSkills(targets, learned map[string]bool) map[string]bool {
	missing := make(map[string]bool)
	for skill := range targets {
		if !learned[skill] {
			missing[skill] = true
		}
	}
	return missing
}

// gainedSkills returns the gap skills a course closes, in lexicographic order.
func gainedSkills(course catalog.Course, gaps map[string]bool) []string {
	var gained []string
	for _, s := range course.SkillsTaught {
		if gaps[s] {
			gained = append(gained, s)
		}
	}
	sort.Strings(gained)
	return gained
}

func setToSorted(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
