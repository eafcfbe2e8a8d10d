// Package engine composes the recommendation subsystems behind one facade.
//
// Every operation is a pure function of its input snapshot: the engine
// holds no state between calls and never mutates caller data, so
// concurrent invocations for different learners need no locking.
package engine

import (
	"fmt"

	"github.com/arjunrao/learnpath/internal/adaptive"
	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/gaps"
	"github.com/arjunrao/learnpath/internal/learner"
	"github.com/arjunrao/learnpath/internal/pathplan"
	"github.com/arjunrao/learnpath/internal/profile"
	"github.com/arjunrao/learnpath/internal/scoring"
)

// Config bundles the tunables of the composed subsystems.
type Config struct {
	Estimator profile.Config
	Planner   pathplan.Config
}

// DefaultConfig returns engine defaults.
func DefaultConfig() Config {
	return Config{
		Estimator: profile.DefaultConfig(),
		Planner:   pathplan.DefaultConfig(),
	}
}

// Engine is the recommendation facade.
type Engine struct {
	estimator *profile.Estimator
	planner   *pathplan.Planner
}

// New creates an Engine with the given config.
func New(cfg Config) *Engine {
	return &Engine{
		estimator: profile.NewEstimator(cfg.Estimator),
		planner:   pathplan.New(cfg.Planner),
	}
}

// ScoreAndRankCourses scores every not-yet-completed catalog course and
// returns the top limit, descending by total score, ties broken by
// course ID. A nil or empty catalog yields an empty list, not an error.
func (e *Engine) ScoreAndRankCourses(ctx learner.Context, goals []learner.Goal, cat *catalog.Catalog, limit int) ([]scoring.ScoredCourse, error) {
	if err := ctx.Validate(); err != nil {
		return nil, fmt.Errorf("score courses: %w", err)
	}
	if cat == nil {
		return nil, nil
	}
	return scoring.Rank(ctx, goals, cat, limit), nil
}

// BuildLearningPath sequences courses toward the goal. Unreachable
// gaps produce a shorter path with the remainder reported in metadata;
// a nil catalog plans like an empty one.
func (e *Engine) BuildLearningPath(ctx learner.Context, goal learner.Goal, cat *catalog.Catalog) (pathplan.Path, error) {
	if err := ctx.Validate(); err != nil {
		return pathplan.Path{}, fmt.Errorf("build learning path: %w", err)
	}
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	return e.planner.BuildPath(ctx, goal, cat), nil
}

// AnalyzeSkillGaps reports gaps, strengths, and readiness for a goal.
func (e *Engine) AnalyzeSkillGaps(ctx learner.Context, goal learner.Goal) (gaps.Report, error) {
	if err := ctx.Validate(); err != nil {
		return gaps.Report{}, fmt.Errorf("analyze skill gaps: %w", err)
	}
	return gaps.Analyze(ctx, goal), nil
}

// EstimateSkillLevels derives per-skill proficiency from attempt
// history ordered most recent first. An empty history yields an empty
// map.
func (e *Engine) EstimateSkillLevels(attempts []learner.AttemptRecord) (learner.SkillLevels, error) {
	if err := learner.ValidateAttempts(attempts); err != nil {
		return nil, fmt.Errorf("estimate skill levels: %w", err)
	}
	return e.estimator.EstimateLevels(attempts), nil
}

// NextQuestion picks the next adaptive question. The second return is
// false once the assessment is complete.
func (e *Engine) NextQuestion(history []adaptive.Answer, questions []adaptive.Question) (adaptive.Question, bool) {
	return adaptive.NextQuestion(history, questions)
}
