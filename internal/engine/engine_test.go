package engine

import (
	"strings"
	"testing"

	"github.com/arjunrao/learnpath/internal/adaptive"
	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

func engineContext() learner.Context {
	return learner.Context{
		CurrentSkills:       learner.SkillLevels{"python": 6},
		TargetSkills:        map[string]bool{"sql": true},
		CompletedCourseIDs:  map[string]bool{},
		PreferredDifficulty: catalog.Intermediate,
		StudyHoursPerWeek:   8,
	}
}

func engineCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Course{
		{ID: "c1", Title: "SQL Basics", Difficulty: catalog.Beginner, SkillsTaught: []string{"sql"}, DurationHours: 10},
		{ID: "c2", Title: "Rust Intro", Difficulty: catalog.Expert, SkillsTaught: []string{"rust"}, DurationHours: 40},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func TestScoreAndRankCourses(t *testing.T) {
	eng := New(DefaultConfig())
	ranked, err := eng.ScoreAndRankCourses(engineContext(), nil, engineCatalog(t), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("ranked = %d, want 2", len(ranked))
	}
	if ranked[0].CourseID != "c1" {
		t.Errorf("top = %s, want c1 (teaches the target skill)", ranked[0].CourseID)
	}
}

func TestScoreAndRankCoursesRejectsInvalidContext(t *testing.T) {
	ctx := engineContext()
	ctx.CurrentSkills["python"] = 99

	eng := New(DefaultConfig())
	_, err := eng.ScoreAndRankCourses(ctx, nil, engineCatalog(t), 10)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "score courses") {
		t.Errorf("error %q missing operation context", err)
	}
}

func TestBuildLearningPath(t *testing.T) {
	eng := New(DefaultConfig())
	goal := learner.Goal{TargetSkills: map[string]bool{"sql": true}}

	p, err := eng.BuildLearningPath(engineContext(), goal, engineCatalog(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Steps) != 1 || p.Steps[0].CourseID != "c1" {
		t.Errorf("steps = %+v, want single c1 step", p.Steps)
	}
}

func TestScoreAndRankCoursesNilCatalog(t *testing.T) {
	eng := New(DefaultConfig())
	ranked, err := eng.ScoreAndRankCourses(engineContext(), nil, nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("ranked = %d, want empty for nil catalog", len(ranked))
	}
}

func TestBuildLearningPathNilCatalog(t *testing.T) {
	eng := New(DefaultConfig())
	goal := learner.Goal{TargetSkills: map[string]bool{"sql": true}}

	p, err := eng.BuildLearningPath(engineContext(), goal, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Steps) != 0 {
		t.Errorf("steps = %+v, want none for nil catalog", p.Steps)
	}
	if len(p.Meta.RemainingGaps) != 1 || p.Meta.RemainingGaps[0] != "sql" {
		t.Errorf("remaining gaps = %v, want [sql]", p.Meta.RemainingGaps)
	}
}

func TestAnalyzeSkillGaps(t *testing.T) {
	eng := New(DefaultConfig())
	goal := learner.Goal{TargetSkills: map[string]bool{"sql": true, "python": true}}

	report, err := eng.AnalyzeSkillGaps(engineContext(), goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Readiness.TotalTargets != 2 {
		t.Errorf("total targets = %d, want 2", report.Readiness.TotalTargets)
	}
}

func TestEstimateSkillLevels(t *testing.T) {
	eng := New(DefaultConfig())
	levels, err := eng.EstimateSkillLevels([]learner.AttemptRecord{
		{SkillScores: map[string]float64{"sql": 1.0}, ScorePercentage: 100},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if levels["sql"] != 10 {
		t.Errorf("sql = %v, want 10", levels["sql"])
	}

	_, err = eng.EstimateSkillLevels([]learner.AttemptRecord{
		{SkillScores: map[string]float64{"sql": 2.0}},
	})
	if err == nil {
		t.Fatal("expected validation error for out-of-range accuracy")
	}
}

func TestNextQuestionPassthrough(t *testing.T) {
	eng := New(DefaultConfig())
	questions := []adaptive.Question{{ID: "q1", Tier: adaptive.TierMedium}}

	q, ok := eng.NextQuestion(nil, questions)
	if !ok || q.ID != "q1" {
		t.Errorf("next = %+v (%v), want q1", q, ok)
	}
}
