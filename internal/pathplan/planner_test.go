package pathplan

import (
	"reflect"
	"testing"
	"time"

	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

var fixedNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func fixedPlanner() *Planner {
	return New(Config{Now: func() time.Time { return fixedNow }})
}

func plannerContext(skills learner.SkillLevels, hoursPerWeek float64) learner.Context {
	return learner.Context{
		CurrentSkills:       skills,
		PreferredDifficulty: catalog.Intermediate,
		StudyHoursPerWeek:   hoursPerWeek,
	}
}

func mustCatalog(t *testing.T, courses []catalog.Course) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(courses)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func TestBuildPathOrdersByPrerequisites(t *testing.T) {
	cat := mustCatalog(t, []catalog.Course{
		{ID: "c-adv", Title: "Advanced SQL", Difficulty: catalog.Advanced,
			SkillsTaught: []string{"sql-advanced"}, Prerequisites: []string{"sql"}, DurationHours: 20},
		{ID: "c-basic", Title: "SQL Basics", Difficulty: catalog.Beginner,
			SkillsTaught: []string{"sql"}, DurationHours: 10},
	})
	ctx := plannerContext(learner.SkillLevels{}, 10)
	goal := learner.Goal{TargetSkills: map[string]bool{"sql-advanced": true}}

	p := fixedPlanner().BuildPath(ctx, goal, cat)
	if len(p.Steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(p.Steps))
	}
	if p.Steps[0].CourseID != "c-basic" || p.Steps[1].CourseID != "c-adv" {
		t.Errorf("order = %s, %s; want c-basic then c-adv", p.Steps[0].CourseID, p.Steps[1].CourseID)
	}
	if p.Steps[0].Sequence != 1 || p.Steps[1].Sequence != 2 {
		t.Errorf("sequences = %d, %d; want 1, 2", p.Steps[0].Sequence, p.Steps[1].Sequence)
	}
	if p.Steps[1].CumulativeHours != 30 {
		t.Errorf("cumulative hours = %v, want 30", p.Steps[1].CumulativeHours)
	}
	if len(p.Meta.RemainingGaps) != 0 {
		t.Errorf("remaining gaps = %v, want none", p.Meta.RemainingGaps)
	}
	if p.Meta.CompletionPercent != 100 {
		t.Errorf("completion = %d%%, want 100%%", p.Meta.CompletionPercent)
	}
}

func TestBuildPathEmptyCatalog(t *testing.T) {
	cat := mustCatalog(t, nil)
	ctx := plannerContext(learner.SkillLevels{}, 10)
	goal := learner.Goal{TargetSkills: map[string]bool{"sql": true}}

	p := fixedPlanner().BuildPath(ctx, goal, cat)
	if len(p.Steps) != 0 {
		t.Fatalf("steps = %v, want none", p.Steps)
	}
	if !reflect.DeepEqual(p.Meta.RemainingGaps, []string{"sql"}) {
		t.Errorf("remaining gaps = %v, want [sql]", p.Meta.RemainingGaps)
	}
	if p.Meta.CompletionPercent != 0 {
		t.Errorf("completion = %d%%, want 0%%", p.Meta.CompletionPercent)
	}
}

func TestBuildPathDeterministicTieBreak(t *testing.T) {
	// Two identical courses close the same gap: the lowest ID wins.
	cat := mustCatalog(t, []catalog.Course{
		{ID: "zz", Title: "Z", Difficulty: catalog.Beginner, SkillsTaught: []string{"sql"}, DurationHours: 10},
		{ID: "aa", Title: "A", Difficulty: catalog.Beginner, SkillsTaught: []string{"sql"}, DurationHours: 10},
	})
	ctx := plannerContext(learner.SkillLevels{}, 10)
	goal := learner.Goal{TargetSkills: map[string]bool{"sql": true}}

	for i := 0; i < 5; i++ {
		p := fixedPlanner().BuildPath(ctx, goal, cat)
		if len(p.Steps) != 1 || p.Steps[0].CourseID != "aa" {
			t.Fatalf("run %d: steps = %+v, want single step aa", i, p.Steps)
		}
	}
}

func TestBuildPathNoRepeatsAndGreedyCoverage(t *testing.T) {
	// One broad course covers both gaps; picking it twice would loop.
	cat := mustCatalog(t, []catalog.Course{
		{ID: "broad", Title: "Full Stack", Difficulty: catalog.Intermediate,
			SkillsTaught: []string{"html", "css"}, DurationHours: 30},
		{ID: "narrow", Title: "Just HTML", Difficulty: catalog.Beginner,
			SkillsTaught: []string{"html"}, DurationHours: 5},
	})
	ctx := plannerContext(learner.SkillLevels{}, 10)
	goal := learner.Goal{TargetSkills: map[string]bool{"html": true, "css": true}}

	p := fixedPlanner().BuildPath(ctx, goal, cat)
	if len(p.Steps) != 1 || p.Steps[0].CourseID != "broad" {
		t.Fatalf("steps = %+v, want single broad step", p.Steps)
	}
	if !reflect.DeepEqual(p.Steps[0].SkillsGained, []string{"css", "html"}) {
		t.Errorf("skills gained = %v, want [css html]", p.Steps[0].SkillsGained)
	}
}

func TestBuildPathIgnoresZeroGainCourses(t *testing.T) {
	// A short course teaching nothing relevant must not be selected on
	// its duration bonus alone.
	cat := mustCatalog(t, []catalog.Course{
		{ID: "filler", Title: "Typing Speed", Difficulty: catalog.Beginner,
			SkillsTaught: []string{"typing"}, DurationHours: 1},
	})
	ctx := plannerContext(learner.SkillLevels{}, 10)
	goal := learner.Goal{TargetSkills: map[string]bool{"sql": true}}

	p := fixedPlanner().BuildPath(ctx, goal, cat)
	if len(p.Steps) != 0 {
		t.Errorf("steps = %+v, want none", p.Steps)
	}
}

func TestBuildPathZeroStudyHours(t *testing.T) {
	cat := mustCatalog(t, []catalog.Course{
		{ID: "c1", Title: "SQL", Difficulty: catalog.Beginner, SkillsTaught: []string{"sql"}, DurationHours: 12},
	})
	ctx := plannerContext(learner.SkillLevels{}, 0)
	goal := learner.Goal{TargetSkills: map[string]bool{"sql": true}}

	p := fixedPlanner().BuildPath(ctx, goal, cat)
	if p.Meta.StudyHoursPerWeek != 1 {
		t.Errorf("study hours = %v, want fallback 1", p.Meta.StudyHoursPerWeek)
	}
	if p.Meta.EstimatedWeeks != 12 {
		t.Errorf("weeks = %d, want 12", p.Meta.EstimatedWeeks)
	}
	want := fixedNow.AddDate(0, 0, 12*7)
	if !p.Meta.EstimatedCompletion.Equal(want) {
		t.Errorf("completion = %v, want %v", p.Meta.EstimatedCompletion, want)
	}
}

func TestBuildPathIdenticalInputsIdenticalOutputs(t *testing.T) {
	cat := mustCatalog(t, []catalog.Course{
		{ID: "c1", Title: "A", Difficulty: catalog.Beginner, SkillsTaught: []string{"a"}, DurationHours: 5},
		{ID: "c2", Title: "B", Difficulty: catalog.Intermediate, SkillsTaught: []string{"b"}, Prerequisites: []string{"a"}, DurationHours: 8},
		{ID: "c3", Title: "C", Difficulty: catalog.Advanced, SkillsTaught: []string{"c"}, Prerequisites: []string{"b"}, DurationHours: 13},
	})
	ctx := plannerContext(learner.SkillLevels{}, 6)
	goal := learner.Goal{TargetSkills: map[string]bool{"a": true, "b": true, "c": true}}

	first := fixedPlanner().BuildPath(ctx, goal, cat)
	second := fixedPlanner().BuildPath(ctx, goal, cat)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("plans differ:\n%+v\n%+v", first, second)
	}
}
