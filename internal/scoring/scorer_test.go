package scoring

import (
	"math"
	"testing"

	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

func scoringContext() learner.Context {
	return learner.Context{
		CurrentSkills:       learner.SkillLevels{"python": 5},
		TargetSkills:        map[string]bool{"python": true, "sql": true},
		CompletedCourseIDs:  map[string]bool{},
		PreferredDifficulty: catalog.Intermediate,
		StudyHoursPerWeek:   10,
	}
}

func TestScoreExactSkillMatch(t *testing.T) {
	// Teaches exactly the target set with no prerequisites: full
	// skill-match and prereq-ready factors.
	course := catalog.Course{
		ID:           "c1",
		Title:        "Data Fundamentals",
		Difficulty:   catalog.Intermediate,
		SkillsTaught: []string{"python", "sql"},
	}

	sc := Score(course, scoringContext(), nil)
	if sc.Scores.SkillMatch != WeightSkillMatch {
		t.Errorf("skill match = %v, want %v", sc.Scores.SkillMatch, WeightSkillMatch)
	}
	if sc.Scores.PrereqReady != WeightPrereqReady {
		t.Errorf("prereq ready = %v, want %v", sc.Scores.PrereqReady, WeightPrereqReady)
	}
	if sc.Scores.DifficultyMatch != WeightDifficultyMatch {
		t.Errorf("difficulty match = %v, want %v", sc.Scores.DifficultyMatch, WeightDifficultyMatch)
	}
}

func TestTotalEqualsSumOfSubScores(t *testing.T) {
	course := catalog.Course{
		ID:            "c1",
		Title:         "Backend Engineering with SQL",
		Description:   "For aspiring backend engineers",
		Difficulty:    catalog.Advanced,
		SkillsTaught:  []string{"sql", "api-design"},
		Prerequisites: []string{"python", "http"},
		DurationHours: 25,
		Enrollments:   340,
	}
	goals := []learner.Goal{{
		Description:  "Become a backend engineer",
		TargetRole:   "backend engineer",
		TargetSkills: map[string]bool{"sql": true},
	}}

	sc := Score(course, scoringContext(), goals)
	if math.Abs(sc.Total-sc.Scores.Sum()) > 1e-9 {
		t.Errorf("total %v != sum of sub-scores %v", sc.Total, sc.Scores.Sum())
	}
	if sc.Total < 0 || sc.Total > 100 {
		t.Errorf("total %v outside [0, 100]", sc.Total)
	}
}

func TestDifficultyMatchAsymmetry(t *testing.T) {
	// One tier harder beats one tier easier.
	harder := difficultyMatch(catalog.Advanced, catalog.Intermediate)
	easier := difficultyMatch(catalog.Beginner, catalog.Intermediate)
	if harder <= easier {
		t.Errorf("harder %v should beat easier %v", harder, easier)
	}
	if harder != 15 || easier != 10 {
		t.Errorf("harder = %v easier = %v, want 15 and 10", harder, easier)
	}
}

func TestGoalAlignmentCap(t *testing.T) {
	course := catalog.Course{
		ID:           "c1",
		Title:        "Data Engineer Bootcamp",
		Difficulty:   catalog.Intermediate,
		SkillsTaught: []string{"sql"},
	}
	// Two goals, each contributing skill and role bonuses: uncapped 50.
	goals := []learner.Goal{
		{TargetRole: "data engineer", TargetSkills: map[string]bool{"sql": true}},
		{TargetRole: "data engineer", TargetSkills: map[string]bool{"sql": true}},
	}

	sc := Score(course, scoringContext(), goals)
	if sc.Scores.GoalAlignment != WeightGoalAlignment {
		t.Errorf("goal alignment = %v, want capped %v", sc.Scores.GoalAlignment, WeightGoalAlignment)
	}
}

func TestPopularitySaturates(t *testing.T) {
	tests := []struct {
		enrollments int
		want        float64
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{5000, 10},
	}
	for _, tt := range tests {
		if got := popularity(tt.enrollments); got != tt.want {
			t.Errorf("popularity(%d) = %v, want %v", tt.enrollments, got, tt.want)
		}
	}
}

func TestRankOrderingAndTieBreak(t *testing.T) {
	ctx := scoringContext()
	cat := mustCatalog(t, []catalog.Course{
		// b and a are identical: tie broken by ID ascending.
		{ID: "course-b", Title: "B", Difficulty: catalog.Intermediate, SkillsTaught: []string{"sql", "python"}},
		{ID: "course-a", Title: "A", Difficulty: catalog.Intermediate, SkillsTaught: []string{"sql", "python"}},
		{ID: "course-c", Title: "C", Difficulty: catalog.Expert, SkillsTaught: []string{"rust"}},
	})

	ranked := Rank(ctx, nil, cat, 0)
	if len(ranked) != 3 {
		t.Fatalf("ranked = %d, want 3", len(ranked))
	}
	if ranked[0].CourseID != "course-a" || ranked[1].CourseID != "course-b" {
		t.Errorf("tie-break order = %s, %s; want course-a then course-b",
			ranked[0].CourseID, ranked[1].CourseID)
	}
	if ranked[2].CourseID != "course-c" {
		t.Errorf("last = %s, want course-c", ranked[2].CourseID)
	}
}

func TestRankSkipsCompletedAndHonorsLimit(t *testing.T) {
	ctx := scoringContext()
	ctx.CompletedCourseIDs["done"] = true
	cat := mustCatalog(t, []catalog.Course{
		{ID: "done", Title: "Done", Difficulty: catalog.Intermediate, SkillsTaught: []string{"sql"}},
		{ID: "next-1", Title: "Next", Difficulty: catalog.Intermediate, SkillsTaught: []string{"sql"}},
		{ID: "next-2", Title: "Other", Difficulty: catalog.Intermediate},
	})

	ranked := Rank(ctx, nil, cat, 1)
	if len(ranked) != 1 {
		t.Fatalf("ranked = %d, want 1", len(ranked))
	}
	if ranked[0].CourseID != "next-1" {
		t.Errorf("top = %s, want next-1", ranked[0].CourseID)
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	cat := mustCatalog(t, nil)
	if ranked := Rank(scoringContext(), nil, cat, 5); len(ranked) != 0 {
		t.Errorf("ranked = %v, want empty", ranked)
	}
}

func TestReasonsOrderAndCap(t *testing.T) {
	// A course that clears every reason threshold at once.
	course := catalog.Course{
		ID:            "c1",
		Title:         "Backend Engineer Fast Track",
		Difficulty:    catalog.Intermediate,
		SkillsTaught:  []string{"python", "sql"},
		DurationHours: 8,
		Enrollments:   500,
	}
	goals := []learner.Goal{{
		Description:  "Become a backend engineer",
		TargetRole:   "Backend Engineer",
		TargetSkills: map[string]bool{"python": true, "sql": true},
	}}

	sc := Score(course, scoringContext(), goals)
	if len(sc.Reasons) != 4 {
		t.Fatalf("reasons = %v, want exactly 4", sc.Reasons)
	}
	// Skill-match reason leads and names the sorted matching skills.
	if want := "Teaches python, sql - skills you're targeting"; sc.Reasons[0] != want {
		t.Errorf("reasons[0] = %q, want %q", sc.Reasons[0], want)
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
