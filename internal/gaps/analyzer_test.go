package gaps

import (
	"reflect"
	"testing"

	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

func analyzerContext(skills learner.SkillLevels) learner.Context {
	return learner.Context{
		CurrentSkills:       skills,
		PreferredDifficulty: catalog.Intermediate,
	}
}

func TestAnalyzeClassifiesGaps(t *testing.T) {
	ctx := analyzerContext(learner.SkillLevels{
		"sql":    1.0, // large gap, high priority
		"python": 5.0, // medium gap, medium priority
		"docker": 8.0, // small gap, low priority
	})
	goal := learner.Goal{TargetSkills: map[string]bool{
		"sql": true, "python": true, "docker": true, "aws": true,
	}}

	report := Analyze(ctx, goal)
	if len(report.Gaps) != 4 {
		t.Fatalf("gaps = %d, want 4", len(report.Gaps))
	}

	// High priority first, ties by name: aws (absent -> 0) before sql.
	wantOrder := []string{"aws", "sql", "python", "docker"}
	for i, want := range wantOrder {
		if report.Gaps[i].Skill != want {
			t.Errorf("gap[%d] = %s, want %s", i, report.Gaps[i].Skill, want)
		}
	}

	byName := make(map[string]SkillGap)
	for _, g := range report.Gaps {
		byName[g.Skill] = g
	}
	if g := byName["sql"]; g.GapSize != GapLarge || g.Priority != PriorityHigh {
		t.Errorf("sql gap = %+v, want large/high", g)
	}
	if g := byName["python"]; g.GapSize != GapMedium || g.Priority != PriorityMedium {
		t.Errorf("python gap = %+v, want medium/medium", g)
	}
	if g := byName["docker"]; g.GapSize != GapSmall || g.Priority != PriorityLow {
		t.Errorf("docker gap = %+v, want small/low", g)
	}
}

func TestAnalyzeStrengthsIndependentOfGoal(t *testing.T) {
	ctx := analyzerContext(learner.SkillLevels{
		"sql": 9.0, "go": 7.0, "css": 4.0,
	})
	report := Analyze(ctx, learner.Goal{TargetSkills: map[string]bool{"rust": true}})

	want := []Strength{{Skill: "sql", Level: 9}, {Skill: "go", Level: 7}}
	if !reflect.DeepEqual(report.Strengths, want) {
		t.Errorf("strengths = %v, want %v", report.Strengths, want)
	}
}

func TestReadinessBands(t *testing.T) {
	tests := []struct {
		name   string
		levels learner.SkillLevels
		want   ReadinessStatus
		pct    int
	}{
		{
			name:   "all proficient",
			levels: learner.SkillLevels{"a": 8, "b": 9},
			want:   StatusReady,
			pct:    100,
		},
		{
			name:   "half proficient",
			levels: learner.SkillLevels{"a": 8, "b": 2},
			want:   StatusProgressing,
			pct:    50,
		},
		{
			name:   "none proficient",
			levels: learner.SkillLevels{"a": 3, "b": 2},
			want:   StatusBuildingFoundation,
			pct:    0,
		},
	}

	targets := map[string]bool{"a": true, "b": true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Analyze(analyzerContext(tt.levels), learner.Goal{TargetSkills: targets})
			if report.Readiness.Status != tt.want {
				t.Errorf("status = %s, want %s", report.Readiness.Status, tt.want)
			}
			if report.Readiness.Percentage != tt.pct {
				t.Errorf("percentage = %d, want %d", report.Readiness.Percentage, tt.pct)
			}
		})
	}
}

func TestReadinessNoTargets(t *testing.T) {
	report := Analyze(analyzerContext(learner.SkillLevels{}), learner.Goal{})
	if report.Readiness.Percentage != 100 || report.Readiness.Status != StatusReady {
		t.Errorf("empty-goal readiness = %+v, want 100%% ready", report.Readiness)
	}
	if len(report.Gaps) != 0 {
		t.Errorf("gaps = %v, want none", report.Gaps)
	}
}

func TestFocusSuggestions(t *testing.T) {
	ctx := analyzerContext(learner.SkillLevels{
		"sql": 9.0, "a": 1, "b": 1, "c": 1, "d": 1,
	})
	goal := learner.Goal{TargetSkills: map[string]bool{
		"a": true, "b": true, "c": true, "d": true,
	}}

	report := Analyze(ctx, goal)
	if len(report.Focus) != 2 {
		t.Fatalf("focus = %v, want 2 entries", report.Focus)
	}
	if report.Focus[0].Kind != FocusGaps {
		t.Errorf("first focus kind = %s, want %s", report.Focus[0].Kind, FocusGaps)
	}
	// All four high-priority skills listed, message names first three.
	if len(report.Focus[0].Skills) != 4 {
		t.Errorf("focus skills = %v, want all 4 gaps", report.Focus[0].Skills)
	}
	if report.Focus[1].Kind != FocusStrengths {
		t.Errorf("second focus kind = %s, want %s", report.Focus[1].Kind, FocusStrengths)
	}
}
