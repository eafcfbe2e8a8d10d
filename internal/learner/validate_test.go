package learner

import (
	"strings"
	"testing"

	"github.com/arjunrao/learnpath/internal/catalog"
)

func validContext() Context {
	return Context{
		CurrentSkills:       SkillLevels{"python": 6.5, "sql": 3.0},
		TargetSkills:        map[string]bool{"docker": true},
		PreferredDifficulty: catalog.Intermediate,
		StudyHoursPerWeek:   10,
	}
}

func TestValidateAcceptsValidContext(t *testing.T) {
	if err := validContext().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAllowsZeroStudyHours(t *testing.T) {
	ctx := validContext()
	ctx.StudyHoursPerWeek = 0
	if err := ctx.Validate(); err != nil {
		t.Fatalf("zero study hours should be valid: %v", err)
	}
}

func TestValidateRejectsBadContext(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Context)
		wantSub string
	}{
		{
			name:    "level above max",
			mutate:  func(c *Context) { c.CurrentSkills["python"] = 11 },
			wantSub: "outside",
		},
		{
			name:    "negative level",
			mutate:  func(c *Context) { c.CurrentSkills["python"] = -1 },
			wantSub: "outside",
		},
		{
			name:    "empty skill name",
			mutate:  func(c *Context) { c.CurrentSkills[""] = 5 },
			wantSub: "empty skill name",
		},
		{
			name:    "empty target skill",
			mutate:  func(c *Context) { c.TargetSkills[""] = true },
			wantSub: "empty skill name",
		},
		{
			name:    "unknown difficulty",
			mutate:  func(c *Context) { c.PreferredDifficulty = "impossible" },
			wantSub: "unknown preferred difficulty",
		},
		{
			name:    "negative study hours",
			mutate:  func(c *Context) { c.StudyHoursPerWeek = -2 },
			wantSub: "negative study hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := validContext()
			tt.mutate(&ctx)
			err := ctx.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q missing %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidateCombinesErrors(t *testing.T) {
	ctx := validContext()
	ctx.CurrentSkills["python"] = 15
	ctx.StudyHoursPerWeek = -1
	err := ctx.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{"outside", "negative study hours"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("combined error %q missing %q", err, want)
		}
	}
}

func TestValidateAttempts(t *testing.T) {
	good := []AttemptRecord{
		{SkillScores: map[string]float64{"sql": 0.9}, ScorePercentage: 85},
	}
	if err := ValidateAttempts(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []AttemptRecord{
		{SkillScores: map[string]float64{"sql": 1.5}, ScorePercentage: 120},
	}
	err := ValidateAttempts(bad)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "accuracy") || !strings.Contains(err.Error(), "score percentage") {
		t.Errorf("error %q should name both problems", err)
	}
}
