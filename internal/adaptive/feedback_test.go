package adaptive

import (
	"strings"
	"testing"
)

func TestPerformanceLevelBands(t *testing.T) {
	tests := []struct {
		score float64
		want  PerformanceLevel
	}{
		{95, LevelExpert},
		{90, LevelExpert},
		{85, LevelProficient},
		{75, LevelCompetent},
		{65, LevelDeveloping},
		{30, LevelBeginner},
	}
	for _, tt := range tests {
		fb := BuildFeedback(tt.score, tt.score >= 60, nil, nil)
		if fb.Level != tt.want {
			t.Errorf("level(%v) = %s, want %s", tt.score, fb.Level, tt.want)
		}
	}
}

func TestBuildFeedbackDeterministicSkillMentions(t *testing.T) {
	skills := []string{"sql", "python", "docker"}

	first := BuildFeedback(85, true, skills, nil)
	second := BuildFeedback(85, true, skills, nil)
	if len(first.Strengths) != len(second.Strengths) {
		t.Fatal("feedback not deterministic")
	}
	for i := range first.Strengths {
		if first.Strengths[i] != second.Strengths[i] {
			t.Errorf("strengths differ at %d: %q vs %q", i, first.Strengths[i], second.Strengths[i])
		}
	}
	// First two assessed skills are mentioned, in assessment order.
	if !strings.Contains(first.Strengths[0], "sql") {
		t.Errorf("strengths[0] = %q, want mention of sql", first.Strengths[0])
	}
	if !strings.Contains(first.Strengths[1], "python") {
		t.Errorf("strengths[1] = %q, want mention of python", first.Strengths[1])
	}
}

func TestBuildFeedbackLowScore(t *testing.T) {
	fb := BuildFeedback(45, false, []string{"sql"}, nil)
	if fb.Passed {
		t.Error("passed should be false")
	}
	if len(fb.Improvements) == 0 {
		t.Fatal("expected improvement suggestions")
	}
	if !strings.Contains(fb.Improvements[0], "sql") {
		t.Errorf("improvements[0] = %q, want mention of sql", fb.Improvements[0])
	}
	found := false
	for _, step := range fb.NextSteps {
		if strings.Contains(step, "Retake") {
			found = true
		}
	}
	if !found {
		t.Errorf("next steps %v missing retake suggestion", fb.NextSteps)
	}
}

func TestBuildFeedbackComparison(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous []float64
		want     Trend
	}{
		{"improving", 90, []float64{70}, TrendImproving},
		{"declining", 60, []float64{80}, TrendDeclining},
		{"stable within band", 72, []float64{70}, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := BuildFeedback(tt.current, true, nil, tt.previous)
			if fb.Comparison == nil {
				t.Fatal("expected comparison")
			}
			if fb.Comparison.Trend != tt.want {
				t.Errorf("trend = %s, want %s", fb.Comparison.Trend, tt.want)
			}
			if fb.Comparison.TotalAttempts != len(tt.previous)+1 {
				t.Errorf("attempts = %d, want %d", fb.Comparison.TotalAttempts, len(tt.previous)+1)
			}
		})
	}
}

func TestBuildFeedbackFirstAttemptHasNoComparison(t *testing.T) {
	fb := BuildFeedback(80, true, nil, nil)
	if fb.Comparison != nil {
		t.Errorf("comparison = %+v, want nil on first attempt", fb.Comparison)
	}
}
