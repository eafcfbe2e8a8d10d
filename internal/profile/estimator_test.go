package profile

import (
	"math"
	"testing"
	"time"

	"github.com/arjunrao/learnpath/internal/learner"
)

func TestEstimateLevelsRecencyWeighting(t *testing.T) {
	// Most recent first: 0.9 then 0.4 for sql.
	// Weighted: (0.9*1 + 0.4*0.5) / 1.5 = 0.7333 -> level 7.3.
	attempts := []learner.AttemptRecord{
		{SkillScores: map[string]float64{"sql": 0.9}},
		{SkillScores: map[string]float64{"sql": 0.4}},
	}

	levels := NewEstimator(DefaultConfig()).EstimateLevels(attempts)
	if got := levels["sql"]; math.Abs(got-7.3) > 1e-9 {
		t.Errorf("sql level = %v, want 7.3", got)
	}
}

func TestEstimateLevelsAbsentSkillStaysAbsent(t *testing.T) {
	attempts := []learner.AttemptRecord{
		{SkillScores: map[string]float64{"sql": 0.8}},
	}
	levels := NewEstimator(DefaultConfig()).EstimateLevels(attempts)
	if levels.Has("docker") {
		t.Error("skill with no samples should be absent, not zero")
	}
}

func TestEstimateLevelsEmptyHistory(t *testing.T) {
	levels := NewEstimator(DefaultConfig()).EstimateLevels(nil)
	if len(levels) != 0 {
		t.Errorf("expected empty map, got %v", levels)
	}
}

func TestEstimateLevelsCapsSamples(t *testing.T) {
	// With MaxSamples 2, the third (oldest) score is ignored.
	attempts := []learner.AttemptRecord{
		{SkillScores: map[string]float64{"sql": 1.0}},
		{SkillScores: map[string]float64{"sql": 1.0}},
		{SkillScores: map[string]float64{"sql": 0.0}},
	}
	levels := NewEstimator(Config{MaxSamples: 2}).EstimateLevels(attempts)
	if got := levels["sql"]; got != 10 {
		t.Errorf("sql level = %v, want 10 (oldest sample ignored)", got)
	}
}

func TestEstimateLevelsPerfectAndZero(t *testing.T) {
	attempts := []learner.AttemptRecord{
		{SkillScores: map[string]float64{"aws": 1.0, "go": 0.0}},
	}
	levels := NewEstimator(DefaultConfig()).EstimateLevels(attempts)
	if levels["aws"] != 10 {
		t.Errorf("aws level = %v, want 10", levels["aws"])
	}
	if level, ok := levels["go"]; !ok || level != 0 {
		t.Errorf("go level = %v (present %v), want proven 0", level, ok)
	}
}

func TestWeakSkills(t *testing.T) {
	now := time.Now()
	attempts := []learner.AttemptRecord{
		// Poor recent attempt with two weak skills and one fine skill.
		{
			SkillScores:     map[string]float64{"sql": 0.3, "go": 0.5, "aws": 0.9},
			ScorePercentage: 50,
			Timestamp:       now.Add(-24 * time.Hour),
		},
		// Good attempt: ignored entirely.
		{
			SkillScores:     map[string]float64{"docker": 0.2},
			ScorePercentage: 85,
			Timestamp:       now.Add(-24 * time.Hour),
		},
		// Poor but stale attempt: outside the window.
		{
			SkillScores:     map[string]float64{"k8s": 0.1},
			ScorePercentage: 40,
			Timestamp:       now.Add(-30 * 24 * time.Hour),
		},
	}

	weak := WeakSkills(attempts, now, 0)
	if len(weak) != 2 {
		t.Fatalf("weak skills = %v, want 2 entries", weak)
	}
	// Sorted by accuracy ascending.
	if weak[0].Skill != "sql" || weak[1].Skill != "go" {
		t.Errorf("weak order = %v, want sql then go", weak)
	}
}
