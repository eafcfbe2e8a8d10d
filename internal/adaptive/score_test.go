package adaptive

import (
	"math"
	"testing"
)

func TestAdaptiveScoreWeighting(t *testing.T) {
	questions := []Question{
		{ID: "e", Tier: TierEasy},   // 10 * 1.0 = 10
		{ID: "m", Tier: TierMedium}, // 10 * 1.5 = 15
		{ID: "h", Tier: TierHard},   // 10 * 2.0 = 20
	}
	answers := []Answer{
		{QuestionID: "e", Correct: true},
		{QuestionID: "m", Correct: false},
		{QuestionID: "h", Correct: true},
	}

	res := AdaptiveScore(answers, questions)
	if res.PointsEarned != 30 {
		t.Errorf("earned = %d, want 30", res.PointsEarned)
	}
	if res.PointsPossible != 45 {
		t.Errorf("possible = %d, want 45", res.PointsPossible)
	}
	if math.Abs(res.Percentage-66.67) > 1e-9 {
		t.Errorf("percentage = %v, want 66.67", res.Percentage)
	}
}

func TestAdaptiveScoreBreakdown(t *testing.T) {
	questions := []Question{
		{ID: "m1", Tier: TierMedium},
		{ID: "m2", Tier: TierMedium},
	}
	answers := []Answer{
		{QuestionID: "m1", Correct: true},
		{QuestionID: "m2", Correct: false},
	}

	res := AdaptiveScore(answers, questions)
	perf := res.Breakdown[TierMedium]
	if perf.Correct != 1 || perf.Total != 2 || perf.Percentage != 50 {
		t.Errorf("medium breakdown = %+v, want 1/2 at 50%%", perf)
	}
	if res.Breakdown[TierHard].Total != 0 {
		t.Errorf("hard breakdown = %+v, want empty", res.Breakdown[TierHard])
	}
}

func TestAdaptiveScoreCustomPoints(t *testing.T) {
	questions := []Question{{ID: "h", Tier: TierHard, Points: 25}}
	answers := []Answer{{QuestionID: "h", Correct: true}}

	res := AdaptiveScore(answers, questions)
	if res.PointsEarned != 50 {
		t.Errorf("earned = %d, want 50 (25 x 2.0)", res.PointsEarned)
	}
	if res.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", res.Percentage)
	}
}

func TestAdaptiveScoreEmpty(t *testing.T) {
	res := AdaptiveScore(nil, nil)
	if res.Percentage != 0 || res.PointsPossible != 0 {
		t.Errorf("empty score = %+v, want zeros", res)
	}
}
