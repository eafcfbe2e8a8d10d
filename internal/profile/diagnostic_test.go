package profile

import (
	"math"
	"reflect"
	"testing"

	"github.com/arjunrao/learnpath/internal/learner"
)

func TestProcessDiagnosticLevels(t *testing.T) {
	// Five sql answers, four correct, difficulty 5 each:
	// 0.8 * 5 * 1.0 = 4.0.
	var responses []GradedResponse
	for i := 0; i < 5; i++ {
		responses = append(responses, GradedResponse{
			Skills:     []string{"sql"},
			Difficulty: 5,
			Correct:    i != 0,
		})
	}

	res := ProcessDiagnostic(responses)
	if got := res.Levels["sql"]; math.Abs(got-4.0) > 1e-9 {
		t.Errorf("sql level = %v, want 4.0", got)
	}
	if !reflect.DeepEqual(res.KnowledgeGaps, []string{"sql"}) {
		t.Errorf("gaps = %v, want [sql]", res.KnowledgeGaps)
	}
}

func TestProcessDiagnosticConfidenceRamp(t *testing.T) {
	// One correct answer at difficulty 10: confidence 1/5 -> level 2.
	res := ProcessDiagnostic([]GradedResponse{
		{Skills: []string{"go"}, Difficulty: 10, Correct: true},
	})
	if got := res.Levels["go"]; math.Abs(got-2.0) > 1e-9 {
		t.Errorf("go level = %v, want 2.0", got)
	}
}

func TestProcessDiagnosticEasyQuestionsFlagGap(t *testing.T) {
	// Easy questions (difficulty 2) with 50% accuracy: level
	// 0.5*2*0.4 = 0.4, and the easy-miss rule flags a gap too.
	res := ProcessDiagnostic([]GradedResponse{
		{Skills: []string{"css"}, Difficulty: 2, Correct: true},
		{Skills: []string{"css"}, Difficulty: 2, Correct: false},
	})
	if !reflect.DeepEqual(res.KnowledgeGaps, []string{"css"}) {
		t.Errorf("gaps = %v, want [css]", res.KnowledgeGaps)
	}
}

func TestProcessDiagnosticLevelCap(t *testing.T) {
	// Perfect on hard questions cannot exceed the 0-10 scale.
	var responses []GradedResponse
	for i := 0; i < 10; i++ {
		responses = append(responses, GradedResponse{
			Skills:     []string{"algo"},
			Difficulty: 10,
			Correct:    true,
		})
	}
	res := ProcessDiagnostic(responses)
	if got := res.Levels["algo"]; got != 10 {
		t.Errorf("algo level = %v, want capped 10", got)
	}
}

func TestMergeLevelsKeepsHigher(t *testing.T) {
	existing := learner.SkillLevels{"sql": 6, "go": 3}
	update := learner.SkillLevels{"sql": 4, "go": 7, "aws": 5}

	merged := MergeLevels(existing, update)
	want := learner.SkillLevels{"sql": 6, "go": 7, "aws": 5}
	if !reflect.DeepEqual(merged, want) {
		t.Errorf("merged = %v, want %v", merged, want)
	}
	if existing["go"] != 3 {
		t.Error("merge mutated the existing map")
	}
}
