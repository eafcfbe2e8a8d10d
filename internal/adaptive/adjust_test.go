package adaptive

import (
	"strings"
	"testing"
)

func TestAdjustDial(t *testing.T) {
	tests := []struct {
		name    string
		current int
		scores  []float64
		want    int
		wantSub string
	}{
		{
			name:    "too few samples holds",
			current: 5,
			scores:  []float64{95, 95},
			want:    5,
			wantSub: "Not enough data",
		},
		{
			name:    "excellent increases",
			current: 5,
			scores:  []float64{92, 95, 90},
			want:    6,
			wantSub: "increasing",
		},
		{
			name:    "good holds",
			current: 5,
			scores:  []float64{80, 78, 76},
			want:    5,
			wantSub: "maintaining",
		},
		{
			name:    "adequate holds",
			current: 5,
			scores:  []float64{65, 60, 62},
			want:    5,
			wantSub: "current level",
		},
		{
			name:    "struggling decreases",
			current: 5,
			scores:  []float64{40, 50, 45},
			want:    4,
			wantSub: "reducing",
		},
		{
			name:    "increase clamps at max",
			current: 10,
			scores:  []float64{95, 95, 95},
			want:    10,
			wantSub: "increasing",
		},
		{
			name:    "decrease clamps at min",
			current: 1,
			scores:  []float64{10, 20, 30},
			want:    1,
			wantSub: "reducing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, why := AdjustDial(tt.current, tt.scores)
			if got != tt.want {
				t.Errorf("dial = %d, want %d", got, tt.want)
			}
			if !strings.Contains(why, tt.wantSub) {
				t.Errorf("reason %q missing %q", why, tt.wantSub)
			}
		})
	}
}

func TestAdjustDialClampsInput(t *testing.T) {
	if got, _ := AdjustDial(0, nil); got != MinDial {
		t.Errorf("dial = %d, want clamped to %d", got, MinDial)
	}
	if got, _ := AdjustDial(15, nil); got != MaxDial {
		t.Errorf("dial = %d, want clamped to %d", got, MaxDial)
	}
}

func TestSkillAccuracy(t *testing.T) {
	questions := []Question{
		{ID: "q1", Skills: []string{"sql"}},
		{ID: "q2", Skills: []string{"sql", "python"}},
		{ID: "q3", Skills: []string{"python"}},
	}
	answers := []Answer{
		{QuestionID: "q1", Correct: true},
		{QuestionID: "q2", Correct: false},
		{QuestionID: "q3", Correct: true},
	}

	acc := SkillAccuracy(answers, questions)
	if acc["sql"] != 0.5 {
		t.Errorf("sql accuracy = %v, want 0.5", acc["sql"])
	}
	if acc["python"] != 0.5 {
		t.Errorf("python accuracy = %v, want 0.5", acc["python"])
	}
}

func TestSkillsAssessedOrder(t *testing.T) {
	questions := []Question{
		{ID: "q1", Skills: []string{"sql", "python"}},
		{ID: "q2", Skills: []string{"python", "docker"}},
	}
	got := SkillsAssessed(questions)
	want := []string{"sql", "python", "docker"}
	if len(got) != len(want) {
		t.Fatalf("skills = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("skills[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
