package adaptive

import "testing"

func tierQuestions() []Question {
	return []Question{
		{ID: "e1", Text: "easy one", Tier: TierEasy},
		{ID: "m1", Text: "medium one", Tier: TierMedium},
		{ID: "m2", Text: "medium two", Tier: TierMedium},
		{ID: "h1", Text: "hard one", Tier: TierHard},
	}
}

func TestNextQuestionStartsMedium(t *testing.T) {
	q, ok := NextQuestion(nil, tierQuestions())
	if !ok {
		t.Fatal("expected a question")
	}
	if q.ID != "m1" {
		t.Errorf("first question = %s, want m1", q.ID)
	}
}

func TestNextQuestionFollowsAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		history []Answer
		wantID  string
	}{
		{
			name:    "high accuracy targets hard",
			history: []Answer{{QuestionID: "m1", Correct: true}},
			wantID:  "h1",
		},
		{
			name: "middling accuracy targets medium",
			history: []Answer{
				{QuestionID: "m1", Correct: true},
				{QuestionID: "h1", Correct: false},
			},
			wantID: "m2",
		},
		{
			name: "low accuracy targets easy",
			history: []Answer{
				{QuestionID: "m1", Correct: false},
				{QuestionID: "m2", Correct: false},
			},
			wantID: "e1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := NextQuestion(tt.history, tierQuestions())
			if !ok {
				t.Fatal("expected a question")
			}
			if q.ID != tt.wantID {
				t.Errorf("next = %s, want %s", q.ID, tt.wantID)
			}
		})
	}
}

func TestNextQuestionFallsBackToCatalogOrder(t *testing.T) {
	// Perfect accuracy targets hard, but the hard question is answered:
	// first unanswered in catalog order wins.
	history := []Answer{
		{QuestionID: "m1", Correct: true},
		{QuestionID: "h1", Correct: true},
	}
	q, ok := NextQuestion(history, tierQuestions())
	if !ok {
		t.Fatal("expected a question")
	}
	if q.ID != "e1" {
		t.Errorf("fallback = %s, want e1", q.ID)
	}
}

func TestNextQuestionCompletes(t *testing.T) {
	history := []Answer{
		{QuestionID: "e1"}, {QuestionID: "m1"}, {QuestionID: "m2"}, {QuestionID: "h1"},
	}
	if _, ok := NextQuestion(history, tierQuestions()); ok {
		t.Error("expected completion once every question is answered")
	}
	if _, ok := NextQuestion(nil, nil); ok {
		t.Error("expected completion for an empty question set")
	}
}

func TestTargetTierBands(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Tier
	}{
		{0.0, TierEasy},
		{0.49, TierEasy},
		{0.5, TierMedium},
		{0.79, TierMedium},
		{0.8, TierHard},
		{1.0, TierHard},
	}
	for _, tt := range tests {
		if got := TargetTier(tt.accuracy); got != tt.want {
			t.Errorf("TargetTier(%v) = %s, want %s", tt.accuracy, got, tt.want)
		}
	}
}
