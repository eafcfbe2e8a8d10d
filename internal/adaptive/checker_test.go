package adaptive

import "testing"

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name      string
		key       AnswerKey
		submitted []string
		want      bool
	}{
		{
			name:      "single choice exact",
			key:       AnswerKey{Kind: KindSingleChoice, Answer: "Paris"},
			submitted: []string{"Paris"},
			want:      true,
		},
		{
			name:      "single choice case and space insensitive",
			key:       AnswerKey{Kind: KindSingleChoice, Answer: "Paris"},
			submitted: []string{"  paris "},
			want:      true,
		},
		{
			name:      "single choice wrong",
			key:       AnswerKey{Kind: KindSingleChoice, Answer: "Paris"},
			submitted: []string{"Lyon"},
			want:      false,
		},
		{
			name:      "multiple select all required",
			key:       AnswerKey{Kind: KindMultiSelect, Answers: []string{"a", "b"}},
			submitted: []string{"b", "a"},
			want:      true,
		},
		{
			name:      "multiple select missing one",
			key:       AnswerKey{Kind: KindMultiSelect, Answers: []string{"a", "b"}},
			submitted: []string{"a"},
			want:      false,
		},
		{
			name:      "multiple select extra one",
			key:       AnswerKey{Kind: KindMultiSelect, Answers: []string{"a", "b"}},
			submitted: []string{"a", "b", "c"},
			want:      false,
		},
		{
			name:      "multiple select duplicated selection incomplete",
			key:       AnswerKey{Kind: KindMultiSelect, Answers: []string{"a", "b"}},
			submitted: []string{"a", "a"},
			want:      false,
		},
		{
			name:      "multiple select duplicates of complete set",
			key:       AnswerKey{Kind: KindMultiSelect, Answers: []string{"a", "b"}},
			submitted: []string{"a", "b", "b"},
			want:      true,
		},
		{
			name:      "true false synonyms",
			key:       AnswerKey{Kind: KindTrueFalse, Answer: "true"},
			submitted: []string{"Yes"},
			want:      true,
		},
		{
			name:      "true false mismatch",
			key:       AnswerKey{Kind: KindTrueFalse, Answer: "true"},
			submitted: []string{"false"},
			want:      false,
		},
		{
			name:      "short answer accepted variant",
			key:       AnswerKey{Kind: KindShortAnswer, Accepted: []string{"HTTP", "hypertext transfer protocol"}},
			submitted: []string{"http"},
			want:      true,
		},
		{
			name:      "short answer rejected",
			key:       AnswerKey{Kind: KindShortAnswer, Accepted: []string{"HTTP"}},
			submitted: []string{"ftp"},
			want:      false,
		},
		{
			name:      "empty submission",
			key:       AnswerKey{Kind: KindSingleChoice, Answer: "Paris"},
			submitted: nil,
			want:      false,
		},
		{
			name:      "unknown kind",
			key:       AnswerKey{Kind: "essay", Answer: "x"},
			submitted: []string{"x"},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.key, tt.submitted); got != tt.want {
				t.Errorf("CheckAnswer() = %v, want %v", got, tt.want)
			}
		})
	}
}
