// Package adaptive selects assessment questions by rolling accuracy and
// grades, scores, and explains the results.
package adaptive

// Tier is a question difficulty tier.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Multiplier returns the difficulty weight applied to a question's
// points when scoring.
func (t Tier) Multiplier() float64 {
	switch t {
	case TierEasy:
		return 1.0
	case TierMedium:
		return 1.5
	case TierHard:
		return 2.0
	default:
		return 1.0
	}
}

// AllTiers returns the tiers in ascending difficulty.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// AnswerKind discriminates how a question is graded.
type AnswerKind string

const (
	KindSingleChoice AnswerKind = "single_choice"
	KindMultiSelect  AnswerKind = "multiple_select"
	KindTrueFalse    AnswerKind = "true_false"
	KindShortAnswer  AnswerKind = "short_answer"
)

// AnswerKey holds the grading data for a question. Which fields apply
// depends on Kind.
type AnswerKey struct {
	Kind     AnswerKind
	Answer   string   // single choice / true-false
	Answers  []string // multiple select
	Accepted []string // short answer, matched case-insensitively
}

// Question is one immutable assessment question snapshot.
type Question struct {
	ID      string
	Text    string
	Options []string
	Tier    Tier
	Points  int // 0 means the default of 10
	Skills  []string
	Key     AnswerKey
	// DiagnosticDifficulty is the 1-10 scale used by diagnostic
	// skill-level estimation.
	DiagnosticDifficulty int
}

// BasePoints returns the question's point value with the default applied.
func (q Question) BasePoints() int {
	if q.Points <= 0 {
		return 10
	}
	return q.Points
}

// Answer records the outcome of one answered question.
type Answer struct {
	QuestionID string
	Correct    bool
}
