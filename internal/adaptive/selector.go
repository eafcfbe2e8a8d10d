package adaptive

// Accuracy bands for difficulty targeting.
const (
	hardFloor   = 0.8
	mediumFloor = 0.5
)

// TargetTier maps rolling accuracy to the next question's difficulty.
func TargetTier(accuracy float64) Tier {
	switch {
	case accuracy >= hardFloor:
		return TierHard
	case accuracy >= mediumFloor:
		return TierMedium
	default:
		return TierEasy
	}
}

// Accuracy computes the correct fraction over answered questions.
// Returns 0 for an empty history.
func Accuracy(history []Answer) float64 {
	if len(history) == 0 {
		return 0
	}
	correct := 0
	for _, a := range history {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(history))
}

// NextQuestion picks the next question from the full answer history.
// The selector holds no state; the caller supplies history fresh each
// call. The first question targets medium difficulty. Afterwards the
// target tier follows rolling accuracy; if no unanswered question
// exists at the target tier, the first unanswered question in catalog
// order is used. The second return is false once every question has
// been answered.
func NextQuestion(history []Answer, questions []Question) (Question, bool) {
	if len(questions) == 0 {
		return Question{}, false
	}

	answered := make(map[string]bool, len(history))
	for _, a := range history {
		answered[a.QuestionID] = true
	}

	var unanswered []Question
	for _, q := range questions {
		if !answered[q.ID] {
			unanswered = append(unanswered, q)
		}
	}
	if len(unanswered) == 0 {
		return Question{}, false // assessment complete
	}

	target := TierMedium
	if len(history) > 0 {
		target = TargetTier(Accuracy(history))
	}

	for _, q := range unanswered {
		if q.Tier == target {
			return q, true
		}
	}
	return unanswered[0], true
}
