package adaptive

// SkillsAssessed returns the unique skills covered by the questions, in
// first-appearance order.
func SkillsAssessed(questions []Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range questions {
		for _, s := range q.Skills {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// SkillAccuracy computes per-skill correct fractions over the answered
// questions. A question counts toward every skill it is tagged with.
func SkillAccuracy(answers []Answer, questions []Question) map[string]float64 {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	correct := make(map[string]int)
	total := make(map[string]int)
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		for _, s := range q.Skills {
			total[s]++
			if a.Correct {
				correct[s]++
			}
		}
	}

	out := make(map[string]float64, len(total))
	for s, n := range total {
		out[s] = float64(correct[s]) / float64(n)
	}
	return out
}
