package adaptive

import "math"

// TierPerformance aggregates correct/total for one difficulty tier.
type TierPerformance struct {
	Correct    int
	Total      int
	Percentage float64
}

// ScoreResult is the difficulty-weighted score for an attempt.
type ScoreResult struct {
	PointsEarned   int
	PointsPossible int
	Percentage     float64
	Breakdown      map[Tier]TierPerformance
}

// AdaptiveScore weights each question's points by its difficulty tier
// before summing. Percentage is 0 when nothing was answerable.
func AdaptiveScore(answers []Answer, questions []Question) ScoreResult {
	byID := make(map[string]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	var earned, possible float64
	breakdown := map[Tier]TierPerformance{
		TierEasy:   {},
		TierMedium: {},
		TierHard:   {},
	}

	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}

		weighted := float64(q.BasePoints()) * q.Tier.Multiplier()
		possible += weighted
		if a.Correct {
			earned += weighted
		}

		perf := breakdown[q.Tier]
		perf.Total++
		if a.Correct {
			perf.Correct++
		}
		breakdown[q.Tier] = perf
	}

	for tier, perf := range breakdown {
		if perf.Total > 0 {
			perf.Percentage = float64(perf.Correct) / float64(perf.Total) * 100
		}
		breakdown[tier] = perf
	}

	pct := 0.0
	if possible > 0 {
		pct = math.Round(earned/possible*10000) / 100
	}

	return ScoreResult{
		PointsEarned:   int(earned),
		PointsPossible: int(possible),
		Percentage:     pct,
		Breakdown:      breakdown,
	}
}
