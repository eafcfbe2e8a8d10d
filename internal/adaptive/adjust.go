package adaptive

import "fmt"

// Difficulty dial bounds for the 1-10 practice scale.
const (
	MinDial = 1
	MaxDial = 10

	// minAttemptsForAdjustment is the sample floor before the dial moves.
	minAttemptsForAdjustment = 3
)

// AdjustDial recommends a difficulty change from recent attempt scores
// (0-100 each). Fewer than three samples holds the current level.
func AdjustDial(current int, recentScores []float64) (int, string) {
	if current < MinDial {
		current = MinDial
	}
	if current > MaxDial {
		current = MaxDial
	}
	if len(recentScores) < minAttemptsForAdjustment {
		return current, "Not enough data"
	}

	sum := 0.0
	for _, s := range recentScores {
		sum += s
	}
	avg := sum / float64(len(recentScores))

	switch {
	case avg >= 90:
		next := current + 1
		if next > MaxDial {
			next = MaxDial
		}
		return next, fmt.Sprintf("Excellent performance (%.0f%%) - increasing challenge", avg)
	case avg >= 75:
		return current, fmt.Sprintf("Good performance (%.0f%%) - maintaining level", avg)
	case avg >= 60:
		return current, fmt.Sprintf("Adequate performance (%.0f%%) - stay at current level", avg)
	default:
		next := current - 1
		if next < MinDial {
			next = MinDial
		}
		return next, fmt.Sprintf("Struggling (%.0f%%) - reducing difficulty for mastery", avg)
	}
}
