package profile

import (
	"math"
	"sort"

	"github.com/arjunrao/learnpath/internal/learner"
)

const (
	// gapLevelThreshold flags a skill as a knowledge gap below this level.
	gapLevelThreshold = 5.0
	// easyDifficultyCeiling is the highest 1-10 difficulty considered "easy".
	easyDifficultyCeiling = 3.0
	// easyAccuracyFloor flags a gap when easy questions score below this.
	easyAccuracyFloor = 0.6
	// fullConfidenceSamples is the answer count at which confidence saturates.
	fullConfidenceSamples = 5
)

// GradedResponse is one graded diagnostic question outcome.
type GradedResponse struct {
	Skills     []string // skill tags on the question
	Difficulty int      // 1-10
	Correct    bool
}

// SkillBreakdown aggregates diagnostic performance for one skill.
type SkillBreakdown struct {
	Correct       int
	Total         int
	Accuracy      float64
	AvgDifficulty float64
}

// DiagnosticResult holds the outcome of processing a diagnostic assessment.
type DiagnosticResult struct {
	Levels        learner.SkillLevels
	KnowledgeGaps []string // lexicographic order
	Breakdown     map[string]SkillBreakdown
}

// ProcessDiagnostic converts graded diagnostic responses into skill levels.
// Level = accuracy x average difficulty x confidence, where confidence
// ramps to 1.0 at five answered questions per skill, capped at 10.
func ProcessDiagnostic(responses []GradedResponse) DiagnosticResult {
	breakdown := make(map[string]SkillBreakdown)
	diffSums := make(map[string]float64)

	for _, r := range responses {
		for _, skill := range r.Skills {
			b := breakdown[skill]
			b.Total++
			if r.Correct {
				b.Correct++
			}
			diffSums[skill] += float64(r.Difficulty)
			breakdown[skill] = b
		}
	}

	levels := make(learner.SkillLevels, len(breakdown))
	var gaps []string

	for skill, b := range breakdown {
		if b.Total == 0 {
			continue
		}
		b.Accuracy = float64(b.Correct) / float64(b.Total)
		b.AvgDifficulty = diffSums[skill] / float64(b.Total)
		breakdown[skill] = b

		confidence := math.Min(1.0, float64(b.Total)/fullConfidenceSamples)
		raw := b.Accuracy * b.AvgDifficulty * confidence
		level := math.Min(learner.MaxLevel, roundTo1(raw))
		levels[skill] = level

		if level < gapLevelThreshold || (b.AvgDifficulty <= easyDifficultyCeiling && b.Accuracy < easyAccuracyFloor) {
			gaps = append(gaps, skill)
		}
	}
	sort.Strings(gaps)

	return DiagnosticResult{
		Levels:        levels,
		KnowledgeGaps: gaps,
		Breakdown:     breakdown,
	}
}

// MergeLevels folds new estimates into an existing profile, keeping the
// higher estimate per skill. Neither input is mutated.
func MergeLevels(existing, update learner.SkillLevels) learner.SkillLevels {
	merged := existing.Clone()
	for skill, level := range update {
		if cur, ok := merged[skill]; !ok || level > cur {
			merged[skill] = level
		}
	}
	return merged
}
