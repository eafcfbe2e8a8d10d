// Package profile derives skill proficiency estimates from assessment history.
package profile

import (
	"math"
	"sort"

	"github.com/arjunrao/learnpath/internal/learner"
)

// DefaultMaxSamples is the default per-skill window of recent accuracy samples.
const DefaultMaxSamples = 10

// Config holds estimator settings.
type Config struct {
	// MaxSamples caps how many recent samples per skill contribute
	// to the estimate.
	MaxSamples int
}

// DefaultConfig returns sensible estimator defaults.
func DefaultConfig() Config {
	return Config{MaxSamples: DefaultMaxSamples}
}

// Estimator computes skill levels from attempt history.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an Estimator with the given config.
func NewEstimator(cfg Config) *Estimator {
	if cfg.MaxSamples <= 0 {
		cfg.MaxSamples = DefaultMaxSamples
	}
	return &Estimator{cfg: cfg}
}

// EstimateLevels derives a 0-10 level per skill from attempt records,
// ordered most recent first. Sample i is weighted 1/(i+1) so recent
// attempts dominate. Skills with no samples are absent from the result;
// absence stays distinguishable from a proven zero.
func (e *Estimator) EstimateLevels(attempts []learner.AttemptRecord) learner.SkillLevels {
	samples := make(map[string][]float64)
	for _, a := range attempts {
		for _, skill := range sortedScoreKeys(a.SkillScores) {
			if len(samples[skill]) < e.cfg.MaxSamples {
				samples[skill] = append(samples[skill], a.SkillScores[skill])
			}
		}
	}

	levels := make(learner.SkillLevels, len(samples))
	for skill, scores := range samples {
		levels[skill] = learner.ClampLevel(roundTo1(weightedAccuracy(scores) * 10))
	}
	return levels
}

// weightedAccuracy applies harmonic decay over samples ordered most
// recent first.
func weightedAccuracy(scores []float64) float64 {
	var weightedSum, weightSum float64
	for i, score := range scores {
		w := 1.0 / float64(i+1)
		weightedSum += score * w
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return weightedSum / weightSum
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func sortedScoreKeys(scores map[string]float64) []string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
