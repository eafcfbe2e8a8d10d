package profile

import (
	"sort"
	"time"

	"github.com/arjunrao/learnpath/internal/learner"
)

const (
	// weakAttemptCeiling marks an attempt as poor below this overall score.
	weakAttemptCeiling = 70.0
	// weakSkillCeiling marks a skill score as weak below this accuracy.
	weakSkillCeiling = 0.7
	// DefaultRevisionWindow is how far back poor attempts are considered.
	DefaultRevisionWindow = 14 * 24 * time.Hour
)

// WeakSkill pairs a skill with its worst recent accuracy.
type WeakSkill struct {
	Skill    string
	Accuracy float64
}

// WeakSkills extracts skills that scored poorly in below-threshold
// attempts newer than now minus window. Results are sorted by accuracy
// ascending, ties broken by skill name.
func WeakSkills(attempts []learner.AttemptRecord, now time.Time, window time.Duration) []WeakSkill {
	if window <= 0 {
		window = DefaultRevisionWindow
	}
	cutoff := now.Add(-window)

	worst := make(map[string]float64)
	for _, a := range attempts {
		if a.ScorePercentage >= weakAttemptCeiling || a.Timestamp.Before(cutoff) {
			continue
		}
		for skill, score := range a.SkillScores {
			if score >= weakSkillCeiling {
				continue
			}
			if cur, ok := worst[skill]; !ok || score < cur {
				worst[skill] = score
			}
		}
	}

	out := make([]WeakSkill, 0, len(worst))
	for skill, acc := range worst {
		out = append(out, WeakSkill{Skill: skill, Accuracy: acc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy < out[j].Accuracy
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}
