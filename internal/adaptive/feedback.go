package adaptive

import (
	"fmt"
	"math"
)

// PerformanceLevel categorizes an attempt score.
type PerformanceLevel string

const (
	LevelExpert     PerformanceLevel = "expert"
	LevelProficient PerformanceLevel = "proficient"
	LevelCompetent  PerformanceLevel = "competent"
	LevelDeveloping PerformanceLevel = "developing"
	LevelBeginner   PerformanceLevel = "beginner"
)

// Trend describes score movement across attempts.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendBand is the score delta within which performance counts as stable.
const trendBand = 5.0

// Comparison relates the current attempt to the previous one.
type Comparison struct {
	Trend         Trend
	ScoreChange   float64
	PreviousScore float64
	CurrentScore  float64
	Message       string
	TotalAttempts int
}

// Feedback is the full deterministic post-assessment report.
type Feedback struct {
	Score        float64
	Passed       bool
	Level        PerformanceLevel
	Analysis     string
	Strengths    []string
	Improvements []string
	NextSteps    []string
	Comparison   *Comparison // nil on a first attempt
}

// BuildFeedback derives feedback from the attempt score, the skills
// the assessment covered (in assessment order), and previous attempt
// scores ordered most recent first. Everything is a pure function of
// its inputs; no sampling.
func BuildFeedback(score float64, passed bool, skillsAssessed []string, previousScores []float64) Feedback {
	fb := Feedback{
		Score:        score,
		Passed:       passed,
		Level:        performanceLevel(score),
		Analysis:     overallAnalysis(score),
		Strengths:    strengths(score, skillsAssessed),
		Improvements: improvements(score, skillsAssessed),
		NextSteps:    nextSteps(score, passed, skillsAssessed),
	}
	if len(previousScores) > 0 {
		fb.Comparison = compare(score, previousScores)
	}
	return fb
}

func performanceLevel(score float64) PerformanceLevel {
	switch {
	case score >= 90:
		return LevelExpert
	case score >= 80:
		return LevelProficient
	case score >= 70:
		return LevelCompetent
	case score >= 60:
		return LevelDeveloping
	default:
		return LevelBeginner
	}
}

func overallAnalysis(score float64) string {
	switch {
	case score >= 90:
		return fmt.Sprintf("Outstanding performance! You scored %.1f%%, demonstrating excellent mastery of the material.", score)
	case score >= 80:
		return fmt.Sprintf("Great work! You scored %.1f%%, showing strong comprehension of the key concepts.", score)
	case score >= 70:
		return fmt.Sprintf("Good effort! You scored %.1f%%, indicating solid understanding with room for improvement in some areas.", score)
	case score >= 60:
		return fmt.Sprintf("You passed with %.1f%%. There are several areas where additional study would be beneficial.", score)
	default:
		return fmt.Sprintf("You scored %.1f%%, which is below the passing threshold. Use this result to focus your learning efforts.", score)
	}
}

// strengths lists up to two assessed skills in assessment order, plus
// band-specific notes. Falls back to a baseline message.
func strengths(score float64, skills []string) []string {
	var out []string
	if score >= 70 {
		for _, skill := range firstNStrings(skills, 2) {
			out = append(out, fmt.Sprintf("Strong grasp of %s", skill))
		}
	}
	if score >= 80 {
		out = append(out, "Consistent accuracy across different question types")
	}
	if score >= 90 {
		out = append(out, "Exceptional problem-solving abilities")
	}
	if len(out) == 0 {
		out = append(out, "Completed the assessment - this is your baseline for improvement")
	}
	return out
}

func improvements(score float64, skills []string) []string {
	var out []string
	if score < 70 {
		for _, skill := range firstNStrings(skills, 2) {
			out = append(out, fmt.Sprintf("Review foundational concepts in %s", skill))
		}
	}
	if score < 60 {
		out = append(out, "Focus on building stronger foundations before advancing")
	}
	if score < 80 {
		out = append(out, "Practice applying concepts to different scenarios")
	}
	if len(out) == 0 {
		out = append(out, "Continue practicing to maintain your expertise")
	}
	return out
}

func nextSteps(score float64, passed bool, skills []string) []string {
	var out []string
	switch {
	case passed && score >= 80:
		out = append(out, "Apply your knowledge in real-world projects")
		out = append(out, "Share your expertise by helping others learn")
	case passed:
		out = append(out, "Review areas where you lost points")
		out = append(out, "Take practice quizzes to reinforce learning")
	default:
		out = append(out, "Review the course material thoroughly")
		out = append(out, "Focus on one concept at a time")
		out = append(out, "Retake the assessment when you feel ready")
	}
	if len(skills) > 0 {
		out = append(out, fmt.Sprintf("Build a project using %s to reinforce your learning", skills[0]))
	}
	return out
}

func compare(current float64, previousScores []float64) *Comparison {
	previous := previousScores[0]
	diff := current - previous

	c := &Comparison{
		ScoreChange:   math.Round(diff*100) / 100,
		PreviousScore: previous,
		CurrentScore:  current,
		TotalAttempts: len(previousScores) + 1,
	}
	switch {
	case diff > trendBand:
		c.Trend = TrendImproving
		c.Message = fmt.Sprintf("Great progress! You improved by %.1f%% since your last attempt.", diff)
	case diff < -trendBand:
		c.Trend = TrendDeclining
		c.Message = fmt.Sprintf("Your score decreased by %.1f%%. Review the material and try again.", -diff)
	default:
		c.Trend = TrendStable
		c.Message = "Your performance is consistent with your previous attempt."
	}
	return c
}

func firstNStrings(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
