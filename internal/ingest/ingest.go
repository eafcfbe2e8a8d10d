package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/arjunrao/learnpath/internal/adaptive"
	"github.com/arjunrao/learnpath/internal/catalog"
	"github.com/arjunrao/learnpath/internal/learner"
)

type catalogFile struct {
	Courses []courseJSON `json:"courses"`
}

type courseJSON struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Difficulty    string   `json:"difficulty"`
	SkillsTaught  []string `json:"skills_taught"`
	Prerequisites []string `json:"prerequisites"`
	DurationHours float64  `json:"duration_hours"`
	Enrollments   int      `json:"enrollments"`
}

type learnerFile struct {
	CurrentSkills       map[string]float64 `json:"current_skills"`
	PreferredDifficulty string             `json:"preferred_difficulty"`
	StudyHoursPerWeek   float64            `json:"study_hours_per_week"`
	CompletedCourses    []string           `json:"completed_courses"`
	Goals               []goalJSON         `json:"goals"`
	Attempts            []attemptJSON      `json:"attempts"`
}

type goalJSON struct {
	Description  string   `json:"description"`
	TargetRole   string   `json:"target_role"`
	TargetSkills []string `json:"target_skills"`
}

type attemptJSON struct {
	SkillScores     map[string]float64 `json:"skill_scores"`
	ScorePercentage float64            `json:"score_percentage"`
	Timestamp       string             `json:"timestamp"`
}

type assessmentFile struct {
	PassingScore float64        `json:"passing_score"`
	Questions    []questionJSON `json:"questions"`
}

type questionJSON struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Tier       string   `json:"tier"`
	Points     int      `json:"points"`
	Skills     []string `json:"skills"`
	Difficulty int      `json:"difficulty"`
	Answer     struct {
		Kind     string   `json:"kind"`
		Answer   string   `json:"answer"`
		Answers  []string `json:"answers"`
		Accepted []string `json:"accepted"`
	} `json:"answer"`
}

// LoadCatalog reads, validates, and decodes a course catalog snapshot.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := validateRaw(CatalogSchema, raw); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	courses := make([]catalog.Course, len(file.Courses))
	for i, c := range file.Courses {
		courses[i] = catalog.Course{
			ID:            c.ID,
			Title:         c.Title,
			Description:   c.Description,
			Difficulty:    catalog.Difficulty(c.Difficulty),
			SkillsTaught:  c.SkillsTaught,
			Prerequisites: c.Prerequisites,
			DurationHours: c.DurationHours,
			Enrollments:   c.Enrollments,
		}
	}
	return catalog.New(courses)
}

// Learner bundles everything decoded from a learner snapshot file.
type Learner struct {
	Context  learner.Context
	Goals    []learner.Goal
	Attempts []learner.AttemptRecord // most recent first
}

// LoadLearner reads, validates, and decodes a learner snapshot.
// The context's target skills are the union of all goal targets.
// Attempts are normalized to most-recent-first order.
func LoadLearner(path string) (*Learner, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read learner snapshot: %w", err)
	}
	if err := validateRaw(LearnerSchema, raw); err != nil {
		return nil, err
	}

	var file learnerFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode learner snapshot: %w", err)
	}

	goals := make([]learner.Goal, len(file.Goals))
	targets := make(map[string]bool)
	for i, g := range file.Goals {
		goals[i] = learner.Goal{
			Description:  g.Description,
			TargetRole:   g.TargetRole,
			TargetSkills: toSet(g.TargetSkills),
		}
		for _, s := range g.TargetSkills {
			targets[s] = true
		}
	}

	attempts := make([]learner.AttemptRecord, len(file.Attempts))
	for i, a := range file.Attempts {
		rec := learner.AttemptRecord{
			SkillScores:     a.SkillScores,
			ScorePercentage: a.ScorePercentage,
		}
		if a.Timestamp != "" {
			ts, err := time.Parse(time.RFC3339, a.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("attempt %d: parse timestamp: %w", i, err)
			}
			rec.Timestamp = ts
		}
		attempts[i] = rec
	}
	sortAttemptsRecentFirst(attempts)

	difficulty := catalog.Difficulty(file.PreferredDifficulty)
	if file.PreferredDifficulty == "" {
		difficulty = catalog.Intermediate
	}

	ctx := learner.Context{
		CurrentSkills:       learner.SkillLevels(file.CurrentSkills),
		TargetSkills:        targets,
		CompletedCourseIDs:  toSet(file.CompletedCourses),
		PreferredDifficulty: difficulty,
		StudyHoursPerWeek:   file.StudyHoursPerWeek,
	}
	if ctx.CurrentSkills == nil {
		ctx.CurrentSkills = learner.SkillLevels{}
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	if err := learner.ValidateAttempts(attempts); err != nil {
		return nil, err
	}

	return &Learner{Context: ctx, Goals: goals, Attempts: attempts}, nil
}

// Assessment bundles a decoded question set with its passing score.
type Assessment struct {
	PassingScore float64
	Questions    []adaptive.Question
}

// LoadAssessment reads, validates, and decodes an assessment file.
func LoadAssessment(path string) (*Assessment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assessment: %w", err)
	}
	if err := validateRaw(AssessmentSchema, raw); err != nil {
		return nil, err
	}

	var file assessmentFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode assessment: %w", err)
	}

	questions := make([]adaptive.Question, len(file.Questions))
	for i, q := range file.Questions {
		questions[i] = adaptive.Question{
			ID:                   q.ID,
			Text:                 q.Text,
			Options:              q.Options,
			Tier:                 adaptive.Tier(q.Tier),
			Points:               q.Points,
			Skills:               q.Skills,
			DiagnosticDifficulty: q.Difficulty,
			Key: adaptive.AnswerKey{
				Kind:     adaptive.AnswerKind(q.Answer.Kind),
				Answer:   q.Answer.Answer,
				Answers:  q.Answer.Answers,
				Accepted: q.Answer.Accepted,
			},
		}
	}

	passing := file.PassingScore
	if passing == 0 {
		passing = 60
	}
	return &Assessment{PassingScore: passing, Questions: questions}, nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}

// sortAttemptsRecentFirst orders attempts newest first, stable for
// equal timestamps.
func sortAttemptsRecentFirst(attempts []learner.AttemptRecord) {
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].Timestamp.After(attempts[j].Timestamp)
	})
}
