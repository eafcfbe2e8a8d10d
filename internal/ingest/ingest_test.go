package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunrao/learnpath/internal/adaptive"
	"github.com/arjunrao/learnpath/internal/catalog"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCatalog(t *testing.T) {
	p := writeTemp(t, "catalog.json", `{
		"courses": [
			{"id": "c2", "title": "Advanced SQL", "difficulty": "advanced",
			 "skills_taught": ["sql"], "prerequisites": ["sql-basics"],
			 "duration_hours": 20, "enrollments": 150},
			{"id": "c1", "title": "SQL Basics", "difficulty": "beginner",
			 "skills_taught": ["sql-basics"], "duration_hours": 10}
		]
	}`)

	cat, err := LoadCatalog(p)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	c, err := cat.Get("c2")
	require.NoError(t, err)
	assert.Equal(t, catalog.Advanced, c.Difficulty)
	assert.Equal(t, []string{"sql-basics"}, c.Prerequisites)
}

func TestLoadCatalogRejectsBadSchema(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"courses": [`},
		{"missing courses", `{}`},
		{"bad difficulty", `{"courses": [{"id": "c1", "title": "A", "difficulty": "extreme"}]}`},
		{"unknown field", `{"courses": [{"id": "c1", "title": "A", "difficulty": "beginner", "price": 10}]}`},
		{"negative duration", `{"courses": [{"id": "c1", "title": "A", "difficulty": "beginner", "duration_hours": -5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeTemp(t, "catalog.json", tt.content)
			_, err := LoadCatalog(p)
			require.Error(t, err)

			var serr *SchemaError
			require.True(t, errors.As(err, &serr), "want SchemaError, got %T", err)
			assert.Equal(t, "catalog", serr.Name)
		})
	}
}

func TestLoadLearner(t *testing.T) {
	p := writeTemp(t, "learner.json", `{
		"current_skills": {"python": 6.5, "sql": 3},
		"study_hours_per_week": 10,
		"completed_courses": ["c0"],
		"goals": [
			{"description": "Backend role", "target_role": "backend engineer",
			 "target_skills": ["sql", "docker"]},
			{"description": "Cloud", "target_skills": ["aws"]}
		],
		"attempts": [
			{"skill_scores": {"sql": 0.4}, "score_percentage": 55,
			 "timestamp": "2026-01-10T10:00:00Z"},
			{"skill_scores": {"sql": 0.9}, "score_percentage": 90,
			 "timestamp": "2026-02-10T10:00:00Z"}
		]
	}`)

	lrn, err := LoadLearner(p)
	require.NoError(t, err)

	// Target skills are the union of all goal targets.
	assert.Equal(t, map[string]bool{"sql": true, "docker": true, "aws": true}, lrn.Context.TargetSkills)

	// Absent preferred difficulty defaults to intermediate.
	assert.Equal(t, catalog.Intermediate, lrn.Context.PreferredDifficulty)

	// Attempts are normalized most recent first.
	require.Len(t, lrn.Attempts, 2)
	assert.Equal(t, 90.0, lrn.Attempts[0].ScorePercentage)
	assert.Equal(t, 55.0, lrn.Attempts[1].ScorePercentage)

	assert.True(t, lrn.Context.CompletedCourseIDs["c0"])
	require.Len(t, lrn.Goals, 2)
	assert.Equal(t, "backend engineer", lrn.Goals[0].TargetRole)
}

func TestLoadLearnerRejectsOutOfRange(t *testing.T) {
	p := writeTemp(t, "learner.json", `{"current_skills": {"python": 12}}`)
	_, err := LoadLearner(p)
	require.Error(t, err)

	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "learner", serr.Name)
}

func TestLoadLearnerRejectsBadTimestamp(t *testing.T) {
	p := writeTemp(t, "learner.json", `{
		"attempts": [{"skill_scores": {"sql": 0.5}, "score_percentage": 50,
		              "timestamp": "yesterday"}]
	}`)
	_, err := LoadLearner(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp")
}

func TestLoadAssessment(t *testing.T) {
	p := writeTemp(t, "assessment.json", `{
		"questions": [
			{"id": "q1", "text": "2+2?", "tier": "easy",
			 "options": ["3", "4"], "skills": ["arithmetic"], "difficulty": 2,
			 "answer": {"kind": "single_choice", "answer": "4"}},
			{"id": "q2", "text": "Pick primes", "tier": "hard", "points": 20,
			 "options": ["2", "3", "4"],
			 "answer": {"kind": "multiple_select", "answers": ["2", "3"]}}
		]
	}`)

	a, err := LoadAssessment(p)
	require.NoError(t, err)

	// Absent passing score defaults to 60.
	assert.Equal(t, 60.0, a.PassingScore)
	require.Len(t, a.Questions, 2)

	q := a.Questions[0]
	assert.Equal(t, adaptive.TierEasy, q.Tier)
	assert.Equal(t, adaptive.KindSingleChoice, q.Key.Kind)
	assert.Equal(t, 2, q.DiagnosticDifficulty)
	assert.Equal(t, 10, q.BasePoints())

	assert.Equal(t, 20, a.Questions[1].BasePoints())
	assert.Equal(t, []string{"2", "3"}, a.Questions[1].Key.Answers)
}

func TestLoadAssessmentRejectsBadTier(t *testing.T) {
	p := writeTemp(t, "assessment.json", `{
		"questions": [{"id": "q1", "text": "?", "tier": "impossible",
		               "answer": {"kind": "single_choice", "answer": "x"}}]
	}`)
	_, err := LoadAssessment(p)
	require.Error(t, err)

	var serr *SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "assessment", serr.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}
