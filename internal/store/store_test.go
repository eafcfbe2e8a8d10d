package store

import (
	"context"
	"testing"
	"time"

	"github.com/arjunrao/learnpath/ent/pathsnapshot"
	"github.com/arjunrao/learnpath/internal/learner"
	"github.com/arjunrao/learnpath/internal/pathplan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	// No attempts yet.
	records, err := repo.Recent(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no attempts, got %d", len(records))
	}

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		_, err := repo.Append(ctx, "alice", learner.AttemptRecord{
			SkillScores:     map[string]float64{"sql": float64(i) / 10},
			ScorePercentage: float64(60 + i*10),
			Timestamp:       base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Most recent first.
	records, err = repo.Recent(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("attempts = %d, want 3", len(records))
	}
	if records[0].ScorePercentage != 80 {
		t.Errorf("newest score = %v, want 80", records[0].ScorePercentage)
	}
	if records[2].ScorePercentage != 60 {
		t.Errorf("oldest score = %v, want 60", records[2].ScorePercentage)
	}

	// Limit trims from the old end.
	records, err = repo.Recent(ctx, "alice", 2)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("limited attempts = %d, want 2", len(records))
	}
	if records[0].ScorePercentage != 80 {
		t.Errorf("limited newest score = %v, want 80", records[0].ScorePercentage)
	}
}

func TestAttemptRecentScopedToLearner(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	if _, err := repo.Append(ctx, "alice", learner.AttemptRecord{ScorePercentage: 90}); err != nil {
		t.Fatalf("append alice: %v", err)
	}
	if _, err := repo.Append(ctx, "bob", learner.AttemptRecord{ScorePercentage: 40}); err != nil {
		t.Fatalf("append bob: %v", err)
	}

	scores, err := repo.RecentScores(ctx, "alice", 0)
	if err != nil {
		t.Fatalf("recent scores: %v", err)
	}
	if len(scores) != 1 || scores[0] != 90 {
		t.Errorf("alice scores = %v, want [90]", scores)
	}
}

func TestPathSaveActiveSwapsPrior(t *testing.T) {
	s := openTestStore(t)
	repo := s.Paths()
	ctx := context.Background()

	// No path yet.
	sp, err := repo.Active(ctx, "alice", "backend")
	if err != nil {
		t.Fatalf("active (empty): %v", err)
	}
	if sp != nil {
		t.Fatal("expected nil path when none exist")
	}

	first := pathplan.Path{
		Steps: []pathplan.Step{{Sequence: 1, CourseID: "c1", Title: "SQL Basics", DurationHours: 10, CumulativeHours: 10}},
		Meta:  pathplan.Metadata{TotalCourses: 1, TotalHours: 10},
	}
	firstID, err := repo.SaveActive(ctx, "alice", "backend", first)
	if err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := pathplan.Path{
		Steps: []pathplan.Step{{Sequence: 1, CourseID: "c2", Title: "Advanced SQL", DurationHours: 20, CumulativeHours: 20}},
		Meta:  pathplan.Metadata{TotalCourses: 1, TotalHours: 20},
	}
	secondID, err := repo.SaveActive(ctx, "alice", "backend", second)
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if firstID == secondID {
		t.Fatal("expected distinct snapshot IDs")
	}

	// Exactly one active snapshot, and it is the second.
	sp, err = repo.Active(ctx, "alice", "backend")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if sp == nil {
		t.Fatal("expected non-nil active path")
	}
	if sp.ID != secondID {
		t.Errorf("active ID = %q, want %q", sp.ID, secondID)
	}
	if len(sp.Path.Steps) != 1 || sp.Path.Steps[0].CourseID != "c2" {
		t.Errorf("active path steps = %+v, want single c2 step", sp.Path.Steps)
	}

	count, err := s.Client().PathSnapshot.Query().
		Where(
			pathsnapshot.LearnerID("alice"),
			pathsnapshot.GoalID("backend"),
			pathsnapshot.Active(true),
		).
		Count(ctx)
	if err != nil {
		t.Fatalf("count active: %v", err)
	}
	if count != 1 {
		t.Errorf("active snapshots = %d, want 1", count)
	}

	// History has both, newest first.
	hist, err := repo.History(ctx, "alice", "backend")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("history = %d snapshots, want 2", len(hist))
	}
}

func TestPathActiveScopedToGoal(t *testing.T) {
	s := openTestStore(t)
	repo := s.Paths()
	ctx := context.Background()

	p := pathplan.Path{Meta: pathplan.Metadata{TotalCourses: 0}}
	if _, err := repo.SaveActive(ctx, "alice", "backend", p); err != nil {
		t.Fatalf("save backend: %v", err)
	}

	sp, err := repo.Active(ctx, "alice", "frontend")
	if err != nil {
		t.Fatalf("active other goal: %v", err)
	}
	if sp != nil {
		t.Error("expected nil path for untouched goal")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}
