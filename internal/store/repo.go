package store

import (
	"context"
	"time"

	"github.com/arjunrao/learnpath/internal/learner"
	"github.com/arjunrao/learnpath/internal/pathplan"
)

// AttemptRepo provides append and query access to a learner's
// assessment attempt history.
type AttemptRepo interface {
	// Append records one completed attempt. The timestamp defaults to
	// now when zero.
	Append(ctx context.Context, learnerID string, rec learner.AttemptRecord) (string, error)

	// Recent returns up to limit attempts for the learner, most recent
	// first (0 = unlimited).
	Recent(ctx context.Context, learnerID string, limit int) ([]learner.AttemptRecord, error)

	// RecentScores returns the overall score percentages of the most
	// recent attempts, newest first.
	RecentScores(ctx context.Context, learnerID string, limit int) ([]float64, error)
}

// StoredPath is a persisted learning path snapshot.
type StoredPath struct {
	ID        string
	LearnerID string
	GoalID    string
	Active    bool
	CreatedAt time.Time
	Path      pathplan.Path
}

// PathRepo manages learning path snapshots. At most one snapshot per
// (learner, goal) pair is active at a time.
type PathRepo interface {
	// SaveActive stores a newly computed path as the active snapshot,
	// deactivating any prior active snapshot for the same pair in the
	// same transaction. Returns the new snapshot's ID.
	SaveActive(ctx context.Context, learnerID, goalID string, p pathplan.Path) (string, error)

	// Active returns the active snapshot for the pair, or nil if none.
	Active(ctx context.Context, learnerID, goalID string) (*StoredPath, error)

	// History returns all snapshots for the pair, newest first.
	History(ctx context.Context, learnerID, goalID string) ([]StoredPath, error)
}
