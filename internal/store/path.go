package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/arjunrao/learnpath/ent"
	"github.com/arjunrao/learnpath/ent/pathsnapshot"
	"github.com/arjunrao/learnpath/internal/pathplan"
)

// pathRepo implements PathRepo using the ent client.
type pathRepo struct {
	client *ent.Client
}

func (r *pathRepo) SaveActive(ctx context.Context, learnerID, goalID string, p pathplan.Path) (string, error) {
	dataMap, err := pathToMap(p)
	if err != nil {
		return "", fmt.Errorf("marshal path: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}

	// Deactivate the prior snapshot and insert the new one atomically
	// so a reader never sees zero or two active paths for the pair.
	_, err = tx.PathSnapshot.Update().
		Where(
			pathsnapshot.LearnerID(learnerID),
			pathsnapshot.GoalID(goalID),
			pathsnapshot.Active(true),
		).
		SetActive(false).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("deactivate prior path: %w", err)
	}

	id := uuid.NewString()
	_, err = tx.PathSnapshot.Create().
		SetPathID(id).
		SetLearnerID(learnerID).
		SetGoalID(goalID).
		SetActive(true).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("save path snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit path snapshot: %w", err)
	}
	return id, nil
}

func (r *pathRepo) Active(ctx context.Context, learnerID, goalID string) (*StoredPath, error) {
	s, err := r.client.PathSnapshot.Query().
		Where(
			pathsnapshot.LearnerID(learnerID),
			pathsnapshot.GoalID(goalID),
			pathsnapshot.Active(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query active path: %w", err)
	}
	return entPathToStored(s)
}

func (r *pathRepo) History(ctx context.Context, learnerID, goalID string) ([]StoredPath, error) {
	snaps, err := r.client.PathSnapshot.Query().
		Where(
			pathsnapshot.LearnerID(learnerID),
			pathsnapshot.GoalID(goalID),
		).
		Order(ent.Desc(pathsnapshot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query path history: %w", err)
	}

	out := make([]StoredPath, 0, len(snaps))
	for _, s := range snaps {
		sp, err := entPathToStored(s)
		if err != nil {
			return nil, err
		}
		out = append(out, *sp)
	}
	return out, nil
}

// pathToMap converts a Path to map[string]any for ent JSON storage.
func pathToMap(p pathplan.Path) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entPathToStored converts an ent PathSnapshot to a StoredPath.
func entPathToStored(s *ent.PathSnapshot) (*StoredPath, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var p pathplan.Path
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal path data: %w", err)
	}
	return &StoredPath{
		ID:        s.PathID,
		LearnerID: s.LearnerID,
		GoalID:    s.GoalID,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		Path:      p,
	}, nil
}
