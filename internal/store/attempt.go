package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arjunrao/learnpath/ent"
	"github.com/arjunrao/learnpath/ent/attemptevent"
	"github.com/arjunrao/learnpath/internal/learner"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, learnerID string, rec learner.AttemptRecord) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("next sequence: %w", err)
	}

	id := uuid.NewString()
	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(id).
		SetLearnerID(learnerID).
		SetSkillScores(rec.SkillScores).
		SetScorePercentage(rec.ScorePercentage)

	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("save attempt event: %w", err)
	}
	return id, nil
}

func (r *attemptRepo) Recent(ctx context.Context, learnerID string, limit int) ([]learner.AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Order(ent.Desc(attemptevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]learner.AttemptRecord, len(events))
	for i, e := range events {
		records[i] = learner.AttemptRecord{
			SkillScores:     e.SkillScores,
			ScorePercentage: e.ScorePercentage,
			Timestamp:       e.Timestamp,
		}
	}
	return records, nil
}

func (r *attemptRepo) RecentScores(ctx context.Context, learnerID string, limit int) ([]float64, error) {
	records, err := r.Recent(ctx, learnerID, limit)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(records))
	for i, rec := range records {
		scores[i] = rec.ScorePercentage
	}
	return scores, nil
}
