package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed assessment attempt for a learner.
// Attempt history feeds skill-level estimation and the difficulty dial,
// so events are append-only and ordered by the global sequence.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("Stable identifier for this attempt"),
		field.String("learner_id").
			NotEmpty().
			Comment("Learner the attempt belongs to"),
		field.JSON("skill_scores", map[string]float64{}).
			Comment("Per-skill accuracy in [0,1] for this attempt"),
		field.Float("score_percentage").
			Comment("Overall attempt score in [0,100]"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
