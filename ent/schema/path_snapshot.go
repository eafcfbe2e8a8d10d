package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathSnapshot stores a computed learning path for a learner and goal.
// At most one snapshot per (learner, goal) is active: saving a new path
// deactivates the prior one in the same transaction.
type PathSnapshot struct {
	ent.Schema
}

func (PathSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("path_id").
			NotEmpty().
			Unique().
			Comment("Stable identifier for this snapshot"),
		field.String("learner_id").
			NotEmpty().
			Comment("Learner the path was computed for"),
		field.String("goal_id").
			NotEmpty().
			Comment("Goal the path works toward"),
		field.Bool("active").
			Default(true).
			Comment("Whether this is the current path for the pair"),
		field.JSON("data", map[string]any{}).
			Comment("Serialized steps and metadata"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PathSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "goal_id"),
		index.Fields("learner_id", "goal_id", "active"),
	}
}
