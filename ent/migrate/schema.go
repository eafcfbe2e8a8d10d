// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_scores", Type: field.TypeJSON},
		{Name: "score_percentage", Type: field.TypeFloat64},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// PathSnapshotsColumns holds the columns for the "path_snapshots" table.
	PathSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "path_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PathSnapshotsTable holds the schema information for the "path_snapshots" table.
	PathSnapshotsTable = &schema.Table{
		Name:       "path_snapshots",
		Columns:    PathSnapshotsColumns,
		PrimaryKey: []*schema.Column{PathSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathsnapshot_learner_id_goal_id",
				Unique:  false,
				Columns: []*schema.Column{PathSnapshotsColumns[2], PathSnapshotsColumns[3]},
			},
			{
				Name:    "pathsnapshot_learner_id_goal_id_active",
				Unique:  false,
				Columns: []*schema.Column{PathSnapshotsColumns[2], PathSnapshotsColumns[3], PathSnapshotsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		PathSnapshotsTable,
	}
)

func init() {
}
