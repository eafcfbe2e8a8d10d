// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arjunrao/learnpath/ent/attemptevent"
	"github.com/arjunrao/learnpath/ent/pathsnapshot"
	"github.com/arjunrao/learnpath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[1].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	pathsnapshotFields := schema.PathSnapshot{}.Fields()
	_ = pathsnapshotFields
	// pathsnapshotDescPathID is the schema descriptor for path_id field.
	pathsnapshotDescPathID := pathsnapshotFields[0].Descriptor()
	// pathsnapshot.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	pathsnapshot.PathIDValidator = pathsnapshotDescPathID.Validators[0].(func(string) error)
	// pathsnapshotDescLearnerID is the schema descriptor for learner_id field.
	pathsnapshotDescLearnerID := pathsnapshotFields[1].Descriptor()
	// pathsnapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	pathsnapshot.LearnerIDValidator = pathsnapshotDescLearnerID.Validators[0].(func(string) error)
	// pathsnapshotDescGoalID is the schema descriptor for goal_id field.
	pathsnapshotDescGoalID := pathsnapshotFields[2].Descriptor()
	// pathsnapshot.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	pathsnapshot.GoalIDValidator = pathsnapshotDescGoalID.Validators[0].(func(string) error)
	// pathsnapshotDescActive is the schema descriptor for active field.
	pathsnapshotDescActive := pathsnapshotFields[3].Descriptor()
	// pathsnapshot.DefaultActive holds the default value on creation for the active field.
	pathsnapshot.DefaultActive = pathsnapshotDescActive.Default.(bool)
	// pathsnapshotDescCreatedAt is the schema descriptor for created_at field.
	pathsnapshotDescCreatedAt := pathsnapshotFields[5].Descriptor()
	// pathsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	pathsnapshot.DefaultCreatedAt = pathsnapshotDescCreatedAt.Default.(func() time.Time)
}
