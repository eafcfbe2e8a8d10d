// Code generated by ent, DO NOT EDIT.

package pathsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arjunrao/learnpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLTE(FieldID, id))
}

// PathID applies equality check predicate on the "path_id" field. It's identical to PathIDEQ.
func PathID(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldPathID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldLearnerID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldGoalID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// PathIDEQ applies the EQ predicate on the "path_id" field.
func PathIDEQ(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldPathID, v))
}

// PathIDNEQ applies the NEQ predicate on the "path_id" field.
func PathIDNEQ(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNEQ(FieldPathID, v))
}

// PathIDIn applies the In predicate on the "path_id" field.
func PathIDIn(vs ...string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldIn(FieldPathID, vs...))
}

// PathIDNotIn applies the NotIn predicate on the "path_id" field.
func PathIDNotIn(vs ...string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNotIn(FieldPathID, vs...))
}

// PathIDGT applies the GT predicate on the "path_id" field.
func PathIDGT(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGT(FieldPathID, v))
}

// PathIDGTE applies the GTE predicate on the "path_id" field.
func PathIDGTE(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGTE(FieldPathID, v))
}

// PathIDLT applies the LT predicate on the "path_id" field.
func PathIDLT(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLT(FieldPathID, v))
}

// PathIDLTE applies the LTE predicate on the "path_id" field.
func PathIDLTE(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLTE(FieldPathID, v))
}

// PathIDContains applies the Contains predicate on the "path_id" field.
func PathIDContains(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldContains(FieldPathID, v))
}

// PathIDHasPrefix applies the HasPrefix predicate on the "path_id" field.
func PathIDHasPrefix(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldHasPrefix(FieldPathID, v))
}

// PathIDHasSuffix applies the HasSuffix predicate on the "path_id" field.
func PathIDHasSuffix(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldHasSuffix(FieldPathID, v))
}

// PathIDEqualFold applies the EqualFold predicate on the "path_id" field.
func PathIDEqualFold(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEqualFold(FieldPathID, v))
}

// PathIDContainsFold applies the ContainsFold predicate on the "path_id" field.
func PathIDContainsFold(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldContainsFold(FieldPathID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldContainsFold(FieldLearnerID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldContainsFold(FieldGoalID, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathSnapshot) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathSnapshot) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathSnapshot) predicate.PathSnapshot {
	return predicate.PathSnapshot(sql.NotPredicates(p))
}
