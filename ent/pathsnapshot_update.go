// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunrao/learnpath/ent/pathsnapshot"
	"github.com/arjunrao/learnpath/ent/predicate"
)

// PathSnapshotUpdate is the builder for updating PathSnapshot entities.
type PathSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PathSnapshotMutation
}

// Where appends a list predicates to the PathSnapshotUpdate builder.
func (_u *PathSnapshotUpdate) Where(ps ...predicate.PathSnapshot) *PathSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPathID sets the "path_id" field.
func (_u *PathSnapshotUpdate) SetPathID(v string) *PathSnapshotUpdate {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathSnapshotUpdate) SetNillablePathID(v *string) *PathSnapshotUpdate {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathSnapshotUpdate) SetLearnerID(v string) *PathSnapshotUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathSnapshotUpdate) SetNillableLearnerID(v *string) *PathSnapshotUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *PathSnapshotUpdate) SetGoalID(v string) *PathSnapshotUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *PathSnapshotUpdate) SetNillableGoalID(v *string) *PathSnapshotUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PathSnapshotUpdate) SetActive(v bool) *PathSnapshotUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PathSnapshotUpdate) SetNillableActive(v *bool) *PathSnapshotUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PathSnapshotUpdate) SetData(v map[string]interface{}) *PathSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PathSnapshotMutation object of the builder.
func (_u *PathSnapshotUpdate) Mutation() *PathSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PathSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PathSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathSnapshotUpdate) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := pathsnapshot.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathsnapshot.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := pathsnapshot.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.goal_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PathSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathsnapshot.Table, pathsnapshot.Columns, sqlgraph.NewFieldSpec(pathsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathsnapshot.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathsnapshot.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(pathsnapshot.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(pathsnapshot.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(pathsnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PathSnapshotUpdateOne is the builder for updating a single PathSnapshot entity.
type PathSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PathSnapshotMutation
}

// SetPathID sets the "path_id" field.
func (_u *PathSnapshotUpdateOne) SetPathID(v string) *PathSnapshotUpdateOne {
	_u.mutation.SetPathID(v)
	return _u
}

// SetNillablePathID sets the "path_id" field if the given value is not nil.
func (_u *PathSnapshotUpdateOne) SetNillablePathID(v *string) *PathSnapshotUpdateOne {
	if v != nil {
		_u.SetPathID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PathSnapshotUpdateOne) SetLearnerID(v string) *PathSnapshotUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PathSnapshotUpdateOne) SetNillableLearnerID(v *string) *PathSnapshotUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *PathSnapshotUpdateOne) SetGoalID(v string) *PathSnapshotUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *PathSnapshotUpdateOne) SetNillableGoalID(v *string) *PathSnapshotUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *PathSnapshotUpdateOne) SetActive(v bool) *PathSnapshotUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PathSnapshotUpdateOne) SetNillableActive(v *bool) *PathSnapshotUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PathSnapshotUpdateOne) SetData(v map[string]interface{}) *PathSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PathSnapshotMutation object of the builder.
func (_u *PathSnapshotUpdateOne) Mutation() *PathSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the PathSnapshotUpdate builder.
func (_u *PathSnapshotUpdateOne) Where(ps ...predicate.PathSnapshot) *PathSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PathSnapshotUpdateOne) Select(field string, fields ...string) *PathSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PathSnapshot entity.
func (_u *PathSnapshotUpdateOne) Save(ctx context.Context) (*PathSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PathSnapshotUpdateOne) SaveX(ctx context.Context) *PathSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PathSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PathSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PathSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.PathID(); ok {
		if err := pathsnapshot.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.path_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := pathsnapshot.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := pathsnapshot.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.goal_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PathSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PathSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pathsnapshot.Table, pathsnapshot.Columns, sqlgraph.NewFieldSpec(pathsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PathSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathsnapshot.FieldID)
		for _, f := range fields {
			if !pathsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pathsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PathID(); ok {
		_spec.SetField(pathsnapshot.FieldPathID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(pathsnapshot.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(pathsnapshot.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(pathsnapshot.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(pathsnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &PathSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pathsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
