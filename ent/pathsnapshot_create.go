// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arjunrao/learnpath/ent/pathsnapshot"
)

// PathSnapshotCreate is the builder for creating a PathSnapshot entity.
type PathSnapshotCreate struct {
	config
	mutation *PathSnapshotMutation
	hooks    []Hook
}

// SetPathID sets the "path_id" field.
func (_c *PathSnapshotCreate) SetPathID(v string) *PathSnapshotCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *PathSnapshotCreate) SetLearnerID(v string) *PathSnapshotCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *PathSnapshotCreate) SetGoalID(v string) *PathSnapshotCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *PathSnapshotCreate) SetActive(v bool) *PathSnapshotCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PathSnapshotCreate) SetNillableActive(v *bool) *PathSnapshotCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *PathSnapshotCreate) SetData(v map[string]interface{}) *PathSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PathSnapshotCreate) SetCreatedAt(v time.Time) *PathSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PathSnapshotCreate) SetNillableCreatedAt(v *time.Time) *PathSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PathSnapshotMutation object of the builder.
func (_c *PathSnapshotCreate) Mutation() *PathSnapshotMutation {
	return _c.mutation
}

// Save creates the PathSnapshot in the database.
func (_c *PathSnapshotCreate) Save(ctx context.Context) (*PathSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PathSnapshotCreate) SaveX(ctx context.Context) *PathSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PathSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := pathsnapshot.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pathsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PathSnapshotCreate) check() error {
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "PathSnapshot.path_id"`)}
	}
	if v, ok := _c.mutation.PathID(); ok {
		if err := pathsnapshot.PathIDValidator(v); err != nil {
			return &ValidationError{Name: "path_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.path_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PathSnapshot.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := pathsnapshot.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "PathSnapshot.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := pathsnapshot.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "PathSnapshot.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "PathSnapshot.active"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "PathSnapshot.data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PathSnapshot.created_at"`)}
	}
	return nil
}

func (_c *PathSnapshotCreate) sqlSave(ctx context.Context) (*PathSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PathSnapshotCreate) createSpec() (*PathSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &PathSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pathsnapshot.Table, sqlgraph.NewFieldSpec(pathsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(pathsnapshot.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(pathsnapshot.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(pathsnapshot.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(pathsnapshot.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(pathsnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pathsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PathSnapshotCreateBulk is the builder for creating many PathSnapshot entities in bulk.
type PathSnapshotCreateBulk struct {
	config
	err      error
	builders []*PathSnapshotCreate
}

// Save creates the PathSnapshot entities in the database.
func (_c *PathSnapshotCreateBulk) Save(ctx context.Context) ([]*PathSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PathSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PathSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PathSnapshotCreateBulk) SaveX(ctx context.Context) []*PathSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PathSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PathSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
