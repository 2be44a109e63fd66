// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ChangeLifecycleEventUpdate is the builder for updating ChangeLifecycleEvent entities.
type ChangeLifecycleEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChangeLifecycleEventMutation
}

// Where appends a list predicates to the ChangeLifecycleEventUpdate builder.
func (_u *ChangeLifecycleEventUpdate) Where(ps ...predicate.ChangeLifecycleEvent) *ChangeLifecycleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ChangeLifecycleEventMutation object of the builder.
func (_u *ChangeLifecycleEventUpdate) Mutation() *ChangeLifecycleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangeLifecycleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeLifecycleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangeLifecycleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeLifecycleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangeLifecycleEventUpdate) check() error {
	if _u.mutation.ChangeCleared() && len(_u.mutation.ChangeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChangeLifecycleEvent.change"`)
	}
	return nil
}

func (_u *ChangeLifecycleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changelifecycleevent.Table, changelifecycleevent.Columns, sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FromStatusCleared() {
		_spec.ClearField(changelifecycleevent.FieldFromStatus, field.TypeString)
	}
	if _u.mutation.CheckpointIDCleared() {
		_spec.ClearField(changelifecycleevent.FieldCheckpointID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelifecycleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangeLifecycleEventUpdateOne is the builder for updating a single ChangeLifecycleEvent entity.
type ChangeLifecycleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangeLifecycleEventMutation
}

// Mutation returns the ChangeLifecycleEventMutation object of the builder.
func (_u *ChangeLifecycleEventUpdateOne) Mutation() *ChangeLifecycleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChangeLifecycleEventUpdate builder.
func (_u *ChangeLifecycleEventUpdateOne) Where(ps ...predicate.ChangeLifecycleEvent) *ChangeLifecycleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangeLifecycleEventUpdateOne) Select(field string, fields ...string) *ChangeLifecycleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChangeLifecycleEvent entity.
func (_u *ChangeLifecycleEventUpdateOne) Save(ctx context.Context) (*ChangeLifecycleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeLifecycleEventUpdateOne) SaveX(ctx context.Context) *ChangeLifecycleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangeLifecycleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeLifecycleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangeLifecycleEventUpdateOne) check() error {
	if _u.mutation.ChangeCleared() && len(_u.mutation.ChangeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChangeLifecycleEvent.change"`)
	}
	return nil
}

func (_u *ChangeLifecycleEventUpdateOne) sqlSave(ctx context.Context) (_node *ChangeLifecycleEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changelifecycleevent.Table, changelifecycleevent.Columns, sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChangeLifecycleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changelifecycleevent.FieldID)
		for _, f := range fields {
			if !changelifecycleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changelifecycleevent.FieldID {
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
	if _u.mutation.FromStatusCleared() {
		_spec.ClearField(changelifecycleevent.FieldFromStatus, field.TypeString)
	}
	if _u.mutation.CheckpointIDCleared() {
		_spec.ClearField(changelifecycleevent.FieldCheckpointID, field.TypeString)
	}
	_node = &ChangeLifecycleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelifecycleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
