// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ChangeCheckpointDelete is the builder for deleting a ChangeCheckpoint entity.
type ChangeCheckpointDelete struct {
	config
	hooks    []Hook
	mutation *ChangeCheckpointMutation
}

// Where appends a list predicates to the ChangeCheckpointDelete builder.
func (_d *ChangeCheckpointDelete) Where(ps ...predicate.ChangeCheckpoint) *ChangeCheckpointDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChangeCheckpointDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChangeCheckpointDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChangeCheckpointDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(changecheckpoint.Table, sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChangeCheckpointDeleteOne is the builder for deleting a single ChangeCheckpoint entity.
type ChangeCheckpointDeleteOne struct {
	_d *ChangeCheckpointDelete
}

// Where appends a list predicates to the ChangeCheckpointDelete builder.
func (_d *ChangeCheckpointDeleteOne) Where(ps ...predicate.ChangeCheckpoint) *ChangeCheckpointDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChangeCheckpointDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{changecheckpoint.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChangeCheckpointDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
