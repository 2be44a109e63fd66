// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ChangeLifecycleEventDelete is the builder for deleting a ChangeLifecycleEvent entity.
type ChangeLifecycleEventDelete struct {
	config
	hooks    []Hook
	mutation *ChangeLifecycleEventMutation
}

// Where appends a list predicates to the ChangeLifecycleEventDelete builder.
func (_d *ChangeLifecycleEventDelete) Where(ps ...predicate.ChangeLifecycleEvent) *ChangeLifecycleEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChangeLifecycleEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChangeLifecycleEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChangeLifecycleEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(changelifecycleevent.Table, sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString))
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

// ChangeLifecycleEventDeleteOne is the builder for deleting a single ChangeLifecycleEvent entity.
type ChangeLifecycleEventDeleteOne struct {
	_d *ChangeLifecycleEventDelete
}

// Where appends a list predicates to the ChangeLifecycleEventDelete builder.
func (_d *ChangeLifecycleEventDeleteOne) Where(ps ...predicate.ChangeLifecycleEvent) *ChangeLifecycleEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChangeLifecycleEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{changelifecycleevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChangeLifecycleEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
