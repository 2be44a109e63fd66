// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/predicate"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
)

// TrackedSuggestionDelete is the builder for deleting a TrackedSuggestion entity.
type TrackedSuggestionDelete struct {
	config
	hooks    []Hook
	mutation *TrackedSuggestionMutation
}

// Where appends a list predicates to the TrackedSuggestionDelete builder.
func (_d *TrackedSuggestionDelete) Where(ps ...predicate.TrackedSuggestion) *TrackedSuggestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TrackedSuggestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrackedSuggestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TrackedSuggestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(trackedsuggestion.Table, sqlgraph.NewFieldSpec(trackedsuggestion.FieldID, field.TypeString))
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

// TrackedSuggestionDeleteOne is the builder for deleting a single TrackedSuggestion entity.
type TrackedSuggestionDeleteOne struct {
	_d *TrackedSuggestionDelete
}

// Where appends a list predicates to the TrackedSuggestionDelete builder.
func (_d *TrackedSuggestionDeleteOne) Where(ps ...predicate.TrackedSuggestion) *TrackedSuggestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TrackedSuggestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{trackedsuggestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrackedSuggestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
