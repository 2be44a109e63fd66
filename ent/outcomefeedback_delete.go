// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// OutcomeFeedbackDelete is the builder for deleting a OutcomeFeedback entity.
type OutcomeFeedbackDelete struct {
	config
	hooks    []Hook
	mutation *OutcomeFeedbackMutation
}

// Where appends a list predicates to the OutcomeFeedbackDelete builder.
func (_d *OutcomeFeedbackDelete) Where(ps ...predicate.OutcomeFeedback) *OutcomeFeedbackDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OutcomeFeedbackDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OutcomeFeedbackDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OutcomeFeedbackDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(outcomefeedback.Table, sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString))
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

// OutcomeFeedbackDeleteOne is the builder for deleting a single OutcomeFeedback entity.
type OutcomeFeedbackDeleteOne struct {
	_d *OutcomeFeedbackDelete
}

// Where appends a list predicates to the OutcomeFeedbackDelete builder.
func (_d *OutcomeFeedbackDeleteOne) Where(ps ...predicate.OutcomeFeedback) *OutcomeFeedbackDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OutcomeFeedbackDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{outcomefeedback.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OutcomeFeedbackDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
