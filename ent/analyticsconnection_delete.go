// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// AnalyticsConnectionDelete is the builder for deleting a AnalyticsConnection entity.
type AnalyticsConnectionDelete struct {
	config
	hooks    []Hook
	mutation *AnalyticsConnectionMutation
}

// Where appends a list predicates to the AnalyticsConnectionDelete builder.
func (_d *AnalyticsConnectionDelete) Where(ps ...predicate.AnalyticsConnection) *AnalyticsConnectionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalyticsConnectionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyticsConnectionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalyticsConnectionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analyticsconnection.Table, sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString))
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

// AnalyticsConnectionDeleteOne is the builder for deleting a single AnalyticsConnection entity.
type AnalyticsConnectionDeleteOne struct {
	_d *AnalyticsConnectionDelete
}

// Where appends a list predicates to the AnalyticsConnectionDelete builder.
func (_d *AnalyticsConnectionDeleteOne) Where(ps ...predicate.AnalyticsConnection) *AnalyticsConnectionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalyticsConnectionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analyticsconnection.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalyticsConnectionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
