// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/predicate"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
)

// TrackedSuggestionUpdate is the builder for updating TrackedSuggestion entities.
type TrackedSuggestionUpdate struct {
	config
	hooks    []Hook
	mutation *TrackedSuggestionMutation
}

// Where appends a list predicates to the TrackedSuggestionUpdate builder.
func (_u *TrackedSuggestionUpdate) Where(ps ...predicate.TrackedSuggestion) *TrackedSuggestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TrackedSuggestionUpdate) SetTitle(v string) *TrackedSuggestionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TrackedSuggestionUpdate) SetNillableTitle(v *string) *TrackedSuggestionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetElement sets the "element" field.
func (_u *TrackedSuggestionUpdate) SetElement(v string) *TrackedSuggestionUpdate {
	_u.mutation.SetElement(v)
	return _u
}

// SetNillableElement sets the "element" field if the given value is not nil.
func (_u *TrackedSuggestionUpdate) SetNillableElement(v *string) *TrackedSuggestionUpdate {
	if v != nil {
		_u.SetElement(*v)
	}
	return _u
}

// SetSuggestedFix sets the "suggested_fix" field.
func (_u *TrackedSuggestionUpdate) SetSuggestedFix(v string) *TrackedSuggestionUpdate {
	_u.mutation.SetSuggestedFix(v)
	return _u
}

// SetNillableSuggestedFix sets the "suggested_fix" field if the given value is not nil.
func (_u *TrackedSuggestionUpdate) SetNillableSuggestedFix(v *string) *TrackedSuggestionUpdate {
	if v != nil {
		_u.SetSuggestedFix(*v)
	}
	return _u
}

// SetImpact sets the "impact" field.
func (_u *TrackedSuggestionUpdate) SetImpact(v trackedsuggestion.Impact) *TrackedSuggestionUpdate {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *TrackedSuggestionUpdate) SetNillableImpact(v *trackedsuggestion.Impact) *TrackedSuggestionUpdate {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrackedSuggestionUpdate) SetStatus(v trackedsuggestion.Status) *TrackedSuggestionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrackedSuggestionUpdate) SetNillableStatus(v *trackedsuggestion.Status) *TrackedSuggestionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimesSuggested sets the "times_suggested" field.
func (_u *TrackedSuggestionUpdate) SetTimesSuggested(v int) *TrackedSuggestionUpdate {
	_u.mutation.ResetTimesSuggested()
	_u.mutation.SetTimesSuggested(v)
	return _u
}

// SetNillableTimesSuggested sets the "times_suggested" field if the given value is not nil.
func (_u *TrackedSuggestionUpdate) SetNillableTimesSuggested(v *int) *TrackedSuggestionUpdate {
	if v != nil {
		_u.SetTimesSuggested(*v)
	}
	return _u
}

// AddTimesSuggested adds value to the "times_suggested" field.
func (_u *TrackedSuggestionUpdate) AddTimesSuggested(v int) *TrackedSuggestionUpdate {
	_u.mutation.AddTimesSuggested(v)
	return _u
}

// SetLastSuggestedAt sets the "last_suggested_at" field.
func (_u *TrackedSuggestionUpdate) SetLastSuggestedAt(v time.Time) *TrackedSuggestionUpdate {
	_u.mutation.SetLastSuggestedAt(v)
	return _u
}

// SetNillableLastSuggestedAt sets the "last_suggested_at" field if the given value is not nil.
func (_u *TrackedSuggestionUpdate) SetNillableLastSuggestedAt(v *time.Time) *TrackedSuggestionUpdate {
	if v != nil {
		_u.SetLastSuggestedAt(*v)
	}
	return _u
}

// Mutation returns the TrackedSuggestionMutation object of the builder.
func (_u *TrackedSuggestionUpdate) Mutation() *TrackedSuggestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrackedSuggestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackedSuggestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrackedSuggestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackedSuggestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackedSuggestionUpdate) check() error {
	if v, ok := _u.mutation.Impact(); ok {
		if err := trackedsuggestion.ImpactValidator(v); err != nil {
			return &ValidationError{Name: "impact", err: fmt.Errorf(`ent: validator failed for field "TrackedSuggestion.impact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := trackedsuggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrackedSuggestion.status": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackedSuggestion.page"`)
	}
	return nil
}

func (_u *TrackedSuggestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackedsuggestion.Table, trackedsuggestion.Columns, sqlgraph.NewFieldSpec(trackedsuggestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(trackedsuggestion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Element(); ok {
		_spec.SetField(trackedsuggestion.FieldElement, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedFix(); ok {
		_spec.SetField(trackedsuggestion.FieldSuggestedFix, field.TypeString, value)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(trackedsuggestion.FieldImpact, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trackedsuggestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimesSuggested(); ok {
		_spec.SetField(trackedsuggestion.FieldTimesSuggested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSuggested(); ok {
		_spec.AddField(trackedsuggestion.FieldTimesSuggested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuggestedAt(); ok {
		_spec.SetField(trackedsuggestion.FieldLastSuggestedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackedsuggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrackedSuggestionUpdateOne is the builder for updating a single TrackedSuggestion entity.
type TrackedSuggestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackedSuggestionMutation
}

// SetTitle sets the "title" field.
func (_u *TrackedSuggestionUpdateOne) SetTitle(v string) *TrackedSuggestionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TrackedSuggestionUpdateOne) SetNillableTitle(v *string) *TrackedSuggestionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetElement sets the "element" field.
func (_u *TrackedSuggestionUpdateOne) SetElement(v string) *TrackedSuggestionUpdateOne {
	_u.mutation.SetElement(v)
	return _u
}

// SetNillableElement sets the "element" field if the given value is not nil.
func (_u *TrackedSuggestionUpdateOne) SetNillableElement(v *string) *TrackedSuggestionUpdateOne {
	if v != nil {
		_u.SetElement(*v)
	}
	return _u
}

// SetSuggestedFix sets the "suggested_fix" field.
func (_u *TrackedSuggestionUpdateOne) SetSuggestedFix(v string) *TrackedSuggestionUpdateOne {
	_u.mutation.SetSuggestedFix(v)
	return _u
}

// SetNillableSuggestedFix sets the "suggested_fix" field if the given value is not nil.
func (_u *TrackedSuggestionUpdateOne) SetNillableSuggestedFix(v *string) *TrackedSuggestionUpdateOne {
	if v != nil {
		_u.SetSuggestedFix(*v)
	}
	return _u
}

// SetImpact sets the "impact" field.
func (_u *TrackedSuggestionUpdateOne) SetImpact(v trackedsuggestion.Impact) *TrackedSuggestionUpdateOne {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *TrackedSuggestionUpdateOne) SetNillableImpact(v *trackedsuggestion.Impact) *TrackedSuggestionUpdateOne {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrackedSuggestionUpdateOne) SetStatus(v trackedsuggestion.Status) *TrackedSuggestionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrackedSuggestionUpdateOne) SetNillableStatus(v *trackedsuggestion.Status) *TrackedSuggestionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimesSuggested sets the "times_suggested" field.
func (_u *TrackedSuggestionUpdateOne) SetTimesSuggested(v int) *TrackedSuggestionUpdateOne {
	_u.mutation.ResetTimesSuggested()
	_u.mutation.SetTimesSuggested(v)
	return _u
}

// SetNillableTimesSuggested sets the "times_suggested" field if the given value is not nil.
func (_u *TrackedSuggestionUpdateOne) SetNillableTimesSuggested(v *int) *TrackedSuggestionUpdateOne {
	if v != nil {
		_u.SetTimesSuggested(*v)
	}
	return _u
}

// AddTimesSuggested adds value to the "times_suggested" field.
func (_u *TrackedSuggestionUpdateOne) AddTimesSuggested(v int) *TrackedSuggestionUpdateOne {
	_u.mutation.AddTimesSuggested(v)
	return _u
}

// SetLastSuggestedAt sets the "last_suggested_at" field.
func (_u *TrackedSuggestionUpdateOne) SetLastSuggestedAt(v time.Time) *TrackedSuggestionUpdateOne {
	_u.mutation.SetLastSuggestedAt(v)
	return _u
}

// SetNillableLastSuggestedAt sets the "last_suggested_at" field if the given value is not nil.
func (_u *TrackedSuggestionUpdateOne) SetNillableLastSuggestedAt(v *time.Time) *TrackedSuggestionUpdateOne {
	if v != nil {
		_u.SetLastSuggestedAt(*v)
	}
	return _u
}

// Mutation returns the TrackedSuggestionMutation object of the builder.
func (_u *TrackedSuggestionUpdateOne) Mutation() *TrackedSuggestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrackedSuggestionUpdate builder.
func (_u *TrackedSuggestionUpdateOne) Where(ps ...predicate.TrackedSuggestion) *TrackedSuggestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrackedSuggestionUpdateOne) Select(field string, fields ...string) *TrackedSuggestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrackedSuggestion entity.
func (_u *TrackedSuggestionUpdateOne) Save(ctx context.Context) (*TrackedSuggestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackedSuggestionUpdateOne) SaveX(ctx context.Context) *TrackedSuggestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrackedSuggestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackedSuggestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackedSuggestionUpdateOne) check() error {
	if v, ok := _u.mutation.Impact(); ok {
		if err := trackedsuggestion.ImpactValidator(v); err != nil {
			return &ValidationError{Name: "impact", err: fmt.Errorf(`ent: validator failed for field "TrackedSuggestion.impact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := trackedsuggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrackedSuggestion.status": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackedSuggestion.page"`)
	}
	return nil
}

func (_u *TrackedSuggestionUpdateOne) sqlSave(ctx context.Context) (_node *TrackedSuggestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackedsuggestion.Table, trackedsuggestion.Columns, sqlgraph.NewFieldSpec(trackedsuggestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrackedSuggestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trackedsuggestion.FieldID)
		for _, f := range fields {
			if !trackedsuggestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trackedsuggestion.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(trackedsuggestion.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Element(); ok {
		_spec.SetField(trackedsuggestion.FieldElement, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuggestedFix(); ok {
		_spec.SetField(trackedsuggestion.FieldSuggestedFix, field.TypeString, value)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(trackedsuggestion.FieldImpact, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trackedsuggestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimesSuggested(); ok {
		_spec.SetField(trackedsuggestion.FieldTimesSuggested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSuggested(); ok {
		_spec.AddField(trackedsuggestion.FieldTimesSuggested, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuggestedAt(); ok {
		_spec.SetField(trackedsuggestion.FieldLastSuggestedAt, field.TypeTime, value)
	}
	_node = &TrackedSuggestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackedsuggestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
