// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// OutcomeFeedbackUpdate is the builder for updating OutcomeFeedback entities.
type OutcomeFeedbackUpdate struct {
	config
	hooks    []Hook
	mutation *OutcomeFeedbackMutation
}

// Where appends a list predicates to the OutcomeFeedbackUpdate builder.
func (_u *OutcomeFeedbackUpdate) Where(ps ...predicate.OutcomeFeedback) *OutcomeFeedbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetComment sets the "comment" field.
func (_u *OutcomeFeedbackUpdate) SetComment(v string) *OutcomeFeedbackUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *OutcomeFeedbackUpdate) SetNillableComment(v *string) *OutcomeFeedbackUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *OutcomeFeedbackUpdate) ClearComment() *OutcomeFeedbackUpdate {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the OutcomeFeedbackMutation object of the builder.
func (_u *OutcomeFeedbackUpdate) Mutation() *OutcomeFeedbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutcomeFeedbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeFeedbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutcomeFeedbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeFeedbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeFeedbackUpdate) check() error {
	if _u.mutation.ChangeCleared() && len(_u.mutation.ChangeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutcomeFeedback.change"`)
	}
	return nil
}

func (_u *OutcomeFeedbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomefeedback.Table, outcomefeedback.Columns, sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(outcomefeedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(outcomefeedback.FieldComment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutcomeFeedbackUpdateOne is the builder for updating a single OutcomeFeedback entity.
type OutcomeFeedbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutcomeFeedbackMutation
}

// SetComment sets the "comment" field.
func (_u *OutcomeFeedbackUpdateOne) SetComment(v string) *OutcomeFeedbackUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *OutcomeFeedbackUpdateOne) SetNillableComment(v *string) *OutcomeFeedbackUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *OutcomeFeedbackUpdateOne) ClearComment() *OutcomeFeedbackUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// Mutation returns the OutcomeFeedbackMutation object of the builder.
func (_u *OutcomeFeedbackUpdateOne) Mutation() *OutcomeFeedbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutcomeFeedbackUpdate builder.
func (_u *OutcomeFeedbackUpdateOne) Where(ps ...predicate.OutcomeFeedback) *OutcomeFeedbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutcomeFeedbackUpdateOne) Select(field string, fields ...string) *OutcomeFeedbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutcomeFeedback entity.
func (_u *OutcomeFeedbackUpdateOne) Save(ctx context.Context) (*OutcomeFeedback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeFeedbackUpdateOne) SaveX(ctx context.Context) *OutcomeFeedback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutcomeFeedbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeFeedbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeFeedbackUpdateOne) check() error {
	if _u.mutation.ChangeCleared() && len(_u.mutation.ChangeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutcomeFeedback.change"`)
	}
	return nil
}

func (_u *OutcomeFeedbackUpdateOne) sqlSave(ctx context.Context) (_node *OutcomeFeedback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomefeedback.Table, outcomefeedback.Columns, sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutcomeFeedback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outcomefeedback.FieldID)
		for _, f := range fields {
			if !outcomefeedback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outcomefeedback.FieldID {
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
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(outcomefeedback.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(outcomefeedback.FieldComment, field.TypeString)
	}
	_node = &OutcomeFeedback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomefeedback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
