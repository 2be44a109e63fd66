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
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// AnalyticsConnectionUpdate is the builder for updating AnalyticsConnection entities.
type AnalyticsConnectionUpdate struct {
	config
	hooks    []Hook
	mutation *AnalyticsConnectionMutation
}

// Where appends a list predicates to the AnalyticsConnectionUpdate builder.
func (_u *AnalyticsConnectionUpdate) Where(ps ...predicate.AnalyticsConnection) *AnalyticsConnectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (_u *AnalyticsConnectionUpdate) SetEncryptedCredentials(v []byte) *AnalyticsConnectionUpdate {
	_u.mutation.SetEncryptedCredentials(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalyticsConnectionUpdate) SetStatus(v analyticsconnection.Status) *AnalyticsConnectionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalyticsConnectionUpdate) SetNillableStatus(v *analyticsconnection.Status) *AnalyticsConnectionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalyticsConnectionUpdate) SetUpdatedAt(v time.Time) *AnalyticsConnectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AnalyticsConnectionMutation object of the builder.
func (_u *AnalyticsConnectionUpdate) Mutation() *AnalyticsConnectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalyticsConnectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsConnectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalyticsConnectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsConnectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalyticsConnectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analyticsconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsConnectionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analyticsconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalyticsConnection.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyticsConnection.user"`)
	}
	return nil
}

func (_u *AnalyticsConnectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsconnection.Table, analyticsconnection.Columns, sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EncryptedCredentials(); ok {
		_spec.SetField(analyticsconnection.FieldEncryptedCredentials, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analyticsconnection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analyticsconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalyticsConnectionUpdateOne is the builder for updating a single AnalyticsConnection entity.
type AnalyticsConnectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalyticsConnectionMutation
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (_u *AnalyticsConnectionUpdateOne) SetEncryptedCredentials(v []byte) *AnalyticsConnectionUpdateOne {
	_u.mutation.SetEncryptedCredentials(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalyticsConnectionUpdateOne) SetStatus(v analyticsconnection.Status) *AnalyticsConnectionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalyticsConnectionUpdateOne) SetNillableStatus(v *analyticsconnection.Status) *AnalyticsConnectionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AnalyticsConnectionUpdateOne) SetUpdatedAt(v time.Time) *AnalyticsConnectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AnalyticsConnectionMutation object of the builder.
func (_u *AnalyticsConnectionUpdateOne) Mutation() *AnalyticsConnectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalyticsConnectionUpdate builder.
func (_u *AnalyticsConnectionUpdateOne) Where(ps ...predicate.AnalyticsConnection) *AnalyticsConnectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalyticsConnectionUpdateOne) Select(field string, fields ...string) *AnalyticsConnectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalyticsConnection entity.
func (_u *AnalyticsConnectionUpdateOne) Save(ctx context.Context) (*AnalyticsConnection, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalyticsConnectionUpdateOne) SaveX(ctx context.Context) *AnalyticsConnection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalyticsConnectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalyticsConnectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AnalyticsConnectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := analyticsconnection.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalyticsConnectionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analyticsconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalyticsConnection.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalyticsConnection.user"`)
	}
	return nil
}

func (_u *AnalyticsConnectionUpdateOne) sqlSave(ctx context.Context) (_node *AnalyticsConnection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analyticsconnection.Table, analyticsconnection.Columns, sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalyticsConnection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analyticsconnection.FieldID)
		for _, f := range fields {
			if !analyticsconnection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analyticsconnection.FieldID {
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
	if value, ok := _u.mutation.EncryptedCredentials(); ok {
		_spec.SetField(analyticsconnection.FieldEncryptedCredentials, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analyticsconnection.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(analyticsconnection.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AnalyticsConnection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analyticsconnection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
