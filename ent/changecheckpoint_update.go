// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ChangeCheckpointUpdate is the builder for updating ChangeCheckpoint entities.
type ChangeCheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *ChangeCheckpointMutation
}

// Where appends a list predicates to the ChangeCheckpointUpdate builder.
func (_u *ChangeCheckpointUpdate) Where(ps ...predicate.ChangeCheckpoint) *ChangeCheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *ChangeCheckpointUpdate) SetMetrics(v map[string]interface{}) *ChangeCheckpointUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *ChangeCheckpointUpdate) ClearMetrics() *ChangeCheckpointUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChangeCheckpointUpdate) SetConfidence(v float64) *ChangeCheckpointUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChangeCheckpointUpdate) SetNillableConfidence(v *float64) *ChangeCheckpointUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChangeCheckpointUpdate) AddConfidence(v float64) *ChangeCheckpointUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ChangeCheckpointUpdate) ClearConfidence() *ChangeCheckpointUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetDataSources sets the "data_sources" field.
func (_u *ChangeCheckpointUpdate) SetDataSources(v []string) *ChangeCheckpointUpdate {
	_u.mutation.SetDataSources(v)
	return _u
}

// AppendDataSources appends value to the "data_sources" field.
func (_u *ChangeCheckpointUpdate) AppendDataSources(v []string) *ChangeCheckpointUpdate {
	_u.mutation.AppendDataSources(v)
	return _u
}

// ClearDataSources clears the value of the "data_sources" field.
func (_u *ChangeCheckpointUpdate) ClearDataSources() *ChangeCheckpointUpdate {
	_u.mutation.ClearDataSources()
	return _u
}

// Mutation returns the ChangeCheckpointMutation object of the builder.
func (_u *ChangeCheckpointUpdate) Mutation() *ChangeCheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangeCheckpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeCheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangeCheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeCheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangeCheckpointUpdate) check() error {
	if _u.mutation.ChangeCleared() && len(_u.mutation.ChangeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChangeCheckpoint.change"`)
	}
	return nil
}

func (_u *ChangeCheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changecheckpoint.Table, changecheckpoint.Columns, sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(changecheckpoint.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(changecheckpoint.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(changecheckpoint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(changecheckpoint.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(changecheckpoint.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DataSources(); ok {
		_spec.SetField(changecheckpoint.FieldDataSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDataSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, changecheckpoint.FieldDataSources, value)
		})
	}
	if _u.mutation.DataSourcesCleared() {
		_spec.ClearField(changecheckpoint.FieldDataSources, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changecheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangeCheckpointUpdateOne is the builder for updating a single ChangeCheckpoint entity.
type ChangeCheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangeCheckpointMutation
}

// SetMetrics sets the "metrics" field.
func (_u *ChangeCheckpointUpdateOne) SetMetrics(v map[string]interface{}) *ChangeCheckpointUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *ChangeCheckpointUpdateOne) ClearMetrics() *ChangeCheckpointUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ChangeCheckpointUpdateOne) SetConfidence(v float64) *ChangeCheckpointUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ChangeCheckpointUpdateOne) SetNillableConfidence(v *float64) *ChangeCheckpointUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ChangeCheckpointUpdateOne) AddConfidence(v float64) *ChangeCheckpointUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ChangeCheckpointUpdateOne) ClearConfidence() *ChangeCheckpointUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetDataSources sets the "data_sources" field.
func (_u *ChangeCheckpointUpdateOne) SetDataSources(v []string) *ChangeCheckpointUpdateOne {
	_u.mutation.SetDataSources(v)
	return _u
}

// AppendDataSources appends value to the "data_sources" field.
func (_u *ChangeCheckpointUpdateOne) AppendDataSources(v []string) *ChangeCheckpointUpdateOne {
	_u.mutation.AppendDataSources(v)
	return _u
}

// ClearDataSources clears the value of the "data_sources" field.
func (_u *ChangeCheckpointUpdateOne) ClearDataSources() *ChangeCheckpointUpdateOne {
	_u.mutation.ClearDataSources()
	return _u
}

// Mutation returns the ChangeCheckpointMutation object of the builder.
func (_u *ChangeCheckpointUpdateOne) Mutation() *ChangeCheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChangeCheckpointUpdate builder.
func (_u *ChangeCheckpointUpdateOne) Where(ps ...predicate.ChangeCheckpoint) *ChangeCheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangeCheckpointUpdateOne) Select(field string, fields ...string) *ChangeCheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChangeCheckpoint entity.
func (_u *ChangeCheckpointUpdateOne) Save(ctx context.Context) (*ChangeCheckpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeCheckpointUpdateOne) SaveX(ctx context.Context) *ChangeCheckpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangeCheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeCheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangeCheckpointUpdateOne) check() error {
	if _u.mutation.ChangeCleared() && len(_u.mutation.ChangeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChangeCheckpoint.change"`)
	}
	return nil
}

func (_u *ChangeCheckpointUpdateOne) sqlSave(ctx context.Context) (_node *ChangeCheckpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changecheckpoint.Table, changecheckpoint.Columns, sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChangeCheckpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changecheckpoint.FieldID)
		for _, f := range fields {
			if !changecheckpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changecheckpoint.FieldID {
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
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(changecheckpoint.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(changecheckpoint.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(changecheckpoint.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(changecheckpoint.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(changecheckpoint.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DataSources(); ok {
		_spec.SetField(changecheckpoint.FieldDataSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDataSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, changecheckpoint.FieldDataSources, value)
		})
	}
	if _u.mutation.DataSourcesCleared() {
		_spec.ClearField(changecheckpoint.FieldDataSources, field.TypeJSON)
	}
	_node = &ChangeCheckpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changecheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
