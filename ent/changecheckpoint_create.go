// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/detectedchange"
)

// ChangeCheckpointCreate is the builder for creating a ChangeCheckpoint entity.
type ChangeCheckpointCreate struct {
	config
	mutation *ChangeCheckpointMutation
	hooks    []Hook
}

// SetChangeID sets the "change_id" field.
func (_c *ChangeCheckpointCreate) SetChangeID(v string) *ChangeCheckpointCreate {
	_c.mutation.SetChangeID(v)
	return _c
}

// SetHorizonDays sets the "horizon_days" field.
func (_c *ChangeCheckpointCreate) SetHorizonDays(v int) *ChangeCheckpointCreate {
	_c.mutation.SetHorizonDays(v)
	return _c
}

// SetBeforeWindowStart sets the "before_window_start" field.
func (_c *ChangeCheckpointCreate) SetBeforeWindowStart(v time.Time) *ChangeCheckpointCreate {
	_c.mutation.SetBeforeWindowStart(v)
	return _c
}

// SetBeforeWindowEnd sets the "before_window_end" field.
func (_c *ChangeCheckpointCreate) SetBeforeWindowEnd(v time.Time) *ChangeCheckpointCreate {
	_c.mutation.SetBeforeWindowEnd(v)
	return _c
}

// SetAfterWindowStart sets the "after_window_start" field.
func (_c *ChangeCheckpointCreate) SetAfterWindowStart(v time.Time) *ChangeCheckpointCreate {
	_c.mutation.SetAfterWindowStart(v)
	return _c
}

// SetAfterWindowEnd sets the "after_window_end" field.
func (_c *ChangeCheckpointCreate) SetAfterWindowEnd(v time.Time) *ChangeCheckpointCreate {
	_c.mutation.SetAfterWindowEnd(v)
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *ChangeCheckpointCreate) SetMetrics(v map[string]interface{}) *ChangeCheckpointCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetAssessment sets the "assessment" field.
func (_c *ChangeCheckpointCreate) SetAssessment(v changecheckpoint.Assessment) *ChangeCheckpointCreate {
	_c.mutation.SetAssessment(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ChangeCheckpointCreate) SetConfidence(v float64) *ChangeCheckpointCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ChangeCheckpointCreate) SetNillableConfidence(v *float64) *ChangeCheckpointCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *ChangeCheckpointCreate) SetReasoning(v string) *ChangeCheckpointCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetDataSources sets the "data_sources" field.
func (_c *ChangeCheckpointCreate) SetDataSources(v []string) *ChangeCheckpointCreate {
	_c.mutation.SetDataSources(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *ChangeCheckpointCreate) SetProvider(v string) *ChangeCheckpointCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *ChangeCheckpointCreate) SetComputedAt(v time.Time) *ChangeCheckpointCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *ChangeCheckpointCreate) SetNillableComputedAt(v *time.Time) *ChangeCheckpointCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChangeCheckpointCreate) SetID(v string) *ChangeCheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChange sets the "change" edge to the DetectedChange entity.
func (_c *ChangeCheckpointCreate) SetChange(v *DetectedChange) *ChangeCheckpointCreate {
	return _c.SetChangeID(v.ID)
}

// Mutation returns the ChangeCheckpointMutation object of the builder.
func (_c *ChangeCheckpointCreate) Mutation() *ChangeCheckpointMutation {
	return _c.mutation
}

// Save creates the ChangeCheckpoint in the database.
func (_c *ChangeCheckpointCreate) Save(ctx context.Context) (*ChangeCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangeCheckpointCreate) SaveX(ctx context.Context) *ChangeCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangeCheckpointCreate) defaults() {
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := changecheckpoint.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangeCheckpointCreate) check() error {
	if _, ok := _c.mutation.ChangeID(); !ok {
		return &ValidationError{Name: "change_id", err: errors.New(`ent: missing required field "ChangeCheckpoint.change_id"`)}
	}
	if _, ok := _c.mutation.HorizonDays(); !ok {
		return &ValidationError{Name: "horizon_days", err: errors.New(`ent: missing required field "ChangeCheckpoint.horizon_days"`)}
	}
	if _, ok := _c.mutation.BeforeWindowStart(); !ok {
		return &ValidationError{Name: "before_window_start", err: errors.New(`ent: missing required field "ChangeCheckpoint.before_window_start"`)}
	}
	if _, ok := _c.mutation.BeforeWindowEnd(); !ok {
		return &ValidationError{Name: "before_window_end", err: errors.New(`ent: missing required field "ChangeCheckpoint.before_window_end"`)}
	}
	if _, ok := _c.mutation.AfterWindowStart(); !ok {
		return &ValidationError{Name: "after_window_start", err: errors.New(`ent: missing required field "ChangeCheckpoint.after_window_start"`)}
	}
	if _, ok := _c.mutation.AfterWindowEnd(); !ok {
		return &ValidationError{Name: "after_window_end", err: errors.New(`ent: missing required field "ChangeCheckpoint.after_window_end"`)}
	}
	if _, ok := _c.mutation.Assessment(); !ok {
		return &ValidationError{Name: "assessment", err: errors.New(`ent: missing required field "ChangeCheckpoint.assessment"`)}
	}
	if v, ok := _c.mutation.Assessment(); ok {
		if err := changecheckpoint.AssessmentValidator(v); err != nil {
			return &ValidationError{Name: "assessment", err: fmt.Errorf(`ent: validator failed for field "ChangeCheckpoint.assessment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "ChangeCheckpoint.reasoning"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "ChangeCheckpoint.provider"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "ChangeCheckpoint.computed_at"`)}
	}
	if len(_c.mutation.ChangeIDs()) == 0 {
		return &ValidationError{Name: "change", err: errors.New(`ent: missing required edge "ChangeCheckpoint.change"`)}
	}
	return nil
}

func (_c *ChangeCheckpointCreate) sqlSave(ctx context.Context) (*ChangeCheckpoint, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ChangeCheckpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChangeCheckpointCreate) createSpec() (*ChangeCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &ChangeCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changecheckpoint.Table, sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.HorizonDays(); ok {
		_spec.SetField(changecheckpoint.FieldHorizonDays, field.TypeInt, value)
		_node.HorizonDays = value
	}
	if value, ok := _c.mutation.BeforeWindowStart(); ok {
		_spec.SetField(changecheckpoint.FieldBeforeWindowStart, field.TypeTime, value)
		_node.BeforeWindowStart = value
	}
	if value, ok := _c.mutation.BeforeWindowEnd(); ok {
		_spec.SetField(changecheckpoint.FieldBeforeWindowEnd, field.TypeTime, value)
		_node.BeforeWindowEnd = value
	}
	if value, ok := _c.mutation.AfterWindowStart(); ok {
		_spec.SetField(changecheckpoint.FieldAfterWindowStart, field.TypeTime, value)
		_node.AfterWindowStart = value
	}
	if value, ok := _c.mutation.AfterWindowEnd(); ok {
		_spec.SetField(changecheckpoint.FieldAfterWindowEnd, field.TypeTime, value)
		_node.AfterWindowEnd = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(changecheckpoint.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Assessment(); ok {
		_spec.SetField(changecheckpoint.FieldAssessment, field.TypeEnum, value)
		_node.Assessment = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(changecheckpoint.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(changecheckpoint.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.DataSources(); ok {
		_spec.SetField(changecheckpoint.FieldDataSources, field.TypeJSON, value)
		_node.DataSources = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(changecheckpoint.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(changecheckpoint.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if nodes := _c.mutation.ChangeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   changecheckpoint.ChangeTable,
			Columns: []string{changecheckpoint.ChangeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectedchange.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChangeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChangeCheckpointCreateBulk is the builder for creating many ChangeCheckpoint entities in bulk.
type ChangeCheckpointCreateBulk struct {
	config
	err      error
	builders []*ChangeCheckpointCreate
}

// Save creates the ChangeCheckpoint entities in the database.
func (_c *ChangeCheckpointCreateBulk) Save(ctx context.Context) ([]*ChangeCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChangeCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangeCheckpointMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChangeCheckpointCreateBulk) SaveX(ctx context.Context) []*ChangeCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
