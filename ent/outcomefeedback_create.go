// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
)

// OutcomeFeedbackCreate is the builder for creating a OutcomeFeedback entity.
type OutcomeFeedbackCreate struct {
	config
	mutation *OutcomeFeedbackMutation
	hooks    []Hook
}

// SetChangeID sets the "change_id" field.
func (_c *OutcomeFeedbackCreate) SetChangeID(v string) *OutcomeFeedbackCreate {
	_c.mutation.SetChangeID(v)
	return _c
}

// SetCheckpointID sets the "checkpoint_id" field.
func (_c *OutcomeFeedbackCreate) SetCheckpointID(v string) *OutcomeFeedbackCreate {
	_c.mutation.SetCheckpointID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *OutcomeFeedbackCreate) SetUserID(v string) *OutcomeFeedbackCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFeedbackType sets the "feedback_type" field.
func (_c *OutcomeFeedbackCreate) SetFeedbackType(v outcomefeedback.FeedbackType) *OutcomeFeedbackCreate {
	_c.mutation.SetFeedbackType(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *OutcomeFeedbackCreate) SetComment(v string) *OutcomeFeedbackCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *OutcomeFeedbackCreate) SetNillableComment(v *string) *OutcomeFeedbackCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OutcomeFeedbackCreate) SetCreatedAt(v time.Time) *OutcomeFeedbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OutcomeFeedbackCreate) SetNillableCreatedAt(v *time.Time) *OutcomeFeedbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutcomeFeedbackCreate) SetID(v string) *OutcomeFeedbackCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChange sets the "change" edge to the DetectedChange entity.
func (_c *OutcomeFeedbackCreate) SetChange(v *DetectedChange) *OutcomeFeedbackCreate {
	return _c.SetChangeID(v.ID)
}

// Mutation returns the OutcomeFeedbackMutation object of the builder.
func (_c *OutcomeFeedbackCreate) Mutation() *OutcomeFeedbackMutation {
	return _c.mutation
}

// Save creates the OutcomeFeedback in the database.
func (_c *OutcomeFeedbackCreate) Save(ctx context.Context) (*OutcomeFeedback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutcomeFeedbackCreate) SaveX(ctx context.Context) *OutcomeFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeFeedbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeFeedbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutcomeFeedbackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := outcomefeedback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutcomeFeedbackCreate) check() error {
	if _, ok := _c.mutation.ChangeID(); !ok {
		return &ValidationError{Name: "change_id", err: errors.New(`ent: missing required field "OutcomeFeedback.change_id"`)}
	}
	if _, ok := _c.mutation.CheckpointID(); !ok {
		return &ValidationError{Name: "checkpoint_id", err: errors.New(`ent: missing required field "OutcomeFeedback.checkpoint_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OutcomeFeedback.user_id"`)}
	}
	if _, ok := _c.mutation.FeedbackType(); !ok {
		return &ValidationError{Name: "feedback_type", err: errors.New(`ent: missing required field "OutcomeFeedback.feedback_type"`)}
	}
	if v, ok := _c.mutation.FeedbackType(); ok {
		if err := outcomefeedback.FeedbackTypeValidator(v); err != nil {
			return &ValidationError{Name: "feedback_type", err: fmt.Errorf(`ent: validator failed for field "OutcomeFeedback.feedback_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OutcomeFeedback.created_at"`)}
	}
	if len(_c.mutation.ChangeIDs()) == 0 {
		return &ValidationError{Name: "change", err: errors.New(`ent: missing required edge "OutcomeFeedback.change"`)}
	}
	return nil
}

func (_c *OutcomeFeedbackCreate) sqlSave(ctx context.Context) (*OutcomeFeedback, error) {
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
			return nil, fmt.Errorf("unexpected OutcomeFeedback.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutcomeFeedbackCreate) createSpec() (*OutcomeFeedback, *sqlgraph.CreateSpec) {
	var (
		_node = &OutcomeFeedback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outcomefeedback.Table, sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CheckpointID(); ok {
		_spec.SetField(outcomefeedback.FieldCheckpointID, field.TypeString, value)
		_node.CheckpointID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(outcomefeedback.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FeedbackType(); ok {
		_spec.SetField(outcomefeedback.FieldFeedbackType, field.TypeEnum, value)
		_node.FeedbackType = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(outcomefeedback.FieldComment, field.TypeString, value)
		_node.Comment = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(outcomefeedback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChangeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outcomefeedback.ChangeTable,
			Columns: []string{outcomefeedback.ChangeColumn},
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

// OutcomeFeedbackCreateBulk is the builder for creating many OutcomeFeedback entities in bulk.
type OutcomeFeedbackCreateBulk struct {
	config
	err      error
	builders []*OutcomeFeedbackCreate
}

// Save creates the OutcomeFeedback entities in the database.
func (_c *OutcomeFeedbackCreateBulk) Save(ctx context.Context) ([]*OutcomeFeedback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutcomeFeedback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutcomeFeedbackMutation)
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
func (_c *OutcomeFeedbackCreateBulk) SaveX(ctx context.Context) []*OutcomeFeedback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeFeedbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeFeedbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
