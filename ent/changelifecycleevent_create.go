// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
)

// ChangeLifecycleEventCreate is the builder for creating a ChangeLifecycleEvent entity.
type ChangeLifecycleEventCreate struct {
	config
	mutation *ChangeLifecycleEventMutation
	hooks    []Hook
}

// SetChangeID sets the "change_id" field.
func (_c *ChangeLifecycleEventCreate) SetChangeID(v string) *ChangeLifecycleEventCreate {
	_c.mutation.SetChangeID(v)
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *ChangeLifecycleEventCreate) SetFromStatus(v string) *ChangeLifecycleEventCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_c *ChangeLifecycleEventCreate) SetNillableFromStatus(v *string) *ChangeLifecycleEventCreate {
	if v != nil {
		_c.SetFromStatus(*v)
	}
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *ChangeLifecycleEventCreate) SetToStatus(v string) *ChangeLifecycleEventCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ChangeLifecycleEventCreate) SetReason(v string) *ChangeLifecycleEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetActorType sets the "actor_type" field.
func (_c *ChangeLifecycleEventCreate) SetActorType(v changelifecycleevent.ActorType) *ChangeLifecycleEventCreate {
	_c.mutation.SetActorType(v)
	return _c
}

// SetCheckpointID sets the "checkpoint_id" field.
func (_c *ChangeLifecycleEventCreate) SetCheckpointID(v string) *ChangeLifecycleEventCreate {
	_c.mutation.SetCheckpointID(v)
	return _c
}

// SetNillableCheckpointID sets the "checkpoint_id" field if the given value is not nil.
func (_c *ChangeLifecycleEventCreate) SetNillableCheckpointID(v *string) *ChangeLifecycleEventCreate {
	if v != nil {
		_c.SetCheckpointID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChangeLifecycleEventCreate) SetCreatedAt(v time.Time) *ChangeLifecycleEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChangeLifecycleEventCreate) SetNillableCreatedAt(v *time.Time) *ChangeLifecycleEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChangeLifecycleEventCreate) SetID(v string) *ChangeLifecycleEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChange sets the "change" edge to the DetectedChange entity.
func (_c *ChangeLifecycleEventCreate) SetChange(v *DetectedChange) *ChangeLifecycleEventCreate {
	return _c.SetChangeID(v.ID)
}

// Mutation returns the ChangeLifecycleEventMutation object of the builder.
func (_c *ChangeLifecycleEventCreate) Mutation() *ChangeLifecycleEventMutation {
	return _c.mutation
}

// Save creates the ChangeLifecycleEvent in the database.
func (_c *ChangeLifecycleEventCreate) Save(ctx context.Context) (*ChangeLifecycleEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangeLifecycleEventCreate) SaveX(ctx context.Context) *ChangeLifecycleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeLifecycleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeLifecycleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangeLifecycleEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := changelifecycleevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangeLifecycleEventCreate) check() error {
	if _, ok := _c.mutation.ChangeID(); !ok {
		return &ValidationError{Name: "change_id", err: errors.New(`ent: missing required field "ChangeLifecycleEvent.change_id"`)}
	}
	if _, ok := _c.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "ChangeLifecycleEvent.to_status"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ChangeLifecycleEvent.reason"`)}
	}
	if _, ok := _c.mutation.ActorType(); !ok {
		return &ValidationError{Name: "actor_type", err: errors.New(`ent: missing required field "ChangeLifecycleEvent.actor_type"`)}
	}
	if v, ok := _c.mutation.ActorType(); ok {
		if err := changelifecycleevent.ActorTypeValidator(v); err != nil {
			return &ValidationError{Name: "actor_type", err: fmt.Errorf(`ent: validator failed for field "ChangeLifecycleEvent.actor_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChangeLifecycleEvent.created_at"`)}
	}
	if len(_c.mutation.ChangeIDs()) == 0 {
		return &ValidationError{Name: "change", err: errors.New(`ent: missing required edge "ChangeLifecycleEvent.change"`)}
	}
	return nil
}

func (_c *ChangeLifecycleEventCreate) sqlSave(ctx context.Context) (*ChangeLifecycleEvent, error) {
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
			return nil, fmt.Errorf("unexpected ChangeLifecycleEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChangeLifecycleEventCreate) createSpec() (*ChangeLifecycleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChangeLifecycleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changelifecycleevent.Table, sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(changelifecycleevent.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = &value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(changelifecycleevent.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(changelifecycleevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.ActorType(); ok {
		_spec.SetField(changelifecycleevent.FieldActorType, field.TypeEnum, value)
		_node.ActorType = value
	}
	if value, ok := _c.mutation.CheckpointID(); ok {
		_spec.SetField(changelifecycleevent.FieldCheckpointID, field.TypeString, value)
		_node.CheckpointID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(changelifecycleevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ChangeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   changelifecycleevent.ChangeTable,
			Columns: []string{changelifecycleevent.ChangeColumn},
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

// ChangeLifecycleEventCreateBulk is the builder for creating many ChangeLifecycleEvent entities in bulk.
type ChangeLifecycleEventCreateBulk struct {
	config
	err      error
	builders []*ChangeLifecycleEventCreate
}

// Save creates the ChangeLifecycleEvent entities in the database.
func (_c *ChangeLifecycleEventCreateBulk) Save(ctx context.Context) ([]*ChangeLifecycleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChangeLifecycleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangeLifecycleEventMutation)
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
func (_c *ChangeLifecycleEventCreateBulk) SaveX(ctx context.Context) []*ChangeLifecycleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeLifecycleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeLifecycleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
