// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/ent/user"
)

// AnalyticsConnectionCreate is the builder for creating a AnalyticsConnection entity.
type AnalyticsConnectionCreate struct {
	config
	mutation *AnalyticsConnectionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AnalyticsConnectionCreate) SetUserID(v string) *AnalyticsConnectionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AnalyticsConnectionCreate) SetProvider(v analyticsconnection.Provider) *AnalyticsConnectionCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (_c *AnalyticsConnectionCreate) SetEncryptedCredentials(v []byte) *AnalyticsConnectionCreate {
	_c.mutation.SetEncryptedCredentials(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalyticsConnectionCreate) SetStatus(v analyticsconnection.Status) *AnalyticsConnectionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalyticsConnectionCreate) SetNillableStatus(v *analyticsconnection.Status) *AnalyticsConnectionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalyticsConnectionCreate) SetCreatedAt(v time.Time) *AnalyticsConnectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalyticsConnectionCreate) SetNillableCreatedAt(v *time.Time) *AnalyticsConnectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AnalyticsConnectionCreate) SetUpdatedAt(v time.Time) *AnalyticsConnectionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AnalyticsConnectionCreate) SetNillableUpdatedAt(v *time.Time) *AnalyticsConnectionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalyticsConnectionCreate) SetID(v string) *AnalyticsConnectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AnalyticsConnectionCreate) SetUser(v *User) *AnalyticsConnectionCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the AnalyticsConnectionMutation object of the builder.
func (_c *AnalyticsConnectionCreate) Mutation() *AnalyticsConnectionMutation {
	return _c.mutation
}

// Save creates the AnalyticsConnection in the database.
func (_c *AnalyticsConnectionCreate) Save(ctx context.Context) (*AnalyticsConnection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalyticsConnectionCreate) SaveX(ctx context.Context) *AnalyticsConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsConnectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsConnectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalyticsConnectionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analyticsconnection.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analyticsconnection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := analyticsconnection.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalyticsConnectionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnalyticsConnection.user_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "AnalyticsConnection.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := analyticsconnection.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "AnalyticsConnection.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EncryptedCredentials(); !ok {
		return &ValidationError{Name: "encrypted_credentials", err: errors.New(`ent: missing required field "AnalyticsConnection.encrypted_credentials"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalyticsConnection.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analyticsconnection.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalyticsConnection.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalyticsConnection.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AnalyticsConnection.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "AnalyticsConnection.user"`)}
	}
	return nil
}

func (_c *AnalyticsConnectionCreate) sqlSave(ctx context.Context) (*AnalyticsConnection, error) {
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
			return nil, fmt.Errorf("unexpected AnalyticsConnection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalyticsConnectionCreate) createSpec() (*AnalyticsConnection, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalyticsConnection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analyticsconnection.Table, sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(analyticsconnection.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.EncryptedCredentials(); ok {
		_spec.SetField(analyticsconnection.FieldEncryptedCredentials, field.TypeBytes, value)
		_node.EncryptedCredentials = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analyticsconnection.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analyticsconnection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(analyticsconnection.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analyticsconnection.UserTable,
			Columns: []string{analyticsconnection.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalyticsConnectionCreateBulk is the builder for creating many AnalyticsConnection entities in bulk.
type AnalyticsConnectionCreateBulk struct {
	config
	err      error
	builders []*AnalyticsConnectionCreate
}

// Save creates the AnalyticsConnection entities in the database.
func (_c *AnalyticsConnectionCreateBulk) Save(ctx context.Context) ([]*AnalyticsConnection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalyticsConnection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalyticsConnectionMutation)
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
func (_c *AnalyticsConnectionCreateBulk) SaveX(ctx context.Context) []*AnalyticsConnection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalyticsConnectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalyticsConnectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
