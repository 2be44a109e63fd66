// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/ent/user"
)

// DeployCreate is the builder for creating a Deploy entity.
type DeployCreate struct {
	config
	mutation *DeployMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DeployCreate) SetUserID(v string) *DeployCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRepoID sets the "repo_id" field.
func (_c *DeployCreate) SetRepoID(v string) *DeployCreate {
	_c.mutation.SetRepoID(v)
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *DeployCreate) SetCommitSha(v string) *DeployCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *DeployCreate) SetFullName(v string) *DeployCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetCommitMessage sets the "commit_message" field.
func (_c *DeployCreate) SetCommitMessage(v string) *DeployCreate {
	_c.mutation.SetCommitMessage(v)
	return _c
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_c *DeployCreate) SetNillableCommitMessage(v *string) *DeployCreate {
	if v != nil {
		_c.SetCommitMessage(*v)
	}
	return _c
}

// SetChangedFiles sets the "changed_files" field.
func (_c *DeployCreate) SetChangedFiles(v []string) *DeployCreate {
	_c.mutation.SetChangedFiles(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeployCreate) SetStatus(v deploy.Status) *DeployCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeployCreate) SetNillableStatus(v *deploy.Status) *DeployCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeployCreate) SetCreatedAt(v time.Time) *DeployCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeployCreate) SetNillableCreatedAt(v *time.Time) *DeployCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DeployCreate) SetCompletedAt(v time.Time) *DeployCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DeployCreate) SetNillableCompletedAt(v *time.Time) *DeployCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeployCreate) SetID(v string) *DeployCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DeployCreate) SetUser(v *User) *DeployCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DeployMutation object of the builder.
func (_c *DeployCreate) Mutation() *DeployMutation {
	return _c.mutation
}

// Save creates the Deploy in the database.
func (_c *DeployCreate) Save(ctx context.Context) (*Deploy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeployCreate) SaveX(ctx context.Context) *Deploy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeployCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeployCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeployCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := deploy.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deploy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeployCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Deploy.user_id"`)}
	}
	if _, ok := _c.mutation.RepoID(); !ok {
		return &ValidationError{Name: "repo_id", err: errors.New(`ent: missing required field "Deploy.repo_id"`)}
	}
	if _, ok := _c.mutation.CommitSha(); !ok {
		return &ValidationError{Name: "commit_sha", err: errors.New(`ent: missing required field "Deploy.commit_sha"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Deploy.full_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Deploy.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deploy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deploy.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Deploy.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Deploy.user"`)}
	}
	return nil
}

func (_c *DeployCreate) sqlSave(ctx context.Context) (*Deploy, error) {
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
			return nil, fmt.Errorf("unexpected Deploy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeployCreate) createSpec() (*Deploy, *sqlgraph.CreateSpec) {
	var (
		_node = &Deploy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deploy.Table, sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RepoID(); ok {
		_spec.SetField(deploy.FieldRepoID, field.TypeString, value)
		_node.RepoID = value
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(deploy.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(deploy.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.CommitMessage(); ok {
		_spec.SetField(deploy.FieldCommitMessage, field.TypeString, value)
		_node.CommitMessage = &value
	}
	if value, ok := _c.mutation.ChangedFiles(); ok {
		_spec.SetField(deploy.FieldChangedFiles, field.TypeJSON, value)
		_node.ChangedFiles = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deploy.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deploy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(deploy.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deploy.UserTable,
			Columns: []string{deploy.UserColumn},
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

// DeployCreateBulk is the builder for creating many Deploy entities in bulk.
type DeployCreateBulk struct {
	config
	err      error
	builders []*DeployCreate
}

// Save creates the Deploy entities in the database.
func (_c *DeployCreateBulk) Save(ctx context.Context) ([]*Deploy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deploy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeployMutation)
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
func (_c *DeployCreateBulk) SaveX(ctx context.Context) []*Deploy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeployCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeployCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
