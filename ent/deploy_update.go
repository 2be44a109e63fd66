// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// DeployUpdate is the builder for updating Deploy entities.
type DeployUpdate struct {
	config
	hooks    []Hook
	mutation *DeployMutation
}

// Where appends a list predicates to the DeployUpdate builder.
func (_u *DeployUpdate) Where(ps ...predicate.Deploy) *DeployUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCommitMessage sets the "commit_message" field.
func (_u *DeployUpdate) SetCommitMessage(v string) *DeployUpdate {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *DeployUpdate) SetNillableCommitMessage(v *string) *DeployUpdate {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *DeployUpdate) ClearCommitMessage() *DeployUpdate {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetChangedFiles sets the "changed_files" field.
func (_u *DeployUpdate) SetChangedFiles(v []string) *DeployUpdate {
	_u.mutation.SetChangedFiles(v)
	return _u
}

// AppendChangedFiles appends value to the "changed_files" field.
func (_u *DeployUpdate) AppendChangedFiles(v []string) *DeployUpdate {
	_u.mutation.AppendChangedFiles(v)
	return _u
}

// ClearChangedFiles clears the value of the "changed_files" field.
func (_u *DeployUpdate) ClearChangedFiles() *DeployUpdate {
	_u.mutation.ClearChangedFiles()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeployUpdate) SetStatus(v deploy.Status) *DeployUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeployUpdate) SetNillableStatus(v *deploy.Status) *DeployUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DeployUpdate) SetCompletedAt(v time.Time) *DeployUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DeployUpdate) SetNillableCompletedAt(v *time.Time) *DeployUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DeployUpdate) ClearCompletedAt() *DeployUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DeployMutation object of the builder.
func (_u *DeployUpdate) Mutation() *DeployMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeployUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeployUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeployUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeployUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeployUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deploy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deploy.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deploy.user"`)
	}
	return nil
}

func (_u *DeployUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deploy.Table, deploy.Columns, sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(deploy.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(deploy.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ChangedFiles(); ok {
		_spec.SetField(deploy.FieldChangedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChangedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deploy.FieldChangedFiles, value)
		})
	}
	if _u.mutation.ChangedFilesCleared() {
		_spec.ClearField(deploy.FieldChangedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deploy.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(deploy.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(deploy.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deploy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeployUpdateOne is the builder for updating a single Deploy entity.
type DeployUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeployMutation
}

// SetCommitMessage sets the "commit_message" field.
func (_u *DeployUpdateOne) SetCommitMessage(v string) *DeployUpdateOne {
	_u.mutation.SetCommitMessage(v)
	return _u
}

// SetNillableCommitMessage sets the "commit_message" field if the given value is not nil.
func (_u *DeployUpdateOne) SetNillableCommitMessage(v *string) *DeployUpdateOne {
	if v != nil {
		_u.SetCommitMessage(*v)
	}
	return _u
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (_u *DeployUpdateOne) ClearCommitMessage() *DeployUpdateOne {
	_u.mutation.ClearCommitMessage()
	return _u
}

// SetChangedFiles sets the "changed_files" field.
func (_u *DeployUpdateOne) SetChangedFiles(v []string) *DeployUpdateOne {
	_u.mutation.SetChangedFiles(v)
	return _u
}

// AppendChangedFiles appends value to the "changed_files" field.
func (_u *DeployUpdateOne) AppendChangedFiles(v []string) *DeployUpdateOne {
	_u.mutation.AppendChangedFiles(v)
	return _u
}

// ClearChangedFiles clears the value of the "changed_files" field.
func (_u *DeployUpdateOne) ClearChangedFiles() *DeployUpdateOne {
	_u.mutation.ClearChangedFiles()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeployUpdateOne) SetStatus(v deploy.Status) *DeployUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeployUpdateOne) SetNillableStatus(v *deploy.Status) *DeployUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DeployUpdateOne) SetCompletedAt(v time.Time) *DeployUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DeployUpdateOne) SetNillableCompletedAt(v *time.Time) *DeployUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DeployUpdateOne) ClearCompletedAt() *DeployUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the DeployMutation object of the builder.
func (_u *DeployUpdateOne) Mutation() *DeployMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeployUpdate builder.
func (_u *DeployUpdateOne) Where(ps ...predicate.Deploy) *DeployUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeployUpdateOne) Select(field string, fields ...string) *DeployUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deploy entity.
func (_u *DeployUpdateOne) Save(ctx context.Context) (*Deploy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeployUpdateOne) SaveX(ctx context.Context) *Deploy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeployUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeployUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeployUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deploy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deploy.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Deploy.user"`)
	}
	return nil
}

func (_u *DeployUpdateOne) sqlSave(ctx context.Context) (_node *Deploy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deploy.Table, deploy.Columns, sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deploy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deploy.FieldID)
		for _, f := range fields {
			if !deploy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deploy.FieldID {
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
	if value, ok := _u.mutation.CommitMessage(); ok {
		_spec.SetField(deploy.FieldCommitMessage, field.TypeString, value)
	}
	if _u.mutation.CommitMessageCleared() {
		_spec.ClearField(deploy.FieldCommitMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ChangedFiles(); ok {
		_spec.SetField(deploy.FieldChangedFiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChangedFiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deploy.FieldChangedFiles, value)
		})
	}
	if _u.mutation.ChangedFilesCleared() {
		_spec.ClearField(deploy.FieldChangedFiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deploy.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(deploy.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(deploy.FieldCompletedAt, field.TypeTime)
	}
	_node = &Deploy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deploy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
