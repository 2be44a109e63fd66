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
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/predicate"
	"github.com/loupe-hq/loupe/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *UserUpdate) SetTier(v user.Tier) *UserUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTier(v *user.Tier) *UserUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (_u *UserUpdate) SetTrialEndsAt(v time.Time) *UserUpdate {
	_u.mutation.SetTrialEndsAt(v)
	return _u
}

// SetNillableTrialEndsAt sets the "trial_ends_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTrialEndsAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetTrialEndsAt(*v)
	}
	return _u
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (_u *UserUpdate) ClearTrialEndsAt() *UserUpdate {
	_u.mutation.ClearTrialEndsAt()
	return _u
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_u *UserUpdate) AddPageIDs(ids ...string) *UserUpdate {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the Page entity.
func (_u *UserUpdate) AddPages(v ...*Page) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddAnalyticsConnectionIDs adds the "analytics_connections" edge to the AnalyticsConnection entity by IDs.
func (_u *UserUpdate) AddAnalyticsConnectionIDs(ids ...string) *UserUpdate {
	_u.mutation.AddAnalyticsConnectionIDs(ids...)
	return _u
}

// AddAnalyticsConnections adds the "analytics_connections" edges to the AnalyticsConnection entity.
func (_u *UserUpdate) AddAnalyticsConnections(v ...*AnalyticsConnection) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalyticsConnectionIDs(ids...)
}

// AddDeployIDs adds the "deploys" edge to the Deploy entity by IDs.
func (_u *UserUpdate) AddDeployIDs(ids ...string) *UserUpdate {
	_u.mutation.AddDeployIDs(ids...)
	return _u
}

// AddDeploys adds the "deploys" edges to the Deploy entity.
func (_u *UserUpdate) AddDeploys(v ...*Deploy) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeployIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the Page entity.
func (_u *UserUpdate) ClearPages() *UserUpdate {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to Page entities by IDs.
func (_u *UserUpdate) RemovePageIDs(ids ...string) *UserUpdate {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to Page entities.
func (_u *UserUpdate) RemovePages(v ...*Page) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearAnalyticsConnections clears all "analytics_connections" edges to the AnalyticsConnection entity.
func (_u *UserUpdate) ClearAnalyticsConnections() *UserUpdate {
	_u.mutation.ClearAnalyticsConnections()
	return _u
}

// RemoveAnalyticsConnectionIDs removes the "analytics_connections" edge to AnalyticsConnection entities by IDs.
func (_u *UserUpdate) RemoveAnalyticsConnectionIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveAnalyticsConnectionIDs(ids...)
	return _u
}

// RemoveAnalyticsConnections removes "analytics_connections" edges to AnalyticsConnection entities.
func (_u *UserUpdate) RemoveAnalyticsConnections(v ...*AnalyticsConnection) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalyticsConnectionIDs(ids...)
}

// ClearDeploys clears all "deploys" edges to the Deploy entity.
func (_u *UserUpdate) ClearDeploys() *UserUpdate {
	_u.mutation.ClearDeploys()
	return _u
}

// RemoveDeployIDs removes the "deploys" edge to Deploy entities by IDs.
func (_u *UserUpdate) RemoveDeployIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveDeployIDs(ids...)
	return _u
}

// RemoveDeploys removes "deploys" edges to Deploy entities.
func (_u *UserUpdate) RemoveDeploys(v ...*Deploy) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeployIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := user.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "User.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(user.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrialEndsAt(); ok {
		_spec.SetField(user.FieldTrialEndsAt, field.TypeTime, value)
	}
	if _u.mutation.TrialEndsAtCleared() {
		_spec.ClearField(user.FieldTrialEndsAt, field.TypeTime)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PagesTable,
			Columns: []string{user.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PagesTable,
			Columns: []string{user.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PagesTable,
			Columns: []string{user.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalyticsConnectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AnalyticsConnectionsTable,
			Columns: []string{user.AnalyticsConnectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalyticsConnectionsIDs(); len(nodes) > 0 && !_u.mutation.AnalyticsConnectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AnalyticsConnectionsTable,
			Columns: []string{user.AnalyticsConnectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyticsConnectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AnalyticsConnectionsTable,
			Columns: []string{user.AnalyticsConnectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeploysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DeploysTable,
			Columns: []string{user.DeploysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploysIDs(); len(nodes) > 0 && !_u.mutation.DeploysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DeploysTable,
			Columns: []string{user.DeploysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DeploysTable,
			Columns: []string{user.DeploysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *UserUpdateOne) SetTier(v user.Tier) *UserUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTier(v *user.Tier) *UserUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (_u *UserUpdateOne) SetTrialEndsAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetTrialEndsAt(v)
	return _u
}

// SetNillableTrialEndsAt sets the "trial_ends_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTrialEndsAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetTrialEndsAt(*v)
	}
	return _u
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (_u *UserUpdateOne) ClearTrialEndsAt() *UserUpdateOne {
	_u.mutation.ClearTrialEndsAt()
	return _u
}

// AddPageIDs adds the "pages" edge to the Page entity by IDs.
func (_u *UserUpdateOne) AddPageIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the Page entity.
func (_u *UserUpdateOne) AddPages(v ...*Page) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddAnalyticsConnectionIDs adds the "analytics_connections" edge to the AnalyticsConnection entity by IDs.
func (_u *UserUpdateOne) AddAnalyticsConnectionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddAnalyticsConnectionIDs(ids...)
	return _u
}

// AddAnalyticsConnections adds the "analytics_connections" edges to the AnalyticsConnection entity.
func (_u *UserUpdateOne) AddAnalyticsConnections(v ...*AnalyticsConnection) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalyticsConnectionIDs(ids...)
}

// AddDeployIDs adds the "deploys" edge to the Deploy entity by IDs.
func (_u *UserUpdateOne) AddDeployIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddDeployIDs(ids...)
	return _u
}

// AddDeploys adds the "deploys" edges to the Deploy entity.
func (_u *UserUpdateOne) AddDeploys(v ...*Deploy) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeployIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the Page entity.
func (_u *UserUpdateOne) ClearPages() *UserUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to Page entities by IDs.
func (_u *UserUpdateOne) RemovePageIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to Page entities.
func (_u *UserUpdateOne) RemovePages(v ...*Page) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearAnalyticsConnections clears all "analytics_connections" edges to the AnalyticsConnection entity.
func (_u *UserUpdateOne) ClearAnalyticsConnections() *UserUpdateOne {
	_u.mutation.ClearAnalyticsConnections()
	return _u
}

// RemoveAnalyticsConnectionIDs removes the "analytics_connections" edge to AnalyticsConnection entities by IDs.
func (_u *UserUpdateOne) RemoveAnalyticsConnectionIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveAnalyticsConnectionIDs(ids...)
	return _u
}

// RemoveAnalyticsConnections removes "analytics_connections" edges to AnalyticsConnection entities.
func (_u *UserUpdateOne) RemoveAnalyticsConnections(v ...*AnalyticsConnection) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalyticsConnectionIDs(ids...)
}

// ClearDeploys clears all "deploys" edges to the Deploy entity.
func (_u *UserUpdateOne) ClearDeploys() *UserUpdateOne {
	_u.mutation.ClearDeploys()
	return _u
}

// RemoveDeployIDs removes the "deploys" edge to Deploy entities by IDs.
func (_u *UserUpdateOne) RemoveDeployIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveDeployIDs(ids...)
	return _u
}

// RemoveDeploys removes "deploys" edges to Deploy entities.
func (_u *UserUpdateOne) RemoveDeploys(v ...*Deploy) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeployIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := user.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "User.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(user.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrialEndsAt(); ok {
		_spec.SetField(user.FieldTrialEndsAt, field.TypeTime, value)
	}
	if _u.mutation.TrialEndsAtCleared() {
		_spec.ClearField(user.FieldTrialEndsAt, field.TypeTime)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PagesTable,
			Columns: []string{user.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PagesTable,
			Columns: []string{user.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.PagesTable,
			Columns: []string{user.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalyticsConnectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AnalyticsConnectionsTable,
			Columns: []string{user.AnalyticsConnectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalyticsConnectionsIDs(); len(nodes) > 0 && !_u.mutation.AnalyticsConnectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AnalyticsConnectionsTable,
			Columns: []string{user.AnalyticsConnectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalyticsConnectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AnalyticsConnectionsTable,
			Columns: []string{user.AnalyticsConnectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analyticsconnection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeploysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DeploysTable,
			Columns: []string{user.DeploysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeploysIDs(); len(nodes) > 0 && !_u.mutation.DeploysCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DeploysTable,
			Columns: []string{user.DeploysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeploysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DeploysTable,
			Columns: []string{user.DeploysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deploy.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
