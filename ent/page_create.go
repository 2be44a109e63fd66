// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
	"github.com/loupe-hq/loupe/ent/user"
)

// PageCreate is the builder for creating a Page entity.
type PageCreate struct {
	config
	mutation *PageMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PageCreate) SetUserID(v string) *PageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *PageCreate) SetURL(v string) *PageCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetScanFrequency sets the "scan_frequency" field.
func (_c *PageCreate) SetScanFrequency(v page.ScanFrequency) *PageCreate {
	_c.mutation.SetScanFrequency(v)
	return _c
}

// SetNillableScanFrequency sets the "scan_frequency" field if the given value is not nil.
func (_c *PageCreate) SetNillableScanFrequency(v *page.ScanFrequency) *PageCreate {
	if v != nil {
		_c.SetScanFrequency(*v)
	}
	return _c
}

// SetMetricFocus sets the "metric_focus" field.
func (_c *PageCreate) SetMetricFocus(v string) *PageCreate {
	_c.mutation.SetMetricFocus(v)
	return _c
}

// SetNillableMetricFocus sets the "metric_focus" field if the given value is not nil.
func (_c *PageCreate) SetNillableMetricFocus(v *string) *PageCreate {
	if v != nil {
		_c.SetMetricFocus(*v)
	}
	return _c
}

// SetStableBaselineID sets the "stable_baseline_id" field.
func (_c *PageCreate) SetStableBaselineID(v string) *PageCreate {
	_c.mutation.SetStableBaselineID(v)
	return _c
}

// SetNillableStableBaselineID sets the "stable_baseline_id" field if the given value is not nil.
func (_c *PageCreate) SetNillableStableBaselineID(v *string) *PageCreate {
	if v != nil {
		_c.SetStableBaselineID(*v)
	}
	return _c
}

// SetLastScanID sets the "last_scan_id" field.
func (_c *PageCreate) SetLastScanID(v string) *PageCreate {
	_c.mutation.SetLastScanID(v)
	return _c
}

// SetNillableLastScanID sets the "last_scan_id" field if the given value is not nil.
func (_c *PageCreate) SetNillableLastScanID(v *string) *PageCreate {
	if v != nil {
		_c.SetLastScanID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PageCreate) SetCreatedAt(v time.Time) *PageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PageCreate) SetNillableCreatedAt(v *time.Time) *PageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PageCreate) SetID(v string) *PageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PageCreate) SetUser(v *User) *PageCreate {
	return _c.SetUserID(v.ID)
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_c *PageCreate) AddAnalysisIDs(ids ...string) *PageCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_c *PageCreate) AddAnalyses(v ...*Analysis) *PageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// AddDetectedChangeIDs adds the "detected_changes" edge to the DetectedChange entity by IDs.
func (_c *PageCreate) AddDetectedChangeIDs(ids ...string) *PageCreate {
	_c.mutation.AddDetectedChangeIDs(ids...)
	return _c
}

// AddDetectedChanges adds the "detected_changes" edges to the DetectedChange entity.
func (_c *PageCreate) AddDetectedChanges(v ...*DetectedChange) *PageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDetectedChangeIDs(ids...)
}

// AddTrackedSuggestionIDs adds the "tracked_suggestions" edge to the TrackedSuggestion entity by IDs.
func (_c *PageCreate) AddTrackedSuggestionIDs(ids ...string) *PageCreate {
	_c.mutation.AddTrackedSuggestionIDs(ids...)
	return _c
}

// AddTrackedSuggestions adds the "tracked_suggestions" edges to the TrackedSuggestion entity.
func (_c *PageCreate) AddTrackedSuggestions(v ...*TrackedSuggestion) *PageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrackedSuggestionIDs(ids...)
}

// Mutation returns the PageMutation object of the builder.
func (_c *PageCreate) Mutation() *PageMutation {
	return _c.mutation
}

// Save creates the Page in the database.
func (_c *PageCreate) Save(ctx context.Context) (*Page, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PageCreate) SaveX(ctx context.Context) *Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PageCreate) defaults() {
	if _, ok := _c.mutation.ScanFrequency(); !ok {
		v := page.DefaultScanFrequency
		_c.mutation.SetScanFrequency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := page.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Page.user_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Page.url"`)}
	}
	if _, ok := _c.mutation.ScanFrequency(); !ok {
		return &ValidationError{Name: "scan_frequency", err: errors.New(`ent: missing required field "Page.scan_frequency"`)}
	}
	if v, ok := _c.mutation.ScanFrequency(); ok {
		if err := page.ScanFrequencyValidator(v); err != nil {
			return &ValidationError{Name: "scan_frequency", err: fmt.Errorf(`ent: validator failed for field "Page.scan_frequency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Page.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Page.user"`)}
	}
	return nil
}

func (_c *PageCreate) sqlSave(ctx context.Context) (*Page, error) {
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
			return nil, fmt.Errorf("unexpected Page.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PageCreate) createSpec() (*Page, *sqlgraph.CreateSpec) {
	var (
		_node = &Page{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(page.Table, sqlgraph.NewFieldSpec(page.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(page.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.ScanFrequency(); ok {
		_spec.SetField(page.FieldScanFrequency, field.TypeEnum, value)
		_node.ScanFrequency = value
	}
	if value, ok := _c.mutation.MetricFocus(); ok {
		_spec.SetField(page.FieldMetricFocus, field.TypeString, value)
		_node.MetricFocus = &value
	}
	if value, ok := _c.mutation.StableBaselineID(); ok {
		_spec.SetField(page.FieldStableBaselineID, field.TypeString, value)
		_node.StableBaselineID = &value
	}
	if value, ok := _c.mutation.LastScanID(); ok {
		_spec.SetField(page.FieldLastScanID, field.TypeString, value)
		_node.LastScanID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(page.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   page.UserTable,
			Columns: []string{page.UserColumn},
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
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   page.AnalysesTable,
			Columns: []string{page.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DetectedChangesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   page.DetectedChangesTable,
			Columns: []string{page.DetectedChangesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(detectedchange.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TrackedSuggestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   page.TrackedSuggestionsTable,
			Columns: []string{page.TrackedSuggestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedsuggestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PageCreateBulk is the builder for creating many Page entities in bulk.
type PageCreateBulk struct {
	config
	err      error
	builders []*PageCreate
}

// Save creates the Page entities in the database.
func (_c *PageCreateBulk) Save(ctx context.Context) ([]*Page, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Page, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PageMutation)
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
func (_c *PageCreateBulk) SaveX(ctx context.Context) []*Page {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
