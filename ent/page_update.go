// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/predicate"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
)

// PageUpdate is the builder for updating Page entities.
type PageUpdate struct {
	config
	hooks    []Hook
	mutation *PageMutation
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdate) Where(ps ...predicate.Page) *PageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *PageUpdate) SetURL(v string) *PageUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PageUpdate) SetNillableURL(v *string) *PageUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetScanFrequency sets the "scan_frequency" field.
func (_u *PageUpdate) SetScanFrequency(v page.ScanFrequency) *PageUpdate {
	_u.mutation.SetScanFrequency(v)
	return _u
}

// SetNillableScanFrequency sets the "scan_frequency" field if the given value is not nil.
func (_u *PageUpdate) SetNillableScanFrequency(v *page.ScanFrequency) *PageUpdate {
	if v != nil {
		_u.SetScanFrequency(*v)
	}
	return _u
}

// SetMetricFocus sets the "metric_focus" field.
func (_u *PageUpdate) SetMetricFocus(v string) *PageUpdate {
	_u.mutation.SetMetricFocus(v)
	return _u
}

// SetNillableMetricFocus sets the "metric_focus" field if the given value is not nil.
func (_u *PageUpdate) SetNillableMetricFocus(v *string) *PageUpdate {
	if v != nil {
		_u.SetMetricFocus(*v)
	}
	return _u
}

// ClearMetricFocus clears the value of the "metric_focus" field.
func (_u *PageUpdate) ClearMetricFocus() *PageUpdate {
	_u.mutation.ClearMetricFocus()
	return _u
}

// SetStableBaselineID sets the "stable_baseline_id" field.
func (_u *PageUpdate) SetStableBaselineID(v string) *PageUpdate {
	_u.mutation.SetStableBaselineID(v)
	return _u
}

// SetNillableStableBaselineID sets the "stable_baseline_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillableStableBaselineID(v *string) *PageUpdate {
	if v != nil {
		_u.SetStableBaselineID(*v)
	}
	return _u
}

// ClearStableBaselineID clears the value of the "stable_baseline_id" field.
func (_u *PageUpdate) ClearStableBaselineID() *PageUpdate {
	_u.mutation.ClearStableBaselineID()
	return _u
}

// SetLastScanID sets the "last_scan_id" field.
func (_u *PageUpdate) SetLastScanID(v string) *PageUpdate {
	_u.mutation.SetLastScanID(v)
	return _u
}

// SetNillableLastScanID sets the "last_scan_id" field if the given value is not nil.
func (_u *PageUpdate) SetNillableLastScanID(v *string) *PageUpdate {
	if v != nil {
		_u.SetLastScanID(*v)
	}
	return _u
}

// ClearLastScanID clears the value of the "last_scan_id" field.
func (_u *PageUpdate) ClearLastScanID() *PageUpdate {
	_u.mutation.ClearLastScanID()
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *PageUpdate) AddAnalysisIDs(ids ...string) *PageUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *PageUpdate) AddAnalyses(v ...*Analysis) *PageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddDetectedChangeIDs adds the "detected_changes" edge to the DetectedChange entity by IDs.
func (_u *PageUpdate) AddDetectedChangeIDs(ids ...string) *PageUpdate {
	_u.mutation.AddDetectedChangeIDs(ids...)
	return _u
}

// AddDetectedChanges adds the "detected_changes" edges to the DetectedChange entity.
func (_u *PageUpdate) AddDetectedChanges(v ...*DetectedChange) *PageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetectedChangeIDs(ids...)
}

// AddTrackedSuggestionIDs adds the "tracked_suggestions" edge to the TrackedSuggestion entity by IDs.
func (_u *PageUpdate) AddTrackedSuggestionIDs(ids ...string) *PageUpdate {
	_u.mutation.AddTrackedSuggestionIDs(ids...)
	return _u
}

// AddTrackedSuggestions adds the "tracked_suggestions" edges to the TrackedSuggestion entity.
func (_u *PageUpdate) AddTrackedSuggestions(v ...*TrackedSuggestion) *PageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackedSuggestionIDs(ids...)
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdate) Mutation() *PageMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *PageUpdate) ClearAnalyses() *PageUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *PageUpdate) RemoveAnalysisIDs(ids ...string) *PageUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *PageUpdate) RemoveAnalyses(v ...*Analysis) *PageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearDetectedChanges clears all "detected_changes" edges to the DetectedChange entity.
func (_u *PageUpdate) ClearDetectedChanges() *PageUpdate {
	_u.mutation.ClearDetectedChanges()
	return _u
}

// RemoveDetectedChangeIDs removes the "detected_changes" edge to DetectedChange entities by IDs.
func (_u *PageUpdate) RemoveDetectedChangeIDs(ids ...string) *PageUpdate {
	_u.mutation.RemoveDetectedChangeIDs(ids...)
	return _u
}

// RemoveDetectedChanges removes "detected_changes" edges to DetectedChange entities.
func (_u *PageUpdate) RemoveDetectedChanges(v ...*DetectedChange) *PageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetectedChangeIDs(ids...)
}

// ClearTrackedSuggestions clears all "tracked_suggestions" edges to the TrackedSuggestion entity.
func (_u *PageUpdate) ClearTrackedSuggestions() *PageUpdate {
	_u.mutation.ClearTrackedSuggestions()
	return _u
}

// RemoveTrackedSuggestionIDs removes the "tracked_suggestions" edge to TrackedSuggestion entities by IDs.
func (_u *PageUpdate) RemoveTrackedSuggestionIDs(ids ...string) *PageUpdate {
	_u.mutation.RemoveTrackedSuggestionIDs(ids...)
	return _u
}

// RemoveTrackedSuggestions removes "tracked_suggestions" edges to TrackedSuggestion entities.
func (_u *PageUpdate) RemoveTrackedSuggestions(v ...*TrackedSuggestion) *PageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackedSuggestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdate) check() error {
	if v, ok := _u.mutation.ScanFrequency(); ok {
		if err := page.ScanFrequencyValidator(v); err != nil {
			return &ValidationError{Name: "scan_frequency", err: fmt.Errorf(`ent: validator failed for field "Page.scan_frequency": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Page.user"`)
	}
	return nil
}

func (_u *PageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(page.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScanFrequency(); ok {
		_spec.SetField(page.FieldScanFrequency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MetricFocus(); ok {
		_spec.SetField(page.FieldMetricFocus, field.TypeString, value)
	}
	if _u.mutation.MetricFocusCleared() {
		_spec.ClearField(page.FieldMetricFocus, field.TypeString)
	}
	if value, ok := _u.mutation.StableBaselineID(); ok {
		_spec.SetField(page.FieldStableBaselineID, field.TypeString, value)
	}
	if _u.mutation.StableBaselineIDCleared() {
		_spec.ClearField(page.FieldStableBaselineID, field.TypeString)
	}
	if value, ok := _u.mutation.LastScanID(); ok {
		_spec.SetField(page.FieldLastScanID, field.TypeString, value)
	}
	if _u.mutation.LastScanIDCleared() {
		_spec.ClearField(page.FieldLastScanID, field.TypeString)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetectedChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetectedChangesIDs(); len(nodes) > 0 && !_u.mutation.DetectedChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetectedChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackedSuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.TrackedSuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackedSuggestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PageUpdateOne is the builder for updating a single Page entity.
type PageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PageMutation
}

// SetURL sets the "url" field.
func (_u *PageUpdateOne) SetURL(v string) *PageUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableURL(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetScanFrequency sets the "scan_frequency" field.
func (_u *PageUpdateOne) SetScanFrequency(v page.ScanFrequency) *PageUpdateOne {
	_u.mutation.SetScanFrequency(v)
	return _u
}

// SetNillableScanFrequency sets the "scan_frequency" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableScanFrequency(v *page.ScanFrequency) *PageUpdateOne {
	if v != nil {
		_u.SetScanFrequency(*v)
	}
	return _u
}

// SetMetricFocus sets the "metric_focus" field.
func (_u *PageUpdateOne) SetMetricFocus(v string) *PageUpdateOne {
	_u.mutation.SetMetricFocus(v)
	return _u
}

// SetNillableMetricFocus sets the "metric_focus" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableMetricFocus(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetMetricFocus(*v)
	}
	return _u
}

// ClearMetricFocus clears the value of the "metric_focus" field.
func (_u *PageUpdateOne) ClearMetricFocus() *PageUpdateOne {
	_u.mutation.ClearMetricFocus()
	return _u
}

// SetStableBaselineID sets the "stable_baseline_id" field.
func (_u *PageUpdateOne) SetStableBaselineID(v string) *PageUpdateOne {
	_u.mutation.SetStableBaselineID(v)
	return _u
}

// SetNillableStableBaselineID sets the "stable_baseline_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableStableBaselineID(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetStableBaselineID(*v)
	}
	return _u
}

// ClearStableBaselineID clears the value of the "stable_baseline_id" field.
func (_u *PageUpdateOne) ClearStableBaselineID() *PageUpdateOne {
	_u.mutation.ClearStableBaselineID()
	return _u
}

// SetLastScanID sets the "last_scan_id" field.
func (_u *PageUpdateOne) SetLastScanID(v string) *PageUpdateOne {
	_u.mutation.SetLastScanID(v)
	return _u
}

// SetNillableLastScanID sets the "last_scan_id" field if the given value is not nil.
func (_u *PageUpdateOne) SetNillableLastScanID(v *string) *PageUpdateOne {
	if v != nil {
		_u.SetLastScanID(*v)
	}
	return _u
}

// ClearLastScanID clears the value of the "last_scan_id" field.
func (_u *PageUpdateOne) ClearLastScanID() *PageUpdateOne {
	_u.mutation.ClearLastScanID()
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *PageUpdateOne) AddAnalysisIDs(ids ...string) *PageUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *PageUpdateOne) AddAnalyses(v ...*Analysis) *PageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddDetectedChangeIDs adds the "detected_changes" edge to the DetectedChange entity by IDs.
func (_u *PageUpdateOne) AddDetectedChangeIDs(ids ...string) *PageUpdateOne {
	_u.mutation.AddDetectedChangeIDs(ids...)
	return _u
}

// AddDetectedChanges adds the "detected_changes" edges to the DetectedChange entity.
func (_u *PageUpdateOne) AddDetectedChanges(v ...*DetectedChange) *PageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDetectedChangeIDs(ids...)
}

// AddTrackedSuggestionIDs adds the "tracked_suggestions" edge to the TrackedSuggestion entity by IDs.
func (_u *PageUpdateOne) AddTrackedSuggestionIDs(ids ...string) *PageUpdateOne {
	_u.mutation.AddTrackedSuggestionIDs(ids...)
	return _u
}

// AddTrackedSuggestions adds the "tracked_suggestions" edges to the TrackedSuggestion entity.
func (_u *PageUpdateOne) AddTrackedSuggestions(v ...*TrackedSuggestion) *PageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrackedSuggestionIDs(ids...)
}

// Mutation returns the PageMutation object of the builder.
func (_u *PageUpdateOne) Mutation() *PageMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *PageUpdateOne) ClearAnalyses() *PageUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *PageUpdateOne) RemoveAnalysisIDs(ids ...string) *PageUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *PageUpdateOne) RemoveAnalyses(v ...*Analysis) *PageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearDetectedChanges clears all "detected_changes" edges to the DetectedChange entity.
func (_u *PageUpdateOne) ClearDetectedChanges() *PageUpdateOne {
	_u.mutation.ClearDetectedChanges()
	return _u
}

// RemoveDetectedChangeIDs removes the "detected_changes" edge to DetectedChange entities by IDs.
func (_u *PageUpdateOne) RemoveDetectedChangeIDs(ids ...string) *PageUpdateOne {
	_u.mutation.RemoveDetectedChangeIDs(ids...)
	return _u
}

// RemoveDetectedChanges removes "detected_changes" edges to DetectedChange entities.
func (_u *PageUpdateOne) RemoveDetectedChanges(v ...*DetectedChange) *PageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDetectedChangeIDs(ids...)
}

// ClearTrackedSuggestions clears all "tracked_suggestions" edges to the TrackedSuggestion entity.
func (_u *PageUpdateOne) ClearTrackedSuggestions() *PageUpdateOne {
	_u.mutation.ClearTrackedSuggestions()
	return _u
}

// RemoveTrackedSuggestionIDs removes the "tracked_suggestions" edge to TrackedSuggestion entities by IDs.
func (_u *PageUpdateOne) RemoveTrackedSuggestionIDs(ids ...string) *PageUpdateOne {
	_u.mutation.RemoveTrackedSuggestionIDs(ids...)
	return _u
}

// RemoveTrackedSuggestions removes "tracked_suggestions" edges to TrackedSuggestion entities.
func (_u *PageUpdateOne) RemoveTrackedSuggestions(v ...*TrackedSuggestion) *PageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrackedSuggestionIDs(ids...)
}

// Where appends a list predicates to the PageUpdate builder.
func (_u *PageUpdateOne) Where(ps ...predicate.Page) *PageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PageUpdateOne) Select(field string, fields ...string) *PageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Page entity.
func (_u *PageUpdateOne) Save(ctx context.Context) (*Page, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PageUpdateOne) SaveX(ctx context.Context) *Page {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PageUpdateOne) check() error {
	if v, ok := _u.mutation.ScanFrequency(); ok {
		if err := page.ScanFrequencyValidator(v); err != nil {
			return &ValidationError{Name: "scan_frequency", err: fmt.Errorf(`ent: validator failed for field "Page.scan_frequency": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Page.user"`)
	}
	return nil
}

func (_u *PageUpdateOne) sqlSave(ctx context.Context) (_node *Page, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Page.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, page.FieldID)
		for _, f := range fields {
			if !page.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != page.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(page.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScanFrequency(); ok {
		_spec.SetField(page.FieldScanFrequency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MetricFocus(); ok {
		_spec.SetField(page.FieldMetricFocus, field.TypeString, value)
	}
	if _u.mutation.MetricFocusCleared() {
		_spec.ClearField(page.FieldMetricFocus, field.TypeString)
	}
	if value, ok := _u.mutation.StableBaselineID(); ok {
		_spec.SetField(page.FieldStableBaselineID, field.TypeString, value)
	}
	if _u.mutation.StableBaselineIDCleared() {
		_spec.ClearField(page.FieldStableBaselineID, field.TypeString)
	}
	if value, ok := _u.mutation.LastScanID(); ok {
		_spec.SetField(page.FieldLastScanID, field.TypeString, value)
	}
	if _u.mutation.LastScanIDCleared() {
		_spec.ClearField(page.FieldLastScanID, field.TypeString)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DetectedChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDetectedChangesIDs(); len(nodes) > 0 && !_u.mutation.DetectedChangesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DetectedChangesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrackedSuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrackedSuggestionsIDs(); len(nodes) > 0 && !_u.mutation.TrackedSuggestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrackedSuggestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Page{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{page.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
