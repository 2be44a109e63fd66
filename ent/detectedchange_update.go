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
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// DetectedChangeUpdate is the builder for updating DetectedChange entities.
type DetectedChangeUpdate struct {
	config
	hooks    []Hook
	mutation *DetectedChangeMutation
}

// Where appends a list predicates to the DetectedChangeUpdate builder.
func (_u *DetectedChangeUpdate) Where(ps ...predicate.DetectedChange) *DetectedChangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetElement sets the "element" field.
func (_u *DetectedChangeUpdate) SetElement(v string) *DetectedChangeUpdate {
	_u.mutation.SetElement(v)
	return _u
}

// SetNillableElement sets the "element" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableElement(v *string) *DetectedChangeUpdate {
	if v != nil {
		_u.SetElement(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *DetectedChangeUpdate) SetScope(v detectedchange.Scope) *DetectedChangeUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableScope(v *detectedchange.Scope) *DetectedChangeUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetBeforeValue sets the "before_value" field.
func (_u *DetectedChangeUpdate) SetBeforeValue(v string) *DetectedChangeUpdate {
	_u.mutation.SetBeforeValue(v)
	return _u
}

// SetNillableBeforeValue sets the "before_value" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableBeforeValue(v *string) *DetectedChangeUpdate {
	if v != nil {
		_u.SetBeforeValue(*v)
	}
	return _u
}

// SetAfterValue sets the "after_value" field.
func (_u *DetectedChangeUpdate) SetAfterValue(v string) *DetectedChangeUpdate {
	_u.mutation.SetAfterValue(v)
	return _u
}

// SetNillableAfterValue sets the "after_value" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableAfterValue(v *string) *DetectedChangeUpdate {
	if v != nil {
		_u.SetAfterValue(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DetectedChangeUpdate) SetDescription(v string) *DetectedChangeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableDescription(v *string) *DetectedChangeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DetectedChangeUpdate) ClearDescription() *DetectedChangeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectedChangeUpdate) SetStatus(v detectedchange.Status) *DetectedChangeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableStatus(v *detectedchange.Status) *DetectedChangeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHypothesis sets the "hypothesis" field.
func (_u *DetectedChangeUpdate) SetHypothesis(v string) *DetectedChangeUpdate {
	_u.mutation.SetHypothesis(v)
	return _u
}

// SetNillableHypothesis sets the "hypothesis" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableHypothesis(v *string) *DetectedChangeUpdate {
	if v != nil {
		_u.SetHypothesis(*v)
	}
	return _u
}

// ClearHypothesis clears the value of the "hypothesis" field.
func (_u *DetectedChangeUpdate) ClearHypothesis() *DetectedChangeUpdate {
	_u.mutation.ClearHypothesis()
	return _u
}

// SetCorrelationMetrics sets the "correlation_metrics" field.
func (_u *DetectedChangeUpdate) SetCorrelationMetrics(v map[string]interface{}) *DetectedChangeUpdate {
	_u.mutation.SetCorrelationMetrics(v)
	return _u
}

// ClearCorrelationMetrics clears the value of the "correlation_metrics" field.
func (_u *DetectedChangeUpdate) ClearCorrelationMetrics() *DetectedChangeUpdate {
	_u.mutation.ClearCorrelationMetrics()
	return _u
}

// SetCorrelationUnlockedAt sets the "correlation_unlocked_at" field.
func (_u *DetectedChangeUpdate) SetCorrelationUnlockedAt(v time.Time) *DetectedChangeUpdate {
	_u.mutation.SetCorrelationUnlockedAt(v)
	return _u
}

// SetNillableCorrelationUnlockedAt sets the "correlation_unlocked_at" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableCorrelationUnlockedAt(v *time.Time) *DetectedChangeUpdate {
	if v != nil {
		_u.SetCorrelationUnlockedAt(*v)
	}
	return _u
}

// ClearCorrelationUnlockedAt clears the value of the "correlation_unlocked_at" field.
func (_u *DetectedChangeUpdate) ClearCorrelationUnlockedAt() *DetectedChangeUpdate {
	_u.mutation.ClearCorrelationUnlockedAt()
	return _u
}

// SetObservationText sets the "observation_text" field.
func (_u *DetectedChangeUpdate) SetObservationText(v string) *DetectedChangeUpdate {
	_u.mutation.SetObservationText(v)
	return _u
}

// SetNillableObservationText sets the "observation_text" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableObservationText(v *string) *DetectedChangeUpdate {
	if v != nil {
		_u.SetObservationText(*v)
	}
	return _u
}

// ClearObservationText clears the value of the "observation_text" field.
func (_u *DetectedChangeUpdate) ClearObservationText() *DetectedChangeUpdate {
	_u.mutation.ClearObservationText()
	return _u
}

// SetMatchConfidence sets the "match_confidence" field.
func (_u *DetectedChangeUpdate) SetMatchConfidence(v float64) *DetectedChangeUpdate {
	_u.mutation.ResetMatchConfidence()
	_u.mutation.SetMatchConfidence(v)
	return _u
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableMatchConfidence(v *float64) *DetectedChangeUpdate {
	if v != nil {
		_u.SetMatchConfidence(*v)
	}
	return _u
}

// AddMatchConfidence adds value to the "match_confidence" field.
func (_u *DetectedChangeUpdate) AddMatchConfidence(v float64) *DetectedChangeUpdate {
	_u.mutation.AddMatchConfidence(v)
	return _u
}

// ClearMatchConfidence clears the value of the "match_confidence" field.
func (_u *DetectedChangeUpdate) ClearMatchConfidence() *DetectedChangeUpdate {
	_u.mutation.ClearMatchConfidence()
	return _u
}

// SetMatchRationale sets the "match_rationale" field.
func (_u *DetectedChangeUpdate) SetMatchRationale(v string) *DetectedChangeUpdate {
	_u.mutation.SetMatchRationale(v)
	return _u
}

// SetNillableMatchRationale sets the "match_rationale" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableMatchRationale(v *string) *DetectedChangeUpdate {
	if v != nil {
		_u.SetMatchRationale(*v)
	}
	return _u
}

// ClearMatchRationale clears the value of the "match_rationale" field.
func (_u *DetectedChangeUpdate) ClearMatchRationale() *DetectedChangeUpdate {
	_u.mutation.ClearMatchRationale()
	return _u
}

// SetRevertedAt sets the "reverted_at" field.
func (_u *DetectedChangeUpdate) SetRevertedAt(v time.Time) *DetectedChangeUpdate {
	_u.mutation.SetRevertedAt(v)
	return _u
}

// SetNillableRevertedAt sets the "reverted_at" field if the given value is not nil.
func (_u *DetectedChangeUpdate) SetNillableRevertedAt(v *time.Time) *DetectedChangeUpdate {
	if v != nil {
		_u.SetRevertedAt(*v)
	}
	return _u
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (_u *DetectedChangeUpdate) ClearRevertedAt() *DetectedChangeUpdate {
	_u.mutation.ClearRevertedAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the ChangeCheckpoint entity by IDs.
func (_u *DetectedChangeUpdate) AddCheckpointIDs(ids ...string) *DetectedChangeUpdate {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the ChangeCheckpoint entity.
func (_u *DetectedChangeUpdate) AddCheckpoints(v ...*ChangeCheckpoint) *DetectedChangeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddLifecycleEventIDs adds the "lifecycle_events" edge to the ChangeLifecycleEvent entity by IDs.
func (_u *DetectedChangeUpdate) AddLifecycleEventIDs(ids ...string) *DetectedChangeUpdate {
	_u.mutation.AddLifecycleEventIDs(ids...)
	return _u
}

// AddLifecycleEvents adds the "lifecycle_events" edges to the ChangeLifecycleEvent entity.
func (_u *DetectedChangeUpdate) AddLifecycleEvents(v ...*ChangeLifecycleEvent) *DetectedChangeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLifecycleEventIDs(ids...)
}

// AddOutcomeFeedbackIDs adds the "outcome_feedback" edge to the OutcomeFeedback entity by IDs.
func (_u *DetectedChangeUpdate) AddOutcomeFeedbackIDs(ids ...string) *DetectedChangeUpdate {
	_u.mutation.AddOutcomeFeedbackIDs(ids...)
	return _u
}

// AddOutcomeFeedback adds the "outcome_feedback" edges to the OutcomeFeedback entity.
func (_u *DetectedChangeUpdate) AddOutcomeFeedback(v ...*OutcomeFeedback) *DetectedChangeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeFeedbackIDs(ids...)
}

// Mutation returns the DetectedChangeMutation object of the builder.
func (_u *DetectedChangeUpdate) Mutation() *DetectedChangeMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the ChangeCheckpoint entity.
func (_u *DetectedChangeUpdate) ClearCheckpoints() *DetectedChangeUpdate {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to ChangeCheckpoint entities by IDs.
func (_u *DetectedChangeUpdate) RemoveCheckpointIDs(ids ...string) *DetectedChangeUpdate {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to ChangeCheckpoint entities.
func (_u *DetectedChangeUpdate) RemoveCheckpoints(v ...*ChangeCheckpoint) *DetectedChangeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearLifecycleEvents clears all "lifecycle_events" edges to the ChangeLifecycleEvent entity.
func (_u *DetectedChangeUpdate) ClearLifecycleEvents() *DetectedChangeUpdate {
	_u.mutation.ClearLifecycleEvents()
	return _u
}

// RemoveLifecycleEventIDs removes the "lifecycle_events" edge to ChangeLifecycleEvent entities by IDs.
func (_u *DetectedChangeUpdate) RemoveLifecycleEventIDs(ids ...string) *DetectedChangeUpdate {
	_u.mutation.RemoveLifecycleEventIDs(ids...)
	return _u
}

// RemoveLifecycleEvents removes "lifecycle_events" edges to ChangeLifecycleEvent entities.
func (_u *DetectedChangeUpdate) RemoveLifecycleEvents(v ...*ChangeLifecycleEvent) *DetectedChangeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLifecycleEventIDs(ids...)
}

// ClearOutcomeFeedback clears all "outcome_feedback" edges to the OutcomeFeedback entity.
func (_u *DetectedChangeUpdate) ClearOutcomeFeedback() *DetectedChangeUpdate {
	_u.mutation.ClearOutcomeFeedback()
	return _u
}

// RemoveOutcomeFeedbackIDs removes the "outcome_feedback" edge to OutcomeFeedback entities by IDs.
func (_u *DetectedChangeUpdate) RemoveOutcomeFeedbackIDs(ids ...string) *DetectedChangeUpdate {
	_u.mutation.RemoveOutcomeFeedbackIDs(ids...)
	return _u
}

// RemoveOutcomeFeedback removes "outcome_feedback" edges to OutcomeFeedback entities.
func (_u *DetectedChangeUpdate) RemoveOutcomeFeedback(v ...*OutcomeFeedback) *DetectedChangeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeFeedbackIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DetectedChangeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectedChangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DetectedChangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectedChangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectedChangeUpdate) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := detectedchange.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "DetectedChange.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := detectedchange.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectedChange.status": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetectedChange.page"`)
	}
	return nil
}

func (_u *DetectedChangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectedchange.Table, detectedchange.Columns, sqlgraph.NewFieldSpec(detectedchange.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Element(); ok {
		_spec.SetField(detectedchange.FieldElement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(detectedchange.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BeforeValue(); ok {
		_spec.SetField(detectedchange.FieldBeforeValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.AfterValue(); ok {
		_spec.SetField(detectedchange.FieldAfterValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(detectedchange.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(detectedchange.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detectedchange.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.FirstDetectedAnalysisIDCleared() {
		_spec.ClearField(detectedchange.FieldFirstDetectedAnalysisID, field.TypeString)
	}
	if value, ok := _u.mutation.Hypothesis(); ok {
		_spec.SetField(detectedchange.FieldHypothesis, field.TypeString, value)
	}
	if _u.mutation.HypothesisCleared() {
		_spec.ClearField(detectedchange.FieldHypothesis, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationMetrics(); ok {
		_spec.SetField(detectedchange.FieldCorrelationMetrics, field.TypeJSON, value)
	}
	if _u.mutation.CorrelationMetricsCleared() {
		_spec.ClearField(detectedchange.FieldCorrelationMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelationUnlockedAt(); ok {
		_spec.SetField(detectedchange.FieldCorrelationUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.CorrelationUnlockedAtCleared() {
		_spec.ClearField(detectedchange.FieldCorrelationUnlockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ObservationText(); ok {
		_spec.SetField(detectedchange.FieldObservationText, field.TypeString, value)
	}
	if _u.mutation.ObservationTextCleared() {
		_spec.ClearField(detectedchange.FieldObservationText, field.TypeString)
	}
	if value, ok := _u.mutation.MatchConfidence(); ok {
		_spec.SetField(detectedchange.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchConfidence(); ok {
		_spec.AddField(detectedchange.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MatchConfidenceCleared() {
		_spec.ClearField(detectedchange.FieldMatchConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MatchRationale(); ok {
		_spec.SetField(detectedchange.FieldMatchRationale, field.TypeString, value)
	}
	if _u.mutation.MatchRationaleCleared() {
		_spec.ClearField(detectedchange.FieldMatchRationale, field.TypeString)
	}
	if value, ok := _u.mutation.RevertedAt(); ok {
		_spec.SetField(detectedchange.FieldRevertedAt, field.TypeTime, value)
	}
	if _u.mutation.RevertedAtCleared() {
		_spec.ClearField(detectedchange.FieldRevertedAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.CheckpointsTable,
			Columns: []string{detectedchange.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.CheckpointsTable,
			Columns: []string{detectedchange.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.CheckpointsTable,
			Columns: []string{detectedchange.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LifecycleEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.LifecycleEventsTable,
			Columns: []string{detectedchange.LifecycleEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLifecycleEventsIDs(); len(nodes) > 0 && !_u.mutation.LifecycleEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.LifecycleEventsTable,
			Columns: []string{detectedchange.LifecycleEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LifecycleEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.LifecycleEventsTable,
			Columns: []string{detectedchange.LifecycleEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomeFeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.OutcomeFeedbackTable,
			Columns: []string{detectedchange.OutcomeFeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomeFeedbackIDs(); len(nodes) > 0 && !_u.mutation.OutcomeFeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.OutcomeFeedbackTable,
			Columns: []string{detectedchange.OutcomeFeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomeFeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.OutcomeFeedbackTable,
			Columns: []string{detectedchange.OutcomeFeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectedchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DetectedChangeUpdateOne is the builder for updating a single DetectedChange entity.
type DetectedChangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DetectedChangeMutation
}

// SetElement sets the "element" field.
func (_u *DetectedChangeUpdateOne) SetElement(v string) *DetectedChangeUpdateOne {
	_u.mutation.SetElement(v)
	return _u
}

// SetNillableElement sets the "element" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableElement(v *string) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetElement(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *DetectedChangeUpdateOne) SetScope(v detectedchange.Scope) *DetectedChangeUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableScope(v *detectedchange.Scope) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetBeforeValue sets the "before_value" field.
func (_u *DetectedChangeUpdateOne) SetBeforeValue(v string) *DetectedChangeUpdateOne {
	_u.mutation.SetBeforeValue(v)
	return _u
}

// SetNillableBeforeValue sets the "before_value" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableBeforeValue(v *string) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetBeforeValue(*v)
	}
	return _u
}

// SetAfterValue sets the "after_value" field.
func (_u *DetectedChangeUpdateOne) SetAfterValue(v string) *DetectedChangeUpdateOne {
	_u.mutation.SetAfterValue(v)
	return _u
}

// SetNillableAfterValue sets the "after_value" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableAfterValue(v *string) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetAfterValue(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *DetectedChangeUpdateOne) SetDescription(v string) *DetectedChangeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableDescription(v *string) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DetectedChangeUpdateOne) ClearDescription() *DetectedChangeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DetectedChangeUpdateOne) SetStatus(v detectedchange.Status) *DetectedChangeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableStatus(v *detectedchange.Status) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHypothesis sets the "hypothesis" field.
func (_u *DetectedChangeUpdateOne) SetHypothesis(v string) *DetectedChangeUpdateOne {
	_u.mutation.SetHypothesis(v)
	return _u
}

// SetNillableHypothesis sets the "hypothesis" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableHypothesis(v *string) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetHypothesis(*v)
	}
	return _u
}

// ClearHypothesis clears the value of the "hypothesis" field.
func (_u *DetectedChangeUpdateOne) ClearHypothesis() *DetectedChangeUpdateOne {
	_u.mutation.ClearHypothesis()
	return _u
}

// SetCorrelationMetrics sets the "correlation_metrics" field.
func (_u *DetectedChangeUpdateOne) SetCorrelationMetrics(v map[string]interface{}) *DetectedChangeUpdateOne {
	_u.mutation.SetCorrelationMetrics(v)
	return _u
}

// ClearCorrelationMetrics clears the value of the "correlation_metrics" field.
func (_u *DetectedChangeUpdateOne) ClearCorrelationMetrics() *DetectedChangeUpdateOne {
	_u.mutation.ClearCorrelationMetrics()
	return _u
}

// SetCorrelationUnlockedAt sets the "correlation_unlocked_at" field.
func (_u *DetectedChangeUpdateOne) SetCorrelationUnlockedAt(v time.Time) *DetectedChangeUpdateOne {
	_u.mutation.SetCorrelationUnlockedAt(v)
	return _u
}

// SetNillableCorrelationUnlockedAt sets the "correlation_unlocked_at" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableCorrelationUnlockedAt(v *time.Time) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetCorrelationUnlockedAt(*v)
	}
	return _u
}

// ClearCorrelationUnlockedAt clears the value of the "correlation_unlocked_at" field.
func (_u *DetectedChangeUpdateOne) ClearCorrelationUnlockedAt() *DetectedChangeUpdateOne {
	_u.mutation.ClearCorrelationUnlockedAt()
	return _u
}

// SetObservationText sets the "observation_text" field.
func (_u *DetectedChangeUpdateOne) SetObservationText(v string) *DetectedChangeUpdateOne {
	_u.mutation.SetObservationText(v)
	return _u
}

// SetNillableObservationText sets the "observation_text" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableObservationText(v *string) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetObservationText(*v)
	}
	return _u
}

// ClearObservationText clears the value of the "observation_text" field.
func (_u *DetectedChangeUpdateOne) ClearObservationText() *DetectedChangeUpdateOne {
	_u.mutation.ClearObservationText()
	return _u
}

// SetMatchConfidence sets the "match_confidence" field.
func (_u *DetectedChangeUpdateOne) SetMatchConfidence(v float64) *DetectedChangeUpdateOne {
	_u.mutation.ResetMatchConfidence()
	_u.mutation.SetMatchConfidence(v)
	return _u
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableMatchConfidence(v *float64) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetMatchConfidence(*v)
	}
	return _u
}

// AddMatchConfidence adds value to the "match_confidence" field.
func (_u *DetectedChangeUpdateOne) AddMatchConfidence(v float64) *DetectedChangeUpdateOne {
	_u.mutation.AddMatchConfidence(v)
	return _u
}

// ClearMatchConfidence clears the value of the "match_confidence" field.
func (_u *DetectedChangeUpdateOne) ClearMatchConfidence() *DetectedChangeUpdateOne {
	_u.mutation.ClearMatchConfidence()
	return _u
}

// SetMatchRationale sets the "match_rationale" field.
func (_u *DetectedChangeUpdateOne) SetMatchRationale(v string) *DetectedChangeUpdateOne {
	_u.mutation.SetMatchRationale(v)
	return _u
}

// SetNillableMatchRationale sets the "match_rationale" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableMatchRationale(v *string) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetMatchRationale(*v)
	}
	return _u
}

// ClearMatchRationale clears the value of the "match_rationale" field.
func (_u *DetectedChangeUpdateOne) ClearMatchRationale() *DetectedChangeUpdateOne {
	_u.mutation.ClearMatchRationale()
	return _u
}

// SetRevertedAt sets the "reverted_at" field.
func (_u *DetectedChangeUpdateOne) SetRevertedAt(v time.Time) *DetectedChangeUpdateOne {
	_u.mutation.SetRevertedAt(v)
	return _u
}

// SetNillableRevertedAt sets the "reverted_at" field if the given value is not nil.
func (_u *DetectedChangeUpdateOne) SetNillableRevertedAt(v *time.Time) *DetectedChangeUpdateOne {
	if v != nil {
		_u.SetRevertedAt(*v)
	}
	return _u
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (_u *DetectedChangeUpdateOne) ClearRevertedAt() *DetectedChangeUpdateOne {
	_u.mutation.ClearRevertedAt()
	return _u
}

// AddCheckpointIDs adds the "checkpoints" edge to the ChangeCheckpoint entity by IDs.
func (_u *DetectedChangeUpdateOne) AddCheckpointIDs(ids ...string) *DetectedChangeUpdateOne {
	_u.mutation.AddCheckpointIDs(ids...)
	return _u
}

// AddCheckpoints adds the "checkpoints" edges to the ChangeCheckpoint entity.
func (_u *DetectedChangeUpdateOne) AddCheckpoints(v ...*ChangeCheckpoint) *DetectedChangeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCheckpointIDs(ids...)
}

// AddLifecycleEventIDs adds the "lifecycle_events" edge to the ChangeLifecycleEvent entity by IDs.
func (_u *DetectedChangeUpdateOne) AddLifecycleEventIDs(ids ...string) *DetectedChangeUpdateOne {
	_u.mutation.AddLifecycleEventIDs(ids...)
	return _u
}

// AddLifecycleEvents adds the "lifecycle_events" edges to the ChangeLifecycleEvent entity.
func (_u *DetectedChangeUpdateOne) AddLifecycleEvents(v ...*ChangeLifecycleEvent) *DetectedChangeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLifecycleEventIDs(ids...)
}

// AddOutcomeFeedbackIDs adds the "outcome_feedback" edge to the OutcomeFeedback entity by IDs.
func (_u *DetectedChangeUpdateOne) AddOutcomeFeedbackIDs(ids ...string) *DetectedChangeUpdateOne {
	_u.mutation.AddOutcomeFeedbackIDs(ids...)
	return _u
}

// AddOutcomeFeedback adds the "outcome_feedback" edges to the OutcomeFeedback entity.
func (_u *DetectedChangeUpdateOne) AddOutcomeFeedback(v ...*OutcomeFeedback) *DetectedChangeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeFeedbackIDs(ids...)
}

// Mutation returns the DetectedChangeMutation object of the builder.
func (_u *DetectedChangeUpdateOne) Mutation() *DetectedChangeMutation {
	return _u.mutation
}

// ClearCheckpoints clears all "checkpoints" edges to the ChangeCheckpoint entity.
func (_u *DetectedChangeUpdateOne) ClearCheckpoints() *DetectedChangeUpdateOne {
	_u.mutation.ClearCheckpoints()
	return _u
}

// RemoveCheckpointIDs removes the "checkpoints" edge to ChangeCheckpoint entities by IDs.
func (_u *DetectedChangeUpdateOne) RemoveCheckpointIDs(ids ...string) *DetectedChangeUpdateOne {
	_u.mutation.RemoveCheckpointIDs(ids...)
	return _u
}

// RemoveCheckpoints removes "checkpoints" edges to ChangeCheckpoint entities.
func (_u *DetectedChangeUpdateOne) RemoveCheckpoints(v ...*ChangeCheckpoint) *DetectedChangeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCheckpointIDs(ids...)
}

// ClearLifecycleEvents clears all "lifecycle_events" edges to the ChangeLifecycleEvent entity.
func (_u *DetectedChangeUpdateOne) ClearLifecycleEvents() *DetectedChangeUpdateOne {
	_u.mutation.ClearLifecycleEvents()
	return _u
}

// RemoveLifecycleEventIDs removes the "lifecycle_events" edge to ChangeLifecycleEvent entities by IDs.
func (_u *DetectedChangeUpdateOne) RemoveLifecycleEventIDs(ids ...string) *DetectedChangeUpdateOne {
	_u.mutation.RemoveLifecycleEventIDs(ids...)
	return _u
}

// RemoveLifecycleEvents removes "lifecycle_events" edges to ChangeLifecycleEvent entities.
func (_u *DetectedChangeUpdateOne) RemoveLifecycleEvents(v ...*ChangeLifecycleEvent) *DetectedChangeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLifecycleEventIDs(ids...)
}

// ClearOutcomeFeedback clears all "outcome_feedback" edges to the OutcomeFeedback entity.
func (_u *DetectedChangeUpdateOne) ClearOutcomeFeedback() *DetectedChangeUpdateOne {
	_u.mutation.ClearOutcomeFeedback()
	return _u
}

// RemoveOutcomeFeedbackIDs removes the "outcome_feedback" edge to OutcomeFeedback entities by IDs.
func (_u *DetectedChangeUpdateOne) RemoveOutcomeFeedbackIDs(ids ...string) *DetectedChangeUpdateOne {
	_u.mutation.RemoveOutcomeFeedbackIDs(ids...)
	return _u
}

// RemoveOutcomeFeedback removes "outcome_feedback" edges to OutcomeFeedback entities.
func (_u *DetectedChangeUpdateOne) RemoveOutcomeFeedback(v ...*OutcomeFeedback) *DetectedChangeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeFeedbackIDs(ids...)
}

// Where appends a list predicates to the DetectedChangeUpdate builder.
func (_u *DetectedChangeUpdateOne) Where(ps ...predicate.DetectedChange) *DetectedChangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DetectedChangeUpdateOne) Select(field string, fields ...string) *DetectedChangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DetectedChange entity.
func (_u *DetectedChangeUpdateOne) Save(ctx context.Context) (*DetectedChange, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DetectedChangeUpdateOne) SaveX(ctx context.Context) *DetectedChange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DetectedChangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DetectedChangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DetectedChangeUpdateOne) check() error {
	if v, ok := _u.mutation.Scope(); ok {
		if err := detectedchange.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "DetectedChange.scope": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := detectedchange.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectedChange.status": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DetectedChange.page"`)
	}
	return nil
}

func (_u *DetectedChangeUpdateOne) sqlSave(ctx context.Context) (_node *DetectedChange, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(detectedchange.Table, detectedchange.Columns, sqlgraph.NewFieldSpec(detectedchange.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DetectedChange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detectedchange.FieldID)
		for _, f := range fields {
			if !detectedchange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != detectedchange.FieldID {
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
	if value, ok := _u.mutation.Element(); ok {
		_spec.SetField(detectedchange.FieldElement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(detectedchange.FieldScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BeforeValue(); ok {
		_spec.SetField(detectedchange.FieldBeforeValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.AfterValue(); ok {
		_spec.SetField(detectedchange.FieldAfterValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(detectedchange.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(detectedchange.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(detectedchange.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.FirstDetectedAnalysisIDCleared() {
		_spec.ClearField(detectedchange.FieldFirstDetectedAnalysisID, field.TypeString)
	}
	if value, ok := _u.mutation.Hypothesis(); ok {
		_spec.SetField(detectedchange.FieldHypothesis, field.TypeString, value)
	}
	if _u.mutation.HypothesisCleared() {
		_spec.ClearField(detectedchange.FieldHypothesis, field.TypeString)
	}
	if value, ok := _u.mutation.CorrelationMetrics(); ok {
		_spec.SetField(detectedchange.FieldCorrelationMetrics, field.TypeJSON, value)
	}
	if _u.mutation.CorrelationMetricsCleared() {
		_spec.ClearField(detectedchange.FieldCorrelationMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrelationUnlockedAt(); ok {
		_spec.SetField(detectedchange.FieldCorrelationUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.CorrelationUnlockedAtCleared() {
		_spec.ClearField(detectedchange.FieldCorrelationUnlockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ObservationText(); ok {
		_spec.SetField(detectedchange.FieldObservationText, field.TypeString, value)
	}
	if _u.mutation.ObservationTextCleared() {
		_spec.ClearField(detectedchange.FieldObservationText, field.TypeString)
	}
	if value, ok := _u.mutation.MatchConfidence(); ok {
		_spec.SetField(detectedchange.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchConfidence(); ok {
		_spec.AddField(detectedchange.FieldMatchConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MatchConfidenceCleared() {
		_spec.ClearField(detectedchange.FieldMatchConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MatchRationale(); ok {
		_spec.SetField(detectedchange.FieldMatchRationale, field.TypeString, value)
	}
	if _u.mutation.MatchRationaleCleared() {
		_spec.ClearField(detectedchange.FieldMatchRationale, field.TypeString)
	}
	if value, ok := _u.mutation.RevertedAt(); ok {
		_spec.SetField(detectedchange.FieldRevertedAt, field.TypeTime, value)
	}
	if _u.mutation.RevertedAtCleared() {
		_spec.ClearField(detectedchange.FieldRevertedAt, field.TypeTime)
	}
	if _u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.CheckpointsTable,
			Columns: []string{detectedchange.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCheckpointsIDs(); len(nodes) > 0 && !_u.mutation.CheckpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.CheckpointsTable,
			Columns: []string{detectedchange.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CheckpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.CheckpointsTable,
			Columns: []string{detectedchange.CheckpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changecheckpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LifecycleEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.LifecycleEventsTable,
			Columns: []string{detectedchange.LifecycleEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLifecycleEventsIDs(); len(nodes) > 0 && !_u.mutation.LifecycleEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.LifecycleEventsTable,
			Columns: []string{detectedchange.LifecycleEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LifecycleEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.LifecycleEventsTable,
			Columns: []string{detectedchange.LifecycleEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changelifecycleevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomeFeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.OutcomeFeedbackTable,
			Columns: []string{detectedchange.OutcomeFeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomeFeedbackIDs(); len(nodes) > 0 && !_u.mutation.OutcomeFeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.OutcomeFeedbackTable,
			Columns: []string{detectedchange.OutcomeFeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomeFeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   detectedchange.OutcomeFeedbackTable,
			Columns: []string{detectedchange.OutcomeFeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomefeedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DetectedChange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{detectedchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
