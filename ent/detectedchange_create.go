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
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/page"
)

// DetectedChangeCreate is the builder for creating a DetectedChange entity.
type DetectedChangeCreate struct {
	config
	mutation *DetectedChangeMutation
	hooks    []Hook
}

// SetPageID sets the "page_id" field.
func (_c *DetectedChangeCreate) SetPageID(v string) *DetectedChangeCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DetectedChangeCreate) SetUserID(v string) *DetectedChangeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetElement sets the "element" field.
func (_c *DetectedChangeCreate) SetElement(v string) *DetectedChangeCreate {
	_c.mutation.SetElement(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *DetectedChangeCreate) SetScope(v detectedchange.Scope) *DetectedChangeCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableScope(v *detectedchange.Scope) *DetectedChangeCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetBeforeValue sets the "before_value" field.
func (_c *DetectedChangeCreate) SetBeforeValue(v string) *DetectedChangeCreate {
	_c.mutation.SetBeforeValue(v)
	return _c
}

// SetAfterValue sets the "after_value" field.
func (_c *DetectedChangeCreate) SetAfterValue(v string) *DetectedChangeCreate {
	_c.mutation.SetAfterValue(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *DetectedChangeCreate) SetDescription(v string) *DetectedChangeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableDescription(v *string) *DetectedChangeCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DetectedChangeCreate) SetStatus(v detectedchange.Status) *DetectedChangeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableStatus(v *detectedchange.Status) *DetectedChangeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (_c *DetectedChangeCreate) SetFirstDetectedAt(v time.Time) *DetectedChangeCreate {
	_c.mutation.SetFirstDetectedAt(v)
	return _c
}

// SetNillableFirstDetectedAt sets the "first_detected_at" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableFirstDetectedAt(v *time.Time) *DetectedChangeCreate {
	if v != nil {
		_c.SetFirstDetectedAt(*v)
	}
	return _c
}

// SetDetectedOn sets the "detected_on" field.
func (_c *DetectedChangeCreate) SetDetectedOn(v string) *DetectedChangeCreate {
	_c.mutation.SetDetectedOn(v)
	return _c
}

// SetFirstDetectedAnalysisID sets the "first_detected_analysis_id" field.
func (_c *DetectedChangeCreate) SetFirstDetectedAnalysisID(v string) *DetectedChangeCreate {
	_c.mutation.SetFirstDetectedAnalysisID(v)
	return _c
}

// SetNillableFirstDetectedAnalysisID sets the "first_detected_analysis_id" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableFirstDetectedAnalysisID(v *string) *DetectedChangeCreate {
	if v != nil {
		_c.SetFirstDetectedAnalysisID(*v)
	}
	return _c
}

// SetHypothesis sets the "hypothesis" field.
func (_c *DetectedChangeCreate) SetHypothesis(v string) *DetectedChangeCreate {
	_c.mutation.SetHypothesis(v)
	return _c
}

// SetNillableHypothesis sets the "hypothesis" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableHypothesis(v *string) *DetectedChangeCreate {
	if v != nil {
		_c.SetHypothesis(*v)
	}
	return _c
}

// SetCorrelationMetrics sets the "correlation_metrics" field.
func (_c *DetectedChangeCreate) SetCorrelationMetrics(v map[string]interface{}) *DetectedChangeCreate {
	_c.mutation.SetCorrelationMetrics(v)
	return _c
}

// SetCorrelationUnlockedAt sets the "correlation_unlocked_at" field.
func (_c *DetectedChangeCreate) SetCorrelationUnlockedAt(v time.Time) *DetectedChangeCreate {
	_c.mutation.SetCorrelationUnlockedAt(v)
	return _c
}

// SetNillableCorrelationUnlockedAt sets the "correlation_unlocked_at" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableCorrelationUnlockedAt(v *time.Time) *DetectedChangeCreate {
	if v != nil {
		_c.SetCorrelationUnlockedAt(*v)
	}
	return _c
}

// SetObservationText sets the "observation_text" field.
func (_c *DetectedChangeCreate) SetObservationText(v string) *DetectedChangeCreate {
	_c.mutation.SetObservationText(v)
	return _c
}

// SetNillableObservationText sets the "observation_text" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableObservationText(v *string) *DetectedChangeCreate {
	if v != nil {
		_c.SetObservationText(*v)
	}
	return _c
}

// SetMatchConfidence sets the "match_confidence" field.
func (_c *DetectedChangeCreate) SetMatchConfidence(v float64) *DetectedChangeCreate {
	_c.mutation.SetMatchConfidence(v)
	return _c
}

// SetNillableMatchConfidence sets the "match_confidence" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableMatchConfidence(v *float64) *DetectedChangeCreate {
	if v != nil {
		_c.SetMatchConfidence(*v)
	}
	return _c
}

// SetMatchRationale sets the "match_rationale" field.
func (_c *DetectedChangeCreate) SetMatchRationale(v string) *DetectedChangeCreate {
	_c.mutation.SetMatchRationale(v)
	return _c
}

// SetNillableMatchRationale sets the "match_rationale" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableMatchRationale(v *string) *DetectedChangeCreate {
	if v != nil {
		_c.SetMatchRationale(*v)
	}
	return _c
}

// SetRevertedAt sets the "reverted_at" field.
func (_c *DetectedChangeCreate) SetRevertedAt(v time.Time) *DetectedChangeCreate {
	_c.mutation.SetRevertedAt(v)
	return _c
}

// SetNillableRevertedAt sets the "reverted_at" field if the given value is not nil.
func (_c *DetectedChangeCreate) SetNillableRevertedAt(v *time.Time) *DetectedChangeCreate {
	if v != nil {
		_c.SetRevertedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DetectedChangeCreate) SetID(v string) *DetectedChangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPage sets the "page" edge to the Page entity.
func (_c *DetectedChangeCreate) SetPage(v *Page) *DetectedChangeCreate {
	return _c.SetPageID(v.ID)
}

// AddCheckpointIDs adds the "checkpoints" edge to the ChangeCheckpoint entity by IDs.
func (_c *DetectedChangeCreate) AddCheckpointIDs(ids ...string) *DetectedChangeCreate {
	_c.mutation.AddCheckpointIDs(ids...)
	return _c
}

// AddCheckpoints adds the "checkpoints" edges to the ChangeCheckpoint entity.
func (_c *DetectedChangeCreate) AddCheckpoints(v ...*ChangeCheckpoint) *DetectedChangeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCheckpointIDs(ids...)
}

// AddLifecycleEventIDs adds the "lifecycle_events" edge to the ChangeLifecycleEvent entity by IDs.
func (_c *DetectedChangeCreate) AddLifecycleEventIDs(ids ...string) *DetectedChangeCreate {
	_c.mutation.AddLifecycleEventIDs(ids...)
	return _c
}

// AddLifecycleEvents adds the "lifecycle_events" edges to the ChangeLifecycleEvent entity.
func (_c *DetectedChangeCreate) AddLifecycleEvents(v ...*ChangeLifecycleEvent) *DetectedChangeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLifecycleEventIDs(ids...)
}

// AddOutcomeFeedbackIDs adds the "outcome_feedback" edge to the OutcomeFeedback entity by IDs.
func (_c *DetectedChangeCreate) AddOutcomeFeedbackIDs(ids ...string) *DetectedChangeCreate {
	_c.mutation.AddOutcomeFeedbackIDs(ids...)
	return _c
}

// AddOutcomeFeedback adds the "outcome_feedback" edges to the OutcomeFeedback entity.
func (_c *DetectedChangeCreate) AddOutcomeFeedback(v ...*OutcomeFeedback) *DetectedChangeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutcomeFeedbackIDs(ids...)
}

// Mutation returns the DetectedChangeMutation object of the builder.
func (_c *DetectedChangeCreate) Mutation() *DetectedChangeMutation {
	return _c.mutation
}

// Save creates the DetectedChange in the database.
func (_c *DetectedChangeCreate) Save(ctx context.Context) (*DetectedChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DetectedChangeCreate) SaveX(ctx context.Context) *DetectedChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectedChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectedChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DetectedChangeCreate) defaults() {
	if _, ok := _c.mutation.Scope(); !ok {
		v := detectedchange.DefaultScope
		_c.mutation.SetScope(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := detectedchange.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FirstDetectedAt(); !ok {
		v := detectedchange.DefaultFirstDetectedAt()
		_c.mutation.SetFirstDetectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DetectedChangeCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "DetectedChange.page_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DetectedChange.user_id"`)}
	}
	if _, ok := _c.mutation.Element(); !ok {
		return &ValidationError{Name: "element", err: errors.New(`ent: missing required field "DetectedChange.element"`)}
	}
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "DetectedChange.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := detectedchange.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "DetectedChange.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BeforeValue(); !ok {
		return &ValidationError{Name: "before_value", err: errors.New(`ent: missing required field "DetectedChange.before_value"`)}
	}
	if _, ok := _c.mutation.AfterValue(); !ok {
		return &ValidationError{Name: "after_value", err: errors.New(`ent: missing required field "DetectedChange.after_value"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DetectedChange.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := detectedchange.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DetectedChange.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstDetectedAt(); !ok {
		return &ValidationError{Name: "first_detected_at", err: errors.New(`ent: missing required field "DetectedChange.first_detected_at"`)}
	}
	if _, ok := _c.mutation.DetectedOn(); !ok {
		return &ValidationError{Name: "detected_on", err: errors.New(`ent: missing required field "DetectedChange.detected_on"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "DetectedChange.page"`)}
	}
	return nil
}

func (_c *DetectedChangeCreate) sqlSave(ctx context.Context) (*DetectedChange, error) {
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
			return nil, fmt.Errorf("unexpected DetectedChange.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DetectedChangeCreate) createSpec() (*DetectedChange, *sqlgraph.CreateSpec) {
	var (
		_node = &DetectedChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(detectedchange.Table, sqlgraph.NewFieldSpec(detectedchange.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(detectedchange.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Element(); ok {
		_spec.SetField(detectedchange.FieldElement, field.TypeString, value)
		_node.Element = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(detectedchange.FieldScope, field.TypeEnum, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.BeforeValue(); ok {
		_spec.SetField(detectedchange.FieldBeforeValue, field.TypeString, value)
		_node.BeforeValue = value
	}
	if value, ok := _c.mutation.AfterValue(); ok {
		_spec.SetField(detectedchange.FieldAfterValue, field.TypeString, value)
		_node.AfterValue = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(detectedchange.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(detectedchange.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FirstDetectedAt(); ok {
		_spec.SetField(detectedchange.FieldFirstDetectedAt, field.TypeTime, value)
		_node.FirstDetectedAt = value
	}
	if value, ok := _c.mutation.DetectedOn(); ok {
		_spec.SetField(detectedchange.FieldDetectedOn, field.TypeString, value)
		_node.DetectedOn = value
	}
	if value, ok := _c.mutation.FirstDetectedAnalysisID(); ok {
		_spec.SetField(detectedchange.FieldFirstDetectedAnalysisID, field.TypeString, value)
		_node.FirstDetectedAnalysisID = &value
	}
	if value, ok := _c.mutation.Hypothesis(); ok {
		_spec.SetField(detectedchange.FieldHypothesis, field.TypeString, value)
		_node.Hypothesis = &value
	}
	if value, ok := _c.mutation.CorrelationMetrics(); ok {
		_spec.SetField(detectedchange.FieldCorrelationMetrics, field.TypeJSON, value)
		_node.CorrelationMetrics = value
	}
	if value, ok := _c.mutation.CorrelationUnlockedAt(); ok {
		_spec.SetField(detectedchange.FieldCorrelationUnlockedAt, field.TypeTime, value)
		_node.CorrelationUnlockedAt = &value
	}
	if value, ok := _c.mutation.ObservationText(); ok {
		_spec.SetField(detectedchange.FieldObservationText, field.TypeString, value)
		_node.ObservationText = &value
	}
	if value, ok := _c.mutation.MatchConfidence(); ok {
		_spec.SetField(detectedchange.FieldMatchConfidence, field.TypeFloat64, value)
		_node.MatchConfidence = &value
	}
	if value, ok := _c.mutation.MatchRationale(); ok {
		_spec.SetField(detectedchange.FieldMatchRationale, field.TypeString, value)
		_node.MatchRationale = &value
	}
	if value, ok := _c.mutation.RevertedAt(); ok {
		_spec.SetField(detectedchange.FieldRevertedAt, field.TypeTime, value)
		_node.RevertedAt = &value
	}
	if nodes := _c.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   detectedchange.PageTable,
			Columns: []string{detectedchange.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CheckpointsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LifecycleEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutcomeFeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DetectedChangeCreateBulk is the builder for creating many DetectedChange entities in bulk.
type DetectedChangeCreateBulk struct {
	config
	err      error
	builders []*DetectedChangeCreate
}

// Save creates the DetectedChange entities in the database.
func (_c *DetectedChangeCreateBulk) Save(ctx context.Context) ([]*DetectedChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DetectedChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DetectedChangeMutation)
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
func (_c *DetectedChangeCreateBulk) SaveX(ctx context.Context) []*DetectedChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DetectedChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DetectedChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
