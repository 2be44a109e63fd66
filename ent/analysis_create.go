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
	"github.com/loupe-hq/loupe/ent/page"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
}

// SetPageID sets the "page_id" field.
func (_c *AnalysisCreate) SetPageID(v string) *AnalysisCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnalysisCreate) SetUserID(v string) *AnalysisCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *AnalysisCreate) SetURL(v string) *AnalysisCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisCreate) SetStatus(v analysis.Status) *AnalysisCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableStatus(v *analysis.Status) *AnalysisCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *AnalysisCreate) SetTriggerType(v analysis.TriggerType) *AnalysisCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableTriggerType(v *analysis.TriggerType) *AnalysisCreate {
	if v != nil {
		_c.SetTriggerType(*v)
	}
	return _c
}

// SetParentAnalysisID sets the "parent_analysis_id" field.
func (_c *AnalysisCreate) SetParentAnalysisID(v string) *AnalysisCreate {
	_c.mutation.SetParentAnalysisID(v)
	return _c
}

// SetNillableParentAnalysisID sets the "parent_analysis_id" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableParentAnalysisID(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetParentAnalysisID(*v)
	}
	return _c
}

// SetDeployID sets the "deploy_id" field.
func (_c *AnalysisCreate) SetDeployID(v string) *AnalysisCreate {
	_c.mutation.SetDeployID(v)
	return _c
}

// SetNillableDeployID sets the "deploy_id" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableDeployID(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetDeployID(*v)
	}
	return _c
}

// SetDesktopScreenshotURL sets the "desktop_screenshot_url" field.
func (_c *AnalysisCreate) SetDesktopScreenshotURL(v string) *AnalysisCreate {
	_c.mutation.SetDesktopScreenshotURL(v)
	return _c
}

// SetNillableDesktopScreenshotURL sets the "desktop_screenshot_url" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableDesktopScreenshotURL(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetDesktopScreenshotURL(*v)
	}
	return _c
}

// SetMobileScreenshotURL sets the "mobile_screenshot_url" field.
func (_c *AnalysisCreate) SetMobileScreenshotURL(v string) *AnalysisCreate {
	_c.mutation.SetMobileScreenshotURL(v)
	return _c
}

// SetNillableMobileScreenshotURL sets the "mobile_screenshot_url" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableMobileScreenshotURL(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetMobileScreenshotURL(*v)
	}
	return _c
}

// SetFreeformOutput sets the "freeform_output" field.
func (_c *AnalysisCreate) SetFreeformOutput(v string) *AnalysisCreate {
	_c.mutation.SetFreeformOutput(v)
	return _c
}

// SetNillableFreeformOutput sets the "freeform_output" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableFreeformOutput(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetFreeformOutput(*v)
	}
	return _c
}

// SetStructuredOutput sets the "structured_output" field.
func (_c *AnalysisCreate) SetStructuredOutput(v map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetStructuredOutput(v)
	return _c
}

// SetChangesSummary sets the "changes_summary" field.
func (_c *AnalysisCreate) SetChangesSummary(v map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetChangesSummary(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisCreate) SetErrorMessage(v string) *AnalysisCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableErrorMessage(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *AnalysisCreate) SetAttempts(v int) *AnalysisCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableAttempts(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AnalysisCreate) SetPodID(v string) *AnalysisCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillablePodID(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *AnalysisCreate) SetLastInteractionAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableLastInteractionAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisCreate) SetStartedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableStartedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisCreate) SetCompletedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCompletedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v string) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPage sets the "page" edge to the Page entity.
func (_c *AnalysisCreate) SetPage(v *Page) *AnalysisCreate {
	return _c.SetPageID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysis.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		v := analysis.DefaultTriggerType
		_c.mutation.SetTriggerType(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := analysis.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "Analysis.page_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Analysis.user_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Analysis.url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Analysis.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "Analysis.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := analysis.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Analysis.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Analysis.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "Analysis.page"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
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
			return nil, fmt.Errorf("unexpected Analysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(analysis.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(analysis.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(analysis.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.ParentAnalysisID(); ok {
		_spec.SetField(analysis.FieldParentAnalysisID, field.TypeString, value)
		_node.ParentAnalysisID = &value
	}
	if value, ok := _c.mutation.DeployID(); ok {
		_spec.SetField(analysis.FieldDeployID, field.TypeString, value)
		_node.DeployID = &value
	}
	if value, ok := _c.mutation.DesktopScreenshotURL(); ok {
		_spec.SetField(analysis.FieldDesktopScreenshotURL, field.TypeString, value)
		_node.DesktopScreenshotURL = &value
	}
	if value, ok := _c.mutation.MobileScreenshotURL(); ok {
		_spec.SetField(analysis.FieldMobileScreenshotURL, field.TypeString, value)
		_node.MobileScreenshotURL = &value
	}
	if value, ok := _c.mutation.FreeformOutput(); ok {
		_spec.SetField(analysis.FieldFreeformOutput, field.TypeString, value)
		_node.FreeformOutput = &value
	}
	if value, ok := _c.mutation.StructuredOutput(); ok {
		_spec.SetField(analysis.FieldStructuredOutput, field.TypeJSON, value)
		_node.StructuredOutput = value
	}
	if value, ok := _c.mutation.ChangesSummary(); ok {
		_spec.SetField(analysis.FieldChangesSummary, field.TypeJSON, value)
		_node.ChangesSummary = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysis.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(analysis.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(analysis.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysis.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysis.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysis.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.PageTable,
			Columns: []string{analysis.PageColumn},
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
	return _node, _spec
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
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
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
