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
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisUpdate) SetStatus(v analysis.Status) *AnalysisUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableStatus(v *analysis.Status) *AnalysisUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDesktopScreenshotURL sets the "desktop_screenshot_url" field.
func (_u *AnalysisUpdate) SetDesktopScreenshotURL(v string) *AnalysisUpdate {
	_u.mutation.SetDesktopScreenshotURL(v)
	return _u
}

// SetNillableDesktopScreenshotURL sets the "desktop_screenshot_url" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableDesktopScreenshotURL(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetDesktopScreenshotURL(*v)
	}
	return _u
}

// ClearDesktopScreenshotURL clears the value of the "desktop_screenshot_url" field.
func (_u *AnalysisUpdate) ClearDesktopScreenshotURL() *AnalysisUpdate {
	_u.mutation.ClearDesktopScreenshotURL()
	return _u
}

// SetMobileScreenshotURL sets the "mobile_screenshot_url" field.
func (_u *AnalysisUpdate) SetMobileScreenshotURL(v string) *AnalysisUpdate {
	_u.mutation.SetMobileScreenshotURL(v)
	return _u
}

// SetNillableMobileScreenshotURL sets the "mobile_screenshot_url" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableMobileScreenshotURL(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetMobileScreenshotURL(*v)
	}
	return _u
}

// ClearMobileScreenshotURL clears the value of the "mobile_screenshot_url" field.
func (_u *AnalysisUpdate) ClearMobileScreenshotURL() *AnalysisUpdate {
	_u.mutation.ClearMobileScreenshotURL()
	return _u
}

// SetFreeformOutput sets the "freeform_output" field.
func (_u *AnalysisUpdate) SetFreeformOutput(v string) *AnalysisUpdate {
	_u.mutation.SetFreeformOutput(v)
	return _u
}

// SetNillableFreeformOutput sets the "freeform_output" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableFreeformOutput(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetFreeformOutput(*v)
	}
	return _u
}

// ClearFreeformOutput clears the value of the "freeform_output" field.
func (_u *AnalysisUpdate) ClearFreeformOutput() *AnalysisUpdate {
	_u.mutation.ClearFreeformOutput()
	return _u
}

// SetStructuredOutput sets the "structured_output" field.
func (_u *AnalysisUpdate) SetStructuredOutput(v map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetStructuredOutput(v)
	return _u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (_u *AnalysisUpdate) ClearStructuredOutput() *AnalysisUpdate {
	_u.mutation.ClearStructuredOutput()
	return _u
}

// SetChangesSummary sets the "changes_summary" field.
func (_u *AnalysisUpdate) SetChangesSummary(v map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetChangesSummary(v)
	return _u
}

// ClearChangesSummary clears the value of the "changes_summary" field.
func (_u *AnalysisUpdate) ClearChangesSummary() *AnalysisUpdate {
	_u.mutation.ClearChangesSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisUpdate) SetErrorMessage(v string) *AnalysisUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableErrorMessage(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisUpdate) ClearErrorMessage() *AnalysisUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnalysisUpdate) SetAttempts(v int) *AnalysisUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableAttempts(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnalysisUpdate) AddAttempts(v int) *AnalysisUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisUpdate) SetPodID(v string) *AnalysisUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillablePodID(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisUpdate) ClearPodID() *AnalysisUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AnalysisUpdate) SetLastInteractionAt(v time.Time) *AnalysisUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableLastInteractionAt(v *time.Time) *AnalysisUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AnalysisUpdate) ClearLastInteractionAt() *AnalysisUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisUpdate) SetStartedAt(v time.Time) *AnalysisUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableStartedAt(v *time.Time) *AnalysisUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisUpdate) ClearStartedAt() *AnalysisUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisUpdate) SetCompletedAt(v time.Time) *AnalysisUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisUpdate) ClearCompletedAt() *AnalysisUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.page"`)
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParentAnalysisIDCleared() {
		_spec.ClearField(analysis.FieldParentAnalysisID, field.TypeString)
	}
	if _u.mutation.DeployIDCleared() {
		_spec.ClearField(analysis.FieldDeployID, field.TypeString)
	}
	if value, ok := _u.mutation.DesktopScreenshotURL(); ok {
		_spec.SetField(analysis.FieldDesktopScreenshotURL, field.TypeString, value)
	}
	if _u.mutation.DesktopScreenshotURLCleared() {
		_spec.ClearField(analysis.FieldDesktopScreenshotURL, field.TypeString)
	}
	if value, ok := _u.mutation.MobileScreenshotURL(); ok {
		_spec.SetField(analysis.FieldMobileScreenshotURL, field.TypeString, value)
	}
	if _u.mutation.MobileScreenshotURLCleared() {
		_spec.ClearField(analysis.FieldMobileScreenshotURL, field.TypeString)
	}
	if value, ok := _u.mutation.FreeformOutput(); ok {
		_spec.SetField(analysis.FieldFreeformOutput, field.TypeString, value)
	}
	if _u.mutation.FreeformOutputCleared() {
		_spec.ClearField(analysis.FieldFreeformOutput, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutput(); ok {
		_spec.SetField(analysis.FieldStructuredOutput, field.TypeJSON, value)
	}
	if _u.mutation.StructuredOutputCleared() {
		_spec.ClearField(analysis.FieldStructuredOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangesSummary(); ok {
		_spec.SetField(analysis.FieldChangesSummary, field.TypeJSON, value)
	}
	if _u.mutation.ChangesSummaryCleared() {
		_spec.ClearField(analysis.FieldChangesSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(analysis.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(analysis.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysis.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysis.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysis.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(analysis.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysis.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysis.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysis.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysis.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetStatus sets the "status" field.
func (_u *AnalysisUpdateOne) SetStatus(v analysis.Status) *AnalysisUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableStatus(v *analysis.Status) *AnalysisUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDesktopScreenshotURL sets the "desktop_screenshot_url" field.
func (_u *AnalysisUpdateOne) SetDesktopScreenshotURL(v string) *AnalysisUpdateOne {
	_u.mutation.SetDesktopScreenshotURL(v)
	return _u
}

// SetNillableDesktopScreenshotURL sets the "desktop_screenshot_url" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableDesktopScreenshotURL(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetDesktopScreenshotURL(*v)
	}
	return _u
}

// ClearDesktopScreenshotURL clears the value of the "desktop_screenshot_url" field.
func (_u *AnalysisUpdateOne) ClearDesktopScreenshotURL() *AnalysisUpdateOne {
	_u.mutation.ClearDesktopScreenshotURL()
	return _u
}

// SetMobileScreenshotURL sets the "mobile_screenshot_url" field.
func (_u *AnalysisUpdateOne) SetMobileScreenshotURL(v string) *AnalysisUpdateOne {
	_u.mutation.SetMobileScreenshotURL(v)
	return _u
}

// SetNillableMobileScreenshotURL sets the "mobile_screenshot_url" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableMobileScreenshotURL(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetMobileScreenshotURL(*v)
	}
	return _u
}

// ClearMobileScreenshotURL clears the value of the "mobile_screenshot_url" field.
func (_u *AnalysisUpdateOne) ClearMobileScreenshotURL() *AnalysisUpdateOne {
	_u.mutation.ClearMobileScreenshotURL()
	return _u
}

// SetFreeformOutput sets the "freeform_output" field.
func (_u *AnalysisUpdateOne) SetFreeformOutput(v string) *AnalysisUpdateOne {
	_u.mutation.SetFreeformOutput(v)
	return _u
}

// SetNillableFreeformOutput sets the "freeform_output" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableFreeformOutput(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetFreeformOutput(*v)
	}
	return _u
}

// ClearFreeformOutput clears the value of the "freeform_output" field.
func (_u *AnalysisUpdateOne) ClearFreeformOutput() *AnalysisUpdateOne {
	_u.mutation.ClearFreeformOutput()
	return _u
}

// SetStructuredOutput sets the "structured_output" field.
func (_u *AnalysisUpdateOne) SetStructuredOutput(v map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetStructuredOutput(v)
	return _u
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (_u *AnalysisUpdateOne) ClearStructuredOutput() *AnalysisUpdateOne {
	_u.mutation.ClearStructuredOutput()
	return _u
}

// SetChangesSummary sets the "changes_summary" field.
func (_u *AnalysisUpdateOne) SetChangesSummary(v map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetChangesSummary(v)
	return _u
}

// ClearChangesSummary clears the value of the "changes_summary" field.
func (_u *AnalysisUpdateOne) ClearChangesSummary() *AnalysisUpdateOne {
	_u.mutation.ClearChangesSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisUpdateOne) SetErrorMessage(v string) *AnalysisUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableErrorMessage(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisUpdateOne) ClearErrorMessage() *AnalysisUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnalysisUpdateOne) SetAttempts(v int) *AnalysisUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableAttempts(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnalysisUpdateOne) AddAttempts(v int) *AnalysisUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisUpdateOne) SetPodID(v string) *AnalysisUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillablePodID(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisUpdateOne) ClearPodID() *AnalysisUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AnalysisUpdateOne) SetLastInteractionAt(v time.Time) *AnalysisUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableLastInteractionAt(v *time.Time) *AnalysisUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AnalysisUpdateOne) ClearLastInteractionAt() *AnalysisUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisUpdateOne) SetStartedAt(v time.Time) *AnalysisUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisUpdateOne) ClearStartedAt() *AnalysisUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisUpdateOne) SetCompletedAt(v time.Time) *AnalysisUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisUpdateOne) ClearCompletedAt() *AnalysisUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysis.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Analysis.status": %w`, err)}
		}
	}
	if _u.mutation.PageCleared() && len(_u.mutation.PageIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.page"`)
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysis.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParentAnalysisIDCleared() {
		_spec.ClearField(analysis.FieldParentAnalysisID, field.TypeString)
	}
	if _u.mutation.DeployIDCleared() {
		_spec.ClearField(analysis.FieldDeployID, field.TypeString)
	}
	if value, ok := _u.mutation.DesktopScreenshotURL(); ok {
		_spec.SetField(analysis.FieldDesktopScreenshotURL, field.TypeString, value)
	}
	if _u.mutation.DesktopScreenshotURLCleared() {
		_spec.ClearField(analysis.FieldDesktopScreenshotURL, field.TypeString)
	}
	if value, ok := _u.mutation.MobileScreenshotURL(); ok {
		_spec.SetField(analysis.FieldMobileScreenshotURL, field.TypeString, value)
	}
	if _u.mutation.MobileScreenshotURLCleared() {
		_spec.ClearField(analysis.FieldMobileScreenshotURL, field.TypeString)
	}
	if value, ok := _u.mutation.FreeformOutput(); ok {
		_spec.SetField(analysis.FieldFreeformOutput, field.TypeString, value)
	}
	if _u.mutation.FreeformOutputCleared() {
		_spec.ClearField(analysis.FieldFreeformOutput, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredOutput(); ok {
		_spec.SetField(analysis.FieldStructuredOutput, field.TypeJSON, value)
	}
	if _u.mutation.StructuredOutputCleared() {
		_spec.ClearField(analysis.FieldStructuredOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangesSummary(); ok {
		_spec.SetField(analysis.FieldChangesSummary, field.TypeJSON, value)
	}
	if _u.mutation.ChangesSummaryCleared() {
		_spec.ClearField(analysis.FieldChangesSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysis.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysis.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(analysis.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(analysis.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysis.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysis.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysis.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(analysis.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysis.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysis.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysis.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysis.FieldCompletedAt, field.TypeTime)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
