// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/predicate"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
	"github.com/loupe-hq/loupe/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysis             = "Analysis"
	TypeAnalyticsConnection  = "AnalyticsConnection"
	TypeChangeCheckpoint     = "ChangeCheckpoint"
	TypeChangeLifecycleEvent = "ChangeLifecycleEvent"
	TypeDeploy               = "Deploy"
	TypeDetectedChange       = "DetectedChange"
	TypeOutcomeFeedback      = "OutcomeFeedback"
	TypePage                 = "Page"
	TypeTrackedSuggestion    = "TrackedSuggestion"
	TypeUser                 = "User"
)

// AnalysisMutation represents an operation that mutates the Analysis nodes in the graph.
type AnalysisMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	url                    *string
	status                 *analysis.Status
	trigger_type           *analysis.TriggerType
	parent_analysis_id     *string
	deploy_id              *string
	desktop_screenshot_url *string
	mobile_screenshot_url  *string
	freeform_output        *string
	structured_output      *map[string]interface{}
	changes_summary        *map[string]interface{}
	error_message          *string
	attempts               *int
	addattempts            *int
	pod_id                 *string
	last_interaction_at    *time.Time
	created_at             *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	page                   *string
	clearedpage            bool
	done                   bool
	oldValue               func(context.Context) (*Analysis, error)
	predicates             []predicate.Analysis
}

var _ ent.Mutation = (*AnalysisMutation)(nil)

// analysisOption allows management of the mutation configuration using functional options.
type analysisOption func(*AnalysisMutation)

// newAnalysisMutation creates new mutation for the Analysis entity.
func newAnalysisMutation(c config, op Op, opts ...analysisOption) *AnalysisMutation {
	m := &AnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisID sets the ID field of the mutation.
func withAnalysisID(id string) analysisOption {
	return func(m *AnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *Analysis
		)
		m.oldValue = func(ctx context.Context) (*Analysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysis sets the old Analysis of the mutation.
func withAnalysis(node *Analysis) analysisOption {
	return func(m *AnalysisMutation) {
		m.oldValue = func(context.Context) (*Analysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analysis entities.
func (m *AnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPageID sets the "page_id" field.
func (m *AnalysisMutation) SetPageID(s string) {
	m.page = &s
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *AnalysisMutation) PageID() (r string, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldPageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *AnalysisMutation) ResetPageID() {
	m.page = nil
}

// SetUserID sets the "user_id" field.
func (m *AnalysisMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnalysisMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnalysisMutation) ResetUserID() {
	m.user_id = nil
}

// SetURL sets the "url" field.
func (m *AnalysisMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *AnalysisMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *AnalysisMutation) ResetURL() {
	m.url = nil
}

// SetStatus sets the "status" field.
func (m *AnalysisMutation) SetStatus(a analysis.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisMutation) Status() (r analysis.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldStatus(ctx context.Context) (v analysis.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisMutation) ResetStatus() {
	m.status = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *AnalysisMutation) SetTriggerType(at analysis.TriggerType) {
	m.trigger_type = &at
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *AnalysisMutation) TriggerType() (r analysis.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldTriggerType(ctx context.Context) (v analysis.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *AnalysisMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetParentAnalysisID sets the "parent_analysis_id" field.
func (m *AnalysisMutation) SetParentAnalysisID(s string) {
	m.parent_analysis_id = &s
}

// ParentAnalysisID returns the value of the "parent_analysis_id" field in the mutation.
func (m *AnalysisMutation) ParentAnalysisID() (r string, exists bool) {
	v := m.parent_analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentAnalysisID returns the old "parent_analysis_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldParentAnalysisID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentAnalysisID: %w", err)
	}
	return oldValue.ParentAnalysisID, nil
}

// ClearParentAnalysisID clears the value of the "parent_analysis_id" field.
func (m *AnalysisMutation) ClearParentAnalysisID() {
	m.parent_analysis_id = nil
	m.clearedFields[analysis.FieldParentAnalysisID] = struct{}{}
}

// ParentAnalysisIDCleared returns if the "parent_analysis_id" field was cleared in this mutation.
func (m *AnalysisMutation) ParentAnalysisIDCleared() bool {
	_, ok := m.clearedFields[analysis.FieldParentAnalysisID]
	return ok
}

// ResetParentAnalysisID resets all changes to the "parent_analysis_id" field.
func (m *AnalysisMutation) ResetParentAnalysisID() {
	m.parent_analysis_id = nil
	delete(m.clearedFields, analysis.FieldParentAnalysisID)
}

// SetDeployID sets the "deploy_id" field.
func (m *AnalysisMutation) SetDeployID(s string) {
	m.deploy_id = &s
}

// DeployID returns the value of the "deploy_id" field in the mutation.
func (m *AnalysisMutation) DeployID() (r string, exists bool) {
	v := m.deploy_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeployID returns the old "deploy_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldDeployID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeployID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeployID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeployID: %w", err)
	}
	return oldValue.DeployID, nil
}

// ClearDeployID clears the value of the "deploy_id" field.
func (m *AnalysisMutation) ClearDeployID() {
	m.deploy_id = nil
	m.clearedFields[analysis.FieldDeployID] = struct{}{}
}

// DeployIDCleared returns if the "deploy_id" field was cleared in this mutation.
func (m *AnalysisMutation) DeployIDCleared() bool {
	_, ok := m.clearedFields[analysis.FieldDeployID]
	return ok
}

// ResetDeployID resets all changes to the "deploy_id" field.
func (m *AnalysisMutation) ResetDeployID() {
	m.deploy_id = nil
	delete(m.clearedFields, analysis.FieldDeployID)
}

// SetDesktopScreenshotURL sets the "desktop_screenshot_url" field.
func (m *AnalysisMutation) SetDesktopScreenshotURL(s string) {
	m.desktop_screenshot_url = &s
}

// DesktopScreenshotURL returns the value of the "desktop_screenshot_url" field in the mutation.
func (m *AnalysisMutation) DesktopScreenshotURL() (r string, exists bool) {
	v := m.desktop_screenshot_url
	if v == nil {
		return
	}
	return *v, true
}

// OldDesktopScreenshotURL returns the old "desktop_screenshot_url" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldDesktopScreenshotURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDesktopScreenshotURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDesktopScreenshotURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDesktopScreenshotURL: %w", err)
	}
	return oldValue.DesktopScreenshotURL, nil
}

// ClearDesktopScreenshotURL clears the value of the "desktop_screenshot_url" field.
func (m *AnalysisMutation) ClearDesktopScreenshotURL() {
	m.desktop_screenshot_url = nil
	m.clearedFields[analysis.FieldDesktopScreenshotURL] = struct{}{}
}

// DesktopScreenshotURLCleared returns if the "desktop_screenshot_url" field was cleared in this mutation.
func (m *AnalysisMutation) DesktopScreenshotURLCleared() bool {
	_, ok := m.clearedFields[analysis.FieldDesktopScreenshotURL]
	return ok
}

// ResetDesktopScreenshotURL resets all changes to the "desktop_screenshot_url" field.
func (m *AnalysisMutation) ResetDesktopScreenshotURL() {
	m.desktop_screenshot_url = nil
	delete(m.clearedFields, analysis.FieldDesktopScreenshotURL)
}

// SetMobileScreenshotURL sets the "mobile_screenshot_url" field.
func (m *AnalysisMutation) SetMobileScreenshotURL(s string) {
	m.mobile_screenshot_url = &s
}

// MobileScreenshotURL returns the value of the "mobile_screenshot_url" field in the mutation.
func (m *AnalysisMutation) MobileScreenshotURL() (r string, exists bool) {
	v := m.mobile_screenshot_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMobileScreenshotURL returns the old "mobile_screenshot_url" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldMobileScreenshotURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMobileScreenshotURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMobileScreenshotURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMobileScreenshotURL: %w", err)
	}
	return oldValue.MobileScreenshotURL, nil
}

// ClearMobileScreenshotURL clears the value of the "mobile_screenshot_url" field.
func (m *AnalysisMutation) ClearMobileScreenshotURL() {
	m.mobile_screenshot_url = nil
	m.clearedFields[analysis.FieldMobileScreenshotURL] = struct{}{}
}

// MobileScreenshotURLCleared returns if the "mobile_screenshot_url" field was cleared in this mutation.
func (m *AnalysisMutation) MobileScreenshotURLCleared() bool {
	_, ok := m.clearedFields[analysis.FieldMobileScreenshotURL]
	return ok
}

// ResetMobileScreenshotURL resets all changes to the "mobile_screenshot_url" field.
func (m *AnalysisMutation) ResetMobileScreenshotURL() {
	m.mobile_screenshot_url = nil
	delete(m.clearedFields, analysis.FieldMobileScreenshotURL)
}

// SetFreeformOutput sets the "freeform_output" field.
func (m *AnalysisMutation) SetFreeformOutput(s string) {
	m.freeform_output = &s
}

// FreeformOutput returns the value of the "freeform_output" field in the mutation.
func (m *AnalysisMutation) FreeformOutput() (r string, exists bool) {
	v := m.freeform_output
	if v == nil {
		return
	}
	return *v, true
}

// OldFreeformOutput returns the old "freeform_output" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldFreeformOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreeformOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreeformOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreeformOutput: %w", err)
	}
	return oldValue.FreeformOutput, nil
}

// ClearFreeformOutput clears the value of the "freeform_output" field.
func (m *AnalysisMutation) ClearFreeformOutput() {
	m.freeform_output = nil
	m.clearedFields[analysis.FieldFreeformOutput] = struct{}{}
}

// FreeformOutputCleared returns if the "freeform_output" field was cleared in this mutation.
func (m *AnalysisMutation) FreeformOutputCleared() bool {
	_, ok := m.clearedFields[analysis.FieldFreeformOutput]
	return ok
}

// ResetFreeformOutput resets all changes to the "freeform_output" field.
func (m *AnalysisMutation) ResetFreeformOutput() {
	m.freeform_output = nil
	delete(m.clearedFields, analysis.FieldFreeformOutput)
}

// SetStructuredOutput sets the "structured_output" field.
func (m *AnalysisMutation) SetStructuredOutput(value map[string]interface{}) {
	m.structured_output = &value
}

// StructuredOutput returns the value of the "structured_output" field in the mutation.
func (m *AnalysisMutation) StructuredOutput() (r map[string]interface{}, exists bool) {
	v := m.structured_output
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredOutput returns the old "structured_output" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldStructuredOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredOutput: %w", err)
	}
	return oldValue.StructuredOutput, nil
}

// ClearStructuredOutput clears the value of the "structured_output" field.
func (m *AnalysisMutation) ClearStructuredOutput() {
	m.structured_output = nil
	m.clearedFields[analysis.FieldStructuredOutput] = struct{}{}
}

// StructuredOutputCleared returns if the "structured_output" field was cleared in this mutation.
func (m *AnalysisMutation) StructuredOutputCleared() bool {
	_, ok := m.clearedFields[analysis.FieldStructuredOutput]
	return ok
}

// ResetStructuredOutput resets all changes to the "structured_output" field.
func (m *AnalysisMutation) ResetStructuredOutput() {
	m.structured_output = nil
	delete(m.clearedFields, analysis.FieldStructuredOutput)
}

// SetChangesSummary sets the "changes_summary" field.
func (m *AnalysisMutation) SetChangesSummary(value map[string]interface{}) {
	m.changes_summary = &value
}

// ChangesSummary returns the value of the "changes_summary" field in the mutation.
func (m *AnalysisMutation) ChangesSummary() (r map[string]interface{}, exists bool) {
	v := m.changes_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldChangesSummary returns the old "changes_summary" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldChangesSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangesSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangesSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangesSummary: %w", err)
	}
	return oldValue.ChangesSummary, nil
}

// ClearChangesSummary clears the value of the "changes_summary" field.
func (m *AnalysisMutation) ClearChangesSummary() {
	m.changes_summary = nil
	m.clearedFields[analysis.FieldChangesSummary] = struct{}{}
}

// ChangesSummaryCleared returns if the "changes_summary" field was cleared in this mutation.
func (m *AnalysisMutation) ChangesSummaryCleared() bool {
	_, ok := m.clearedFields[analysis.FieldChangesSummary]
	return ok
}

// ResetChangesSummary resets all changes to the "changes_summary" field.
func (m *AnalysisMutation) ResetChangesSummary() {
	m.changes_summary = nil
	delete(m.clearedFields, analysis.FieldChangesSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysis.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysis.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysis.FieldErrorMessage)
}

// SetAttempts sets the "attempts" field.
func (m *AnalysisMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *AnalysisMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *AnalysisMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *AnalysisMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *AnalysisMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetPodID sets the "pod_id" field.
func (m *AnalysisMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AnalysisMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AnalysisMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[analysis.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AnalysisMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[analysis.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AnalysisMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, analysis.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *AnalysisMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *AnalysisMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *AnalysisMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[analysis.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *AnalysisMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[analysis.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *AnalysisMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, analysis.FieldLastInteractionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AnalysisMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[analysis.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AnalysisMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[analysis.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, analysis.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AnalysisMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysis.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysis.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysis.FieldCompletedAt)
}

// ClearPage clears the "page" edge to the Page entity.
func (m *AnalysisMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[analysis.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the Page entity was cleared.
func (m *AnalysisMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *AnalysisMutation) PageIDs() (ids []string) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *AnalysisMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// Where appends a list predicates to the AnalysisMutation builder.
func (m *AnalysisMutation) Where(ps ...predicate.Analysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analysis).
func (m *AnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.page != nil {
		fields = append(fields, analysis.FieldPageID)
	}
	if m.user_id != nil {
		fields = append(fields, analysis.FieldUserID)
	}
	if m.url != nil {
		fields = append(fields, analysis.FieldURL)
	}
	if m.status != nil {
		fields = append(fields, analysis.FieldStatus)
	}
	if m.trigger_type != nil {
		fields = append(fields, analysis.FieldTriggerType)
	}
	if m.parent_analysis_id != nil {
		fields = append(fields, analysis.FieldParentAnalysisID)
	}
	if m.deploy_id != nil {
		fields = append(fields, analysis.FieldDeployID)
	}
	if m.desktop_screenshot_url != nil {
		fields = append(fields, analysis.FieldDesktopScreenshotURL)
	}
	if m.mobile_screenshot_url != nil {
		fields = append(fields, analysis.FieldMobileScreenshotURL)
	}
	if m.freeform_output != nil {
		fields = append(fields, analysis.FieldFreeformOutput)
	}
	if m.structured_output != nil {
		fields = append(fields, analysis.FieldStructuredOutput)
	}
	if m.changes_summary != nil {
		fields = append(fields, analysis.FieldChangesSummary)
	}
	if m.error_message != nil {
		fields = append(fields, analysis.FieldErrorMessage)
	}
	if m.attempts != nil {
		fields = append(fields, analysis.FieldAttempts)
	}
	if m.pod_id != nil {
		fields = append(fields, analysis.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, analysis.FieldLastInteractionAt)
	}
	if m.created_at != nil {
		fields = append(fields, analysis.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, analysis.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysis.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldPageID:
		return m.PageID()
	case analysis.FieldUserID:
		return m.UserID()
	case analysis.FieldURL:
		return m.URL()
	case analysis.FieldStatus:
		return m.Status()
	case analysis.FieldTriggerType:
		return m.TriggerType()
	case analysis.FieldParentAnalysisID:
		return m.ParentAnalysisID()
	case analysis.FieldDeployID:
		return m.DeployID()
	case analysis.FieldDesktopScreenshotURL:
		return m.DesktopScreenshotURL()
	case analysis.FieldMobileScreenshotURL:
		return m.MobileScreenshotURL()
	case analysis.FieldFreeformOutput:
		return m.FreeformOutput()
	case analysis.FieldStructuredOutput:
		return m.StructuredOutput()
	case analysis.FieldChangesSummary:
		return m.ChangesSummary()
	case analysis.FieldErrorMessage:
		return m.ErrorMessage()
	case analysis.FieldAttempts:
		return m.Attempts()
	case analysis.FieldPodID:
		return m.PodID()
	case analysis.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case analysis.FieldCreatedAt:
		return m.CreatedAt()
	case analysis.FieldStartedAt:
		return m.StartedAt()
	case analysis.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysis.FieldPageID:
		return m.OldPageID(ctx)
	case analysis.FieldUserID:
		return m.OldUserID(ctx)
	case analysis.FieldURL:
		return m.OldURL(ctx)
	case analysis.FieldStatus:
		return m.OldStatus(ctx)
	case analysis.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case analysis.FieldParentAnalysisID:
		return m.OldParentAnalysisID(ctx)
	case analysis.FieldDeployID:
		return m.OldDeployID(ctx)
	case analysis.FieldDesktopScreenshotURL:
		return m.OldDesktopScreenshotURL(ctx)
	case analysis.FieldMobileScreenshotURL:
		return m.OldMobileScreenshotURL(ctx)
	case analysis.FieldFreeformOutput:
		return m.OldFreeformOutput(ctx)
	case analysis.FieldStructuredOutput:
		return m.OldStructuredOutput(ctx)
	case analysis.FieldChangesSummary:
		return m.OldChangesSummary(ctx)
	case analysis.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysis.FieldAttempts:
		return m.OldAttempts(ctx)
	case analysis.FieldPodID:
		return m.OldPodID(ctx)
	case analysis.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case analysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysis.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysis.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Analysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldPageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case analysis.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case analysis.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case analysis.FieldStatus:
		v, ok := value.(analysis.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysis.FieldTriggerType:
		v, ok := value.(analysis.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case analysis.FieldParentAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentAnalysisID(v)
		return nil
	case analysis.FieldDeployID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeployID(v)
		return nil
	case analysis.FieldDesktopScreenshotURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDesktopScreenshotURL(v)
		return nil
	case analysis.FieldMobileScreenshotURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMobileScreenshotURL(v)
		return nil
	case analysis.FieldFreeformOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreeformOutput(v)
		return nil
	case analysis.FieldStructuredOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredOutput(v)
		return nil
	case analysis.FieldChangesSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangesSummary(v)
		return nil
	case analysis.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysis.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case analysis.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case analysis.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case analysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysis.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysis.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, analysis.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysis.FieldParentAnalysisID) {
		fields = append(fields, analysis.FieldParentAnalysisID)
	}
	if m.FieldCleared(analysis.FieldDeployID) {
		fields = append(fields, analysis.FieldDeployID)
	}
	if m.FieldCleared(analysis.FieldDesktopScreenshotURL) {
		fields = append(fields, analysis.FieldDesktopScreenshotURL)
	}
	if m.FieldCleared(analysis.FieldMobileScreenshotURL) {
		fields = append(fields, analysis.FieldMobileScreenshotURL)
	}
	if m.FieldCleared(analysis.FieldFreeformOutput) {
		fields = append(fields, analysis.FieldFreeformOutput)
	}
	if m.FieldCleared(analysis.FieldStructuredOutput) {
		fields = append(fields, analysis.FieldStructuredOutput)
	}
	if m.FieldCleared(analysis.FieldChangesSummary) {
		fields = append(fields, analysis.FieldChangesSummary)
	}
	if m.FieldCleared(analysis.FieldErrorMessage) {
		fields = append(fields, analysis.FieldErrorMessage)
	}
	if m.FieldCleared(analysis.FieldPodID) {
		fields = append(fields, analysis.FieldPodID)
	}
	if m.FieldCleared(analysis.FieldLastInteractionAt) {
		fields = append(fields, analysis.FieldLastInteractionAt)
	}
	if m.FieldCleared(analysis.FieldStartedAt) {
		fields = append(fields, analysis.FieldStartedAt)
	}
	if m.FieldCleared(analysis.FieldCompletedAt) {
		fields = append(fields, analysis.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisMutation) ClearField(name string) error {
	switch name {
	case analysis.FieldParentAnalysisID:
		m.ClearParentAnalysisID()
		return nil
	case analysis.FieldDeployID:
		m.ClearDeployID()
		return nil
	case analysis.FieldDesktopScreenshotURL:
		m.ClearDesktopScreenshotURL()
		return nil
	case analysis.FieldMobileScreenshotURL:
		m.ClearMobileScreenshotURL()
		return nil
	case analysis.FieldFreeformOutput:
		m.ClearFreeformOutput()
		return nil
	case analysis.FieldStructuredOutput:
		m.ClearStructuredOutput()
		return nil
	case analysis.FieldChangesSummary:
		m.ClearChangesSummary()
		return nil
	case analysis.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysis.FieldPodID:
		m.ClearPodID()
		return nil
	case analysis.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case analysis.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case analysis.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Analysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisMutation) ResetField(name string) error {
	switch name {
	case analysis.FieldPageID:
		m.ResetPageID()
		return nil
	case analysis.FieldUserID:
		m.ResetUserID()
		return nil
	case analysis.FieldURL:
		m.ResetURL()
		return nil
	case analysis.FieldStatus:
		m.ResetStatus()
		return nil
	case analysis.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case analysis.FieldParentAnalysisID:
		m.ResetParentAnalysisID()
		return nil
	case analysis.FieldDeployID:
		m.ResetDeployID()
		return nil
	case analysis.FieldDesktopScreenshotURL:
		m.ResetDesktopScreenshotURL()
		return nil
	case analysis.FieldMobileScreenshotURL:
		m.ResetMobileScreenshotURL()
		return nil
	case analysis.FieldFreeformOutput:
		m.ResetFreeformOutput()
		return nil
	case analysis.FieldStructuredOutput:
		m.ResetStructuredOutput()
		return nil
	case analysis.FieldChangesSummary:
		m.ResetChangesSummary()
		return nil
	case analysis.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysis.FieldAttempts:
		m.ResetAttempts()
		return nil
	case analysis.FieldPodID:
		m.ResetPodID()
		return nil
	case analysis.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case analysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysis.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysis.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.page != nil {
		edges = append(edges, analysis.EdgePage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysis.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpage {
		edges = append(edges, analysis.EdgePage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case analysis.EdgePage:
		return m.clearedpage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisMutation) ClearEdge(name string) error {
	switch name {
	case analysis.EdgePage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown Analysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisMutation) ResetEdge(name string) error {
	switch name {
	case analysis.EdgePage:
		m.ResetPage()
		return nil
	}
	return fmt.Errorf("unknown Analysis edge %s", name)
}

// AnalyticsConnectionMutation represents an operation that mutates the AnalyticsConnection nodes in the graph.
type AnalyticsConnectionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	provider              *analyticsconnection.Provider
	encrypted_credentials *[]byte
	status                *analyticsconnection.Status
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	user                  *string
	cleareduser           bool
	done                  bool
	oldValue              func(context.Context) (*AnalyticsConnection, error)
	predicates            []predicate.AnalyticsConnection
}

var _ ent.Mutation = (*AnalyticsConnectionMutation)(nil)

// analyticsconnectionOption allows management of the mutation configuration using functional options.
type analyticsconnectionOption func(*AnalyticsConnectionMutation)

// newAnalyticsConnectionMutation creates new mutation for the AnalyticsConnection entity.
func newAnalyticsConnectionMutation(c config, op Op, opts ...analyticsconnectionOption) *AnalyticsConnectionMutation {
	m := &AnalyticsConnectionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalyticsConnection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalyticsConnectionID sets the ID field of the mutation.
func withAnalyticsConnectionID(id string) analyticsconnectionOption {
	return func(m *AnalyticsConnectionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalyticsConnection
		)
		m.oldValue = func(ctx context.Context) (*AnalyticsConnection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalyticsConnection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalyticsConnection sets the old AnalyticsConnection of the mutation.
func withAnalyticsConnection(node *AnalyticsConnection) analyticsconnectionOption {
	return func(m *AnalyticsConnectionMutation) {
		m.oldValue = func(context.Context) (*AnalyticsConnection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalyticsConnectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalyticsConnectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalyticsConnection entities.
func (m *AnalyticsConnectionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalyticsConnectionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalyticsConnectionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalyticsConnection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AnalyticsConnectionMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnalyticsConnectionMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnalyticsConnection entity.
// If the AnalyticsConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsConnectionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnalyticsConnectionMutation) ResetUserID() {
	m.user = nil
}

// SetProvider sets the "provider" field.
func (m *AnalyticsConnectionMutation) SetProvider(a analyticsconnection.Provider) {
	m.provider = &a
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AnalyticsConnectionMutation) Provider() (r analyticsconnection.Provider, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AnalyticsConnection entity.
// If the AnalyticsConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsConnectionMutation) OldProvider(ctx context.Context) (v analyticsconnection.Provider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AnalyticsConnectionMutation) ResetProvider() {
	m.provider = nil
}

// SetEncryptedCredentials sets the "encrypted_credentials" field.
func (m *AnalyticsConnectionMutation) SetEncryptedCredentials(b []byte) {
	m.encrypted_credentials = &b
}

// EncryptedCredentials returns the value of the "encrypted_credentials" field in the mutation.
func (m *AnalyticsConnectionMutation) EncryptedCredentials() (r []byte, exists bool) {
	v := m.encrypted_credentials
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedCredentials returns the old "encrypted_credentials" field's value of the AnalyticsConnection entity.
// If the AnalyticsConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsConnectionMutation) OldEncryptedCredentials(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedCredentials is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedCredentials requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedCredentials: %w", err)
	}
	return oldValue.EncryptedCredentials, nil
}

// ResetEncryptedCredentials resets all changes to the "encrypted_credentials" field.
func (m *AnalyticsConnectionMutation) ResetEncryptedCredentials() {
	m.encrypted_credentials = nil
}

// SetStatus sets the "status" field.
func (m *AnalyticsConnectionMutation) SetStatus(a analyticsconnection.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalyticsConnectionMutation) Status() (r analyticsconnection.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalyticsConnection entity.
// If the AnalyticsConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsConnectionMutation) OldStatus(ctx context.Context) (v analyticsconnection.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalyticsConnectionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalyticsConnectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalyticsConnectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalyticsConnection entity.
// If the AnalyticsConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsConnectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalyticsConnectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnalyticsConnectionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnalyticsConnectionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnalyticsConnection entity.
// If the AnalyticsConnection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalyticsConnectionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnalyticsConnectionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AnalyticsConnectionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[analyticsconnection.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AnalyticsConnectionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AnalyticsConnectionMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AnalyticsConnectionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the AnalyticsConnectionMutation builder.
func (m *AnalyticsConnectionMutation) Where(ps ...predicate.AnalyticsConnection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalyticsConnectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalyticsConnectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalyticsConnection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalyticsConnectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalyticsConnectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalyticsConnection).
func (m *AnalyticsConnectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalyticsConnectionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user != nil {
		fields = append(fields, analyticsconnection.FieldUserID)
	}
	if m.provider != nil {
		fields = append(fields, analyticsconnection.FieldProvider)
	}
	if m.encrypted_credentials != nil {
		fields = append(fields, analyticsconnection.FieldEncryptedCredentials)
	}
	if m.status != nil {
		fields = append(fields, analyticsconnection.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, analyticsconnection.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, analyticsconnection.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalyticsConnectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analyticsconnection.FieldUserID:
		return m.UserID()
	case analyticsconnection.FieldProvider:
		return m.Provider()
	case analyticsconnection.FieldEncryptedCredentials:
		return m.EncryptedCredentials()
	case analyticsconnection.FieldStatus:
		return m.Status()
	case analyticsconnection.FieldCreatedAt:
		return m.CreatedAt()
	case analyticsconnection.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalyticsConnectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analyticsconnection.FieldUserID:
		return m.OldUserID(ctx)
	case analyticsconnection.FieldProvider:
		return m.OldProvider(ctx)
	case analyticsconnection.FieldEncryptedCredentials:
		return m.OldEncryptedCredentials(ctx)
	case analyticsconnection.FieldStatus:
		return m.OldStatus(ctx)
	case analyticsconnection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analyticsconnection.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalyticsConnection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyticsConnectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analyticsconnection.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case analyticsconnection.FieldProvider:
		v, ok := value.(analyticsconnection.Provider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case analyticsconnection.FieldEncryptedCredentials:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedCredentials(v)
		return nil
	case analyticsconnection.FieldStatus:
		v, ok := value.(analyticsconnection.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analyticsconnection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analyticsconnection.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalyticsConnection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalyticsConnectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalyticsConnectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalyticsConnectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalyticsConnection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalyticsConnectionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalyticsConnectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalyticsConnectionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalyticsConnection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalyticsConnectionMutation) ResetField(name string) error {
	switch name {
	case analyticsconnection.FieldUserID:
		m.ResetUserID()
		return nil
	case analyticsconnection.FieldProvider:
		m.ResetProvider()
		return nil
	case analyticsconnection.FieldEncryptedCredentials:
		m.ResetEncryptedCredentials()
		return nil
	case analyticsconnection.FieldStatus:
		m.ResetStatus()
		return nil
	case analyticsconnection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analyticsconnection.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsConnection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalyticsConnectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, analyticsconnection.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalyticsConnectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analyticsconnection.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalyticsConnectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalyticsConnectionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalyticsConnectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, analyticsconnection.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalyticsConnectionMutation) EdgeCleared(name string) bool {
	switch name {
	case analyticsconnection.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalyticsConnectionMutation) ClearEdge(name string) error {
	switch name {
	case analyticsconnection.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsConnection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalyticsConnectionMutation) ResetEdge(name string) error {
	switch name {
	case analyticsconnection.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown AnalyticsConnection edge %s", name)
}

// ChangeCheckpointMutation represents an operation that mutates the ChangeCheckpoint nodes in the graph.
type ChangeCheckpointMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	horizon_days        *int
	addhorizon_days     *int
	before_window_start *time.Time
	before_window_end   *time.Time
	after_window_start  *time.Time
	after_window_end    *time.Time
	metrics             *map[string]interface{}
	assessment          *changecheckpoint.Assessment
	confidence          *float64
	addconfidence       *float64
	reasoning           *string
	data_sources        *[]string
	appenddata_sources  []string
	provider            *string
	computed_at         *time.Time
	clearedFields       map[string]struct{}
	change              *string
	clearedchange       bool
	done                bool
	oldValue            func(context.Context) (*ChangeCheckpoint, error)
	predicates          []predicate.ChangeCheckpoint
}

var _ ent.Mutation = (*ChangeCheckpointMutation)(nil)

// changecheckpointOption allows management of the mutation configuration using functional options.
type changecheckpointOption func(*ChangeCheckpointMutation)

// newChangeCheckpointMutation creates new mutation for the ChangeCheckpoint entity.
func newChangeCheckpointMutation(c config, op Op, opts ...changecheckpointOption) *ChangeCheckpointMutation {
	m := &ChangeCheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeChangeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChangeCheckpointID sets the ID field of the mutation.
func withChangeCheckpointID(id string) changecheckpointOption {
	return func(m *ChangeCheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *ChangeCheckpoint
		)
		m.oldValue = func(ctx context.Context) (*ChangeCheckpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChangeCheckpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChangeCheckpoint sets the old ChangeCheckpoint of the mutation.
func withChangeCheckpoint(node *ChangeCheckpoint) changecheckpointOption {
	return func(m *ChangeCheckpointMutation) {
		m.oldValue = func(context.Context) (*ChangeCheckpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChangeCheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChangeCheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChangeCheckpoint entities.
func (m *ChangeCheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChangeCheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChangeCheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChangeCheckpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChangeID sets the "change_id" field.
func (m *ChangeCheckpointMutation) SetChangeID(s string) {
	m.change = &s
}

// ChangeID returns the value of the "change_id" field in the mutation.
func (m *ChangeCheckpointMutation) ChangeID() (r string, exists bool) {
	v := m.change
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeID returns the old "change_id" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldChangeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeID: %w", err)
	}
	return oldValue.ChangeID, nil
}

// ResetChangeID resets all changes to the "change_id" field.
func (m *ChangeCheckpointMutation) ResetChangeID() {
	m.change = nil
}

// SetHorizonDays sets the "horizon_days" field.
func (m *ChangeCheckpointMutation) SetHorizonDays(i int) {
	m.horizon_days = &i
	m.addhorizon_days = nil
}

// HorizonDays returns the value of the "horizon_days" field in the mutation.
func (m *ChangeCheckpointMutation) HorizonDays() (r int, exists bool) {
	v := m.horizon_days
	if v == nil {
		return
	}
	return *v, true
}

// OldHorizonDays returns the old "horizon_days" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldHorizonDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHorizonDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHorizonDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHorizonDays: %w", err)
	}
	return oldValue.HorizonDays, nil
}

// AddHorizonDays adds i to the "horizon_days" field.
func (m *ChangeCheckpointMutation) AddHorizonDays(i int) {
	if m.addhorizon_days != nil {
		*m.addhorizon_days += i
	} else {
		m.addhorizon_days = &i
	}
}

// AddedHorizonDays returns the value that was added to the "horizon_days" field in this mutation.
func (m *ChangeCheckpointMutation) AddedHorizonDays() (r int, exists bool) {
	v := m.addhorizon_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetHorizonDays resets all changes to the "horizon_days" field.
func (m *ChangeCheckpointMutation) ResetHorizonDays() {
	m.horizon_days = nil
	m.addhorizon_days = nil
}

// SetBeforeWindowStart sets the "before_window_start" field.
func (m *ChangeCheckpointMutation) SetBeforeWindowStart(t time.Time) {
	m.before_window_start = &t
}

// BeforeWindowStart returns the value of the "before_window_start" field in the mutation.
func (m *ChangeCheckpointMutation) BeforeWindowStart() (r time.Time, exists bool) {
	v := m.before_window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeWindowStart returns the old "before_window_start" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldBeforeWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeWindowStart: %w", err)
	}
	return oldValue.BeforeWindowStart, nil
}

// ResetBeforeWindowStart resets all changes to the "before_window_start" field.
func (m *ChangeCheckpointMutation) ResetBeforeWindowStart() {
	m.before_window_start = nil
}

// SetBeforeWindowEnd sets the "before_window_end" field.
func (m *ChangeCheckpointMutation) SetBeforeWindowEnd(t time.Time) {
	m.before_window_end = &t
}

// BeforeWindowEnd returns the value of the "before_window_end" field in the mutation.
func (m *ChangeCheckpointMutation) BeforeWindowEnd() (r time.Time, exists bool) {
	v := m.before_window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeWindowEnd returns the old "before_window_end" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldBeforeWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeWindowEnd: %w", err)
	}
	return oldValue.BeforeWindowEnd, nil
}

// ResetBeforeWindowEnd resets all changes to the "before_window_end" field.
func (m *ChangeCheckpointMutation) ResetBeforeWindowEnd() {
	m.before_window_end = nil
}

// SetAfterWindowStart sets the "after_window_start" field.
func (m *ChangeCheckpointMutation) SetAfterWindowStart(t time.Time) {
	m.after_window_start = &t
}

// AfterWindowStart returns the value of the "after_window_start" field in the mutation.
func (m *ChangeCheckpointMutation) AfterWindowStart() (r time.Time, exists bool) {
	v := m.after_window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterWindowStart returns the old "after_window_start" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldAfterWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterWindowStart: %w", err)
	}
	return oldValue.AfterWindowStart, nil
}

// ResetAfterWindowStart resets all changes to the "after_window_start" field.
func (m *ChangeCheckpointMutation) ResetAfterWindowStart() {
	m.after_window_start = nil
}

// SetAfterWindowEnd sets the "after_window_end" field.
func (m *ChangeCheckpointMutation) SetAfterWindowEnd(t time.Time) {
	m.after_window_end = &t
}

// AfterWindowEnd returns the value of the "after_window_end" field in the mutation.
func (m *ChangeCheckpointMutation) AfterWindowEnd() (r time.Time, exists bool) {
	v := m.after_window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterWindowEnd returns the old "after_window_end" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldAfterWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterWindowEnd: %w", err)
	}
	return oldValue.AfterWindowEnd, nil
}

// ResetAfterWindowEnd resets all changes to the "after_window_end" field.
func (m *ChangeCheckpointMutation) ResetAfterWindowEnd() {
	m.after_window_end = nil
}

// SetMetrics sets the "metrics" field.
func (m *ChangeCheckpointMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *ChangeCheckpointMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *ChangeCheckpointMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[changecheckpoint.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *ChangeCheckpointMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[changecheckpoint.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *ChangeCheckpointMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, changecheckpoint.FieldMetrics)
}

// SetAssessment sets the "assessment" field.
func (m *ChangeCheckpointMutation) SetAssessment(c changecheckpoint.Assessment) {
	m.assessment = &c
}

// Assessment returns the value of the "assessment" field in the mutation.
func (m *ChangeCheckpointMutation) Assessment() (r changecheckpoint.Assessment, exists bool) {
	v := m.assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessment returns the old "assessment" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldAssessment(ctx context.Context) (v changecheckpoint.Assessment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessment: %w", err)
	}
	return oldValue.Assessment, nil
}

// ResetAssessment resets all changes to the "assessment" field.
func (m *ChangeCheckpointMutation) ResetAssessment() {
	m.assessment = nil
}

// SetConfidence sets the "confidence" field.
func (m *ChangeCheckpointMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ChangeCheckpointMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ChangeCheckpointMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ChangeCheckpointMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ChangeCheckpointMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[changecheckpoint.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ChangeCheckpointMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[changecheckpoint.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ChangeCheckpointMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, changecheckpoint.FieldConfidence)
}

// SetReasoning sets the "reasoning" field.
func (m *ChangeCheckpointMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *ChangeCheckpointMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *ChangeCheckpointMutation) ResetReasoning() {
	m.reasoning = nil
}

// SetDataSources sets the "data_sources" field.
func (m *ChangeCheckpointMutation) SetDataSources(s []string) {
	m.data_sources = &s
	m.appenddata_sources = nil
}

// DataSources returns the value of the "data_sources" field in the mutation.
func (m *ChangeCheckpointMutation) DataSources() (r []string, exists bool) {
	v := m.data_sources
	if v == nil {
		return
	}
	return *v, true
}

// OldDataSources returns the old "data_sources" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldDataSources(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataSources: %w", err)
	}
	return oldValue.DataSources, nil
}

// AppendDataSources adds s to the "data_sources" field.
func (m *ChangeCheckpointMutation) AppendDataSources(s []string) {
	m.appenddata_sources = append(m.appenddata_sources, s...)
}

// AppendedDataSources returns the list of values that were appended to the "data_sources" field in this mutation.
func (m *ChangeCheckpointMutation) AppendedDataSources() ([]string, bool) {
	if len(m.appenddata_sources) == 0 {
		return nil, false
	}
	return m.appenddata_sources, true
}

// ClearDataSources clears the value of the "data_sources" field.
func (m *ChangeCheckpointMutation) ClearDataSources() {
	m.data_sources = nil
	m.appenddata_sources = nil
	m.clearedFields[changecheckpoint.FieldDataSources] = struct{}{}
}

// DataSourcesCleared returns if the "data_sources" field was cleared in this mutation.
func (m *ChangeCheckpointMutation) DataSourcesCleared() bool {
	_, ok := m.clearedFields[changecheckpoint.FieldDataSources]
	return ok
}

// ResetDataSources resets all changes to the "data_sources" field.
func (m *ChangeCheckpointMutation) ResetDataSources() {
	m.data_sources = nil
	m.appenddata_sources = nil
	delete(m.clearedFields, changecheckpoint.FieldDataSources)
}

// SetProvider sets the "provider" field.
func (m *ChangeCheckpointMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ChangeCheckpointMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ChangeCheckpointMutation) ResetProvider() {
	m.provider = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *ChangeCheckpointMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *ChangeCheckpointMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the ChangeCheckpoint entity.
// If the ChangeCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeCheckpointMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *ChangeCheckpointMutation) ResetComputedAt() {
	m.computed_at = nil
}

// ClearChange clears the "change" edge to the DetectedChange entity.
func (m *ChangeCheckpointMutation) ClearChange() {
	m.clearedchange = true
	m.clearedFields[changecheckpoint.FieldChangeID] = struct{}{}
}

// ChangeCleared reports if the "change" edge to the DetectedChange entity was cleared.
func (m *ChangeCheckpointMutation) ChangeCleared() bool {
	return m.clearedchange
}

// ChangeIDs returns the "change" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChangeID instead. It exists only for internal usage by the builders.
func (m *ChangeCheckpointMutation) ChangeIDs() (ids []string) {
	if id := m.change; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChange resets all changes to the "change" edge.
func (m *ChangeCheckpointMutation) ResetChange() {
	m.change = nil
	m.clearedchange = false
}

// Where appends a list predicates to the ChangeCheckpointMutation builder.
func (m *ChangeCheckpointMutation) Where(ps ...predicate.ChangeCheckpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChangeCheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChangeCheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChangeCheckpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChangeCheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChangeCheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChangeCheckpoint).
func (m *ChangeCheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChangeCheckpointMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.change != nil {
		fields = append(fields, changecheckpoint.FieldChangeID)
	}
	if m.horizon_days != nil {
		fields = append(fields, changecheckpoint.FieldHorizonDays)
	}
	if m.before_window_start != nil {
		fields = append(fields, changecheckpoint.FieldBeforeWindowStart)
	}
	if m.before_window_end != nil {
		fields = append(fields, changecheckpoint.FieldBeforeWindowEnd)
	}
	if m.after_window_start != nil {
		fields = append(fields, changecheckpoint.FieldAfterWindowStart)
	}
	if m.after_window_end != nil {
		fields = append(fields, changecheckpoint.FieldAfterWindowEnd)
	}
	if m.metrics != nil {
		fields = append(fields, changecheckpoint.FieldMetrics)
	}
	if m.assessment != nil {
		fields = append(fields, changecheckpoint.FieldAssessment)
	}
	if m.confidence != nil {
		fields = append(fields, changecheckpoint.FieldConfidence)
	}
	if m.reasoning != nil {
		fields = append(fields, changecheckpoint.FieldReasoning)
	}
	if m.data_sources != nil {
		fields = append(fields, changecheckpoint.FieldDataSources)
	}
	if m.provider != nil {
		fields = append(fields, changecheckpoint.FieldProvider)
	}
	if m.computed_at != nil {
		fields = append(fields, changecheckpoint.FieldComputedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChangeCheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case changecheckpoint.FieldChangeID:
		return m.ChangeID()
	case changecheckpoint.FieldHorizonDays:
		return m.HorizonDays()
	case changecheckpoint.FieldBeforeWindowStart:
		return m.BeforeWindowStart()
	case changecheckpoint.FieldBeforeWindowEnd:
		return m.BeforeWindowEnd()
	case changecheckpoint.FieldAfterWindowStart:
		return m.AfterWindowStart()
	case changecheckpoint.FieldAfterWindowEnd:
		return m.AfterWindowEnd()
	case changecheckpoint.FieldMetrics:
		return m.Metrics()
	case changecheckpoint.FieldAssessment:
		return m.Assessment()
	case changecheckpoint.FieldConfidence:
		return m.Confidence()
	case changecheckpoint.FieldReasoning:
		return m.Reasoning()
	case changecheckpoint.FieldDataSources:
		return m.DataSources()
	case changecheckpoint.FieldProvider:
		return m.Provider()
	case changecheckpoint.FieldComputedAt:
		return m.ComputedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChangeCheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case changecheckpoint.FieldChangeID:
		return m.OldChangeID(ctx)
	case changecheckpoint.FieldHorizonDays:
		return m.OldHorizonDays(ctx)
	case changecheckpoint.FieldBeforeWindowStart:
		return m.OldBeforeWindowStart(ctx)
	case changecheckpoint.FieldBeforeWindowEnd:
		return m.OldBeforeWindowEnd(ctx)
	case changecheckpoint.FieldAfterWindowStart:
		return m.OldAfterWindowStart(ctx)
	case changecheckpoint.FieldAfterWindowEnd:
		return m.OldAfterWindowEnd(ctx)
	case changecheckpoint.FieldMetrics:
		return m.OldMetrics(ctx)
	case changecheckpoint.FieldAssessment:
		return m.OldAssessment(ctx)
	case changecheckpoint.FieldConfidence:
		return m.OldConfidence(ctx)
	case changecheckpoint.FieldReasoning:
		return m.OldReasoning(ctx)
	case changecheckpoint.FieldDataSources:
		return m.OldDataSources(ctx)
	case changecheckpoint.FieldProvider:
		return m.OldProvider(ctx)
	case changecheckpoint.FieldComputedAt:
		return m.OldComputedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChangeCheckpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeCheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case changecheckpoint.FieldChangeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeID(v)
		return nil
	case changecheckpoint.FieldHorizonDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHorizonDays(v)
		return nil
	case changecheckpoint.FieldBeforeWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeWindowStart(v)
		return nil
	case changecheckpoint.FieldBeforeWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeWindowEnd(v)
		return nil
	case changecheckpoint.FieldAfterWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterWindowStart(v)
		return nil
	case changecheckpoint.FieldAfterWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterWindowEnd(v)
		return nil
	case changecheckpoint.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case changecheckpoint.FieldAssessment:
		v, ok := value.(changecheckpoint.Assessment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessment(v)
		return nil
	case changecheckpoint.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case changecheckpoint.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case changecheckpoint.FieldDataSources:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataSources(v)
		return nil
	case changecheckpoint.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case changecheckpoint.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeCheckpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChangeCheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addhorizon_days != nil {
		fields = append(fields, changecheckpoint.FieldHorizonDays)
	}
	if m.addconfidence != nil {
		fields = append(fields, changecheckpoint.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChangeCheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case changecheckpoint.FieldHorizonDays:
		return m.AddedHorizonDays()
	case changecheckpoint.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeCheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case changecheckpoint.FieldHorizonDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHorizonDays(v)
		return nil
	case changecheckpoint.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeCheckpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChangeCheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(changecheckpoint.FieldMetrics) {
		fields = append(fields, changecheckpoint.FieldMetrics)
	}
	if m.FieldCleared(changecheckpoint.FieldConfidence) {
		fields = append(fields, changecheckpoint.FieldConfidence)
	}
	if m.FieldCleared(changecheckpoint.FieldDataSources) {
		fields = append(fields, changecheckpoint.FieldDataSources)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChangeCheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChangeCheckpointMutation) ClearField(name string) error {
	switch name {
	case changecheckpoint.FieldMetrics:
		m.ClearMetrics()
		return nil
	case changecheckpoint.FieldConfidence:
		m.ClearConfidence()
		return nil
	case changecheckpoint.FieldDataSources:
		m.ClearDataSources()
		return nil
	}
	return fmt.Errorf("unknown ChangeCheckpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChangeCheckpointMutation) ResetField(name string) error {
	switch name {
	case changecheckpoint.FieldChangeID:
		m.ResetChangeID()
		return nil
	case changecheckpoint.FieldHorizonDays:
		m.ResetHorizonDays()
		return nil
	case changecheckpoint.FieldBeforeWindowStart:
		m.ResetBeforeWindowStart()
		return nil
	case changecheckpoint.FieldBeforeWindowEnd:
		m.ResetBeforeWindowEnd()
		return nil
	case changecheckpoint.FieldAfterWindowStart:
		m.ResetAfterWindowStart()
		return nil
	case changecheckpoint.FieldAfterWindowEnd:
		m.ResetAfterWindowEnd()
		return nil
	case changecheckpoint.FieldMetrics:
		m.ResetMetrics()
		return nil
	case changecheckpoint.FieldAssessment:
		m.ResetAssessment()
		return nil
	case changecheckpoint.FieldConfidence:
		m.ResetConfidence()
		return nil
	case changecheckpoint.FieldReasoning:
		m.ResetReasoning()
		return nil
	case changecheckpoint.FieldDataSources:
		m.ResetDataSources()
		return nil
	case changecheckpoint.FieldProvider:
		m.ResetProvider()
		return nil
	case changecheckpoint.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	}
	return fmt.Errorf("unknown ChangeCheckpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChangeCheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.change != nil {
		edges = append(edges, changecheckpoint.EdgeChange)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChangeCheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case changecheckpoint.EdgeChange:
		if id := m.change; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChangeCheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChangeCheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChangeCheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchange {
		edges = append(edges, changecheckpoint.EdgeChange)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChangeCheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case changecheckpoint.EdgeChange:
		return m.clearedchange
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChangeCheckpointMutation) ClearEdge(name string) error {
	switch name {
	case changecheckpoint.EdgeChange:
		m.ClearChange()
		return nil
	}
	return fmt.Errorf("unknown ChangeCheckpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChangeCheckpointMutation) ResetEdge(name string) error {
	switch name {
	case changecheckpoint.EdgeChange:
		m.ResetChange()
		return nil
	}
	return fmt.Errorf("unknown ChangeCheckpoint edge %s", name)
}

// ChangeLifecycleEventMutation represents an operation that mutates the ChangeLifecycleEvent nodes in the graph.
type ChangeLifecycleEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	from_status   *string
	to_status     *string
	reason        *string
	actor_type    *changelifecycleevent.ActorType
	checkpoint_id *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	change        *string
	clearedchange bool
	done          bool
	oldValue      func(context.Context) (*ChangeLifecycleEvent, error)
	predicates    []predicate.ChangeLifecycleEvent
}

var _ ent.Mutation = (*ChangeLifecycleEventMutation)(nil)

// changelifecycleeventOption allows management of the mutation configuration using functional options.
type changelifecycleeventOption func(*ChangeLifecycleEventMutation)

// newChangeLifecycleEventMutation creates new mutation for the ChangeLifecycleEvent entity.
func newChangeLifecycleEventMutation(c config, op Op, opts ...changelifecycleeventOption) *ChangeLifecycleEventMutation {
	m := &ChangeLifecycleEventMutation{
		config:        c,
		op:            op,
		typ:           TypeChangeLifecycleEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChangeLifecycleEventID sets the ID field of the mutation.
func withChangeLifecycleEventID(id string) changelifecycleeventOption {
	return func(m *ChangeLifecycleEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ChangeLifecycleEvent
		)
		m.oldValue = func(ctx context.Context) (*ChangeLifecycleEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChangeLifecycleEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChangeLifecycleEvent sets the old ChangeLifecycleEvent of the mutation.
func withChangeLifecycleEvent(node *ChangeLifecycleEvent) changelifecycleeventOption {
	return func(m *ChangeLifecycleEventMutation) {
		m.oldValue = func(context.Context) (*ChangeLifecycleEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChangeLifecycleEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChangeLifecycleEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChangeLifecycleEvent entities.
func (m *ChangeLifecycleEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChangeLifecycleEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChangeLifecycleEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChangeLifecycleEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChangeID sets the "change_id" field.
func (m *ChangeLifecycleEventMutation) SetChangeID(s string) {
	m.change = &s
}

// ChangeID returns the value of the "change_id" field in the mutation.
func (m *ChangeLifecycleEventMutation) ChangeID() (r string, exists bool) {
	v := m.change
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeID returns the old "change_id" field's value of the ChangeLifecycleEvent entity.
// If the ChangeLifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLifecycleEventMutation) OldChangeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeID: %w", err)
	}
	return oldValue.ChangeID, nil
}

// ResetChangeID resets all changes to the "change_id" field.
func (m *ChangeLifecycleEventMutation) ResetChangeID() {
	m.change = nil
}

// SetFromStatus sets the "from_status" field.
func (m *ChangeLifecycleEventMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *ChangeLifecycleEventMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the ChangeLifecycleEvent entity.
// If the ChangeLifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLifecycleEventMutation) OldFromStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ClearFromStatus clears the value of the "from_status" field.
func (m *ChangeLifecycleEventMutation) ClearFromStatus() {
	m.from_status = nil
	m.clearedFields[changelifecycleevent.FieldFromStatus] = struct{}{}
}

// FromStatusCleared returns if the "from_status" field was cleared in this mutation.
func (m *ChangeLifecycleEventMutation) FromStatusCleared() bool {
	_, ok := m.clearedFields[changelifecycleevent.FieldFromStatus]
	return ok
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *ChangeLifecycleEventMutation) ResetFromStatus() {
	m.from_status = nil
	delete(m.clearedFields, changelifecycleevent.FieldFromStatus)
}

// SetToStatus sets the "to_status" field.
func (m *ChangeLifecycleEventMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *ChangeLifecycleEventMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the ChangeLifecycleEvent entity.
// If the ChangeLifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLifecycleEventMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *ChangeLifecycleEventMutation) ResetToStatus() {
	m.to_status = nil
}

// SetReason sets the "reason" field.
func (m *ChangeLifecycleEventMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ChangeLifecycleEventMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the ChangeLifecycleEvent entity.
// If the ChangeLifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLifecycleEventMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *ChangeLifecycleEventMutation) ResetReason() {
	m.reason = nil
}

// SetActorType sets the "actor_type" field.
func (m *ChangeLifecycleEventMutation) SetActorType(ct changelifecycleevent.ActorType) {
	m.actor_type = &ct
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *ChangeLifecycleEventMutation) ActorType() (r changelifecycleevent.ActorType, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the ChangeLifecycleEvent entity.
// If the ChangeLifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLifecycleEventMutation) OldActorType(ctx context.Context) (v changelifecycleevent.ActorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *ChangeLifecycleEventMutation) ResetActorType() {
	m.actor_type = nil
}

// SetCheckpointID sets the "checkpoint_id" field.
func (m *ChangeLifecycleEventMutation) SetCheckpointID(s string) {
	m.checkpoint_id = &s
}

// CheckpointID returns the value of the "checkpoint_id" field in the mutation.
func (m *ChangeLifecycleEventMutation) CheckpointID() (r string, exists bool) {
	v := m.checkpoint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointID returns the old "checkpoint_id" field's value of the ChangeLifecycleEvent entity.
// If the ChangeLifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLifecycleEventMutation) OldCheckpointID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointID: %w", err)
	}
	return oldValue.CheckpointID, nil
}

// ClearCheckpointID clears the value of the "checkpoint_id" field.
func (m *ChangeLifecycleEventMutation) ClearCheckpointID() {
	m.checkpoint_id = nil
	m.clearedFields[changelifecycleevent.FieldCheckpointID] = struct{}{}
}

// CheckpointIDCleared returns if the "checkpoint_id" field was cleared in this mutation.
func (m *ChangeLifecycleEventMutation) CheckpointIDCleared() bool {
	_, ok := m.clearedFields[changelifecycleevent.FieldCheckpointID]
	return ok
}

// ResetCheckpointID resets all changes to the "checkpoint_id" field.
func (m *ChangeLifecycleEventMutation) ResetCheckpointID() {
	m.checkpoint_id = nil
	delete(m.clearedFields, changelifecycleevent.FieldCheckpointID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChangeLifecycleEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChangeLifecycleEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChangeLifecycleEvent entity.
// If the ChangeLifecycleEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChangeLifecycleEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChangeLifecycleEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearChange clears the "change" edge to the DetectedChange entity.
func (m *ChangeLifecycleEventMutation) ClearChange() {
	m.clearedchange = true
	m.clearedFields[changelifecycleevent.FieldChangeID] = struct{}{}
}

// ChangeCleared reports if the "change" edge to the DetectedChange entity was cleared.
func (m *ChangeLifecycleEventMutation) ChangeCleared() bool {
	return m.clearedchange
}

// ChangeIDs returns the "change" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChangeID instead. It exists only for internal usage by the builders.
func (m *ChangeLifecycleEventMutation) ChangeIDs() (ids []string) {
	if id := m.change; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChange resets all changes to the "change" edge.
func (m *ChangeLifecycleEventMutation) ResetChange() {
	m.change = nil
	m.clearedchange = false
}

// Where appends a list predicates to the ChangeLifecycleEventMutation builder.
func (m *ChangeLifecycleEventMutation) Where(ps ...predicate.ChangeLifecycleEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChangeLifecycleEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChangeLifecycleEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChangeLifecycleEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChangeLifecycleEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChangeLifecycleEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChangeLifecycleEvent).
func (m *ChangeLifecycleEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChangeLifecycleEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.change != nil {
		fields = append(fields, changelifecycleevent.FieldChangeID)
	}
	if m.from_status != nil {
		fields = append(fields, changelifecycleevent.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, changelifecycleevent.FieldToStatus)
	}
	if m.reason != nil {
		fields = append(fields, changelifecycleevent.FieldReason)
	}
	if m.actor_type != nil {
		fields = append(fields, changelifecycleevent.FieldActorType)
	}
	if m.checkpoint_id != nil {
		fields = append(fields, changelifecycleevent.FieldCheckpointID)
	}
	if m.created_at != nil {
		fields = append(fields, changelifecycleevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChangeLifecycleEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case changelifecycleevent.FieldChangeID:
		return m.ChangeID()
	case changelifecycleevent.FieldFromStatus:
		return m.FromStatus()
	case changelifecycleevent.FieldToStatus:
		return m.ToStatus()
	case changelifecycleevent.FieldReason:
		return m.Reason()
	case changelifecycleevent.FieldActorType:
		return m.ActorType()
	case changelifecycleevent.FieldCheckpointID:
		return m.CheckpointID()
	case changelifecycleevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChangeLifecycleEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case changelifecycleevent.FieldChangeID:
		return m.OldChangeID(ctx)
	case changelifecycleevent.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case changelifecycleevent.FieldToStatus:
		return m.OldToStatus(ctx)
	case changelifecycleevent.FieldReason:
		return m.OldReason(ctx)
	case changelifecycleevent.FieldActorType:
		return m.OldActorType(ctx)
	case changelifecycleevent.FieldCheckpointID:
		return m.OldCheckpointID(ctx)
	case changelifecycleevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChangeLifecycleEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeLifecycleEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case changelifecycleevent.FieldChangeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeID(v)
		return nil
	case changelifecycleevent.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case changelifecycleevent.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case changelifecycleevent.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case changelifecycleevent.FieldActorType:
		v, ok := value.(changelifecycleevent.ActorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case changelifecycleevent.FieldCheckpointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointID(v)
		return nil
	case changelifecycleevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChangeLifecycleEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChangeLifecycleEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChangeLifecycleEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChangeLifecycleEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChangeLifecycleEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChangeLifecycleEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(changelifecycleevent.FieldFromStatus) {
		fields = append(fields, changelifecycleevent.FieldFromStatus)
	}
	if m.FieldCleared(changelifecycleevent.FieldCheckpointID) {
		fields = append(fields, changelifecycleevent.FieldCheckpointID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChangeLifecycleEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChangeLifecycleEventMutation) ClearField(name string) error {
	switch name {
	case changelifecycleevent.FieldFromStatus:
		m.ClearFromStatus()
		return nil
	case changelifecycleevent.FieldCheckpointID:
		m.ClearCheckpointID()
		return nil
	}
	return fmt.Errorf("unknown ChangeLifecycleEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChangeLifecycleEventMutation) ResetField(name string) error {
	switch name {
	case changelifecycleevent.FieldChangeID:
		m.ResetChangeID()
		return nil
	case changelifecycleevent.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case changelifecycleevent.FieldToStatus:
		m.ResetToStatus()
		return nil
	case changelifecycleevent.FieldReason:
		m.ResetReason()
		return nil
	case changelifecycleevent.FieldActorType:
		m.ResetActorType()
		return nil
	case changelifecycleevent.FieldCheckpointID:
		m.ResetCheckpointID()
		return nil
	case changelifecycleevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChangeLifecycleEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChangeLifecycleEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.change != nil {
		edges = append(edges, changelifecycleevent.EdgeChange)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChangeLifecycleEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case changelifecycleevent.EdgeChange:
		if id := m.change; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChangeLifecycleEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChangeLifecycleEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChangeLifecycleEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchange {
		edges = append(edges, changelifecycleevent.EdgeChange)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChangeLifecycleEventMutation) EdgeCleared(name string) bool {
	switch name {
	case changelifecycleevent.EdgeChange:
		return m.clearedchange
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChangeLifecycleEventMutation) ClearEdge(name string) error {
	switch name {
	case changelifecycleevent.EdgeChange:
		m.ClearChange()
		return nil
	}
	return fmt.Errorf("unknown ChangeLifecycleEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChangeLifecycleEventMutation) ResetEdge(name string) error {
	switch name {
	case changelifecycleevent.EdgeChange:
		m.ResetChange()
		return nil
	}
	return fmt.Errorf("unknown ChangeLifecycleEvent edge %s", name)
}

// DeployMutation represents an operation that mutates the Deploy nodes in the graph.
type DeployMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	repo_id             *string
	commit_sha          *string
	full_name           *string
	commit_message      *string
	changed_files       *[]string
	appendchanged_files []string
	status              *deploy.Status
	created_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	user                *string
	cleareduser         bool
	done                bool
	oldValue            func(context.Context) (*Deploy, error)
	predicates          []predicate.Deploy
}

var _ ent.Mutation = (*DeployMutation)(nil)

// deployOption allows management of the mutation configuration using functional options.
type deployOption func(*DeployMutation)

// newDeployMutation creates new mutation for the Deploy entity.
func newDeployMutation(c config, op Op, opts ...deployOption) *DeployMutation {
	m := &DeployMutation{
		config:        c,
		op:            op,
		typ:           TypeDeploy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeployID sets the ID field of the mutation.
func withDeployID(id string) deployOption {
	return func(m *DeployMutation) {
		var (
			err   error
			once  sync.Once
			value *Deploy
		)
		m.oldValue = func(ctx context.Context) (*Deploy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deploy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeploy sets the old Deploy of the mutation.
func withDeploy(node *Deploy) deployOption {
	return func(m *DeployMutation) {
		m.oldValue = func(context.Context) (*Deploy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeployMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeployMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deploy entities.
func (m *DeployMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeployMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeployMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deploy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DeployMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DeployMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DeployMutation) ResetUserID() {
	m.user = nil
}

// SetRepoID sets the "repo_id" field.
func (m *DeployMutation) SetRepoID(s string) {
	m.repo_id = &s
}

// RepoID returns the value of the "repo_id" field in the mutation.
func (m *DeployMutation) RepoID() (r string, exists bool) {
	v := m.repo_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRepoID returns the old "repo_id" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldRepoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepoID: %w", err)
	}
	return oldValue.RepoID, nil
}

// ResetRepoID resets all changes to the "repo_id" field.
func (m *DeployMutation) ResetRepoID() {
	m.repo_id = nil
}

// SetCommitSha sets the "commit_sha" field.
func (m *DeployMutation) SetCommitSha(s string) {
	m.commit_sha = &s
}

// CommitSha returns the value of the "commit_sha" field in the mutation.
func (m *DeployMutation) CommitSha() (r string, exists bool) {
	v := m.commit_sha
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitSha returns the old "commit_sha" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldCommitSha(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitSha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitSha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitSha: %w", err)
	}
	return oldValue.CommitSha, nil
}

// ResetCommitSha resets all changes to the "commit_sha" field.
func (m *DeployMutation) ResetCommitSha() {
	m.commit_sha = nil
}

// SetFullName sets the "full_name" field.
func (m *DeployMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *DeployMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *DeployMutation) ResetFullName() {
	m.full_name = nil
}

// SetCommitMessage sets the "commit_message" field.
func (m *DeployMutation) SetCommitMessage(s string) {
	m.commit_message = &s
}

// CommitMessage returns the value of the "commit_message" field in the mutation.
func (m *DeployMutation) CommitMessage() (r string, exists bool) {
	v := m.commit_message
	if v == nil {
		return
	}
	return *v, true
}

// OldCommitMessage returns the old "commit_message" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldCommitMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommitMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommitMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommitMessage: %w", err)
	}
	return oldValue.CommitMessage, nil
}

// ClearCommitMessage clears the value of the "commit_message" field.
func (m *DeployMutation) ClearCommitMessage() {
	m.commit_message = nil
	m.clearedFields[deploy.FieldCommitMessage] = struct{}{}
}

// CommitMessageCleared returns if the "commit_message" field was cleared in this mutation.
func (m *DeployMutation) CommitMessageCleared() bool {
	_, ok := m.clearedFields[deploy.FieldCommitMessage]
	return ok
}

// ResetCommitMessage resets all changes to the "commit_message" field.
func (m *DeployMutation) ResetCommitMessage() {
	m.commit_message = nil
	delete(m.clearedFields, deploy.FieldCommitMessage)
}

// SetChangedFiles sets the "changed_files" field.
func (m *DeployMutation) SetChangedFiles(s []string) {
	m.changed_files = &s
	m.appendchanged_files = nil
}

// ChangedFiles returns the value of the "changed_files" field in the mutation.
func (m *DeployMutation) ChangedFiles() (r []string, exists bool) {
	v := m.changed_files
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedFiles returns the old "changed_files" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldChangedFiles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedFiles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedFiles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedFiles: %w", err)
	}
	return oldValue.ChangedFiles, nil
}

// AppendChangedFiles adds s to the "changed_files" field.
func (m *DeployMutation) AppendChangedFiles(s []string) {
	m.appendchanged_files = append(m.appendchanged_files, s...)
}

// AppendedChangedFiles returns the list of values that were appended to the "changed_files" field in this mutation.
func (m *DeployMutation) AppendedChangedFiles() ([]string, bool) {
	if len(m.appendchanged_files) == 0 {
		return nil, false
	}
	return m.appendchanged_files, true
}

// ClearChangedFiles clears the value of the "changed_files" field.
func (m *DeployMutation) ClearChangedFiles() {
	m.changed_files = nil
	m.appendchanged_files = nil
	m.clearedFields[deploy.FieldChangedFiles] = struct{}{}
}

// ChangedFilesCleared returns if the "changed_files" field was cleared in this mutation.
func (m *DeployMutation) ChangedFilesCleared() bool {
	_, ok := m.clearedFields[deploy.FieldChangedFiles]
	return ok
}

// ResetChangedFiles resets all changes to the "changed_files" field.
func (m *DeployMutation) ResetChangedFiles() {
	m.changed_files = nil
	m.appendchanged_files = nil
	delete(m.clearedFields, deploy.FieldChangedFiles)
}

// SetStatus sets the "status" field.
func (m *DeployMutation) SetStatus(d deploy.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeployMutation) Status() (r deploy.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldStatus(ctx context.Context) (v deploy.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeployMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeployMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeployMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeployMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *DeployMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DeployMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Deploy entity.
// If the Deploy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeployMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DeployMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[deploy.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DeployMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[deploy.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DeployMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, deploy.FieldCompletedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *DeployMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[deploy.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DeployMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DeployMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DeployMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the DeployMutation builder.
func (m *DeployMutation) Where(ps ...predicate.Deploy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeployMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeployMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deploy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeployMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeployMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deploy).
func (m *DeployMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeployMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, deploy.FieldUserID)
	}
	if m.repo_id != nil {
		fields = append(fields, deploy.FieldRepoID)
	}
	if m.commit_sha != nil {
		fields = append(fields, deploy.FieldCommitSha)
	}
	if m.full_name != nil {
		fields = append(fields, deploy.FieldFullName)
	}
	if m.commit_message != nil {
		fields = append(fields, deploy.FieldCommitMessage)
	}
	if m.changed_files != nil {
		fields = append(fields, deploy.FieldChangedFiles)
	}
	if m.status != nil {
		fields = append(fields, deploy.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, deploy.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, deploy.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeployMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deploy.FieldUserID:
		return m.UserID()
	case deploy.FieldRepoID:
		return m.RepoID()
	case deploy.FieldCommitSha:
		return m.CommitSha()
	case deploy.FieldFullName:
		return m.FullName()
	case deploy.FieldCommitMessage:
		return m.CommitMessage()
	case deploy.FieldChangedFiles:
		return m.ChangedFiles()
	case deploy.FieldStatus:
		return m.Status()
	case deploy.FieldCreatedAt:
		return m.CreatedAt()
	case deploy.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeployMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deploy.FieldUserID:
		return m.OldUserID(ctx)
	case deploy.FieldRepoID:
		return m.OldRepoID(ctx)
	case deploy.FieldCommitSha:
		return m.OldCommitSha(ctx)
	case deploy.FieldFullName:
		return m.OldFullName(ctx)
	case deploy.FieldCommitMessage:
		return m.OldCommitMessage(ctx)
	case deploy.FieldChangedFiles:
		return m.OldChangedFiles(ctx)
	case deploy.FieldStatus:
		return m.OldStatus(ctx)
	case deploy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deploy.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deploy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeployMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deploy.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case deploy.FieldRepoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepoID(v)
		return nil
	case deploy.FieldCommitSha:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitSha(v)
		return nil
	case deploy.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case deploy.FieldCommitMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommitMessage(v)
		return nil
	case deploy.FieldChangedFiles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedFiles(v)
		return nil
	case deploy.FieldStatus:
		v, ok := value.(deploy.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deploy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deploy.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deploy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeployMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeployMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeployMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Deploy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeployMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deploy.FieldCommitMessage) {
		fields = append(fields, deploy.FieldCommitMessage)
	}
	if m.FieldCleared(deploy.FieldChangedFiles) {
		fields = append(fields, deploy.FieldChangedFiles)
	}
	if m.FieldCleared(deploy.FieldCompletedAt) {
		fields = append(fields, deploy.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeployMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeployMutation) ClearField(name string) error {
	switch name {
	case deploy.FieldCommitMessage:
		m.ClearCommitMessage()
		return nil
	case deploy.FieldChangedFiles:
		m.ClearChangedFiles()
		return nil
	case deploy.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Deploy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeployMutation) ResetField(name string) error {
	switch name {
	case deploy.FieldUserID:
		m.ResetUserID()
		return nil
	case deploy.FieldRepoID:
		m.ResetRepoID()
		return nil
	case deploy.FieldCommitSha:
		m.ResetCommitSha()
		return nil
	case deploy.FieldFullName:
		m.ResetFullName()
		return nil
	case deploy.FieldCommitMessage:
		m.ResetCommitMessage()
		return nil
	case deploy.FieldChangedFiles:
		m.ResetChangedFiles()
		return nil
	case deploy.FieldStatus:
		m.ResetStatus()
		return nil
	case deploy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deploy.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Deploy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeployMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, deploy.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeployMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deploy.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeployMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeployMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeployMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, deploy.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeployMutation) EdgeCleared(name string) bool {
	switch name {
	case deploy.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeployMutation) ClearEdge(name string) error {
	switch name {
	case deploy.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Deploy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeployMutation) ResetEdge(name string) error {
	switch name {
	case deploy.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Deploy edge %s", name)
}

// DetectedChangeMutation represents an operation that mutates the DetectedChange nodes in the graph.
type DetectedChangeMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	user_id                    *string
	element                    *string
	scope                      *detectedchange.Scope
	before_value               *string
	after_value                *string
	description                *string
	status                     *detectedchange.Status
	first_detected_at          *time.Time
	detected_on                *string
	first_detected_analysis_id *string
	hypothesis                 *string
	correlation_metrics        *map[string]interface{}
	correlation_unlocked_at    *time.Time
	observation_text           *string
	match_confidence           *float64
	addmatch_confidence        *float64
	match_rationale            *string
	reverted_at                *time.Time
	clearedFields              map[string]struct{}
	page                       *string
	clearedpage                bool
	checkpoints                map[string]struct{}
	removedcheckpoints         map[string]struct{}
	clearedcheckpoints         bool
	lifecycle_events           map[string]struct{}
	removedlifecycle_events    map[string]struct{}
	clearedlifecycle_events    bool
	outcome_feedback           map[string]struct{}
	removedoutcome_feedback    map[string]struct{}
	clearedoutcome_feedback    bool
	done                       bool
	oldValue                   func(context.Context) (*DetectedChange, error)
	predicates                 []predicate.DetectedChange
}

var _ ent.Mutation = (*DetectedChangeMutation)(nil)

// detectedchangeOption allows management of the mutation configuration using functional options.
type detectedchangeOption func(*DetectedChangeMutation)

// newDetectedChangeMutation creates new mutation for the DetectedChange entity.
func newDetectedChangeMutation(c config, op Op, opts ...detectedchangeOption) *DetectedChangeMutation {
	m := &DetectedChangeMutation{
		config:        c,
		op:            op,
		typ:           TypeDetectedChange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDetectedChangeID sets the ID field of the mutation.
func withDetectedChangeID(id string) detectedchangeOption {
	return func(m *DetectedChangeMutation) {
		var (
			err   error
			once  sync.Once
			value *DetectedChange
		)
		m.oldValue = func(ctx context.Context) (*DetectedChange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DetectedChange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDetectedChange sets the old DetectedChange of the mutation.
func withDetectedChange(node *DetectedChange) detectedchangeOption {
	return func(m *DetectedChangeMutation) {
		m.oldValue = func(context.Context) (*DetectedChange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DetectedChangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DetectedChangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DetectedChange entities.
func (m *DetectedChangeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DetectedChangeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DetectedChangeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DetectedChange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPageID sets the "page_id" field.
func (m *DetectedChangeMutation) SetPageID(s string) {
	m.page = &s
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *DetectedChangeMutation) PageID() (r string, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldPageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *DetectedChangeMutation) ResetPageID() {
	m.page = nil
}

// SetUserID sets the "user_id" field.
func (m *DetectedChangeMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DetectedChangeMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DetectedChangeMutation) ResetUserID() {
	m.user_id = nil
}

// SetElement sets the "element" field.
func (m *DetectedChangeMutation) SetElement(s string) {
	m.element = &s
}

// Element returns the value of the "element" field in the mutation.
func (m *DetectedChangeMutation) Element() (r string, exists bool) {
	v := m.element
	if v == nil {
		return
	}
	return *v, true
}

// OldElement returns the old "element" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldElement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElement: %w", err)
	}
	return oldValue.Element, nil
}

// ResetElement resets all changes to the "element" field.
func (m *DetectedChangeMutation) ResetElement() {
	m.element = nil
}

// SetScope sets the "scope" field.
func (m *DetectedChangeMutation) SetScope(d detectedchange.Scope) {
	m.scope = &d
}

// Scope returns the value of the "scope" field in the mutation.
func (m *DetectedChangeMutation) Scope() (r detectedchange.Scope, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldScope(ctx context.Context) (v detectedchange.Scope, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *DetectedChangeMutation) ResetScope() {
	m.scope = nil
}

// SetBeforeValue sets the "before_value" field.
func (m *DetectedChangeMutation) SetBeforeValue(s string) {
	m.before_value = &s
}

// BeforeValue returns the value of the "before_value" field in the mutation.
func (m *DetectedChangeMutation) BeforeValue() (r string, exists bool) {
	v := m.before_value
	if v == nil {
		return
	}
	return *v, true
}

// OldBeforeValue returns the old "before_value" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldBeforeValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBeforeValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBeforeValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBeforeValue: %w", err)
	}
	return oldValue.BeforeValue, nil
}

// ResetBeforeValue resets all changes to the "before_value" field.
func (m *DetectedChangeMutation) ResetBeforeValue() {
	m.before_value = nil
}

// SetAfterValue sets the "after_value" field.
func (m *DetectedChangeMutation) SetAfterValue(s string) {
	m.after_value = &s
}

// AfterValue returns the value of the "after_value" field in the mutation.
func (m *DetectedChangeMutation) AfterValue() (r string, exists bool) {
	v := m.after_value
	if v == nil {
		return
	}
	return *v, true
}

// OldAfterValue returns the old "after_value" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldAfterValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfterValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfterValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfterValue: %w", err)
	}
	return oldValue.AfterValue, nil
}

// ResetAfterValue resets all changes to the "after_value" field.
func (m *DetectedChangeMutation) ResetAfterValue() {
	m.after_value = nil
}

// SetDescription sets the "description" field.
func (m *DetectedChangeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *DetectedChangeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *DetectedChangeMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[detectedchange.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *DetectedChangeMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *DetectedChangeMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, detectedchange.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *DetectedChangeMutation) SetStatus(d detectedchange.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DetectedChangeMutation) Status() (r detectedchange.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldStatus(ctx context.Context) (v detectedchange.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DetectedChangeMutation) ResetStatus() {
	m.status = nil
}

// SetFirstDetectedAt sets the "first_detected_at" field.
func (m *DetectedChangeMutation) SetFirstDetectedAt(t time.Time) {
	m.first_detected_at = &t
}

// FirstDetectedAt returns the value of the "first_detected_at" field in the mutation.
func (m *DetectedChangeMutation) FirstDetectedAt() (r time.Time, exists bool) {
	v := m.first_detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDetectedAt returns the old "first_detected_at" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldFirstDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDetectedAt: %w", err)
	}
	return oldValue.FirstDetectedAt, nil
}

// ResetFirstDetectedAt resets all changes to the "first_detected_at" field.
func (m *DetectedChangeMutation) ResetFirstDetectedAt() {
	m.first_detected_at = nil
}

// SetDetectedOn sets the "detected_on" field.
func (m *DetectedChangeMutation) SetDetectedOn(s string) {
	m.detected_on = &s
}

// DetectedOn returns the value of the "detected_on" field in the mutation.
func (m *DetectedChangeMutation) DetectedOn() (r string, exists bool) {
	v := m.detected_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedOn returns the old "detected_on" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldDetectedOn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedOn: %w", err)
	}
	return oldValue.DetectedOn, nil
}

// ResetDetectedOn resets all changes to the "detected_on" field.
func (m *DetectedChangeMutation) ResetDetectedOn() {
	m.detected_on = nil
}

// SetFirstDetectedAnalysisID sets the "first_detected_analysis_id" field.
func (m *DetectedChangeMutation) SetFirstDetectedAnalysisID(s string) {
	m.first_detected_analysis_id = &s
}

// FirstDetectedAnalysisID returns the value of the "first_detected_analysis_id" field in the mutation.
func (m *DetectedChangeMutation) FirstDetectedAnalysisID() (r string, exists bool) {
	v := m.first_detected_analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstDetectedAnalysisID returns the old "first_detected_analysis_id" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldFirstDetectedAnalysisID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstDetectedAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstDetectedAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstDetectedAnalysisID: %w", err)
	}
	return oldValue.FirstDetectedAnalysisID, nil
}

// ClearFirstDetectedAnalysisID clears the value of the "first_detected_analysis_id" field.
func (m *DetectedChangeMutation) ClearFirstDetectedAnalysisID() {
	m.first_detected_analysis_id = nil
	m.clearedFields[detectedchange.FieldFirstDetectedAnalysisID] = struct{}{}
}

// FirstDetectedAnalysisIDCleared returns if the "first_detected_analysis_id" field was cleared in this mutation.
func (m *DetectedChangeMutation) FirstDetectedAnalysisIDCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldFirstDetectedAnalysisID]
	return ok
}

// ResetFirstDetectedAnalysisID resets all changes to the "first_detected_analysis_id" field.
func (m *DetectedChangeMutation) ResetFirstDetectedAnalysisID() {
	m.first_detected_analysis_id = nil
	delete(m.clearedFields, detectedchange.FieldFirstDetectedAnalysisID)
}

// SetHypothesis sets the "hypothesis" field.
func (m *DetectedChangeMutation) SetHypothesis(s string) {
	m.hypothesis = &s
}

// Hypothesis returns the value of the "hypothesis" field in the mutation.
func (m *DetectedChangeMutation) Hypothesis() (r string, exists bool) {
	v := m.hypothesis
	if v == nil {
		return
	}
	return *v, true
}

// OldHypothesis returns the old "hypothesis" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldHypothesis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHypothesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHypothesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHypothesis: %w", err)
	}
	return oldValue.Hypothesis, nil
}

// ClearHypothesis clears the value of the "hypothesis" field.
func (m *DetectedChangeMutation) ClearHypothesis() {
	m.hypothesis = nil
	m.clearedFields[detectedchange.FieldHypothesis] = struct{}{}
}

// HypothesisCleared returns if the "hypothesis" field was cleared in this mutation.
func (m *DetectedChangeMutation) HypothesisCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldHypothesis]
	return ok
}

// ResetHypothesis resets all changes to the "hypothesis" field.
func (m *DetectedChangeMutation) ResetHypothesis() {
	m.hypothesis = nil
	delete(m.clearedFields, detectedchange.FieldHypothesis)
}

// SetCorrelationMetrics sets the "correlation_metrics" field.
func (m *DetectedChangeMutation) SetCorrelationMetrics(value map[string]interface{}) {
	m.correlation_metrics = &value
}

// CorrelationMetrics returns the value of the "correlation_metrics" field in the mutation.
func (m *DetectedChangeMutation) CorrelationMetrics() (r map[string]interface{}, exists bool) {
	v := m.correlation_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationMetrics returns the old "correlation_metrics" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldCorrelationMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationMetrics: %w", err)
	}
	return oldValue.CorrelationMetrics, nil
}

// ClearCorrelationMetrics clears the value of the "correlation_metrics" field.
func (m *DetectedChangeMutation) ClearCorrelationMetrics() {
	m.correlation_metrics = nil
	m.clearedFields[detectedchange.FieldCorrelationMetrics] = struct{}{}
}

// CorrelationMetricsCleared returns if the "correlation_metrics" field was cleared in this mutation.
func (m *DetectedChangeMutation) CorrelationMetricsCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldCorrelationMetrics]
	return ok
}

// ResetCorrelationMetrics resets all changes to the "correlation_metrics" field.
func (m *DetectedChangeMutation) ResetCorrelationMetrics() {
	m.correlation_metrics = nil
	delete(m.clearedFields, detectedchange.FieldCorrelationMetrics)
}

// SetCorrelationUnlockedAt sets the "correlation_unlocked_at" field.
func (m *DetectedChangeMutation) SetCorrelationUnlockedAt(t time.Time) {
	m.correlation_unlocked_at = &t
}

// CorrelationUnlockedAt returns the value of the "correlation_unlocked_at" field in the mutation.
func (m *DetectedChangeMutation) CorrelationUnlockedAt() (r time.Time, exists bool) {
	v := m.correlation_unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationUnlockedAt returns the old "correlation_unlocked_at" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldCorrelationUnlockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationUnlockedAt: %w", err)
	}
	return oldValue.CorrelationUnlockedAt, nil
}

// ClearCorrelationUnlockedAt clears the value of the "correlation_unlocked_at" field.
func (m *DetectedChangeMutation) ClearCorrelationUnlockedAt() {
	m.correlation_unlocked_at = nil
	m.clearedFields[detectedchange.FieldCorrelationUnlockedAt] = struct{}{}
}

// CorrelationUnlockedAtCleared returns if the "correlation_unlocked_at" field was cleared in this mutation.
func (m *DetectedChangeMutation) CorrelationUnlockedAtCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldCorrelationUnlockedAt]
	return ok
}

// ResetCorrelationUnlockedAt resets all changes to the "correlation_unlocked_at" field.
func (m *DetectedChangeMutation) ResetCorrelationUnlockedAt() {
	m.correlation_unlocked_at = nil
	delete(m.clearedFields, detectedchange.FieldCorrelationUnlockedAt)
}

// SetObservationText sets the "observation_text" field.
func (m *DetectedChangeMutation) SetObservationText(s string) {
	m.observation_text = &s
}

// ObservationText returns the value of the "observation_text" field in the mutation.
func (m *DetectedChangeMutation) ObservationText() (r string, exists bool) {
	v := m.observation_text
	if v == nil {
		return
	}
	return *v, true
}

// OldObservationText returns the old "observation_text" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldObservationText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservationText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservationText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservationText: %w", err)
	}
	return oldValue.ObservationText, nil
}

// ClearObservationText clears the value of the "observation_text" field.
func (m *DetectedChangeMutation) ClearObservationText() {
	m.observation_text = nil
	m.clearedFields[detectedchange.FieldObservationText] = struct{}{}
}

// ObservationTextCleared returns if the "observation_text" field was cleared in this mutation.
func (m *DetectedChangeMutation) ObservationTextCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldObservationText]
	return ok
}

// ResetObservationText resets all changes to the "observation_text" field.
func (m *DetectedChangeMutation) ResetObservationText() {
	m.observation_text = nil
	delete(m.clearedFields, detectedchange.FieldObservationText)
}

// SetMatchConfidence sets the "match_confidence" field.
func (m *DetectedChangeMutation) SetMatchConfidence(f float64) {
	m.match_confidence = &f
	m.addmatch_confidence = nil
}

// MatchConfidence returns the value of the "match_confidence" field in the mutation.
func (m *DetectedChangeMutation) MatchConfidence() (r float64, exists bool) {
	v := m.match_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchConfidence returns the old "match_confidence" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldMatchConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchConfidence: %w", err)
	}
	return oldValue.MatchConfidence, nil
}

// AddMatchConfidence adds f to the "match_confidence" field.
func (m *DetectedChangeMutation) AddMatchConfidence(f float64) {
	if m.addmatch_confidence != nil {
		*m.addmatch_confidence += f
	} else {
		m.addmatch_confidence = &f
	}
}

// AddedMatchConfidence returns the value that was added to the "match_confidence" field in this mutation.
func (m *DetectedChangeMutation) AddedMatchConfidence() (r float64, exists bool) {
	v := m.addmatch_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearMatchConfidence clears the value of the "match_confidence" field.
func (m *DetectedChangeMutation) ClearMatchConfidence() {
	m.match_confidence = nil
	m.addmatch_confidence = nil
	m.clearedFields[detectedchange.FieldMatchConfidence] = struct{}{}
}

// MatchConfidenceCleared returns if the "match_confidence" field was cleared in this mutation.
func (m *DetectedChangeMutation) MatchConfidenceCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldMatchConfidence]
	return ok
}

// ResetMatchConfidence resets all changes to the "match_confidence" field.
func (m *DetectedChangeMutation) ResetMatchConfidence() {
	m.match_confidence = nil
	m.addmatch_confidence = nil
	delete(m.clearedFields, detectedchange.FieldMatchConfidence)
}

// SetMatchRationale sets the "match_rationale" field.
func (m *DetectedChangeMutation) SetMatchRationale(s string) {
	m.match_rationale = &s
}

// MatchRationale returns the value of the "match_rationale" field in the mutation.
func (m *DetectedChangeMutation) MatchRationale() (r string, exists bool) {
	v := m.match_rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchRationale returns the old "match_rationale" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldMatchRationale(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchRationale: %w", err)
	}
	return oldValue.MatchRationale, nil
}

// ClearMatchRationale clears the value of the "match_rationale" field.
func (m *DetectedChangeMutation) ClearMatchRationale() {
	m.match_rationale = nil
	m.clearedFields[detectedchange.FieldMatchRationale] = struct{}{}
}

// MatchRationaleCleared returns if the "match_rationale" field was cleared in this mutation.
func (m *DetectedChangeMutation) MatchRationaleCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldMatchRationale]
	return ok
}

// ResetMatchRationale resets all changes to the "match_rationale" field.
func (m *DetectedChangeMutation) ResetMatchRationale() {
	m.match_rationale = nil
	delete(m.clearedFields, detectedchange.FieldMatchRationale)
}

// SetRevertedAt sets the "reverted_at" field.
func (m *DetectedChangeMutation) SetRevertedAt(t time.Time) {
	m.reverted_at = &t
}

// RevertedAt returns the value of the "reverted_at" field in the mutation.
func (m *DetectedChangeMutation) RevertedAt() (r time.Time, exists bool) {
	v := m.reverted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevertedAt returns the old "reverted_at" field's value of the DetectedChange entity.
// If the DetectedChange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DetectedChangeMutation) OldRevertedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevertedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevertedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevertedAt: %w", err)
	}
	return oldValue.RevertedAt, nil
}

// ClearRevertedAt clears the value of the "reverted_at" field.
func (m *DetectedChangeMutation) ClearRevertedAt() {
	m.reverted_at = nil
	m.clearedFields[detectedchange.FieldRevertedAt] = struct{}{}
}

// RevertedAtCleared returns if the "reverted_at" field was cleared in this mutation.
func (m *DetectedChangeMutation) RevertedAtCleared() bool {
	_, ok := m.clearedFields[detectedchange.FieldRevertedAt]
	return ok
}

// ResetRevertedAt resets all changes to the "reverted_at" field.
func (m *DetectedChangeMutation) ResetRevertedAt() {
	m.reverted_at = nil
	delete(m.clearedFields, detectedchange.FieldRevertedAt)
}

// ClearPage clears the "page" edge to the Page entity.
func (m *DetectedChangeMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[detectedchange.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the Page entity was cleared.
func (m *DetectedChangeMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *DetectedChangeMutation) PageIDs() (ids []string) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *DetectedChangeMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// AddCheckpointIDs adds the "checkpoints" edge to the ChangeCheckpoint entity by ids.
func (m *DetectedChangeMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the ChangeCheckpoint entity.
func (m *DetectedChangeMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the ChangeCheckpoint entity was cleared.
func (m *DetectedChangeMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the ChangeCheckpoint entity by IDs.
func (m *DetectedChangeMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the ChangeCheckpoint entity.
func (m *DetectedChangeMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *DetectedChangeMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *DetectedChangeMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// AddLifecycleEventIDs adds the "lifecycle_events" edge to the ChangeLifecycleEvent entity by ids.
func (m *DetectedChangeMutation) AddLifecycleEventIDs(ids ...string) {
	if m.lifecycle_events == nil {
		m.lifecycle_events = make(map[string]struct{})
	}
	for i := range ids {
		m.lifecycle_events[ids[i]] = struct{}{}
	}
}

// ClearLifecycleEvents clears the "lifecycle_events" edge to the ChangeLifecycleEvent entity.
func (m *DetectedChangeMutation) ClearLifecycleEvents() {
	m.clearedlifecycle_events = true
}

// LifecycleEventsCleared reports if the "lifecycle_events" edge to the ChangeLifecycleEvent entity was cleared.
func (m *DetectedChangeMutation) LifecycleEventsCleared() bool {
	return m.clearedlifecycle_events
}

// RemoveLifecycleEventIDs removes the "lifecycle_events" edge to the ChangeLifecycleEvent entity by IDs.
func (m *DetectedChangeMutation) RemoveLifecycleEventIDs(ids ...string) {
	if m.removedlifecycle_events == nil {
		m.removedlifecycle_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.lifecycle_events, ids[i])
		m.removedlifecycle_events[ids[i]] = struct{}{}
	}
}

// RemovedLifecycleEvents returns the removed IDs of the "lifecycle_events" edge to the ChangeLifecycleEvent entity.
func (m *DetectedChangeMutation) RemovedLifecycleEventsIDs() (ids []string) {
	for id := range m.removedlifecycle_events {
		ids = append(ids, id)
	}
	return
}

// LifecycleEventsIDs returns the "lifecycle_events" edge IDs in the mutation.
func (m *DetectedChangeMutation) LifecycleEventsIDs() (ids []string) {
	for id := range m.lifecycle_events {
		ids = append(ids, id)
	}
	return
}

// ResetLifecycleEvents resets all changes to the "lifecycle_events" edge.
func (m *DetectedChangeMutation) ResetLifecycleEvents() {
	m.lifecycle_events = nil
	m.clearedlifecycle_events = false
	m.removedlifecycle_events = nil
}

// AddOutcomeFeedbackIDs adds the "outcome_feedback" edge to the OutcomeFeedback entity by ids.
func (m *DetectedChangeMutation) AddOutcomeFeedbackIDs(ids ...string) {
	if m.outcome_feedback == nil {
		m.outcome_feedback = make(map[string]struct{})
	}
	for i := range ids {
		m.outcome_feedback[ids[i]] = struct{}{}
	}
}

// ClearOutcomeFeedback clears the "outcome_feedback" edge to the OutcomeFeedback entity.
func (m *DetectedChangeMutation) ClearOutcomeFeedback() {
	m.clearedoutcome_feedback = true
}

// OutcomeFeedbackCleared reports if the "outcome_feedback" edge to the OutcomeFeedback entity was cleared.
func (m *DetectedChangeMutation) OutcomeFeedbackCleared() bool {
	return m.clearedoutcome_feedback
}

// RemoveOutcomeFeedbackIDs removes the "outcome_feedback" edge to the OutcomeFeedback entity by IDs.
func (m *DetectedChangeMutation) RemoveOutcomeFeedbackIDs(ids ...string) {
	if m.removedoutcome_feedback == nil {
		m.removedoutcome_feedback = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outcome_feedback, ids[i])
		m.removedoutcome_feedback[ids[i]] = struct{}{}
	}
}

// RemovedOutcomeFeedback returns the removed IDs of the "outcome_feedback" edge to the OutcomeFeedback entity.
func (m *DetectedChangeMutation) RemovedOutcomeFeedbackIDs() (ids []string) {
	for id := range m.removedoutcome_feedback {
		ids = append(ids, id)
	}
	return
}

// OutcomeFeedbackIDs returns the "outcome_feedback" edge IDs in the mutation.
func (m *DetectedChangeMutation) OutcomeFeedbackIDs() (ids []string) {
	for id := range m.outcome_feedback {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomeFeedback resets all changes to the "outcome_feedback" edge.
func (m *DetectedChangeMutation) ResetOutcomeFeedback() {
	m.outcome_feedback = nil
	m.clearedoutcome_feedback = false
	m.removedoutcome_feedback = nil
}

// Where appends a list predicates to the DetectedChangeMutation builder.
func (m *DetectedChangeMutation) Where(ps ...predicate.DetectedChange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DetectedChangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DetectedChangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DetectedChange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DetectedChangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DetectedChangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DetectedChange).
func (m *DetectedChangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DetectedChangeMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.page != nil {
		fields = append(fields, detectedchange.FieldPageID)
	}
	if m.user_id != nil {
		fields = append(fields, detectedchange.FieldUserID)
	}
	if m.element != nil {
		fields = append(fields, detectedchange.FieldElement)
	}
	if m.scope != nil {
		fields = append(fields, detectedchange.FieldScope)
	}
	if m.before_value != nil {
		fields = append(fields, detectedchange.FieldBeforeValue)
	}
	if m.after_value != nil {
		fields = append(fields, detectedchange.FieldAfterValue)
	}
	if m.description != nil {
		fields = append(fields, detectedchange.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, detectedchange.FieldStatus)
	}
	if m.first_detected_at != nil {
		fields = append(fields, detectedchange.FieldFirstDetectedAt)
	}
	if m.detected_on != nil {
		fields = append(fields, detectedchange.FieldDetectedOn)
	}
	if m.first_detected_analysis_id != nil {
		fields = append(fields, detectedchange.FieldFirstDetectedAnalysisID)
	}
	if m.hypothesis != nil {
		fields = append(fields, detectedchange.FieldHypothesis)
	}
	if m.correlation_metrics != nil {
		fields = append(fields, detectedchange.FieldCorrelationMetrics)
	}
	if m.correlation_unlocked_at != nil {
		fields = append(fields, detectedchange.FieldCorrelationUnlockedAt)
	}
	if m.observation_text != nil {
		fields = append(fields, detectedchange.FieldObservationText)
	}
	if m.match_confidence != nil {
		fields = append(fields, detectedchange.FieldMatchConfidence)
	}
	if m.match_rationale != nil {
		fields = append(fields, detectedchange.FieldMatchRationale)
	}
	if m.reverted_at != nil {
		fields = append(fields, detectedchange.FieldRevertedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DetectedChangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case detectedchange.FieldPageID:
		return m.PageID()
	case detectedchange.FieldUserID:
		return m.UserID()
	case detectedchange.FieldElement:
		return m.Element()
	case detectedchange.FieldScope:
		return m.Scope()
	case detectedchange.FieldBeforeValue:
		return m.BeforeValue()
	case detectedchange.FieldAfterValue:
		return m.AfterValue()
	case detectedchange.FieldDescription:
		return m.Description()
	case detectedchange.FieldStatus:
		return m.Status()
	case detectedchange.FieldFirstDetectedAt:
		return m.FirstDetectedAt()
	case detectedchange.FieldDetectedOn:
		return m.DetectedOn()
	case detectedchange.FieldFirstDetectedAnalysisID:
		return m.FirstDetectedAnalysisID()
	case detectedchange.FieldHypothesis:
		return m.Hypothesis()
	case detectedchange.FieldCorrelationMetrics:
		return m.CorrelationMetrics()
	case detectedchange.FieldCorrelationUnlockedAt:
		return m.CorrelationUnlockedAt()
	case detectedchange.FieldObservationText:
		return m.ObservationText()
	case detectedchange.FieldMatchConfidence:
		return m.MatchConfidence()
	case detectedchange.FieldMatchRationale:
		return m.MatchRationale()
	case detectedchange.FieldRevertedAt:
		return m.RevertedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DetectedChangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case detectedchange.FieldPageID:
		return m.OldPageID(ctx)
	case detectedchange.FieldUserID:
		return m.OldUserID(ctx)
	case detectedchange.FieldElement:
		return m.OldElement(ctx)
	case detectedchange.FieldScope:
		return m.OldScope(ctx)
	case detectedchange.FieldBeforeValue:
		return m.OldBeforeValue(ctx)
	case detectedchange.FieldAfterValue:
		return m.OldAfterValue(ctx)
	case detectedchange.FieldDescription:
		return m.OldDescription(ctx)
	case detectedchange.FieldStatus:
		return m.OldStatus(ctx)
	case detectedchange.FieldFirstDetectedAt:
		return m.OldFirstDetectedAt(ctx)
	case detectedchange.FieldDetectedOn:
		return m.OldDetectedOn(ctx)
	case detectedchange.FieldFirstDetectedAnalysisID:
		return m.OldFirstDetectedAnalysisID(ctx)
	case detectedchange.FieldHypothesis:
		return m.OldHypothesis(ctx)
	case detectedchange.FieldCorrelationMetrics:
		return m.OldCorrelationMetrics(ctx)
	case detectedchange.FieldCorrelationUnlockedAt:
		return m.OldCorrelationUnlockedAt(ctx)
	case detectedchange.FieldObservationText:
		return m.OldObservationText(ctx)
	case detectedchange.FieldMatchConfidence:
		return m.OldMatchConfidence(ctx)
	case detectedchange.FieldMatchRationale:
		return m.OldMatchRationale(ctx)
	case detectedchange.FieldRevertedAt:
		return m.OldRevertedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DetectedChange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectedChangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case detectedchange.FieldPageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case detectedchange.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case detectedchange.FieldElement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElement(v)
		return nil
	case detectedchange.FieldScope:
		v, ok := value.(detectedchange.Scope)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case detectedchange.FieldBeforeValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBeforeValue(v)
		return nil
	case detectedchange.FieldAfterValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfterValue(v)
		return nil
	case detectedchange.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case detectedchange.FieldStatus:
		v, ok := value.(detectedchange.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case detectedchange.FieldFirstDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDetectedAt(v)
		return nil
	case detectedchange.FieldDetectedOn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedOn(v)
		return nil
	case detectedchange.FieldFirstDetectedAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstDetectedAnalysisID(v)
		return nil
	case detectedchange.FieldHypothesis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHypothesis(v)
		return nil
	case detectedchange.FieldCorrelationMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationMetrics(v)
		return nil
	case detectedchange.FieldCorrelationUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationUnlockedAt(v)
		return nil
	case detectedchange.FieldObservationText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservationText(v)
		return nil
	case detectedchange.FieldMatchConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchConfidence(v)
		return nil
	case detectedchange.FieldMatchRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchRationale(v)
		return nil
	case detectedchange.FieldRevertedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevertedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DetectedChange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DetectedChangeMutation) AddedFields() []string {
	var fields []string
	if m.addmatch_confidence != nil {
		fields = append(fields, detectedchange.FieldMatchConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DetectedChangeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case detectedchange.FieldMatchConfidence:
		return m.AddedMatchConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DetectedChangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case detectedchange.FieldMatchConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatchConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DetectedChange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DetectedChangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(detectedchange.FieldDescription) {
		fields = append(fields, detectedchange.FieldDescription)
	}
	if m.FieldCleared(detectedchange.FieldFirstDetectedAnalysisID) {
		fields = append(fields, detectedchange.FieldFirstDetectedAnalysisID)
	}
	if m.FieldCleared(detectedchange.FieldHypothesis) {
		fields = append(fields, detectedchange.FieldHypothesis)
	}
	if m.FieldCleared(detectedchange.FieldCorrelationMetrics) {
		fields = append(fields, detectedchange.FieldCorrelationMetrics)
	}
	if m.FieldCleared(detectedchange.FieldCorrelationUnlockedAt) {
		fields = append(fields, detectedchange.FieldCorrelationUnlockedAt)
	}
	if m.FieldCleared(detectedchange.FieldObservationText) {
		fields = append(fields, detectedchange.FieldObservationText)
	}
	if m.FieldCleared(detectedchange.FieldMatchConfidence) {
		fields = append(fields, detectedchange.FieldMatchConfidence)
	}
	if m.FieldCleared(detectedchange.FieldMatchRationale) {
		fields = append(fields, detectedchange.FieldMatchRationale)
	}
	if m.FieldCleared(detectedchange.FieldRevertedAt) {
		fields = append(fields, detectedchange.FieldRevertedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DetectedChangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DetectedChangeMutation) ClearField(name string) error {
	switch name {
	case detectedchange.FieldDescription:
		m.ClearDescription()
		return nil
	case detectedchange.FieldFirstDetectedAnalysisID:
		m.ClearFirstDetectedAnalysisID()
		return nil
	case detectedchange.FieldHypothesis:
		m.ClearHypothesis()
		return nil
	case detectedchange.FieldCorrelationMetrics:
		m.ClearCorrelationMetrics()
		return nil
	case detectedchange.FieldCorrelationUnlockedAt:
		m.ClearCorrelationUnlockedAt()
		return nil
	case detectedchange.FieldObservationText:
		m.ClearObservationText()
		return nil
	case detectedchange.FieldMatchConfidence:
		m.ClearMatchConfidence()
		return nil
	case detectedchange.FieldMatchRationale:
		m.ClearMatchRationale()
		return nil
	case detectedchange.FieldRevertedAt:
		m.ClearRevertedAt()
		return nil
	}
	return fmt.Errorf("unknown DetectedChange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DetectedChangeMutation) ResetField(name string) error {
	switch name {
	case detectedchange.FieldPageID:
		m.ResetPageID()
		return nil
	case detectedchange.FieldUserID:
		m.ResetUserID()
		return nil
	case detectedchange.FieldElement:
		m.ResetElement()
		return nil
	case detectedchange.FieldScope:
		m.ResetScope()
		return nil
	case detectedchange.FieldBeforeValue:
		m.ResetBeforeValue()
		return nil
	case detectedchange.FieldAfterValue:
		m.ResetAfterValue()
		return nil
	case detectedchange.FieldDescription:
		m.ResetDescription()
		return nil
	case detectedchange.FieldStatus:
		m.ResetStatus()
		return nil
	case detectedchange.FieldFirstDetectedAt:
		m.ResetFirstDetectedAt()
		return nil
	case detectedchange.FieldDetectedOn:
		m.ResetDetectedOn()
		return nil
	case detectedchange.FieldFirstDetectedAnalysisID:
		m.ResetFirstDetectedAnalysisID()
		return nil
	case detectedchange.FieldHypothesis:
		m.ResetHypothesis()
		return nil
	case detectedchange.FieldCorrelationMetrics:
		m.ResetCorrelationMetrics()
		return nil
	case detectedchange.FieldCorrelationUnlockedAt:
		m.ResetCorrelationUnlockedAt()
		return nil
	case detectedchange.FieldObservationText:
		m.ResetObservationText()
		return nil
	case detectedchange.FieldMatchConfidence:
		m.ResetMatchConfidence()
		return nil
	case detectedchange.FieldMatchRationale:
		m.ResetMatchRationale()
		return nil
	case detectedchange.FieldRevertedAt:
		m.ResetRevertedAt()
		return nil
	}
	return fmt.Errorf("unknown DetectedChange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DetectedChangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.page != nil {
		edges = append(edges, detectedchange.EdgePage)
	}
	if m.checkpoints != nil {
		edges = append(edges, detectedchange.EdgeCheckpoints)
	}
	if m.lifecycle_events != nil {
		edges = append(edges, detectedchange.EdgeLifecycleEvents)
	}
	if m.outcome_feedback != nil {
		edges = append(edges, detectedchange.EdgeOutcomeFeedback)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DetectedChangeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case detectedchange.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	case detectedchange.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	case detectedchange.EdgeLifecycleEvents:
		ids := make([]ent.Value, 0, len(m.lifecycle_events))
		for id := range m.lifecycle_events {
			ids = append(ids, id)
		}
		return ids
	case detectedchange.EdgeOutcomeFeedback:
		ids := make([]ent.Value, 0, len(m.outcome_feedback))
		for id := range m.outcome_feedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DetectedChangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcheckpoints != nil {
		edges = append(edges, detectedchange.EdgeCheckpoints)
	}
	if m.removedlifecycle_events != nil {
		edges = append(edges, detectedchange.EdgeLifecycleEvents)
	}
	if m.removedoutcome_feedback != nil {
		edges = append(edges, detectedchange.EdgeOutcomeFeedback)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DetectedChangeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case detectedchange.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	case detectedchange.EdgeLifecycleEvents:
		ids := make([]ent.Value, 0, len(m.removedlifecycle_events))
		for id := range m.removedlifecycle_events {
			ids = append(ids, id)
		}
		return ids
	case detectedchange.EdgeOutcomeFeedback:
		ids := make([]ent.Value, 0, len(m.removedoutcome_feedback))
		for id := range m.removedoutcome_feedback {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DetectedChangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedpage {
		edges = append(edges, detectedchange.EdgePage)
	}
	if m.clearedcheckpoints {
		edges = append(edges, detectedchange.EdgeCheckpoints)
	}
	if m.clearedlifecycle_events {
		edges = append(edges, detectedchange.EdgeLifecycleEvents)
	}
	if m.clearedoutcome_feedback {
		edges = append(edges, detectedchange.EdgeOutcomeFeedback)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DetectedChangeMutation) EdgeCleared(name string) bool {
	switch name {
	case detectedchange.EdgePage:
		return m.clearedpage
	case detectedchange.EdgeCheckpoints:
		return m.clearedcheckpoints
	case detectedchange.EdgeLifecycleEvents:
		return m.clearedlifecycle_events
	case detectedchange.EdgeOutcomeFeedback:
		return m.clearedoutcome_feedback
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DetectedChangeMutation) ClearEdge(name string) error {
	switch name {
	case detectedchange.EdgePage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown DetectedChange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DetectedChangeMutation) ResetEdge(name string) error {
	switch name {
	case detectedchange.EdgePage:
		m.ResetPage()
		return nil
	case detectedchange.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	case detectedchange.EdgeLifecycleEvents:
		m.ResetLifecycleEvents()
		return nil
	case detectedchange.EdgeOutcomeFeedback:
		m.ResetOutcomeFeedback()
		return nil
	}
	return fmt.Errorf("unknown DetectedChange edge %s", name)
}

// OutcomeFeedbackMutation represents an operation that mutates the OutcomeFeedback nodes in the graph.
type OutcomeFeedbackMutation struct {
	config
	op            Op
	typ           string
	id            *string
	checkpoint_id *string
	user_id       *string
	feedback_type *outcomefeedback.FeedbackType
	comment       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	change        *string
	clearedchange bool
	done          bool
	oldValue      func(context.Context) (*OutcomeFeedback, error)
	predicates    []predicate.OutcomeFeedback
}

var _ ent.Mutation = (*OutcomeFeedbackMutation)(nil)

// outcomefeedbackOption allows management of the mutation configuration using functional options.
type outcomefeedbackOption func(*OutcomeFeedbackMutation)

// newOutcomeFeedbackMutation creates new mutation for the OutcomeFeedback entity.
func newOutcomeFeedbackMutation(c config, op Op, opts ...outcomefeedbackOption) *OutcomeFeedbackMutation {
	m := &OutcomeFeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeOutcomeFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutcomeFeedbackID sets the ID field of the mutation.
func withOutcomeFeedbackID(id string) outcomefeedbackOption {
	return func(m *OutcomeFeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *OutcomeFeedback
		)
		m.oldValue = func(ctx context.Context) (*OutcomeFeedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutcomeFeedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutcomeFeedback sets the old OutcomeFeedback of the mutation.
func withOutcomeFeedback(node *OutcomeFeedback) outcomefeedbackOption {
	return func(m *OutcomeFeedbackMutation) {
		m.oldValue = func(context.Context) (*OutcomeFeedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutcomeFeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutcomeFeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutcomeFeedback entities.
func (m *OutcomeFeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutcomeFeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutcomeFeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutcomeFeedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChangeID sets the "change_id" field.
func (m *OutcomeFeedbackMutation) SetChangeID(s string) {
	m.change = &s
}

// ChangeID returns the value of the "change_id" field in the mutation.
func (m *OutcomeFeedbackMutation) ChangeID() (r string, exists bool) {
	v := m.change
	if v == nil {
		return
	}
	return *v, true
}

// OldChangeID returns the old "change_id" field's value of the OutcomeFeedback entity.
// If the OutcomeFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeFeedbackMutation) OldChangeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangeID: %w", err)
	}
	return oldValue.ChangeID, nil
}

// ResetChangeID resets all changes to the "change_id" field.
func (m *OutcomeFeedbackMutation) ResetChangeID() {
	m.change = nil
}

// SetCheckpointID sets the "checkpoint_id" field.
func (m *OutcomeFeedbackMutation) SetCheckpointID(s string) {
	m.checkpoint_id = &s
}

// CheckpointID returns the value of the "checkpoint_id" field in the mutation.
func (m *OutcomeFeedbackMutation) CheckpointID() (r string, exists bool) {
	v := m.checkpoint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCheckpointID returns the old "checkpoint_id" field's value of the OutcomeFeedback entity.
// If the OutcomeFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeFeedbackMutation) OldCheckpointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCheckpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCheckpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCheckpointID: %w", err)
	}
	return oldValue.CheckpointID, nil
}

// ResetCheckpointID resets all changes to the "checkpoint_id" field.
func (m *OutcomeFeedbackMutation) ResetCheckpointID() {
	m.checkpoint_id = nil
}

// SetUserID sets the "user_id" field.
func (m *OutcomeFeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OutcomeFeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the OutcomeFeedback entity.
// If the OutcomeFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeFeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OutcomeFeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetFeedbackType sets the "feedback_type" field.
func (m *OutcomeFeedbackMutation) SetFeedbackType(ot outcomefeedback.FeedbackType) {
	m.feedback_type = &ot
}

// FeedbackType returns the value of the "feedback_type" field in the mutation.
func (m *OutcomeFeedbackMutation) FeedbackType() (r outcomefeedback.FeedbackType, exists bool) {
	v := m.feedback_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackType returns the old "feedback_type" field's value of the OutcomeFeedback entity.
// If the OutcomeFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeFeedbackMutation) OldFeedbackType(ctx context.Context) (v outcomefeedback.FeedbackType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackType: %w", err)
	}
	return oldValue.FeedbackType, nil
}

// ResetFeedbackType resets all changes to the "feedback_type" field.
func (m *OutcomeFeedbackMutation) ResetFeedbackType() {
	m.feedback_type = nil
}

// SetComment sets the "comment" field.
func (m *OutcomeFeedbackMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *OutcomeFeedbackMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the OutcomeFeedback entity.
// If the OutcomeFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeFeedbackMutation) OldComment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *OutcomeFeedbackMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[outcomefeedback.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *OutcomeFeedbackMutation) CommentCleared() bool {
	_, ok := m.clearedFields[outcomefeedback.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *OutcomeFeedbackMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, outcomefeedback.FieldComment)
}

// SetCreatedAt sets the "created_at" field.
func (m *OutcomeFeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OutcomeFeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OutcomeFeedback entity.
// If the OutcomeFeedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeFeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OutcomeFeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearChange clears the "change" edge to the DetectedChange entity.
func (m *OutcomeFeedbackMutation) ClearChange() {
	m.clearedchange = true
	m.clearedFields[outcomefeedback.FieldChangeID] = struct{}{}
}

// ChangeCleared reports if the "change" edge to the DetectedChange entity was cleared.
func (m *OutcomeFeedbackMutation) ChangeCleared() bool {
	return m.clearedchange
}

// ChangeIDs returns the "change" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChangeID instead. It exists only for internal usage by the builders.
func (m *OutcomeFeedbackMutation) ChangeIDs() (ids []string) {
	if id := m.change; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChange resets all changes to the "change" edge.
func (m *OutcomeFeedbackMutation) ResetChange() {
	m.change = nil
	m.clearedchange = false
}

// Where appends a list predicates to the OutcomeFeedbackMutation builder.
func (m *OutcomeFeedbackMutation) Where(ps ...predicate.OutcomeFeedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutcomeFeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutcomeFeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutcomeFeedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutcomeFeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutcomeFeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutcomeFeedback).
func (m *OutcomeFeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutcomeFeedbackMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.change != nil {
		fields = append(fields, outcomefeedback.FieldChangeID)
	}
	if m.checkpoint_id != nil {
		fields = append(fields, outcomefeedback.FieldCheckpointID)
	}
	if m.user_id != nil {
		fields = append(fields, outcomefeedback.FieldUserID)
	}
	if m.feedback_type != nil {
		fields = append(fields, outcomefeedback.FieldFeedbackType)
	}
	if m.comment != nil {
		fields = append(fields, outcomefeedback.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, outcomefeedback.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutcomeFeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outcomefeedback.FieldChangeID:
		return m.ChangeID()
	case outcomefeedback.FieldCheckpointID:
		return m.CheckpointID()
	case outcomefeedback.FieldUserID:
		return m.UserID()
	case outcomefeedback.FieldFeedbackType:
		return m.FeedbackType()
	case outcomefeedback.FieldComment:
		return m.Comment()
	case outcomefeedback.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutcomeFeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outcomefeedback.FieldChangeID:
		return m.OldChangeID(ctx)
	case outcomefeedback.FieldCheckpointID:
		return m.OldCheckpointID(ctx)
	case outcomefeedback.FieldUserID:
		return m.OldUserID(ctx)
	case outcomefeedback.FieldFeedbackType:
		return m.OldFeedbackType(ctx)
	case outcomefeedback.FieldComment:
		return m.OldComment(ctx)
	case outcomefeedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OutcomeFeedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeFeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outcomefeedback.FieldChangeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangeID(v)
		return nil
	case outcomefeedback.FieldCheckpointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCheckpointID(v)
		return nil
	case outcomefeedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case outcomefeedback.FieldFeedbackType:
		v, ok := value.(outcomefeedback.FeedbackType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackType(v)
		return nil
	case outcomefeedback.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case outcomefeedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeFeedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutcomeFeedbackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutcomeFeedbackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeFeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OutcomeFeedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutcomeFeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outcomefeedback.FieldComment) {
		fields = append(fields, outcomefeedback.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutcomeFeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutcomeFeedbackMutation) ClearField(name string) error {
	switch name {
	case outcomefeedback.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown OutcomeFeedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutcomeFeedbackMutation) ResetField(name string) error {
	switch name {
	case outcomefeedback.FieldChangeID:
		m.ResetChangeID()
		return nil
	case outcomefeedback.FieldCheckpointID:
		m.ResetCheckpointID()
		return nil
	case outcomefeedback.FieldUserID:
		m.ResetUserID()
		return nil
	case outcomefeedback.FieldFeedbackType:
		m.ResetFeedbackType()
		return nil
	case outcomefeedback.FieldComment:
		m.ResetComment()
		return nil
	case outcomefeedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OutcomeFeedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutcomeFeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.change != nil {
		edges = append(edges, outcomefeedback.EdgeChange)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutcomeFeedbackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outcomefeedback.EdgeChange:
		if id := m.change; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutcomeFeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutcomeFeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutcomeFeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchange {
		edges = append(edges, outcomefeedback.EdgeChange)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutcomeFeedbackMutation) EdgeCleared(name string) bool {
	switch name {
	case outcomefeedback.EdgeChange:
		return m.clearedchange
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutcomeFeedbackMutation) ClearEdge(name string) error {
	switch name {
	case outcomefeedback.EdgeChange:
		m.ClearChange()
		return nil
	}
	return fmt.Errorf("unknown OutcomeFeedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutcomeFeedbackMutation) ResetEdge(name string) error {
	switch name {
	case outcomefeedback.EdgeChange:
		m.ResetChange()
		return nil
	}
	return fmt.Errorf("unknown OutcomeFeedback edge %s", name)
}

// PageMutation represents an operation that mutates the Page nodes in the graph.
type PageMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	url                        *string
	scan_frequency             *page.ScanFrequency
	metric_focus               *string
	stable_baseline_id         *string
	last_scan_id               *string
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	user                       *string
	cleareduser                bool
	analyses                   map[string]struct{}
	removedanalyses            map[string]struct{}
	clearedanalyses            bool
	detected_changes           map[string]struct{}
	removeddetected_changes    map[string]struct{}
	cleareddetected_changes    bool
	tracked_suggestions        map[string]struct{}
	removedtracked_suggestions map[string]struct{}
	clearedtracked_suggestions bool
	done                       bool
	oldValue                   func(context.Context) (*Page, error)
	predicates                 []predicate.Page
}

var _ ent.Mutation = (*PageMutation)(nil)

// pageOption allows management of the mutation configuration using functional options.
type pageOption func(*PageMutation)

// newPageMutation creates new mutation for the Page entity.
func newPageMutation(c config, op Op, opts ...pageOption) *PageMutation {
	m := &PageMutation{
		config:        c,
		op:            op,
		typ:           TypePage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageID sets the ID field of the mutation.
func withPageID(id string) pageOption {
	return func(m *PageMutation) {
		var (
			err   error
			once  sync.Once
			value *Page
		)
		m.oldValue = func(ctx context.Context) (*Page, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Page.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPage sets the old Page of the mutation.
func withPage(node *Page) pageOption {
	return func(m *PageMutation) {
		m.oldValue = func(context.Context) (*Page, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Page entities.
func (m *PageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Page.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PageMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PageMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PageMutation) ResetUserID() {
	m.user = nil
}

// SetURL sets the "url" field.
func (m *PageMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *PageMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *PageMutation) ResetURL() {
	m.url = nil
}

// SetScanFrequency sets the "scan_frequency" field.
func (m *PageMutation) SetScanFrequency(pf page.ScanFrequency) {
	m.scan_frequency = &pf
}

// ScanFrequency returns the value of the "scan_frequency" field in the mutation.
func (m *PageMutation) ScanFrequency() (r page.ScanFrequency, exists bool) {
	v := m.scan_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldScanFrequency returns the old "scan_frequency" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldScanFrequency(ctx context.Context) (v page.ScanFrequency, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanFrequency: %w", err)
	}
	return oldValue.ScanFrequency, nil
}

// ResetScanFrequency resets all changes to the "scan_frequency" field.
func (m *PageMutation) ResetScanFrequency() {
	m.scan_frequency = nil
}

// SetMetricFocus sets the "metric_focus" field.
func (m *PageMutation) SetMetricFocus(s string) {
	m.metric_focus = &s
}

// MetricFocus returns the value of the "metric_focus" field in the mutation.
func (m *PageMutation) MetricFocus() (r string, exists bool) {
	v := m.metric_focus
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricFocus returns the old "metric_focus" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldMetricFocus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricFocus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricFocus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricFocus: %w", err)
	}
	return oldValue.MetricFocus, nil
}

// ClearMetricFocus clears the value of the "metric_focus" field.
func (m *PageMutation) ClearMetricFocus() {
	m.metric_focus = nil
	m.clearedFields[page.FieldMetricFocus] = struct{}{}
}

// MetricFocusCleared returns if the "metric_focus" field was cleared in this mutation.
func (m *PageMutation) MetricFocusCleared() bool {
	_, ok := m.clearedFields[page.FieldMetricFocus]
	return ok
}

// ResetMetricFocus resets all changes to the "metric_focus" field.
func (m *PageMutation) ResetMetricFocus() {
	m.metric_focus = nil
	delete(m.clearedFields, page.FieldMetricFocus)
}

// SetStableBaselineID sets the "stable_baseline_id" field.
func (m *PageMutation) SetStableBaselineID(s string) {
	m.stable_baseline_id = &s
}

// StableBaselineID returns the value of the "stable_baseline_id" field in the mutation.
func (m *PageMutation) StableBaselineID() (r string, exists bool) {
	v := m.stable_baseline_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStableBaselineID returns the old "stable_baseline_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldStableBaselineID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStableBaselineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStableBaselineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStableBaselineID: %w", err)
	}
	return oldValue.StableBaselineID, nil
}

// ClearStableBaselineID clears the value of the "stable_baseline_id" field.
func (m *PageMutation) ClearStableBaselineID() {
	m.stable_baseline_id = nil
	m.clearedFields[page.FieldStableBaselineID] = struct{}{}
}

// StableBaselineIDCleared returns if the "stable_baseline_id" field was cleared in this mutation.
func (m *PageMutation) StableBaselineIDCleared() bool {
	_, ok := m.clearedFields[page.FieldStableBaselineID]
	return ok
}

// ResetStableBaselineID resets all changes to the "stable_baseline_id" field.
func (m *PageMutation) ResetStableBaselineID() {
	m.stable_baseline_id = nil
	delete(m.clearedFields, page.FieldStableBaselineID)
}

// SetLastScanID sets the "last_scan_id" field.
func (m *PageMutation) SetLastScanID(s string) {
	m.last_scan_id = &s
}

// LastScanID returns the value of the "last_scan_id" field in the mutation.
func (m *PageMutation) LastScanID() (r string, exists bool) {
	v := m.last_scan_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastScanID returns the old "last_scan_id" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLastScanID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastScanID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastScanID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastScanID: %w", err)
	}
	return oldValue.LastScanID, nil
}

// ClearLastScanID clears the value of the "last_scan_id" field.
func (m *PageMutation) ClearLastScanID() {
	m.last_scan_id = nil
	m.clearedFields[page.FieldLastScanID] = struct{}{}
}

// LastScanIDCleared returns if the "last_scan_id" field was cleared in this mutation.
func (m *PageMutation) LastScanIDCleared() bool {
	_, ok := m.clearedFields[page.FieldLastScanID]
	return ok
}

// ResetLastScanID resets all changes to the "last_scan_id" field.
func (m *PageMutation) ResetLastScanID() {
	m.last_scan_id = nil
	delete(m.clearedFields, page.FieldLastScanID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *PageMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[page.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PageMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PageMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PageMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by ids.
func (m *PageMutation) AddAnalysisIDs(ids ...string) {
	if m.analyses == nil {
		m.analyses = make(map[string]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the Analysis entity.
func (m *PageMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the Analysis entity was cleared.
func (m *PageMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the Analysis entity by IDs.
func (m *PageMutation) RemoveAnalysisIDs(ids ...string) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the Analysis entity.
func (m *PageMutation) RemovedAnalysesIDs() (ids []string) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *PageMutation) AnalysesIDs() (ids []string) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *PageMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// AddDetectedChangeIDs adds the "detected_changes" edge to the DetectedChange entity by ids.
func (m *PageMutation) AddDetectedChangeIDs(ids ...string) {
	if m.detected_changes == nil {
		m.detected_changes = make(map[string]struct{})
	}
	for i := range ids {
		m.detected_changes[ids[i]] = struct{}{}
	}
}

// ClearDetectedChanges clears the "detected_changes" edge to the DetectedChange entity.
func (m *PageMutation) ClearDetectedChanges() {
	m.cleareddetected_changes = true
}

// DetectedChangesCleared reports if the "detected_changes" edge to the DetectedChange entity was cleared.
func (m *PageMutation) DetectedChangesCleared() bool {
	return m.cleareddetected_changes
}

// RemoveDetectedChangeIDs removes the "detected_changes" edge to the DetectedChange entity by IDs.
func (m *PageMutation) RemoveDetectedChangeIDs(ids ...string) {
	if m.removeddetected_changes == nil {
		m.removeddetected_changes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.detected_changes, ids[i])
		m.removeddetected_changes[ids[i]] = struct{}{}
	}
}

// RemovedDetectedChanges returns the removed IDs of the "detected_changes" edge to the DetectedChange entity.
func (m *PageMutation) RemovedDetectedChangesIDs() (ids []string) {
	for id := range m.removeddetected_changes {
		ids = append(ids, id)
	}
	return
}

// DetectedChangesIDs returns the "detected_changes" edge IDs in the mutation.
func (m *PageMutation) DetectedChangesIDs() (ids []string) {
	for id := range m.detected_changes {
		ids = append(ids, id)
	}
	return
}

// ResetDetectedChanges resets all changes to the "detected_changes" edge.
func (m *PageMutation) ResetDetectedChanges() {
	m.detected_changes = nil
	m.cleareddetected_changes = false
	m.removeddetected_changes = nil
}

// AddTrackedSuggestionIDs adds the "tracked_suggestions" edge to the TrackedSuggestion entity by ids.
func (m *PageMutation) AddTrackedSuggestionIDs(ids ...string) {
	if m.tracked_suggestions == nil {
		m.tracked_suggestions = make(map[string]struct{})
	}
	for i := range ids {
		m.tracked_suggestions[ids[i]] = struct{}{}
	}
}

// ClearTrackedSuggestions clears the "tracked_suggestions" edge to the TrackedSuggestion entity.
func (m *PageMutation) ClearTrackedSuggestions() {
	m.clearedtracked_suggestions = true
}

// TrackedSuggestionsCleared reports if the "tracked_suggestions" edge to the TrackedSuggestion entity was cleared.
func (m *PageMutation) TrackedSuggestionsCleared() bool {
	return m.clearedtracked_suggestions
}

// RemoveTrackedSuggestionIDs removes the "tracked_suggestions" edge to the TrackedSuggestion entity by IDs.
func (m *PageMutation) RemoveTrackedSuggestionIDs(ids ...string) {
	if m.removedtracked_suggestions == nil {
		m.removedtracked_suggestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tracked_suggestions, ids[i])
		m.removedtracked_suggestions[ids[i]] = struct{}{}
	}
}

// RemovedTrackedSuggestions returns the removed IDs of the "tracked_suggestions" edge to the TrackedSuggestion entity.
func (m *PageMutation) RemovedTrackedSuggestionsIDs() (ids []string) {
	for id := range m.removedtracked_suggestions {
		ids = append(ids, id)
	}
	return
}

// TrackedSuggestionsIDs returns the "tracked_suggestions" edge IDs in the mutation.
func (m *PageMutation) TrackedSuggestionsIDs() (ids []string) {
	for id := range m.tracked_suggestions {
		ids = append(ids, id)
	}
	return
}

// ResetTrackedSuggestions resets all changes to the "tracked_suggestions" edge.
func (m *PageMutation) ResetTrackedSuggestions() {
	m.tracked_suggestions = nil
	m.clearedtracked_suggestions = false
	m.removedtracked_suggestions = nil
}

// Where appends a list predicates to the PageMutation builder.
func (m *PageMutation) Where(ps ...predicate.Page) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Page, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Page).
func (m *PageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user != nil {
		fields = append(fields, page.FieldUserID)
	}
	if m.url != nil {
		fields = append(fields, page.FieldURL)
	}
	if m.scan_frequency != nil {
		fields = append(fields, page.FieldScanFrequency)
	}
	if m.metric_focus != nil {
		fields = append(fields, page.FieldMetricFocus)
	}
	if m.stable_baseline_id != nil {
		fields = append(fields, page.FieldStableBaselineID)
	}
	if m.last_scan_id != nil {
		fields = append(fields, page.FieldLastScanID)
	}
	if m.created_at != nil {
		fields = append(fields, page.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case page.FieldUserID:
		return m.UserID()
	case page.FieldURL:
		return m.URL()
	case page.FieldScanFrequency:
		return m.ScanFrequency()
	case page.FieldMetricFocus:
		return m.MetricFocus()
	case page.FieldStableBaselineID:
		return m.StableBaselineID()
	case page.FieldLastScanID:
		return m.LastScanID()
	case page.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case page.FieldUserID:
		return m.OldUserID(ctx)
	case page.FieldURL:
		return m.OldURL(ctx)
	case page.FieldScanFrequency:
		return m.OldScanFrequency(ctx)
	case page.FieldMetricFocus:
		return m.OldMetricFocus(ctx)
	case page.FieldStableBaselineID:
		return m.OldStableBaselineID(ctx)
	case page.FieldLastScanID:
		return m.OldLastScanID(ctx)
	case page.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Page field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case page.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case page.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case page.FieldScanFrequency:
		v, ok := value.(page.ScanFrequency)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanFrequency(v)
		return nil
	case page.FieldMetricFocus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricFocus(v)
		return nil
	case page.FieldStableBaselineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStableBaselineID(v)
		return nil
	case page.FieldLastScanID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastScanID(v)
		return nil
	case page.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Page numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(page.FieldMetricFocus) {
		fields = append(fields, page.FieldMetricFocus)
	}
	if m.FieldCleared(page.FieldStableBaselineID) {
		fields = append(fields, page.FieldStableBaselineID)
	}
	if m.FieldCleared(page.FieldLastScanID) {
		fields = append(fields, page.FieldLastScanID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageMutation) ClearField(name string) error {
	switch name {
	case page.FieldMetricFocus:
		m.ClearMetricFocus()
		return nil
	case page.FieldStableBaselineID:
		m.ClearStableBaselineID()
		return nil
	case page.FieldLastScanID:
		m.ClearLastScanID()
		return nil
	}
	return fmt.Errorf("unknown Page nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageMutation) ResetField(name string) error {
	switch name {
	case page.FieldUserID:
		m.ResetUserID()
		return nil
	case page.FieldURL:
		m.ResetURL()
		return nil
	case page.FieldScanFrequency:
		m.ResetScanFrequency()
		return nil
	case page.FieldMetricFocus:
		m.ResetMetricFocus()
		return nil
	case page.FieldStableBaselineID:
		m.ResetStableBaselineID()
		return nil
	case page.FieldLastScanID:
		m.ResetLastScanID()
		return nil
	case page.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.user != nil {
		edges = append(edges, page.EdgeUser)
	}
	if m.analyses != nil {
		edges = append(edges, page.EdgeAnalyses)
	}
	if m.detected_changes != nil {
		edges = append(edges, page.EdgeDetectedChanges)
	}
	if m.tracked_suggestions != nil {
		edges = append(edges, page.EdgeTrackedSuggestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case page.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	case page.EdgeDetectedChanges:
		ids := make([]ent.Value, 0, len(m.detected_changes))
		for id := range m.detected_changes {
			ids = append(ids, id)
		}
		return ids
	case page.EdgeTrackedSuggestions:
		ids := make([]ent.Value, 0, len(m.tracked_suggestions))
		for id := range m.tracked_suggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedanalyses != nil {
		edges = append(edges, page.EdgeAnalyses)
	}
	if m.removeddetected_changes != nil {
		edges = append(edges, page.EdgeDetectedChanges)
	}
	if m.removedtracked_suggestions != nil {
		edges = append(edges, page.EdgeTrackedSuggestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case page.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	case page.EdgeDetectedChanges:
		ids := make([]ent.Value, 0, len(m.removeddetected_changes))
		for id := range m.removeddetected_changes {
			ids = append(ids, id)
		}
		return ids
	case page.EdgeTrackedSuggestions:
		ids := make([]ent.Value, 0, len(m.removedtracked_suggestions))
		for id := range m.removedtracked_suggestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduser {
		edges = append(edges, page.EdgeUser)
	}
	if m.clearedanalyses {
		edges = append(edges, page.EdgeAnalyses)
	}
	if m.cleareddetected_changes {
		edges = append(edges, page.EdgeDetectedChanges)
	}
	if m.clearedtracked_suggestions {
		edges = append(edges, page.EdgeTrackedSuggestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageMutation) EdgeCleared(name string) bool {
	switch name {
	case page.EdgeUser:
		return m.cleareduser
	case page.EdgeAnalyses:
		return m.clearedanalyses
	case page.EdgeDetectedChanges:
		return m.cleareddetected_changes
	case page.EdgeTrackedSuggestions:
		return m.clearedtracked_suggestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageMutation) ClearEdge(name string) error {
	switch name {
	case page.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Page unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageMutation) ResetEdge(name string) error {
	switch name {
	case page.EdgeUser:
		m.ResetUser()
		return nil
	case page.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	case page.EdgeDetectedChanges:
		m.ResetDetectedChanges()
		return nil
	case page.EdgeTrackedSuggestions:
		m.ResetTrackedSuggestions()
		return nil
	}
	return fmt.Errorf("unknown Page edge %s", name)
}

// TrackedSuggestionMutation represents an operation that mutates the TrackedSuggestion nodes in the graph.
type TrackedSuggestionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	title              *string
	element            *string
	suggested_fix      *string
	impact             *trackedsuggestion.Impact
	status             *trackedsuggestion.Status
	times_suggested    *int
	addtimes_suggested *int
	dedup_key          *string
	first_suggested_at *time.Time
	last_suggested_at  *time.Time
	clearedFields      map[string]struct{}
	page               *string
	clearedpage        bool
	done               bool
	oldValue           func(context.Context) (*TrackedSuggestion, error)
	predicates         []predicate.TrackedSuggestion
}

var _ ent.Mutation = (*TrackedSuggestionMutation)(nil)

// trackedsuggestionOption allows management of the mutation configuration using functional options.
type trackedsuggestionOption func(*TrackedSuggestionMutation)

// newTrackedSuggestionMutation creates new mutation for the TrackedSuggestion entity.
func newTrackedSuggestionMutation(c config, op Op, opts ...trackedsuggestionOption) *TrackedSuggestionMutation {
	m := &TrackedSuggestionMutation{
		config:        c,
		op:            op,
		typ:           TypeTrackedSuggestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrackedSuggestionID sets the ID field of the mutation.
func withTrackedSuggestionID(id string) trackedsuggestionOption {
	return func(m *TrackedSuggestionMutation) {
		var (
			err   error
			once  sync.Once
			value *TrackedSuggestion
		)
		m.oldValue = func(ctx context.Context) (*TrackedSuggestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrackedSuggestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrackedSuggestion sets the old TrackedSuggestion of the mutation.
func withTrackedSuggestion(node *TrackedSuggestion) trackedsuggestionOption {
	return func(m *TrackedSuggestionMutation) {
		m.oldValue = func(context.Context) (*TrackedSuggestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrackedSuggestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrackedSuggestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrackedSuggestion entities.
func (m *TrackedSuggestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrackedSuggestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrackedSuggestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrackedSuggestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPageID sets the "page_id" field.
func (m *TrackedSuggestionMutation) SetPageID(s string) {
	m.page = &s
}

// PageID returns the value of the "page_id" field in the mutation.
func (m *TrackedSuggestionMutation) PageID() (r string, exists bool) {
	v := m.page
	if v == nil {
		return
	}
	return *v, true
}

// OldPageID returns the old "page_id" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldPageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageID: %w", err)
	}
	return oldValue.PageID, nil
}

// ResetPageID resets all changes to the "page_id" field.
func (m *TrackedSuggestionMutation) ResetPageID() {
	m.page = nil
}

// SetUserID sets the "user_id" field.
func (m *TrackedSuggestionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TrackedSuggestionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TrackedSuggestionMutation) ResetUserID() {
	m.user_id = nil
}

// SetTitle sets the "title" field.
func (m *TrackedSuggestionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TrackedSuggestionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *TrackedSuggestionMutation) ResetTitle() {
	m.title = nil
}

// SetElement sets the "element" field.
func (m *TrackedSuggestionMutation) SetElement(s string) {
	m.element = &s
}

// Element returns the value of the "element" field in the mutation.
func (m *TrackedSuggestionMutation) Element() (r string, exists bool) {
	v := m.element
	if v == nil {
		return
	}
	return *v, true
}

// OldElement returns the old "element" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldElement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElement: %w", err)
	}
	return oldValue.Element, nil
}

// ResetElement resets all changes to the "element" field.
func (m *TrackedSuggestionMutation) ResetElement() {
	m.element = nil
}

// SetSuggestedFix sets the "suggested_fix" field.
func (m *TrackedSuggestionMutation) SetSuggestedFix(s string) {
	m.suggested_fix = &s
}

// SuggestedFix returns the value of the "suggested_fix" field in the mutation.
func (m *TrackedSuggestionMutation) SuggestedFix() (r string, exists bool) {
	v := m.suggested_fix
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedFix returns the old "suggested_fix" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldSuggestedFix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedFix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedFix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedFix: %w", err)
	}
	return oldValue.SuggestedFix, nil
}

// ResetSuggestedFix resets all changes to the "suggested_fix" field.
func (m *TrackedSuggestionMutation) ResetSuggestedFix() {
	m.suggested_fix = nil
}

// SetImpact sets the "impact" field.
func (m *TrackedSuggestionMutation) SetImpact(t trackedsuggestion.Impact) {
	m.impact = &t
}

// Impact returns the value of the "impact" field in the mutation.
func (m *TrackedSuggestionMutation) Impact() (r trackedsuggestion.Impact, exists bool) {
	v := m.impact
	if v == nil {
		return
	}
	return *v, true
}

// OldImpact returns the old "impact" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldImpact(ctx context.Context) (v trackedsuggestion.Impact, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpact: %w", err)
	}
	return oldValue.Impact, nil
}

// ResetImpact resets all changes to the "impact" field.
func (m *TrackedSuggestionMutation) ResetImpact() {
	m.impact = nil
}

// SetStatus sets the "status" field.
func (m *TrackedSuggestionMutation) SetStatus(t trackedsuggestion.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TrackedSuggestionMutation) Status() (r trackedsuggestion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldStatus(ctx context.Context) (v trackedsuggestion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TrackedSuggestionMutation) ResetStatus() {
	m.status = nil
}

// SetTimesSuggested sets the "times_suggested" field.
func (m *TrackedSuggestionMutation) SetTimesSuggested(i int) {
	m.times_suggested = &i
	m.addtimes_suggested = nil
}

// TimesSuggested returns the value of the "times_suggested" field in the mutation.
func (m *TrackedSuggestionMutation) TimesSuggested() (r int, exists bool) {
	v := m.times_suggested
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesSuggested returns the old "times_suggested" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldTimesSuggested(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesSuggested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesSuggested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesSuggested: %w", err)
	}
	return oldValue.TimesSuggested, nil
}

// AddTimesSuggested adds i to the "times_suggested" field.
func (m *TrackedSuggestionMutation) AddTimesSuggested(i int) {
	if m.addtimes_suggested != nil {
		*m.addtimes_suggested += i
	} else {
		m.addtimes_suggested = &i
	}
}

// AddedTimesSuggested returns the value that was added to the "times_suggested" field in this mutation.
func (m *TrackedSuggestionMutation) AddedTimesSuggested() (r int, exists bool) {
	v := m.addtimes_suggested
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesSuggested resets all changes to the "times_suggested" field.
func (m *TrackedSuggestionMutation) ResetTimesSuggested() {
	m.times_suggested = nil
	m.addtimes_suggested = nil
}

// SetDedupKey sets the "dedup_key" field.
func (m *TrackedSuggestionMutation) SetDedupKey(s string) {
	m.dedup_key = &s
}

// DedupKey returns the value of the "dedup_key" field in the mutation.
func (m *TrackedSuggestionMutation) DedupKey() (r string, exists bool) {
	v := m.dedup_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupKey returns the old "dedup_key" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldDedupKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupKey: %w", err)
	}
	return oldValue.DedupKey, nil
}

// ResetDedupKey resets all changes to the "dedup_key" field.
func (m *TrackedSuggestionMutation) ResetDedupKey() {
	m.dedup_key = nil
}

// SetFirstSuggestedAt sets the "first_suggested_at" field.
func (m *TrackedSuggestionMutation) SetFirstSuggestedAt(t time.Time) {
	m.first_suggested_at = &t
}

// FirstSuggestedAt returns the value of the "first_suggested_at" field in the mutation.
func (m *TrackedSuggestionMutation) FirstSuggestedAt() (r time.Time, exists bool) {
	v := m.first_suggested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSuggestedAt returns the old "first_suggested_at" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldFirstSuggestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSuggestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSuggestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSuggestedAt: %w", err)
	}
	return oldValue.FirstSuggestedAt, nil
}

// ResetFirstSuggestedAt resets all changes to the "first_suggested_at" field.
func (m *TrackedSuggestionMutation) ResetFirstSuggestedAt() {
	m.first_suggested_at = nil
}

// SetLastSuggestedAt sets the "last_suggested_at" field.
func (m *TrackedSuggestionMutation) SetLastSuggestedAt(t time.Time) {
	m.last_suggested_at = &t
}

// LastSuggestedAt returns the value of the "last_suggested_at" field in the mutation.
func (m *TrackedSuggestionMutation) LastSuggestedAt() (r time.Time, exists bool) {
	v := m.last_suggested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSuggestedAt returns the old "last_suggested_at" field's value of the TrackedSuggestion entity.
// If the TrackedSuggestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrackedSuggestionMutation) OldLastSuggestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSuggestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSuggestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSuggestedAt: %w", err)
	}
	return oldValue.LastSuggestedAt, nil
}

// ResetLastSuggestedAt resets all changes to the "last_suggested_at" field.
func (m *TrackedSuggestionMutation) ResetLastSuggestedAt() {
	m.last_suggested_at = nil
}

// ClearPage clears the "page" edge to the Page entity.
func (m *TrackedSuggestionMutation) ClearPage() {
	m.clearedpage = true
	m.clearedFields[trackedsuggestion.FieldPageID] = struct{}{}
}

// PageCleared reports if the "page" edge to the Page entity was cleared.
func (m *TrackedSuggestionMutation) PageCleared() bool {
	return m.clearedpage
}

// PageIDs returns the "page" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PageID instead. It exists only for internal usage by the builders.
func (m *TrackedSuggestionMutation) PageIDs() (ids []string) {
	if id := m.page; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPage resets all changes to the "page" edge.
func (m *TrackedSuggestionMutation) ResetPage() {
	m.page = nil
	m.clearedpage = false
}

// Where appends a list predicates to the TrackedSuggestionMutation builder.
func (m *TrackedSuggestionMutation) Where(ps ...predicate.TrackedSuggestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrackedSuggestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrackedSuggestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrackedSuggestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrackedSuggestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrackedSuggestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrackedSuggestion).
func (m *TrackedSuggestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrackedSuggestionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.page != nil {
		fields = append(fields, trackedsuggestion.FieldPageID)
	}
	if m.user_id != nil {
		fields = append(fields, trackedsuggestion.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, trackedsuggestion.FieldTitle)
	}
	if m.element != nil {
		fields = append(fields, trackedsuggestion.FieldElement)
	}
	if m.suggested_fix != nil {
		fields = append(fields, trackedsuggestion.FieldSuggestedFix)
	}
	if m.impact != nil {
		fields = append(fields, trackedsuggestion.FieldImpact)
	}
	if m.status != nil {
		fields = append(fields, trackedsuggestion.FieldStatus)
	}
	if m.times_suggested != nil {
		fields = append(fields, trackedsuggestion.FieldTimesSuggested)
	}
	if m.dedup_key != nil {
		fields = append(fields, trackedsuggestion.FieldDedupKey)
	}
	if m.first_suggested_at != nil {
		fields = append(fields, trackedsuggestion.FieldFirstSuggestedAt)
	}
	if m.last_suggested_at != nil {
		fields = append(fields, trackedsuggestion.FieldLastSuggestedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrackedSuggestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trackedsuggestion.FieldPageID:
		return m.PageID()
	case trackedsuggestion.FieldUserID:
		return m.UserID()
	case trackedsuggestion.FieldTitle:
		return m.Title()
	case trackedsuggestion.FieldElement:
		return m.Element()
	case trackedsuggestion.FieldSuggestedFix:
		return m.SuggestedFix()
	case trackedsuggestion.FieldImpact:
		return m.Impact()
	case trackedsuggestion.FieldStatus:
		return m.Status()
	case trackedsuggestion.FieldTimesSuggested:
		return m.TimesSuggested()
	case trackedsuggestion.FieldDedupKey:
		return m.DedupKey()
	case trackedsuggestion.FieldFirstSuggestedAt:
		return m.FirstSuggestedAt()
	case trackedsuggestion.FieldLastSuggestedAt:
		return m.LastSuggestedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrackedSuggestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trackedsuggestion.FieldPageID:
		return m.OldPageID(ctx)
	case trackedsuggestion.FieldUserID:
		return m.OldUserID(ctx)
	case trackedsuggestion.FieldTitle:
		return m.OldTitle(ctx)
	case trackedsuggestion.FieldElement:
		return m.OldElement(ctx)
	case trackedsuggestion.FieldSuggestedFix:
		return m.OldSuggestedFix(ctx)
	case trackedsuggestion.FieldImpact:
		return m.OldImpact(ctx)
	case trackedsuggestion.FieldStatus:
		return m.OldStatus(ctx)
	case trackedsuggestion.FieldTimesSuggested:
		return m.OldTimesSuggested(ctx)
	case trackedsuggestion.FieldDedupKey:
		return m.OldDedupKey(ctx)
	case trackedsuggestion.FieldFirstSuggestedAt:
		return m.OldFirstSuggestedAt(ctx)
	case trackedsuggestion.FieldLastSuggestedAt:
		return m.OldLastSuggestedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrackedSuggestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackedSuggestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trackedsuggestion.FieldPageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageID(v)
		return nil
	case trackedsuggestion.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case trackedsuggestion.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case trackedsuggestion.FieldElement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElement(v)
		return nil
	case trackedsuggestion.FieldSuggestedFix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedFix(v)
		return nil
	case trackedsuggestion.FieldImpact:
		v, ok := value.(trackedsuggestion.Impact)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpact(v)
		return nil
	case trackedsuggestion.FieldStatus:
		v, ok := value.(trackedsuggestion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case trackedsuggestion.FieldTimesSuggested:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesSuggested(v)
		return nil
	case trackedsuggestion.FieldDedupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupKey(v)
		return nil
	case trackedsuggestion.FieldFirstSuggestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSuggestedAt(v)
		return nil
	case trackedsuggestion.FieldLastSuggestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSuggestedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrackedSuggestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrackedSuggestionMutation) AddedFields() []string {
	var fields []string
	if m.addtimes_suggested != nil {
		fields = append(fields, trackedsuggestion.FieldTimesSuggested)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrackedSuggestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trackedsuggestion.FieldTimesSuggested:
		return m.AddedTimesSuggested()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrackedSuggestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trackedsuggestion.FieldTimesSuggested:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesSuggested(v)
		return nil
	}
	return fmt.Errorf("unknown TrackedSuggestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrackedSuggestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrackedSuggestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrackedSuggestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrackedSuggestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrackedSuggestionMutation) ResetField(name string) error {
	switch name {
	case trackedsuggestion.FieldPageID:
		m.ResetPageID()
		return nil
	case trackedsuggestion.FieldUserID:
		m.ResetUserID()
		return nil
	case trackedsuggestion.FieldTitle:
		m.ResetTitle()
		return nil
	case trackedsuggestion.FieldElement:
		m.ResetElement()
		return nil
	case trackedsuggestion.FieldSuggestedFix:
		m.ResetSuggestedFix()
		return nil
	case trackedsuggestion.FieldImpact:
		m.ResetImpact()
		return nil
	case trackedsuggestion.FieldStatus:
		m.ResetStatus()
		return nil
	case trackedsuggestion.FieldTimesSuggested:
		m.ResetTimesSuggested()
		return nil
	case trackedsuggestion.FieldDedupKey:
		m.ResetDedupKey()
		return nil
	case trackedsuggestion.FieldFirstSuggestedAt:
		m.ResetFirstSuggestedAt()
		return nil
	case trackedsuggestion.FieldLastSuggestedAt:
		m.ResetLastSuggestedAt()
		return nil
	}
	return fmt.Errorf("unknown TrackedSuggestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrackedSuggestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.page != nil {
		edges = append(edges, trackedsuggestion.EdgePage)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrackedSuggestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trackedsuggestion.EdgePage:
		if id := m.page; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrackedSuggestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrackedSuggestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrackedSuggestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpage {
		edges = append(edges, trackedsuggestion.EdgePage)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrackedSuggestionMutation) EdgeCleared(name string) bool {
	switch name {
	case trackedsuggestion.EdgePage:
		return m.clearedpage
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrackedSuggestionMutation) ClearEdge(name string) error {
	switch name {
	case trackedsuggestion.EdgePage:
		m.ClearPage()
		return nil
	}
	return fmt.Errorf("unknown TrackedSuggestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrackedSuggestionMutation) ResetEdge(name string) error {
	switch name {
	case trackedsuggestion.EdgePage:
		m.ResetPage()
		return nil
	}
	return fmt.Errorf("unknown TrackedSuggestion edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	email                        *string
	tier                         *user.Tier
	trial_ends_at                *time.Time
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	pages                        map[string]struct{}
	removedpages                 map[string]struct{}
	clearedpages                 bool
	analytics_connections        map[string]struct{}
	removedanalytics_connections map[string]struct{}
	clearedanalytics_connections bool
	deploys                      map[string]struct{}
	removeddeploys               map[string]struct{}
	cleareddeploys               bool
	done                         bool
	oldValue                     func(context.Context) (*User, error)
	predicates                   []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetTier sets the "tier" field.
func (m *UserMutation) SetTier(u user.Tier) {
	m.tier = &u
}

// Tier returns the value of the "tier" field in the mutation.
func (m *UserMutation) Tier() (r user.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTier(ctx context.Context) (v user.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *UserMutation) ResetTier() {
	m.tier = nil
}

// SetTrialEndsAt sets the "trial_ends_at" field.
func (m *UserMutation) SetTrialEndsAt(t time.Time) {
	m.trial_ends_at = &t
}

// TrialEndsAt returns the value of the "trial_ends_at" field in the mutation.
func (m *UserMutation) TrialEndsAt() (r time.Time, exists bool) {
	v := m.trial_ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialEndsAt returns the old "trial_ends_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTrialEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialEndsAt: %w", err)
	}
	return oldValue.TrialEndsAt, nil
}

// ClearTrialEndsAt clears the value of the "trial_ends_at" field.
func (m *UserMutation) ClearTrialEndsAt() {
	m.trial_ends_at = nil
	m.clearedFields[user.FieldTrialEndsAt] = struct{}{}
}

// TrialEndsAtCleared returns if the "trial_ends_at" field was cleared in this mutation.
func (m *UserMutation) TrialEndsAtCleared() bool {
	_, ok := m.clearedFields[user.FieldTrialEndsAt]
	return ok
}

// ResetTrialEndsAt resets all changes to the "trial_ends_at" field.
func (m *UserMutation) ResetTrialEndsAt() {
	m.trial_ends_at = nil
	delete(m.clearedFields, user.FieldTrialEndsAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddPageIDs adds the "pages" edge to the Page entity by ids.
func (m *UserMutation) AddPageIDs(ids ...string) {
	if m.pages == nil {
		m.pages = make(map[string]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the Page entity.
func (m *UserMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the Page entity was cleared.
func (m *UserMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the Page entity by IDs.
func (m *UserMutation) RemovePageIDs(ids ...string) {
	if m.removedpages == nil {
		m.removedpages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the Page entity.
func (m *UserMutation) RemovedPagesIDs() (ids []string) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *UserMutation) PagesIDs() (ids []string) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *UserMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// AddAnalyticsConnectionIDs adds the "analytics_connections" edge to the AnalyticsConnection entity by ids.
func (m *UserMutation) AddAnalyticsConnectionIDs(ids ...string) {
	if m.analytics_connections == nil {
		m.analytics_connections = make(map[string]struct{})
	}
	for i := range ids {
		m.analytics_connections[ids[i]] = struct{}{}
	}
}

// ClearAnalyticsConnections clears the "analytics_connections" edge to the AnalyticsConnection entity.
func (m *UserMutation) ClearAnalyticsConnections() {
	m.clearedanalytics_connections = true
}

// AnalyticsConnectionsCleared reports if the "analytics_connections" edge to the AnalyticsConnection entity was cleared.
func (m *UserMutation) AnalyticsConnectionsCleared() bool {
	return m.clearedanalytics_connections
}

// RemoveAnalyticsConnectionIDs removes the "analytics_connections" edge to the AnalyticsConnection entity by IDs.
func (m *UserMutation) RemoveAnalyticsConnectionIDs(ids ...string) {
	if m.removedanalytics_connections == nil {
		m.removedanalytics_connections = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analytics_connections, ids[i])
		m.removedanalytics_connections[ids[i]] = struct{}{}
	}
}

// RemovedAnalyticsConnections returns the removed IDs of the "analytics_connections" edge to the AnalyticsConnection entity.
func (m *UserMutation) RemovedAnalyticsConnectionsIDs() (ids []string) {
	for id := range m.removedanalytics_connections {
		ids = append(ids, id)
	}
	return
}

// AnalyticsConnectionsIDs returns the "analytics_connections" edge IDs in the mutation.
func (m *UserMutation) AnalyticsConnectionsIDs() (ids []string) {
	for id := range m.analytics_connections {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyticsConnections resets all changes to the "analytics_connections" edge.
func (m *UserMutation) ResetAnalyticsConnections() {
	m.analytics_connections = nil
	m.clearedanalytics_connections = false
	m.removedanalytics_connections = nil
}

// AddDeployIDs adds the "deploys" edge to the Deploy entity by ids.
func (m *UserMutation) AddDeployIDs(ids ...string) {
	if m.deploys == nil {
		m.deploys = make(map[string]struct{})
	}
	for i := range ids {
		m.deploys[ids[i]] = struct{}{}
	}
}

// ClearDeploys clears the "deploys" edge to the Deploy entity.
func (m *UserMutation) ClearDeploys() {
	m.cleareddeploys = true
}

// DeploysCleared reports if the "deploys" edge to the Deploy entity was cleared.
func (m *UserMutation) DeploysCleared() bool {
	return m.cleareddeploys
}

// RemoveDeployIDs removes the "deploys" edge to the Deploy entity by IDs.
func (m *UserMutation) RemoveDeployIDs(ids ...string) {
	if m.removeddeploys == nil {
		m.removeddeploys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deploys, ids[i])
		m.removeddeploys[ids[i]] = struct{}{}
	}
}

// RemovedDeploys returns the removed IDs of the "deploys" edge to the Deploy entity.
func (m *UserMutation) RemovedDeploysIDs() (ids []string) {
	for id := range m.removeddeploys {
		ids = append(ids, id)
	}
	return
}

// DeploysIDs returns the "deploys" edge IDs in the mutation.
func (m *UserMutation) DeploysIDs() (ids []string) {
	for id := range m.deploys {
		ids = append(ids, id)
	}
	return
}

// ResetDeploys resets all changes to the "deploys" edge.
func (m *UserMutation) ResetDeploys() {
	m.deploys = nil
	m.cleareddeploys = false
	m.removeddeploys = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.tier != nil {
		fields = append(fields, user.FieldTier)
	}
	if m.trial_ends_at != nil {
		fields = append(fields, user.FieldTrialEndsAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldTier:
		return m.Tier()
	case user.FieldTrialEndsAt:
		return m.TrialEndsAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldTier:
		return m.OldTier(ctx)
	case user.FieldTrialEndsAt:
		return m.OldTrialEndsAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldTier:
		v, ok := value.(user.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case user.FieldTrialEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialEndsAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldTrialEndsAt) {
		fields = append(fields, user.FieldTrialEndsAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldTrialEndsAt:
		m.ClearTrialEndsAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldTier:
		m.ResetTier()
		return nil
	case user.FieldTrialEndsAt:
		m.ResetTrialEndsAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.pages != nil {
		edges = append(edges, user.EdgePages)
	}
	if m.analytics_connections != nil {
		edges = append(edges, user.EdgeAnalyticsConnections)
	}
	if m.deploys != nil {
		edges = append(edges, user.EdgeDeploys)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAnalyticsConnections:
		ids := make([]ent.Value, 0, len(m.analytics_connections))
		for id := range m.analytics_connections {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDeploys:
		ids := make([]ent.Value, 0, len(m.deploys))
		for id := range m.deploys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedpages != nil {
		edges = append(edges, user.EdgePages)
	}
	if m.removedanalytics_connections != nil {
		edges = append(edges, user.EdgeAnalyticsConnections)
	}
	if m.removeddeploys != nil {
		edges = append(edges, user.EdgeDeploys)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeAnalyticsConnections:
		ids := make([]ent.Value, 0, len(m.removedanalytics_connections))
		for id := range m.removedanalytics_connections {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDeploys:
		ids := make([]ent.Value, 0, len(m.removeddeploys))
		for id := range m.removeddeploys {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpages {
		edges = append(edges, user.EdgePages)
	}
	if m.clearedanalytics_connections {
		edges = append(edges, user.EdgeAnalyticsConnections)
	}
	if m.cleareddeploys {
		edges = append(edges, user.EdgeDeploys)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePages:
		return m.clearedpages
	case user.EdgeAnalyticsConnections:
		return m.clearedanalytics_connections
	case user.EdgeDeploys:
		return m.cleareddeploys
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePages:
		m.ResetPages()
		return nil
	case user.EdgeAnalyticsConnections:
		m.ResetAnalyticsConnections()
		return nil
	case user.EdgeDeploys:
		m.ResetDeploys()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
