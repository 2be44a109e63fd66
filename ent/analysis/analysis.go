// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysis type in the database.
	Label = "analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldParentAnalysisID holds the string denoting the parent_analysis_id field in the database.
	FieldParentAnalysisID = "parent_analysis_id"
	// FieldDeployID holds the string denoting the deploy_id field in the database.
	FieldDeployID = "deploy_id"
	// FieldDesktopScreenshotURL holds the string denoting the desktop_screenshot_url field in the database.
	FieldDesktopScreenshotURL = "desktop_screenshot_url"
	// FieldMobileScreenshotURL holds the string denoting the mobile_screenshot_url field in the database.
	FieldMobileScreenshotURL = "mobile_screenshot_url"
	// FieldFreeformOutput holds the string denoting the freeform_output field in the database.
	FieldFreeformOutput = "freeform_output"
	// FieldStructuredOutput holds the string denoting the structured_output field in the database.
	FieldStructuredOutput = "structured_output"
	// FieldChangesSummary holds the string denoting the changes_summary field in the database.
	FieldChangesSummary = "changes_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgePage holds the string denoting the page edge name in mutations.
	EdgePage = "page"
	// PageFieldID holds the string denoting the ID field of the Page.
	PageFieldID = "page_id"
	// Table holds the table name of the analysis in the database.
	Table = "analyses"
	// PageTable is the table that holds the page relation/edge.
	PageTable = "analyses"
	// PageInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PageInverseTable = "pages"
	// PageColumn is the table column denoting the page relation/edge.
	PageColumn = "page_id"
)

// Columns holds all SQL columns for analysis fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldUserID,
	FieldURL,
	FieldStatus,
	FieldTriggerType,
	FieldParentAnalysisID,
	FieldDeployID,
	FieldDesktopScreenshotURL,
	FieldMobileScreenshotURL,
	FieldFreeformOutput,
	FieldStructuredOutput,
	FieldChangesSummary,
	FieldErrorMessage,
	FieldAttempts,
	FieldPodID,
	FieldLastInteractionAt,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusComplete   Status = "complete"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusComplete, StatusFailed:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for status field: %q", s)
	}
}

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerTypeManual is the default value of the TriggerType enum.
const DefaultTriggerType = TriggerTypeManual

// TriggerType values.
const (
	TriggerTypeManual TriggerType = "manual"
	TriggerTypeDaily  TriggerType = "daily"
	TriggerTypeWeekly TriggerType = "weekly"
	TriggerTypeDeploy TriggerType = "deploy"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeManual, TriggerTypeDaily, TriggerTypeWeekly, TriggerTypeDeploy:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for trigger_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the Analysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPageID orders the results by the page_id field.
func ByPageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByParentAnalysisID orders the results by the parent_analysis_id field.
func ByParentAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentAnalysisID, opts...).ToFunc()
}

// ByDeployID orders the results by the deploy_id field.
func ByDeployID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeployID, opts...).ToFunc()
}

// ByDesktopScreenshotURL orders the results by the desktop_screenshot_url field.
func ByDesktopScreenshotURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesktopScreenshotURL, opts...).ToFunc()
}

// ByMobileScreenshotURL orders the results by the mobile_screenshot_url field.
func ByMobileScreenshotURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMobileScreenshotURL, opts...).ToFunc()
}

// ByFreeformOutput orders the results by the freeform_output field.
func ByFreeformOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreeformOutput, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPageField orders the results by page field.
func ByPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPageStep(), sql.OrderByField(field, opts...))
	}
}
func newPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PageInverseTable, PageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
	)
}
