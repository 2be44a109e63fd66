// Code generated by ent, DO NOT EDIT.

package page

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the page type in the database.
	Label = "page"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "page_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldScanFrequency holds the string denoting the scan_frequency field in the database.
	FieldScanFrequency = "scan_frequency"
	// FieldMetricFocus holds the string denoting the metric_focus field in the database.
	FieldMetricFocus = "metric_focus"
	// FieldStableBaselineID holds the string denoting the stable_baseline_id field in the database.
	FieldStableBaselineID = "stable_baseline_id"
	// FieldLastScanID holds the string denoting the last_scan_id field in the database.
	FieldLastScanID = "last_scan_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeAnalyses holds the string denoting the analyses edge name in mutations.
	EdgeAnalyses = "analyses"
	// EdgeDetectedChanges holds the string denoting the detected_changes edge name in mutations.
	EdgeDetectedChanges = "detected_changes"
	// EdgeTrackedSuggestions holds the string denoting the tracked_suggestions edge name in mutations.
	EdgeTrackedSuggestions = "tracked_suggestions"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// AnalysisFieldID holds the string denoting the ID field of the Analysis.
	AnalysisFieldID = "analysis_id"
	// DetectedChangeFieldID holds the string denoting the ID field of the DetectedChange.
	DetectedChangeFieldID = "change_id"
	// TrackedSuggestionFieldID holds the string denoting the ID field of the TrackedSuggestion.
	TrackedSuggestionFieldID = "suggestion_id"
	// Table holds the table name of the page in the database.
	Table = "pages"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "pages"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// AnalysesTable is the table that holds the analyses relation/edge.
	AnalysesTable = "analyses"
	// AnalysesInverseTable is the table name for the Analysis entity.
	// It exists in this package in order to avoid circular dependency with the "analysis" package.
	AnalysesInverseTable = "analyses"
	// AnalysesColumn is the table column denoting the analyses relation/edge.
	AnalysesColumn = "page_id"
	// DetectedChangesTable is the table that holds the detected_changes relation/edge.
	DetectedChangesTable = "detected_changes"
	// DetectedChangesInverseTable is the table name for the DetectedChange entity.
	// It exists in this package in order to avoid circular dependency with the "detectedchange" package.
	DetectedChangesInverseTable = "detected_changes"
	// DetectedChangesColumn is the table column denoting the detected_changes relation/edge.
	DetectedChangesColumn = "page_id"
	// TrackedSuggestionsTable is the table that holds the tracked_suggestions relation/edge.
	TrackedSuggestionsTable = "tracked_suggestions"
	// TrackedSuggestionsInverseTable is the table name for the TrackedSuggestion entity.
	// It exists in this package in order to avoid circular dependency with the "trackedsuggestion" package.
	TrackedSuggestionsInverseTable = "tracked_suggestions"
	// TrackedSuggestionsColumn is the table column denoting the tracked_suggestions relation/edge.
	TrackedSuggestionsColumn = "page_id"
)

// Columns holds all SQL columns for page fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldURL,
	FieldScanFrequency,
	FieldMetricFocus,
	FieldStableBaselineID,
	FieldLastScanID,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ScanFrequency defines the type for the "scan_frequency" enum field.
type ScanFrequency string

// ScanFrequencyManual is the default value of the ScanFrequency enum.
const DefaultScanFrequency = ScanFrequencyManual

// ScanFrequency values.
const (
	ScanFrequencyDaily  ScanFrequency = "daily"
	ScanFrequencyWeekly ScanFrequency = "weekly"
	ScanFrequencyManual ScanFrequency = "manual"
)

func (sf ScanFrequency) String() string {
	return string(sf)
}

// ScanFrequencyValidator is a validator for the "scan_frequency" field enum values. It is called by the builders before save.
func ScanFrequencyValidator(sf ScanFrequency) error {
	switch sf {
	case ScanFrequencyDaily, ScanFrequencyWeekly, ScanFrequencyManual:
		return nil
	default:
		return fmt.Errorf("page: invalid enum value for scan_frequency field: %q", sf)
	}
}

// OrderOption defines the ordering options for the Page queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByScanFrequency orders the results by the scan_frequency field.
func ByScanFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanFrequency, opts...).ToFunc()
}

// ByMetricFocus orders the results by the metric_focus field.
func ByMetricFocus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricFocus, opts...).ToFunc()
}

// ByStableBaselineID orders the results by the stable_baseline_id field.
func ByStableBaselineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStableBaselineID, opts...).ToFunc()
}

// ByLastScanID orders the results by the last_scan_id field.
func ByLastScanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScanID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByAnalysesCount orders the results by analyses count.
func ByAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysesStep(), opts...)
	}
}

// ByAnalyses orders the results by analyses terms.
func ByAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDetectedChangesCount orders the results by detected_changes count.
func ByDetectedChangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDetectedChangesStep(), opts...)
	}
}

// ByDetectedChanges orders the results by detected_changes terms.
func ByDetectedChanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDetectedChangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrackedSuggestionsCount orders the results by tracked_suggestions count.
func ByTrackedSuggestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrackedSuggestionsStep(), opts...)
	}
}

// ByTrackedSuggestions orders the results by tracked_suggestions terms.
func ByTrackedSuggestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrackedSuggestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysesInverseTable, AnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
	)
}
func newDetectedChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DetectedChangesInverseTable, DetectedChangeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DetectedChangesTable, DetectedChangesColumn),
	)
}
func newTrackedSuggestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrackedSuggestionsInverseTable, TrackedSuggestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrackedSuggestionsTable, TrackedSuggestionsColumn),
	)
}
