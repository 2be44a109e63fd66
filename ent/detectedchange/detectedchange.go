// Code generated by ent, DO NOT EDIT.

package detectedchange

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the detectedchange type in the database.
	Label = "detected_change"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "change_id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldElement holds the string denoting the element field in the database.
	FieldElement = "element"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldBeforeValue holds the string denoting the before_value field in the database.
	FieldBeforeValue = "before_value"
	// FieldAfterValue holds the string denoting the after_value field in the database.
	FieldAfterValue = "after_value"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFirstDetectedAt holds the string denoting the first_detected_at field in the database.
	FieldFirstDetectedAt = "first_detected_at"
	// FieldDetectedOn holds the string denoting the detected_on field in the database.
	FieldDetectedOn = "detected_on"
	// FieldFirstDetectedAnalysisID holds the string denoting the first_detected_analysis_id field in the database.
	FieldFirstDetectedAnalysisID = "first_detected_analysis_id"
	// FieldHypothesis holds the string denoting the hypothesis field in the database.
	FieldHypothesis = "hypothesis"
	// FieldCorrelationMetrics holds the string denoting the correlation_metrics field in the database.
	FieldCorrelationMetrics = "correlation_metrics"
	// FieldCorrelationUnlockedAt holds the string denoting the correlation_unlocked_at field in the database.
	FieldCorrelationUnlockedAt = "correlation_unlocked_at"
	// FieldObservationText holds the string denoting the observation_text field in the database.
	FieldObservationText = "observation_text"
	// FieldMatchConfidence holds the string denoting the match_confidence field in the database.
	FieldMatchConfidence = "match_confidence"
	// FieldMatchRationale holds the string denoting the match_rationale field in the database.
	FieldMatchRationale = "match_rationale"
	// FieldRevertedAt holds the string denoting the reverted_at field in the database.
	FieldRevertedAt = "reverted_at"
	// EdgePage holds the string denoting the page edge name in mutations.
	EdgePage = "page"
	// EdgeCheckpoints holds the string denoting the checkpoints edge name in mutations.
	EdgeCheckpoints = "checkpoints"
	// EdgeLifecycleEvents holds the string denoting the lifecycle_events edge name in mutations.
	EdgeLifecycleEvents = "lifecycle_events"
	// EdgeOutcomeFeedback holds the string denoting the outcome_feedback edge name in mutations.
	EdgeOutcomeFeedback = "outcome_feedback"
	// PageFieldID holds the string denoting the ID field of the Page.
	PageFieldID = "page_id"
	// ChangeCheckpointFieldID holds the string denoting the ID field of the ChangeCheckpoint.
	ChangeCheckpointFieldID = "checkpoint_id"
	// ChangeLifecycleEventFieldID holds the string denoting the ID field of the ChangeLifecycleEvent.
	ChangeLifecycleEventFieldID = "lifecycle_event_id"
	// OutcomeFeedbackFieldID holds the string denoting the ID field of the OutcomeFeedback.
	OutcomeFeedbackFieldID = "feedback_id"
	// Table holds the table name of the detectedchange in the database.
	Table = "detected_changes"
	// PageTable is the table that holds the page relation/edge.
	PageTable = "detected_changes"
	// PageInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PageInverseTable = "pages"
	// PageColumn is the table column denoting the page relation/edge.
	PageColumn = "page_id"
	// CheckpointsTable is the table that holds the checkpoints relation/edge.
	CheckpointsTable = "change_checkpoints"
	// CheckpointsInverseTable is the table name for the ChangeCheckpoint entity.
	// It exists in this package in order to avoid circular dependency with the "changecheckpoint" package.
	CheckpointsInverseTable = "change_checkpoints"
	// CheckpointsColumn is the table column denoting the checkpoints relation/edge.
	CheckpointsColumn = "change_id"
	// LifecycleEventsTable is the table that holds the lifecycle_events relation/edge.
	LifecycleEventsTable = "change_lifecycle_events"
	// LifecycleEventsInverseTable is the table name for the ChangeLifecycleEvent entity.
	// It exists in this package in order to avoid circular dependency with the "changelifecycleevent" package.
	LifecycleEventsInverseTable = "change_lifecycle_events"
	// LifecycleEventsColumn is the table column denoting the lifecycle_events relation/edge.
	LifecycleEventsColumn = "change_id"
	// OutcomeFeedbackTable is the table that holds the outcome_feedback relation/edge.
	OutcomeFeedbackTable = "outcome_feedbacks"
	// OutcomeFeedbackInverseTable is the table name for the OutcomeFeedback entity.
	// It exists in this package in order to avoid circular dependency with the "outcomefeedback" package.
	OutcomeFeedbackInverseTable = "outcome_feedbacks"
	// OutcomeFeedbackColumn is the table column denoting the outcome_feedback relation/edge.
	OutcomeFeedbackColumn = "change_id"
)

// Columns holds all SQL columns for detectedchange fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldUserID,
	FieldElement,
	FieldScope,
	FieldBeforeValue,
	FieldAfterValue,
	FieldDescription,
	FieldStatus,
	FieldFirstDetectedAt,
	FieldDetectedOn,
	FieldFirstDetectedAnalysisID,
	FieldHypothesis,
	FieldCorrelationMetrics,
	FieldCorrelationUnlockedAt,
	FieldObservationText,
	FieldMatchConfidence,
	FieldMatchRationale,
	FieldRevertedAt,
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
	// DefaultFirstDetectedAt holds the default value on creation for the "first_detected_at" field.
	DefaultFirstDetectedAt func() time.Time
)

// Scope defines the type for the "scope" enum field.
type Scope string

// ScopeElement is the default value of the Scope enum.
const DefaultScope = ScopeElement

// Scope values.
const (
	ScopeElement Scope = "element"
	ScopeSection Scope = "section"
	ScopePage    Scope = "page"
)

func (s Scope) String() string {
	return string(s)
}

// ScopeValidator is a validator for the "scope" field enum values. It is called by the builders before save.
func ScopeValidator(s Scope) error {
	switch s {
	case ScopeElement, ScopeSection, ScopePage:
		return nil
	default:
		return fmt.Errorf("detectedchange: invalid enum value for scope field: %q", s)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusWatching is the default value of the Status enum.
const DefaultStatus = StatusWatching

// Status values.
const (
	StatusWatching     Status = "watching"
	StatusValidated    Status = "validated"
	StatusRegressed    Status = "regressed"
	StatusInconclusive Status = "inconclusive"
	StatusReverted     Status = "reverted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusWatching, StatusValidated, StatusRegressed, StatusInconclusive, StatusReverted:
		return nil
	default:
		return fmt.Errorf("detectedchange: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DetectedChange queries.
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

// ByElement orders the results by the element field.
func ByElement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElement, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByBeforeValue orders the results by the before_value field.
func ByBeforeValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeforeValue, opts...).ToFunc()
}

// ByAfterValue orders the results by the after_value field.
func ByAfterValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfterValue, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFirstDetectedAt orders the results by the first_detected_at field.
func ByFirstDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDetectedAt, opts...).ToFunc()
}

// ByDetectedOn orders the results by the detected_on field.
func ByDetectedOn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedOn, opts...).ToFunc()
}

// ByFirstDetectedAnalysisID orders the results by the first_detected_analysis_id field.
func ByFirstDetectedAnalysisID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDetectedAnalysisID, opts...).ToFunc()
}

// ByHypothesis orders the results by the hypothesis field.
func ByHypothesis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHypothesis, opts...).ToFunc()
}

// ByCorrelationUnlockedAt orders the results by the correlation_unlocked_at field.
func ByCorrelationUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationUnlockedAt, opts...).ToFunc()
}

// ByObservationText orders the results by the observation_text field.
func ByObservationText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservationText, opts...).ToFunc()
}

// ByMatchConfidence orders the results by the match_confidence field.
func ByMatchConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchConfidence, opts...).ToFunc()
}

// ByMatchRationale orders the results by the match_rationale field.
func ByMatchRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchRationale, opts...).ToFunc()
}

// ByRevertedAt orders the results by the reverted_at field.
func ByRevertedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevertedAt, opts...).ToFunc()
}

// ByPageField orders the results by page field.
func ByPageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPageStep(), sql.OrderByField(field, opts...))
	}
}

// ByCheckpointsCount orders the results by checkpoints count.
func ByCheckpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCheckpointsStep(), opts...)
	}
}

// ByCheckpoints orders the results by checkpoints terms.
func ByCheckpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCheckpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLifecycleEventsCount orders the results by lifecycle_events count.
func ByLifecycleEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLifecycleEventsStep(), opts...)
	}
}

// ByLifecycleEvents orders the results by lifecycle_events terms.
func ByLifecycleEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLifecycleEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOutcomeFeedbackCount orders the results by outcome_feedback count.
func ByOutcomeFeedbackCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutcomeFeedbackStep(), opts...)
	}
}

// ByOutcomeFeedback orders the results by outcome_feedback terms.
func ByOutcomeFeedback(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutcomeFeedbackStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PageInverseTable, PageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
	)
}
func newCheckpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CheckpointsInverseTable, ChangeCheckpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
	)
}
func newLifecycleEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LifecycleEventsInverseTable, ChangeLifecycleEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LifecycleEventsTable, LifecycleEventsColumn),
	)
}
func newOutcomeFeedbackStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutcomeFeedbackInverseTable, OutcomeFeedbackFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutcomeFeedbackTable, OutcomeFeedbackColumn),
	)
}
