// Code generated by ent, DO NOT EDIT.

package changecheckpoint

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the changecheckpoint type in the database.
	Label = "change_checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldChangeID holds the string denoting the change_id field in the database.
	FieldChangeID = "change_id"
	// FieldHorizonDays holds the string denoting the horizon_days field in the database.
	FieldHorizonDays = "horizon_days"
	// FieldBeforeWindowStart holds the string denoting the before_window_start field in the database.
	FieldBeforeWindowStart = "before_window_start"
	// FieldBeforeWindowEnd holds the string denoting the before_window_end field in the database.
	FieldBeforeWindowEnd = "before_window_end"
	// FieldAfterWindowStart holds the string denoting the after_window_start field in the database.
	FieldAfterWindowStart = "after_window_start"
	// FieldAfterWindowEnd holds the string denoting the after_window_end field in the database.
	FieldAfterWindowEnd = "after_window_end"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldAssessment holds the string denoting the assessment field in the database.
	FieldAssessment = "assessment"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldDataSources holds the string denoting the data_sources field in the database.
	FieldDataSources = "data_sources"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// EdgeChange holds the string denoting the change edge name in mutations.
	EdgeChange = "change"
	// DetectedChangeFieldID holds the string denoting the ID field of the DetectedChange.
	DetectedChangeFieldID = "change_id"
	// Table holds the table name of the changecheckpoint in the database.
	Table = "change_checkpoints"
	// ChangeTable is the table that holds the change relation/edge.
	ChangeTable = "change_checkpoints"
	// ChangeInverseTable is the table name for the DetectedChange entity.
	// It exists in this package in order to avoid circular dependency with the "detectedchange" package.
	ChangeInverseTable = "detected_changes"
	// ChangeColumn is the table column denoting the change relation/edge.
	ChangeColumn = "change_id"
)

// Columns holds all SQL columns for changecheckpoint fields.
var Columns = []string{
	FieldID,
	FieldChangeID,
	FieldHorizonDays,
	FieldBeforeWindowStart,
	FieldBeforeWindowEnd,
	FieldAfterWindowStart,
	FieldAfterWindowEnd,
	FieldMetrics,
	FieldAssessment,
	FieldConfidence,
	FieldReasoning,
	FieldDataSources,
	FieldProvider,
	FieldComputedAt,
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
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
)

// Assessment defines the type for the "assessment" enum field.
type Assessment string

// Assessment values.
const (
	AssessmentImproved     Assessment = "improved"
	AssessmentRegressed    Assessment = "regressed"
	AssessmentNeutral      Assessment = "neutral"
	AssessmentInconclusive Assessment = "inconclusive"
)

func (a Assessment) String() string {
	return string(a)
}

// AssessmentValidator is a validator for the "assessment" field enum values. It is called by the builders before save.
func AssessmentValidator(a Assessment) error {
	switch a {
	case AssessmentImproved, AssessmentRegressed, AssessmentNeutral, AssessmentInconclusive:
		return nil
	default:
		return fmt.Errorf("changecheckpoint: invalid enum value for assessment field: %q", a)
	}
}

// OrderOption defines the ordering options for the ChangeCheckpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChangeID orders the results by the change_id field.
func ByChangeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeID, opts...).ToFunc()
}

// ByHorizonDays orders the results by the horizon_days field.
func ByHorizonDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHorizonDays, opts...).ToFunc()
}

// ByBeforeWindowStart orders the results by the before_window_start field.
func ByBeforeWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeforeWindowStart, opts...).ToFunc()
}

// ByBeforeWindowEnd orders the results by the before_window_end field.
func ByBeforeWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBeforeWindowEnd, opts...).ToFunc()
}

// ByAfterWindowStart orders the results by the after_window_start field.
func ByAfterWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfterWindowStart, opts...).ToFunc()
}

// ByAfterWindowEnd orders the results by the after_window_end field.
func ByAfterWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAfterWindowEnd, opts...).ToFunc()
}

// ByAssessment orders the results by the assessment field.
func ByAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessment, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}

// ByChangeField orders the results by change field.
func ByChangeField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChangeStep(), sql.OrderByField(field, opts...))
	}
}
func newChangeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangeInverseTable, DetectedChangeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChangeTable, ChangeColumn),
	)
}
