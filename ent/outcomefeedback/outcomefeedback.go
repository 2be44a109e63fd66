// Code generated by ent, DO NOT EDIT.

package outcomefeedback

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the outcomefeedback type in the database.
	Label = "outcome_feedback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "feedback_id"
	// FieldChangeID holds the string denoting the change_id field in the database.
	FieldChangeID = "change_id"
	// FieldCheckpointID holds the string denoting the checkpoint_id field in the database.
	FieldCheckpointID = "checkpoint_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFeedbackType holds the string denoting the feedback_type field in the database.
	FieldFeedbackType = "feedback_type"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeChange holds the string denoting the change edge name in mutations.
	EdgeChange = "change"
	// DetectedChangeFieldID holds the string denoting the ID field of the DetectedChange.
	DetectedChangeFieldID = "change_id"
	// Table holds the table name of the outcomefeedback in the database.
	Table = "outcome_feedbacks"
	// ChangeTable is the table that holds the change relation/edge.
	ChangeTable = "outcome_feedbacks"
	// ChangeInverseTable is the table name for the DetectedChange entity.
	// It exists in this package in order to avoid circular dependency with the "detectedchange" package.
	ChangeInverseTable = "detected_changes"
	// ChangeColumn is the table column denoting the change relation/edge.
	ChangeColumn = "change_id"
)

// Columns holds all SQL columns for outcomefeedback fields.
var Columns = []string{
	FieldID,
	FieldChangeID,
	FieldCheckpointID,
	FieldUserID,
	FieldFeedbackType,
	FieldComment,
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

// FeedbackType defines the type for the "feedback_type" enum field.
type FeedbackType string

// FeedbackType values.
const (
	FeedbackTypeAccurate   FeedbackType = "accurate"
	FeedbackTypeInaccurate FeedbackType = "inaccurate"
)

func (ft FeedbackType) String() string {
	return string(ft)
}

// FeedbackTypeValidator is a validator for the "feedback_type" field enum values. It is called by the builders before save.
func FeedbackTypeValidator(ft FeedbackType) error {
	switch ft {
	case FeedbackTypeAccurate, FeedbackTypeInaccurate:
		return nil
	default:
		return fmt.Errorf("outcomefeedback: invalid enum value for feedback_type field: %q", ft)
	}
}

// OrderOption defines the ordering options for the OutcomeFeedback queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChangeID orders the results by the change_id field.
func ByChangeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeID, opts...).ToFunc()
}

// ByCheckpointID orders the results by the checkpoint_id field.
func ByCheckpointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFeedbackType orders the results by the feedback_type field.
func ByFeedbackType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackType, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
