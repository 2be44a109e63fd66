// Code generated by ent, DO NOT EDIT.

package trackedsuggestion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trackedsuggestion type in the database.
	Label = "tracked_suggestion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "suggestion_id"
	// FieldPageID holds the string denoting the page_id field in the database.
	FieldPageID = "page_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldElement holds the string denoting the element field in the database.
	FieldElement = "element"
	// FieldSuggestedFix holds the string denoting the suggested_fix field in the database.
	FieldSuggestedFix = "suggested_fix"
	// FieldImpact holds the string denoting the impact field in the database.
	FieldImpact = "impact"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTimesSuggested holds the string denoting the times_suggested field in the database.
	FieldTimesSuggested = "times_suggested"
	// FieldDedupKey holds the string denoting the dedup_key field in the database.
	FieldDedupKey = "dedup_key"
	// FieldFirstSuggestedAt holds the string denoting the first_suggested_at field in the database.
	FieldFirstSuggestedAt = "first_suggested_at"
	// FieldLastSuggestedAt holds the string denoting the last_suggested_at field in the database.
	FieldLastSuggestedAt = "last_suggested_at"
	// EdgePage holds the string denoting the page edge name in mutations.
	EdgePage = "page"
	// PageFieldID holds the string denoting the ID field of the Page.
	PageFieldID = "page_id"
	// Table holds the table name of the trackedsuggestion in the database.
	Table = "tracked_suggestions"
	// PageTable is the table that holds the page relation/edge.
	PageTable = "tracked_suggestions"
	// PageInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PageInverseTable = "pages"
	// PageColumn is the table column denoting the page relation/edge.
	PageColumn = "page_id"
)

// Columns holds all SQL columns for trackedsuggestion fields.
var Columns = []string{
	FieldID,
	FieldPageID,
	FieldUserID,
	FieldTitle,
	FieldElement,
	FieldSuggestedFix,
	FieldImpact,
	FieldStatus,
	FieldTimesSuggested,
	FieldDedupKey,
	FieldFirstSuggestedAt,
	FieldLastSuggestedAt,
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
	// DefaultTimesSuggested holds the default value on creation for the "times_suggested" field.
	DefaultTimesSuggested int
	// DefaultFirstSuggestedAt holds the default value on creation for the "first_suggested_at" field.
	DefaultFirstSuggestedAt func() time.Time
	// DefaultLastSuggestedAt holds the default value on creation for the "last_suggested_at" field.
	DefaultLastSuggestedAt func() time.Time
)

// Impact defines the type for the "impact" enum field.
type Impact string

// Impact values.
const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

func (i Impact) String() string {
	return string(i)
}

// ImpactValidator is a validator for the "impact" field enum values. It is called by the builders before save.
func ImpactValidator(i Impact) error {
	switch i {
	case ImpactHigh, ImpactMedium, ImpactLow:
		return nil
	default:
		return fmt.Errorf("trackedsuggestion: invalid enum value for impact field: %q", i)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen      Status = "open"
	StatusAddressed Status = "addressed"
	StatusDismissed Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusAddressed, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("trackedsuggestion: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TrackedSuggestion queries.
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

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByElement orders the results by the element field.
func ByElement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElement, opts...).ToFunc()
}

// BySuggestedFix orders the results by the suggested_fix field.
func BySuggestedFix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedFix, opts...).ToFunc()
}

// ByImpact orders the results by the impact field.
func ByImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpact, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTimesSuggested orders the results by the times_suggested field.
func ByTimesSuggested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesSuggested, opts...).ToFunc()
}

// ByDedupKey orders the results by the dedup_key field.
func ByDedupKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupKey, opts...).ToFunc()
}

// ByFirstSuggestedAt orders the results by the first_suggested_at field.
func ByFirstSuggestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSuggestedAt, opts...).ToFunc()
}

// ByLastSuggestedAt orders the results by the last_suggested_at field.
func ByLastSuggestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSuggestedAt, opts...).ToFunc()
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
