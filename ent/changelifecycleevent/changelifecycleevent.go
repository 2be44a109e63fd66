// Code generated by ent, DO NOT EDIT.

package changelifecycleevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the changelifecycleevent type in the database.
	Label = "change_lifecycle_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lifecycle_event_id"
	// FieldChangeID holds the string denoting the change_id field in the database.
	FieldChangeID = "change_id"
	// FieldFromStatus holds the string denoting the from_status field in the database.
	FieldFromStatus = "from_status"
	// FieldToStatus holds the string denoting the to_status field in the database.
	FieldToStatus = "to_status"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldActorType holds the string denoting the actor_type field in the database.
	FieldActorType = "actor_type"
	// FieldCheckpointID holds the string denoting the checkpoint_id field in the database.
	FieldCheckpointID = "checkpoint_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeChange holds the string denoting the change edge name in mutations.
	EdgeChange = "change"
	// DetectedChangeFieldID holds the string denoting the ID field of the DetectedChange.
	DetectedChangeFieldID = "change_id"
	// Table holds the table name of the changelifecycleevent in the database.
	Table = "change_lifecycle_events"
	// ChangeTable is the table that holds the change relation/edge.
	ChangeTable = "change_lifecycle_events"
	// ChangeInverseTable is the table name for the DetectedChange entity.
	// It exists in this package in order to avoid circular dependency with the "detectedchange" package.
	ChangeInverseTable = "detected_changes"
	// ChangeColumn is the table column denoting the change relation/edge.
	ChangeColumn = "change_id"
)

// Columns holds all SQL columns for changelifecycleevent fields.
var Columns = []string{
	FieldID,
	FieldChangeID,
	FieldFromStatus,
	FieldToStatus,
	FieldReason,
	FieldActorType,
	FieldCheckpointID,
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

// ActorType defines the type for the "actor_type" enum field.
type ActorType string

// ActorType values.
const (
	ActorTypeSystem ActorType = "system"
	ActorTypeUser   ActorType = "user"
)

func (at ActorType) String() string {
	return string(at)
}

// ActorTypeValidator is a validator for the "actor_type" field enum values. It is called by the builders before save.
func ActorTypeValidator(at ActorType) error {
	switch at {
	case ActorTypeSystem, ActorTypeUser:
		return nil
	default:
		return fmt.Errorf("changelifecycleevent: invalid enum value for actor_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the ChangeLifecycleEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChangeID orders the results by the change_id field.
func ByChangeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangeID, opts...).ToFunc()
}

// ByFromStatus orders the results by the from_status field.
func ByFromStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromStatus, opts...).ToFunc()
}

// ByToStatus orders the results by the to_status field.
func ByToStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToStatus, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByActorType orders the results by the actor_type field.
func ByActorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorType, opts...).ToFunc()
}

// ByCheckpointID orders the results by the checkpoint_id field.
func ByCheckpointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckpointID, opts...).ToFunc()
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
