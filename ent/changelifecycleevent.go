// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
)

// ChangeLifecycleEvent is the model entity for the ChangeLifecycleEvent schema.
type ChangeLifecycleEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChangeID holds the value of the "change_id" field.
	ChangeID string `json:"change_id,omitempty"`
	// nil for the initial insert into watching
	FromStatus *string `json:"from_status,omitempty"`
	// ToStatus holds the value of the "to_status" field.
	ToStatus string `json:"to_status,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// ActorType holds the value of the "actor_type" field.
	ActorType changelifecycleevent.ActorType `json:"actor_type,omitempty"`
	// CheckpointID holds the value of the "checkpoint_id" field.
	CheckpointID *string `json:"checkpoint_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChangeLifecycleEventQuery when eager-loading is set.
	Edges        ChangeLifecycleEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChangeLifecycleEventEdges holds the relations/edges for other nodes in the graph.
type ChangeLifecycleEventEdges struct {
	// Change holds the value of the change edge.
	Change *DetectedChange `json:"change,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChangeOrErr returns the Change value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChangeLifecycleEventEdges) ChangeOrErr() (*DetectedChange, error) {
	if e.Change != nil {
		return e.Change, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: detectedchange.Label}
	}
	return nil, &NotLoadedError{edge: "change"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChangeLifecycleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case changelifecycleevent.FieldID, changelifecycleevent.FieldChangeID, changelifecycleevent.FieldFromStatus, changelifecycleevent.FieldToStatus, changelifecycleevent.FieldReason, changelifecycleevent.FieldActorType, changelifecycleevent.FieldCheckpointID:
			values[i] = new(sql.NullString)
		case changelifecycleevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChangeLifecycleEvent fields.
func (_m *ChangeLifecycleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case changelifecycleevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case changelifecycleevent.FieldChangeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_id", values[i])
			} else if value.Valid {
				_m.ChangeID = value.String
			}
		case changelifecycleevent.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				_m.FromStatus = new(string)
				*_m.FromStatus = value.String
			}
		case changelifecycleevent.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				_m.ToStatus = value.String
			}
		case changelifecycleevent.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case changelifecycleevent.FieldActorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_type", values[i])
			} else if value.Valid {
				_m.ActorType = changelifecycleevent.ActorType(value.String)
			}
		case changelifecycleevent.FieldCheckpointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_id", values[i])
			} else if value.Valid {
				_m.CheckpointID = new(string)
				*_m.CheckpointID = value.String
			}
		case changelifecycleevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChangeLifecycleEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ChangeLifecycleEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChange queries the "change" edge of the ChangeLifecycleEvent entity.
func (_m *ChangeLifecycleEvent) QueryChange() *DetectedChangeQuery {
	return NewChangeLifecycleEventClient(_m.config).QueryChange(_m)
}

// Update returns a builder for updating this ChangeLifecycleEvent.
// Note that you need to call ChangeLifecycleEvent.Unwrap() before calling this method if this ChangeLifecycleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChangeLifecycleEvent) Update() *ChangeLifecycleEventUpdateOne {
	return NewChangeLifecycleEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChangeLifecycleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChangeLifecycleEvent) Unwrap() *ChangeLifecycleEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChangeLifecycleEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChangeLifecycleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ChangeLifecycleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("change_id=")
	builder.WriteString(_m.ChangeID)
	builder.WriteString(", ")
	if v := _m.FromStatus; v != nil {
		builder.WriteString("from_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(_m.ToStatus)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("actor_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActorType))
	builder.WriteString(", ")
	if v := _m.CheckpointID; v != nil {
		builder.WriteString("checkpoint_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChangeLifecycleEvents is a parsable slice of ChangeLifecycleEvent.
type ChangeLifecycleEvents []*ChangeLifecycleEvent
