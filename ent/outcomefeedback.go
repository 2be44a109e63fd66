// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
)

// OutcomeFeedback is the model entity for the OutcomeFeedback schema.
type OutcomeFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChangeID holds the value of the "change_id" field.
	ChangeID string `json:"change_id,omitempty"`
	// CheckpointID holds the value of the "checkpoint_id" field.
	CheckpointID string `json:"checkpoint_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// FeedbackType holds the value of the "feedback_type" field.
	FeedbackType outcomefeedback.FeedbackType `json:"feedback_type,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment *string `json:"comment,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OutcomeFeedbackQuery when eager-loading is set.
	Edges        OutcomeFeedbackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OutcomeFeedbackEdges holds the relations/edges for other nodes in the graph.
type OutcomeFeedbackEdges struct {
	// Change holds the value of the change edge.
	Change *DetectedChange `json:"change,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChangeOrErr returns the Change value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OutcomeFeedbackEdges) ChangeOrErr() (*DetectedChange, error) {
	if e.Change != nil {
		return e.Change, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: detectedchange.Label}
	}
	return nil, &NotLoadedError{edge: "change"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutcomeFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outcomefeedback.FieldID, outcomefeedback.FieldChangeID, outcomefeedback.FieldCheckpointID, outcomefeedback.FieldUserID, outcomefeedback.FieldFeedbackType, outcomefeedback.FieldComment:
			values[i] = new(sql.NullString)
		case outcomefeedback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutcomeFeedback fields.
func (_m *OutcomeFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outcomefeedback.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outcomefeedback.FieldChangeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_id", values[i])
			} else if value.Valid {
				_m.ChangeID = value.String
			}
		case outcomefeedback.FieldCheckpointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checkpoint_id", values[i])
			} else if value.Valid {
				_m.CheckpointID = value.String
			}
		case outcomefeedback.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case outcomefeedback.FieldFeedbackType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_type", values[i])
			} else if value.Valid {
				_m.FeedbackType = outcomefeedback.FeedbackType(value.String)
			}
		case outcomefeedback.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = new(string)
				*_m.Comment = value.String
			}
		case outcomefeedback.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the OutcomeFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *OutcomeFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChange queries the "change" edge of the OutcomeFeedback entity.
func (_m *OutcomeFeedback) QueryChange() *DetectedChangeQuery {
	return NewOutcomeFeedbackClient(_m.config).QueryChange(_m)
}

// Update returns a builder for updating this OutcomeFeedback.
// Note that you need to call OutcomeFeedback.Unwrap() before calling this method if this OutcomeFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutcomeFeedback) Update() *OutcomeFeedbackUpdateOne {
	return NewOutcomeFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutcomeFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutcomeFeedback) Unwrap() *OutcomeFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutcomeFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutcomeFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("OutcomeFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("change_id=")
	builder.WriteString(_m.ChangeID)
	builder.WriteString(", ")
	builder.WriteString("checkpoint_id=")
	builder.WriteString(_m.CheckpointID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("feedback_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackType))
	builder.WriteString(", ")
	if v := _m.Comment; v != nil {
		builder.WriteString("comment=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OutcomeFeedbacks is a parsable slice of OutcomeFeedback.
type OutcomeFeedbacks []*OutcomeFeedback
