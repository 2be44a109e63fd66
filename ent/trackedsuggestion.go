// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
)

// TrackedSuggestion is the model entity for the TrackedSuggestion schema.
type TrackedSuggestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID string `json:"page_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Element holds the value of the "element" field.
	Element string `json:"element,omitempty"`
	// SuggestedFix holds the value of the "suggested_fix" field.
	SuggestedFix string `json:"suggested_fix,omitempty"`
	// Impact holds the value of the "impact" field.
	Impact trackedsuggestion.Impact `json:"impact,omitempty"`
	// Status holds the value of the "status" field.
	Status trackedsuggestion.Status `json:"status,omitempty"`
	// TimesSuggested holds the value of the "times_suggested" field.
	TimesSuggested int `json:"times_suggested,omitempty"`
	// Normalized (element, title) key used for the per-scan upsert
	DedupKey string `json:"dedup_key,omitempty"`
	// FirstSuggestedAt holds the value of the "first_suggested_at" field.
	FirstSuggestedAt time.Time `json:"first_suggested_at,omitempty"`
	// LastSuggestedAt holds the value of the "last_suggested_at" field.
	LastSuggestedAt time.Time `json:"last_suggested_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrackedSuggestionQuery when eager-loading is set.
	Edges        TrackedSuggestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrackedSuggestionEdges holds the relations/edges for other nodes in the graph.
type TrackedSuggestionEdges struct {
	// Page holds the value of the page edge.
	Page *Page `json:"page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrackedSuggestionEdges) PageOrErr() (*Page, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: page.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrackedSuggestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trackedsuggestion.FieldTimesSuggested:
			values[i] = new(sql.NullInt64)
		case trackedsuggestion.FieldID, trackedsuggestion.FieldPageID, trackedsuggestion.FieldUserID, trackedsuggestion.FieldTitle, trackedsuggestion.FieldElement, trackedsuggestion.FieldSuggestedFix, trackedsuggestion.FieldImpact, trackedsuggestion.FieldStatus, trackedsuggestion.FieldDedupKey:
			values[i] = new(sql.NullString)
		case trackedsuggestion.FieldFirstSuggestedAt, trackedsuggestion.FieldLastSuggestedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrackedSuggestion fields.
func (_m *TrackedSuggestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trackedsuggestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trackedsuggestion.FieldPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value.Valid {
				_m.PageID = value.String
			}
		case trackedsuggestion.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case trackedsuggestion.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case trackedsuggestion.FieldElement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element", values[i])
			} else if value.Valid {
				_m.Element = value.String
			}
		case trackedsuggestion.FieldSuggestedFix:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_fix", values[i])
			} else if value.Valid {
				_m.SuggestedFix = value.String
			}
		case trackedsuggestion.FieldImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field impact", values[i])
			} else if value.Valid {
				_m.Impact = trackedsuggestion.Impact(value.String)
			}
		case trackedsuggestion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = trackedsuggestion.Status(value.String)
			}
		case trackedsuggestion.FieldTimesSuggested:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_suggested", values[i])
			} else if value.Valid {
				_m.TimesSuggested = int(value.Int64)
			}
		case trackedsuggestion.FieldDedupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_key", values[i])
			} else if value.Valid {
				_m.DedupKey = value.String
			}
		case trackedsuggestion.FieldFirstSuggestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_suggested_at", values[i])
			} else if value.Valid {
				_m.FirstSuggestedAt = value.Time
			}
		case trackedsuggestion.FieldLastSuggestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_suggested_at", values[i])
			} else if value.Valid {
				_m.LastSuggestedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrackedSuggestion.
// This includes values selected through modifiers, order, etc.
func (_m *TrackedSuggestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPage queries the "page" edge of the TrackedSuggestion entity.
func (_m *TrackedSuggestion) QueryPage() *PageQuery {
	return NewTrackedSuggestionClient(_m.config).QueryPage(_m)
}

// Update returns a builder for updating this TrackedSuggestion.
// Note that you need to call TrackedSuggestion.Unwrap() before calling this method if this TrackedSuggestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrackedSuggestion) Update() *TrackedSuggestionUpdateOne {
	return NewTrackedSuggestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrackedSuggestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrackedSuggestion) Unwrap() *TrackedSuggestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrackedSuggestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrackedSuggestion) String() string {
	var builder strings.Builder
	builder.WriteString("TrackedSuggestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(_m.PageID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("element=")
	builder.WriteString(_m.Element)
	builder.WriteString(", ")
	builder.WriteString("suggested_fix=")
	builder.WriteString(_m.SuggestedFix)
	builder.WriteString(", ")
	builder.WriteString("impact=")
	builder.WriteString(fmt.Sprintf("%v", _m.Impact))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("times_suggested=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesSuggested))
	builder.WriteString(", ")
	builder.WriteString("dedup_key=")
	builder.WriteString(_m.DedupKey)
	builder.WriteString(", ")
	builder.WriteString("first_suggested_at=")
	builder.WriteString(_m.FirstSuggestedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_suggested_at=")
	builder.WriteString(_m.LastSuggestedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrackedSuggestions is a parsable slice of TrackedSuggestion.
type TrackedSuggestions []*TrackedSuggestion
