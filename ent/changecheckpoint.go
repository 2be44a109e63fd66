// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/detectedchange"
)

// ChangeCheckpoint is the model entity for the ChangeCheckpoint schema.
type ChangeCheckpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChangeID holds the value of the "change_id" field.
	ChangeID string `json:"change_id,omitempty"`
	// One of 7, 14, 30, 60, 90
	HorizonDays int `json:"horizon_days,omitempty"`
	// BeforeWindowStart holds the value of the "before_window_start" field.
	BeforeWindowStart time.Time `json:"before_window_start,omitempty"`
	// BeforeWindowEnd holds the value of the "before_window_end" field.
	BeforeWindowEnd time.Time `json:"before_window_end,omitempty"`
	// AfterWindowStart holds the value of the "after_window_start" field.
	AfterWindowStart time.Time `json:"after_window_start,omitempty"`
	// AfterWindowEnd holds the value of the "after_window_end" field.
	AfterWindowEnd time.Time `json:"after_window_end,omitempty"`
	// Full metrics envelope used for the assessment
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Assessment holds the value of the "assessment" field.
	Assessment changecheckpoint.Assessment `json:"assessment,omitempty"`
	// 0 when no metrics, 0.3 for deterministic fallback, (0,1] from the assessor
	Confidence *float64 `json:"confidence,omitempty"`
	// Every row carries an explanation, synthesized on fallback
	Reasoning string `json:"reasoning,omitempty"`
	// DataSources holds the value of the "data_sources" field.
	DataSources []string `json:"data_sources,omitempty"`
	// posthog, ga4, supabase, or none; never a provider that failed init
	Provider string `json:"provider,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChangeCheckpointQuery when eager-loading is set.
	Edges        ChangeCheckpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChangeCheckpointEdges holds the relations/edges for other nodes in the graph.
type ChangeCheckpointEdges struct {
	// Change holds the value of the change edge.
	Change *DetectedChange `json:"change,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChangeOrErr returns the Change value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChangeCheckpointEdges) ChangeOrErr() (*DetectedChange, error) {
	if e.Change != nil {
		return e.Change, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: detectedchange.Label}
	}
	return nil, &NotLoadedError{edge: "change"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChangeCheckpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case changecheckpoint.FieldMetrics, changecheckpoint.FieldDataSources:
			values[i] = new([]byte)
		case changecheckpoint.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case changecheckpoint.FieldHorizonDays:
			values[i] = new(sql.NullInt64)
		case changecheckpoint.FieldID, changecheckpoint.FieldChangeID, changecheckpoint.FieldAssessment, changecheckpoint.FieldReasoning, changecheckpoint.FieldProvider:
			values[i] = new(sql.NullString)
		case changecheckpoint.FieldBeforeWindowStart, changecheckpoint.FieldBeforeWindowEnd, changecheckpoint.FieldAfterWindowStart, changecheckpoint.FieldAfterWindowEnd, changecheckpoint.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChangeCheckpoint fields.
func (_m *ChangeCheckpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case changecheckpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case changecheckpoint.FieldChangeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_id", values[i])
			} else if value.Valid {
				_m.ChangeID = value.String
			}
		case changecheckpoint.FieldHorizonDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field horizon_days", values[i])
			} else if value.Valid {
				_m.HorizonDays = int(value.Int64)
			}
		case changecheckpoint.FieldBeforeWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field before_window_start", values[i])
			} else if value.Valid {
				_m.BeforeWindowStart = value.Time
			}
		case changecheckpoint.FieldBeforeWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field before_window_end", values[i])
			} else if value.Valid {
				_m.BeforeWindowEnd = value.Time
			}
		case changecheckpoint.FieldAfterWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field after_window_start", values[i])
			} else if value.Valid {
				_m.AfterWindowStart = value.Time
			}
		case changecheckpoint.FieldAfterWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field after_window_end", values[i])
			} else if value.Valid {
				_m.AfterWindowEnd = value.Time
			}
		case changecheckpoint.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case changecheckpoint.FieldAssessment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment", values[i])
			} else if value.Valid {
				_m.Assessment = changecheckpoint.Assessment(value.String)
			}
		case changecheckpoint.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case changecheckpoint.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case changecheckpoint.FieldDataSources:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data_sources", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DataSources); err != nil {
					return fmt.Errorf("unmarshal field data_sources: %w", err)
				}
			}
		case changecheckpoint.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case changecheckpoint.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChangeCheckpoint.
// This includes values selected through modifiers, order, etc.
func (_m *ChangeCheckpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChange queries the "change" edge of the ChangeCheckpoint entity.
func (_m *ChangeCheckpoint) QueryChange() *DetectedChangeQuery {
	return NewChangeCheckpointClient(_m.config).QueryChange(_m)
}

// Update returns a builder for updating this ChangeCheckpoint.
// Note that you need to call ChangeCheckpoint.Unwrap() before calling this method if this ChangeCheckpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChangeCheckpoint) Update() *ChangeCheckpointUpdateOne {
	return NewChangeCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChangeCheckpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChangeCheckpoint) Unwrap() *ChangeCheckpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChangeCheckpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChangeCheckpoint) String() string {
	var builder strings.Builder
	builder.WriteString("ChangeCheckpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("change_id=")
	builder.WriteString(_m.ChangeID)
	builder.WriteString(", ")
	builder.WriteString("horizon_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.HorizonDays))
	builder.WriteString(", ")
	builder.WriteString("before_window_start=")
	builder.WriteString(_m.BeforeWindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("before_window_end=")
	builder.WriteString(_m.BeforeWindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("after_window_start=")
	builder.WriteString(_m.AfterWindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("after_window_end=")
	builder.WriteString(_m.AfterWindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("assessment=")
	builder.WriteString(fmt.Sprintf("%v", _m.Assessment))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("data_sources=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataSources))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChangeCheckpoints is a parsable slice of ChangeCheckpoint.
type ChangeCheckpoints []*ChangeCheckpoint
