// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/page"
)

// DetectedChange is the model entity for the DetectedChange schema.
type DetectedChange struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID string `json:"page_id,omitempty"`
	// Duplicated from the page so ownership checks never join
	UserID string `json:"user_id,omitempty"`
	// Short natural-language label, e.g. 'Hero headline'
	Element string `json:"element,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope detectedchange.Scope `json:"scope,omitempty"`
	// BeforeValue holds the value of the "before_value" field.
	BeforeValue string `json:"before_value,omitempty"`
	// AfterValue holds the value of the "after_value" field.
	AfterValue string `json:"after_value,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status detectedchange.Status `json:"status,omitempty"`
	// FirstDetectedAt holds the value of the "first_detected_at" field.
	FirstDetectedAt time.Time `json:"first_detected_at,omitempty"`
	// UTC date (YYYY-MM-DD) of first detection, backs the unique-per-day insert constraint
	DetectedOn string `json:"detected_on,omitempty"`
	// FirstDetectedAnalysisID holds the value of the "first_detected_analysis_id" field.
	FirstDetectedAnalysisID *string `json:"first_detected_analysis_id,omitempty"`
	// User-supplied expectation fed to the checkpoint assessor
	Hypothesis *string `json:"hypothesis,omitempty"`
	// Last recorded evidence snapshot
	CorrelationMetrics map[string]interface{} `json:"correlation_metrics,omitempty"`
	// CorrelationUnlockedAt holds the value of the "correlation_unlocked_at" field.
	CorrelationUnlockedAt *time.Time `json:"correlation_unlocked_at,omitempty"`
	// ObservationText holds the value of the "observation_text" field.
	ObservationText *string `json:"observation_text,omitempty"`
	// MatchConfidence holds the value of the "match_confidence" field.
	MatchConfidence *float64 `json:"match_confidence,omitempty"`
	// MatchRationale holds the value of the "match_rationale" field.
	MatchRationale *string `json:"match_rationale,omitempty"`
	// RevertedAt holds the value of the "reverted_at" field.
	RevertedAt *time.Time `json:"reverted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DetectedChangeQuery when eager-loading is set.
	Edges        DetectedChangeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DetectedChangeEdges holds the relations/edges for other nodes in the graph.
type DetectedChangeEdges struct {
	// Page holds the value of the page edge.
	Page *Page `json:"page,omitempty"`
	// Checkpoints holds the value of the checkpoints edge.
	Checkpoints []*ChangeCheckpoint `json:"checkpoints,omitempty"`
	// LifecycleEvents holds the value of the lifecycle_events edge.
	LifecycleEvents []*ChangeLifecycleEvent `json:"lifecycle_events,omitempty"`
	// OutcomeFeedback holds the value of the outcome_feedback edge.
	OutcomeFeedback []*OutcomeFeedback `json:"outcome_feedback,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DetectedChangeEdges) PageOrErr() (*Page, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: page.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// CheckpointsOrErr returns the Checkpoints value or an error if the edge
// was not loaded in eager-loading.
func (e DetectedChangeEdges) CheckpointsOrErr() ([]*ChangeCheckpoint, error) {
	if e.loadedTypes[1] {
		return e.Checkpoints, nil
	}
	return nil, &NotLoadedError{edge: "checkpoints"}
}

// LifecycleEventsOrErr returns the LifecycleEvents value or an error if the edge
// was not loaded in eager-loading.
func (e DetectedChangeEdges) LifecycleEventsOrErr() ([]*ChangeLifecycleEvent, error) {
	if e.loadedTypes[2] {
		return e.LifecycleEvents, nil
	}
	return nil, &NotLoadedError{edge: "lifecycle_events"}
}

// OutcomeFeedbackOrErr returns the OutcomeFeedback value or an error if the edge
// was not loaded in eager-loading.
func (e DetectedChangeEdges) OutcomeFeedbackOrErr() ([]*OutcomeFeedback, error) {
	if e.loadedTypes[3] {
		return e.OutcomeFeedback, nil
	}
	return nil, &NotLoadedError{edge: "outcome_feedback"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DetectedChange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case detectedchange.FieldCorrelationMetrics:
			values[i] = new([]byte)
		case detectedchange.FieldMatchConfidence:
			values[i] = new(sql.NullFloat64)
		case detectedchange.FieldID, detectedchange.FieldPageID, detectedchange.FieldUserID, detectedchange.FieldElement, detectedchange.FieldScope, detectedchange.FieldBeforeValue, detectedchange.FieldAfterValue, detectedchange.FieldDescription, detectedchange.FieldStatus, detectedchange.FieldDetectedOn, detectedchange.FieldFirstDetectedAnalysisID, detectedchange.FieldHypothesis, detectedchange.FieldObservationText, detectedchange.FieldMatchRationale:
			values[i] = new(sql.NullString)
		case detectedchange.FieldFirstDetectedAt, detectedchange.FieldCorrelationUnlockedAt, detectedchange.FieldRevertedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DetectedChange fields.
func (_m *DetectedChange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case detectedchange.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case detectedchange.FieldPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value.Valid {
				_m.PageID = value.String
			}
		case detectedchange.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case detectedchange.FieldElement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field element", values[i])
			} else if value.Valid {
				_m.Element = value.String
			}
		case detectedchange.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = detectedchange.Scope(value.String)
			}
		case detectedchange.FieldBeforeValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field before_value", values[i])
			} else if value.Valid {
				_m.BeforeValue = value.String
			}
		case detectedchange.FieldAfterValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field after_value", values[i])
			} else if value.Valid {
				_m.AfterValue = value.String
			}
		case detectedchange.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case detectedchange.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = detectedchange.Status(value.String)
			}
		case detectedchange.FieldFirstDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_detected_at", values[i])
			} else if value.Valid {
				_m.FirstDetectedAt = value.Time
			}
		case detectedchange.FieldDetectedOn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_on", values[i])
			} else if value.Valid {
				_m.DetectedOn = value.String
			}
		case detectedchange.FieldFirstDetectedAnalysisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_detected_analysis_id", values[i])
			} else if value.Valid {
				_m.FirstDetectedAnalysisID = new(string)
				*_m.FirstDetectedAnalysisID = value.String
			}
		case detectedchange.FieldHypothesis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hypothesis", values[i])
			} else if value.Valid {
				_m.Hypothesis = new(string)
				*_m.Hypothesis = value.String
			}
		case detectedchange.FieldCorrelationMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrelationMetrics); err != nil {
					return fmt.Errorf("unmarshal field correlation_metrics: %w", err)
				}
			}
		case detectedchange.FieldCorrelationUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_unlocked_at", values[i])
			} else if value.Valid {
				_m.CorrelationUnlockedAt = new(time.Time)
				*_m.CorrelationUnlockedAt = value.Time
			}
		case detectedchange.FieldObservationText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field observation_text", values[i])
			} else if value.Valid {
				_m.ObservationText = new(string)
				*_m.ObservationText = value.String
			}
		case detectedchange.FieldMatchConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field match_confidence", values[i])
			} else if value.Valid {
				_m.MatchConfidence = new(float64)
				*_m.MatchConfidence = value.Float64
			}
		case detectedchange.FieldMatchRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_rationale", values[i])
			} else if value.Valid {
				_m.MatchRationale = new(string)
				*_m.MatchRationale = value.String
			}
		case detectedchange.FieldRevertedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reverted_at", values[i])
			} else if value.Valid {
				_m.RevertedAt = new(time.Time)
				*_m.RevertedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DetectedChange.
// This includes values selected through modifiers, order, etc.
func (_m *DetectedChange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPage queries the "page" edge of the DetectedChange entity.
func (_m *DetectedChange) QueryPage() *PageQuery {
	return NewDetectedChangeClient(_m.config).QueryPage(_m)
}

// QueryCheckpoints queries the "checkpoints" edge of the DetectedChange entity.
func (_m *DetectedChange) QueryCheckpoints() *ChangeCheckpointQuery {
	return NewDetectedChangeClient(_m.config).QueryCheckpoints(_m)
}

// QueryLifecycleEvents queries the "lifecycle_events" edge of the DetectedChange entity.
func (_m *DetectedChange) QueryLifecycleEvents() *ChangeLifecycleEventQuery {
	return NewDetectedChangeClient(_m.config).QueryLifecycleEvents(_m)
}

// QueryOutcomeFeedback queries the "outcome_feedback" edge of the DetectedChange entity.
func (_m *DetectedChange) QueryOutcomeFeedback() *OutcomeFeedbackQuery {
	return NewDetectedChangeClient(_m.config).QueryOutcomeFeedback(_m)
}

// Update returns a builder for updating this DetectedChange.
// Note that you need to call DetectedChange.Unwrap() before calling this method if this DetectedChange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DetectedChange) Update() *DetectedChangeUpdateOne {
	return NewDetectedChangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DetectedChange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DetectedChange) Unwrap() *DetectedChange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DetectedChange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DetectedChange) String() string {
	var builder strings.Builder
	builder.WriteString("DetectedChange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(_m.PageID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("element=")
	builder.WriteString(_m.Element)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scope))
	builder.WriteString(", ")
	builder.WriteString("before_value=")
	builder.WriteString(_m.BeforeValue)
	builder.WriteString(", ")
	builder.WriteString("after_value=")
	builder.WriteString(_m.AfterValue)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("first_detected_at=")
	builder.WriteString(_m.FirstDetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("detected_on=")
	builder.WriteString(_m.DetectedOn)
	builder.WriteString(", ")
	if v := _m.FirstDetectedAnalysisID; v != nil {
		builder.WriteString("first_detected_analysis_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Hypothesis; v != nil {
		builder.WriteString("hypothesis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("correlation_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrelationMetrics))
	builder.WriteString(", ")
	if v := _m.CorrelationUnlockedAt; v != nil {
		builder.WriteString("correlation_unlocked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ObservationText; v != nil {
		builder.WriteString("observation_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MatchConfidence; v != nil {
		builder.WriteString("match_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MatchRationale; v != nil {
		builder.WriteString("match_rationale=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RevertedAt; v != nil {
		builder.WriteString("reverted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DetectedChanges is a parsable slice of DetectedChange.
type DetectedChanges []*DetectedChange
