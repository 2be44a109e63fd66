// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/user"
)

// Page is the model entity for the Page schema.
type Page struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// ScanFrequency holds the value of the "scan_frequency" field.
	ScanFrequency page.ScanFrequency `json:"scan_frequency,omitempty"`
	// Free-text focus used to bias the checkpoint assessor
	MetricFocus *string `json:"metric_focus,omitempty"`
	// Analysis considered canonical for quick-diff; must be a complete analysis of this page
	StableBaselineID *string `json:"stable_baseline_id,omitempty"`
	// LastScanID holds the value of the "last_scan_id" field.
	LastScanID *string `json:"last_scan_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PageQuery when eager-loading is set.
	Edges        PageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PageEdges holds the relations/edges for other nodes in the graph.
type PageEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Analyses holds the value of the analyses edge.
	Analyses []*Analysis `json:"analyses,omitempty"`
	// DetectedChanges holds the value of the detected_changes edge.
	DetectedChanges []*DetectedChange `json:"detected_changes,omitempty"`
	// TrackedSuggestions holds the value of the tracked_suggestions edge.
	TrackedSuggestions []*TrackedSuggestion `json:"tracked_suggestions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PageEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// AnalysesOrErr returns the Analyses value or an error if the edge
// was not loaded in eager-loading.
func (e PageEdges) AnalysesOrErr() ([]*Analysis, error) {
	if e.loadedTypes[1] {
		return e.Analyses, nil
	}
	return nil, &NotLoadedError{edge: "analyses"}
}

// DetectedChangesOrErr returns the DetectedChanges value or an error if the edge
// was not loaded in eager-loading.
func (e PageEdges) DetectedChangesOrErr() ([]*DetectedChange, error) {
	if e.loadedTypes[2] {
		return e.DetectedChanges, nil
	}
	return nil, &NotLoadedError{edge: "detected_changes"}
}

// TrackedSuggestionsOrErr returns the TrackedSuggestions value or an error if the edge
// was not loaded in eager-loading.
func (e PageEdges) TrackedSuggestionsOrErr() ([]*TrackedSuggestion, error) {
	if e.loadedTypes[3] {
		return e.TrackedSuggestions, nil
	}
	return nil, &NotLoadedError{edge: "tracked_suggestions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Page) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case page.FieldID, page.FieldUserID, page.FieldURL, page.FieldScanFrequency, page.FieldMetricFocus, page.FieldStableBaselineID, page.FieldLastScanID:
			values[i] = new(sql.NullString)
		case page.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Page fields.
func (_m *Page) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case page.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case page.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case page.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case page.FieldScanFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_frequency", values[i])
			} else if value.Valid {
				_m.ScanFrequency = page.ScanFrequency(value.String)
			}
		case page.FieldMetricFocus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_focus", values[i])
			} else if value.Valid {
				_m.MetricFocus = new(string)
				*_m.MetricFocus = value.String
			}
		case page.FieldStableBaselineID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stable_baseline_id", values[i])
			} else if value.Valid {
				_m.StableBaselineID = new(string)
				*_m.StableBaselineID = value.String
			}
		case page.FieldLastScanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_scan_id", values[i])
			} else if value.Valid {
				_m.LastScanID = new(string)
				*_m.LastScanID = value.String
			}
		case page.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Page.
// This includes values selected through modifiers, order, etc.
func (_m *Page) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Page entity.
func (_m *Page) QueryUser() *UserQuery {
	return NewPageClient(_m.config).QueryUser(_m)
}

// QueryAnalyses queries the "analyses" edge of the Page entity.
func (_m *Page) QueryAnalyses() *AnalysisQuery {
	return NewPageClient(_m.config).QueryAnalyses(_m)
}

// QueryDetectedChanges queries the "detected_changes" edge of the Page entity.
func (_m *Page) QueryDetectedChanges() *DetectedChangeQuery {
	return NewPageClient(_m.config).QueryDetectedChanges(_m)
}

// QueryTrackedSuggestions queries the "tracked_suggestions" edge of the Page entity.
func (_m *Page) QueryTrackedSuggestions() *TrackedSuggestionQuery {
	return NewPageClient(_m.config).QueryTrackedSuggestions(_m)
}

// Update returns a builder for updating this Page.
// Note that you need to call Page.Unwrap() before calling this method if this Page
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Page) Update() *PageUpdateOne {
	return NewPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Page entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Page) Unwrap() *Page {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Page is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Page) String() string {
	var builder strings.Builder
	builder.WriteString("Page(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("scan_frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScanFrequency))
	builder.WriteString(", ")
	if v := _m.MetricFocus; v != nil {
		builder.WriteString("metric_focus=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StableBaselineID; v != nil {
		builder.WriteString("stable_baseline_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastScanID; v != nil {
		builder.WriteString("last_scan_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Pages is a parsable slice of Page.
type Pages []*Page
