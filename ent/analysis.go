// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/page"
)

// Analysis is the model entity for the Analysis schema.
type Analysis struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PageID holds the value of the "page_id" field.
	PageID string `json:"page_id,omitempty"`
	// Duplicated from the page so child queries never join through pages
	UserID string `json:"user_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Status holds the value of the "status" field.
	Status analysis.Status `json:"status,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType analysis.TriggerType `json:"trigger_type,omitempty"`
	// Previous analysis for this page; presence makes this a chronicle (carries changes_summary)
	ParentAnalysisID *string `json:"parent_analysis_id,omitempty"`
	// DeployID holds the value of the "deploy_id" field.
	DeployID *string `json:"deploy_id,omitempty"`
	// DesktopScreenshotURL holds the value of the "desktop_screenshot_url" field.
	DesktopScreenshotURL *string `json:"desktop_screenshot_url,omitempty"`
	// MobileScreenshotURL holds the value of the "mobile_screenshot_url" field.
	MobileScreenshotURL *string `json:"mobile_screenshot_url,omitempty"`
	// Vision audit narrative
	FreeformOutput *string `json:"freeform_output,omitempty"`
	// StructuredOutput holds the value of the "structured_output" field.
	StructuredOutput map[string]interface{} `json:"structured_output,omitempty"`
	// Only populated when a parent or deploy/analytics context exists; progress section is composer-owned
	ChangesSummary map[string]interface{} `json:"changes_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Workflow re-run counter, capped at the workflow retry budget
	Attempts int `json:"attempts,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Heartbeat for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisQuery when eager-loading is set.
	Edges        AnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisEdges holds the relations/edges for other nodes in the graph.
type AnalysisEdges struct {
	// Page holds the value of the page edge.
	Page *Page `json:"page,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PageOrErr returns the Page value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisEdges) PageOrErr() (*Page, error) {
	if e.Page != nil {
		return e.Page, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: page.Label}
	}
	return nil, &NotLoadedError{edge: "page"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Analysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysis.FieldStructuredOutput, analysis.FieldChangesSummary:
			values[i] = new([]byte)
		case analysis.FieldAttempts:
			values[i] = new(sql.NullInt64)
		case analysis.FieldID, analysis.FieldPageID, analysis.FieldUserID, analysis.FieldURL, analysis.FieldStatus, analysis.FieldTriggerType, analysis.FieldParentAnalysisID, analysis.FieldDeployID, analysis.FieldDesktopScreenshotURL, analysis.FieldMobileScreenshotURL, analysis.FieldFreeformOutput, analysis.FieldErrorMessage, analysis.FieldPodID:
			values[i] = new(sql.NullString)
		case analysis.FieldLastInteractionAt, analysis.FieldCreatedAt, analysis.FieldStartedAt, analysis.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Analysis fields.
func (_m *Analysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysis.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysis.FieldPageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_id", values[i])
			} else if value.Valid {
				_m.PageID = value.String
			}
		case analysis.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case analysis.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case analysis.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analysis.Status(value.String)
			}
		case analysis.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = analysis.TriggerType(value.String)
			}
		case analysis.FieldParentAnalysisID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_analysis_id", values[i])
			} else if value.Valid {
				_m.ParentAnalysisID = new(string)
				*_m.ParentAnalysisID = value.String
			}
		case analysis.FieldDeployID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deploy_id", values[i])
			} else if value.Valid {
				_m.DeployID = new(string)
				*_m.DeployID = value.String
			}
		case analysis.FieldDesktopScreenshotURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field desktop_screenshot_url", values[i])
			} else if value.Valid {
				_m.DesktopScreenshotURL = new(string)
				*_m.DesktopScreenshotURL = value.String
			}
		case analysis.FieldMobileScreenshotURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mobile_screenshot_url", values[i])
			} else if value.Valid {
				_m.MobileScreenshotURL = new(string)
				*_m.MobileScreenshotURL = value.String
			}
		case analysis.FieldFreeformOutput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field freeform_output", values[i])
			} else if value.Valid {
				_m.FreeformOutput = new(string)
				*_m.FreeformOutput = value.String
			}
		case analysis.FieldStructuredOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field structured_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StructuredOutput); err != nil {
					return fmt.Errorf("unmarshal field structured_output: %w", err)
				}
			}
		case analysis.FieldChangesSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field changes_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChangesSummary); err != nil {
					return fmt.Errorf("unmarshal field changes_summary: %w", err)
				}
			}
		case analysis.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case analysis.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case analysis.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case analysis.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case analysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysis.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case analysis.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Analysis.
// This includes values selected through modifiers, order, etc.
func (_m *Analysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPage queries the "page" edge of the Analysis entity.
func (_m *Analysis) QueryPage() *PageQuery {
	return NewAnalysisClient(_m.config).QueryPage(_m)
}

// Update returns a builder for updating this Analysis.
// Note that you need to call Analysis.Unwrap() before calling this method if this Analysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Analysis) Update() *AnalysisUpdateOne {
	return NewAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Analysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Analysis) Unwrap() *Analysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Analysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Analysis) String() string {
	var builder strings.Builder
	builder.WriteString("Analysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("page_id=")
	builder.WriteString(_m.PageID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	if v := _m.ParentAnalysisID; v != nil {
		builder.WriteString("parent_analysis_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DeployID; v != nil {
		builder.WriteString("deploy_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DesktopScreenshotURL; v != nil {
		builder.WriteString("desktop_screenshot_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MobileScreenshotURL; v != nil {
		builder.WriteString("mobile_screenshot_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FreeformOutput; v != nil {
		builder.WriteString("freeform_output=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("structured_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.StructuredOutput))
	builder.WriteString(", ")
	builder.WriteString("changes_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangesSummary))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Analyses is a parsable slice of Analysis.
type Analyses []*Analysis
