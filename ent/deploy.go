// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/ent/user"
)

// Deploy is the model entity for the Deploy schema.
type Deploy struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// RepoID holds the value of the "repo_id" field.
	RepoID string `json:"repo_id,omitempty"`
	// CommitSha holds the value of the "commit_sha" field.
	CommitSha string `json:"commit_sha,omitempty"`
	// owner/repo
	FullName string `json:"full_name,omitempty"`
	// CommitMessage holds the value of the "commit_message" field.
	CommitMessage *string `json:"commit_message,omitempty"`
	// Used to filter which pages are affected
	ChangedFiles []string `json:"changed_files,omitempty"`
	// Status holds the value of the "status" field.
	Status deploy.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeployQuery when eager-loading is set.
	Edges        DeployEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeployEdges holds the relations/edges for other nodes in the graph.
type DeployEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeployEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Deploy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deploy.FieldChangedFiles:
			values[i] = new([]byte)
		case deploy.FieldID, deploy.FieldUserID, deploy.FieldRepoID, deploy.FieldCommitSha, deploy.FieldFullName, deploy.FieldCommitMessage, deploy.FieldStatus:
			values[i] = new(sql.NullString)
		case deploy.FieldCreatedAt, deploy.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Deploy fields.
func (_m *Deploy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deploy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deploy.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case deploy.FieldRepoID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repo_id", values[i])
			} else if value.Valid {
				_m.RepoID = value.String
			}
		case deploy.FieldCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_sha", values[i])
			} else if value.Valid {
				_m.CommitSha = value.String
			}
		case deploy.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case deploy.FieldCommitMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_message", values[i])
			} else if value.Valid {
				_m.CommitMessage = new(string)
				*_m.CommitMessage = value.String
			}
		case deploy.FieldChangedFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field changed_files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChangedFiles); err != nil {
					return fmt.Errorf("unmarshal field changed_files: %w", err)
				}
			}
		case deploy.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deploy.Status(value.String)
			}
		case deploy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deploy.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Deploy.
// This includes values selected through modifiers, order, etc.
func (_m *Deploy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Deploy entity.
func (_m *Deploy) QueryUser() *UserQuery {
	return NewDeployClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Deploy.
// Note that you need to call Deploy.Unwrap() before calling this method if this Deploy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Deploy) Update() *DeployUpdateOne {
	return NewDeployClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Deploy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Deploy) Unwrap() *Deploy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Deploy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Deploy) String() string {
	var builder strings.Builder
	builder.WriteString("Deploy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("repo_id=")
	builder.WriteString(_m.RepoID)
	builder.WriteString(", ")
	builder.WriteString("commit_sha=")
	builder.WriteString(_m.CommitSha)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	if v := _m.CommitMessage; v != nil {
		builder.WriteString("commit_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("changed_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangedFiles))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Deploys is a parsable slice of Deploy.
type Deploys []*Deploy
