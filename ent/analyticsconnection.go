// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/ent/user"
)

// AnalyticsConnection is the model entity for the AnalyticsConnection schema.
type AnalyticsConnection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider analyticsconnection.Provider `json:"provider,omitempty"`
	// AES-GCM sealed credential JSON
	EncryptedCredentials []byte `json:"-"`
	// Status holds the value of the "status" field.
	Status analyticsconnection.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalyticsConnectionQuery when eager-loading is set.
	Edges        AnalyticsConnectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalyticsConnectionEdges holds the relations/edges for other nodes in the graph.
type AnalyticsConnectionEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalyticsConnectionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalyticsConnection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analyticsconnection.FieldEncryptedCredentials:
			values[i] = new([]byte)
		case analyticsconnection.FieldID, analyticsconnection.FieldUserID, analyticsconnection.FieldProvider, analyticsconnection.FieldStatus:
			values[i] = new(sql.NullString)
		case analyticsconnection.FieldCreatedAt, analyticsconnection.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalyticsConnection fields.
func (_m *AnalyticsConnection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analyticsconnection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analyticsconnection.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case analyticsconnection.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = analyticsconnection.Provider(value.String)
			}
		case analyticsconnection.FieldEncryptedCredentials:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field encrypted_credentials", values[i])
			} else if value != nil {
				_m.EncryptedCredentials = *value
			}
		case analyticsconnection.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analyticsconnection.Status(value.String)
			}
		case analyticsconnection.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analyticsconnection.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalyticsConnection.
// This includes values selected through modifiers, order, etc.
func (_m *AnalyticsConnection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the AnalyticsConnection entity.
func (_m *AnalyticsConnection) QueryUser() *UserQuery {
	return NewAnalyticsConnectionClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this AnalyticsConnection.
// Note that you need to call AnalyticsConnection.Unwrap() before calling this method if this AnalyticsConnection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalyticsConnection) Update() *AnalyticsConnectionUpdateOne {
	return NewAnalyticsConnectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalyticsConnection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalyticsConnection) Unwrap() *AnalyticsConnection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalyticsConnection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalyticsConnection) String() string {
	var builder strings.Builder
	builder.WriteString("AnalyticsConnection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.Provider))
	builder.WriteString(", ")
	builder.WriteString("encrypted_credentials=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalyticsConnections is a parsable slice of AnalyticsConnection.
type AnalyticsConnections []*AnalyticsConnection
