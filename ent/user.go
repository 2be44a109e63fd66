// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/loupe-hq/loupe/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier user.Tier `json:"tier,omitempty"`
	// Trial window end; trial users get starter features until this passes
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Pages holds the value of the pages edge.
	Pages []*Page `json:"pages,omitempty"`
	// AnalyticsConnections holds the value of the analytics_connections edge.
	AnalyticsConnections []*AnalyticsConnection `json:"analytics_connections,omitempty"`
	// Deploys holds the value of the deploys edge.
	Deploys []*Deploy `json:"deploys,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PagesOrErr returns the Pages value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) PagesOrErr() ([]*Page, error) {
	if e.loadedTypes[0] {
		return e.Pages, nil
	}
	return nil, &NotLoadedError{edge: "pages"}
}

// AnalyticsConnectionsOrErr returns the AnalyticsConnections value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AnalyticsConnectionsOrErr() ([]*AnalyticsConnection, error) {
	if e.loadedTypes[1] {
		return e.AnalyticsConnections, nil
	}
	return nil, &NotLoadedError{edge: "analytics_connections"}
}

// DeploysOrErr returns the Deploys value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) DeploysOrErr() ([]*Deploy, error) {
	if e.loadedTypes[2] {
		return e.Deploys, nil
	}
	return nil, &NotLoadedError{edge: "deploys"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldID, user.FieldEmail, user.FieldTier:
			values[i] = new(sql.NullString)
		case user.FieldTrialEndsAt, user.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = user.Tier(value.String)
			}
		case user.FieldTrialEndsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trial_ends_at", values[i])
			} else if value.Valid {
				_m.TrialEndsAt = new(time.Time)
				*_m.TrialEndsAt = value.Time
			}
		case user.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPages queries the "pages" edge of the User entity.
func (_m *User) QueryPages() *PageQuery {
	return NewUserClient(_m.config).QueryPages(_m)
}

// QueryAnalyticsConnections queries the "analytics_connections" edge of the User entity.
func (_m *User) QueryAnalyticsConnections() *AnalyticsConnectionQuery {
	return NewUserClient(_m.config).QueryAnalyticsConnections(_m)
}

// QueryDeploys queries the "deploys" edge of the User entity.
func (_m *User) QueryDeploys() *DeployQuery {
	return NewUserClient(_m.config).QueryDeploys(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	if v := _m.TrialEndsAt; v != nil {
		builder.WriteString("trial_ends_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
