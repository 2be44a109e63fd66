// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldTrialEndsAt holds the string denoting the trial_ends_at field in the database.
	FieldTrialEndsAt = "trial_ends_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePages holds the string denoting the pages edge name in mutations.
	EdgePages = "pages"
	// EdgeAnalyticsConnections holds the string denoting the analytics_connections edge name in mutations.
	EdgeAnalyticsConnections = "analytics_connections"
	// EdgeDeploys holds the string denoting the deploys edge name in mutations.
	EdgeDeploys = "deploys"
	// PageFieldID holds the string denoting the ID field of the Page.
	PageFieldID = "page_id"
	// AnalyticsConnectionFieldID holds the string denoting the ID field of the AnalyticsConnection.
	AnalyticsConnectionFieldID = "connection_id"
	// DeployFieldID holds the string denoting the ID field of the Deploy.
	DeployFieldID = "deploy_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// PagesTable is the table that holds the pages relation/edge.
	PagesTable = "pages"
	// PagesInverseTable is the table name for the Page entity.
	// It exists in this package in order to avoid circular dependency with the "page" package.
	PagesInverseTable = "pages"
	// PagesColumn is the table column denoting the pages relation/edge.
	PagesColumn = "user_id"
	// AnalyticsConnectionsTable is the table that holds the analytics_connections relation/edge.
	AnalyticsConnectionsTable = "analytics_connections"
	// AnalyticsConnectionsInverseTable is the table name for the AnalyticsConnection entity.
	// It exists in this package in order to avoid circular dependency with the "analyticsconnection" package.
	AnalyticsConnectionsInverseTable = "analytics_connections"
	// AnalyticsConnectionsColumn is the table column denoting the analytics_connections relation/edge.
	AnalyticsConnectionsColumn = "user_id"
	// DeploysTable is the table that holds the deploys relation/edge.
	DeploysTable = "deploys"
	// DeploysInverseTable is the table name for the Deploy entity.
	// It exists in this package in order to avoid circular dependency with the "deploy" package.
	DeploysInverseTable = "deploys"
	// DeploysColumn is the table column denoting the deploys relation/edge.
	DeploysColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldTier,
	FieldTrialEndsAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// TierFree is the default value of the Tier enum.
const DefaultTier = TierFree

// Tier values.
const (
	TierFree    Tier = "free"
	TierStarter Tier = "starter"
	TierPro     Tier = "pro"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierFree, TierStarter, TierPro:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByTrialEndsAt orders the results by the trial_ends_at field.
func ByTrialEndsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialEndsAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPagesCount orders the results by pages count.
func ByPagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPagesStep(), opts...)
	}
}

// ByPages orders the results by pages terms.
func ByPages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnalyticsConnectionsCount orders the results by analytics_connections count.
func ByAnalyticsConnectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalyticsConnectionsStep(), opts...)
	}
}

// ByAnalyticsConnections orders the results by analytics_connections terms.
func ByAnalyticsConnections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalyticsConnectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDeploysCount orders the results by deploys count.
func ByDeploysCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeploysStep(), opts...)
	}
}

// ByDeploys orders the results by deploys terms.
func ByDeploys(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeploysStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PagesInverseTable, PageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PagesTable, PagesColumn),
	)
}
func newAnalyticsConnectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalyticsConnectionsInverseTable, AnalyticsConnectionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalyticsConnectionsTable, AnalyticsConnectionsColumn),
	)
}
func newDeploysStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeploysInverseTable, DeployFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeploysTable, DeploysColumn),
	)
}
