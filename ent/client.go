// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/loupe-hq/loupe/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
	"github.com/loupe-hq/loupe/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Analysis is the client for interacting with the Analysis builders.
	Analysis *AnalysisClient
	// AnalyticsConnection is the client for interacting with the AnalyticsConnection builders.
	AnalyticsConnection *AnalyticsConnectionClient
	// ChangeCheckpoint is the client for interacting with the ChangeCheckpoint builders.
	ChangeCheckpoint *ChangeCheckpointClient
	// ChangeLifecycleEvent is the client for interacting with the ChangeLifecycleEvent builders.
	ChangeLifecycleEvent *ChangeLifecycleEventClient
	// Deploy is the client for interacting with the Deploy builders.
	Deploy *DeployClient
	// DetectedChange is the client for interacting with the DetectedChange builders.
	DetectedChange *DetectedChangeClient
	// OutcomeFeedback is the client for interacting with the OutcomeFeedback builders.
	OutcomeFeedback *OutcomeFeedbackClient
	// Page is the client for interacting with the Page builders.
	Page *PageClient
	// TrackedSuggestion is the client for interacting with the TrackedSuggestion builders.
	TrackedSuggestion *TrackedSuggestionClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Analysis = NewAnalysisClient(c.config)
	c.AnalyticsConnection = NewAnalyticsConnectionClient(c.config)
	c.ChangeCheckpoint = NewChangeCheckpointClient(c.config)
	c.ChangeLifecycleEvent = NewChangeLifecycleEventClient(c.config)
	c.Deploy = NewDeployClient(c.config)
	c.DetectedChange = NewDetectedChangeClient(c.config)
	c.OutcomeFeedback = NewOutcomeFeedbackClient(c.config)
	c.Page = NewPageClient(c.config)
	c.TrackedSuggestion = NewTrackedSuggestionClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Analysis:             NewAnalysisClient(cfg),
		AnalyticsConnection:  NewAnalyticsConnectionClient(cfg),
		ChangeCheckpoint:     NewChangeCheckpointClient(cfg),
		ChangeLifecycleEvent: NewChangeLifecycleEventClient(cfg),
		Deploy:               NewDeployClient(cfg),
		DetectedChange:       NewDetectedChangeClient(cfg),
		OutcomeFeedback:      NewOutcomeFeedbackClient(cfg),
		Page:                 NewPageClient(cfg),
		TrackedSuggestion:    NewTrackedSuggestionClient(cfg),
		User:                 NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		Analysis:             NewAnalysisClient(cfg),
		AnalyticsConnection:  NewAnalyticsConnectionClient(cfg),
		ChangeCheckpoint:     NewChangeCheckpointClient(cfg),
		ChangeLifecycleEvent: NewChangeLifecycleEventClient(cfg),
		Deploy:               NewDeployClient(cfg),
		DetectedChange:       NewDetectedChangeClient(cfg),
		OutcomeFeedback:      NewOutcomeFeedbackClient(cfg),
		Page:                 NewPageClient(cfg),
		TrackedSuggestion:    NewTrackedSuggestionClient(cfg),
		User:                 NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Analysis.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Analysis, c.AnalyticsConnection, c.ChangeCheckpoint, c.ChangeLifecycleEvent,
		c.Deploy, c.DetectedChange, c.OutcomeFeedback, c.Page, c.TrackedSuggestion,
		c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Analysis, c.AnalyticsConnection, c.ChangeCheckpoint, c.ChangeLifecycleEvent,
		c.Deploy, c.DetectedChange, c.OutcomeFeedback, c.Page, c.TrackedSuggestion,
		c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisMutation:
		return c.Analysis.mutate(ctx, m)
	case *AnalyticsConnectionMutation:
		return c.AnalyticsConnection.mutate(ctx, m)
	case *ChangeCheckpointMutation:
		return c.ChangeCheckpoint.mutate(ctx, m)
	case *ChangeLifecycleEventMutation:
		return c.ChangeLifecycleEvent.mutate(ctx, m)
	case *DeployMutation:
		return c.Deploy.mutate(ctx, m)
	case *DetectedChangeMutation:
		return c.DetectedChange.mutate(ctx, m)
	case *OutcomeFeedbackMutation:
		return c.OutcomeFeedback.mutate(ctx, m)
	case *PageMutation:
		return c.Page.mutate(ctx, m)
	case *TrackedSuggestionMutation:
		return c.TrackedSuggestion.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisClient is a client for the Analysis schema.
type AnalysisClient struct {
	config
}

// NewAnalysisClient returns a client for the Analysis from the given config.
func NewAnalysisClient(c config) *AnalysisClient {
	return &AnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysis.Hooks(f(g(h())))`.
func (c *AnalysisClient) Use(hooks ...Hook) {
	c.hooks.Analysis = append(c.hooks.Analysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysis.Intercept(f(g(h())))`.
func (c *AnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.Analysis = append(c.inters.Analysis, interceptors...)
}

// Create returns a builder for creating a Analysis entity.
func (c *AnalysisClient) Create() *AnalysisCreate {
	mutation := newAnalysisMutation(c.config, OpCreate)
	return &AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Analysis entities.
func (c *AnalysisClient) CreateBulk(builders ...*AnalysisCreate) *AnalysisCreateBulk {
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisClient) MapCreateBulk(slice any, setFunc func(*AnalysisCreate, int)) *AnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisCreateBulk{err: fmt.Errorf("calling to AnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Analysis.
func (c *AnalysisClient) Update() *AnalysisUpdate {
	mutation := newAnalysisMutation(c.config, OpUpdate)
	return &AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisClient) UpdateOne(_m *Analysis) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysis(_m))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisClient) UpdateOneID(id string) *AnalysisUpdateOne {
	mutation := newAnalysisMutation(c.config, OpUpdateOne, withAnalysisID(id))
	return &AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Analysis.
func (c *AnalysisClient) Delete() *AnalysisDelete {
	mutation := newAnalysisMutation(c.config, OpDelete)
	return &AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisClient) DeleteOne(_m *Analysis) *AnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisClient) DeleteOneID(id string) *AnalysisDeleteOne {
	builder := c.Delete().Where(analysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisDeleteOne{builder}
}

// Query returns a query builder for Analysis.
func (c *AnalysisClient) Query() *AnalysisQuery {
	return &AnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a Analysis entity by its id.
func (c *AnalysisClient) Get(ctx context.Context, id string) (*Analysis, error) {
	return c.Query().Where(analysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisClient) GetX(ctx context.Context, id string) *Analysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPage queries the page edge of a Analysis.
func (c *AnalysisClient) QueryPage(_m *Analysis) *PageQuery {
	query := (&PageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysis.Table, analysis.FieldID, id),
			sqlgraph.To(page.Table, page.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analysis.PageTable, analysis.PageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisClient) Hooks() []Hook {
	return c.hooks.Analysis
}

// Interceptors returns the client interceptors.
func (c *AnalysisClient) Interceptors() []Interceptor {
	return c.inters.Analysis
}

func (c *AnalysisClient) mutate(ctx context.Context, m *AnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Analysis mutation op: %q", m.Op())
	}
}

// AnalyticsConnectionClient is a client for the AnalyticsConnection schema.
type AnalyticsConnectionClient struct {
	config
}

// NewAnalyticsConnectionClient returns a client for the AnalyticsConnection from the given config.
func NewAnalyticsConnectionClient(c config) *AnalyticsConnectionClient {
	return &AnalyticsConnectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analyticsconnection.Hooks(f(g(h())))`.
func (c *AnalyticsConnectionClient) Use(hooks ...Hook) {
	c.hooks.AnalyticsConnection = append(c.hooks.AnalyticsConnection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analyticsconnection.Intercept(f(g(h())))`.
func (c *AnalyticsConnectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalyticsConnection = append(c.inters.AnalyticsConnection, interceptors...)
}

// Create returns a builder for creating a AnalyticsConnection entity.
func (c *AnalyticsConnectionClient) Create() *AnalyticsConnectionCreate {
	mutation := newAnalyticsConnectionMutation(c.config, OpCreate)
	return &AnalyticsConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalyticsConnection entities.
func (c *AnalyticsConnectionClient) CreateBulk(builders ...*AnalyticsConnectionCreate) *AnalyticsConnectionCreateBulk {
	return &AnalyticsConnectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalyticsConnectionClient) MapCreateBulk(slice any, setFunc func(*AnalyticsConnectionCreate, int)) *AnalyticsConnectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalyticsConnectionCreateBulk{err: fmt.Errorf("calling to AnalyticsConnectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalyticsConnectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalyticsConnectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalyticsConnection.
func (c *AnalyticsConnectionClient) Update() *AnalyticsConnectionUpdate {
	mutation := newAnalyticsConnectionMutation(c.config, OpUpdate)
	return &AnalyticsConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalyticsConnectionClient) UpdateOne(_m *AnalyticsConnection) *AnalyticsConnectionUpdateOne {
	mutation := newAnalyticsConnectionMutation(c.config, OpUpdateOne, withAnalyticsConnection(_m))
	return &AnalyticsConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalyticsConnectionClient) UpdateOneID(id string) *AnalyticsConnectionUpdateOne {
	mutation := newAnalyticsConnectionMutation(c.config, OpUpdateOne, withAnalyticsConnectionID(id))
	return &AnalyticsConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalyticsConnection.
func (c *AnalyticsConnectionClient) Delete() *AnalyticsConnectionDelete {
	mutation := newAnalyticsConnectionMutation(c.config, OpDelete)
	return &AnalyticsConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalyticsConnectionClient) DeleteOne(_m *AnalyticsConnection) *AnalyticsConnectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalyticsConnectionClient) DeleteOneID(id string) *AnalyticsConnectionDeleteOne {
	builder := c.Delete().Where(analyticsconnection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalyticsConnectionDeleteOne{builder}
}

// Query returns a query builder for AnalyticsConnection.
func (c *AnalyticsConnectionClient) Query() *AnalyticsConnectionQuery {
	return &AnalyticsConnectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalyticsConnection},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalyticsConnection entity by its id.
func (c *AnalyticsConnectionClient) Get(ctx context.Context, id string) (*AnalyticsConnection, error) {
	return c.Query().Where(analyticsconnection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalyticsConnectionClient) GetX(ctx context.Context, id string) *AnalyticsConnection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a AnalyticsConnection.
func (c *AnalyticsConnectionClient) QueryUser(_m *AnalyticsConnection) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analyticsconnection.Table, analyticsconnection.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, analyticsconnection.UserTable, analyticsconnection.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalyticsConnectionClient) Hooks() []Hook {
	return c.hooks.AnalyticsConnection
}

// Interceptors returns the client interceptors.
func (c *AnalyticsConnectionClient) Interceptors() []Interceptor {
	return c.inters.AnalyticsConnection
}

func (c *AnalyticsConnectionClient) mutate(ctx context.Context, m *AnalyticsConnectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalyticsConnectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalyticsConnectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalyticsConnectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalyticsConnectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalyticsConnection mutation op: %q", m.Op())
	}
}

// ChangeCheckpointClient is a client for the ChangeCheckpoint schema.
type ChangeCheckpointClient struct {
	config
}

// NewChangeCheckpointClient returns a client for the ChangeCheckpoint from the given config.
func NewChangeCheckpointClient(c config) *ChangeCheckpointClient {
	return &ChangeCheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `changecheckpoint.Hooks(f(g(h())))`.
func (c *ChangeCheckpointClient) Use(hooks ...Hook) {
	c.hooks.ChangeCheckpoint = append(c.hooks.ChangeCheckpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `changecheckpoint.Intercept(f(g(h())))`.
func (c *ChangeCheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChangeCheckpoint = append(c.inters.ChangeCheckpoint, interceptors...)
}

// Create returns a builder for creating a ChangeCheckpoint entity.
func (c *ChangeCheckpointClient) Create() *ChangeCheckpointCreate {
	mutation := newChangeCheckpointMutation(c.config, OpCreate)
	return &ChangeCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChangeCheckpoint entities.
func (c *ChangeCheckpointClient) CreateBulk(builders ...*ChangeCheckpointCreate) *ChangeCheckpointCreateBulk {
	return &ChangeCheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChangeCheckpointClient) MapCreateBulk(slice any, setFunc func(*ChangeCheckpointCreate, int)) *ChangeCheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChangeCheckpointCreateBulk{err: fmt.Errorf("calling to ChangeCheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChangeCheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChangeCheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChangeCheckpoint.
func (c *ChangeCheckpointClient) Update() *ChangeCheckpointUpdate {
	mutation := newChangeCheckpointMutation(c.config, OpUpdate)
	return &ChangeCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChangeCheckpointClient) UpdateOne(_m *ChangeCheckpoint) *ChangeCheckpointUpdateOne {
	mutation := newChangeCheckpointMutation(c.config, OpUpdateOne, withChangeCheckpoint(_m))
	return &ChangeCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChangeCheckpointClient) UpdateOneID(id string) *ChangeCheckpointUpdateOne {
	mutation := newChangeCheckpointMutation(c.config, OpUpdateOne, withChangeCheckpointID(id))
	return &ChangeCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChangeCheckpoint.
func (c *ChangeCheckpointClient) Delete() *ChangeCheckpointDelete {
	mutation := newChangeCheckpointMutation(c.config, OpDelete)
	return &ChangeCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChangeCheckpointClient) DeleteOne(_m *ChangeCheckpoint) *ChangeCheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChangeCheckpointClient) DeleteOneID(id string) *ChangeCheckpointDeleteOne {
	builder := c.Delete().Where(changecheckpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChangeCheckpointDeleteOne{builder}
}

// Query returns a query builder for ChangeCheckpoint.
func (c *ChangeCheckpointClient) Query() *ChangeCheckpointQuery {
	return &ChangeCheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChangeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a ChangeCheckpoint entity by its id.
func (c *ChangeCheckpointClient) Get(ctx context.Context, id string) (*ChangeCheckpoint, error) {
	return c.Query().Where(changecheckpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChangeCheckpointClient) GetX(ctx context.Context, id string) *ChangeCheckpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChange queries the change edge of a ChangeCheckpoint.
func (c *ChangeCheckpointClient) QueryChange(_m *ChangeCheckpoint) *DetectedChangeQuery {
	query := (&DetectedChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(changecheckpoint.Table, changecheckpoint.FieldID, id),
			sqlgraph.To(detectedchange.Table, detectedchange.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, changecheckpoint.ChangeTable, changecheckpoint.ChangeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChangeCheckpointClient) Hooks() []Hook {
	return c.hooks.ChangeCheckpoint
}

// Interceptors returns the client interceptors.
func (c *ChangeCheckpointClient) Interceptors() []Interceptor {
	return c.inters.ChangeCheckpoint
}

func (c *ChangeCheckpointClient) mutate(ctx context.Context, m *ChangeCheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChangeCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChangeCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChangeCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChangeCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChangeCheckpoint mutation op: %q", m.Op())
	}
}

// ChangeLifecycleEventClient is a client for the ChangeLifecycleEvent schema.
type ChangeLifecycleEventClient struct {
	config
}

// NewChangeLifecycleEventClient returns a client for the ChangeLifecycleEvent from the given config.
func NewChangeLifecycleEventClient(c config) *ChangeLifecycleEventClient {
	return &ChangeLifecycleEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `changelifecycleevent.Hooks(f(g(h())))`.
func (c *ChangeLifecycleEventClient) Use(hooks ...Hook) {
	c.hooks.ChangeLifecycleEvent = append(c.hooks.ChangeLifecycleEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `changelifecycleevent.Intercept(f(g(h())))`.
func (c *ChangeLifecycleEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChangeLifecycleEvent = append(c.inters.ChangeLifecycleEvent, interceptors...)
}

// Create returns a builder for creating a ChangeLifecycleEvent entity.
func (c *ChangeLifecycleEventClient) Create() *ChangeLifecycleEventCreate {
	mutation := newChangeLifecycleEventMutation(c.config, OpCreate)
	return &ChangeLifecycleEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChangeLifecycleEvent entities.
func (c *ChangeLifecycleEventClient) CreateBulk(builders ...*ChangeLifecycleEventCreate) *ChangeLifecycleEventCreateBulk {
	return &ChangeLifecycleEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChangeLifecycleEventClient) MapCreateBulk(slice any, setFunc func(*ChangeLifecycleEventCreate, int)) *ChangeLifecycleEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChangeLifecycleEventCreateBulk{err: fmt.Errorf("calling to ChangeLifecycleEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChangeLifecycleEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChangeLifecycleEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChangeLifecycleEvent.
func (c *ChangeLifecycleEventClient) Update() *ChangeLifecycleEventUpdate {
	mutation := newChangeLifecycleEventMutation(c.config, OpUpdate)
	return &ChangeLifecycleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChangeLifecycleEventClient) UpdateOne(_m *ChangeLifecycleEvent) *ChangeLifecycleEventUpdateOne {
	mutation := newChangeLifecycleEventMutation(c.config, OpUpdateOne, withChangeLifecycleEvent(_m))
	return &ChangeLifecycleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChangeLifecycleEventClient) UpdateOneID(id string) *ChangeLifecycleEventUpdateOne {
	mutation := newChangeLifecycleEventMutation(c.config, OpUpdateOne, withChangeLifecycleEventID(id))
	return &ChangeLifecycleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChangeLifecycleEvent.
func (c *ChangeLifecycleEventClient) Delete() *ChangeLifecycleEventDelete {
	mutation := newChangeLifecycleEventMutation(c.config, OpDelete)
	return &ChangeLifecycleEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChangeLifecycleEventClient) DeleteOne(_m *ChangeLifecycleEvent) *ChangeLifecycleEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChangeLifecycleEventClient) DeleteOneID(id string) *ChangeLifecycleEventDeleteOne {
	builder := c.Delete().Where(changelifecycleevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChangeLifecycleEventDeleteOne{builder}
}

// Query returns a query builder for ChangeLifecycleEvent.
func (c *ChangeLifecycleEventClient) Query() *ChangeLifecycleEventQuery {
	return &ChangeLifecycleEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChangeLifecycleEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ChangeLifecycleEvent entity by its id.
func (c *ChangeLifecycleEventClient) Get(ctx context.Context, id string) (*ChangeLifecycleEvent, error) {
	return c.Query().Where(changelifecycleevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChangeLifecycleEventClient) GetX(ctx context.Context, id string) *ChangeLifecycleEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChange queries the change edge of a ChangeLifecycleEvent.
func (c *ChangeLifecycleEventClient) QueryChange(_m *ChangeLifecycleEvent) *DetectedChangeQuery {
	query := (&DetectedChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(changelifecycleevent.Table, changelifecycleevent.FieldID, id),
			sqlgraph.To(detectedchange.Table, detectedchange.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, changelifecycleevent.ChangeTable, changelifecycleevent.ChangeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChangeLifecycleEventClient) Hooks() []Hook {
	return c.hooks.ChangeLifecycleEvent
}

// Interceptors returns the client interceptors.
func (c *ChangeLifecycleEventClient) Interceptors() []Interceptor {
	return c.inters.ChangeLifecycleEvent
}

func (c *ChangeLifecycleEventClient) mutate(ctx context.Context, m *ChangeLifecycleEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChangeLifecycleEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChangeLifecycleEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChangeLifecycleEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChangeLifecycleEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChangeLifecycleEvent mutation op: %q", m.Op())
	}
}

// DeployClient is a client for the Deploy schema.
type DeployClient struct {
	config
}

// NewDeployClient returns a client for the Deploy from the given config.
func NewDeployClient(c config) *DeployClient {
	return &DeployClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deploy.Hooks(f(g(h())))`.
func (c *DeployClient) Use(hooks ...Hook) {
	c.hooks.Deploy = append(c.hooks.Deploy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deploy.Intercept(f(g(h())))`.
func (c *DeployClient) Intercept(interceptors ...Interceptor) {
	c.inters.Deploy = append(c.inters.Deploy, interceptors...)
}

// Create returns a builder for creating a Deploy entity.
func (c *DeployClient) Create() *DeployCreate {
	mutation := newDeployMutation(c.config, OpCreate)
	return &DeployCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Deploy entities.
func (c *DeployClient) CreateBulk(builders ...*DeployCreate) *DeployCreateBulk {
	return &DeployCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeployClient) MapCreateBulk(slice any, setFunc func(*DeployCreate, int)) *DeployCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeployCreateBulk{err: fmt.Errorf("calling to DeployClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeployCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeployCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Deploy.
func (c *DeployClient) Update() *DeployUpdate {
	mutation := newDeployMutation(c.config, OpUpdate)
	return &DeployUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeployClient) UpdateOne(_m *Deploy) *DeployUpdateOne {
	mutation := newDeployMutation(c.config, OpUpdateOne, withDeploy(_m))
	return &DeployUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeployClient) UpdateOneID(id string) *DeployUpdateOne {
	mutation := newDeployMutation(c.config, OpUpdateOne, withDeployID(id))
	return &DeployUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Deploy.
func (c *DeployClient) Delete() *DeployDelete {
	mutation := newDeployMutation(c.config, OpDelete)
	return &DeployDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeployClient) DeleteOne(_m *Deploy) *DeployDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeployClient) DeleteOneID(id string) *DeployDeleteOne {
	builder := c.Delete().Where(deploy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeployDeleteOne{builder}
}

// Query returns a query builder for Deploy.
func (c *DeployClient) Query() *DeployQuery {
	return &DeployQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeploy},
		inters: c.Interceptors(),
	}
}

// Get returns a Deploy entity by its id.
func (c *DeployClient) Get(ctx context.Context, id string) (*Deploy, error) {
	return c.Query().Where(deploy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeployClient) GetX(ctx context.Context, id string) *Deploy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Deploy.
func (c *DeployClient) QueryUser(_m *Deploy) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deploy.Table, deploy.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deploy.UserTable, deploy.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeployClient) Hooks() []Hook {
	return c.hooks.Deploy
}

// Interceptors returns the client interceptors.
func (c *DeployClient) Interceptors() []Interceptor {
	return c.inters.Deploy
}

func (c *DeployClient) mutate(ctx context.Context, m *DeployMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeployCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeployUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeployUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeployDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Deploy mutation op: %q", m.Op())
	}
}

// DetectedChangeClient is a client for the DetectedChange schema.
type DetectedChangeClient struct {
	config
}

// NewDetectedChangeClient returns a client for the DetectedChange from the given config.
func NewDetectedChangeClient(c config) *DetectedChangeClient {
	return &DetectedChangeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `detectedchange.Hooks(f(g(h())))`.
func (c *DetectedChangeClient) Use(hooks ...Hook) {
	c.hooks.DetectedChange = append(c.hooks.DetectedChange, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `detectedchange.Intercept(f(g(h())))`.
func (c *DetectedChangeClient) Intercept(interceptors ...Interceptor) {
	c.inters.DetectedChange = append(c.inters.DetectedChange, interceptors...)
}

// Create returns a builder for creating a DetectedChange entity.
func (c *DetectedChangeClient) Create() *DetectedChangeCreate {
	mutation := newDetectedChangeMutation(c.config, OpCreate)
	return &DetectedChangeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DetectedChange entities.
func (c *DetectedChangeClient) CreateBulk(builders ...*DetectedChangeCreate) *DetectedChangeCreateBulk {
	return &DetectedChangeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DetectedChangeClient) MapCreateBulk(slice any, setFunc func(*DetectedChangeCreate, int)) *DetectedChangeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DetectedChangeCreateBulk{err: fmt.Errorf("calling to DetectedChangeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DetectedChangeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DetectedChangeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DetectedChange.
func (c *DetectedChangeClient) Update() *DetectedChangeUpdate {
	mutation := newDetectedChangeMutation(c.config, OpUpdate)
	return &DetectedChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DetectedChangeClient) UpdateOne(_m *DetectedChange) *DetectedChangeUpdateOne {
	mutation := newDetectedChangeMutation(c.config, OpUpdateOne, withDetectedChange(_m))
	return &DetectedChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DetectedChangeClient) UpdateOneID(id string) *DetectedChangeUpdateOne {
	mutation := newDetectedChangeMutation(c.config, OpUpdateOne, withDetectedChangeID(id))
	return &DetectedChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DetectedChange.
func (c *DetectedChangeClient) Delete() *DetectedChangeDelete {
	mutation := newDetectedChangeMutation(c.config, OpDelete)
	return &DetectedChangeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DetectedChangeClient) DeleteOne(_m *DetectedChange) *DetectedChangeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DetectedChangeClient) DeleteOneID(id string) *DetectedChangeDeleteOne {
	builder := c.Delete().Where(detectedchange.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DetectedChangeDeleteOne{builder}
}

// Query returns a query builder for DetectedChange.
func (c *DetectedChangeClient) Query() *DetectedChangeQuery {
	return &DetectedChangeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDetectedChange},
		inters: c.Interceptors(),
	}
}

// Get returns a DetectedChange entity by its id.
func (c *DetectedChangeClient) Get(ctx context.Context, id string) (*DetectedChange, error) {
	return c.Query().Where(detectedchange.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DetectedChangeClient) GetX(ctx context.Context, id string) *DetectedChange {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPage queries the page edge of a DetectedChange.
func (c *DetectedChangeClient) QueryPage(_m *DetectedChange) *PageQuery {
	query := (&PageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, id),
			sqlgraph.To(page.Table, page.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detectedchange.PageTable, detectedchange.PageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckpoints queries the checkpoints edge of a DetectedChange.
func (c *DetectedChangeClient) QueryCheckpoints(_m *DetectedChange) *ChangeCheckpointQuery {
	query := (&ChangeCheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, id),
			sqlgraph.To(changecheckpoint.Table, changecheckpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, detectedchange.CheckpointsTable, detectedchange.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLifecycleEvents queries the lifecycle_events edge of a DetectedChange.
func (c *DetectedChangeClient) QueryLifecycleEvents(_m *DetectedChange) *ChangeLifecycleEventQuery {
	query := (&ChangeLifecycleEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, id),
			sqlgraph.To(changelifecycleevent.Table, changelifecycleevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, detectedchange.LifecycleEventsTable, detectedchange.LifecycleEventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutcomeFeedback queries the outcome_feedback edge of a DetectedChange.
func (c *DetectedChangeClient) QueryOutcomeFeedback(_m *DetectedChange) *OutcomeFeedbackQuery {
	query := (&OutcomeFeedbackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, id),
			sqlgraph.To(outcomefeedback.Table, outcomefeedback.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, detectedchange.OutcomeFeedbackTable, detectedchange.OutcomeFeedbackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DetectedChangeClient) Hooks() []Hook {
	return c.hooks.DetectedChange
}

// Interceptors returns the client interceptors.
func (c *DetectedChangeClient) Interceptors() []Interceptor {
	return c.inters.DetectedChange
}

func (c *DetectedChangeClient) mutate(ctx context.Context, m *DetectedChangeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DetectedChangeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DetectedChangeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DetectedChangeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DetectedChangeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DetectedChange mutation op: %q", m.Op())
	}
}

// OutcomeFeedbackClient is a client for the OutcomeFeedback schema.
type OutcomeFeedbackClient struct {
	config
}

// NewOutcomeFeedbackClient returns a client for the OutcomeFeedback from the given config.
func NewOutcomeFeedbackClient(c config) *OutcomeFeedbackClient {
	return &OutcomeFeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outcomefeedback.Hooks(f(g(h())))`.
func (c *OutcomeFeedbackClient) Use(hooks ...Hook) {
	c.hooks.OutcomeFeedback = append(c.hooks.OutcomeFeedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outcomefeedback.Intercept(f(g(h())))`.
func (c *OutcomeFeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutcomeFeedback = append(c.inters.OutcomeFeedback, interceptors...)
}

// Create returns a builder for creating a OutcomeFeedback entity.
func (c *OutcomeFeedbackClient) Create() *OutcomeFeedbackCreate {
	mutation := newOutcomeFeedbackMutation(c.config, OpCreate)
	return &OutcomeFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutcomeFeedback entities.
func (c *OutcomeFeedbackClient) CreateBulk(builders ...*OutcomeFeedbackCreate) *OutcomeFeedbackCreateBulk {
	return &OutcomeFeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutcomeFeedbackClient) MapCreateBulk(slice any, setFunc func(*OutcomeFeedbackCreate, int)) *OutcomeFeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutcomeFeedbackCreateBulk{err: fmt.Errorf("calling to OutcomeFeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutcomeFeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutcomeFeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutcomeFeedback.
func (c *OutcomeFeedbackClient) Update() *OutcomeFeedbackUpdate {
	mutation := newOutcomeFeedbackMutation(c.config, OpUpdate)
	return &OutcomeFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutcomeFeedbackClient) UpdateOne(_m *OutcomeFeedback) *OutcomeFeedbackUpdateOne {
	mutation := newOutcomeFeedbackMutation(c.config, OpUpdateOne, withOutcomeFeedback(_m))
	return &OutcomeFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutcomeFeedbackClient) UpdateOneID(id string) *OutcomeFeedbackUpdateOne {
	mutation := newOutcomeFeedbackMutation(c.config, OpUpdateOne, withOutcomeFeedbackID(id))
	return &OutcomeFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutcomeFeedback.
func (c *OutcomeFeedbackClient) Delete() *OutcomeFeedbackDelete {
	mutation := newOutcomeFeedbackMutation(c.config, OpDelete)
	return &OutcomeFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutcomeFeedbackClient) DeleteOne(_m *OutcomeFeedback) *OutcomeFeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutcomeFeedbackClient) DeleteOneID(id string) *OutcomeFeedbackDeleteOne {
	builder := c.Delete().Where(outcomefeedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutcomeFeedbackDeleteOne{builder}
}

// Query returns a query builder for OutcomeFeedback.
func (c *OutcomeFeedbackClient) Query() *OutcomeFeedbackQuery {
	return &OutcomeFeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutcomeFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a OutcomeFeedback entity by its id.
func (c *OutcomeFeedbackClient) Get(ctx context.Context, id string) (*OutcomeFeedback, error) {
	return c.Query().Where(outcomefeedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutcomeFeedbackClient) GetX(ctx context.Context, id string) *OutcomeFeedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChange queries the change edge of a OutcomeFeedback.
func (c *OutcomeFeedbackClient) QueryChange(_m *OutcomeFeedback) *DetectedChangeQuery {
	query := (&DetectedChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outcomefeedback.Table, outcomefeedback.FieldID, id),
			sqlgraph.To(detectedchange.Table, detectedchange.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, outcomefeedback.ChangeTable, outcomefeedback.ChangeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutcomeFeedbackClient) Hooks() []Hook {
	return c.hooks.OutcomeFeedback
}

// Interceptors returns the client interceptors.
func (c *OutcomeFeedbackClient) Interceptors() []Interceptor {
	return c.inters.OutcomeFeedback
}

func (c *OutcomeFeedbackClient) mutate(ctx context.Context, m *OutcomeFeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutcomeFeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutcomeFeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutcomeFeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutcomeFeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutcomeFeedback mutation op: %q", m.Op())
	}
}

// PageClient is a client for the Page schema.
type PageClient struct {
	config
}

// NewPageClient returns a client for the Page from the given config.
func NewPageClient(c config) *PageClient {
	return &PageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `page.Hooks(f(g(h())))`.
func (c *PageClient) Use(hooks ...Hook) {
	c.hooks.Page = append(c.hooks.Page, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `page.Intercept(f(g(h())))`.
func (c *PageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Page = append(c.inters.Page, interceptors...)
}

// Create returns a builder for creating a Page entity.
func (c *PageClient) Create() *PageCreate {
	mutation := newPageMutation(c.config, OpCreate)
	return &PageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Page entities.
func (c *PageClient) CreateBulk(builders ...*PageCreate) *PageCreateBulk {
	return &PageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PageClient) MapCreateBulk(slice any, setFunc func(*PageCreate, int)) *PageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PageCreateBulk{err: fmt.Errorf("calling to PageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Page.
func (c *PageClient) Update() *PageUpdate {
	mutation := newPageMutation(c.config, OpUpdate)
	return &PageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PageClient) UpdateOne(_m *Page) *PageUpdateOne {
	mutation := newPageMutation(c.config, OpUpdateOne, withPage(_m))
	return &PageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PageClient) UpdateOneID(id string) *PageUpdateOne {
	mutation := newPageMutation(c.config, OpUpdateOne, withPageID(id))
	return &PageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Page.
func (c *PageClient) Delete() *PageDelete {
	mutation := newPageMutation(c.config, OpDelete)
	return &PageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PageClient) DeleteOne(_m *Page) *PageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PageClient) DeleteOneID(id string) *PageDeleteOne {
	builder := c.Delete().Where(page.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PageDeleteOne{builder}
}

// Query returns a query builder for Page.
func (c *PageClient) Query() *PageQuery {
	return &PageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePage},
		inters: c.Interceptors(),
	}
}

// Get returns a Page entity by its id.
func (c *PageClient) Get(ctx context.Context, id string) (*Page, error) {
	return c.Query().Where(page.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PageClient) GetX(ctx context.Context, id string) *Page {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Page.
func (c *PageClient) QueryUser(_m *Page) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, page.UserTable, page.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyses queries the analyses edge of a Page.
func (c *PageClient) QueryAnalyses(_m *Page) *AnalysisQuery {
	query := (&AnalysisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, id),
			sqlgraph.To(analysis.Table, analysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, page.AnalysesTable, page.AnalysesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDetectedChanges queries the detected_changes edge of a Page.
func (c *PageClient) QueryDetectedChanges(_m *Page) *DetectedChangeQuery {
	query := (&DetectedChangeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, id),
			sqlgraph.To(detectedchange.Table, detectedchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, page.DetectedChangesTable, page.DetectedChangesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrackedSuggestions queries the tracked_suggestions edge of a Page.
func (c *PageClient) QueryTrackedSuggestions(_m *Page) *TrackedSuggestionQuery {
	query := (&TrackedSuggestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, id),
			sqlgraph.To(trackedsuggestion.Table, trackedsuggestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, page.TrackedSuggestionsTable, page.TrackedSuggestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PageClient) Hooks() []Hook {
	return c.hooks.Page
}

// Interceptors returns the client interceptors.
func (c *PageClient) Interceptors() []Interceptor {
	return c.inters.Page
}

func (c *PageClient) mutate(ctx context.Context, m *PageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Page mutation op: %q", m.Op())
	}
}

// TrackedSuggestionClient is a client for the TrackedSuggestion schema.
type TrackedSuggestionClient struct {
	config
}

// NewTrackedSuggestionClient returns a client for the TrackedSuggestion from the given config.
func NewTrackedSuggestionClient(c config) *TrackedSuggestionClient {
	return &TrackedSuggestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trackedsuggestion.Hooks(f(g(h())))`.
func (c *TrackedSuggestionClient) Use(hooks ...Hook) {
	c.hooks.TrackedSuggestion = append(c.hooks.TrackedSuggestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trackedsuggestion.Intercept(f(g(h())))`.
func (c *TrackedSuggestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrackedSuggestion = append(c.inters.TrackedSuggestion, interceptors...)
}

// Create returns a builder for creating a TrackedSuggestion entity.
func (c *TrackedSuggestionClient) Create() *TrackedSuggestionCreate {
	mutation := newTrackedSuggestionMutation(c.config, OpCreate)
	return &TrackedSuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrackedSuggestion entities.
func (c *TrackedSuggestionClient) CreateBulk(builders ...*TrackedSuggestionCreate) *TrackedSuggestionCreateBulk {
	return &TrackedSuggestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrackedSuggestionClient) MapCreateBulk(slice any, setFunc func(*TrackedSuggestionCreate, int)) *TrackedSuggestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrackedSuggestionCreateBulk{err: fmt.Errorf("calling to TrackedSuggestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrackedSuggestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrackedSuggestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrackedSuggestion.
func (c *TrackedSuggestionClient) Update() *TrackedSuggestionUpdate {
	mutation := newTrackedSuggestionMutation(c.config, OpUpdate)
	return &TrackedSuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrackedSuggestionClient) UpdateOne(_m *TrackedSuggestion) *TrackedSuggestionUpdateOne {
	mutation := newTrackedSuggestionMutation(c.config, OpUpdateOne, withTrackedSuggestion(_m))
	return &TrackedSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrackedSuggestionClient) UpdateOneID(id string) *TrackedSuggestionUpdateOne {
	mutation := newTrackedSuggestionMutation(c.config, OpUpdateOne, withTrackedSuggestionID(id))
	return &TrackedSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrackedSuggestion.
func (c *TrackedSuggestionClient) Delete() *TrackedSuggestionDelete {
	mutation := newTrackedSuggestionMutation(c.config, OpDelete)
	return &TrackedSuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrackedSuggestionClient) DeleteOne(_m *TrackedSuggestion) *TrackedSuggestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrackedSuggestionClient) DeleteOneID(id string) *TrackedSuggestionDeleteOne {
	builder := c.Delete().Where(trackedsuggestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrackedSuggestionDeleteOne{builder}
}

// Query returns a query builder for TrackedSuggestion.
func (c *TrackedSuggestionClient) Query() *TrackedSuggestionQuery {
	return &TrackedSuggestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrackedSuggestion},
		inters: c.Interceptors(),
	}
}

// Get returns a TrackedSuggestion entity by its id.
func (c *TrackedSuggestionClient) Get(ctx context.Context, id string) (*TrackedSuggestion, error) {
	return c.Query().Where(trackedsuggestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrackedSuggestionClient) GetX(ctx context.Context, id string) *TrackedSuggestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPage queries the page edge of a TrackedSuggestion.
func (c *TrackedSuggestionClient) QueryPage(_m *TrackedSuggestion) *PageQuery {
	query := (&PageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trackedsuggestion.Table, trackedsuggestion.FieldID, id),
			sqlgraph.To(page.Table, page.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trackedsuggestion.PageTable, trackedsuggestion.PageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrackedSuggestionClient) Hooks() []Hook {
	return c.hooks.TrackedSuggestion
}

// Interceptors returns the client interceptors.
func (c *TrackedSuggestionClient) Interceptors() []Interceptor {
	return c.inters.TrackedSuggestion
}

func (c *TrackedSuggestionClient) mutate(ctx context.Context, m *TrackedSuggestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrackedSuggestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrackedSuggestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrackedSuggestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrackedSuggestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrackedSuggestion mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPages queries the pages edge of a User.
func (c *UserClient) QueryPages(_m *User) *PageQuery {
	query := (&PageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(page.Table, page.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PagesTable, user.PagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAnalyticsConnections queries the analytics_connections edge of a User.
func (c *UserClient) QueryAnalyticsConnections(_m *User) *AnalyticsConnectionQuery {
	query := (&AnalyticsConnectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(analyticsconnection.Table, analyticsconnection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AnalyticsConnectionsTable, user.AnalyticsConnectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDeploys queries the deploys edge of a User.
func (c *UserClient) QueryDeploys(_m *User) *DeployQuery {
	query := (&DeployClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(deploy.Table, deploy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.DeploysTable, user.DeploysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Analysis, AnalyticsConnection, ChangeCheckpoint, ChangeLifecycleEvent, Deploy,
		DetectedChange, OutcomeFeedback, Page, TrackedSuggestion, User []ent.Hook
	}
	inters struct {
		Analysis, AnalyticsConnection, ChangeCheckpoint, ChangeLifecycleEvent, Deploy,
		DetectedChange, OutcomeFeedback, Page, TrackedSuggestion,
		User []ent.Interceptor
	}
)
