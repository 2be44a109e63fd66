// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/predicate"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
	"github.com/loupe-hq/loupe/ent/user"
)

// PageQuery is the builder for querying Page entities.
type PageQuery struct {
	config
	ctx                    *QueryContext
	order                  []page.OrderOption
	inters                 []Interceptor
	predicates             []predicate.Page
	withUser               *UserQuery
	withAnalyses           *AnalysisQuery
	withDetectedChanges    *DetectedChangeQuery
	withTrackedSuggestions *TrackedSuggestionQuery
	modifiers              []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PageQuery builder.
func (_q *PageQuery) Where(ps ...predicate.Page) *PageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PageQuery) Limit(limit int) *PageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PageQuery) Offset(offset int) *PageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PageQuery) Unique(unique bool) *PageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PageQuery) Order(o ...page.OrderOption) *PageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUser chains the current query on the "user" edge.
func (_q *PageQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, page.UserTable, page.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAnalyses chains the current query on the "analyses" edge.
func (_q *PageQuery) QueryAnalyses() *AnalysisQuery {
	query := (&AnalysisClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, selector),
			sqlgraph.To(analysis.Table, analysis.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, page.AnalysesTable, page.AnalysesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDetectedChanges chains the current query on the "detected_changes" edge.
func (_q *PageQuery) QueryDetectedChanges() *DetectedChangeQuery {
	query := (&DetectedChangeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, selector),
			sqlgraph.To(detectedchange.Table, detectedchange.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, page.DetectedChangesTable, page.DetectedChangesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTrackedSuggestions chains the current query on the "tracked_suggestions" edge.
func (_q *PageQuery) QueryTrackedSuggestions() *TrackedSuggestionQuery {
	query := (&TrackedSuggestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(page.Table, page.FieldID, selector),
			sqlgraph.To(trackedsuggestion.Table, trackedsuggestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, page.TrackedSuggestionsTable, page.TrackedSuggestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Page entity from the query.
// Returns a *NotFoundError when no Page was found.
func (_q *PageQuery) First(ctx context.Context) (*Page, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{page.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PageQuery) FirstX(ctx context.Context) *Page {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Page ID from the query.
// Returns a *NotFoundError when no Page ID was found.
func (_q *PageQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{page.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PageQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Page entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Page entity is found.
// Returns a *NotFoundError when no Page entities are found.
func (_q *PageQuery) Only(ctx context.Context) (*Page, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{page.Label}
	default:
		return nil, &NotSingularError{page.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PageQuery) OnlyX(ctx context.Context) *Page {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Page ID in the query.
// Returns a *NotSingularError when more than one Page ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PageQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{page.Label}
	default:
		err = &NotSingularError{page.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PageQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Pages.
func (_q *PageQuery) All(ctx context.Context) ([]*Page, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Page, *PageQuery]()
	return withInterceptors[[]*Page](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PageQuery) AllX(ctx context.Context) []*Page {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Page IDs.
func (_q *PageQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(page.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PageQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PageQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PageQuery) Clone() *PageQuery {
	if _q == nil {
		return nil
	}
	return &PageQuery{
		config:                 _q.config,
		ctx:                    _q.ctx.Clone(),
		order:                  append([]page.OrderOption{}, _q.order...),
		inters:                 append([]Interceptor{}, _q.inters...),
		predicates:             append([]predicate.Page{}, _q.predicates...),
		withUser:               _q.withUser.Clone(),
		withAnalyses:           _q.withAnalyses.Clone(),
		withDetectedChanges:    _q.withDetectedChanges.Clone(),
		withTrackedSuggestions: _q.withTrackedSuggestions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PageQuery) WithUser(opts ...func(*UserQuery)) *PageQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// WithAnalyses tells the query-builder to eager-load the nodes that are connected to
// the "analyses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PageQuery) WithAnalyses(opts ...func(*AnalysisQuery)) *PageQuery {
	query := (&AnalysisClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnalyses = query
	return _q
}

// WithDetectedChanges tells the query-builder to eager-load the nodes that are connected to
// the "detected_changes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PageQuery) WithDetectedChanges(opts ...func(*DetectedChangeQuery)) *PageQuery {
	query := (&DetectedChangeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDetectedChanges = query
	return _q
}

// WithTrackedSuggestions tells the query-builder to eager-load the nodes that are connected to
// the "tracked_suggestions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PageQuery) WithTrackedSuggestions(opts ...func(*TrackedSuggestionQuery)) *PageQuery {
	query := (&TrackedSuggestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrackedSuggestions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Page.Query().
//		GroupBy(page.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PageQuery) GroupBy(field string, fields ...string) *PageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = page.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.Page.Query().
//		Select(page.FieldUserID).
//		Scan(ctx, &v)
func (_q *PageQuery) Select(fields ...string) *PageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PageSelect{PageQuery: _q}
	sbuild.label = page.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PageSelect configured with the given aggregations.
func (_q *PageQuery) Aggregate(fns ...AggregateFunc) *PageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PageQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !page.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Page, error) {
	var (
		nodes       = []*Page{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withUser != nil,
			_q.withAnalyses != nil,
			_q.withDetectedChanges != nil,
			_q.withTrackedSuggestions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Page).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Page{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *Page, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAnalyses; query != nil {
		if err := _q.loadAnalyses(ctx, query, nodes,
			func(n *Page) { n.Edges.Analyses = []*Analysis{} },
			func(n *Page, e *Analysis) { n.Edges.Analyses = append(n.Edges.Analyses, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDetectedChanges; query != nil {
		if err := _q.loadDetectedChanges(ctx, query, nodes,
			func(n *Page) { n.Edges.DetectedChanges = []*DetectedChange{} },
			func(n *Page, e *DetectedChange) { n.Edges.DetectedChanges = append(n.Edges.DetectedChanges, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTrackedSuggestions; query != nil {
		if err := _q.loadTrackedSuggestions(ctx, query, nodes,
			func(n *Page) { n.Edges.TrackedSuggestions = []*TrackedSuggestion{} },
			func(n *Page, e *TrackedSuggestion) {
				n.Edges.TrackedSuggestions = append(n.Edges.TrackedSuggestions, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PageQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*Page, init func(*Page), assign func(*Page, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Page)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PageQuery) loadAnalyses(ctx context.Context, query *AnalysisQuery, nodes []*Page, init func(*Page), assign func(*Page, *Analysis)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Page)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(analysis.FieldPageID)
	}
	query.Where(predicate.Analysis(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(page.AnalysesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "page_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PageQuery) loadDetectedChanges(ctx context.Context, query *DetectedChangeQuery, nodes []*Page, init func(*Page), assign func(*Page, *DetectedChange)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Page)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(detectedchange.FieldPageID)
	}
	query.Where(predicate.DetectedChange(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(page.DetectedChangesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "page_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PageQuery) loadTrackedSuggestions(ctx context.Context, query *TrackedSuggestionQuery, nodes []*Page, init func(*Page), assign func(*Page, *TrackedSuggestion)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Page)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(trackedsuggestion.FieldPageID)
	}
	query.Where(predicate.TrackedSuggestion(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(page.TrackedSuggestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "page_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(page.Table, page.Columns, sqlgraph.NewFieldSpec(page.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, page.FieldID)
		for i := range fields {
			if fields[i] != page.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(page.FieldUserID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(page.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = page.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *PageQuery) ForUpdate(opts ...sql.LockOption) *PageQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *PageQuery) ForShare(opts ...sql.LockOption) *PageQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PageGroupBy is the group-by builder for Page entities.
type PageGroupBy struct {
	selector
	build *PageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PageGroupBy) Aggregate(fns ...AggregateFunc) *PageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PageQuery, *PageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PageGroupBy) sqlScan(ctx context.Context, root *PageQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PageSelect is the builder for selecting fields of Page entities.
type PageSelect struct {
	*PageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PageSelect) Aggregate(fns ...AggregateFunc) *PageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PageQuery, *PageSelect](ctx, _s.PageQuery, _s, _s.inters, v)
}

func (_s *PageSelect) sqlScan(ctx context.Context, root *PageQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
