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
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// DetectedChangeQuery is the builder for querying DetectedChange entities.
type DetectedChangeQuery struct {
	config
	ctx                 *QueryContext
	order               []detectedchange.OrderOption
	inters              []Interceptor
	predicates          []predicate.DetectedChange
	withPage            *PageQuery
	withCheckpoints     *ChangeCheckpointQuery
	withLifecycleEvents *ChangeLifecycleEventQuery
	withOutcomeFeedback *OutcomeFeedbackQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DetectedChangeQuery builder.
func (_q *DetectedChangeQuery) Where(ps ...predicate.DetectedChange) *DetectedChangeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DetectedChangeQuery) Limit(limit int) *DetectedChangeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DetectedChangeQuery) Offset(offset int) *DetectedChangeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DetectedChangeQuery) Unique(unique bool) *DetectedChangeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DetectedChangeQuery) Order(o ...detectedchange.OrderOption) *DetectedChangeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPage chains the current query on the "page" edge.
func (_q *DetectedChangeQuery) QueryPage() *PageQuery {
	query := (&PageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, selector),
			sqlgraph.To(page.Table, page.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, detectedchange.PageTable, detectedchange.PageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCheckpoints chains the current query on the "checkpoints" edge.
func (_q *DetectedChangeQuery) QueryCheckpoints() *ChangeCheckpointQuery {
	query := (&ChangeCheckpointClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, selector),
			sqlgraph.To(changecheckpoint.Table, changecheckpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, detectedchange.CheckpointsTable, detectedchange.CheckpointsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLifecycleEvents chains the current query on the "lifecycle_events" edge.
func (_q *DetectedChangeQuery) QueryLifecycleEvents() *ChangeLifecycleEventQuery {
	query := (&ChangeLifecycleEventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, selector),
			sqlgraph.To(changelifecycleevent.Table, changelifecycleevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, detectedchange.LifecycleEventsTable, detectedchange.LifecycleEventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutcomeFeedback chains the current query on the "outcome_feedback" edge.
func (_q *DetectedChangeQuery) QueryOutcomeFeedback() *OutcomeFeedbackQuery {
	query := (&OutcomeFeedbackClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(detectedchange.Table, detectedchange.FieldID, selector),
			sqlgraph.To(outcomefeedback.Table, outcomefeedback.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, detectedchange.OutcomeFeedbackTable, detectedchange.OutcomeFeedbackColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DetectedChange entity from the query.
// Returns a *NotFoundError when no DetectedChange was found.
func (_q *DetectedChangeQuery) First(ctx context.Context) (*DetectedChange, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{detectedchange.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DetectedChangeQuery) FirstX(ctx context.Context) *DetectedChange {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DetectedChange ID from the query.
// Returns a *NotFoundError when no DetectedChange ID was found.
func (_q *DetectedChangeQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{detectedchange.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DetectedChangeQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DetectedChange entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DetectedChange entity is found.
// Returns a *NotFoundError when no DetectedChange entities are found.
func (_q *DetectedChangeQuery) Only(ctx context.Context) (*DetectedChange, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{detectedchange.Label}
	default:
		return nil, &NotSingularError{detectedchange.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DetectedChangeQuery) OnlyX(ctx context.Context) *DetectedChange {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DetectedChange ID in the query.
// Returns a *NotSingularError when more than one DetectedChange ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DetectedChangeQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{detectedchange.Label}
	default:
		err = &NotSingularError{detectedchange.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DetectedChangeQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DetectedChanges.
func (_q *DetectedChangeQuery) All(ctx context.Context) ([]*DetectedChange, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DetectedChange, *DetectedChangeQuery]()
	return withInterceptors[[]*DetectedChange](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DetectedChangeQuery) AllX(ctx context.Context) []*DetectedChange {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DetectedChange IDs.
func (_q *DetectedChangeQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(detectedchange.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DetectedChangeQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DetectedChangeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DetectedChangeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DetectedChangeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DetectedChangeQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DetectedChangeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DetectedChangeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DetectedChangeQuery) Clone() *DetectedChangeQuery {
	if _q == nil {
		return nil
	}
	return &DetectedChangeQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]detectedchange.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.DetectedChange{}, _q.predicates...),
		withPage:            _q.withPage.Clone(),
		withCheckpoints:     _q.withCheckpoints.Clone(),
		withLifecycleEvents: _q.withLifecycleEvents.Clone(),
		withOutcomeFeedback: _q.withOutcomeFeedback.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPage tells the query-builder to eager-load the nodes that are connected to
// the "page" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DetectedChangeQuery) WithPage(opts ...func(*PageQuery)) *DetectedChangeQuery {
	query := (&PageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPage = query
	return _q
}

// WithCheckpoints tells the query-builder to eager-load the nodes that are connected to
// the "checkpoints" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DetectedChangeQuery) WithCheckpoints(opts ...func(*ChangeCheckpointQuery)) *DetectedChangeQuery {
	query := (&ChangeCheckpointClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCheckpoints = query
	return _q
}

// WithLifecycleEvents tells the query-builder to eager-load the nodes that are connected to
// the "lifecycle_events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DetectedChangeQuery) WithLifecycleEvents(opts ...func(*ChangeLifecycleEventQuery)) *DetectedChangeQuery {
	query := (&ChangeLifecycleEventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLifecycleEvents = query
	return _q
}

// WithOutcomeFeedback tells the query-builder to eager-load the nodes that are connected to
// the "outcome_feedback" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DetectedChangeQuery) WithOutcomeFeedback(opts ...func(*OutcomeFeedbackQuery)) *DetectedChangeQuery {
	query := (&OutcomeFeedbackClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutcomeFeedback = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PageID string `json:"page_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DetectedChange.Query().
//		GroupBy(detectedchange.FieldPageID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DetectedChangeQuery) GroupBy(field string, fields ...string) *DetectedChangeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DetectedChangeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = detectedchange.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PageID string `json:"page_id,omitempty"`
//	}
//
//	client.DetectedChange.Query().
//		Select(detectedchange.FieldPageID).
//		Scan(ctx, &v)
func (_q *DetectedChangeQuery) Select(fields ...string) *DetectedChangeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DetectedChangeSelect{DetectedChangeQuery: _q}
	sbuild.label = detectedchange.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DetectedChangeSelect configured with the given aggregations.
func (_q *DetectedChangeQuery) Aggregate(fns ...AggregateFunc) *DetectedChangeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DetectedChangeQuery) prepareQuery(ctx context.Context) error {
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
		if !detectedchange.ValidColumn(f) {
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

func (_q *DetectedChangeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DetectedChange, error) {
	var (
		nodes       = []*DetectedChange{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withPage != nil,
			_q.withCheckpoints != nil,
			_q.withLifecycleEvents != nil,
			_q.withOutcomeFeedback != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DetectedChange).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DetectedChange{config: _q.config}
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
	if query := _q.withPage; query != nil {
		if err := _q.loadPage(ctx, query, nodes, nil,
			func(n *DetectedChange, e *Page) { n.Edges.Page = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withCheckpoints; query != nil {
		if err := _q.loadCheckpoints(ctx, query, nodes,
			func(n *DetectedChange) { n.Edges.Checkpoints = []*ChangeCheckpoint{} },
			func(n *DetectedChange, e *ChangeCheckpoint) { n.Edges.Checkpoints = append(n.Edges.Checkpoints, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLifecycleEvents; query != nil {
		if err := _q.loadLifecycleEvents(ctx, query, nodes,
			func(n *DetectedChange) { n.Edges.LifecycleEvents = []*ChangeLifecycleEvent{} },
			func(n *DetectedChange, e *ChangeLifecycleEvent) {
				n.Edges.LifecycleEvents = append(n.Edges.LifecycleEvents, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutcomeFeedback; query != nil {
		if err := _q.loadOutcomeFeedback(ctx, query, nodes,
			func(n *DetectedChange) { n.Edges.OutcomeFeedback = []*OutcomeFeedback{} },
			func(n *DetectedChange, e *OutcomeFeedback) {
				n.Edges.OutcomeFeedback = append(n.Edges.OutcomeFeedback, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DetectedChangeQuery) loadPage(ctx context.Context, query *PageQuery, nodes []*DetectedChange, init func(*DetectedChange), assign func(*DetectedChange, *Page)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*DetectedChange)
	for i := range nodes {
		fk := nodes[i].PageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(page.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "page_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DetectedChangeQuery) loadCheckpoints(ctx context.Context, query *ChangeCheckpointQuery, nodes []*DetectedChange, init func(*DetectedChange), assign func(*DetectedChange, *ChangeCheckpoint)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DetectedChange)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(changecheckpoint.FieldChangeID)
	}
	query.Where(predicate.ChangeCheckpoint(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(detectedchange.CheckpointsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChangeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "change_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DetectedChangeQuery) loadLifecycleEvents(ctx context.Context, query *ChangeLifecycleEventQuery, nodes []*DetectedChange, init func(*DetectedChange), assign func(*DetectedChange, *ChangeLifecycleEvent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DetectedChange)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(changelifecycleevent.FieldChangeID)
	}
	query.Where(predicate.ChangeLifecycleEvent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(detectedchange.LifecycleEventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChangeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "change_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DetectedChangeQuery) loadOutcomeFeedback(ctx context.Context, query *OutcomeFeedbackQuery, nodes []*DetectedChange, init func(*DetectedChange), assign func(*DetectedChange, *OutcomeFeedback)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DetectedChange)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(outcomefeedback.FieldChangeID)
	}
	query.Where(predicate.OutcomeFeedback(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(detectedchange.OutcomeFeedbackColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChangeID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "change_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DetectedChangeQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *DetectedChangeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(detectedchange.Table, detectedchange.Columns, sqlgraph.NewFieldSpec(detectedchange.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, detectedchange.FieldID)
		for i := range fields {
			if fields[i] != detectedchange.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPage != nil {
			_spec.Node.AddColumnOnce(detectedchange.FieldPageID)
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

func (_q *DetectedChangeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(detectedchange.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = detectedchange.Columns
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
func (_q *DetectedChangeQuery) ForUpdate(opts ...sql.LockOption) *DetectedChangeQuery {
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
func (_q *DetectedChangeQuery) ForShare(opts ...sql.LockOption) *DetectedChangeQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// DetectedChangeGroupBy is the group-by builder for DetectedChange entities.
type DetectedChangeGroupBy struct {
	selector
	build *DetectedChangeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DetectedChangeGroupBy) Aggregate(fns ...AggregateFunc) *DetectedChangeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DetectedChangeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DetectedChangeQuery, *DetectedChangeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DetectedChangeGroupBy) sqlScan(ctx context.Context, root *DetectedChangeQuery, v any) error {
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

// DetectedChangeSelect is the builder for selecting fields of DetectedChange entities.
type DetectedChangeSelect struct {
	*DetectedChangeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DetectedChangeSelect) Aggregate(fns ...AggregateFunc) *DetectedChangeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DetectedChangeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DetectedChangeQuery, *DetectedChangeSelect](ctx, _s.DetectedChangeQuery, _s, _s.inters, v)
}

func (_s *DetectedChangeSelect) sqlScan(ctx context.Context, root *DetectedChangeQuery, v any) error {
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
