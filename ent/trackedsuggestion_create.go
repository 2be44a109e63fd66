// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
)

// TrackedSuggestionCreate is the builder for creating a TrackedSuggestion entity.
type TrackedSuggestionCreate struct {
	config
	mutation *TrackedSuggestionMutation
	hooks    []Hook
}

// SetPageID sets the "page_id" field.
func (_c *TrackedSuggestionCreate) SetPageID(v string) *TrackedSuggestionCreate {
	_c.mutation.SetPageID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TrackedSuggestionCreate) SetUserID(v string) *TrackedSuggestionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TrackedSuggestionCreate) SetTitle(v string) *TrackedSuggestionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetElement sets the "element" field.
func (_c *TrackedSuggestionCreate) SetElement(v string) *TrackedSuggestionCreate {
	_c.mutation.SetElement(v)
	return _c
}

// SetSuggestedFix sets the "suggested_fix" field.
func (_c *TrackedSuggestionCreate) SetSuggestedFix(v string) *TrackedSuggestionCreate {
	_c.mutation.SetSuggestedFix(v)
	return _c
}

// SetImpact sets the "impact" field.
func (_c *TrackedSuggestionCreate) SetImpact(v trackedsuggestion.Impact) *TrackedSuggestionCreate {
	_c.mutation.SetImpact(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TrackedSuggestionCreate) SetStatus(v trackedsuggestion.Status) *TrackedSuggestionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TrackedSuggestionCreate) SetNillableStatus(v *trackedsuggestion.Status) *TrackedSuggestionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimesSuggested sets the "times_suggested" field.
func (_c *TrackedSuggestionCreate) SetTimesSuggested(v int) *TrackedSuggestionCreate {
	_c.mutation.SetTimesSuggested(v)
	return _c
}

// SetNillableTimesSuggested sets the "times_suggested" field if the given value is not nil.
func (_c *TrackedSuggestionCreate) SetNillableTimesSuggested(v *int) *TrackedSuggestionCreate {
	if v != nil {
		_c.SetTimesSuggested(*v)
	}
	return _c
}

// SetDedupKey sets the "dedup_key" field.
func (_c *TrackedSuggestionCreate) SetDedupKey(v string) *TrackedSuggestionCreate {
	_c.mutation.SetDedupKey(v)
	return _c
}

// SetFirstSuggestedAt sets the "first_suggested_at" field.
func (_c *TrackedSuggestionCreate) SetFirstSuggestedAt(v time.Time) *TrackedSuggestionCreate {
	_c.mutation.SetFirstSuggestedAt(v)
	return _c
}

// SetNillableFirstSuggestedAt sets the "first_suggested_at" field if the given value is not nil.
func (_c *TrackedSuggestionCreate) SetNillableFirstSuggestedAt(v *time.Time) *TrackedSuggestionCreate {
	if v != nil {
		_c.SetFirstSuggestedAt(*v)
	}
	return _c
}

// SetLastSuggestedAt sets the "last_suggested_at" field.
func (_c *TrackedSuggestionCreate) SetLastSuggestedAt(v time.Time) *TrackedSuggestionCreate {
	_c.mutation.SetLastSuggestedAt(v)
	return _c
}

// SetNillableLastSuggestedAt sets the "last_suggested_at" field if the given value is not nil.
func (_c *TrackedSuggestionCreate) SetNillableLastSuggestedAt(v *time.Time) *TrackedSuggestionCreate {
	if v != nil {
		_c.SetLastSuggestedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrackedSuggestionCreate) SetID(v string) *TrackedSuggestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPage sets the "page" edge to the Page entity.
func (_c *TrackedSuggestionCreate) SetPage(v *Page) *TrackedSuggestionCreate {
	return _c.SetPageID(v.ID)
}

// Mutation returns the TrackedSuggestionMutation object of the builder.
func (_c *TrackedSuggestionCreate) Mutation() *TrackedSuggestionMutation {
	return _c.mutation
}

// Save creates the TrackedSuggestion in the database.
func (_c *TrackedSuggestionCreate) Save(ctx context.Context) (*TrackedSuggestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrackedSuggestionCreate) SaveX(ctx context.Context) *TrackedSuggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackedSuggestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackedSuggestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrackedSuggestionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := trackedsuggestion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TimesSuggested(); !ok {
		v := trackedsuggestion.DefaultTimesSuggested
		_c.mutation.SetTimesSuggested(v)
	}
	if _, ok := _c.mutation.FirstSuggestedAt(); !ok {
		v := trackedsuggestion.DefaultFirstSuggestedAt()
		_c.mutation.SetFirstSuggestedAt(v)
	}
	if _, ok := _c.mutation.LastSuggestedAt(); !ok {
		v := trackedsuggestion.DefaultLastSuggestedAt()
		_c.mutation.SetLastSuggestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrackedSuggestionCreate) check() error {
	if _, ok := _c.mutation.PageID(); !ok {
		return &ValidationError{Name: "page_id", err: errors.New(`ent: missing required field "TrackedSuggestion.page_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TrackedSuggestion.user_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "TrackedSuggestion.title"`)}
	}
	if _, ok := _c.mutation.Element(); !ok {
		return &ValidationError{Name: "element", err: errors.New(`ent: missing required field "TrackedSuggestion.element"`)}
	}
	if _, ok := _c.mutation.SuggestedFix(); !ok {
		return &ValidationError{Name: "suggested_fix", err: errors.New(`ent: missing required field "TrackedSuggestion.suggested_fix"`)}
	}
	if _, ok := _c.mutation.Impact(); !ok {
		return &ValidationError{Name: "impact", err: errors.New(`ent: missing required field "TrackedSuggestion.impact"`)}
	}
	if v, ok := _c.mutation.Impact(); ok {
		if err := trackedsuggestion.ImpactValidator(v); err != nil {
			return &ValidationError{Name: "impact", err: fmt.Errorf(`ent: validator failed for field "TrackedSuggestion.impact": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TrackedSuggestion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := trackedsuggestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrackedSuggestion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimesSuggested(); !ok {
		return &ValidationError{Name: "times_suggested", err: errors.New(`ent: missing required field "TrackedSuggestion.times_suggested"`)}
	}
	if _, ok := _c.mutation.DedupKey(); !ok {
		return &ValidationError{Name: "dedup_key", err: errors.New(`ent: missing required field "TrackedSuggestion.dedup_key"`)}
	}
	if _, ok := _c.mutation.FirstSuggestedAt(); !ok {
		return &ValidationError{Name: "first_suggested_at", err: errors.New(`ent: missing required field "TrackedSuggestion.first_suggested_at"`)}
	}
	if _, ok := _c.mutation.LastSuggestedAt(); !ok {
		return &ValidationError{Name: "last_suggested_at", err: errors.New(`ent: missing required field "TrackedSuggestion.last_suggested_at"`)}
	}
	if len(_c.mutation.PageIDs()) == 0 {
		return &ValidationError{Name: "page", err: errors.New(`ent: missing required edge "TrackedSuggestion.page"`)}
	}
	return nil
}

func (_c *TrackedSuggestionCreate) sqlSave(ctx context.Context) (*TrackedSuggestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TrackedSuggestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrackedSuggestionCreate) createSpec() (*TrackedSuggestion, *sqlgraph.CreateSpec) {
	var (
		_node = &TrackedSuggestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trackedsuggestion.Table, sqlgraph.NewFieldSpec(trackedsuggestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(trackedsuggestion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(trackedsuggestion.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Element(); ok {
		_spec.SetField(trackedsuggestion.FieldElement, field.TypeString, value)
		_node.Element = value
	}
	if value, ok := _c.mutation.SuggestedFix(); ok {
		_spec.SetField(trackedsuggestion.FieldSuggestedFix, field.TypeString, value)
		_node.SuggestedFix = value
	}
	if value, ok := _c.mutation.Impact(); ok {
		_spec.SetField(trackedsuggestion.FieldImpact, field.TypeEnum, value)
		_node.Impact = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(trackedsuggestion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TimesSuggested(); ok {
		_spec.SetField(trackedsuggestion.FieldTimesSuggested, field.TypeInt, value)
		_node.TimesSuggested = value
	}
	if value, ok := _c.mutation.DedupKey(); ok {
		_spec.SetField(trackedsuggestion.FieldDedupKey, field.TypeString, value)
		_node.DedupKey = value
	}
	if value, ok := _c.mutation.FirstSuggestedAt(); ok {
		_spec.SetField(trackedsuggestion.FieldFirstSuggestedAt, field.TypeTime, value)
		_node.FirstSuggestedAt = value
	}
	if value, ok := _c.mutation.LastSuggestedAt(); ok {
		_spec.SetField(trackedsuggestion.FieldLastSuggestedAt, field.TypeTime, value)
		_node.LastSuggestedAt = value
	}
	if nodes := _c.mutation.PageIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trackedsuggestion.PageTable,
			Columns: []string{trackedsuggestion.PageColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(page.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PageID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrackedSuggestionCreateBulk is the builder for creating many TrackedSuggestion entities in bulk.
type TrackedSuggestionCreateBulk struct {
	config
	err      error
	builders []*TrackedSuggestionCreate
}

// Save creates the TrackedSuggestion entities in the database.
func (_c *TrackedSuggestionCreateBulk) Save(ctx context.Context) ([]*TrackedSuggestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrackedSuggestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackedSuggestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TrackedSuggestionCreateBulk) SaveX(ctx context.Context) []*TrackedSuggestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackedSuggestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackedSuggestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
