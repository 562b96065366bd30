// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisprep/praxis/ent/contentcache"
	"github.com/praxisprep/praxis/ent/predicate"
)

// ContentCacheUpdate is the builder for updating ContentCache entities.
type ContentCacheUpdate struct {
	config
	hooks    []Hook
	mutation *ContentCacheMutation
}

// Where appends a list predicates to the ContentCacheUpdate builder.
func (_u *ContentCacheUpdate) Where(ps ...predicate.ContentCache) *ContentCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *ContentCacheUpdate) SetTopicID(v string) *ContentCacheUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ContentCacheUpdate) SetNillableTopicID(v *string) *ContentCacheUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ContentCacheUpdate) SetMode(v contentcache.Mode) *ContentCacheUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ContentCacheUpdate) SetNillableMode(v *contentcache.Mode) *ContentCacheUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ContentCacheUpdate) SetContent(v string) *ContentCacheUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ContentCacheUpdate) SetNillableContent(v *string) *ContentCacheUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *ContentCacheUpdate) SetFetchedAt(v time.Time) *ContentCacheUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// Mutation returns the ContentCacheMutation object of the builder.
func (_u *ContentCacheUpdate) Mutation() *ContentCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentCacheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentCacheUpdate) defaults() {
	if _, ok := _u.mutation.FetchedAt(); !ok {
		v := contentcache.UpdateDefaultFetchedAt()
		_u.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentCacheUpdate) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := contentcache.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ContentCache.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := contentcache.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ContentCache.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentcache.Table, contentcache.Columns, sqlgraph.NewFieldSpec(contentcache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(contentcache.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(contentcache.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(contentcache.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(contentcache.FieldFetchedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentCacheUpdateOne is the builder for updating a single ContentCache entity.
type ContentCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentCacheMutation
}

// SetTopicID sets the "topic_id" field.
func (_u *ContentCacheUpdateOne) SetTopicID(v string) *ContentCacheUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *ContentCacheUpdateOne) SetNillableTopicID(v *string) *ContentCacheUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ContentCacheUpdateOne) SetMode(v contentcache.Mode) *ContentCacheUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ContentCacheUpdateOne) SetNillableMode(v *contentcache.Mode) *ContentCacheUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ContentCacheUpdateOne) SetContent(v string) *ContentCacheUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ContentCacheUpdateOne) SetNillableContent(v *string) *ContentCacheUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *ContentCacheUpdateOne) SetFetchedAt(v time.Time) *ContentCacheUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// Mutation returns the ContentCacheMutation object of the builder.
func (_u *ContentCacheUpdateOne) Mutation() *ContentCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentCacheUpdate builder.
func (_u *ContentCacheUpdateOne) Where(ps ...predicate.ContentCache) *ContentCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentCacheUpdateOne) Select(field string, fields ...string) *ContentCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentCache entity.
func (_u *ContentCacheUpdateOne) Save(ctx context.Context) (*ContentCache, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentCacheUpdateOne) SaveX(ctx context.Context) *ContentCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContentCacheUpdateOne) defaults() {
	if _, ok := _u.mutation.FetchedAt(); !ok {
		v := contentcache.UpdateDefaultFetchedAt()
		_u.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentCacheUpdateOne) check() error {
	if v, ok := _u.mutation.TopicID(); ok {
		if err := contentcache.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ContentCache.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := contentcache.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ContentCache.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentCacheUpdateOne) sqlSave(ctx context.Context) (_node *ContentCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentcache.Table, contentcache.Columns, sqlgraph.NewFieldSpec(contentcache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentcache.FieldID)
		for _, f := range fields {
			if !contentcache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentcache.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(contentcache.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(contentcache.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(contentcache.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(contentcache.FieldFetchedAt, field.TypeTime, value)
	}
	_node = &ContentCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
