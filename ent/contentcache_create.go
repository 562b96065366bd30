// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisprep/praxis/ent/contentcache"
)

// ContentCacheCreate is the builder for creating a ContentCache entity.
type ContentCacheCreate struct {
	config
	mutation *ContentCacheMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *ContentCacheCreate) SetTopicID(v string) *ContentCacheCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ContentCacheCreate) SetMode(v contentcache.Mode) *ContentCacheCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ContentCacheCreate) SetContent(v string) *ContentCacheCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *ContentCacheCreate) SetFetchedAt(v time.Time) *ContentCacheCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *ContentCacheCreate) SetNillableFetchedAt(v *time.Time) *ContentCacheCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// Mutation returns the ContentCacheMutation object of the builder.
func (_c *ContentCacheCreate) Mutation() *ContentCacheMutation {
	return _c.mutation
}

// Save creates the ContentCache in the database.
func (_c *ContentCacheCreate) Save(ctx context.Context) (*ContentCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentCacheCreate) SaveX(ctx context.Context) *ContentCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentCacheCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := contentcache.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentCacheCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "ContentCache.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := contentcache.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "ContentCache.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ContentCache.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := contentcache.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "ContentCache.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ContentCache.content"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "ContentCache.fetched_at"`)}
	}
	return nil
}

func (_c *ContentCacheCreate) sqlSave(ctx context.Context) (*ContentCache, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentCacheCreate) createSpec() (*ContentCache, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentcache.Table, sqlgraph.NewFieldSpec(contentcache.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(contentcache.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(contentcache.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(contentcache.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(contentcache.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	return _node, _spec
}

// ContentCacheCreateBulk is the builder for creating many ContentCache entities in bulk.
type ContentCacheCreateBulk struct {
	config
	err      error
	builders []*ContentCacheCreate
}

// Save creates the ContentCache entities in the database.
func (_c *ContentCacheCreateBulk) Save(ctx context.Context) ([]*ContentCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentCacheMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ContentCacheCreateBulk) SaveX(ctx context.Context) []*ContentCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
