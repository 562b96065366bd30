// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisprep/praxis/ent/usageevent"
)

// UsageEventCreate is the builder for creating a UsageEvent entity.
type UsageEventCreate struct {
	config
	mutation *UsageEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *UsageEventCreate) SetSequence(v int64) *UsageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *UsageEventCreate) SetTimestamp(v time.Time) *UsageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableTimestamp(v *time.Time) *UsageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UsageEventCreate) SetUserID(v string) *UsageEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFeature sets the "feature" field.
func (_c *UsageEventCreate) SetFeature(v string) *UsageEventCreate {
	_c.mutation.SetFeature(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *UsageEventCreate) SetSessionID(v string) *UsageEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *UsageEventCreate) SetNillableSessionID(v *string) *UsageEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetCountAfter sets the "count_after" field.
func (_c *UsageEventCreate) SetCountAfter(v int) *UsageEventCreate {
	_c.mutation.SetCountAfter(v)
	return _c
}

// Mutation returns the UsageEventMutation object of the builder.
func (_c *UsageEventCreate) Mutation() *UsageEventMutation {
	return _c.mutation
}

// Save creates the UsageEvent in the database.
func (_c *UsageEventCreate) Save(ctx context.Context) (*UsageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageEventCreate) SaveX(ctx context.Context) *UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := usageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "UsageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "UsageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := usageevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Feature(); !ok {
		return &ValidationError{Name: "feature", err: errors.New(`ent: missing required field "UsageEvent.feature"`)}
	}
	if v, ok := _c.mutation.Feature(); ok {
		if err := usageevent.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.feature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CountAfter(); !ok {
		return &ValidationError{Name: "count_after", err: errors.New(`ent: missing required field "UsageEvent.count_after"`)}
	}
	return nil
}

func (_c *UsageEventCreate) sqlSave(ctx context.Context) (*UsageEvent, error) {
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

func (_c *UsageEventCreate) createSpec() (*UsageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usageevent.Table, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(usageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(usageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usageevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Feature(); ok {
		_spec.SetField(usageevent.FieldFeature, field.TypeString, value)
		_node.Feature = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(usageevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CountAfter(); ok {
		_spec.SetField(usageevent.FieldCountAfter, field.TypeInt, value)
		_node.CountAfter = value
	}
	return _node, _spec
}

// UsageEventCreateBulk is the builder for creating many UsageEvent entities in bulk.
type UsageEventCreateBulk struct {
	config
	err      error
	builders []*UsageEventCreate
}

// Save creates the UsageEvent entities in the database.
func (_c *UsageEventCreateBulk) Save(ctx context.Context) ([]*UsageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageEventMutation)
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
func (_c *UsageEventCreateBulk) SaveX(ctx context.Context) []*UsageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
