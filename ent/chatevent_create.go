// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisprep/praxis/ent/chatevent"
)

// ChatEventCreate is the builder for creating a ChatEvent entity.
type ChatEventCreate struct {
	config
	mutation *ChatEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChatEventCreate) SetSequence(v int64) *ChatEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChatEventCreate) SetTimestamp(v time.Time) *ChatEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChatEventCreate) SetNillableTimestamp(v *time.Time) *ChatEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ChatEventCreate) SetSessionID(v string) *ChatEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFlow sets the "flow" field.
func (_c *ChatEventCreate) SetFlow(v chatevent.Flow) *ChatEventCreate {
	_c.mutation.SetFlow(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ChatEventCreate) SetRole(v chatevent.Role) *ChatEventCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChatEventCreate) SetContent(v string) *ChatEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// Mutation returns the ChatEventMutation object of the builder.
func (_c *ChatEventCreate) Mutation() *ChatEventMutation {
	return _c.mutation
}

// Save creates the ChatEvent in the database.
func (_c *ChatEventCreate) Save(ctx context.Context) (*ChatEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatEventCreate) SaveX(ctx context.Context) *ChatEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := chatevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChatEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChatEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChatEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := chatevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Flow(); !ok {
		return &ValidationError{Name: "flow", err: errors.New(`ent: missing required field "ChatEvent.flow"`)}
	}
	if v, ok := _c.mutation.Flow(); ok {
		if err := chatevent.FlowValidator(v); err != nil {
			return &ValidationError{Name: "flow", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.flow": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ChatEvent.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := chatevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ChatEvent.content"`)}
	}
	return nil
}

func (_c *ChatEventCreate) sqlSave(ctx context.Context) (*ChatEvent, error) {
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

func (_c *ChatEventCreate) createSpec() (*ChatEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatevent.Table, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(chatevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(chatevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Flow(); ok {
		_spec.SetField(chatevent.FieldFlow, field.TypeEnum, value)
		_node.Flow = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(chatevent.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chatevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	return _node, _spec
}

// ChatEventCreateBulk is the builder for creating many ChatEvent entities in bulk.
type ChatEventCreateBulk struct {
	config
	err      error
	builders []*ChatEventCreate
}

// Save creates the ChatEvent entities in the database.
func (_c *ChatEventCreateBulk) Save(ctx context.Context) ([]*ChatEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatEventMutation)
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
func (_c *ChatEventCreateBulk) SaveX(ctx context.Context) []*ChatEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
