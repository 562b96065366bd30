// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxisprep/praxis/ent/predicate"
	"github.com/praxisprep/praxis/ent/usageevent"
)

// UsageEventUpdate is the builder for updating UsageEvent entities.
type UsageEventUpdate struct {
	config
	hooks    []Hook
	mutation *UsageEventMutation
}

// Where appends a list predicates to the UsageEventUpdate builder.
func (_u *UsageEventUpdate) Where(ps ...predicate.UsageEvent) *UsageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UsageEventUpdate) SetUserID(v string) *UsageEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableUserID(v *string) *UsageEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *UsageEventUpdate) SetFeature(v string) *UsageEventUpdate {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableFeature(v *string) *UsageEventUpdate {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *UsageEventUpdate) SetSessionID(v string) *UsageEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableSessionID(v *string) *UsageEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *UsageEventUpdate) ClearSessionID() *UsageEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetCountAfter sets the "count_after" field.
func (_u *UsageEventUpdate) SetCountAfter(v int) *UsageEventUpdate {
	_u.mutation.ResetCountAfter()
	_u.mutation.SetCountAfter(v)
	return _u
}

// SetNillableCountAfter sets the "count_after" field if the given value is not nil.
func (_u *UsageEventUpdate) SetNillableCountAfter(v *int) *UsageEventUpdate {
	if v != nil {
		_u.SetCountAfter(*v)
	}
	return _u
}

// AddCountAfter adds value to the "count_after" field.
func (_u *UsageEventUpdate) AddCountAfter(v int) *UsageEventUpdate {
	_u.mutation.AddCountAfter(v)
	return _u
}

// Mutation returns the UsageEventMutation object of the builder.
func (_u *UsageEventUpdate) Mutation() *UsageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := usageevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Feature(); ok {
		if err := usageevent.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.feature": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageevent.Table, usageevent.Columns, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usageevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(usageevent.FieldFeature, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(usageevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(usageevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.CountAfter(); ok {
		_spec.SetField(usageevent.FieldCountAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCountAfter(); ok {
		_spec.AddField(usageevent.FieldCountAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageEventUpdateOne is the builder for updating a single UsageEvent entity.
type UsageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *UsageEventUpdateOne) SetUserID(v string) *UsageEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableUserID(v *string) *UsageEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *UsageEventUpdateOne) SetFeature(v string) *UsageEventUpdateOne {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableFeature(v *string) *UsageEventUpdateOne {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *UsageEventUpdateOne) SetSessionID(v string) *UsageEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableSessionID(v *string) *UsageEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *UsageEventUpdateOne) ClearSessionID() *UsageEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetCountAfter sets the "count_after" field.
func (_u *UsageEventUpdateOne) SetCountAfter(v int) *UsageEventUpdateOne {
	_u.mutation.ResetCountAfter()
	_u.mutation.SetCountAfter(v)
	return _u
}

// SetNillableCountAfter sets the "count_after" field if the given value is not nil.
func (_u *UsageEventUpdateOne) SetNillableCountAfter(v *int) *UsageEventUpdateOne {
	if v != nil {
		_u.SetCountAfter(*v)
	}
	return _u
}

// AddCountAfter adds value to the "count_after" field.
func (_u *UsageEventUpdateOne) AddCountAfter(v int) *UsageEventUpdateOne {
	_u.mutation.AddCountAfter(v)
	return _u
}

// Mutation returns the UsageEventMutation object of the builder.
func (_u *UsageEventUpdateOne) Mutation() *UsageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageEventUpdate builder.
func (_u *UsageEventUpdateOne) Where(ps ...predicate.UsageEvent) *UsageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageEventUpdateOne) Select(field string, fields ...string) *UsageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageEvent entity.
func (_u *UsageEventUpdateOne) Save(ctx context.Context) (*UsageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageEventUpdateOne) SaveX(ctx context.Context) *UsageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := usageevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Feature(); ok {
		if err := usageevent.FeatureValidator(v); err != nil {
			return &ValidationError{Name: "feature", err: fmt.Errorf(`ent: validator failed for field "UsageEvent.feature": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageEventUpdateOne) sqlSave(ctx context.Context) (_node *UsageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usageevent.Table, usageevent.Columns, sqlgraph.NewFieldSpec(usageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usageevent.FieldID)
		for _, f := range fields {
			if !usageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usageevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(usageevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(usageevent.FieldFeature, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(usageevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(usageevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.CountAfter(); ok {
		_spec.SetField(usageevent.FieldCountAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCountAfter(); ok {
		_spec.AddField(usageevent.FieldCountAfter, field.TypeInt, value)
	}
	_node = &UsageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
