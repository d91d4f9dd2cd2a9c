// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/listen2bea/listen2bea/ent/playbackevent"
)

// PlaybackEventCreate is the builder for creating a PlaybackEvent entity.
type PlaybackEventCreate struct {
	config
	mutation *PlaybackEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlaybackEventCreate) SetSequence(v int64) *PlaybackEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlaybackEventCreate) SetTimestamp(v time.Time) *PlaybackEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlaybackEventCreate) SetNillableTimestamp(v *time.Time) *PlaybackEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PlaybackEventCreate) SetSessionID(v string) *PlaybackEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSentenceID sets the "sentence_id" field.
func (_c *PlaybackEventCreate) SetSentenceID(v int) *PlaybackEventCreate {
	_c.mutation.SetSentenceID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *PlaybackEventCreate) SetAction(v string) *PlaybackEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetPlaylistIndex sets the "playlist_index" field.
func (_c *PlaybackEventCreate) SetPlaylistIndex(v int) *PlaybackEventCreate {
	_c.mutation.SetPlaylistIndex(v)
	return _c
}

// SetNillablePlaylistIndex sets the "playlist_index" field if the given value is not nil.
func (_c *PlaybackEventCreate) SetNillablePlaylistIndex(v *int) *PlaybackEventCreate {
	if v != nil {
		_c.SetPlaylistIndex(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PlaybackEventCreate) SetErrorMessage(v string) *PlaybackEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PlaybackEventCreate) SetNillableErrorMessage(v *string) *PlaybackEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_c *PlaybackEventCreate) Mutation() *PlaybackEventMutation {
	return _c.mutation
}

// Save creates the PlaybackEvent in the database.
func (_c *PlaybackEventCreate) Save(ctx context.Context) (*PlaybackEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlaybackEventCreate) SaveX(ctx context.Context) *PlaybackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybackEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybackEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlaybackEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := playbackevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PlaylistIndex(); !ok {
		v := playbackevent.DefaultPlaylistIndex
		_c.mutation.SetPlaylistIndex(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := playbackevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlaybackEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlaybackEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlaybackEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PlaybackEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := playbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentenceID(); !ok {
		return &ValidationError{Name: "sentence_id", err: errors.New(`ent: missing required field "PlaybackEvent.sentence_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PlaybackEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := playbackevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlaylistIndex(); !ok {
		return &ValidationError{Name: "playlist_index", err: errors.New(`ent: missing required field "PlaybackEvent.playlist_index"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "PlaybackEvent.error_message"`)}
	}
	return nil
}

func (_c *PlaybackEventCreate) sqlSave(ctx context.Context) (*PlaybackEvent, error) {
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

func (_c *PlaybackEventCreate) createSpec() (*PlaybackEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlaybackEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playbackevent.Table, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(playbackevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(playbackevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(playbackevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SentenceID(); ok {
		_spec.SetField(playbackevent.FieldSentenceID, field.TypeInt, value)
		_node.SentenceID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(playbackevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.PlaylistIndex(); ok {
		_spec.SetField(playbackevent.FieldPlaylistIndex, field.TypeInt, value)
		_node.PlaylistIndex = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(playbackevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// PlaybackEventCreateBulk is the builder for creating many PlaybackEvent entities in bulk.
type PlaybackEventCreateBulk struct {
	config
	err      error
	builders []*PlaybackEventCreate
}

// Save creates the PlaybackEvent entities in the database.
func (_c *PlaybackEventCreateBulk) Save(ctx context.Context) ([]*PlaybackEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlaybackEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlaybackEventMutation)
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
func (_c *PlaybackEventCreateBulk) SaveX(ctx context.Context) []*PlaybackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybackEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybackEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
