// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/listen2bea/listen2bea/ent/playbackevent"
	"github.com/listen2bea/listen2bea/ent/predicate"
)

// PlaybackEventUpdate is the builder for updating PlaybackEvent entities.
type PlaybackEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlaybackEventMutation
}

// Where appends a list predicates to the PlaybackEventUpdate builder.
func (_u *PlaybackEventUpdate) Where(ps ...predicate.PlaybackEvent) *PlaybackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlaybackEventUpdate) SetSessionID(v string) *PlaybackEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableSessionID(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSentenceID sets the "sentence_id" field.
func (_u *PlaybackEventUpdate) SetSentenceID(v int) *PlaybackEventUpdate {
	_u.mutation.ResetSentenceID()
	_u.mutation.SetSentenceID(v)
	return _u
}

// SetNillableSentenceID sets the "sentence_id" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableSentenceID(v *int) *PlaybackEventUpdate {
	if v != nil {
		_u.SetSentenceID(*v)
	}
	return _u
}

// AddSentenceID adds value to the "sentence_id" field.
func (_u *PlaybackEventUpdate) AddSentenceID(v int) *PlaybackEventUpdate {
	_u.mutation.AddSentenceID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *PlaybackEventUpdate) SetAction(v string) *PlaybackEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableAction(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPlaylistIndex sets the "playlist_index" field.
func (_u *PlaybackEventUpdate) SetPlaylistIndex(v int) *PlaybackEventUpdate {
	_u.mutation.ResetPlaylistIndex()
	_u.mutation.SetPlaylistIndex(v)
	return _u
}

// SetNillablePlaylistIndex sets the "playlist_index" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillablePlaylistIndex(v *int) *PlaybackEventUpdate {
	if v != nil {
		_u.SetPlaylistIndex(*v)
	}
	return _u
}

// AddPlaylistIndex adds value to the "playlist_index" field.
func (_u *PlaybackEventUpdate) AddPlaylistIndex(v int) *PlaybackEventUpdate {
	_u.mutation.AddPlaylistIndex(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlaybackEventUpdate) SetErrorMessage(v string) *PlaybackEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableErrorMessage(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_u *PlaybackEventUpdate) Mutation() *PlaybackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlaybackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlaybackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybackEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := playbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := playbackevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *PlaybackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbackevent.Table, playbackevent.Columns, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(playbackevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SentenceID(); ok {
		_spec.SetField(playbackevent.FieldSentenceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentenceID(); ok {
		_spec.AddField(playbackevent.FieldSentenceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(playbackevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaylistIndex(); ok {
		_spec.SetField(playbackevent.FieldPlaylistIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlaylistIndex(); ok {
		_spec.AddField(playbackevent.FieldPlaylistIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(playbackevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlaybackEventUpdateOne is the builder for updating a single PlaybackEvent entity.
type PlaybackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlaybackEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PlaybackEventUpdateOne) SetSessionID(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableSessionID(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSentenceID sets the "sentence_id" field.
func (_u *PlaybackEventUpdateOne) SetSentenceID(v int) *PlaybackEventUpdateOne {
	_u.mutation.ResetSentenceID()
	_u.mutation.SetSentenceID(v)
	return _u
}

// SetNillableSentenceID sets the "sentence_id" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableSentenceID(v *int) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetSentenceID(*v)
	}
	return _u
}

// AddSentenceID adds value to the "sentence_id" field.
func (_u *PlaybackEventUpdateOne) AddSentenceID(v int) *PlaybackEventUpdateOne {
	_u.mutation.AddSentenceID(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *PlaybackEventUpdateOne) SetAction(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableAction(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPlaylistIndex sets the "playlist_index" field.
func (_u *PlaybackEventUpdateOne) SetPlaylistIndex(v int) *PlaybackEventUpdateOne {
	_u.mutation.ResetPlaylistIndex()
	_u.mutation.SetPlaylistIndex(v)
	return _u
}

// SetNillablePlaylistIndex sets the "playlist_index" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillablePlaylistIndex(v *int) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetPlaylistIndex(*v)
	}
	return _u
}

// AddPlaylistIndex adds value to the "playlist_index" field.
func (_u *PlaybackEventUpdateOne) AddPlaylistIndex(v int) *PlaybackEventUpdateOne {
	_u.mutation.AddPlaylistIndex(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlaybackEventUpdateOne) SetErrorMessage(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableErrorMessage(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_u *PlaybackEventUpdateOne) Mutation() *PlaybackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlaybackEventUpdate builder.
func (_u *PlaybackEventUpdateOne) Where(ps ...predicate.PlaybackEvent) *PlaybackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlaybackEventUpdateOne) Select(field string, fields ...string) *PlaybackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlaybackEvent entity.
func (_u *PlaybackEventUpdateOne) Save(ctx context.Context) (*PlaybackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybackEventUpdateOne) SaveX(ctx context.Context) *PlaybackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlaybackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybackEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := playbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := playbackevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *PlaybackEventUpdateOne) sqlSave(ctx context.Context) (_node *PlaybackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbackevent.Table, playbackevent.Columns, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlaybackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playbackevent.FieldID)
		for _, f := range fields {
			if !playbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playbackevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(playbackevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SentenceID(); ok {
		_spec.SetField(playbackevent.FieldSentenceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSentenceID(); ok {
		_spec.AddField(playbackevent.FieldSentenceID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(playbackevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaylistIndex(); ok {
		_spec.SetField(playbackevent.FieldPlaylistIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlaylistIndex(); ok {
		_spec.AddField(playbackevent.FieldPlaylistIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(playbackevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &PlaybackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
