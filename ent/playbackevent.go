// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/listen2bea/listen2bea/ent/playbackevent"
)

// PlaybackEvent is the model entity for the PlaybackEvent schema.
type PlaybackEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session this playback belongs to
	SessionID string `json:"session_id,omitempty"`
	// Tatoeba sentence ID
	SentenceID int `json:"sentence_id,omitempty"`
	// completed, skipped, or error
	Action string `json:"action,omitempty"`
	// Position in the playlist at the time
	PlaylistIndex int `json:"playlist_index,omitempty"`
	// Player error if action is error
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlaybackEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case playbackevent.FieldID, playbackevent.FieldSequence, playbackevent.FieldSentenceID, playbackevent.FieldPlaylistIndex:
			values[i] = new(sql.NullInt64)
		case playbackevent.FieldSessionID, playbackevent.FieldAction, playbackevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case playbackevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlaybackEvent fields.
func (_m *PlaybackEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case playbackevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case playbackevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case playbackevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case playbackevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case playbackevent.FieldSentenceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sentence_id", values[i])
			} else if value.Valid {
				_m.SentenceID = int(value.Int64)
			}
		case playbackevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case playbackevent.FieldPlaylistIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field playlist_index", values[i])
			} else if value.Valid {
				_m.PlaylistIndex = int(value.Int64)
			}
		case playbackevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlaybackEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlaybackEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlaybackEvent.
// Note that you need to call PlaybackEvent.Unwrap() before calling this method if this PlaybackEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlaybackEvent) Update() *PlaybackEventUpdateOne {
	return NewPlaybackEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlaybackEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlaybackEvent) Unwrap() *PlaybackEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlaybackEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlaybackEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlaybackEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("sentence_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SentenceID))
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("playlist_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlaylistIndex))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// PlaybackEvents is a parsable slice of PlaybackEvent.
type PlaybackEvents []*PlaybackEvent
