// Code generated by ent, DO NOT EDIT.

package playbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/listen2bea/listen2bea/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSessionID, v))
}

// SentenceID applies equality check predicate on the "sentence_id" field. It's identical to SentenceIDEQ.
func SentenceID(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSentenceID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldAction, v))
}

// PlaylistIndex applies equality check predicate on the "playlist_index" field. It's identical to PlaylistIndexEQ.
func PlaylistIndex(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldPlaylistIndex, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SentenceIDEQ applies the EQ predicate on the "sentence_id" field.
func SentenceIDEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSentenceID, v))
}

// SentenceIDNEQ applies the NEQ predicate on the "sentence_id" field.
func SentenceIDNEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldSentenceID, v))
}

// SentenceIDIn applies the In predicate on the "sentence_id" field.
func SentenceIDIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldSentenceID, vs...))
}

// SentenceIDNotIn applies the NotIn predicate on the "sentence_id" field.
func SentenceIDNotIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldSentenceID, vs...))
}

// SentenceIDGT applies the GT predicate on the "sentence_id" field.
func SentenceIDGT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldSentenceID, v))
}

// SentenceIDGTE applies the GTE predicate on the "sentence_id" field.
func SentenceIDGTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldSentenceID, v))
}

// SentenceIDLT applies the LT predicate on the "sentence_id" field.
func SentenceIDLT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldSentenceID, v))
}

// SentenceIDLTE applies the LTE predicate on the "sentence_id" field.
func SentenceIDLTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldSentenceID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldAction, v))
}

// PlaylistIndexEQ applies the EQ predicate on the "playlist_index" field.
func PlaylistIndexEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldPlaylistIndex, v))
}

// PlaylistIndexNEQ applies the NEQ predicate on the "playlist_index" field.
func PlaylistIndexNEQ(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldPlaylistIndex, v))
}

// PlaylistIndexIn applies the In predicate on the "playlist_index" field.
func PlaylistIndexIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldPlaylistIndex, vs...))
}

// PlaylistIndexNotIn applies the NotIn predicate on the "playlist_index" field.
func PlaylistIndexNotIn(vs ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldPlaylistIndex, vs...))
}

// PlaylistIndexGT applies the GT predicate on the "playlist_index" field.
func PlaylistIndexGT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldPlaylistIndex, v))
}

// PlaylistIndexGTE applies the GTE predicate on the "playlist_index" field.
func PlaylistIndexGTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldPlaylistIndex, v))
}

// PlaylistIndexLT applies the LT predicate on the "playlist_index" field.
func PlaylistIndexLT(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldPlaylistIndex, v))
}

// PlaylistIndexLTE applies the LTE predicate on the "playlist_index" field.
func PlaylistIndexLTE(v int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldPlaylistIndex, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.NotPredicates(p))
}
