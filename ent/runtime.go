// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/listen2bea/listen2bea/ent/llmrequestevent"
	"github.com/listen2bea/listen2bea/ent/playbackevent"
	"github.com/listen2bea/listen2bea/ent/schema"
	"github.com/listen2bea/listen2bea/ent/sessionevent"
	"github.com/listen2bea/listen2bea/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	playbackeventMixin := schema.PlaybackEvent{}.Mixin()
	playbackeventMixinFields0 := playbackeventMixin[0].Fields()
	_ = playbackeventMixinFields0
	playbackeventFields := schema.PlaybackEvent{}.Fields()
	_ = playbackeventFields
	// playbackeventDescTimestamp is the schema descriptor for timestamp field.
	playbackeventDescTimestamp := playbackeventMixinFields0[1].Descriptor()
	// playbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	playbackevent.DefaultTimestamp = playbackeventDescTimestamp.Default.(func() time.Time)
	// playbackeventDescSessionID is the schema descriptor for session_id field.
	playbackeventDescSessionID := playbackeventFields[0].Descriptor()
	// playbackevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	playbackevent.SessionIDValidator = playbackeventDescSessionID.Validators[0].(func(string) error)
	// playbackeventDescAction is the schema descriptor for action field.
	playbackeventDescAction := playbackeventFields[2].Descriptor()
	// playbackevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	playbackevent.ActionValidator = playbackeventDescAction.Validators[0].(func(string) error)
	// playbackeventDescPlaylistIndex is the schema descriptor for playlist_index field.
	playbackeventDescPlaylistIndex := playbackeventFields[3].Descriptor()
	// playbackevent.DefaultPlaylistIndex holds the default value on creation for the playlist_index field.
	playbackevent.DefaultPlaylistIndex = playbackeventDescPlaylistIndex.Default.(int)
	// playbackeventDescErrorMessage is the schema descriptor for error_message field.
	playbackeventDescErrorMessage := playbackeventFields[4].Descriptor()
	// playbackevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	playbackevent.DefaultErrorMessage = playbackeventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescFromLang is the schema descriptor for from_lang field.
	sessioneventDescFromLang := sessioneventFields[2].Descriptor()
	// sessionevent.FromLangValidator is a validator for the "from_lang" field. It is called by the builders before save.
	sessionevent.FromLangValidator = sessioneventDescFromLang.Validators[0].(func(string) error)
	// sessioneventDescToLang is the schema descriptor for to_lang field.
	sessioneventDescToLang := sessioneventFields[3].Descriptor()
	// sessionevent.ToLangValidator is a validator for the "to_lang" field. It is called by the builders before save.
	sessionevent.ToLangValidator = sessioneventDescToLang.Validators[0].(func(string) error)
	// sessioneventDescSentencesPlayed is the schema descriptor for sentences_played field.
	sessioneventDescSentencesPlayed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultSentencesPlayed holds the default value on creation for the sentences_played field.
	sessionevent.DefaultSentencesPlayed = sessioneventDescSentencesPlayed.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
