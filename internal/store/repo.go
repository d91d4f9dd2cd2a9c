package store

import (
	"context"
	"time"
)

// PlaybackSettings is the persisted form of the sequencer timing
// preferences.
type PlaybackSettings struct {
	PostSentenceDelayMs    int64 `json:"post_sentence_delay_ms"`
	PostTranslationDelayMs int64 `json:"post_translation_delay_ms"`
	RepeatOriginal         bool  `json:"repeat_original"`
}

// SnapshotData captures the learner's preferences at a point in time.
type SnapshotData struct {
	Version  int              `json:"version"`
	FromLang string           `json:"from_lang,omitempty"`
	ToLang   string           `json:"to_lang,omitempty"`
	Settings PlaybackSettings `json:"settings"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Session actions.
const (
	SessionStart = "start"
	SessionEnd   = "end"
)

// Playback actions.
const (
	PlaybackCompleted = "completed"
	PlaybackSkipped   = "skipped"
	PlaybackError     = "error"
)

// SessionEventData captures one session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string
	FromLang        string
	ToLang          string
	SentencesPlayed int
	DurationSecs    int
}

// PlaybackEventData captures what happened to one sentence.
type PlaybackEventData struct {
	SessionID     string
	SentenceID    int
	Action        string
	PlaylistIndex int
	ErrorMessage  string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionSummary is one completed session as shown in history.
type SessionSummary struct {
	SessionID       string
	FromLang        string
	ToLang          string
	SentencesPlayed int
	DurationSecs    int
	EndedAt         time.Time
}

// Stats aggregates the event log for the stats command.
type Stats struct {
	Sessions        int
	SentencesPlayed int
	ListeningSecs   int
	Skipped         int
	PlaybackErrors  int
	LLMRequests     int
	InputTokens     int
	OutputTokens    int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendPlaybackEvent records a per-sentence playback outcome.
	AppendPlaybackEvent(ctx context.Context, data PlaybackEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns the most recently ended sessions, newest
	// first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// Stats aggregates the whole event log.
	Stats(ctx context.Context) (Stats, error)
}
