package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:  1,
			FromLang: "spa",
			ToLang:   "eng",
			Settings: PlaybackSettings{
				PostSentenceDelayMs:    2500,
				PostTranslationDelayMs: 1500,
				RepeatOriginal:         true,
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.FromLang != "spa" || snap.Data.ToLang != "eng" {
		t.Errorf("languages = %s/%s, want spa/eng", snap.Data.FromLang, snap.Data.ToLang)
	}
	if !snap.Data.Settings.RepeatOriginal || snap.Data.Settings.PostSentenceDelayMs != 2500 {
		t.Errorf("settings = %+v", snap.Data.Settings)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionEventsAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: SessionStart, FromLang: "spa", ToLang: "eng",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: SessionEnd, FromLang: "spa", ToLang: "eng",
		SentencesPlayed: 12, DurationSecs: 300,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s2", Action: SessionEnd, FromLang: "fra", ToLang: "eng",
		SentencesPlayed: 3, DurationSecs: 90,
	})
	if err != nil {
		t.Fatalf("append end 2: %v", err)
	}

	sessions, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2 (start events excluded)", len(sessions))
	}
	// Newest first.
	if sessions[0].SessionID != "s2" || sessions[1].SessionID != "s1" {
		t.Errorf("order = %s, %s, want s2, s1", sessions[0].SessionID, sessions[1].SessionID)
	}
	if sessions[1].SentencesPlayed != 12 || sessions[1].DurationSecs != 300 {
		t.Errorf("s1 summary = %+v", sessions[1])
	}
}

func TestStatsAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, data := range []SessionEventData{
		{SessionID: "s1", Action: SessionEnd, FromLang: "spa", ToLang: "eng", SentencesPlayed: 10, DurationSecs: 200},
		{SessionID: "s2", Action: SessionEnd, FromLang: "spa", ToLang: "eng", SentencesPlayed: 5, DurationSecs: 100},
	} {
		if err := repo.AppendSessionEvent(ctx, data); err != nil {
			t.Fatalf("append session: %v", err)
		}
	}
	for _, data := range []PlaybackEventData{
		{SessionID: "s1", SentenceID: 1, Action: PlaybackCompleted},
		{SessionID: "s1", SentenceID: 2, Action: PlaybackSkipped, PlaylistIndex: 1},
		{SessionID: "s1", SentenceID: 3, Action: PlaybackError, ErrorMessage: "mpv exited 2"},
	} {
		if err := repo.AppendPlaybackEvent(ctx, data); err != nil {
			t.Fatalf("append playback: %v", err)
		}
	}
	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "explain",
		InputTokens: 120, OutputTokens: 80, LatencyMs: 900, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Sessions != 2 || stats.SentencesPlayed != 15 || stats.ListeningSecs != 300 {
		t.Errorf("session stats = %+v", stats)
	}
	if stats.Skipped != 1 || stats.PlaybackErrors != 1 {
		t.Errorf("playback stats = %+v", stats)
	}
	if stats.LLMRequests != 1 || stats.InputTokens != 120 || stats.OutputTokens != 80 {
		t.Errorf("llm stats = %+v", stats)
	}
}
