package store

import (
	"context"
	"fmt"

	"github.com/listen2bea/listen2bea/ent/playbackevent"
	"github.com/listen2bea/listen2bea/ent/sessionevent"
)

func (r *eventRepo) AppendPlaybackEvent(ctx context.Context, data PlaybackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlaybackEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSentenceID(data.SentenceID).
		SetAction(data.Action).
		SetPlaylistIndex(data.PlaylistIndex).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save playback event: %w", err)
	}
	return nil
}

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	ends, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action(SessionEnd)).
		All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("query sessions: %w", err)
	}
	stats.Sessions = len(ends)
	for _, e := range ends {
		stats.SentencesPlayed += e.SentencesPlayed
		stats.ListeningSecs += e.DurationSecs
	}

	skipped, err := r.client.PlaybackEvent.Query().
		Where(playbackevent.Action(PlaybackSkipped)).
		Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count skipped: %w", err)
	}
	stats.Skipped = skipped

	failed, err := r.client.PlaybackEvent.Query().
		Where(playbackevent.Action(PlaybackError)).
		Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count playback errors: %w", err)
	}
	stats.PlaybackErrors = failed

	llm, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("query llm requests: %w", err)
	}
	stats.LLMRequests = len(llm)
	for _, e := range llm {
		stats.InputTokens += e.InputTokens
		stats.OutputTokens += e.OutputTokens
	}

	return stats, nil
}
