package store

import (
	"context"
	"fmt"

	"github.com/listen2bea/listen2bea/ent"
	"github.com/listen2bea/listen2bea/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetFromLang(data.FromLang).
		SetToLang(data.ToLang).
		SetSentencesPlayed(data.SentencesPlayed).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action(SessionEnd)).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		out = append(out, SessionSummary{
			SessionID:       e.SessionID,
			FromLang:        e.FromLang,
			ToLang:          e.ToLang,
			SentencesPlayed: e.SentencesPlayed,
			DurationSecs:    e.DurationSecs,
			EndedAt:         e.Timestamp,
		})
	}
	return out, nil
}
