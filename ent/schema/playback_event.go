package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlaybackEvent records what happened to a single sentence during a
// session: completed, skipped over, or failed to play.
type PlaybackEvent struct {
	ent.Schema
}

func (PlaybackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlaybackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session this playback belongs to"),
		field.Int("sentence_id").
			Comment("Tatoeba sentence ID"),
		field.String("action").
			NotEmpty().
			Comment("completed, skipped, or error"),
		field.Int("playlist_index").
			Default(0).
			Comment("Position in the playlist at the time"),
		field.String("error_message").
			Default("").
			Comment("Player error if action is error"),
	}
}

func (PlaybackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("sentence_id"),
	}
}
