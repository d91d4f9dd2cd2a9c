package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records listening session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("from_lang").
			NotEmpty().
			Comment("Language being practiced, ISO 639-3"),
		field.String("to_lang").
			NotEmpty().
			Comment("Translation language, ISO 639-3"),
		field.Int("sentences_played").
			Default(0).
			Comment("Sentences completed (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session length in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
