package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records the scored outcome of one submitted response.
// The response text itself is never stored.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the writing session"),
		field.String("topic_id").
			Default("").
			Comment("Topic bank ID, empty for ad-hoc prompts"),
		field.String("topic_title").
			Default(""),
		field.Int("word_count").
			Default(0),
		field.Int("wpm").
			Default(0),
		field.Int("score").
			Default(0),
		field.String("grade").
			NotEmpty().
			Comment("A, B, C, D or F"),
		field.Float("active_secs").
			Default(0).
			Comment("Active writing time fed to the scorer"),
		field.Int("duration_secs").
			Default(0).
			Comment("Configured session length"),
		field.Bool("auto_submitted").
			Default(false).
			Comment("Submitted by the countdown rather than the writer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
	}
}
