package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a badge award.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_id").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("session_id").NotEmpty(),
		field.String("reason").NotEmpty(),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("badge_id"),
		index.Fields("session_id"),
	}
}
