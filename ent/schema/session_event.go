package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records a training session starting or ending.
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
		field.String("identity").
			Comment("Name typed at the welcome gate"),
		field.String("role").
			Default(""),
		field.Int("score").
			Default(0).
			Comment("Cumulative points (on end only)"),
		field.Int("completed").
			Default(0).
			Comment("Items that paid out (on end only)"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
