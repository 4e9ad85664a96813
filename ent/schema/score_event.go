package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEvent records points awarded for one exercise item.
type ScoreEvent struct {
	ent.Schema
}

func (ScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("checklist, quiz, truefalse, casestudy or association"),
		field.Int("points"),
		field.Int("total").
			Comment("Session score after the award"),
	}
}

func (ScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
