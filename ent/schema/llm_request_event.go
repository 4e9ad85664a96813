package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LLMRequestEvent records every tutor call for cost tracking and debugging.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Default("").
			Comment("Provider name: gemini, anthropic, openai, openrouter"),
		field.String("model").
			Default("").
			Comment("Actual model ID used"),
		field.String("purpose").
			Default("").
			Comment("explain, analyze or deep-dive"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Default(""),
		field.Text("request_body").
			Default("").
			Comment("Readable rendering of the prompt"),
		field.Text("response_body").
			Default(""),
	}
}
