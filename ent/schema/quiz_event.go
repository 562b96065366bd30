package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz lifecycle activity: a session starting, an
// answer being revealed, or a session completing with its score.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		EventMixin{},
	}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Enum("kind").
			Values("started", "answered", "completed"),
		field.String("subject").
			Optional(),
		field.String("topic").
			Optional(),
		field.Int("question_index").
			Optional(),
		field.Bool("correct").
			Optional(),
		field.Int("score").
			Optional(),
		field.Int("total").
			Optional(),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
