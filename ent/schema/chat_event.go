package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatEvent records one message exchanged in a tutoring or planner
// chat session, in either direction.
type ChatEvent struct {
	ent.Schema
}

func (ChatEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		EventMixin{},
	}
}

func (ChatEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Enum("flow").
			Values("tutor", "planner"),
		field.Enum("role").
			Values("user", "assistant"),
		field.Text("content"),
	}
}

func (ChatEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("flow"),
	}
}
