package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageEvent records a single granted use of an AI feature.
type UsageEvent struct {
	ent.Schema
}

func (UsageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		EventMixin{},
	}
}

func (UsageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("feature").
			NotEmpty(),
		field.String("session_id").
			Optional(),
		field.Int("count_after").
			Comment("Daily usage count after this grant"),
	}
}

func (UsageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "feature"),
	}
}
