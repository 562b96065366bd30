package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentCache holds generated study content so revisiting a topic in
// the same mode does not cost another backend call.
type ContentCache struct {
	ent.Schema
}

func (ContentCache) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			NotEmpty(),
		field.Enum("mode").
			Values("learn", "revise"),
		field.Text("content"),
		field.Time("fetched_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ContentCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "mode").Unique(),
	}
}
