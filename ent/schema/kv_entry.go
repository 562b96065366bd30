package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KVEntry is a generic key/value row used for small persisted records
// such as per-user usage counters. Values are JSON documents stored as
// text so the layout stays portable across clients.
type KVEntry struct {
	ent.Schema
}

func (KVEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.String("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (KVEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
