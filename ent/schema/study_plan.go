package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyPlan stores a generated weekly study plan as the raw JSON
// document returned by the backend, keyed by user.
type StudyPlan struct {
	ent.Schema
}

func (StudyPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.Text("document").
			Comment("Plan payload as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudyPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
