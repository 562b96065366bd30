// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatEventsColumns holds the columns for the "chat_events" table.
	ChatEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "flow", Type: field.TypeEnum, Enums: []string{"tutor", "planner"}},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// ChatEventsTable holds the schema information for the "chat_events" table.
	ChatEventsTable = &schema.Table{
		Name:       "chat_events",
		Columns:    ChatEventsColumns,
		PrimaryKey: []*schema.Column{ChatEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[1]},
			},
			{
				Name:    "chatevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[2]},
			},
			{
				Name:    "chatevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[3]},
			},
			{
				Name:    "chatevent_flow",
				Unique:  false,
				Columns: []*schema.Column{ChatEventsColumns[4]},
			},
		},
	}
	// ContentCachesColumns holds the columns for the "content_caches" table.
	ContentCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"learn", "revise"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "fetched_at", Type: field.TypeTime},
	}
	// ContentCachesTable holds the schema information for the "content_caches" table.
	ContentCachesTable = &schema.Table{
		Name:       "content_caches",
		Columns:    ContentCachesColumns,
		PrimaryKey: []*schema.Column{ContentCachesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentcache_topic_id_mode",
				Unique:  true,
				Columns: []*schema.Column{ContentCachesColumns[1], ContentCachesColumns[2]},
			},
		},
	}
	// KvEntriesColumns holds the columns for the "kv_entries" table.
	KvEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KvEntriesTable holds the schema information for the "kv_entries" table.
	KvEntriesTable = &schema.Table{
		Name:       "kv_entries",
		Columns:    KvEntriesColumns,
		PrimaryKey: []*schema.Column{KvEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "kventry_key",
				Unique:  true,
				Columns: []*schema.Column{KvEntriesColumns[1]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"started", "answered", "completed"}},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "question_index", Type: field.TypeInt, Nullable: true},
		{Name: "correct", Type: field.TypeBool, Nullable: true},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "total", Type: field.TypeInt, Nullable: true},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
		},
	}
	// StudyPlansColumns holds the columns for the "study_plans" table.
	StudyPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "document", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudyPlansTable holds the schema information for the "study_plans" table.
	StudyPlansTable = &schema.Table{
		Name:       "study_plans",
		Columns:    StudyPlansColumns,
		PrimaryKey: []*schema.Column{StudyPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyplan_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StudyPlansColumns[2], StudyPlansColumns[4]},
			},
		},
	}
	// UsageEventsColumns holds the columns for the "usage_events" table.
	UsageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "feature", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "count_after", Type: field.TypeInt},
	}
	// UsageEventsTable holds the schema information for the "usage_events" table.
	UsageEventsTable = &schema.Table{
		Name:       "usage_events",
		Columns:    UsageEventsColumns,
		PrimaryKey: []*schema.Column{UsageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[1]},
			},
			{
				Name:    "usageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[2]},
			},
			{
				Name:    "usageevent_user_id_feature",
				Unique:  false,
				Columns: []*schema.Column{UsageEventsColumns[3], UsageEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatEventsTable,
		ContentCachesTable,
		KvEntriesTable,
		QuizEventsTable,
		StudyPlansTable,
		UsageEventsTable,
	}
)

func init() {
}
