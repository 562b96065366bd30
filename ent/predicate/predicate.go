// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatEvent is the predicate function for chatevent builders.
type ChatEvent func(*sql.Selector)

// ContentCache is the predicate function for contentcache builders.
type ContentCache func(*sql.Selector)

// KVEntry is the predicate function for kventry builders.
type KVEntry func(*sql.Selector)

// QuizEvent is the predicate function for quizevent builders.
type QuizEvent func(*sql.Selector)

// StudyPlan is the predicate function for studyplan builders.
type StudyPlan func(*sql.Selector)

// UsageEvent is the predicate function for usageevent builders.
type UsageEvent func(*sql.Selector)
