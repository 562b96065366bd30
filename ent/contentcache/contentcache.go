// Code generated by ent, DO NOT EDIT.

package contentcache

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contentcache type in the database.
	Label = "content_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// Table holds the table name of the contentcache in the database.
	Table = "content_caches"
)

// Columns holds all SQL columns for contentcache fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldMode,
	FieldContent,
	FieldFetchedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// DefaultFetchedAt holds the default value on creation for the "fetched_at" field.
	DefaultFetchedAt func() time.Time
	// UpdateDefaultFetchedAt holds the default value on update for the "fetched_at" field.
	UpdateDefaultFetchedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// Mode values.
const (
	ModeLearn  Mode = "learn"
	ModeRevise Mode = "revise"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeLearn, ModeRevise:
		return nil
	default:
		return fmt.Errorf("contentcache: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the ContentCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}
