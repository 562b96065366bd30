// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/praxisprep/praxis/ent/chatevent"
	"github.com/praxisprep/praxis/ent/contentcache"
	"github.com/praxisprep/praxis/ent/kventry"
	"github.com/praxisprep/praxis/ent/quizevent"
	"github.com/praxisprep/praxis/ent/schema"
	"github.com/praxisprep/praxis/ent/studyplan"
	"github.com/praxisprep/praxis/ent/usageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chateventMixin := schema.ChatEvent{}.Mixin()
	chateventMixinFields0 := chateventMixin[0].Fields()
	_ = chateventMixinFields0
	chateventFields := schema.ChatEvent{}.Fields()
	_ = chateventFields
	// chateventDescTimestamp is the schema descriptor for timestamp field.
	chateventDescTimestamp := chateventMixinFields0[1].Descriptor()
	// chatevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatevent.DefaultTimestamp = chateventDescTimestamp.Default.(func() time.Time)
	// chateventDescSessionID is the schema descriptor for session_id field.
	chateventDescSessionID := chateventFields[0].Descriptor()
	// chatevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatevent.SessionIDValidator = chateventDescSessionID.Validators[0].(func(string) error)
	contentcacheFields := schema.ContentCache{}.Fields()
	_ = contentcacheFields
	// contentcacheDescTopicID is the schema descriptor for topic_id field.
	contentcacheDescTopicID := contentcacheFields[0].Descriptor()
	// contentcache.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	contentcache.TopicIDValidator = contentcacheDescTopicID.Validators[0].(func(string) error)
	// contentcacheDescFetchedAt is the schema descriptor for fetched_at field.
	contentcacheDescFetchedAt := contentcacheFields[3].Descriptor()
	// contentcache.DefaultFetchedAt holds the default value on creation for the fetched_at field.
	contentcache.DefaultFetchedAt = contentcacheDescFetchedAt.Default.(func() time.Time)
	// contentcache.UpdateDefaultFetchedAt holds the default value on update for the fetched_at field.
	contentcache.UpdateDefaultFetchedAt = contentcacheDescFetchedAt.UpdateDefault.(func() time.Time)
	kventryFields := schema.KVEntry{}.Fields()
	_ = kventryFields
	// kventryDescKey is the schema descriptor for key field.
	kventryDescKey := kventryFields[0].Descriptor()
	// kventry.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	kventry.KeyValidator = kventryDescKey.Validators[0].(func(string) error)
	// kventryDescUpdatedAt is the schema descriptor for updated_at field.
	kventryDescUpdatedAt := kventryFields[2].Descriptor()
	// kventry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	kventry.DefaultUpdatedAt = kventryDescUpdatedAt.Default.(func() time.Time)
	// kventry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	kventry.UpdateDefaultUpdatedAt = kventryDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescPlanID is the schema descriptor for plan_id field.
	studyplanDescPlanID := studyplanFields[0].Descriptor()
	// studyplan.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	studyplan.PlanIDValidator = studyplanDescPlanID.Validators[0].(func(string) error)
	// studyplanDescUserID is the schema descriptor for user_id field.
	studyplanDescUserID := studyplanFields[1].Descriptor()
	// studyplan.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studyplan.UserIDValidator = studyplanDescUserID.Validators[0].(func(string) error)
	// studyplanDescCreatedAt is the schema descriptor for created_at field.
	studyplanDescCreatedAt := studyplanFields[3].Descriptor()
	// studyplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyplan.DefaultCreatedAt = studyplanDescCreatedAt.Default.(func() time.Time)
	usageeventMixin := schema.UsageEvent{}.Mixin()
	usageeventMixinFields0 := usageeventMixin[0].Fields()
	_ = usageeventMixinFields0
	usageeventFields := schema.UsageEvent{}.Fields()
	_ = usageeventFields
	// usageeventDescTimestamp is the schema descriptor for timestamp field.
	usageeventDescTimestamp := usageeventMixinFields0[1].Descriptor()
	// usageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	usageevent.DefaultTimestamp = usageeventDescTimestamp.Default.(func() time.Time)
	// usageeventDescUserID is the schema descriptor for user_id field.
	usageeventDescUserID := usageeventFields[0].Descriptor()
	// usageevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	usageevent.UserIDValidator = usageeventDescUserID.Validators[0].(func(string) error)
	// usageeventDescFeature is the schema descriptor for feature field.
	usageeventDescFeature := usageeventFields[1].Descriptor()
	// usageevent.FeatureValidator is a validator for the "feature" field. It is called by the builders before save.
	usageevent.FeatureValidator = usageeventDescFeature.Validators[0].(func(string) error)
}
