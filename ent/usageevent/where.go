// Code generated by ent, DO NOT EDIT.

package usageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxisprep/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldUserID, v))
}

// Feature applies equality check predicate on the "feature" field. It's identical to FeatureEQ.
func Feature(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldFeature, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldSessionID, v))
}

// CountAfter applies equality check predicate on the "count_after" field. It's identical to CountAfterEQ.
func CountAfter(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCountAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldUserID, v))
}

// FeatureEQ applies the EQ predicate on the "feature" field.
func FeatureEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldFeature, v))
}

// FeatureNEQ applies the NEQ predicate on the "feature" field.
func FeatureNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldFeature, v))
}

// FeatureIn applies the In predicate on the "feature" field.
func FeatureIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldFeature, vs...))
}

// FeatureNotIn applies the NotIn predicate on the "feature" field.
func FeatureNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldFeature, vs...))
}

// FeatureGT applies the GT predicate on the "feature" field.
func FeatureGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldFeature, v))
}

// FeatureGTE applies the GTE predicate on the "feature" field.
func FeatureGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldFeature, v))
}

// FeatureLT applies the LT predicate on the "feature" field.
func FeatureLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldFeature, v))
}

// FeatureLTE applies the LTE predicate on the "feature" field.
func FeatureLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldFeature, v))
}

// FeatureContains applies the Contains predicate on the "feature" field.
func FeatureContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldFeature, v))
}

// FeatureHasPrefix applies the HasPrefix predicate on the "feature" field.
func FeatureHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldFeature, v))
}

// FeatureHasSuffix applies the HasSuffix predicate on the "feature" field.
func FeatureHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldFeature, v))
}

// FeatureEqualFold applies the EqualFold predicate on the "feature" field.
func FeatureEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldFeature, v))
}

// FeatureContainsFold applies the ContainsFold predicate on the "feature" field.
func FeatureContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldFeature, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// CountAfterEQ applies the EQ predicate on the "count_after" field.
func CountAfterEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldEQ(FieldCountAfter, v))
}

// CountAfterNEQ applies the NEQ predicate on the "count_after" field.
func CountAfterNEQ(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNEQ(FieldCountAfter, v))
}

// CountAfterIn applies the In predicate on the "count_after" field.
func CountAfterIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldIn(FieldCountAfter, vs...))
}

// CountAfterNotIn applies the NotIn predicate on the "count_after" field.
func CountAfterNotIn(vs ...int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldNotIn(FieldCountAfter, vs...))
}

// CountAfterGT applies the GT predicate on the "count_after" field.
func CountAfterGT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGT(FieldCountAfter, v))
}

// CountAfterGTE applies the GTE predicate on the "count_after" field.
func CountAfterGTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldGTE(FieldCountAfter, v))
}

// CountAfterLT applies the LT predicate on the "count_after" field.
func CountAfterLT(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLT(FieldCountAfter, v))
}

// CountAfterLTE applies the LTE predicate on the "count_after" field.
func CountAfterLTE(v int) predicate.UsageEvent {
	return predicate.UsageEvent(sql.FieldLTE(FieldCountAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageEvent) predicate.UsageEvent {
	return predicate.UsageEvent(sql.NotPredicates(p))
}
