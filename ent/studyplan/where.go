// Code generated by ent, DO NOT EDIT.

package studyplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/praxisprep/praxis/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldPlanID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUserID, v))
}

// Document applies equality check predicate on the "document" field. It's identical to DocumentEQ.
func Document(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldDocument, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldPlanID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldUserID, v))
}

// DocumentEQ applies the EQ predicate on the "document" field.
func DocumentEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldDocument, v))
}

// DocumentNEQ applies the NEQ predicate on the "document" field.
func DocumentNEQ(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldDocument, v))
}

// DocumentIn applies the In predicate on the "document" field.
func DocumentIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldDocument, vs...))
}

// DocumentNotIn applies the NotIn predicate on the "document" field.
func DocumentNotIn(vs ...string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldDocument, vs...))
}

// DocumentGT applies the GT predicate on the "document" field.
func DocumentGT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldDocument, v))
}

// DocumentGTE applies the GTE predicate on the "document" field.
func DocumentGTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldDocument, v))
}

// DocumentLT applies the LT predicate on the "document" field.
func DocumentLT(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldDocument, v))
}

// DocumentLTE applies the LTE predicate on the "document" field.
func DocumentLTE(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldDocument, v))
}

// DocumentContains applies the Contains predicate on the "document" field.
func DocumentContains(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContains(FieldDocument, v))
}

// DocumentHasPrefix applies the HasPrefix predicate on the "document" field.
func DocumentHasPrefix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasPrefix(FieldDocument, v))
}

// DocumentHasSuffix applies the HasSuffix predicate on the "document" field.
func DocumentHasSuffix(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldHasSuffix(FieldDocument, v))
}

// DocumentEqualFold applies the EqualFold predicate on the "document" field.
func DocumentEqualFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEqualFold(FieldDocument, v))
}

// DocumentContainsFold applies the ContainsFold predicate on the "document" field.
func DocumentContainsFold(v string) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldContainsFold(FieldDocument, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudyPlan {
	return predicate.StudyPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyPlan) predicate.StudyPlan {
	return predicate.StudyPlan(sql.NotPredicates(p))
}
