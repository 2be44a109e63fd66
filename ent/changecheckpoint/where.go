// Code generated by ent, DO NOT EDIT.

package changecheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldContainsFold(FieldID, id))
}

// ChangeID applies equality check predicate on the "change_id" field. It's identical to ChangeIDEQ.
func ChangeID(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldChangeID, v))
}

// HorizonDays applies equality check predicate on the "horizon_days" field. It's identical to HorizonDaysEQ.
func HorizonDays(v int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldHorizonDays, v))
}

// BeforeWindowStart applies equality check predicate on the "before_window_start" field. It's identical to BeforeWindowStartEQ.
func BeforeWindowStart(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldBeforeWindowStart, v))
}

// BeforeWindowEnd applies equality check predicate on the "before_window_end" field. It's identical to BeforeWindowEndEQ.
func BeforeWindowEnd(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldBeforeWindowEnd, v))
}

// AfterWindowStart applies equality check predicate on the "after_window_start" field. It's identical to AfterWindowStartEQ.
func AfterWindowStart(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldAfterWindowStart, v))
}

// AfterWindowEnd applies equality check predicate on the "after_window_end" field. It's identical to AfterWindowEndEQ.
func AfterWindowEnd(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldAfterWindowEnd, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldReasoning, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldProvider, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldComputedAt, v))
}

// ChangeIDEQ applies the EQ predicate on the "change_id" field.
func ChangeIDEQ(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldChangeID, v))
}

// ChangeIDNEQ applies the NEQ predicate on the "change_id" field.
func ChangeIDNEQ(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldChangeID, v))
}

// ChangeIDIn applies the In predicate on the "change_id" field.
func ChangeIDIn(vs ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldChangeID, vs...))
}

// ChangeIDNotIn applies the NotIn predicate on the "change_id" field.
func ChangeIDNotIn(vs ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldChangeID, vs...))
}

// ChangeIDGT applies the GT predicate on the "change_id" field.
func ChangeIDGT(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldChangeID, v))
}

// ChangeIDGTE applies the GTE predicate on the "change_id" field.
func ChangeIDGTE(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldChangeID, v))
}

// ChangeIDLT applies the LT predicate on the "change_id" field.
func ChangeIDLT(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldChangeID, v))
}

// ChangeIDLTE applies the LTE predicate on the "change_id" field.
func ChangeIDLTE(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldChangeID, v))
}

// ChangeIDContains applies the Contains predicate on the "change_id" field.
func ChangeIDContains(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldContains(FieldChangeID, v))
}

// ChangeIDHasPrefix applies the HasPrefix predicate on the "change_id" field.
func ChangeIDHasPrefix(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldHasPrefix(FieldChangeID, v))
}

// ChangeIDHasSuffix applies the HasSuffix predicate on the "change_id" field.
func ChangeIDHasSuffix(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldHasSuffix(FieldChangeID, v))
}

// ChangeIDEqualFold applies the EqualFold predicate on the "change_id" field.
func ChangeIDEqualFold(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEqualFold(FieldChangeID, v))
}

// ChangeIDContainsFold applies the ContainsFold predicate on the "change_id" field.
func ChangeIDContainsFold(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldContainsFold(FieldChangeID, v))
}

// HorizonDaysEQ applies the EQ predicate on the "horizon_days" field.
func HorizonDaysEQ(v int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldHorizonDays, v))
}

// HorizonDaysNEQ applies the NEQ predicate on the "horizon_days" field.
func HorizonDaysNEQ(v int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldHorizonDays, v))
}

// HorizonDaysIn applies the In predicate on the "horizon_days" field.
func HorizonDaysIn(vs ...int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldHorizonDays, vs...))
}

// HorizonDaysNotIn applies the NotIn predicate on the "horizon_days" field.
func HorizonDaysNotIn(vs ...int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldHorizonDays, vs...))
}

// HorizonDaysGT applies the GT predicate on the "horizon_days" field.
func HorizonDaysGT(v int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldHorizonDays, v))
}

// HorizonDaysGTE applies the GTE predicate on the "horizon_days" field.
func HorizonDaysGTE(v int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldHorizonDays, v))
}

// HorizonDaysLT applies the LT predicate on the "horizon_days" field.
func HorizonDaysLT(v int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldHorizonDays, v))
}

// HorizonDaysLTE applies the LTE predicate on the "horizon_days" field.
func HorizonDaysLTE(v int) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldHorizonDays, v))
}

// BeforeWindowStartEQ applies the EQ predicate on the "before_window_start" field.
func BeforeWindowStartEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldBeforeWindowStart, v))
}

// BeforeWindowStartNEQ applies the NEQ predicate on the "before_window_start" field.
func BeforeWindowStartNEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldBeforeWindowStart, v))
}

// BeforeWindowStartIn applies the In predicate on the "before_window_start" field.
func BeforeWindowStartIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldBeforeWindowStart, vs...))
}

// BeforeWindowStartNotIn applies the NotIn predicate on the "before_window_start" field.
func BeforeWindowStartNotIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldBeforeWindowStart, vs...))
}

// BeforeWindowStartGT applies the GT predicate on the "before_window_start" field.
func BeforeWindowStartGT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldBeforeWindowStart, v))
}

// BeforeWindowStartGTE applies the GTE predicate on the "before_window_start" field.
func BeforeWindowStartGTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldBeforeWindowStart, v))
}

// BeforeWindowStartLT applies the LT predicate on the "before_window_start" field.
func BeforeWindowStartLT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldBeforeWindowStart, v))
}

// BeforeWindowStartLTE applies the LTE predicate on the "before_window_start" field.
func BeforeWindowStartLTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldBeforeWindowStart, v))
}

// BeforeWindowEndEQ applies the EQ predicate on the "before_window_end" field.
func BeforeWindowEndEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldBeforeWindowEnd, v))
}

// BeforeWindowEndNEQ applies the NEQ predicate on the "before_window_end" field.
func BeforeWindowEndNEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldBeforeWindowEnd, v))
}

// BeforeWindowEndIn applies the In predicate on the "before_window_end" field.
func BeforeWindowEndIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldBeforeWindowEnd, vs...))
}

// BeforeWindowEndNotIn applies the NotIn predicate on the "before_window_end" field.
func BeforeWindowEndNotIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldBeforeWindowEnd, vs...))
}

// BeforeWindowEndGT applies the GT predicate on the "before_window_end" field.
func BeforeWindowEndGT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldBeforeWindowEnd, v))
}

// BeforeWindowEndGTE applies the GTE predicate on the "before_window_end" field.
func BeforeWindowEndGTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldBeforeWindowEnd, v))
}

// BeforeWindowEndLT applies the LT predicate on the "before_window_end" field.
func BeforeWindowEndLT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldBeforeWindowEnd, v))
}

// BeforeWindowEndLTE applies the LTE predicate on the "before_window_end" field.
func BeforeWindowEndLTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldBeforeWindowEnd, v))
}

// AfterWindowStartEQ applies the EQ predicate on the "after_window_start" field.
func AfterWindowStartEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldAfterWindowStart, v))
}

// AfterWindowStartNEQ applies the NEQ predicate on the "after_window_start" field.
func AfterWindowStartNEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldAfterWindowStart, v))
}

// AfterWindowStartIn applies the In predicate on the "after_window_start" field.
func AfterWindowStartIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldAfterWindowStart, vs...))
}

// AfterWindowStartNotIn applies the NotIn predicate on the "after_window_start" field.
func AfterWindowStartNotIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldAfterWindowStart, vs...))
}

// AfterWindowStartGT applies the GT predicate on the "after_window_start" field.
func AfterWindowStartGT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldAfterWindowStart, v))
}

// AfterWindowStartGTE applies the GTE predicate on the "after_window_start" field.
func AfterWindowStartGTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldAfterWindowStart, v))
}

// AfterWindowStartLT applies the LT predicate on the "after_window_start" field.
func AfterWindowStartLT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldAfterWindowStart, v))
}

// AfterWindowStartLTE applies the LTE predicate on the "after_window_start" field.
func AfterWindowStartLTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldAfterWindowStart, v))
}

// AfterWindowEndEQ applies the EQ predicate on the "after_window_end" field.
func AfterWindowEndEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldAfterWindowEnd, v))
}

// AfterWindowEndNEQ applies the NEQ predicate on the "after_window_end" field.
func AfterWindowEndNEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldAfterWindowEnd, v))
}

// AfterWindowEndIn applies the In predicate on the "after_window_end" field.
func AfterWindowEndIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldAfterWindowEnd, vs...))
}

// AfterWindowEndNotIn applies the NotIn predicate on the "after_window_end" field.
func AfterWindowEndNotIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldAfterWindowEnd, vs...))
}

// AfterWindowEndGT applies the GT predicate on the "after_window_end" field.
func AfterWindowEndGT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldAfterWindowEnd, v))
}

// AfterWindowEndGTE applies the GTE predicate on the "after_window_end" field.
func AfterWindowEndGTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldAfterWindowEnd, v))
}

// AfterWindowEndLT applies the LT predicate on the "after_window_end" field.
func AfterWindowEndLT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldAfterWindowEnd, v))
}

// AfterWindowEndLTE applies the LTE predicate on the "after_window_end" field.
func AfterWindowEndLTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldAfterWindowEnd, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotNull(FieldMetrics))
}

// AssessmentEQ applies the EQ predicate on the "assessment" field.
func AssessmentEQ(v Assessment) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldAssessment, v))
}

// AssessmentNEQ applies the NEQ predicate on the "assessment" field.
func AssessmentNEQ(v Assessment) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldAssessment, v))
}

// AssessmentIn applies the In predicate on the "assessment" field.
func AssessmentIn(vs ...Assessment) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldAssessment, vs...))
}

// AssessmentNotIn applies the NotIn predicate on the "assessment" field.
func AssessmentNotIn(vs ...Assessment) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldAssessment, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotNull(FieldConfidence))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldContainsFold(FieldReasoning, v))
}

// DataSourcesIsNil applies the IsNil predicate on the "data_sources" field.
func DataSourcesIsNil() predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIsNull(FieldDataSources))
}

// DataSourcesNotNil applies the NotNil predicate on the "data_sources" field.
func DataSourcesNotNil() predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotNull(FieldDataSources))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldContainsFold(FieldProvider, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.FieldLTE(FieldComputedAt, v))
}

// HasChange applies the HasEdge predicate on the "change" edge.
func HasChange() predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChangeTable, ChangeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangeWith applies the HasEdge predicate on the "change" edge with a given conditions (other predicates).
func HasChangeWith(preds ...predicate.DetectedChange) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(func(s *sql.Selector) {
		step := newChangeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChangeCheckpoint) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChangeCheckpoint) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChangeCheckpoint) predicate.ChangeCheckpoint {
	return predicate.ChangeCheckpoint(sql.NotPredicates(p))
}
