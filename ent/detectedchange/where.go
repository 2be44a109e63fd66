// Code generated by ent, DO NOT EDIT.

package detectedchange

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldPageID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldUserID, v))
}

// Element applies equality check predicate on the "element" field. It's identical to ElementEQ.
func Element(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldElement, v))
}

// BeforeValue applies equality check predicate on the "before_value" field. It's identical to BeforeValueEQ.
func BeforeValue(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldBeforeValue, v))
}

// AfterValue applies equality check predicate on the "after_value" field. It's identical to AfterValueEQ.
func AfterValue(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldAfterValue, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldDescription, v))
}

// FirstDetectedAt applies equality check predicate on the "first_detected_at" field. It's identical to FirstDetectedAtEQ.
func FirstDetectedAt(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldFirstDetectedAt, v))
}

// DetectedOn applies equality check predicate on the "detected_on" field. It's identical to DetectedOnEQ.
func DetectedOn(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldDetectedOn, v))
}

// FirstDetectedAnalysisID applies equality check predicate on the "first_detected_analysis_id" field. It's identical to FirstDetectedAnalysisIDEQ.
func FirstDetectedAnalysisID(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldFirstDetectedAnalysisID, v))
}

// Hypothesis applies equality check predicate on the "hypothesis" field. It's identical to HypothesisEQ.
func Hypothesis(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldHypothesis, v))
}

// CorrelationUnlockedAt applies equality check predicate on the "correlation_unlocked_at" field. It's identical to CorrelationUnlockedAtEQ.
func CorrelationUnlockedAt(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldCorrelationUnlockedAt, v))
}

// ObservationText applies equality check predicate on the "observation_text" field. It's identical to ObservationTextEQ.
func ObservationText(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldObservationText, v))
}

// MatchConfidence applies equality check predicate on the "match_confidence" field. It's identical to MatchConfidenceEQ.
func MatchConfidence(v float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldMatchConfidence, v))
}

// MatchRationale applies equality check predicate on the "match_rationale" field. It's identical to MatchRationaleEQ.
func MatchRationale(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldMatchRationale, v))
}

// RevertedAt applies equality check predicate on the "reverted_at" field. It's identical to RevertedAtEQ.
func RevertedAt(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldRevertedAt, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldPageID, vs...))
}

// PageIDGT applies the GT predicate on the "page_id" field.
func PageIDGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldPageID, v))
}

// PageIDGTE applies the GTE predicate on the "page_id" field.
func PageIDGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldPageID, v))
}

// PageIDLT applies the LT predicate on the "page_id" field.
func PageIDLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldPageID, v))
}

// PageIDLTE applies the LTE predicate on the "page_id" field.
func PageIDLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldPageID, v))
}

// PageIDContains applies the Contains predicate on the "page_id" field.
func PageIDContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldPageID, v))
}

// PageIDHasPrefix applies the HasPrefix predicate on the "page_id" field.
func PageIDHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldPageID, v))
}

// PageIDHasSuffix applies the HasSuffix predicate on the "page_id" field.
func PageIDHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldPageID, v))
}

// PageIDEqualFold applies the EqualFold predicate on the "page_id" field.
func PageIDEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldPageID, v))
}

// PageIDContainsFold applies the ContainsFold predicate on the "page_id" field.
func PageIDContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldPageID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldUserID, v))
}

// ElementEQ applies the EQ predicate on the "element" field.
func ElementEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldElement, v))
}

// ElementNEQ applies the NEQ predicate on the "element" field.
func ElementNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldElement, v))
}

// ElementIn applies the In predicate on the "element" field.
func ElementIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldElement, vs...))
}

// ElementNotIn applies the NotIn predicate on the "element" field.
func ElementNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldElement, vs...))
}

// ElementGT applies the GT predicate on the "element" field.
func ElementGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldElement, v))
}

// ElementGTE applies the GTE predicate on the "element" field.
func ElementGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldElement, v))
}

// ElementLT applies the LT predicate on the "element" field.
func ElementLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldElement, v))
}

// ElementLTE applies the LTE predicate on the "element" field.
func ElementLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldElement, v))
}

// ElementContains applies the Contains predicate on the "element" field.
func ElementContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldElement, v))
}

// ElementHasPrefix applies the HasPrefix predicate on the "element" field.
func ElementHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldElement, v))
}

// ElementHasSuffix applies the HasSuffix predicate on the "element" field.
func ElementHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldElement, v))
}

// ElementEqualFold applies the EqualFold predicate on the "element" field.
func ElementEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldElement, v))
}

// ElementContainsFold applies the ContainsFold predicate on the "element" field.
func ElementContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldElement, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v Scope) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v Scope) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...Scope) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...Scope) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldScope, vs...))
}

// BeforeValueEQ applies the EQ predicate on the "before_value" field.
func BeforeValueEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldBeforeValue, v))
}

// BeforeValueNEQ applies the NEQ predicate on the "before_value" field.
func BeforeValueNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldBeforeValue, v))
}

// BeforeValueIn applies the In predicate on the "before_value" field.
func BeforeValueIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldBeforeValue, vs...))
}

// BeforeValueNotIn applies the NotIn predicate on the "before_value" field.
func BeforeValueNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldBeforeValue, vs...))
}

// BeforeValueGT applies the GT predicate on the "before_value" field.
func BeforeValueGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldBeforeValue, v))
}

// BeforeValueGTE applies the GTE predicate on the "before_value" field.
func BeforeValueGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldBeforeValue, v))
}

// BeforeValueLT applies the LT predicate on the "before_value" field.
func BeforeValueLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldBeforeValue, v))
}

// BeforeValueLTE applies the LTE predicate on the "before_value" field.
func BeforeValueLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldBeforeValue, v))
}

// BeforeValueContains applies the Contains predicate on the "before_value" field.
func BeforeValueContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldBeforeValue, v))
}

// BeforeValueHasPrefix applies the HasPrefix predicate on the "before_value" field.
func BeforeValueHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldBeforeValue, v))
}

// BeforeValueHasSuffix applies the HasSuffix predicate on the "before_value" field.
func BeforeValueHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldBeforeValue, v))
}

// BeforeValueEqualFold applies the EqualFold predicate on the "before_value" field.
func BeforeValueEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldBeforeValue, v))
}

// BeforeValueContainsFold applies the ContainsFold predicate on the "before_value" field.
func BeforeValueContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldBeforeValue, v))
}

// AfterValueEQ applies the EQ predicate on the "after_value" field.
func AfterValueEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldAfterValue, v))
}

// AfterValueNEQ applies the NEQ predicate on the "after_value" field.
func AfterValueNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldAfterValue, v))
}

// AfterValueIn applies the In predicate on the "after_value" field.
func AfterValueIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldAfterValue, vs...))
}

// AfterValueNotIn applies the NotIn predicate on the "after_value" field.
func AfterValueNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldAfterValue, vs...))
}

// AfterValueGT applies the GT predicate on the "after_value" field.
func AfterValueGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldAfterValue, v))
}

// AfterValueGTE applies the GTE predicate on the "after_value" field.
func AfterValueGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldAfterValue, v))
}

// AfterValueLT applies the LT predicate on the "after_value" field.
func AfterValueLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldAfterValue, v))
}

// AfterValueLTE applies the LTE predicate on the "after_value" field.
func AfterValueLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldAfterValue, v))
}

// AfterValueContains applies the Contains predicate on the "after_value" field.
func AfterValueContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldAfterValue, v))
}

// AfterValueHasPrefix applies the HasPrefix predicate on the "after_value" field.
func AfterValueHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldAfterValue, v))
}

// AfterValueHasSuffix applies the HasSuffix predicate on the "after_value" field.
func AfterValueHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldAfterValue, v))
}

// AfterValueEqualFold applies the EqualFold predicate on the "after_value" field.
func AfterValueEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldAfterValue, v))
}

// AfterValueContainsFold applies the ContainsFold predicate on the "after_value" field.
func AfterValueContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldAfterValue, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldStatus, vs...))
}

// FirstDetectedAtEQ applies the EQ predicate on the "first_detected_at" field.
func FirstDetectedAtEQ(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldFirstDetectedAt, v))
}

// FirstDetectedAtNEQ applies the NEQ predicate on the "first_detected_at" field.
func FirstDetectedAtNEQ(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldFirstDetectedAt, v))
}

// FirstDetectedAtIn applies the In predicate on the "first_detected_at" field.
func FirstDetectedAtIn(vs ...time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldFirstDetectedAt, vs...))
}

// FirstDetectedAtNotIn applies the NotIn predicate on the "first_detected_at" field.
func FirstDetectedAtNotIn(vs ...time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldFirstDetectedAt, vs...))
}

// FirstDetectedAtGT applies the GT predicate on the "first_detected_at" field.
func FirstDetectedAtGT(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldFirstDetectedAt, v))
}

// FirstDetectedAtGTE applies the GTE predicate on the "first_detected_at" field.
func FirstDetectedAtGTE(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldFirstDetectedAt, v))
}

// FirstDetectedAtLT applies the LT predicate on the "first_detected_at" field.
func FirstDetectedAtLT(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldFirstDetectedAt, v))
}

// FirstDetectedAtLTE applies the LTE predicate on the "first_detected_at" field.
func FirstDetectedAtLTE(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldFirstDetectedAt, v))
}

// DetectedOnEQ applies the EQ predicate on the "detected_on" field.
func DetectedOnEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldDetectedOn, v))
}

// DetectedOnNEQ applies the NEQ predicate on the "detected_on" field.
func DetectedOnNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldDetectedOn, v))
}

// DetectedOnIn applies the In predicate on the "detected_on" field.
func DetectedOnIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldDetectedOn, vs...))
}

// DetectedOnNotIn applies the NotIn predicate on the "detected_on" field.
func DetectedOnNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldDetectedOn, vs...))
}

// DetectedOnGT applies the GT predicate on the "detected_on" field.
func DetectedOnGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldDetectedOn, v))
}

// DetectedOnGTE applies the GTE predicate on the "detected_on" field.
func DetectedOnGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldDetectedOn, v))
}

// DetectedOnLT applies the LT predicate on the "detected_on" field.
func DetectedOnLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldDetectedOn, v))
}

// DetectedOnLTE applies the LTE predicate on the "detected_on" field.
func DetectedOnLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldDetectedOn, v))
}

// DetectedOnContains applies the Contains predicate on the "detected_on" field.
func DetectedOnContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldDetectedOn, v))
}

// DetectedOnHasPrefix applies the HasPrefix predicate on the "detected_on" field.
func DetectedOnHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldDetectedOn, v))
}

// DetectedOnHasSuffix applies the HasSuffix predicate on the "detected_on" field.
func DetectedOnHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldDetectedOn, v))
}

// DetectedOnEqualFold applies the EqualFold predicate on the "detected_on" field.
func DetectedOnEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldDetectedOn, v))
}

// DetectedOnContainsFold applies the ContainsFold predicate on the "detected_on" field.
func DetectedOnContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldDetectedOn, v))
}

// FirstDetectedAnalysisIDEQ applies the EQ predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDNEQ applies the NEQ predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDIn applies the In predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldFirstDetectedAnalysisID, vs...))
}

// FirstDetectedAnalysisIDNotIn applies the NotIn predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldFirstDetectedAnalysisID, vs...))
}

// FirstDetectedAnalysisIDGT applies the GT predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDGTE applies the GTE predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDLT applies the LT predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDLTE applies the LTE predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDContains applies the Contains predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDHasPrefix applies the HasPrefix predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDHasSuffix applies the HasSuffix predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDIsNil applies the IsNil predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldFirstDetectedAnalysisID))
}

// FirstDetectedAnalysisIDNotNil applies the NotNil predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldFirstDetectedAnalysisID))
}

// FirstDetectedAnalysisIDEqualFold applies the EqualFold predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldFirstDetectedAnalysisID, v))
}

// FirstDetectedAnalysisIDContainsFold applies the ContainsFold predicate on the "first_detected_analysis_id" field.
func FirstDetectedAnalysisIDContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldFirstDetectedAnalysisID, v))
}

// HypothesisEQ applies the EQ predicate on the "hypothesis" field.
func HypothesisEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldHypothesis, v))
}

// HypothesisNEQ applies the NEQ predicate on the "hypothesis" field.
func HypothesisNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldHypothesis, v))
}

// HypothesisIn applies the In predicate on the "hypothesis" field.
func HypothesisIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldHypothesis, vs...))
}

// HypothesisNotIn applies the NotIn predicate on the "hypothesis" field.
func HypothesisNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldHypothesis, vs...))
}

// HypothesisGT applies the GT predicate on the "hypothesis" field.
func HypothesisGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldHypothesis, v))
}

// HypothesisGTE applies the GTE predicate on the "hypothesis" field.
func HypothesisGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldHypothesis, v))
}

// HypothesisLT applies the LT predicate on the "hypothesis" field.
func HypothesisLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldHypothesis, v))
}

// HypothesisLTE applies the LTE predicate on the "hypothesis" field.
func HypothesisLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldHypothesis, v))
}

// HypothesisContains applies the Contains predicate on the "hypothesis" field.
func HypothesisContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldHypothesis, v))
}

// HypothesisHasPrefix applies the HasPrefix predicate on the "hypothesis" field.
func HypothesisHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldHypothesis, v))
}

// HypothesisHasSuffix applies the HasSuffix predicate on the "hypothesis" field.
func HypothesisHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldHypothesis, v))
}

// HypothesisIsNil applies the IsNil predicate on the "hypothesis" field.
func HypothesisIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldHypothesis))
}

// HypothesisNotNil applies the NotNil predicate on the "hypothesis" field.
func HypothesisNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldHypothesis))
}

// HypothesisEqualFold applies the EqualFold predicate on the "hypothesis" field.
func HypothesisEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldHypothesis, v))
}

// HypothesisContainsFold applies the ContainsFold predicate on the "hypothesis" field.
func HypothesisContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldHypothesis, v))
}

// CorrelationMetricsIsNil applies the IsNil predicate on the "correlation_metrics" field.
func CorrelationMetricsIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldCorrelationMetrics))
}

// CorrelationMetricsNotNil applies the NotNil predicate on the "correlation_metrics" field.
func CorrelationMetricsNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldCorrelationMetrics))
}

// CorrelationUnlockedAtEQ applies the EQ predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtEQ(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldCorrelationUnlockedAt, v))
}

// CorrelationUnlockedAtNEQ applies the NEQ predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtNEQ(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldCorrelationUnlockedAt, v))
}

// CorrelationUnlockedAtIn applies the In predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtIn(vs ...time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldCorrelationUnlockedAt, vs...))
}

// CorrelationUnlockedAtNotIn applies the NotIn predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtNotIn(vs ...time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldCorrelationUnlockedAt, vs...))
}

// CorrelationUnlockedAtGT applies the GT predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtGT(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldCorrelationUnlockedAt, v))
}

// CorrelationUnlockedAtGTE applies the GTE predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtGTE(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldCorrelationUnlockedAt, v))
}

// CorrelationUnlockedAtLT applies the LT predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtLT(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldCorrelationUnlockedAt, v))
}

// CorrelationUnlockedAtLTE applies the LTE predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtLTE(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldCorrelationUnlockedAt, v))
}

// CorrelationUnlockedAtIsNil applies the IsNil predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldCorrelationUnlockedAt))
}

// CorrelationUnlockedAtNotNil applies the NotNil predicate on the "correlation_unlocked_at" field.
func CorrelationUnlockedAtNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldCorrelationUnlockedAt))
}

// ObservationTextEQ applies the EQ predicate on the "observation_text" field.
func ObservationTextEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldObservationText, v))
}

// ObservationTextNEQ applies the NEQ predicate on the "observation_text" field.
func ObservationTextNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldObservationText, v))
}

// ObservationTextIn applies the In predicate on the "observation_text" field.
func ObservationTextIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldObservationText, vs...))
}

// ObservationTextNotIn applies the NotIn predicate on the "observation_text" field.
func ObservationTextNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldObservationText, vs...))
}

// ObservationTextGT applies the GT predicate on the "observation_text" field.
func ObservationTextGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldObservationText, v))
}

// ObservationTextGTE applies the GTE predicate on the "observation_text" field.
func ObservationTextGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldObservationText, v))
}

// ObservationTextLT applies the LT predicate on the "observation_text" field.
func ObservationTextLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldObservationText, v))
}

// ObservationTextLTE applies the LTE predicate on the "observation_text" field.
func ObservationTextLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldObservationText, v))
}

// ObservationTextContains applies the Contains predicate on the "observation_text" field.
func ObservationTextContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldObservationText, v))
}

// ObservationTextHasPrefix applies the HasPrefix predicate on the "observation_text" field.
func ObservationTextHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldObservationText, v))
}

// ObservationTextHasSuffix applies the HasSuffix predicate on the "observation_text" field.
func ObservationTextHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldObservationText, v))
}

// ObservationTextIsNil applies the IsNil predicate on the "observation_text" field.
func ObservationTextIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldObservationText))
}

// ObservationTextNotNil applies the NotNil predicate on the "observation_text" field.
func ObservationTextNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldObservationText))
}

// ObservationTextEqualFold applies the EqualFold predicate on the "observation_text" field.
func ObservationTextEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldObservationText, v))
}

// ObservationTextContainsFold applies the ContainsFold predicate on the "observation_text" field.
func ObservationTextContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldObservationText, v))
}

// MatchConfidenceEQ applies the EQ predicate on the "match_confidence" field.
func MatchConfidenceEQ(v float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldMatchConfidence, v))
}

// MatchConfidenceNEQ applies the NEQ predicate on the "match_confidence" field.
func MatchConfidenceNEQ(v float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldMatchConfidence, v))
}

// MatchConfidenceIn applies the In predicate on the "match_confidence" field.
func MatchConfidenceIn(vs ...float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldMatchConfidence, vs...))
}

// MatchConfidenceNotIn applies the NotIn predicate on the "match_confidence" field.
func MatchConfidenceNotIn(vs ...float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldMatchConfidence, vs...))
}

// MatchConfidenceGT applies the GT predicate on the "match_confidence" field.
func MatchConfidenceGT(v float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldMatchConfidence, v))
}

// MatchConfidenceGTE applies the GTE predicate on the "match_confidence" field.
func MatchConfidenceGTE(v float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldMatchConfidence, v))
}

// MatchConfidenceLT applies the LT predicate on the "match_confidence" field.
func MatchConfidenceLT(v float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldMatchConfidence, v))
}

// MatchConfidenceLTE applies the LTE predicate on the "match_confidence" field.
func MatchConfidenceLTE(v float64) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldMatchConfidence, v))
}

// MatchConfidenceIsNil applies the IsNil predicate on the "match_confidence" field.
func MatchConfidenceIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldMatchConfidence))
}

// MatchConfidenceNotNil applies the NotNil predicate on the "match_confidence" field.
func MatchConfidenceNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldMatchConfidence))
}

// MatchRationaleEQ applies the EQ predicate on the "match_rationale" field.
func MatchRationaleEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldMatchRationale, v))
}

// MatchRationaleNEQ applies the NEQ predicate on the "match_rationale" field.
func MatchRationaleNEQ(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldMatchRationale, v))
}

// MatchRationaleIn applies the In predicate on the "match_rationale" field.
func MatchRationaleIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldMatchRationale, vs...))
}

// MatchRationaleNotIn applies the NotIn predicate on the "match_rationale" field.
func MatchRationaleNotIn(vs ...string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldMatchRationale, vs...))
}

// MatchRationaleGT applies the GT predicate on the "match_rationale" field.
func MatchRationaleGT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldMatchRationale, v))
}

// MatchRationaleGTE applies the GTE predicate on the "match_rationale" field.
func MatchRationaleGTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldMatchRationale, v))
}

// MatchRationaleLT applies the LT predicate on the "match_rationale" field.
func MatchRationaleLT(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldMatchRationale, v))
}

// MatchRationaleLTE applies the LTE predicate on the "match_rationale" field.
func MatchRationaleLTE(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldMatchRationale, v))
}

// MatchRationaleContains applies the Contains predicate on the "match_rationale" field.
func MatchRationaleContains(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContains(FieldMatchRationale, v))
}

// MatchRationaleHasPrefix applies the HasPrefix predicate on the "match_rationale" field.
func MatchRationaleHasPrefix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasPrefix(FieldMatchRationale, v))
}

// MatchRationaleHasSuffix applies the HasSuffix predicate on the "match_rationale" field.
func MatchRationaleHasSuffix(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldHasSuffix(FieldMatchRationale, v))
}

// MatchRationaleIsNil applies the IsNil predicate on the "match_rationale" field.
func MatchRationaleIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldMatchRationale))
}

// MatchRationaleNotNil applies the NotNil predicate on the "match_rationale" field.
func MatchRationaleNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldMatchRationale))
}

// MatchRationaleEqualFold applies the EqualFold predicate on the "match_rationale" field.
func MatchRationaleEqualFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEqualFold(FieldMatchRationale, v))
}

// MatchRationaleContainsFold applies the ContainsFold predicate on the "match_rationale" field.
func MatchRationaleContainsFold(v string) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldContainsFold(FieldMatchRationale, v))
}

// RevertedAtEQ applies the EQ predicate on the "reverted_at" field.
func RevertedAtEQ(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldEQ(FieldRevertedAt, v))
}

// RevertedAtNEQ applies the NEQ predicate on the "reverted_at" field.
func RevertedAtNEQ(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNEQ(FieldRevertedAt, v))
}

// RevertedAtIn applies the In predicate on the "reverted_at" field.
func RevertedAtIn(vs ...time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIn(FieldRevertedAt, vs...))
}

// RevertedAtNotIn applies the NotIn predicate on the "reverted_at" field.
func RevertedAtNotIn(vs ...time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotIn(FieldRevertedAt, vs...))
}

// RevertedAtGT applies the GT predicate on the "reverted_at" field.
func RevertedAtGT(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGT(FieldRevertedAt, v))
}

// RevertedAtGTE applies the GTE predicate on the "reverted_at" field.
func RevertedAtGTE(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldGTE(FieldRevertedAt, v))
}

// RevertedAtLT applies the LT predicate on the "reverted_at" field.
func RevertedAtLT(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLT(FieldRevertedAt, v))
}

// RevertedAtLTE applies the LTE predicate on the "reverted_at" field.
func RevertedAtLTE(v time.Time) predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldLTE(FieldRevertedAt, v))
}

// RevertedAtIsNil applies the IsNil predicate on the "reverted_at" field.
func RevertedAtIsNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldIsNull(FieldRevertedAt))
}

// RevertedAtNotNil applies the NotNil predicate on the "reverted_at" field.
func RevertedAtNotNil() predicate.DetectedChange {
	return predicate.DetectedChange(sql.FieldNotNull(FieldRevertedAt))
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.Page) predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.ChangeCheckpoint) predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLifecycleEvents applies the HasEdge predicate on the "lifecycle_events" edge.
func HasLifecycleEvents() predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LifecycleEventsTable, LifecycleEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLifecycleEventsWith applies the HasEdge predicate on the "lifecycle_events" edge with a given conditions (other predicates).
func HasLifecycleEventsWith(preds ...predicate.ChangeLifecycleEvent) predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := newLifecycleEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutcomeFeedback applies the HasEdge predicate on the "outcome_feedback" edge.
func HasOutcomeFeedback() predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutcomeFeedbackTable, OutcomeFeedbackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutcomeFeedbackWith applies the HasEdge predicate on the "outcome_feedback" edge with a given conditions (other predicates).
func HasOutcomeFeedbackWith(preds ...predicate.OutcomeFeedback) predicate.DetectedChange {
	return predicate.DetectedChange(func(s *sql.Selector) {
		step := newOutcomeFeedbackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DetectedChange) predicate.DetectedChange {
	return predicate.DetectedChange(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DetectedChange) predicate.DetectedChange {
	return predicate.DetectedChange(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DetectedChange) predicate.DetectedChange {
	return predicate.DetectedChange(sql.NotPredicates(p))
}
