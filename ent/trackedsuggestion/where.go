// Code generated by ent, DO NOT EDIT.

package trackedsuggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContainsFold(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldPageID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldTitle, v))
}

// Element applies equality check predicate on the "element" field. It's identical to ElementEQ.
func Element(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldElement, v))
}

// SuggestedFix applies equality check predicate on the "suggested_fix" field. It's identical to SuggestedFixEQ.
func SuggestedFix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldSuggestedFix, v))
}

// TimesSuggested applies equality check predicate on the "times_suggested" field. It's identical to TimesSuggestedEQ.
func TimesSuggested(v int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldTimesSuggested, v))
}

// DedupKey applies equality check predicate on the "dedup_key" field. It's identical to DedupKeyEQ.
func DedupKey(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldDedupKey, v))
}

// FirstSuggestedAt applies equality check predicate on the "first_suggested_at" field. It's identical to FirstSuggestedAtEQ.
func FirstSuggestedAt(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldFirstSuggestedAt, v))
}

// LastSuggestedAt applies equality check predicate on the "last_suggested_at" field. It's identical to LastSuggestedAtEQ.
func LastSuggestedAt(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldLastSuggestedAt, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldPageID, vs...))
}

// PageIDGT applies the GT predicate on the "page_id" field.
func PageIDGT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldPageID, v))
}

// PageIDGTE applies the GTE predicate on the "page_id" field.
func PageIDGTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldPageID, v))
}

// PageIDLT applies the LT predicate on the "page_id" field.
func PageIDLT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldPageID, v))
}

// PageIDLTE applies the LTE predicate on the "page_id" field.
func PageIDLTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldPageID, v))
}

// PageIDContains applies the Contains predicate on the "page_id" field.
func PageIDContains(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContains(FieldPageID, v))
}

// PageIDHasPrefix applies the HasPrefix predicate on the "page_id" field.
func PageIDHasPrefix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasPrefix(FieldPageID, v))
}

// PageIDHasSuffix applies the HasSuffix predicate on the "page_id" field.
func PageIDHasSuffix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasSuffix(FieldPageID, v))
}

// PageIDEqualFold applies the EqualFold predicate on the "page_id" field.
func PageIDEqualFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEqualFold(FieldPageID, v))
}

// PageIDContainsFold applies the ContainsFold predicate on the "page_id" field.
func PageIDContainsFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContainsFold(FieldPageID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContainsFold(FieldTitle, v))
}

// ElementEQ applies the EQ predicate on the "element" field.
func ElementEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldElement, v))
}

// ElementNEQ applies the NEQ predicate on the "element" field.
func ElementNEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldElement, v))
}

// ElementIn applies the In predicate on the "element" field.
func ElementIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldElement, vs...))
}

// ElementNotIn applies the NotIn predicate on the "element" field.
func ElementNotIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldElement, vs...))
}

// ElementGT applies the GT predicate on the "element" field.
func ElementGT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldElement, v))
}

// ElementGTE applies the GTE predicate on the "element" field.
func ElementGTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldElement, v))
}

// ElementLT applies the LT predicate on the "element" field.
func ElementLT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldElement, v))
}

// ElementLTE applies the LTE predicate on the "element" field.
func ElementLTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldElement, v))
}

// ElementContains applies the Contains predicate on the "element" field.
func ElementContains(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContains(FieldElement, v))
}

// ElementHasPrefix applies the HasPrefix predicate on the "element" field.
func ElementHasPrefix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasPrefix(FieldElement, v))
}

// ElementHasSuffix applies the HasSuffix predicate on the "element" field.
func ElementHasSuffix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasSuffix(FieldElement, v))
}

// ElementEqualFold applies the EqualFold predicate on the "element" field.
func ElementEqualFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEqualFold(FieldElement, v))
}

// ElementContainsFold applies the ContainsFold predicate on the "element" field.
func ElementContainsFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContainsFold(FieldElement, v))
}

// SuggestedFixEQ applies the EQ predicate on the "suggested_fix" field.
func SuggestedFixEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldSuggestedFix, v))
}

// SuggestedFixNEQ applies the NEQ predicate on the "suggested_fix" field.
func SuggestedFixNEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldSuggestedFix, v))
}

// SuggestedFixIn applies the In predicate on the "suggested_fix" field.
func SuggestedFixIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldSuggestedFix, vs...))
}

// SuggestedFixNotIn applies the NotIn predicate on the "suggested_fix" field.
func SuggestedFixNotIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldSuggestedFix, vs...))
}

// SuggestedFixGT applies the GT predicate on the "suggested_fix" field.
func SuggestedFixGT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldSuggestedFix, v))
}

// SuggestedFixGTE applies the GTE predicate on the "suggested_fix" field.
func SuggestedFixGTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldSuggestedFix, v))
}

// SuggestedFixLT applies the LT predicate on the "suggested_fix" field.
func SuggestedFixLT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldSuggestedFix, v))
}

// SuggestedFixLTE applies the LTE predicate on the "suggested_fix" field.
func SuggestedFixLTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldSuggestedFix, v))
}

// SuggestedFixContains applies the Contains predicate on the "suggested_fix" field.
func SuggestedFixContains(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContains(FieldSuggestedFix, v))
}

// SuggestedFixHasPrefix applies the HasPrefix predicate on the "suggested_fix" field.
func SuggestedFixHasPrefix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasPrefix(FieldSuggestedFix, v))
}

// SuggestedFixHasSuffix applies the HasSuffix predicate on the "suggested_fix" field.
func SuggestedFixHasSuffix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasSuffix(FieldSuggestedFix, v))
}

// SuggestedFixEqualFold applies the EqualFold predicate on the "suggested_fix" field.
func SuggestedFixEqualFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEqualFold(FieldSuggestedFix, v))
}

// SuggestedFixContainsFold applies the ContainsFold predicate on the "suggested_fix" field.
func SuggestedFixContainsFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContainsFold(FieldSuggestedFix, v))
}

// ImpactEQ applies the EQ predicate on the "impact" field.
func ImpactEQ(v Impact) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldImpact, v))
}

// ImpactNEQ applies the NEQ predicate on the "impact" field.
func ImpactNEQ(v Impact) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldImpact, v))
}

// ImpactIn applies the In predicate on the "impact" field.
func ImpactIn(vs ...Impact) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldImpact, vs...))
}

// ImpactNotIn applies the NotIn predicate on the "impact" field.
func ImpactNotIn(vs ...Impact) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldImpact, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldStatus, vs...))
}

// TimesSuggestedEQ applies the EQ predicate on the "times_suggested" field.
func TimesSuggestedEQ(v int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldTimesSuggested, v))
}

// TimesSuggestedNEQ applies the NEQ predicate on the "times_suggested" field.
func TimesSuggestedNEQ(v int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldTimesSuggested, v))
}

// TimesSuggestedIn applies the In predicate on the "times_suggested" field.
func TimesSuggestedIn(vs ...int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldTimesSuggested, vs...))
}

// TimesSuggestedNotIn applies the NotIn predicate on the "times_suggested" field.
func TimesSuggestedNotIn(vs ...int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldTimesSuggested, vs...))
}

// TimesSuggestedGT applies the GT predicate on the "times_suggested" field.
func TimesSuggestedGT(v int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldTimesSuggested, v))
}

// TimesSuggestedGTE applies the GTE predicate on the "times_suggested" field.
func TimesSuggestedGTE(v int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldTimesSuggested, v))
}

// TimesSuggestedLT applies the LT predicate on the "times_suggested" field.
func TimesSuggestedLT(v int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldTimesSuggested, v))
}

// TimesSuggestedLTE applies the LTE predicate on the "times_suggested" field.
func TimesSuggestedLTE(v int) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldTimesSuggested, v))
}

// DedupKeyEQ applies the EQ predicate on the "dedup_key" field.
func DedupKeyEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldDedupKey, v))
}

// DedupKeyNEQ applies the NEQ predicate on the "dedup_key" field.
func DedupKeyNEQ(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldDedupKey, v))
}

// DedupKeyIn applies the In predicate on the "dedup_key" field.
func DedupKeyIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldDedupKey, vs...))
}

// DedupKeyNotIn applies the NotIn predicate on the "dedup_key" field.
func DedupKeyNotIn(vs ...string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldDedupKey, vs...))
}

// DedupKeyGT applies the GT predicate on the "dedup_key" field.
func DedupKeyGT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldDedupKey, v))
}

// DedupKeyGTE applies the GTE predicate on the "dedup_key" field.
func DedupKeyGTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldDedupKey, v))
}

// DedupKeyLT applies the LT predicate on the "dedup_key" field.
func DedupKeyLT(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldDedupKey, v))
}

// DedupKeyLTE applies the LTE predicate on the "dedup_key" field.
func DedupKeyLTE(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldDedupKey, v))
}

// DedupKeyContains applies the Contains predicate on the "dedup_key" field.
func DedupKeyContains(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContains(FieldDedupKey, v))
}

// DedupKeyHasPrefix applies the HasPrefix predicate on the "dedup_key" field.
func DedupKeyHasPrefix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasPrefix(FieldDedupKey, v))
}

// DedupKeyHasSuffix applies the HasSuffix predicate on the "dedup_key" field.
func DedupKeyHasSuffix(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldHasSuffix(FieldDedupKey, v))
}

// DedupKeyEqualFold applies the EqualFold predicate on the "dedup_key" field.
func DedupKeyEqualFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEqualFold(FieldDedupKey, v))
}

// DedupKeyContainsFold applies the ContainsFold predicate on the "dedup_key" field.
func DedupKeyContainsFold(v string) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldContainsFold(FieldDedupKey, v))
}

// FirstSuggestedAtEQ applies the EQ predicate on the "first_suggested_at" field.
func FirstSuggestedAtEQ(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldFirstSuggestedAt, v))
}

// FirstSuggestedAtNEQ applies the NEQ predicate on the "first_suggested_at" field.
func FirstSuggestedAtNEQ(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldFirstSuggestedAt, v))
}

// FirstSuggestedAtIn applies the In predicate on the "first_suggested_at" field.
func FirstSuggestedAtIn(vs ...time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldFirstSuggestedAt, vs...))
}

// FirstSuggestedAtNotIn applies the NotIn predicate on the "first_suggested_at" field.
func FirstSuggestedAtNotIn(vs ...time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldFirstSuggestedAt, vs...))
}

// FirstSuggestedAtGT applies the GT predicate on the "first_suggested_at" field.
func FirstSuggestedAtGT(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldFirstSuggestedAt, v))
}

// FirstSuggestedAtGTE applies the GTE predicate on the "first_suggested_at" field.
func FirstSuggestedAtGTE(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldFirstSuggestedAt, v))
}

// FirstSuggestedAtLT applies the LT predicate on the "first_suggested_at" field.
func FirstSuggestedAtLT(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldFirstSuggestedAt, v))
}

// FirstSuggestedAtLTE applies the LTE predicate on the "first_suggested_at" field.
func FirstSuggestedAtLTE(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldFirstSuggestedAt, v))
}

// LastSuggestedAtEQ applies the EQ predicate on the "last_suggested_at" field.
func LastSuggestedAtEQ(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldEQ(FieldLastSuggestedAt, v))
}

// LastSuggestedAtNEQ applies the NEQ predicate on the "last_suggested_at" field.
func LastSuggestedAtNEQ(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNEQ(FieldLastSuggestedAt, v))
}

// LastSuggestedAtIn applies the In predicate on the "last_suggested_at" field.
func LastSuggestedAtIn(vs ...time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldIn(FieldLastSuggestedAt, vs...))
}

// LastSuggestedAtNotIn applies the NotIn predicate on the "last_suggested_at" field.
func LastSuggestedAtNotIn(vs ...time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldNotIn(FieldLastSuggestedAt, vs...))
}

// LastSuggestedAtGT applies the GT predicate on the "last_suggested_at" field.
func LastSuggestedAtGT(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGT(FieldLastSuggestedAt, v))
}

// LastSuggestedAtGTE applies the GTE predicate on the "last_suggested_at" field.
func LastSuggestedAtGTE(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldGTE(FieldLastSuggestedAt, v))
}

// LastSuggestedAtLT applies the LT predicate on the "last_suggested_at" field.
func LastSuggestedAtLT(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLT(FieldLastSuggestedAt, v))
}

// LastSuggestedAtLTE applies the LTE predicate on the "last_suggested_at" field.
func LastSuggestedAtLTE(v time.Time) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.FieldLTE(FieldLastSuggestedAt, v))
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.Page) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrackedSuggestion) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrackedSuggestion) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrackedSuggestion) predicate.TrackedSuggestion {
	return predicate.TrackedSuggestion(sql.NotPredicates(p))
}
