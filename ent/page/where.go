// Code generated by ent, DO NOT EDIT.

package page

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldUserID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldURL, v))
}

// MetricFocus applies equality check predicate on the "metric_focus" field. It's identical to MetricFocusEQ.
func MetricFocus(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldMetricFocus, v))
}

// StableBaselineID applies equality check predicate on the "stable_baseline_id" field. It's identical to StableBaselineIDEQ.
func StableBaselineID(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldStableBaselineID, v))
}

// LastScanID applies equality check predicate on the "last_scan_id" field. It's identical to LastScanIDEQ.
func LastScanID(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLastScanID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldUserID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldURL, v))
}

// ScanFrequencyEQ applies the EQ predicate on the "scan_frequency" field.
func ScanFrequencyEQ(v ScanFrequency) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldScanFrequency, v))
}

// ScanFrequencyNEQ applies the NEQ predicate on the "scan_frequency" field.
func ScanFrequencyNEQ(v ScanFrequency) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldScanFrequency, v))
}

// ScanFrequencyIn applies the In predicate on the "scan_frequency" field.
func ScanFrequencyIn(vs ...ScanFrequency) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldScanFrequency, vs...))
}

// ScanFrequencyNotIn applies the NotIn predicate on the "scan_frequency" field.
func ScanFrequencyNotIn(vs ...ScanFrequency) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldScanFrequency, vs...))
}

// MetricFocusEQ applies the EQ predicate on the "metric_focus" field.
func MetricFocusEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldMetricFocus, v))
}

// MetricFocusNEQ applies the NEQ predicate on the "metric_focus" field.
func MetricFocusNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldMetricFocus, v))
}

// MetricFocusIn applies the In predicate on the "metric_focus" field.
func MetricFocusIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldMetricFocus, vs...))
}

// MetricFocusNotIn applies the NotIn predicate on the "metric_focus" field.
func MetricFocusNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldMetricFocus, vs...))
}

// MetricFocusGT applies the GT predicate on the "metric_focus" field.
func MetricFocusGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldMetricFocus, v))
}

// MetricFocusGTE applies the GTE predicate on the "metric_focus" field.
func MetricFocusGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldMetricFocus, v))
}

// MetricFocusLT applies the LT predicate on the "metric_focus" field.
func MetricFocusLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldMetricFocus, v))
}

// MetricFocusLTE applies the LTE predicate on the "metric_focus" field.
func MetricFocusLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldMetricFocus, v))
}

// MetricFocusContains applies the Contains predicate on the "metric_focus" field.
func MetricFocusContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldMetricFocus, v))
}

// MetricFocusHasPrefix applies the HasPrefix predicate on the "metric_focus" field.
func MetricFocusHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldMetricFocus, v))
}

// MetricFocusHasSuffix applies the HasSuffix predicate on the "metric_focus" field.
func MetricFocusHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldMetricFocus, v))
}

// MetricFocusIsNil applies the IsNil predicate on the "metric_focus" field.
func MetricFocusIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldMetricFocus))
}

// MetricFocusNotNil applies the NotNil predicate on the "metric_focus" field.
func MetricFocusNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldMetricFocus))
}

// MetricFocusEqualFold applies the EqualFold predicate on the "metric_focus" field.
func MetricFocusEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldMetricFocus, v))
}

// MetricFocusContainsFold applies the ContainsFold predicate on the "metric_focus" field.
func MetricFocusContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldMetricFocus, v))
}

// StableBaselineIDEQ applies the EQ predicate on the "stable_baseline_id" field.
func StableBaselineIDEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldStableBaselineID, v))
}

// StableBaselineIDNEQ applies the NEQ predicate on the "stable_baseline_id" field.
func StableBaselineIDNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldStableBaselineID, v))
}

// StableBaselineIDIn applies the In predicate on the "stable_baseline_id" field.
func StableBaselineIDIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldStableBaselineID, vs...))
}

// StableBaselineIDNotIn applies the NotIn predicate on the "stable_baseline_id" field.
func StableBaselineIDNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldStableBaselineID, vs...))
}

// StableBaselineIDGT applies the GT predicate on the "stable_baseline_id" field.
func StableBaselineIDGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldStableBaselineID, v))
}

// StableBaselineIDGTE applies the GTE predicate on the "stable_baseline_id" field.
func StableBaselineIDGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldStableBaselineID, v))
}

// StableBaselineIDLT applies the LT predicate on the "stable_baseline_id" field.
func StableBaselineIDLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldStableBaselineID, v))
}

// StableBaselineIDLTE applies the LTE predicate on the "stable_baseline_id" field.
func StableBaselineIDLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldStableBaselineID, v))
}

// StableBaselineIDContains applies the Contains predicate on the "stable_baseline_id" field.
func StableBaselineIDContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldStableBaselineID, v))
}

// StableBaselineIDHasPrefix applies the HasPrefix predicate on the "stable_baseline_id" field.
func StableBaselineIDHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldStableBaselineID, v))
}

// StableBaselineIDHasSuffix applies the HasSuffix predicate on the "stable_baseline_id" field.
func StableBaselineIDHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldStableBaselineID, v))
}

// StableBaselineIDIsNil applies the IsNil predicate on the "stable_baseline_id" field.
func StableBaselineIDIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldStableBaselineID))
}

// StableBaselineIDNotNil applies the NotNil predicate on the "stable_baseline_id" field.
func StableBaselineIDNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldStableBaselineID))
}

// StableBaselineIDEqualFold applies the EqualFold predicate on the "stable_baseline_id" field.
func StableBaselineIDEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldStableBaselineID, v))
}

// StableBaselineIDContainsFold applies the ContainsFold predicate on the "stable_baseline_id" field.
func StableBaselineIDContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldStableBaselineID, v))
}

// LastScanIDEQ applies the EQ predicate on the "last_scan_id" field.
func LastScanIDEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldLastScanID, v))
}

// LastScanIDNEQ applies the NEQ predicate on the "last_scan_id" field.
func LastScanIDNEQ(v string) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldLastScanID, v))
}

// LastScanIDIn applies the In predicate on the "last_scan_id" field.
func LastScanIDIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldLastScanID, vs...))
}

// LastScanIDNotIn applies the NotIn predicate on the "last_scan_id" field.
func LastScanIDNotIn(vs ...string) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldLastScanID, vs...))
}

// LastScanIDGT applies the GT predicate on the "last_scan_id" field.
func LastScanIDGT(v string) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldLastScanID, v))
}

// LastScanIDGTE applies the GTE predicate on the "last_scan_id" field.
func LastScanIDGTE(v string) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldLastScanID, v))
}

// LastScanIDLT applies the LT predicate on the "last_scan_id" field.
func LastScanIDLT(v string) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldLastScanID, v))
}

// LastScanIDLTE applies the LTE predicate on the "last_scan_id" field.
func LastScanIDLTE(v string) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldLastScanID, v))
}

// LastScanIDContains applies the Contains predicate on the "last_scan_id" field.
func LastScanIDContains(v string) predicate.Page {
	return predicate.Page(sql.FieldContains(FieldLastScanID, v))
}

// LastScanIDHasPrefix applies the HasPrefix predicate on the "last_scan_id" field.
func LastScanIDHasPrefix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasPrefix(FieldLastScanID, v))
}

// LastScanIDHasSuffix applies the HasSuffix predicate on the "last_scan_id" field.
func LastScanIDHasSuffix(v string) predicate.Page {
	return predicate.Page(sql.FieldHasSuffix(FieldLastScanID, v))
}

// LastScanIDIsNil applies the IsNil predicate on the "last_scan_id" field.
func LastScanIDIsNil() predicate.Page {
	return predicate.Page(sql.FieldIsNull(FieldLastScanID))
}

// LastScanIDNotNil applies the NotNil predicate on the "last_scan_id" field.
func LastScanIDNotNil() predicate.Page {
	return predicate.Page(sql.FieldNotNull(FieldLastScanID))
}

// LastScanIDEqualFold applies the EqualFold predicate on the "last_scan_id" field.
func LastScanIDEqualFold(v string) predicate.Page {
	return predicate.Page(sql.FieldEqualFold(FieldLastScanID, v))
}

// LastScanIDContainsFold applies the ContainsFold predicate on the "last_scan_id" field.
func LastScanIDContainsFold(v string) predicate.Page {
	return predicate.Page(sql.FieldContainsFold(FieldLastScanID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Page {
	return predicate.Page(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Page {
	return predicate.Page(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Page {
	return predicate.Page(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Page {
	return predicate.Page(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Page {
	return predicate.Page(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Page {
	return predicate.Page(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Page {
	return predicate.Page(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Page {
	return predicate.Page(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalyses applies the HasEdge predicate on the "analyses" edge.
func HasAnalyses() predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysesWith applies the HasEdge predicate on the "analyses" edge with a given conditions (other predicates).
func HasAnalysesWith(preds ...predicate.Analysis) predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := newAnalysesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDetectedChanges applies the HasEdge predicate on the "detected_changes" edge.
func HasDetectedChanges() predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DetectedChangesTable, DetectedChangesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDetectedChangesWith applies the HasEdge predicate on the "detected_changes" edge with a given conditions (other predicates).
func HasDetectedChangesWith(preds ...predicate.DetectedChange) predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := newDetectedChangesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrackedSuggestions applies the HasEdge predicate on the "tracked_suggestions" edge.
func HasTrackedSuggestions() predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrackedSuggestionsTable, TrackedSuggestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrackedSuggestionsWith applies the HasEdge predicate on the "tracked_suggestions" edge with a given conditions (other predicates).
func HasTrackedSuggestionsWith(preds ...predicate.TrackedSuggestion) predicate.Page {
	return predicate.Page(func(s *sql.Selector) {
		step := newTrackedSuggestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Page) predicate.Page {
	return predicate.Page(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Page) predicate.Page {
	return predicate.Page(sql.NotPredicates(p))
}
