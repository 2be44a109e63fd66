// Code generated by ent, DO NOT EDIT.

package outcomefeedback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContainsFold(FieldID, id))
}

// ChangeID applies equality check predicate on the "change_id" field. It's identical to ChangeIDEQ.
func ChangeID(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldChangeID, v))
}

// CheckpointID applies equality check predicate on the "checkpoint_id" field. It's identical to CheckpointIDEQ.
func CheckpointID(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldCheckpointID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldUserID, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// ChangeIDEQ applies the EQ predicate on the "change_id" field.
func ChangeIDEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldChangeID, v))
}

// ChangeIDNEQ applies the NEQ predicate on the "change_id" field.
func ChangeIDNEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNEQ(FieldChangeID, v))
}

// ChangeIDIn applies the In predicate on the "change_id" field.
func ChangeIDIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIn(FieldChangeID, vs...))
}

// ChangeIDNotIn applies the NotIn predicate on the "change_id" field.
func ChangeIDNotIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotIn(FieldChangeID, vs...))
}

// ChangeIDGT applies the GT predicate on the "change_id" field.
func ChangeIDGT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGT(FieldChangeID, v))
}

// ChangeIDGTE applies the GTE predicate on the "change_id" field.
func ChangeIDGTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGTE(FieldChangeID, v))
}

// ChangeIDLT applies the LT predicate on the "change_id" field.
func ChangeIDLT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLT(FieldChangeID, v))
}

// ChangeIDLTE applies the LTE predicate on the "change_id" field.
func ChangeIDLTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLTE(FieldChangeID, v))
}

// ChangeIDContains applies the Contains predicate on the "change_id" field.
func ChangeIDContains(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContains(FieldChangeID, v))
}

// ChangeIDHasPrefix applies the HasPrefix predicate on the "change_id" field.
func ChangeIDHasPrefix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasPrefix(FieldChangeID, v))
}

// ChangeIDHasSuffix applies the HasSuffix predicate on the "change_id" field.
func ChangeIDHasSuffix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasSuffix(FieldChangeID, v))
}

// ChangeIDEqualFold applies the EqualFold predicate on the "change_id" field.
func ChangeIDEqualFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEqualFold(FieldChangeID, v))
}

// ChangeIDContainsFold applies the ContainsFold predicate on the "change_id" field.
func ChangeIDContainsFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContainsFold(FieldChangeID, v))
}

// CheckpointIDEQ applies the EQ predicate on the "checkpoint_id" field.
func CheckpointIDEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldCheckpointID, v))
}

// CheckpointIDNEQ applies the NEQ predicate on the "checkpoint_id" field.
func CheckpointIDNEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNEQ(FieldCheckpointID, v))
}

// CheckpointIDIn applies the In predicate on the "checkpoint_id" field.
func CheckpointIDIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIn(FieldCheckpointID, vs...))
}

// CheckpointIDNotIn applies the NotIn predicate on the "checkpoint_id" field.
func CheckpointIDNotIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotIn(FieldCheckpointID, vs...))
}

// CheckpointIDGT applies the GT predicate on the "checkpoint_id" field.
func CheckpointIDGT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGT(FieldCheckpointID, v))
}

// CheckpointIDGTE applies the GTE predicate on the "checkpoint_id" field.
func CheckpointIDGTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGTE(FieldCheckpointID, v))
}

// CheckpointIDLT applies the LT predicate on the "checkpoint_id" field.
func CheckpointIDLT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLT(FieldCheckpointID, v))
}

// CheckpointIDLTE applies the LTE predicate on the "checkpoint_id" field.
func CheckpointIDLTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLTE(FieldCheckpointID, v))
}

// CheckpointIDContains applies the Contains predicate on the "checkpoint_id" field.
func CheckpointIDContains(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContains(FieldCheckpointID, v))
}

// CheckpointIDHasPrefix applies the HasPrefix predicate on the "checkpoint_id" field.
func CheckpointIDHasPrefix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasPrefix(FieldCheckpointID, v))
}

// CheckpointIDHasSuffix applies the HasSuffix predicate on the "checkpoint_id" field.
func CheckpointIDHasSuffix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasSuffix(FieldCheckpointID, v))
}

// CheckpointIDEqualFold applies the EqualFold predicate on the "checkpoint_id" field.
func CheckpointIDEqualFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEqualFold(FieldCheckpointID, v))
}

// CheckpointIDContainsFold applies the ContainsFold predicate on the "checkpoint_id" field.
func CheckpointIDContainsFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContainsFold(FieldCheckpointID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContainsFold(FieldUserID, v))
}

// FeedbackTypeEQ applies the EQ predicate on the "feedback_type" field.
func FeedbackTypeEQ(v FeedbackType) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldFeedbackType, v))
}

// FeedbackTypeNEQ applies the NEQ predicate on the "feedback_type" field.
func FeedbackTypeNEQ(v FeedbackType) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNEQ(FieldFeedbackType, v))
}

// FeedbackTypeIn applies the In predicate on the "feedback_type" field.
func FeedbackTypeIn(vs ...FeedbackType) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIn(FieldFeedbackType, vs...))
}

// FeedbackTypeNotIn applies the NotIn predicate on the "feedback_type" field.
func FeedbackTypeNotIn(vs ...FeedbackType) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotIn(FieldFeedbackType, vs...))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldContainsFold(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.FieldLTE(FieldCreatedAt, v))
}

// HasChange applies the HasEdge predicate on the "change" edge.
func HasChange() predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChangeTable, ChangeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangeWith applies the HasEdge predicate on the "change" edge with a given conditions (other predicates).
func HasChangeWith(preds ...predicate.DetectedChange) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(func(s *sql.Selector) {
		step := newChangeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OutcomeFeedback) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OutcomeFeedback) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OutcomeFeedback) predicate.OutcomeFeedback {
	return predicate.OutcomeFeedback(sql.NotPredicates(p))
}
