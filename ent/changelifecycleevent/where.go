// Code generated by ent, DO NOT EDIT.

package changelifecycleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContainsFold(FieldID, id))
}

// ChangeID applies equality check predicate on the "change_id" field. It's identical to ChangeIDEQ.
func ChangeID(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldChangeID, v))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldToStatus, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldReason, v))
}

// CheckpointID applies equality check predicate on the "checkpoint_id" field. It's identical to CheckpointIDEQ.
func CheckpointID(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldCheckpointID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// ChangeIDEQ applies the EQ predicate on the "change_id" field.
func ChangeIDEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldChangeID, v))
}

// ChangeIDNEQ applies the NEQ predicate on the "change_id" field.
func ChangeIDNEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldChangeID, v))
}

// ChangeIDIn applies the In predicate on the "change_id" field.
func ChangeIDIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldChangeID, vs...))
}

// ChangeIDNotIn applies the NotIn predicate on the "change_id" field.
func ChangeIDNotIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldChangeID, vs...))
}

// ChangeIDGT applies the GT predicate on the "change_id" field.
func ChangeIDGT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGT(FieldChangeID, v))
}

// ChangeIDGTE applies the GTE predicate on the "change_id" field.
func ChangeIDGTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGTE(FieldChangeID, v))
}

// ChangeIDLT applies the LT predicate on the "change_id" field.
func ChangeIDLT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLT(FieldChangeID, v))
}

// ChangeIDLTE applies the LTE predicate on the "change_id" field.
func ChangeIDLTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLTE(FieldChangeID, v))
}

// ChangeIDContains applies the Contains predicate on the "change_id" field.
func ChangeIDContains(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContains(FieldChangeID, v))
}

// ChangeIDHasPrefix applies the HasPrefix predicate on the "change_id" field.
func ChangeIDHasPrefix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasPrefix(FieldChangeID, v))
}

// ChangeIDHasSuffix applies the HasSuffix predicate on the "change_id" field.
func ChangeIDHasSuffix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasSuffix(FieldChangeID, v))
}

// ChangeIDEqualFold applies the EqualFold predicate on the "change_id" field.
func ChangeIDEqualFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEqualFold(FieldChangeID, v))
}

// ChangeIDContainsFold applies the ContainsFold predicate on the "change_id" field.
func ChangeIDContainsFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContainsFold(FieldChangeID, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusIsNil applies the IsNil predicate on the "from_status" field.
func FromStatusIsNil() predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIsNull(FieldFromStatus))
}

// FromStatusNotNil applies the NotNil predicate on the "from_status" field.
func FromStatusNotNil() predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotNull(FieldFromStatus))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContainsFold(FieldToStatus, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContainsFold(FieldReason, v))
}

// ActorTypeEQ applies the EQ predicate on the "actor_type" field.
func ActorTypeEQ(v ActorType) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldActorType, v))
}

// ActorTypeNEQ applies the NEQ predicate on the "actor_type" field.
func ActorTypeNEQ(v ActorType) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldActorType, v))
}

// ActorTypeIn applies the In predicate on the "actor_type" field.
func ActorTypeIn(vs ...ActorType) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldActorType, vs...))
}

// ActorTypeNotIn applies the NotIn predicate on the "actor_type" field.
func ActorTypeNotIn(vs ...ActorType) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldActorType, vs...))
}

// CheckpointIDEQ applies the EQ predicate on the "checkpoint_id" field.
func CheckpointIDEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldCheckpointID, v))
}

// CheckpointIDNEQ applies the NEQ predicate on the "checkpoint_id" field.
func CheckpointIDNEQ(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldCheckpointID, v))
}

// CheckpointIDIn applies the In predicate on the "checkpoint_id" field.
func CheckpointIDIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldCheckpointID, vs...))
}

// CheckpointIDNotIn applies the NotIn predicate on the "checkpoint_id" field.
func CheckpointIDNotIn(vs ...string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldCheckpointID, vs...))
}

// CheckpointIDGT applies the GT predicate on the "checkpoint_id" field.
func CheckpointIDGT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGT(FieldCheckpointID, v))
}

// CheckpointIDGTE applies the GTE predicate on the "checkpoint_id" field.
func CheckpointIDGTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGTE(FieldCheckpointID, v))
}

// CheckpointIDLT applies the LT predicate on the "checkpoint_id" field.
func CheckpointIDLT(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLT(FieldCheckpointID, v))
}

// CheckpointIDLTE applies the LTE predicate on the "checkpoint_id" field.
func CheckpointIDLTE(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLTE(FieldCheckpointID, v))
}

// CheckpointIDContains applies the Contains predicate on the "checkpoint_id" field.
func CheckpointIDContains(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContains(FieldCheckpointID, v))
}

// CheckpointIDHasPrefix applies the HasPrefix predicate on the "checkpoint_id" field.
func CheckpointIDHasPrefix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasPrefix(FieldCheckpointID, v))
}

// CheckpointIDHasSuffix applies the HasSuffix predicate on the "checkpoint_id" field.
func CheckpointIDHasSuffix(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldHasSuffix(FieldCheckpointID, v))
}

// CheckpointIDIsNil applies the IsNil predicate on the "checkpoint_id" field.
func CheckpointIDIsNil() predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIsNull(FieldCheckpointID))
}

// CheckpointIDNotNil applies the NotNil predicate on the "checkpoint_id" field.
func CheckpointIDNotNil() predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotNull(FieldCheckpointID))
}

// CheckpointIDEqualFold applies the EqualFold predicate on the "checkpoint_id" field.
func CheckpointIDEqualFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEqualFold(FieldCheckpointID, v))
}

// CheckpointIDContainsFold applies the ContainsFold predicate on the "checkpoint_id" field.
func CheckpointIDContainsFold(v string) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldContainsFold(FieldCheckpointID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasChange applies the HasEdge predicate on the "change" edge.
func HasChange() predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChangeTable, ChangeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChangeWith applies the HasEdge predicate on the "change" edge with a given conditions (other predicates).
func HasChangeWith(preds ...predicate.DetectedChange) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(func(s *sql.Selector) {
		step := newChangeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChangeLifecycleEvent) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChangeLifecycleEvent) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChangeLifecycleEvent) predicate.ChangeLifecycleEvent {
	return predicate.ChangeLifecycleEvent(sql.NotPredicates(p))
}
