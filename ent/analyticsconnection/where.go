// Code generated by ent, DO NOT EDIT.

package analyticsconnection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldUserID, v))
}

// EncryptedCredentials applies equality check predicate on the "encrypted_credentials" field. It's identical to EncryptedCredentialsEQ.
func EncryptedCredentials(v []byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldEncryptedCredentials, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldContainsFold(FieldUserID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v Provider) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v Provider) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...Provider) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...Provider) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNotIn(FieldProvider, vs...))
}

// EncryptedCredentialsEQ applies the EQ predicate on the "encrypted_credentials" field.
func EncryptedCredentialsEQ(v []byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsNEQ applies the NEQ predicate on the "encrypted_credentials" field.
func EncryptedCredentialsNEQ(v []byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNEQ(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsIn applies the In predicate on the "encrypted_credentials" field.
func EncryptedCredentialsIn(vs ...[]byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldIn(FieldEncryptedCredentials, vs...))
}

// EncryptedCredentialsNotIn applies the NotIn predicate on the "encrypted_credentials" field.
func EncryptedCredentialsNotIn(vs ...[]byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNotIn(FieldEncryptedCredentials, vs...))
}

// EncryptedCredentialsGT applies the GT predicate on the "encrypted_credentials" field.
func EncryptedCredentialsGT(v []byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGT(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsGTE applies the GTE predicate on the "encrypted_credentials" field.
func EncryptedCredentialsGTE(v []byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGTE(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsLT applies the LT predicate on the "encrypted_credentials" field.
func EncryptedCredentialsLT(v []byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLT(FieldEncryptedCredentials, v))
}

// EncryptedCredentialsLTE applies the LTE predicate on the "encrypted_credentials" field.
func EncryptedCredentialsLTE(v []byte) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLTE(FieldEncryptedCredentials, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalyticsConnection) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalyticsConnection) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalyticsConnection) predicate.AnalyticsConnection {
	return predicate.AnalyticsConnection(sql.NotPredicates(p))
}
