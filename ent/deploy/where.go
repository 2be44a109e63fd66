// Code generated by ent, DO NOT EDIT.

package deploy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldUserID, v))
}

// RepoID applies equality check predicate on the "repo_id" field. It's identical to RepoIDEQ.
func RepoID(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldRepoID, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCommitSha, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldFullName, v))
}

// CommitMessage applies equality check predicate on the "commit_message" field. It's identical to CommitMessageEQ.
func CommitMessage(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCommitMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContainsFold(FieldUserID, v))
}

// RepoIDEQ applies the EQ predicate on the "repo_id" field.
func RepoIDEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldRepoID, v))
}

// RepoIDNEQ applies the NEQ predicate on the "repo_id" field.
func RepoIDNEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldRepoID, v))
}

// RepoIDIn applies the In predicate on the "repo_id" field.
func RepoIDIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldRepoID, vs...))
}

// RepoIDNotIn applies the NotIn predicate on the "repo_id" field.
func RepoIDNotIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldRepoID, vs...))
}

// RepoIDGT applies the GT predicate on the "repo_id" field.
func RepoIDGT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldRepoID, v))
}

// RepoIDGTE applies the GTE predicate on the "repo_id" field.
func RepoIDGTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldRepoID, v))
}

// RepoIDLT applies the LT predicate on the "repo_id" field.
func RepoIDLT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldRepoID, v))
}

// RepoIDLTE applies the LTE predicate on the "repo_id" field.
func RepoIDLTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldRepoID, v))
}

// RepoIDContains applies the Contains predicate on the "repo_id" field.
func RepoIDContains(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContains(FieldRepoID, v))
}

// RepoIDHasPrefix applies the HasPrefix predicate on the "repo_id" field.
func RepoIDHasPrefix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasPrefix(FieldRepoID, v))
}

// RepoIDHasSuffix applies the HasSuffix predicate on the "repo_id" field.
func RepoIDHasSuffix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasSuffix(FieldRepoID, v))
}

// RepoIDEqualFold applies the EqualFold predicate on the "repo_id" field.
func RepoIDEqualFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEqualFold(FieldRepoID, v))
}

// RepoIDContainsFold applies the ContainsFold predicate on the "repo_id" field.
func RepoIDContainsFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContainsFold(FieldRepoID, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContainsFold(FieldCommitSha, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContainsFold(FieldFullName, v))
}

// CommitMessageEQ applies the EQ predicate on the "commit_message" field.
func CommitMessageEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCommitMessage, v))
}

// CommitMessageNEQ applies the NEQ predicate on the "commit_message" field.
func CommitMessageNEQ(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldCommitMessage, v))
}

// CommitMessageIn applies the In predicate on the "commit_message" field.
func CommitMessageIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldCommitMessage, vs...))
}

// CommitMessageNotIn applies the NotIn predicate on the "commit_message" field.
func CommitMessageNotIn(vs ...string) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldCommitMessage, vs...))
}

// CommitMessageGT applies the GT predicate on the "commit_message" field.
func CommitMessageGT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldCommitMessage, v))
}

// CommitMessageGTE applies the GTE predicate on the "commit_message" field.
func CommitMessageGTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldCommitMessage, v))
}

// CommitMessageLT applies the LT predicate on the "commit_message" field.
func CommitMessageLT(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldCommitMessage, v))
}

// CommitMessageLTE applies the LTE predicate on the "commit_message" field.
func CommitMessageLTE(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldCommitMessage, v))
}

// CommitMessageContains applies the Contains predicate on the "commit_message" field.
func CommitMessageContains(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContains(FieldCommitMessage, v))
}

// CommitMessageHasPrefix applies the HasPrefix predicate on the "commit_message" field.
func CommitMessageHasPrefix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasPrefix(FieldCommitMessage, v))
}

// CommitMessageHasSuffix applies the HasSuffix predicate on the "commit_message" field.
func CommitMessageHasSuffix(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldHasSuffix(FieldCommitMessage, v))
}

// CommitMessageIsNil applies the IsNil predicate on the "commit_message" field.
func CommitMessageIsNil() predicate.Deploy {
	return predicate.Deploy(sql.FieldIsNull(FieldCommitMessage))
}

// CommitMessageNotNil applies the NotNil predicate on the "commit_message" field.
func CommitMessageNotNil() predicate.Deploy {
	return predicate.Deploy(sql.FieldNotNull(FieldCommitMessage))
}

// CommitMessageEqualFold applies the EqualFold predicate on the "commit_message" field.
func CommitMessageEqualFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldEqualFold(FieldCommitMessage, v))
}

// CommitMessageContainsFold applies the ContainsFold predicate on the "commit_message" field.
func CommitMessageContainsFold(v string) predicate.Deploy {
	return predicate.Deploy(sql.FieldContainsFold(FieldCommitMessage, v))
}

// ChangedFilesIsNil applies the IsNil predicate on the "changed_files" field.
func ChangedFilesIsNil() predicate.Deploy {
	return predicate.Deploy(sql.FieldIsNull(FieldChangedFiles))
}

// ChangedFilesNotNil applies the NotNil predicate on the "changed_files" field.
func ChangedFilesNotNil() predicate.Deploy {
	return predicate.Deploy(sql.FieldNotNull(FieldChangedFiles))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Deploy {
	return predicate.Deploy(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Deploy {
	return predicate.Deploy(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Deploy {
	return predicate.Deploy(sql.FieldNotNull(FieldCompletedAt))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Deploy {
	return predicate.Deploy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Deploy {
	return predicate.Deploy(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Deploy) predicate.Deploy {
	return predicate.Deploy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Deploy) predicate.Deploy {
	return predicate.Deploy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Deploy) predicate.Deploy {
	return predicate.Deploy(sql.NotPredicates(p))
}
