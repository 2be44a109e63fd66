// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loupe-hq/loupe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldID, id))
}

// PageID applies equality check predicate on the "page_id" field. It's identical to PageIDEQ.
func PageID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPageID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUserID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldURL, v))
}

// ParentAnalysisID applies equality check predicate on the "parent_analysis_id" field. It's identical to ParentAnalysisIDEQ.
func ParentAnalysisID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldParentAnalysisID, v))
}

// DeployID applies equality check predicate on the "deploy_id" field. It's identical to DeployIDEQ.
func DeployID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDeployID, v))
}

// DesktopScreenshotURL applies equality check predicate on the "desktop_screenshot_url" field. It's identical to DesktopScreenshotURLEQ.
func DesktopScreenshotURL(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDesktopScreenshotURL, v))
}

// MobileScreenshotURL applies equality check predicate on the "mobile_screenshot_url" field. It's identical to MobileScreenshotURLEQ.
func MobileScreenshotURL(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldMobileScreenshotURL, v))
}

// FreeformOutput applies equality check predicate on the "freeform_output" field. It's identical to FreeformOutputEQ.
func FreeformOutput(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldFreeformOutput, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldErrorMessage, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldAttempts, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldLastInteractionAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCompletedAt, v))
}

// PageIDEQ applies the EQ predicate on the "page_id" field.
func PageIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPageID, v))
}

// PageIDNEQ applies the NEQ predicate on the "page_id" field.
func PageIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldPageID, v))
}

// PageIDIn applies the In predicate on the "page_id" field.
func PageIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldPageID, vs...))
}

// PageIDNotIn applies the NotIn predicate on the "page_id" field.
func PageIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldPageID, vs...))
}

// PageIDGT applies the GT predicate on the "page_id" field.
func PageIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldPageID, v))
}

// PageIDGTE applies the GTE predicate on the "page_id" field.
func PageIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldPageID, v))
}

// PageIDLT applies the LT predicate on the "page_id" field.
func PageIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldPageID, v))
}

// PageIDLTE applies the LTE predicate on the "page_id" field.
func PageIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldPageID, v))
}

// PageIDContains applies the Contains predicate on the "page_id" field.
func PageIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldPageID, v))
}

// PageIDHasPrefix applies the HasPrefix predicate on the "page_id" field.
func PageIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldPageID, v))
}

// PageIDHasSuffix applies the HasSuffix predicate on the "page_id" field.
func PageIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldPageID, v))
}

// PageIDEqualFold applies the EqualFold predicate on the "page_id" field.
func PageIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldPageID, v))
}

// PageIDContainsFold applies the ContainsFold predicate on the "page_id" field.
func PageIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldPageID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldUserID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldStatus, vs...))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v TriggerType) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v TriggerType) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...TriggerType) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...TriggerType) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldTriggerType, vs...))
}

// ParentAnalysisIDEQ applies the EQ predicate on the "parent_analysis_id" field.
func ParentAnalysisIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldParentAnalysisID, v))
}

// ParentAnalysisIDNEQ applies the NEQ predicate on the "parent_analysis_id" field.
func ParentAnalysisIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldParentAnalysisID, v))
}

// ParentAnalysisIDIn applies the In predicate on the "parent_analysis_id" field.
func ParentAnalysisIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldParentAnalysisID, vs...))
}

// ParentAnalysisIDNotIn applies the NotIn predicate on the "parent_analysis_id" field.
func ParentAnalysisIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldParentAnalysisID, vs...))
}

// ParentAnalysisIDGT applies the GT predicate on the "parent_analysis_id" field.
func ParentAnalysisIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldParentAnalysisID, v))
}

// ParentAnalysisIDGTE applies the GTE predicate on the "parent_analysis_id" field.
func ParentAnalysisIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldParentAnalysisID, v))
}

// ParentAnalysisIDLT applies the LT predicate on the "parent_analysis_id" field.
func ParentAnalysisIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldParentAnalysisID, v))
}

// ParentAnalysisIDLTE applies the LTE predicate on the "parent_analysis_id" field.
func ParentAnalysisIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldParentAnalysisID, v))
}

// ParentAnalysisIDContains applies the Contains predicate on the "parent_analysis_id" field.
func ParentAnalysisIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldParentAnalysisID, v))
}

// ParentAnalysisIDHasPrefix applies the HasPrefix predicate on the "parent_analysis_id" field.
func ParentAnalysisIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldParentAnalysisID, v))
}

// ParentAnalysisIDHasSuffix applies the HasSuffix predicate on the "parent_analysis_id" field.
func ParentAnalysisIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldParentAnalysisID, v))
}

// ParentAnalysisIDIsNil applies the IsNil predicate on the "parent_analysis_id" field.
func ParentAnalysisIDIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldParentAnalysisID))
}

// ParentAnalysisIDNotNil applies the NotNil predicate on the "parent_analysis_id" field.
func ParentAnalysisIDNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldParentAnalysisID))
}

// ParentAnalysisIDEqualFold applies the EqualFold predicate on the "parent_analysis_id" field.
func ParentAnalysisIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldParentAnalysisID, v))
}

// ParentAnalysisIDContainsFold applies the ContainsFold predicate on the "parent_analysis_id" field.
func ParentAnalysisIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldParentAnalysisID, v))
}

// DeployIDEQ applies the EQ predicate on the "deploy_id" field.
func DeployIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDeployID, v))
}

// DeployIDNEQ applies the NEQ predicate on the "deploy_id" field.
func DeployIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldDeployID, v))
}

// DeployIDIn applies the In predicate on the "deploy_id" field.
func DeployIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldDeployID, vs...))
}

// DeployIDNotIn applies the NotIn predicate on the "deploy_id" field.
func DeployIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldDeployID, vs...))
}

// DeployIDGT applies the GT predicate on the "deploy_id" field.
func DeployIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldDeployID, v))
}

// DeployIDGTE applies the GTE predicate on the "deploy_id" field.
func DeployIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldDeployID, v))
}

// DeployIDLT applies the LT predicate on the "deploy_id" field.
func DeployIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldDeployID, v))
}

// DeployIDLTE applies the LTE predicate on the "deploy_id" field.
func DeployIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldDeployID, v))
}

// DeployIDContains applies the Contains predicate on the "deploy_id" field.
func DeployIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldDeployID, v))
}

// DeployIDHasPrefix applies the HasPrefix predicate on the "deploy_id" field.
func DeployIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldDeployID, v))
}

// DeployIDHasSuffix applies the HasSuffix predicate on the "deploy_id" field.
func DeployIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldDeployID, v))
}

// DeployIDIsNil applies the IsNil predicate on the "deploy_id" field.
func DeployIDIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldDeployID))
}

// DeployIDNotNil applies the NotNil predicate on the "deploy_id" field.
func DeployIDNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldDeployID))
}

// DeployIDEqualFold applies the EqualFold predicate on the "deploy_id" field.
func DeployIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldDeployID, v))
}

// DeployIDContainsFold applies the ContainsFold predicate on the "deploy_id" field.
func DeployIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldDeployID, v))
}

// DesktopScreenshotURLEQ applies the EQ predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLNEQ applies the NEQ predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLIn applies the In predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldDesktopScreenshotURL, vs...))
}

// DesktopScreenshotURLNotIn applies the NotIn predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldDesktopScreenshotURL, vs...))
}

// DesktopScreenshotURLGT applies the GT predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLGTE applies the GTE predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLLT applies the LT predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLLTE applies the LTE predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLContains applies the Contains predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLHasPrefix applies the HasPrefix predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLHasSuffix applies the HasSuffix predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLIsNil applies the IsNil predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldDesktopScreenshotURL))
}

// DesktopScreenshotURLNotNil applies the NotNil predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldDesktopScreenshotURL))
}

// DesktopScreenshotURLEqualFold applies the EqualFold predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldDesktopScreenshotURL, v))
}

// DesktopScreenshotURLContainsFold applies the ContainsFold predicate on the "desktop_screenshot_url" field.
func DesktopScreenshotURLContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldDesktopScreenshotURL, v))
}

// MobileScreenshotURLEQ applies the EQ predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLNEQ applies the NEQ predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLIn applies the In predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldMobileScreenshotURL, vs...))
}

// MobileScreenshotURLNotIn applies the NotIn predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldMobileScreenshotURL, vs...))
}

// MobileScreenshotURLGT applies the GT predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLGTE applies the GTE predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLLT applies the LT predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLLTE applies the LTE predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLContains applies the Contains predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLHasPrefix applies the HasPrefix predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLHasSuffix applies the HasSuffix predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLIsNil applies the IsNil predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldMobileScreenshotURL))
}

// MobileScreenshotURLNotNil applies the NotNil predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldMobileScreenshotURL))
}

// MobileScreenshotURLEqualFold applies the EqualFold predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldMobileScreenshotURL, v))
}

// MobileScreenshotURLContainsFold applies the ContainsFold predicate on the "mobile_screenshot_url" field.
func MobileScreenshotURLContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldMobileScreenshotURL, v))
}

// FreeformOutputEQ applies the EQ predicate on the "freeform_output" field.
func FreeformOutputEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldFreeformOutput, v))
}

// FreeformOutputNEQ applies the NEQ predicate on the "freeform_output" field.
func FreeformOutputNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldFreeformOutput, v))
}

// FreeformOutputIn applies the In predicate on the "freeform_output" field.
func FreeformOutputIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldFreeformOutput, vs...))
}

// FreeformOutputNotIn applies the NotIn predicate on the "freeform_output" field.
func FreeformOutputNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldFreeformOutput, vs...))
}

// FreeformOutputGT applies the GT predicate on the "freeform_output" field.
func FreeformOutputGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldFreeformOutput, v))
}

// FreeformOutputGTE applies the GTE predicate on the "freeform_output" field.
func FreeformOutputGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldFreeformOutput, v))
}

// FreeformOutputLT applies the LT predicate on the "freeform_output" field.
func FreeformOutputLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldFreeformOutput, v))
}

// FreeformOutputLTE applies the LTE predicate on the "freeform_output" field.
func FreeformOutputLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldFreeformOutput, v))
}

// FreeformOutputContains applies the Contains predicate on the "freeform_output" field.
func FreeformOutputContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldFreeformOutput, v))
}

// FreeformOutputHasPrefix applies the HasPrefix predicate on the "freeform_output" field.
func FreeformOutputHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldFreeformOutput, v))
}

// FreeformOutputHasSuffix applies the HasSuffix predicate on the "freeform_output" field.
func FreeformOutputHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldFreeformOutput, v))
}

// FreeformOutputIsNil applies the IsNil predicate on the "freeform_output" field.
func FreeformOutputIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldFreeformOutput))
}

// FreeformOutputNotNil applies the NotNil predicate on the "freeform_output" field.
func FreeformOutputNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldFreeformOutput))
}

// FreeformOutputEqualFold applies the EqualFold predicate on the "freeform_output" field.
func FreeformOutputEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldFreeformOutput, v))
}

// FreeformOutputContainsFold applies the ContainsFold predicate on the "freeform_output" field.
func FreeformOutputContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldFreeformOutput, v))
}

// StructuredOutputIsNil applies the IsNil predicate on the "structured_output" field.
func StructuredOutputIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldStructuredOutput))
}

// StructuredOutputNotNil applies the NotNil predicate on the "structured_output" field.
func StructuredOutputNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldStructuredOutput))
}

// ChangesSummaryIsNil applies the IsNil predicate on the "changes_summary" field.
func ChangesSummaryIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldChangesSummary))
}

// ChangesSummaryNotNil applies the NotNil predicate on the "changes_summary" field.
func ChangesSummaryNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldChangesSummary))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldErrorMessage, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldAttempts, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldLastInteractionAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldCompletedAt))
}

// HasPage applies the HasEdge predicate on the "page" edge.
func HasPage() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PageTable, PageColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPageWith applies the HasEdge predicate on the "page" edge with a given conditions (other predicates).
func HasPageWith(preds ...predicate.Page) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newPageStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.NotPredicates(p))
}
