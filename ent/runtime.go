// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/ent/schema"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
	"github.com/loupe-hq/loupe/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescAttempts is the schema descriptor for attempts field.
	analysisDescAttempts := analysisFields[14].Descriptor()
	// analysis.DefaultAttempts holds the default value on creation for the attempts field.
	analysis.DefaultAttempts = analysisDescAttempts.Default.(int)
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisFields[17].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	analyticsconnectionFields := schema.AnalyticsConnection{}.Fields()
	_ = analyticsconnectionFields
	// analyticsconnectionDescCreatedAt is the schema descriptor for created_at field.
	analyticsconnectionDescCreatedAt := analyticsconnectionFields[5].Descriptor()
	// analyticsconnection.DefaultCreatedAt holds the default value on creation for the created_at field.
	analyticsconnection.DefaultCreatedAt = analyticsconnectionDescCreatedAt.Default.(func() time.Time)
	// analyticsconnectionDescUpdatedAt is the schema descriptor for updated_at field.
	analyticsconnectionDescUpdatedAt := analyticsconnectionFields[6].Descriptor()
	// analyticsconnection.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	analyticsconnection.DefaultUpdatedAt = analyticsconnectionDescUpdatedAt.Default.(func() time.Time)
	// analyticsconnection.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	analyticsconnection.UpdateDefaultUpdatedAt = analyticsconnectionDescUpdatedAt.UpdateDefault.(func() time.Time)
	changecheckpointFields := schema.ChangeCheckpoint{}.Fields()
	_ = changecheckpointFields
	// changecheckpointDescComputedAt is the schema descriptor for computed_at field.
	changecheckpointDescComputedAt := changecheckpointFields[13].Descriptor()
	// changecheckpoint.DefaultComputedAt holds the default value on creation for the computed_at field.
	changecheckpoint.DefaultComputedAt = changecheckpointDescComputedAt.Default.(func() time.Time)
	changelifecycleeventFields := schema.ChangeLifecycleEvent{}.Fields()
	_ = changelifecycleeventFields
	// changelifecycleeventDescCreatedAt is the schema descriptor for created_at field.
	changelifecycleeventDescCreatedAt := changelifecycleeventFields[7].Descriptor()
	// changelifecycleevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	changelifecycleevent.DefaultCreatedAt = changelifecycleeventDescCreatedAt.Default.(func() time.Time)
	deployFields := schema.Deploy{}.Fields()
	_ = deployFields
	// deployDescCreatedAt is the schema descriptor for created_at field.
	deployDescCreatedAt := deployFields[8].Descriptor()
	// deploy.DefaultCreatedAt holds the default value on creation for the created_at field.
	deploy.DefaultCreatedAt = deployDescCreatedAt.Default.(func() time.Time)
	detectedchangeFields := schema.DetectedChange{}.Fields()
	_ = detectedchangeFields
	// detectedchangeDescFirstDetectedAt is the schema descriptor for first_detected_at field.
	detectedchangeDescFirstDetectedAt := detectedchangeFields[9].Descriptor()
	// detectedchange.DefaultFirstDetectedAt holds the default value on creation for the first_detected_at field.
	detectedchange.DefaultFirstDetectedAt = detectedchangeDescFirstDetectedAt.Default.(func() time.Time)
	outcomefeedbackFields := schema.OutcomeFeedback{}.Fields()
	_ = outcomefeedbackFields
	// outcomefeedbackDescCreatedAt is the schema descriptor for created_at field.
	outcomefeedbackDescCreatedAt := outcomefeedbackFields[6].Descriptor()
	// outcomefeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	outcomefeedback.DefaultCreatedAt = outcomefeedbackDescCreatedAt.Default.(func() time.Time)
	pageFields := schema.Page{}.Fields()
	_ = pageFields
	// pageDescCreatedAt is the schema descriptor for created_at field.
	pageDescCreatedAt := pageFields[7].Descriptor()
	// page.DefaultCreatedAt holds the default value on creation for the created_at field.
	page.DefaultCreatedAt = pageDescCreatedAt.Default.(func() time.Time)
	trackedsuggestionFields := schema.TrackedSuggestion{}.Fields()
	_ = trackedsuggestionFields
	// trackedsuggestionDescTimesSuggested is the schema descriptor for times_suggested field.
	trackedsuggestionDescTimesSuggested := trackedsuggestionFields[8].Descriptor()
	// trackedsuggestion.DefaultTimesSuggested holds the default value on creation for the times_suggested field.
	trackedsuggestion.DefaultTimesSuggested = trackedsuggestionDescTimesSuggested.Default.(int)
	// trackedsuggestionDescFirstSuggestedAt is the schema descriptor for first_suggested_at field.
	trackedsuggestionDescFirstSuggestedAt := trackedsuggestionFields[10].Descriptor()
	// trackedsuggestion.DefaultFirstSuggestedAt holds the default value on creation for the first_suggested_at field.
	trackedsuggestion.DefaultFirstSuggestedAt = trackedsuggestionDescFirstSuggestedAt.Default.(func() time.Time)
	// trackedsuggestionDescLastSuggestedAt is the schema descriptor for last_suggested_at field.
	trackedsuggestionDescLastSuggestedAt := trackedsuggestionFields[11].Descriptor()
	// trackedsuggestion.DefaultLastSuggestedAt holds the default value on creation for the last_suggested_at field.
	trackedsuggestion.DefaultLastSuggestedAt = trackedsuggestionDescLastSuggestedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
