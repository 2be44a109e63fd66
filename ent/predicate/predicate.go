// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// AnalyticsConnection is the predicate function for analyticsconnection builders.
type AnalyticsConnection func(*sql.Selector)

// ChangeCheckpoint is the predicate function for changecheckpoint builders.
type ChangeCheckpoint func(*sql.Selector)

// ChangeLifecycleEvent is the predicate function for changelifecycleevent builders.
type ChangeLifecycleEvent func(*sql.Selector)

// Deploy is the predicate function for deploy builders.
type Deploy func(*sql.Selector)

// DetectedChange is the predicate function for detectedchange builders.
type DetectedChange func(*sql.Selector)

// OutcomeFeedback is the predicate function for outcomefeedback builders.
type OutcomeFeedback func(*sql.Selector)

// Page is the predicate function for page builders.
type Page func(*sql.Selector)

// TrackedSuggestion is the predicate function for trackedsuggestion builders.
type TrackedSuggestion func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
