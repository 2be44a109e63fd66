package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DetectedChange holds the schema definition for the DetectedChange
// entity: the central lifecycle record of one semantically named
// delta between two page states.
//
// Invariants enforced by the service layer:
//   - every status mutation is paired with exactly one lifecycle event
//   - correlation_unlocked_at is non-nil iff the change has ever left watching
//   - once reverted, no checkpoint may mutate it
type DetectedChange struct {
	ent.Schema
}

// Fields of the DetectedChange.
func (DetectedChange) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("change_id").
			Unique().
			Immutable(),
		field.String("page_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Duplicated from the page so ownership checks never join"),
		field.String("element").
			Comment("Short natural-language label, e.g. 'Hero headline'"),
		field.Enum("scope").
			Values("element", "section", "page").
			Default("element"),
		field.Text("before_value"),
		field.Text("after_value"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("watching", "validated", "regressed", "inconclusive", "reverted").
			Default("watching"),
		field.Time("first_detected_at").
			Default(time.Now).
			Immutable(),
		field.String("detected_on").
			Immutable().
			Comment("UTC date (YYYY-MM-DD) of first detection, backs the unique-per-day insert constraint"),
		field.String("first_detected_analysis_id").
			Optional().
			Nillable().
			Immutable(),
		field.Text("hypothesis").
			Optional().
			Nillable().
			Comment("User-supplied expectation fed to the checkpoint assessor"),
		field.JSON("correlation_metrics", map[string]interface{}{}).
			Optional().
			Comment("Last recorded evidence snapshot"),
		field.Time("correlation_unlocked_at").
			Optional().
			Nillable(),
		field.Text("observation_text").
			Optional().
			Nillable(),
		field.Float("match_confidence").
			Optional().
			Nillable(),
		field.Text("match_rationale").
			Optional().
			Nillable(),
		field.Time("reverted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the DetectedChange.
func (DetectedChange) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("page", Page.Type).
			Ref("detected_changes").
			Field("page_id").
			Unique().
			Required().
			Immutable(),
		edge.To("checkpoints", ChangeCheckpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("lifecycle_events", ChangeLifecycleEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outcome_feedback", OutcomeFeedback.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DetectedChange.
func (DetectedChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("page_id", "status"),
		index.Fields("status", "first_detected_at"),
		// Unique-per-day insert constraint for new detections.
		index.Fields("page_id", "element", "detected_on").
			Unique(),
	}
}
