package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChangeCheckpoint holds the schema definition for the ChangeCheckpoint
// entity: an immutable metric-window evaluation at a fixed post-change
// horizon. Rows are append-only; the conflict policy on
// (change_id, horizon_days) is "ignore duplicates".
type ChangeCheckpoint struct {
	ent.Schema
}

// Fields of the ChangeCheckpoint.
func (ChangeCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("change_id").
			Immutable(),
		field.Int("horizon_days").
			Immutable().
			Comment("One of 7, 14, 30, 60, 90"),
		field.Time("before_window_start").
			Immutable(),
		field.Time("before_window_end").
			Immutable(),
		field.Time("after_window_start").
			Immutable(),
		field.Time("after_window_end").
			Immutable(),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("Full metrics envelope used for the assessment"),
		field.Enum("assessment").
			Values("improved", "regressed", "neutral", "inconclusive").
			Immutable(),
		field.Float("confidence").
			Optional().
			Nillable().
			Comment("0 when no metrics, 0.3 for deterministic fallback, (0,1] from the assessor"),
		field.Text("reasoning").
			Immutable().
			Comment("Every row carries an explanation, synthesized on fallback"),
		field.JSON("data_sources", []string{}).
			Optional(),
		field.String("provider").
			Immutable().
			Comment("posthog, ga4, supabase, or none; never a provider that failed init"),
		field.Time("computed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChangeCheckpoint.
func (ChangeCheckpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("change", DetectedChange.Type).
			Ref("checkpoints").
			Field("change_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChangeCheckpoint.
func (ChangeCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("change_id", "horizon_days").
			Unique(),
	}
}
