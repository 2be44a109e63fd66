package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrackedSuggestion holds the schema definition for the
// TrackedSuggestion entity: a persistent open-action proposed by the
// audit. Re-proposal reopens addressed/dismissed items and bumps
// times_suggested.
type TrackedSuggestion struct {
	ent.Schema
}

// Fields of the TrackedSuggestion.
func (TrackedSuggestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suggestion_id").
			Unique().
			Immutable(),
		field.String("page_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("title"),
		field.String("element"),
		field.Text("suggested_fix"),
		field.Enum("impact").
			Values("high", "medium", "low"),
		field.Enum("status").
			Values("open", "addressed", "dismissed").
			Default("open"),
		field.Int("times_suggested").
			Default(1),
		field.String("dedup_key").
			Immutable().
			Comment("Normalized (element, title) key used for the per-scan upsert"),
		field.Time("first_suggested_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_suggested_at").
			Default(time.Now),
	}
}

// Edges of the TrackedSuggestion.
func (TrackedSuggestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("page", Page.Type).
			Ref("tracked_suggestions").
			Field("page_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TrackedSuggestion.
func (TrackedSuggestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("page_id", "status"),
		index.Fields("page_id", "dedup_key").
			Unique(),
	}
}
