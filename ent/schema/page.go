package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Page holds the schema definition for the Page entity: a watched URL
// owned by a user. A page exclusively owns its analyses, detected
// changes, and tracked suggestions; deleting a page cascades.
type Page struct {
	ent.Schema
}

// Fields of the Page.
func (Page) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("page_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("url"),
		field.Enum("scan_frequency").
			Values("daily", "weekly", "manual").
			Default("manual"),
		field.Text("metric_focus").
			Optional().
			Nillable().
			Comment("Free-text focus used to bias the checkpoint assessor"),
		field.String("stable_baseline_id").
			Optional().
			Nillable().
			Comment("Analysis considered canonical for quick-diff; must be a complete analysis of this page"),
		field.String("last_scan_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Page.
func (Page) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("pages").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("analyses", Analysis.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("detected_changes", DetectedChange.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tracked_suggestions", TrackedSuggestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Page.
func (Page) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "url").
			Unique(),
		index.Fields("scan_frequency"),
	}
}
