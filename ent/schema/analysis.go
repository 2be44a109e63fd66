package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis holds the schema definition for the Analysis entity: one
// capture+audit attempt for a page. Created pending by the event
// producer, advanced to processing exactly once, then terminal
// complete or failed. Terminal rows are never mutated except for the
// changes_summary recomposition path.
type Analysis struct {
	ent.Schema
}

// Fields of the Analysis.
func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("page_id").
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Duplicated from the page so child queries never join through pages"),
		field.String("url").
			Immutable(),
		field.Enum("status").
			Values("pending", "processing", "complete", "failed").
			Default("pending"),
		field.Enum("trigger_type").
			Values("manual", "daily", "weekly", "deploy").
			Default("manual").
			Immutable(),
		field.String("parent_analysis_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Previous analysis for this page; presence makes this a chronicle (carries changes_summary)"),
		field.String("deploy_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("desktop_screenshot_url").
			Optional().
			Nillable(),
		field.String("mobile_screenshot_url").
			Optional().
			Nillable(),
		field.Text("freeform_output").
			Optional().
			Nillable().
			Comment("Vision audit narrative"),
		field.JSON("structured_output", map[string]interface{}{}).
			Optional(),
		field.JSON("changes_summary", map[string]interface{}{}).
			Optional().
			Comment("Only populated when a parent or deploy/analytics context exists; progress section is composer-owned"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0).
			Comment("Workflow re-run counter, capped at the workflow retry budget"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Analysis.
func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("page", Page.Type).
			Ref("analyses").
			Field("page_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Analysis.
func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("page_id", "status"),
		index.Fields("user_id", "trigger_type", "created_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("deploy_id"),
	}
}
