package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deploy holds the schema definition for the Deploy entity: one
// webhook-ingested commit batch that may trigger quick-diff scans.
type Deploy struct {
	ent.Schema
}

// Fields of the Deploy.
func (Deploy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("deploy_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("repo_id").
			Immutable(),
		field.String("commit_sha").
			Immutable(),
		field.String("full_name").
			Immutable().
			Comment("owner/repo"),
		field.String("commit_message").
			Optional().
			Nillable(),
		field.JSON("changed_files", []string{}).
			Optional().
			Comment("Used to filter which pages are affected"),
		field.Enum("status").
			Values("pending", "scanning", "complete").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Deploy.
func (Deploy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("deploys").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Deploy.
func (Deploy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("repo_id"),
	}
}
