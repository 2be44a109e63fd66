package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Row-level security and auth live outside the engine; the engine only
// reads tier/trial state to gate features.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.Enum("tier").
			Values("free", "starter", "pro").
			Default("free"),
		field.Time("trial_ends_at").
			Optional().
			Nillable().
			Comment("Trial window end; trial users get starter features until this passes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("pages", Page.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("analytics_connections", AnalyticsConnection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("deploys", Deploy.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier"),
	}
}
