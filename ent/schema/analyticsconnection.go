package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyticsConnection holds the schema definition for the
// AnalyticsConnection entity: per-user analytics provider credentials.
// Credentials are sealed at rest and decrypted once per user per
// checkpoint batch, never logged.
type AnalyticsConnection struct {
	ent.Schema
}

// Fields of the AnalyticsConnection.
func (AnalyticsConnection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("connection_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("provider").
			Values("posthog", "ga4", "supabase").
			Immutable(),
		field.Bytes("encrypted_credentials").
			Sensitive().
			Comment("AES-GCM sealed credential JSON"),
		field.Enum("status").
			Values("active", "error").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AnalyticsConnection.
func (AnalyticsConnection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("analytics_connections").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AnalyticsConnection.
func (AnalyticsConnection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "provider").
			Unique(),
	}
}
