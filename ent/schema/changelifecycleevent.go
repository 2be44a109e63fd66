package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChangeLifecycleEvent holds the schema definition for the
// ChangeLifecycleEvent entity: the audit row paired with every status
// mutation on a detected change. Checkpoint-driven transitions carry
// actor_type=system and the checkpoint that caused them.
type ChangeLifecycleEvent struct {
	ent.Schema
}

// Fields of the ChangeLifecycleEvent.
func (ChangeLifecycleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lifecycle_event_id").
			Unique().
			Immutable(),
		field.String("change_id").
			Immutable(),
		field.String("from_status").
			Optional().
			Nillable().
			Immutable().
			Comment("nil for the initial insert into watching"),
		field.String("to_status").
			Immutable(),
		field.Text("reason").
			Immutable(),
		field.Enum("actor_type").
			Values("system", "user").
			Immutable(),
		field.String("checkpoint_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ChangeLifecycleEvent.
func (ChangeLifecycleEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("change", DetectedChange.Type).
			Ref("lifecycle_events").
			Field("change_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ChangeLifecycleEvent.
func (ChangeLifecycleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("change_id", "created_at"),
		index.Fields("checkpoint_id"),
	}
}
