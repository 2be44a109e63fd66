package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutcomeFeedback holds the schema definition for the OutcomeFeedback
// entity: a user's judgment on a prior checkpoint, fed back into
// future assessor prompts.
type OutcomeFeedback struct {
	ent.Schema
}

// Fields of the OutcomeFeedback.
func (OutcomeFeedback) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("feedback_id").
			Unique().
			Immutable(),
		field.String("change_id").
			Immutable(),
		field.String("checkpoint_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("feedback_type").
			Values("accurate", "inaccurate").
			Immutable(),
		field.Text("comment").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the OutcomeFeedback.
func (OutcomeFeedback) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("change", DetectedChange.Type).
			Ref("outcome_feedback").
			Field("change_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OutcomeFeedback.
func (OutcomeFeedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("change_id", "created_at"),
	}
}
