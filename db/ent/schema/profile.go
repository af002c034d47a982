package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Profile is the consumer the report belongs to. Rows are created by the
// account system; this service only references them.
type Profile struct{ ent.Schema }

func (Profile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "profile"},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("email").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ExtractJob.Type),
		edge.To("items", CreditItem.Type),
	}
}
