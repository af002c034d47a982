package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type CreditItem struct{ ent.Schema }

func (CreditItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "credit_item"},
	}
}

func (CreditItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("job_id", uuid.UUID{}),
		field.String("creditor_name").NotEmpty(),
		field.String("item_type").NotEmpty(),
		field.Int64("amount_cents").Optional().Nillable(),
		field.Time("opened_date").Optional().Nillable(),
		field.Time("reported_date").Optional().Nillable(),
		field.String("account_last4").Optional().Nillable().MaxLen(4),
		field.JSON("bureaus", []string{}).Optional(),
		field.Bool("is_negative").Default(false),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("confidence").Default(0),
		field.String("status").Default("to_send"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CreditItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("items").
			Field("profile_id").
			Unique().
			Required(),
		edge.From("job", ExtractJob.Type).
			Ref("items").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (CreditItem) Indexes() []ent.Index {
	return []ent.Index{
		// upsert identity: one row per profile/creditor/type
		index.Fields("profile_id", "creditor_name", "item_type").Unique(),
		index.Fields("job_id"),
	}
}
