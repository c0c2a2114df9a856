package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Order struct{ ent.Schema }

func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		// Mail message id; storage-level dedup key for re-synced mailboxes.
		field.String("message_id").NotEmpty().Unique().Immutable(),
		field.String("restaurant_name").NotEmpty(),
		field.Time("ordered_at"),
		field.Float("total_price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_calories").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("has_estimates").Default(false),
		field.String("raw_subject").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY orders -> ONE user (FK: orders.user_id)
		edge.From("user", User.Type).
			Ref("orders").
			Field("user_id").
			Required().
			Unique(),
		// ONE order -> MANY dishes
		edge.To("dishes", Dish.Type),
	}
}
