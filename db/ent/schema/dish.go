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

type Dish struct{ ent.Schema }

func (Dish) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "dishes"},
	}
}

func (Dish) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("order_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Int("quantity").Default(1).Positive(),
		field.Float("unit_price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// Quantity-weighted calorie total for the line, unknown when the
		// resolver exhausted every source.
		field.Float("calories").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("is_estimated").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (Dish) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY dishes -> ONE order (FK: dishes.order_id)
		edge.From("order", Order.Type).
			Ref("dishes").
			Field("order_id").
			Required().
			Unique(),
	}
}
