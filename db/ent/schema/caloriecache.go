package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CalorieCache rows are append-only. Concurrent resolutions may insert
// duplicates for the same dish; reads take the oldest match so results
// stay deterministic once any row lands.
type CalorieCache struct{ ent.Schema }

func (CalorieCache) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "calorie_cache"},
	}
}

func (CalorieCache) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("dish_name").NotEmpty().Immutable(),
		field.String("restaurant_name").Optional().Immutable(),
		field.Float("calories").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Immutable(),
		field.String("source_url").Optional().Nillable().Immutable(),
		field.Bool("is_estimated").Default(false).Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (CalorieCache) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dish_name"),
		index.Fields("dish_name", "restaurant_name"),
	}
}
