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

// HealthReportCache stores the last computed report per user, keyed on the
// order-count watermark. The report is recomputed only when the user's
// order set has grown past the stored watermark.
type HealthReportCache struct{ ent.Schema }

func (HealthReportCache) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "health_report_cache"},
	}
}

func (HealthReportCache) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}).Unique(),
		field.Int("last_order_count").NonNegative(),
		field.JSON("report", map[string]any{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (HealthReportCache) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE cache row -> ONE user (FK: health_report_cache.user_id)
		edge.From("user", User.Type).
			Ref("report_caches").
			Field("user_id").
			Required().
			Unique(),
	}
}
