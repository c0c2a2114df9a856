package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/mealtrace/mealtrace/constants"
	"github.com/mealtrace/mealtrace/db/ent/schema/utils"
)

// SyncLog records the outcome of every processed mail message so a re-sync
// can report what happened without re-running extraction.
type SyncLog struct{ ent.Schema }

func (SyncLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sync_log"},
	}
}

func (SyncLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("message_id").NotEmpty().Immutable(),
		field.String("outcome").
			Validate(utils.EnumValidator(constants.OutcomeStrings()...)).
			Immutable(),
		field.String("detail").Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (SyncLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("message_id"),
	}
}
