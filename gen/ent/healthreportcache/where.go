// Code generated by ent, DO NOT EDIT.

package healthreportcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldUserID, v))
}

// LastOrderCount applies equality check predicate on the "last_order_count" field. It's identical to LastOrderCountEQ.
func LastOrderCount(v int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldLastOrderCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNotIn(FieldUserID, vs...))
}

// LastOrderCountEQ applies the EQ predicate on the "last_order_count" field.
func LastOrderCountEQ(v int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldLastOrderCount, v))
}

// LastOrderCountNEQ applies the NEQ predicate on the "last_order_count" field.
func LastOrderCountNEQ(v int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNEQ(FieldLastOrderCount, v))
}

// LastOrderCountIn applies the In predicate on the "last_order_count" field.
func LastOrderCountIn(vs ...int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldIn(FieldLastOrderCount, vs...))
}

// LastOrderCountNotIn applies the NotIn predicate on the "last_order_count" field.
func LastOrderCountNotIn(vs ...int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNotIn(FieldLastOrderCount, vs...))
}

// LastOrderCountGT applies the GT predicate on the "last_order_count" field.
func LastOrderCountGT(v int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGT(FieldLastOrderCount, v))
}

// LastOrderCountGTE applies the GTE predicate on the "last_order_count" field.
func LastOrderCountGTE(v int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGTE(FieldLastOrderCount, v))
}

// LastOrderCountLT applies the LT predicate on the "last_order_count" field.
func LastOrderCountLT(v int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLT(FieldLastOrderCount, v))
}

// LastOrderCountLTE applies the LTE predicate on the "last_order_count" field.
func LastOrderCountLTE(v int) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLTE(FieldLastOrderCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.HealthReportCache {
	return predicate.HealthReportCache(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.HealthReportCache {
	return predicate.HealthReportCache(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HealthReportCache) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HealthReportCache) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HealthReportCache) predicate.HealthReportCache {
	return predicate.HealthReportCache(sql.NotPredicates(p))
}
