// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUserID, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldMessageID, v))
}

// RestaurantName applies equality check predicate on the "restaurant_name" field. It's identical to RestaurantNameEQ.
func RestaurantName(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRestaurantName, v))
}

// OrderedAt applies equality check predicate on the "ordered_at" field. It's identical to OrderedAtEQ.
func OrderedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderedAt, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalCalories applies equality check predicate on the "total_calories" field. It's identical to TotalCaloriesEQ.
func TotalCalories(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalCalories, v))
}

// HasEstimates applies equality check predicate on the "has_estimates" field. It's identical to HasEstimatesEQ.
func HasEstimates(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldHasEstimates, v))
}

// RawSubject applies equality check predicate on the "raw_subject" field. It's identical to RawSubjectEQ.
func RawSubject(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRawSubject, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUserID, vs...))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldMessageID, v))
}

// RestaurantNameEQ applies the EQ predicate on the "restaurant_name" field.
func RestaurantNameEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRestaurantName, v))
}

// RestaurantNameNEQ applies the NEQ predicate on the "restaurant_name" field.
func RestaurantNameNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldRestaurantName, v))
}

// RestaurantNameIn applies the In predicate on the "restaurant_name" field.
func RestaurantNameIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldRestaurantName, vs...))
}

// RestaurantNameNotIn applies the NotIn predicate on the "restaurant_name" field.
func RestaurantNameNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldRestaurantName, vs...))
}

// RestaurantNameGT applies the GT predicate on the "restaurant_name" field.
func RestaurantNameGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldRestaurantName, v))
}

// RestaurantNameGTE applies the GTE predicate on the "restaurant_name" field.
func RestaurantNameGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldRestaurantName, v))
}

// RestaurantNameLT applies the LT predicate on the "restaurant_name" field.
func RestaurantNameLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldRestaurantName, v))
}

// RestaurantNameLTE applies the LTE predicate on the "restaurant_name" field.
func RestaurantNameLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldRestaurantName, v))
}

// RestaurantNameContains applies the Contains predicate on the "restaurant_name" field.
func RestaurantNameContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldRestaurantName, v))
}

// RestaurantNameHasPrefix applies the HasPrefix predicate on the "restaurant_name" field.
func RestaurantNameHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldRestaurantName, v))
}

// RestaurantNameHasSuffix applies the HasSuffix predicate on the "restaurant_name" field.
func RestaurantNameHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldRestaurantName, v))
}

// RestaurantNameEqualFold applies the EqualFold predicate on the "restaurant_name" field.
func RestaurantNameEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldRestaurantName, v))
}

// RestaurantNameContainsFold applies the ContainsFold predicate on the "restaurant_name" field.
func RestaurantNameContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldRestaurantName, v))
}

// OrderedAtEQ applies the EQ predicate on the "ordered_at" field.
func OrderedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderedAt, v))
}

// OrderedAtNEQ applies the NEQ predicate on the "ordered_at" field.
func OrderedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderedAt, v))
}

// OrderedAtIn applies the In predicate on the "ordered_at" field.
func OrderedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderedAt, vs...))
}

// OrderedAtNotIn applies the NotIn predicate on the "ordered_at" field.
func OrderedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderedAt, vs...))
}

// OrderedAtGT applies the GT predicate on the "ordered_at" field.
func OrderedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrderedAt, v))
}

// OrderedAtGTE applies the GTE predicate on the "ordered_at" field.
func OrderedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrderedAt, v))
}

// OrderedAtLT applies the LT predicate on the "ordered_at" field.
func OrderedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrderedAt, v))
}

// OrderedAtLTE applies the LTE predicate on the "ordered_at" field.
func OrderedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrderedAt, v))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTotalPrice, v))
}

// TotalPriceIsNil applies the IsNil predicate on the "total_price" field.
func TotalPriceIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldTotalPrice))
}

// TotalPriceNotNil applies the NotNil predicate on the "total_price" field.
func TotalPriceNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldTotalPrice))
}

// TotalCaloriesEQ applies the EQ predicate on the "total_calories" field.
func TotalCaloriesEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldTotalCalories, v))
}

// TotalCaloriesNEQ applies the NEQ predicate on the "total_calories" field.
func TotalCaloriesNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldTotalCalories, v))
}

// TotalCaloriesIn applies the In predicate on the "total_calories" field.
func TotalCaloriesIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldTotalCalories, vs...))
}

// TotalCaloriesNotIn applies the NotIn predicate on the "total_calories" field.
func TotalCaloriesNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldTotalCalories, vs...))
}

// TotalCaloriesGT applies the GT predicate on the "total_calories" field.
func TotalCaloriesGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldTotalCalories, v))
}

// TotalCaloriesGTE applies the GTE predicate on the "total_calories" field.
func TotalCaloriesGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldTotalCalories, v))
}

// TotalCaloriesLT applies the LT predicate on the "total_calories" field.
func TotalCaloriesLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldTotalCalories, v))
}

// TotalCaloriesLTE applies the LTE predicate on the "total_calories" field.
func TotalCaloriesLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldTotalCalories, v))
}

// TotalCaloriesIsNil applies the IsNil predicate on the "total_calories" field.
func TotalCaloriesIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldTotalCalories))
}

// TotalCaloriesNotNil applies the NotNil predicate on the "total_calories" field.
func TotalCaloriesNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldTotalCalories))
}

// HasEstimatesEQ applies the EQ predicate on the "has_estimates" field.
func HasEstimatesEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldHasEstimates, v))
}

// HasEstimatesNEQ applies the NEQ predicate on the "has_estimates" field.
func HasEstimatesNEQ(v bool) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldHasEstimates, v))
}

// RawSubjectEQ applies the EQ predicate on the "raw_subject" field.
func RawSubjectEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldRawSubject, v))
}

// RawSubjectNEQ applies the NEQ predicate on the "raw_subject" field.
func RawSubjectNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldRawSubject, v))
}

// RawSubjectIn applies the In predicate on the "raw_subject" field.
func RawSubjectIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldRawSubject, vs...))
}

// RawSubjectNotIn applies the NotIn predicate on the "raw_subject" field.
func RawSubjectNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldRawSubject, vs...))
}

// RawSubjectGT applies the GT predicate on the "raw_subject" field.
func RawSubjectGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldRawSubject, v))
}

// RawSubjectGTE applies the GTE predicate on the "raw_subject" field.
func RawSubjectGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldRawSubject, v))
}

// RawSubjectLT applies the LT predicate on the "raw_subject" field.
func RawSubjectLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldRawSubject, v))
}

// RawSubjectLTE applies the LTE predicate on the "raw_subject" field.
func RawSubjectLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldRawSubject, v))
}

// RawSubjectContains applies the Contains predicate on the "raw_subject" field.
func RawSubjectContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldRawSubject, v))
}

// RawSubjectHasPrefix applies the HasPrefix predicate on the "raw_subject" field.
func RawSubjectHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldRawSubject, v))
}

// RawSubjectHasSuffix applies the HasSuffix predicate on the "raw_subject" field.
func RawSubjectHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldRawSubject, v))
}

// RawSubjectIsNil applies the IsNil predicate on the "raw_subject" field.
func RawSubjectIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldRawSubject))
}

// RawSubjectNotNil applies the NotNil predicate on the "raw_subject" field.
func RawSubjectNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldRawSubject))
}

// RawSubjectEqualFold applies the EqualFold predicate on the "raw_subject" field.
func RawSubjectEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldRawSubject, v))
}

// RawSubjectContainsFold applies the ContainsFold predicate on the "raw_subject" field.
func RawSubjectContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldRawSubject, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDishes applies the HasEdge predicate on the "dishes" edge.
func HasDishes() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DishesTable, DishesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDishesWith applies the HasEdge predicate on the "dishes" edge with a given conditions (other predicates).
func HasDishesWith(preds ...predicate.Dish) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newDishesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
