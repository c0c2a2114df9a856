// Code generated by ent, DO NOT EDIT.

package caloriecache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLTE(FieldID, id))
}

// DishName applies equality check predicate on the "dish_name" field. It's identical to DishNameEQ.
func DishName(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldDishName, v))
}

// RestaurantName applies equality check predicate on the "restaurant_name" field. It's identical to RestaurantNameEQ.
func RestaurantName(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldRestaurantName, v))
}

// Calories applies equality check predicate on the "calories" field. It's identical to CaloriesEQ.
func Calories(v float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldCalories, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldSourceURL, v))
}

// IsEstimated applies equality check predicate on the "is_estimated" field. It's identical to IsEstimatedEQ.
func IsEstimated(v bool) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldIsEstimated, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldCreatedAt, v))
}

// DishNameEQ applies the EQ predicate on the "dish_name" field.
func DishNameEQ(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldDishName, v))
}

// DishNameNEQ applies the NEQ predicate on the "dish_name" field.
func DishNameNEQ(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNEQ(FieldDishName, v))
}

// DishNameIn applies the In predicate on the "dish_name" field.
func DishNameIn(vs ...string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIn(FieldDishName, vs...))
}

// DishNameNotIn applies the NotIn predicate on the "dish_name" field.
func DishNameNotIn(vs ...string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotIn(FieldDishName, vs...))
}

// DishNameGT applies the GT predicate on the "dish_name" field.
func DishNameGT(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGT(FieldDishName, v))
}

// DishNameGTE applies the GTE predicate on the "dish_name" field.
func DishNameGTE(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGTE(FieldDishName, v))
}

// DishNameLT applies the LT predicate on the "dish_name" field.
func DishNameLT(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLT(FieldDishName, v))
}

// DishNameLTE applies the LTE predicate on the "dish_name" field.
func DishNameLTE(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLTE(FieldDishName, v))
}

// DishNameContains applies the Contains predicate on the "dish_name" field.
func DishNameContains(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldContains(FieldDishName, v))
}

// DishNameHasPrefix applies the HasPrefix predicate on the "dish_name" field.
func DishNameHasPrefix(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldHasPrefix(FieldDishName, v))
}

// DishNameHasSuffix applies the HasSuffix predicate on the "dish_name" field.
func DishNameHasSuffix(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldHasSuffix(FieldDishName, v))
}

// DishNameEqualFold applies the EqualFold predicate on the "dish_name" field.
func DishNameEqualFold(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEqualFold(FieldDishName, v))
}

// DishNameContainsFold applies the ContainsFold predicate on the "dish_name" field.
func DishNameContainsFold(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldContainsFold(FieldDishName, v))
}

// RestaurantNameEQ applies the EQ predicate on the "restaurant_name" field.
func RestaurantNameEQ(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldRestaurantName, v))
}

// RestaurantNameNEQ applies the NEQ predicate on the "restaurant_name" field.
func RestaurantNameNEQ(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNEQ(FieldRestaurantName, v))
}

// RestaurantNameIn applies the In predicate on the "restaurant_name" field.
func RestaurantNameIn(vs ...string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIn(FieldRestaurantName, vs...))
}

// RestaurantNameNotIn applies the NotIn predicate on the "restaurant_name" field.
func RestaurantNameNotIn(vs ...string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotIn(FieldRestaurantName, vs...))
}

// RestaurantNameGT applies the GT predicate on the "restaurant_name" field.
func RestaurantNameGT(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGT(FieldRestaurantName, v))
}

// RestaurantNameGTE applies the GTE predicate on the "restaurant_name" field.
func RestaurantNameGTE(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGTE(FieldRestaurantName, v))
}

// RestaurantNameLT applies the LT predicate on the "restaurant_name" field.
func RestaurantNameLT(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLT(FieldRestaurantName, v))
}

// RestaurantNameLTE applies the LTE predicate on the "restaurant_name" field.
func RestaurantNameLTE(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLTE(FieldRestaurantName, v))
}

// RestaurantNameContains applies the Contains predicate on the "restaurant_name" field.
func RestaurantNameContains(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldContains(FieldRestaurantName, v))
}

// RestaurantNameHasPrefix applies the HasPrefix predicate on the "restaurant_name" field.
func RestaurantNameHasPrefix(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldHasPrefix(FieldRestaurantName, v))
}

// RestaurantNameHasSuffix applies the HasSuffix predicate on the "restaurant_name" field.
func RestaurantNameHasSuffix(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldHasSuffix(FieldRestaurantName, v))
}

// RestaurantNameIsNil applies the IsNil predicate on the "restaurant_name" field.
func RestaurantNameIsNil() predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIsNull(FieldRestaurantName))
}

// RestaurantNameNotNil applies the NotNil predicate on the "restaurant_name" field.
func RestaurantNameNotNil() predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotNull(FieldRestaurantName))
}

// RestaurantNameEqualFold applies the EqualFold predicate on the "restaurant_name" field.
func RestaurantNameEqualFold(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEqualFold(FieldRestaurantName, v))
}

// RestaurantNameContainsFold applies the ContainsFold predicate on the "restaurant_name" field.
func RestaurantNameContainsFold(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldContainsFold(FieldRestaurantName, v))
}

// CaloriesEQ applies the EQ predicate on the "calories" field.
func CaloriesEQ(v float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldCalories, v))
}

// CaloriesNEQ applies the NEQ predicate on the "calories" field.
func CaloriesNEQ(v float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNEQ(FieldCalories, v))
}

// CaloriesIn applies the In predicate on the "calories" field.
func CaloriesIn(vs ...float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIn(FieldCalories, vs...))
}

// CaloriesNotIn applies the NotIn predicate on the "calories" field.
func CaloriesNotIn(vs ...float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotIn(FieldCalories, vs...))
}

// CaloriesGT applies the GT predicate on the "calories" field.
func CaloriesGT(v float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGT(FieldCalories, v))
}

// CaloriesGTE applies the GTE predicate on the "calories" field.
func CaloriesGTE(v float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGTE(FieldCalories, v))
}

// CaloriesLT applies the LT predicate on the "calories" field.
func CaloriesLT(v float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLT(FieldCalories, v))
}

// CaloriesLTE applies the LTE predicate on the "calories" field.
func CaloriesLTE(v float64) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLTE(FieldCalories, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldContainsFold(FieldSourceURL, v))
}

// IsEstimatedEQ applies the EQ predicate on the "is_estimated" field.
func IsEstimatedEQ(v bool) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldIsEstimated, v))
}

// IsEstimatedNEQ applies the NEQ predicate on the "is_estimated" field.
func IsEstimatedNEQ(v bool) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNEQ(FieldIsEstimated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CalorieCache {
	return predicate.CalorieCache(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CalorieCache) predicate.CalorieCache {
	return predicate.CalorieCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CalorieCache) predicate.CalorieCache {
	return predicate.CalorieCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CalorieCache) predicate.CalorieCache {
	return predicate.CalorieCache(sql.NotPredicates(p))
}
