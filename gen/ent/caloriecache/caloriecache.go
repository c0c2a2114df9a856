// Code generated by ent, DO NOT EDIT.

package caloriecache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the caloriecache type in the database.
	Label = "calorie_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDishName holds the string denoting the dish_name field in the database.
	FieldDishName = "dish_name"
	// FieldRestaurantName holds the string denoting the restaurant_name field in the database.
	FieldRestaurantName = "restaurant_name"
	// FieldCalories holds the string denoting the calories field in the database.
	FieldCalories = "calories"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldIsEstimated holds the string denoting the is_estimated field in the database.
	FieldIsEstimated = "is_estimated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the caloriecache in the database.
	Table = "calorie_cache"
)

// Columns holds all SQL columns for caloriecache fields.
var Columns = []string{
	FieldID,
	FieldDishName,
	FieldRestaurantName,
	FieldCalories,
	FieldSourceURL,
	FieldIsEstimated,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DishNameValidator is a validator for the "dish_name" field. It is called by the builders before save.
	DishNameValidator func(string) error
	// DefaultIsEstimated holds the default value on creation for the "is_estimated" field.
	DefaultIsEstimated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CalorieCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDishName orders the results by the dish_name field.
func ByDishName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDishName, opts...).ToFunc()
}

// ByRestaurantName orders the results by the restaurant_name field.
func ByRestaurantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestaurantName, opts...).ToFunc()
}

// ByCalories orders the results by the calories field.
func ByCalories(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalories, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByIsEstimated orders the results by the is_estimated field.
func ByIsEstimated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEstimated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
