// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldRestaurantName holds the string denoting the restaurant_name field in the database.
	FieldRestaurantName = "restaurant_name"
	// FieldOrderedAt holds the string denoting the ordered_at field in the database.
	FieldOrderedAt = "ordered_at"
	// FieldTotalPrice holds the string denoting the total_price field in the database.
	FieldTotalPrice = "total_price"
	// FieldTotalCalories holds the string denoting the total_calories field in the database.
	FieldTotalCalories = "total_calories"
	// FieldHasEstimates holds the string denoting the has_estimates field in the database.
	FieldHasEstimates = "has_estimates"
	// FieldRawSubject holds the string denoting the raw_subject field in the database.
	FieldRawSubject = "raw_subject"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeDishes holds the string denoting the dishes edge name in mutations.
	EdgeDishes = "dishes"
	// Table holds the table name of the order in the database.
	Table = "orders"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "orders"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// DishesTable is the table that holds the dishes relation/edge.
	DishesTable = "dishes"
	// DishesInverseTable is the table name for the Dish entity.
	// It exists in this package in order to avoid circular dependency with the "dish" package.
	DishesInverseTable = "dishes"
	// DishesColumn is the table column denoting the dishes relation/edge.
	DishesColumn = "order_id"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldMessageID,
	FieldRestaurantName,
	FieldOrderedAt,
	FieldTotalPrice,
	FieldTotalCalories,
	FieldHasEstimates,
	FieldRawSubject,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// MessageIDValidator is a validator for the "message_id" field. It is called by the builders before save.
	MessageIDValidator func(string) error
	// RestaurantNameValidator is a validator for the "restaurant_name" field. It is called by the builders before save.
	RestaurantNameValidator func(string) error
	// DefaultHasEstimates holds the default value on creation for the "has_estimates" field.
	DefaultHasEstimates bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByRestaurantName orders the results by the restaurant_name field.
func ByRestaurantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestaurantName, opts...).ToFunc()
}

// ByOrderedAt orders the results by the ordered_at field.
func ByOrderedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderedAt, opts...).ToFunc()
}

// ByTotalPrice orders the results by the total_price field.
func ByTotalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPrice, opts...).ToFunc()
}

// ByTotalCalories orders the results by the total_calories field.
func ByTotalCalories(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCalories, opts...).ToFunc()
}

// ByHasEstimates orders the results by the has_estimates field.
func ByHasEstimates(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasEstimates, opts...).ToFunc()
}

// ByRawSubject orders the results by the raw_subject field.
func ByRawSubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawSubject, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByDishesCount orders the results by dishes count.
func ByDishesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDishesStep(), opts...)
	}
}

// ByDishes orders the results by dishes terms.
func ByDishes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDishesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
func newDishesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DishesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DishesTable, DishesColumn),
	)
}
