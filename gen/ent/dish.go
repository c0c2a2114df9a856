// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/dish"
	"github.com/mealtrace/mealtrace/gen/ent/order"
)

// Dish is the model entity for the Dish schema.
type Dish struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID uuid.UUID `json:"order_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice *float64 `json:"unit_price,omitempty"`
	// Calories holds the value of the "calories" field.
	Calories *float64 `json:"calories,omitempty"`
	// IsEstimated holds the value of the "is_estimated" field.
	IsEstimated bool `json:"is_estimated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DishQuery when eager-loading is set.
	Edges        DishEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DishEdges holds the relations/edges for other nodes in the graph.
type DishEdges struct {
	// Order holds the value of the order edge.
	Order *Order `json:"order,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OrderOrErr returns the Order value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DishEdges) OrderOrErr() (*Order, error) {
	if e.Order != nil {
		return e.Order, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: order.Label}
	}
	return nil, &NotLoadedError{edge: "order"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Dish) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dish.FieldIsEstimated:
			values[i] = new(sql.NullBool)
		case dish.FieldUnitPrice, dish.FieldCalories:
			values[i] = new(sql.NullFloat64)
		case dish.FieldQuantity:
			values[i] = new(sql.NullInt64)
		case dish.FieldName:
			values[i] = new(sql.NullString)
		case dish.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case dish.FieldID, dish.FieldOrderID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Dish fields.
func (_m *Dish) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dish.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dish.FieldOrderID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value != nil {
				_m.OrderID = *value
			}
		case dish.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case dish.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case dish.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = new(float64)
				*_m.UnitPrice = value.Float64
			}
		case dish.FieldCalories:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field calories", values[i])
			} else if value.Valid {
				_m.Calories = new(float64)
				*_m.Calories = value.Float64
			}
		case dish.FieldIsEstimated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_estimated", values[i])
			} else if value.Valid {
				_m.IsEstimated = value.Bool
			}
		case dish.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Dish.
// This includes values selected through modifiers, order, etc.
func (_m *Dish) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrder queries the "order" edge of the Dish entity.
func (_m *Dish) QueryOrder() *OrderQuery {
	return NewDishClient(_m.config).QueryOrder(_m)
}

// Update returns a builder for updating this Dish.
// Note that you need to call Dish.Unwrap() before calling this method if this Dish
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Dish) Update() *DishUpdateOne {
	return NewDishClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Dish entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Dish) Unwrap() *Dish {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Dish is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Dish) String() string {
	var builder strings.Builder
	builder.WriteString("Dish(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("order_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrderID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	if v := _m.UnitPrice; v != nil {
		builder.WriteString("unit_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Calories; v != nil {
		builder.WriteString("calories=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_estimated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEstimated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Dishes is a parsable slice of Dish.
type Dishes []*Dish
