// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/caloriecache"
)

// CalorieCache is the model entity for the CalorieCache schema.
type CalorieCache struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DishName holds the value of the "dish_name" field.
	DishName string `json:"dish_name,omitempty"`
	// RestaurantName holds the value of the "restaurant_name" field.
	RestaurantName string `json:"restaurant_name,omitempty"`
	// Calories holds the value of the "calories" field.
	Calories float64 `json:"calories,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL *string `json:"source_url,omitempty"`
	// IsEstimated holds the value of the "is_estimated" field.
	IsEstimated bool `json:"is_estimated,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CalorieCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caloriecache.FieldIsEstimated:
			values[i] = new(sql.NullBool)
		case caloriecache.FieldCalories:
			values[i] = new(sql.NullFloat64)
		case caloriecache.FieldDishName, caloriecache.FieldRestaurantName, caloriecache.FieldSourceURL:
			values[i] = new(sql.NullString)
		case caloriecache.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case caloriecache.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CalorieCache fields.
func (_m *CalorieCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caloriecache.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case caloriecache.FieldDishName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dish_name", values[i])
			} else if value.Valid {
				_m.DishName = value.String
			}
		case caloriecache.FieldRestaurantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field restaurant_name", values[i])
			} else if value.Valid {
				_m.RestaurantName = value.String
			}
		case caloriecache.FieldCalories:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field calories", values[i])
			} else if value.Valid {
				_m.Calories = value.Float64
			}
		case caloriecache.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = new(string)
				*_m.SourceURL = value.String
			}
		case caloriecache.FieldIsEstimated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_estimated", values[i])
			} else if value.Valid {
				_m.IsEstimated = value.Bool
			}
		case caloriecache.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CalorieCache.
// This includes values selected through modifiers, order, etc.
func (_m *CalorieCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CalorieCache.
// Note that you need to call CalorieCache.Unwrap() before calling this method if this CalorieCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CalorieCache) Update() *CalorieCacheUpdateOne {
	return NewCalorieCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CalorieCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CalorieCache) Unwrap() *CalorieCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CalorieCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CalorieCache) String() string {
	var builder strings.Builder
	builder.WriteString("CalorieCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("dish_name=")
	builder.WriteString(_m.DishName)
	builder.WriteString(", ")
	builder.WriteString("restaurant_name=")
	builder.WriteString(_m.RestaurantName)
	builder.WriteString(", ")
	builder.WriteString("calories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Calories))
	builder.WriteString(", ")
	if v := _m.SourceURL; v != nil {
		builder.WriteString("source_url=")
		builder.WriteString(*v)
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

// CalorieCaches is a parsable slice of CalorieCache.
type CalorieCaches []*CalorieCache
