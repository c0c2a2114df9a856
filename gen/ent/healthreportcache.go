// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

// HealthReportCache is the model entity for the HealthReportCache schema.
type HealthReportCache struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// LastOrderCount holds the value of the "last_order_count" field.
	LastOrderCount int `json:"last_order_count,omitempty"`
	// Report holds the value of the "report" field.
	Report map[string]interface{} `json:"report,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HealthReportCacheQuery when eager-loading is set.
	Edges        HealthReportCacheEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HealthReportCacheEdges holds the relations/edges for other nodes in the graph.
type HealthReportCacheEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HealthReportCacheEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HealthReportCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case healthreportcache.FieldReport:
			values[i] = new([]byte)
		case healthreportcache.FieldLastOrderCount:
			values[i] = new(sql.NullInt64)
		case healthreportcache.FieldCreatedAt, healthreportcache.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case healthreportcache.FieldID, healthreportcache.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HealthReportCache fields.
func (_m *HealthReportCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case healthreportcache.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case healthreportcache.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case healthreportcache.FieldLastOrderCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_order_count", values[i])
			} else if value.Valid {
				_m.LastOrderCount = int(value.Int64)
			}
		case healthreportcache.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		case healthreportcache.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case healthreportcache.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HealthReportCache.
// This includes values selected through modifiers, order, etc.
func (_m *HealthReportCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the HealthReportCache entity.
func (_m *HealthReportCache) QueryUser() *UserQuery {
	return NewHealthReportCacheClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this HealthReportCache.
// Note that you need to call HealthReportCache.Unwrap() before calling this method if this HealthReportCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HealthReportCache) Update() *HealthReportCacheUpdateOne {
	return NewHealthReportCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HealthReportCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HealthReportCache) Unwrap() *HealthReportCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HealthReportCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HealthReportCache) String() string {
	var builder strings.Builder
	builder.WriteString("HealthReportCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("last_order_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastOrderCount))
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HealthReportCaches is a parsable slice of HealthReportCache.
type HealthReportCaches []*HealthReportCache
