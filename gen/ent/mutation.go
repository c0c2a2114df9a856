// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/caloriecache"
	"github.com/mealtrace/mealtrace/gen/ent/dish"
	"github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/gen/ent/order"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
	"github.com/mealtrace/mealtrace/gen/ent/synclog"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCalorieCache      = "CalorieCache"
	TypeDish              = "Dish"
	TypeHealthReportCache = "HealthReportCache"
	TypeOrder             = "Order"
	TypeSyncLog           = "SyncLog"
	TypeUser              = "User"
)

// CalorieCacheMutation represents an operation that mutates the CalorieCache nodes in the graph.
type CalorieCacheMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	dish_name       *string
	restaurant_name *string
	calories        *float64
	addcalories     *float64
	source_url      *string
	is_estimated    *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CalorieCache, error)
	predicates      []predicate.CalorieCache
}

var _ ent.Mutation = (*CalorieCacheMutation)(nil)

// caloriecacheOption allows management of the mutation configuration using functional options.
type caloriecacheOption func(*CalorieCacheMutation)

// newCalorieCacheMutation creates new mutation for the CalorieCache entity.
func newCalorieCacheMutation(c config, op Op, opts ...caloriecacheOption) *CalorieCacheMutation {
	m := &CalorieCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeCalorieCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCalorieCacheID sets the ID field of the mutation.
func withCalorieCacheID(id uuid.UUID) caloriecacheOption {
	return func(m *CalorieCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *CalorieCache
		)
		m.oldValue = func(ctx context.Context) (*CalorieCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CalorieCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCalorieCache sets the old CalorieCache of the mutation.
func withCalorieCache(node *CalorieCache) caloriecacheOption {
	return func(m *CalorieCacheMutation) {
		m.oldValue = func(context.Context) (*CalorieCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CalorieCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CalorieCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CalorieCache entities.
func (m *CalorieCacheMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CalorieCacheMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CalorieCacheMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CalorieCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDishName sets the "dish_name" field.
func (m *CalorieCacheMutation) SetDishName(s string) {
	m.dish_name = &s
}

// DishName returns the value of the "dish_name" field in the mutation.
func (m *CalorieCacheMutation) DishName() (r string, exists bool) {
	v := m.dish_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDishName returns the old "dish_name" field's value of the CalorieCache entity.
// If the CalorieCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalorieCacheMutation) OldDishName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDishName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDishName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDishName: %w", err)
	}
	return oldValue.DishName, nil
}

// ResetDishName resets all changes to the "dish_name" field.
func (m *CalorieCacheMutation) ResetDishName() {
	m.dish_name = nil
}

// SetRestaurantName sets the "restaurant_name" field.
func (m *CalorieCacheMutation) SetRestaurantName(s string) {
	m.restaurant_name = &s
}

// RestaurantName returns the value of the "restaurant_name" field in the mutation.
func (m *CalorieCacheMutation) RestaurantName() (r string, exists bool) {
	v := m.restaurant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRestaurantName returns the old "restaurant_name" field's value of the CalorieCache entity.
// If the CalorieCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalorieCacheMutation) OldRestaurantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestaurantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestaurantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestaurantName: %w", err)
	}
	return oldValue.RestaurantName, nil
}

// ClearRestaurantName clears the value of the "restaurant_name" field.
func (m *CalorieCacheMutation) ClearRestaurantName() {
	m.restaurant_name = nil
	m.clearedFields[caloriecache.FieldRestaurantName] = struct{}{}
}

// RestaurantNameCleared returns if the "restaurant_name" field was cleared in this mutation.
func (m *CalorieCacheMutation) RestaurantNameCleared() bool {
	_, ok := m.clearedFields[caloriecache.FieldRestaurantName]
	return ok
}

// ResetRestaurantName resets all changes to the "restaurant_name" field.
func (m *CalorieCacheMutation) ResetRestaurantName() {
	m.restaurant_name = nil
	delete(m.clearedFields, caloriecache.FieldRestaurantName)
}

// SetCalories sets the "calories" field.
func (m *CalorieCacheMutation) SetCalories(f float64) {
	m.calories = &f
	m.addcalories = nil
}

// Calories returns the value of the "calories" field in the mutation.
func (m *CalorieCacheMutation) Calories() (r float64, exists bool) {
	v := m.calories
	if v == nil {
		return
	}
	return *v, true
}

// OldCalories returns the old "calories" field's value of the CalorieCache entity.
// If the CalorieCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalorieCacheMutation) OldCalories(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalories: %w", err)
	}
	return oldValue.Calories, nil
}

// AddCalories adds f to the "calories" field.
func (m *CalorieCacheMutation) AddCalories(f float64) {
	if m.addcalories != nil {
		*m.addcalories += f
	} else {
		m.addcalories = &f
	}
}

// AddedCalories returns the value that was added to the "calories" field in this mutation.
func (m *CalorieCacheMutation) AddedCalories() (r float64, exists bool) {
	v := m.addcalories
	if v == nil {
		return
	}
	return *v, true
}

// ResetCalories resets all changes to the "calories" field.
func (m *CalorieCacheMutation) ResetCalories() {
	m.calories = nil
	m.addcalories = nil
}

// SetSourceURL sets the "source_url" field.
func (m *CalorieCacheMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *CalorieCacheMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the CalorieCache entity.
// If the CalorieCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalorieCacheMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *CalorieCacheMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[caloriecache.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *CalorieCacheMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[caloriecache.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *CalorieCacheMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, caloriecache.FieldSourceURL)
}

// SetIsEstimated sets the "is_estimated" field.
func (m *CalorieCacheMutation) SetIsEstimated(b bool) {
	m.is_estimated = &b
}

// IsEstimated returns the value of the "is_estimated" field in the mutation.
func (m *CalorieCacheMutation) IsEstimated() (r bool, exists bool) {
	v := m.is_estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEstimated returns the old "is_estimated" field's value of the CalorieCache entity.
// If the CalorieCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalorieCacheMutation) OldIsEstimated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEstimated: %w", err)
	}
	return oldValue.IsEstimated, nil
}

// ResetIsEstimated resets all changes to the "is_estimated" field.
func (m *CalorieCacheMutation) ResetIsEstimated() {
	m.is_estimated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CalorieCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CalorieCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CalorieCache entity.
// If the CalorieCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CalorieCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CalorieCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CalorieCacheMutation builder.
func (m *CalorieCacheMutation) Where(ps ...predicate.CalorieCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CalorieCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CalorieCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CalorieCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CalorieCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CalorieCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CalorieCache).
func (m *CalorieCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CalorieCacheMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.dish_name != nil {
		fields = append(fields, caloriecache.FieldDishName)
	}
	if m.restaurant_name != nil {
		fields = append(fields, caloriecache.FieldRestaurantName)
	}
	if m.calories != nil {
		fields = append(fields, caloriecache.FieldCalories)
	}
	if m.source_url != nil {
		fields = append(fields, caloriecache.FieldSourceURL)
	}
	if m.is_estimated != nil {
		fields = append(fields, caloriecache.FieldIsEstimated)
	}
	if m.created_at != nil {
		fields = append(fields, caloriecache.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CalorieCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caloriecache.FieldDishName:
		return m.DishName()
	case caloriecache.FieldRestaurantName:
		return m.RestaurantName()
	case caloriecache.FieldCalories:
		return m.Calories()
	case caloriecache.FieldSourceURL:
		return m.SourceURL()
	case caloriecache.FieldIsEstimated:
		return m.IsEstimated()
	case caloriecache.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CalorieCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caloriecache.FieldDishName:
		return m.OldDishName(ctx)
	case caloriecache.FieldRestaurantName:
		return m.OldRestaurantName(ctx)
	case caloriecache.FieldCalories:
		return m.OldCalories(ctx)
	case caloriecache.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case caloriecache.FieldIsEstimated:
		return m.OldIsEstimated(ctx)
	case caloriecache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CalorieCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalorieCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caloriecache.FieldDishName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDishName(v)
		return nil
	case caloriecache.FieldRestaurantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestaurantName(v)
		return nil
	case caloriecache.FieldCalories:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalories(v)
		return nil
	case caloriecache.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case caloriecache.FieldIsEstimated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEstimated(v)
		return nil
	case caloriecache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CalorieCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CalorieCacheMutation) AddedFields() []string {
	var fields []string
	if m.addcalories != nil {
		fields = append(fields, caloriecache.FieldCalories)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CalorieCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case caloriecache.FieldCalories:
		return m.AddedCalories()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CalorieCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case caloriecache.FieldCalories:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCalories(v)
		return nil
	}
	return fmt.Errorf("unknown CalorieCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CalorieCacheMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caloriecache.FieldRestaurantName) {
		fields = append(fields, caloriecache.FieldRestaurantName)
	}
	if m.FieldCleared(caloriecache.FieldSourceURL) {
		fields = append(fields, caloriecache.FieldSourceURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CalorieCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CalorieCacheMutation) ClearField(name string) error {
	switch name {
	case caloriecache.FieldRestaurantName:
		m.ClearRestaurantName()
		return nil
	case caloriecache.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	}
	return fmt.Errorf("unknown CalorieCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CalorieCacheMutation) ResetField(name string) error {
	switch name {
	case caloriecache.FieldDishName:
		m.ResetDishName()
		return nil
	case caloriecache.FieldRestaurantName:
		m.ResetRestaurantName()
		return nil
	case caloriecache.FieldCalories:
		m.ResetCalories()
		return nil
	case caloriecache.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case caloriecache.FieldIsEstimated:
		m.ResetIsEstimated()
		return nil
	case caloriecache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CalorieCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CalorieCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CalorieCacheMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CalorieCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CalorieCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CalorieCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CalorieCacheMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CalorieCacheMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CalorieCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CalorieCacheMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CalorieCache edge %s", name)
}

// DishMutation represents an operation that mutates the Dish nodes in the graph.
type DishMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	quantity      *int
	addquantity   *int
	unit_price    *float64
	addunit_price *float64
	calories      *float64
	addcalories   *float64
	is_estimated  *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	_order        *uuid.UUID
	cleared_order bool
	done          bool
	oldValue      func(context.Context) (*Dish, error)
	predicates    []predicate.Dish
}

var _ ent.Mutation = (*DishMutation)(nil)

// dishOption allows management of the mutation configuration using functional options.
type dishOption func(*DishMutation)

// newDishMutation creates new mutation for the Dish entity.
func newDishMutation(c config, op Op, opts ...dishOption) *DishMutation {
	m := &DishMutation{
		config:        c,
		op:            op,
		typ:           TypeDish,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDishID sets the ID field of the mutation.
func withDishID(id uuid.UUID) dishOption {
	return func(m *DishMutation) {
		var (
			err   error
			once  sync.Once
			value *Dish
		)
		m.oldValue = func(ctx context.Context) (*Dish, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dish.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDish sets the old Dish of the mutation.
func withDish(node *Dish) dishOption {
	return func(m *DishMutation) {
		m.oldValue = func(context.Context) (*Dish, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DishMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DishMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Dish entities.
func (m *DishMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DishMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DishMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dish.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *DishMutation) SetOrderID(u uuid.UUID) {
	m._order = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *DishMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the Dish entity.
// If the Dish object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DishMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *DishMutation) ResetOrderID() {
	m._order = nil
}

// SetName sets the "name" field.
func (m *DishMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DishMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Dish entity.
// If the Dish object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DishMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DishMutation) ResetName() {
	m.name = nil
}

// SetQuantity sets the "quantity" field.
func (m *DishMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *DishMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Dish entity.
// If the Dish object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DishMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *DishMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *DishMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *DishMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *DishMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *DishMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the Dish entity.
// If the Dish object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DishMutation) OldUnitPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *DishMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *DishMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (m *DishMutation) ClearUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	m.clearedFields[dish.FieldUnitPrice] = struct{}{}
}

// UnitPriceCleared returns if the "unit_price" field was cleared in this mutation.
func (m *DishMutation) UnitPriceCleared() bool {
	_, ok := m.clearedFields[dish.FieldUnitPrice]
	return ok
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *DishMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
	delete(m.clearedFields, dish.FieldUnitPrice)
}

// SetCalories sets the "calories" field.
func (m *DishMutation) SetCalories(f float64) {
	m.calories = &f
	m.addcalories = nil
}

// Calories returns the value of the "calories" field in the mutation.
func (m *DishMutation) Calories() (r float64, exists bool) {
	v := m.calories
	if v == nil {
		return
	}
	return *v, true
}

// OldCalories returns the old "calories" field's value of the Dish entity.
// If the Dish object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DishMutation) OldCalories(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalories: %w", err)
	}
	return oldValue.Calories, nil
}

// AddCalories adds f to the "calories" field.
func (m *DishMutation) AddCalories(f float64) {
	if m.addcalories != nil {
		*m.addcalories += f
	} else {
		m.addcalories = &f
	}
}

// AddedCalories returns the value that was added to the "calories" field in this mutation.
func (m *DishMutation) AddedCalories() (r float64, exists bool) {
	v := m.addcalories
	if v == nil {
		return
	}
	return *v, true
}

// ClearCalories clears the value of the "calories" field.
func (m *DishMutation) ClearCalories() {
	m.calories = nil
	m.addcalories = nil
	m.clearedFields[dish.FieldCalories] = struct{}{}
}

// CaloriesCleared returns if the "calories" field was cleared in this mutation.
func (m *DishMutation) CaloriesCleared() bool {
	_, ok := m.clearedFields[dish.FieldCalories]
	return ok
}

// ResetCalories resets all changes to the "calories" field.
func (m *DishMutation) ResetCalories() {
	m.calories = nil
	m.addcalories = nil
	delete(m.clearedFields, dish.FieldCalories)
}

// SetIsEstimated sets the "is_estimated" field.
func (m *DishMutation) SetIsEstimated(b bool) {
	m.is_estimated = &b
}

// IsEstimated returns the value of the "is_estimated" field in the mutation.
func (m *DishMutation) IsEstimated() (r bool, exists bool) {
	v := m.is_estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldIsEstimated returns the old "is_estimated" field's value of the Dish entity.
// If the Dish object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DishMutation) OldIsEstimated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsEstimated: %w", err)
	}
	return oldValue.IsEstimated, nil
}

// ResetIsEstimated resets all changes to the "is_estimated" field.
func (m *DishMutation) ResetIsEstimated() {
	m.is_estimated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DishMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DishMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Dish entity.
// If the Dish object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DishMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DishMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *DishMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[dish.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *DishMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *DishMutation) OrderIDs() (ids []uuid.UUID) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *DishMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// Where appends a list predicates to the DishMutation builder.
func (m *DishMutation) Where(ps ...predicate.Dish) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DishMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DishMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dish, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DishMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DishMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dish).
func (m *DishMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DishMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m._order != nil {
		fields = append(fields, dish.FieldOrderID)
	}
	if m.name != nil {
		fields = append(fields, dish.FieldName)
	}
	if m.quantity != nil {
		fields = append(fields, dish.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, dish.FieldUnitPrice)
	}
	if m.calories != nil {
		fields = append(fields, dish.FieldCalories)
	}
	if m.is_estimated != nil {
		fields = append(fields, dish.FieldIsEstimated)
	}
	if m.created_at != nil {
		fields = append(fields, dish.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DishMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dish.FieldOrderID:
		return m.OrderID()
	case dish.FieldName:
		return m.Name()
	case dish.FieldQuantity:
		return m.Quantity()
	case dish.FieldUnitPrice:
		return m.UnitPrice()
	case dish.FieldCalories:
		return m.Calories()
	case dish.FieldIsEstimated:
		return m.IsEstimated()
	case dish.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DishMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dish.FieldOrderID:
		return m.OldOrderID(ctx)
	case dish.FieldName:
		return m.OldName(ctx)
	case dish.FieldQuantity:
		return m.OldQuantity(ctx)
	case dish.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case dish.FieldCalories:
		return m.OldCalories(ctx)
	case dish.FieldIsEstimated:
		return m.OldIsEstimated(ctx)
	case dish.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Dish field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DishMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dish.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case dish.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dish.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case dish.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case dish.FieldCalories:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalories(v)
		return nil
	case dish.FieldIsEstimated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsEstimated(v)
		return nil
	case dish.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Dish field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DishMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, dish.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, dish.FieldUnitPrice)
	}
	if m.addcalories != nil {
		fields = append(fields, dish.FieldCalories)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DishMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dish.FieldQuantity:
		return m.AddedQuantity()
	case dish.FieldUnitPrice:
		return m.AddedUnitPrice()
	case dish.FieldCalories:
		return m.AddedCalories()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DishMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dish.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case dish.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case dish.FieldCalories:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCalories(v)
		return nil
	}
	return fmt.Errorf("unknown Dish numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DishMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dish.FieldUnitPrice) {
		fields = append(fields, dish.FieldUnitPrice)
	}
	if m.FieldCleared(dish.FieldCalories) {
		fields = append(fields, dish.FieldCalories)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DishMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DishMutation) ClearField(name string) error {
	switch name {
	case dish.FieldUnitPrice:
		m.ClearUnitPrice()
		return nil
	case dish.FieldCalories:
		m.ClearCalories()
		return nil
	}
	return fmt.Errorf("unknown Dish nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DishMutation) ResetField(name string) error {
	switch name {
	case dish.FieldOrderID:
		m.ResetOrderID()
		return nil
	case dish.FieldName:
		m.ResetName()
		return nil
	case dish.FieldQuantity:
		m.ResetQuantity()
		return nil
	case dish.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case dish.FieldCalories:
		m.ResetCalories()
		return nil
	case dish.FieldIsEstimated:
		m.ResetIsEstimated()
		return nil
	case dish.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Dish field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DishMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._order != nil {
		edges = append(edges, dish.EdgeOrder)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DishMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dish.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DishMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DishMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DishMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_order {
		edges = append(edges, dish.EdgeOrder)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DishMutation) EdgeCleared(name string) bool {
	switch name {
	case dish.EdgeOrder:
		return m.cleared_order
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DishMutation) ClearEdge(name string) error {
	switch name {
	case dish.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown Dish unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DishMutation) ResetEdge(name string) error {
	switch name {
	case dish.EdgeOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown Dish edge %s", name)
}

// HealthReportCacheMutation represents an operation that mutates the HealthReportCache nodes in the graph.
type HealthReportCacheMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	last_order_count    *int
	addlast_order_count *int
	report              *map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	user                *uuid.UUID
	cleareduser         bool
	done                bool
	oldValue            func(context.Context) (*HealthReportCache, error)
	predicates          []predicate.HealthReportCache
}

var _ ent.Mutation = (*HealthReportCacheMutation)(nil)

// healthreportcacheOption allows management of the mutation configuration using functional options.
type healthreportcacheOption func(*HealthReportCacheMutation)

// newHealthReportCacheMutation creates new mutation for the HealthReportCache entity.
func newHealthReportCacheMutation(c config, op Op, opts ...healthreportcacheOption) *HealthReportCacheMutation {
	m := &HealthReportCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeHealthReportCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHealthReportCacheID sets the ID field of the mutation.
func withHealthReportCacheID(id uuid.UUID) healthreportcacheOption {
	return func(m *HealthReportCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *HealthReportCache
		)
		m.oldValue = func(ctx context.Context) (*HealthReportCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HealthReportCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHealthReportCache sets the old HealthReportCache of the mutation.
func withHealthReportCache(node *HealthReportCache) healthreportcacheOption {
	return func(m *HealthReportCacheMutation) {
		m.oldValue = func(context.Context) (*HealthReportCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HealthReportCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HealthReportCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HealthReportCache entities.
func (m *HealthReportCacheMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HealthReportCacheMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HealthReportCacheMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HealthReportCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *HealthReportCacheMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *HealthReportCacheMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the HealthReportCache entity.
// If the HealthReportCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthReportCacheMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *HealthReportCacheMutation) ResetUserID() {
	m.user = nil
}

// SetLastOrderCount sets the "last_order_count" field.
func (m *HealthReportCacheMutation) SetLastOrderCount(i int) {
	m.last_order_count = &i
	m.addlast_order_count = nil
}

// LastOrderCount returns the value of the "last_order_count" field in the mutation.
func (m *HealthReportCacheMutation) LastOrderCount() (r int, exists bool) {
	v := m.last_order_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLastOrderCount returns the old "last_order_count" field's value of the HealthReportCache entity.
// If the HealthReportCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthReportCacheMutation) OldLastOrderCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastOrderCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastOrderCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastOrderCount: %w", err)
	}
	return oldValue.LastOrderCount, nil
}

// AddLastOrderCount adds i to the "last_order_count" field.
func (m *HealthReportCacheMutation) AddLastOrderCount(i int) {
	if m.addlast_order_count != nil {
		*m.addlast_order_count += i
	} else {
		m.addlast_order_count = &i
	}
}

// AddedLastOrderCount returns the value that was added to the "last_order_count" field in this mutation.
func (m *HealthReportCacheMutation) AddedLastOrderCount() (r int, exists bool) {
	v := m.addlast_order_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastOrderCount resets all changes to the "last_order_count" field.
func (m *HealthReportCacheMutation) ResetLastOrderCount() {
	m.last_order_count = nil
	m.addlast_order_count = nil
}

// SetReport sets the "report" field.
func (m *HealthReportCacheMutation) SetReport(value map[string]interface{}) {
	m.report = &value
}

// Report returns the value of the "report" field in the mutation.
func (m *HealthReportCacheMutation) Report() (r map[string]interface{}, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the HealthReportCache entity.
// If the HealthReportCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthReportCacheMutation) OldReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// ResetReport resets all changes to the "report" field.
func (m *HealthReportCacheMutation) ResetReport() {
	m.report = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HealthReportCacheMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HealthReportCacheMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HealthReportCache entity.
// If the HealthReportCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthReportCacheMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HealthReportCacheMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HealthReportCacheMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HealthReportCacheMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HealthReportCache entity.
// If the HealthReportCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HealthReportCacheMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HealthReportCacheMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *HealthReportCacheMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[healthreportcache.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *HealthReportCacheMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *HealthReportCacheMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *HealthReportCacheMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the HealthReportCacheMutation builder.
func (m *HealthReportCacheMutation) Where(ps ...predicate.HealthReportCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HealthReportCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HealthReportCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HealthReportCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HealthReportCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HealthReportCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HealthReportCache).
func (m *HealthReportCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HealthReportCacheMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user != nil {
		fields = append(fields, healthreportcache.FieldUserID)
	}
	if m.last_order_count != nil {
		fields = append(fields, healthreportcache.FieldLastOrderCount)
	}
	if m.report != nil {
		fields = append(fields, healthreportcache.FieldReport)
	}
	if m.created_at != nil {
		fields = append(fields, healthreportcache.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, healthreportcache.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HealthReportCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case healthreportcache.FieldUserID:
		return m.UserID()
	case healthreportcache.FieldLastOrderCount:
		return m.LastOrderCount()
	case healthreportcache.FieldReport:
		return m.Report()
	case healthreportcache.FieldCreatedAt:
		return m.CreatedAt()
	case healthreportcache.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HealthReportCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case healthreportcache.FieldUserID:
		return m.OldUserID(ctx)
	case healthreportcache.FieldLastOrderCount:
		return m.OldLastOrderCount(ctx)
	case healthreportcache.FieldReport:
		return m.OldReport(ctx)
	case healthreportcache.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case healthreportcache.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HealthReportCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthReportCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case healthreportcache.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case healthreportcache.FieldLastOrderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastOrderCount(v)
		return nil
	case healthreportcache.FieldReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	case healthreportcache.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case healthreportcache.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HealthReportCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HealthReportCacheMutation) AddedFields() []string {
	var fields []string
	if m.addlast_order_count != nil {
		fields = append(fields, healthreportcache.FieldLastOrderCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HealthReportCacheMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case healthreportcache.FieldLastOrderCount:
		return m.AddedLastOrderCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HealthReportCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	case healthreportcache.FieldLastOrderCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastOrderCount(v)
		return nil
	}
	return fmt.Errorf("unknown HealthReportCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HealthReportCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HealthReportCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HealthReportCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown HealthReportCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HealthReportCacheMutation) ResetField(name string) error {
	switch name {
	case healthreportcache.FieldUserID:
		m.ResetUserID()
		return nil
	case healthreportcache.FieldLastOrderCount:
		m.ResetLastOrderCount()
		return nil
	case healthreportcache.FieldReport:
		m.ResetReport()
		return nil
	case healthreportcache.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case healthreportcache.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown HealthReportCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HealthReportCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, healthreportcache.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HealthReportCacheMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case healthreportcache.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HealthReportCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HealthReportCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HealthReportCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, healthreportcache.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HealthReportCacheMutation) EdgeCleared(name string) bool {
	switch name {
	case healthreportcache.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HealthReportCacheMutation) ClearEdge(name string) error {
	switch name {
	case healthreportcache.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown HealthReportCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HealthReportCacheMutation) ResetEdge(name string) error {
	switch name {
	case healthreportcache.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown HealthReportCache edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	message_id        *string
	restaurant_name   *string
	ordered_at        *time.Time
	total_price       *float64
	addtotal_price    *float64
	total_calories    *float64
	addtotal_calories *float64
	has_estimates     *bool
	raw_subject       *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	user              *uuid.UUID
	cleareduser       bool
	dishes            map[uuid.UUID]struct{}
	removeddishes     map[uuid.UUID]struct{}
	cleareddishes     bool
	done              bool
	oldValue          func(context.Context) (*Order, error)
	predicates        []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id uuid.UUID) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *OrderMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *OrderMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *OrderMutation) ResetUserID() {
	m.user = nil
}

// SetMessageID sets the "message_id" field.
func (m *OrderMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *OrderMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *OrderMutation) ResetMessageID() {
	m.message_id = nil
}

// SetRestaurantName sets the "restaurant_name" field.
func (m *OrderMutation) SetRestaurantName(s string) {
	m.restaurant_name = &s
}

// RestaurantName returns the value of the "restaurant_name" field in the mutation.
func (m *OrderMutation) RestaurantName() (r string, exists bool) {
	v := m.restaurant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRestaurantName returns the old "restaurant_name" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldRestaurantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestaurantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestaurantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestaurantName: %w", err)
	}
	return oldValue.RestaurantName, nil
}

// ResetRestaurantName resets all changes to the "restaurant_name" field.
func (m *OrderMutation) ResetRestaurantName() {
	m.restaurant_name = nil
}

// SetOrderedAt sets the "ordered_at" field.
func (m *OrderMutation) SetOrderedAt(t time.Time) {
	m.ordered_at = &t
}

// OrderedAt returns the value of the "ordered_at" field in the mutation.
func (m *OrderMutation) OrderedAt() (r time.Time, exists bool) {
	v := m.ordered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderedAt returns the old "ordered_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldOrderedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderedAt: %w", err)
	}
	return oldValue.OrderedAt, nil
}

// ResetOrderedAt resets all changes to the "ordered_at" field.
func (m *OrderMutation) ResetOrderedAt() {
	m.ordered_at = nil
}

// SetTotalPrice sets the "total_price" field.
func (m *OrderMutation) SetTotalPrice(f float64) {
	m.total_price = &f
	m.addtotal_price = nil
}

// TotalPrice returns the value of the "total_price" field in the mutation.
func (m *OrderMutation) TotalPrice() (r float64, exists bool) {
	v := m.total_price
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPrice returns the old "total_price" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotalPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPrice: %w", err)
	}
	return oldValue.TotalPrice, nil
}

// AddTotalPrice adds f to the "total_price" field.
func (m *OrderMutation) AddTotalPrice(f float64) {
	if m.addtotal_price != nil {
		*m.addtotal_price += f
	} else {
		m.addtotal_price = &f
	}
}

// AddedTotalPrice returns the value that was added to the "total_price" field in this mutation.
func (m *OrderMutation) AddedTotalPrice() (r float64, exists bool) {
	v := m.addtotal_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalPrice clears the value of the "total_price" field.
func (m *OrderMutation) ClearTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
	m.clearedFields[order.FieldTotalPrice] = struct{}{}
}

// TotalPriceCleared returns if the "total_price" field was cleared in this mutation.
func (m *OrderMutation) TotalPriceCleared() bool {
	_, ok := m.clearedFields[order.FieldTotalPrice]
	return ok
}

// ResetTotalPrice resets all changes to the "total_price" field.
func (m *OrderMutation) ResetTotalPrice() {
	m.total_price = nil
	m.addtotal_price = nil
	delete(m.clearedFields, order.FieldTotalPrice)
}

// SetTotalCalories sets the "total_calories" field.
func (m *OrderMutation) SetTotalCalories(f float64) {
	m.total_calories = &f
	m.addtotal_calories = nil
}

// TotalCalories returns the value of the "total_calories" field in the mutation.
func (m *OrderMutation) TotalCalories() (r float64, exists bool) {
	v := m.total_calories
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCalories returns the old "total_calories" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldTotalCalories(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCalories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCalories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCalories: %w", err)
	}
	return oldValue.TotalCalories, nil
}

// AddTotalCalories adds f to the "total_calories" field.
func (m *OrderMutation) AddTotalCalories(f float64) {
	if m.addtotal_calories != nil {
		*m.addtotal_calories += f
	} else {
		m.addtotal_calories = &f
	}
}

// AddedTotalCalories returns the value that was added to the "total_calories" field in this mutation.
func (m *OrderMutation) AddedTotalCalories() (r float64, exists bool) {
	v := m.addtotal_calories
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalCalories clears the value of the "total_calories" field.
func (m *OrderMutation) ClearTotalCalories() {
	m.total_calories = nil
	m.addtotal_calories = nil
	m.clearedFields[order.FieldTotalCalories] = struct{}{}
}

// TotalCaloriesCleared returns if the "total_calories" field was cleared in this mutation.
func (m *OrderMutation) TotalCaloriesCleared() bool {
	_, ok := m.clearedFields[order.FieldTotalCalories]
	return ok
}

// ResetTotalCalories resets all changes to the "total_calories" field.
func (m *OrderMutation) ResetTotalCalories() {
	m.total_calories = nil
	m.addtotal_calories = nil
	delete(m.clearedFields, order.FieldTotalCalories)
}

// SetHasEstimates sets the "has_estimates" field.
func (m *OrderMutation) SetHasEstimates(b bool) {
	m.has_estimates = &b
}

// HasEstimates returns the value of the "has_estimates" field in the mutation.
func (m *OrderMutation) HasEstimates() (r bool, exists bool) {
	v := m.has_estimates
	if v == nil {
		return
	}
	return *v, true
}

// OldHasEstimates returns the old "has_estimates" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldHasEstimates(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasEstimates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasEstimates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasEstimates: %w", err)
	}
	return oldValue.HasEstimates, nil
}

// ResetHasEstimates resets all changes to the "has_estimates" field.
func (m *OrderMutation) ResetHasEstimates() {
	m.has_estimates = nil
}

// SetRawSubject sets the "raw_subject" field.
func (m *OrderMutation) SetRawSubject(s string) {
	m.raw_subject = &s
}

// RawSubject returns the value of the "raw_subject" field in the mutation.
func (m *OrderMutation) RawSubject() (r string, exists bool) {
	v := m.raw_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldRawSubject returns the old "raw_subject" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldRawSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawSubject: %w", err)
	}
	return oldValue.RawSubject, nil
}

// ClearRawSubject clears the value of the "raw_subject" field.
func (m *OrderMutation) ClearRawSubject() {
	m.raw_subject = nil
	m.clearedFields[order.FieldRawSubject] = struct{}{}
}

// RawSubjectCleared returns if the "raw_subject" field was cleared in this mutation.
func (m *OrderMutation) RawSubjectCleared() bool {
	_, ok := m.clearedFields[order.FieldRawSubject]
	return ok
}

// ResetRawSubject resets all changes to the "raw_subject" field.
func (m *OrderMutation) ResetRawSubject() {
	m.raw_subject = nil
	delete(m.clearedFields, order.FieldRawSubject)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *OrderMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[order.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *OrderMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *OrderMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *OrderMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddDishIDs adds the "dishes" edge to the Dish entity by ids.
func (m *OrderMutation) AddDishIDs(ids ...uuid.UUID) {
	if m.dishes == nil {
		m.dishes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.dishes[ids[i]] = struct{}{}
	}
}

// ClearDishes clears the "dishes" edge to the Dish entity.
func (m *OrderMutation) ClearDishes() {
	m.cleareddishes = true
}

// DishesCleared reports if the "dishes" edge to the Dish entity was cleared.
func (m *OrderMutation) DishesCleared() bool {
	return m.cleareddishes
}

// RemoveDishIDs removes the "dishes" edge to the Dish entity by IDs.
func (m *OrderMutation) RemoveDishIDs(ids ...uuid.UUID) {
	if m.removeddishes == nil {
		m.removeddishes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.dishes, ids[i])
		m.removeddishes[ids[i]] = struct{}{}
	}
}

// RemovedDishes returns the removed IDs of the "dishes" edge to the Dish entity.
func (m *OrderMutation) RemovedDishesIDs() (ids []uuid.UUID) {
	for id := range m.removeddishes {
		ids = append(ids, id)
	}
	return
}

// DishesIDs returns the "dishes" edge IDs in the mutation.
func (m *OrderMutation) DishesIDs() (ids []uuid.UUID) {
	for id := range m.dishes {
		ids = append(ids, id)
	}
	return
}

// ResetDishes resets all changes to the "dishes" edge.
func (m *OrderMutation) ResetDishes() {
	m.dishes = nil
	m.cleareddishes = false
	m.removeddishes = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.user != nil {
		fields = append(fields, order.FieldUserID)
	}
	if m.message_id != nil {
		fields = append(fields, order.FieldMessageID)
	}
	if m.restaurant_name != nil {
		fields = append(fields, order.FieldRestaurantName)
	}
	if m.ordered_at != nil {
		fields = append(fields, order.FieldOrderedAt)
	}
	if m.total_price != nil {
		fields = append(fields, order.FieldTotalPrice)
	}
	if m.total_calories != nil {
		fields = append(fields, order.FieldTotalCalories)
	}
	if m.has_estimates != nil {
		fields = append(fields, order.FieldHasEstimates)
	}
	if m.raw_subject != nil {
		fields = append(fields, order.FieldRawSubject)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, order.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldUserID:
		return m.UserID()
	case order.FieldMessageID:
		return m.MessageID()
	case order.FieldRestaurantName:
		return m.RestaurantName()
	case order.FieldOrderedAt:
		return m.OrderedAt()
	case order.FieldTotalPrice:
		return m.TotalPrice()
	case order.FieldTotalCalories:
		return m.TotalCalories()
	case order.FieldHasEstimates:
		return m.HasEstimates()
	case order.FieldRawSubject:
		return m.RawSubject()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	case order.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldUserID:
		return m.OldUserID(ctx)
	case order.FieldMessageID:
		return m.OldMessageID(ctx)
	case order.FieldRestaurantName:
		return m.OldRestaurantName(ctx)
	case order.FieldOrderedAt:
		return m.OldOrderedAt(ctx)
	case order.FieldTotalPrice:
		return m.OldTotalPrice(ctx)
	case order.FieldTotalCalories:
		return m.OldTotalCalories(ctx)
	case order.FieldHasEstimates:
		return m.OldHasEstimates(ctx)
	case order.FieldRawSubject:
		return m.OldRawSubject(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case order.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case order.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case order.FieldRestaurantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestaurantName(v)
		return nil
	case order.FieldOrderedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderedAt(v)
		return nil
	case order.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPrice(v)
		return nil
	case order.FieldTotalCalories:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCalories(v)
		return nil
	case order.FieldHasEstimates:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasEstimates(v)
		return nil
	case order.FieldRawSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawSubject(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case order.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_price != nil {
		fields = append(fields, order.FieldTotalPrice)
	}
	if m.addtotal_calories != nil {
		fields = append(fields, order.FieldTotalCalories)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldTotalPrice:
		return m.AddedTotalPrice()
	case order.FieldTotalCalories:
		return m.AddedTotalCalories()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldTotalPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPrice(v)
		return nil
	case order.FieldTotalCalories:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCalories(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldTotalPrice) {
		fields = append(fields, order.FieldTotalPrice)
	}
	if m.FieldCleared(order.FieldTotalCalories) {
		fields = append(fields, order.FieldTotalCalories)
	}
	if m.FieldCleared(order.FieldRawSubject) {
		fields = append(fields, order.FieldRawSubject)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldTotalPrice:
		m.ClearTotalPrice()
		return nil
	case order.FieldTotalCalories:
		m.ClearTotalCalories()
		return nil
	case order.FieldRawSubject:
		m.ClearRawSubject()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldUserID:
		m.ResetUserID()
		return nil
	case order.FieldMessageID:
		m.ResetMessageID()
		return nil
	case order.FieldRestaurantName:
		m.ResetRestaurantName()
		return nil
	case order.FieldOrderedAt:
		m.ResetOrderedAt()
		return nil
	case order.FieldTotalPrice:
		m.ResetTotalPrice()
		return nil
	case order.FieldTotalCalories:
		m.ResetTotalCalories()
		return nil
	case order.FieldHasEstimates:
		m.ResetHasEstimates()
		return nil
	case order.FieldRawSubject:
		m.ResetRawSubject()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case order.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, order.EdgeUser)
	}
	if m.dishes != nil {
		edges = append(edges, order.EdgeDishes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case order.EdgeDishes:
		ids := make([]ent.Value, 0, len(m.dishes))
		for id := range m.dishes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddishes != nil {
		edges = append(edges, order.EdgeDishes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeDishes:
		ids := make([]ent.Value, 0, len(m.removeddishes))
		for id := range m.removeddishes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, order.EdgeUser)
	}
	if m.cleareddishes {
		edges = append(edges, order.EdgeDishes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeUser:
		return m.cleareduser
	case order.EdgeDishes:
		return m.cleareddishes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	case order.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeUser:
		m.ResetUser()
		return nil
	case order.EdgeDishes:
		m.ResetDishes()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// SyncLogMutation represents an operation that mutates the SyncLog nodes in the graph.
type SyncLogMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	message_id    *string
	outcome       *string
	detail        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SyncLog, error)
	predicates    []predicate.SyncLog
}

var _ ent.Mutation = (*SyncLogMutation)(nil)

// synclogOption allows management of the mutation configuration using functional options.
type synclogOption func(*SyncLogMutation)

// newSyncLogMutation creates new mutation for the SyncLog entity.
func newSyncLogMutation(c config, op Op, opts ...synclogOption) *SyncLogMutation {
	m := &SyncLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncLogID sets the ID field of the mutation.
func withSyncLogID(id uuid.UUID) synclogOption {
	return func(m *SyncLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncLog
		)
		m.oldValue = func(ctx context.Context) (*SyncLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncLog sets the old SyncLog of the mutation.
func withSyncLog(node *SyncLog) synclogOption {
	return func(m *SyncLogMutation) {
		m.oldValue = func(context.Context) (*SyncLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncLog entities.
func (m *SyncLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMessageID sets the "message_id" field.
func (m *SyncLogMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *SyncLogMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *SyncLogMutation) ResetMessageID() {
	m.message_id = nil
}

// SetOutcome sets the "outcome" field.
func (m *SyncLogMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *SyncLogMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *SyncLogMutation) ResetOutcome() {
	m.outcome = nil
}

// SetDetail sets the "detail" field.
func (m *SyncLogMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *SyncLogMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *SyncLogMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[synclog.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *SyncLogMutation) DetailCleared() bool {
	_, ok := m.clearedFields[synclog.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *SyncLogMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, synclog.FieldDetail)
}

// SetCreatedAt sets the "created_at" field.
func (m *SyncLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SyncLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SyncLog entity.
// If the SyncLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SyncLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SyncLogMutation builder.
func (m *SyncLogMutation) Where(ps ...predicate.SyncLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncLog).
func (m *SyncLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.message_id != nil {
		fields = append(fields, synclog.FieldMessageID)
	}
	if m.outcome != nil {
		fields = append(fields, synclog.FieldOutcome)
	}
	if m.detail != nil {
		fields = append(fields, synclog.FieldDetail)
	}
	if m.created_at != nil {
		fields = append(fields, synclog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case synclog.FieldMessageID:
		return m.MessageID()
	case synclog.FieldOutcome:
		return m.Outcome()
	case synclog.FieldDetail:
		return m.Detail()
	case synclog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case synclog.FieldMessageID:
		return m.OldMessageID(ctx)
	case synclog.FieldOutcome:
		return m.OldOutcome(ctx)
	case synclog.FieldDetail:
		return m.OldDetail(ctx)
	case synclog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case synclog.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case synclog.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case synclog.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case synclog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SyncLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(synclog.FieldDetail) {
		fields = append(fields, synclog.FieldDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncLogMutation) ClearField(name string) error {
	switch name {
	case synclog.FieldDetail:
		m.ClearDetail()
		return nil
	}
	return fmt.Errorf("unknown SyncLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncLogMutation) ResetField(name string) error {
	switch name {
	case synclog.FieldMessageID:
		m.ResetMessageID()
		return nil
	case synclog.FieldOutcome:
		m.ResetOutcome()
		return nil
	case synclog.FieldDetail:
		m.ResetDetail()
		return nil
	case synclog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncLog edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	email                *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	orders               map[uuid.UUID]struct{}
	removedorders        map[uuid.UUID]struct{}
	clearedorders        bool
	report_caches        map[uuid.UUID]struct{}
	removedreport_caches map[uuid.UUID]struct{}
	clearedreport_caches bool
	done                 bool
	oldValue             func(context.Context) (*User, error)
	predicates           []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddOrderIDs adds the "orders" edge to the Order entity by ids.
func (m *UserMutation) AddOrderIDs(ids ...uuid.UUID) {
	if m.orders == nil {
		m.orders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.orders[ids[i]] = struct{}{}
	}
}

// ClearOrders clears the "orders" edge to the Order entity.
func (m *UserMutation) ClearOrders() {
	m.clearedorders = true
}

// OrdersCleared reports if the "orders" edge to the Order entity was cleared.
func (m *UserMutation) OrdersCleared() bool {
	return m.clearedorders
}

// RemoveOrderIDs removes the "orders" edge to the Order entity by IDs.
func (m *UserMutation) RemoveOrderIDs(ids ...uuid.UUID) {
	if m.removedorders == nil {
		m.removedorders = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.orders, ids[i])
		m.removedorders[ids[i]] = struct{}{}
	}
}

// RemovedOrders returns the removed IDs of the "orders" edge to the Order entity.
func (m *UserMutation) RemovedOrdersIDs() (ids []uuid.UUID) {
	for id := range m.removedorders {
		ids = append(ids, id)
	}
	return
}

// OrdersIDs returns the "orders" edge IDs in the mutation.
func (m *UserMutation) OrdersIDs() (ids []uuid.UUID) {
	for id := range m.orders {
		ids = append(ids, id)
	}
	return
}

// ResetOrders resets all changes to the "orders" edge.
func (m *UserMutation) ResetOrders() {
	m.orders = nil
	m.clearedorders = false
	m.removedorders = nil
}

// AddReportCachIDs adds the "report_caches" edge to the HealthReportCache entity by ids.
func (m *UserMutation) AddReportCachIDs(ids ...uuid.UUID) {
	if m.report_caches == nil {
		m.report_caches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.report_caches[ids[i]] = struct{}{}
	}
}

// ClearReportCaches clears the "report_caches" edge to the HealthReportCache entity.
func (m *UserMutation) ClearReportCaches() {
	m.clearedreport_caches = true
}

// ReportCachesCleared reports if the "report_caches" edge to the HealthReportCache entity was cleared.
func (m *UserMutation) ReportCachesCleared() bool {
	return m.clearedreport_caches
}

// RemoveReportCachIDs removes the "report_caches" edge to the HealthReportCache entity by IDs.
func (m *UserMutation) RemoveReportCachIDs(ids ...uuid.UUID) {
	if m.removedreport_caches == nil {
		m.removedreport_caches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.report_caches, ids[i])
		m.removedreport_caches[ids[i]] = struct{}{}
	}
}

// RemovedReportCaches returns the removed IDs of the "report_caches" edge to the HealthReportCache entity.
func (m *UserMutation) RemovedReportCachesIDs() (ids []uuid.UUID) {
	for id := range m.removedreport_caches {
		ids = append(ids, id)
	}
	return
}

// ReportCachesIDs returns the "report_caches" edge IDs in the mutation.
func (m *UserMutation) ReportCachesIDs() (ids []uuid.UUID) {
	for id := range m.report_caches {
		ids = append(ids, id)
	}
	return
}

// ResetReportCaches resets all changes to the "report_caches" edge.
func (m *UserMutation) ResetReportCaches() {
	m.report_caches = nil
	m.clearedreport_caches = false
	m.removedreport_caches = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.orders != nil {
		edges = append(edges, user.EdgeOrders)
	}
	if m.report_caches != nil {
		edges = append(edges, user.EdgeReportCaches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.orders))
		for id := range m.orders {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeReportCaches:
		ids := make([]ent.Value, 0, len(m.report_caches))
		for id := range m.report_caches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedorders != nil {
		edges = append(edges, user.EdgeOrders)
	}
	if m.removedreport_caches != nil {
		edges = append(edges, user.EdgeReportCaches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeOrders:
		ids := make([]ent.Value, 0, len(m.removedorders))
		for id := range m.removedorders {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeReportCaches:
		ids := make([]ent.Value, 0, len(m.removedreport_caches))
		for id := range m.removedreport_caches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedorders {
		edges = append(edges, user.EdgeOrders)
	}
	if m.clearedreport_caches {
		edges = append(edges, user.EdgeReportCaches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeOrders:
		return m.clearedorders
	case user.EdgeReportCaches:
		return m.clearedreport_caches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeOrders:
		m.ResetOrders()
		return nil
	case user.EdgeReportCaches:
		m.ResetReportCaches()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
