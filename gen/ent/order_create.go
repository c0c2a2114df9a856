// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/dish"
	"github.com/mealtrace/mealtrace/gen/ent/order"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *OrderCreate) SetUserID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *OrderCreate) SetMessageID(v string) *OrderCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetRestaurantName sets the "restaurant_name" field.
func (_c *OrderCreate) SetRestaurantName(v string) *OrderCreate {
	_c.mutation.SetRestaurantName(v)
	return _c
}

// SetOrderedAt sets the "ordered_at" field.
func (_c *OrderCreate) SetOrderedAt(v time.Time) *OrderCreate {
	_c.mutation.SetOrderedAt(v)
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *OrderCreate) SetTotalPrice(v float64) *OrderCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTotalPrice(v *float64) *OrderCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetTotalCalories sets the "total_calories" field.
func (_c *OrderCreate) SetTotalCalories(v float64) *OrderCreate {
	_c.mutation.SetTotalCalories(v)
	return _c
}

// SetNillableTotalCalories sets the "total_calories" field if the given value is not nil.
func (_c *OrderCreate) SetNillableTotalCalories(v *float64) *OrderCreate {
	if v != nil {
		_c.SetTotalCalories(*v)
	}
	return _c
}

// SetHasEstimates sets the "has_estimates" field.
func (_c *OrderCreate) SetHasEstimates(v bool) *OrderCreate {
	_c.mutation.SetHasEstimates(v)
	return _c
}

// SetNillableHasEstimates sets the "has_estimates" field if the given value is not nil.
func (_c *OrderCreate) SetNillableHasEstimates(v *bool) *OrderCreate {
	if v != nil {
		_c.SetHasEstimates(*v)
	}
	return _c
}

// SetRawSubject sets the "raw_subject" field.
func (_c *OrderCreate) SetRawSubject(v string) *OrderCreate {
	_c.mutation.SetRawSubject(v)
	return _c
}

// SetNillableRawSubject sets the "raw_subject" field if the given value is not nil.
func (_c *OrderCreate) SetNillableRawSubject(v *string) *OrderCreate {
	if v != nil {
		_c.SetRawSubject(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderCreate) SetUpdatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableUpdatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v uuid.UUID) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableID(v *uuid.UUID) *OrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *OrderCreate) SetUser(v *User) *OrderCreate {
	return _c.SetUserID(v.ID)
}

// AddDishIDs adds the "dishes" edge to the Dish entity by IDs.
func (_c *OrderCreate) AddDishIDs(ids ...uuid.UUID) *OrderCreate {
	_c.mutation.AddDishIDs(ids...)
	return _c
}

// AddDishes adds the "dishes" edges to the Dish entity.
func (_c *OrderCreate) AddDishes(v ...*Dish) *OrderCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDishIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.HasEstimates(); !ok {
		v := order.DefaultHasEstimates
		_c.mutation.SetHasEstimates(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := order.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Order.user_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "Order.message_id"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := order.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "Order.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RestaurantName(); !ok {
		return &ValidationError{Name: "restaurant_name", err: errors.New(`ent: missing required field "Order.restaurant_name"`)}
	}
	if v, ok := _c.mutation.RestaurantName(); ok {
		if err := order.RestaurantNameValidator(v); err != nil {
			return &ValidationError{Name: "restaurant_name", err: fmt.Errorf(`ent: validator failed for field "Order.restaurant_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrderedAt(); !ok {
		return &ValidationError{Name: "ordered_at", err: errors.New(`ent: missing required field "Order.ordered_at"`)}
	}
	if _, ok := _c.mutation.HasEstimates(); !ok {
		return &ValidationError{Name: "has_estimates", err: errors.New(`ent: missing required field "Order.has_estimates"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Order.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Order.user"`)}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(order.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.RestaurantName(); ok {
		_spec.SetField(order.FieldRestaurantName, field.TypeString, value)
		_node.RestaurantName = value
	}
	if value, ok := _c.mutation.OrderedAt(); ok {
		_spec.SetField(order.FieldOrderedAt, field.TypeTime, value)
		_node.OrderedAt = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
		_node.TotalPrice = &value
	}
	if value, ok := _c.mutation.TotalCalories(); ok {
		_spec.SetField(order.FieldTotalCalories, field.TypeFloat64, value)
		_node.TotalCalories = &value
	}
	if value, ok := _c.mutation.HasEstimates(); ok {
		_spec.SetField(order.FieldHasEstimates, field.TypeBool, value)
		_node.HasEstimates = value
	}
	if value, ok := _c.mutation.RawSubject(); ok {
		_spec.SetField(order.FieldRawSubject, field.TypeString, value)
		_node.RawSubject = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   order.UserTable,
			Columns: []string{order.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DishesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.DishesTable,
			Columns: []string{order.DishesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dish.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreate) OnConflict(opts ...sql.ConflictOption) *OrderUpsertOne {
	_c.conflict = opts
	return &OrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreate) OnConflictColumns(columns ...string) *OrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertOne{
		create: _c,
	}
}

type (
	// OrderUpsertOne is the builder for "upsert"-ing
	//  one Order node.
	OrderUpsertOne struct {
		create *OrderCreate
	}

	// OrderUpsert is the "OnConflict" setter.
	OrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *OrderUpsert) SetUserID(v uuid.UUID) *OrderUpsert {
	u.Set(order.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OrderUpsert) UpdateUserID() *OrderUpsert {
	u.SetExcluded(order.FieldUserID)
	return u
}

// SetRestaurantName sets the "restaurant_name" field.
func (u *OrderUpsert) SetRestaurantName(v string) *OrderUpsert {
	u.Set(order.FieldRestaurantName, v)
	return u
}

// UpdateRestaurantName sets the "restaurant_name" field to the value that was provided on create.
func (u *OrderUpsert) UpdateRestaurantName() *OrderUpsert {
	u.SetExcluded(order.FieldRestaurantName)
	return u
}

// SetOrderedAt sets the "ordered_at" field.
func (u *OrderUpsert) SetOrderedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldOrderedAt, v)
	return u
}

// UpdateOrderedAt sets the "ordered_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateOrderedAt() *OrderUpsert {
	u.SetExcluded(order.FieldOrderedAt)
	return u
}

// SetTotalPrice sets the "total_price" field.
func (u *OrderUpsert) SetTotalPrice(v float64) *OrderUpsert {
	u.Set(order.FieldTotalPrice, v)
	return u
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTotalPrice() *OrderUpsert {
	u.SetExcluded(order.FieldTotalPrice)
	return u
}

// AddTotalPrice adds v to the "total_price" field.
func (u *OrderUpsert) AddTotalPrice(v float64) *OrderUpsert {
	u.Add(order.FieldTotalPrice, v)
	return u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (u *OrderUpsert) ClearTotalPrice() *OrderUpsert {
	u.SetNull(order.FieldTotalPrice)
	return u
}

// SetTotalCalories sets the "total_calories" field.
func (u *OrderUpsert) SetTotalCalories(v float64) *OrderUpsert {
	u.Set(order.FieldTotalCalories, v)
	return u
}

// UpdateTotalCalories sets the "total_calories" field to the value that was provided on create.
func (u *OrderUpsert) UpdateTotalCalories() *OrderUpsert {
	u.SetExcluded(order.FieldTotalCalories)
	return u
}

// AddTotalCalories adds v to the "total_calories" field.
func (u *OrderUpsert) AddTotalCalories(v float64) *OrderUpsert {
	u.Add(order.FieldTotalCalories, v)
	return u
}

// ClearTotalCalories clears the value of the "total_calories" field.
func (u *OrderUpsert) ClearTotalCalories() *OrderUpsert {
	u.SetNull(order.FieldTotalCalories)
	return u
}

// SetHasEstimates sets the "has_estimates" field.
func (u *OrderUpsert) SetHasEstimates(v bool) *OrderUpsert {
	u.Set(order.FieldHasEstimates, v)
	return u
}

// UpdateHasEstimates sets the "has_estimates" field to the value that was provided on create.
func (u *OrderUpsert) UpdateHasEstimates() *OrderUpsert {
	u.SetExcluded(order.FieldHasEstimates)
	return u
}

// SetRawSubject sets the "raw_subject" field.
func (u *OrderUpsert) SetRawSubject(v string) *OrderUpsert {
	u.Set(order.FieldRawSubject, v)
	return u
}

// UpdateRawSubject sets the "raw_subject" field to the value that was provided on create.
func (u *OrderUpsert) UpdateRawSubject() *OrderUpsert {
	u.SetExcluded(order.FieldRawSubject)
	return u
}

// ClearRawSubject clears the value of the "raw_subject" field.
func (u *OrderUpsert) ClearRawSubject() *OrderUpsert {
	u.SetNull(order.FieldRawSubject)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *OrderUpsert) SetCreatedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateCreatedAt() *OrderUpsert {
	u.SetExcluded(order.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsert) SetUpdatedAt(v time.Time) *OrderUpsert {
	u.Set(order.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsert) UpdateUpdatedAt() *OrderUpsert {
	u.SetExcluded(order.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertOne) UpdateNewValues() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(order.FieldID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(order.FieldMessageID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrderUpsertOne) Ignore() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertOne) DoNothing() *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreate.OnConflict
// documentation for more info.
func (u *OrderUpsertOne) Update(set func(*OrderUpsert)) *OrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OrderUpsertOne) SetUserID(v uuid.UUID) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateUserID() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUserID()
	})
}

// SetRestaurantName sets the "restaurant_name" field.
func (u *OrderUpsertOne) SetRestaurantName(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetRestaurantName(v)
	})
}

// UpdateRestaurantName sets the "restaurant_name" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateRestaurantName() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateRestaurantName()
	})
}

// SetOrderedAt sets the "ordered_at" field.
func (u *OrderUpsertOne) SetOrderedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetOrderedAt(v)
	})
}

// UpdateOrderedAt sets the "ordered_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateOrderedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateOrderedAt()
	})
}

// SetTotalPrice sets the "total_price" field.
func (u *OrderUpsertOne) SetTotalPrice(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalPrice(v)
	})
}

// AddTotalPrice adds v to the "total_price" field.
func (u *OrderUpsertOne) AddTotalPrice(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalPrice(v)
	})
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTotalPrice() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalPrice()
	})
}

// ClearTotalPrice clears the value of the "total_price" field.
func (u *OrderUpsertOne) ClearTotalPrice() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTotalPrice()
	})
}

// SetTotalCalories sets the "total_calories" field.
func (u *OrderUpsertOne) SetTotalCalories(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalCalories(v)
	})
}

// AddTotalCalories adds v to the "total_calories" field.
func (u *OrderUpsertOne) AddTotalCalories(v float64) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalCalories(v)
	})
}

// UpdateTotalCalories sets the "total_calories" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateTotalCalories() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalCalories()
	})
}

// ClearTotalCalories clears the value of the "total_calories" field.
func (u *OrderUpsertOne) ClearTotalCalories() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTotalCalories()
	})
}

// SetHasEstimates sets the "has_estimates" field.
func (u *OrderUpsertOne) SetHasEstimates(v bool) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetHasEstimates(v)
	})
}

// UpdateHasEstimates sets the "has_estimates" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateHasEstimates() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateHasEstimates()
	})
}

// SetRawSubject sets the "raw_subject" field.
func (u *OrderUpsertOne) SetRawSubject(v string) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetRawSubject(v)
	})
}

// UpdateRawSubject sets the "raw_subject" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateRawSubject() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateRawSubject()
	})
}

// ClearRawSubject clears the value of the "raw_subject" field.
func (u *OrderUpsertOne) ClearRawSubject() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.ClearRawSubject()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OrderUpsertOne) SetCreatedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateCreatedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsertOne) SetUpdatedAt(v time.Time) *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsertOne) UpdateUpdatedAt() *OrderUpsertOne {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OrderUpsertOne.ID is not supported by MySQL driver. Use OrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
	conflict []sql.ConflictOption
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Order.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrderUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrderUpsertBulk {
	_c.conflict = opts
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrderCreateBulk) OnConflictColumns(columns ...string) *OrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrderUpsertBulk{
		create: _c,
	}
}

// OrderUpsertBulk is the builder for "upsert"-ing
// a bulk of Order nodes.
type OrderUpsertBulk struct {
	create *OrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(order.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrderUpsertBulk) UpdateNewValues() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(order.FieldID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(order.FieldMessageID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Order.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrderUpsertBulk) Ignore() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrderUpsertBulk) DoNothing() *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrderCreateBulk.OnConflict
// documentation for more info.
func (u *OrderUpsertBulk) Update(set func(*OrderUpsert)) *OrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OrderUpsertBulk) SetUserID(v uuid.UUID) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateUserID() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUserID()
	})
}

// SetRestaurantName sets the "restaurant_name" field.
func (u *OrderUpsertBulk) SetRestaurantName(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetRestaurantName(v)
	})
}

// UpdateRestaurantName sets the "restaurant_name" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateRestaurantName() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateRestaurantName()
	})
}

// SetOrderedAt sets the "ordered_at" field.
func (u *OrderUpsertBulk) SetOrderedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetOrderedAt(v)
	})
}

// UpdateOrderedAt sets the "ordered_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateOrderedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateOrderedAt()
	})
}

// SetTotalPrice sets the "total_price" field.
func (u *OrderUpsertBulk) SetTotalPrice(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalPrice(v)
	})
}

// AddTotalPrice adds v to the "total_price" field.
func (u *OrderUpsertBulk) AddTotalPrice(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalPrice(v)
	})
}

// UpdateTotalPrice sets the "total_price" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTotalPrice() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalPrice()
	})
}

// ClearTotalPrice clears the value of the "total_price" field.
func (u *OrderUpsertBulk) ClearTotalPrice() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTotalPrice()
	})
}

// SetTotalCalories sets the "total_calories" field.
func (u *OrderUpsertBulk) SetTotalCalories(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetTotalCalories(v)
	})
}

// AddTotalCalories adds v to the "total_calories" field.
func (u *OrderUpsertBulk) AddTotalCalories(v float64) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.AddTotalCalories(v)
	})
}

// UpdateTotalCalories sets the "total_calories" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateTotalCalories() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateTotalCalories()
	})
}

// ClearTotalCalories clears the value of the "total_calories" field.
func (u *OrderUpsertBulk) ClearTotalCalories() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearTotalCalories()
	})
}

// SetHasEstimates sets the "has_estimates" field.
func (u *OrderUpsertBulk) SetHasEstimates(v bool) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetHasEstimates(v)
	})
}

// UpdateHasEstimates sets the "has_estimates" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateHasEstimates() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateHasEstimates()
	})
}

// SetRawSubject sets the "raw_subject" field.
func (u *OrderUpsertBulk) SetRawSubject(v string) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetRawSubject(v)
	})
}

// UpdateRawSubject sets the "raw_subject" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateRawSubject() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateRawSubject()
	})
}

// ClearRawSubject clears the value of the "raw_subject" field.
func (u *OrderUpsertBulk) ClearRawSubject() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.ClearRawSubject()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *OrderUpsertBulk) SetCreatedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateCreatedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OrderUpsertBulk) SetUpdatedAt(v time.Time) *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OrderUpsertBulk) UpdateUpdatedAt() *OrderUpsertBulk {
	return u.Update(func(s *OrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *OrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
