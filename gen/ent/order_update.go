// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mealtrace/mealtrace/gen/ent/dish"
	"github.com/mealtrace/mealtrace/gen/ent/order"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OrderUpdate) SetUserID(v uuid.UUID) *OrderUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableUserID(v *uuid.UUID) *OrderUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *OrderUpdate) SetRestaurantName(v string) *OrderUpdate {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableRestaurantName(v *string) *OrderUpdate {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// SetOrderedAt sets the "ordered_at" field.
func (_u *OrderUpdate) SetOrderedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetOrderedAt(v)
	return _u
}

// SetNillableOrderedAt sets the "ordered_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrderedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetOrderedAt(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderUpdate) SetTotalPrice(v float64) *OrderUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTotalPrice(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderUpdate) AddTotalPrice(v float64) *OrderUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (_u *OrderUpdate) ClearTotalPrice() *OrderUpdate {
	_u.mutation.ClearTotalPrice()
	return _u
}

// SetTotalCalories sets the "total_calories" field.
func (_u *OrderUpdate) SetTotalCalories(v float64) *OrderUpdate {
	_u.mutation.ResetTotalCalories()
	_u.mutation.SetTotalCalories(v)
	return _u
}

// SetNillableTotalCalories sets the "total_calories" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableTotalCalories(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetTotalCalories(*v)
	}
	return _u
}

// AddTotalCalories adds value to the "total_calories" field.
func (_u *OrderUpdate) AddTotalCalories(v float64) *OrderUpdate {
	_u.mutation.AddTotalCalories(v)
	return _u
}

// ClearTotalCalories clears the value of the "total_calories" field.
func (_u *OrderUpdate) ClearTotalCalories() *OrderUpdate {
	_u.mutation.ClearTotalCalories()
	return _u
}

// SetHasEstimates sets the "has_estimates" field.
func (_u *OrderUpdate) SetHasEstimates(v bool) *OrderUpdate {
	_u.mutation.SetHasEstimates(v)
	return _u
}

// SetNillableHasEstimates sets the "has_estimates" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableHasEstimates(v *bool) *OrderUpdate {
	if v != nil {
		_u.SetHasEstimates(*v)
	}
	return _u
}

// SetRawSubject sets the "raw_subject" field.
func (_u *OrderUpdate) SetRawSubject(v string) *OrderUpdate {
	_u.mutation.SetRawSubject(v)
	return _u
}

// SetNillableRawSubject sets the "raw_subject" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableRawSubject(v *string) *OrderUpdate {
	if v != nil {
		_u.SetRawSubject(*v)
	}
	return _u
}

// ClearRawSubject clears the value of the "raw_subject" field.
func (_u *OrderUpdate) ClearRawSubject() *OrderUpdate {
	_u.mutation.ClearRawSubject()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdate) SetCreatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCreatedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OrderUpdate) SetUser(v *User) *OrderUpdate {
	return _u.SetUserID(v.ID)
}

// AddDishIDs adds the "dishes" edge to the Dish entity by IDs.
func (_u *OrderUpdate) AddDishIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.AddDishIDs(ids...)
	return _u
}

// AddDishes adds the "dishes" edges to the Dish entity.
func (_u *OrderUpdate) AddDishes(v ...*Dish) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDishIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OrderUpdate) ClearUser() *OrderUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearDishes clears all "dishes" edges to the Dish entity.
func (_u *OrderUpdate) ClearDishes() *OrderUpdate {
	_u.mutation.ClearDishes()
	return _u
}

// RemoveDishIDs removes the "dishes" edge to Dish entities by IDs.
func (_u *OrderUpdate) RemoveDishIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.RemoveDishIDs(ids...)
	return _u
}

// RemoveDishes removes "dishes" edges to Dish entities.
func (_u *OrderUpdate) RemoveDishes(v ...*Dish) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDishIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.RestaurantName(); ok {
		if err := order.RestaurantNameValidator(v); err != nil {
			return &ValidationError{Name: "restaurant_name", err: fmt.Errorf(`ent: validator failed for field "Order.restaurant_name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Order.user"`)
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(order.FieldRestaurantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderedAt(); ok {
		_spec.SetField(order.FieldOrderedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPriceCleared() {
		_spec.ClearField(order.FieldTotalPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCalories(); ok {
		_spec.SetField(order.FieldTotalCalories, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCalories(); ok {
		_spec.AddField(order.FieldTotalCalories, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCaloriesCleared() {
		_spec.ClearField(order.FieldTotalCalories, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HasEstimates(); ok {
		_spec.SetField(order.FieldHasEstimates, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawSubject(); ok {
		_spec.SetField(order.FieldRawSubject, field.TypeString, value)
	}
	if _u.mutation.RawSubjectCleared() {
		_spec.ClearField(order.FieldRawSubject, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DishesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDishesIDs(); len(nodes) > 0 && !_u.mutation.DishesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DishesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetUserID sets the "user_id" field.
func (_u *OrderUpdateOne) SetUserID(v uuid.UUID) *OrderUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableUserID(v *uuid.UUID) *OrderUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRestaurantName sets the "restaurant_name" field.
func (_u *OrderUpdateOne) SetRestaurantName(v string) *OrderUpdateOne {
	_u.mutation.SetRestaurantName(v)
	return _u
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableRestaurantName(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetRestaurantName(*v)
	}
	return _u
}

// SetOrderedAt sets the "ordered_at" field.
func (_u *OrderUpdateOne) SetOrderedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetOrderedAt(v)
	return _u
}

// SetNillableOrderedAt sets the "ordered_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrderedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetOrderedAt(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *OrderUpdateOne) SetTotalPrice(v float64) *OrderUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTotalPrice(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *OrderUpdateOne) AddTotalPrice(v float64) *OrderUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (_u *OrderUpdateOne) ClearTotalPrice() *OrderUpdateOne {
	_u.mutation.ClearTotalPrice()
	return _u
}

// SetTotalCalories sets the "total_calories" field.
func (_u *OrderUpdateOne) SetTotalCalories(v float64) *OrderUpdateOne {
	_u.mutation.ResetTotalCalories()
	_u.mutation.SetTotalCalories(v)
	return _u
}

// SetNillableTotalCalories sets the "total_calories" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableTotalCalories(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetTotalCalories(*v)
	}
	return _u
}

// AddTotalCalories adds value to the "total_calories" field.
func (_u *OrderUpdateOne) AddTotalCalories(v float64) *OrderUpdateOne {
	_u.mutation.AddTotalCalories(v)
	return _u
}

// ClearTotalCalories clears the value of the "total_calories" field.
func (_u *OrderUpdateOne) ClearTotalCalories() *OrderUpdateOne {
	_u.mutation.ClearTotalCalories()
	return _u
}

// SetHasEstimates sets the "has_estimates" field.
func (_u *OrderUpdateOne) SetHasEstimates(v bool) *OrderUpdateOne {
	_u.mutation.SetHasEstimates(v)
	return _u
}

// SetNillableHasEstimates sets the "has_estimates" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableHasEstimates(v *bool) *OrderUpdateOne {
	if v != nil {
		_u.SetHasEstimates(*v)
	}
	return _u
}

// SetRawSubject sets the "raw_subject" field.
func (_u *OrderUpdateOne) SetRawSubject(v string) *OrderUpdateOne {
	_u.mutation.SetRawSubject(v)
	return _u
}

// SetNillableRawSubject sets the "raw_subject" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableRawSubject(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetRawSubject(*v)
	}
	return _u
}

// ClearRawSubject clears the value of the "raw_subject" field.
func (_u *OrderUpdateOne) ClearRawSubject() *OrderUpdateOne {
	_u.mutation.ClearRawSubject()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdateOne) SetCreatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCreatedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OrderUpdateOne) SetUser(v *User) *OrderUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddDishIDs adds the "dishes" edge to the Dish entity by IDs.
func (_u *OrderUpdateOne) AddDishIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.AddDishIDs(ids...)
	return _u
}

// AddDishes adds the "dishes" edges to the Dish entity.
func (_u *OrderUpdateOne) AddDishes(v ...*Dish) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDishIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OrderUpdateOne) ClearUser() *OrderUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearDishes clears all "dishes" edges to the Dish entity.
func (_u *OrderUpdateOne) ClearDishes() *OrderUpdateOne {
	_u.mutation.ClearDishes()
	return _u
}

// RemoveDishIDs removes the "dishes" edge to Dish entities by IDs.
func (_u *OrderUpdateOne) RemoveDishIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.RemoveDishIDs(ids...)
	return _u
}

// RemoveDishes removes "dishes" edges to Dish entities.
func (_u *OrderUpdateOne) RemoveDishes(v ...*Dish) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDishIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.RestaurantName(); ok {
		if err := order.RestaurantNameValidator(v); err != nil {
			return &ValidationError{Name: "restaurant_name", err: fmt.Errorf(`ent: validator failed for field "Order.restaurant_name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Order.user"`)
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RestaurantName(); ok {
		_spec.SetField(order.FieldRestaurantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrderedAt(); ok {
		_spec.SetField(order.FieldOrderedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(order.FieldTotalPrice, field.TypeFloat64, value)
	}
	if _u.mutation.TotalPriceCleared() {
		_spec.ClearField(order.FieldTotalPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCalories(); ok {
		_spec.SetField(order.FieldTotalCalories, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCalories(); ok {
		_spec.AddField(order.FieldTotalCalories, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCaloriesCleared() {
		_spec.ClearField(order.FieldTotalCalories, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HasEstimates(); ok {
		_spec.SetField(order.FieldHasEstimates, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawSubject(); ok {
		_spec.SetField(order.FieldRawSubject, field.TypeString, value)
	}
	if _u.mutation.RawSubjectCleared() {
		_spec.ClearField(order.FieldRawSubject, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DishesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDishesIDs(); len(nodes) > 0 && !_u.mutation.DishesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DishesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
