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
)

// DishUpdate is the builder for updating Dish entities.
type DishUpdate struct {
	config
	hooks    []Hook
	mutation *DishMutation
}

// Where appends a list predicates to the DishUpdate builder.
func (_u *DishUpdate) Where(ps ...predicate.Dish) *DishUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *DishUpdate) SetOrderID(v uuid.UUID) *DishUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *DishUpdate) SetNillableOrderID(v *uuid.UUID) *DishUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DishUpdate) SetName(v string) *DishUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DishUpdate) SetNillableName(v *string) *DishUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *DishUpdate) SetQuantity(v int) *DishUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *DishUpdate) SetNillableQuantity(v *int) *DishUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *DishUpdate) AddQuantity(v int) *DishUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *DishUpdate) SetUnitPrice(v float64) *DishUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *DishUpdate) SetNillableUnitPrice(v *float64) *DishUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *DishUpdate) AddUnitPrice(v float64) *DishUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *DishUpdate) ClearUnitPrice() *DishUpdate {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetCalories sets the "calories" field.
func (_u *DishUpdate) SetCalories(v float64) *DishUpdate {
	_u.mutation.ResetCalories()
	_u.mutation.SetCalories(v)
	return _u
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_u *DishUpdate) SetNillableCalories(v *float64) *DishUpdate {
	if v != nil {
		_u.SetCalories(*v)
	}
	return _u
}

// AddCalories adds value to the "calories" field.
func (_u *DishUpdate) AddCalories(v float64) *DishUpdate {
	_u.mutation.AddCalories(v)
	return _u
}

// ClearCalories clears the value of the "calories" field.
func (_u *DishUpdate) ClearCalories() *DishUpdate {
	_u.mutation.ClearCalories()
	return _u
}

// SetIsEstimated sets the "is_estimated" field.
func (_u *DishUpdate) SetIsEstimated(v bool) *DishUpdate {
	_u.mutation.SetIsEstimated(v)
	return _u
}

// SetNillableIsEstimated sets the "is_estimated" field if the given value is not nil.
func (_u *DishUpdate) SetNillableIsEstimated(v *bool) *DishUpdate {
	if v != nil {
		_u.SetIsEstimated(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DishUpdate) SetCreatedAt(v time.Time) *DishUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DishUpdate) SetNillableCreatedAt(v *time.Time) *DishUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *DishUpdate) SetOrder(v *Order) *DishUpdate {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the DishMutation object of the builder.
func (_u *DishUpdate) Mutation() *DishMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *DishUpdate) ClearOrder() *DishUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DishUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DishUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DishUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DishUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DishUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dish.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dish.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := dish.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Dish.quantity": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Dish.order"`)
	}
	return nil
}

func (_u *DishUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dish.Table, dish.Columns, sqlgraph.NewFieldSpec(dish.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dish.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(dish.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(dish.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(dish.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(dish.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(dish.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Calories(); ok {
		_spec.SetField(dish.FieldCalories, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalories(); ok {
		_spec.AddField(dish.FieldCalories, field.TypeFloat64, value)
	}
	if _u.mutation.CaloriesCleared() {
		_spec.ClearField(dish.FieldCalories, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsEstimated(); ok {
		_spec.SetField(dish.FieldIsEstimated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(dish.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dish.OrderTable,
			Columns: []string{dish.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dish.OrderTable,
			Columns: []string{dish.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dish.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DishUpdateOne is the builder for updating a single Dish entity.
type DishUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DishMutation
}

// SetOrderID sets the "order_id" field.
func (_u *DishUpdateOne) SetOrderID(v uuid.UUID) *DishUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *DishUpdateOne) SetNillableOrderID(v *uuid.UUID) *DishUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *DishUpdateOne) SetName(v string) *DishUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DishUpdateOne) SetNillableName(v *string) *DishUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *DishUpdateOne) SetQuantity(v int) *DishUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *DishUpdateOne) SetNillableQuantity(v *int) *DishUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *DishUpdateOne) AddQuantity(v int) *DishUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *DishUpdateOne) SetUnitPrice(v float64) *DishUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *DishUpdateOne) SetNillableUnitPrice(v *float64) *DishUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *DishUpdateOne) AddUnitPrice(v float64) *DishUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *DishUpdateOne) ClearUnitPrice() *DishUpdateOne {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetCalories sets the "calories" field.
func (_u *DishUpdateOne) SetCalories(v float64) *DishUpdateOne {
	_u.mutation.ResetCalories()
	_u.mutation.SetCalories(v)
	return _u
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_u *DishUpdateOne) SetNillableCalories(v *float64) *DishUpdateOne {
	if v != nil {
		_u.SetCalories(*v)
	}
	return _u
}

// AddCalories adds value to the "calories" field.
func (_u *DishUpdateOne) AddCalories(v float64) *DishUpdateOne {
	_u.mutation.AddCalories(v)
	return _u
}

// ClearCalories clears the value of the "calories" field.
func (_u *DishUpdateOne) ClearCalories() *DishUpdateOne {
	_u.mutation.ClearCalories()
	return _u
}

// SetIsEstimated sets the "is_estimated" field.
func (_u *DishUpdateOne) SetIsEstimated(v bool) *DishUpdateOne {
	_u.mutation.SetIsEstimated(v)
	return _u
}

// SetNillableIsEstimated sets the "is_estimated" field if the given value is not nil.
func (_u *DishUpdateOne) SetNillableIsEstimated(v *bool) *DishUpdateOne {
	if v != nil {
		_u.SetIsEstimated(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DishUpdateOne) SetCreatedAt(v time.Time) *DishUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DishUpdateOne) SetNillableCreatedAt(v *time.Time) *DishUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *DishUpdateOne) SetOrder(v *Order) *DishUpdateOne {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the DishMutation object of the builder.
func (_u *DishUpdateOne) Mutation() *DishMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *DishUpdateOne) ClearOrder() *DishUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// Where appends a list predicates to the DishUpdate builder.
func (_u *DishUpdateOne) Where(ps ...predicate.Dish) *DishUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DishUpdateOne) Select(field string, fields ...string) *DishUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dish entity.
func (_u *DishUpdateOne) Save(ctx context.Context) (*Dish, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DishUpdateOne) SaveX(ctx context.Context) *Dish {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DishUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DishUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DishUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dish.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dish.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := dish.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Dish.quantity": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Dish.order"`)
	}
	return nil
}

func (_u *DishUpdateOne) sqlSave(ctx context.Context) (_node *Dish, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dish.Table, dish.Columns, sqlgraph.NewFieldSpec(dish.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Dish.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dish.FieldID)
		for _, f := range fields {
			if !dish.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dish.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dish.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(dish.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(dish.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(dish.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(dish.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(dish.FieldUnitPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Calories(); ok {
		_spec.SetField(dish.FieldCalories, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCalories(); ok {
		_spec.AddField(dish.FieldCalories, field.TypeFloat64, value)
	}
	if _u.mutation.CaloriesCleared() {
		_spec.ClearField(dish.FieldCalories, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IsEstimated(); ok {
		_spec.SetField(dish.FieldIsEstimated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(dish.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dish.OrderTable,
			Columns: []string{dish.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dish.OrderTable,
			Columns: []string{dish.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Dish{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dish.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
