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
)

// DishCreate is the builder for creating a Dish entity.
type DishCreate struct {
	config
	mutation *DishMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrderID sets the "order_id" field.
func (_c *DishCreate) SetOrderID(v uuid.UUID) *DishCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *DishCreate) SetName(v string) *DishCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *DishCreate) SetQuantity(v int) *DishCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *DishCreate) SetNillableQuantity(v *int) *DishCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *DishCreate) SetUnitPrice(v float64) *DishCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *DishCreate) SetNillableUnitPrice(v *float64) *DishCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetCalories sets the "calories" field.
func (_c *DishCreate) SetCalories(v float64) *DishCreate {
	_c.mutation.SetCalories(v)
	return _c
}

// SetNillableCalories sets the "calories" field if the given value is not nil.
func (_c *DishCreate) SetNillableCalories(v *float64) *DishCreate {
	if v != nil {
		_c.SetCalories(*v)
	}
	return _c
}

// SetIsEstimated sets the "is_estimated" field.
func (_c *DishCreate) SetIsEstimated(v bool) *DishCreate {
	_c.mutation.SetIsEstimated(v)
	return _c
}

// SetNillableIsEstimated sets the "is_estimated" field if the given value is not nil.
func (_c *DishCreate) SetNillableIsEstimated(v *bool) *DishCreate {
	if v != nil {
		_c.SetIsEstimated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DishCreate) SetCreatedAt(v time.Time) *DishCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DishCreate) SetNillableCreatedAt(v *time.Time) *DishCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DishCreate) SetID(v uuid.UUID) *DishCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DishCreate) SetNillableID(v *uuid.UUID) *DishCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *DishCreate) SetOrder(v *Order) *DishCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the DishMutation object of the builder.
func (_c *DishCreate) Mutation() *DishMutation {
	return _c.mutation
}

// Save creates the Dish in the database.
func (_c *DishCreate) Save(ctx context.Context) (*Dish, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DishCreate) SaveX(ctx context.Context) *Dish {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DishCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DishCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DishCreate) defaults() {
	if _, ok := _c.mutation.Quantity(); !ok {
		v := dish.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.IsEstimated(); !ok {
		v := dish.DefaultIsEstimated
		_c.mutation.SetIsEstimated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dish.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dish.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DishCreate) check() error {
	if _, ok := _c.mutation.OrderID(); !ok {
		return &ValidationError{Name: "order_id", err: errors.New(`ent: missing required field "Dish.order_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Dish.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := dish.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Dish.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "Dish.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := dish.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "Dish.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEstimated(); !ok {
		return &ValidationError{Name: "is_estimated", err: errors.New(`ent: missing required field "Dish.is_estimated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Dish.created_at"`)}
	}
	if len(_c.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required edge "Dish.order"`)}
	}
	return nil
}

func (_c *DishCreate) sqlSave(ctx context.Context) (*Dish, error) {
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

func (_c *DishCreate) createSpec() (*Dish, *sqlgraph.CreateSpec) {
	var (
		_node = &Dish{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dish.Table, sqlgraph.NewFieldSpec(dish.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dish.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(dish.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(dish.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = &value
	}
	if value, ok := _c.mutation.Calories(); ok {
		_spec.SetField(dish.FieldCalories, field.TypeFloat64, value)
		_node.Calories = &value
	}
	if value, ok := _c.mutation.IsEstimated(); ok {
		_spec.SetField(dish.FieldIsEstimated, field.TypeBool, value)
		_node.IsEstimated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dish.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
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
		_node.OrderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Dish.Create().
//		SetOrderID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DishUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *DishCreate) OnConflict(opts ...sql.ConflictOption) *DishUpsertOne {
	_c.conflict = opts
	return &DishUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dish.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DishCreate) OnConflictColumns(columns ...string) *DishUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DishUpsertOne{
		create: _c,
	}
}

type (
	// DishUpsertOne is the builder for "upsert"-ing
	//  one Dish node.
	DishUpsertOne struct {
		create *DishCreate
	}

	// DishUpsert is the "OnConflict" setter.
	DishUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrderID sets the "order_id" field.
func (u *DishUpsert) SetOrderID(v uuid.UUID) *DishUpsert {
	u.Set(dish.FieldOrderID, v)
	return u
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *DishUpsert) UpdateOrderID() *DishUpsert {
	u.SetExcluded(dish.FieldOrderID)
	return u
}

// SetName sets the "name" field.
func (u *DishUpsert) SetName(v string) *DishUpsert {
	u.Set(dish.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DishUpsert) UpdateName() *DishUpsert {
	u.SetExcluded(dish.FieldName)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *DishUpsert) SetQuantity(v int) *DishUpsert {
	u.Set(dish.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *DishUpsert) UpdateQuantity() *DishUpsert {
	u.SetExcluded(dish.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *DishUpsert) AddQuantity(v int) *DishUpsert {
	u.Add(dish.FieldQuantity, v)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *DishUpsert) SetUnitPrice(v float64) *DishUpsert {
	u.Set(dish.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *DishUpsert) UpdateUnitPrice() *DishUpsert {
	u.SetExcluded(dish.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *DishUpsert) AddUnitPrice(v float64) *DishUpsert {
	u.Add(dish.FieldUnitPrice, v)
	return u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (u *DishUpsert) ClearUnitPrice() *DishUpsert {
	u.SetNull(dish.FieldUnitPrice)
	return u
}

// SetCalories sets the "calories" field.
func (u *DishUpsert) SetCalories(v float64) *DishUpsert {
	u.Set(dish.FieldCalories, v)
	return u
}

// UpdateCalories sets the "calories" field to the value that was provided on create.
func (u *DishUpsert) UpdateCalories() *DishUpsert {
	u.SetExcluded(dish.FieldCalories)
	return u
}

// AddCalories adds v to the "calories" field.
func (u *DishUpsert) AddCalories(v float64) *DishUpsert {
	u.Add(dish.FieldCalories, v)
	return u
}

// ClearCalories clears the value of the "calories" field.
func (u *DishUpsert) ClearCalories() *DishUpsert {
	u.SetNull(dish.FieldCalories)
	return u
}

// SetIsEstimated sets the "is_estimated" field.
func (u *DishUpsert) SetIsEstimated(v bool) *DishUpsert {
	u.Set(dish.FieldIsEstimated, v)
	return u
}

// UpdateIsEstimated sets the "is_estimated" field to the value that was provided on create.
func (u *DishUpsert) UpdateIsEstimated() *DishUpsert {
	u.SetExcluded(dish.FieldIsEstimated)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DishUpsert) SetCreatedAt(v time.Time) *DishUpsert {
	u.Set(dish.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DishUpsert) UpdateCreatedAt() *DishUpsert {
	u.SetExcluded(dish.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Dish.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dish.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DishUpsertOne) UpdateNewValues() *DishUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dish.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dish.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DishUpsertOne) Ignore() *DishUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DishUpsertOne) DoNothing() *DishUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DishCreate.OnConflict
// documentation for more info.
func (u *DishUpsertOne) Update(set func(*DishUpsert)) *DishUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DishUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *DishUpsertOne) SetOrderID(v uuid.UUID) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *DishUpsertOne) UpdateOrderID() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.UpdateOrderID()
	})
}

// SetName sets the "name" field.
func (u *DishUpsertOne) SetName(v string) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DishUpsertOne) UpdateName() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.UpdateName()
	})
}

// SetQuantity sets the "quantity" field.
func (u *DishUpsertOne) SetQuantity(v int) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *DishUpsertOne) AddQuantity(v int) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *DishUpsertOne) UpdateQuantity() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *DishUpsertOne) SetUnitPrice(v float64) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *DishUpsertOne) AddUnitPrice(v float64) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *DishUpsertOne) UpdateUnitPrice() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.UpdateUnitPrice()
	})
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (u *DishUpsertOne) ClearUnitPrice() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.ClearUnitPrice()
	})
}

// SetCalories sets the "calories" field.
func (u *DishUpsertOne) SetCalories(v float64) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.SetCalories(v)
	})
}

// AddCalories adds v to the "calories" field.
func (u *DishUpsertOne) AddCalories(v float64) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.AddCalories(v)
	})
}

// UpdateCalories sets the "calories" field to the value that was provided on create.
func (u *DishUpsertOne) UpdateCalories() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.UpdateCalories()
	})
}

// ClearCalories clears the value of the "calories" field.
func (u *DishUpsertOne) ClearCalories() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.ClearCalories()
	})
}

// SetIsEstimated sets the "is_estimated" field.
func (u *DishUpsertOne) SetIsEstimated(v bool) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.SetIsEstimated(v)
	})
}

// UpdateIsEstimated sets the "is_estimated" field to the value that was provided on create.
func (u *DishUpsertOne) UpdateIsEstimated() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.UpdateIsEstimated()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DishUpsertOne) SetCreatedAt(v time.Time) *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DishUpsertOne) UpdateCreatedAt() *DishUpsertOne {
	return u.Update(func(s *DishUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DishUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DishCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DishUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DishUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DishUpsertOne.ID is not supported by MySQL driver. Use DishUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DishUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DishCreateBulk is the builder for creating many Dish entities in bulk.
type DishCreateBulk struct {
	config
	err      error
	builders []*DishCreate
	conflict []sql.ConflictOption
}

// Save creates the Dish entities in the database.
func (_c *DishCreateBulk) Save(ctx context.Context) ([]*Dish, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dish, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DishMutation)
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
func (_c *DishCreateBulk) SaveX(ctx context.Context) []*Dish {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DishCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DishCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Dish.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DishUpsert) {
//			SetOrderID(v+v).
//		}).
//		Exec(ctx)
func (_c *DishCreateBulk) OnConflict(opts ...sql.ConflictOption) *DishUpsertBulk {
	_c.conflict = opts
	return &DishUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dish.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DishCreateBulk) OnConflictColumns(columns ...string) *DishUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DishUpsertBulk{
		create: _c,
	}
}

// DishUpsertBulk is the builder for "upsert"-ing
// a bulk of Dish nodes.
type DishUpsertBulk struct {
	create *DishCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Dish.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dish.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DishUpsertBulk) UpdateNewValues() *DishUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dish.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dish.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DishUpsertBulk) Ignore() *DishUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DishUpsertBulk) DoNothing() *DishUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DishCreateBulk.OnConflict
// documentation for more info.
func (u *DishUpsertBulk) Update(set func(*DishUpsert)) *DishUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DishUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrderID sets the "order_id" field.
func (u *DishUpsertBulk) SetOrderID(v uuid.UUID) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.SetOrderID(v)
	})
}

// UpdateOrderID sets the "order_id" field to the value that was provided on create.
func (u *DishUpsertBulk) UpdateOrderID() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.UpdateOrderID()
	})
}

// SetName sets the "name" field.
func (u *DishUpsertBulk) SetName(v string) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DishUpsertBulk) UpdateName() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.UpdateName()
	})
}

// SetQuantity sets the "quantity" field.
func (u *DishUpsertBulk) SetQuantity(v int) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *DishUpsertBulk) AddQuantity(v int) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *DishUpsertBulk) UpdateQuantity() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *DishUpsertBulk) SetUnitPrice(v float64) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *DishUpsertBulk) AddUnitPrice(v float64) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *DishUpsertBulk) UpdateUnitPrice() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.UpdateUnitPrice()
	})
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (u *DishUpsertBulk) ClearUnitPrice() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.ClearUnitPrice()
	})
}

// SetCalories sets the "calories" field.
func (u *DishUpsertBulk) SetCalories(v float64) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.SetCalories(v)
	})
}

// AddCalories adds v to the "calories" field.
func (u *DishUpsertBulk) AddCalories(v float64) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.AddCalories(v)
	})
}

// UpdateCalories sets the "calories" field to the value that was provided on create.
func (u *DishUpsertBulk) UpdateCalories() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.UpdateCalories()
	})
}

// ClearCalories clears the value of the "calories" field.
func (u *DishUpsertBulk) ClearCalories() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.ClearCalories()
	})
}

// SetIsEstimated sets the "is_estimated" field.
func (u *DishUpsertBulk) SetIsEstimated(v bool) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.SetIsEstimated(v)
	})
}

// UpdateIsEstimated sets the "is_estimated" field to the value that was provided on create.
func (u *DishUpsertBulk) UpdateIsEstimated() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.UpdateIsEstimated()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DishUpsertBulk) SetCreatedAt(v time.Time) *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DishUpsertBulk) UpdateCreatedAt() *DishUpsertBulk {
	return u.Update(func(s *DishUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DishUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DishCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DishCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DishUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
