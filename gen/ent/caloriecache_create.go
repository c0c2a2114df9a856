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
	"github.com/mealtrace/mealtrace/gen/ent/caloriecache"
)

// CalorieCacheCreate is the builder for creating a CalorieCache entity.
type CalorieCacheCreate struct {
	config
	mutation *CalorieCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDishName sets the "dish_name" field.
func (_c *CalorieCacheCreate) SetDishName(v string) *CalorieCacheCreate {
	_c.mutation.SetDishName(v)
	return _c
}

// SetRestaurantName sets the "restaurant_name" field.
func (_c *CalorieCacheCreate) SetRestaurantName(v string) *CalorieCacheCreate {
	_c.mutation.SetRestaurantName(v)
	return _c
}

// SetNillableRestaurantName sets the "restaurant_name" field if the given value is not nil.
func (_c *CalorieCacheCreate) SetNillableRestaurantName(v *string) *CalorieCacheCreate {
	if v != nil {
		_c.SetRestaurantName(*v)
	}
	return _c
}

// SetCalories sets the "calories" field.
func (_c *CalorieCacheCreate) SetCalories(v float64) *CalorieCacheCreate {
	_c.mutation.SetCalories(v)
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *CalorieCacheCreate) SetSourceURL(v string) *CalorieCacheCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *CalorieCacheCreate) SetNillableSourceURL(v *string) *CalorieCacheCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetIsEstimated sets the "is_estimated" field.
func (_c *CalorieCacheCreate) SetIsEstimated(v bool) *CalorieCacheCreate {
	_c.mutation.SetIsEstimated(v)
	return _c
}

// SetNillableIsEstimated sets the "is_estimated" field if the given value is not nil.
func (_c *CalorieCacheCreate) SetNillableIsEstimated(v *bool) *CalorieCacheCreate {
	if v != nil {
		_c.SetIsEstimated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CalorieCacheCreate) SetCreatedAt(v time.Time) *CalorieCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CalorieCacheCreate) SetNillableCreatedAt(v *time.Time) *CalorieCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CalorieCacheCreate) SetID(v uuid.UUID) *CalorieCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CalorieCacheCreate) SetNillableID(v *uuid.UUID) *CalorieCacheCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CalorieCacheMutation object of the builder.
func (_c *CalorieCacheCreate) Mutation() *CalorieCacheMutation {
	return _c.mutation
}

// Save creates the CalorieCache in the database.
func (_c *CalorieCacheCreate) Save(ctx context.Context) (*CalorieCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CalorieCacheCreate) SaveX(ctx context.Context) *CalorieCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalorieCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalorieCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CalorieCacheCreate) defaults() {
	if _, ok := _c.mutation.IsEstimated(); !ok {
		v := caloriecache.DefaultIsEstimated
		_c.mutation.SetIsEstimated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := caloriecache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := caloriecache.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CalorieCacheCreate) check() error {
	if _, ok := _c.mutation.DishName(); !ok {
		return &ValidationError{Name: "dish_name", err: errors.New(`ent: missing required field "CalorieCache.dish_name"`)}
	}
	if v, ok := _c.mutation.DishName(); ok {
		if err := caloriecache.DishNameValidator(v); err != nil {
			return &ValidationError{Name: "dish_name", err: fmt.Errorf(`ent: validator failed for field "CalorieCache.dish_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Calories(); !ok {
		return &ValidationError{Name: "calories", err: errors.New(`ent: missing required field "CalorieCache.calories"`)}
	}
	if _, ok := _c.mutation.IsEstimated(); !ok {
		return &ValidationError{Name: "is_estimated", err: errors.New(`ent: missing required field "CalorieCache.is_estimated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CalorieCache.created_at"`)}
	}
	return nil
}

func (_c *CalorieCacheCreate) sqlSave(ctx context.Context) (*CalorieCache, error) {
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

func (_c *CalorieCacheCreate) createSpec() (*CalorieCache, *sqlgraph.CreateSpec) {
	var (
		_node = &CalorieCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caloriecache.Table, sqlgraph.NewFieldSpec(caloriecache.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DishName(); ok {
		_spec.SetField(caloriecache.FieldDishName, field.TypeString, value)
		_node.DishName = value
	}
	if value, ok := _c.mutation.RestaurantName(); ok {
		_spec.SetField(caloriecache.FieldRestaurantName, field.TypeString, value)
		_node.RestaurantName = value
	}
	if value, ok := _c.mutation.Calories(); ok {
		_spec.SetField(caloriecache.FieldCalories, field.TypeFloat64, value)
		_node.Calories = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(caloriecache.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.IsEstimated(); ok {
		_spec.SetField(caloriecache.FieldIsEstimated, field.TypeBool, value)
		_node.IsEstimated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(caloriecache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalorieCache.Create().
//		SetDishName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalorieCacheUpsert) {
//			SetDishName(v+v).
//		}).
//		Exec(ctx)
func (_c *CalorieCacheCreate) OnConflict(opts ...sql.ConflictOption) *CalorieCacheUpsertOne {
	_c.conflict = opts
	return &CalorieCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalorieCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalorieCacheCreate) OnConflictColumns(columns ...string) *CalorieCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalorieCacheUpsertOne{
		create: _c,
	}
}

type (
	// CalorieCacheUpsertOne is the builder for "upsert"-ing
	//  one CalorieCache node.
	CalorieCacheUpsertOne struct {
		create *CalorieCacheCreate
	}

	// CalorieCacheUpsert is the "OnConflict" setter.
	CalorieCacheUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CalorieCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(caloriecache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalorieCacheUpsertOne) UpdateNewValues() *CalorieCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(caloriecache.FieldID)
		}
		if _, exists := u.create.mutation.DishName(); exists {
			s.SetIgnore(caloriecache.FieldDishName)
		}
		if _, exists := u.create.mutation.RestaurantName(); exists {
			s.SetIgnore(caloriecache.FieldRestaurantName)
		}
		if _, exists := u.create.mutation.Calories(); exists {
			s.SetIgnore(caloriecache.FieldCalories)
		}
		if _, exists := u.create.mutation.SourceURL(); exists {
			s.SetIgnore(caloriecache.FieldSourceURL)
		}
		if _, exists := u.create.mutation.IsEstimated(); exists {
			s.SetIgnore(caloriecache.FieldIsEstimated)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(caloriecache.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalorieCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CalorieCacheUpsertOne) Ignore() *CalorieCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalorieCacheUpsertOne) DoNothing() *CalorieCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalorieCacheCreate.OnConflict
// documentation for more info.
func (u *CalorieCacheUpsertOne) Update(set func(*CalorieCacheUpsert)) *CalorieCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalorieCacheUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CalorieCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalorieCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalorieCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CalorieCacheUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CalorieCacheUpsertOne.ID is not supported by MySQL driver. Use CalorieCacheUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CalorieCacheUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CalorieCacheCreateBulk is the builder for creating many CalorieCache entities in bulk.
type CalorieCacheCreateBulk struct {
	config
	err      error
	builders []*CalorieCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the CalorieCache entities in the database.
func (_c *CalorieCacheCreateBulk) Save(ctx context.Context) ([]*CalorieCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CalorieCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CalorieCacheMutation)
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
func (_c *CalorieCacheCreateBulk) SaveX(ctx context.Context) []*CalorieCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CalorieCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CalorieCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CalorieCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CalorieCacheUpsert) {
//			SetDishName(v+v).
//		}).
//		Exec(ctx)
func (_c *CalorieCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *CalorieCacheUpsertBulk {
	_c.conflict = opts
	return &CalorieCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CalorieCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CalorieCacheCreateBulk) OnConflictColumns(columns ...string) *CalorieCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CalorieCacheUpsertBulk{
		create: _c,
	}
}

// CalorieCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of CalorieCache nodes.
type CalorieCacheUpsertBulk struct {
	create *CalorieCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CalorieCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(caloriecache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CalorieCacheUpsertBulk) UpdateNewValues() *CalorieCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(caloriecache.FieldID)
			}
			if _, exists := b.mutation.DishName(); exists {
				s.SetIgnore(caloriecache.FieldDishName)
			}
			if _, exists := b.mutation.RestaurantName(); exists {
				s.SetIgnore(caloriecache.FieldRestaurantName)
			}
			if _, exists := b.mutation.Calories(); exists {
				s.SetIgnore(caloriecache.FieldCalories)
			}
			if _, exists := b.mutation.SourceURL(); exists {
				s.SetIgnore(caloriecache.FieldSourceURL)
			}
			if _, exists := b.mutation.IsEstimated(); exists {
				s.SetIgnore(caloriecache.FieldIsEstimated)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(caloriecache.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CalorieCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CalorieCacheUpsertBulk) Ignore() *CalorieCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CalorieCacheUpsertBulk) DoNothing() *CalorieCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CalorieCacheCreateBulk.OnConflict
// documentation for more info.
func (u *CalorieCacheUpsertBulk) Update(set func(*CalorieCacheUpsert)) *CalorieCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CalorieCacheUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CalorieCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CalorieCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CalorieCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CalorieCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
