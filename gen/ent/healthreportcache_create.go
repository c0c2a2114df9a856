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
	"github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

// HealthReportCacheCreate is the builder for creating a HealthReportCache entity.
type HealthReportCacheCreate struct {
	config
	mutation *HealthReportCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *HealthReportCacheCreate) SetUserID(v uuid.UUID) *HealthReportCacheCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLastOrderCount sets the "last_order_count" field.
func (_c *HealthReportCacheCreate) SetLastOrderCount(v int) *HealthReportCacheCreate {
	_c.mutation.SetLastOrderCount(v)
	return _c
}

// SetReport sets the "report" field.
func (_c *HealthReportCacheCreate) SetReport(v map[string]interface{}) *HealthReportCacheCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HealthReportCacheCreate) SetCreatedAt(v time.Time) *HealthReportCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HealthReportCacheCreate) SetNillableCreatedAt(v *time.Time) *HealthReportCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HealthReportCacheCreate) SetUpdatedAt(v time.Time) *HealthReportCacheCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HealthReportCacheCreate) SetNillableUpdatedAt(v *time.Time) *HealthReportCacheCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HealthReportCacheCreate) SetID(v uuid.UUID) *HealthReportCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HealthReportCacheCreate) SetNillableID(v *uuid.UUID) *HealthReportCacheCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *HealthReportCacheCreate) SetUser(v *User) *HealthReportCacheCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the HealthReportCacheMutation object of the builder.
func (_c *HealthReportCacheCreate) Mutation() *HealthReportCacheMutation {
	return _c.mutation
}

// Save creates the HealthReportCache in the database.
func (_c *HealthReportCacheCreate) Save(ctx context.Context) (*HealthReportCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HealthReportCacheCreate) SaveX(ctx context.Context) *HealthReportCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthReportCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthReportCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HealthReportCacheCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := healthreportcache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := healthreportcache.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := healthreportcache.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HealthReportCacheCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "HealthReportCache.user_id"`)}
	}
	if _, ok := _c.mutation.LastOrderCount(); !ok {
		return &ValidationError{Name: "last_order_count", err: errors.New(`ent: missing required field "HealthReportCache.last_order_count"`)}
	}
	if v, ok := _c.mutation.LastOrderCount(); ok {
		if err := healthreportcache.LastOrderCountValidator(v); err != nil {
			return &ValidationError{Name: "last_order_count", err: fmt.Errorf(`ent: validator failed for field "HealthReportCache.last_order_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Report(); !ok {
		return &ValidationError{Name: "report", err: errors.New(`ent: missing required field "HealthReportCache.report"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HealthReportCache.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HealthReportCache.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "HealthReportCache.user"`)}
	}
	return nil
}

func (_c *HealthReportCacheCreate) sqlSave(ctx context.Context) (*HealthReportCache, error) {
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

func (_c *HealthReportCacheCreate) createSpec() (*HealthReportCache, *sqlgraph.CreateSpec) {
	var (
		_node = &HealthReportCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(healthreportcache.Table, sqlgraph.NewFieldSpec(healthreportcache.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LastOrderCount(); ok {
		_spec.SetField(healthreportcache.FieldLastOrderCount, field.TypeInt, value)
		_node.LastOrderCount = value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(healthreportcache.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(healthreportcache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(healthreportcache.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   healthreportcache.UserTable,
			Columns: []string{healthreportcache.UserColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthReportCache.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthReportCacheUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthReportCacheCreate) OnConflict(opts ...sql.ConflictOption) *HealthReportCacheUpsertOne {
	_c.conflict = opts
	return &HealthReportCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthReportCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthReportCacheCreate) OnConflictColumns(columns ...string) *HealthReportCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthReportCacheUpsertOne{
		create: _c,
	}
}

type (
	// HealthReportCacheUpsertOne is the builder for "upsert"-ing
	//  one HealthReportCache node.
	HealthReportCacheUpsertOne struct {
		create *HealthReportCacheCreate
	}

	// HealthReportCacheUpsert is the "OnConflict" setter.
	HealthReportCacheUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *HealthReportCacheUpsert) SetUserID(v uuid.UUID) *HealthReportCacheUpsert {
	u.Set(healthreportcache.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *HealthReportCacheUpsert) UpdateUserID() *HealthReportCacheUpsert {
	u.SetExcluded(healthreportcache.FieldUserID)
	return u
}

// SetLastOrderCount sets the "last_order_count" field.
func (u *HealthReportCacheUpsert) SetLastOrderCount(v int) *HealthReportCacheUpsert {
	u.Set(healthreportcache.FieldLastOrderCount, v)
	return u
}

// UpdateLastOrderCount sets the "last_order_count" field to the value that was provided on create.
func (u *HealthReportCacheUpsert) UpdateLastOrderCount() *HealthReportCacheUpsert {
	u.SetExcluded(healthreportcache.FieldLastOrderCount)
	return u
}

// AddLastOrderCount adds v to the "last_order_count" field.
func (u *HealthReportCacheUpsert) AddLastOrderCount(v int) *HealthReportCacheUpsert {
	u.Add(healthreportcache.FieldLastOrderCount, v)
	return u
}

// SetReport sets the "report" field.
func (u *HealthReportCacheUpsert) SetReport(v map[string]interface{}) *HealthReportCacheUpsert {
	u.Set(healthreportcache.FieldReport, v)
	return u
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *HealthReportCacheUpsert) UpdateReport() *HealthReportCacheUpsert {
	u.SetExcluded(healthreportcache.FieldReport)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *HealthReportCacheUpsert) SetCreatedAt(v time.Time) *HealthReportCacheUpsert {
	u.Set(healthreportcache.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *HealthReportCacheUpsert) UpdateCreatedAt() *HealthReportCacheUpsert {
	u.SetExcluded(healthreportcache.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HealthReportCacheUpsert) SetUpdatedAt(v time.Time) *HealthReportCacheUpsert {
	u.Set(healthreportcache.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HealthReportCacheUpsert) UpdateUpdatedAt() *HealthReportCacheUpsert {
	u.SetExcluded(healthreportcache.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HealthReportCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthreportcache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthReportCacheUpsertOne) UpdateNewValues() *HealthReportCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(healthreportcache.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthReportCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HealthReportCacheUpsertOne) Ignore() *HealthReportCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthReportCacheUpsertOne) DoNothing() *HealthReportCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthReportCacheCreate.OnConflict
// documentation for more info.
func (u *HealthReportCacheUpsertOne) Update(set func(*HealthReportCacheUpsert)) *HealthReportCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthReportCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *HealthReportCacheUpsertOne) SetUserID(v uuid.UUID) *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *HealthReportCacheUpsertOne) UpdateUserID() *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateUserID()
	})
}

// SetLastOrderCount sets the "last_order_count" field.
func (u *HealthReportCacheUpsertOne) SetLastOrderCount(v int) *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetLastOrderCount(v)
	})
}

// AddLastOrderCount adds v to the "last_order_count" field.
func (u *HealthReportCacheUpsertOne) AddLastOrderCount(v int) *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.AddLastOrderCount(v)
	})
}

// UpdateLastOrderCount sets the "last_order_count" field to the value that was provided on create.
func (u *HealthReportCacheUpsertOne) UpdateLastOrderCount() *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateLastOrderCount()
	})
}

// SetReport sets the "report" field.
func (u *HealthReportCacheUpsertOne) SetReport(v map[string]interface{}) *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetReport(v)
	})
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *HealthReportCacheUpsertOne) UpdateReport() *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateReport()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *HealthReportCacheUpsertOne) SetCreatedAt(v time.Time) *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *HealthReportCacheUpsertOne) UpdateCreatedAt() *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HealthReportCacheUpsertOne) SetUpdatedAt(v time.Time) *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HealthReportCacheUpsertOne) UpdateUpdatedAt() *HealthReportCacheUpsertOne {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *HealthReportCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HealthReportCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthReportCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HealthReportCacheUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: HealthReportCacheUpsertOne.ID is not supported by MySQL driver. Use HealthReportCacheUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HealthReportCacheUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HealthReportCacheCreateBulk is the builder for creating many HealthReportCache entities in bulk.
type HealthReportCacheCreateBulk struct {
	config
	err      error
	builders []*HealthReportCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the HealthReportCache entities in the database.
func (_c *HealthReportCacheCreateBulk) Save(ctx context.Context) ([]*HealthReportCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HealthReportCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HealthReportCacheMutation)
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
func (_c *HealthReportCacheCreateBulk) SaveX(ctx context.Context) []*HealthReportCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HealthReportCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HealthReportCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HealthReportCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HealthReportCacheUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *HealthReportCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *HealthReportCacheUpsertBulk {
	_c.conflict = opts
	return &HealthReportCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HealthReportCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HealthReportCacheCreateBulk) OnConflictColumns(columns ...string) *HealthReportCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HealthReportCacheUpsertBulk{
		create: _c,
	}
}

// HealthReportCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of HealthReportCache nodes.
type HealthReportCacheUpsertBulk struct {
	create *HealthReportCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HealthReportCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(healthreportcache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HealthReportCacheUpsertBulk) UpdateNewValues() *HealthReportCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(healthreportcache.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HealthReportCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HealthReportCacheUpsertBulk) Ignore() *HealthReportCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HealthReportCacheUpsertBulk) DoNothing() *HealthReportCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HealthReportCacheCreateBulk.OnConflict
// documentation for more info.
func (u *HealthReportCacheUpsertBulk) Update(set func(*HealthReportCacheUpsert)) *HealthReportCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HealthReportCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *HealthReportCacheUpsertBulk) SetUserID(v uuid.UUID) *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *HealthReportCacheUpsertBulk) UpdateUserID() *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateUserID()
	})
}

// SetLastOrderCount sets the "last_order_count" field.
func (u *HealthReportCacheUpsertBulk) SetLastOrderCount(v int) *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetLastOrderCount(v)
	})
}

// AddLastOrderCount adds v to the "last_order_count" field.
func (u *HealthReportCacheUpsertBulk) AddLastOrderCount(v int) *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.AddLastOrderCount(v)
	})
}

// UpdateLastOrderCount sets the "last_order_count" field to the value that was provided on create.
func (u *HealthReportCacheUpsertBulk) UpdateLastOrderCount() *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateLastOrderCount()
	})
}

// SetReport sets the "report" field.
func (u *HealthReportCacheUpsertBulk) SetReport(v map[string]interface{}) *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetReport(v)
	})
}

// UpdateReport sets the "report" field to the value that was provided on create.
func (u *HealthReportCacheUpsertBulk) UpdateReport() *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateReport()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *HealthReportCacheUpsertBulk) SetCreatedAt(v time.Time) *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *HealthReportCacheUpsertBulk) UpdateCreatedAt() *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HealthReportCacheUpsertBulk) SetUpdatedAt(v time.Time) *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HealthReportCacheUpsertBulk) UpdateUpdatedAt() *HealthReportCacheUpsertBulk {
	return u.Update(func(s *HealthReportCacheUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *HealthReportCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HealthReportCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HealthReportCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HealthReportCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
