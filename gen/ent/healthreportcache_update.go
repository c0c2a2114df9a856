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
	"github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
	"github.com/mealtrace/mealtrace/gen/ent/user"
)

// HealthReportCacheUpdate is the builder for updating HealthReportCache entities.
type HealthReportCacheUpdate struct {
	config
	hooks    []Hook
	mutation *HealthReportCacheMutation
}

// Where appends a list predicates to the HealthReportCacheUpdate builder.
func (_u *HealthReportCacheUpdate) Where(ps ...predicate.HealthReportCache) *HealthReportCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *HealthReportCacheUpdate) SetUserID(v uuid.UUID) *HealthReportCacheUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HealthReportCacheUpdate) SetNillableUserID(v *uuid.UUID) *HealthReportCacheUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLastOrderCount sets the "last_order_count" field.
func (_u *HealthReportCacheUpdate) SetLastOrderCount(v int) *HealthReportCacheUpdate {
	_u.mutation.ResetLastOrderCount()
	_u.mutation.SetLastOrderCount(v)
	return _u
}

// SetNillableLastOrderCount sets the "last_order_count" field if the given value is not nil.
func (_u *HealthReportCacheUpdate) SetNillableLastOrderCount(v *int) *HealthReportCacheUpdate {
	if v != nil {
		_u.SetLastOrderCount(*v)
	}
	return _u
}

// AddLastOrderCount adds value to the "last_order_count" field.
func (_u *HealthReportCacheUpdate) AddLastOrderCount(v int) *HealthReportCacheUpdate {
	_u.mutation.AddLastOrderCount(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *HealthReportCacheUpdate) SetReport(v map[string]interface{}) *HealthReportCacheUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HealthReportCacheUpdate) SetCreatedAt(v time.Time) *HealthReportCacheUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HealthReportCacheUpdate) SetNillableCreatedAt(v *time.Time) *HealthReportCacheUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthReportCacheUpdate) SetUpdatedAt(v time.Time) *HealthReportCacheUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *HealthReportCacheUpdate) SetUser(v *User) *HealthReportCacheUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the HealthReportCacheMutation object of the builder.
func (_u *HealthReportCacheUpdate) Mutation() *HealthReportCacheMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *HealthReportCacheUpdate) ClearUser() *HealthReportCacheUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HealthReportCacheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthReportCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HealthReportCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthReportCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthReportCacheUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthreportcache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthReportCacheUpdate) check() error {
	if v, ok := _u.mutation.LastOrderCount(); ok {
		if err := healthreportcache.LastOrderCountValidator(v); err != nil {
			return &ValidationError{Name: "last_order_count", err: fmt.Errorf(`ent: validator failed for field "HealthReportCache.last_order_count": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthReportCache.user"`)
	}
	return nil
}

func (_u *HealthReportCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthreportcache.Table, healthreportcache.Columns, sqlgraph.NewFieldSpec(healthreportcache.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastOrderCount(); ok {
		_spec.SetField(healthreportcache.FieldLastOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastOrderCount(); ok {
		_spec.AddField(healthreportcache.FieldLastOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(healthreportcache.FieldReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(healthreportcache.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthreportcache.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthreportcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HealthReportCacheUpdateOne is the builder for updating a single HealthReportCache entity.
type HealthReportCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HealthReportCacheMutation
}

// SetUserID sets the "user_id" field.
func (_u *HealthReportCacheUpdateOne) SetUserID(v uuid.UUID) *HealthReportCacheUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *HealthReportCacheUpdateOne) SetNillableUserID(v *uuid.UUID) *HealthReportCacheUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLastOrderCount sets the "last_order_count" field.
func (_u *HealthReportCacheUpdateOne) SetLastOrderCount(v int) *HealthReportCacheUpdateOne {
	_u.mutation.ResetLastOrderCount()
	_u.mutation.SetLastOrderCount(v)
	return _u
}

// SetNillableLastOrderCount sets the "last_order_count" field if the given value is not nil.
func (_u *HealthReportCacheUpdateOne) SetNillableLastOrderCount(v *int) *HealthReportCacheUpdateOne {
	if v != nil {
		_u.SetLastOrderCount(*v)
	}
	return _u
}

// AddLastOrderCount adds value to the "last_order_count" field.
func (_u *HealthReportCacheUpdateOne) AddLastOrderCount(v int) *HealthReportCacheUpdateOne {
	_u.mutation.AddLastOrderCount(v)
	return _u
}

// SetReport sets the "report" field.
func (_u *HealthReportCacheUpdateOne) SetReport(v map[string]interface{}) *HealthReportCacheUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HealthReportCacheUpdateOne) SetCreatedAt(v time.Time) *HealthReportCacheUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HealthReportCacheUpdateOne) SetNillableCreatedAt(v *time.Time) *HealthReportCacheUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HealthReportCacheUpdateOne) SetUpdatedAt(v time.Time) *HealthReportCacheUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *HealthReportCacheUpdateOne) SetUser(v *User) *HealthReportCacheUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the HealthReportCacheMutation object of the builder.
func (_u *HealthReportCacheUpdateOne) Mutation() *HealthReportCacheMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *HealthReportCacheUpdateOne) ClearUser() *HealthReportCacheUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the HealthReportCacheUpdate builder.
func (_u *HealthReportCacheUpdateOne) Where(ps ...predicate.HealthReportCache) *HealthReportCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HealthReportCacheUpdateOne) Select(field string, fields ...string) *HealthReportCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HealthReportCache entity.
func (_u *HealthReportCacheUpdateOne) Save(ctx context.Context) (*HealthReportCache, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HealthReportCacheUpdateOne) SaveX(ctx context.Context) *HealthReportCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HealthReportCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HealthReportCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HealthReportCacheUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := healthreportcache.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HealthReportCacheUpdateOne) check() error {
	if v, ok := _u.mutation.LastOrderCount(); ok {
		if err := healthreportcache.LastOrderCountValidator(v); err != nil {
			return &ValidationError{Name: "last_order_count", err: fmt.Errorf(`ent: validator failed for field "HealthReportCache.last_order_count": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HealthReportCache.user"`)
	}
	return nil
}

func (_u *HealthReportCacheUpdateOne) sqlSave(ctx context.Context) (_node *HealthReportCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(healthreportcache.Table, healthreportcache.Columns, sqlgraph.NewFieldSpec(healthreportcache.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HealthReportCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, healthreportcache.FieldID)
		for _, f := range fields {
			if !healthreportcache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != healthreportcache.FieldID {
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
	if value, ok := _u.mutation.LastOrderCount(); ok {
		_spec.SetField(healthreportcache.FieldLastOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastOrderCount(); ok {
		_spec.AddField(healthreportcache.FieldLastOrderCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(healthreportcache.FieldReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(healthreportcache.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(healthreportcache.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HealthReportCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{healthreportcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
