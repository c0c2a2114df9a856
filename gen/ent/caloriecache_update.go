// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mealtrace/mealtrace/gen/ent/caloriecache"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
)

// CalorieCacheUpdate is the builder for updating CalorieCache entities.
type CalorieCacheUpdate struct {
	config
	hooks    []Hook
	mutation *CalorieCacheMutation
}

// Where appends a list predicates to the CalorieCacheUpdate builder.
func (_u *CalorieCacheUpdate) Where(ps ...predicate.CalorieCache) *CalorieCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CalorieCacheMutation object of the builder.
func (_u *CalorieCacheUpdate) Mutation() *CalorieCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CalorieCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalorieCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CalorieCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalorieCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalorieCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(caloriecache.Table, caloriecache.Columns, sqlgraph.NewFieldSpec(caloriecache.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(caloriecache.FieldRestaurantName, field.TypeString)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(caloriecache.FieldSourceURL, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caloriecache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CalorieCacheUpdateOne is the builder for updating a single CalorieCache entity.
type CalorieCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CalorieCacheMutation
}

// Mutation returns the CalorieCacheMutation object of the builder.
func (_u *CalorieCacheUpdateOne) Mutation() *CalorieCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the CalorieCacheUpdate builder.
func (_u *CalorieCacheUpdateOne) Where(ps ...predicate.CalorieCache) *CalorieCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CalorieCacheUpdateOne) Select(field string, fields ...string) *CalorieCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CalorieCache entity.
func (_u *CalorieCacheUpdateOne) Save(ctx context.Context) (*CalorieCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CalorieCacheUpdateOne) SaveX(ctx context.Context) *CalorieCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CalorieCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CalorieCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CalorieCacheUpdateOne) sqlSave(ctx context.Context) (_node *CalorieCache, err error) {
	_spec := sqlgraph.NewUpdateSpec(caloriecache.Table, caloriecache.Columns, sqlgraph.NewFieldSpec(caloriecache.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CalorieCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caloriecache.FieldID)
		for _, f := range fields {
			if !caloriecache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caloriecache.FieldID {
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
	if _u.mutation.RestaurantNameCleared() {
		_spec.ClearField(caloriecache.FieldRestaurantName, field.TypeString)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(caloriecache.FieldSourceURL, field.TypeString)
	}
	_node = &CalorieCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caloriecache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
