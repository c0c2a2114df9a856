// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mealtrace/mealtrace/gen/ent/caloriecache"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
)

// CalorieCacheDelete is the builder for deleting a CalorieCache entity.
type CalorieCacheDelete struct {
	config
	hooks    []Hook
	mutation *CalorieCacheMutation
}

// Where appends a list predicates to the CalorieCacheDelete builder.
func (_d *CalorieCacheDelete) Where(ps ...predicate.CalorieCache) *CalorieCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CalorieCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalorieCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CalorieCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(caloriecache.Table, sqlgraph.NewFieldSpec(caloriecache.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CalorieCacheDeleteOne is the builder for deleting a single CalorieCache entity.
type CalorieCacheDeleteOne struct {
	_d *CalorieCacheDelete
}

// Where appends a list predicates to the CalorieCacheDelete builder.
func (_d *CalorieCacheDeleteOne) Where(ps ...predicate.CalorieCache) *CalorieCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CalorieCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{caloriecache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CalorieCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
