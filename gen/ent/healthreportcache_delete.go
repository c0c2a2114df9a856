// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mealtrace/mealtrace/gen/ent/healthreportcache"
	"github.com/mealtrace/mealtrace/gen/ent/predicate"
)

// HealthReportCacheDelete is the builder for deleting a HealthReportCache entity.
type HealthReportCacheDelete struct {
	config
	hooks    []Hook
	mutation *HealthReportCacheMutation
}

// Where appends a list predicates to the HealthReportCacheDelete builder.
func (_d *HealthReportCacheDelete) Where(ps ...predicate.HealthReportCache) *HealthReportCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HealthReportCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HealthReportCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HealthReportCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(healthreportcache.Table, sqlgraph.NewFieldSpec(healthreportcache.FieldID, field.TypeUUID))
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

// HealthReportCacheDeleteOne is the builder for deleting a single HealthReportCache entity.
type HealthReportCacheDeleteOne struct {
	_d *HealthReportCacheDelete
}

// Where appends a list predicates to the HealthReportCacheDelete builder.
func (_d *HealthReportCacheDeleteOne) Where(ps ...predicate.HealthReportCache) *HealthReportCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HealthReportCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{healthreportcache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HealthReportCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
