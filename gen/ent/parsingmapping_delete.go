// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/fabtrack/steelparse/gen/ent/predicate"
)

// ParsingMappingDelete is the builder for deleting a ParsingMapping entity.
type ParsingMappingDelete struct {
	config
	hooks    []Hook
	mutation *ParsingMappingMutation
}

// Where appends a list predicates to the ParsingMappingDelete builder.
func (_d *ParsingMappingDelete) Where(ps ...predicate.ParsingMapping) *ParsingMappingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ParsingMappingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParsingMappingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ParsingMappingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(parsingmapping.Table, sqlgraph.NewFieldSpec(parsingmapping.FieldID, field.TypeUUID))
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

// ParsingMappingDeleteOne is the builder for deleting a single ParsingMapping entity.
type ParsingMappingDeleteOne struct {
	_d *ParsingMappingDelete
}

// Where appends a list predicates to the ParsingMappingDelete builder.
func (_d *ParsingMappingDeleteOne) Where(ps ...predicate.ParsingMapping) *ParsingMappingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ParsingMappingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{parsingmapping.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ParsingMappingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
