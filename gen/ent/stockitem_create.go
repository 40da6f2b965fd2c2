// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabtrack/steelparse/gen/ent/stockitem"
	"github.com/google/uuid"
)

// StockItemCreate is the builder for creating a StockItem entity.
type StockItemCreate struct {
	config
	mutation *StockItemMutation
	hooks    []Hook
}

// SetItemCode sets the "item_code" field.
func (_c *StockItemCreate) SetItemCode(v string) *StockItemCreate {
	_c.mutation.SetItemCode(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *StockItemCreate) SetDescription(v string) *StockItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableDescription(v *string) *StockItemCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetUnitCost sets the "unit_cost" field.
func (_c *StockItemCreate) SetUnitCost(v float64) *StockItemCreate {
	_c.mutation.SetUnitCost(v)
	return _c
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableUnitCost(v *float64) *StockItemCreate {
	if v != nil {
		_c.SetUnitCost(*v)
	}
	return _c
}

// SetPriceUnit sets the "price_unit" field.
func (_c *StockItemCreate) SetPriceUnit(v string) *StockItemCreate {
	_c.mutation.SetPriceUnit(v)
	return _c
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_c *StockItemCreate) SetNillablePriceUnit(v *string) *StockItemCreate {
	if v != nil {
		_c.SetPriceUnit(*v)
	}
	return _c
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (_c *StockItemCreate) SetParsedMetalType(v string) *StockItemCreate {
	_c.mutation.SetParsedMetalType(v)
	return _c
}

// SetNillableParsedMetalType sets the "parsed_metal_type" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableParsedMetalType(v *string) *StockItemCreate {
	if v != nil {
		_c.SetParsedMetalType(*v)
	}
	return _c
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (_c *StockItemCreate) SetParsedAlloy(v string) *StockItemCreate {
	_c.mutation.SetParsedAlloy(v)
	return _c
}

// SetNillableParsedAlloy sets the "parsed_alloy" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableParsedAlloy(v *string) *StockItemCreate {
	if v != nil {
		_c.SetParsedAlloy(*v)
	}
	return _c
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (_c *StockItemCreate) SetParsedDimensions(v string) *StockItemCreate {
	_c.mutation.SetParsedDimensions(v)
	return _c
}

// SetNillableParsedDimensions sets the "parsed_dimensions" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableParsedDimensions(v *string) *StockItemCreate {
	if v != nil {
		_c.SetParsedDimensions(*v)
	}
	return _c
}

// SetParserVersion sets the "parser_version" field.
func (_c *StockItemCreate) SetParserVersion(v string) *StockItemCreate {
	_c.mutation.SetParserVersion(v)
	return _c
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableParserVersion(v *string) *StockItemCreate {
	if v != nil {
		_c.SetParserVersion(*v)
	}
	return _c
}

// SetParseConfidence sets the "parse_confidence" field.
func (_c *StockItemCreate) SetParseConfidence(v float32) *StockItemCreate {
	_c.mutation.SetParseConfidence(v)
	return _c
}

// SetNillableParseConfidence sets the "parse_confidence" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableParseConfidence(v *float32) *StockItemCreate {
	if v != nil {
		_c.SetParseConfidence(*v)
	}
	return _c
}

// SetParsedAt sets the "parsed_at" field.
func (_c *StockItemCreate) SetParsedAt(v time.Time) *StockItemCreate {
	_c.mutation.SetParsedAt(v)
	return _c
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableParsedAt(v *time.Time) *StockItemCreate {
	if v != nil {
		_c.SetParsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StockItemCreate) SetCreatedAt(v time.Time) *StockItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableCreatedAt(v *time.Time) *StockItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StockItemCreate) SetUpdatedAt(v time.Time) *StockItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableUpdatedAt(v *time.Time) *StockItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StockItemCreate) SetID(v uuid.UUID) *StockItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StockItemCreate) SetNillableID(v *uuid.UUID) *StockItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the StockItemMutation object of the builder.
func (_c *StockItemCreate) Mutation() *StockItemMutation {
	return _c.mutation
}

// Save creates the StockItem in the database.
func (_c *StockItemCreate) Save(ctx context.Context) (*StockItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StockItemCreate) SaveX(ctx context.Context) *StockItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StockItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stockitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := stockitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := stockitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StockItemCreate) check() error {
	if _, ok := _c.mutation.ItemCode(); !ok {
		return &ValidationError{Name: "item_code", err: errors.New(`ent: missing required field "StockItem.item_code"`)}
	}
	if v, ok := _c.mutation.ItemCode(); ok {
		if err := stockitem.ItemCodeValidator(v); err != nil {
			return &ValidationError{Name: "item_code", err: fmt.Errorf(`ent: validator failed for field "StockItem.item_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StockItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StockItem.updated_at"`)}
	}
	return nil
}

func (_c *StockItemCreate) sqlSave(ctx context.Context) (*StockItem, error) {
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

func (_c *StockItemCreate) createSpec() (*StockItem, *sqlgraph.CreateSpec) {
	var (
		_node = &StockItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stockitem.Table, sqlgraph.NewFieldSpec(stockitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ItemCode(); ok {
		_spec.SetField(stockitem.FieldItemCode, field.TypeString, value)
		_node.ItemCode = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(stockitem.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.UnitCost(); ok {
		_spec.SetField(stockitem.FieldUnitCost, field.TypeFloat64, value)
		_node.UnitCost = &value
	}
	if value, ok := _c.mutation.PriceUnit(); ok {
		_spec.SetField(stockitem.FieldPriceUnit, field.TypeString, value)
		_node.PriceUnit = &value
	}
	if value, ok := _c.mutation.ParsedMetalType(); ok {
		_spec.SetField(stockitem.FieldParsedMetalType, field.TypeString, value)
		_node.ParsedMetalType = &value
	}
	if value, ok := _c.mutation.ParsedAlloy(); ok {
		_spec.SetField(stockitem.FieldParsedAlloy, field.TypeString, value)
		_node.ParsedAlloy = &value
	}
	if value, ok := _c.mutation.ParsedDimensions(); ok {
		_spec.SetField(stockitem.FieldParsedDimensions, field.TypeString, value)
		_node.ParsedDimensions = &value
	}
	if value, ok := _c.mutation.ParserVersion(); ok {
		_spec.SetField(stockitem.FieldParserVersion, field.TypeString, value)
		_node.ParserVersion = &value
	}
	if value, ok := _c.mutation.ParseConfidence(); ok {
		_spec.SetField(stockitem.FieldParseConfidence, field.TypeFloat32, value)
		_node.ParseConfidence = &value
	}
	if value, ok := _c.mutation.ParsedAt(); ok {
		_spec.SetField(stockitem.FieldParsedAt, field.TypeTime, value)
		_node.ParsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stockitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(stockitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StockItemCreateBulk is the builder for creating many StockItem entities in bulk.
type StockItemCreateBulk struct {
	config
	err      error
	builders []*StockItemCreate
}

// Save creates the StockItem entities in the database.
func (_c *StockItemCreateBulk) Save(ctx context.Context) ([]*StockItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StockItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StockItemMutation)
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
func (_c *StockItemCreateBulk) SaveX(ctx context.Context) []*StockItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StockItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StockItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
