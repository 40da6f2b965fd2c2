// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fabtrack/steelparse/gen/ent/supplierproduct"
	"github.com/google/uuid"
)

// SupplierProductCreate is the builder for creating a SupplierProduct entity.
type SupplierProductCreate struct {
	config
	mutation *SupplierProductMutation
	hooks    []Hook
}

// SetSupplierName sets the "supplier_name" field.
func (_c *SupplierProductCreate) SetSupplierName(v string) *SupplierProductCreate {
	_c.mutation.SetSupplierName(v)
	return _c
}

// SetItemNo sets the "item_no" field.
func (_c *SupplierProductCreate) SetItemNo(v string) *SupplierProductCreate {
	_c.mutation.SetItemNo(v)
	return _c
}

// SetNillableItemNo sets the "item_no" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableItemNo(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetItemNo(*v)
	}
	return _c
}

// SetVariantID sets the "variant_id" field.
func (_c *SupplierProductCreate) SetVariantID(v string) *SupplierProductCreate {
	_c.mutation.SetVariantID(v)
	return _c
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableVariantID(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetVariantID(*v)
	}
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *SupplierProductCreate) SetProductName(v string) *SupplierProductCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableProductName(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetProductName(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SupplierProductCreate) SetDescription(v string) *SupplierProductCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableDescription(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *SupplierProductCreate) SetPrice(v float64) *SupplierProductCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillablePrice(v *float64) *SupplierProductCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetPriceUnit sets the "price_unit" field.
func (_c *SupplierProductCreate) SetPriceUnit(v string) *SupplierProductCreate {
	_c.mutation.SetPriceUnit(v)
	return _c
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillablePriceUnit(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetPriceUnit(*v)
	}
	return _c
}

// SetSpecifications sets the "specifications" field.
func (_c *SupplierProductCreate) SetSpecifications(v json.RawMessage) *SupplierProductCreate {
	_c.mutation.SetSpecifications(v)
	return _c
}

// SetParsedItemCode sets the "parsed_item_code" field.
func (_c *SupplierProductCreate) SetParsedItemCode(v string) *SupplierProductCreate {
	_c.mutation.SetParsedItemCode(v)
	return _c
}

// SetNillableParsedItemCode sets the "parsed_item_code" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParsedItemCode(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetParsedItemCode(*v)
	}
	return _c
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (_c *SupplierProductCreate) SetParsedMetalType(v string) *SupplierProductCreate {
	_c.mutation.SetParsedMetalType(v)
	return _c
}

// SetNillableParsedMetalType sets the "parsed_metal_type" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParsedMetalType(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetParsedMetalType(*v)
	}
	return _c
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (_c *SupplierProductCreate) SetParsedAlloy(v string) *SupplierProductCreate {
	_c.mutation.SetParsedAlloy(v)
	return _c
}

// SetNillableParsedAlloy sets the "parsed_alloy" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParsedAlloy(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetParsedAlloy(*v)
	}
	return _c
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (_c *SupplierProductCreate) SetParsedDimensions(v string) *SupplierProductCreate {
	_c.mutation.SetParsedDimensions(v)
	return _c
}

// SetNillableParsedDimensions sets the "parsed_dimensions" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParsedDimensions(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetParsedDimensions(*v)
	}
	return _c
}

// SetParsedUnitCost sets the "parsed_unit_cost" field.
func (_c *SupplierProductCreate) SetParsedUnitCost(v float64) *SupplierProductCreate {
	_c.mutation.SetParsedUnitCost(v)
	return _c
}

// SetNillableParsedUnitCost sets the "parsed_unit_cost" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParsedUnitCost(v *float64) *SupplierProductCreate {
	if v != nil {
		_c.SetParsedUnitCost(*v)
	}
	return _c
}

// SetParsedPriceUnit sets the "parsed_price_unit" field.
func (_c *SupplierProductCreate) SetParsedPriceUnit(v string) *SupplierProductCreate {
	_c.mutation.SetParsedPriceUnit(v)
	return _c
}

// SetNillableParsedPriceUnit sets the "parsed_price_unit" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParsedPriceUnit(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetParsedPriceUnit(*v)
	}
	return _c
}

// SetParserVersion sets the "parser_version" field.
func (_c *SupplierProductCreate) SetParserVersion(v string) *SupplierProductCreate {
	_c.mutation.SetParserVersion(v)
	return _c
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParserVersion(v *string) *SupplierProductCreate {
	if v != nil {
		_c.SetParserVersion(*v)
	}
	return _c
}

// SetParseConfidence sets the "parse_confidence" field.
func (_c *SupplierProductCreate) SetParseConfidence(v float32) *SupplierProductCreate {
	_c.mutation.SetParseConfidence(v)
	return _c
}

// SetNillableParseConfidence sets the "parse_confidence" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParseConfidence(v *float32) *SupplierProductCreate {
	if v != nil {
		_c.SetParseConfidence(*v)
	}
	return _c
}

// SetParsedAt sets the "parsed_at" field.
func (_c *SupplierProductCreate) SetParsedAt(v time.Time) *SupplierProductCreate {
	_c.mutation.SetParsedAt(v)
	return _c
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableParsedAt(v *time.Time) *SupplierProductCreate {
	if v != nil {
		_c.SetParsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupplierProductCreate) SetCreatedAt(v time.Time) *SupplierProductCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableCreatedAt(v *time.Time) *SupplierProductCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupplierProductCreate) SetUpdatedAt(v time.Time) *SupplierProductCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableUpdatedAt(v *time.Time) *SupplierProductCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierProductCreate) SetID(v uuid.UUID) *SupplierProductCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SupplierProductCreate) SetNillableID(v *uuid.UUID) *SupplierProductCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SupplierProductMutation object of the builder.
func (_c *SupplierProductCreate) Mutation() *SupplierProductMutation {
	return _c.mutation
}

// Save creates the SupplierProduct in the database.
func (_c *SupplierProductCreate) Save(ctx context.Context) (*SupplierProduct, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierProductCreate) SaveX(ctx context.Context) *SupplierProduct {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplierProductCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supplierproduct.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supplierproduct.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := supplierproduct.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierProductCreate) check() error {
	if _, ok := _c.mutation.SupplierName(); !ok {
		return &ValidationError{Name: "supplier_name", err: errors.New(`ent: missing required field "SupplierProduct.supplier_name"`)}
	}
	if v, ok := _c.mutation.SupplierName(); ok {
		if err := supplierproduct.SupplierNameValidator(v); err != nil {
			return &ValidationError{Name: "supplier_name", err: fmt.Errorf(`ent: validator failed for field "SupplierProduct.supplier_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SupplierProduct.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SupplierProduct.updated_at"`)}
	}
	return nil
}

func (_c *SupplierProductCreate) sqlSave(ctx context.Context) (*SupplierProduct, error) {
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

func (_c *SupplierProductCreate) createSpec() (*SupplierProduct, *sqlgraph.CreateSpec) {
	var (
		_node = &SupplierProduct{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supplierproduct.Table, sqlgraph.NewFieldSpec(supplierproduct.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SupplierName(); ok {
		_spec.SetField(supplierproduct.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = value
	}
	if value, ok := _c.mutation.ItemNo(); ok {
		_spec.SetField(supplierproduct.FieldItemNo, field.TypeString, value)
		_node.ItemNo = &value
	}
	if value, ok := _c.mutation.VariantID(); ok {
		_spec.SetField(supplierproduct.FieldVariantID, field.TypeString, value)
		_node.VariantID = &value
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(supplierproduct.FieldProductName, field.TypeString, value)
		_node.ProductName = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(supplierproduct.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(supplierproduct.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.PriceUnit(); ok {
		_spec.SetField(supplierproduct.FieldPriceUnit, field.TypeString, value)
		_node.PriceUnit = &value
	}
	if value, ok := _c.mutation.Specifications(); ok {
		_spec.SetField(supplierproduct.FieldSpecifications, field.TypeJSON, value)
		_node.Specifications = value
	}
	if value, ok := _c.mutation.ParsedItemCode(); ok {
		_spec.SetField(supplierproduct.FieldParsedItemCode, field.TypeString, value)
		_node.ParsedItemCode = &value
	}
	if value, ok := _c.mutation.ParsedMetalType(); ok {
		_spec.SetField(supplierproduct.FieldParsedMetalType, field.TypeString, value)
		_node.ParsedMetalType = &value
	}
	if value, ok := _c.mutation.ParsedAlloy(); ok {
		_spec.SetField(supplierproduct.FieldParsedAlloy, field.TypeString, value)
		_node.ParsedAlloy = &value
	}
	if value, ok := _c.mutation.ParsedDimensions(); ok {
		_spec.SetField(supplierproduct.FieldParsedDimensions, field.TypeString, value)
		_node.ParsedDimensions = &value
	}
	if value, ok := _c.mutation.ParsedUnitCost(); ok {
		_spec.SetField(supplierproduct.FieldParsedUnitCost, field.TypeFloat64, value)
		_node.ParsedUnitCost = &value
	}
	if value, ok := _c.mutation.ParsedPriceUnit(); ok {
		_spec.SetField(supplierproduct.FieldParsedPriceUnit, field.TypeString, value)
		_node.ParsedPriceUnit = &value
	}
	if value, ok := _c.mutation.ParserVersion(); ok {
		_spec.SetField(supplierproduct.FieldParserVersion, field.TypeString, value)
		_node.ParserVersion = &value
	}
	if value, ok := _c.mutation.ParseConfidence(); ok {
		_spec.SetField(supplierproduct.FieldParseConfidence, field.TypeFloat32, value)
		_node.ParseConfidence = &value
	}
	if value, ok := _c.mutation.ParsedAt(); ok {
		_spec.SetField(supplierproduct.FieldParsedAt, field.TypeTime, value)
		_node.ParsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supplierproduct.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supplierproduct.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SupplierProductCreateBulk is the builder for creating many SupplierProduct entities in bulk.
type SupplierProductCreateBulk struct {
	config
	err      error
	builders []*SupplierProductCreate
}

// Save creates the SupplierProduct entities in the database.
func (_c *SupplierProductCreateBulk) Save(ctx context.Context) ([]*SupplierProduct, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupplierProduct, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierProductMutation)
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
func (_c *SupplierProductCreateBulk) SaveX(ctx context.Context) []*SupplierProduct {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
