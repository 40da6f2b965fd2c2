// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fabtrack/steelparse/gen/ent/predicate"
	"github.com/fabtrack/steelparse/gen/ent/supplierproduct"
)

// SupplierProductUpdate is the builder for updating SupplierProduct entities.
type SupplierProductUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierProductMutation
}

// Where appends a list predicates to the SupplierProductUpdate builder.
func (_u *SupplierProductUpdate) Where(ps ...predicate.SupplierProduct) *SupplierProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *SupplierProductUpdate) SetSupplierName(v string) *SupplierProductUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableSupplierName(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// SetItemNo sets the "item_no" field.
func (_u *SupplierProductUpdate) SetItemNo(v string) *SupplierProductUpdate {
	_u.mutation.SetItemNo(v)
	return _u
}

// SetNillableItemNo sets the "item_no" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableItemNo(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetItemNo(*v)
	}
	return _u
}

// ClearItemNo clears the value of the "item_no" field.
func (_u *SupplierProductUpdate) ClearItemNo() *SupplierProductUpdate {
	_u.mutation.ClearItemNo()
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *SupplierProductUpdate) SetVariantID(v string) *SupplierProductUpdate {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableVariantID(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// ClearVariantID clears the value of the "variant_id" field.
func (_u *SupplierProductUpdate) ClearVariantID() *SupplierProductUpdate {
	_u.mutation.ClearVariantID()
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *SupplierProductUpdate) SetProductName(v string) *SupplierProductUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableProductName(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *SupplierProductUpdate) ClearProductName() *SupplierProductUpdate {
	_u.mutation.ClearProductName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SupplierProductUpdate) SetDescription(v string) *SupplierProductUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableDescription(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SupplierProductUpdate) ClearDescription() *SupplierProductUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *SupplierProductUpdate) SetPrice(v float64) *SupplierProductUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillablePrice(v *float64) *SupplierProductUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SupplierProductUpdate) AddPrice(v float64) *SupplierProductUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *SupplierProductUpdate) ClearPrice() *SupplierProductUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetPriceUnit sets the "price_unit" field.
func (_u *SupplierProductUpdate) SetPriceUnit(v string) *SupplierProductUpdate {
	_u.mutation.SetPriceUnit(v)
	return _u
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillablePriceUnit(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetPriceUnit(*v)
	}
	return _u
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (_u *SupplierProductUpdate) ClearPriceUnit() *SupplierProductUpdate {
	_u.mutation.ClearPriceUnit()
	return _u
}

// SetSpecifications sets the "specifications" field.
func (_u *SupplierProductUpdate) SetSpecifications(v json.RawMessage) *SupplierProductUpdate {
	_u.mutation.SetSpecifications(v)
	return _u
}

// AppendSpecifications appends value to the "specifications" field.
func (_u *SupplierProductUpdate) AppendSpecifications(v json.RawMessage) *SupplierProductUpdate {
	_u.mutation.AppendSpecifications(v)
	return _u
}

// ClearSpecifications clears the value of the "specifications" field.
func (_u *SupplierProductUpdate) ClearSpecifications() *SupplierProductUpdate {
	_u.mutation.ClearSpecifications()
	return _u
}

// SetParsedItemCode sets the "parsed_item_code" field.
func (_u *SupplierProductUpdate) SetParsedItemCode(v string) *SupplierProductUpdate {
	_u.mutation.SetParsedItemCode(v)
	return _u
}

// SetNillableParsedItemCode sets the "parsed_item_code" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParsedItemCode(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetParsedItemCode(*v)
	}
	return _u
}

// ClearParsedItemCode clears the value of the "parsed_item_code" field.
func (_u *SupplierProductUpdate) ClearParsedItemCode() *SupplierProductUpdate {
	_u.mutation.ClearParsedItemCode()
	return _u
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (_u *SupplierProductUpdate) SetParsedMetalType(v string) *SupplierProductUpdate {
	_u.mutation.SetParsedMetalType(v)
	return _u
}

// SetNillableParsedMetalType sets the "parsed_metal_type" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParsedMetalType(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetParsedMetalType(*v)
	}
	return _u
}

// ClearParsedMetalType clears the value of the "parsed_metal_type" field.
func (_u *SupplierProductUpdate) ClearParsedMetalType() *SupplierProductUpdate {
	_u.mutation.ClearParsedMetalType()
	return _u
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (_u *SupplierProductUpdate) SetParsedAlloy(v string) *SupplierProductUpdate {
	_u.mutation.SetParsedAlloy(v)
	return _u
}

// SetNillableParsedAlloy sets the "parsed_alloy" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParsedAlloy(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetParsedAlloy(*v)
	}
	return _u
}

// ClearParsedAlloy clears the value of the "parsed_alloy" field.
func (_u *SupplierProductUpdate) ClearParsedAlloy() *SupplierProductUpdate {
	_u.mutation.ClearParsedAlloy()
	return _u
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (_u *SupplierProductUpdate) SetParsedDimensions(v string) *SupplierProductUpdate {
	_u.mutation.SetParsedDimensions(v)
	return _u
}

// SetNillableParsedDimensions sets the "parsed_dimensions" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParsedDimensions(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetParsedDimensions(*v)
	}
	return _u
}

// ClearParsedDimensions clears the value of the "parsed_dimensions" field.
func (_u *SupplierProductUpdate) ClearParsedDimensions() *SupplierProductUpdate {
	_u.mutation.ClearParsedDimensions()
	return _u
}

// SetParsedUnitCost sets the "parsed_unit_cost" field.
func (_u *SupplierProductUpdate) SetParsedUnitCost(v float64) *SupplierProductUpdate {
	_u.mutation.ResetParsedUnitCost()
	_u.mutation.SetParsedUnitCost(v)
	return _u
}

// SetNillableParsedUnitCost sets the "parsed_unit_cost" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParsedUnitCost(v *float64) *SupplierProductUpdate {
	if v != nil {
		_u.SetParsedUnitCost(*v)
	}
	return _u
}

// AddParsedUnitCost adds value to the "parsed_unit_cost" field.
func (_u *SupplierProductUpdate) AddParsedUnitCost(v float64) *SupplierProductUpdate {
	_u.mutation.AddParsedUnitCost(v)
	return _u
}

// ClearParsedUnitCost clears the value of the "parsed_unit_cost" field.
func (_u *SupplierProductUpdate) ClearParsedUnitCost() *SupplierProductUpdate {
	_u.mutation.ClearParsedUnitCost()
	return _u
}

// SetParsedPriceUnit sets the "parsed_price_unit" field.
func (_u *SupplierProductUpdate) SetParsedPriceUnit(v string) *SupplierProductUpdate {
	_u.mutation.SetParsedPriceUnit(v)
	return _u
}

// SetNillableParsedPriceUnit sets the "parsed_price_unit" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParsedPriceUnit(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetParsedPriceUnit(*v)
	}
	return _u
}

// ClearParsedPriceUnit clears the value of the "parsed_price_unit" field.
func (_u *SupplierProductUpdate) ClearParsedPriceUnit() *SupplierProductUpdate {
	_u.mutation.ClearParsedPriceUnit()
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *SupplierProductUpdate) SetParserVersion(v string) *SupplierProductUpdate {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParserVersion(v *string) *SupplierProductUpdate {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// ClearParserVersion clears the value of the "parser_version" field.
func (_u *SupplierProductUpdate) ClearParserVersion() *SupplierProductUpdate {
	_u.mutation.ClearParserVersion()
	return _u
}

// SetParseConfidence sets the "parse_confidence" field.
func (_u *SupplierProductUpdate) SetParseConfidence(v float32) *SupplierProductUpdate {
	_u.mutation.ResetParseConfidence()
	_u.mutation.SetParseConfidence(v)
	return _u
}

// SetNillableParseConfidence sets the "parse_confidence" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParseConfidence(v *float32) *SupplierProductUpdate {
	if v != nil {
		_u.SetParseConfidence(*v)
	}
	return _u
}

// AddParseConfidence adds value to the "parse_confidence" field.
func (_u *SupplierProductUpdate) AddParseConfidence(v float32) *SupplierProductUpdate {
	_u.mutation.AddParseConfidence(v)
	return _u
}

// ClearParseConfidence clears the value of the "parse_confidence" field.
func (_u *SupplierProductUpdate) ClearParseConfidence() *SupplierProductUpdate {
	_u.mutation.ClearParseConfidence()
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *SupplierProductUpdate) SetParsedAt(v time.Time) *SupplierProductUpdate {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *SupplierProductUpdate) SetNillableParsedAt(v *time.Time) *SupplierProductUpdate {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *SupplierProductUpdate) ClearParsedAt() *SupplierProductUpdate {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierProductUpdate) SetUpdatedAt(v time.Time) *SupplierProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SupplierProductMutation object of the builder.
func (_u *SupplierProductUpdate) Mutation() *SupplierProductMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplierproduct.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierProductUpdate) check() error {
	if v, ok := _u.mutation.SupplierName(); ok {
		if err := supplierproduct.SupplierNameValidator(v); err != nil {
			return &ValidationError{Name: "supplier_name", err: fmt.Errorf(`ent: validator failed for field "SupplierProduct.supplier_name": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplierproduct.Table, supplierproduct.Columns, sqlgraph.NewFieldSpec(supplierproduct.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(supplierproduct.FieldSupplierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemNo(); ok {
		_spec.SetField(supplierproduct.FieldItemNo, field.TypeString, value)
	}
	if _u.mutation.ItemNoCleared() {
		_spec.ClearField(supplierproduct.FieldItemNo, field.TypeString)
	}
	if value, ok := _u.mutation.VariantID(); ok {
		_spec.SetField(supplierproduct.FieldVariantID, field.TypeString, value)
	}
	if _u.mutation.VariantIDCleared() {
		_spec.ClearField(supplierproduct.FieldVariantID, field.TypeString)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(supplierproduct.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(supplierproduct.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(supplierproduct.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(supplierproduct.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(supplierproduct.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(supplierproduct.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(supplierproduct.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceUnit(); ok {
		_spec.SetField(supplierproduct.FieldPriceUnit, field.TypeString, value)
	}
	if _u.mutation.PriceUnitCleared() {
		_spec.ClearField(supplierproduct.FieldPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Specifications(); ok {
		_spec.SetField(supplierproduct.FieldSpecifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supplierproduct.FieldSpecifications, value)
		})
	}
	if _u.mutation.SpecificationsCleared() {
		_spec.ClearField(supplierproduct.FieldSpecifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParsedItemCode(); ok {
		_spec.SetField(supplierproduct.FieldParsedItemCode, field.TypeString, value)
	}
	if _u.mutation.ParsedItemCodeCleared() {
		_spec.ClearField(supplierproduct.FieldParsedItemCode, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedMetalType(); ok {
		_spec.SetField(supplierproduct.FieldParsedMetalType, field.TypeString, value)
	}
	if _u.mutation.ParsedMetalTypeCleared() {
		_spec.ClearField(supplierproduct.FieldParsedMetalType, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedAlloy(); ok {
		_spec.SetField(supplierproduct.FieldParsedAlloy, field.TypeString, value)
	}
	if _u.mutation.ParsedAlloyCleared() {
		_spec.ClearField(supplierproduct.FieldParsedAlloy, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedDimensions(); ok {
		_spec.SetField(supplierproduct.FieldParsedDimensions, field.TypeString, value)
	}
	if _u.mutation.ParsedDimensionsCleared() {
		_spec.ClearField(supplierproduct.FieldParsedDimensions, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedUnitCost(); ok {
		_spec.SetField(supplierproduct.FieldParsedUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParsedUnitCost(); ok {
		_spec.AddField(supplierproduct.FieldParsedUnitCost, field.TypeFloat64, value)
	}
	if _u.mutation.ParsedUnitCostCleared() {
		_spec.ClearField(supplierproduct.FieldParsedUnitCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ParsedPriceUnit(); ok {
		_spec.SetField(supplierproduct.FieldParsedPriceUnit, field.TypeString, value)
	}
	if _u.mutation.ParsedPriceUnitCleared() {
		_spec.ClearField(supplierproduct.FieldParsedPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(supplierproduct.FieldParserVersion, field.TypeString, value)
	}
	if _u.mutation.ParserVersionCleared() {
		_spec.ClearField(supplierproduct.FieldParserVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ParseConfidence(); ok {
		_spec.SetField(supplierproduct.FieldParseConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedParseConfidence(); ok {
		_spec.AddField(supplierproduct.FieldParseConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ParseConfidenceCleared() {
		_spec.ClearField(supplierproduct.FieldParseConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(supplierproduct.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(supplierproduct.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplierproduct.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplierproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierProductUpdateOne is the builder for updating a single SupplierProduct entity.
type SupplierProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierProductMutation
}

// SetSupplierName sets the "supplier_name" field.
func (_u *SupplierProductUpdateOne) SetSupplierName(v string) *SupplierProductUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableSupplierName(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// SetItemNo sets the "item_no" field.
func (_u *SupplierProductUpdateOne) SetItemNo(v string) *SupplierProductUpdateOne {
	_u.mutation.SetItemNo(v)
	return _u
}

// SetNillableItemNo sets the "item_no" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableItemNo(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetItemNo(*v)
	}
	return _u
}

// ClearItemNo clears the value of the "item_no" field.
func (_u *SupplierProductUpdateOne) ClearItemNo() *SupplierProductUpdateOne {
	_u.mutation.ClearItemNo()
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *SupplierProductUpdateOne) SetVariantID(v string) *SupplierProductUpdateOne {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableVariantID(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// ClearVariantID clears the value of the "variant_id" field.
func (_u *SupplierProductUpdateOne) ClearVariantID() *SupplierProductUpdateOne {
	_u.mutation.ClearVariantID()
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *SupplierProductUpdateOne) SetProductName(v string) *SupplierProductUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableProductName(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// ClearProductName clears the value of the "product_name" field.
func (_u *SupplierProductUpdateOne) ClearProductName() *SupplierProductUpdateOne {
	_u.mutation.ClearProductName()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SupplierProductUpdateOne) SetDescription(v string) *SupplierProductUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableDescription(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SupplierProductUpdateOne) ClearDescription() *SupplierProductUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPrice sets the "price" field.
func (_u *SupplierProductUpdateOne) SetPrice(v float64) *SupplierProductUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillablePrice(v *float64) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *SupplierProductUpdateOne) AddPrice(v float64) *SupplierProductUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *SupplierProductUpdateOne) ClearPrice() *SupplierProductUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetPriceUnit sets the "price_unit" field.
func (_u *SupplierProductUpdateOne) SetPriceUnit(v string) *SupplierProductUpdateOne {
	_u.mutation.SetPriceUnit(v)
	return _u
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillablePriceUnit(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetPriceUnit(*v)
	}
	return _u
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (_u *SupplierProductUpdateOne) ClearPriceUnit() *SupplierProductUpdateOne {
	_u.mutation.ClearPriceUnit()
	return _u
}

// SetSpecifications sets the "specifications" field.
func (_u *SupplierProductUpdateOne) SetSpecifications(v json.RawMessage) *SupplierProductUpdateOne {
	_u.mutation.SetSpecifications(v)
	return _u
}

// AppendSpecifications appends value to the "specifications" field.
func (_u *SupplierProductUpdateOne) AppendSpecifications(v json.RawMessage) *SupplierProductUpdateOne {
	_u.mutation.AppendSpecifications(v)
	return _u
}

// ClearSpecifications clears the value of the "specifications" field.
func (_u *SupplierProductUpdateOne) ClearSpecifications() *SupplierProductUpdateOne {
	_u.mutation.ClearSpecifications()
	return _u
}

// SetParsedItemCode sets the "parsed_item_code" field.
func (_u *SupplierProductUpdateOne) SetParsedItemCode(v string) *SupplierProductUpdateOne {
	_u.mutation.SetParsedItemCode(v)
	return _u
}

// SetNillableParsedItemCode sets the "parsed_item_code" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParsedItemCode(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParsedItemCode(*v)
	}
	return _u
}

// ClearParsedItemCode clears the value of the "parsed_item_code" field.
func (_u *SupplierProductUpdateOne) ClearParsedItemCode() *SupplierProductUpdateOne {
	_u.mutation.ClearParsedItemCode()
	return _u
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (_u *SupplierProductUpdateOne) SetParsedMetalType(v string) *SupplierProductUpdateOne {
	_u.mutation.SetParsedMetalType(v)
	return _u
}

// SetNillableParsedMetalType sets the "parsed_metal_type" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParsedMetalType(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParsedMetalType(*v)
	}
	return _u
}

// ClearParsedMetalType clears the value of the "parsed_metal_type" field.
func (_u *SupplierProductUpdateOne) ClearParsedMetalType() *SupplierProductUpdateOne {
	_u.mutation.ClearParsedMetalType()
	return _u
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (_u *SupplierProductUpdateOne) SetParsedAlloy(v string) *SupplierProductUpdateOne {
	_u.mutation.SetParsedAlloy(v)
	return _u
}

// SetNillableParsedAlloy sets the "parsed_alloy" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParsedAlloy(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParsedAlloy(*v)
	}
	return _u
}

// ClearParsedAlloy clears the value of the "parsed_alloy" field.
func (_u *SupplierProductUpdateOne) ClearParsedAlloy() *SupplierProductUpdateOne {
	_u.mutation.ClearParsedAlloy()
	return _u
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (_u *SupplierProductUpdateOne) SetParsedDimensions(v string) *SupplierProductUpdateOne {
	_u.mutation.SetParsedDimensions(v)
	return _u
}

// SetNillableParsedDimensions sets the "parsed_dimensions" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParsedDimensions(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParsedDimensions(*v)
	}
	return _u
}

// ClearParsedDimensions clears the value of the "parsed_dimensions" field.
func (_u *SupplierProductUpdateOne) ClearParsedDimensions() *SupplierProductUpdateOne {
	_u.mutation.ClearParsedDimensions()
	return _u
}

// SetParsedUnitCost sets the "parsed_unit_cost" field.
func (_u *SupplierProductUpdateOne) SetParsedUnitCost(v float64) *SupplierProductUpdateOne {
	_u.mutation.ResetParsedUnitCost()
	_u.mutation.SetParsedUnitCost(v)
	return _u
}

// SetNillableParsedUnitCost sets the "parsed_unit_cost" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParsedUnitCost(v *float64) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParsedUnitCost(*v)
	}
	return _u
}

// AddParsedUnitCost adds value to the "parsed_unit_cost" field.
func (_u *SupplierProductUpdateOne) AddParsedUnitCost(v float64) *SupplierProductUpdateOne {
	_u.mutation.AddParsedUnitCost(v)
	return _u
}

// ClearParsedUnitCost clears the value of the "parsed_unit_cost" field.
func (_u *SupplierProductUpdateOne) ClearParsedUnitCost() *SupplierProductUpdateOne {
	_u.mutation.ClearParsedUnitCost()
	return _u
}

// SetParsedPriceUnit sets the "parsed_price_unit" field.
func (_u *SupplierProductUpdateOne) SetParsedPriceUnit(v string) *SupplierProductUpdateOne {
	_u.mutation.SetParsedPriceUnit(v)
	return _u
}

// SetNillableParsedPriceUnit sets the "parsed_price_unit" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParsedPriceUnit(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParsedPriceUnit(*v)
	}
	return _u
}

// ClearParsedPriceUnit clears the value of the "parsed_price_unit" field.
func (_u *SupplierProductUpdateOne) ClearParsedPriceUnit() *SupplierProductUpdateOne {
	_u.mutation.ClearParsedPriceUnit()
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *SupplierProductUpdateOne) SetParserVersion(v string) *SupplierProductUpdateOne {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParserVersion(v *string) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// ClearParserVersion clears the value of the "parser_version" field.
func (_u *SupplierProductUpdateOne) ClearParserVersion() *SupplierProductUpdateOne {
	_u.mutation.ClearParserVersion()
	return _u
}

// SetParseConfidence sets the "parse_confidence" field.
func (_u *SupplierProductUpdateOne) SetParseConfidence(v float32) *SupplierProductUpdateOne {
	_u.mutation.ResetParseConfidence()
	_u.mutation.SetParseConfidence(v)
	return _u
}

// SetNillableParseConfidence sets the "parse_confidence" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParseConfidence(v *float32) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParseConfidence(*v)
	}
	return _u
}

// AddParseConfidence adds value to the "parse_confidence" field.
func (_u *SupplierProductUpdateOne) AddParseConfidence(v float32) *SupplierProductUpdateOne {
	_u.mutation.AddParseConfidence(v)
	return _u
}

// ClearParseConfidence clears the value of the "parse_confidence" field.
func (_u *SupplierProductUpdateOne) ClearParseConfidence() *SupplierProductUpdateOne {
	_u.mutation.ClearParseConfidence()
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *SupplierProductUpdateOne) SetParsedAt(v time.Time) *SupplierProductUpdateOne {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *SupplierProductUpdateOne) SetNillableParsedAt(v *time.Time) *SupplierProductUpdateOne {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *SupplierProductUpdateOne) ClearParsedAt() *SupplierProductUpdateOne {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierProductUpdateOne) SetUpdatedAt(v time.Time) *SupplierProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SupplierProductMutation object of the builder.
func (_u *SupplierProductUpdateOne) Mutation() *SupplierProductMutation {
	return _u.mutation
}

// Where appends a list predicates to the SupplierProductUpdate builder.
func (_u *SupplierProductUpdateOne) Where(ps ...predicate.SupplierProduct) *SupplierProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierProductUpdateOne) Select(field string, fields ...string) *SupplierProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupplierProduct entity.
func (_u *SupplierProductUpdateOne) Save(ctx context.Context) (*SupplierProduct, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierProductUpdateOne) SaveX(ctx context.Context) *SupplierProduct {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplierproduct.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierProductUpdateOne) check() error {
	if v, ok := _u.mutation.SupplierName(); ok {
		if err := supplierproduct.SupplierNameValidator(v); err != nil {
			return &ValidationError{Name: "supplier_name", err: fmt.Errorf(`ent: validator failed for field "SupplierProduct.supplier_name": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierProductUpdateOne) sqlSave(ctx context.Context) (_node *SupplierProduct, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplierproduct.Table, supplierproduct.Columns, sqlgraph.NewFieldSpec(supplierproduct.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupplierProduct.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplierproduct.FieldID)
		for _, f := range fields {
			if !supplierproduct.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplierproduct.FieldID {
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
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(supplierproduct.FieldSupplierName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemNo(); ok {
		_spec.SetField(supplierproduct.FieldItemNo, field.TypeString, value)
	}
	if _u.mutation.ItemNoCleared() {
		_spec.ClearField(supplierproduct.FieldItemNo, field.TypeString)
	}
	if value, ok := _u.mutation.VariantID(); ok {
		_spec.SetField(supplierproduct.FieldVariantID, field.TypeString, value)
	}
	if _u.mutation.VariantIDCleared() {
		_spec.ClearField(supplierproduct.FieldVariantID, field.TypeString)
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(supplierproduct.FieldProductName, field.TypeString, value)
	}
	if _u.mutation.ProductNameCleared() {
		_spec.ClearField(supplierproduct.FieldProductName, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(supplierproduct.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(supplierproduct.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(supplierproduct.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(supplierproduct.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(supplierproduct.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceUnit(); ok {
		_spec.SetField(supplierproduct.FieldPriceUnit, field.TypeString, value)
	}
	if _u.mutation.PriceUnitCleared() {
		_spec.ClearField(supplierproduct.FieldPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Specifications(); ok {
		_spec.SetField(supplierproduct.FieldSpecifications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecifications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, supplierproduct.FieldSpecifications, value)
		})
	}
	if _u.mutation.SpecificationsCleared() {
		_spec.ClearField(supplierproduct.FieldSpecifications, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParsedItemCode(); ok {
		_spec.SetField(supplierproduct.FieldParsedItemCode, field.TypeString, value)
	}
	if _u.mutation.ParsedItemCodeCleared() {
		_spec.ClearField(supplierproduct.FieldParsedItemCode, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedMetalType(); ok {
		_spec.SetField(supplierproduct.FieldParsedMetalType, field.TypeString, value)
	}
	if _u.mutation.ParsedMetalTypeCleared() {
		_spec.ClearField(supplierproduct.FieldParsedMetalType, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedAlloy(); ok {
		_spec.SetField(supplierproduct.FieldParsedAlloy, field.TypeString, value)
	}
	if _u.mutation.ParsedAlloyCleared() {
		_spec.ClearField(supplierproduct.FieldParsedAlloy, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedDimensions(); ok {
		_spec.SetField(supplierproduct.FieldParsedDimensions, field.TypeString, value)
	}
	if _u.mutation.ParsedDimensionsCleared() {
		_spec.ClearField(supplierproduct.FieldParsedDimensions, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedUnitCost(); ok {
		_spec.SetField(supplierproduct.FieldParsedUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParsedUnitCost(); ok {
		_spec.AddField(supplierproduct.FieldParsedUnitCost, field.TypeFloat64, value)
	}
	if _u.mutation.ParsedUnitCostCleared() {
		_spec.ClearField(supplierproduct.FieldParsedUnitCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ParsedPriceUnit(); ok {
		_spec.SetField(supplierproduct.FieldParsedPriceUnit, field.TypeString, value)
	}
	if _u.mutation.ParsedPriceUnitCleared() {
		_spec.ClearField(supplierproduct.FieldParsedPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(supplierproduct.FieldParserVersion, field.TypeString, value)
	}
	if _u.mutation.ParserVersionCleared() {
		_spec.ClearField(supplierproduct.FieldParserVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ParseConfidence(); ok {
		_spec.SetField(supplierproduct.FieldParseConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedParseConfidence(); ok {
		_spec.AddField(supplierproduct.FieldParseConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ParseConfidenceCleared() {
		_spec.ClearField(supplierproduct.FieldParseConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(supplierproduct.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(supplierproduct.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplierproduct.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SupplierProduct{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplierproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
