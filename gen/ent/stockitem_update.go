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
	"github.com/fabtrack/steelparse/gen/ent/predicate"
	"github.com/fabtrack/steelparse/gen/ent/stockitem"
)

// StockItemUpdate is the builder for updating StockItem entities.
type StockItemUpdate struct {
	config
	hooks    []Hook
	mutation *StockItemMutation
}

// Where appends a list predicates to the StockItemUpdate builder.
func (_u *StockItemUpdate) Where(ps ...predicate.StockItem) *StockItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemCode sets the "item_code" field.
func (_u *StockItemUpdate) SetItemCode(v string) *StockItemUpdate {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableItemCode(v *string) *StockItemUpdate {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StockItemUpdate) SetDescription(v string) *StockItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableDescription(v *string) *StockItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StockItemUpdate) ClearDescription() *StockItemUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *StockItemUpdate) SetUnitCost(v float64) *StockItemUpdate {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableUnitCost(v *float64) *StockItemUpdate {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *StockItemUpdate) AddUnitCost(v float64) *StockItemUpdate {
	_u.mutation.AddUnitCost(v)
	return _u
}

// ClearUnitCost clears the value of the "unit_cost" field.
func (_u *StockItemUpdate) ClearUnitCost() *StockItemUpdate {
	_u.mutation.ClearUnitCost()
	return _u
}

// SetPriceUnit sets the "price_unit" field.
func (_u *StockItemUpdate) SetPriceUnit(v string) *StockItemUpdate {
	_u.mutation.SetPriceUnit(v)
	return _u
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillablePriceUnit(v *string) *StockItemUpdate {
	if v != nil {
		_u.SetPriceUnit(*v)
	}
	return _u
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (_u *StockItemUpdate) ClearPriceUnit() *StockItemUpdate {
	_u.mutation.ClearPriceUnit()
	return _u
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (_u *StockItemUpdate) SetParsedMetalType(v string) *StockItemUpdate {
	_u.mutation.SetParsedMetalType(v)
	return _u
}

// SetNillableParsedMetalType sets the "parsed_metal_type" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableParsedMetalType(v *string) *StockItemUpdate {
	if v != nil {
		_u.SetParsedMetalType(*v)
	}
	return _u
}

// ClearParsedMetalType clears the value of the "parsed_metal_type" field.
func (_u *StockItemUpdate) ClearParsedMetalType() *StockItemUpdate {
	_u.mutation.ClearParsedMetalType()
	return _u
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (_u *StockItemUpdate) SetParsedAlloy(v string) *StockItemUpdate {
	_u.mutation.SetParsedAlloy(v)
	return _u
}

// SetNillableParsedAlloy sets the "parsed_alloy" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableParsedAlloy(v *string) *StockItemUpdate {
	if v != nil {
		_u.SetParsedAlloy(*v)
	}
	return _u
}

// ClearParsedAlloy clears the value of the "parsed_alloy" field.
func (_u *StockItemUpdate) ClearParsedAlloy() *StockItemUpdate {
	_u.mutation.ClearParsedAlloy()
	return _u
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (_u *StockItemUpdate) SetParsedDimensions(v string) *StockItemUpdate {
	_u.mutation.SetParsedDimensions(v)
	return _u
}

// SetNillableParsedDimensions sets the "parsed_dimensions" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableParsedDimensions(v *string) *StockItemUpdate {
	if v != nil {
		_u.SetParsedDimensions(*v)
	}
	return _u
}

// ClearParsedDimensions clears the value of the "parsed_dimensions" field.
func (_u *StockItemUpdate) ClearParsedDimensions() *StockItemUpdate {
	_u.mutation.ClearParsedDimensions()
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *StockItemUpdate) SetParserVersion(v string) *StockItemUpdate {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableParserVersion(v *string) *StockItemUpdate {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// ClearParserVersion clears the value of the "parser_version" field.
func (_u *StockItemUpdate) ClearParserVersion() *StockItemUpdate {
	_u.mutation.ClearParserVersion()
	return _u
}

// SetParseConfidence sets the "parse_confidence" field.
func (_u *StockItemUpdate) SetParseConfidence(v float32) *StockItemUpdate {
	_u.mutation.ResetParseConfidence()
	_u.mutation.SetParseConfidence(v)
	return _u
}

// SetNillableParseConfidence sets the "parse_confidence" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableParseConfidence(v *float32) *StockItemUpdate {
	if v != nil {
		_u.SetParseConfidence(*v)
	}
	return _u
}

// AddParseConfidence adds value to the "parse_confidence" field.
func (_u *StockItemUpdate) AddParseConfidence(v float32) *StockItemUpdate {
	_u.mutation.AddParseConfidence(v)
	return _u
}

// ClearParseConfidence clears the value of the "parse_confidence" field.
func (_u *StockItemUpdate) ClearParseConfidence() *StockItemUpdate {
	_u.mutation.ClearParseConfidence()
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *StockItemUpdate) SetParsedAt(v time.Time) *StockItemUpdate {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *StockItemUpdate) SetNillableParsedAt(v *time.Time) *StockItemUpdate {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *StockItemUpdate) ClearParsedAt() *StockItemUpdate {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StockItemUpdate) SetUpdatedAt(v time.Time) *StockItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StockItemMutation object of the builder.
func (_u *StockItemUpdate) Mutation() *StockItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StockItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StockItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StockItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stockitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StockItemUpdate) check() error {
	if v, ok := _u.mutation.ItemCode(); ok {
		if err := stockitem.ItemCodeValidator(v); err != nil {
			return &ValidationError{Name: "item_code", err: fmt.Errorf(`ent: validator failed for field "StockItem.item_code": %w`, err)}
		}
	}
	return nil
}

func (_u *StockItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stockitem.Table, stockitem.Columns, sqlgraph.NewFieldSpec(stockitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(stockitem.FieldItemCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stockitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(stockitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(stockitem.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(stockitem.FieldUnitCost, field.TypeFloat64, value)
	}
	if _u.mutation.UnitCostCleared() {
		_spec.ClearField(stockitem.FieldUnitCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceUnit(); ok {
		_spec.SetField(stockitem.FieldPriceUnit, field.TypeString, value)
	}
	if _u.mutation.PriceUnitCleared() {
		_spec.ClearField(stockitem.FieldPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedMetalType(); ok {
		_spec.SetField(stockitem.FieldParsedMetalType, field.TypeString, value)
	}
	if _u.mutation.ParsedMetalTypeCleared() {
		_spec.ClearField(stockitem.FieldParsedMetalType, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedAlloy(); ok {
		_spec.SetField(stockitem.FieldParsedAlloy, field.TypeString, value)
	}
	if _u.mutation.ParsedAlloyCleared() {
		_spec.ClearField(stockitem.FieldParsedAlloy, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedDimensions(); ok {
		_spec.SetField(stockitem.FieldParsedDimensions, field.TypeString, value)
	}
	if _u.mutation.ParsedDimensionsCleared() {
		_spec.ClearField(stockitem.FieldParsedDimensions, field.TypeString)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(stockitem.FieldParserVersion, field.TypeString, value)
	}
	if _u.mutation.ParserVersionCleared() {
		_spec.ClearField(stockitem.FieldParserVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ParseConfidence(); ok {
		_spec.SetField(stockitem.FieldParseConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedParseConfidence(); ok {
		_spec.AddField(stockitem.FieldParseConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ParseConfidenceCleared() {
		_spec.ClearField(stockitem.FieldParseConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(stockitem.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(stockitem.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stockitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StockItemUpdateOne is the builder for updating a single StockItem entity.
type StockItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StockItemMutation
}

// SetItemCode sets the "item_code" field.
func (_u *StockItemUpdateOne) SetItemCode(v string) *StockItemUpdateOne {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableItemCode(v *string) *StockItemUpdateOne {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *StockItemUpdateOne) SetDescription(v string) *StockItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableDescription(v *string) *StockItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *StockItemUpdateOne) ClearDescription() *StockItemUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *StockItemUpdateOne) SetUnitCost(v float64) *StockItemUpdateOne {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableUnitCost(v *float64) *StockItemUpdateOne {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *StockItemUpdateOne) AddUnitCost(v float64) *StockItemUpdateOne {
	_u.mutation.AddUnitCost(v)
	return _u
}

// ClearUnitCost clears the value of the "unit_cost" field.
func (_u *StockItemUpdateOne) ClearUnitCost() *StockItemUpdateOne {
	_u.mutation.ClearUnitCost()
	return _u
}

// SetPriceUnit sets the "price_unit" field.
func (_u *StockItemUpdateOne) SetPriceUnit(v string) *StockItemUpdateOne {
	_u.mutation.SetPriceUnit(v)
	return _u
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillablePriceUnit(v *string) *StockItemUpdateOne {
	if v != nil {
		_u.SetPriceUnit(*v)
	}
	return _u
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (_u *StockItemUpdateOne) ClearPriceUnit() *StockItemUpdateOne {
	_u.mutation.ClearPriceUnit()
	return _u
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (_u *StockItemUpdateOne) SetParsedMetalType(v string) *StockItemUpdateOne {
	_u.mutation.SetParsedMetalType(v)
	return _u
}

// SetNillableParsedMetalType sets the "parsed_metal_type" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableParsedMetalType(v *string) *StockItemUpdateOne {
	if v != nil {
		_u.SetParsedMetalType(*v)
	}
	return _u
}

// ClearParsedMetalType clears the value of the "parsed_metal_type" field.
func (_u *StockItemUpdateOne) ClearParsedMetalType() *StockItemUpdateOne {
	_u.mutation.ClearParsedMetalType()
	return _u
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (_u *StockItemUpdateOne) SetParsedAlloy(v string) *StockItemUpdateOne {
	_u.mutation.SetParsedAlloy(v)
	return _u
}

// SetNillableParsedAlloy sets the "parsed_alloy" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableParsedAlloy(v *string) *StockItemUpdateOne {
	if v != nil {
		_u.SetParsedAlloy(*v)
	}
	return _u
}

// ClearParsedAlloy clears the value of the "parsed_alloy" field.
func (_u *StockItemUpdateOne) ClearParsedAlloy() *StockItemUpdateOne {
	_u.mutation.ClearParsedAlloy()
	return _u
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (_u *StockItemUpdateOne) SetParsedDimensions(v string) *StockItemUpdateOne {
	_u.mutation.SetParsedDimensions(v)
	return _u
}

// SetNillableParsedDimensions sets the "parsed_dimensions" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableParsedDimensions(v *string) *StockItemUpdateOne {
	if v != nil {
		_u.SetParsedDimensions(*v)
	}
	return _u
}

// ClearParsedDimensions clears the value of the "parsed_dimensions" field.
func (_u *StockItemUpdateOne) ClearParsedDimensions() *StockItemUpdateOne {
	_u.mutation.ClearParsedDimensions()
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *StockItemUpdateOne) SetParserVersion(v string) *StockItemUpdateOne {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableParserVersion(v *string) *StockItemUpdateOne {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// ClearParserVersion clears the value of the "parser_version" field.
func (_u *StockItemUpdateOne) ClearParserVersion() *StockItemUpdateOne {
	_u.mutation.ClearParserVersion()
	return _u
}

// SetParseConfidence sets the "parse_confidence" field.
func (_u *StockItemUpdateOne) SetParseConfidence(v float32) *StockItemUpdateOne {
	_u.mutation.ResetParseConfidence()
	_u.mutation.SetParseConfidence(v)
	return _u
}

// SetNillableParseConfidence sets the "parse_confidence" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableParseConfidence(v *float32) *StockItemUpdateOne {
	if v != nil {
		_u.SetParseConfidence(*v)
	}
	return _u
}

// AddParseConfidence adds value to the "parse_confidence" field.
func (_u *StockItemUpdateOne) AddParseConfidence(v float32) *StockItemUpdateOne {
	_u.mutation.AddParseConfidence(v)
	return _u
}

// ClearParseConfidence clears the value of the "parse_confidence" field.
func (_u *StockItemUpdateOne) ClearParseConfidence() *StockItemUpdateOne {
	_u.mutation.ClearParseConfidence()
	return _u
}

// SetParsedAt sets the "parsed_at" field.
func (_u *StockItemUpdateOne) SetParsedAt(v time.Time) *StockItemUpdateOne {
	_u.mutation.SetParsedAt(v)
	return _u
}

// SetNillableParsedAt sets the "parsed_at" field if the given value is not nil.
func (_u *StockItemUpdateOne) SetNillableParsedAt(v *time.Time) *StockItemUpdateOne {
	if v != nil {
		_u.SetParsedAt(*v)
	}
	return _u
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (_u *StockItemUpdateOne) ClearParsedAt() *StockItemUpdateOne {
	_u.mutation.ClearParsedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StockItemUpdateOne) SetUpdatedAt(v time.Time) *StockItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StockItemMutation object of the builder.
func (_u *StockItemUpdateOne) Mutation() *StockItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the StockItemUpdate builder.
func (_u *StockItemUpdateOne) Where(ps ...predicate.StockItem) *StockItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StockItemUpdateOne) Select(field string, fields ...string) *StockItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StockItem entity.
func (_u *StockItemUpdateOne) Save(ctx context.Context) (*StockItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StockItemUpdateOne) SaveX(ctx context.Context) *StockItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StockItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StockItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StockItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := stockitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StockItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemCode(); ok {
		if err := stockitem.ItemCodeValidator(v); err != nil {
			return &ValidationError{Name: "item_code", err: fmt.Errorf(`ent: validator failed for field "StockItem.item_code": %w`, err)}
		}
	}
	return nil
}

func (_u *StockItemUpdateOne) sqlSave(ctx context.Context) (_node *StockItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stockitem.Table, stockitem.Columns, sqlgraph.NewFieldSpec(stockitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StockItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stockitem.FieldID)
		for _, f := range fields {
			if !stockitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stockitem.FieldID {
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
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(stockitem.FieldItemCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(stockitem.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(stockitem.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(stockitem.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(stockitem.FieldUnitCost, field.TypeFloat64, value)
	}
	if _u.mutation.UnitCostCleared() {
		_spec.ClearField(stockitem.FieldUnitCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceUnit(); ok {
		_spec.SetField(stockitem.FieldPriceUnit, field.TypeString, value)
	}
	if _u.mutation.PriceUnitCleared() {
		_spec.ClearField(stockitem.FieldPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedMetalType(); ok {
		_spec.SetField(stockitem.FieldParsedMetalType, field.TypeString, value)
	}
	if _u.mutation.ParsedMetalTypeCleared() {
		_spec.ClearField(stockitem.FieldParsedMetalType, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedAlloy(); ok {
		_spec.SetField(stockitem.FieldParsedAlloy, field.TypeString, value)
	}
	if _u.mutation.ParsedAlloyCleared() {
		_spec.ClearField(stockitem.FieldParsedAlloy, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedDimensions(); ok {
		_spec.SetField(stockitem.FieldParsedDimensions, field.TypeString, value)
	}
	if _u.mutation.ParsedDimensionsCleared() {
		_spec.ClearField(stockitem.FieldParsedDimensions, field.TypeString)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(stockitem.FieldParserVersion, field.TypeString, value)
	}
	if _u.mutation.ParserVersionCleared() {
		_spec.ClearField(stockitem.FieldParserVersion, field.TypeString)
	}
	if value, ok := _u.mutation.ParseConfidence(); ok {
		_spec.SetField(stockitem.FieldParseConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedParseConfidence(); ok {
		_spec.AddField(stockitem.FieldParseConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ParseConfidenceCleared() {
		_spec.ClearField(stockitem.FieldParseConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ParsedAt(); ok {
		_spec.SetField(stockitem.FieldParsedAt, field.TypeTime, value)
	}
	if _u.mutation.ParsedAtCleared() {
		_spec.ClearField(stockitem.FieldParsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(stockitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StockItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stockitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
