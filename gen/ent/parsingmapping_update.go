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
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/fabtrack/steelparse/gen/ent/predicate"
)

// ParsingMappingUpdate is the builder for updating ParsingMapping entities.
type ParsingMappingUpdate struct {
	config
	hooks    []Hook
	mutation *ParsingMappingMutation
}

// Where appends a list predicates to the ParsingMappingUpdate builder.
func (_u *ParsingMappingUpdate) Where(ps ...predicate.ParsingMapping) *ParsingMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_u *ParsingMappingUpdate) SetInputSnapshot(v json.RawMessage) *ParsingMappingUpdate {
	_u.mutation.SetInputSnapshot(v)
	return _u
}

// AppendInputSnapshot appends value to the "input_snapshot" field.
func (_u *ParsingMappingUpdate) AppendInputSnapshot(v json.RawMessage) *ParsingMappingUpdate {
	_u.mutation.AppendInputSnapshot(v)
	return _u
}

// SetItemCode sets the "item_code" field.
func (_u *ParsingMappingUpdate) SetItemCode(v string) *ParsingMappingUpdate {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableItemCode(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// ClearItemCode clears the value of the "item_code" field.
func (_u *ParsingMappingUpdate) ClearItemCode() *ParsingMappingUpdate {
	_u.mutation.ClearItemCode()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ParsingMappingUpdate) SetDescription(v string) *ParsingMappingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableDescription(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ParsingMappingUpdate) ClearDescription() *ParsingMappingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetalType sets the "metal_type" field.
func (_u *ParsingMappingUpdate) SetMetalType(v string) *ParsingMappingUpdate {
	_u.mutation.SetMetalType(v)
	return _u
}

// SetNillableMetalType sets the "metal_type" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableMetalType(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetMetalType(*v)
	}
	return _u
}

// ClearMetalType clears the value of the "metal_type" field.
func (_u *ParsingMappingUpdate) ClearMetalType() *ParsingMappingUpdate {
	_u.mutation.ClearMetalType()
	return _u
}

// SetAlloy sets the "alloy" field.
func (_u *ParsingMappingUpdate) SetAlloy(v string) *ParsingMappingUpdate {
	_u.mutation.SetAlloy(v)
	return _u
}

// SetNillableAlloy sets the "alloy" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableAlloy(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetAlloy(*v)
	}
	return _u
}

// ClearAlloy clears the value of the "alloy" field.
func (_u *ParsingMappingUpdate) ClearAlloy() *ParsingMappingUpdate {
	_u.mutation.ClearAlloy()
	return _u
}

// SetSpecifics sets the "specifics" field.
func (_u *ParsingMappingUpdate) SetSpecifics(v string) *ParsingMappingUpdate {
	_u.mutation.SetSpecifics(v)
	return _u
}

// SetNillableSpecifics sets the "specifics" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableSpecifics(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetSpecifics(*v)
	}
	return _u
}

// ClearSpecifics clears the value of the "specifics" field.
func (_u *ParsingMappingUpdate) ClearSpecifics() *ParsingMappingUpdate {
	_u.mutation.ClearSpecifics()
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *ParsingMappingUpdate) SetDimensions(v string) *ParsingMappingUpdate {
	_u.mutation.SetDimensions(v)
	return _u
}

// SetNillableDimensions sets the "dimensions" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableDimensions(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetDimensions(*v)
	}
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *ParsingMappingUpdate) ClearDimensions() *ParsingMappingUpdate {
	_u.mutation.ClearDimensions()
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *ParsingMappingUpdate) SetUnitCost(v float64) *ParsingMappingUpdate {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableUnitCost(v *float64) *ParsingMappingUpdate {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *ParsingMappingUpdate) AddUnitCost(v float64) *ParsingMappingUpdate {
	_u.mutation.AddUnitCost(v)
	return _u
}

// ClearUnitCost clears the value of the "unit_cost" field.
func (_u *ParsingMappingUpdate) ClearUnitCost() *ParsingMappingUpdate {
	_u.mutation.ClearUnitCost()
	return _u
}

// SetPriceUnit sets the "price_unit" field.
func (_u *ParsingMappingUpdate) SetPriceUnit(v string) *ParsingMappingUpdate {
	_u.mutation.SetPriceUnit(v)
	return _u
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillablePriceUnit(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetPriceUnit(*v)
	}
	return _u
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (_u *ParsingMappingUpdate) ClearPriceUnit() *ParsingMappingUpdate {
	_u.mutation.ClearPriceUnit()
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *ParsingMappingUpdate) SetParserVersion(v string) *ParsingMappingUpdate {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableParserVersion(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ParsingMappingUpdate) SetConfidence(v float32) *ParsingMappingUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableConfidence(v *float32) *ParsingMappingUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ParsingMappingUpdate) AddConfidence(v float32) *ParsingMappingUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ParsingMappingUpdate) ClearConfidence() *ParsingMappingUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRawModelOutput sets the "raw_model_output" field.
func (_u *ParsingMappingUpdate) SetRawModelOutput(v string) *ParsingMappingUpdate {
	_u.mutation.SetRawModelOutput(v)
	return _u
}

// SetNillableRawModelOutput sets the "raw_model_output" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableRawModelOutput(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetRawModelOutput(*v)
	}
	return _u
}

// ClearRawModelOutput clears the value of the "raw_model_output" field.
func (_u *ParsingMappingUpdate) ClearRawModelOutput() *ParsingMappingUpdate {
	_u.mutation.ClearRawModelOutput()
	return _u
}

// SetValidated sets the "validated" field.
func (_u *ParsingMappingUpdate) SetValidated(v bool) *ParsingMappingUpdate {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableValidated(v *bool) *ParsingMappingUpdate {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetValidatedBy sets the "validated_by" field.
func (_u *ParsingMappingUpdate) SetValidatedBy(v string) *ParsingMappingUpdate {
	_u.mutation.SetValidatedBy(v)
	return _u
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableValidatedBy(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetValidatedBy(*v)
	}
	return _u
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (_u *ParsingMappingUpdate) ClearValidatedBy() *ParsingMappingUpdate {
	_u.mutation.ClearValidatedBy()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ParsingMappingUpdate) SetValidatedAt(v time.Time) *ParsingMappingUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableValidatedAt(v *time.Time) *ParsingMappingUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ParsingMappingUpdate) ClearValidatedAt() *ParsingMappingUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetValidationNotes sets the "validation_notes" field.
func (_u *ParsingMappingUpdate) SetValidationNotes(v string) *ParsingMappingUpdate {
	_u.mutation.SetValidationNotes(v)
	return _u
}

// SetNillableValidationNotes sets the "validation_notes" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableValidationNotes(v *string) *ParsingMappingUpdate {
	if v != nil {
		_u.SetValidationNotes(*v)
	}
	return _u
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (_u *ParsingMappingUpdate) ClearValidationNotes() *ParsingMappingUpdate {
	_u.mutation.ClearValidationNotes()
	return _u
}

// SetItemCodeExists sets the "item_code_exists" field.
func (_u *ParsingMappingUpdate) SetItemCodeExists(v bool) *ParsingMappingUpdate {
	_u.mutation.SetItemCodeExists(v)
	return _u
}

// SetNillableItemCodeExists sets the "item_code_exists" field if the given value is not nil.
func (_u *ParsingMappingUpdate) SetNillableItemCodeExists(v *bool) *ParsingMappingUpdate {
	if v != nil {
		_u.SetItemCodeExists(*v)
	}
	return _u
}

// ClearItemCodeExists clears the value of the "item_code_exists" field.
func (_u *ParsingMappingUpdate) ClearItemCodeExists() *ParsingMappingUpdate {
	_u.mutation.ClearItemCodeExists()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParsingMappingUpdate) SetUpdatedAt(v time.Time) *ParsingMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParsingMappingMutation object of the builder.
func (_u *ParsingMappingUpdate) Mutation() *ParsingMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParsingMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParsingMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParsingMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParsingMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParsingMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := parsingmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParsingMappingUpdate) check() error {
	if v, ok := _u.mutation.MetalType(); ok {
		if err := parsingmapping.MetalTypeValidator(v); err != nil {
			return &ValidationError{Name: "metal_type", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.metal_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceUnit(); ok {
		if err := parsingmapping.PriceUnitValidator(v); err != nil {
			return &ValidationError{Name: "price_unit", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.price_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParserVersion(); ok {
		if err := parsingmapping.ParserVersionValidator(v); err != nil {
			return &ValidationError{Name: "parser_version", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.parser_version": %w`, err)}
		}
	}
	return nil
}

func (_u *ParsingMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsingmapping.Table, parsingmapping.Columns, sqlgraph.NewFieldSpec(parsingmapping.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputSnapshot(); ok {
		_spec.SetField(parsingmapping.FieldInputSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsingmapping.FieldInputSnapshot, value)
		})
	}
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(parsingmapping.FieldItemCode, field.TypeString, value)
	}
	if _u.mutation.ItemCodeCleared() {
		_spec.ClearField(parsingmapping.FieldItemCode, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(parsingmapping.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(parsingmapping.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MetalType(); ok {
		_spec.SetField(parsingmapping.FieldMetalType, field.TypeString, value)
	}
	if _u.mutation.MetalTypeCleared() {
		_spec.ClearField(parsingmapping.FieldMetalType, field.TypeString)
	}
	if value, ok := _u.mutation.Alloy(); ok {
		_spec.SetField(parsingmapping.FieldAlloy, field.TypeString, value)
	}
	if _u.mutation.AlloyCleared() {
		_spec.ClearField(parsingmapping.FieldAlloy, field.TypeString)
	}
	if value, ok := _u.mutation.Specifics(); ok {
		_spec.SetField(parsingmapping.FieldSpecifics, field.TypeString, value)
	}
	if _u.mutation.SpecificsCleared() {
		_spec.ClearField(parsingmapping.FieldSpecifics, field.TypeString)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(parsingmapping.FieldDimensions, field.TypeString, value)
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(parsingmapping.FieldDimensions, field.TypeString)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(parsingmapping.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(parsingmapping.FieldUnitCost, field.TypeFloat64, value)
	}
	if _u.mutation.UnitCostCleared() {
		_spec.ClearField(parsingmapping.FieldUnitCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceUnit(); ok {
		_spec.SetField(parsingmapping.FieldPriceUnit, field.TypeString, value)
	}
	if _u.mutation.PriceUnitCleared() {
		_spec.ClearField(parsingmapping.FieldPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(parsingmapping.FieldParserVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(parsingmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(parsingmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(parsingmapping.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.RawModelOutput(); ok {
		_spec.SetField(parsingmapping.FieldRawModelOutput, field.TypeString, value)
	}
	if _u.mutation.RawModelOutputCleared() {
		_spec.ClearField(parsingmapping.FieldRawModelOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(parsingmapping.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidatedBy(); ok {
		_spec.SetField(parsingmapping.FieldValidatedBy, field.TypeString, value)
	}
	if _u.mutation.ValidatedByCleared() {
		_spec.ClearField(parsingmapping.FieldValidatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(parsingmapping.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(parsingmapping.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationNotes(); ok {
		_spec.SetField(parsingmapping.FieldValidationNotes, field.TypeString, value)
	}
	if _u.mutation.ValidationNotesCleared() {
		_spec.ClearField(parsingmapping.FieldValidationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCodeExists(); ok {
		_spec.SetField(parsingmapping.FieldItemCodeExists, field.TypeBool, value)
	}
	if _u.mutation.ItemCodeExistsCleared() {
		_spec.ClearField(parsingmapping.FieldItemCodeExists, field.TypeBool)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(parsingmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsingmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParsingMappingUpdateOne is the builder for updating a single ParsingMapping entity.
type ParsingMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParsingMappingMutation
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_u *ParsingMappingUpdateOne) SetInputSnapshot(v json.RawMessage) *ParsingMappingUpdateOne {
	_u.mutation.SetInputSnapshot(v)
	return _u
}

// AppendInputSnapshot appends value to the "input_snapshot" field.
func (_u *ParsingMappingUpdateOne) AppendInputSnapshot(v json.RawMessage) *ParsingMappingUpdateOne {
	_u.mutation.AppendInputSnapshot(v)
	return _u
}

// SetItemCode sets the "item_code" field.
func (_u *ParsingMappingUpdateOne) SetItemCode(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetItemCode(v)
	return _u
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableItemCode(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetItemCode(*v)
	}
	return _u
}

// ClearItemCode clears the value of the "item_code" field.
func (_u *ParsingMappingUpdateOne) ClearItemCode() *ParsingMappingUpdateOne {
	_u.mutation.ClearItemCode()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ParsingMappingUpdateOne) SetDescription(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableDescription(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ParsingMappingUpdateOne) ClearDescription() *ParsingMappingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetMetalType sets the "metal_type" field.
func (_u *ParsingMappingUpdateOne) SetMetalType(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetMetalType(v)
	return _u
}

// SetNillableMetalType sets the "metal_type" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableMetalType(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetMetalType(*v)
	}
	return _u
}

// ClearMetalType clears the value of the "metal_type" field.
func (_u *ParsingMappingUpdateOne) ClearMetalType() *ParsingMappingUpdateOne {
	_u.mutation.ClearMetalType()
	return _u
}

// SetAlloy sets the "alloy" field.
func (_u *ParsingMappingUpdateOne) SetAlloy(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetAlloy(v)
	return _u
}

// SetNillableAlloy sets the "alloy" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableAlloy(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetAlloy(*v)
	}
	return _u
}

// ClearAlloy clears the value of the "alloy" field.
func (_u *ParsingMappingUpdateOne) ClearAlloy() *ParsingMappingUpdateOne {
	_u.mutation.ClearAlloy()
	return _u
}

// SetSpecifics sets the "specifics" field.
func (_u *ParsingMappingUpdateOne) SetSpecifics(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetSpecifics(v)
	return _u
}

// SetNillableSpecifics sets the "specifics" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableSpecifics(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetSpecifics(*v)
	}
	return _u
}

// ClearSpecifics clears the value of the "specifics" field.
func (_u *ParsingMappingUpdateOne) ClearSpecifics() *ParsingMappingUpdateOne {
	_u.mutation.ClearSpecifics()
	return _u
}

// SetDimensions sets the "dimensions" field.
func (_u *ParsingMappingUpdateOne) SetDimensions(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetDimensions(v)
	return _u
}

// SetNillableDimensions sets the "dimensions" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableDimensions(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetDimensions(*v)
	}
	return _u
}

// ClearDimensions clears the value of the "dimensions" field.
func (_u *ParsingMappingUpdateOne) ClearDimensions() *ParsingMappingUpdateOne {
	_u.mutation.ClearDimensions()
	return _u
}

// SetUnitCost sets the "unit_cost" field.
func (_u *ParsingMappingUpdateOne) SetUnitCost(v float64) *ParsingMappingUpdateOne {
	_u.mutation.ResetUnitCost()
	_u.mutation.SetUnitCost(v)
	return _u
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableUnitCost(v *float64) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetUnitCost(*v)
	}
	return _u
}

// AddUnitCost adds value to the "unit_cost" field.
func (_u *ParsingMappingUpdateOne) AddUnitCost(v float64) *ParsingMappingUpdateOne {
	_u.mutation.AddUnitCost(v)
	return _u
}

// ClearUnitCost clears the value of the "unit_cost" field.
func (_u *ParsingMappingUpdateOne) ClearUnitCost() *ParsingMappingUpdateOne {
	_u.mutation.ClearUnitCost()
	return _u
}

// SetPriceUnit sets the "price_unit" field.
func (_u *ParsingMappingUpdateOne) SetPriceUnit(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetPriceUnit(v)
	return _u
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillablePriceUnit(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetPriceUnit(*v)
	}
	return _u
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (_u *ParsingMappingUpdateOne) ClearPriceUnit() *ParsingMappingUpdateOne {
	_u.mutation.ClearPriceUnit()
	return _u
}

// SetParserVersion sets the "parser_version" field.
func (_u *ParsingMappingUpdateOne) SetParserVersion(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetParserVersion(v)
	return _u
}

// SetNillableParserVersion sets the "parser_version" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableParserVersion(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetParserVersion(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ParsingMappingUpdateOne) SetConfidence(v float32) *ParsingMappingUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableConfidence(v *float32) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ParsingMappingUpdateOne) AddConfidence(v float32) *ParsingMappingUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ParsingMappingUpdateOne) ClearConfidence() *ParsingMappingUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRawModelOutput sets the "raw_model_output" field.
func (_u *ParsingMappingUpdateOne) SetRawModelOutput(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetRawModelOutput(v)
	return _u
}

// SetNillableRawModelOutput sets the "raw_model_output" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableRawModelOutput(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetRawModelOutput(*v)
	}
	return _u
}

// ClearRawModelOutput clears the value of the "raw_model_output" field.
func (_u *ParsingMappingUpdateOne) ClearRawModelOutput() *ParsingMappingUpdateOne {
	_u.mutation.ClearRawModelOutput()
	return _u
}

// SetValidated sets the "validated" field.
func (_u *ParsingMappingUpdateOne) SetValidated(v bool) *ParsingMappingUpdateOne {
	_u.mutation.SetValidated(v)
	return _u
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableValidated(v *bool) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetValidated(*v)
	}
	return _u
}

// SetValidatedBy sets the "validated_by" field.
func (_u *ParsingMappingUpdateOne) SetValidatedBy(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetValidatedBy(v)
	return _u
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableValidatedBy(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetValidatedBy(*v)
	}
	return _u
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (_u *ParsingMappingUpdateOne) ClearValidatedBy() *ParsingMappingUpdateOne {
	_u.mutation.ClearValidatedBy()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *ParsingMappingUpdateOne) SetValidatedAt(v time.Time) *ParsingMappingUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableValidatedAt(v *time.Time) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *ParsingMappingUpdateOne) ClearValidatedAt() *ParsingMappingUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// SetValidationNotes sets the "validation_notes" field.
func (_u *ParsingMappingUpdateOne) SetValidationNotes(v string) *ParsingMappingUpdateOne {
	_u.mutation.SetValidationNotes(v)
	return _u
}

// SetNillableValidationNotes sets the "validation_notes" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableValidationNotes(v *string) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetValidationNotes(*v)
	}
	return _u
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (_u *ParsingMappingUpdateOne) ClearValidationNotes() *ParsingMappingUpdateOne {
	_u.mutation.ClearValidationNotes()
	return _u
}

// SetItemCodeExists sets the "item_code_exists" field.
func (_u *ParsingMappingUpdateOne) SetItemCodeExists(v bool) *ParsingMappingUpdateOne {
	_u.mutation.SetItemCodeExists(v)
	return _u
}

// SetNillableItemCodeExists sets the "item_code_exists" field if the given value is not nil.
func (_u *ParsingMappingUpdateOne) SetNillableItemCodeExists(v *bool) *ParsingMappingUpdateOne {
	if v != nil {
		_u.SetItemCodeExists(*v)
	}
	return _u
}

// ClearItemCodeExists clears the value of the "item_code_exists" field.
func (_u *ParsingMappingUpdateOne) ClearItemCodeExists() *ParsingMappingUpdateOne {
	_u.mutation.ClearItemCodeExists()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ParsingMappingUpdateOne) SetUpdatedAt(v time.Time) *ParsingMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ParsingMappingMutation object of the builder.
func (_u *ParsingMappingUpdateOne) Mutation() *ParsingMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the ParsingMappingUpdate builder.
func (_u *ParsingMappingUpdateOne) Where(ps ...predicate.ParsingMapping) *ParsingMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParsingMappingUpdateOne) Select(field string, fields ...string) *ParsingMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParsingMapping entity.
func (_u *ParsingMappingUpdateOne) Save(ctx context.Context) (*ParsingMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParsingMappingUpdateOne) SaveX(ctx context.Context) *ParsingMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParsingMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParsingMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ParsingMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := parsingmapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParsingMappingUpdateOne) check() error {
	if v, ok := _u.mutation.MetalType(); ok {
		if err := parsingmapping.MetalTypeValidator(v); err != nil {
			return &ValidationError{Name: "metal_type", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.metal_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceUnit(); ok {
		if err := parsingmapping.PriceUnitValidator(v); err != nil {
			return &ValidationError{Name: "price_unit", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.price_unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ParserVersion(); ok {
		if err := parsingmapping.ParserVersionValidator(v); err != nil {
			return &ValidationError{Name: "parser_version", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.parser_version": %w`, err)}
		}
	}
	return nil
}

func (_u *ParsingMappingUpdateOne) sqlSave(ctx context.Context) (_node *ParsingMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parsingmapping.Table, parsingmapping.Columns, sqlgraph.NewFieldSpec(parsingmapping.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParsingMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parsingmapping.FieldID)
		for _, f := range fields {
			if !parsingmapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parsingmapping.FieldID {
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
	if value, ok := _u.mutation.InputSnapshot(); ok {
		_spec.SetField(parsingmapping.FieldInputSnapshot, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputSnapshot(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parsingmapping.FieldInputSnapshot, value)
		})
	}
	if value, ok := _u.mutation.ItemCode(); ok {
		_spec.SetField(parsingmapping.FieldItemCode, field.TypeString, value)
	}
	if _u.mutation.ItemCodeCleared() {
		_spec.ClearField(parsingmapping.FieldItemCode, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(parsingmapping.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(parsingmapping.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.MetalType(); ok {
		_spec.SetField(parsingmapping.FieldMetalType, field.TypeString, value)
	}
	if _u.mutation.MetalTypeCleared() {
		_spec.ClearField(parsingmapping.FieldMetalType, field.TypeString)
	}
	if value, ok := _u.mutation.Alloy(); ok {
		_spec.SetField(parsingmapping.FieldAlloy, field.TypeString, value)
	}
	if _u.mutation.AlloyCleared() {
		_spec.ClearField(parsingmapping.FieldAlloy, field.TypeString)
	}
	if value, ok := _u.mutation.Specifics(); ok {
		_spec.SetField(parsingmapping.FieldSpecifics, field.TypeString, value)
	}
	if _u.mutation.SpecificsCleared() {
		_spec.ClearField(parsingmapping.FieldSpecifics, field.TypeString)
	}
	if value, ok := _u.mutation.Dimensions(); ok {
		_spec.SetField(parsingmapping.FieldDimensions, field.TypeString, value)
	}
	if _u.mutation.DimensionsCleared() {
		_spec.ClearField(parsingmapping.FieldDimensions, field.TypeString)
	}
	if value, ok := _u.mutation.UnitCost(); ok {
		_spec.SetField(parsingmapping.FieldUnitCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitCost(); ok {
		_spec.AddField(parsingmapping.FieldUnitCost, field.TypeFloat64, value)
	}
	if _u.mutation.UnitCostCleared() {
		_spec.ClearField(parsingmapping.FieldUnitCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PriceUnit(); ok {
		_spec.SetField(parsingmapping.FieldPriceUnit, field.TypeString, value)
	}
	if _u.mutation.PriceUnitCleared() {
		_spec.ClearField(parsingmapping.FieldPriceUnit, field.TypeString)
	}
	if value, ok := _u.mutation.ParserVersion(); ok {
		_spec.SetField(parsingmapping.FieldParserVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(parsingmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(parsingmapping.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(parsingmapping.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.RawModelOutput(); ok {
		_spec.SetField(parsingmapping.FieldRawModelOutput, field.TypeString, value)
	}
	if _u.mutation.RawModelOutputCleared() {
		_spec.ClearField(parsingmapping.FieldRawModelOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Validated(); ok {
		_spec.SetField(parsingmapping.FieldValidated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidatedBy(); ok {
		_spec.SetField(parsingmapping.FieldValidatedBy, field.TypeString, value)
	}
	if _u.mutation.ValidatedByCleared() {
		_spec.ClearField(parsingmapping.FieldValidatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(parsingmapping.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(parsingmapping.FieldValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ValidationNotes(); ok {
		_spec.SetField(parsingmapping.FieldValidationNotes, field.TypeString, value)
	}
	if _u.mutation.ValidationNotesCleared() {
		_spec.ClearField(parsingmapping.FieldValidationNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ItemCodeExists(); ok {
		_spec.SetField(parsingmapping.FieldItemCodeExists, field.TypeBool, value)
	}
	if _u.mutation.ItemCodeExistsCleared() {
		_spec.ClearField(parsingmapping.FieldItemCodeExists, field.TypeBool)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(parsingmapping.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ParsingMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parsingmapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
