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
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/google/uuid"
)

// ParsingMappingCreate is the builder for creating a ParsingMapping entity.
type ParsingMappingCreate struct {
	config
	mutation *ParsingMappingMutation
	hooks    []Hook
}

// SetMappingKey sets the "mapping_key" field.
func (_c *ParsingMappingCreate) SetMappingKey(v string) *ParsingMappingCreate {
	_c.mutation.SetMappingKey(v)
	return _c
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_c *ParsingMappingCreate) SetInputSnapshot(v json.RawMessage) *ParsingMappingCreate {
	_c.mutation.SetInputSnapshot(v)
	return _c
}

// SetItemCode sets the "item_code" field.
func (_c *ParsingMappingCreate) SetItemCode(v string) *ParsingMappingCreate {
	_c.mutation.SetItemCode(v)
	return _c
}

// SetNillableItemCode sets the "item_code" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableItemCode(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetItemCode(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ParsingMappingCreate) SetDescription(v string) *ParsingMappingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableDescription(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMetalType sets the "metal_type" field.
func (_c *ParsingMappingCreate) SetMetalType(v string) *ParsingMappingCreate {
	_c.mutation.SetMetalType(v)
	return _c
}

// SetNillableMetalType sets the "metal_type" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableMetalType(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetMetalType(*v)
	}
	return _c
}

// SetAlloy sets the "alloy" field.
func (_c *ParsingMappingCreate) SetAlloy(v string) *ParsingMappingCreate {
	_c.mutation.SetAlloy(v)
	return _c
}

// SetNillableAlloy sets the "alloy" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableAlloy(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetAlloy(*v)
	}
	return _c
}

// SetSpecifics sets the "specifics" field.
func (_c *ParsingMappingCreate) SetSpecifics(v string) *ParsingMappingCreate {
	_c.mutation.SetSpecifics(v)
	return _c
}

// SetNillableSpecifics sets the "specifics" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableSpecifics(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetSpecifics(*v)
	}
	return _c
}

// SetDimensions sets the "dimensions" field.
func (_c *ParsingMappingCreate) SetDimensions(v string) *ParsingMappingCreate {
	_c.mutation.SetDimensions(v)
	return _c
}

// SetNillableDimensions sets the "dimensions" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableDimensions(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetDimensions(*v)
	}
	return _c
}

// SetUnitCost sets the "unit_cost" field.
func (_c *ParsingMappingCreate) SetUnitCost(v float64) *ParsingMappingCreate {
	_c.mutation.SetUnitCost(v)
	return _c
}

// SetNillableUnitCost sets the "unit_cost" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableUnitCost(v *float64) *ParsingMappingCreate {
	if v != nil {
		_c.SetUnitCost(*v)
	}
	return _c
}

// SetPriceUnit sets the "price_unit" field.
func (_c *ParsingMappingCreate) SetPriceUnit(v string) *ParsingMappingCreate {
	_c.mutation.SetPriceUnit(v)
	return _c
}

// SetNillablePriceUnit sets the "price_unit" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillablePriceUnit(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetPriceUnit(*v)
	}
	return _c
}

// SetParserVersion sets the "parser_version" field.
func (_c *ParsingMappingCreate) SetParserVersion(v string) *ParsingMappingCreate {
	_c.mutation.SetParserVersion(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ParsingMappingCreate) SetConfidence(v float32) *ParsingMappingCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableConfidence(v *float32) *ParsingMappingCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRawModelOutput sets the "raw_model_output" field.
func (_c *ParsingMappingCreate) SetRawModelOutput(v string) *ParsingMappingCreate {
	_c.mutation.SetRawModelOutput(v)
	return _c
}

// SetNillableRawModelOutput sets the "raw_model_output" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableRawModelOutput(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetRawModelOutput(*v)
	}
	return _c
}

// SetValidated sets the "validated" field.
func (_c *ParsingMappingCreate) SetValidated(v bool) *ParsingMappingCreate {
	_c.mutation.SetValidated(v)
	return _c
}

// SetNillableValidated sets the "validated" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableValidated(v *bool) *ParsingMappingCreate {
	if v != nil {
		_c.SetValidated(*v)
	}
	return _c
}

// SetValidatedBy sets the "validated_by" field.
func (_c *ParsingMappingCreate) SetValidatedBy(v string) *ParsingMappingCreate {
	_c.mutation.SetValidatedBy(v)
	return _c
}

// SetNillableValidatedBy sets the "validated_by" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableValidatedBy(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetValidatedBy(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *ParsingMappingCreate) SetValidatedAt(v time.Time) *ParsingMappingCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableValidatedAt(v *time.Time) *ParsingMappingCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetValidationNotes sets the "validation_notes" field.
func (_c *ParsingMappingCreate) SetValidationNotes(v string) *ParsingMappingCreate {
	_c.mutation.SetValidationNotes(v)
	return _c
}

// SetNillableValidationNotes sets the "validation_notes" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableValidationNotes(v *string) *ParsingMappingCreate {
	if v != nil {
		_c.SetValidationNotes(*v)
	}
	return _c
}

// SetItemCodeExists sets the "item_code_exists" field.
func (_c *ParsingMappingCreate) SetItemCodeExists(v bool) *ParsingMappingCreate {
	_c.mutation.SetItemCodeExists(v)
	return _c
}

// SetNillableItemCodeExists sets the "item_code_exists" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableItemCodeExists(v *bool) *ParsingMappingCreate {
	if v != nil {
		_c.SetItemCodeExists(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParsingMappingCreate) SetCreatedAt(v time.Time) *ParsingMappingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableCreatedAt(v *time.Time) *ParsingMappingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ParsingMappingCreate) SetUpdatedAt(v time.Time) *ParsingMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableUpdatedAt(v *time.Time) *ParsingMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParsingMappingCreate) SetID(v uuid.UUID) *ParsingMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParsingMappingCreate) SetNillableID(v *uuid.UUID) *ParsingMappingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ParsingMappingMutation object of the builder.
func (_c *ParsingMappingCreate) Mutation() *ParsingMappingMutation {
	return _c.mutation
}

// Save creates the ParsingMapping in the database.
func (_c *ParsingMappingCreate) Save(ctx context.Context) (*ParsingMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParsingMappingCreate) SaveX(ctx context.Context) *ParsingMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParsingMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParsingMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParsingMappingCreate) defaults() {
	if _, ok := _c.mutation.Validated(); !ok {
		v := parsingmapping.DefaultValidated
		_c.mutation.SetValidated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := parsingmapping.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := parsingmapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parsingmapping.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParsingMappingCreate) check() error {
	if _, ok := _c.mutation.MappingKey(); !ok {
		return &ValidationError{Name: "mapping_key", err: errors.New(`ent: missing required field "ParsingMapping.mapping_key"`)}
	}
	if v, ok := _c.mutation.MappingKey(); ok {
		if err := parsingmapping.MappingKeyValidator(v); err != nil {
			return &ValidationError{Name: "mapping_key", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.mapping_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputSnapshot(); !ok {
		return &ValidationError{Name: "input_snapshot", err: errors.New(`ent: missing required field "ParsingMapping.input_snapshot"`)}
	}
	if v, ok := _c.mutation.MetalType(); ok {
		if err := parsingmapping.MetalTypeValidator(v); err != nil {
			return &ValidationError{Name: "metal_type", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.metal_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PriceUnit(); ok {
		if err := parsingmapping.PriceUnitValidator(v); err != nil {
			return &ValidationError{Name: "price_unit", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.price_unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParserVersion(); !ok {
		return &ValidationError{Name: "parser_version", err: errors.New(`ent: missing required field "ParsingMapping.parser_version"`)}
	}
	if v, ok := _c.mutation.ParserVersion(); ok {
		if err := parsingmapping.ParserVersionValidator(v); err != nil {
			return &ValidationError{Name: "parser_version", err: fmt.Errorf(`ent: validator failed for field "ParsingMapping.parser_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Validated(); !ok {
		return &ValidationError{Name: "validated", err: errors.New(`ent: missing required field "ParsingMapping.validated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ParsingMapping.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ParsingMapping.updated_at"`)}
	}
	return nil
}

func (_c *ParsingMappingCreate) sqlSave(ctx context.Context) (*ParsingMapping, error) {
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

func (_c *ParsingMappingCreate) createSpec() (*ParsingMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &ParsingMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parsingmapping.Table, sqlgraph.NewFieldSpec(parsingmapping.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MappingKey(); ok {
		_spec.SetField(parsingmapping.FieldMappingKey, field.TypeString, value)
		_node.MappingKey = value
	}
	if value, ok := _c.mutation.InputSnapshot(); ok {
		_spec.SetField(parsingmapping.FieldInputSnapshot, field.TypeJSON, value)
		_node.InputSnapshot = value
	}
	if value, ok := _c.mutation.ItemCode(); ok {
		_spec.SetField(parsingmapping.FieldItemCode, field.TypeString, value)
		_node.ItemCode = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(parsingmapping.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.MetalType(); ok {
		_spec.SetField(parsingmapping.FieldMetalType, field.TypeString, value)
		_node.MetalType = &value
	}
	if value, ok := _c.mutation.Alloy(); ok {
		_spec.SetField(parsingmapping.FieldAlloy, field.TypeString, value)
		_node.Alloy = &value
	}
	if value, ok := _c.mutation.Specifics(); ok {
		_spec.SetField(parsingmapping.FieldSpecifics, field.TypeString, value)
		_node.Specifics = &value
	}
	if value, ok := _c.mutation.Dimensions(); ok {
		_spec.SetField(parsingmapping.FieldDimensions, field.TypeString, value)
		_node.Dimensions = &value
	}
	if value, ok := _c.mutation.UnitCost(); ok {
		_spec.SetField(parsingmapping.FieldUnitCost, field.TypeFloat64, value)
		_node.UnitCost = &value
	}
	if value, ok := _c.mutation.PriceUnit(); ok {
		_spec.SetField(parsingmapping.FieldPriceUnit, field.TypeString, value)
		_node.PriceUnit = &value
	}
	if value, ok := _c.mutation.ParserVersion(); ok {
		_spec.SetField(parsingmapping.FieldParserVersion, field.TypeString, value)
		_node.ParserVersion = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(parsingmapping.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.RawModelOutput(); ok {
		_spec.SetField(parsingmapping.FieldRawModelOutput, field.TypeString, value)
		_node.RawModelOutput = value
	}
	if value, ok := _c.mutation.Validated(); ok {
		_spec.SetField(parsingmapping.FieldValidated, field.TypeBool, value)
		_node.Validated = value
	}
	if value, ok := _c.mutation.ValidatedBy(); ok {
		_spec.SetField(parsingmapping.FieldValidatedBy, field.TypeString, value)
		_node.ValidatedBy = &value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(parsingmapping.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.ValidationNotes(); ok {
		_spec.SetField(parsingmapping.FieldValidationNotes, field.TypeString, value)
		_node.ValidationNotes = &value
	}
	if value, ok := _c.mutation.ItemCodeExists(); ok {
		_spec.SetField(parsingmapping.FieldItemCodeExists, field.TypeBool, value)
		_node.ItemCodeExists = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(parsingmapping.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(parsingmapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ParsingMappingCreateBulk is the builder for creating many ParsingMapping entities in bulk.
type ParsingMappingCreateBulk struct {
	config
	err      error
	builders []*ParsingMappingCreate
}

// Save creates the ParsingMapping entities in the database.
func (_c *ParsingMappingCreateBulk) Save(ctx context.Context) ([]*ParsingMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParsingMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParsingMappingMutation)
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
func (_c *ParsingMappingCreateBulk) SaveX(ctx context.Context) []*ParsingMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParsingMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParsingMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
