// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/fabtrack/steelparse/gen/ent/predicate"
	"github.com/fabtrack/steelparse/gen/ent/stockitem"
	"github.com/fabtrack/steelparse/gen/ent/supplierproduct"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeParsingMapping  = "ParsingMapping"
	TypeStockItem       = "StockItem"
	TypeSupplierProduct = "SupplierProduct"
)

// ParsingMappingMutation represents an operation that mutates the ParsingMapping nodes in the graph.
type ParsingMappingMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	mapping_key          *string
	input_snapshot       *json.RawMessage
	appendinput_snapshot json.RawMessage
	item_code            *string
	description          *string
	metal_type           *string
	alloy                *string
	specifics            *string
	dimensions           *string
	unit_cost            *float64
	addunit_cost         *float64
	price_unit           *string
	parser_version       *string
	confidence           *float32
	addconfidence        *float32
	raw_model_output     *string
	validated            *bool
	validated_by         *string
	validated_at         *time.Time
	validation_notes     *string
	item_code_exists     *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ParsingMapping, error)
	predicates           []predicate.ParsingMapping
}

var _ ent.Mutation = (*ParsingMappingMutation)(nil)

// parsingmappingOption allows management of the mutation configuration using functional options.
type parsingmappingOption func(*ParsingMappingMutation)

// newParsingMappingMutation creates new mutation for the ParsingMapping entity.
func newParsingMappingMutation(c config, op Op, opts ...parsingmappingOption) *ParsingMappingMutation {
	m := &ParsingMappingMutation{
		config:        c,
		op:            op,
		typ:           TypeParsingMapping,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParsingMappingID sets the ID field of the mutation.
func withParsingMappingID(id uuid.UUID) parsingmappingOption {
	return func(m *ParsingMappingMutation) {
		var (
			err   error
			once  sync.Once
			value *ParsingMapping
		)
		m.oldValue = func(ctx context.Context) (*ParsingMapping, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParsingMapping.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParsingMapping sets the old ParsingMapping of the mutation.
func withParsingMapping(node *ParsingMapping) parsingmappingOption {
	return func(m *ParsingMappingMutation) {
		m.oldValue = func(context.Context) (*ParsingMapping, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParsingMappingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParsingMappingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParsingMapping entities.
func (m *ParsingMappingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParsingMappingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParsingMappingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParsingMapping.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMappingKey sets the "mapping_key" field.
func (m *ParsingMappingMutation) SetMappingKey(s string) {
	m.mapping_key = &s
}

// MappingKey returns the value of the "mapping_key" field in the mutation.
func (m *ParsingMappingMutation) MappingKey() (r string, exists bool) {
	v := m.mapping_key
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingKey returns the old "mapping_key" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldMappingKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingKey: %w", err)
	}
	return oldValue.MappingKey, nil
}

// ResetMappingKey resets all changes to the "mapping_key" field.
func (m *ParsingMappingMutation) ResetMappingKey() {
	m.mapping_key = nil
}

// SetInputSnapshot sets the "input_snapshot" field.
func (m *ParsingMappingMutation) SetInputSnapshot(jm json.RawMessage) {
	m.input_snapshot = &jm
	m.appendinput_snapshot = nil
}

// InputSnapshot returns the value of the "input_snapshot" field in the mutation.
func (m *ParsingMappingMutation) InputSnapshot() (r json.RawMessage, exists bool) {
	v := m.input_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldInputSnapshot returns the old "input_snapshot" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldInputSnapshot(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputSnapshot: %w", err)
	}
	return oldValue.InputSnapshot, nil
}

// AppendInputSnapshot adds jm to the "input_snapshot" field.
func (m *ParsingMappingMutation) AppendInputSnapshot(jm json.RawMessage) {
	m.appendinput_snapshot = append(m.appendinput_snapshot, jm...)
}

// AppendedInputSnapshot returns the list of values that were appended to the "input_snapshot" field in this mutation.
func (m *ParsingMappingMutation) AppendedInputSnapshot() (json.RawMessage, bool) {
	if len(m.appendinput_snapshot) == 0 {
		return nil, false
	}
	return m.appendinput_snapshot, true
}

// ResetInputSnapshot resets all changes to the "input_snapshot" field.
func (m *ParsingMappingMutation) ResetInputSnapshot() {
	m.input_snapshot = nil
	m.appendinput_snapshot = nil
}

// SetItemCode sets the "item_code" field.
func (m *ParsingMappingMutation) SetItemCode(s string) {
	m.item_code = &s
}

// ItemCode returns the value of the "item_code" field in the mutation.
func (m *ParsingMappingMutation) ItemCode() (r string, exists bool) {
	v := m.item_code
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCode returns the old "item_code" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldItemCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCode: %w", err)
	}
	return oldValue.ItemCode, nil
}

// ClearItemCode clears the value of the "item_code" field.
func (m *ParsingMappingMutation) ClearItemCode() {
	m.item_code = nil
	m.clearedFields[parsingmapping.FieldItemCode] = struct{}{}
}

// ItemCodeCleared returns if the "item_code" field was cleared in this mutation.
func (m *ParsingMappingMutation) ItemCodeCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldItemCode]
	return ok
}

// ResetItemCode resets all changes to the "item_code" field.
func (m *ParsingMappingMutation) ResetItemCode() {
	m.item_code = nil
	delete(m.clearedFields, parsingmapping.FieldItemCode)
}

// SetDescription sets the "description" field.
func (m *ParsingMappingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ParsingMappingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ParsingMappingMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[parsingmapping.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ParsingMappingMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ParsingMappingMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, parsingmapping.FieldDescription)
}

// SetMetalType sets the "metal_type" field.
func (m *ParsingMappingMutation) SetMetalType(s string) {
	m.metal_type = &s
}

// MetalType returns the value of the "metal_type" field in the mutation.
func (m *ParsingMappingMutation) MetalType() (r string, exists bool) {
	v := m.metal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMetalType returns the old "metal_type" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldMetalType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetalType: %w", err)
	}
	return oldValue.MetalType, nil
}

// ClearMetalType clears the value of the "metal_type" field.
func (m *ParsingMappingMutation) ClearMetalType() {
	m.metal_type = nil
	m.clearedFields[parsingmapping.FieldMetalType] = struct{}{}
}

// MetalTypeCleared returns if the "metal_type" field was cleared in this mutation.
func (m *ParsingMappingMutation) MetalTypeCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldMetalType]
	return ok
}

// ResetMetalType resets all changes to the "metal_type" field.
func (m *ParsingMappingMutation) ResetMetalType() {
	m.metal_type = nil
	delete(m.clearedFields, parsingmapping.FieldMetalType)
}

// SetAlloy sets the "alloy" field.
func (m *ParsingMappingMutation) SetAlloy(s string) {
	m.alloy = &s
}

// Alloy returns the value of the "alloy" field in the mutation.
func (m *ParsingMappingMutation) Alloy() (r string, exists bool) {
	v := m.alloy
	if v == nil {
		return
	}
	return *v, true
}

// OldAlloy returns the old "alloy" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldAlloy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlloy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlloy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlloy: %w", err)
	}
	return oldValue.Alloy, nil
}

// ClearAlloy clears the value of the "alloy" field.
func (m *ParsingMappingMutation) ClearAlloy() {
	m.alloy = nil
	m.clearedFields[parsingmapping.FieldAlloy] = struct{}{}
}

// AlloyCleared returns if the "alloy" field was cleared in this mutation.
func (m *ParsingMappingMutation) AlloyCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldAlloy]
	return ok
}

// ResetAlloy resets all changes to the "alloy" field.
func (m *ParsingMappingMutation) ResetAlloy() {
	m.alloy = nil
	delete(m.clearedFields, parsingmapping.FieldAlloy)
}

// SetSpecifics sets the "specifics" field.
func (m *ParsingMappingMutation) SetSpecifics(s string) {
	m.specifics = &s
}

// Specifics returns the value of the "specifics" field in the mutation.
func (m *ParsingMappingMutation) Specifics() (r string, exists bool) {
	v := m.specifics
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecifics returns the old "specifics" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldSpecifics(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecifics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecifics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecifics: %w", err)
	}
	return oldValue.Specifics, nil
}

// ClearSpecifics clears the value of the "specifics" field.
func (m *ParsingMappingMutation) ClearSpecifics() {
	m.specifics = nil
	m.clearedFields[parsingmapping.FieldSpecifics] = struct{}{}
}

// SpecificsCleared returns if the "specifics" field was cleared in this mutation.
func (m *ParsingMappingMutation) SpecificsCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldSpecifics]
	return ok
}

// ResetSpecifics resets all changes to the "specifics" field.
func (m *ParsingMappingMutation) ResetSpecifics() {
	m.specifics = nil
	delete(m.clearedFields, parsingmapping.FieldSpecifics)
}

// SetDimensions sets the "dimensions" field.
func (m *ParsingMappingMutation) SetDimensions(s string) {
	m.dimensions = &s
}

// Dimensions returns the value of the "dimensions" field in the mutation.
func (m *ParsingMappingMutation) Dimensions() (r string, exists bool) {
	v := m.dimensions
	if v == nil {
		return
	}
	return *v, true
}

// OldDimensions returns the old "dimensions" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldDimensions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDimensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDimensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDimensions: %w", err)
	}
	return oldValue.Dimensions, nil
}

// ClearDimensions clears the value of the "dimensions" field.
func (m *ParsingMappingMutation) ClearDimensions() {
	m.dimensions = nil
	m.clearedFields[parsingmapping.FieldDimensions] = struct{}{}
}

// DimensionsCleared returns if the "dimensions" field was cleared in this mutation.
func (m *ParsingMappingMutation) DimensionsCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldDimensions]
	return ok
}

// ResetDimensions resets all changes to the "dimensions" field.
func (m *ParsingMappingMutation) ResetDimensions() {
	m.dimensions = nil
	delete(m.clearedFields, parsingmapping.FieldDimensions)
}

// SetUnitCost sets the "unit_cost" field.
func (m *ParsingMappingMutation) SetUnitCost(f float64) {
	m.unit_cost = &f
	m.addunit_cost = nil
}

// UnitCost returns the value of the "unit_cost" field in the mutation.
func (m *ParsingMappingMutation) UnitCost() (r float64, exists bool) {
	v := m.unit_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitCost returns the old "unit_cost" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldUnitCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitCost: %w", err)
	}
	return oldValue.UnitCost, nil
}

// AddUnitCost adds f to the "unit_cost" field.
func (m *ParsingMappingMutation) AddUnitCost(f float64) {
	if m.addunit_cost != nil {
		*m.addunit_cost += f
	} else {
		m.addunit_cost = &f
	}
}

// AddedUnitCost returns the value that was added to the "unit_cost" field in this mutation.
func (m *ParsingMappingMutation) AddedUnitCost() (r float64, exists bool) {
	v := m.addunit_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitCost clears the value of the "unit_cost" field.
func (m *ParsingMappingMutation) ClearUnitCost() {
	m.unit_cost = nil
	m.addunit_cost = nil
	m.clearedFields[parsingmapping.FieldUnitCost] = struct{}{}
}

// UnitCostCleared returns if the "unit_cost" field was cleared in this mutation.
func (m *ParsingMappingMutation) UnitCostCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldUnitCost]
	return ok
}

// ResetUnitCost resets all changes to the "unit_cost" field.
func (m *ParsingMappingMutation) ResetUnitCost() {
	m.unit_cost = nil
	m.addunit_cost = nil
	delete(m.clearedFields, parsingmapping.FieldUnitCost)
}

// SetPriceUnit sets the "price_unit" field.
func (m *ParsingMappingMutation) SetPriceUnit(s string) {
	m.price_unit = &s
}

// PriceUnit returns the value of the "price_unit" field in the mutation.
func (m *ParsingMappingMutation) PriceUnit() (r string, exists bool) {
	v := m.price_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceUnit returns the old "price_unit" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldPriceUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceUnit: %w", err)
	}
	return oldValue.PriceUnit, nil
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (m *ParsingMappingMutation) ClearPriceUnit() {
	m.price_unit = nil
	m.clearedFields[parsingmapping.FieldPriceUnit] = struct{}{}
}

// PriceUnitCleared returns if the "price_unit" field was cleared in this mutation.
func (m *ParsingMappingMutation) PriceUnitCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldPriceUnit]
	return ok
}

// ResetPriceUnit resets all changes to the "price_unit" field.
func (m *ParsingMappingMutation) ResetPriceUnit() {
	m.price_unit = nil
	delete(m.clearedFields, parsingmapping.FieldPriceUnit)
}

// SetParserVersion sets the "parser_version" field.
func (m *ParsingMappingMutation) SetParserVersion(s string) {
	m.parser_version = &s
}

// ParserVersion returns the value of the "parser_version" field in the mutation.
func (m *ParsingMappingMutation) ParserVersion() (r string, exists bool) {
	v := m.parser_version
	if v == nil {
		return
	}
	return *v, true
}

// OldParserVersion returns the old "parser_version" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldParserVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParserVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParserVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParserVersion: %w", err)
	}
	return oldValue.ParserVersion, nil
}

// ResetParserVersion resets all changes to the "parser_version" field.
func (m *ParsingMappingMutation) ResetParserVersion() {
	m.parser_version = nil
}

// SetConfidence sets the "confidence" field.
func (m *ParsingMappingMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ParsingMappingMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ParsingMappingMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ParsingMappingMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ParsingMappingMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[parsingmapping.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ParsingMappingMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ParsingMappingMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, parsingmapping.FieldConfidence)
}

// SetRawModelOutput sets the "raw_model_output" field.
func (m *ParsingMappingMutation) SetRawModelOutput(s string) {
	m.raw_model_output = &s
}

// RawModelOutput returns the value of the "raw_model_output" field in the mutation.
func (m *ParsingMappingMutation) RawModelOutput() (r string, exists bool) {
	v := m.raw_model_output
	if v == nil {
		return
	}
	return *v, true
}

// OldRawModelOutput returns the old "raw_model_output" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldRawModelOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawModelOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawModelOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawModelOutput: %w", err)
	}
	return oldValue.RawModelOutput, nil
}

// ClearRawModelOutput clears the value of the "raw_model_output" field.
func (m *ParsingMappingMutation) ClearRawModelOutput() {
	m.raw_model_output = nil
	m.clearedFields[parsingmapping.FieldRawModelOutput] = struct{}{}
}

// RawModelOutputCleared returns if the "raw_model_output" field was cleared in this mutation.
func (m *ParsingMappingMutation) RawModelOutputCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldRawModelOutput]
	return ok
}

// ResetRawModelOutput resets all changes to the "raw_model_output" field.
func (m *ParsingMappingMutation) ResetRawModelOutput() {
	m.raw_model_output = nil
	delete(m.clearedFields, parsingmapping.FieldRawModelOutput)
}

// SetValidated sets the "validated" field.
func (m *ParsingMappingMutation) SetValidated(b bool) {
	m.validated = &b
}

// Validated returns the value of the "validated" field in the mutation.
func (m *ParsingMappingMutation) Validated() (r bool, exists bool) {
	v := m.validated
	if v == nil {
		return
	}
	return *v, true
}

// OldValidated returns the old "validated" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldValidated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidated: %w", err)
	}
	return oldValue.Validated, nil
}

// ResetValidated resets all changes to the "validated" field.
func (m *ParsingMappingMutation) ResetValidated() {
	m.validated = nil
}

// SetValidatedBy sets the "validated_by" field.
func (m *ParsingMappingMutation) SetValidatedBy(s string) {
	m.validated_by = &s
}

// ValidatedBy returns the value of the "validated_by" field in the mutation.
func (m *ParsingMappingMutation) ValidatedBy() (r string, exists bool) {
	v := m.validated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedBy returns the old "validated_by" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldValidatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedBy: %w", err)
	}
	return oldValue.ValidatedBy, nil
}

// ClearValidatedBy clears the value of the "validated_by" field.
func (m *ParsingMappingMutation) ClearValidatedBy() {
	m.validated_by = nil
	m.clearedFields[parsingmapping.FieldValidatedBy] = struct{}{}
}

// ValidatedByCleared returns if the "validated_by" field was cleared in this mutation.
func (m *ParsingMappingMutation) ValidatedByCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldValidatedBy]
	return ok
}

// ResetValidatedBy resets all changes to the "validated_by" field.
func (m *ParsingMappingMutation) ResetValidatedBy() {
	m.validated_by = nil
	delete(m.clearedFields, parsingmapping.FieldValidatedBy)
}

// SetValidatedAt sets the "validated_at" field.
func (m *ParsingMappingMutation) SetValidatedAt(t time.Time) {
	m.validated_at = &t
}

// ValidatedAt returns the value of the "validated_at" field in the mutation.
func (m *ParsingMappingMutation) ValidatedAt() (r time.Time, exists bool) {
	v := m.validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldValidatedAt returns the old "validated_at" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidatedAt: %w", err)
	}
	return oldValue.ValidatedAt, nil
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (m *ParsingMappingMutation) ClearValidatedAt() {
	m.validated_at = nil
	m.clearedFields[parsingmapping.FieldValidatedAt] = struct{}{}
}

// ValidatedAtCleared returns if the "validated_at" field was cleared in this mutation.
func (m *ParsingMappingMutation) ValidatedAtCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldValidatedAt]
	return ok
}

// ResetValidatedAt resets all changes to the "validated_at" field.
func (m *ParsingMappingMutation) ResetValidatedAt() {
	m.validated_at = nil
	delete(m.clearedFields, parsingmapping.FieldValidatedAt)
}

// SetValidationNotes sets the "validation_notes" field.
func (m *ParsingMappingMutation) SetValidationNotes(s string) {
	m.validation_notes = &s
}

// ValidationNotes returns the value of the "validation_notes" field in the mutation.
func (m *ParsingMappingMutation) ValidationNotes() (r string, exists bool) {
	v := m.validation_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationNotes returns the old "validation_notes" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldValidationNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationNotes: %w", err)
	}
	return oldValue.ValidationNotes, nil
}

// ClearValidationNotes clears the value of the "validation_notes" field.
func (m *ParsingMappingMutation) ClearValidationNotes() {
	m.validation_notes = nil
	m.clearedFields[parsingmapping.FieldValidationNotes] = struct{}{}
}

// ValidationNotesCleared returns if the "validation_notes" field was cleared in this mutation.
func (m *ParsingMappingMutation) ValidationNotesCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldValidationNotes]
	return ok
}

// ResetValidationNotes resets all changes to the "validation_notes" field.
func (m *ParsingMappingMutation) ResetValidationNotes() {
	m.validation_notes = nil
	delete(m.clearedFields, parsingmapping.FieldValidationNotes)
}

// SetItemCodeExists sets the "item_code_exists" field.
func (m *ParsingMappingMutation) SetItemCodeExists(b bool) {
	m.item_code_exists = &b
}

// ItemCodeExists returns the value of the "item_code_exists" field in the mutation.
func (m *ParsingMappingMutation) ItemCodeExists() (r bool, exists bool) {
	v := m.item_code_exists
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCodeExists returns the old "item_code_exists" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldItemCodeExists(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCodeExists is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCodeExists requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCodeExists: %w", err)
	}
	return oldValue.ItemCodeExists, nil
}

// ClearItemCodeExists clears the value of the "item_code_exists" field.
func (m *ParsingMappingMutation) ClearItemCodeExists() {
	m.item_code_exists = nil
	m.clearedFields[parsingmapping.FieldItemCodeExists] = struct{}{}
}

// ItemCodeExistsCleared returns if the "item_code_exists" field was cleared in this mutation.
func (m *ParsingMappingMutation) ItemCodeExistsCleared() bool {
	_, ok := m.clearedFields[parsingmapping.FieldItemCodeExists]
	return ok
}

// ResetItemCodeExists resets all changes to the "item_code_exists" field.
func (m *ParsingMappingMutation) ResetItemCodeExists() {
	m.item_code_exists = nil
	delete(m.clearedFields, parsingmapping.FieldItemCodeExists)
}

// SetCreatedAt sets the "created_at" field.
func (m *ParsingMappingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParsingMappingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParsingMappingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ParsingMappingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ParsingMappingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ParsingMapping entity.
// If the ParsingMapping object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParsingMappingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ParsingMappingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ParsingMappingMutation builder.
func (m *ParsingMappingMutation) Where(ps ...predicate.ParsingMapping) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParsingMappingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParsingMappingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParsingMapping, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParsingMappingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParsingMappingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParsingMapping).
func (m *ParsingMappingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParsingMappingMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.mapping_key != nil {
		fields = append(fields, parsingmapping.FieldMappingKey)
	}
	if m.input_snapshot != nil {
		fields = append(fields, parsingmapping.FieldInputSnapshot)
	}
	if m.item_code != nil {
		fields = append(fields, parsingmapping.FieldItemCode)
	}
	if m.description != nil {
		fields = append(fields, parsingmapping.FieldDescription)
	}
	if m.metal_type != nil {
		fields = append(fields, parsingmapping.FieldMetalType)
	}
	if m.alloy != nil {
		fields = append(fields, parsingmapping.FieldAlloy)
	}
	if m.specifics != nil {
		fields = append(fields, parsingmapping.FieldSpecifics)
	}
	if m.dimensions != nil {
		fields = append(fields, parsingmapping.FieldDimensions)
	}
	if m.unit_cost != nil {
		fields = append(fields, parsingmapping.FieldUnitCost)
	}
	if m.price_unit != nil {
		fields = append(fields, parsingmapping.FieldPriceUnit)
	}
	if m.parser_version != nil {
		fields = append(fields, parsingmapping.FieldParserVersion)
	}
	if m.confidence != nil {
		fields = append(fields, parsingmapping.FieldConfidence)
	}
	if m.raw_model_output != nil {
		fields = append(fields, parsingmapping.FieldRawModelOutput)
	}
	if m.validated != nil {
		fields = append(fields, parsingmapping.FieldValidated)
	}
	if m.validated_by != nil {
		fields = append(fields, parsingmapping.FieldValidatedBy)
	}
	if m.validated_at != nil {
		fields = append(fields, parsingmapping.FieldValidatedAt)
	}
	if m.validation_notes != nil {
		fields = append(fields, parsingmapping.FieldValidationNotes)
	}
	if m.item_code_exists != nil {
		fields = append(fields, parsingmapping.FieldItemCodeExists)
	}
	if m.created_at != nil {
		fields = append(fields, parsingmapping.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, parsingmapping.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParsingMappingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parsingmapping.FieldMappingKey:
		return m.MappingKey()
	case parsingmapping.FieldInputSnapshot:
		return m.InputSnapshot()
	case parsingmapping.FieldItemCode:
		return m.ItemCode()
	case parsingmapping.FieldDescription:
		return m.Description()
	case parsingmapping.FieldMetalType:
		return m.MetalType()
	case parsingmapping.FieldAlloy:
		return m.Alloy()
	case parsingmapping.FieldSpecifics:
		return m.Specifics()
	case parsingmapping.FieldDimensions:
		return m.Dimensions()
	case parsingmapping.FieldUnitCost:
		return m.UnitCost()
	case parsingmapping.FieldPriceUnit:
		return m.PriceUnit()
	case parsingmapping.FieldParserVersion:
		return m.ParserVersion()
	case parsingmapping.FieldConfidence:
		return m.Confidence()
	case parsingmapping.FieldRawModelOutput:
		return m.RawModelOutput()
	case parsingmapping.FieldValidated:
		return m.Validated()
	case parsingmapping.FieldValidatedBy:
		return m.ValidatedBy()
	case parsingmapping.FieldValidatedAt:
		return m.ValidatedAt()
	case parsingmapping.FieldValidationNotes:
		return m.ValidationNotes()
	case parsingmapping.FieldItemCodeExists:
		return m.ItemCodeExists()
	case parsingmapping.FieldCreatedAt:
		return m.CreatedAt()
	case parsingmapping.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParsingMappingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parsingmapping.FieldMappingKey:
		return m.OldMappingKey(ctx)
	case parsingmapping.FieldInputSnapshot:
		return m.OldInputSnapshot(ctx)
	case parsingmapping.FieldItemCode:
		return m.OldItemCode(ctx)
	case parsingmapping.FieldDescription:
		return m.OldDescription(ctx)
	case parsingmapping.FieldMetalType:
		return m.OldMetalType(ctx)
	case parsingmapping.FieldAlloy:
		return m.OldAlloy(ctx)
	case parsingmapping.FieldSpecifics:
		return m.OldSpecifics(ctx)
	case parsingmapping.FieldDimensions:
		return m.OldDimensions(ctx)
	case parsingmapping.FieldUnitCost:
		return m.OldUnitCost(ctx)
	case parsingmapping.FieldPriceUnit:
		return m.OldPriceUnit(ctx)
	case parsingmapping.FieldParserVersion:
		return m.OldParserVersion(ctx)
	case parsingmapping.FieldConfidence:
		return m.OldConfidence(ctx)
	case parsingmapping.FieldRawModelOutput:
		return m.OldRawModelOutput(ctx)
	case parsingmapping.FieldValidated:
		return m.OldValidated(ctx)
	case parsingmapping.FieldValidatedBy:
		return m.OldValidatedBy(ctx)
	case parsingmapping.FieldValidatedAt:
		return m.OldValidatedAt(ctx)
	case parsingmapping.FieldValidationNotes:
		return m.OldValidationNotes(ctx)
	case parsingmapping.FieldItemCodeExists:
		return m.OldItemCodeExists(ctx)
	case parsingmapping.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case parsingmapping.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParsingMapping field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParsingMappingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parsingmapping.FieldMappingKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingKey(v)
		return nil
	case parsingmapping.FieldInputSnapshot:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputSnapshot(v)
		return nil
	case parsingmapping.FieldItemCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCode(v)
		return nil
	case parsingmapping.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case parsingmapping.FieldMetalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetalType(v)
		return nil
	case parsingmapping.FieldAlloy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlloy(v)
		return nil
	case parsingmapping.FieldSpecifics:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecifics(v)
		return nil
	case parsingmapping.FieldDimensions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDimensions(v)
		return nil
	case parsingmapping.FieldUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitCost(v)
		return nil
	case parsingmapping.FieldPriceUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceUnit(v)
		return nil
	case parsingmapping.FieldParserVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParserVersion(v)
		return nil
	case parsingmapping.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case parsingmapping.FieldRawModelOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawModelOutput(v)
		return nil
	case parsingmapping.FieldValidated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidated(v)
		return nil
	case parsingmapping.FieldValidatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedBy(v)
		return nil
	case parsingmapping.FieldValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidatedAt(v)
		return nil
	case parsingmapping.FieldValidationNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationNotes(v)
		return nil
	case parsingmapping.FieldItemCodeExists:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCodeExists(v)
		return nil
	case parsingmapping.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case parsingmapping.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParsingMapping field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParsingMappingMutation) AddedFields() []string {
	var fields []string
	if m.addunit_cost != nil {
		fields = append(fields, parsingmapping.FieldUnitCost)
	}
	if m.addconfidence != nil {
		fields = append(fields, parsingmapping.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParsingMappingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parsingmapping.FieldUnitCost:
		return m.AddedUnitCost()
	case parsingmapping.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParsingMappingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parsingmapping.FieldUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitCost(v)
		return nil
	case parsingmapping.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ParsingMapping numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParsingMappingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parsingmapping.FieldItemCode) {
		fields = append(fields, parsingmapping.FieldItemCode)
	}
	if m.FieldCleared(parsingmapping.FieldDescription) {
		fields = append(fields, parsingmapping.FieldDescription)
	}
	if m.FieldCleared(parsingmapping.FieldMetalType) {
		fields = append(fields, parsingmapping.FieldMetalType)
	}
	if m.FieldCleared(parsingmapping.FieldAlloy) {
		fields = append(fields, parsingmapping.FieldAlloy)
	}
	if m.FieldCleared(parsingmapping.FieldSpecifics) {
		fields = append(fields, parsingmapping.FieldSpecifics)
	}
	if m.FieldCleared(parsingmapping.FieldDimensions) {
		fields = append(fields, parsingmapping.FieldDimensions)
	}
	if m.FieldCleared(parsingmapping.FieldUnitCost) {
		fields = append(fields, parsingmapping.FieldUnitCost)
	}
	if m.FieldCleared(parsingmapping.FieldPriceUnit) {
		fields = append(fields, parsingmapping.FieldPriceUnit)
	}
	if m.FieldCleared(parsingmapping.FieldConfidence) {
		fields = append(fields, parsingmapping.FieldConfidence)
	}
	if m.FieldCleared(parsingmapping.FieldRawModelOutput) {
		fields = append(fields, parsingmapping.FieldRawModelOutput)
	}
	if m.FieldCleared(parsingmapping.FieldValidatedBy) {
		fields = append(fields, parsingmapping.FieldValidatedBy)
	}
	if m.FieldCleared(parsingmapping.FieldValidatedAt) {
		fields = append(fields, parsingmapping.FieldValidatedAt)
	}
	if m.FieldCleared(parsingmapping.FieldValidationNotes) {
		fields = append(fields, parsingmapping.FieldValidationNotes)
	}
	if m.FieldCleared(parsingmapping.FieldItemCodeExists) {
		fields = append(fields, parsingmapping.FieldItemCodeExists)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParsingMappingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParsingMappingMutation) ClearField(name string) error {
	switch name {
	case parsingmapping.FieldItemCode:
		m.ClearItemCode()
		return nil
	case parsingmapping.FieldDescription:
		m.ClearDescription()
		return nil
	case parsingmapping.FieldMetalType:
		m.ClearMetalType()
		return nil
	case parsingmapping.FieldAlloy:
		m.ClearAlloy()
		return nil
	case parsingmapping.FieldSpecifics:
		m.ClearSpecifics()
		return nil
	case parsingmapping.FieldDimensions:
		m.ClearDimensions()
		return nil
	case parsingmapping.FieldUnitCost:
		m.ClearUnitCost()
		return nil
	case parsingmapping.FieldPriceUnit:
		m.ClearPriceUnit()
		return nil
	case parsingmapping.FieldConfidence:
		m.ClearConfidence()
		return nil
	case parsingmapping.FieldRawModelOutput:
		m.ClearRawModelOutput()
		return nil
	case parsingmapping.FieldValidatedBy:
		m.ClearValidatedBy()
		return nil
	case parsingmapping.FieldValidatedAt:
		m.ClearValidatedAt()
		return nil
	case parsingmapping.FieldValidationNotes:
		m.ClearValidationNotes()
		return nil
	case parsingmapping.FieldItemCodeExists:
		m.ClearItemCodeExists()
		return nil
	}
	return fmt.Errorf("unknown ParsingMapping nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParsingMappingMutation) ResetField(name string) error {
	switch name {
	case parsingmapping.FieldMappingKey:
		m.ResetMappingKey()
		return nil
	case parsingmapping.FieldInputSnapshot:
		m.ResetInputSnapshot()
		return nil
	case parsingmapping.FieldItemCode:
		m.ResetItemCode()
		return nil
	case parsingmapping.FieldDescription:
		m.ResetDescription()
		return nil
	case parsingmapping.FieldMetalType:
		m.ResetMetalType()
		return nil
	case parsingmapping.FieldAlloy:
		m.ResetAlloy()
		return nil
	case parsingmapping.FieldSpecifics:
		m.ResetSpecifics()
		return nil
	case parsingmapping.FieldDimensions:
		m.ResetDimensions()
		return nil
	case parsingmapping.FieldUnitCost:
		m.ResetUnitCost()
		return nil
	case parsingmapping.FieldPriceUnit:
		m.ResetPriceUnit()
		return nil
	case parsingmapping.FieldParserVersion:
		m.ResetParserVersion()
		return nil
	case parsingmapping.FieldConfidence:
		m.ResetConfidence()
		return nil
	case parsingmapping.FieldRawModelOutput:
		m.ResetRawModelOutput()
		return nil
	case parsingmapping.FieldValidated:
		m.ResetValidated()
		return nil
	case parsingmapping.FieldValidatedBy:
		m.ResetValidatedBy()
		return nil
	case parsingmapping.FieldValidatedAt:
		m.ResetValidatedAt()
		return nil
	case parsingmapping.FieldValidationNotes:
		m.ResetValidationNotes()
		return nil
	case parsingmapping.FieldItemCodeExists:
		m.ResetItemCodeExists()
		return nil
	case parsingmapping.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case parsingmapping.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ParsingMapping field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParsingMappingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParsingMappingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParsingMappingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParsingMappingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParsingMappingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParsingMappingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParsingMappingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ParsingMapping unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParsingMappingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ParsingMapping edge %s", name)
}

// StockItemMutation represents an operation that mutates the StockItem nodes in the graph.
type StockItemMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	item_code           *string
	description         *string
	unit_cost           *float64
	addunit_cost        *float64
	price_unit          *string
	parsed_metal_type   *string
	parsed_alloy        *string
	parsed_dimensions   *string
	parser_version      *string
	parse_confidence    *float32
	addparse_confidence *float32
	parsed_at           *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StockItem, error)
	predicates          []predicate.StockItem
}

var _ ent.Mutation = (*StockItemMutation)(nil)

// stockitemOption allows management of the mutation configuration using functional options.
type stockitemOption func(*StockItemMutation)

// newStockItemMutation creates new mutation for the StockItem entity.
func newStockItemMutation(c config, op Op, opts ...stockitemOption) *StockItemMutation {
	m := &StockItemMutation{
		config:        c,
		op:            op,
		typ:           TypeStockItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStockItemID sets the ID field of the mutation.
func withStockItemID(id uuid.UUID) stockitemOption {
	return func(m *StockItemMutation) {
		var (
			err   error
			once  sync.Once
			value *StockItem
		)
		m.oldValue = func(ctx context.Context) (*StockItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StockItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStockItem sets the old StockItem of the mutation.
func withStockItem(node *StockItem) stockitemOption {
	return func(m *StockItemMutation) {
		m.oldValue = func(context.Context) (*StockItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StockItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StockItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StockItem entities.
func (m *StockItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StockItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StockItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StockItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemCode sets the "item_code" field.
func (m *StockItemMutation) SetItemCode(s string) {
	m.item_code = &s
}

// ItemCode returns the value of the "item_code" field in the mutation.
func (m *StockItemMutation) ItemCode() (r string, exists bool) {
	v := m.item_code
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCode returns the old "item_code" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldItemCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCode: %w", err)
	}
	return oldValue.ItemCode, nil
}

// ResetItemCode resets all changes to the "item_code" field.
func (m *StockItemMutation) ResetItemCode() {
	m.item_code = nil
}

// SetDescription sets the "description" field.
func (m *StockItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StockItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StockItemMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[stockitem.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StockItemMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StockItemMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, stockitem.FieldDescription)
}

// SetUnitCost sets the "unit_cost" field.
func (m *StockItemMutation) SetUnitCost(f float64) {
	m.unit_cost = &f
	m.addunit_cost = nil
}

// UnitCost returns the value of the "unit_cost" field in the mutation.
func (m *StockItemMutation) UnitCost() (r float64, exists bool) {
	v := m.unit_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitCost returns the old "unit_cost" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldUnitCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitCost: %w", err)
	}
	return oldValue.UnitCost, nil
}

// AddUnitCost adds f to the "unit_cost" field.
func (m *StockItemMutation) AddUnitCost(f float64) {
	if m.addunit_cost != nil {
		*m.addunit_cost += f
	} else {
		m.addunit_cost = &f
	}
}

// AddedUnitCost returns the value that was added to the "unit_cost" field in this mutation.
func (m *StockItemMutation) AddedUnitCost() (r float64, exists bool) {
	v := m.addunit_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnitCost clears the value of the "unit_cost" field.
func (m *StockItemMutation) ClearUnitCost() {
	m.unit_cost = nil
	m.addunit_cost = nil
	m.clearedFields[stockitem.FieldUnitCost] = struct{}{}
}

// UnitCostCleared returns if the "unit_cost" field was cleared in this mutation.
func (m *StockItemMutation) UnitCostCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldUnitCost]
	return ok
}

// ResetUnitCost resets all changes to the "unit_cost" field.
func (m *StockItemMutation) ResetUnitCost() {
	m.unit_cost = nil
	m.addunit_cost = nil
	delete(m.clearedFields, stockitem.FieldUnitCost)
}

// SetPriceUnit sets the "price_unit" field.
func (m *StockItemMutation) SetPriceUnit(s string) {
	m.price_unit = &s
}

// PriceUnit returns the value of the "price_unit" field in the mutation.
func (m *StockItemMutation) PriceUnit() (r string, exists bool) {
	v := m.price_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceUnit returns the old "price_unit" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldPriceUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceUnit: %w", err)
	}
	return oldValue.PriceUnit, nil
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (m *StockItemMutation) ClearPriceUnit() {
	m.price_unit = nil
	m.clearedFields[stockitem.FieldPriceUnit] = struct{}{}
}

// PriceUnitCleared returns if the "price_unit" field was cleared in this mutation.
func (m *StockItemMutation) PriceUnitCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldPriceUnit]
	return ok
}

// ResetPriceUnit resets all changes to the "price_unit" field.
func (m *StockItemMutation) ResetPriceUnit() {
	m.price_unit = nil
	delete(m.clearedFields, stockitem.FieldPriceUnit)
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (m *StockItemMutation) SetParsedMetalType(s string) {
	m.parsed_metal_type = &s
}

// ParsedMetalType returns the value of the "parsed_metal_type" field in the mutation.
func (m *StockItemMutation) ParsedMetalType() (r string, exists bool) {
	v := m.parsed_metal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedMetalType returns the old "parsed_metal_type" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldParsedMetalType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedMetalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedMetalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedMetalType: %w", err)
	}
	return oldValue.ParsedMetalType, nil
}

// ClearParsedMetalType clears the value of the "parsed_metal_type" field.
func (m *StockItemMutation) ClearParsedMetalType() {
	m.parsed_metal_type = nil
	m.clearedFields[stockitem.FieldParsedMetalType] = struct{}{}
}

// ParsedMetalTypeCleared returns if the "parsed_metal_type" field was cleared in this mutation.
func (m *StockItemMutation) ParsedMetalTypeCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldParsedMetalType]
	return ok
}

// ResetParsedMetalType resets all changes to the "parsed_metal_type" field.
func (m *StockItemMutation) ResetParsedMetalType() {
	m.parsed_metal_type = nil
	delete(m.clearedFields, stockitem.FieldParsedMetalType)
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (m *StockItemMutation) SetParsedAlloy(s string) {
	m.parsed_alloy = &s
}

// ParsedAlloy returns the value of the "parsed_alloy" field in the mutation.
func (m *StockItemMutation) ParsedAlloy() (r string, exists bool) {
	v := m.parsed_alloy
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedAlloy returns the old "parsed_alloy" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldParsedAlloy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedAlloy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedAlloy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedAlloy: %w", err)
	}
	return oldValue.ParsedAlloy, nil
}

// ClearParsedAlloy clears the value of the "parsed_alloy" field.
func (m *StockItemMutation) ClearParsedAlloy() {
	m.parsed_alloy = nil
	m.clearedFields[stockitem.FieldParsedAlloy] = struct{}{}
}

// ParsedAlloyCleared returns if the "parsed_alloy" field was cleared in this mutation.
func (m *StockItemMutation) ParsedAlloyCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldParsedAlloy]
	return ok
}

// ResetParsedAlloy resets all changes to the "parsed_alloy" field.
func (m *StockItemMutation) ResetParsedAlloy() {
	m.parsed_alloy = nil
	delete(m.clearedFields, stockitem.FieldParsedAlloy)
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (m *StockItemMutation) SetParsedDimensions(s string) {
	m.parsed_dimensions = &s
}

// ParsedDimensions returns the value of the "parsed_dimensions" field in the mutation.
func (m *StockItemMutation) ParsedDimensions() (r string, exists bool) {
	v := m.parsed_dimensions
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedDimensions returns the old "parsed_dimensions" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldParsedDimensions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedDimensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedDimensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedDimensions: %w", err)
	}
	return oldValue.ParsedDimensions, nil
}

// ClearParsedDimensions clears the value of the "parsed_dimensions" field.
func (m *StockItemMutation) ClearParsedDimensions() {
	m.parsed_dimensions = nil
	m.clearedFields[stockitem.FieldParsedDimensions] = struct{}{}
}

// ParsedDimensionsCleared returns if the "parsed_dimensions" field was cleared in this mutation.
func (m *StockItemMutation) ParsedDimensionsCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldParsedDimensions]
	return ok
}

// ResetParsedDimensions resets all changes to the "parsed_dimensions" field.
func (m *StockItemMutation) ResetParsedDimensions() {
	m.parsed_dimensions = nil
	delete(m.clearedFields, stockitem.FieldParsedDimensions)
}

// SetParserVersion sets the "parser_version" field.
func (m *StockItemMutation) SetParserVersion(s string) {
	m.parser_version = &s
}

// ParserVersion returns the value of the "parser_version" field in the mutation.
func (m *StockItemMutation) ParserVersion() (r string, exists bool) {
	v := m.parser_version
	if v == nil {
		return
	}
	return *v, true
}

// OldParserVersion returns the old "parser_version" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldParserVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParserVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParserVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParserVersion: %w", err)
	}
	return oldValue.ParserVersion, nil
}

// ClearParserVersion clears the value of the "parser_version" field.
func (m *StockItemMutation) ClearParserVersion() {
	m.parser_version = nil
	m.clearedFields[stockitem.FieldParserVersion] = struct{}{}
}

// ParserVersionCleared returns if the "parser_version" field was cleared in this mutation.
func (m *StockItemMutation) ParserVersionCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldParserVersion]
	return ok
}

// ResetParserVersion resets all changes to the "parser_version" field.
func (m *StockItemMutation) ResetParserVersion() {
	m.parser_version = nil
	delete(m.clearedFields, stockitem.FieldParserVersion)
}

// SetParseConfidence sets the "parse_confidence" field.
func (m *StockItemMutation) SetParseConfidence(f float32) {
	m.parse_confidence = &f
	m.addparse_confidence = nil
}

// ParseConfidence returns the value of the "parse_confidence" field in the mutation.
func (m *StockItemMutation) ParseConfidence() (r float32, exists bool) {
	v := m.parse_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldParseConfidence returns the old "parse_confidence" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldParseConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParseConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParseConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParseConfidence: %w", err)
	}
	return oldValue.ParseConfidence, nil
}

// AddParseConfidence adds f to the "parse_confidence" field.
func (m *StockItemMutation) AddParseConfidence(f float32) {
	if m.addparse_confidence != nil {
		*m.addparse_confidence += f
	} else {
		m.addparse_confidence = &f
	}
}

// AddedParseConfidence returns the value that was added to the "parse_confidence" field in this mutation.
func (m *StockItemMutation) AddedParseConfidence() (r float32, exists bool) {
	v := m.addparse_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearParseConfidence clears the value of the "parse_confidence" field.
func (m *StockItemMutation) ClearParseConfidence() {
	m.parse_confidence = nil
	m.addparse_confidence = nil
	m.clearedFields[stockitem.FieldParseConfidence] = struct{}{}
}

// ParseConfidenceCleared returns if the "parse_confidence" field was cleared in this mutation.
func (m *StockItemMutation) ParseConfidenceCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldParseConfidence]
	return ok
}

// ResetParseConfidence resets all changes to the "parse_confidence" field.
func (m *StockItemMutation) ResetParseConfidence() {
	m.parse_confidence = nil
	m.addparse_confidence = nil
	delete(m.clearedFields, stockitem.FieldParseConfidence)
}

// SetParsedAt sets the "parsed_at" field.
func (m *StockItemMutation) SetParsedAt(t time.Time) {
	m.parsed_at = &t
}

// ParsedAt returns the value of the "parsed_at" field in the mutation.
func (m *StockItemMutation) ParsedAt() (r time.Time, exists bool) {
	v := m.parsed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedAt returns the old "parsed_at" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldParsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedAt: %w", err)
	}
	return oldValue.ParsedAt, nil
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (m *StockItemMutation) ClearParsedAt() {
	m.parsed_at = nil
	m.clearedFields[stockitem.FieldParsedAt] = struct{}{}
}

// ParsedAtCleared returns if the "parsed_at" field was cleared in this mutation.
func (m *StockItemMutation) ParsedAtCleared() bool {
	_, ok := m.clearedFields[stockitem.FieldParsedAt]
	return ok
}

// ResetParsedAt resets all changes to the "parsed_at" field.
func (m *StockItemMutation) ResetParsedAt() {
	m.parsed_at = nil
	delete(m.clearedFields, stockitem.FieldParsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *StockItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StockItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StockItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StockItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StockItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StockItem entity.
// If the StockItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StockItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StockItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StockItemMutation builder.
func (m *StockItemMutation) Where(ps ...predicate.StockItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StockItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StockItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StockItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StockItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StockItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StockItem).
func (m *StockItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StockItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.item_code != nil {
		fields = append(fields, stockitem.FieldItemCode)
	}
	if m.description != nil {
		fields = append(fields, stockitem.FieldDescription)
	}
	if m.unit_cost != nil {
		fields = append(fields, stockitem.FieldUnitCost)
	}
	if m.price_unit != nil {
		fields = append(fields, stockitem.FieldPriceUnit)
	}
	if m.parsed_metal_type != nil {
		fields = append(fields, stockitem.FieldParsedMetalType)
	}
	if m.parsed_alloy != nil {
		fields = append(fields, stockitem.FieldParsedAlloy)
	}
	if m.parsed_dimensions != nil {
		fields = append(fields, stockitem.FieldParsedDimensions)
	}
	if m.parser_version != nil {
		fields = append(fields, stockitem.FieldParserVersion)
	}
	if m.parse_confidence != nil {
		fields = append(fields, stockitem.FieldParseConfidence)
	}
	if m.parsed_at != nil {
		fields = append(fields, stockitem.FieldParsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, stockitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, stockitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StockItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stockitem.FieldItemCode:
		return m.ItemCode()
	case stockitem.FieldDescription:
		return m.Description()
	case stockitem.FieldUnitCost:
		return m.UnitCost()
	case stockitem.FieldPriceUnit:
		return m.PriceUnit()
	case stockitem.FieldParsedMetalType:
		return m.ParsedMetalType()
	case stockitem.FieldParsedAlloy:
		return m.ParsedAlloy()
	case stockitem.FieldParsedDimensions:
		return m.ParsedDimensions()
	case stockitem.FieldParserVersion:
		return m.ParserVersion()
	case stockitem.FieldParseConfidence:
		return m.ParseConfidence()
	case stockitem.FieldParsedAt:
		return m.ParsedAt()
	case stockitem.FieldCreatedAt:
		return m.CreatedAt()
	case stockitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StockItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stockitem.FieldItemCode:
		return m.OldItemCode(ctx)
	case stockitem.FieldDescription:
		return m.OldDescription(ctx)
	case stockitem.FieldUnitCost:
		return m.OldUnitCost(ctx)
	case stockitem.FieldPriceUnit:
		return m.OldPriceUnit(ctx)
	case stockitem.FieldParsedMetalType:
		return m.OldParsedMetalType(ctx)
	case stockitem.FieldParsedAlloy:
		return m.OldParsedAlloy(ctx)
	case stockitem.FieldParsedDimensions:
		return m.OldParsedDimensions(ctx)
	case stockitem.FieldParserVersion:
		return m.OldParserVersion(ctx)
	case stockitem.FieldParseConfidence:
		return m.OldParseConfidence(ctx)
	case stockitem.FieldParsedAt:
		return m.OldParsedAt(ctx)
	case stockitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stockitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StockItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stockitem.FieldItemCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCode(v)
		return nil
	case stockitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case stockitem.FieldUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitCost(v)
		return nil
	case stockitem.FieldPriceUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceUnit(v)
		return nil
	case stockitem.FieldParsedMetalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedMetalType(v)
		return nil
	case stockitem.FieldParsedAlloy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedAlloy(v)
		return nil
	case stockitem.FieldParsedDimensions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedDimensions(v)
		return nil
	case stockitem.FieldParserVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParserVersion(v)
		return nil
	case stockitem.FieldParseConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParseConfidence(v)
		return nil
	case stockitem.FieldParsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedAt(v)
		return nil
	case stockitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stockitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StockItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StockItemMutation) AddedFields() []string {
	var fields []string
	if m.addunit_cost != nil {
		fields = append(fields, stockitem.FieldUnitCost)
	}
	if m.addparse_confidence != nil {
		fields = append(fields, stockitem.FieldParseConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StockItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stockitem.FieldUnitCost:
		return m.AddedUnitCost()
	case stockitem.FieldParseConfidence:
		return m.AddedParseConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StockItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stockitem.FieldUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitCost(v)
		return nil
	case stockitem.FieldParseConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParseConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown StockItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StockItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stockitem.FieldDescription) {
		fields = append(fields, stockitem.FieldDescription)
	}
	if m.FieldCleared(stockitem.FieldUnitCost) {
		fields = append(fields, stockitem.FieldUnitCost)
	}
	if m.FieldCleared(stockitem.FieldPriceUnit) {
		fields = append(fields, stockitem.FieldPriceUnit)
	}
	if m.FieldCleared(stockitem.FieldParsedMetalType) {
		fields = append(fields, stockitem.FieldParsedMetalType)
	}
	if m.FieldCleared(stockitem.FieldParsedAlloy) {
		fields = append(fields, stockitem.FieldParsedAlloy)
	}
	if m.FieldCleared(stockitem.FieldParsedDimensions) {
		fields = append(fields, stockitem.FieldParsedDimensions)
	}
	if m.FieldCleared(stockitem.FieldParserVersion) {
		fields = append(fields, stockitem.FieldParserVersion)
	}
	if m.FieldCleared(stockitem.FieldParseConfidence) {
		fields = append(fields, stockitem.FieldParseConfidence)
	}
	if m.FieldCleared(stockitem.FieldParsedAt) {
		fields = append(fields, stockitem.FieldParsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StockItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StockItemMutation) ClearField(name string) error {
	switch name {
	case stockitem.FieldDescription:
		m.ClearDescription()
		return nil
	case stockitem.FieldUnitCost:
		m.ClearUnitCost()
		return nil
	case stockitem.FieldPriceUnit:
		m.ClearPriceUnit()
		return nil
	case stockitem.FieldParsedMetalType:
		m.ClearParsedMetalType()
		return nil
	case stockitem.FieldParsedAlloy:
		m.ClearParsedAlloy()
		return nil
	case stockitem.FieldParsedDimensions:
		m.ClearParsedDimensions()
		return nil
	case stockitem.FieldParserVersion:
		m.ClearParserVersion()
		return nil
	case stockitem.FieldParseConfidence:
		m.ClearParseConfidence()
		return nil
	case stockitem.FieldParsedAt:
		m.ClearParsedAt()
		return nil
	}
	return fmt.Errorf("unknown StockItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StockItemMutation) ResetField(name string) error {
	switch name {
	case stockitem.FieldItemCode:
		m.ResetItemCode()
		return nil
	case stockitem.FieldDescription:
		m.ResetDescription()
		return nil
	case stockitem.FieldUnitCost:
		m.ResetUnitCost()
		return nil
	case stockitem.FieldPriceUnit:
		m.ResetPriceUnit()
		return nil
	case stockitem.FieldParsedMetalType:
		m.ResetParsedMetalType()
		return nil
	case stockitem.FieldParsedAlloy:
		m.ResetParsedAlloy()
		return nil
	case stockitem.FieldParsedDimensions:
		m.ResetParsedDimensions()
		return nil
	case stockitem.FieldParserVersion:
		m.ResetParserVersion()
		return nil
	case stockitem.FieldParseConfidence:
		m.ResetParseConfidence()
		return nil
	case stockitem.FieldParsedAt:
		m.ResetParsedAt()
		return nil
	case stockitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stockitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StockItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StockItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StockItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StockItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StockItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StockItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StockItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StockItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StockItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StockItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StockItem edge %s", name)
}

// SupplierProductMutation represents an operation that mutates the SupplierProduct nodes in the graph.
type SupplierProductMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	supplier_name        *string
	item_no              *string
	variant_id           *string
	product_name         *string
	description          *string
	price                *float64
	addprice             *float64
	price_unit           *string
	specifications       *json.RawMessage
	appendspecifications json.RawMessage
	parsed_item_code     *string
	parsed_metal_type    *string
	parsed_alloy         *string
	parsed_dimensions    *string
	parsed_unit_cost     *float64
	addparsed_unit_cost  *float64
	parsed_price_unit    *string
	parser_version       *string
	parse_confidence     *float32
	addparse_confidence  *float32
	parsed_at            *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SupplierProduct, error)
	predicates           []predicate.SupplierProduct
}

var _ ent.Mutation = (*SupplierProductMutation)(nil)

// supplierproductOption allows management of the mutation configuration using functional options.
type supplierproductOption func(*SupplierProductMutation)

// newSupplierProductMutation creates new mutation for the SupplierProduct entity.
func newSupplierProductMutation(c config, op Op, opts ...supplierproductOption) *SupplierProductMutation {
	m := &SupplierProductMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplierProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierProductID sets the ID field of the mutation.
func withSupplierProductID(id uuid.UUID) supplierproductOption {
	return func(m *SupplierProductMutation) {
		var (
			err   error
			once  sync.Once
			value *SupplierProduct
		)
		m.oldValue = func(ctx context.Context) (*SupplierProduct, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupplierProduct.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplierProduct sets the old SupplierProduct of the mutation.
func withSupplierProduct(node *SupplierProduct) supplierproductOption {
	return func(m *SupplierProductMutation) {
		m.oldValue = func(context.Context) (*SupplierProduct, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupplierProduct entities.
func (m *SupplierProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupplierProduct.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierName sets the "supplier_name" field.
func (m *SupplierProductMutation) SetSupplierName(s string) {
	m.supplier_name = &s
}

// SupplierName returns the value of the "supplier_name" field in the mutation.
func (m *SupplierProductMutation) SupplierName() (r string, exists bool) {
	v := m.supplier_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierName returns the old "supplier_name" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldSupplierName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierName: %w", err)
	}
	return oldValue.SupplierName, nil
}

// ResetSupplierName resets all changes to the "supplier_name" field.
func (m *SupplierProductMutation) ResetSupplierName() {
	m.supplier_name = nil
}

// SetItemNo sets the "item_no" field.
func (m *SupplierProductMutation) SetItemNo(s string) {
	m.item_no = &s
}

// ItemNo returns the value of the "item_no" field in the mutation.
func (m *SupplierProductMutation) ItemNo() (r string, exists bool) {
	v := m.item_no
	if v == nil {
		return
	}
	return *v, true
}

// OldItemNo returns the old "item_no" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldItemNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemNo: %w", err)
	}
	return oldValue.ItemNo, nil
}

// ClearItemNo clears the value of the "item_no" field.
func (m *SupplierProductMutation) ClearItemNo() {
	m.item_no = nil
	m.clearedFields[supplierproduct.FieldItemNo] = struct{}{}
}

// ItemNoCleared returns if the "item_no" field was cleared in this mutation.
func (m *SupplierProductMutation) ItemNoCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldItemNo]
	return ok
}

// ResetItemNo resets all changes to the "item_no" field.
func (m *SupplierProductMutation) ResetItemNo() {
	m.item_no = nil
	delete(m.clearedFields, supplierproduct.FieldItemNo)
}

// SetVariantID sets the "variant_id" field.
func (m *SupplierProductMutation) SetVariantID(s string) {
	m.variant_id = &s
}

// VariantID returns the value of the "variant_id" field in the mutation.
func (m *SupplierProductMutation) VariantID() (r string, exists bool) {
	v := m.variant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantID returns the old "variant_id" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldVariantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantID: %w", err)
	}
	return oldValue.VariantID, nil
}

// ClearVariantID clears the value of the "variant_id" field.
func (m *SupplierProductMutation) ClearVariantID() {
	m.variant_id = nil
	m.clearedFields[supplierproduct.FieldVariantID] = struct{}{}
}

// VariantIDCleared returns if the "variant_id" field was cleared in this mutation.
func (m *SupplierProductMutation) VariantIDCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldVariantID]
	return ok
}

// ResetVariantID resets all changes to the "variant_id" field.
func (m *SupplierProductMutation) ResetVariantID() {
	m.variant_id = nil
	delete(m.clearedFields, supplierproduct.FieldVariantID)
}

// SetProductName sets the "product_name" field.
func (m *SupplierProductMutation) SetProductName(s string) {
	m.product_name = &s
}

// ProductName returns the value of the "product_name" field in the mutation.
func (m *SupplierProductMutation) ProductName() (r string, exists bool) {
	v := m.product_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProductName returns the old "product_name" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldProductName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductName: %w", err)
	}
	return oldValue.ProductName, nil
}

// ClearProductName clears the value of the "product_name" field.
func (m *SupplierProductMutation) ClearProductName() {
	m.product_name = nil
	m.clearedFields[supplierproduct.FieldProductName] = struct{}{}
}

// ProductNameCleared returns if the "product_name" field was cleared in this mutation.
func (m *SupplierProductMutation) ProductNameCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldProductName]
	return ok
}

// ResetProductName resets all changes to the "product_name" field.
func (m *SupplierProductMutation) ResetProductName() {
	m.product_name = nil
	delete(m.clearedFields, supplierproduct.FieldProductName)
}

// SetDescription sets the "description" field.
func (m *SupplierProductMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SupplierProductMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SupplierProductMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[supplierproduct.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SupplierProductMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SupplierProductMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, supplierproduct.FieldDescription)
}

// SetPrice sets the "price" field.
func (m *SupplierProductMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *SupplierProductMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *SupplierProductMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *SupplierProductMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrice clears the value of the "price" field.
func (m *SupplierProductMutation) ClearPrice() {
	m.price = nil
	m.addprice = nil
	m.clearedFields[supplierproduct.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *SupplierProductMutation) PriceCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *SupplierProductMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
	delete(m.clearedFields, supplierproduct.FieldPrice)
}

// SetPriceUnit sets the "price_unit" field.
func (m *SupplierProductMutation) SetPriceUnit(s string) {
	m.price_unit = &s
}

// PriceUnit returns the value of the "price_unit" field in the mutation.
func (m *SupplierProductMutation) PriceUnit() (r string, exists bool) {
	v := m.price_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceUnit returns the old "price_unit" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldPriceUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceUnit: %w", err)
	}
	return oldValue.PriceUnit, nil
}

// ClearPriceUnit clears the value of the "price_unit" field.
func (m *SupplierProductMutation) ClearPriceUnit() {
	m.price_unit = nil
	m.clearedFields[supplierproduct.FieldPriceUnit] = struct{}{}
}

// PriceUnitCleared returns if the "price_unit" field was cleared in this mutation.
func (m *SupplierProductMutation) PriceUnitCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldPriceUnit]
	return ok
}

// ResetPriceUnit resets all changes to the "price_unit" field.
func (m *SupplierProductMutation) ResetPriceUnit() {
	m.price_unit = nil
	delete(m.clearedFields, supplierproduct.FieldPriceUnit)
}

// SetSpecifications sets the "specifications" field.
func (m *SupplierProductMutation) SetSpecifications(jm json.RawMessage) {
	m.specifications = &jm
	m.appendspecifications = nil
}

// Specifications returns the value of the "specifications" field in the mutation.
func (m *SupplierProductMutation) Specifications() (r json.RawMessage, exists bool) {
	v := m.specifications
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecifications returns the old "specifications" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldSpecifications(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecifications is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecifications requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecifications: %w", err)
	}
	return oldValue.Specifications, nil
}

// AppendSpecifications adds jm to the "specifications" field.
func (m *SupplierProductMutation) AppendSpecifications(jm json.RawMessage) {
	m.appendspecifications = append(m.appendspecifications, jm...)
}

// AppendedSpecifications returns the list of values that were appended to the "specifications" field in this mutation.
func (m *SupplierProductMutation) AppendedSpecifications() (json.RawMessage, bool) {
	if len(m.appendspecifications) == 0 {
		return nil, false
	}
	return m.appendspecifications, true
}

// ClearSpecifications clears the value of the "specifications" field.
func (m *SupplierProductMutation) ClearSpecifications() {
	m.specifications = nil
	m.appendspecifications = nil
	m.clearedFields[supplierproduct.FieldSpecifications] = struct{}{}
}

// SpecificationsCleared returns if the "specifications" field was cleared in this mutation.
func (m *SupplierProductMutation) SpecificationsCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldSpecifications]
	return ok
}

// ResetSpecifications resets all changes to the "specifications" field.
func (m *SupplierProductMutation) ResetSpecifications() {
	m.specifications = nil
	m.appendspecifications = nil
	delete(m.clearedFields, supplierproduct.FieldSpecifications)
}

// SetParsedItemCode sets the "parsed_item_code" field.
func (m *SupplierProductMutation) SetParsedItemCode(s string) {
	m.parsed_item_code = &s
}

// ParsedItemCode returns the value of the "parsed_item_code" field in the mutation.
func (m *SupplierProductMutation) ParsedItemCode() (r string, exists bool) {
	v := m.parsed_item_code
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedItemCode returns the old "parsed_item_code" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParsedItemCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedItemCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedItemCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedItemCode: %w", err)
	}
	return oldValue.ParsedItemCode, nil
}

// ClearParsedItemCode clears the value of the "parsed_item_code" field.
func (m *SupplierProductMutation) ClearParsedItemCode() {
	m.parsed_item_code = nil
	m.clearedFields[supplierproduct.FieldParsedItemCode] = struct{}{}
}

// ParsedItemCodeCleared returns if the "parsed_item_code" field was cleared in this mutation.
func (m *SupplierProductMutation) ParsedItemCodeCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParsedItemCode]
	return ok
}

// ResetParsedItemCode resets all changes to the "parsed_item_code" field.
func (m *SupplierProductMutation) ResetParsedItemCode() {
	m.parsed_item_code = nil
	delete(m.clearedFields, supplierproduct.FieldParsedItemCode)
}

// SetParsedMetalType sets the "parsed_metal_type" field.
func (m *SupplierProductMutation) SetParsedMetalType(s string) {
	m.parsed_metal_type = &s
}

// ParsedMetalType returns the value of the "parsed_metal_type" field in the mutation.
func (m *SupplierProductMutation) ParsedMetalType() (r string, exists bool) {
	v := m.parsed_metal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedMetalType returns the old "parsed_metal_type" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParsedMetalType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedMetalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedMetalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedMetalType: %w", err)
	}
	return oldValue.ParsedMetalType, nil
}

// ClearParsedMetalType clears the value of the "parsed_metal_type" field.
func (m *SupplierProductMutation) ClearParsedMetalType() {
	m.parsed_metal_type = nil
	m.clearedFields[supplierproduct.FieldParsedMetalType] = struct{}{}
}

// ParsedMetalTypeCleared returns if the "parsed_metal_type" field was cleared in this mutation.
func (m *SupplierProductMutation) ParsedMetalTypeCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParsedMetalType]
	return ok
}

// ResetParsedMetalType resets all changes to the "parsed_metal_type" field.
func (m *SupplierProductMutation) ResetParsedMetalType() {
	m.parsed_metal_type = nil
	delete(m.clearedFields, supplierproduct.FieldParsedMetalType)
}

// SetParsedAlloy sets the "parsed_alloy" field.
func (m *SupplierProductMutation) SetParsedAlloy(s string) {
	m.parsed_alloy = &s
}

// ParsedAlloy returns the value of the "parsed_alloy" field in the mutation.
func (m *SupplierProductMutation) ParsedAlloy() (r string, exists bool) {
	v := m.parsed_alloy
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedAlloy returns the old "parsed_alloy" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParsedAlloy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedAlloy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedAlloy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedAlloy: %w", err)
	}
	return oldValue.ParsedAlloy, nil
}

// ClearParsedAlloy clears the value of the "parsed_alloy" field.
func (m *SupplierProductMutation) ClearParsedAlloy() {
	m.parsed_alloy = nil
	m.clearedFields[supplierproduct.FieldParsedAlloy] = struct{}{}
}

// ParsedAlloyCleared returns if the "parsed_alloy" field was cleared in this mutation.
func (m *SupplierProductMutation) ParsedAlloyCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParsedAlloy]
	return ok
}

// ResetParsedAlloy resets all changes to the "parsed_alloy" field.
func (m *SupplierProductMutation) ResetParsedAlloy() {
	m.parsed_alloy = nil
	delete(m.clearedFields, supplierproduct.FieldParsedAlloy)
}

// SetParsedDimensions sets the "parsed_dimensions" field.
func (m *SupplierProductMutation) SetParsedDimensions(s string) {
	m.parsed_dimensions = &s
}

// ParsedDimensions returns the value of the "parsed_dimensions" field in the mutation.
func (m *SupplierProductMutation) ParsedDimensions() (r string, exists bool) {
	v := m.parsed_dimensions
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedDimensions returns the old "parsed_dimensions" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParsedDimensions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedDimensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedDimensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedDimensions: %w", err)
	}
	return oldValue.ParsedDimensions, nil
}

// ClearParsedDimensions clears the value of the "parsed_dimensions" field.
func (m *SupplierProductMutation) ClearParsedDimensions() {
	m.parsed_dimensions = nil
	m.clearedFields[supplierproduct.FieldParsedDimensions] = struct{}{}
}

// ParsedDimensionsCleared returns if the "parsed_dimensions" field was cleared in this mutation.
func (m *SupplierProductMutation) ParsedDimensionsCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParsedDimensions]
	return ok
}

// ResetParsedDimensions resets all changes to the "parsed_dimensions" field.
func (m *SupplierProductMutation) ResetParsedDimensions() {
	m.parsed_dimensions = nil
	delete(m.clearedFields, supplierproduct.FieldParsedDimensions)
}

// SetParsedUnitCost sets the "parsed_unit_cost" field.
func (m *SupplierProductMutation) SetParsedUnitCost(f float64) {
	m.parsed_unit_cost = &f
	m.addparsed_unit_cost = nil
}

// ParsedUnitCost returns the value of the "parsed_unit_cost" field in the mutation.
func (m *SupplierProductMutation) ParsedUnitCost() (r float64, exists bool) {
	v := m.parsed_unit_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedUnitCost returns the old "parsed_unit_cost" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParsedUnitCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedUnitCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedUnitCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedUnitCost: %w", err)
	}
	return oldValue.ParsedUnitCost, nil
}

// AddParsedUnitCost adds f to the "parsed_unit_cost" field.
func (m *SupplierProductMutation) AddParsedUnitCost(f float64) {
	if m.addparsed_unit_cost != nil {
		*m.addparsed_unit_cost += f
	} else {
		m.addparsed_unit_cost = &f
	}
}

// AddedParsedUnitCost returns the value that was added to the "parsed_unit_cost" field in this mutation.
func (m *SupplierProductMutation) AddedParsedUnitCost() (r float64, exists bool) {
	v := m.addparsed_unit_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearParsedUnitCost clears the value of the "parsed_unit_cost" field.
func (m *SupplierProductMutation) ClearParsedUnitCost() {
	m.parsed_unit_cost = nil
	m.addparsed_unit_cost = nil
	m.clearedFields[supplierproduct.FieldParsedUnitCost] = struct{}{}
}

// ParsedUnitCostCleared returns if the "parsed_unit_cost" field was cleared in this mutation.
func (m *SupplierProductMutation) ParsedUnitCostCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParsedUnitCost]
	return ok
}

// ResetParsedUnitCost resets all changes to the "parsed_unit_cost" field.
func (m *SupplierProductMutation) ResetParsedUnitCost() {
	m.parsed_unit_cost = nil
	m.addparsed_unit_cost = nil
	delete(m.clearedFields, supplierproduct.FieldParsedUnitCost)
}

// SetParsedPriceUnit sets the "parsed_price_unit" field.
func (m *SupplierProductMutation) SetParsedPriceUnit(s string) {
	m.parsed_price_unit = &s
}

// ParsedPriceUnit returns the value of the "parsed_price_unit" field in the mutation.
func (m *SupplierProductMutation) ParsedPriceUnit() (r string, exists bool) {
	v := m.parsed_price_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedPriceUnit returns the old "parsed_price_unit" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParsedPriceUnit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedPriceUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedPriceUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedPriceUnit: %w", err)
	}
	return oldValue.ParsedPriceUnit, nil
}

// ClearParsedPriceUnit clears the value of the "parsed_price_unit" field.
func (m *SupplierProductMutation) ClearParsedPriceUnit() {
	m.parsed_price_unit = nil
	m.clearedFields[supplierproduct.FieldParsedPriceUnit] = struct{}{}
}

// ParsedPriceUnitCleared returns if the "parsed_price_unit" field was cleared in this mutation.
func (m *SupplierProductMutation) ParsedPriceUnitCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParsedPriceUnit]
	return ok
}

// ResetParsedPriceUnit resets all changes to the "parsed_price_unit" field.
func (m *SupplierProductMutation) ResetParsedPriceUnit() {
	m.parsed_price_unit = nil
	delete(m.clearedFields, supplierproduct.FieldParsedPriceUnit)
}

// SetParserVersion sets the "parser_version" field.
func (m *SupplierProductMutation) SetParserVersion(s string) {
	m.parser_version = &s
}

// ParserVersion returns the value of the "parser_version" field in the mutation.
func (m *SupplierProductMutation) ParserVersion() (r string, exists bool) {
	v := m.parser_version
	if v == nil {
		return
	}
	return *v, true
}

// OldParserVersion returns the old "parser_version" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParserVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParserVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParserVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParserVersion: %w", err)
	}
	return oldValue.ParserVersion, nil
}

// ClearParserVersion clears the value of the "parser_version" field.
func (m *SupplierProductMutation) ClearParserVersion() {
	m.parser_version = nil
	m.clearedFields[supplierproduct.FieldParserVersion] = struct{}{}
}

// ParserVersionCleared returns if the "parser_version" field was cleared in this mutation.
func (m *SupplierProductMutation) ParserVersionCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParserVersion]
	return ok
}

// ResetParserVersion resets all changes to the "parser_version" field.
func (m *SupplierProductMutation) ResetParserVersion() {
	m.parser_version = nil
	delete(m.clearedFields, supplierproduct.FieldParserVersion)
}

// SetParseConfidence sets the "parse_confidence" field.
func (m *SupplierProductMutation) SetParseConfidence(f float32) {
	m.parse_confidence = &f
	m.addparse_confidence = nil
}

// ParseConfidence returns the value of the "parse_confidence" field in the mutation.
func (m *SupplierProductMutation) ParseConfidence() (r float32, exists bool) {
	v := m.parse_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldParseConfidence returns the old "parse_confidence" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParseConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParseConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParseConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParseConfidence: %w", err)
	}
	return oldValue.ParseConfidence, nil
}

// AddParseConfidence adds f to the "parse_confidence" field.
func (m *SupplierProductMutation) AddParseConfidence(f float32) {
	if m.addparse_confidence != nil {
		*m.addparse_confidence += f
	} else {
		m.addparse_confidence = &f
	}
}

// AddedParseConfidence returns the value that was added to the "parse_confidence" field in this mutation.
func (m *SupplierProductMutation) AddedParseConfidence() (r float32, exists bool) {
	v := m.addparse_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearParseConfidence clears the value of the "parse_confidence" field.
func (m *SupplierProductMutation) ClearParseConfidence() {
	m.parse_confidence = nil
	m.addparse_confidence = nil
	m.clearedFields[supplierproduct.FieldParseConfidence] = struct{}{}
}

// ParseConfidenceCleared returns if the "parse_confidence" field was cleared in this mutation.
func (m *SupplierProductMutation) ParseConfidenceCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParseConfidence]
	return ok
}

// ResetParseConfidence resets all changes to the "parse_confidence" field.
func (m *SupplierProductMutation) ResetParseConfidence() {
	m.parse_confidence = nil
	m.addparse_confidence = nil
	delete(m.clearedFields, supplierproduct.FieldParseConfidence)
}

// SetParsedAt sets the "parsed_at" field.
func (m *SupplierProductMutation) SetParsedAt(t time.Time) {
	m.parsed_at = &t
}

// ParsedAt returns the value of the "parsed_at" field in the mutation.
func (m *SupplierProductMutation) ParsedAt() (r time.Time, exists bool) {
	v := m.parsed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedAt returns the old "parsed_at" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldParsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedAt: %w", err)
	}
	return oldValue.ParsedAt, nil
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (m *SupplierProductMutation) ClearParsedAt() {
	m.parsed_at = nil
	m.clearedFields[supplierproduct.FieldParsedAt] = struct{}{}
}

// ParsedAtCleared returns if the "parsed_at" field was cleared in this mutation.
func (m *SupplierProductMutation) ParsedAtCleared() bool {
	_, ok := m.clearedFields[supplierproduct.FieldParsedAt]
	return ok
}

// ResetParsedAt resets all changes to the "parsed_at" field.
func (m *SupplierProductMutation) ResetParsedAt() {
	m.parsed_at = nil
	delete(m.clearedFields, supplierproduct.FieldParsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplierProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplierProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupplierProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SupplierProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SupplierProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SupplierProduct entity.
// If the SupplierProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SupplierProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SupplierProductMutation builder.
func (m *SupplierProductMutation) Where(ps ...predicate.SupplierProduct) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupplierProduct, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupplierProduct).
func (m *SupplierProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierProductMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.supplier_name != nil {
		fields = append(fields, supplierproduct.FieldSupplierName)
	}
	if m.item_no != nil {
		fields = append(fields, supplierproduct.FieldItemNo)
	}
	if m.variant_id != nil {
		fields = append(fields, supplierproduct.FieldVariantID)
	}
	if m.product_name != nil {
		fields = append(fields, supplierproduct.FieldProductName)
	}
	if m.description != nil {
		fields = append(fields, supplierproduct.FieldDescription)
	}
	if m.price != nil {
		fields = append(fields, supplierproduct.FieldPrice)
	}
	if m.price_unit != nil {
		fields = append(fields, supplierproduct.FieldPriceUnit)
	}
	if m.specifications != nil {
		fields = append(fields, supplierproduct.FieldSpecifications)
	}
	if m.parsed_item_code != nil {
		fields = append(fields, supplierproduct.FieldParsedItemCode)
	}
	if m.parsed_metal_type != nil {
		fields = append(fields, supplierproduct.FieldParsedMetalType)
	}
	if m.parsed_alloy != nil {
		fields = append(fields, supplierproduct.FieldParsedAlloy)
	}
	if m.parsed_dimensions != nil {
		fields = append(fields, supplierproduct.FieldParsedDimensions)
	}
	if m.parsed_unit_cost != nil {
		fields = append(fields, supplierproduct.FieldParsedUnitCost)
	}
	if m.parsed_price_unit != nil {
		fields = append(fields, supplierproduct.FieldParsedPriceUnit)
	}
	if m.parser_version != nil {
		fields = append(fields, supplierproduct.FieldParserVersion)
	}
	if m.parse_confidence != nil {
		fields = append(fields, supplierproduct.FieldParseConfidence)
	}
	if m.parsed_at != nil {
		fields = append(fields, supplierproduct.FieldParsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, supplierproduct.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, supplierproduct.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplierproduct.FieldSupplierName:
		return m.SupplierName()
	case supplierproduct.FieldItemNo:
		return m.ItemNo()
	case supplierproduct.FieldVariantID:
		return m.VariantID()
	case supplierproduct.FieldProductName:
		return m.ProductName()
	case supplierproduct.FieldDescription:
		return m.Description()
	case supplierproduct.FieldPrice:
		return m.Price()
	case supplierproduct.FieldPriceUnit:
		return m.PriceUnit()
	case supplierproduct.FieldSpecifications:
		return m.Specifications()
	case supplierproduct.FieldParsedItemCode:
		return m.ParsedItemCode()
	case supplierproduct.FieldParsedMetalType:
		return m.ParsedMetalType()
	case supplierproduct.FieldParsedAlloy:
		return m.ParsedAlloy()
	case supplierproduct.FieldParsedDimensions:
		return m.ParsedDimensions()
	case supplierproduct.FieldParsedUnitCost:
		return m.ParsedUnitCost()
	case supplierproduct.FieldParsedPriceUnit:
		return m.ParsedPriceUnit()
	case supplierproduct.FieldParserVersion:
		return m.ParserVersion()
	case supplierproduct.FieldParseConfidence:
		return m.ParseConfidence()
	case supplierproduct.FieldParsedAt:
		return m.ParsedAt()
	case supplierproduct.FieldCreatedAt:
		return m.CreatedAt()
	case supplierproduct.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplierproduct.FieldSupplierName:
		return m.OldSupplierName(ctx)
	case supplierproduct.FieldItemNo:
		return m.OldItemNo(ctx)
	case supplierproduct.FieldVariantID:
		return m.OldVariantID(ctx)
	case supplierproduct.FieldProductName:
		return m.OldProductName(ctx)
	case supplierproduct.FieldDescription:
		return m.OldDescription(ctx)
	case supplierproduct.FieldPrice:
		return m.OldPrice(ctx)
	case supplierproduct.FieldPriceUnit:
		return m.OldPriceUnit(ctx)
	case supplierproduct.FieldSpecifications:
		return m.OldSpecifications(ctx)
	case supplierproduct.FieldParsedItemCode:
		return m.OldParsedItemCode(ctx)
	case supplierproduct.FieldParsedMetalType:
		return m.OldParsedMetalType(ctx)
	case supplierproduct.FieldParsedAlloy:
		return m.OldParsedAlloy(ctx)
	case supplierproduct.FieldParsedDimensions:
		return m.OldParsedDimensions(ctx)
	case supplierproduct.FieldParsedUnitCost:
		return m.OldParsedUnitCost(ctx)
	case supplierproduct.FieldParsedPriceUnit:
		return m.OldParsedPriceUnit(ctx)
	case supplierproduct.FieldParserVersion:
		return m.OldParserVersion(ctx)
	case supplierproduct.FieldParseConfidence:
		return m.OldParseConfidence(ctx)
	case supplierproduct.FieldParsedAt:
		return m.OldParsedAt(ctx)
	case supplierproduct.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case supplierproduct.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupplierProduct field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplierproduct.FieldSupplierName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierName(v)
		return nil
	case supplierproduct.FieldItemNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemNo(v)
		return nil
	case supplierproduct.FieldVariantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantID(v)
		return nil
	case supplierproduct.FieldProductName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductName(v)
		return nil
	case supplierproduct.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case supplierproduct.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case supplierproduct.FieldPriceUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceUnit(v)
		return nil
	case supplierproduct.FieldSpecifications:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecifications(v)
		return nil
	case supplierproduct.FieldParsedItemCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedItemCode(v)
		return nil
	case supplierproduct.FieldParsedMetalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedMetalType(v)
		return nil
	case supplierproduct.FieldParsedAlloy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedAlloy(v)
		return nil
	case supplierproduct.FieldParsedDimensions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedDimensions(v)
		return nil
	case supplierproduct.FieldParsedUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedUnitCost(v)
		return nil
	case supplierproduct.FieldParsedPriceUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedPriceUnit(v)
		return nil
	case supplierproduct.FieldParserVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParserVersion(v)
		return nil
	case supplierproduct.FieldParseConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParseConfidence(v)
		return nil
	case supplierproduct.FieldParsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedAt(v)
		return nil
	case supplierproduct.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case supplierproduct.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierProduct field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierProductMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, supplierproduct.FieldPrice)
	}
	if m.addparsed_unit_cost != nil {
		fields = append(fields, supplierproduct.FieldParsedUnitCost)
	}
	if m.addparse_confidence != nil {
		fields = append(fields, supplierproduct.FieldParseConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierProductMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case supplierproduct.FieldPrice:
		return m.AddedPrice()
	case supplierproduct.FieldParsedUnitCost:
		return m.AddedParsedUnitCost()
	case supplierproduct.FieldParseConfidence:
		return m.AddedParseConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	case supplierproduct.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case supplierproduct.FieldParsedUnitCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParsedUnitCost(v)
		return nil
	case supplierproduct.FieldParseConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParseConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierProduct numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplierproduct.FieldItemNo) {
		fields = append(fields, supplierproduct.FieldItemNo)
	}
	if m.FieldCleared(supplierproduct.FieldVariantID) {
		fields = append(fields, supplierproduct.FieldVariantID)
	}
	if m.FieldCleared(supplierproduct.FieldProductName) {
		fields = append(fields, supplierproduct.FieldProductName)
	}
	if m.FieldCleared(supplierproduct.FieldDescription) {
		fields = append(fields, supplierproduct.FieldDescription)
	}
	if m.FieldCleared(supplierproduct.FieldPrice) {
		fields = append(fields, supplierproduct.FieldPrice)
	}
	if m.FieldCleared(supplierproduct.FieldPriceUnit) {
		fields = append(fields, supplierproduct.FieldPriceUnit)
	}
	if m.FieldCleared(supplierproduct.FieldSpecifications) {
		fields = append(fields, supplierproduct.FieldSpecifications)
	}
	if m.FieldCleared(supplierproduct.FieldParsedItemCode) {
		fields = append(fields, supplierproduct.FieldParsedItemCode)
	}
	if m.FieldCleared(supplierproduct.FieldParsedMetalType) {
		fields = append(fields, supplierproduct.FieldParsedMetalType)
	}
	if m.FieldCleared(supplierproduct.FieldParsedAlloy) {
		fields = append(fields, supplierproduct.FieldParsedAlloy)
	}
	if m.FieldCleared(supplierproduct.FieldParsedDimensions) {
		fields = append(fields, supplierproduct.FieldParsedDimensions)
	}
	if m.FieldCleared(supplierproduct.FieldParsedUnitCost) {
		fields = append(fields, supplierproduct.FieldParsedUnitCost)
	}
	if m.FieldCleared(supplierproduct.FieldParsedPriceUnit) {
		fields = append(fields, supplierproduct.FieldParsedPriceUnit)
	}
	if m.FieldCleared(supplierproduct.FieldParserVersion) {
		fields = append(fields, supplierproduct.FieldParserVersion)
	}
	if m.FieldCleared(supplierproduct.FieldParseConfidence) {
		fields = append(fields, supplierproduct.FieldParseConfidence)
	}
	if m.FieldCleared(supplierproduct.FieldParsedAt) {
		fields = append(fields, supplierproduct.FieldParsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierProductMutation) ClearField(name string) error {
	switch name {
	case supplierproduct.FieldItemNo:
		m.ClearItemNo()
		return nil
	case supplierproduct.FieldVariantID:
		m.ClearVariantID()
		return nil
	case supplierproduct.FieldProductName:
		m.ClearProductName()
		return nil
	case supplierproduct.FieldDescription:
		m.ClearDescription()
		return nil
	case supplierproduct.FieldPrice:
		m.ClearPrice()
		return nil
	case supplierproduct.FieldPriceUnit:
		m.ClearPriceUnit()
		return nil
	case supplierproduct.FieldSpecifications:
		m.ClearSpecifications()
		return nil
	case supplierproduct.FieldParsedItemCode:
		m.ClearParsedItemCode()
		return nil
	case supplierproduct.FieldParsedMetalType:
		m.ClearParsedMetalType()
		return nil
	case supplierproduct.FieldParsedAlloy:
		m.ClearParsedAlloy()
		return nil
	case supplierproduct.FieldParsedDimensions:
		m.ClearParsedDimensions()
		return nil
	case supplierproduct.FieldParsedUnitCost:
		m.ClearParsedUnitCost()
		return nil
	case supplierproduct.FieldParsedPriceUnit:
		m.ClearParsedPriceUnit()
		return nil
	case supplierproduct.FieldParserVersion:
		m.ClearParserVersion()
		return nil
	case supplierproduct.FieldParseConfidence:
		m.ClearParseConfidence()
		return nil
	case supplierproduct.FieldParsedAt:
		m.ClearParsedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierProduct nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierProductMutation) ResetField(name string) error {
	switch name {
	case supplierproduct.FieldSupplierName:
		m.ResetSupplierName()
		return nil
	case supplierproduct.FieldItemNo:
		m.ResetItemNo()
		return nil
	case supplierproduct.FieldVariantID:
		m.ResetVariantID()
		return nil
	case supplierproduct.FieldProductName:
		m.ResetProductName()
		return nil
	case supplierproduct.FieldDescription:
		m.ResetDescription()
		return nil
	case supplierproduct.FieldPrice:
		m.ResetPrice()
		return nil
	case supplierproduct.FieldPriceUnit:
		m.ResetPriceUnit()
		return nil
	case supplierproduct.FieldSpecifications:
		m.ResetSpecifications()
		return nil
	case supplierproduct.FieldParsedItemCode:
		m.ResetParsedItemCode()
		return nil
	case supplierproduct.FieldParsedMetalType:
		m.ResetParsedMetalType()
		return nil
	case supplierproduct.FieldParsedAlloy:
		m.ResetParsedAlloy()
		return nil
	case supplierproduct.FieldParsedDimensions:
		m.ResetParsedDimensions()
		return nil
	case supplierproduct.FieldParsedUnitCost:
		m.ResetParsedUnitCost()
		return nil
	case supplierproduct.FieldParsedPriceUnit:
		m.ResetParsedPriceUnit()
		return nil
	case supplierproduct.FieldParserVersion:
		m.ResetParserVersion()
		return nil
	case supplierproduct.FieldParseConfidence:
		m.ResetParseConfidence()
		return nil
	case supplierproduct.FieldParsedAt:
		m.ResetParsedAt()
		return nil
	case supplierproduct.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case supplierproduct.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierProduct field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierProductMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierProductMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierProductMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierProductMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SupplierProduct unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierProductMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SupplierProduct edge %s", name)
}
