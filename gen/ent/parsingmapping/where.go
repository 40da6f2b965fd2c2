// Code generated by ent, DO NOT EDIT.

package parsingmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldID, id))
}

// MappingKey applies equality check predicate on the "mapping_key" field. It's identical to MappingKeyEQ.
func MappingKey(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldMappingKey, v))
}

// ItemCode applies equality check predicate on the "item_code" field. It's identical to ItemCodeEQ.
func ItemCode(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldItemCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldDescription, v))
}

// MetalType applies equality check predicate on the "metal_type" field. It's identical to MetalTypeEQ.
func MetalType(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldMetalType, v))
}

// Alloy applies equality check predicate on the "alloy" field. It's identical to AlloyEQ.
func Alloy(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldAlloy, v))
}

// Specifics applies equality check predicate on the "specifics" field. It's identical to SpecificsEQ.
func Specifics(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldSpecifics, v))
}

// Dimensions applies equality check predicate on the "dimensions" field. It's identical to DimensionsEQ.
func Dimensions(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldDimensions, v))
}

// UnitCost applies equality check predicate on the "unit_cost" field. It's identical to UnitCostEQ.
func UnitCost(v float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldUnitCost, v))
}

// PriceUnit applies equality check predicate on the "price_unit" field. It's identical to PriceUnitEQ.
func PriceUnit(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldPriceUnit, v))
}

// ParserVersion applies equality check predicate on the "parser_version" field. It's identical to ParserVersionEQ.
func ParserVersion(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldParserVersion, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldConfidence, v))
}

// RawModelOutput applies equality check predicate on the "raw_model_output" field. It's identical to RawModelOutputEQ.
func RawModelOutput(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldRawModelOutput, v))
}

// Validated applies equality check predicate on the "validated" field. It's identical to ValidatedEQ.
func Validated(v bool) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidated, v))
}

// ValidatedBy applies equality check predicate on the "validated_by" field. It's identical to ValidatedByEQ.
func ValidatedBy(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidatedBy, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidationNotes applies equality check predicate on the "validation_notes" field. It's identical to ValidationNotesEQ.
func ValidationNotes(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidationNotes, v))
}

// ItemCodeExists applies equality check predicate on the "item_code_exists" field. It's identical to ItemCodeExistsEQ.
func ItemCodeExists(v bool) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldItemCodeExists, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// MappingKeyEQ applies the EQ predicate on the "mapping_key" field.
func MappingKeyEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldMappingKey, v))
}

// MappingKeyNEQ applies the NEQ predicate on the "mapping_key" field.
func MappingKeyNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldMappingKey, v))
}

// MappingKeyIn applies the In predicate on the "mapping_key" field.
func MappingKeyIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldMappingKey, vs...))
}

// MappingKeyNotIn applies the NotIn predicate on the "mapping_key" field.
func MappingKeyNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldMappingKey, vs...))
}

// MappingKeyGT applies the GT predicate on the "mapping_key" field.
func MappingKeyGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldMappingKey, v))
}

// MappingKeyGTE applies the GTE predicate on the "mapping_key" field.
func MappingKeyGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldMappingKey, v))
}

// MappingKeyLT applies the LT predicate on the "mapping_key" field.
func MappingKeyLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldMappingKey, v))
}

// MappingKeyLTE applies the LTE predicate on the "mapping_key" field.
func MappingKeyLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldMappingKey, v))
}

// MappingKeyContains applies the Contains predicate on the "mapping_key" field.
func MappingKeyContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldMappingKey, v))
}

// MappingKeyHasPrefix applies the HasPrefix predicate on the "mapping_key" field.
func MappingKeyHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldMappingKey, v))
}

// MappingKeyHasSuffix applies the HasSuffix predicate on the "mapping_key" field.
func MappingKeyHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldMappingKey, v))
}

// MappingKeyEqualFold applies the EqualFold predicate on the "mapping_key" field.
func MappingKeyEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldMappingKey, v))
}

// MappingKeyContainsFold applies the ContainsFold predicate on the "mapping_key" field.
func MappingKeyContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldMappingKey, v))
}

// ItemCodeEQ applies the EQ predicate on the "item_code" field.
func ItemCodeEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldItemCode, v))
}

// ItemCodeNEQ applies the NEQ predicate on the "item_code" field.
func ItemCodeNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldItemCode, v))
}

// ItemCodeIn applies the In predicate on the "item_code" field.
func ItemCodeIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldItemCode, vs...))
}

// ItemCodeNotIn applies the NotIn predicate on the "item_code" field.
func ItemCodeNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldItemCode, vs...))
}

// ItemCodeGT applies the GT predicate on the "item_code" field.
func ItemCodeGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldItemCode, v))
}

// ItemCodeGTE applies the GTE predicate on the "item_code" field.
func ItemCodeGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldItemCode, v))
}

// ItemCodeLT applies the LT predicate on the "item_code" field.
func ItemCodeLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldItemCode, v))
}

// ItemCodeLTE applies the LTE predicate on the "item_code" field.
func ItemCodeLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldItemCode, v))
}

// ItemCodeContains applies the Contains predicate on the "item_code" field.
func ItemCodeContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldItemCode, v))
}

// ItemCodeHasPrefix applies the HasPrefix predicate on the "item_code" field.
func ItemCodeHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldItemCode, v))
}

// ItemCodeHasSuffix applies the HasSuffix predicate on the "item_code" field.
func ItemCodeHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldItemCode, v))
}

// ItemCodeIsNil applies the IsNil predicate on the "item_code" field.
func ItemCodeIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldItemCode))
}

// ItemCodeNotNil applies the NotNil predicate on the "item_code" field.
func ItemCodeNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldItemCode))
}

// ItemCodeEqualFold applies the EqualFold predicate on the "item_code" field.
func ItemCodeEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldItemCode, v))
}

// ItemCodeContainsFold applies the ContainsFold predicate on the "item_code" field.
func ItemCodeContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldItemCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldDescription, v))
}

// MetalTypeEQ applies the EQ predicate on the "metal_type" field.
func MetalTypeEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldMetalType, v))
}

// MetalTypeNEQ applies the NEQ predicate on the "metal_type" field.
func MetalTypeNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldMetalType, v))
}

// MetalTypeIn applies the In predicate on the "metal_type" field.
func MetalTypeIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldMetalType, vs...))
}

// MetalTypeNotIn applies the NotIn predicate on the "metal_type" field.
func MetalTypeNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldMetalType, vs...))
}

// MetalTypeGT applies the GT predicate on the "metal_type" field.
func MetalTypeGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldMetalType, v))
}

// MetalTypeGTE applies the GTE predicate on the "metal_type" field.
func MetalTypeGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldMetalType, v))
}

// MetalTypeLT applies the LT predicate on the "metal_type" field.
func MetalTypeLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldMetalType, v))
}

// MetalTypeLTE applies the LTE predicate on the "metal_type" field.
func MetalTypeLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldMetalType, v))
}

// MetalTypeContains applies the Contains predicate on the "metal_type" field.
func MetalTypeContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldMetalType, v))
}

// MetalTypeHasPrefix applies the HasPrefix predicate on the "metal_type" field.
func MetalTypeHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldMetalType, v))
}

// MetalTypeHasSuffix applies the HasSuffix predicate on the "metal_type" field.
func MetalTypeHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldMetalType, v))
}

// MetalTypeIsNil applies the IsNil predicate on the "metal_type" field.
func MetalTypeIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldMetalType))
}

// MetalTypeNotNil applies the NotNil predicate on the "metal_type" field.
func MetalTypeNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldMetalType))
}

// MetalTypeEqualFold applies the EqualFold predicate on the "metal_type" field.
func MetalTypeEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldMetalType, v))
}

// MetalTypeContainsFold applies the ContainsFold predicate on the "metal_type" field.
func MetalTypeContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldMetalType, v))
}

// AlloyEQ applies the EQ predicate on the "alloy" field.
func AlloyEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldAlloy, v))
}

// AlloyNEQ applies the NEQ predicate on the "alloy" field.
func AlloyNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldAlloy, v))
}

// AlloyIn applies the In predicate on the "alloy" field.
func AlloyIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldAlloy, vs...))
}

// AlloyNotIn applies the NotIn predicate on the "alloy" field.
func AlloyNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldAlloy, vs...))
}

// AlloyGT applies the GT predicate on the "alloy" field.
func AlloyGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldAlloy, v))
}

// AlloyGTE applies the GTE predicate on the "alloy" field.
func AlloyGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldAlloy, v))
}

// AlloyLT applies the LT predicate on the "alloy" field.
func AlloyLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldAlloy, v))
}

// AlloyLTE applies the LTE predicate on the "alloy" field.
func AlloyLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldAlloy, v))
}

// AlloyContains applies the Contains predicate on the "alloy" field.
func AlloyContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldAlloy, v))
}

// AlloyHasPrefix applies the HasPrefix predicate on the "alloy" field.
func AlloyHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldAlloy, v))
}

// AlloyHasSuffix applies the HasSuffix predicate on the "alloy" field.
func AlloyHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldAlloy, v))
}

// AlloyIsNil applies the IsNil predicate on the "alloy" field.
func AlloyIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldAlloy))
}

// AlloyNotNil applies the NotNil predicate on the "alloy" field.
func AlloyNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldAlloy))
}

// AlloyEqualFold applies the EqualFold predicate on the "alloy" field.
func AlloyEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldAlloy, v))
}

// AlloyContainsFold applies the ContainsFold predicate on the "alloy" field.
func AlloyContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldAlloy, v))
}

// SpecificsEQ applies the EQ predicate on the "specifics" field.
func SpecificsEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldSpecifics, v))
}

// SpecificsNEQ applies the NEQ predicate on the "specifics" field.
func SpecificsNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldSpecifics, v))
}

// SpecificsIn applies the In predicate on the "specifics" field.
func SpecificsIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldSpecifics, vs...))
}

// SpecificsNotIn applies the NotIn predicate on the "specifics" field.
func SpecificsNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldSpecifics, vs...))
}

// SpecificsGT applies the GT predicate on the "specifics" field.
func SpecificsGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldSpecifics, v))
}

// SpecificsGTE applies the GTE predicate on the "specifics" field.
func SpecificsGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldSpecifics, v))
}

// SpecificsLT applies the LT predicate on the "specifics" field.
func SpecificsLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldSpecifics, v))
}

// SpecificsLTE applies the LTE predicate on the "specifics" field.
func SpecificsLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldSpecifics, v))
}

// SpecificsContains applies the Contains predicate on the "specifics" field.
func SpecificsContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldSpecifics, v))
}

// SpecificsHasPrefix applies the HasPrefix predicate on the "specifics" field.
func SpecificsHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldSpecifics, v))
}

// SpecificsHasSuffix applies the HasSuffix predicate on the "specifics" field.
func SpecificsHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldSpecifics, v))
}

// SpecificsIsNil applies the IsNil predicate on the "specifics" field.
func SpecificsIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldSpecifics))
}

// SpecificsNotNil applies the NotNil predicate on the "specifics" field.
func SpecificsNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldSpecifics))
}

// SpecificsEqualFold applies the EqualFold predicate on the "specifics" field.
func SpecificsEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldSpecifics, v))
}

// SpecificsContainsFold applies the ContainsFold predicate on the "specifics" field.
func SpecificsContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldSpecifics, v))
}

// DimensionsEQ applies the EQ predicate on the "dimensions" field.
func DimensionsEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldDimensions, v))
}

// DimensionsNEQ applies the NEQ predicate on the "dimensions" field.
func DimensionsNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldDimensions, v))
}

// DimensionsIn applies the In predicate on the "dimensions" field.
func DimensionsIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldDimensions, vs...))
}

// DimensionsNotIn applies the NotIn predicate on the "dimensions" field.
func DimensionsNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldDimensions, vs...))
}

// DimensionsGT applies the GT predicate on the "dimensions" field.
func DimensionsGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldDimensions, v))
}

// DimensionsGTE applies the GTE predicate on the "dimensions" field.
func DimensionsGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldDimensions, v))
}

// DimensionsLT applies the LT predicate on the "dimensions" field.
func DimensionsLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldDimensions, v))
}

// DimensionsLTE applies the LTE predicate on the "dimensions" field.
func DimensionsLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldDimensions, v))
}

// DimensionsContains applies the Contains predicate on the "dimensions" field.
func DimensionsContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldDimensions, v))
}

// DimensionsHasPrefix applies the HasPrefix predicate on the "dimensions" field.
func DimensionsHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldDimensions, v))
}

// DimensionsHasSuffix applies the HasSuffix predicate on the "dimensions" field.
func DimensionsHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldDimensions, v))
}

// DimensionsIsNil applies the IsNil predicate on the "dimensions" field.
func DimensionsIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldDimensions))
}

// DimensionsNotNil applies the NotNil predicate on the "dimensions" field.
func DimensionsNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldDimensions))
}

// DimensionsEqualFold applies the EqualFold predicate on the "dimensions" field.
func DimensionsEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldDimensions, v))
}

// DimensionsContainsFold applies the ContainsFold predicate on the "dimensions" field.
func DimensionsContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldDimensions, v))
}

// UnitCostEQ applies the EQ predicate on the "unit_cost" field.
func UnitCostEQ(v float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldUnitCost, v))
}

// UnitCostNEQ applies the NEQ predicate on the "unit_cost" field.
func UnitCostNEQ(v float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldUnitCost, v))
}

// UnitCostIn applies the In predicate on the "unit_cost" field.
func UnitCostIn(vs ...float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldUnitCost, vs...))
}

// UnitCostNotIn applies the NotIn predicate on the "unit_cost" field.
func UnitCostNotIn(vs ...float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldUnitCost, vs...))
}

// UnitCostGT applies the GT predicate on the "unit_cost" field.
func UnitCostGT(v float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldUnitCost, v))
}

// UnitCostGTE applies the GTE predicate on the "unit_cost" field.
func UnitCostGTE(v float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldUnitCost, v))
}

// UnitCostLT applies the LT predicate on the "unit_cost" field.
func UnitCostLT(v float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldUnitCost, v))
}

// UnitCostLTE applies the LTE predicate on the "unit_cost" field.
func UnitCostLTE(v float64) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldUnitCost, v))
}

// UnitCostIsNil applies the IsNil predicate on the "unit_cost" field.
func UnitCostIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldUnitCost))
}

// UnitCostNotNil applies the NotNil predicate on the "unit_cost" field.
func UnitCostNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldUnitCost))
}

// PriceUnitEQ applies the EQ predicate on the "price_unit" field.
func PriceUnitEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldPriceUnit, v))
}

// PriceUnitNEQ applies the NEQ predicate on the "price_unit" field.
func PriceUnitNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldPriceUnit, v))
}

// PriceUnitIn applies the In predicate on the "price_unit" field.
func PriceUnitIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldPriceUnit, vs...))
}

// PriceUnitNotIn applies the NotIn predicate on the "price_unit" field.
func PriceUnitNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldPriceUnit, vs...))
}

// PriceUnitGT applies the GT predicate on the "price_unit" field.
func PriceUnitGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldPriceUnit, v))
}

// PriceUnitGTE applies the GTE predicate on the "price_unit" field.
func PriceUnitGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldPriceUnit, v))
}

// PriceUnitLT applies the LT predicate on the "price_unit" field.
func PriceUnitLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldPriceUnit, v))
}

// PriceUnitLTE applies the LTE predicate on the "price_unit" field.
func PriceUnitLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldPriceUnit, v))
}

// PriceUnitContains applies the Contains predicate on the "price_unit" field.
func PriceUnitContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldPriceUnit, v))
}

// PriceUnitHasPrefix applies the HasPrefix predicate on the "price_unit" field.
func PriceUnitHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldPriceUnit, v))
}

// PriceUnitHasSuffix applies the HasSuffix predicate on the "price_unit" field.
func PriceUnitHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldPriceUnit, v))
}

// PriceUnitIsNil applies the IsNil predicate on the "price_unit" field.
func PriceUnitIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldPriceUnit))
}

// PriceUnitNotNil applies the NotNil predicate on the "price_unit" field.
func PriceUnitNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldPriceUnit))
}

// PriceUnitEqualFold applies the EqualFold predicate on the "price_unit" field.
func PriceUnitEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldPriceUnit, v))
}

// PriceUnitContainsFold applies the ContainsFold predicate on the "price_unit" field.
func PriceUnitContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldPriceUnit, v))
}

// ParserVersionEQ applies the EQ predicate on the "parser_version" field.
func ParserVersionEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldParserVersion, v))
}

// ParserVersionNEQ applies the NEQ predicate on the "parser_version" field.
func ParserVersionNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldParserVersion, v))
}

// ParserVersionIn applies the In predicate on the "parser_version" field.
func ParserVersionIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldParserVersion, vs...))
}

// ParserVersionNotIn applies the NotIn predicate on the "parser_version" field.
func ParserVersionNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldParserVersion, vs...))
}

// ParserVersionGT applies the GT predicate on the "parser_version" field.
func ParserVersionGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldParserVersion, v))
}

// ParserVersionGTE applies the GTE predicate on the "parser_version" field.
func ParserVersionGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldParserVersion, v))
}

// ParserVersionLT applies the LT predicate on the "parser_version" field.
func ParserVersionLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldParserVersion, v))
}

// ParserVersionLTE applies the LTE predicate on the "parser_version" field.
func ParserVersionLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldParserVersion, v))
}

// ParserVersionContains applies the Contains predicate on the "parser_version" field.
func ParserVersionContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldParserVersion, v))
}

// ParserVersionHasPrefix applies the HasPrefix predicate on the "parser_version" field.
func ParserVersionHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldParserVersion, v))
}

// ParserVersionHasSuffix applies the HasSuffix predicate on the "parser_version" field.
func ParserVersionHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldParserVersion, v))
}

// ParserVersionEqualFold applies the EqualFold predicate on the "parser_version" field.
func ParserVersionEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldParserVersion, v))
}

// ParserVersionContainsFold applies the ContainsFold predicate on the "parser_version" field.
func ParserVersionContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldParserVersion, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldConfidence))
}

// RawModelOutputEQ applies the EQ predicate on the "raw_model_output" field.
func RawModelOutputEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldRawModelOutput, v))
}

// RawModelOutputNEQ applies the NEQ predicate on the "raw_model_output" field.
func RawModelOutputNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldRawModelOutput, v))
}

// RawModelOutputIn applies the In predicate on the "raw_model_output" field.
func RawModelOutputIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldRawModelOutput, vs...))
}

// RawModelOutputNotIn applies the NotIn predicate on the "raw_model_output" field.
func RawModelOutputNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldRawModelOutput, vs...))
}

// RawModelOutputGT applies the GT predicate on the "raw_model_output" field.
func RawModelOutputGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldRawModelOutput, v))
}

// RawModelOutputGTE applies the GTE predicate on the "raw_model_output" field.
func RawModelOutputGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldRawModelOutput, v))
}

// RawModelOutputLT applies the LT predicate on the "raw_model_output" field.
func RawModelOutputLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldRawModelOutput, v))
}

// RawModelOutputLTE applies the LTE predicate on the "raw_model_output" field.
func RawModelOutputLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldRawModelOutput, v))
}

// RawModelOutputContains applies the Contains predicate on the "raw_model_output" field.
func RawModelOutputContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldRawModelOutput, v))
}

// RawModelOutputHasPrefix applies the HasPrefix predicate on the "raw_model_output" field.
func RawModelOutputHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldRawModelOutput, v))
}

// RawModelOutputHasSuffix applies the HasSuffix predicate on the "raw_model_output" field.
func RawModelOutputHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldRawModelOutput, v))
}

// RawModelOutputIsNil applies the IsNil predicate on the "raw_model_output" field.
func RawModelOutputIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldRawModelOutput))
}

// RawModelOutputNotNil applies the NotNil predicate on the "raw_model_output" field.
func RawModelOutputNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldRawModelOutput))
}

// RawModelOutputEqualFold applies the EqualFold predicate on the "raw_model_output" field.
func RawModelOutputEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldRawModelOutput, v))
}

// RawModelOutputContainsFold applies the ContainsFold predicate on the "raw_model_output" field.
func RawModelOutputContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldRawModelOutput, v))
}

// ValidatedEQ applies the EQ predicate on the "validated" field.
func ValidatedEQ(v bool) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidated, v))
}

// ValidatedNEQ applies the NEQ predicate on the "validated" field.
func ValidatedNEQ(v bool) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldValidated, v))
}

// ValidatedByEQ applies the EQ predicate on the "validated_by" field.
func ValidatedByEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidatedBy, v))
}

// ValidatedByNEQ applies the NEQ predicate on the "validated_by" field.
func ValidatedByNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldValidatedBy, v))
}

// ValidatedByIn applies the In predicate on the "validated_by" field.
func ValidatedByIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldValidatedBy, vs...))
}

// ValidatedByNotIn applies the NotIn predicate on the "validated_by" field.
func ValidatedByNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldValidatedBy, vs...))
}

// ValidatedByGT applies the GT predicate on the "validated_by" field.
func ValidatedByGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldValidatedBy, v))
}

// ValidatedByGTE applies the GTE predicate on the "validated_by" field.
func ValidatedByGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldValidatedBy, v))
}

// ValidatedByLT applies the LT predicate on the "validated_by" field.
func ValidatedByLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldValidatedBy, v))
}

// ValidatedByLTE applies the LTE predicate on the "validated_by" field.
func ValidatedByLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldValidatedBy, v))
}

// ValidatedByContains applies the Contains predicate on the "validated_by" field.
func ValidatedByContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldValidatedBy, v))
}

// ValidatedByHasPrefix applies the HasPrefix predicate on the "validated_by" field.
func ValidatedByHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldValidatedBy, v))
}

// ValidatedByHasSuffix applies the HasSuffix predicate on the "validated_by" field.
func ValidatedByHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldValidatedBy, v))
}

// ValidatedByIsNil applies the IsNil predicate on the "validated_by" field.
func ValidatedByIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldValidatedBy))
}

// ValidatedByNotNil applies the NotNil predicate on the "validated_by" field.
func ValidatedByNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldValidatedBy))
}

// ValidatedByEqualFold applies the EqualFold predicate on the "validated_by" field.
func ValidatedByEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldValidatedBy, v))
}

// ValidatedByContainsFold applies the ContainsFold predicate on the "validated_by" field.
func ValidatedByContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldValidatedBy, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldValidatedAt))
}

// ValidationNotesEQ applies the EQ predicate on the "validation_notes" field.
func ValidationNotesEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldValidationNotes, v))
}

// ValidationNotesNEQ applies the NEQ predicate on the "validation_notes" field.
func ValidationNotesNEQ(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldValidationNotes, v))
}

// ValidationNotesIn applies the In predicate on the "validation_notes" field.
func ValidationNotesIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldValidationNotes, vs...))
}

// ValidationNotesNotIn applies the NotIn predicate on the "validation_notes" field.
func ValidationNotesNotIn(vs ...string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldValidationNotes, vs...))
}

// ValidationNotesGT applies the GT predicate on the "validation_notes" field.
func ValidationNotesGT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldValidationNotes, v))
}

// ValidationNotesGTE applies the GTE predicate on the "validation_notes" field.
func ValidationNotesGTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldValidationNotes, v))
}

// ValidationNotesLT applies the LT predicate on the "validation_notes" field.
func ValidationNotesLT(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldValidationNotes, v))
}

// ValidationNotesLTE applies the LTE predicate on the "validation_notes" field.
func ValidationNotesLTE(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldValidationNotes, v))
}

// ValidationNotesContains applies the Contains predicate on the "validation_notes" field.
func ValidationNotesContains(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContains(FieldValidationNotes, v))
}

// ValidationNotesHasPrefix applies the HasPrefix predicate on the "validation_notes" field.
func ValidationNotesHasPrefix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasPrefix(FieldValidationNotes, v))
}

// ValidationNotesHasSuffix applies the HasSuffix predicate on the "validation_notes" field.
func ValidationNotesHasSuffix(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldHasSuffix(FieldValidationNotes, v))
}

// ValidationNotesIsNil applies the IsNil predicate on the "validation_notes" field.
func ValidationNotesIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldValidationNotes))
}

// ValidationNotesNotNil applies the NotNil predicate on the "validation_notes" field.
func ValidationNotesNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldValidationNotes))
}

// ValidationNotesEqualFold applies the EqualFold predicate on the "validation_notes" field.
func ValidationNotesEqualFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEqualFold(FieldValidationNotes, v))
}

// ValidationNotesContainsFold applies the ContainsFold predicate on the "validation_notes" field.
func ValidationNotesContainsFold(v string) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldContainsFold(FieldValidationNotes, v))
}

// ItemCodeExistsEQ applies the EQ predicate on the "item_code_exists" field.
func ItemCodeExistsEQ(v bool) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldItemCodeExists, v))
}

// ItemCodeExistsNEQ applies the NEQ predicate on the "item_code_exists" field.
func ItemCodeExistsNEQ(v bool) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldItemCodeExists, v))
}

// ItemCodeExistsIsNil applies the IsNil predicate on the "item_code_exists" field.
func ItemCodeExistsIsNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIsNull(FieldItemCodeExists))
}

// ItemCodeExistsNotNil applies the NotNil predicate on the "item_code_exists" field.
func ItemCodeExistsNotNil() predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotNull(FieldItemCodeExists))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParsingMapping) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParsingMapping) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParsingMapping) predicate.ParsingMapping {
	return predicate.ParsingMapping(sql.NotPredicates(p))
}
