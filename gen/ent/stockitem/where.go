// Code generated by ent, DO NOT EDIT.

package stockitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldID, id))
}

// ItemCode applies equality check predicate on the "item_code" field. It's identical to ItemCodeEQ.
func ItemCode(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldItemCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldDescription, v))
}

// UnitCost applies equality check predicate on the "unit_cost" field. It's identical to UnitCostEQ.
func UnitCost(v float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldUnitCost, v))
}

// PriceUnit applies equality check predicate on the "price_unit" field. It's identical to PriceUnitEQ.
func PriceUnit(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldPriceUnit, v))
}

// ParsedMetalType applies equality check predicate on the "parsed_metal_type" field. It's identical to ParsedMetalTypeEQ.
func ParsedMetalType(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedMetalType, v))
}

// ParsedAlloy applies equality check predicate on the "parsed_alloy" field. It's identical to ParsedAlloyEQ.
func ParsedAlloy(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedAlloy, v))
}

// ParsedDimensions applies equality check predicate on the "parsed_dimensions" field. It's identical to ParsedDimensionsEQ.
func ParsedDimensions(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedDimensions, v))
}

// ParserVersion applies equality check predicate on the "parser_version" field. It's identical to ParserVersionEQ.
func ParserVersion(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParserVersion, v))
}

// ParseConfidence applies equality check predicate on the "parse_confidence" field. It's identical to ParseConfidenceEQ.
func ParseConfidence(v float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParseConfidence, v))
}

// ParsedAt applies equality check predicate on the "parsed_at" field. It's identical to ParsedAtEQ.
func ParsedAt(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// ItemCodeEQ applies the EQ predicate on the "item_code" field.
func ItemCodeEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldItemCode, v))
}

// ItemCodeNEQ applies the NEQ predicate on the "item_code" field.
func ItemCodeNEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldItemCode, v))
}

// ItemCodeIn applies the In predicate on the "item_code" field.
func ItemCodeIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldItemCode, vs...))
}

// ItemCodeNotIn applies the NotIn predicate on the "item_code" field.
func ItemCodeNotIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldItemCode, vs...))
}

// ItemCodeGT applies the GT predicate on the "item_code" field.
func ItemCodeGT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldItemCode, v))
}

// ItemCodeGTE applies the GTE predicate on the "item_code" field.
func ItemCodeGTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldItemCode, v))
}

// ItemCodeLT applies the LT predicate on the "item_code" field.
func ItemCodeLT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldItemCode, v))
}

// ItemCodeLTE applies the LTE predicate on the "item_code" field.
func ItemCodeLTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldItemCode, v))
}

// ItemCodeContains applies the Contains predicate on the "item_code" field.
func ItemCodeContains(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContains(FieldItemCode, v))
}

// ItemCodeHasPrefix applies the HasPrefix predicate on the "item_code" field.
func ItemCodeHasPrefix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasPrefix(FieldItemCode, v))
}

// ItemCodeHasSuffix applies the HasSuffix predicate on the "item_code" field.
func ItemCodeHasSuffix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasSuffix(FieldItemCode, v))
}

// ItemCodeEqualFold applies the EqualFold predicate on the "item_code" field.
func ItemCodeEqualFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEqualFold(FieldItemCode, v))
}

// ItemCodeContainsFold applies the ContainsFold predicate on the "item_code" field.
func ItemCodeContainsFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContainsFold(FieldItemCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContainsFold(FieldDescription, v))
}

// UnitCostEQ applies the EQ predicate on the "unit_cost" field.
func UnitCostEQ(v float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldUnitCost, v))
}

// UnitCostNEQ applies the NEQ predicate on the "unit_cost" field.
func UnitCostNEQ(v float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldUnitCost, v))
}

// UnitCostIn applies the In predicate on the "unit_cost" field.
func UnitCostIn(vs ...float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldUnitCost, vs...))
}

// UnitCostNotIn applies the NotIn predicate on the "unit_cost" field.
func UnitCostNotIn(vs ...float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldUnitCost, vs...))
}

// UnitCostGT applies the GT predicate on the "unit_cost" field.
func UnitCostGT(v float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldUnitCost, v))
}

// UnitCostGTE applies the GTE predicate on the "unit_cost" field.
func UnitCostGTE(v float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldUnitCost, v))
}

// UnitCostLT applies the LT predicate on the "unit_cost" field.
func UnitCostLT(v float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldUnitCost, v))
}

// UnitCostLTE applies the LTE predicate on the "unit_cost" field.
func UnitCostLTE(v float64) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldUnitCost, v))
}

// UnitCostIsNil applies the IsNil predicate on the "unit_cost" field.
func UnitCostIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldUnitCost))
}

// UnitCostNotNil applies the NotNil predicate on the "unit_cost" field.
func UnitCostNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldUnitCost))
}

// PriceUnitEQ applies the EQ predicate on the "price_unit" field.
func PriceUnitEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldPriceUnit, v))
}

// PriceUnitNEQ applies the NEQ predicate on the "price_unit" field.
func PriceUnitNEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldPriceUnit, v))
}

// PriceUnitIn applies the In predicate on the "price_unit" field.
func PriceUnitIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldPriceUnit, vs...))
}

// PriceUnitNotIn applies the NotIn predicate on the "price_unit" field.
func PriceUnitNotIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldPriceUnit, vs...))
}

// PriceUnitGT applies the GT predicate on the "price_unit" field.
func PriceUnitGT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldPriceUnit, v))
}

// PriceUnitGTE applies the GTE predicate on the "price_unit" field.
func PriceUnitGTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldPriceUnit, v))
}

// PriceUnitLT applies the LT predicate on the "price_unit" field.
func PriceUnitLT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldPriceUnit, v))
}

// PriceUnitLTE applies the LTE predicate on the "price_unit" field.
func PriceUnitLTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldPriceUnit, v))
}

// PriceUnitContains applies the Contains predicate on the "price_unit" field.
func PriceUnitContains(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContains(FieldPriceUnit, v))
}

// PriceUnitHasPrefix applies the HasPrefix predicate on the "price_unit" field.
func PriceUnitHasPrefix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasPrefix(FieldPriceUnit, v))
}

// PriceUnitHasSuffix applies the HasSuffix predicate on the "price_unit" field.
func PriceUnitHasSuffix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasSuffix(FieldPriceUnit, v))
}

// PriceUnitIsNil applies the IsNil predicate on the "price_unit" field.
func PriceUnitIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldPriceUnit))
}

// PriceUnitNotNil applies the NotNil predicate on the "price_unit" field.
func PriceUnitNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldPriceUnit))
}

// PriceUnitEqualFold applies the EqualFold predicate on the "price_unit" field.
func PriceUnitEqualFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEqualFold(FieldPriceUnit, v))
}

// PriceUnitContainsFold applies the ContainsFold predicate on the "price_unit" field.
func PriceUnitContainsFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContainsFold(FieldPriceUnit, v))
}

// ParsedMetalTypeEQ applies the EQ predicate on the "parsed_metal_type" field.
func ParsedMetalTypeEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedMetalType, v))
}

// ParsedMetalTypeNEQ applies the NEQ predicate on the "parsed_metal_type" field.
func ParsedMetalTypeNEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldParsedMetalType, v))
}

// ParsedMetalTypeIn applies the In predicate on the "parsed_metal_type" field.
func ParsedMetalTypeIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldParsedMetalType, vs...))
}

// ParsedMetalTypeNotIn applies the NotIn predicate on the "parsed_metal_type" field.
func ParsedMetalTypeNotIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldParsedMetalType, vs...))
}

// ParsedMetalTypeGT applies the GT predicate on the "parsed_metal_type" field.
func ParsedMetalTypeGT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldParsedMetalType, v))
}

// ParsedMetalTypeGTE applies the GTE predicate on the "parsed_metal_type" field.
func ParsedMetalTypeGTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldParsedMetalType, v))
}

// ParsedMetalTypeLT applies the LT predicate on the "parsed_metal_type" field.
func ParsedMetalTypeLT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldParsedMetalType, v))
}

// ParsedMetalTypeLTE applies the LTE predicate on the "parsed_metal_type" field.
func ParsedMetalTypeLTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldParsedMetalType, v))
}

// ParsedMetalTypeContains applies the Contains predicate on the "parsed_metal_type" field.
func ParsedMetalTypeContains(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContains(FieldParsedMetalType, v))
}

// ParsedMetalTypeHasPrefix applies the HasPrefix predicate on the "parsed_metal_type" field.
func ParsedMetalTypeHasPrefix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasPrefix(FieldParsedMetalType, v))
}

// ParsedMetalTypeHasSuffix applies the HasSuffix predicate on the "parsed_metal_type" field.
func ParsedMetalTypeHasSuffix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasSuffix(FieldParsedMetalType, v))
}

// ParsedMetalTypeIsNil applies the IsNil predicate on the "parsed_metal_type" field.
func ParsedMetalTypeIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldParsedMetalType))
}

// ParsedMetalTypeNotNil applies the NotNil predicate on the "parsed_metal_type" field.
func ParsedMetalTypeNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldParsedMetalType))
}

// ParsedMetalTypeEqualFold applies the EqualFold predicate on the "parsed_metal_type" field.
func ParsedMetalTypeEqualFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEqualFold(FieldParsedMetalType, v))
}

// ParsedMetalTypeContainsFold applies the ContainsFold predicate on the "parsed_metal_type" field.
func ParsedMetalTypeContainsFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContainsFold(FieldParsedMetalType, v))
}

// ParsedAlloyEQ applies the EQ predicate on the "parsed_alloy" field.
func ParsedAlloyEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedAlloy, v))
}

// ParsedAlloyNEQ applies the NEQ predicate on the "parsed_alloy" field.
func ParsedAlloyNEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldParsedAlloy, v))
}

// ParsedAlloyIn applies the In predicate on the "parsed_alloy" field.
func ParsedAlloyIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldParsedAlloy, vs...))
}

// ParsedAlloyNotIn applies the NotIn predicate on the "parsed_alloy" field.
func ParsedAlloyNotIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldParsedAlloy, vs...))
}

// ParsedAlloyGT applies the GT predicate on the "parsed_alloy" field.
func ParsedAlloyGT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldParsedAlloy, v))
}

// ParsedAlloyGTE applies the GTE predicate on the "parsed_alloy" field.
func ParsedAlloyGTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldParsedAlloy, v))
}

// ParsedAlloyLT applies the LT predicate on the "parsed_alloy" field.
func ParsedAlloyLT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldParsedAlloy, v))
}

// ParsedAlloyLTE applies the LTE predicate on the "parsed_alloy" field.
func ParsedAlloyLTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldParsedAlloy, v))
}

// ParsedAlloyContains applies the Contains predicate on the "parsed_alloy" field.
func ParsedAlloyContains(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContains(FieldParsedAlloy, v))
}

// ParsedAlloyHasPrefix applies the HasPrefix predicate on the "parsed_alloy" field.
func ParsedAlloyHasPrefix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasPrefix(FieldParsedAlloy, v))
}

// ParsedAlloyHasSuffix applies the HasSuffix predicate on the "parsed_alloy" field.
func ParsedAlloyHasSuffix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasSuffix(FieldParsedAlloy, v))
}

// ParsedAlloyIsNil applies the IsNil predicate on the "parsed_alloy" field.
func ParsedAlloyIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldParsedAlloy))
}

// ParsedAlloyNotNil applies the NotNil predicate on the "parsed_alloy" field.
func ParsedAlloyNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldParsedAlloy))
}

// ParsedAlloyEqualFold applies the EqualFold predicate on the "parsed_alloy" field.
func ParsedAlloyEqualFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEqualFold(FieldParsedAlloy, v))
}

// ParsedAlloyContainsFold applies the ContainsFold predicate on the "parsed_alloy" field.
func ParsedAlloyContainsFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContainsFold(FieldParsedAlloy, v))
}

// ParsedDimensionsEQ applies the EQ predicate on the "parsed_dimensions" field.
func ParsedDimensionsEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedDimensions, v))
}

// ParsedDimensionsNEQ applies the NEQ predicate on the "parsed_dimensions" field.
func ParsedDimensionsNEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldParsedDimensions, v))
}

// ParsedDimensionsIn applies the In predicate on the "parsed_dimensions" field.
func ParsedDimensionsIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldParsedDimensions, vs...))
}

// ParsedDimensionsNotIn applies the NotIn predicate on the "parsed_dimensions" field.
func ParsedDimensionsNotIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldParsedDimensions, vs...))
}

// ParsedDimensionsGT applies the GT predicate on the "parsed_dimensions" field.
func ParsedDimensionsGT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldParsedDimensions, v))
}

// ParsedDimensionsGTE applies the GTE predicate on the "parsed_dimensions" field.
func ParsedDimensionsGTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldParsedDimensions, v))
}

// ParsedDimensionsLT applies the LT predicate on the "parsed_dimensions" field.
func ParsedDimensionsLT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldParsedDimensions, v))
}

// ParsedDimensionsLTE applies the LTE predicate on the "parsed_dimensions" field.
func ParsedDimensionsLTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldParsedDimensions, v))
}

// ParsedDimensionsContains applies the Contains predicate on the "parsed_dimensions" field.
func ParsedDimensionsContains(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContains(FieldParsedDimensions, v))
}

// ParsedDimensionsHasPrefix applies the HasPrefix predicate on the "parsed_dimensions" field.
func ParsedDimensionsHasPrefix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasPrefix(FieldParsedDimensions, v))
}

// ParsedDimensionsHasSuffix applies the HasSuffix predicate on the "parsed_dimensions" field.
func ParsedDimensionsHasSuffix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasSuffix(FieldParsedDimensions, v))
}

// ParsedDimensionsIsNil applies the IsNil predicate on the "parsed_dimensions" field.
func ParsedDimensionsIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldParsedDimensions))
}

// ParsedDimensionsNotNil applies the NotNil predicate on the "parsed_dimensions" field.
func ParsedDimensionsNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldParsedDimensions))
}

// ParsedDimensionsEqualFold applies the EqualFold predicate on the "parsed_dimensions" field.
func ParsedDimensionsEqualFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEqualFold(FieldParsedDimensions, v))
}

// ParsedDimensionsContainsFold applies the ContainsFold predicate on the "parsed_dimensions" field.
func ParsedDimensionsContainsFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContainsFold(FieldParsedDimensions, v))
}

// ParserVersionEQ applies the EQ predicate on the "parser_version" field.
func ParserVersionEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParserVersion, v))
}

// ParserVersionNEQ applies the NEQ predicate on the "parser_version" field.
func ParserVersionNEQ(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldParserVersion, v))
}

// ParserVersionIn applies the In predicate on the "parser_version" field.
func ParserVersionIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldParserVersion, vs...))
}

// ParserVersionNotIn applies the NotIn predicate on the "parser_version" field.
func ParserVersionNotIn(vs ...string) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldParserVersion, vs...))
}

// ParserVersionGT applies the GT predicate on the "parser_version" field.
func ParserVersionGT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldParserVersion, v))
}

// ParserVersionGTE applies the GTE predicate on the "parser_version" field.
func ParserVersionGTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldParserVersion, v))
}

// ParserVersionLT applies the LT predicate on the "parser_version" field.
func ParserVersionLT(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldParserVersion, v))
}

// ParserVersionLTE applies the LTE predicate on the "parser_version" field.
func ParserVersionLTE(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldParserVersion, v))
}

// ParserVersionContains applies the Contains predicate on the "parser_version" field.
func ParserVersionContains(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContains(FieldParserVersion, v))
}

// ParserVersionHasPrefix applies the HasPrefix predicate on the "parser_version" field.
func ParserVersionHasPrefix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasPrefix(FieldParserVersion, v))
}

// ParserVersionHasSuffix applies the HasSuffix predicate on the "parser_version" field.
func ParserVersionHasSuffix(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldHasSuffix(FieldParserVersion, v))
}

// ParserVersionIsNil applies the IsNil predicate on the "parser_version" field.
func ParserVersionIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldParserVersion))
}

// ParserVersionNotNil applies the NotNil predicate on the "parser_version" field.
func ParserVersionNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldParserVersion))
}

// ParserVersionEqualFold applies the EqualFold predicate on the "parser_version" field.
func ParserVersionEqualFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldEqualFold(FieldParserVersion, v))
}

// ParserVersionContainsFold applies the ContainsFold predicate on the "parser_version" field.
func ParserVersionContainsFold(v string) predicate.StockItem {
	return predicate.StockItem(sql.FieldContainsFold(FieldParserVersion, v))
}

// ParseConfidenceEQ applies the EQ predicate on the "parse_confidence" field.
func ParseConfidenceEQ(v float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParseConfidence, v))
}

// ParseConfidenceNEQ applies the NEQ predicate on the "parse_confidence" field.
func ParseConfidenceNEQ(v float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldParseConfidence, v))
}

// ParseConfidenceIn applies the In predicate on the "parse_confidence" field.
func ParseConfidenceIn(vs ...float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldParseConfidence, vs...))
}

// ParseConfidenceNotIn applies the NotIn predicate on the "parse_confidence" field.
func ParseConfidenceNotIn(vs ...float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldParseConfidence, vs...))
}

// ParseConfidenceGT applies the GT predicate on the "parse_confidence" field.
func ParseConfidenceGT(v float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldParseConfidence, v))
}

// ParseConfidenceGTE applies the GTE predicate on the "parse_confidence" field.
func ParseConfidenceGTE(v float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldParseConfidence, v))
}

// ParseConfidenceLT applies the LT predicate on the "parse_confidence" field.
func ParseConfidenceLT(v float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldParseConfidence, v))
}

// ParseConfidenceLTE applies the LTE predicate on the "parse_confidence" field.
func ParseConfidenceLTE(v float32) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldParseConfidence, v))
}

// ParseConfidenceIsNil applies the IsNil predicate on the "parse_confidence" field.
func ParseConfidenceIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldParseConfidence))
}

// ParseConfidenceNotNil applies the NotNil predicate on the "parse_confidence" field.
func ParseConfidenceNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldParseConfidence))
}

// ParsedAtEQ applies the EQ predicate on the "parsed_at" field.
func ParsedAtEQ(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldParsedAt, v))
}

// ParsedAtNEQ applies the NEQ predicate on the "parsed_at" field.
func ParsedAtNEQ(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldParsedAt, v))
}

// ParsedAtIn applies the In predicate on the "parsed_at" field.
func ParsedAtIn(vs ...time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldParsedAt, vs...))
}

// ParsedAtNotIn applies the NotIn predicate on the "parsed_at" field.
func ParsedAtNotIn(vs ...time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldParsedAt, vs...))
}

// ParsedAtGT applies the GT predicate on the "parsed_at" field.
func ParsedAtGT(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldParsedAt, v))
}

// ParsedAtGTE applies the GTE predicate on the "parsed_at" field.
func ParsedAtGTE(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldParsedAt, v))
}

// ParsedAtLT applies the LT predicate on the "parsed_at" field.
func ParsedAtLT(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldParsedAt, v))
}

// ParsedAtLTE applies the LTE predicate on the "parsed_at" field.
func ParsedAtLTE(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldParsedAt, v))
}

// ParsedAtIsNil applies the IsNil predicate on the "parsed_at" field.
func ParsedAtIsNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldIsNull(FieldParsedAt))
}

// ParsedAtNotNil applies the NotNil predicate on the "parsed_at" field.
func ParsedAtNotNil() predicate.StockItem {
	return predicate.StockItem(sql.FieldNotNull(FieldParsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StockItem {
	return predicate.StockItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StockItem) predicate.StockItem {
	return predicate.StockItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StockItem) predicate.StockItem {
	return predicate.StockItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StockItem) predicate.StockItem {
	return predicate.StockItem(sql.NotPredicates(p))
}
