// Code generated by ent, DO NOT EDIT.

package supplierproduct

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fabtrack/steelparse/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldID, id))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldSupplierName, v))
}

// ItemNo applies equality check predicate on the "item_no" field. It's identical to ItemNoEQ.
func ItemNo(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldItemNo, v))
}

// VariantID applies equality check predicate on the "variant_id" field. It's identical to VariantIDEQ.
func VariantID(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldVariantID, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldProductName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldDescription, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldPrice, v))
}

// PriceUnit applies equality check predicate on the "price_unit" field. It's identical to PriceUnitEQ.
func PriceUnit(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldPriceUnit, v))
}

// ParsedItemCode applies equality check predicate on the "parsed_item_code" field. It's identical to ParsedItemCodeEQ.
func ParsedItemCode(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedItemCode, v))
}

// ParsedMetalType applies equality check predicate on the "parsed_metal_type" field. It's identical to ParsedMetalTypeEQ.
func ParsedMetalType(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedMetalType, v))
}

// ParsedAlloy applies equality check predicate on the "parsed_alloy" field. It's identical to ParsedAlloyEQ.
func ParsedAlloy(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedAlloy, v))
}

// ParsedDimensions applies equality check predicate on the "parsed_dimensions" field. It's identical to ParsedDimensionsEQ.
func ParsedDimensions(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedDimensions, v))
}

// ParsedUnitCost applies equality check predicate on the "parsed_unit_cost" field. It's identical to ParsedUnitCostEQ.
func ParsedUnitCost(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedUnitCost, v))
}

// ParsedPriceUnit applies equality check predicate on the "parsed_price_unit" field. It's identical to ParsedPriceUnitEQ.
func ParsedPriceUnit(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedPriceUnit, v))
}

// ParserVersion applies equality check predicate on the "parser_version" field. It's identical to ParserVersionEQ.
func ParserVersion(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParserVersion, v))
}

// ParseConfidence applies equality check predicate on the "parse_confidence" field. It's identical to ParseConfidenceEQ.
func ParseConfidence(v float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParseConfidence, v))
}

// ParsedAt applies equality check predicate on the "parsed_at" field. It's identical to ParsedAtEQ.
func ParsedAt(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldUpdatedAt, v))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldSupplierName, v))
}

// ItemNoEQ applies the EQ predicate on the "item_no" field.
func ItemNoEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldItemNo, v))
}

// ItemNoNEQ applies the NEQ predicate on the "item_no" field.
func ItemNoNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldItemNo, v))
}

// ItemNoIn applies the In predicate on the "item_no" field.
func ItemNoIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldItemNo, vs...))
}

// ItemNoNotIn applies the NotIn predicate on the "item_no" field.
func ItemNoNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldItemNo, vs...))
}

// ItemNoGT applies the GT predicate on the "item_no" field.
func ItemNoGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldItemNo, v))
}

// ItemNoGTE applies the GTE predicate on the "item_no" field.
func ItemNoGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldItemNo, v))
}

// ItemNoLT applies the LT predicate on the "item_no" field.
func ItemNoLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldItemNo, v))
}

// ItemNoLTE applies the LTE predicate on the "item_no" field.
func ItemNoLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldItemNo, v))
}

// ItemNoContains applies the Contains predicate on the "item_no" field.
func ItemNoContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldItemNo, v))
}

// ItemNoHasPrefix applies the HasPrefix predicate on the "item_no" field.
func ItemNoHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldItemNo, v))
}

// ItemNoHasSuffix applies the HasSuffix predicate on the "item_no" field.
func ItemNoHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldItemNo, v))
}

// ItemNoIsNil applies the IsNil predicate on the "item_no" field.
func ItemNoIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldItemNo))
}

// ItemNoNotNil applies the NotNil predicate on the "item_no" field.
func ItemNoNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldItemNo))
}

// ItemNoEqualFold applies the EqualFold predicate on the "item_no" field.
func ItemNoEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldItemNo, v))
}

// ItemNoContainsFold applies the ContainsFold predicate on the "item_no" field.
func ItemNoContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldItemNo, v))
}

// VariantIDEQ applies the EQ predicate on the "variant_id" field.
func VariantIDEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldVariantID, v))
}

// VariantIDNEQ applies the NEQ predicate on the "variant_id" field.
func VariantIDNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldVariantID, v))
}

// VariantIDIn applies the In predicate on the "variant_id" field.
func VariantIDIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldVariantID, vs...))
}

// VariantIDNotIn applies the NotIn predicate on the "variant_id" field.
func VariantIDNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldVariantID, vs...))
}

// VariantIDGT applies the GT predicate on the "variant_id" field.
func VariantIDGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldVariantID, v))
}

// VariantIDGTE applies the GTE predicate on the "variant_id" field.
func VariantIDGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldVariantID, v))
}

// VariantIDLT applies the LT predicate on the "variant_id" field.
func VariantIDLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldVariantID, v))
}

// VariantIDLTE applies the LTE predicate on the "variant_id" field.
func VariantIDLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldVariantID, v))
}

// VariantIDContains applies the Contains predicate on the "variant_id" field.
func VariantIDContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldVariantID, v))
}

// VariantIDHasPrefix applies the HasPrefix predicate on the "variant_id" field.
func VariantIDHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldVariantID, v))
}

// VariantIDHasSuffix applies the HasSuffix predicate on the "variant_id" field.
func VariantIDHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldVariantID, v))
}

// VariantIDIsNil applies the IsNil predicate on the "variant_id" field.
func VariantIDIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldVariantID))
}

// VariantIDNotNil applies the NotNil predicate on the "variant_id" field.
func VariantIDNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldVariantID))
}

// VariantIDEqualFold applies the EqualFold predicate on the "variant_id" field.
func VariantIDEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldVariantID, v))
}

// VariantIDContainsFold applies the ContainsFold predicate on the "variant_id" field.
func VariantIDContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldVariantID, v))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameIsNil applies the IsNil predicate on the "product_name" field.
func ProductNameIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldProductName))
}

// ProductNameNotNil applies the NotNil predicate on the "product_name" field.
func ProductNameNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldProductName))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldProductName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldDescription, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldPrice, v))
}

// PriceIsNil applies the IsNil predicate on the "price" field.
func PriceIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldPrice))
}

// PriceNotNil applies the NotNil predicate on the "price" field.
func PriceNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldPrice))
}

// PriceUnitEQ applies the EQ predicate on the "price_unit" field.
func PriceUnitEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldPriceUnit, v))
}

// PriceUnitNEQ applies the NEQ predicate on the "price_unit" field.
func PriceUnitNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldPriceUnit, v))
}

// PriceUnitIn applies the In predicate on the "price_unit" field.
func PriceUnitIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldPriceUnit, vs...))
}

// PriceUnitNotIn applies the NotIn predicate on the "price_unit" field.
func PriceUnitNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldPriceUnit, vs...))
}

// PriceUnitGT applies the GT predicate on the "price_unit" field.
func PriceUnitGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldPriceUnit, v))
}

// PriceUnitGTE applies the GTE predicate on the "price_unit" field.
func PriceUnitGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldPriceUnit, v))
}

// PriceUnitLT applies the LT predicate on the "price_unit" field.
func PriceUnitLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldPriceUnit, v))
}

// PriceUnitLTE applies the LTE predicate on the "price_unit" field.
func PriceUnitLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldPriceUnit, v))
}

// PriceUnitContains applies the Contains predicate on the "price_unit" field.
func PriceUnitContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldPriceUnit, v))
}

// PriceUnitHasPrefix applies the HasPrefix predicate on the "price_unit" field.
func PriceUnitHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldPriceUnit, v))
}

// PriceUnitHasSuffix applies the HasSuffix predicate on the "price_unit" field.
func PriceUnitHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldPriceUnit, v))
}

// PriceUnitIsNil applies the IsNil predicate on the "price_unit" field.
func PriceUnitIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldPriceUnit))
}

// PriceUnitNotNil applies the NotNil predicate on the "price_unit" field.
func PriceUnitNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldPriceUnit))
}

// PriceUnitEqualFold applies the EqualFold predicate on the "price_unit" field.
func PriceUnitEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldPriceUnit, v))
}

// PriceUnitContainsFold applies the ContainsFold predicate on the "price_unit" field.
func PriceUnitContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldPriceUnit, v))
}

// SpecificationsIsNil applies the IsNil predicate on the "specifications" field.
func SpecificationsIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldSpecifications))
}

// SpecificationsNotNil applies the NotNil predicate on the "specifications" field.
func SpecificationsNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldSpecifications))
}

// ParsedItemCodeEQ applies the EQ predicate on the "parsed_item_code" field.
func ParsedItemCodeEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedItemCode, v))
}

// ParsedItemCodeNEQ applies the NEQ predicate on the "parsed_item_code" field.
func ParsedItemCodeNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParsedItemCode, v))
}

// ParsedItemCodeIn applies the In predicate on the "parsed_item_code" field.
func ParsedItemCodeIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParsedItemCode, vs...))
}

// ParsedItemCodeNotIn applies the NotIn predicate on the "parsed_item_code" field.
func ParsedItemCodeNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParsedItemCode, vs...))
}

// ParsedItemCodeGT applies the GT predicate on the "parsed_item_code" field.
func ParsedItemCodeGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParsedItemCode, v))
}

// ParsedItemCodeGTE applies the GTE predicate on the "parsed_item_code" field.
func ParsedItemCodeGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParsedItemCode, v))
}

// ParsedItemCodeLT applies the LT predicate on the "parsed_item_code" field.
func ParsedItemCodeLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParsedItemCode, v))
}

// ParsedItemCodeLTE applies the LTE predicate on the "parsed_item_code" field.
func ParsedItemCodeLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParsedItemCode, v))
}

// ParsedItemCodeContains applies the Contains predicate on the "parsed_item_code" field.
func ParsedItemCodeContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldParsedItemCode, v))
}

// ParsedItemCodeHasPrefix applies the HasPrefix predicate on the "parsed_item_code" field.
func ParsedItemCodeHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldParsedItemCode, v))
}

// ParsedItemCodeHasSuffix applies the HasSuffix predicate on the "parsed_item_code" field.
func ParsedItemCodeHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldParsedItemCode, v))
}

// ParsedItemCodeIsNil applies the IsNil predicate on the "parsed_item_code" field.
func ParsedItemCodeIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParsedItemCode))
}

// ParsedItemCodeNotNil applies the NotNil predicate on the "parsed_item_code" field.
func ParsedItemCodeNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParsedItemCode))
}

// ParsedItemCodeEqualFold applies the EqualFold predicate on the "parsed_item_code" field.
func ParsedItemCodeEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldParsedItemCode, v))
}

// ParsedItemCodeContainsFold applies the ContainsFold predicate on the "parsed_item_code" field.
func ParsedItemCodeContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldParsedItemCode, v))
}

// ParsedMetalTypeEQ applies the EQ predicate on the "parsed_metal_type" field.
func ParsedMetalTypeEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedMetalType, v))
}

// ParsedMetalTypeNEQ applies the NEQ predicate on the "parsed_metal_type" field.
func ParsedMetalTypeNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParsedMetalType, v))
}

// ParsedMetalTypeIn applies the In predicate on the "parsed_metal_type" field.
func ParsedMetalTypeIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParsedMetalType, vs...))
}

// ParsedMetalTypeNotIn applies the NotIn predicate on the "parsed_metal_type" field.
func ParsedMetalTypeNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParsedMetalType, vs...))
}

// ParsedMetalTypeGT applies the GT predicate on the "parsed_metal_type" field.
func ParsedMetalTypeGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParsedMetalType, v))
}

// ParsedMetalTypeGTE applies the GTE predicate on the "parsed_metal_type" field.
func ParsedMetalTypeGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParsedMetalType, v))
}

// ParsedMetalTypeLT applies the LT predicate on the "parsed_metal_type" field.
func ParsedMetalTypeLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParsedMetalType, v))
}

// ParsedMetalTypeLTE applies the LTE predicate on the "parsed_metal_type" field.
func ParsedMetalTypeLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParsedMetalType, v))
}

// ParsedMetalTypeContains applies the Contains predicate on the "parsed_metal_type" field.
func ParsedMetalTypeContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldParsedMetalType, v))
}

// ParsedMetalTypeHasPrefix applies the HasPrefix predicate on the "parsed_metal_type" field.
func ParsedMetalTypeHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldParsedMetalType, v))
}

// ParsedMetalTypeHasSuffix applies the HasSuffix predicate on the "parsed_metal_type" field.
func ParsedMetalTypeHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldParsedMetalType, v))
}

// ParsedMetalTypeIsNil applies the IsNil predicate on the "parsed_metal_type" field.
func ParsedMetalTypeIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParsedMetalType))
}

// ParsedMetalTypeNotNil applies the NotNil predicate on the "parsed_metal_type" field.
func ParsedMetalTypeNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParsedMetalType))
}

// ParsedMetalTypeEqualFold applies the EqualFold predicate on the "parsed_metal_type" field.
func ParsedMetalTypeEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldParsedMetalType, v))
}

// ParsedMetalTypeContainsFold applies the ContainsFold predicate on the "parsed_metal_type" field.
func ParsedMetalTypeContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldParsedMetalType, v))
}

// ParsedAlloyEQ applies the EQ predicate on the "parsed_alloy" field.
func ParsedAlloyEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedAlloy, v))
}

// ParsedAlloyNEQ applies the NEQ predicate on the "parsed_alloy" field.
func ParsedAlloyNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParsedAlloy, v))
}

// ParsedAlloyIn applies the In predicate on the "parsed_alloy" field.
func ParsedAlloyIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParsedAlloy, vs...))
}

// ParsedAlloyNotIn applies the NotIn predicate on the "parsed_alloy" field.
func ParsedAlloyNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParsedAlloy, vs...))
}

// ParsedAlloyGT applies the GT predicate on the "parsed_alloy" field.
func ParsedAlloyGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParsedAlloy, v))
}

// ParsedAlloyGTE applies the GTE predicate on the "parsed_alloy" field.
func ParsedAlloyGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParsedAlloy, v))
}

// ParsedAlloyLT applies the LT predicate on the "parsed_alloy" field.
func ParsedAlloyLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParsedAlloy, v))
}

// ParsedAlloyLTE applies the LTE predicate on the "parsed_alloy" field.
func ParsedAlloyLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParsedAlloy, v))
}

// ParsedAlloyContains applies the Contains predicate on the "parsed_alloy" field.
func ParsedAlloyContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldParsedAlloy, v))
}

// ParsedAlloyHasPrefix applies the HasPrefix predicate on the "parsed_alloy" field.
func ParsedAlloyHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldParsedAlloy, v))
}

// ParsedAlloyHasSuffix applies the HasSuffix predicate on the "parsed_alloy" field.
func ParsedAlloyHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldParsedAlloy, v))
}

// ParsedAlloyIsNil applies the IsNil predicate on the "parsed_alloy" field.
func ParsedAlloyIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParsedAlloy))
}

// ParsedAlloyNotNil applies the NotNil predicate on the "parsed_alloy" field.
func ParsedAlloyNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParsedAlloy))
}

// ParsedAlloyEqualFold applies the EqualFold predicate on the "parsed_alloy" field.
func ParsedAlloyEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldParsedAlloy, v))
}

// ParsedAlloyContainsFold applies the ContainsFold predicate on the "parsed_alloy" field.
func ParsedAlloyContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldParsedAlloy, v))
}

// ParsedDimensionsEQ applies the EQ predicate on the "parsed_dimensions" field.
func ParsedDimensionsEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedDimensions, v))
}

// ParsedDimensionsNEQ applies the NEQ predicate on the "parsed_dimensions" field.
func ParsedDimensionsNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParsedDimensions, v))
}

// ParsedDimensionsIn applies the In predicate on the "parsed_dimensions" field.
func ParsedDimensionsIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParsedDimensions, vs...))
}

// ParsedDimensionsNotIn applies the NotIn predicate on the "parsed_dimensions" field.
func ParsedDimensionsNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParsedDimensions, vs...))
}

// ParsedDimensionsGT applies the GT predicate on the "parsed_dimensions" field.
func ParsedDimensionsGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParsedDimensions, v))
}

// ParsedDimensionsGTE applies the GTE predicate on the "parsed_dimensions" field.
func ParsedDimensionsGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParsedDimensions, v))
}

// ParsedDimensionsLT applies the LT predicate on the "parsed_dimensions" field.
func ParsedDimensionsLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParsedDimensions, v))
}

// ParsedDimensionsLTE applies the LTE predicate on the "parsed_dimensions" field.
func ParsedDimensionsLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParsedDimensions, v))
}

// ParsedDimensionsContains applies the Contains predicate on the "parsed_dimensions" field.
func ParsedDimensionsContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldParsedDimensions, v))
}

// ParsedDimensionsHasPrefix applies the HasPrefix predicate on the "parsed_dimensions" field.
func ParsedDimensionsHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldParsedDimensions, v))
}

// ParsedDimensionsHasSuffix applies the HasSuffix predicate on the "parsed_dimensions" field.
func ParsedDimensionsHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldParsedDimensions, v))
}

// ParsedDimensionsIsNil applies the IsNil predicate on the "parsed_dimensions" field.
func ParsedDimensionsIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParsedDimensions))
}

// ParsedDimensionsNotNil applies the NotNil predicate on the "parsed_dimensions" field.
func ParsedDimensionsNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParsedDimensions))
}

// ParsedDimensionsEqualFold applies the EqualFold predicate on the "parsed_dimensions" field.
func ParsedDimensionsEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldParsedDimensions, v))
}

// ParsedDimensionsContainsFold applies the ContainsFold predicate on the "parsed_dimensions" field.
func ParsedDimensionsContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldParsedDimensions, v))
}

// ParsedUnitCostEQ applies the EQ predicate on the "parsed_unit_cost" field.
func ParsedUnitCostEQ(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedUnitCost, v))
}

// ParsedUnitCostNEQ applies the NEQ predicate on the "parsed_unit_cost" field.
func ParsedUnitCostNEQ(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParsedUnitCost, v))
}

// ParsedUnitCostIn applies the In predicate on the "parsed_unit_cost" field.
func ParsedUnitCostIn(vs ...float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParsedUnitCost, vs...))
}

// ParsedUnitCostNotIn applies the NotIn predicate on the "parsed_unit_cost" field.
func ParsedUnitCostNotIn(vs ...float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParsedUnitCost, vs...))
}

// ParsedUnitCostGT applies the GT predicate on the "parsed_unit_cost" field.
func ParsedUnitCostGT(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParsedUnitCost, v))
}

// ParsedUnitCostGTE applies the GTE predicate on the "parsed_unit_cost" field.
func ParsedUnitCostGTE(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParsedUnitCost, v))
}

// ParsedUnitCostLT applies the LT predicate on the "parsed_unit_cost" field.
func ParsedUnitCostLT(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParsedUnitCost, v))
}

// ParsedUnitCostLTE applies the LTE predicate on the "parsed_unit_cost" field.
func ParsedUnitCostLTE(v float64) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParsedUnitCost, v))
}

// ParsedUnitCostIsNil applies the IsNil predicate on the "parsed_unit_cost" field.
func ParsedUnitCostIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParsedUnitCost))
}

// ParsedUnitCostNotNil applies the NotNil predicate on the "parsed_unit_cost" field.
func ParsedUnitCostNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParsedUnitCost))
}

// ParsedPriceUnitEQ applies the EQ predicate on the "parsed_price_unit" field.
func ParsedPriceUnitEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitNEQ applies the NEQ predicate on the "parsed_price_unit" field.
func ParsedPriceUnitNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitIn applies the In predicate on the "parsed_price_unit" field.
func ParsedPriceUnitIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParsedPriceUnit, vs...))
}

// ParsedPriceUnitNotIn applies the NotIn predicate on the "parsed_price_unit" field.
func ParsedPriceUnitNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParsedPriceUnit, vs...))
}

// ParsedPriceUnitGT applies the GT predicate on the "parsed_price_unit" field.
func ParsedPriceUnitGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitGTE applies the GTE predicate on the "parsed_price_unit" field.
func ParsedPriceUnitGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitLT applies the LT predicate on the "parsed_price_unit" field.
func ParsedPriceUnitLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitLTE applies the LTE predicate on the "parsed_price_unit" field.
func ParsedPriceUnitLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitContains applies the Contains predicate on the "parsed_price_unit" field.
func ParsedPriceUnitContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitHasPrefix applies the HasPrefix predicate on the "parsed_price_unit" field.
func ParsedPriceUnitHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitHasSuffix applies the HasSuffix predicate on the "parsed_price_unit" field.
func ParsedPriceUnitHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitIsNil applies the IsNil predicate on the "parsed_price_unit" field.
func ParsedPriceUnitIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParsedPriceUnit))
}

// ParsedPriceUnitNotNil applies the NotNil predicate on the "parsed_price_unit" field.
func ParsedPriceUnitNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParsedPriceUnit))
}

// ParsedPriceUnitEqualFold applies the EqualFold predicate on the "parsed_price_unit" field.
func ParsedPriceUnitEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldParsedPriceUnit, v))
}

// ParsedPriceUnitContainsFold applies the ContainsFold predicate on the "parsed_price_unit" field.
func ParsedPriceUnitContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldParsedPriceUnit, v))
}

// ParserVersionEQ applies the EQ predicate on the "parser_version" field.
func ParserVersionEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParserVersion, v))
}

// ParserVersionNEQ applies the NEQ predicate on the "parser_version" field.
func ParserVersionNEQ(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParserVersion, v))
}

// ParserVersionIn applies the In predicate on the "parser_version" field.
func ParserVersionIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParserVersion, vs...))
}

// ParserVersionNotIn applies the NotIn predicate on the "parser_version" field.
func ParserVersionNotIn(vs ...string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParserVersion, vs...))
}

// ParserVersionGT applies the GT predicate on the "parser_version" field.
func ParserVersionGT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParserVersion, v))
}

// ParserVersionGTE applies the GTE predicate on the "parser_version" field.
func ParserVersionGTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParserVersion, v))
}

// ParserVersionLT applies the LT predicate on the "parser_version" field.
func ParserVersionLT(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParserVersion, v))
}

// ParserVersionLTE applies the LTE predicate on the "parser_version" field.
func ParserVersionLTE(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParserVersion, v))
}

// ParserVersionContains applies the Contains predicate on the "parser_version" field.
func ParserVersionContains(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContains(FieldParserVersion, v))
}

// ParserVersionHasPrefix applies the HasPrefix predicate on the "parser_version" field.
func ParserVersionHasPrefix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasPrefix(FieldParserVersion, v))
}

// ParserVersionHasSuffix applies the HasSuffix predicate on the "parser_version" field.
func ParserVersionHasSuffix(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldHasSuffix(FieldParserVersion, v))
}

// ParserVersionIsNil applies the IsNil predicate on the "parser_version" field.
func ParserVersionIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParserVersion))
}

// ParserVersionNotNil applies the NotNil predicate on the "parser_version" field.
func ParserVersionNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParserVersion))
}

// ParserVersionEqualFold applies the EqualFold predicate on the "parser_version" field.
func ParserVersionEqualFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEqualFold(FieldParserVersion, v))
}

// ParserVersionContainsFold applies the ContainsFold predicate on the "parser_version" field.
func ParserVersionContainsFold(v string) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldContainsFold(FieldParserVersion, v))
}

// ParseConfidenceEQ applies the EQ predicate on the "parse_confidence" field.
func ParseConfidenceEQ(v float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParseConfidence, v))
}

// ParseConfidenceNEQ applies the NEQ predicate on the "parse_confidence" field.
func ParseConfidenceNEQ(v float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParseConfidence, v))
}

// ParseConfidenceIn applies the In predicate on the "parse_confidence" field.
func ParseConfidenceIn(vs ...float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParseConfidence, vs...))
}

// ParseConfidenceNotIn applies the NotIn predicate on the "parse_confidence" field.
func ParseConfidenceNotIn(vs ...float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParseConfidence, vs...))
}

// ParseConfidenceGT applies the GT predicate on the "parse_confidence" field.
func ParseConfidenceGT(v float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParseConfidence, v))
}

// ParseConfidenceGTE applies the GTE predicate on the "parse_confidence" field.
func ParseConfidenceGTE(v float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParseConfidence, v))
}

// ParseConfidenceLT applies the LT predicate on the "parse_confidence" field.
func ParseConfidenceLT(v float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParseConfidence, v))
}

// ParseConfidenceLTE applies the LTE predicate on the "parse_confidence" field.
func ParseConfidenceLTE(v float32) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParseConfidence, v))
}

// ParseConfidenceIsNil applies the IsNil predicate on the "parse_confidence" field.
func ParseConfidenceIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParseConfidence))
}

// ParseConfidenceNotNil applies the NotNil predicate on the "parse_confidence" field.
func ParseConfidenceNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParseConfidence))
}

// ParsedAtEQ applies the EQ predicate on the "parsed_at" field.
func ParsedAtEQ(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldParsedAt, v))
}

// ParsedAtNEQ applies the NEQ predicate on the "parsed_at" field.
func ParsedAtNEQ(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldParsedAt, v))
}

// ParsedAtIn applies the In predicate on the "parsed_at" field.
func ParsedAtIn(vs ...time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldParsedAt, vs...))
}

// ParsedAtNotIn applies the NotIn predicate on the "parsed_at" field.
func ParsedAtNotIn(vs ...time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldParsedAt, vs...))
}

// ParsedAtGT applies the GT predicate on the "parsed_at" field.
func ParsedAtGT(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldParsedAt, v))
}

// ParsedAtGTE applies the GTE predicate on the "parsed_at" field.
func ParsedAtGTE(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldParsedAt, v))
}

// ParsedAtLT applies the LT predicate on the "parsed_at" field.
func ParsedAtLT(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldParsedAt, v))
}

// ParsedAtLTE applies the LTE predicate on the "parsed_at" field.
func ParsedAtLTE(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldParsedAt, v))
}

// ParsedAtIsNil applies the IsNil predicate on the "parsed_at" field.
func ParsedAtIsNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIsNull(FieldParsedAt))
}

// ParsedAtNotNil applies the NotNil predicate on the "parsed_at" field.
func ParsedAtNotNil() predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotNull(FieldParsedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupplierProduct) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupplierProduct) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupplierProduct) predicate.SupplierProduct {
	return predicate.SupplierProduct(sql.NotPredicates(p))
}
