// Code generated by ent, DO NOT EDIT.

package supplierproduct

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the supplierproduct type in the database.
	Label = "supplier_product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSupplierName holds the string denoting the supplier_name field in the database.
	FieldSupplierName = "supplier_name"
	// FieldItemNo holds the string denoting the item_no field in the database.
	FieldItemNo = "item_no"
	// FieldVariantID holds the string denoting the variant_id field in the database.
	FieldVariantID = "variant_id"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldPriceUnit holds the string denoting the price_unit field in the database.
	FieldPriceUnit = "price_unit"
	// FieldSpecifications holds the string denoting the specifications field in the database.
	FieldSpecifications = "specifications"
	// FieldParsedItemCode holds the string denoting the parsed_item_code field in the database.
	FieldParsedItemCode = "parsed_item_code"
	// FieldParsedMetalType holds the string denoting the parsed_metal_type field in the database.
	FieldParsedMetalType = "parsed_metal_type"
	// FieldParsedAlloy holds the string denoting the parsed_alloy field in the database.
	FieldParsedAlloy = "parsed_alloy"
	// FieldParsedDimensions holds the string denoting the parsed_dimensions field in the database.
	FieldParsedDimensions = "parsed_dimensions"
	// FieldParsedUnitCost holds the string denoting the parsed_unit_cost field in the database.
	FieldParsedUnitCost = "parsed_unit_cost"
	// FieldParsedPriceUnit holds the string denoting the parsed_price_unit field in the database.
	FieldParsedPriceUnit = "parsed_price_unit"
	// FieldParserVersion holds the string denoting the parser_version field in the database.
	FieldParserVersion = "parser_version"
	// FieldParseConfidence holds the string denoting the parse_confidence field in the database.
	FieldParseConfidence = "parse_confidence"
	// FieldParsedAt holds the string denoting the parsed_at field in the database.
	FieldParsedAt = "parsed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the supplierproduct in the database.
	Table = "supplier_products"
)

// Columns holds all SQL columns for supplierproduct fields.
var Columns = []string{
	FieldID,
	FieldSupplierName,
	FieldItemNo,
	FieldVariantID,
	FieldProductName,
	FieldDescription,
	FieldPrice,
	FieldPriceUnit,
	FieldSpecifications,
	FieldParsedItemCode,
	FieldParsedMetalType,
	FieldParsedAlloy,
	FieldParsedDimensions,
	FieldParsedUnitCost,
	FieldParsedPriceUnit,
	FieldParserVersion,
	FieldParseConfidence,
	FieldParsedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SupplierNameValidator is a validator for the "supplier_name" field. It is called by the builders before save.
	SupplierNameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SupplierProduct queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySupplierName orders the results by the supplier_name field.
func BySupplierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierName, opts...).ToFunc()
}

// ByItemNo orders the results by the item_no field.
func ByItemNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemNo, opts...).ToFunc()
}

// ByVariantID orders the results by the variant_id field.
func ByVariantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantID, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByPriceUnit orders the results by the price_unit field.
func ByPriceUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceUnit, opts...).ToFunc()
}

// ByParsedItemCode orders the results by the parsed_item_code field.
func ByParsedItemCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedItemCode, opts...).ToFunc()
}

// ByParsedMetalType orders the results by the parsed_metal_type field.
func ByParsedMetalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedMetalType, opts...).ToFunc()
}

// ByParsedAlloy orders the results by the parsed_alloy field.
func ByParsedAlloy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedAlloy, opts...).ToFunc()
}

// ByParsedDimensions orders the results by the parsed_dimensions field.
func ByParsedDimensions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedDimensions, opts...).ToFunc()
}

// ByParsedUnitCost orders the results by the parsed_unit_cost field.
func ByParsedUnitCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedUnitCost, opts...).ToFunc()
}

// ByParsedPriceUnit orders the results by the parsed_price_unit field.
func ByParsedPriceUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedPriceUnit, opts...).ToFunc()
}

// ByParserVersion orders the results by the parser_version field.
func ByParserVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParserVersion, opts...).ToFunc()
}

// ByParseConfidence orders the results by the parse_confidence field.
func ByParseConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParseConfidence, opts...).ToFunc()
}

// ByParsedAt orders the results by the parsed_at field.
func ByParsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
