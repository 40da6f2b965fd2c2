// Code generated by ent, DO NOT EDIT.

package stockitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the stockitem type in the database.
	Label = "stock_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemCode holds the string denoting the item_code field in the database.
	FieldItemCode = "item_code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldUnitCost holds the string denoting the unit_cost field in the database.
	FieldUnitCost = "unit_cost"
	// FieldPriceUnit holds the string denoting the price_unit field in the database.
	FieldPriceUnit = "price_unit"
	// FieldParsedMetalType holds the string denoting the parsed_metal_type field in the database.
	FieldParsedMetalType = "parsed_metal_type"
	// FieldParsedAlloy holds the string denoting the parsed_alloy field in the database.
	FieldParsedAlloy = "parsed_alloy"
	// FieldParsedDimensions holds the string denoting the parsed_dimensions field in the database.
	FieldParsedDimensions = "parsed_dimensions"
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
	// Table holds the table name of the stockitem in the database.
	Table = "stock_items"
)

// Columns holds all SQL columns for stockitem fields.
var Columns = []string{
	FieldID,
	FieldItemCode,
	FieldDescription,
	FieldUnitCost,
	FieldPriceUnit,
	FieldParsedMetalType,
	FieldParsedAlloy,
	FieldParsedDimensions,
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
	// ItemCodeValidator is a validator for the "item_code" field. It is called by the builders before save.
	ItemCodeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the StockItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemCode orders the results by the item_code field.
func ByItemCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByUnitCost orders the results by the unit_cost field.
func ByUnitCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitCost, opts...).ToFunc()
}

// ByPriceUnit orders the results by the price_unit field.
func ByPriceUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceUnit, opts...).ToFunc()
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
