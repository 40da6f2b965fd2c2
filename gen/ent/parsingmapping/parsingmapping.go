// Code generated by ent, DO NOT EDIT.

package parsingmapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the parsingmapping type in the database.
	Label = "parsing_mapping"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMappingKey holds the string denoting the mapping_key field in the database.
	FieldMappingKey = "mapping_key"
	// FieldInputSnapshot holds the string denoting the input_snapshot field in the database.
	FieldInputSnapshot = "input_snapshot"
	// FieldItemCode holds the string denoting the item_code field in the database.
	FieldItemCode = "item_code"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldMetalType holds the string denoting the metal_type field in the database.
	FieldMetalType = "metal_type"
	// FieldAlloy holds the string denoting the alloy field in the database.
	FieldAlloy = "alloy"
	// FieldSpecifics holds the string denoting the specifics field in the database.
	FieldSpecifics = "specifics"
	// FieldDimensions holds the string denoting the dimensions field in the database.
	FieldDimensions = "dimensions"
	// FieldUnitCost holds the string denoting the unit_cost field in the database.
	FieldUnitCost = "unit_cost"
	// FieldPriceUnit holds the string denoting the price_unit field in the database.
	FieldPriceUnit = "price_unit"
	// FieldParserVersion holds the string denoting the parser_version field in the database.
	FieldParserVersion = "parser_version"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRawModelOutput holds the string denoting the raw_model_output field in the database.
	FieldRawModelOutput = "raw_model_output"
	// FieldValidated holds the string denoting the validated field in the database.
	FieldValidated = "validated"
	// FieldValidatedBy holds the string denoting the validated_by field in the database.
	FieldValidatedBy = "validated_by"
	// FieldValidatedAt holds the string denoting the validated_at field in the database.
	FieldValidatedAt = "validated_at"
	// FieldValidationNotes holds the string denoting the validation_notes field in the database.
	FieldValidationNotes = "validation_notes"
	// FieldItemCodeExists holds the string denoting the item_code_exists field in the database.
	FieldItemCodeExists = "item_code_exists"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the parsingmapping in the database.
	Table = "parsing_mappings"
)

// Columns holds all SQL columns for parsingmapping fields.
var Columns = []string{
	FieldID,
	FieldMappingKey,
	FieldInputSnapshot,
	FieldItemCode,
	FieldDescription,
	FieldMetalType,
	FieldAlloy,
	FieldSpecifics,
	FieldDimensions,
	FieldUnitCost,
	FieldPriceUnit,
	FieldParserVersion,
	FieldConfidence,
	FieldRawModelOutput,
	FieldValidated,
	FieldValidatedBy,
	FieldValidatedAt,
	FieldValidationNotes,
	FieldItemCodeExists,
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
	// MappingKeyValidator is a validator for the "mapping_key" field. It is called by the builders before save.
	MappingKeyValidator func(string) error
	// MetalTypeValidator is a validator for the "metal_type" field. It is called by the builders before save.
	MetalTypeValidator func(string) error
	// PriceUnitValidator is a validator for the "price_unit" field. It is called by the builders before save.
	PriceUnitValidator func(string) error
	// ParserVersionValidator is a validator for the "parser_version" field. It is called by the builders before save.
	ParserVersionValidator func(string) error
	// DefaultValidated holds the default value on creation for the "validated" field.
	DefaultValidated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ParsingMapping queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMappingKey orders the results by the mapping_key field.
func ByMappingKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMappingKey, opts...).ToFunc()
}

// ByItemCode orders the results by the item_code field.
func ByItemCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCode, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByMetalType orders the results by the metal_type field.
func ByMetalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetalType, opts...).ToFunc()
}

// ByAlloy orders the results by the alloy field.
func ByAlloy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlloy, opts...).ToFunc()
}

// BySpecifics orders the results by the specifics field.
func BySpecifics(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecifics, opts...).ToFunc()
}

// ByDimensions orders the results by the dimensions field.
func ByDimensions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimensions, opts...).ToFunc()
}

// ByUnitCost orders the results by the unit_cost field.
func ByUnitCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitCost, opts...).ToFunc()
}

// ByPriceUnit orders the results by the price_unit field.
func ByPriceUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriceUnit, opts...).ToFunc()
}

// ByParserVersion orders the results by the parser_version field.
func ByParserVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParserVersion, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRawModelOutput orders the results by the raw_model_output field.
func ByRawModelOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawModelOutput, opts...).ToFunc()
}

// ByValidated orders the results by the validated field.
func ByValidated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidated, opts...).ToFunc()
}

// ByValidatedBy orders the results by the validated_by field.
func ByValidatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedBy, opts...).ToFunc()
}

// ByValidatedAt orders the results by the validated_at field.
func ByValidatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatedAt, opts...).ToFunc()
}

// ByValidationNotes orders the results by the validation_notes field.
func ByValidationNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationNotes, opts...).ToFunc()
}

// ByItemCodeExists orders the results by the item_code_exists field.
func ByItemCodeExists(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCodeExists, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
