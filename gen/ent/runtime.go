// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fabtrack/steelparse/db/ent/schema"
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/fabtrack/steelparse/gen/ent/stockitem"
	"github.com/fabtrack/steelparse/gen/ent/supplierproduct"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	parsingmappingFields := schema.ParsingMapping{}.Fields()
	_ = parsingmappingFields
	// parsingmappingDescMappingKey is the schema descriptor for mapping_key field.
	parsingmappingDescMappingKey := parsingmappingFields[1].Descriptor()
	// parsingmapping.MappingKeyValidator is a validator for the "mapping_key" field. It is called by the builders before save.
	parsingmapping.MappingKeyValidator = func() func(string) error {
		validators := parsingmappingDescMappingKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(mapping_key string) error {
			for _, fn := range fns {
				if err := fn(mapping_key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parsingmappingDescMetalType is the schema descriptor for metal_type field.
	parsingmappingDescMetalType := parsingmappingFields[5].Descriptor()
	// parsingmapping.MetalTypeValidator is a validator for the "metal_type" field. It is called by the builders before save.
	parsingmapping.MetalTypeValidator = parsingmappingDescMetalType.Validators[0].(func(string) error)
	// parsingmappingDescPriceUnit is the schema descriptor for price_unit field.
	parsingmappingDescPriceUnit := parsingmappingFields[10].Descriptor()
	// parsingmapping.PriceUnitValidator is a validator for the "price_unit" field. It is called by the builders before save.
	parsingmapping.PriceUnitValidator = parsingmappingDescPriceUnit.Validators[0].(func(string) error)
	// parsingmappingDescParserVersion is the schema descriptor for parser_version field.
	parsingmappingDescParserVersion := parsingmappingFields[11].Descriptor()
	// parsingmapping.ParserVersionValidator is a validator for the "parser_version" field. It is called by the builders before save.
	parsingmapping.ParserVersionValidator = parsingmappingDescParserVersion.Validators[0].(func(string) error)
	// parsingmappingDescValidated is the schema descriptor for validated field.
	parsingmappingDescValidated := parsingmappingFields[14].Descriptor()
	// parsingmapping.DefaultValidated holds the default value on creation for the validated field.
	parsingmapping.DefaultValidated = parsingmappingDescValidated.Default.(bool)
	// parsingmappingDescCreatedAt is the schema descriptor for created_at field.
	parsingmappingDescCreatedAt := parsingmappingFields[19].Descriptor()
	// parsingmapping.DefaultCreatedAt holds the default value on creation for the created_at field.
	parsingmapping.DefaultCreatedAt = parsingmappingDescCreatedAt.Default.(func() time.Time)
	// parsingmappingDescUpdatedAt is the schema descriptor for updated_at field.
	parsingmappingDescUpdatedAt := parsingmappingFields[20].Descriptor()
	// parsingmapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	parsingmapping.DefaultUpdatedAt = parsingmappingDescUpdatedAt.Default.(func() time.Time)
	// parsingmapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	parsingmapping.UpdateDefaultUpdatedAt = parsingmappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// parsingmappingDescID is the schema descriptor for id field.
	parsingmappingDescID := parsingmappingFields[0].Descriptor()
	// parsingmapping.DefaultID holds the default value on creation for the id field.
	parsingmapping.DefaultID = parsingmappingDescID.Default.(func() uuid.UUID)
	stockitemFields := schema.StockItem{}.Fields()
	_ = stockitemFields
	// stockitemDescItemCode is the schema descriptor for item_code field.
	stockitemDescItemCode := stockitemFields[1].Descriptor()
	// stockitem.ItemCodeValidator is a validator for the "item_code" field. It is called by the builders before save.
	stockitem.ItemCodeValidator = stockitemDescItemCode.Validators[0].(func(string) error)
	// stockitemDescCreatedAt is the schema descriptor for created_at field.
	stockitemDescCreatedAt := stockitemFields[11].Descriptor()
	// stockitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	stockitem.DefaultCreatedAt = stockitemDescCreatedAt.Default.(func() time.Time)
	// stockitemDescUpdatedAt is the schema descriptor for updated_at field.
	stockitemDescUpdatedAt := stockitemFields[12].Descriptor()
	// stockitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	stockitem.DefaultUpdatedAt = stockitemDescUpdatedAt.Default.(func() time.Time)
	// stockitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	stockitem.UpdateDefaultUpdatedAt = stockitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// stockitemDescID is the schema descriptor for id field.
	stockitemDescID := stockitemFields[0].Descriptor()
	// stockitem.DefaultID holds the default value on creation for the id field.
	stockitem.DefaultID = stockitemDescID.Default.(func() uuid.UUID)
	supplierproductFields := schema.SupplierProduct{}.Fields()
	_ = supplierproductFields
	// supplierproductDescSupplierName is the schema descriptor for supplier_name field.
	supplierproductDescSupplierName := supplierproductFields[1].Descriptor()
	// supplierproduct.SupplierNameValidator is a validator for the "supplier_name" field. It is called by the builders before save.
	supplierproduct.SupplierNameValidator = supplierproductDescSupplierName.Validators[0].(func(string) error)
	// supplierproductDescCreatedAt is the schema descriptor for created_at field.
	supplierproductDescCreatedAt := supplierproductFields[18].Descriptor()
	// supplierproduct.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplierproduct.DefaultCreatedAt = supplierproductDescCreatedAt.Default.(func() time.Time)
	// supplierproductDescUpdatedAt is the schema descriptor for updated_at field.
	supplierproductDescUpdatedAt := supplierproductFields[19].Descriptor()
	// supplierproduct.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supplierproduct.DefaultUpdatedAt = supplierproductDescUpdatedAt.Default.(func() time.Time)
	// supplierproduct.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supplierproduct.UpdateDefaultUpdatedAt = supplierproductDescUpdatedAt.UpdateDefault.(func() time.Time)
	// supplierproductDescID is the schema descriptor for id field.
	supplierproductDescID := supplierproductFields[0].Descriptor()
	// supplierproduct.DefaultID holds the default value on creation for the id field.
	supplierproduct.DefaultID = supplierproductDescID.Default.(func() uuid.UUID)
}
