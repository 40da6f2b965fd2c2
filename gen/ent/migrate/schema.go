// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ParsingMappingsColumns holds the columns for the "parsing_mappings" table.
	ParsingMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "mapping_key", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "input_snapshot", Type: field.TypeJSON},
		{Name: "item_code", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "metal_type", Type: field.TypeString, Nullable: true},
		{Name: "alloy", Type: field.TypeString, Nullable: true},
		{Name: "specifics", Type: field.TypeString, Nullable: true},
		{Name: "dimensions", Type: field.TypeString, Nullable: true},
		{Name: "unit_cost", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "price_unit", Type: field.TypeString, Nullable: true},
		{Name: "parser_version", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "raw_model_output", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "validated", Type: field.TypeBool, Default: false},
		{Name: "validated_by", Type: field.TypeString, Nullable: true},
		{Name: "validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "validation_notes", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "item_code_exists", Type: field.TypeBool, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ParsingMappingsTable holds the schema information for the "parsing_mappings" table.
	ParsingMappingsTable = &schema.Table{
		Name:       "parsing_mappings",
		Columns:    ParsingMappingsColumns,
		PrimaryKey: []*schema.Column{ParsingMappingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "parsingmapping_validated_created_at",
				Unique:  false,
				Columns: []*schema.Column{ParsingMappingsColumns[14], ParsingMappingsColumns[19]},
			},
		},
	}
	// StockItemsColumns holds the columns for the "stock_items" table.
	StockItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "item_code", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "unit_cost", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "price_unit", Type: field.TypeString, Nullable: true},
		{Name: "parsed_metal_type", Type: field.TypeString, Nullable: true},
		{Name: "parsed_alloy", Type: field.TypeString, Nullable: true},
		{Name: "parsed_dimensions", Type: field.TypeString, Nullable: true},
		{Name: "parser_version", Type: field.TypeString, Nullable: true},
		{Name: "parse_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "parsed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StockItemsTable holds the schema information for the "stock_items" table.
	StockItemsTable = &schema.Table{
		Name:       "stock_items",
		Columns:    StockItemsColumns,
		PrimaryKey: []*schema.Column{StockItemsColumns[0]},
	}
	// SupplierProductsColumns holds the columns for the "supplier_products" table.
	SupplierProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "supplier_name", Type: field.TypeString},
		{Name: "item_no", Type: field.TypeString, Nullable: true},
		{Name: "variant_id", Type: field.TypeString, Nullable: true},
		{Name: "product_name", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "price_unit", Type: field.TypeString, Nullable: true},
		{Name: "specifications", Type: field.TypeJSON, Nullable: true},
		{Name: "parsed_item_code", Type: field.TypeString, Nullable: true},
		{Name: "parsed_metal_type", Type: field.TypeString, Nullable: true},
		{Name: "parsed_alloy", Type: field.TypeString, Nullable: true},
		{Name: "parsed_dimensions", Type: field.TypeString, Nullable: true},
		{Name: "parsed_unit_cost", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "parsed_price_unit", Type: field.TypeString, Nullable: true},
		{Name: "parser_version", Type: field.TypeString, Nullable: true},
		{Name: "parse_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "parsed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SupplierProductsTable holds the schema information for the "supplier_products" table.
	SupplierProductsTable = &schema.Table{
		Name:       "supplier_products",
		Columns:    SupplierProductsColumns,
		PrimaryKey: []*schema.Column{SupplierProductsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supplierproduct_supplier_name_item_no",
				Unique:  false,
				Columns: []*schema.Column{SupplierProductsColumns[1], SupplierProductsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ParsingMappingsTable,
		StockItemsTable,
		SupplierProductsTable,
	}
)

func init() {
	ParsingMappingsTable.Annotation = &entsql.Annotation{
		Table: "parsing_mappings",
	}
	StockItemsTable.Annotation = &entsql.Annotation{
		Table: "stock_items",
	}
	SupplierProductsTable.Annotation = &entsql.Annotation{
		Table: "supplier_products",
	}
}
