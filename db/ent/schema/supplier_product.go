package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SupplierProduct is one raw row from a supplier price list (scraped or
// uploaded). Source fields are written once at ingest; the parsed_* fields
// are denormalized from its ParsingMapping after resolution.
type SupplierProduct struct{ ent.Schema }

func (SupplierProduct) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "supplier_products"},
	}
}

func (SupplierProduct) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("supplier_name").NotEmpty(),
		field.String("item_no").Optional().Nillable(),
		field.String("variant_id").Optional().Nillable(),
		field.String("product_name").Optional().Nillable(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.String("price_unit").Optional().Nillable(),
		field.JSON("specifications", json.RawMessage{}).Optional(),

		field.String("parsed_item_code").Optional().Nillable(),
		field.String("parsed_metal_type").Optional().Nillable(),
		field.String("parsed_alloy").Optional().Nillable(),
		field.String("parsed_dimensions").Optional().Nillable(),
		field.Float("parsed_unit_cost").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.String("parsed_price_unit").Optional().Nillable(),
		field.String("parser_version").Optional().Nillable(),
		field.Float32("parse_confidence").Optional().Nillable(),
		field.Time("parsed_at").Optional().Nillable(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SupplierProduct) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_name", "item_no"),
	}
}
