package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// StockItem is an inventory holding. item_code is the authoritative
// identifier the external-existence refresh checks mappings against.
type StockItem struct{ ent.Schema }

func (StockItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stock_items"},
	}
}

func (StockItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("item_code").NotEmpty().Unique(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("unit_cost").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.String("price_unit").Optional().Nillable(),

		field.String("parsed_metal_type").Optional().Nillable(),
		field.String("parsed_alloy").Optional().Nillable(),
		field.String("parsed_dimensions").Optional().Nillable(),
		field.String("parser_version").Optional().Nillable(),
		field.Float32("parse_confidence").Optional().Nillable(),
		field.Time("parsed_at").Optional().Nillable(),

		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
