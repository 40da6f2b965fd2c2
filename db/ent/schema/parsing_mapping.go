package schema

import (
	"encoding/json"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/fabtrack/steelparse/constants"
	"github.com/fabtrack/steelparse/db/ent/schema/utils"

	"github.com/google/uuid"
)

var reMappingKey = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ParsingMapping is the memoized result of one LLM parse of one distinct
// supplier description. Exactly one row exists per mapping_key; rows are
// created by the parsing path and mutated only by validation and the
// external-existence refresh.
type ParsingMapping struct{ ent.Schema }

func (ParsingMapping) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parsing_mappings"},
	}
}

func (ParsingMapping) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// sha-256 hex of the raw description text
		field.String("mapping_key").NotEmpty().MaxLen(64).Unique().Immutable().
			Match(reMappingKey),
		field.JSON("input_snapshot", json.RawMessage{}),
		field.String("item_code").Optional().Nillable(),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("metal_type").Optional().Nillable().
			Validate(utils.EnumValidator(constants.MetalTypes()...)),
		field.String("alloy").Optional().Nillable(),
		field.String("specifics").Optional().Nillable(),
		field.String("dimensions").Optional().Nillable(),
		field.Float("unit_cost").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,4)"}),
		field.String("price_unit").Optional().Nillable().
			Validate(utils.EnumValidator(constants.PriceUnits()...)),
		field.String("parser_version").NotEmpty(),
		field.Float32("confidence").Optional().Nillable(),
		field.String("raw_model_output").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("validated").Default(false),
		field.String("validated_by").Optional().Nillable(),
		field.Time("validated_at").Optional().Nillable(),
		field.String("validation_notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// derived from the authoritative inventory; refreshed, never trusted
		field.Bool("item_code_exists").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ParsingMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("validated", "created_at"),
	}
}
