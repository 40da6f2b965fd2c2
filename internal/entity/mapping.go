package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParsingMapping is the memoized parse result for one distinct input
// description, used for data transfer between layers.
type ParsingMapping struct {
	ID             uuid.UUID       `json:"id"`
	Key            string          `json:"mapping_key"`
	InputSnapshot  json.RawMessage `json:"input_snapshot,omitempty"`
	ItemCode       *string         `json:"item_code,omitempty"`
	Description    *string         `json:"description,omitempty"`
	MetalType      *string         `json:"metal_type,omitempty"`
	Alloy          *string         `json:"alloy,omitempty"`
	Specifics      *string         `json:"specifics,omitempty"`
	Dimensions     *string         `json:"dimensions,omitempty"`
	UnitCost       *float64        `json:"unit_cost,omitempty"`
	PriceUnit      *string         `json:"price_unit,omitempty"`
	ParserVersion  string          `json:"parser_version"`
	Confidence     *float32        `json:"confidence,omitempty"`
	RawModelOutput string          `json:"raw_model_output,omitempty"`
	Validated      bool            `json:"validated"`
	ValidatedBy    *string         `json:"validated_by,omitempty"`
	ValidatedAt    *time.Time      `json:"validated_at,omitempty"`
	ValidationNotes *string        `json:"validation_notes,omitempty"`
	ItemCodeExists *bool           `json:"item_code_exists,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// MappingPatch carries validation-time corrections. Nil fields are left
// unchanged on the mapping; non-nil fields overwrite.
type MappingPatch struct {
	ItemCode    *string
	Description *string
	MetalType   *string
	Alloy       *string
	Specifics   *string
	Dimensions  *string
	UnitCost    *float64
	PriceUnit   *string
}

// Empty reports whether the patch changes nothing.
func (p MappingPatch) Empty() bool {
	return p.ItemCode == nil && p.Description == nil && p.MetalType == nil &&
		p.Alloy == nil && p.Specifics == nil && p.Dimensions == nil &&
		p.UnitCost == nil && p.PriceUnit == nil
}
