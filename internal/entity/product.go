package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SupplierProduct represents one raw price-list row for data transfer
// between layers. Source fields are immutable after ingest; parsed_*
// fields are filled in by the consistency hook.
type SupplierProduct struct {
	ID             uuid.UUID       `json:"id"`
	SupplierName   string          `json:"supplier_name"`
	ItemNo         *string         `json:"item_no,omitempty"`
	VariantID      *string         `json:"variant_id,omitempty"`
	ProductName    *string         `json:"product_name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Price          *float64        `json:"price,omitempty"`
	PriceUnit      *string         `json:"price_unit,omitempty"`
	Specifications json.RawMessage `json:"specifications,omitempty"`

	ParsedItemCode   *string    `json:"parsed_item_code,omitempty"`
	ParsedMetalType  *string    `json:"parsed_metal_type,omitempty"`
	ParsedAlloy      *string    `json:"parsed_alloy,omitempty"`
	ParsedDimensions *string    `json:"parsed_dimensions,omitempty"`
	ParsedUnitCost   *float64   `json:"parsed_unit_cost,omitempty"`
	ParsedPriceUnit  *string    `json:"parsed_price_unit,omitempty"`
	ParserVersion    *string    `json:"parser_version,omitempty"`
	ParseConfidence  *float32   `json:"parse_confidence,omitempty"`
	ParsedAt         *time.Time `json:"parsed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockItem represents an inventory holding.
type StockItem struct {
	ID          uuid.UUID `json:"id"`
	ItemCode    string    `json:"item_code"`
	Description *string   `json:"description,omitempty"`
	UnitCost    *float64  `json:"unit_cost,omitempty"`
	PriceUnit   *string   `json:"price_unit,omitempty"`

	ParsedMetalType  *string    `json:"parsed_metal_type,omitempty"`
	ParsedAlloy      *string    `json:"parsed_alloy,omitempty"`
	ParsedDimensions *string    `json:"parsed_dimensions,omitempty"`
	ParserVersion    *string    `json:"parser_version,omitempty"`
	ParseConfidence  *float32   `json:"parse_confidence,omitempty"`
	ParsedAt         *time.Time `json:"parsed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParsedOverlay is the non-null subset of mapping fields the consistency
// hook copies onto a raw record. Nil fields leave the record untouched.
type ParsedOverlay struct {
	ItemCode      *string
	MetalType     *string
	Alloy         *string
	Dimensions    *string
	UnitCost      *float64
	PriceUnit     *string
	ParserVersion string
	Confidence    *float32
	ParsedAt      time.Time
}
