package llm

import (
	"context"
	"errors"
)

// InputItem is one raw supplier row as handed to the model. ItemNo and
// VariantID ride along for the audit snapshot; hashing never sees them.
type InputItem struct {
	Description  string   `json:"description,omitempty"`
	ProductName  string   `json:"product_name,omitempty"`
	SupplierName string   `json:"supplier_name,omitempty"`
	ItemNo       string   `json:"item_no,omitempty"`
	VariantID    string   `json:"variant_id,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	PriceUnit    string   `json:"price_unit,omitempty"`
}

// ItemFields is the normalized shape we want from the LLM for one item.
type ItemFields struct {
	ItemCode    string  `json:"item_code,omitempty"`
	Description string  `json:"description,omitempty"`
	MetalType   string  `json:"metal_type,omitempty"`
	Alloy       string  `json:"alloy,omitempty"`
	Specifics   string  `json:"specifics,omitempty"`
	Dimensions  string  `json:"dimensions,omitempty"`
	UnitCost    string  `json:"unit_cost,omitempty"` // decimal string
	PriceUnit   string  `json:"price_unit,omitempty"`
	Confidence  float32 `json:"confidence,omitempty"` // 0..1, self-reported
}

// IsEmpty reports whether the model extracted nothing usable.
func (f ItemFields) IsEmpty() bool {
	return f.ItemCode == "" && f.Description == "" && f.MetalType == "" &&
		f.Alloy == "" && f.Specifics == "" && f.Dimensions == "" &&
		f.UnitCost == "" && f.PriceUnit == ""
}

// ExtractRequest carries 1..N input items plus the taxonomies the prompt
// enumerates. The response must contain exactly len(Items) records.
type ExtractRequest struct {
	Items      []InputItem
	MetalTypes []string
	PriceUnits []string
}

// BatchExtractor is the gateway interface the orchestrator depends on.
// Implementations return one ItemFields per input item, order-aligned,
// plus the raw response text for audit storage. A response whose length
// does not match the request is an error, never a partial success.
type BatchExtractor interface {
	ExtractItems(ctx context.Context, req ExtractRequest) ([]ItemFields, []byte, error)
}

// Gateway failure taxonomy. Callers branch with errors.Is.
var (
	// ErrNoContent means the model returned an empty response.
	ErrNoContent = errors.New("no content in model response")
	// ErrMalformedOutput means the response carried no parseable payload,
	// or a payload whose cardinality does not match the request.
	ErrMalformedOutput = errors.New("malformed model output")
	// ErrUpstream covers network, auth, and rate-limit failures.
	ErrUpstream = errors.New("upstream model error")
)
