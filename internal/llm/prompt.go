package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildSystemPrompt composes the system message: task instructions, the
// metal-type and price-unit enums, and the embedded worked examples.
func BuildSystemPrompt(req ExtractRequest) string {
	parts := []string{
		"You are a metal price-list parser. Each input item is one supplier product line from a price list.",
		"Return ONLY a JSON array with exactly one object per input item, in the same order as the input items.",
		fmt.Sprintf("You will receive %d input items; the array MUST have exactly %d elements.", len(req.Items), len(req.Items)),
		"Each object has fields: item_code, description, metal_type, alloy, specifics, dimensions, unit_cost, price_unit, confidence.",
		"'metal_type' MUST be exactly one of the allowed enum. Allowed metal types (enum): " + strings.Join(req.MetalTypes, ", ") + ". If uncertain, use 'unknown'.",
		"'price_unit' MUST be one of: " + strings.Join(req.PriceUnits, ", ") + ".",
		"'unit_cost' is a decimal string taken from the supplier price when present (e.g. \"45.20\").",
		"'alloy' is the grade designation when visible (304, 316, 5005, C350, 6060).",
		"'dimensions' normalizes sizes to millimetres where the unit is clear.",
		"'item_code' is a short stable code in the style of the examples; omit it rather than invent one from nothing.",
		"'confidence' is your own 0..1 estimate for the whole object.",
		"Never output null. If a field is not present, omit it.",
	}

	if exs := Exemplars(); len(exs) > 0 {
		parts = append(parts, "Worked examples:")
		for _, ex := range exs {
			in, _ := json.Marshal(ex.Input)
			out, _ := json.Marshal(ex.Fields)
			parts = append(parts, "Input: "+string(in)+" -> Output: "+string(out))
		}
	}
	return strings.Join(parts, "\n")
}

// BuildUserPrompt formats the batch as a numbered list of structured lines.
// Positional numbering is what lets the caller align outputs to inputs.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Input items:\n")
	for i, it := range req.Items {
		b.WriteString(fmt.Sprintf("%d. ", i+1))
		writeItemLine(&b, it)
		b.WriteString("\n")
	}
	b.WriteString("\nReturn the JSON array now.")
	return b.String()
}

func writeItemLine(b *strings.Builder, it InputItem) {
	desc := it.Description
	if desc == "" {
		desc = it.ProductName
	}
	b.WriteString("description=")
	b.WriteString(strconvQuote(desc))
	if it.SupplierName != "" {
		b.WriteString(" supplier=")
		b.WriteString(strconvQuote(it.SupplierName))
	}
	if it.Price != nil {
		fmt.Fprintf(b, " price=%.4f", *it.Price)
	}
	if it.PriceUnit != "" {
		b.WriteString(" price_unit=")
		b.WriteString(strconvQuote(it.PriceUnit))
	}
}

func strconvQuote(s string) string {
	q, _ := json.Marshal(s)
	return string(q)
}
