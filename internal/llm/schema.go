package llm

// BuildItemArraySchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map for an n-item batch. We pass it to the model as a structured
// output constraint and also use it locally to validate responses; minItems
// and maxItems pin the cardinality so a short or padded array fails closed.
func BuildItemArraySchema(n int, metalTypes, priceUnits []string) map[string]any {
	props := map[string]any{
		"item_code":   map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"metal_type":  map[string]any{"type": "string"},
		"alloy":       map[string]any{"type": "string"},
		"specifics":   map[string]any{"type": "string"},
		"dimensions":  map[string]any{"type": "string"},
		"unit_cost":   decimalProp(),
		"price_unit":  map[string]any{"type": "string"},
		"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	// Constrain categorical fields when taxonomies are provided.
	if len(metalTypes) > 0 {
		props["metal_type"] = map[string]any{"type": "string", "enum": metalTypes}
	}
	if len(priceUnits) > 0 {
		props["price_unit"] = map[string]any{"type": "string", "enum": priceUnits}
	}

	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		// every field is optional; partial extraction is tolerated
		"required": []string{},
	}

	return map[string]any{
		"type":     "array",
		"items":    item,
		"minItems": n,
		"maxItems": n,
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,4})?$`,
	}
}
