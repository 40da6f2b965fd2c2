package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanitizeOne(t *testing.T, item string) (map[string]any, []string) {
	t.Helper()
	cleaned, notes, err := SanitizeItems([]byte("[" + item + "]"))
	require.NoError(t, err)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &out))
	require.Len(t, out, 1)
	return out[0], notes
}

func TestSanitizeItemsDropsUnknownKeysAndNulls(t *testing.T) {
	m, notes := sanitizeOne(t, `{"metal_type":"copper","alloy":null,"reasoning":"looks coppery"}`)
	assert.Equal(t, "copper", m["metal_type"])
	assert.NotContains(t, m, "alloy")
	assert.NotContains(t, m, "reasoning")
	assert.Len(t, notes, 2)
}

func TestSanitizeItemsCoercesUnitCost(t *testing.T) {
	m, _ := sanitizeOne(t, `{"unit_cost":45.2}`)
	assert.Equal(t, "45.20", m["unit_cost"])

	m, _ = sanitizeOne(t, `{"unit_cost":"$1,234.50"}`)
	assert.Equal(t, "1234.50", m["unit_cost"])

	m, _ = sanitizeOne(t, `{"unit_cost":"POA"}`)
	assert.NotContains(t, m, "unit_cost")

	m, _ = sanitizeOne(t, `{"unit_cost":"45.20"}`)
	assert.Equal(t, "45.20", m["unit_cost"])
}

func TestSanitizeItemsCanonicalizesEnums(t *testing.T) {
	m, _ := sanitizeOne(t, `{"metal_type":"Stainless"}`)
	assert.Equal(t, "stainless_steel", m["metal_type"])

	m, _ = sanitizeOne(t, `{"metal_type":"unobtainium"}`)
	assert.Equal(t, "unknown", m["metal_type"])

	m, _ = sanitizeOne(t, `{"price_unit":"/m"}`)
	assert.Equal(t, "per_metre", m["price_unit"])

	m, _ = sanitizeOne(t, `{"price_unit":"per carton"}`)
	assert.NotContains(t, m, "price_unit")
}

func TestSanitizeItemsClampsConfidence(t *testing.T) {
	m, _ := sanitizeOne(t, `{"confidence":1.4}`)
	assert.Equal(t, 1.0, m["confidence"])

	m, _ = sanitizeOne(t, `{"confidence":-0.2}`)
	assert.Equal(t, 0.0, m["confidence"])

	m, notes := sanitizeOne(t, `{"confidence":0.85}`)
	assert.Equal(t, 0.85, m["confidence"])
	assert.Empty(t, notes)
}

func TestSanitizedOutputPassesSchema(t *testing.T) {
	payload := []byte(`[{"metal_type":"galv","unit_cost":"$45.20","price_unit":"ea","confidence":0.7,"chain_of_thought":"x"}]`)
	cleaned, _, err := SanitizeItems(payload)
	require.NoError(t, err)

	schema := BuildItemArraySchema(1, []string{"galvanised_steel", "mild_steel"}, []string{"per_each", "per_metre"})
	require.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}

func TestSchemaRejectsWrongCardinalityAndBadEnum(t *testing.T) {
	schema := BuildItemArraySchema(2, []string{"mild_steel"}, []string{"per_each"})

	err := ValidateJSONAgainstSchema(schema, []byte(`[{"metal_type":"mild_steel"}]`))
	assert.Error(t, err)

	err = ValidateJSONAgainstSchema(schema, []byte(`[{"metal_type":"mild_steel"},{"metal_type":"adamantium"}]`))
	assert.Error(t, err)

	err = ValidateJSONAgainstSchema(schema, []byte(`[{"metal_type":"mild_steel"},{"unit_cost":"12.50","price_unit":"per_each"}]`))
	assert.NoError(t, err)
}
