package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		payload, err := ExtractJSONArray(`[{"metal_type":"mild_steel"}]`)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"metal_type":"mild_steel"}]`, string(payload))
	})

	t.Run("fenced with prose", func(t *testing.T) {
		content := "Here you go:\n```json\n[{\"alloy\":\"304\"}]\n```\nLet me know if you need more."
		payload, err := ExtractJSONArray(content)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"alloy":"304"}]`, string(payload))
	})

	t.Run("empty response", func(t *testing.T) {
		_, err := ExtractJSONArray("   \n")
		assert.ErrorIs(t, err, ErrNoContent)
	})

	t.Run("no array", func(t *testing.T) {
		_, err := ExtractJSONArray(`{"metal_type":"mild_steel"}`)
		assert.ErrorIs(t, err, ErrMalformedOutput)
	})

	t.Run("invalid json between brackets", func(t *testing.T) {
		_, err := ExtractJSONArray(`[{"alloy": 304,,}]`)
		assert.ErrorIs(t, err, ErrMalformedOutput)
	})
}

func TestDecodeItemsEnforcesCardinality(t *testing.T) {
	payload := []byte(`[{"metal_type":"mild_steel"},{"metal_type":"copper","unit_cost":"12.50"}]`)

	items, err := DecodeItems(payload, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "copper", items[1].MetalType)
	assert.Equal(t, "12.50", items[1].UnitCost)

	_, err = DecodeItems(payload, 3)
	assert.ErrorIs(t, err, ErrMalformedOutput)

	_, err = DecodeItems(payload, 1)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}
