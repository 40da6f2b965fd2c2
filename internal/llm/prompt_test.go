package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/steelparse/constants"
)

func TestBuildSystemPromptEnumeratesTaxonomies(t *testing.T) {
	req := ExtractRequest{
		Items:      make([]InputItem, 3),
		MetalTypes: constants.MetalTypes(),
		PriceUnits: constants.PriceUnits(),
	}
	prompt := BuildSystemPrompt(req)

	assert.Contains(t, prompt, "exactly 3 elements")
	assert.Contains(t, prompt, "stainless_steel")
	assert.Contains(t, prompt, "per_metre")
	assert.Contains(t, prompt, "Worked examples:")
}

func TestBuildUserPromptNumbersItems(t *testing.T) {
	price := 45.2
	req := ExtractRequest{Items: []InputItem{
		{Description: "30mm x 10mm 304 Stainless Flat Bar", SupplierName: "Acme Metals", Price: &price},
		{ProductName: "Galv Angle 50x50x5"},
	}}
	prompt := BuildUserPrompt(req)

	assert.Contains(t, prompt, `1. description="30mm x 10mm 304 Stainless Flat Bar" supplier="Acme Metals" price=45.2000`)
	// product name stands in when the description is empty
	assert.Contains(t, prompt, `2. description="Galv Angle 50x50x5"`)
	assert.Equal(t, 1, strings.Count(prompt, "1. "))
}

func TestExemplarsEmbedded(t *testing.T) {
	exs := Exemplars()
	require.NotEmpty(t, exs)
	for _, ex := range exs {
		assert.NotEmpty(t, ex.Input.Description)
		assert.False(t, ex.Fields.IsEmpty())
	}
}

func TestParserVersionCarriesExemplarRevision(t *testing.T) {
	v := ParserVersion()
	parts := strings.SplitN(v, "+", 2)
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}
