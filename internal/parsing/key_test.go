package parsing

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/steelparse/internal/llm"
)

func TestComputeKeyDeterministic(t *testing.T) {
	item := llm.InputItem{Description: "30mm x 10mm 304 Stainless Flat Bar"}
	k1 := ComputeKey(item)
	k2 := ComputeKey(item)
	require.Equal(t, k1, k2)

	sum := sha256.Sum256([]byte(item.Description))
	assert.Equal(t, hex.EncodeToString(sum[:]), k1)
	assert.Len(t, k1, 64)
}

func TestComputeKeyFallsBackToProductName(t *testing.T) {
	item := llm.InputItem{ProductName: "Flat Bar 304"}
	sum := sha256.Sum256([]byte("Flat Bar 304"))
	assert.Equal(t, hex.EncodeToString(sum[:]), ComputeKey(item))

	// description wins when both are present
	both := llm.InputItem{Description: "desc", ProductName: "name"}
	descSum := sha256.Sum256([]byte("desc"))
	assert.Equal(t, hex.EncodeToString(descSum[:]), ComputeKey(both))
}

func TestComputeKeyWhitespaceDistinct(t *testing.T) {
	a := ComputeKey(llm.InputItem{Description: "30mm x 10mm 304 Stainless Flat Bar"})
	b := ComputeKey(llm.InputItem{Description: " 30mm x 10mm 304 Stainless Flat Bar"})
	c := ComputeKey(llm.InputItem{Description: "30mm X 10mm 304 Stainless Flat Bar"})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}
