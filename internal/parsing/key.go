package parsing

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/fabtrack/steelparse/internal/llm"
)

// ComputeKey derives the cache identity for one raw item: SHA-256 hex of the
// description, falling back to the product name when the description is
// empty. The raw string is hashed as-is — no trimming or case folding — so
// two descriptions differing only in whitespace are distinct cache entries.
// That matches how suppliers republish identical lines byte-for-byte; do not
// add normalization here without treating it as a behavior change.
func ComputeKey(item llm.InputItem) string {
	text := item.Description
	if text == "" {
		text = item.ProductName
	}
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
