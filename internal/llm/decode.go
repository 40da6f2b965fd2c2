package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONArray pulls the JSON array payload out of a model response.
// Models wrap output in markdown fences or prose often enough that we scan
// for the outermost brackets rather than insisting on a bare array.
func ExtractJSONArray(content string) ([]byte, error) {
	s := strings.TrimSpace(content)
	if s == "" {
		return nil, ErrNoContent
	}
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response: %w", ErrMalformedOutput)
	}
	payload := []byte(s[start : end+1])
	if !json.Valid(payload) {
		return nil, fmt.Errorf("invalid JSON array in response: %w", ErrMalformedOutput)
	}
	return payload, nil
}

// DecodeItems unmarshals an extracted array and enforces that it carries
// exactly n records. Wrong cardinality is always a failure, never a partial
// success; callers align outputs to inputs positionally.
func DecodeItems(payload []byte, n int) ([]ItemFields, error) {
	var out []ItemFields
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("unmarshal items: %v: %w", err, ErrMalformedOutput)
	}
	if len(out) != n {
		return nil, fmt.Errorf("expected %d items, got %d: %w", n, len(out), ErrMalformedOutput)
	}
	return out, nil
}
