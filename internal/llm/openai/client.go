package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fabtrack/steelparse/constants"
	"github.com/fabtrack/steelparse/internal/llm"
)

// ExtractItems implements llm.BatchExtractor using text-only chat/completions.
// One request covers the whole batch; the response must be a JSON array of
// exactly len(req.Items) objects or the call fails as a whole.
func (c *Client) ExtractItems(ctx context.Context, req llm.ExtractRequest) ([]llm.ItemFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()
	n := len(req.Items)

	if n == 0 {
		return nil, nil, nil
	}
	if len(req.MetalTypes) == 0 {
		req.MetalTypes = constants.MetalTypes()
	}
	if len(req.PriceUnits) == 0 {
		req.PriceUnits = constants.PriceUnits()
	}

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"items", n,
		"metal_types", len(req.MetalTypes),
	)

	schema := llm.BuildItemArraySchema(n, req.MetalTypes, req.PriceUnits)
	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "system", "content": "JSON Schema for the array:\n" + mustJSON(schema)},
			{"role": "user", "content": user},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, status, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, nil, fmt.Errorf("openai request: %v: %w", err, llm.ErrUpstream)
	}
	if status < 200 || status >= 300 {
		c.log.Error("llm.extract.bad_status",
			"req_id", rid, "status", status, "body", truncate(string(raw), 500),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("openai status %d: %w", status, llm.ErrUpstream)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, fmt.Errorf("decode openai response: %v: %w", err, llm.ErrMalformedOutput)
	}
	if len(cc.Choices) == 0 || strings.TrimSpace(cc.Choices[0].Message.Content) == "" {
		c.log.Error("llm.extract.no_content",
			"req_id", rid, "elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, llm.ErrNoContent
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	payload, err := llm.ExtractJSONArray(content)
	if err != nil {
		c.log.Error("llm.extract.no_array",
			"req_id", rid, "error", err, "content", truncate(content, 500),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, rawContent, err
	}

	// Lenient sanitize before strict validation; only normalizes optionals.
	cleaned, notes, err := llm.SanitizeItems(payload)
	if err != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, rawContent, fmt.Errorf("sanitize: %v: %w", err, llm.ErrMalformedOutput)
	}
	if len(notes) > 0 {
		c.log.Warn("llm.extract.sanitize_applied", "req_id", rid, "notes", notes)
	}

	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "error", err, "content", truncate(string(cleaned), 500),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, rawContent, fmt.Errorf("schema validation: %v: %w", err, llm.ErrMalformedOutput)
	}

	out, err := llm.DecodeItems(cleaned, n)
	if err != nil {
		c.log.Error("llm.extract.cardinality_mismatch",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, rawContent, err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"items", n,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
