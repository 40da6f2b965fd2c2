package parsing

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/fabtrack/steelparse/constants"
	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/repository"
)

// Result is the outcome for one input item. An item whose parse failed
// carries zero Fields and a nil Mapping; callers get a result either way.
type Result struct {
	Key       string
	Fields    llm.ItemFields
	Mapping   *entity.ParsingMapping
	WasCached bool
}

// Empty reports whether the item yielded no usable mapping.
func (r Result) Empty() bool {
	return r.Mapping == nil
}

// Orchestrator partitions batches into cache hits and misses, drives the
// gateway for the misses in a single call, and persists fresh mappings.
// It holds no store locks across the gateway call and never persists from
// a response that failed as a whole.
type Orchestrator struct {
	store      repository.MappingRepository
	gateway    llm.BatchExtractor
	log        *slog.Logger
	metalTypes []string
	priceUnits []string
	version    string
}

func NewOrchestrator(store repository.MappingRepository, gateway llm.BatchExtractor, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		store:      store,
		gateway:    gateway,
		log:        logger,
		metalTypes: constants.MetalTypes(),
		priceUnits: constants.PriceUnits(),
		version:    llm.ParserVersion(),
	}
}

// ParseBatch resolves every item, order-preserving: result[i] always belongs
// to items[i]. Cached entries come back WasCached=true; uncached entries go
// to the gateway in one batch call, falling back to per-item calls when the
// batch fails or its cardinality is off. One bad item never fails the batch.
func (o *Orchestrator) ParseBatch(ctx context.Context, items []llm.InputItem) []Result {
	start := time.Now()
	results := make([]Result, len(items))
	var missIdx []int

	for i, it := range items {
		key := ComputeKey(it)
		results[i].Key = key
		pm, err := o.store.Get(ctx, key)
		switch {
		case err == nil:
			results[i] = cachedResult(key, pm)
		case errors.Is(err, common.ErrNotFound):
			missIdx = append(missIdx, i)
		default:
			// lookup failure degrades to a miss; the create path converges
			// on the stored row if one exists
			o.log.Error("parse.lookup_failed", "key", key, "error", err)
			missIdx = append(missIdx, i)
		}
	}

	o.log.Info("parse.batch",
		"items", len(items),
		"cached", len(items)-len(missIdx),
		"uncached", len(missIdx),
	)
	if len(missIdx) == 0 {
		return results
	}

	miss := make([]llm.InputItem, len(missIdx))
	for j, i := range missIdx {
		miss[j] = items[i]
	}

	fields, raw, err := o.gateway.ExtractItems(ctx, llm.ExtractRequest{
		Items:      miss,
		MetalTypes: o.metalTypes,
		PriceUnits: o.priceUnits,
	})
	if err != nil {
		// malformed output is logged apart from transport failures: it can
		// mean prompt or schema drift rather than a flaky upstream
		if errors.Is(err, llm.ErrMalformedOutput) {
			o.log.Error("parse.batch_malformed", "items", len(miss), "error", err)
		} else {
			o.log.Warn("parse.batch_gateway_failed", "items", len(miss), "error", err)
		}
		for _, i := range missIdx {
			results[i] = o.parseMiss(ctx, items[i], results[i].Key)
		}
		return results
	}
	if len(fields) != len(miss) {
		// nothing from a misaligned response may be persisted
		o.log.Error("parse.batch_cardinality_mismatch", "want", len(miss), "got", len(fields))
		for _, i := range missIdx {
			results[i] = o.parseMiss(ctx, items[i], results[i].Key)
		}
		return results
	}

	for j, i := range missIdx {
		results[i] = o.persist(ctx, items[i], results[i].Key, fields[j], raw)
	}
	o.log.Info("parse.batch_done",
		"items", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return results
}

// ParseOne resolves a single item: cache check, then a one-item gateway call
// on miss. Any gateway failure degrades to an empty result rather than an
// error; the caller's larger transaction must never block on one bad
// description.
func (o *Orchestrator) ParseOne(ctx context.Context, item llm.InputItem) Result {
	key := ComputeKey(item)
	pm, err := o.store.Get(ctx, key)
	switch {
	case err == nil:
		return cachedResult(key, pm)
	case errors.Is(err, common.ErrNotFound):
	default:
		o.log.Error("parse.lookup_failed", "key", key, "error", err)
	}
	return o.parseMiss(ctx, item, key)
}

// parseMiss is the single-item gateway path used by ParseOne and by the
// batch fallback. Failures isolate to this item.
func (o *Orchestrator) parseMiss(ctx context.Context, item llm.InputItem, key string) Result {
	fields, raw, err := o.gateway.ExtractItems(ctx, llm.ExtractRequest{
		Items:      []llm.InputItem{item},
		MetalTypes: o.metalTypes,
		PriceUnits: o.priceUnits,
	})
	if err != nil {
		snapshot, _ := json.Marshal(item)
		o.log.Warn("parse.item_failed",
			"key", key,
			"error", err,
			"input", string(snapshot),
		)
		return Result{Key: key}
	}
	return o.persist(ctx, item, key, fields[0], raw)
}

// persist stores a freshly parsed mapping. A DuplicateKey means a concurrent
// writer won the race on this key; both callers converge on the stored row.
func (o *Orchestrator) persist(ctx context.Context, item llm.InputItem, key string, fields llm.ItemFields, raw []byte) Result {
	snapshot, err := json.Marshal(item)
	if err != nil {
		o.log.Error("parse.snapshot_failed", "key", key, "error", err)
		return Result{Key: key}
	}

	pm, err := o.store.Create(ctx, &repository.CreateMappingRequest{
		Key:            key,
		InputSnapshot:  snapshot,
		Fields:         fields,
		ParserVersion:  o.version,
		RawModelOutput: string(raw),
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			existing, gerr := o.store.Get(ctx, key)
			if gerr != nil {
				o.log.Error("parse.race_reread_failed", "key", key, "error", gerr)
				return Result{Key: key}
			}
			return cachedResult(key, existing)
		}
		o.log.Error("parse.persist_failed", "key", key, "error", err)
		return Result{Key: key}
	}
	return Result{Key: key, Fields: fields, Mapping: pm}
}

func cachedResult(key string, pm *entity.ParsingMapping) Result {
	return Result{
		Key:       key,
		Fields:    fieldsFromMapping(pm),
		Mapping:   pm,
		WasCached: true,
	}
}

func fieldsFromMapping(pm *entity.ParsingMapping) llm.ItemFields {
	f := llm.ItemFields{
		ItemCode:    deref(pm.ItemCode),
		Description: deref(pm.Description),
		MetalType:   deref(pm.MetalType),
		Alloy:       deref(pm.Alloy),
		Specifics:   deref(pm.Specifics),
		Dimensions:  deref(pm.Dimensions),
		PriceUnit:   deref(pm.PriceUnit),
	}
	if pm.UnitCost != nil {
		f.UnitCost = strconv.FormatFloat(*pm.UnitCost, 'f', 2, 64)
	}
	if pm.Confidence != nil {
		f.Confidence = *pm.Confidence
	}
	return f
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
