package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/parsing"
	"github.com/fabtrack/steelparse/internal/repository"
)

// Hook keeps mappings optimistically populated: the ingestion call paths
// invoke it synchronously once per newly created record. It is an explicit
// call, not a save signal, so invocation order and re-entrancy stay visible.
// A parse failure never propagates; the record's denormalized fields simply
// stay blank for later reprocessing.
type Hook struct {
	orch     *parsing.Orchestrator
	products repository.SupplierProductRepository
	stock    repository.StockItemRepository
	log      *slog.Logger
}

func NewHook(orch *parsing.Orchestrator, products repository.SupplierProductRepository, stock repository.StockItemRepository, logger *slog.Logger) *Hook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hook{orch: orch, products: products, stock: stock, log: logger}
}

// EnsureProductParsed parses a newly ingested supplier product and copies
// the mapping's non-null fields onto it. Re-entrant: a second invocation is
// a no-op once parsed_at is set.
func (h *Hook) EnsureProductParsed(ctx context.Context, id uuid.UUID) error {
	sp, err := h.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sp.ParsedAt != nil {
		h.log.Debug("hook.already_parsed", "product_id", id)
		return nil
	}

	res := h.orch.ParseOne(ctx, productInput(sp))
	if res.Empty() {
		h.log.Warn("hook.parse_empty", "product_id", id, "key", res.Key)
		return nil
	}

	overlay := productOverlay(sp, res)
	if err := h.products.ApplyParsedFields(ctx, id, overlay); err != nil {
		h.log.Error("hook.apply_failed", "product_id", id, "error", err)
		return nil
	}
	h.log.Info("hook.product_parsed",
		"product_id", id,
		"key", res.Key,
		"was_cached", res.WasCached,
	)
	return nil
}

// EnsureStockItemParsed is the stock-creation counterpart of
// EnsureProductParsed.
func (h *Hook) EnsureStockItemParsed(ctx context.Context, id uuid.UUID) error {
	si, err := h.stock.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if si.ParsedAt != nil {
		h.log.Debug("hook.already_parsed", "stock_item_id", id)
		return nil
	}

	res := h.orch.ParseOne(ctx, stockInput(si))
	if res.Empty() {
		h.log.Warn("hook.parse_empty", "stock_item_id", id, "key", res.Key)
		return nil
	}

	overlay := entity.ParsedOverlay{
		MetalType:     optOverlay(res.Fields.MetalType),
		Alloy:         optOverlay(res.Fields.Alloy),
		Dimensions:    optOverlay(res.Fields.Dimensions),
		ParserVersion: mappingVersion(res),
		Confidence:    res.Mapping.Confidence,
		ParsedAt:      time.Now(),
	}
	if err := h.stock.ApplyParsedFields(ctx, id, overlay); err != nil {
		h.log.Error("hook.apply_failed", "stock_item_id", id, "error", err)
		return nil
	}
	h.log.Info("hook.stock_item_parsed",
		"stock_item_id", id,
		"key", res.Key,
		"was_cached", res.WasCached,
	)
	return nil
}

func productInput(sp *entity.SupplierProduct) llm.InputItem {
	it := llm.InputItem{
		SupplierName: sp.SupplierName,
		Price:        sp.Price,
	}
	if sp.Description != nil {
		it.Description = *sp.Description
	}
	if sp.ProductName != nil {
		it.ProductName = *sp.ProductName
	}
	if sp.ItemNo != nil {
		it.ItemNo = *sp.ItemNo
	}
	if sp.VariantID != nil {
		it.VariantID = *sp.VariantID
	}
	if sp.PriceUnit != nil {
		it.PriceUnit = *sp.PriceUnit
	}
	return it
}

func stockInput(si *entity.StockItem) llm.InputItem {
	it := llm.InputItem{ItemNo: si.ItemCode, Price: si.UnitCost}
	if si.Description != nil {
		it.Description = *si.Description
	}
	if si.PriceUnit != nil {
		it.PriceUnit = *si.PriceUnit
	}
	return it
}

// productOverlay builds the denormalized overlay for one supplier product,
// filling only gaps: fields the record populated from its own source of
// truth (price, price unit) are never shadowed by model output.
func productOverlay(sp *entity.SupplierProduct, res parsing.Result) entity.ParsedOverlay {
	overlay := entity.ParsedOverlay{
		ItemCode:      optOverlay(res.Fields.ItemCode),
		MetalType:     optOverlay(res.Fields.MetalType),
		Alloy:         optOverlay(res.Fields.Alloy),
		Dimensions:    optOverlay(res.Fields.Dimensions),
		ParserVersion: mappingVersion(res),
		Confidence:    res.Mapping.Confidence,
		ParsedAt:      time.Now(),
	}
	if sp.Price == nil {
		overlay.UnitCost = res.Mapping.UnitCost
	}
	if sp.PriceUnit == nil {
		overlay.PriceUnit = optOverlay(res.Fields.PriceUnit)
	}
	return overlay
}

func mappingVersion(res parsing.Result) string {
	return res.Mapping.ParserVersion
}

func optOverlay(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
