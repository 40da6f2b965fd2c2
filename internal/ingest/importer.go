package ingest

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/parsing"
	"github.com/fabtrack/steelparse/internal/repository"
)

// Importer bulk-drives the orchestrator for uploaded price lists. Chunking
// and inter-batch throttling are this caller's policy, not the
// orchestrator's: one gateway call per chunk keeps rate-limit pressure
// predictable on lists thousands of rows long.
type Importer struct {
	products  repository.SupplierProductRepository
	orch      *parsing.Orchestrator
	limiter   *rate.Limiter
	batchSize int
	log       *slog.Logger
}

// ImportStats summarizes one import run.
type ImportStats struct {
	Rows    int
	Parsed  int
	Cached  int
	Failed  int
	Elapsed time.Duration
}

func NewImporter(products repository.SupplierProductRepository, orch *parsing.Orchestrator, batchSize int, batchesPerSec float64, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	if batchSize <= 0 {
		batchSize = 25
	}
	var limiter *rate.Limiter
	if batchesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(batchesPerSec), 1)
	}
	return &Importer{
		products:  products,
		orch:      orch,
		limiter:   limiter,
		batchSize: batchSize,
		log:       logger,
	}
}

// ImportPriceList reads a workbook, stores every row, and resolves mappings
// chunk by chunk. Row-level parse failures are counted, not fatal.
func (imp *Importer) ImportPriceList(ctx context.Context, r io.Reader, supplierName string) (*ImportStats, error) {
	start := time.Now()

	reqs, err := ReadPriceList(r, supplierName, imp.log)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.SupplierProduct, 0, len(reqs))
	for _, req := range reqs {
		sp, err := imp.products.Create(ctx, req)
		if err != nil {
			return nil, err
		}
		products = append(products, sp)
	}

	stats := &ImportStats{Rows: len(products)}
	for off := 0; off < len(products); off += imp.batchSize {
		end := off + imp.batchSize
		if end > len(products) {
			end = len(products)
		}
		chunk := products[off:end]

		if imp.limiter != nil {
			if err := imp.limiter.Wait(ctx); err != nil {
				return stats, err
			}
		}

		items := make([]llm.InputItem, len(chunk))
		for i, sp := range chunk {
			items[i] = productInput(sp)
		}
		results := imp.orch.ParseBatch(ctx, items)

		for i, res := range results {
			sp := chunk[i]
			if res.Empty() {
				stats.Failed++
				continue
			}
			if res.WasCached {
				stats.Cached++
			} else {
				stats.Parsed++
			}
			overlay := productOverlay(sp, res)
			if err := imp.products.ApplyParsedFields(ctx, sp.ID, overlay); err != nil {
				imp.log.Error("import.apply_failed", "product_id", sp.ID, "error", err)
				stats.Failed++
			}
		}
	}

	stats.Elapsed = time.Since(start)
	imp.log.Info("price list imported",
		"supplier", supplierName,
		"rows", stats.Rows,
		"parsed", stats.Parsed,
		"cached", stats.Cached,
		"failed", stats.Failed,
		"elapsed_ms", stats.Elapsed.Milliseconds(),
	)
	return stats, nil
}
