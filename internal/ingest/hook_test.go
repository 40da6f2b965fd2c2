package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/parsing"
	"github.com/fabtrack/steelparse/internal/repository"
)

type stubGateway struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (g *stubGateway) ExtractItems(_ context.Context, req llm.ExtractRequest) ([]llm.ItemFields, []byte, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.err != nil {
		return nil, nil, g.err
	}
	out := make([]llm.ItemFields, len(req.Items))
	for i := range req.Items {
		out[i] = llm.ItemFields{
			ItemCode:   "SS-FB-30X10-304",
			MetalType:  "stainless_steel",
			Alloy:      "304",
			Dimensions: "30mm x 10mm",
			UnitCost:   "45.20",
			PriceUnit:  "per_metre",
			Confidence: 0.95,
		}
	}
	raw, _ := json.Marshal(out)
	return out, raw, nil
}

func (g *stubGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type hookFixture struct {
	hook     *Hook
	gw       *stubGateway
	products *repository.InMemorySupplierProductRepository
	stock    *repository.InMemoryStockItemRepository
}

func newHookFixture(t *testing.T) *hookFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := &stubGateway{}
	orch := parsing.NewOrchestrator(repository.NewInMemoryMappingRepository(), gw, logger)
	products := repository.NewInMemorySupplierProductRepository()
	stock := repository.NewInMemoryStockItemRepository()
	return &hookFixture{
		hook:     NewHook(orch, products, stock, logger),
		gw:       gw,
		products: products,
		stock:    stock,
	}
}

func strPtr(s string) *string { return &s }

func TestEnsureProductParsedFillsGapsOnly(t *testing.T) {
	ctx := context.Background()
	fx := newHookFixture(t)

	price := 45.2
	withPrice, err := fx.products.Create(ctx, &repository.CreateSupplierProductRequest{
		SupplierName: "Acme Metals",
		Description:  strPtr("30mm x 10mm 304 Stainless Flat Bar"),
		Price:        &price,
		PriceUnit:    strPtr("per_metre"),
	})
	require.NoError(t, err)

	require.NoError(t, fx.hook.EnsureProductParsed(ctx, withPrice.ID))
	sp, err := fx.products.GetByID(ctx, withPrice.ID)
	require.NoError(t, err)

	require.NotNil(t, sp.ParsedAt)
	assert.Equal(t, "stainless_steel", *sp.ParsedMetalType)
	assert.Equal(t, "304", *sp.ParsedAlloy)
	assert.Equal(t, "SS-FB-30X10-304", *sp.ParsedItemCode)
	// the row's own price and unit are never shadowed
	assert.Nil(t, sp.ParsedUnitCost)
	assert.Nil(t, sp.ParsedPriceUnit)
	require.NotNil(t, sp.ParseConfidence)
	assert.InDelta(t, 0.95, float64(*sp.ParseConfidence), 0.0001)
}

func TestEnsureProductParsedFillsMissingPrice(t *testing.T) {
	ctx := context.Background()
	fx := newHookFixture(t)

	noPrice, err := fx.products.Create(ctx, &repository.CreateSupplierProductRequest{
		SupplierName: "Acme Metals",
		Description:  strPtr("Brass rod half inch"),
	})
	require.NoError(t, err)

	require.NoError(t, fx.hook.EnsureProductParsed(ctx, noPrice.ID))
	sp, err := fx.products.GetByID(ctx, noPrice.ID)
	require.NoError(t, err)

	require.NotNil(t, sp.ParsedUnitCost)
	assert.Equal(t, 45.2, *sp.ParsedUnitCost)
	require.NotNil(t, sp.ParsedPriceUnit)
	assert.Equal(t, "per_metre", *sp.ParsedPriceUnit)
}

func TestEnsureProductParsedIsReentrant(t *testing.T) {
	ctx := context.Background()
	fx := newHookFixture(t)

	sp, err := fx.products.Create(ctx, &repository.CreateSupplierProductRequest{
		SupplierName: "Acme Metals",
		Description:  strPtr("MS RHS 50 x 25 x 2.0"),
	})
	require.NoError(t, err)

	require.NoError(t, fx.hook.EnsureProductParsed(ctx, sp.ID))
	require.NoError(t, fx.hook.EnsureProductParsed(ctx, sp.ID))
	assert.Equal(t, 1, fx.gw.callCount())
}

func TestEnsureProductParsedSwallowsParseFailure(t *testing.T) {
	ctx := context.Background()
	fx := newHookFixture(t)
	fx.gw.err = fmt.Errorf("timeout: %w", llm.ErrUpstream)

	sp, err := fx.products.Create(ctx, &repository.CreateSupplierProductRequest{
		SupplierName: "Acme Metals",
		Description:  strPtr("ALY SHEET 5005"),
	})
	require.NoError(t, err)

	require.NoError(t, fx.hook.EnsureProductParsed(ctx, sp.ID))
	got, err := fx.products.GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParsedAt)
	assert.Nil(t, got.ParsedMetalType)

	// the record stays eligible for a later retry
	fx.gw.err = nil
	require.NoError(t, fx.hook.EnsureProductParsed(ctx, sp.ID))
	got, err = fx.products.GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ParsedAt)
}

func TestEnsureStockItemParsed(t *testing.T) {
	ctx := context.Background()
	fx := newHookFixture(t)

	cost := 45.2
	si, err := fx.stock.Create(ctx, "SS-FB-30X10-304", strPtr("30mm x 10mm 304 Stainless Flat Bar"), &cost, nil)
	require.NoError(t, err)

	require.NoError(t, fx.hook.EnsureStockItemParsed(ctx, si.ID))
	got, err := fx.stock.GetByID(ctx, si.ID)
	require.NoError(t, err)

	require.NotNil(t, got.ParsedAt)
	assert.Equal(t, "stainless_steel", *got.ParsedMetalType)
	assert.Equal(t, "304", *got.ParsedAlloy)
	assert.Equal(t, "30mm x 10mm", *got.ParsedDimensions)

	require.NoError(t, fx.hook.EnsureStockItemParsed(ctx, si.ID))
	assert.Equal(t, 1, fx.gw.callCount())
}
