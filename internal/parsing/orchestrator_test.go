package parsing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/repository"
)

// fakeGateway answers deterministically from the input descriptions so tests
// can assert on round-tripped fields. Failure modes are togglable per test.
type fakeGateway struct {
	mu         sync.Mutex
	calls      [][]llm.InputItem
	err        error // returned for every call
	batchErr   error // returned for calls with more than one item
	shortBatch bool  // multi-item calls drop the last record
}

func (g *fakeGateway) ExtractItems(_ context.Context, req llm.ExtractRequest) ([]llm.ItemFields, []byte, error) {
	g.mu.Lock()
	g.calls = append(g.calls, append([]llm.InputItem(nil), req.Items...))
	g.mu.Unlock()

	if g.err != nil {
		return nil, nil, g.err
	}
	if g.batchErr != nil && len(req.Items) > 1 {
		return nil, nil, g.batchErr
	}
	out := make([]llm.ItemFields, 0, len(req.Items))
	for _, it := range req.Items {
		out = append(out, fakeFields(it))
	}
	if g.shortBatch && len(out) > 1 {
		out = out[:len(out)-1]
	}
	raw, _ := json.Marshal(out)
	return out, raw, nil
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func fakeFields(it llm.InputItem) llm.ItemFields {
	f := llm.ItemFields{
		Description: it.Description,
		MetalType:   "mild_steel",
		Confidence:  0.9,
	}
	if it.Price != nil {
		f.UnitCost = strconv.FormatFloat(*it.Price, 'f', 2, 64)
	}
	return f
}

func testOrchestrator(store repository.MappingRepository, gw llm.BatchExtractor) *Orchestrator {
	return NewOrchestrator(store, gw, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func batchItems(n int) []llm.InputItem {
	items := make([]llm.InputItem, n)
	for i := range items {
		price := 10.5 + float64(i)
		items[i] = llm.InputItem{
			Description:  fmt.Sprintf("%dmm x 10mm 304 Stainless Flat Bar", 20+i*5),
			SupplierName: "Acme Metals",
			Price:        &price,
		}
	}
	return items
}

func TestParseOneCachesSecondCall(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemoryMappingRepository()
	gw := &fakeGateway{}
	orch := testOrchestrator(store, gw)

	price := 45.2
	item := llm.InputItem{
		Description:  "30mm x 10mm 304 Stainless Flat Bar",
		SupplierName: "Acme Metals",
		Price:        &price,
	}

	first := orch.ParseOne(ctx, item)
	require.False(t, first.Empty())
	assert.False(t, first.WasCached)
	assert.Equal(t, "45.20", first.Fields.UnitCost)

	second := orch.ParseOne(ctx, item)
	require.False(t, second.Empty())
	assert.True(t, second.WasCached)
	assert.Equal(t, first.Key, second.Key)
	assert.Equal(t, first.Fields, second.Fields)

	assert.Equal(t, 1, gw.callCount())
	assert.Equal(t, 1, store.Len())
}

func TestParseBatchSendsOnlyMissesInOrder(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemoryMappingRepository()
	gw := &fakeGateway{}
	orch := testOrchestrator(store, gw)

	items := batchItems(5)
	for _, i := range []int{1, 3} {
		_, err := store.Create(ctx, &repository.CreateMappingRequest{
			Key:           ComputeKey(items[i]),
			Fields:        fakeFields(items[i]),
			ParserVersion: llm.ParserVersion(),
		})
		require.NoError(t, err)
	}

	results := orch.ParseBatch(ctx, items)
	require.Len(t, results, 5)

	for i, res := range results {
		require.False(t, res.Empty(), "item %d", i)
		assert.Equal(t, items[i].Description, res.Fields.Description, "item %d", i)
		assert.Equal(t, ComputeKey(items[i]), res.Key, "item %d", i)
	}
	assert.True(t, results[1].WasCached)
	assert.True(t, results[3].WasCached)
	assert.False(t, results[0].WasCached)
	assert.False(t, results[2].WasCached)
	assert.False(t, results[4].WasCached)

	require.Equal(t, 1, gw.callCount())
	sent := gw.calls[0]
	require.Len(t, sent, 3)
	assert.Equal(t, items[0].Description, sent[0].Description)
	assert.Equal(t, items[2].Description, sent[1].Description)
	assert.Equal(t, items[4].Description, sent[2].Description)

	assert.Equal(t, 5, store.Len())
}

func TestParseBatchFallsBackPerItemOnBatchError(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemoryMappingRepository()
	gw := &fakeGateway{batchErr: fmt.Errorf("503: %w", llm.ErrUpstream)}
	orch := testOrchestrator(store, gw)

	items := batchItems(5)
	results := orch.ParseBatch(ctx, items)
	require.Len(t, results, 5)
	for i, res := range results {
		assert.False(t, res.Empty(), "item %d", i)
		assert.Equal(t, items[i].Description, res.Fields.Description, "item %d", i)
	}

	// one failed batch call plus one single call per item
	assert.Equal(t, 6, gw.callCount())
	assert.Equal(t, 5, store.Len())
}

func TestParseBatchDegradesWhenEveryCallFails(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemoryMappingRepository()
	gw := &fakeGateway{err: fmt.Errorf("dial tcp: %w", llm.ErrUpstream)}
	orch := testOrchestrator(store, gw)

	items := batchItems(10)
	results := orch.ParseBatch(ctx, items)
	require.Len(t, results, 10)
	for i, res := range results {
		assert.True(t, res.Empty(), "item %d", i)
		assert.NotEmpty(t, res.Key, "item %d", i)
		assert.False(t, res.WasCached, "item %d", i)
	}
	assert.Equal(t, 0, store.Len())
}

func TestParseBatchCardinalityMismatchPersistsNothingFromBatch(t *testing.T) {
	ctx := context.Background()
	store := repository.NewInMemoryMappingRepository()
	gw := &fakeGateway{shortBatch: true}
	orch := testOrchestrator(store, gw)

	items := batchItems(3)
	results := orch.ParseBatch(ctx, items)
	require.Len(t, results, 3)
	for i, res := range results {
		require.False(t, res.Empty(), "item %d", i)
		assert.Equal(t, items[i].Description, res.Fields.Description, "item %d", i)
	}

	// batch call plus three single-item fallbacks
	assert.Equal(t, 4, gw.callCount())
	assert.Equal(t, 3, store.Len())
}

// raceStore forces a cache miss on the first lookup of each key even when a
// row exists, reproducing a concurrent writer landing between Get and Create.
type raceStore struct {
	*repository.InMemoryMappingRepository
	mu     sync.Mutex
	missed map[string]bool
}

func (s *raceStore) Get(ctx context.Context, key string) (*entity.ParsingMapping, error) {
	s.mu.Lock()
	first := !s.missed[key]
	s.missed[key] = true
	s.mu.Unlock()
	if first {
		return nil, common.ErrNotFound
	}
	return s.InMemoryMappingRepository.Get(ctx, key)
}

func TestParseOneDuplicateKeyConvergesOnStoredRow(t *testing.T) {
	ctx := context.Background()
	inner := repository.NewInMemoryMappingRepository()
	store := &raceStore{InMemoryMappingRepository: inner, missed: make(map[string]bool)}
	gw := &fakeGateway{}
	orch := testOrchestrator(store, gw)

	item := llm.InputItem{Description: "50mm x 50mm x 5mm Galv Angle"}
	winner := fakeFields(item)
	winner.MetalType = "galvanised_steel"
	_, err := inner.Create(ctx, &repository.CreateMappingRequest{
		Key:           ComputeKey(item),
		Fields:        winner,
		ParserVersion: llm.ParserVersion(),
	})
	require.NoError(t, err)

	res := orch.ParseOne(ctx, item)
	require.False(t, res.Empty())
	assert.True(t, res.WasCached)
	assert.Equal(t, "galvanised_steel", res.Fields.MetalType)
	assert.Equal(t, 1, inner.Len())
}
