package ingest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fabtrack/steelparse/internal/parsing"
	"github.com/fabtrack/steelparse/internal/repository"
)

func buildWorkbook(t *testing.T, header []any, rows [][]any) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestReadPriceListMatchesColumnsByHeader(t *testing.T) {
	r := buildWorkbook(t,
		[]any{"Item No", "Description", "Price", "Unit", "Finish"},
		[][]any{
			{"FB304", "30mm x 10mm 304 Stainless Flat Bar", "$1,234.50", "/m", "mill"},
			{"", "", "", "", ""},
			{"BR12", "Brass rod half inch", 12.5, "ea", ""},
		},
	)

	reqs, err := ReadPriceList(r, "Acme Metals", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.Len(t, reqs, 2) // blank row skipped

	first := reqs[0]
	assert.Equal(t, "Acme Metals", first.SupplierName)
	assert.Equal(t, "FB304", *first.ItemNo)
	assert.Equal(t, "30mm x 10mm 304 Stainless Flat Bar", *first.Description)
	require.NotNil(t, first.Price)
	assert.Equal(t, 1234.5, *first.Price)
	assert.Equal(t, "/m", *first.PriceUnit)
	assert.JSONEq(t, `{"Finish":"mill"}`, string(first.Specifications))

	second := reqs[1]
	assert.Equal(t, "BR12", *second.ItemNo)
	require.NotNil(t, second.Price)
	assert.Equal(t, 12.5, *second.Price)
	assert.Nil(t, second.Specifications)
}

func TestReadPriceListRejectsUnusableSheet(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := buildWorkbook(t, []any{"Price", "Unit"}, [][]any{{"10.00", "ea"}})
	_, err := ReadPriceList(r, "Acme Metals", logger)
	assert.Error(t, err)

	r = buildWorkbook(t, []any{"Description"}, nil)
	_, err = ReadPriceList(r, "Acme Metals", logger)
	assert.Error(t, err)
}

func TestImportPriceListChunksAndCounts(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := &stubGateway{}
	products := repository.NewInMemorySupplierProductRepository()
	orch := parsing.NewOrchestrator(repository.NewInMemoryMappingRepository(), gw, logger)
	imp := NewImporter(products, orch, 2, 0, logger)

	r := buildWorkbook(t,
		[]any{"Description", "Price"},
		[][]any{
			{"30mm x 10mm 304 Stainless Flat Bar", 45.2},
			{"Brass rod half inch", 12.5},
			{"30mm x 10mm 304 Stainless Flat Bar", 45.2}, // repeat hits the cache
			{"MS RHS 50 x 25 x 2.0", 41.75},
		},
	)

	stats, err := imp.ImportPriceList(ctx, r, "Acme Metals")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Rows)
	assert.Equal(t, 3, stats.Parsed)
	assert.Equal(t, 1, stats.Cached)
	assert.Equal(t, 0, stats.Failed)
	// one gateway call per chunk that contains at least one miss
	assert.Equal(t, 2, gw.callCount())
}
