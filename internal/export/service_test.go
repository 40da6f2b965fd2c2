package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/repository"
)

func TestExportReviewQueueXLSX(t *testing.T) {
	ctx := context.Background()
	mappings := repository.NewInMemoryMappingRepository()
	_, err := mappings.Create(ctx, &repository.CreateMappingRequest{
		Key: "a1b2c3",
		Fields: llm.ItemFields{
			ItemCode:   "SS-FB-30X10-304",
			MetalType:  "stainless_steel",
			Alloy:      "304",
			UnitCost:   "45.20",
			PriceUnit:  "per_metre",
			Confidence: 0.95,
		},
		ParserVersion: "2+2025-07-03",
	})
	require.NoError(t, err)

	svc := NewService(mappings, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportReviewQueueXLSX(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Review Queue")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Mapping Key", rows[0][0])
	assert.Equal(t, "a1b2c3", rows[1][0])
	assert.Contains(t, rows[1], "stainless_steel")
	assert.Contains(t, rows[1], "45.20")
}
