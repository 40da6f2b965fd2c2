package validation

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/repository"
)

func testService(t *testing.T) (*Service, *repository.InMemoryMappingRepository, *repository.InMemoryStockItemRepository) {
	t.Helper()
	mappings := repository.NewInMemoryMappingRepository()
	stock := repository.NewInMemoryStockItemRepository()
	svc := NewService(mappings, stock, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, mappings, stock
}

func seedMapping(t *testing.T, mappings *repository.InMemoryMappingRepository, key string, fields llm.ItemFields) {
	t.Helper()
	_, err := mappings.Create(context.Background(), &repository.CreateMappingRequest{
		Key:           key,
		Fields:        fields,
		ParserVersion: "2+2025-07-03",
	})
	require.NoError(t, err)
}

func TestValidateOverlaysOnlyPatchedFields(t *testing.T) {
	ctx := context.Background()
	svc, mappings, _ := testService(t)
	key := "a1b2c3"
	seedMapping(t, mappings, key, llm.ItemFields{
		ItemCode:   "SS-FB-30X10",
		MetalType:  "stainless_steel",
		Alloy:      "304",
		Dimensions: "30mm x 10mm",
		UnitCost:   "45.20",
	})

	code := "SS-FB-30X10-304"
	pm, err := svc.Validate(ctx, key, entity.MappingPatch{ItemCode: &code}, "jordan", "corrected code")
	require.NoError(t, err)

	assert.Equal(t, "SS-FB-30X10-304", *pm.ItemCode)
	assert.Equal(t, "stainless_steel", *pm.MetalType)
	assert.Equal(t, "304", *pm.Alloy)
	assert.Equal(t, 45.2, *pm.UnitCost)
	assert.True(t, pm.Validated)
	require.NotNil(t, pm.ValidatedBy)
	assert.Equal(t, "jordan", *pm.ValidatedBy)
	assert.NotNil(t, pm.ValidatedAt)
	require.NotNil(t, pm.ValidationNotes)
	assert.Equal(t, "corrected code", *pm.ValidationNotes)
}

func TestValidateRefreshesExistenceAgainstPatchedCode(t *testing.T) {
	ctx := context.Background()
	svc, mappings, stock := testService(t)
	_, err := stock.Create(ctx, "SS-FB-30X10-304", nil, nil, nil)
	require.NoError(t, err)

	key := "d4e5f6"
	seedMapping(t, mappings, key, llm.ItemFields{ItemCode: "SS-FB-30X10"})

	code := "SS-FB-30X10-304"
	pm, err := svc.Validate(ctx, key, entity.MappingPatch{ItemCode: &code}, "jordan", "")
	require.NoError(t, err)
	require.NotNil(t, pm.ItemCodeExists)
	assert.True(t, *pm.ItemCodeExists)

	// a code that is not in stock flags false without failing validation
	key2 := "0a0b0c"
	seedMapping(t, mappings, key2, llm.ItemFields{ItemCode: "NO-SUCH-CODE"})
	pm2, err := svc.Validate(ctx, key2, entity.MappingPatch{}, "jordan", "")
	require.NoError(t, err)
	require.NotNil(t, pm2.ItemCodeExists)
	assert.False(t, *pm2.ItemCodeExists)
}

func TestValidateRequiresValidatorIdentity(t *testing.T) {
	svc, mappings, _ := testService(t)
	seedMapping(t, mappings, "abc123", llm.ItemFields{MetalType: "copper"})

	_, err := svc.Validate(context.Background(), "abc123", entity.MappingPatch{}, "  ", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	pm, err := mappings.Get(context.Background(), "abc123")
	require.NoError(t, err)
	assert.False(t, pm.Validated)
}

func TestValidateUnknownKeyReturnsNotFound(t *testing.T) {
	svc, _, _ := testService(t)
	_, err := svc.Validate(context.Background(), "deadbeef", entity.MappingPatch{}, "jordan", "")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestRefreshExistence(t *testing.T) {
	ctx := context.Background()
	svc, mappings, stock := testService(t)
	seedMapping(t, mappings, "f00d", llm.ItemFields{ItemCode: "MS-RHS-50X25"})

	found, err := svc.RefreshExistence(ctx, "f00d")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = stock.Create(ctx, "MS-RHS-50X25", nil, nil, nil)
	require.NoError(t, err)

	found, err = svc.RefreshExistence(ctx, "f00d")
	require.NoError(t, err)
	assert.True(t, found)

	pm, err := mappings.Get(ctx, "f00d")
	require.NoError(t, err)
	require.NotNil(t, pm.ItemCodeExists)
	assert.True(t, *pm.ItemCodeExists)
}
