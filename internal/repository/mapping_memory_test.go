package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
)

func TestInMemoryMappingRepositoryUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMappingRepository()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)

	req := &CreateMappingRequest{
		Key:           "abc123",
		Fields:        llm.ItemFields{MetalType: "copper", UnitCost: "12.50"},
		ParserVersion: "2+2025-07-03",
	}
	created, err := repo.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "copper", *created.MetalType)
	assert.Equal(t, 12.5, *created.UnitCost)

	_, err = repo.Create(ctx, req)
	assert.ErrorIs(t, err, common.ErrDuplicateKey)
	assert.Equal(t, 1, repo.Len())
}

func TestInMemoryMappingRepositoryListUnvalidated(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMappingRepository()

	for _, key := range []string{"k1", "k2", "k3"} {
		_, err := repo.Create(ctx, &CreateMappingRequest{
			Key:           key,
			Fields:        llm.ItemFields{MetalType: "mild_steel"},
			ParserVersion: "2+2025-07-03",
		})
		require.NoError(t, err)
	}

	_, err := repo.Validate(ctx, "k2", entity.MappingPatch{}, "jordan", "", nil)
	require.NoError(t, err)

	listed, err := repo.ListUnvalidated(ctx, 0)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	for _, pm := range listed {
		assert.NotEqual(t, "k2", pm.Key)
		assert.False(t, pm.Validated)
	}

	limited, err := repo.ListUnvalidated(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestInMemoryMappingRepositoryValidateFailedCheckLeavesRow(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryMappingRepository()

	_, err := repo.Create(ctx, &CreateMappingRequest{
		Key:           "abc123",
		Fields:        llm.ItemFields{ItemCode: "FB304", MetalType: "stainless_steel"},
		ParserVersion: "2+2025-07-03",
	})
	require.NoError(t, err)

	boom := func(context.Context, string) (bool, error) {
		return false, errors.New("stock lookup down")
	}
	alloy := "304"
	_, err = repo.Validate(ctx, "abc123", entity.MappingPatch{Alloy: &alloy}, "jordan", "", boom)
	require.Error(t, err)

	pm, err := repo.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, pm.Validated)
	assert.Nil(t, pm.Alloy)
}
