package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
)

// InMemoryMappingRepository is a map-backed MappingRepository with the same
// uniqueness semantics as the database-backed one. Used by tests and local
// runs without a database.
type InMemoryMappingRepository struct {
	mu       sync.RWMutex
	mappings map[string]*entity.ParsingMapping
}

func NewInMemoryMappingRepository() *InMemoryMappingRepository {
	return &InMemoryMappingRepository{
		mappings: make(map[string]*entity.ParsingMapping),
	}
}

func (r *InMemoryMappingRepository) Get(_ context.Context, key string) (*entity.ParsingMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pm, ok := r.mappings[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *pm
	return &cp, nil
}

func (r *InMemoryMappingRepository) Create(_ context.Context, req *CreateMappingRequest) (*entity.ParsingMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.mappings[req.Key]; exists {
		return nil, fmt.Errorf("mapping %s: %w", req.Key, common.ErrDuplicateKey)
	}

	f := req.Fields
	now := time.Now()
	pm := &entity.ParsingMapping{
		ID:             uuid.New(),
		Key:            req.Key,
		InputSnapshot:  req.InputSnapshot,
		ItemCode:       memOptStr(f.ItemCode),
		Description:    memOptStr(f.Description),
		MetalType:      memOptStr(f.MetalType),
		Alloy:          memOptStr(f.Alloy),
		Specifics:      memOptStr(f.Specifics),
		Dimensions:     memOptStr(f.Dimensions),
		UnitCost:       memOptDec(f.UnitCost),
		PriceUnit:      memOptStr(f.PriceUnit),
		ParserVersion:  req.ParserVersion,
		RawModelOutput: req.RawModelOutput,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if f.Confidence > 0 {
		c := f.Confidence
		pm.Confidence = &c
	}
	r.mappings[req.Key] = pm
	cp := *pm
	return &cp, nil
}

func (r *InMemoryMappingRepository) ListUnvalidated(_ context.Context, limit int) ([]*entity.ParsingMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.ParsingMapping
	for _, pm := range r.mappings {
		if !pm.Validated {
			cp := *pm
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryMappingRepository) Validate(ctx context.Context, key string, patch entity.MappingPatch, validatedBy, notes string, exists ExistsFunc) (*entity.ParsingMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pm, ok := r.mappings[key]
	if !ok {
		return nil, common.ErrNotFound
	}

	// run the existence check against the patched item code before touching
	// the stored row, so a failed check leaves the mapping unchanged
	itemCode := pm.ItemCode
	if patch.ItemCode != nil {
		itemCode = patch.ItemCode
	}
	var existsFlag *bool
	if exists != nil && itemCode != nil && *itemCode != "" {
		found, err := exists(ctx, *itemCode)
		if err != nil {
			return nil, fmt.Errorf("existence check: %w", err)
		}
		existsFlag = &found
	}

	applyPatch(pm, patch)
	now := time.Now()
	pm.Validated = true
	pm.ValidatedBy = &validatedBy
	pm.ValidatedAt = &now
	if notes != "" {
		pm.ValidationNotes = &notes
	}
	pm.ItemCodeExists = existsFlag
	pm.UpdatedAt = now

	cp := *pm
	return &cp, nil
}

func (r *InMemoryMappingRepository) RefreshExternalExistence(ctx context.Context, key string, exists ExistsFunc) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pm, ok := r.mappings[key]
	if !ok {
		return false, common.ErrNotFound
	}
	found := false
	if exists != nil && pm.ItemCode != nil && *pm.ItemCode != "" {
		var err error
		found, err = exists(ctx, *pm.ItemCode)
		if err != nil {
			return false, fmt.Errorf("existence check: %w", err)
		}
	}
	pm.ItemCodeExists = &found
	pm.UpdatedAt = time.Now()
	return found, nil
}

// Len reports the number of stored mappings.
func (r *InMemoryMappingRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mappings)
}

func applyPatch(pm *entity.ParsingMapping, patch entity.MappingPatch) {
	if patch.ItemCode != nil {
		pm.ItemCode = patch.ItemCode
	}
	if patch.Description != nil {
		pm.Description = patch.Description
	}
	if patch.MetalType != nil {
		pm.MetalType = patch.MetalType
	}
	if patch.Alloy != nil {
		pm.Alloy = patch.Alloy
	}
	if patch.Specifics != nil {
		pm.Specifics = patch.Specifics
	}
	if patch.Dimensions != nil {
		pm.Dimensions = patch.Dimensions
	}
	if patch.UnitCost != nil {
		pm.UnitCost = patch.UnitCost
	}
	if patch.PriceUnit != nil {
		pm.PriceUnit = patch.PriceUnit
	}
}

func memOptStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func memOptDec(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
