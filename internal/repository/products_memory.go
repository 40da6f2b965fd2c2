package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
)

// InMemorySupplierProductRepository backs hook tests and local runs.
type InMemorySupplierProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*entity.SupplierProduct
}

func NewInMemorySupplierProductRepository() *InMemorySupplierProductRepository {
	return &InMemorySupplierProductRepository{
		products: make(map[uuid.UUID]*entity.SupplierProduct),
	}
}

func (r *InMemorySupplierProductRepository) Create(_ context.Context, req *CreateSupplierProductRequest) (*entity.SupplierProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	sp := &entity.SupplierProduct{
		ID:             uuid.New(),
		SupplierName:   req.SupplierName,
		ItemNo:         req.ItemNo,
		VariantID:      req.VariantID,
		ProductName:    req.ProductName,
		Description:    req.Description,
		Price:          req.Price,
		PriceUnit:      req.PriceUnit,
		Specifications: req.Specifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.products[sp.ID] = sp
	cp := *sp
	return &cp, nil
}

func (r *InMemorySupplierProductRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.SupplierProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sp, ok := r.products[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *sp
	return &cp, nil
}

func (r *InMemorySupplierProductRepository) ApplyParsedFields(_ context.Context, id uuid.UUID, overlay entity.ParsedOverlay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, ok := r.products[id]
	if !ok {
		return common.ErrNotFound
	}
	if overlay.ItemCode != nil {
		sp.ParsedItemCode = overlay.ItemCode
	}
	if overlay.MetalType != nil {
		sp.ParsedMetalType = overlay.MetalType
	}
	if overlay.Alloy != nil {
		sp.ParsedAlloy = overlay.Alloy
	}
	if overlay.Dimensions != nil {
		sp.ParsedDimensions = overlay.Dimensions
	}
	if overlay.UnitCost != nil {
		sp.ParsedUnitCost = overlay.UnitCost
	}
	if overlay.PriceUnit != nil {
		sp.ParsedPriceUnit = overlay.PriceUnit
	}
	sp.ParserVersion = &overlay.ParserVersion
	sp.ParseConfidence = overlay.Confidence
	t := overlay.ParsedAt
	sp.ParsedAt = &t
	sp.UpdatedAt = time.Now()
	return nil
}

// InMemoryStockItemRepository backs hook and validation tests.
type InMemoryStockItemRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entity.StockItem
	codes map[string]uuid.UUID
}

func NewInMemoryStockItemRepository() *InMemoryStockItemRepository {
	return &InMemoryStockItemRepository{
		items: make(map[uuid.UUID]*entity.StockItem),
		codes: make(map[string]uuid.UUID),
	}
}

func (r *InMemoryStockItemRepository) Create(_ context.Context, itemCode string, description *string, unitCost *float64, priceUnit *string) (*entity.StockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.codes[itemCode]; exists {
		return nil, common.ErrDuplicateKey
	}
	now := time.Now()
	si := &entity.StockItem{
		ID:          uuid.New(),
		ItemCode:    itemCode,
		Description: description,
		UnitCost:    unitCost,
		PriceUnit:   priceUnit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items[si.ID] = si
	r.codes[itemCode] = si.ID
	cp := *si
	return &cp, nil
}

func (r *InMemoryStockItemRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	si, ok := r.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *si
	return &cp, nil
}

func (r *InMemoryStockItemRepository) ApplyParsedFields(_ context.Context, id uuid.UUID, overlay entity.ParsedOverlay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	si, ok := r.items[id]
	if !ok {
		return common.ErrNotFound
	}
	if overlay.MetalType != nil {
		si.ParsedMetalType = overlay.MetalType
	}
	if overlay.Alloy != nil {
		si.ParsedAlloy = overlay.Alloy
	}
	if overlay.Dimensions != nil {
		si.ParsedDimensions = overlay.Dimensions
	}
	si.ParserVersion = &overlay.ParserVersion
	si.ParseConfidence = overlay.Confidence
	t := overlay.ParsedAt
	si.ParsedAt = &t
	si.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryStockItemRepository) ItemCodeExists(_ context.Context, itemCode string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codes[itemCode]
	return ok, nil
}
