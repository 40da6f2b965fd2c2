package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fabtrack/steelparse/gen/ent"
	"github.com/fabtrack/steelparse/gen/ent/stockitem"
	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/utils"
)

// CreateSupplierProductRequest wraps parameters for ingesting one raw
// price-list row.
type CreateSupplierProductRequest struct {
	SupplierName   string
	ItemNo         *string
	VariantID      *string
	ProductName    *string
	Description    *string
	Price          *float64
	PriceUnit      *string
	Specifications json.RawMessage
}

type SupplierProductRepository interface {
	Create(ctx context.Context, req *CreateSupplierProductRequest) (*entity.SupplierProduct, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SupplierProduct, error)
	// ApplyParsedFields writes the denormalized overlay and stamps parsed_at.
	ApplyParsedFields(ctx context.Context, id uuid.UUID, overlay entity.ParsedOverlay) error
}

type StockItemRepository interface {
	Create(ctx context.Context, itemCode string, description *string, unitCost *float64, priceUnit *string) (*entity.StockItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StockItem, error)
	ApplyParsedFields(ctx context.Context, id uuid.UUID, overlay entity.ParsedOverlay) error
	// ItemCodeExists reports whether the code is known to the inventory.
	// Used as the ExistsFunc for the external-existence refresh.
	ItemCodeExists(ctx context.Context, itemCode string) (bool, error)
}

type supplierProductRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSupplierProductRepository(entc *ent.Client, logger *slog.Logger) SupplierProductRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &supplierProductRepository{ent: entc, log: logger}
}

func (r *supplierProductRepository) Create(ctx context.Context, req *CreateSupplierProductRequest) (*entity.SupplierProduct, error) {
	builder := r.ent.SupplierProduct.Create().
		SetSupplierName(req.SupplierName).
		SetNillableItemNo(req.ItemNo).
		SetNillableVariantID(req.VariantID).
		SetNillableProductName(req.ProductName).
		SetNillableDescription(req.Description).
		SetNillablePrice(req.Price).
		SetNillablePriceUnit(req.PriceUnit)
	if req.Specifications != nil {
		builder = builder.SetSpecifications(req.Specifications)
	}
	sp, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("supplier product create failed", "supplier", req.SupplierName, "error", err)
		return nil, err
	}
	return utils.ToSupplierProduct(sp), nil
}

func (r *supplierProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SupplierProduct, error) {
	sp, err := r.ent.SupplierProduct.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToSupplierProduct(sp), nil
}

func (r *supplierProductRepository) ApplyParsedFields(ctx context.Context, id uuid.UUID, overlay entity.ParsedOverlay) error {
	upd := r.ent.SupplierProduct.UpdateOneID(id).
		SetNillableParsedItemCode(overlay.ItemCode).
		SetNillableParsedMetalType(overlay.MetalType).
		SetNillableParsedAlloy(overlay.Alloy).
		SetNillableParsedDimensions(overlay.Dimensions).
		SetNillableParsedUnitCost(overlay.UnitCost).
		SetNillableParsedPriceUnit(overlay.PriceUnit).
		SetParserVersion(overlay.ParserVersion).
		SetNillableParseConfidence(overlay.Confidence).
		SetParsedAt(overlay.ParsedAt)
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("supplier product parsed-fields update failed", "id", id, "error", err)
		return err
	}
	return nil
}

type stockItemRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStockItemRepository(entc *ent.Client, logger *slog.Logger) StockItemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &stockItemRepository{ent: entc, log: logger}
}

func (r *stockItemRepository) Create(ctx context.Context, itemCode string, description *string, unitCost *float64, priceUnit *string) (*entity.StockItem, error) {
	si, err := r.ent.StockItem.Create().
		SetItemCode(itemCode).
		SetNillableDescription(description).
		SetNillableUnitCost(unitCost).
		SetNillablePriceUnit(priceUnit).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.ErrDuplicateKey
		}
		r.log.Error("stock item create failed", "item_code", itemCode, "error", err)
		return nil, err
	}
	return utils.ToStockItem(si), nil
}

func (r *stockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockItem, error) {
	si, err := r.ent.StockItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToStockItem(si), nil
}

func (r *stockItemRepository) ApplyParsedFields(ctx context.Context, id uuid.UUID, overlay entity.ParsedOverlay) error {
	upd := r.ent.StockItem.UpdateOneID(id).
		SetNillableParsedMetalType(overlay.MetalType).
		SetNillableParsedAlloy(overlay.Alloy).
		SetNillableParsedDimensions(overlay.Dimensions).
		SetParserVersion(overlay.ParserVersion).
		SetNillableParseConfidence(overlay.Confidence).
		SetParsedAt(overlay.ParsedAt)
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.log.Error("stock item parsed-fields update failed", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *stockItemRepository) ItemCodeExists(ctx context.Context, itemCode string) (bool, error) {
	return r.ent.StockItem.Query().
		Where(stockitem.ItemCode(itemCode)).
		Exist(ctx)
}
