package utils

import (
	"time"

	"github.com/fabtrack/steelparse/gen/ent"
	steelparsepb "github.com/fabtrack/steelparse/gen/proto/steelparse/v1"
	"github.com/fabtrack/steelparse/internal/entity"
)

// ToMapping converts a generated ent row to the transfer entity.
func ToMapping(pm *ent.ParsingMapping) *entity.ParsingMapping {
	return &entity.ParsingMapping{
		ID:              pm.ID,
		Key:             pm.MappingKey,
		InputSnapshot:   pm.InputSnapshot,
		ItemCode:        pm.ItemCode,
		Description:     pm.Description,
		MetalType:       pm.MetalType,
		Alloy:           pm.Alloy,
		Specifics:       pm.Specifics,
		Dimensions:      pm.Dimensions,
		UnitCost:        pm.UnitCost,
		PriceUnit:       pm.PriceUnit,
		ParserVersion:   pm.ParserVersion,
		Confidence:      pm.Confidence,
		RawModelOutput:  pm.RawModelOutput,
		Validated:       pm.Validated,
		ValidatedBy:     pm.ValidatedBy,
		ValidatedAt:     pm.ValidatedAt,
		ValidationNotes: pm.ValidationNotes,
		ItemCodeExists:  pm.ItemCodeExists,
		CreatedAt:       pm.CreatedAt,
		UpdatedAt:       pm.UpdatedAt,
	}
}

func ToSupplierProduct(sp *ent.SupplierProduct) *entity.SupplierProduct {
	return &entity.SupplierProduct{
		ID:               sp.ID,
		SupplierName:     sp.SupplierName,
		ItemNo:           sp.ItemNo,
		VariantID:        sp.VariantID,
		ProductName:      sp.ProductName,
		Description:      sp.Description,
		Price:            sp.Price,
		PriceUnit:        sp.PriceUnit,
		Specifications:   sp.Specifications,
		ParsedItemCode:   sp.ParsedItemCode,
		ParsedMetalType:  sp.ParsedMetalType,
		ParsedAlloy:      sp.ParsedAlloy,
		ParsedDimensions: sp.ParsedDimensions,
		ParsedUnitCost:   sp.ParsedUnitCost,
		ParsedPriceUnit:  sp.ParsedPriceUnit,
		ParserVersion:    sp.ParserVersion,
		ParseConfidence:  sp.ParseConfidence,
		ParsedAt:         sp.ParsedAt,
		CreatedAt:        sp.CreatedAt,
		UpdatedAt:        sp.UpdatedAt,
	}
}

func ToStockItem(si *ent.StockItem) *entity.StockItem {
	return &entity.StockItem{
		ID:               si.ID,
		ItemCode:         si.ItemCode,
		Description:      si.Description,
		UnitCost:         si.UnitCost,
		PriceUnit:        si.PriceUnit,
		ParsedMetalType:  si.ParsedMetalType,
		ParsedAlloy:      si.ParsedAlloy,
		ParsedDimensions: si.ParsedDimensions,
		ParserVersion:    si.ParserVersion,
		ParseConfidence:  si.ParseConfidence,
		ParsedAt:         si.ParsedAt,
		CreatedAt:        si.CreatedAt,
		UpdatedAt:        si.UpdatedAt,
	}
}

// ToPBMapping converts a transfer entity to its wire form.
func ToPBMapping(pm *entity.ParsingMapping) *steelparsepb.Mapping {
	out := &steelparsepb.Mapping{
		MappingKey:      pm.Key,
		ItemCode:        pm.ItemCode,
		Description:     pm.Description,
		MetalType:       pm.MetalType,
		Alloy:           pm.Alloy,
		Specifics:       pm.Specifics,
		Dimensions:      pm.Dimensions,
		UnitCost:        pm.UnitCost,
		PriceUnit:       pm.PriceUnit,
		ParserVersion:   pm.ParserVersion,
		Confidence:      pm.Confidence,
		Validated:       pm.Validated,
		ValidatedBy:     pm.ValidatedBy,
		ValidationNotes: pm.ValidationNotes,
		ItemCodeExists:  pm.ItemCodeExists,
		CreatedAt:       pm.CreatedAt.UTC().Format(time.RFC3339),
	}
	if pm.ValidatedAt != nil {
		s := pm.ValidatedAt.UTC().Format(time.RFC3339)
		out.ValidatedAt = &s
	}
	return out
}
