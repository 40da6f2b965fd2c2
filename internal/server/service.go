package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	steelparsepb "github.com/fabtrack/steelparse/gen/proto/steelparse/v1"
	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/parsing"
	"github.com/fabtrack/steelparse/internal/utils"
	"github.com/fabtrack/steelparse/internal/validation"
)

// MappingService exposes the parsing core and the validation workflow over
// gRPC. Admin bulk imports and the validation UI are its callers.
type MappingService struct {
	steelparsepb.UnimplementedInventoryMappingServiceServer
	orch       *parsing.Orchestrator
	validation *validation.Service
	logger     *slog.Logger
}

func NewMappingService(orch *parsing.Orchestrator, vs *validation.Service, logger *slog.Logger) *MappingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MappingService{orch: orch, validation: vs, logger: logger}
}

func (s *MappingService) ParseItems(ctx context.Context, req *steelparsepb.ParseItemsRequest) (*steelparsepb.ParseItemsResponse, error) {
	if len(req.GetItems()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "items are required")
	}

	items := make([]llm.InputItem, len(req.GetItems()))
	for i, it := range req.GetItems() {
		items[i] = llm.InputItem{
			Description:  it.GetDescription(),
			ProductName:  it.GetProductName(),
			SupplierName: it.GetSupplierName(),
			ItemNo:       it.GetItemNo(),
			VariantID:    it.GetVariantId(),
			PriceUnit:    it.GetPriceUnit(),
		}
		if it.Price != nil {
			p := it.GetPrice()
			items[i].Price = &p
		}
	}

	results := s.orch.ParseBatch(ctx, items)
	out := make([]*steelparsepb.ParseResult, len(results))
	for i, r := range results {
		pr := &steelparsepb.ParseResult{
			WasCached:  r.WasCached,
			MappingKey: r.Key,
		}
		if r.Mapping != nil {
			pr.Mapping = utils.ToPBMapping(r.Mapping)
		}
		out[i] = pr
	}
	return &steelparsepb.ParseItemsResponse{Results: out}, nil
}

func (s *MappingService) ListUnvalidated(ctx context.Context, req *steelparsepb.ListUnvalidatedRequest) (*steelparsepb.ListUnvalidatedResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = 50
	}
	mappings, err := s.validation.ListUnvalidated(ctx, limit)
	if err != nil {
		s.logger.Error("list unvalidated failed", "error", err)
		return nil, status.Error(codes.Internal, "list unvalidated failed")
	}
	out := make([]*steelparsepb.Mapping, len(mappings))
	for i, pm := range mappings {
		out[i] = utils.ToPBMapping(pm)
	}
	return &steelparsepb.ListUnvalidatedResponse{Mappings: out}, nil
}

func (s *MappingService) ValidateMapping(ctx context.Context, req *steelparsepb.ValidateMappingRequest) (*steelparsepb.ValidateMappingResponse, error) {
	key := strings.TrimSpace(req.GetMappingKey())
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "mapping_key is required")
	}
	if strings.TrimSpace(req.GetValidatedBy()) == "" {
		return nil, status.Error(codes.InvalidArgument, "validated_by is required")
	}

	patch := entity.MappingPatch{
		ItemCode:    req.ItemCode,
		Description: req.Description,
		MetalType:   req.MetalType,
		Alloy:       req.Alloy,
		Specifics:   req.Specifics,
		Dimensions:  req.Dimensions,
		UnitCost:    req.UnitCost,
		PriceUnit:   req.PriceUnit,
	}

	pm, err := s.validation.Validate(ctx, key, patch, req.GetValidatedBy(), req.GetNotes())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// stale review list; the mapping no longer exists
			return nil, status.Error(codes.NotFound, "mapping no longer exists")
		}
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("validate mapping failed", "key", key, "error", err)
		return nil, status.Error(codes.Internal, "validate mapping failed")
	}
	return &steelparsepb.ValidateMappingResponse{Mapping: utils.ToPBMapping(pm)}, nil
}

func (s *MappingService) RefreshExistence(ctx context.Context, req *steelparsepb.RefreshExistenceRequest) (*steelparsepb.RefreshExistenceResponse, error) {
	key := strings.TrimSpace(req.GetMappingKey())
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "mapping_key is required")
	}
	exists, err := s.validation.RefreshExistence(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "mapping no longer exists")
		}
		s.logger.Error("refresh existence failed", "key", key, "error", err)
		return nil, status.Error(codes.Internal, "refresh existence failed")
	}
	return &steelparsepb.RefreshExistenceResponse{ItemCodeExists: exists}, nil
}
