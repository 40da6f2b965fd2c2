package validation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/repository"
)

// Service is the human-review workflow: surface unvalidated mappings, apply
// a reviewer's corrections, and flip the mapping's trust state. Concurrent
// validation of the same key is last-writer-wins.
type Service struct {
	mappings repository.MappingRepository
	stock    repository.StockItemRepository
	log      *slog.Logger
}

func NewService(mappings repository.MappingRepository, stock repository.StockItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{mappings: mappings, stock: stock, log: logger}
}

// ListUnvalidated returns mappings awaiting review, newest first.
func (s *Service) ListUnvalidated(ctx context.Context, limit int) ([]*entity.ParsingMapping, error) {
	return s.mappings.ListUnvalidated(ctx, limit)
}

// Validate overlays the reviewer's corrections on the stored mapping (nil
// patch fields leave the stored values alone), stamps the validator, and
// refreshes the external-existence flag against the corrected item code in
// the same transaction. Returns common.ErrNotFound for a stale key.
func (s *Service) Validate(ctx context.Context, key string, patch entity.MappingPatch, validatedBy, notes string) (*entity.ParsingMapping, error) {
	if strings.TrimSpace(validatedBy) == "" {
		return nil, common.NewAppError("VALIDATION_ERROR", "validator identity is required", common.ErrInvalidInput)
	}

	pm, err := s.mappings.Validate(ctx, key, patch, validatedBy, notes, s.stock.ItemCodeExists)
	if err != nil {
		s.log.Error("validation failed", "key", key, "validated_by", validatedBy, "error", err)
		return nil, err
	}
	s.log.Info("mapping validated",
		"key", key,
		"validated_by", validatedBy,
		"item_code_exists", pm.ItemCodeExists,
	)
	return pm, nil
}

// RefreshExistence recomputes a single mapping's external-existence flag
// outside the validation path. Used by the periodic refresh job.
func (s *Service) RefreshExistence(ctx context.Context, key string) (bool, error) {
	return s.mappings.RefreshExternalExistence(ctx, key, s.stock.ItemCodeExists)
}
