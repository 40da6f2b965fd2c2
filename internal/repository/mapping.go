package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/fabtrack/steelparse/gen/ent"
	"github.com/fabtrack/steelparse/gen/ent/parsingmapping"
	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/entity"
	"github.com/fabtrack/steelparse/internal/llm"
	"github.com/fabtrack/steelparse/internal/utils"
)

// ExistsFunc answers whether an item code exists in the authoritative
// inventory. Injected so the mapping store stays ignorant of stock storage.
type ExistsFunc func(ctx context.Context, itemCode string) (bool, error)

// CreateMappingRequest wraps parameters for persisting a fresh parse result.
type CreateMappingRequest struct {
	Key            string
	InputSnapshot  json.RawMessage
	Fields         llm.ItemFields
	ParserVersion  string
	RawModelOutput string
}

// MappingRepository is the durable memoization store, keyed by the content
// hash of the input description. Exactly one row per key; the parsing path
// only ever creates, validation and the existence refresh only ever update.
type MappingRepository interface {
	// Get returns the mapping for key, or common.ErrNotFound.
	Get(ctx context.Context, key string) (*entity.ParsingMapping, error)
	// Create persists a new mapping. Returns common.ErrDuplicateKey when the
	// key already exists; callers must re-read instead of retrying the insert.
	Create(ctx context.Context, req *CreateMappingRequest) (*entity.ParsingMapping, error)
	// ListUnvalidated returns mappings awaiting review, newest first.
	ListUnvalidated(ctx context.Context, limit int) ([]*entity.ParsingMapping, error)
	// Validate overlays the patch, marks the mapping validated, and refreshes
	// the external-existence flag in the same transaction. Returns
	// common.ErrNotFound when the key is absent.
	Validate(ctx context.Context, key string, patch entity.MappingPatch, validatedBy, notes string, exists ExistsFunc) (*entity.ParsingMapping, error)
	// RefreshExternalExistence recomputes and persists the existence flag.
	RefreshExternalExistence(ctx context.Context, key string, exists ExistsFunc) (bool, error)
}

type mappingRepository struct {
	ent *ent.Client
	log *slog.Logger
}

func NewMappingRepository(entc *ent.Client, logger *slog.Logger) MappingRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &mappingRepository{ent: entc, log: logger}
}

func (r *mappingRepository) Get(ctx context.Context, key string) (*entity.ParsingMapping, error) {
	pm, err := r.ent.ParsingMapping.Query().
		Where(parsingmapping.MappingKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("mapping get failed", "key", key, "error", err)
		return nil, err
	}
	return utils.ToMapping(pm), nil
}

func (r *mappingRepository) Create(ctx context.Context, req *CreateMappingRequest) (*entity.ParsingMapping, error) {
	f := req.Fields
	builder := r.ent.ParsingMapping.Create().
		SetMappingKey(req.Key).
		SetInputSnapshot(req.InputSnapshot).
		SetParserVersion(req.ParserVersion).
		SetRawModelOutput(req.RawModelOutput).
		SetNillableItemCode(optStr(f.ItemCode)).
		SetNillableDescription(optStr(f.Description)).
		SetNillableMetalType(optStr(f.MetalType)).
		SetNillableAlloy(optStr(f.Alloy)).
		SetNillableSpecifics(optStr(f.Specifics)).
		SetNillableDimensions(optStr(f.Dimensions)).
		SetNillableUnitCost(optDec(f.UnitCost)).
		SetNillablePriceUnit(optStr(f.PriceUnit))
	if f.Confidence > 0 {
		builder = builder.SetConfidence(f.Confidence)
	}

	pm, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// a concurrent writer won the race on this key
			r.log.Info("mapping create lost race", "key", req.Key)
			return nil, fmt.Errorf("mapping %s: %w", req.Key, common.ErrDuplicateKey)
		}
		r.log.Error("mapping create failed", "key", req.Key, "error", err)
		return nil, err
	}
	r.log.Info("mapping created",
		"key", req.Key,
		"parser_version", req.ParserVersion,
		"item_code", f.ItemCode,
		"metal_type", f.MetalType,
	)
	return utils.ToMapping(pm), nil
}

func (r *mappingRepository) ListUnvalidated(ctx context.Context, limit int) ([]*entity.ParsingMapping, error) {
	q := r.ent.ParsingMapping.Query().
		Where(parsingmapping.Validated(false)).
		Order(ent.Desc(parsingmapping.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	pms, err := q.All(ctx)
	if err != nil {
		r.log.Error("list unvalidated failed", "error", err)
		return nil, err
	}
	out := make([]*entity.ParsingMapping, len(pms))
	for i, pm := range pms {
		out[i] = utils.ToMapping(pm)
	}
	return out, nil
}

func (r *mappingRepository) Validate(ctx context.Context, key string, patch entity.MappingPatch, validatedBy, notes string, exists ExistsFunc) (*entity.ParsingMapping, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	rollback := func(cause error) error {
		if rerr := tx.Rollback(); rerr != nil {
			r.log.Error("validate rollback failed", "key", key, "error", rerr)
		}
		return cause
	}

	pm, err := tx.ParsingMapping.Query().
		Where(parsingmapping.MappingKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(common.ErrNotFound)
		}
		return nil, rollback(err)
	}

	upd := pm.Update().
		SetValidated(true).
		SetValidatedBy(validatedBy).
		SetValidatedAt(time.Now())
	if notes != "" {
		upd = upd.SetValidationNotes(notes)
	}
	if patch.ItemCode != nil {
		upd = upd.SetItemCode(*patch.ItemCode)
	}
	if patch.Description != nil {
		upd = upd.SetDescription(*patch.Description)
	}
	if patch.MetalType != nil {
		upd = upd.SetMetalType(*patch.MetalType)
	}
	if patch.Alloy != nil {
		upd = upd.SetAlloy(*patch.Alloy)
	}
	if patch.Specifics != nil {
		upd = upd.SetSpecifics(*patch.Specifics)
	}
	if patch.Dimensions != nil {
		upd = upd.SetDimensions(*patch.Dimensions)
	}
	if patch.UnitCost != nil {
		upd = upd.SetUnitCost(*patch.UnitCost)
	}
	if patch.PriceUnit != nil {
		upd = upd.SetPriceUnit(*patch.PriceUnit)
	}

	saved, err := upd.Save(ctx)
	if err != nil {
		return nil, rollback(err)
	}

	// existence refresh is part of the validation transaction: both land
	// or neither does
	flagUpd := saved.Update()
	if exists != nil && saved.ItemCode != nil && *saved.ItemCode != "" {
		found, err := exists(ctx, *saved.ItemCode)
		if err != nil {
			return nil, rollback(fmt.Errorf("existence check: %w", err))
		}
		flagUpd = flagUpd.SetItemCodeExists(found)
	} else {
		flagUpd = flagUpd.ClearItemCodeExists()
	}
	saved, err = flagUpd.Save(ctx)
	if err != nil {
		return nil, rollback(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("mapping validated", "key", key, "validated_by", validatedBy)
	return utils.ToMapping(saved), nil
}

func (r *mappingRepository) RefreshExternalExistence(ctx context.Context, key string, exists ExistsFunc) (bool, error) {
	pm, err := r.ent.ParsingMapping.Query().
		Where(parsingmapping.MappingKey(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, common.ErrNotFound
		}
		return false, err
	}

	found := false
	if exists != nil && pm.ItemCode != nil && *pm.ItemCode != "" {
		found, err = exists(ctx, *pm.ItemCode)
		if err != nil {
			return false, fmt.Errorf("existence check: %w", err)
		}
	}
	if _, err := pm.Update().SetItemCodeExists(found).Save(ctx); err != nil {
		r.log.Error("existence refresh save failed", "key", key, "error", err)
		return false, err
	}
	return found, nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optDec(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
