package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fabtrack/steelparse/internal/repository"
)

// Service produces XLSX bytes for offline review of the validation queue.
type Service struct {
	mappings repository.MappingRepository
	logger   *slog.Logger
}

func NewService(mappings repository.MappingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{mappings: mappings, logger: logger}
}

// ExportReviewQueueXLSX returns a workbook of mappings awaiting validation,
// newest first, capped at limit (0 means everything).
func (s *Service) ExportReviewQueueXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	mappings, err := s.mappings.ListUnvalidated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query unvalidated mappings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Review Queue"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Mapping Key",
		"Item Code",
		"Description",
		"Metal Type",
		"Alloy",
		"Dimensions",
		"Unit Cost",
		"Price Unit",
		"Confidence",
		"Parser Version",
		"Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, pm := range mappings {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, pm.Key)
		write(2, strCell(pm.ItemCode))
		write(3, strCell(pm.Description))
		write(4, strCell(pm.MetalType))
		write(5, strCell(pm.Alloy))
		write(6, strCell(pm.Dimensions))
		if pm.UnitCost != nil {
			write(7, fmt.Sprintf("%.2f", *pm.UnitCost))
		}
		write(8, strCell(pm.PriceUnit))
		if pm.Confidence != nil {
			write(9, fmt.Sprintf("%.2f", *pm.Confidence))
		}
		write(10, pm.ParserVersion)
		write(11, pm.CreatedAt.UTC().Format("2006-01-02 15:04"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 20)
	_ = f.SetColWidth(sheet, "C", "C", 48)
	_ = f.SetColWidth(sheet, "D", "F", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("review queue exported",
		"mappings", len(mappings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func strCell(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
