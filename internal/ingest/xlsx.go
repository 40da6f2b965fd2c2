package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fabtrack/steelparse/internal/repository"
)

// header synonyms seen across supplier workbooks
var columnAliases = map[string]string{
	"item":        "item_no",
	"item no":     "item_no",
	"item number": "item_no",
	"code":        "item_no",
	"sku":         "item_no",
	"variant":     "variant_id",
	"variant id":  "variant_id",
	"product":     "product_name",
	"name":        "product_name",
	"product name": "product_name",
	"description": "description",
	"desc":        "description",
	"price":       "price",
	"unit price":  "price",
	"cost":        "price",
	"unit":        "price_unit",
	"uom":         "price_unit",
	"price unit":  "price_unit",
	"per":         "price_unit",
}

// ReadPriceList parses a supplier price-list workbook into create requests,
// one per data row. The first sheet's first row is the header; columns are
// matched by name, not position. Rows with neither description nor product
// name are skipped: they hash to nothing useful.
func ReadPriceList(r io.Reader, supplierName string, logger *slog.Logger) ([]*repository.CreateSupplierProductRequest, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("workbook close error", "error", cerr)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheets[0])
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := columnAliases[name]; ok {
			if _, taken := cols[canonical]; !taken {
				cols[canonical] = i
			}
		}
	}
	if _, ok := cols["description"]; !ok {
		if _, ok := cols["product_name"]; !ok {
			return nil, fmt.Errorf("sheet %q has neither a description nor a product name column", sheets[0])
		}
	}

	var out []*repository.CreateSupplierProductRequest
	var skipped int
	for rowNum, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		desc := cell("description")
		name := cell("product_name")
		if desc == "" && name == "" {
			skipped++
			continue
		}

		req := &repository.CreateSupplierProductRequest{
			SupplierName: supplierName,
			ItemNo:       optCell(cell("item_no")),
			VariantID:    optCell(cell("variant_id")),
			ProductName:  optCell(name),
			Description:  optCell(desc),
			PriceUnit:    optCell(cell("price_unit")),
		}
		if p := cell("price"); p != "" {
			cleaned := strings.ReplaceAll(strings.TrimPrefix(p, "$"), ",", "")
			if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
				req.Price = &v
			} else {
				logger.Warn("unparseable price cell", "row", rowNum+2, "value", p)
			}
		}

		// stash any unrecognized columns for the audit trail
		extras := map[string]string{}
		known := map[int]struct{}{}
		for _, i := range cols {
			known[i] = struct{}{}
		}
		for i, v := range row {
			if _, ok := known[i]; ok {
				continue
			}
			if i < len(rows[0]) && strings.TrimSpace(v) != "" {
				extras[strings.TrimSpace(rows[0][i])] = strings.TrimSpace(v)
			}
		}
		if len(extras) > 0 {
			if b, err := json.Marshal(extras); err == nil {
				req.Specifications = b
			}
		}

		out = append(out, req)
	}

	logger.Info("price list read",
		"supplier", supplierName,
		"sheet", sheets[0],
		"rows", len(out),
		"skipped", skipped,
	)
	return out, nil
}

func optCell(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
