package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fabtrack/steelparse/gen/ent"
	"github.com/fabtrack/steelparse/internal/common"
	"github.com/fabtrack/steelparse/internal/export"
	"github.com/fabtrack/steelparse/internal/ingest"
	"github.com/fabtrack/steelparse/internal/llm/openai"
	"github.com/fabtrack/steelparse/internal/parsing"
	"github.com/fabtrack/steelparse/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		file      = flag.String("file", "", "price-list XLSX file to import (required)")
		supplier  = flag.String("supplier", "", "supplier name for the imported rows (required)")
		reviewOut = flag.String("review-out", "", "optional XLSX path for the post-import review queue")
	)
	flag.Parse()

	if *file == "" || *supplier == "" {
		printError("Error: --file and --supplier are required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repository.OpenSQLite(ctx, logger)
	} else {
		entc, pool, err = repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if cfg.LLM.APIKey == "" {
		logger.Error("OPENAI_API_KEY not configured")
		os.Exit(1)
	}
	gateway := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	mappingsRepo := repository.NewMappingRepository(entc, logger)
	productsRepo := repository.NewSupplierProductRepository(entc, logger)
	orch := parsing.NewOrchestrator(mappingsRepo, gateway, logger)
	importer := ingest.NewImporter(productsRepo, orch, cfg.Parsing.BatchSize, cfg.Parsing.BatchesPerSec, logger)

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("failed to open price list", "file", *file, "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("price list close error", "error", cerr)
		}
	}()

	stats, err := importer.ImportPriceList(ctx, f, *supplier)
	if err != nil {
		logger.Error("import failed", "file", *file, "error", err)
		os.Exit(1)
	}

	fmt.Printf("imported %d rows: %d parsed, %d cached, %d failed (%.1fs)\n",
		stats.Rows, stats.Parsed, stats.Cached, stats.Failed, stats.Elapsed.Seconds())

	if *reviewOut != "" {
		exporter := export.NewService(mappingsRepo, logger)
		wb, err := exporter.ExportReviewQueueXLSX(ctx, 0)
		if err != nil {
			logger.Error("review queue export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*reviewOut, wb, 0o644); err != nil {
			logger.Error("failed to write review workbook", "path", *reviewOut, "error", err)
			os.Exit(1)
		}
		fmt.Printf("review queue written to %s\n", *reviewOut)
	}
}
