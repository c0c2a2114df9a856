package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mealtrace/mealtrace/internal/common"
	"github.com/mealtrace/mealtrace/internal/export"
	"github.com/mealtrace/mealtrace/internal/extract"
	healthscore "github.com/mealtrace/mealtrace/internal/health"
	"github.com/mealtrace/mealtrace/internal/llm"
	"github.com/mealtrace/mealtrace/internal/llm/openai"
	"github.com/mealtrace/mealtrace/internal/mailbox"
	"github.com/mealtrace/mealtrace/internal/nutrition"
	"github.com/mealtrace/mealtrace/internal/pipeline"
	"github.com/mealtrace/mealtrace/internal/report"
	repo "github.com/mealtrace/mealtrace/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		maildir = flag.String("maildir", "", "directory of .eml files to process (required)")
		email   = flag.String("email", "local@mealtrace", "account email the orders belong to")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		fromStr = flag.String("from", "", "from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	if *maildir == "" {
		printError("Error: --maildir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*maildir), "orders.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()

	dbResult, err := common.InitDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	usersRepo := repo.NewUserRepository(entc, logger)
	ordersRepo := repo.NewOrderRepository(entc, logger)
	cacheRepo := repo.NewCalorieCacheRepository(entc, logger)
	reportCacheRepo := repo.NewReportCacheRepository(entc, logger)
	syncLogRepo := repo.NewSyncLogRepository(entc, logger)

	user, err := usersRepo.GetOrCreateByEmail(ctx, *email)
	if err != nil {
		logger.Error("failed to get or create user", "email", *email, "error", err)
		os.Exit(1)
	}
	logger.Info("using account", "id", user.ID, "email", user.Email)

	var completer llm.Completer
	if cfg.LLM.APIKey != "" {
		completer = openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("OpenAI client initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("OpenAI API key not configured, oracle extraction and estimation will be skipped")
	}

	extractor := extract.NewExtractor(completer, logger)

	var sources []nutrition.Source
	if cfg.Nutrition.NinjasAPIKey != "" {
		sources = append(sources, nutrition.NewNinjasSource(cfg.Nutrition.NinjasAPIKey, cfg.Nutrition.NinjasBaseURL, cfg.Nutrition.Timeout, logger))
	}
	if cfg.Nutrition.SearchAPIKey != "" {
		sources = append(sources, nutrition.NewWebSearchSource(cfg.Nutrition.SearchAPIKey, cfg.Nutrition.SearchBaseURL, cfg.Nutrition.Timeout, logger))
	}
	if completer != nil {
		sources = append(sources, nutrition.NewEstimateSource(completer, logger))
	}
	resolver := nutrition.NewResolver(cacheRepo, sources, logger)

	processor := pipeline.NewProcessor(ordersRepo, syncLogRepo, extractor, resolver, cfg.Pipeline.DishConcurrency, logger)

	source := mailbox.NewMaildirSource(*maildir, cfg.Mail.SenderFilter, logger)

	logger.Info("starting mailbox sync", "maildir", *maildir, "user", user.ID)
	stats, err := processor.SyncMailbox(ctx, user.ID, source, cfg.Mail.AfterDate, cfg.Pipeline.Workers)
	if err != nil {
		logger.Error("mailbox sync failed", "error", err)
		os.Exit(1)
	}
	logger.Info("mailbox sync complete",
		"fetched", stats.Fetched,
		"parsed", stats.Parsed,
		"duplicates", stats.Duplicates,
		"excluded", stats.Excluded,
		"not_bills", stats.NotBills,
		"unparseable", stats.Unparseable,
		"failed", stats.Failed)

	var narrator report.Narrator
	if completer != nil {
		narrator = healthscore.NewNarrator(completer, logger)
	}
	reportsService := report.NewService(ordersRepo, usersRepo, reportCacheRepo, narrator, logger)

	healthReport, err := reportsService.GetHealthReport(ctx, user.ID)
	if err != nil {
		logger.Error("failed to compute health report", "error", err)
		os.Exit(1)
	}

	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(ordersRepo, logger)
	xlsxBytes, err := exportService.ExportOrdersXLSX(ctx, user.ID, from, to)
	if err != nil {
		logger.Error("failed to export orders", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Mailbox sync complete!\n")
	fmt.Printf("- Messages fetched: %d\n", stats.Fetched)
	fmt.Printf("- Orders stored: %d\n", stats.Parsed)
	fmt.Printf("- Duplicates: %d\n", stats.Duplicates)
	fmt.Printf("- Skipped (promo/non-bill): %d\n", stats.Excluded+stats.NotBills)
	fmt.Printf("- Unparseable: %d\n", stats.Unparseable)
	fmt.Printf("- Failed: %d\n", stats.Failed)
	fmt.Printf("- Health index: %d\n", healthReport.HealthIndex)
	if healthReport.Narrative != nil {
		fmt.Printf("- Summary: %s\n", healthReport.Narrative.OneLiner)
	}
	fmt.Printf("- Output: %s\n", *out)
}
