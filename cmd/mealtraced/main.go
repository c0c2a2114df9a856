package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/mealtrace/mealtrace/gen/proto/mealtrace/v1"
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
	svc "github.com/mealtrace/mealtrace/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, false, logger)
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
		logger.Warn("OPENAI_API_KEY not configured, oracle extraction and calorie estimation disabled")
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

	queue := pipeline.NewMessageQueue(processor, logger,
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithQueueSize(cfg.Pipeline.QueueSize),
		pipeline.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	var narrator report.Narrator
	if completer != nil {
		narrator = healthscore.NewNarrator(completer, logger)
	}
	reportsService := report.NewService(ordersRepo, usersRepo, reportCacheRepo, narrator, logger)
	exportService := export.NewService(ordersRepo, logger)

	var mailSource mailbox.Source
	if cfg.Mail.MaildirPath != "" {
		mailSource = mailbox.NewMaildirSource(cfg.Mail.MaildirPath, cfg.Mail.SenderFilter, logger)
		logger.Info("maildir source configured", "path", cfg.Mail.MaildirPath, "sender_filter", cfg.Mail.SenderFilter)
	} else {
		logger.Warn("MAILDIR_PATH not configured, SyncMailbox will be unavailable")
	}

	if mailSource != nil && cfg.Mail.PollInterval > 0 && cfg.Mail.AccountEmail != "" {
		go pollMailbox(ctx, cfg, usersRepo, mailSource, queue, logger)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	mealtraceService := svc.NewMealtraceServer(usersRepo, ordersRepo, processor, reportsService, exportService, mailSource, cfg.Pipeline.Workers, logger)
	v1.RegisterMealtraceServiceServer(grpcServer, mealtraceService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("mealtraced listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// pollMailbox periodically fetches the configured mailbox and enqueues every
// message for the owning account. Duplicate message IDs are skipped by the
// processor, so re-enqueueing already stored orders is harmless.
func pollMailbox(
	ctx context.Context,
	cfg *common.Config,
	users repo.UserRepository,
	source mailbox.Source,
	queue *pipeline.MessageQueue,
	logger *slog.Logger,
) {
	user, err := users.GetOrCreateByEmail(ctx, cfg.Mail.AccountEmail)
	if err != nil {
		logger.Error("mailbox poller disabled, account lookup failed", "email", cfg.Mail.AccountEmail, "error", err)
		return
	}

	ticker := time.NewTicker(cfg.Mail.PollInterval)
	defer ticker.Stop()
	logger.Info("mailbox poller started", "interval", cfg.Mail.PollInterval.String(), "email", cfg.Mail.AccountEmail)

	for {
		select {
		case <-ctx.Done():
			logger.Info("mailbox poller stopped")
			return
		case <-ticker.C:
		}

		messages, err := source.Fetch(ctx, cfg.Mail.AfterDate)
		if err != nil {
			logger.Error("mailbox poll failed", "error", err)
			continue
		}
		for _, msg := range messages {
			if err := queue.Enqueue(ctx, pipeline.Job{UserID: user.ID, Message: msg}); err != nil {
				logger.Error("failed to enqueue message", "message_id", msg.ID, "error", err)
			}
		}
	}
}
