package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	documentsv1 "github.com/Ajauregui69/livo-backend/gen/proto/documents/v1"
	reviewsv1 "github.com/Ajauregui69/livo-backend/gen/proto/reviews/v1"
	scoresv1 "github.com/Ajauregui69/livo-backend/gen/proto/scores/v1"
	"github.com/Ajauregui69/livo-backend/internal/aiextract"
	"github.com/Ajauregui69/livo-backend/internal/async"
	"github.com/Ajauregui69/livo-backend/internal/common"
	"github.com/Ajauregui69/livo-backend/internal/export"
	processor "github.com/Ajauregui69/livo-backend/internal/pipeline"
	repo "github.com/Ajauregui69/livo-backend/internal/repository"
	"github.com/Ajauregui69/livo-backend/internal/review"
	"github.com/Ajauregui69/livo-backend/internal/rules"
	"github.com/Ajauregui69/livo-backend/internal/scoring"
	svc "github.com/Ajauregui69/livo-backend/internal/server"
	"github.com/Ajauregui69/livo-backend/internal/storage"
	"github.com/Ajauregui69/livo-backend/internal/textract"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
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

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	documentRepo := repo.NewDocumentRepository(entc, logger)
	ruleRepo := repo.NewRuleRepository(entc, logger)
	fieldRepo := repo.NewFieldRepository(entc, logger)
	reviewRepo := repo.NewReviewRepository(entc, logger)
	scoreRepo := repo.NewScoreRepository(entc, logger)

	store := storage.NewLocalStore(cfg.Storage.BaseDir, logger)

	acquirer := textract.NewAcquirer(textract.Config{
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Tesseract:        cfg.OCR.Tesseract,
		Language:         cfg.OCR.Language,
		DPI:              cfg.OCR.DPI,
		MaxPages:         cfg.OCR.MaxPages,
		TessdataDir:      cfg.OCR.TessdataDir,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, logger)

	ruleEngine := rules.NewEngine(ruleRepo, logger, rules.WithReviewThreshold(cfg.Pipeline.RuleReviewThreshold))
	ruleExtractor := rules.NewExtractor(ruleRepo, ruleEngine)

	aiClient := aiextract.NewClient(aiextract.Config{
		APIKey:          cfg.AI.APIKey,
		BaseURL:         cfg.AI.BaseURL,
		Model:           cfg.AI.Model,
		Temperature:     cfg.AI.Temperature,
		Timeout:         cfg.AI.Timeout,
		ReviewThreshold: cfg.Pipeline.AIReviewThreshold,
	}, logger)

	reviewService := review.NewService(reviewRepo, documentRepo, fieldRepo, logger)
	scoreService := scoring.NewService(documentRepo, fieldRepo, scoreRepo, cfg.Scoring.FreshnessWindow, logger)

	acquireStage := processor.NewAcquireStage(store, acquirer, logger)
	extractStage := processor.NewExtractStage(nil, ruleExtractor, logger)
	if aiClient.Available() {
		logger.Info("AI extraction enabled", "model", cfg.AI.Model)
		extractStage = processor.NewExtractStage(aiClient, ruleExtractor, logger)
	}
	proc := processor.NewProcessor(documentRepo, fieldRepo, reviewService, acquireStage, extractStage, logger)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	exporter := export.NewService(documentRepo, fieldRepo, scoreService, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDUnaryInterceptor(logger)))

	documentService := svc.NewDocumentService(documentRepo, fieldRepo, store, queue, exporter, logger)
	documentsv1.RegisterDocumentsServiceServer(grpcServer, documentService)
	reviewAPI := svc.NewReviewService(reviewService, logger)
	reviewsv1.RegisterReviewsServiceServer(grpcServer, reviewAPI)
	scoreAPI := svc.NewScoreService(scoreService, logger)
	scoresv1.RegisterScoresServiceServer(grpcServer, scoreAPI)

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	logger.Info("livod listening", "addr", addr)
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
