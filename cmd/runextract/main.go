package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Ajauregui69/livo-backend/gen/ent"
	"github.com/Ajauregui69/livo-backend/internal/aiextract"
	"github.com/Ajauregui69/livo-backend/internal/common"
	processor "github.com/Ajauregui69/livo-backend/internal/pipeline"
	repo "github.com/Ajauregui69/livo-backend/internal/repository"
	"github.com/Ajauregui69/livo-backend/internal/review"
	"github.com/Ajauregui69/livo-backend/internal/rules"
	"github.com/Ajauregui69/livo-backend/internal/storage"
	"github.com/Ajauregui69/livo-backend/internal/textract"
)

// runextract runs a single document's extraction pass synchronously. Useful
// for debugging rules against a known document without the daemon.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <document-id-uuid>")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	documentRepo := repo.NewDocumentRepository(entc, logger)
	ruleRepo := repo.NewRuleRepository(entc, logger)
	fieldRepo := repo.NewFieldRepository(entc, logger)
	reviewRepo := repo.NewReviewRepository(entc, logger)

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
	reviewService := review.NewService(reviewRepo, documentRepo, fieldRepo, logger)

	var ai *aiextract.Client
	if cfg.AI.APIKey != "" {
		ai = aiextract.NewClient(aiextract.Config{
			APIKey:          cfg.AI.APIKey,
			BaseURL:         cfg.AI.BaseURL,
			Model:           cfg.AI.Model,
			Temperature:     cfg.AI.Temperature,
			Timeout:         cfg.AI.Timeout,
			ReviewThreshold: cfg.Pipeline.AIReviewThreshold,
		}, logger)
	}

	extractStage := processor.NewExtractStage(nil, ruleExtractor, logger)
	if ai != nil {
		extractStage = processor.NewExtractStage(ai, ruleExtractor, logger)
	}
	proc := processor.NewProcessor(
		documentRepo,
		fieldRepo,
		reviewService,
		processor.NewAcquireStage(store, acquirer, logger),
		extractStage,
		logger,
	)

	start := time.Now()
	err = proc.Process(ctx, documentID)
	dur := time.Since(start)
	if err != nil {
		logger.Error("extraction failed", "document_id", documentID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	doc, err := documentRepo.GetByID(ctx, documentID)
	if err != nil {
		logger.Error("reload document", "error", err)
		os.Exit(1)
	}
	logger.Info("extraction finished",
		"document_id", documentID,
		"status", doc.Status,
		"fields", len(doc.ExtractedData),
		"duration_ms", dur.Milliseconds(),
	)
}
