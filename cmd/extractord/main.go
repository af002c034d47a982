package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/core"
	"github.com/lanefields/credit-extractor/internal/export"
	"github.com/lanefields/credit-extractor/internal/extract"
	"github.com/lanefields/credit-extractor/internal/llm/openai"
	"github.com/lanefields/credit-extractor/internal/ocr"
	"github.com/lanefields/credit-extractor/internal/repository"
	"github.com/lanefields/credit-extractor/internal/server"
	"github.com/lanefields/credit-extractor/internal/storage"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health ok")

	jobsRepo := repository.NewJobRepository(entc, logger)
	itemsRepo := repository.NewItemRepository(entc, logger)
	profilesRepo := repository.NewProfileRepository(entc, logger)

	downloader := storage.NewClient(storage.Config{
		BaseURL: cfg.Storage.BaseURL,
		APIKey:  cfg.Storage.APIKey,
		Timeout: cfg.Storage.Timeout,
	}, logger)

	recognizer := ocr.NewEngine(ocr.Config{
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}, logger)
	extractor := extract.NewExtractor(cfg.Pipeline.MinTextLength, recognizer, logger)

	llmClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	logger.Info("llm client initialized", "model", cfg.LLM.Model)

	processor := core.NewProcessor(logger, downloader, extractor, llmClient,
		jobsRepo, itemsRepo, cfg.Storage.Bucket, cfg.Pipeline)
	exporter := export.NewService(itemsRepo, logger)
	svc := server.NewService(processor, jobsRepo, profilesRepo, exporter, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
