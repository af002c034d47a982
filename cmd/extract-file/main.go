// Command extract-file runs the extraction pipeline against a local PDF
// using an in-memory database, printing the extracted items as JSON and
// optionally writing an XLSX workbook. Useful for trying a report without
// Postgres or object storage.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/core"
	"github.com/lanefields/credit-extractor/internal/export"
	"github.com/lanefields/credit-extractor/internal/extract"
	"github.com/lanefields/credit-extractor/internal/llm/openai"
	"github.com/lanefields/credit-extractor/internal/ocr"
	"github.com/lanefields/credit-extractor/internal/repository"
)

// localFiles serves the downloader role from the local filesystem.
type localFiles struct{}

func (localFiles) Download(_ context.Context, _ string, path string) ([]byte, error) {
	return os.ReadFile(path)
}

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file    = flag.String("file", "", "path to a PDF credit report (required)")
		out     = flag.String("out", "", "output XLSX file path (optional)")
		negOnly = flag.Bool("negative-only", false, "export only negative items")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	entc, err := repository.OpenInMemory(ctx, logger)
	if err != nil {
		logger.Error("in-memory database failed", "error", err)
		os.Exit(1)
	}
	defer entc.Close()

	jobsRepo := repository.NewJobRepository(entc, logger)
	itemsRepo := repository.NewItemRepository(entc, logger)
	profilesRepo := repository.NewProfileRepository(entc, logger)

	profileID, err := profilesRepo.EnsureByID(ctx, uuid.New())
	if err != nil {
		logger.Error("profile create failed", "error", err)
		os.Exit(1)
	}

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

	processor := core.NewProcessor(logger, localFiles{}, extractor, llmClient,
		jobsRepo, itemsRepo, "", cfg.Pipeline)

	job, err := jobsRepo.Create(ctx, profileID, *file, filepath.Base(*file))
	if err != nil {
		logger.Error("job create failed", "error", err)
		os.Exit(1)
	}

	res, err := processor.ProcessJob(ctx, job.ID)
	if err != nil {
		logger.Error("processing failed", "job_id", job.ID, "error", err)
		os.Exit(1)
	}
	for _, warn := range res.Warnings {
		logger.Warn("pipeline warning", "warning", warn)
	}

	items, err := itemsRepo.ListByJob(ctx, job.ID)
	if err != nil {
		logger.Error("listing items failed", "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		logger.Error("encoding items failed", "error", err)
		os.Exit(1)
	}

	if *out != "" {
		exporter := export.NewService(itemsRepo, logger)
		xlsxBytes, err := exporter.ExportItemsXLSX(ctx, profileID, *negOnly)
		if err != nil {
			logger.Error("export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
			logger.Error("writing output file failed", "error", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", *out)
	}

	fmt.Fprintf(os.Stderr, "Extraction complete: %d items, %d negative, method=%s, chunks=%d\n",
		res.TotalItems, res.NegativeItems, res.Method, res.Chunks)
}
