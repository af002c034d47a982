// Package core coordinates the extraction pipeline for one job:
// download, text extraction, chunking, per-chunk LLM extraction,
// dedup, item persistence, and the job status transitions.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lanefields/credit-extractor/constants"
	"github.com/lanefields/credit-extractor/internal/chunk"
	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/dedupe"
	"github.com/lanefields/credit-extractor/internal/entity"
	"github.com/lanefields/credit-extractor/internal/extract"
	"github.com/lanefields/credit-extractor/internal/llm"
	"github.com/lanefields/credit-extractor/internal/repository"
	"github.com/lanefields/credit-extractor/internal/storage"
)

// TextExtractor produces the document text, native layer or OCR.
type TextExtractor interface {
	Extract(ctx context.Context, pdfBytes []byte) (extract.Result, error)
}

// ProcessResult reports the outcome of one processed job.
type ProcessResult struct {
	JobID         uuid.UUID
	TotalItems    int
	NegativeItems int
	Method        string
	Chunks        int
	Warnings      []string
}

// Processor runs the whole pipeline for one extract_job.
type Processor struct {
	logger      *slog.Logger
	downloader  storage.Downloader
	extractor   TextExtractor
	chunks      llm.ChunkExtractor
	jobsRepo    repository.JobRepository
	itemsRepo   repository.ItemRepository
	bucket      string
	chunkSize   int
	minText     int
	concurrency int
}

func NewProcessor(
	logger *slog.Logger,
	downloader storage.Downloader,
	extractor TextExtractor,
	chunks llm.ChunkExtractor,
	jobsRepo repository.JobRepository,
	itemsRepo repository.ItemRepository,
	bucket string,
	cfg common.PipelineConfig,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxChunkSize <= 0 {
		cfg.MaxChunkSize = chunk.DefaultMaxChunkSize
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = extract.MinTextLength
	}
	if cfg.ChunkConcurrency <= 0 {
		cfg.ChunkConcurrency = 1
	}
	return &Processor{
		logger:      logger,
		downloader:  downloader,
		extractor:   extractor,
		chunks:      chunks,
		jobsRepo:    jobsRepo,
		itemsRepo:   itemsRepo,
		bucket:      bucket,
		chunkSize:   cfg.MaxChunkSize,
		minText:     cfg.MinTextLength,
		concurrency: cfg.ChunkConcurrency,
	}
}

// ProcessJob drives a queued job to a terminal state. A returned error
// means the job was marked failed; the job never ends in both states.
func (p *Processor) ProcessJob(ctx context.Context, jobID uuid.UUID) (ProcessResult, error) {
	result := ProcessResult{JobID: jobID}

	job, err := p.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return result, fmt.Errorf("load job: %w", err)
	}
	if constants.JobStatus(job.Status).IsTerminal() {
		return result, common.NewAppError("INVALID_INPUT",
			fmt.Sprintf("job %s already %s", jobID, job.Status), common.ErrInvalidInput)
	}

	if err := p.jobsRepo.MarkProcessing(ctx, jobID); err != nil {
		return result, fmt.Errorf("mark processing: %w", err)
	}
	p.logger.Info("pipeline.start", "job_id", jobID, "file_name", job.FileName)

	// 1) download
	pdfBytes, err := p.downloader.Download(ctx, p.bucket, job.FilePath)
	if err != nil {
		return result, p.fail(ctx, jobID, fmt.Errorf("download report: %w", err))
	}

	// 2) text extraction, OCR fallback included
	extRes, err := p.extractor.Extract(ctx, pdfBytes)
	result.Warnings = append(result.Warnings, extRes.Warnings...)
	if err != nil {
		return result, p.fail(ctx, jobID, fmt.Errorf("extract text: %w", err))
	}
	result.Method = extRes.Method
	if len(extRes.Text) < p.minText {
		return result, p.fail(ctx, jobID, common.NewAppError("INSUFFICIENT_TEXT",
			fmt.Sprintf("extracted %d chars, minimum is %d", len(extRes.Text), p.minText),
			common.ErrInsufficientText))
	}

	// 3) chunk + per-chunk LLM extraction
	parts := chunk.Split(extRes.Text, p.chunkSize)
	result.Chunks = len(parts)
	candidates, chunkWarns, failedChunks := p.extractChunks(ctx, job.FileName, parts)
	result.Warnings = append(result.Warnings, chunkWarns...)
	if failedChunks == len(parts) {
		// every chunk failed, nothing was extracted
		return result, p.fail(ctx, jobID, common.NewAppError("CHUNK_EXTRACTION_FAILED",
			fmt.Sprintf("all %d chunks failed", len(parts)), common.ErrChunkExtraction))
	}

	// 4) dedup, then persist item by item
	items := dedupe.Items(candidates)
	var persisted []*entity.CreditItem
	for _, fields := range items {
		row, err := p.itemsRepo.UpsertFromFields(ctx, job.ProfileID, jobID, fields)
		if err != nil {
			msg := fmt.Sprintf("persist item %q/%s: %v", fields.CreditorName, fields.ItemType, err)
			result.Warnings = append(result.Warnings, msg)
			p.logger.Warn("pipeline.item.persist_failed",
				"job_id", jobID, "creditor", fields.CreditorName, "err", err)
			continue
		}
		persisted = append(persisted, row)
	}

	// 5) terminal transition
	summary := buildSummary(persisted)
	if err := p.jobsRepo.MarkCompleted(ctx, jobID, summary); err != nil {
		return result, fmt.Errorf("mark completed: %w", err)
	}
	result.TotalItems = summary.TotalItems
	result.NegativeItems = summary.NegativeItems

	p.logger.Info("pipeline.done",
		"job_id", jobID,
		"method", result.Method,
		"chunks", result.Chunks,
		"candidates", len(candidates),
		"deduped", len(items),
		"persisted", len(persisted),
		"negative", summary.NegativeItems,
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// fail records the terminal failed state and passes the cause through.
func (p *Processor) fail(ctx context.Context, jobID uuid.UUID, cause error) error {
	if err := p.jobsRepo.MarkFailed(ctx, jobID, cause.Error()); err != nil {
		p.logger.Error("pipeline.mark_failed.error", "job_id", jobID, "err", err)
	}
	p.logger.Error("pipeline.failed", "job_id", jobID, "err", cause)
	return cause
}

// extractChunks runs the LLM over every chunk, at most concurrency at a
// time. Chunk failures become warnings, never job failures, and the
// candidate order follows chunk order regardless of completion order.
// Record-level warnings from a successful chunk are carried through so
// dropped records end up on the job.
func (p *Processor) extractChunks(ctx context.Context, fileName string, parts []string) ([]llm.ItemFields, []string, int) {
	type chunkOut struct {
		index    int
		items    []llm.ItemFields
		recWarns []string
		errMsg   string
	}

	outs := make([]chunkOut, len(parts))
	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup
	for i, part := range parts {
		wg.Add(1)
		go func(idx int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			items, recWarns, err := p.chunks.ExtractItems(ctx, llm.ExtractRequest{
				ChunkText:  text,
				ChunkIndex: idx,
				FileName:   fileName,
			})
			if err != nil {
				outs[idx] = chunkOut{index: idx, errMsg: fmt.Sprintf("chunk %d: %v", idx, err)}
				return
			}
			outs[idx] = chunkOut{index: idx, items: items, recWarns: recWarns}
		}(i, part)
	}
	wg.Wait()

	var candidates []llm.ItemFields
	var warnings []string
	failed := 0
	for _, out := range outs {
		if out.errMsg != "" {
			failed++
			warnings = append(warnings, out.errMsg)
			p.logger.Warn("pipeline.chunk.failed", "chunk", out.index, "err", out.errMsg)
			continue
		}
		for _, w := range out.recWarns {
			warnings = append(warnings, fmt.Sprintf("chunk %d: %s", out.index, w))
		}
		candidates = append(candidates, out.items...)
	}
	return candidates, warnings, failed
}

// buildSummary projects the persisted items into the job result summary.
func buildSummary(items []*entity.CreditItem) entity.JobSummary {
	summary := entity.JobSummary{TotalItems: len(items)}
	for _, item := range items {
		if !item.IsNegative {
			continue
		}
		summary.NegativeItems++
		summary.NegativeList = append(summary.NegativeList, entity.NegativeSummary{
			Creditor:    item.CreditorName,
			ItemType:    item.ItemType,
			AmountCents: item.AmountCents,
			Bureaus:     item.Bureaus,
		})
	}
	return summary
}
