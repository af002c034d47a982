// Package ocr recognizes text from scanned PDFs by rasterizing pages with
// pdftoppm and running tesseract over each page image. It is the fallback
// path for reports with no usable embedded text layer.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Language string // default "eng"
	DPI      int    // rasterization DPI, default 200
	MaxPages int    // page cap, default 10; report content is front-loaded
}

// Result is the outcome of one OCR pass over a document.
type Result struct {
	Text     string
	Pages    int
	Language string
	Duration time.Duration
	Warnings []string
}

type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 200
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 10
	}
	return &Engine{cfg: cfg, runner: newExecRunner(logger), logger: logger}
}

// Recognize runs OCR over pdfBytes and returns the concatenated page text in
// page order, separated by blank lines. Per-page recognition failures are
// collected as warnings and skipped. The rasterization workspace is created
// per call and removed on every exit path.
func (e *Engine) Recognize(ctx context.Context, pdfBytes []byte) (Result, error) {
	start := time.Now()

	tmpDir, err := os.MkdirTemp("", "ce-ocr-*")
	if err != nil {
		return Result{}, fmt.Errorf("create ocr workspace: %w", err)
	}
	defer func(path string) {
		if err := os.RemoveAll(path); err != nil {
			e.logger.Warn("ocr workspace cleanup failed", "path", path, "error", err)
		}
	}(tmpDir)

	src := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(src, pdfBytes, 0o600); err != nil {
		return Result{}, fmt.Errorf("write ocr input: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 200 -l 10 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-r", fmt.Sprintf("%d", e.cfg.DPI),
		"-l", fmt.Sprintf("%d", e.cfg.MaxPages),
		"-png", src, prefix)
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("rasterize pdf: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Result{}, fmt.Errorf("pdftoppm produced no page images")
	}

	var b strings.Builder
	var warns []string
	for i, img := range matches {
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, img, "stdout", "-l", e.cfg.Language)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d: tesseract: %v: %s", i+1, err, truncate(string(errb), 512)))
			continue
		}
		txt := strings.TrimSpace(string(out))
		if txt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(txt)
	}

	res := Result{
		Text:     b.String(),
		Pages:    len(matches),
		Language: e.cfg.Language,
		Duration: time.Since(start),
		Warnings: warns,
	}
	if res.Text == "" {
		return res, fmt.Errorf("ocr recognized no text across %d pages", res.Pages)
	}

	e.logger.Debug("ocr recognize done",
		"pages", res.Pages,
		"text_bytes", len(res.Text),
		"warnings", len(warns),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
