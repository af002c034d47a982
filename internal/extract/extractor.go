// Package extract produces raw text from PDF report bytes, preferring the
// embedded text layer and falling back to OCR for scanned documents.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/ocr"
)

// MinTextLength separates "has a real text layer" from "scanned image".
// Native output shorter than this triggers the OCR fallback.
const MinTextLength = 100

const (
	MethodNative = "pdf-text"
	MethodOCR    = "pdf-ocr"
)

// Result is the outcome of text extraction for one document.
type Result struct {
	Text     string
	Method   string
	Pages    int
	Warnings []string
}

// Recognizer is the OCR fallback dependency.
type Recognizer interface {
	Recognize(ctx context.Context, pdfBytes []byte) (ocr.Result, error)
}

type Extractor struct {
	minChars int
	ocr      Recognizer
	logger   *slog.Logger
}

func NewExtractor(minChars int, recognizer Recognizer, logger *slog.Logger) *Extractor {
	if minChars <= 0 {
		minChars = MinTextLength
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{minChars: minChars, ocr: recognizer, logger: logger}
}

// Extract returns the document's text, native layer first. Native failure or
// output under the minimum length invokes OCR and uses its output instead.
// Both paths failing yields a fatal extraction error.
func (e *Extractor) Extract(ctx context.Context, pdfBytes []byte) (Result, error) {
	text, pages, nativeErr := nativeText(pdfBytes)
	if nativeErr == nil && len(text) >= e.minChars {
		e.logger.Debug("extract.native.ok", "pages", pages, "text_bytes", len(text))
		return Result{Text: text, Method: MethodNative, Pages: pages}, nil
	}

	var warns []string
	if nativeErr != nil {
		warns = append(warns, fmt.Sprintf("native extraction: %v", nativeErr))
		e.logger.Warn("extract.native.failed", "error", nativeErr)
	} else {
		warns = append(warns, fmt.Sprintf("native extraction returned %d chars, below threshold %d", len(text), e.minChars))
		e.logger.Info("extract.native.insufficient", "text_bytes", len(text), "threshold", e.minChars)
	}

	ocrRes, ocrErr := e.ocr.Recognize(ctx, pdfBytes)
	warns = append(warns, ocrRes.Warnings...)
	if ocrErr != nil {
		e.logger.Error("extract.ocr.failed", "error", ocrErr)
		return Result{Warnings: warns}, common.NewAppError("EXTRACTION_FAILED",
			fmt.Sprintf("native and ocr extraction both failed: %v", ocrErr), common.ErrExtraction)
	}

	e.logger.Debug("extract.ocr.ok", "pages", ocrRes.Pages, "text_bytes", len(ocrRes.Text))
	return Result{Text: ocrRes.Text, Method: MethodOCR, Pages: ocrRes.Pages, Warnings: warns}, nil
}

// nativeText reads the embedded text layer page by page. The pdf library
// panics on some malformed cross-reference tables, so the whole read is
// wrapped in a recover.
func nativeText(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	total := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			// image-only or damaged page, the OCR path covers it
			continue
		}
		txt = strings.TrimSpace(txt)
		if txt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(txt)
	}
	return b.String(), total, nil
}
