package extract

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/ocr"
)

type fakeRecognizer struct {
	result ocr.Result
	err    error
	calls  int
}

func (f *fakeRecognizer) Recognize(_ context.Context, _ []byte) (ocr.Result, error) {
	f.calls++
	return f.result, f.err
}

// minimalPDF builds a one-page PDF with an embedded text layer containing s.
// Offsets in the xref table are recomputed so the pdf reader accepts it.
func minimalPDF(t *testing.T, s string) []byte {
	t.Helper()

	stream := "BT /F1 12 Tf 72 720 Td (" + s + ") Tj ET"
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n",
		"4 0 obj\n<< /Length " + strconv.Itoa(len(stream)) + " >>\nstream\n" + stream + "\nendstream\nendobj\n",
		"5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
	}

	var b strings.Builder
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = b.Len()
		b.WriteString(obj)
	}
	xref := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	b.WriteString("trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n" + strconv.Itoa(xref) + "\n%%EOF\n")
	return []byte(b.String())
}

func TestExtractNativeSufficientSkipsOCR(t *testing.T) {
	content := strings.Repeat("CREDIT REPORT TRADELINE DATA ", 10) // well over 100 chars
	rec := &fakeRecognizer{}
	e := NewExtractor(100, rec, nil)

	res, err := e.Extract(context.Background(), minimalPDF(t, content))
	require.NoError(t, err)
	assert.Equal(t, MethodNative, res.Method)
	assert.Contains(t, res.Text, "CREDIT REPORT TRADELINE DATA")
	assert.Zero(t, rec.calls, "OCR must not run when the text layer suffices")
}

func TestExtractShortNativeFallsBackToOCR(t *testing.T) {
	rec := &fakeRecognizer{result: ocr.Result{Text: "OCR RECOVERED TEXT", Pages: 2}}
	e := NewExtractor(100, rec, nil)

	res, err := e.Extract(context.Background(), minimalPDF(t, "tiny"))
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, res.Method)
	assert.Equal(t, "OCR RECOVERED TEXT", res.Text)
	assert.Equal(t, 1, rec.calls)
	assert.NotEmpty(t, res.Warnings)
}

func TestExtractGarbageBytesFallsBackToOCR(t *testing.T) {
	rec := &fakeRecognizer{result: ocr.Result{Text: "SCANNED PAGE TEXT", Pages: 1}}
	e := NewExtractor(100, rec, nil)

	res, err := e.Extract(context.Background(), []byte("this is not a pdf"))
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, res.Method)
	assert.Equal(t, 1, rec.calls)
}

func TestExtractBothPathsFail(t *testing.T) {
	rec := &fakeRecognizer{err: errors.New("tesseract missing")}
	e := NewExtractor(100, rec, nil)

	_, err := e.Extract(context.Background(), []byte("this is not a pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
}

func TestExtractOCRWarningsSurface(t *testing.T) {
	rec := &fakeRecognizer{result: ocr.Result{Text: "PARTIAL", Pages: 3, Warnings: []string{"page 2: tesseract: boom"}}}
	e := NewExtractor(100, rec, nil)

	res, err := e.Extract(context.Background(), []byte("junk"))
	require.NoError(t, err)
	assert.Contains(t, strings.Join(res.Warnings, "\n"), "page 2")
}
