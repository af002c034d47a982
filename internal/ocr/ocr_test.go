package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner simulates pdftoppm and tesseract. For pdftoppm it creates the
// requested page images; for tesseract it returns canned text per page.
type fakeRunner struct {
	pages     int
	pageText  map[int]string
	pageErr   map[int]error
	rasterErr error

	calls []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	switch name {
	case "pdftoppm":
		if f.rasterErr != nil {
			return nil, []byte("raster boom"), f.rasterErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= f.pages; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		img := args[0]
		for i := 1; i <= f.pages; i++ {
			if strings.HasSuffix(img, fmt.Sprintf("-%d.png", i)) {
				if err := f.pageErr[i]; err != nil {
					return nil, []byte("ocr boom"), err
				}
				return []byte(f.pageText[i]), nil, nil
			}
		}
		return nil, nil, fmt.Errorf("unexpected image %s", img)
	default:
		return nil, nil, fmt.Errorf("unexpected command %s", name)
	}
}

func newTestEngine(r Runner) *Engine {
	e := NewEngine(Config{}, nil)
	e.runner = r
	return e
}

func TestRecognizeConcatenatesPagesInOrder(t *testing.T) {
	e := newTestEngine(&fakeRunner{
		pages:    3,
		pageText: map[int]string{1: "PAGE ONE", 2: "PAGE TWO", 3: "PAGE THREE"},
	})

	res, err := e.Recognize(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "PAGE ONE\n\nPAGE TWO\n\nPAGE THREE", res.Text)
	assert.Equal(t, 3, res.Pages)
	assert.Empty(t, res.Warnings)
}

func TestRecognizeSkipsFailedPages(t *testing.T) {
	e := newTestEngine(&fakeRunner{
		pages:    3,
		pageText: map[int]string{1: "FIRST", 3: "THIRD"},
		pageErr:  map[int]error{2: fmt.Errorf("exit status 1")},
	})

	res, err := e.Recognize(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "FIRST\n\nTHIRD", res.Text)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "page 2")
}

func TestRecognizeRasterizeFailure(t *testing.T) {
	e := newTestEngine(&fakeRunner{rasterErr: fmt.Errorf("exit status 1")})

	_, err := e.Recognize(context.Background(), []byte("%PDF-1.4"))
	assert.Error(t, err)
}

func TestRecognizeAllPagesFail(t *testing.T) {
	e := newTestEngine(&fakeRunner{
		pages:   2,
		pageErr: map[int]error{1: fmt.Errorf("boom"), 2: fmt.Errorf("boom")},
	})

	_, err := e.Recognize(context.Background(), []byte("%PDF-1.4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}

func TestRecognizeDefaultsAndPageCap(t *testing.T) {
	e := NewEngine(Config{}, nil)
	assert.Equal(t, 200, e.cfg.DPI)
	assert.Equal(t, 10, e.cfg.MaxPages)
	assert.Equal(t, "eng", e.cfg.Language)
	assert.Equal(t, "pdftoppm", e.cfg.Pdftoppm)
	assert.Equal(t, "tesseract", e.cfg.Tesseract)
}

func TestNewEngineInjectsLoggerIntoRunner(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	e := NewEngine(Config{}, logger)

	r, ok := e.runner.(execRunner)
	require.True(t, ok)
	assert.Same(t, logger, r.log)
}

func TestExecRunnerLogsFailureThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := newExecRunner(logger)

	_, _, err := r.Run(context.Background(), "credit-extractor-no-such-binary")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "ocr.exec.failed")
	assert.Contains(t, buf.String(), "credit-extractor-no-such-binary")
}

func TestTruncateCapsLongStderr(t *testing.T) {
	long := strings.Repeat("e", 10<<10)
	got := truncate(long, 8<<10)
	assert.Len(t, got, (8<<10)+len("...(truncated)"))
	assert.True(t, strings.HasSuffix(got, "...(truncated)"))
	assert.Equal(t, "short", truncate("short", 8<<10))
}
