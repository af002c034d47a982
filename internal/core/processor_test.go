package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanefields/credit-extractor/constants"
	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/entity"
	"github.com/lanefields/credit-extractor/internal/extract"
	"github.com/lanefields/credit-extractor/internal/llm"
)

type fakeDownloader struct {
	data []byte
	err  error
}

func (f *fakeDownloader) Download(_ context.Context, _, _ string) ([]byte, error) {
	return f.data, f.err
}

type fakeExtractor struct {
	res extract.Result
	err error
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte) (extract.Result, error) {
	return f.res, f.err
}

type fakeChunkExtractor struct {
	mu      sync.Mutex
	byIndex map[int][]llm.ItemFields
	warnIdx map[int][]string
	failIdx map[int]bool
	calls   []int
}

func (f *fakeChunkExtractor) ExtractItems(_ context.Context, req llm.ExtractRequest) ([]llm.ItemFields, []string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req.ChunkIndex)
	f.mu.Unlock()
	if f.failIdx[req.ChunkIndex] {
		return nil, nil, errors.New("model timeout")
	}
	return f.byIndex[req.ChunkIndex], f.warnIdx[req.ChunkIndex], nil
}

type fakeJobsRepo struct {
	job       *entity.Job
	getErr    error
	statuses  []string
	failedMsg string
	summary   entity.JobSummary
}

func (f *fakeJobsRepo) Create(_ context.Context, profileID uuid.UUID, filePath, fileName string) (*entity.Job, error) {
	return &entity.Job{ID: uuid.New(), ProfileID: profileID, FilePath: filePath, FileName: fileName, Status: "queued"}, nil
}

func (f *fakeJobsRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Job, error) {
	return f.job, f.getErr
}

func (f *fakeJobsRepo) MarkProcessing(_ context.Context, _ uuid.UUID) error {
	f.statuses = append(f.statuses, string(constants.JobStatusProcessing))
	return nil
}

func (f *fakeJobsRepo) MarkCompleted(_ context.Context, _ uuid.UUID, summary entity.JobSummary) error {
	f.statuses = append(f.statuses, string(constants.JobStatusCompleted))
	f.summary = summary
	return nil
}

func (f *fakeJobsRepo) MarkFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.statuses = append(f.statuses, string(constants.JobStatusFailed))
	f.failedMsg = message
	return nil
}

type fakeItemsRepo struct {
	failCreditor string
	saved        []llm.ItemFields
}

func (f *fakeItemsRepo) UpsertFromFields(_ context.Context, profileID, jobID uuid.UUID, fields llm.ItemFields) (*entity.CreditItem, error) {
	if f.failCreditor != "" && fields.CreditorName == f.failCreditor {
		return nil, errors.New("unique constraint violated")
	}
	f.saved = append(f.saved, fields)
	_, typeNegative := constants.NegativeItemTypes[constants.ItemType(fields.ItemType)]
	isNegative := fields.IsNegative || typeNegative
	return &entity.CreditItem{
		ID:           uuid.New(),
		ProfileID:    profileID,
		JobID:        jobID,
		CreditorName: fields.CreditorName,
		ItemType:     fields.ItemType,
		AmountCents:  fields.AmountCents,
		Bureaus:      fields.Bureaus,
		IsNegative:   isNegative,
	}, nil
}

func (f *fakeItemsRepo) ListByProfile(_ context.Context, _ uuid.UUID) ([]*entity.CreditItem, error) {
	return nil, nil
}

func (f *fakeItemsRepo) ListByJob(_ context.Context, _ uuid.UUID) ([]*entity.CreditItem, error) {
	return nil, nil
}

func queuedJob() *entity.Job {
	return &entity.Job{
		ID:        uuid.New(),
		ProfileID: uuid.New(),
		FilePath:  "profiles/abc/report.pdf",
		FileName:  "report.pdf",
		Status:    string(constants.JobStatusQueued),
	}
}

func longText(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, "CREDITOR LINE %04d ACCOUNT DETAIL\n", i)
	}
	return b.String()
}

func cents(v int64) *int64 { return &v }

func newTestProcessor(dl *fakeDownloader, ex *fakeExtractor, ce *fakeChunkExtractor, jobs *fakeJobsRepo, items *fakeItemsRepo, chunkSize int) *Processor {
	return NewProcessor(nil, dl, ex, ce, jobs, items, "credit-reports",
		common.PipelineConfig{MaxChunkSize: chunkSize, MinTextLength: 100, ChunkConcurrency: 1})
}

func TestProcessJobHappyPath(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	items := &fakeItemsRepo{}
	ce := &fakeChunkExtractor{byIndex: map[int][]llm.ItemFields{
		0: {
			{CreditorName: "Midland Credit", ItemType: "collection", AmountCents: cents(48500), IsNegative: true, Bureaus: []string{"Experian"}},
			{CreditorName: "Chase Bank", ItemType: "credit_card", AmountCents: cents(120000)},
		},
	}}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: longText(50), Method: extract.MethodNative, Pages: 2}},
		ce, jobs, items, 0)

	res, err := p.ProcessJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"processing", "completed"}, jobs.statuses)
	assert.Equal(t, 2, res.TotalItems)
	assert.Equal(t, 1, res.NegativeItems)
	assert.Equal(t, extract.MethodNative, res.Method)
	assert.Empty(t, res.Warnings)

	require.Len(t, jobs.summary.NegativeList, 1)
	assert.Equal(t, "Midland Credit", jobs.summary.NegativeList[0].Creditor)
	assert.Equal(t, int64(48500), *jobs.summary.NegativeList[0].AmountCents)
}

func TestProcessJobRejectsTerminalJob(t *testing.T) {
	job := queuedJob()
	job.Status = string(constants.JobStatusCompleted)
	jobs := &fakeJobsRepo{job: job}
	p := newTestProcessor(&fakeDownloader{}, &fakeExtractor{}, &fakeChunkExtractor{}, jobs, &fakeItemsRepo{}, 0)

	_, err := p.ProcessJob(context.Background(), job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Empty(t, jobs.statuses, "terminal job must not transition again")
}

func TestProcessJobDownloadFailureMarksFailed(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	p := newTestProcessor(
		&fakeDownloader{err: common.NewAppError("DOWNLOAD_FAILED", "status 404", common.ErrDownload)},
		&fakeExtractor{}, &fakeChunkExtractor{}, jobs, &fakeItemsRepo{}, 0)

	_, err := p.ProcessJob(context.Background(), job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDownload)
	assert.Equal(t, []string{"processing", "failed"}, jobs.statuses)
	assert.Contains(t, jobs.failedMsg, "404")
}

func TestProcessJobInsufficientTextMarksFailed(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: "too short", Method: extract.MethodOCR}},
		&fakeChunkExtractor{}, jobs, &fakeItemsRepo{}, 0)

	_, err := p.ProcessJob(context.Background(), job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInsufficientText)
	assert.Equal(t, []string{"processing", "failed"}, jobs.statuses)
}

func TestProcessJobChunkFailureIsWarningNotFatal(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	items := &fakeItemsRepo{}
	// 3 chunks, middle one fails
	ce := &fakeChunkExtractor{
		byIndex: map[int][]llm.ItemFields{
			0: {{CreditorName: "LVNV Funding", ItemType: "collection", IsNegative: true}},
			2: {{CreditorName: "Wells Fargo", ItemType: "auto_loan"}},
		},
		failIdx: map[int]bool{1: true},
	}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: longText(90), Method: extract.MethodNative}},
		ce, jobs, items, 1200)

	res, err := p.ProcessJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"processing", "completed"}, jobs.statuses)
	assert.Equal(t, 3, res.Chunks)
	assert.Equal(t, 2, res.TotalItems)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "chunk 1")
	assert.Contains(t, res.Warnings[0], "model timeout")
}

func TestProcessJobAllChunksFailedMarksFailed(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	ce := &fakeChunkExtractor{failIdx: map[int]bool{0: true, 1: true, 2: true}}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: longText(90), Method: extract.MethodOCR}},
		ce, jobs, &fakeItemsRepo{}, 1200)

	_, err := p.ProcessJob(context.Background(), job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrChunkExtraction)
	assert.Equal(t, []string{"processing", "failed"}, jobs.statuses)
}

func TestProcessJobItemPersistFailureIsWarningNotFatal(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	items := &fakeItemsRepo{failCreditor: "Portfolio Recovery"}
	ce := &fakeChunkExtractor{byIndex: map[int][]llm.ItemFields{
		0: {
			{CreditorName: "Portfolio Recovery", ItemType: "collection", IsNegative: true},
			{CreditorName: "Discover", ItemType: "credit_card"},
		},
	}}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: longText(50), Method: extract.MethodNative}},
		ce, jobs, items, 0)

	res, err := p.ProcessJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"processing", "completed"}, jobs.statuses)
	assert.Equal(t, 1, res.TotalItems, "failed item excluded from summary")
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "Portfolio Recovery")
	require.Len(t, items.saved, 1)
	assert.Equal(t, "Discover", items.saved[0].CreditorName)
}

func TestProcessJobDedupesAcrossChunks(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	items := &fakeItemsRepo{}
	dup := llm.ItemFields{CreditorName: "Midland Credit", ItemType: "collection", AmountCents: cents(48500), IsNegative: true}
	ce := &fakeChunkExtractor{byIndex: map[int][]llm.ItemFields{
		0: {dup},
		1: {dup, {CreditorName: "Citibank", ItemType: "credit_card"}},
	}}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: longText(60), Method: extract.MethodNative}},
		ce, jobs, items, 1500)

	res, err := p.ProcessJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalItems)
	require.Len(t, items.saved, 2)
	assert.Equal(t, "Midland Credit", items.saved[0].CreditorName)
	assert.Equal(t, "Citibank", items.saved[1].CreditorName)
}

func TestProcessJobSurfacesDroppedRecordWarnings(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	ce := &fakeChunkExtractor{
		byIndex: map[int][]llm.ItemFields{
			0: {{CreditorName: "Capital One", ItemType: "credit_card"}},
		},
		warnIdx: map[int][]string{
			0: {"record 1: record does not match item schema"},
		},
	}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: longText(50), Method: extract.MethodNative}},
		ce, jobs, &fakeItemsRepo{}, 0)

	res, err := p.ProcessJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"processing", "completed"}, jobs.statuses)
	assert.Equal(t, 1, res.TotalItems)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "chunk 0")
	assert.Contains(t, res.Warnings[0], "does not match item schema")
}

func TestProcessJobZeroItemsCompletes(t *testing.T) {
	job := queuedJob()
	jobs := &fakeJobsRepo{job: job}
	ce := &fakeChunkExtractor{byIndex: map[int][]llm.ItemFields{}}
	p := newTestProcessor(
		&fakeDownloader{data: []byte("%PDF-1.4")},
		&fakeExtractor{res: extract.Result{Text: longText(50), Method: extract.MethodNative}},
		ce, jobs, &fakeItemsRepo{}, 0)

	res, err := p.ProcessJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"processing", "completed"}, jobs.statuses)
	assert.Zero(t, res.TotalItems)
	assert.Zero(t, res.NegativeItems)
}
