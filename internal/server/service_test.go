package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanefields/credit-extractor/constants"
	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/core"
	"github.com/lanefields/credit-extractor/internal/entity"
	"github.com/lanefields/credit-extractor/internal/export"
	"github.com/lanefields/credit-extractor/internal/extract"
	"github.com/lanefields/credit-extractor/internal/llm"
)

type fakeDownloader struct{}

func (fakeDownloader) Download(_ context.Context, _, _ string) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

type fakeExtractor struct{}

func (fakeExtractor) Extract(_ context.Context, _ []byte) (extract.Result, error) {
	return extract.Result{
		Text:   strings.Repeat("TRADELINE DETAIL ROW\n", 40),
		Method: extract.MethodNative,
		Pages:  2,
	}, nil
}

type fakeChunkExtractor struct{}

func (fakeChunkExtractor) ExtractItems(_ context.Context, _ llm.ExtractRequest) ([]llm.ItemFields, []string, error) {
	return []llm.ItemFields{
		{CreditorName: "Midland Credit", ItemType: "collection", IsNegative: true},
		{CreditorName: "Chase Bank", ItemType: "credit_card"},
	}, nil, nil
}

type fakeJobsRepo struct {
	jobs map[uuid.UUID]*entity.Job
}

func newFakeJobsRepo() *fakeJobsRepo {
	return &fakeJobsRepo{jobs: map[uuid.UUID]*entity.Job{}}
}

func (f *fakeJobsRepo) Create(_ context.Context, profileID uuid.UUID, filePath, fileName string) (*entity.Job, error) {
	job := &entity.Job{
		ID:        uuid.New(),
		ProfileID: profileID,
		FilePath:  filePath,
		FileName:  fileName,
		Status:    string(constants.JobStatusQueued),
	}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobsRepo) GetByID(_ context.Context, jobID uuid.UUID) (*entity.Job, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND", "job not found", common.ErrNotFound)
	}
	return job, nil
}

func (f *fakeJobsRepo) MarkProcessing(_ context.Context, jobID uuid.UUID) error {
	f.jobs[jobID].Status = string(constants.JobStatusProcessing)
	return nil
}

func (f *fakeJobsRepo) MarkCompleted(_ context.Context, jobID uuid.UUID, _ entity.JobSummary) error {
	f.jobs[jobID].Status = string(constants.JobStatusCompleted)
	return nil
}

func (f *fakeJobsRepo) MarkFailed(_ context.Context, jobID uuid.UUID, message string) error {
	f.jobs[jobID].Status = string(constants.JobStatusFailed)
	f.jobs[jobID].ErrorMessage = &message
	return nil
}

type fakeProfilesRepo struct{}

func (fakeProfilesRepo) EnsureByID(_ context.Context, profileID uuid.UUID) (uuid.UUID, error) {
	return profileID, nil
}

type fakeItemsRepo struct{}

func (fakeItemsRepo) UpsertFromFields(_ context.Context, profileID, jobID uuid.UUID, fields llm.ItemFields) (*entity.CreditItem, error) {
	return &entity.CreditItem{
		ID:           uuid.New(),
		ProfileID:    profileID,
		JobID:        jobID,
		CreditorName: fields.CreditorName,
		ItemType:     fields.ItemType,
		IsNegative:   fields.IsNegative,
	}, nil
}

func (fakeItemsRepo) ListByProfile(_ context.Context, _ uuid.UUID) ([]*entity.CreditItem, error) {
	return nil, nil
}

func (fakeItemsRepo) ListByJob(_ context.Context, _ uuid.UUID) ([]*entity.CreditItem, error) {
	return nil, nil
}

func newTestService(jobs *fakeJobsRepo) *Service {
	items := fakeItemsRepo{}
	processor := core.NewProcessor(nil, fakeDownloader{}, fakeExtractor{}, fakeChunkExtractor{},
		jobs, items, "credit-reports", common.PipelineConfig{})
	exporter := export.NewService(items, nil)
	return NewService(processor, jobs, fakeProfilesRepo{}, exporter, nil)
}

func TestHandleHealth(t *testing.T) {
	srv := httptest.NewServer(newTestService(newFakeJobsRepo()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHandleProcessWithNewJob(t *testing.T) {
	jobs := newFakeJobsRepo()
	srv := httptest.NewServer(newTestService(jobs).Handler())
	defer srv.Close()

	reqBody := `{"profileId":"` + uuid.NewString() + `","filePath":"profiles/x/report.pdf","fileName":"report.pdf"}`
	resp, err := http.Post(srv.URL+"/process", "application/json", bytes.NewBufferString(reqBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body processResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.JobID)
	assert.Equal(t, 2, body.TotalItems)
	assert.Equal(t, 1, body.NegativeItems)

	jobID, err := uuid.Parse(body.JobID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCompleted), jobs.jobs[jobID].Status)
}

func TestHandleProcessWithExistingJob(t *testing.T) {
	jobs := newFakeJobsRepo()
	job, err := jobs.Create(context.Background(), uuid.New(), "profiles/x/report.pdf", "report.pdf")
	require.NoError(t, err)

	srv := httptest.NewServer(newTestService(jobs).Handler())
	defer srv.Close()

	reqBody := `{"jobId":"` + job.ID.String() + `"}`
	resp, err := http.Post(srv.URL+"/process", "application/json", bytes.NewBufferString(reqBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body processResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, job.ID.String(), body.JobID)
}

func TestHandleProcessInvalidJobID(t *testing.T) {
	srv := httptest.NewServer(newTestService(newFakeJobsRepo()).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/process", "application/json", bytes.NewBufferString(`{"jobId":"not-a-uuid"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body processResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "jobId")
}

func TestHandleProcessMissingFields(t *testing.T) {
	srv := httptest.NewServer(newTestService(newFakeJobsRepo()).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/process", "application/json", bytes.NewBufferString(`{"profileId":"`+uuid.NewString()+`"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExportInvalidProfileID(t *testing.T) {
	srv := httptest.NewServer(newTestService(newFakeJobsRepo()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/export?profileId=nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleExportReturnsWorkbook(t *testing.T) {
	srv := httptest.NewServer(newTestService(newFakeJobsRepo()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/export?profileId=" + uuid.NewString())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}
