package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lanefields/credit-extractor/constants"
	"github.com/lanefields/credit-extractor/gen/ent"
	"github.com/lanefields/credit-extractor/internal/entity"
)

// JobRepository owns the extract_job status record. Jobs are created
// externally in the queued state; the pipeline only transitions them.
type JobRepository interface {
	Create(ctx context.Context, profileID uuid.UUID, filePath, fileName string) (*entity.Job, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.Job, error)
	MarkProcessing(ctx context.Context, jobID uuid.UUID) error
	MarkCompleted(ctx context.Context, jobID uuid.UUID, summary entity.JobSummary) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, profileID uuid.UUID, filePath, fileName string) (*entity.Job, error) {
	row, err := r.ent.ExtractJob.
		Create().
		SetProfileID(profileID).
		SetFilePath(filePath).
		SetFileName(fileName).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job create failed", "profile_id", profileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job created", "job_id", row.ID, "file_name", fileName)
	return toJob(row), nil
}

func (r *jobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return toJob(row), nil
}

func (r *jobRepo) MarkProcessing(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark processing failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job processing", "job_id", jobID)
	return nil
}

func (r *jobRepo) MarkCompleted(ctx context.Context, jobID uuid.UUID, summary entity.JobSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	_, err = r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusCompleted)).
		SetFinishedAt(time.Now()).
		SetResultSummary(raw).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark completed failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job completed", "job_id", jobID,
		"total_items", summary.TotalItems, "negative_items", summary.NegativeItems)
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetFinishedAt(time.Now()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark failed failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job failed", "job_id", jobID, "error", message)
	return nil
}

func toJob(row *ent.ExtractJob) *entity.Job {
	return &entity.Job{
		ID:            row.ID,
		ProfileID:     row.ProfileID,
		FilePath:      row.FilePath,
		FileName:      row.FileName,
		Status:        row.Status,
		StartedAt:     row.StartedAt,
		FinishedAt:    row.FinishedAt,
		ErrorMessage:  row.ErrorMessage,
		ResultSummary: row.ResultSummary,
	}
}
