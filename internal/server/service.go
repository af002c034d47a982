// Package server exposes the extraction pipeline over HTTP/JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lanefields/credit-extractor/internal/common"
	"github.com/lanefields/credit-extractor/internal/core"
	"github.com/lanefields/credit-extractor/internal/export"
	"github.com/lanefields/credit-extractor/internal/repository"
)

// Service wires the HTTP handlers to the pipeline.
type Service struct {
	processor    *core.Processor
	jobsRepo     repository.JobRepository
	profilesRepo repository.ProfileRepository
	exporter     *export.Service
	logger       *slog.Logger
}

func NewService(
	processor *core.Processor,
	jobsRepo repository.JobRepository,
	profilesRepo repository.ProfileRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		processor:    processor,
		jobsRepo:     jobsRepo,
		profilesRepo: profilesRepo,
		exporter:     exporter,
		logger:       logger,
	}
}

// Handler returns the route table.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /process", s.handleProcess)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /export", s.handleExport)
	return mux
}

type processRequest struct {
	JobID     string `json:"jobId"`
	ProfileID string `json:"profileId"`
	FilePath  string `json:"filePath"`
	FileName  string `json:"fileName"`
}

type processResponse struct {
	Success       bool     `json:"success"`
	JobID         string   `json:"jobId,omitempty"`
	TotalItems    int      `json:"totalItems"`
	NegativeItems int      `json:"negativeItems"`
	Warnings      []string `json:"warnings,omitempty"`
	Error         string   `json:"error,omitempty"`
}

func (s *Service) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, processResponse{Success: false, Error: "invalid request body"})
		return
	}

	jobID, err := s.resolveJob(r.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, common.ErrInvalidInput) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, processResponse{Success: false, Error: err.Error()})
		return
	}

	res, err := s.processor.ProcessJob(r.Context(), jobID)
	if err != nil {
		s.logger.Error("server.process.failed", "job_id", jobID, "err", err)
		writeJSON(w, http.StatusInternalServerError, processResponse{
			Success: false,
			JobID:   jobID.String(),
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, processResponse{
		Success:       true,
		JobID:         jobID.String(),
		TotalItems:    res.TotalItems,
		NegativeItems: res.NegativeItems,
		Warnings:      res.Warnings,
	})
}

// resolveJob returns the job to process: an existing one when jobId is
// given, otherwise a fresh queued job for the profile and file.
func (s *Service) resolveJob(ctx context.Context, req processRequest) (uuid.UUID, error) {
	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return uuid.Nil, common.NewAppError("INVALID_INPUT", "jobId is not a valid uuid", common.ErrInvalidInput)
		}
		return jobID, nil
	}

	if req.ProfileID == "" || req.FilePath == "" || req.FileName == "" {
		return uuid.Nil, common.NewAppError("INVALID_INPUT",
			"profileId, filePath and fileName are required when jobId is absent", common.ErrInvalidInput)
	}
	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		return uuid.Nil, common.NewAppError("INVALID_INPUT", "profileId is not a valid uuid", common.ErrInvalidInput)
	}
	if _, err := s.profilesRepo.EnsureByID(ctx, profileID); err != nil {
		return uuid.Nil, fmt.Errorf("ensure profile: %w", err)
	}
	job, err := s.jobsRepo.Create(ctx, profileID, req.FilePath, req.FileName)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create job: %w", err)
	}
	return job.ID, nil
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("profileId")
	profileID, err := uuid.Parse(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, processResponse{Success: false, Error: "profileId is not a valid uuid"})
		return
	}
	negativeOnly := r.URL.Query().Get("negativeOnly") == "true"

	data, err := s.exporter.ExportItemsXLSX(r.Context(), profileID, negativeOnly)
	if err != nil {
		s.logger.Error("server.export.failed", "profile_id", profileID, "err", err)
		writeJSON(w, http.StatusInternalServerError, processResponse{Success: false, Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "credit-items-"+profileID.String()+".xlsx"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
