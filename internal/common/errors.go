package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error taxonomy. The first three are fatal to a job; the chunk and
// item sentinels classify per-unit failures that are recovered locally.
var (
	ErrDownload         = errors.New("storage download failed")
	ErrExtraction       = errors.New("text extraction failed")
	ErrInsufficientText = errors.New("extracted text below minimum length")
	ErrChunkExtraction  = errors.New("chunk extraction failed")
	ErrItemPersistence  = errors.New("item persistence failed")

	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// NewAppError constructs an AppError wrapping cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsFatal reports whether err aborts the remaining pipeline for a job.
// Per-unit failures (one chunk, one page, one item) are not fatal.
func IsFatal(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrChunkExtraction), errors.Is(err, ErrItemPersistence):
		return false
	default:
		return true
	}
}
