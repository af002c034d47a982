package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Job represents an extraction job for data transfer between layers.
type Job struct {
	ID            uuid.UUID       `json:"id"`
	ProfileID     uuid.UUID       `json:"profile_id"`
	FilePath      string          `json:"file_path"`
	FileName      string          `json:"file_name"`
	Status        string          `json:"status"`
	StartedAt     *time.Time      `json:"started_at,omitempty"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	ResultSummary json.RawMessage `json:"result_summary,omitempty"`
}

// JobSummary is the result projection persisted on a completed job.
type JobSummary struct {
	TotalItems    int               `json:"total_items"`
	NegativeItems int               `json:"negative_items"`
	NegativeList  []NegativeSummary `json:"negative_item_list"`
}

// NegativeSummary is the read-only projection of one negative item.
type NegativeSummary struct {
	Creditor    string   `json:"creditor"`
	ItemType    string   `json:"type"`
	AmountCents *int64   `json:"amount_cents,omitempty"`
	Bureaus     []string `json:"bureaus,omitempty"`
}
