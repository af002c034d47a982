package entity

import (
	"time"

	"github.com/google/uuid"
)

// CreditItem represents one extracted tradeline for data transfer between layers.
type CreditItem struct {
	ID           uuid.UUID  `json:"id"`
	ProfileID    uuid.UUID  `json:"profile_id"`
	JobID        uuid.UUID  `json:"job_id"`
	CreditorName string     `json:"creditor_name"`
	ItemType     string     `json:"item_type"`
	AmountCents  *int64     `json:"amount_cents,omitempty"`
	OpenedDate   *time.Time `json:"opened_date,omitempty"`
	ReportedDate *time.Time `json:"reported_date,omitempty"`
	AccountLast4 *string    `json:"account_last4,omitempty"`
	Bureaus      []string   `json:"bureaus,omitempty"`
	IsNegative   bool       `json:"is_negative"`
	Notes        *string    `json:"notes,omitempty"`
	Confidence   float32    `json:"confidence"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
