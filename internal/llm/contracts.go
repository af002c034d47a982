package llm

import "context"

// ItemFields is the normalized shape we want from the LLM for one tradeline.
type ItemFields struct {
	CreditorName string   `json:"creditor_name"`
	ItemType     string   `json:"item_type"`               // closed enum, see constants.ItemType
	AmountCents  *int64   `json:"amount_cents,omitempty"`  // integer cents
	OpenedDate   string   `json:"opened_date,omitempty"`   // YYYY-MM-DD
	ReportedDate string   `json:"reported_date,omitempty"` // YYYY-MM-DD
	AccountLast4 string   `json:"account_last4,omitempty"` // 4 digits
	Bureaus      []string `json:"bureaus,omitempty"`       // subset of the three bureau names
	IsNegative   bool     `json:"is_negative"`
	Notes        string   `json:"notes,omitempty"`
	Confidence   float32  `json:"confidence,omitempty"` // 0..1
}

// ExtractRequest carries one chunk of report text to the extractor.
type ExtractRequest struct {
	ChunkText  string
	ChunkIndex int
	FileName   string
}

// ChunkExtractor is the interface the pipeline depends on. Implementations
// must not fail the whole job for one chunk: a chunk-level failure is
// returned as an error for the orchestrator to record and skip. Records
// dropped during sanitization or validation come back as warnings next to
// the surviving items.
type ChunkExtractor interface {
	ExtractItems(ctx context.Context, req ExtractRequest) ([]ItemFields, []string /*warnings*/, error)
}
