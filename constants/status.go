package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in DB). Jobs are created externally
// in QUEUED; the processor owns every later transition.
const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed" // terminal
	JobStatusFailed     JobStatus = "failed"    // terminal
)

// IsTerminal reports whether a status is final for a job invocation.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// ItemStatus is the lifecycle status of a credit_item row.
type ItemStatus string

// Items are always created in TO_SEND; downstream dispute tooling owns
// the rest of the item lifecycle.
const (
	ItemStatusToSend ItemStatus = "to_send"
)
