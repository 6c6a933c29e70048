package ingest

import "time"

// Job statuses. A job is claimed by exactly one worker pass; a crash leaves
// it in StatusProcessing until an operator requeues it.
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusFailed     = "failed"
)

// Job is one uploaded menu PDF waiting for (or finished with) ingestion.
type Job struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ObjectKey  string    `gorm:"not null" json:"object_key"`
	Filename   string    `gorm:"not null" json:"filename"`
	Status     string    `gorm:"not null;default:'uploaded'" json:"status"`
	Error      *string   `json:"error"`
	Accepted   int       `json:"accepted"`
	ReportJSON string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Job model.
func (Job) TableName() string {
	return "ingestion_jobs"
}

// Report is the structured outcome of one ingestion run: what was accepted
// into the menu and what was rejected, with reasons, instead of silently
// dropping lines.
type Report struct {
	Items    []ParsedItem   `json:"items"`
	Rejected []RejectedLine `json:"rejected"`
}

// ParsedItem is one menu line the heuristic accepted.
type ParsedItem struct {
	Name        string `json:"name"`
	PriceSmall  string `json:"price_small"`
	PriceMedium string `json:"price_medium"`
	PriceLarge  string `json:"price_large"`
}

// RejectedLine is one non-blank OCR line the heuristic refused.
type RejectedLine struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}
