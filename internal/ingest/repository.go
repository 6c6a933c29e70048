package ingest

import "context"

// Repository defines database operations for ingestion jobs.
type Repository interface {
	// Enqueue a new job in StatusUploaded.
	Enqueue(ctx context.Context, job *Job) error

	// ClaimNext atomically claims the oldest uploaded job and flips it to
	// StatusProcessing. Returns (nil, nil) when no work is pending.
	ClaimNext(ctx context.Context) (*Job, error)

	// MarkDone records the report and accepted count.
	MarkDone(ctx context.Context, id uint, accepted int, reportJSON string) error

	// MarkFailed records the failure reason.
	MarkFailed(ctx context.Context, id uint, reason string) error

	// Latest returns the most recent job, or (nil, nil) when none exists.
	Latest(ctx context.Context) (*Job, error)
}
