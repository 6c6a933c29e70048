package ingest

import "context"

type InMemoryRepository struct {
	jobs   []Job
	nextID uint
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Enqueue(_ context.Context, job *Job) error {
	job.ID = r.nextID
	job.Status = StatusUploaded
	r.nextID++
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *InMemoryRepository) ClaimNext(_ context.Context) (*Job, error) {
	for i := range r.jobs {
		if r.jobs[i].Status == StatusUploaded {
			r.jobs[i].Status = StatusProcessing
			job := r.jobs[i]
			return &job, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) MarkDone(_ context.Context, id uint, accepted int, reportJSON string) error {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Status = StatusDone
			r.jobs[i].Accepted = accepted
			r.jobs[i].ReportJSON = reportJSON
			r.jobs[i].Error = nil
		}
	}
	return nil
}

func (r *InMemoryRepository) MarkFailed(_ context.Context, id uint, reason string) error {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Status = StatusFailed
			r.jobs[i].Error = &reason
		}
	}
	return nil
}

func (r *InMemoryRepository) Latest(_ context.Context) (*Job, error) {
	if len(r.jobs) == 0 {
		return nil, nil
	}
	job := r.jobs[len(r.jobs)-1]
	return &job, nil
}
