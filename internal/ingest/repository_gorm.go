package ingest

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Enqueue(ctx context.Context, job *Job) error {
	job.Status = StatusUploaded
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *GormRepository) ClaimNext(ctx context.Context) (*Job, error) {
	var job Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("status = ?", StatusUploaded).Order("created_at").First(&job).Error
		if err != nil {
			return err
		}
		return tx.Model(&job).Update("status", StatusProcessing).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No pending jobs is NOT an error.
			return nil, nil
		}
		return nil, err
	}

	job.Status = StatusProcessing
	return &job, nil
}

func (r *GormRepository) MarkDone(ctx context.Context, id uint, accepted int, reportJSON string) error {
	return r.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      StatusDone,
		"accepted":    accepted,
		"report_json": reportJSON,
		"error":       nil,
	}).Error
}

func (r *GormRepository) MarkFailed(ctx context.Context, id uint, reason string) error {
	return r.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status": StatusFailed,
		"error":  reason,
	}).Error
}

func (r *GormRepository) Latest(ctx context.Context) (*Job, error) {
	var job Job
	err := r.db.WithContext(ctx).Order("id DESC").First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}
