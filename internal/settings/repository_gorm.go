package settings

import (
	"context"

	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	if err := r.db.WithContext(ctx).Order("id").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormRepository) Save(ctx context.Context, s *Settings) error {
	// Save by primary key so the singleton row is updated, never multiplied.
	return r.db.WithContext(ctx).Save(s).Error
}
