package order

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

func (r *GormRepository) Create(ctx context.Context, o *Order) error {
	// gorm creates the order and its association rows in one transaction.
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *GormRepository) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepository) MarkPaid(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ?", id).
		Update("paid", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Already-paid rows still match the WHERE clause, so zero rows
		// means the order does not exist.
		var count int64
		if err := r.db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id uint) error {
	// Explicit two-step delete inside one transaction so the cascade does
	// not depend on foreign-key pragma support of the underlying driver.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("order_id = ?", id).Delete(&Item{}).Error
	})
}
