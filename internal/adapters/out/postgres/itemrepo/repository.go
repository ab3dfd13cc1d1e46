package itemrepo

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// AddAll inserts the items of an order in a single batch.
func (r *GormItemRepository) AddAll(ctx context.Context, orderID string, items []order.Item) error {
	if len(items) == 0 {
		return nil
	}

	dtos := FromDomain(orderID, items)
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// DeleteByOrderID removes all items of an order.
func (r *GormItemRepository) DeleteByOrderID(ctx context.Context, orderID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&ItemDTO{})
	return result.RowsAffected, result.Error
}
