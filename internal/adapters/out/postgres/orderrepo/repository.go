package orderrepo

import (
	"context"
	"errors"

	"orders/internal/adapters/out/postgres/itemrepo"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves the order row of a new aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderId", aggregate.ID(), err)
		}
		return err
	}

	return nil
}

// Get retrieves an order and its items by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	items, err := r.itemsByOrder(ctx, []string{dto.OrderID})
	if err != nil {
		return nil, err
	}
	dto.Items = items[dto.OrderID]

	return toDomain(dto)
}

// GetAll retrieves every order with its items.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("order_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.OrderID)
	}

	items, err := r.itemsByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		dto.Items = items[dto.OrderID]
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Update overwrites the order-level fields present in the patch.
func (r *GormOrderRepository) Update(ctx context.Context, id string, patch order.Patch) error {
	updates := map[string]any{}
	if patch.Value != nil {
		updates["value"] = *patch.Value
	}
	if patch.CreationDate != nil {
		updates["creation_date"] = *patch.CreationDate
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("order_id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}

// Delete removes an order row.
func (r *GormOrderRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id)
	}

	return nil
}

// itemsByOrder loads the items of several orders in one round trip.
func (r *GormOrderRepository) itemsByOrder(ctx context.Context, ids []string) (map[string][]itemrepo.ItemDTO, error) {
	grouped := make(map[string][]itemrepo.ItemDTO, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	var items []itemrepo.ItemDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ANY(?)", pq.Array(ids)).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		grouped[item.OrderID] = append(grouped[item.OrderID], item)
	}

	return grouped, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
