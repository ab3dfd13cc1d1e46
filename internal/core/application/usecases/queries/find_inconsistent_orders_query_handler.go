package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// FindInconsistentOrdersQueryHandler checks every stored order against
// order.CheckConsistency, the same rules writes are held to.
type FindInconsistentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewFindInconsistentOrdersQueryHandler creates the audit handler.
func NewFindInconsistentOrdersQueryHandler(db *gorm.DB) FindInconsistentOrdersQueryHandler {
	return FindInconsistentOrdersQueryHandler{db: db}
}

// Handle returns the offending orders sorted by order number. An empty slice
// means the store is consistent.
func (h FindInconsistentOrdersQueryHandler) Handle(
	ctx context.Context,
	query FindInconsistentOrdersQuery,
) ([]InconsistentOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := readOrders(ctx, h.db, "")
	if err != nil {
		return nil, err
	}

	found := make([]InconsistentOrder, 0)
	for _, o := range orders {
		items := make([]order.Item, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, order.NewItem(item.ProductID, item.Quantity, item.Price))
		}

		if err = order.CheckConsistency(o.Value, items); err != nil {
			found = append(found, InconsistentOrder{OrderID: o.OrderID, Reason: err})
		}
	}

	return found, nil
}
