package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// ItemRepository defines the set-replace primitives for order items.
// Both methods are meant to run inside the caller's unit of work.
type ItemRepository interface {
	// AddAll inserts items for the order in one statement.
	AddAll(ctx context.Context, orderID string, items []order.Item) error

	// DeleteByOrderID removes every item of the order and returns how many were removed.
	DeleteByOrderID(ctx context.Context, orderID string) (int64, error)
}
