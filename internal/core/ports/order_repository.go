package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are read together with their order but written through ItemRepository,
// so a transaction can replace an order's item set independently of its fields.
type OrderRepository interface {
	// Add persists the order row of a new aggregate. Items are not written.
	// Returns errs.ObjectAlreadyExistsError when the identifier is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError when no order has the identifier.
	Get(ctx context.Context, id string) (*order.Order, error)

	// GetAll retrieves every order with its items, ordered by identifier.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Update overwrites the order-level fields set in patch.
	// Returns errs.ObjectNotFoundError when no order has the identifier.
	Update(ctx context.Context, id string, patch order.Patch) error

	// Delete removes the order row. Items go with it through the foreign key cascade.
	// Returns errs.ObjectNotFoundError when no order has the identifier.
	Delete(ctx context.Context, id string) error
}
