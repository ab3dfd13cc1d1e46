package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads all orders.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders\n", len(orders))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for the order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns every order, or an empty slice when there are none.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readOrders(ctx, h.db, "")
}
