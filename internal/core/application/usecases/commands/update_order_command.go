package commands

import (
	"errors"
	"slices"
	"strings"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an existing order.
// Only the fields present in the request are changed; an order number in the
// body is ignored because order numbers never change.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	value         *decimal.Decimal
	creationDate  *time.Time
	items         []order.Item
	itemsSupplied bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an update command for the order identified by orderID.
func NewUpdateOrderCommand(orderID string, payload OrderPayload) (UpdateOrderCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("id")
	}

	return UpdateOrderCommand{
		orderID:       orderID,
		value:         payload.Value,
		creationDate:  payload.CreationDate,
		items:         slices.Clone(payload.Items),
		itemsSupplied: payload.ItemsSupplied,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

// Value returns the new total and whether one was supplied.
func (c UpdateOrderCommand) Value() (decimal.Decimal, bool) {
	if c.value == nil {
		return decimal.Zero, false
	}
	return *c.value, true
}

// Items returns the replacement item set and whether one was supplied.
func (c UpdateOrderCommand) Items() ([]order.Item, bool) {
	return slices.Clone(c.items), c.itemsSupplied
}

// Patch returns the order-level fields to overwrite.
func (c UpdateOrderCommand) Patch() order.Patch {
	return order.Patch{
		Value:        c.value,
		CreationDate: c.creationDate,
	}
}
