package commands

import (
	"errors"
	"slices"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create an order together with its items.
//
// Example:
//
//	payload, err := MapOrderPayload(body)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewCreateOrderCommand(payload)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      string
	value        decimal.Decimal
	creationDate time.Time
	items        []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from a mapped payload.
// The order number, total value and creation date are required; item rules are
// left to the consistency check so the first broken rule can be reported.
func NewCreateOrderCommand(payload OrderPayload) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		items: slices.Clone(payload.Items),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(payload.OrderID),
		cmd.setValue(payload.Value),
		cmd.setCreationDate(payload.CreationDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the external order number.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// Value returns the submitted order total.
func (c CreateOrderCommand) Value() decimal.Decimal {
	return c.value
}

// CreationDate returns when the order was placed.
func (c CreateOrderCommand) CreationDate() time.Time {
	return c.creationDate
}

// Items returns a copy of the submitted order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError(FieldOrderNumber)
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setValue(value *decimal.Decimal) error {
	if value == nil {
		return errs.NewValueIsRequiredError(FieldTotalValue)
	}

	c.value = *value
	return nil
}

func (c *CreateOrderCommand) setCreationDate(creationDate *time.Time) error {
	if creationDate == nil {
		return errs.NewValueIsRequiredError(FieldCreationDate)
	}

	c.creationDate = *creationDate
	return nil
}
