package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// MaxAmount is the largest currency amount the store can hold (numeric(10,2)).
	MaxAmount = decimal.RequireFromString("99999999.99")
)

// Order is the aggregate root for a purchase: an externally supplied identifier,
// the submitted total, the creation date, and its line items.
//
// Order follows these invariants:
//   - The identifier is non-empty and never changes
//   - It has at least one item
//   - Its value, rounded to cents, equals the sum of quantity*price over its items
//   - It can only be created through NewOrder (checked) or RestoreOrder (as stored)
type Order struct {
	// id is the external order number
	id string

	// value is the submitted order total
	value decimal.Decimal

	// creationDate is when the client says the order was placed
	creationDate time.Time

	// items are the order lines, in insertion order
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order after checking the identifier, the creation date and
// the consistency rules. The first consistency rule that fails is returned
// unchanged so callers can report it.
//
// Example:
//
//	items := []order.Item{
//	    order.NewItem(2434, 1, decimal.RequireFromString("1000")),
//	}
//	o, err := order.NewOrder("v10089015vdb-01", decimal.RequireFromString("1000"), time.Now(), items)
//	if err != nil {
//	    // errs.ValueIsRequiredError or one of the consistency errors
//	}
func NewOrder(id string, value decimal.Decimal, creationDate time.Time, items []Item) (*Order, error) {
	o := &Order{
		value:         value,
		items:         slices.Clone(items),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCreationDate(creationDate),
	); err != nil {
		return nil, err
	}

	if err := CheckConsistency(value, items); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. Only the identifier is checked:
// a stored order is returned as it is so that drift can be detected with
// CheckConsistency instead of failing the read.
func RestoreOrder(id string, value decimal.Decimal, creationDate time.Time, items []Item) (*Order, error) {
	o := &Order{
		value:         value,
		creationDate:  creationDate,
		items:         slices.Clone(items),
		isConstructed: true,
	}

	if err := o.setID(id); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// CheckConsistency runs the consistency rules against the order's current state.
func (o *Order) CheckConsistency() error {
	return CheckConsistency(o.value, o.items)
}

// ID returns the order number.
func (o *Order) ID() string {
	return o.id
}

// Value returns the submitted total.
func (o *Order) Value() decimal.Decimal {
	return o.value
}

// CreationDate returns when the order was placed.
func (o *Order) CreationDate() time.Time {
	return o.creationDate
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("orderId")
	}

	o.id = id
	return nil
}

func (o *Order) setCreationDate(creationDate time.Time) error {
	if creationDate.IsZero() {
		return errs.NewValueIsRequiredError("creationDate")
	}

	o.creationDate = creationDate
	return nil
}
