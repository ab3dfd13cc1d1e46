package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrOrderIsInconsistent is the sentinel every consistency rule unwraps to.
var ErrOrderIsInconsistent = errors.New("order is inconsistent")

// EmptyItemsError is returned for an order without items.
type EmptyItemsError struct{}

func (EmptyItemsError) Error() string {
	return "order must contain at least one item"
}

func (EmptyItemsError) Unwrap() error {
	return ErrOrderIsInconsistent
}

// InvalidQuantityError is returned for an item whose quantity is not positive.
type InvalidQuantityError struct {
	ProductID int
	Quantity  int
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("item with product id %d has invalid quantity %d: must be greater than zero",
		e.ProductID, e.Quantity)
}

func (InvalidQuantityError) Unwrap() error {
	return ErrOrderIsInconsistent
}

// NegativePriceError is returned for an item priced below zero.
type NegativePriceError struct {
	ProductID int
	Price     decimal.Decimal
}

func (e NegativePriceError) Error() string {
	return fmt.Sprintf("item with product id %d has negative price %s", e.ProductID, e.Price.StringFixed(2))
}

func (NegativePriceError) Unwrap() error {
	return ErrOrderIsInconsistent
}

// TotalMismatchError is returned when the submitted total differs from the sum of the items.
type TotalMismatchError struct {
	Submitted  decimal.Decimal
	Calculated decimal.Decimal
}

func (e TotalMismatchError) Error() string {
	return fmt.Sprintf("order total %s does not match the sum of its items %s",
		e.Submitted.StringFixed(2), e.Calculated.StringFixed(2))
}

func (TotalMismatchError) Unwrap() error {
	return ErrOrderIsInconsistent
}

// CheckConsistency validates a candidate order state. Rules are evaluated in
// order and the first failure is returned:
//  1. at least one item
//  2. every quantity greater than zero
//  3. no negative price
//  4. value rounded to cents equals the sum of quantity*price rounded to cents
//
// CheckConsistency has no side effects and is safe to call on untrusted input.
//
// Example:
//
//	items := []order.Item{order.NewItem(1, 2, decimal.RequireFromString("10.00"))}
//	err := order.CheckConsistency(decimal.RequireFromString("25.00"), items)
//	// err is TotalMismatchError{Submitted: 25.00, Calculated: 20.00}
func CheckConsistency(value decimal.Decimal, items []Item) error {
	if len(items) == 0 {
		return EmptyItemsError{}
	}

	for _, item := range items {
		if item.Quantity() <= 0 {
			return InvalidQuantityError{ProductID: item.ProductID(), Quantity: item.Quantity()}
		}
	}

	for _, item := range items {
		if item.Price().IsNegative() {
			return NegativePriceError{ProductID: item.ProductID(), Price: item.Price()}
		}
	}

	calculated := Total(items)
	submitted := value.Round(2)
	if !submitted.Equal(calculated) {
		return TotalMismatchError{Submitted: submitted, Calculated: calculated}
	}

	return nil
}

// Total returns the sum of quantity*price over items, rounded to cents.
func Total(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal())
	}
	return sum.Round(2)
}
