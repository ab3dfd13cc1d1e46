package order

import "github.com/shopspring/decimal"

// Item is a line of an order: a product, how many units, and the unit price.
// Item does not police its own bounds; CheckConsistency does that for the
// whole order so that the first offending line can be reported.
type Item struct {
	productID int
	quantity  int
	price     decimal.Decimal
}

// NewItem builds an order line.
func NewItem(productID, quantity int, price decimal.Decimal) Item {
	return Item{
		productID: productID,
		quantity:  quantity,
		price:     price,
	}
}

// ProductID returns the product identifier.
func (i Item) ProductID() int {
	return i.productID
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns quantity*price without rounding.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
