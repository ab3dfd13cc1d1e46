// Package order provides the Order aggregate, its line items, and the
// consistency rules that every persisted order satisfies.
//
// The package includes:
//   - Order: the aggregate root (identifier, total value, creation date, items)
//   - Item: an order line (product, quantity, unit price)
//   - Patch: the order-level fields an update may overwrite
//   - CheckConsistency: the pure validator for a candidate order state
//
// Key business rules:
//   - An order has at least one item
//   - Every quantity is greater than zero and no price is negative
//   - The order value, rounded to cents, equals the sum of quantity*price rounded to cents
//
// Currency amounts use github.com/shopspring/decimal so sums are exact.
package order
