package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch lists the order-level fields an update overwrites. A nil field is left
// untouched. Items are replaced separately through the item repository.
type Patch struct {
	Value        *decimal.Decimal
	CreationDate *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Value == nil && p.CreationDate == nil
}
