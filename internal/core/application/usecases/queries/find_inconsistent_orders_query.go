package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrFindInconsistentOrdersQueryIsNotConstructed = errors.New(
	"FindInconsistentOrdersQuery must be created via NewFindInconsistentOrdersQuery constructor",
)

// FindInconsistentOrdersQuery scans stored orders for ones that break the
// consistency rules, for example after a manual edit of the database.
type FindInconsistentOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewFindInconsistentOrdersQuery creates the audit query.
func NewFindInconsistentOrdersQuery() FindInconsistentOrdersQuery {
	return FindInconsistentOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FindInconsistentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrFindInconsistentOrdersQueryIsNotConstructed)
}

// InconsistentOrder names a stored order and the first rule it breaks.
type InconsistentOrder struct {
	OrderID string
	Reason  error
}
