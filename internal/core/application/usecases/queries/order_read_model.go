// Package queries contains read-only operations over orders.
// Handlers read straight from the database with SQL and return flat read
// models; nothing here opens a transaction or changes state.
package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is the read model of an order with its items.
type OrderResponse struct {
	OrderID      string
	Value        decimal.Decimal
	CreationDate time.Time
	Items        []ItemResponse
}

// ItemResponse is the read model of a single order line.
type ItemResponse struct {
	ProductID int
	Quantity  int
	Price     decimal.Decimal
}

const selectOrdersWithItems = `
	SELECT
		o.order_id,
		o.value,
		o.creation_date,
		i.product_id,
		i.quantity,
		i.price
	FROM orders o
	LEFT JOIN items i ON i.order_id = o.order_id
`

// readOrders runs selectOrdersWithItems with the given filter and folds the
// joined rows into one response per order, keeping row order.
func readOrders(ctx context.Context, db *gorm.DB, filter string, args ...any) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := db.WithContext(ctx).Raw(
		selectOrdersWithItems+filter+" ORDER BY o.order_id, i.id", args...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var (
			orderID      string
			value        decimal.Decimal
			creationDate time.Time
			productID    sql.NullInt64
			quantity     sql.NullInt64
			price        decimal.NullDecimal
		)

		if err = rows.Scan(&orderID, &value, &creationDate, &productID, &quantity, &price); err != nil {
			return nil, err
		}

		pos, seen := index[orderID]
		if !seen {
			pos = len(orders)
			index[orderID] = pos
			orders = append(orders, OrderResponse{
				OrderID:      orderID,
				Value:        value,
				CreationDate: creationDate,
				Items:        make([]ItemResponse, 0),
			})
		}

		// an order without items yields one row of NULLs from the outer join
		if !productID.Valid {
			continue
		}

		orders[pos].Items = append(orders[pos].Items, ItemResponse{
			ProductID: int(productID.Int64),
			Quantity:  int(quantity.Int64),
			Price:     price.Decimal,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
