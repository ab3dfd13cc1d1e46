package http

import (
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

// LoginResponse carries an issued bearer token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Order is the JSON form of an order. Amounts are strings with two decimals.
type Order struct {
	OrderID      string    `json:"orderId"`
	Value        string    `json:"value"`
	CreationDate time.Time `json:"creationDate"`
	Items        []Item    `json:"items"`
}

// Item is the JSON form of an order line.
type Item struct {
	OrderID   string `json:"orderId"`
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func orderFromAggregate(o *order.Order) Order {
	items := make([]Item, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, Item{
			OrderID:   o.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price().StringFixed(2),
		})
	}

	return Order{
		OrderID:      o.ID(),
		Value:        o.Value().StringFixed(2),
		CreationDate: o.CreationDate(),
		Items:        items,
	}
}

func orderFromReadModel(o queries.OrderResponse) Order {
	items := make([]Item, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, Item{
			OrderID:   o.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
		})
	}

	return Order{
		OrderID:      o.OrderID,
		Value:        o.Value.StringFixed(2),
		CreationDate: o.CreationDate,
		Items:        items,
	}
}
