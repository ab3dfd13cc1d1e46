// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/adapters/out/postgres/itemrepo"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items hang off order_id with a cascading foreign key; CreatedAt and UpdatedAt are
// bookkeeping columns that never reach the domain.
type OrderDTO struct {
	OrderID      string             `gorm:"primaryKey;size:255"`
	Value        decimal.Decimal    `gorm:"type:numeric(10,2);not null"`
	CreationDate time.Time          `gorm:"not null"`
	Items        []itemrepo.ItemDTO `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts the order-level fields of an aggregate. Items are
// written separately by the item repository.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		OrderID:      aggregate.ID(),
		Value:        aggregate.Value(),
		CreationDate: aggregate.CreationDate(),
	}
}

// toDomain converts a database DTO, with its loaded items, to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.OrderID, dto.Value, dto.CreationDate, itemrepo.ToDomain(dto.Items))
}
