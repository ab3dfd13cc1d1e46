// Package itemrepo persists order items. Items are written only through
// set-replace primitives inside the owning order's unit of work.
package itemrepo

import (
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for an order item.
// The foreign key to orders (ON DELETE CASCADE) is declared on the order side.
type ItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   string          `gorm:"size:255;not null;index"`
	ProductID int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "items"
}

// FromDomain stamps items with their order identifier.
func FromDomain(orderID string, items []order.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}
	return dtos
}

// ToDomain drops the bookkeeping columns and keeps the order line.
func ToDomain(dtos []ItemDTO) []order.Item {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, order.NewItem(dto.ProductID, dto.Quantity, dto.Price))
	}
	return items
}
