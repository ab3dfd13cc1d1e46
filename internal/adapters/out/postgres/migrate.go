package postgres

import (
	"orders/internal/adapters/out/postgres/itemrepo"
	"orders/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the orders and items tables, including the
// cascading foreign key from items to orders.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{})
}
