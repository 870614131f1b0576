package postgres

import (
	"comanda/internal/adapters/out/postgres/auditrepo"
	"comanda/internal/adapters/out/postgres/menurepo"
	"comanda/internal/adapters/out/postgres/orderrepo"
	"comanda/internal/adapters/out/postgres/paymentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for every table the order
// workflow persists to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&paymentrepo.PaymentDTO{},
		&auditrepo.EntryDTO{},
		&menurepo.ItemDTO{},
	)
}
