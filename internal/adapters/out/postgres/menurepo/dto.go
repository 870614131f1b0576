// Package menurepo provides the read-only GORM view over the menu catalog
// that the order workflow prices against.
package menurepo

import (
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents one menu catalog row.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal `gorm:"type:decimal(10,2)"`
	Available   bool
	PrepMinutes int
}

// TableName specifies the database table name for menu items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

// toDomain converts a database DTO to a menu item.
func toDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := menu.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(
		id,
		dto.Name,
		dto.Description,
		category,
		kernel.MoneyFromDecimal(dto.Price),
		dto.Available,
		dto.PrepMinutes,
	)
}
