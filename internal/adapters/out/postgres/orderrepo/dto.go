// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses and channels are stored as their lowercase wire names so that raw
// read-model queries can filter on them directly. The order number carries a
// unique index as the backstop for the generation retry loop.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex"`
	Channel      string    `gorm:"index"`
	Status       string    `gorm:"index"`
	TableRef     string
	CustomerName string
	Notes        string
	CreatedBy    uuid.UUID       `gorm:"type:uuid"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2)"`
	PendingAt    time.Time       `gorm:"index"`
	PreparingAt  *time.Time
	ReadyAt      *time.Time
	DeliveredAt  *time.Time
	Lines        []LineDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one immutable order line row. Unit prices and subtotals
// are price snapshots; they are never recomputed from the menu catalog.
type LineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2)"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2)"`
	Note       string
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation,
// including one row per order line.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:         line.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			ItemName:   line.ItemName(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Decimal(),
			Subtotal:   line.Subtotal().Decimal(),
			Note:       line.Note(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number().String(),
		Channel:      aggregate.Channel().String(),
		Status:       aggregate.Status().String(),
		TableRef:     aggregate.TableRef(),
		CustomerName: aggregate.CustomerName(),
		Notes:        aggregate.Notes(),
		CreatedBy:    aggregate.CreatedBy().Bytes(),
		Total:        aggregate.Total().Decimal(),
		PendingAt:    aggregate.PendingAt(),
		PreparingAt:  aggregate.PreparingAt(),
		ReadyAt:      aggregate.ReadyAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreOrder,
// which re-derives and checks the stored total.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	channel, err := order.ChannelFromString(dto.Channel)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		number,
		channel,
		dto.TableRef,
		dto.CustomerName,
		dto.Notes,
		createdBy,
		status,
		kernel.MoneyFromDecimal(dto.Total),
		dto.PendingAt,
		dto.PreparingAt,
		dto.ReadyAt,
		dto.DeliveredAt,
		lines,
	)
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	return order.RestoreLine(
		id,
		menuItemID,
		dto.ItemName,
		dto.Quantity,
		kernel.MoneyFromDecimal(dto.UnitPrice),
		dto.Note,
	)
}
