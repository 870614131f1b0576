// Package queries contains read operations of the CQRS architecture. Query
// handlers read the database directly with raw SQL, bypassing the domain
// aggregates, and return flat read models shaped for their consumers.
package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrderLineResponse represents one line of an order read model.
type OrderLineResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	ItemName   string
	Quantity   int
	UnitPrice  kernel.Money
	Subtotal   kernel.Money
	Note       string
}

// loadOrderLines fetches the lines for the given orders in one round trip
// and groups them by order. Shared by every order-shaped read model.
func loadOrderLines(ctx context.Context, db *gorm.DB, orderIDs []kernel.UUID) (map[kernel.UUID][]OrderLineResponse, error) {
	lines := make(map[kernel.UUID][]OrderLineResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return lines, nil
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			item_name,
			quantity,
			unit_price,
			subtotal,
			note
		FROM order_lines
		WHERE order_id = ANY(?)
		ORDER BY order_id, id
	`, pq.Array(ids)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var id, orderID, menuItemID uuid.UUID
		var unitPrice, subtotal string

		err = rows.Scan(
			&id,
			&orderID,
			&menuItemID,
			&line.ItemName,
			&line.Quantity,
			&unitPrice,
			&subtotal,
			&line.Note,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = lineID

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.MenuItemID = itemID

		if line.UnitPrice, err = kernel.NewMoneyFromString(unitPrice); err != nil {
			return nil, err
		}
		if line.Subtotal, err = kernel.NewMoneyFromString(subtotal); err != nil {
			return nil, err
		}

		owner, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		lines[owner] = append(lines[owner], line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
