package queries

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenQueueQueryHandler retrieves the kitchen work queue from the
// database. Oldest orders come first so the kitchen works in arrival order.
type GetKitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
// Requires a GORM database connection for query execution.
func NewGetKitchenQueueQueryHandler(db *gorm.DB) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db}
}

// Handle executes the query. Waiting time is measured from order creation
// to now, in whole minutes.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]GetKitchenQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			channel,
			status,
			table_ref,
			notes,
			pending_at
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY pending_at
	`, order.Pending.String(), order.Preparing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	queue := make([]GetKitchenQueueQueryResponse, 0)

	for rows.Next() {
		var entry GetKitchenQueueQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Number,
			&entry.Channel,
			&entry.Status,
			&entry.TableRef,
			&entry.Notes,
			&entry.PendingAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = orderID
		entry.WaitingMinutes = int(now.Sub(entry.PendingAt).Minutes())

		queue = append(queue, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(queue))
	for _, entry := range queue {
		ids = append(ids, entry.ID)
	}

	lines, err := loadOrderLines(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range queue {
		queue[i].Lines = lines[queue[i].ID]
	}

	return queue, nil
}
