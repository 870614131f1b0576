package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler retrieves orders awaiting hand-over from the
// database. The oldest ready order comes first.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for ready order queries.
// Requires a GORM database connection for query execution.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all ready orders.
func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
) ([]GetReadyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			channel,
			table_ref,
			customer_name,
			total,
			ready_at
		FROM orders
		WHERE status = ?
		ORDER BY ready_at
	`, order.Ready.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ready := make([]GetReadyOrdersQueryResponse, 0)

	for rows.Next() {
		var entry GetReadyOrdersQueryResponse
		var id uuid.UUID
		var total string

		err = rows.Scan(
			&id,
			&entry.Number,
			&entry.Channel,
			&entry.TableRef,
			&entry.CustomerName,
			&total,
			&entry.ReadyAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = orderID

		if entry.Total, err = kernel.NewMoneyFromString(total); err != nil {
			return nil, err
		}

		ready = append(ready, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(ready))
	for _, entry := range ready {
		ids = append(ids, entry.ID)
	}

	lines, err := loadOrderLines(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range ready {
		ready[i].Lines = lines[ready[i].ID]
	}

	return ready, nil
}
