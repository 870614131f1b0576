package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered order read models from the
// database, newest first, lines included.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query with the filters that are set. Results are
// ordered by creation time, newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			channel,
			status,
			table_ref,
			customer_name,
			notes,
			total,
			pending_at,
			preparing_at,
			ready_at,
			delivered_at
		FROM orders
		WHERE TRUE
	`
	args := make([]any, 0, 4)

	if statuses := query.Statuses(); len(statuses) > 0 {
		sql += ` AND status = ANY(?)`
		args = append(args, pq.Array(statuses))
	}
	if query.Channel() != "" {
		sql += ` AND channel = ?`
		args = append(args, query.Channel())
	}
	if query.From() != nil {
		sql += ` AND pending_at >= ?`
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sql += ` AND pending_at < ?`
		args = append(args, *query.To())
	}

	sql += ` ORDER BY pending_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrderQueryResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	lines, err := loadOrderLines(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}

	return orders, nil
}
