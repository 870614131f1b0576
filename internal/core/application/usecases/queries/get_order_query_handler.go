package queries

import (
	"context"
	"database/sql"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the
// database, lines and audit history included.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, err := loadOrderLines(ctx, h.db, []kernel.UUID{resp.ID})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Lines = lines[resp.ID]

	if resp.History, err = h.loadHistory(ctx, resp.ID); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// loadHistory fetches the order's audit trail, oldest entry first.
func (h GetOrderQueryHandler) loadHistory(ctx context.Context, orderID kernel.UUID) ([]AuditEntryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			note,
			at
		FROM audit_entries
		WHERE order_id = ?
		ORDER BY at, id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []AuditEntryResponse
	for rows.Next() {
		var entry AuditEntryResponse
		var from sql.NullString
		var actorID uuid.UUID

		err = rows.Scan(&from, &entry.To, &actorID, &entry.Note, &entry.At)
		if err != nil {
			return nil, err
		}

		if from.Valid {
			entry.From = &from.String
		}
		if entry.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}

		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// scanOrderRow scans one full order row in the column order used by every
// order query in this package.
func scanOrderRow(rows *sql.Rows) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id uuid.UUID
	var total string
	var preparingAt, readyAt, deliveredAt sql.NullTime

	err := rows.Scan(
		&id,
		&resp.Number,
		&resp.Channel,
		&resp.Status,
		&resp.TableRef,
		&resp.CustomerName,
		&resp.Notes,
		&total,
		&resp.PendingAt,
		&preparingAt,
		&readyAt,
		&deliveredAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	if resp.Total, err = kernel.NewMoneyFromString(total); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if preparingAt.Valid {
		resp.PreparingAt = &preparingAt.Time
	}
	if readyAt.Valid {
		resp.ReadyAt = &readyAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}

	return resp, nil
}
