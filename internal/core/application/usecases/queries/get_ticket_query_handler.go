package queries

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTicketQueryHandler retrieves a payment receipt read model from the
// database, joined with the order it settles.
type GetTicketQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketQueryHandler creates a handler for receipt lookup queries.
// Requires a GORM database connection for query execution.
func NewGetTicketQueryHandler(db *gorm.DB) GetTicketQueryHandler {
	return GetTicketQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no
// payment matches.
func (h GetTicketQueryHandler) Handle(
	ctx context.Context,
	query GetTicketQuery,
) (GetTicketQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTicketQueryResponse{}, err
	}

	sql := `
		SELECT
			p.ticket,
			p.order_id,
			o.number,
			o.channel,
			p.method,
			p.amount,
			p.received_amount,
			p.change_amount,
			p.paid_by,
			p.paid_at
		FROM payments p
		JOIN orders o ON o.id = p.order_id
	`

	var arg any
	var paramName string
	if query.Ticket().String() != "" {
		sql += ` WHERE p.ticket = ?`
		arg = query.Ticket().String()
		paramName = "ticket_number"
	} else {
		sql += ` WHERE p.order_id = ?`
		arg = query.OrderID().String()
		paramName = "order_id"
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, arg).Rows()
	if err != nil {
		return GetTicketQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetTicketQueryResponse{}, err
		}
		return GetTicketQueryResponse{}, errs.NewObjectNotFoundError(paramName, arg)
	}

	var resp GetTicketQueryResponse
	var orderID, paidBy uuid.UUID
	var amount, received, change string

	err = rows.Scan(
		&resp.Ticket,
		&orderID,
		&resp.OrderNumber,
		&resp.Channel,
		&resp.Method,
		&amount,
		&received,
		&change,
		&paidBy,
		&resp.PaidAt,
	)
	if err != nil {
		return GetTicketQueryResponse{}, err
	}

	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetTicketQueryResponse{}, err
	}
	if resp.PaidBy, err = kernel.UUIDFromBytes(paidBy[:]); err != nil {
		return GetTicketQueryResponse{}, err
	}
	if resp.Amount, err = kernel.NewMoneyFromString(amount); err != nil {
		return GetTicketQueryResponse{}, err
	}
	if resp.Received, err = kernel.NewMoneyFromString(received); err != nil {
		return GetTicketQueryResponse{}, err
	}
	if resp.Change, err = kernel.NewMoneyFromString(change); err != nil {
		return GetTicketQueryResponse{}, err
	}

	return resp, nil
}
