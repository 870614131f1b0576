package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/guard"
)

var ErrGetTicketQueryIsNotConstructed = errors.New(
	"GetTicketQuery must be created via NewGetTicketQuery or NewGetTicketByOrderQuery constructor",
)

// GetTicketQuery retrieves one payment receipt, either by its ticket
// number or by the order it settles. An order has at most one payment, so
// both lookups identify at most one receipt.
//
// Example:
//
//	query, err := NewGetTicketQuery(ticket)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetTicketQueryHandler(db)
//	receipt, err := handler.Handle(ctx, query)
type GetTicketQuery struct {
	ticket  payment.TicketNumber
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTicketQuery creates a receipt lookup by ticket number.
func NewGetTicketQuery(ticket payment.TicketNumber) (GetTicketQuery, error) {
	if err := ticket.Validate(); err != nil {
		return GetTicketQuery{}, err
	}

	return GetTicketQuery{
		ticket: ticket,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewGetTicketByOrderQuery creates a receipt lookup by the settled order.
func NewGetTicketByOrderQuery(orderID kernel.UUID) (GetTicketQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTicketQuery{}, err
	}

	return GetTicketQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetTicketQueryIsNotConstructed if validation fails.
func (q GetTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketQueryIsNotConstructed)
}

// Ticket returns the ticket number filter; zero value when looking up by order.
func (q GetTicketQuery) Ticket() payment.TicketNumber {
	return q.ticket
}

// OrderID returns the order filter; zero value when looking up by ticket.
func (q GetTicketQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetTicketQueryResponse represents one payment receipt read model.
type GetTicketQueryResponse struct {
	Ticket      string
	OrderID     kernel.UUID
	OrderNumber string
	Channel     string
	Method      string
	Amount      kernel.Money
	Received    kernel.Money
	Change      kernel.Money
	PaidBy      kernel.UUID
	PaidAt      time.Time
}
