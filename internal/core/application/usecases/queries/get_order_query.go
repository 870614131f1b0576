package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and status timeline.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	order, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AuditEntryResponse represents one recorded status change of an order.
// From is nil for the creation entry.
type AuditEntryResponse struct {
	From    *string
	To      string
	ActorID kernel.UUID
	Note    string
	At      time.Time
}

// GetOrderQueryResponse represents the full read model of one order.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	Number       string
	Channel      string
	Status       string
	TableRef     string
	CustomerName string
	Notes        string
	Total        kernel.Money
	PendingAt    time.Time
	PreparingAt  *time.Time
	ReadyAt      *time.Time
	DeliveredAt  *time.Time
	Lines        []OrderLineResponse
	History      []AuditEntryResponse
}
