package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the payment
// ledger. Payments are append-only: there is no update or delete.
type PaymentRepository interface {
	// Add persists a new payment. The storage layer enforces both the
	// one-payment-per-order rule and ticket number uniqueness; a
	// violation of the former surfaces as an AlreadyPaidError.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByOrderID retrieves the payment registered for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// ExistsForOrder reports whether the order already has a payment.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetByTicket retrieves a payment by its receipt ticket number.
	GetByTicket(ctx context.Context, ticket payment.TicketNumber) (*payment.Payment, error)

	// ExistsTicket reports whether the ticket number is already taken.
	// Used by the ticket generation retry loop.
	ExistsTicket(ctx context.Context, ticket payment.TicketNumber) (bool, error)
}
