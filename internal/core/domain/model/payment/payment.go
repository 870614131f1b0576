package payment

import (
	"errors"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is the immutable settlement record of an order. An order has at
// most one payment; the ledger enforces the one-payment rule with a unique
// constraint and the handlers surface violations as a conflict.
//
// For cash payments the received amount and change are recorded; change is
// always received minus the amount. Non-cash payments settle exactly, so
// received equals the amount and change is zero.
type Payment struct {
	// id is the unique identifier for the payment
	id kernel.UUID

	// orderID references the paid order
	orderID kernel.UUID

	// ticket is the human-readable receipt number
	ticket TicketNumber

	// method is how the order was paid
	method Method

	// amount is the order total at payment time
	amount kernel.Money

	// received is the money handed over; equals amount for non-cash
	received kernel.Money

	// change is received minus amount; zero for non-cash
	change kernel.Money

	// paidBy references the actor who registered the payment
	paidBy kernel.UUID

	// paidAt is when the payment was registered
	paidAt time.Time

	// isConstructed ensures the payment was created via a constructor
	isConstructed bool
}

// NewPayment creates a payment for an order total.
//
// For cash, received must be provided and cover the amount; the change is
// computed here. For every other method received must be nil because the
// settlement is exact by definition; passing one is a validation error.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	ticket TicketNumber,
	method Method,
	amount kernel.Money,
	received *kernel.Money,
	paidBy kernel.UUID,
	paidAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		ticket.Validate(),
		method.Validate(),
		amount.ValidateNonNegative("amount"),
		paidBy.Validate(),
	); err != nil {
		return nil, err
	}

	actualReceived := amount
	change := kernel.ZeroMoney()

	if method.IsCash() {
		if received == nil {
			return nil, errs.NewValueIsRequiredError("received_amount")
		}
		if received.LessThan(amount) {
			return nil, errs.NewValueIsInvalidErrorWithCause("received_amount",
				fmt.Errorf("%s does not cover the amount %s", received, amount))
		}
		actualReceived = *received
		change = received.Sub(amount)
	} else if received != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("received_amount",
			fmt.Errorf("a received amount only applies to cash payments, not %s", method))
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		ticket:        ticket,
		method:        method,
		amount:        amount,
		received:      actualReceived,
		change:        change,
		paidBy:        paidBy,
		paidAt:        paidAt,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence. The change is
// re-derived from the stored received amount so the ledger invariant
// change == received - amount holds regardless of stored data.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	ticket TicketNumber,
	method Method,
	amount kernel.Money,
	received kernel.Money,
	paidBy kernel.UUID,
	paidAt time.Time,
) (*Payment, error) {
	if method.IsCash() {
		return NewPayment(id, orderID, ticket, method, amount, &received, paidBy, paidAt)
	}
	return NewPayment(id, orderID, ticket, method, amount, nil, paidBy, paidAt)
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the paid order.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Ticket returns the human-readable receipt number.
func (p *Payment) Ticket() TicketNumber {
	return p.ticket
}

// Method returns how the order was paid.
func (p *Payment) Method() Method {
	return p.method
}

// Amount returns the order total settled by this payment.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Received returns the money handed over.
func (p *Payment) Received() kernel.Money {
	return p.received
}

// Change returns received minus amount; zero for non-cash methods.
func (p *Payment) Change() kernel.Money {
	return p.change
}

// PaidBy returns the actor who registered the payment.
func (p *Payment) PaidBy() kernel.UUID {
	return p.paidBy
}

// PaidAt returns when the payment was registered.
func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}
