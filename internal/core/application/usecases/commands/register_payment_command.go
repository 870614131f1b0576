package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/guard"
)

var ErrRegisterPaymentCommandIsNotConstructed = errors.New(
	"RegisterPaymentCommand must be created via NewRegisterPaymentCommand constructor",
)

// RegisterPaymentCommand represents a request to settle an existing order.
// The amount is never part of the command: it is always the stored order
// total, so clients cannot pay a stale or tampered figure.
//
// Example:
//
//	received, _ := kernel.NewMoneyFromString("50.00")
//	cmd, err := NewRegisterPaymentCommand(orderID, payment.Cash, &received, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid payment data: %w", err)
//	}
//
//	handler := NewRegisterPaymentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register payment: %w", err)
//	}
type RegisterPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	method   payment.Method
	received *kernel.Money
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterPaymentCommand creates a command to register a payment for an
// order. The received amount is only meaningful for cash; whether it is
// required or forbidden for the chosen method is decided by the payment
// aggregate itself.
func NewRegisterPaymentCommand(
	orderID kernel.UUID,
	method payment.Method,
	received *kernel.Money,
	actorID kernel.UUID,
) (RegisterPaymentCommand, error) {
	paymentCommand := RegisterPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setMethod(method),
		paymentCommand.setReceived(received),
		paymentCommand.setActorID(actorID),
	); err != nil {
		return RegisterPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterPaymentCommandIsNotConstructed if validation fails.
func (c RegisterPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to settle.
func (c RegisterPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns how the order is paid.
func (c RegisterPaymentCommand) Method() payment.Method {
	return c.method
}

// Received returns the cash amount handed over, nil for non-cash methods.
func (c RegisterPaymentCommand) Received() *kernel.Money {
	return c.received
}

// ActorID returns the actor registering the payment.
func (c RegisterPaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RegisterPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RegisterPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RegisterPaymentCommand) setReceived(received *kernel.Money) error {
	if received == nil {
		return nil
	}

	if err := received.ValidateNonNegative("received_amount"); err != nil {
		return err
	}

	value := *received
	c.received = &value
	return nil
}

func (c *RegisterPaymentCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
