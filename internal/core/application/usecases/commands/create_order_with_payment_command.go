package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/guard"
)

var ErrCreateOrderWithPaymentCommandIsNotConstructed = errors.New(
	"CreateOrderWithPaymentCommand must be created via NewCreateOrderWithPaymentCommand constructor",
)

// CreateOrderWithPaymentCommand represents the counter checkout flow:
// register an order and settle it in one step. Common for takeout, where
// the customer pays when ordering.
type CreateOrderWithPaymentCommand struct { //nolint:recvcheck //using for validation
	createOrder CreateOrderCommand
	method      payment.Method
	received    *kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderWithPaymentCommand creates a combined create-and-pay
// command. The order part is validated exactly like a plain creation; the
// payment part like a plain registration against the new order.
func NewCreateOrderWithPaymentCommand(
	orderID kernel.UUID,
	channel order.Channel,
	tableRef string,
	customerName string,
	notes string,
	actorID kernel.UUID,
	lines []OrderLine,
	method payment.Method,
	received *kernel.Money,
) (CreateOrderWithPaymentCommand, error) {
	createCmd, err := NewCreateOrderCommand(
		orderID, channel, tableRef, customerName, notes, actorID, lines,
	)
	if err != nil {
		return CreateOrderWithPaymentCommand{}, err
	}

	checkoutCommand := CreateOrderWithPaymentCommand{
		createOrder: createCmd,
		guard:       guard.NewConstructorGuard(),
	}

	if err = errors.Join(
		checkoutCommand.setMethod(method),
		checkoutCommand.setReceived(received),
	); err != nil {
		return CreateOrderWithPaymentCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderWithPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderWithPaymentCommandIsNotConstructed)
}

// CreateOrder returns the embedded order creation command.
func (c CreateOrderWithPaymentCommand) CreateOrder() CreateOrderCommand {
	return c.createOrder
}

// Method returns how the order is paid.
func (c CreateOrderWithPaymentCommand) Method() payment.Method {
	return c.method
}

// Received returns the cash amount handed over, nil for non-cash methods.
func (c CreateOrderWithPaymentCommand) Received() *kernel.Money {
	return c.received
}

// ActorID returns the actor performing the checkout.
func (c CreateOrderWithPaymentCommand) ActorID() kernel.UUID {
	return c.createOrder.ActorID()
}

func (c *CreateOrderWithPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *CreateOrderWithPaymentCommand) setReceived(received *kernel.Money) error {
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
