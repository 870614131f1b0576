package commands

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// OrderLine is one requested item within an order creation command. It
// carries only the reference and quantity; the name and price are looked up
// and snapshotted by the handler.
type OrderLine struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	quantity   int
	note       string

	guard guard.ConstructorGuard
}

// NewOrderLine creates a validated order line request.
func NewOrderLine(menuItemID kernel.UUID, quantity int, note string) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	line.note = note
	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (l OrderLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the requested quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// Note returns the per-line preparation note.
func (l OrderLine) Note() string {
	return l.note
}

func (l *OrderLine) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	l.menuItemID = menuItemID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
	}

	l.quantity = quantity
	return nil
}

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the fulfilment channel, the requested items, and the actor
// placing the order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	line, _ := NewOrderLine(itemID, 2, "")
//	cmd, err := NewCreateOrderCommand(orderID, order.DineIn, "12", "", "", actorID, []OrderLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	channel      order.Channel
	tableRef     string
	customerName string
	notes        string
	actorID      kernel.UUID
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID and actor ID are valid, the channel is
// defined, and at least one properly constructed line is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	channel order.Channel,
	tableRef string,
	customerName string,
	notes string,
	actorID kernel.UUID,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setChannel(channel),
		orderCommand.setActorID(actorID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.tableRef = tableRef
	orderCommand.customerName = customerName
	orderCommand.notes = notes

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Channel returns the fulfilment channel.
func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

// TableRef returns the table or seat reference; may be empty.
func (c CreateOrderCommand) TableRef() string {
	return c.tableRef
}

// CustomerName returns the customer name; may be empty.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Notes returns the free-text order remarks; may be empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// ActorID returns the actor placing the order.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setChannel(channel order.Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}

	c.channel = channel
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
