package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrTargetStatusIsRequired = errors.New("target status is required")
)

// ChangeOrderStatusCommand represents a request to move an order along its
// lifecycle. The target status is kept as the raw wire string: whether it
// parses, and whether the move is allowed, is decided by the handler with
// the order's current status at hand, so the error can always name both
// sides of the transition.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, "preparing", actorID, "")
//	if err != nil {
//	    return fmt.Errorf("invalid status change data: %w", err)
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to change status: %w", err)
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus string
	actorID      kernel.UUID
	note         string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to move an order to the
// given target status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus string,
	actorID kernel.UUID,
	note string,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTargetStatus(targetStatus),
		statusCommand.setActorID(actorID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	statusCommand.note = note
	return statusCommand, nil
}

// NewCancelOrderCommand creates a command that cancels an order. It is the
// status change to cancelled; cancellation has no separate machinery.
func NewCancelOrderCommand(orderID kernel.UUID, actorID kernel.UUID, note string) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, order.Cancelled.String(), actorID, note)
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested status as its raw wire string.
func (c ChangeOrderStatusCommand) TargetStatus() string {
	return c.targetStatus
}

// ActorID returns the actor performing the change.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the free-text remark for the audit trail; may be empty.
func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(targetStatus string) error {
	if targetStatus == "" {
		return ErrTargetStatusIsRequired
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
