package commands

import (
	"context"
	"time"

	"comanda/internal/core/domain/model/audit"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles the business logic for moving an
// order along its lifecycle. Locks the order row, checks the transition
// against the state machine, enforces the paid-before-delivered rule, and
// appends the change to the audit trail, all in one transaction.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, "delivered", actorID, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrPaymentRequired) {
//	        // settle the order first
//	    }
//	    return err
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status change operations.
// Requires a StatusUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory StatusUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
//
// The transition table is consulted before the payment precondition, so
// moving a pending order straight to delivered reports an invalid
// transition, not a missing payment. An unparseable target status is also
// reported as an invalid transition from the order's current status.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	target, err := order.StatusFromString(cmd.TargetStatus())
	if err != nil {
		return errs.NewInvalidTransitionError(aggregate.Status().String(), cmd.TargetStatus())
	}

	if !aggregate.Status().CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(aggregate.Status().String(), target.String())
	}

	if target == order.Delivered {
		paid, err := uow.PaymentRepository().ExistsForOrder(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if !paid {
			return errs.NewPaymentRequiredError(aggregate.ID().String())
		}
	}

	from := aggregate.Status()
	now := time.Now()

	if err = aggregate.ChangeStatus(target, now); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), aggregate.ID(), &from, target, cmd.ActorID(), cmd.Note(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
