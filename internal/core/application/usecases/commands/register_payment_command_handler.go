package commands

import (
	"context"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

// RegisterPaymentCommandHandler handles the business logic for settling an
// order. Locks the order row, enforces the one-payment rule, generates a
// unique ticket number, and appends to the ledger.
//
// Example:
//
//	handler := NewRegisterPaymentCommandHandler(uowFactory)
//	cmd, _ := NewRegisterPaymentCommand(orderID, payment.Card, nil, actorID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrAlreadyPaid) {
//	        // order was settled by a concurrent request
//	    }
//	    return err
//	}
type RegisterPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewRegisterPaymentCommandHandler creates a handler for payment registration.
// Requires a PaymentUoWFactory for transactional persistence.
func NewRegisterPaymentCommandHandler(uowFactory PaymentUoWFactory) RegisterPaymentCommandHandler {
	return RegisterPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment registration command.
// The row lock taken by GetForUpdate serializes concurrent settlement
// attempts; the unique constraint on the ledger is the last line of
// defense and also surfaces as an AlreadyPaidError.
func (h *RegisterPaymentCommandHandler) Handle(ctx context.Context, cmd RegisterPaymentCommand) error {
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

	if _, err = registerPayment(
		ctx, uow.PaymentRepository(), aggregate, cmd.Method(), cmd.Received(), cmd.ActorID(), time.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// registerPayment enforces the settlement rules and appends the payment to
// the ledger. Shared by the plain registration command and the combined
// checkout command.
func registerPayment(
	ctx context.Context,
	paymentRepo ports.PaymentRepository,
	aggregate *order.Order,
	method payment.Method,
	received *kernel.Money,
	actorID kernel.UUID,
	at time.Time,
) (*payment.Payment, error) {
	if aggregate.Status() == order.Cancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause("order_id",
			fmt.Errorf("order %s is cancelled and cannot be paid", aggregate.Number()))
	}

	exists, err := paymentRepo.ExistsForOrder(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewAlreadyPaidError(aggregate.ID().String())
	}

	ticket, err := generateTicketNumber(ctx, paymentRepo, at)
	if err != nil {
		return nil, err
	}

	settlement, err := payment.NewPayment(
		kernel.NewUUID(),
		aggregate.ID(),
		ticket,
		method,
		aggregate.Total(),
		received,
		actorID,
		at,
	)
	if err != nil {
		return nil, err
	}

	if err = paymentRepo.Add(ctx, settlement); err != nil {
		return nil, err
	}

	return settlement, nil
}

// generateTicketNumber mints candidate ticket numbers until one is free.
// The unique index on the ticket column still backs this up against races.
func generateTicketNumber(ctx context.Context, repo ports.PaymentRepository, at time.Time) (payment.TicketNumber, error) {
	for range maxNumberAttempts {
		ticket := payment.NewTicketNumber(at)

		exists, err := repo.ExistsTicket(ctx, ticket)
		if err != nil {
			return payment.TicketNumber{}, err
		}
		if !exists {
			return ticket, nil
		}
	}

	return payment.TicketNumber{}, fmt.Errorf("could not generate a unique ticket number in %d attempts", maxNumberAttempts)
}
