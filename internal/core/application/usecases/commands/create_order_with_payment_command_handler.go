package commands

import (
	"context"
	"time"
)

// CreateOrderWithPaymentCommandHandler handles the counter checkout flow.
// The order, its payment, and the creation audit entry commit together: a
// failed settlement leaves no half-registered order behind.
type CreateOrderWithPaymentCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderWithPaymentCommandHandler creates a handler for the
// combined create-and-pay operation.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateOrderWithPaymentCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderWithPaymentCommandHandler {
	return CreateOrderWithPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the combined checkout command by running the order
// creation and payment registration steps inside one transaction.
func (h *CreateOrderWithPaymentCommandHandler) Handle(ctx context.Context, cmd CreateOrderWithPaymentCommand) error {
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

	now := time.Now()

	aggregate, err := createOrder(
		ctx, cmd.CreateOrder(), uow.OrderRepository(), uow.MenuRepository(), uow.AuditRepository(), now,
	)
	if err != nil {
		return err
	}

	if _, err = registerPayment(
		ctx, uow.PaymentRepository(), aggregate, cmd.Method(), cmd.Received(), cmd.ActorID(), now,
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
