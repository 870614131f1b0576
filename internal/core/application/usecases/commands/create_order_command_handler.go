package commands

import (
	"context"
	"fmt"
	"time"

	"comanda/internal/core/domain/model/audit"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/services"
	"comanda/internal/core/ports"
)

// maxNumberAttempts bounds the retry loops that generate human-readable
// order and ticket numbers. The random suffix space is large enough that
// hitting the bound means something is wrong with the storage layer.
const maxNumberAttempts = 5

// CreateOrderCommandHandler handles the business logic for order creation.
// Prices the requested items against the menu catalog, generates a unique
// order number, and writes the creation entry to the audit trail, all in
// one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	line, _ := NewOrderLine(itemID, 2, "")
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), order.DineIn, "12", "", "", actorID, []OrderLine{line})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and visible to the kitchen queue
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderingUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Uses a transaction so the order, its lines, and the audit entry are
// persisted together or not at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := createOrder(
		ctx, cmd, uow.OrderRepository(), uow.MenuRepository(), uow.AuditRepository(), time.Now(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// createOrder prices the requested lines, generates a unique order number,
// persists the new order, and appends the creation audit entry. Shared by
// the plain creation command and the combined checkout command.
func createOrder(
	ctx context.Context,
	cmd CreateOrderCommand,
	orderRepo ports.OrderRepository,
	menuRepo ports.MenuRepository,
	auditRepo ports.AuditRepository,
	at time.Time,
) (*order.Order, error) {
	requested := cmd.Lines()

	ids := make([]kernel.UUID, 0, len(requested))
	seen := make(map[kernel.UUID]bool, len(requested))
	for _, line := range requested {
		if !seen[line.MenuItemID()] {
			seen[line.MenuItemID()] = true
			ids = append(ids, line.MenuItemID())
		}
	}

	items, err := menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	pricer, err := services.NewPricer(items)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(requested))
	for _, req := range requested {
		snapshot, err := pricer.Quote(req.MenuItemID(), req.Quantity())
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(
			kernel.NewUUID(),
			snapshot.ItemID,
			snapshot.ItemName,
			req.Quantity(),
			snapshot.UnitPrice,
			req.Note(),
		)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	number, err := generateOrderNumber(ctx, orderRepo, at)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.Channel(),
		cmd.TableRef(),
		cmd.CustomerName(),
		cmd.Notes(),
		cmd.ActorID(),
		lines,
		at,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(), aggregate.ID(), nil, order.Pending, cmd.ActorID(), "", at,
	)
	if err != nil {
		return nil, err
	}

	if err = auditRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// generateOrderNumber mints candidate numbers until one is free. The unique
// index on the number column still backs this up against races.
func generateOrderNumber(ctx context.Context, repo ports.OrderRepository, at time.Time) (order.Number, error) {
	for range maxNumberAttempts {
		number := order.NewNumber(at)

		exists, err := repo.ExistsNumber(ctx, number)
		if err != nil {
			return order.Number{}, err
		}
		if !exists {
			return number, nil
		}
	}

	return order.Number{}, fmt.Errorf("could not generate a unique order number in %d attempts", maxNumberAttempts)
}
