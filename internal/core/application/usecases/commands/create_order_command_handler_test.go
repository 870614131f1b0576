package commands_test

import (
	"errors"
	"testing"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/menu"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogItem(t *testing.T, id kernel.UUID, name, price string, available bool) *menu.Item {
	t.Helper()
	p, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewItem(id, name, "", menu.CategoryMainCourse, p, available, 20)
	require.NoError(t, err)
	return item
}

func newCreateOrderCommand(t *testing.T, itemID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	line, err := commands.NewOrderLine(itemID, 2, "")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.DineIn, "12", "", "", kernel.NewUUID(), []commands.OrderLine{line},
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, itemID)
	item := newCatalogItem(t, itemID, "Pollo a la brasa", "18.00", true)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		menuRepo.On("GetByIDs", mock.Anything, []kernel.UUID{itemID}).Return([]*menu.Item{item}, nil).Once(),
		orderRepo.On("ExistsNumber", mock.Anything, mock.AnythingOfType("order.Number")).Return(false, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderingUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, kernel.NewUUID())

	uow := new(MockOrderingUoW)
	factory := new(MockOrderingUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_ItemUnavailable(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, itemID)
	item := newCatalogItem(t, itemID, "Anticucho", "12.00", false)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		menuRepo.On("GetByIDs", mock.Anything, []kernel.UUID{itemID}).Return([]*menu.Item{item}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrItemUnavailable)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, itemID)
	item := newCatalogItem(t, itemID, "Pollo a la brasa", "18.00", true)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		menuRepo.On("GetByIDs", mock.Anything, []kernel.UUID{itemID}).Return([]*menu.Item{item}, nil).Once(),
		orderRepo.On("ExistsNumber", mock.Anything, mock.AnythingOfType("order.Number")).Return(false, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	auditRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, itemID)
	item := newCatalogItem(t, itemID, "Pollo a la brasa", "18.00", true)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		menuRepo.On("GetByIDs", mock.Anything, []kernel.UUID{itemID}).Return([]*menu.Item{item}, nil).Once(),
		orderRepo.On("ExistsNumber", mock.Anything, mock.AnythingOfType("order.Number")).Return(false, nil).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
