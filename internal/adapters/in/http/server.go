// Package http exposes the order workflow over a JSON REST API built on
// echo. Handlers translate requests into commands and queries, and domain
// errors into HTTP status codes; no business rules live here.
package http

import (
	"net/http"
	"time"

	"comanda/internal/adapters/out/receipt"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/domain/model/auth"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/payment"
	"comanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the order workflow.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	registerPaymentHandler commands.RegisterPaymentCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	checkoutHandler        commands.CreateOrderWithPaymentCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	kitchenQueueHandler queries.GetKitchenQueueQueryHandler
	readyOrdersHandler  queries.GetReadyOrdersQueryHandler
	getTicketHandler    queries.GetTicketQueryHandler
	dailySummaryHandler queries.GetDailySummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	registerPaymentHandler commands.RegisterPaymentCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	checkoutHandler commands.CreateOrderWithPaymentCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	kitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	readyOrdersHandler queries.GetReadyOrdersQueryHandler,
	getTicketHandler queries.GetTicketQueryHandler,
	dailySummaryHandler queries.GetDailySummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		registerPaymentHandler: registerPaymentHandler,
		changeStatusHandler:    changeStatusHandler,
		checkoutHandler:        checkoutHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		kitchenQueueHandler:    kitchenQueueHandler,
		readyOrdersHandler:     readyOrdersHandler,
		getTicketHandler:       getTicketHandler,
		dailySummaryHandler:    dailySummaryHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Everything
// under /api/v1 requires an actor identity; the health probe does not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", ActorMiddleware())

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/ticket", s.GetTicketByOrder)

	api.POST("/payments", s.RegisterPayment)
	api.POST("/payments/with-order", s.CreateOrderWithPayment)
	api.GET("/tickets/:number", s.GetTicket)
	api.GET("/tickets/:number/receipt", s.GetPrintableReceipt)

	api.GET("/kitchen/queue", s.GetKitchenQueue)
	api.GET("/waiter/ready", s.GetReadyOrders)
	api.GET("/cashbox/summary", s.GetDailySummary)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// NewOrderLine is the JSON shape of one requested order line.
type NewOrderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note"`
}

// NewOrder is the JSON request body for order creation. Prices are never
// part of the request; they are snapshotted from the menu catalog.
type NewOrder struct {
	Channel      string         `json:"channel"`
	TableRef     string         `json:"table_ref"`
	CustomerName string         `json:"customer_name"`
	Notes        string         `json:"notes"`
	Lines        []NewOrderLine `json:"lines"`
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok || !actor.Can(auth.CreateOrder) {
		return respondForbidden(ctx)
	}

	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := s.buildCreateOrderCommand(orderID, newOrder, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// ListOrders handles GET /api/v1/orders - lists orders with optional
// status, channel, and date-range filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	if _, ok := actorFrom(ctx); !ok {
		return respondForbidden(ctx)
	}

	from, err := parseTimeParam(ctx.QueryParam("from"))
	if err != nil {
		return respondBadRequest(ctx, "invalid from parameter")
	}
	to, err := parseTimeParam(ctx.QueryParam("to"))
	if err != nil {
		return respondBadRequest(ctx, "invalid to parameter")
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParams()["status"],
		ctx.QueryParam("channel"),
		from,
		to,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	if _, ok := actorFrom(ctx); !ok {
		return respondForbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(response))
}

// StatusChange is the JSON request body for a status transition.
type StatusChange struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return respondForbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var change StatusChange
	if err = ctx.Bind(&change); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	// Unknown target statuses pass through so the handler reports the
	// invalid transition with both sides named.
	if capability := capabilityForStatus(change.Status); capability != auth.CapabilityUnknown {
		if !actor.Can(capability) {
			return respondForbidden(ctx)
		}
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, change.Status, actor.ID(), change.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelNote is the JSON request body for order cancellation.
type CancelNote struct {
	Note string `json:"note"`
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok || !actor.Can(auth.CancelOrder) {
		return respondForbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var cancel CancelNote
	if err = ctx.Bind(&cancel); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor.ID(), cancel.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewPayment is the JSON request body for payment registration. The amount
// is never part of the request; the order total is settled in full.
type NewPayment struct {
	OrderID        string   `json:"order_id"`
	Method         string   `json:"method"`
	ReceivedAmount *float64 `json:"received_amount"`
}

// RegisterPayment handles POST /api/v1/payments - settles an order.
func (s *Server) RegisterPayment(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok || !actor.Can(auth.RegisterPayment) {
		return respondForbidden(ctx)
	}

	var newPayment NewPayment
	if err := ctx.Bind(&newPayment); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(newPayment.OrderID)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	method, err := payment.MethodFromString(newPayment.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterPaymentCommand(orderID, method, moneyPtr(newPayment.ReceivedAmount), actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.registerPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// NewOrderWithPayment is the JSON request body for the combined checkout
// used by takeout counters: order and payment in one transaction.
type NewOrderWithPayment struct {
	NewOrder
	Method         string   `json:"method"`
	ReceivedAmount *float64 `json:"received_amount"`
}

// CreateOrderWithPayment handles POST /api/v1/payments/with-order.
func (s *Server) CreateOrderWithPayment(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok || !actor.Can(auth.CreateOrder) || !actor.Can(auth.RegisterPayment) {
		return respondForbidden(ctx)
	}

	var checkout NewOrderWithPayment
	if err := ctx.Bind(&checkout); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	method, err := payment.MethodFromString(checkout.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	channel, err := order.ChannelFromString(checkout.Channel)
	if err != nil {
		return respondError(ctx, err)
	}

	lines, err := buildOrderLines(checkout.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderWithPaymentCommand(
		orderID,
		channel,
		checkout.TableRef,
		checkout.CustomerName,
		checkout.Notes,
		actor.ID(),
		lines,
		method,
		moneyPtr(checkout.ReceivedAmount),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetTicket handles GET /api/v1/tickets/:number - retrieves a receipt.
func (s *Server) GetTicket(ctx echo.Context) error {
	if _, ok := actorFrom(ctx); !ok {
		return respondForbidden(ctx)
	}

	ticket, err := payment.TicketNumberFromString(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetTicketQuery(ticket)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getTicketHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTicket(response))
}

// GetPrintableReceipt handles GET /api/v1/tickets/:number/receipt - renders
// the receipt as plain text for the cashbox printer.
func (s *Server) GetPrintableReceipt(ctx echo.Context) error {
	if _, ok := actorFrom(ctx); !ok {
		return respondForbidden(ctx)
	}

	ticket, err := payment.TicketNumberFromString(ctx.Param("number"))
	if err != nil {
		return respondError(ctx, err)
	}

	ticketQuery, err := queries.NewGetTicketQuery(ticket)
	if err != nil {
		return respondError(ctx, err)
	}

	ticketResponse, err := s.getTicketHandler.Handle(ctx.Request().Context(), ticketQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	orderQuery, err := queries.NewGetOrderQuery(ticketResponse.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	orderResponse, err := s.getOrderHandler.Handle(ctx.Request().Context(), orderQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.String(http.StatusOK, receipt.Render(ticketResponse, orderResponse))
}

// GetTicketByOrder handles GET /api/v1/orders/:id/ticket - retrieves the
// receipt of a settled order.
func (s *Server) GetTicketByOrder(ctx echo.Context) error {
	if _, ok := actorFrom(ctx); !ok {
		return respondForbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetTicketByOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getTicketHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTicket(response))
}

// GetKitchenQueue handles GET /api/v1/kitchen/queue - lists pending and
// preparing orders, oldest first.
func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	if _, ok := actorFrom(ctx); !ok {
		return respondForbidden(ctx)
	}

	entries, err := s.kitchenQueueHandler.Handle(ctx.Request().Context(), queries.NewGetKitchenQueueQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]KitchenOrder, len(entries))
	for i, entry := range entries {
		response[i] = toKitchenOrder(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReadyOrders handles GET /api/v1/waiter/ready - lists orders waiting to
// be handed over.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	if _, ok := actorFrom(ctx); !ok {
		return respondForbidden(ctx)
	}

	entries, err := s.readyOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetReadyOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ReadyOrder, len(entries))
	for i, entry := range entries {
		response[i] = toReadyOrder(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDailySummary handles GET /api/v1/cashbox/summary - aggregates one day
// of settled payments. The day parameter defaults to today.
func (s *Server) GetDailySummary(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok || !actor.Can(auth.ViewSummary) {
		return respondForbidden(ctx)
	}

	day := time.Now()
	if raw := ctx.QueryParam("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return respondBadRequest(ctx, "invalid day parameter, expected YYYY-MM-DD")
		}
		day = parsed
	}

	query, err := queries.NewGetDailySummaryQuery(day)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.dailySummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDailySummary(response))
}

func (s *Server) buildCreateOrderCommand(
	orderID kernel.UUID,
	newOrder NewOrder,
	actor auth.Actor,
) (commands.CreateOrderCommand, error) {
	channel, err := order.ChannelFromString(newOrder.Channel)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines, err := buildOrderLines(newOrder.Lines)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		orderID,
		channel,
		newOrder.TableRef,
		newOrder.CustomerName,
		newOrder.Notes,
		actor.ID(),
		lines,
	)
}

func buildOrderLines(requested []NewOrderLine) ([]commands.OrderLine, error) {
	lines := make([]commands.OrderLine, 0, len(requested))
	for _, line := range requested {
		menuItemID, err := kernel.UUIDFromString(line.MenuItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("menu_item_id", err)
		}

		orderLine, err := commands.NewOrderLine(menuItemID, line.Quantity, line.Note)
		if err != nil {
			return nil, err
		}

		lines = append(lines, orderLine)
	}
	return lines, nil
}

// capabilityForStatus maps a requested target status to the capability the
// actor needs to perform that move.
func capabilityForStatus(status string) auth.Capability {
	switch status {
	case order.Preparing.String():
		return auth.StartPreparing
	case order.Ready.String():
		return auth.MarkReady
	case order.Delivered.String():
		return auth.MarkDelivered
	case order.Cancelled.String():
		return auth.CancelOrder
	default:
		return auth.CapabilityUnknown
	}
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func moneyPtr(amount *float64) *kernel.Money {
	if amount == nil {
		return nil
	}
	money := kernel.NewMoneyFromFloat(*amount)
	return &money
}
