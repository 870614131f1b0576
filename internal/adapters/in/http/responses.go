package http

import (
	"time"

	"comanda/internal/core/application/usecases/queries"
)

// Line is the JSON shape of one order line.
type Line struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Subtotal   string `json:"subtotal"`
	Note       string `json:"note,omitempty"`
}

// Order is the JSON shape of the full order read model. Monetary amounts are
// rendered as fixed two-decimal strings.
type Order struct {
	ID           string       `json:"id"`
	Number       string       `json:"number"`
	Channel      string       `json:"channel"`
	Status       string       `json:"status"`
	TableRef     string       `json:"table_ref,omitempty"`
	CustomerName string       `json:"customer_name,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Total        string       `json:"total"`
	PendingAt    time.Time    `json:"pending_at"`
	PreparingAt  *time.Time   `json:"preparing_at,omitempty"`
	ReadyAt      *time.Time   `json:"ready_at,omitempty"`
	DeliveredAt  *time.Time   `json:"delivered_at,omitempty"`
	Lines        []Line       `json:"lines"`
	History      []AuditEvent `json:"history,omitempty"`
}

// AuditEvent is the JSON shape of one recorded status change. From is null
// for the creation event.
type AuditEvent struct {
	From    *string   `json:"from"`
	To      string    `json:"to"`
	ActorID string    `json:"actor_id"`
	Note    string    `json:"note,omitempty"`
	At      time.Time `json:"at"`
}

// KitchenOrder is the JSON shape of one kitchen queue entry.
type KitchenOrder struct {
	ID             string    `json:"id"`
	Number         string    `json:"number"`
	Channel        string    `json:"channel"`
	Status         string    `json:"status"`
	TableRef       string    `json:"table_ref,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	PendingAt      time.Time `json:"pending_at"`
	WaitingMinutes int       `json:"waiting_minutes"`
	Lines          []Line    `json:"lines"`
}

// ReadyOrder is the JSON shape of one hand-over queue entry.
type ReadyOrder struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Channel      string    `json:"channel"`
	TableRef     string    `json:"table_ref,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	Total        string    `json:"total"`
	ReadyAt      time.Time `json:"ready_at"`
	Lines        []Line    `json:"lines"`
}

// Ticket is the JSON shape of a settled payment receipt.
type Ticket struct {
	Ticket         string    `json:"ticket"`
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	Channel        string    `json:"channel"`
	Method         string    `json:"method"`
	Amount         string    `json:"amount"`
	ReceivedAmount string    `json:"received_amount"`
	ChangeAmount   string    `json:"change_amount"`
	PaidBy         string    `json:"paid_by"`
	PaidAt         time.Time `json:"paid_at"`
}

// SummaryBucket is one count-and-amount aggregation bucket.
type SummaryBucket struct {
	Count  int    `json:"count"`
	Amount string `json:"amount"`
}

// DailySummary is the JSON shape of one day of cashbox activity.
type DailySummary struct {
	Day        string                   `json:"day"`
	OrdersPaid int                      `json:"orders_paid"`
	Total      string                   `json:"total"`
	ByMethod   map[string]SummaryBucket `json:"by_method"`
	ByChannel  map[string]SummaryBucket `json:"by_channel"`
}

// Created is the JSON payload returned when a new resource is minted.
type Created struct {
	ID string `json:"id"`
}

func toLines(lines []queries.OrderLineResponse) []Line {
	response := make([]Line, len(lines))
	for i, line := range lines {
		response[i] = Line{
			ID:         line.ID.String(),
			MenuItemID: line.MenuItemID.String(),
			ItemName:   line.ItemName,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.String(),
			Subtotal:   line.Subtotal.String(),
			Note:       line.Note,
		}
	}
	return response
}

func toOrder(order queries.GetOrderQueryResponse) Order {
	return Order{
		ID:           order.ID.String(),
		Number:       order.Number,
		Channel:      order.Channel,
		Status:       order.Status,
		TableRef:     order.TableRef,
		CustomerName: order.CustomerName,
		Notes:        order.Notes,
		Total:        order.Total.String(),
		PendingAt:    order.PendingAt,
		PreparingAt:  order.PreparingAt,
		ReadyAt:      order.ReadyAt,
		DeliveredAt:  order.DeliveredAt,
		Lines:        toLines(order.Lines),
		History:      toHistory(order.History),
	}
}

func toHistory(history []queries.AuditEntryResponse) []AuditEvent {
	if len(history) == 0 {
		return nil
	}
	response := make([]AuditEvent, len(history))
	for i, entry := range history {
		response[i] = AuditEvent{
			From:    entry.From,
			To:      entry.To,
			ActorID: entry.ActorID.String(),
			Note:    entry.Note,
			At:      entry.At,
		}
	}
	return response
}

func toKitchenOrder(entry queries.GetKitchenQueueQueryResponse) KitchenOrder {
	return KitchenOrder{
		ID:             entry.ID.String(),
		Number:         entry.Number,
		Channel:        entry.Channel,
		Status:         entry.Status,
		TableRef:       entry.TableRef,
		Notes:          entry.Notes,
		PendingAt:      entry.PendingAt,
		WaitingMinutes: entry.WaitingMinutes,
		Lines:          toLines(entry.Lines),
	}
}

func toReadyOrder(entry queries.GetReadyOrdersQueryResponse) ReadyOrder {
	return ReadyOrder{
		ID:           entry.ID.String(),
		Number:       entry.Number,
		Channel:      entry.Channel,
		TableRef:     entry.TableRef,
		CustomerName: entry.CustomerName,
		Total:        entry.Total.String(),
		ReadyAt:      entry.ReadyAt,
		Lines:        toLines(entry.Lines),
	}
}

func toTicket(ticket queries.GetTicketQueryResponse) Ticket {
	return Ticket{
		Ticket:         ticket.Ticket,
		OrderID:        ticket.OrderID.String(),
		OrderNumber:    ticket.OrderNumber,
		Channel:        ticket.Channel,
		Method:         ticket.Method,
		Amount:         ticket.Amount.String(),
		ReceivedAmount: ticket.Received.String(),
		ChangeAmount:   ticket.Change.String(),
		PaidBy:         ticket.PaidBy.String(),
		PaidAt:         ticket.PaidAt,
	}
}

func toDailySummary(summary queries.GetDailySummaryQueryResponse) DailySummary {
	toBuckets := func(buckets map[string]queries.SummaryBucket) map[string]SummaryBucket {
		response := make(map[string]SummaryBucket, len(buckets))
		for key, bucket := range buckets {
			response[key] = SummaryBucket{
				Count:  bucket.Count,
				Amount: bucket.Amount.String(),
			}
		}
		return response
	}

	return DailySummary{
		Day:        summary.Day.Format("2006-01-02"),
		OrdersPaid: summary.OrdersPaid,
		Total:      summary.Total.String(),
		ByMethod:   toBuckets(summary.ByMethod),
		ByChannel:  toBuckets(summary.ByChannel),
	}
}
