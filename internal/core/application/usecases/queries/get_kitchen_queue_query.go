package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
)

// GetKitchenQueueQuery retrieves the orders the kitchen has to work on:
// everything pending or preparing, oldest first, with how long each order
// has been waiting.
//
// Example:
//
//	query := NewGetKitchenQueueQuery()
//	handler := NewGetKitchenQueueQueryHandler(db)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get kitchen queue: %w", err)
//	}
//
//	for _, entry := range queue {
//	    fmt.Printf("%s waiting %d min\n", entry.Number, entry.WaitingMinutes)
//	}
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a query to retrieve the kitchen queue.
// This is a parameterless query; the queue is always pending and preparing
// orders.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKitchenQueueQueryIsNotConstructed if validation fails.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// GetKitchenQueueQueryResponse represents one order on the kitchen display.
type GetKitchenQueueQueryResponse struct {
	ID             kernel.UUID
	Number         string
	Channel        string
	Status         string
	TableRef       string
	Notes          string
	PendingAt      time.Time
	WaitingMinutes int
	Lines          []OrderLineResponse
}
