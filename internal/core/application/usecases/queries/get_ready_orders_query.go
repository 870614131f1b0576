package queries

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/guard"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

// GetReadyOrdersQuery retrieves the orders finished by the kitchen and
// waiting to be handed over, oldest first.
//
// Example:
//
//	query := NewGetReadyOrdersQuery()
//	handler := NewGetReadyOrdersQueryHandler(db)
//
//	ready, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get ready orders: %w", err)
//	}
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyOrdersQuery creates a query to retrieve ready orders.
// This is a parameterless query; it always returns orders in ready status.
func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReadyOrdersQueryIsNotConstructed if validation fails.
func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

// GetReadyOrdersQueryResponse represents one order awaiting hand-over.
type GetReadyOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	Channel      string
	TableRef     string
	CustomerName string
	Total        kernel.Money
	ReadyAt      time.Time
	Lines        []OrderLineResponse
}
