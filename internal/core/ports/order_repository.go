// Package ports defines repository interfaces for the order workflow.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their lines.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its lines.
	// The order must be valid and not already exist in the repository.
	// Fails when the order number is already taken; callers regenerate
	// the number and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order including its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by its identifier while
	// holding a row lock for the duration of the transaction. Used by
	// status changes and payment registration to serialize concurrent
	// writes to the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its human-readable
	// order number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// ExistsNumber reports whether an order with the given number already
	// exists. Used by the number generation retry loop.
	ExistsNumber(ctx context.Context, number order.Number) (bool, error)
}
