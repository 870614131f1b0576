package ports

import (
	"context"

	"comanda/internal/core/domain/model/audit"
	"comanda/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the audit trail.
// The trail is append-only: entries are never updated or deleted.
type AuditRepository interface {
	// Add persists a new audit trail entry.
	Add(ctx context.Context, entry *audit.Entry) error

	// ListByOrder retrieves all entries for an order, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)
}
