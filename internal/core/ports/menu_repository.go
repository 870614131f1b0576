package ports

import (
	"context"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/menu"
)

// MenuRepository defines the read-only contract for the menu catalog view
// that the order workflow consumes. Catalog management lives outside this
// system.
type MenuRepository interface {
	// Get retrieves a single menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetByIDs retrieves the menu items for the given identifiers.
	// Returns an ObjectNotFoundError when any identifier is unknown, so
	// order creation fails fast instead of pricing a partial catalog.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Item, error)
}
