package services

import (
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/menu"
	"comanda/internal/pkg/errs"
)

// PriceSnapshot is the priced view of one requested item, copied onto an
// order line. The snapshot fixes the unit price at quote time so later
// catalog changes never alter the order.
type PriceSnapshot struct {
	ItemID    kernel.UUID
	ItemName  string
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// Pricer is a domain service that turns item requests into price snapshots
// against a fixed view of the menu catalog.
//
// Business rules:
//   - only existing items can be quoted
//   - only available items can be quoted
//   - the subtotal is unit price times quantity, computed here
//
// A Pricer is built over the catalog slice fetched for one operation; it
// never reads storage itself, which keeps it pure and trivially testable.
type Pricer struct {
	items map[kernel.UUID]*menu.Item
}

// NewPricer creates a Pricer over the given catalog view. Items that fail
// construction validation are rejected.
func NewPricer(items []*menu.Item) (Pricer, error) {
	byID := make(map[kernel.UUID]*menu.Item, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Pricer{}, err
		}
		byID[item.ID()] = item
	}
	return Pricer{items: byID}, nil
}

// Quote prices one requested item.
//
// Returns:
//   - an ObjectNotFoundError when the item is not in the catalog view
//   - an ItemUnavailableError when the item exists but cannot be ordered
//   - a validation error when the quantity is below 1
func (p Pricer) Quote(itemID kernel.UUID, quantity int) (PriceSnapshot, error) {
	if quantity < 1 {
		return PriceSnapshot{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}

	item, ok := p.items[itemID]
	if !ok {
		return PriceSnapshot{}, errs.NewObjectNotFoundError("menu_item_id", itemID)
	}

	if !item.IsAvailable() {
		return PriceSnapshot{}, errs.NewItemUnavailableError(item.Name())
	}

	return PriceSnapshot{
		ItemID:    item.ID(),
		ItemName:  item.Name(),
		UnitPrice: item.Price(),
		Subtotal:  item.Price().MulInt(quantity),
	}, nil
}
