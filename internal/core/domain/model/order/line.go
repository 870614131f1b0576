package order

import (
	"errors"
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one item-quantity-price entry of an order. The unit price is a
// snapshot taken from the menu catalog at order-creation time and is never
// recomputed: catalog price changes must not retroactively alter historical
// orders. The subtotal is derived in the factory as quantity × unit price.
//
// Lines are immutable after creation; changing an order's lines means
// re-creating the order.
type Line struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	itemName   string
	quantity   int
	unitPrice  kernel.Money
	subtotal   kernel.Money
	note       string

	isConstructed bool
}

// NewLine creates a validated order line. Quantity must be at least 1 and
// the unit price non-negative; the subtotal is computed here, never
// supplied by the caller.
func NewLine(
	id kernel.UUID,
	menuItemID kernel.UUID,
	itemName string,
	quantity int,
	unitPrice kernel.Money,
	note string,
) (Line, error) {
	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		validateItemName(itemName),
		validateQuantity(quantity),
		unitPrice.ValidateNonNegative("unit_price"),
	); err != nil {
		return Line{}, err
	}

	return Line{
		id:            id,
		menuItemID:    menuItemID,
		itemName:      itemName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      unitPrice.MulInt(quantity),
		note:          note,
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a line from persistence, re-deriving the
// subtotal so the invariant subtotal == quantity × unit price cannot be
// violated by stored data.
func RestoreLine(
	id kernel.UUID,
	menuItemID kernel.UUID,
	itemName string,
	quantity int,
	unitPrice kernel.Money,
	note string,
) (Line, error) {
	return NewLine(id, menuItemID, itemName, quantity, unitPrice, note)
}

// Validate ensures the Line was built through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the referenced menu item's identifier.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// ItemName returns the item name captured with the price snapshot, used
// for kitchen displays and receipts.
func (l Line) ItemName() string {
	return l.itemName
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at order creation.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns quantity × unit price.
func (l Line) Subtotal() kernel.Money {
	return l.subtotal
}

// Note returns the per-line preparation note ("no onions").
func (l Line) Note() string {
	return l.note
}

func validateItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item_name")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}
	return nil
}
