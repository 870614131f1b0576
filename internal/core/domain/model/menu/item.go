// Package menu models the read-only view of the menu catalog that the
// order workflow consumes. Catalog management itself lives outside the
// core; the workflow only needs item existence, price, and availability
// to snapshot prices at order-creation time.
package menu

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a menu catalog entry. The order workflow treats it as immutable
// input: an Item's price is copied onto order lines as a snapshot, so later
// catalog changes never alter historical orders.
type Item struct {
	id          kernel.UUID
	name        string
	description string
	category    Category
	price       kernel.Money
	available   bool
	prepMinutes int

	isConstructed bool
}

// NewItem creates a validated menu item. Name must be non-empty, price
// non-negative, and preparation minutes non-negative.
func NewItem(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	price kernel.Money,
	available bool,
	prepMinutes int,
) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
		category.Validate(),
		price.ValidateNonNegative("price"),
		validatePrepMinutes(prepMinutes),
	); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		name:          name,
		description:   description,
		category:      category,
		price:         price,
		available:     available,
		prepMinutes:   prepMinutes,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an item from persistence. It applies the same
// validation as NewItem.
func RestoreItem(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	price kernel.Money,
	available bool,
	prepMinutes int,
) (*Item, error) {
	return NewItem(id, name, description, category, price, available, prepMinutes)
}

// Validate ensures the Item was built through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's card description.
func (i *Item) Description() string {
	return i.description
}

// Category returns the item's card category.
func (i *Item) Category() Category {
	return i.category
}

// Price returns the item's current catalog price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// IsAvailable reports whether the item can currently be ordered.
func (i *Item) IsAvailable() bool {
	return i.available
}

// PrepMinutes returns the estimated preparation time in minutes.
func (i *Item) PrepMinutes() int {
	return i.prepMinutes
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}

func validatePrepMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidError("prep_minutes")
	}
	return nil
}
