package menu

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Category classifies a menu item on the card.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryStarter is an appetizer.
	CategoryStarter

	// CategoryMainCourse is a main dish.
	CategoryMainCourse

	// CategoryDrink is a beverage.
	CategoryDrink

	// CategoryDessert is a dessert.
	CategoryDessert

	// CategoryExtra is a side or add-on.
	CategoryExtra
)

func categoryStrings() map[Category]string {
	return map[Category]string{
		CategoryStarter:    "starter",
		CategoryMainCourse: "main_course",
		CategoryDrink:      "drink",
		CategoryDessert:    "dessert",
		CategoryExtra:      "extra",
	}
}

// CategoryFromString parses the wire representation of a category.
// Only exact lowercase names are accepted.
func CategoryFromString(s string) (Category, error) {
	for c, str := range categoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// String returns the wire name of the category, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (c Category) String() string {
	if s, ok := categoryStrings()[c]; ok {
		return s
	}
	return "unknown"
}

// Validate returns an error for values outside the defined categories.
func (c Category) Validate() error {
	if _, ok := categoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}
