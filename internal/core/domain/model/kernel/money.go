package kernel

import (
	"fmt"

	"comanda/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts. It wraps an exact decimal
// so that line subtotals, order totals, and cash change never accumulate
// floating-point drift. Amounts are rendered with two fraction digits.
//
// The zero value is a valid zero amount. Money is immutable; arithmetic
// methods return new values.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses an amount such as "18.00" or "44.5".
// Returns a validation error for malformed input.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromFloat converts a float64 amount, rounding to two fraction
// digits. Intended for request payloads; domain code should prefer exact
// construction.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f).Round(2)}
}

// MoneyFromDecimal wraps a raw decimal, typically scanned from the
// database.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns m multiplied by a whole quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equals reports whether two amounts are numerically equal
// (44.0 equals 44.00).
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence and
// aggregation.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two fraction digits, e.g. "44.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// ValidateNonNegative returns a validation error when the amount is below
// zero. Prices and totals in the order workflow are never negative.
func (m Money) ValidateNonNegative(paramName string) error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is negative", m.String()))
	}
	return nil
}
