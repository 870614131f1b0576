package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"comanda/internal/pkg/errs"
)

// numberPattern matches the order number wire format: a "P" prefix, the
// creation date as yymmdd, and a four-digit random suffix.
var numberPattern = regexp.MustCompile(`^P\d{6}-\d{4}$`)

// Number is the human-readable order number printed on tickets and shouted
// across the counter, e.g. "P260830-0417". It is globally unique: the
// random suffix keeps numbers unguessable within a day, and callers must
// retry generation on collision (the store enforces uniqueness as the
// backstop).
type Number struct {
	value string
}

// NewNumber generates an order number for the given creation time.
// Uniqueness is probabilistic; callers check the store and regenerate on
// collision.
func NewNumber(t time.Time) Number {
	return Number{
		value: fmt.Sprintf("P%s-%04d", t.Format("060102"), rand.IntN(10000)),
	}
}

// NumberFromString validates and wraps an order number coming from
// persistence or a request.
func NumberFromString(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order_number",
			fmt.Errorf("%q does not match the PYYMMDD-NNNN format", s))
	}
	return Number{value: s}, nil
}

// String returns the wire form of the number.
func (n Number) String() string {
	return n.value
}

// Validate returns an error for a zero-value Number.
func (n Number) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	return nil
}

// IsEqual reports whether two numbers are the same.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}
