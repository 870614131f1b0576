package payment

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"comanda/internal/pkg/errs"
)

// ticketPattern matches "T" + yymmdd + "-" + five digits.
var ticketPattern = regexp.MustCompile(`^T\d{6}-\d{5}$`)

// TicketNumber is the human-readable receipt number printed for a payment.
// The format is "T" followed by the payment date as yymmdd, a dash, and a
// five-digit suffix, e.g. "T260830-04173". Uniqueness is enforced by the
// ledger; callers retry on collision.
type TicketNumber struct {
	value string
}

// NewTicketNumber generates a candidate ticket number for the given payment
// time. The suffix is random, so collisions are possible and must be
// handled by the caller.
func NewTicketNumber(t time.Time) TicketNumber {
	return TicketNumber{
		value: fmt.Sprintf("T%s-%05d", t.Format("060102"), rand.IntN(100000)),
	}
}

// TicketNumberFromString parses and validates a stored ticket number.
func TicketNumberFromString(s string) (TicketNumber, error) {
	n := TicketNumber{value: s}
	if err := n.Validate(); err != nil {
		return TicketNumber{}, err
	}
	return n, nil
}

// String returns the ticket number text. Implements fmt.Stringer.
func (n TicketNumber) String() string {
	return n.value
}

// Validate checks the ticket number format.
func (n TicketNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("ticket_number")
	}
	if !ticketPattern.MatchString(n.value) {
		return errs.NewValueIsInvalidErrorWithCause("ticket_number",
			fmt.Errorf("%q does not match the ticket number format", n.value))
	}
	return nil
}

// IsEqual compares two ticket numbers by value.
func (n TicketNumber) IsEqual(other TicketNumber) bool {
	return n.value == other.value
}
