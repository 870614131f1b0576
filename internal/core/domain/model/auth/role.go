package auth

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Role is the job function of an actor. Roles are coarse; what an actor may
// do is expressed through capabilities, see Role.Can.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Cashier registers orders and payments at the counter.
	Cashier

	// Kitchen works the preparation queue.
	Kitchen

	// Waiter hands ready orders over to customers.
	Waiter

	// Admin can do everything, including viewing the cashbox summary.
	Admin
)

// Capability is a single permitted action. Handlers check capabilities, not
// roles, so permission changes live in one table.
type Capability int

const (
	// CapabilityUnknown represents an invalid or undefined capability.
	CapabilityUnknown Capability = iota

	// CreateOrder permits registering a new order.
	CreateOrder

	// RegisterPayment permits settling an order.
	RegisterPayment

	// StartPreparing permits moving an order from pending to preparing.
	StartPreparing

	// MarkReady permits moving an order from preparing to ready.
	MarkReady

	// MarkDelivered permits handing a ready order over.
	MarkDelivered

	// CancelOrder permits cancelling a non-terminal order.
	CancelOrder

	// ViewSummary permits reading the daily cashbox summary.
	ViewSummary
)

func roleStrings() map[Role]string {
	return map[Role]string{
		Cashier: "cashier",
		Kitchen: "kitchen",
		Waiter:  "waiter",
		Admin:   "admin",
	}
}

// capabilityTable is the single source of truth for what each role may do.
func capabilityTable() map[Role][]Capability {
	return map[Role][]Capability{
		Cashier: {CreateOrder, RegisterPayment, MarkDelivered, CancelOrder, ViewSummary},
		Kitchen: {StartPreparing, MarkReady},
		Waiter:  {CreateOrder, MarkDelivered},
		Admin: {
			CreateOrder, RegisterPayment, StartPreparing, MarkReady,
			MarkDelivered, CancelOrder, ViewSummary,
		},
	}
}

// RoleFromString parses the wire representation of a role.
// Only exact lowercase names are accepted.
func RoleFromString(s string) (Role, error) {
	for r, str := range roleStrings() {
		if str == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire name of the role, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate returns an error for values outside the defined roles.
func (r Role) Validate() error {
	if _, ok := roleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Can reports whether the role is granted the capability.
func (r Role) Can(c Capability) bool {
	for _, granted := range capabilityTable()[r] {
		if granted == c {
			return true
		}
	}
	return false
}
