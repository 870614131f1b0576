package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed transition table so orders follow the kitchen
// workflow and nothing else.
//
// State transitions:
//
//	pending ──> preparing ──> ready ──> delivered
//	   │            │           │
//	   └────────────┴───────────┴─────> cancelled
//
// delivered and cancelled are terminal: no transition leaves them.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status stamped at order creation.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is finished and waiting to be handed over.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	// Requires a registered payment; the workflow enforces this before
	// applying the transition.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal. Cancellation
	// is a business state, not a deletion: the order and its audit trail
	// remain.
	Cancelled
)

// statusStrings maps every Status, valid or not, to its wire name.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Preparing:     "preparing",
		Ready:         "ready",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// transitionTable returns the allowed moves per status. Statuses mapped to
// an empty list are terminal.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses the wire representation of a status. Only exact
// lowercase names are accepted; "Pending" or "READY" do not parse.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate returns an error for values outside the defined statuses.
func (s Status) Validate() error {
	if _, ok := transitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitionTable()[s]) == 0
}

// CanTransitionTo reports whether the transition table allows moving from
// s to target. Same-state no-ops are not in the table and return false.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition validates and performs the move from s to target.
//
// Returns:
//   - (target, nil) when the transition table allows the move
//   - (StatusUnknown, error) otherwise; the error always reports both the
//     current and the requested status
func (s Status) Transition(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return StatusUnknown, err
	}
	if target.Validate() != nil || !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
