package order

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when an order is created without any
	// lines. An order always carries at least one item.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order must have at least one line")
)

// Order is the aggregate root of the order workflow. It tracks a customer's
// request from creation through preparation, hand-over, and settlement.
//
// Order maintains these invariants:
//   - total always equals the sum of its line subtotals; client-supplied
//     totals are ignored
//   - at least one line exists
//   - status only changes along the transition table, and every state
//     reached gets its timestamp stamped
//   - lines are immutable price snapshots taken at creation time
//
// Orders are never deleted. Cancellation is a terminal status, and the
// audit trail of every status change lives alongside the aggregate.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable, globally unique order number
	number Number

	// tableRef optionally names the table or seat for dine-in orders
	tableRef string

	// customerName optionally names the customer for pickup and delivery
	customerName string

	// channel is how the order will be fulfilled
	channel Channel

	// status is the current state in the order lifecycle
	status Status

	// total is the derived sum of line subtotals
	total kernel.Money

	// notes holds free-text remarks for the whole order
	notes string

	// createdBy references the actor who registered the order
	createdBy kernel.UUID

	// per-state timestamps; pendingAt is always set, the rest are stamped
	// when the corresponding state is reached
	pendingAt   time.Time
	preparingAt *time.Time
	readyAt     *time.Time
	deliveredAt *time.Time

	// lines are the immutable item entries of the order
	lines []Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in pending status together with its lines.
// The total is computed here as the sum of line subtotals; it is not a
// parameter on purpose. The creation time stamps pendingAt.
//
// Returns a validation error if the identifier, number, channel, or actor
// is invalid, if lines is empty, or if any line was not properly
// constructed.
func NewOrder(
	id kernel.UUID,
	number Number,
	channel Channel,
	tableRef string,
	customerName string,
	notes string,
	createdBy kernel.UUID,
	lines []Line,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		channel.Validate(),
		createdBy.Validate(),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		number:        number,
		tableRef:      tableRef,
		customerName:  customerName,
		channel:       channel,
		status:        Pending,
		notes:         notes,
		createdBy:     createdBy,
		pendingAt:     createdAt,
		lines:         append([]Line(nil), lines...),
		isConstructed: true,
	}
	o.total = sumSubtotals(o.lines)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// re-derived from the lines and must match; a mismatch means the stored
// graph violates the total invariant and is rejected.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	channel Channel,
	tableRef string,
	customerName string,
	notes string,
	createdBy kernel.UUID,
	status Status,
	total kernel.Money,
	pendingAt time.Time,
	preparingAt *time.Time,
	readyAt *time.Time,
	deliveredAt *time.Time,
	lines []Line,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		channel.Validate(),
		createdBy.Validate(),
		status.Validate(),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	derived := sumSubtotals(lines)
	if !derived.Equals(total) {
		return nil, errs.NewValueIsInvalidError("total does not equal the sum of line subtotals")
	}

	return &Order{
		id:            id,
		number:        number,
		tableRef:      tableRef,
		customerName:  customerName,
		channel:       channel,
		status:        status,
		total:         derived,
		notes:         notes,
		createdBy:     createdBy,
		pendingAt:     pendingAt,
		preparingAt:   preparingAt,
		readyAt:       readyAt,
		deliveredAt:   deliveredAt,
		lines:         append([]Line(nil), lines...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence to guarantee integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// TableRef returns the table or seat reference; empty when not dine-in.
func (o *Order) TableRef() string {
	return o.tableRef
}

// CustomerName returns the customer name; may be empty.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Channel returns how the order will be fulfilled.
func (o *Order) Channel() Channel {
	return o.channel
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of line subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Notes returns the free-text order remarks; may be empty.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedBy returns the actor who registered the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// PendingAt returns the creation timestamp.
func (o *Order) PendingAt() time.Time {
	return o.pendingAt
}

// PreparingAt returns when preparation started, nil if never reached.
func (o *Order) PreparingAt() *time.Time {
	return o.preparingAt
}

// ReadyAt returns when the order became ready, nil if never reached.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// DeliveredAt returns when the order was handed over, nil if never reached.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Lines returns a copy of the order's lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// ChangeStatus moves the order along the transition table and stamps the
// timestamp of the state entered at the given time. When the table ever
// allows a state to be skipped, the skipped state's timestamp is stamped
// with the same time so the per-state timeline stays gap-free.
//
// Returns an InvalidTransitionError reporting both statuses when the move
// is not allowed; the order is left untouched on failure.
//
// The payment precondition for Delivered is checked by the workflow layer,
// which has access to the payment ledger; ChangeStatus only enforces the
// transition table.
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamp(newStatus, at)
	return nil
}

// stamp records the timestamp for the state entered, filling skipped
// intermediate states with the same time.
func (o *Order) stamp(status Status, at time.Time) {
	switch status {
	case Preparing:
		o.preparingAt = &at
	case Ready:
		if o.preparingAt == nil {
			o.preparingAt = &at
		}
		o.readyAt = &at
	case Delivered:
		if o.preparingAt == nil {
			o.preparingAt = &at
		}
		if o.readyAt == nil {
			o.readyAt = &at
		}
		o.deliveredAt = &at
	case Pending, Cancelled, StatusUnknown:
		// pending is stamped at construction; cancellation keeps the
		// timeline of states actually reached
	}
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func sumSubtotals(lines []Line) kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
