package audit

import (
	"errors"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through the NewEntry or RestoreEntry factory.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable record in an order's audit trail. An entry is
// written for every status change, including the initial creation, where
// the previous status is absent.
//
// Entries are append-only. They are never updated or deleted, so the trail
// reconstructs the full history of who moved an order and when.
type Entry struct {
	// id is the unique identifier for the entry
	id kernel.UUID

	// orderID references the order this entry belongs to
	orderID kernel.UUID

	// from is the status before the change, nil for the creation entry
	from *order.Status

	// to is the status after the change
	to order.Status

	// actorID references the actor who performed the change
	actorID kernel.UUID

	// note is a free-text remark, filled with a default when empty
	note string

	// at is when the change happened
	at time.Time

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewEntry creates an audit trail entry for a status change. Pass a nil
// from for the creation entry. An empty note gets a default describing the
// change so the trail always reads as a sentence.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	from *order.Status,
	to order.Status,
	actorID kernel.UUID,
	note string,
	at time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		to.Validate(),
		actorID.Validate(),
		validateFrom(from),
	); err != nil {
		return nil, err
	}

	if note == "" {
		note = defaultNote(from, to)
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		from:          from,
		to:            to,
		actorID:       actorID,
		note:          note,
		at:            at,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	from *order.Status,
	to order.Status,
	actorID kernel.UUID,
	note string,
	at time.Time,
) (*Entry, error) {
	return NewEntry(id, orderID, from, to, actorID, note, at)
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// IsEqual compares two entries by their unique identifiers.
func (e *Entry) IsEqual(other *Entry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order this entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// From returns the status before the change, nil for the creation entry.
func (e *Entry) From() *order.Status {
	return e.from
}

// To returns the status after the change.
func (e *Entry) To() order.Status {
	return e.to
}

// ActorID returns the actor who performed the change.
func (e *Entry) ActorID() kernel.UUID {
	return e.actorID
}

// Note returns the free-text remark.
func (e *Entry) Note() string {
	return e.note
}

// At returns when the change happened.
func (e *Entry) At() time.Time {
	return e.at
}

func validateFrom(from *order.Status) error {
	if from == nil {
		return nil
	}
	return from.Validate()
}

func defaultNote(from *order.Status, to order.Status) string {
	if from == nil {
		return "order created"
	}
	return "status changed from " + from.String() + " to " + to.String()
}
