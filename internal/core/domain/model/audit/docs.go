// Package audit provides the append-only audit trail of order status
// changes. Each Entry records who moved an order, from which status to
// which, and when. The creation entry has no previous status.
//
// Entries are immutable and never deleted; the trail is the authoritative
// history of an order's lifecycle.
package audit
