// Package order provides the domain entities and business logic of the
// restaurant order lifecycle. It implements the Order aggregate root with
// its lines, status state machine, and order-number value object.
//
// The package includes:
//   - Order: the aggregate root holding identity, lines, total, and the
//     per-state timestamp timeline
//   - Line: an immutable item entry with a price snapshot taken at
//     creation time
//   - Status: a state machine enforcing the pending -> preparing -> ready
//     -> delivered workflow with cancellation from any non-terminal state
//   - Channel: the fulfilment channel (dine-in, takeout, delivery)
//   - Number: the human-readable, globally unique order number
//
// Key business rules:
//   - an order's total always equals the sum of its line subtotals
//   - an order has at least one line
//   - unit prices are snapshots; catalog changes never alter past orders
//   - delivered and cancelled are terminal statuses
//   - every state reached gets a timestamp, stamped at transition time
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
