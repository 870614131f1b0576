// Package payment provides the payment ledger entities: the immutable
// Payment record, the payment Method enum, and the TicketNumber receipt
// identifier.
//
// Key business rules:
//   - an order has at most one payment
//   - payments are immutable; corrections happen outside this system
//   - cash payments record the received amount and change, where change is
//     always received minus the order total
//   - non-cash payments settle exactly and never carry a received amount
package payment
