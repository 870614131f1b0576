// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the order workflow. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - Pricer: a domain service quoting menu items into price snapshots for
//     order lines
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
