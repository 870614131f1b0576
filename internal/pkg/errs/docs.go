// Package errs provides standardized error types for the order workflow.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Generic validation errors cover malformed input:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its range
//   - ObjectNotFoundError: an object cannot be found
//
// Workflow errors cover the business-level failure modes of the order
// lifecycle:
//   - AlreadyPaidError: a second payment was attempted for an order
//   - InvalidTransitionError: a disallowed status jump, reporting both
//     the current and the requested status
//   - PaymentRequiredError: delivery attempted on an unpaid order
//   - ItemUnavailableError: a menu item is disabled for ordering
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrAlreadyPaid) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for error-chain support
//
// Transport adapters map the sentinels to stable wire codes; callers never
// see stack traces or infrastructure details through these types.
package errs
