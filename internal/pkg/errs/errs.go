package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the business-level error taxonomy. Callers classify
// failures with errors.Is against these values; the structured types below
// carry the details.
var (
	// ErrObjectNotFound indicates a referenced object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a value is outside its allowed range.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrAlreadyPaid indicates a payment already exists for the order.
	ErrAlreadyPaid = errors.New("order is already paid")

	// ErrInvalidTransition indicates a disallowed order status transition.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrPaymentRequired indicates an operation that needs a registered
	// payment was attempted on an unpaid order.
	ErrPaymentRequired = errors.New("payment is required")

	// ErrItemUnavailable indicates a menu item is disabled for ordering.
	ErrItemUnavailable = errors.New("menu item is unavailable")
)

// sanitize strips newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError is returned when an object cannot be found by its
// identifier. ParamName names the lookup parameter, ID holds the value used.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls outside
// its allowed [Min, Max] range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// AlreadyPaidError is returned when a second payment is attempted for an
// order that already has one. The payments table enforces this with a
// unique constraint on the order reference, so concurrent registrations
// surface as this error rather than a second row.
type AlreadyPaidError struct {
	OrderID string
	Cause   error
}

// NewAlreadyPaidError creates an AlreadyPaidError without a cause.
func NewAlreadyPaidError(orderID string) *AlreadyPaidError {
	return &AlreadyPaidError{OrderID: orderID}
}

// NewAlreadyPaidErrorWithCause creates an AlreadyPaidError wrapping the
// underlying cause, typically a unique constraint violation.
func NewAlreadyPaidErrorWithCause(orderID string, cause error) *AlreadyPaidError {
	return &AlreadyPaidError{OrderID: orderID, Cause: cause}
}

func (e *AlreadyPaidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrAlreadyPaid, e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrAlreadyPaid, e.OrderID))
}

func (e *AlreadyPaidError) Unwrap() error {
	return ErrAlreadyPaid
}

// InvalidTransitionError is returned when an order status transition is not
// in the transition table. It always reports both the current and the
// requested status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current and requested statuses.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: from %q to %q", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PaymentRequiredError is returned when an order is marked delivered while
// no payment is registered for it.
type PaymentRequiredError struct {
	OrderID string
}

// NewPaymentRequiredError creates a PaymentRequiredError for the given order.
func NewPaymentRequiredError(orderID string) *PaymentRequiredError {
	return &PaymentRequiredError{OrderID: orderID}
}

func (e *PaymentRequiredError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s has no registered payment", ErrPaymentRequired, e.OrderID))
}

func (e *PaymentRequiredError) Unwrap() error {
	return ErrPaymentRequired
}

// ItemUnavailableError is returned when an order references a menu item
// that exists but is currently disabled for ordering.
type ItemUnavailableError struct {
	ItemName string
}

// NewItemUnavailableError creates an ItemUnavailableError for the given item.
func NewItemUnavailableError(itemName string) *ItemUnavailableError {
	return &ItemUnavailableError{ItemName: itemName}
}

func (e *ItemUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrItemUnavailable, e.ItemName))
}

func (e *ItemUnavailableError) Unwrap() error {
	return ErrItemUnavailable
}
