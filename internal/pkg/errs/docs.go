// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure kind surfaced to callers:
//   - ObjectNotFoundError: a referenced order, user, product or zone does not exist
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - StateConflictError: the state a transition requires no longer holds
//   - AuthorizationDeniedError: the acting user lacks the role or ownership an operation needs
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrStateConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel so errors.Is classifies the failure
//
// Adapters classify failures with errors.Is against the sentinels and never
// inspect messages.
package errs
