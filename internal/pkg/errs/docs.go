// Package errs provides standardized error types for the food delivery tracker.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//   - Validation errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
//     raised on malformed construction input. All of them match ErrValidation.
//   - State errors (InvalidStateError) raised when an operation is attempted in a state
//     that forbids it. They match ErrInvalidState.
//
// ObjectNotFoundError reports lookups that found nothing.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
package errs
