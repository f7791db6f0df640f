// Package errs provides standardized error types for the order-management core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the full error taxonomy of the order domain:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed or missing input, attributed to a field
//   - ObjectNotFoundError: a requested object does not exist
//   - InvalidTransitionError: an order status-machine violation
//   - InvalidOperationError: an operation not allowed in the current state
//   - PermissionDeniedError: ownership or role check failure
//   - ConflictError: concurrent update or unique-constraint collision
//   - ResourceExhaustedError: a bounded retry budget ran out
//   - DependencyFailureError: an external collaborator was unavailable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// This standardized approach keeps error classification uniform across the
// domain, application, and adapter layers.
package errs
