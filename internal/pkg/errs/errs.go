package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the roots of the application error taxonomy.
// Every typed error in this package unwraps to exactly one of them,
// so callers classify failures with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidOperation  = errors.New("operation is not allowed")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrConflict          = errors.New("conflict")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrDependencyFailure = errors.New("dependency failure")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
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

// ValueIsInvalidError indicates that a supplied value is malformed or
// violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
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

// ValueIsOutOfRangeError indicates a value outside its allowed bounds.
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

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
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

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
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

// InvalidTransitionError indicates a status-machine violation. It carries
// both the current and the rejected target state so the caller can reconcile.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError without a cause.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: from %s to %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidOperationError indicates an operation that is not allowed in the
// object's current state, e.g. rating an order that was never delivered.
type InvalidOperationError struct {
	Operation string
	Cause     error
}

// NewInvalidOperationError creates an InvalidOperationError without a cause.
func NewInvalidOperationError(operation string) *InvalidOperationError {
	return &InvalidOperationError{Operation: operation}
}

// NewInvalidOperationErrorWithCause creates an InvalidOperationError wrapping an underlying cause.
func NewInvalidOperationErrorWithCause(operation string, cause error) *InvalidOperationError {
	return &InvalidOperationError{Operation: operation, Cause: cause}
}

func (e *InvalidOperationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidOperation, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidOperation, e.Operation))
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}

// PermissionDeniedError indicates that the acting party may not perform
// the operation on the given resource.
type PermissionDeniedError struct {
	Operation string
	Cause     error
}

// NewPermissionDeniedError creates a PermissionDeniedError without a cause.
func NewPermissionDeniedError(operation string) *PermissionDeniedError {
	return &PermissionDeniedError{Operation: operation}
}

// NewPermissionDeniedErrorWithCause creates a PermissionDeniedError wrapping an underlying cause.
func NewPermissionDeniedErrorWithCause(operation string, cause error) *PermissionDeniedError {
	return &PermissionDeniedError{Operation: operation, Cause: cause}
}

func (e *PermissionDeniedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPermissionDenied, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Operation))
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// ConflictError indicates a concurrent-update collision: either a
// unique-constraint violation or a conditional write that found the
// stored state changed since it was read.
type ConflictError struct {
	ParamName string
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string) *ConflictError {
	return &ConflictError{ParamName: paramName}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConflict, e.ParamName))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ResourceExhaustedError indicates that a bounded retry budget ran out.
type ResourceExhaustedError struct {
	Operation string
	Attempts  int
	Cause     error
}

// NewResourceExhaustedError creates a ResourceExhaustedError without a cause.
func NewResourceExhaustedError(operation string, attempts int) *ResourceExhaustedError {
	return &ResourceExhaustedError{Operation: operation, Attempts: attempts}
}

// NewResourceExhaustedErrorWithCause creates a ResourceExhaustedError wrapping an underlying cause.
func NewResourceExhaustedErrorWithCause(operation string, attempts int, cause error) *ResourceExhaustedError {
	return &ResourceExhaustedError{Operation: operation, Attempts: attempts, Cause: cause}
}

func (e *ResourceExhaustedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s after %d attempts (cause: %s)",
			ErrResourceExhausted, e.Operation, e.Attempts, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s after %d attempts", ErrResourceExhausted, e.Operation, e.Attempts))
}

func (e *ResourceExhaustedError) Unwrap() error {
	return ErrResourceExhausted
}

// DependencyFailureError indicates that an external collaborator
// (notifier, authorizer, catalog) was unavailable or misbehaved.
type DependencyFailureError struct {
	Dependency string
	Cause      error
}

// NewDependencyFailureError creates a DependencyFailureError without a cause.
func NewDependencyFailureError(dependency string) *DependencyFailureError {
	return &DependencyFailureError{Dependency: dependency}
}

// NewDependencyFailureErrorWithCause creates a DependencyFailureError wrapping an underlying cause.
func NewDependencyFailureErrorWithCause(dependency string, cause error) *DependencyFailureError {
	return &DependencyFailureError{Dependency: dependency, Cause: cause}
}

func (e *DependencyFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrDependencyFailure, e.Dependency, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrDependencyFailure, e.Dependency))
}

func (e *DependencyFailureError) Unwrap() error {
	return ErrDependencyFailure
}
