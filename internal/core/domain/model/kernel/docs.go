// Package kernel provides shared value objects used across the order domain.
//
// The package includes:
//   - UUID: validated unique identifiers for entities and aggregates
//   - Money: fixed-point monetary amounts with an explicit rounding policy
//   - OrderNumber: the human-readable unique order identifier
//
// All kernel types are immutable value objects. Zero values of UUID and
// OrderNumber are invalid and fail Validate; the zero Money is a valid
// zero amount.
package kernel
