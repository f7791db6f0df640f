// Package order provides the domain entities and business logic for order
// management in the food-delivery platform. It implements the Order
// aggregate root with monetary invariants, lifecycle management, and state
// transitions.
//
// The package includes:
//   - Order: the aggregate root owning identity, items, totals, and lifecycle
//   - Status: a state machine enforcing valid delivery-status transitions
//   - PaymentMethod / PaymentStatus: the independent payment lifecycle
//   - Item, Address, ContactInfo: validated value objects
//
// Key business rules:
//   - totalAmount always equals subtotal + deliveryFee + tax + serviceFee +
//     tip - discount; totals are computed server-side, client totals are
//     advisory only
//   - cash-on-delivery orders start pending, pre-paid orders start confirmed
//   - customers may cancel only before preparation starts; staff transitions
//     follow the full transition table
//   - deliveredAt and cancelledAt are recorded exactly once
//   - feedback is allowed once, only on delivered orders
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
