// Package order provides domain entities and business logic for order
// management in the eshop system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - LineItem: A value object pairing a product reference with a quantity and a
//     unit-price snapshot taken at order creation time
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, an owner, a non-empty
//     address, and at least one line item with positive quantity
//   - Order status follows a defined workflow: RESERVED is the only
//     non-terminal state, and VALIDATED, CANCELED, and REJECTED are terminal
//   - A terminal order is immutable; any further transition attempt fails
//   - Line totals are computed from the snapshotted unit prices, never from
//     the live catalog price
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
