// Package order provides the Order value and its Status lifecycle.
//
// The package includes:
//   - Order: an immutable snapshot of a placed purchase
//   - Status: the fixed lifecycle ORDER_PLACED -> PREPARING -> DISPATCHED -> DELIVERED
//   - Proposal: the computed, not yet numbered, contents of an order
//
// Key business rules:
//   - Orders must contain at least one item, a positive total and a positive ETA
//   - The item list is defensively copied on construction and on every read
//   - Status and ETA changes produce new Order values; nothing is mutated in place
//   - The natural next status of DELIVERED is DELIVERED
package order
