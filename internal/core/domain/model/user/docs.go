// Package user provides the two kinds of people in the delivery domain.
//
// The package includes:
//   - User: the shared capability (ID, name, phone, details)
//   - Customer: adds an address and composes order proposals
//   - DeliveryAgent: adds a vehicle number and an availability flag
//
// Customer and DeliveryAgent are the only implementations of User.
//
// An agent is either available or busy:
//
//	Available ──AcceptOrder──> Busy ──Deliver (order DISPATCHED)──> Available
package user
