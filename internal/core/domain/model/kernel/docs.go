// Package kernel provides the shared value objects of the food delivery domain.
//
// The package includes:
//   - UUID: identifier for customers and delivery agents
//   - Money: an exact decimal amount used for item prices and order totals
//
// Both types are immutable and safe for concurrent use.
package kernel
