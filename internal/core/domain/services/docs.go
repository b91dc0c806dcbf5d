// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the delivery system. It implements
// workflows that don't naturally belong to a single entity.
//
// The package includes:
//   - AgentDispatcher: A domain service for finding and assigning delivery agents to orders
package services
