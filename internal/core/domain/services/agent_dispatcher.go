package services

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

// ErrAgentNotFound is returned when no available agent exists for order dispatch.
// This occurs when either no agents are provided or all of them are busy.
var ErrAgentNotFound = errors.New("agent not found")

// AgentDispatcher is a domain service responsible for finding and assigning a
// delivery agent to an order.
//
// Business rules:
//   - Orders must be valid before dispatch
//   - Agents must be constructed and available
//   - Agents are considered in the order given; the first available one wins
//
// Example usage:
//
//	dispatcher := AgentDispatcher{}
//	agent, err := dispatcher.Dispatch(o, agents)
//	if errors.Is(err, ErrAgentNotFound) {
//	    // every agent is busy
//	    return
//	}
type AgentDispatcher struct{}

// NewAgentDispatcher creates a new AgentDispatcher instance.
func NewAgentDispatcher() AgentDispatcher {
	return AgentDispatcher{}
}

// Dispatch finds the first available agent and makes it accept o.
//
// Returns:
//   - *user.DeliveryAgent: The agent now carrying the order
//   - error: ErrAgentNotFound if every agent is busy, or validation errors
func (d AgentDispatcher) Dispatch(o order.Order, agents []*user.DeliveryAgent) (*user.DeliveryAgent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}

		if !a.IsAvailable() {
			continue
		}

		// Another caller may take the agent between the check and the accept.
		if err := a.AcceptOrder(o); err != nil {
			if errors.Is(err, user.ErrAgentIsNotAvailable) {
				continue
			}
			return nil, err
		}

		return a, nil
	}

	return nil, ErrAgentNotFound
}
