package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Natural progression:
//
//	Placed ──> Preparing ──> Dispatched ──> Delivered ──┐
//	                                            ^       │
//	                                            └───────┘
//
// The manager may also set any status directly; only Next follows the table above.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota
	// Placed is the status of a freshly created order.
	Placed
	// Preparing means an agent has been assigned and the kitchen is working on it.
	Preparing
	// Dispatched means the order has left with the agent.
	Dispatched
	// Delivered is terminal.
	Delivered
)

type statusInfo struct {
	name    string
	message string
}

func getStatusInfo() map[Status]statusInfo {
	//nolint:exhaustive // Unknown has no display information
	return map[Status]statusInfo{
		Placed:     {name: "ORDER_PLACED", message: "Your order has been received"},
		Preparing:  {name: "PREPARING", message: "Your order is being prepared"},
		Dispatched: {name: "DISPATCHED", message: "Your order is on the way"},
		Delivered:  {name: "DELIVERED", message: "Your order has been delivered"},
	}
}

// AllStatuses returns the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Placed, Preparing, Dispatched, Delivered}
}

// Validate checks that s is one of the four lifecycle values.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status name, or "UNKNOWN".
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Message returns the customer-facing text for the status.
func (s Status) Message() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.message
	}
	return ""
}

// Next returns the natural successor. Delivered maps to itself and
// invalid statuses map to Unknown.
func (s Status) Next() Status {
	switch s {
	case Placed:
		return Preparing
	case Preparing:
		return Dispatched
	case Dispatched, Delivered:
		return Delivered
	default:
		return Unknown
	}
}

func (s Status) IsTerminal() bool {
	return s == Delivered
}
