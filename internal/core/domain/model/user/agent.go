package user

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrVehicleNoIsRequired is returned when the vehicle number is blank.
	ErrVehicleNoIsRequired = errs.NewValueIsRequiredError("vehicle number")
	// ErrAgentIsNotConstructed is returned when using a zero-value or nil DeliveryAgent.
	ErrAgentIsNotConstructed = errs.NewValueIsRequiredError("agent")
	// ErrAgentIsNotAvailable is returned by AcceptOrder while the agent is busy.
	ErrAgentIsNotAvailable = errs.NewInvalidStateError("agent", "is not available")
	// ErrOrderIsNotDispatched is returned by Deliver for orders that are not DISPATCHED.
	ErrOrderIsNotDispatched = errs.NewInvalidStateError("order", "must be dispatched before delivery")
)

// DeliveryAgent is a user who carries orders. Identity fields are immutable;
// availability changes through AcceptOrder and Deliver only.
type DeliveryAgent struct {
	identity
	vehicleNo string

	mu        sync.RWMutex
	available bool
}

var _ User = (*DeliveryAgent)(nil)

// NewDeliveryAgent creates an available agent. Name, phone and vehicle number must be non-blank.
func NewDeliveryAgent(name, phone, vehicleNo string) (*DeliveryAgent, error) {
	ident, identErr := newIdentity(name, phone)

	a := &DeliveryAgent{identity: ident, available: true}
	if err := errors.Join(identErr, a.setVehicleNo(vehicleNo)); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the agent was created via NewDeliveryAgent.
func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares agents by ID.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

func (a *DeliveryAgent) VehicleNo() string {
	return a.vehicleNo
}

func (a *DeliveryAgent) IsAvailable() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.available
}

// AcceptOrder marks the agent busy. It fails with ErrAgentIsNotAvailable when the
// agent already carries an order. The order's status is not checked.
func (a *DeliveryAgent) AcceptOrder(o order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.available {
		return ErrAgentIsNotAvailable
	}
	a.available = false
	return nil
}

// Deliver frees the agent. It fails with ErrOrderIsNotDispatched unless o is DISPATCHED.
func (a *DeliveryAgent) Deliver(o order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Dispatched {
		return fmt.Errorf("order #%s is %s: %w", o.ID(), o.Status(), ErrOrderIsNotDispatched)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.available = true
	return nil
}

func (a *DeliveryAgent) Details() string {
	availability := "No"
	if a.IsAvailable() {
		availability = "Yes"
	}
	return fmt.Sprintf("%s, Vehicle: %s, Available: %s", a.details(), a.vehicleNo, availability)
}

func (a *DeliveryAgent) String() string {
	return a.Details()
}

func (a *DeliveryAgent) setVehicleNo(vehicleNo string) error {
	if strings.TrimSpace(vehicleNo) == "" {
		return ErrVehicleNoIsRequired
	}
	a.vehicleNo = vehicleNo
	return nil
}
