package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// AddressNotProvided is the address of customers created without one.
const AddressNotProvided = "Address not provided"

var (
	// ErrAddressIsRequired is returned when NewCustomer gets a blank address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrCustomerIsNotConstructed is returned when using a zero-value Customer.
	ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError("customer")
)

// Customer is an immutable user with a delivery address.
type Customer struct {
	identity
	address string
}

var (
	_ User           = (*Customer)(nil)
	_ order.Customer = (*Customer)(nil)
)

// NewCustomer creates a customer. Name, phone and address must be non-blank.
func NewCustomer(name, phone, address string) (*Customer, error) {
	ident, identErr := newIdentity(name, phone)

	c := &Customer{identity: ident}
	if err := errors.Join(identErr, c.setAddress(address)); err != nil {
		return nil, err
	}

	return c, nil
}

// NewCustomerWithoutAddress creates a customer whose address is AddressNotProvided.
func NewCustomerWithoutAddress(name, phone string) (*Customer, error) {
	return NewCustomer(name, phone, AddressNotProvided)
}

// Validate ensures the customer was created via NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) Details() string {
	return fmt.Sprintf("%s, Address: %s", c.details(), c.address)
}

func (c *Customer) String() string {
	return c.Details()
}

// PlaceOrder composes an order proposal for items. A blank deliveryAddress falls back to
// the customer's address. The proposal is not validated and has no durable ID; an empty
// item list is rejected only when the proposal is materialized by order.NewOrder.
func (c *Customer) PlaceOrder(items []menu.Item, deliveryAddress string) order.Proposal {
	return order.NewProposal(c, items, deliveryAddress, time.Now())
}

func (c *Customer) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
