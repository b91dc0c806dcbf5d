package order

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// TimeLayout is the dd/MM/yyyy HH:mm layout used for order timestamps.
const TimeLayout = "02/01/2006 15:04"

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("order")
	// ErrCustomerIsRequired is returned when a proposal carries no customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
	// ErrItemsAreRequired is returned for proposals without items.
	ErrItemsAreRequired = errs.NewValueIsInvalidErrorWithCause(
		"items",
		errors.New("order must contain at least one item"),
	)
)

// ID is the durable, manager-assigned order number.
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Order is an immutable snapshot of a placed purchase.
//
// Order follows these invariants:
//   - ID is positive
//   - Customer is present
//   - Items are non-empty and each was built by menu.NewItem
//   - TotalPrice and EstimatedTimeMinutes are positive
//
// TotalPrice is fixed at creation and never recomputed. WithStatus and
// WithEstimatedTime return new values; the receiver is never changed.
type Order struct {
	id                   ID
	customer             Customer
	items                []menu.Item
	deliveryAddress      string
	totalPrice           kernel.Money
	status               Status
	estimatedTimeMinutes int
	orderTime            time.Time

	guard guard.ConstructorGuard
}

// NewOrder materializes a proposal under a durable id with status Placed.
// A zero OrderTime is replaced with the current time and a blank delivery
// address falls back to the customer's address.
//
// Example:
//
//	proposal := order.NewProposal(customer, items, "", time.Now())
//	o, err := order.NewOrder(1000, proposal)
//	if err != nil {
//	    // validation failed, e.g. order.ErrItemsAreRequired
//	}
func NewOrder(id ID, proposal Proposal) (Order, error) {
	o := Order{
		status: Placed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(proposal.Customer),
		o.setItems(proposal.Items),
		o.setTotalPrice(proposal.TotalPrice),
		o.setEstimatedTime(proposal.EstimatedTimeMinutes),
	); err != nil {
		return Order{}, err
	}

	o.deliveryAddress = proposal.DeliveryAddress
	if strings.TrimSpace(o.deliveryAddress) == "" {
		o.deliveryAddress = o.customer.Address()
	}

	o.orderTime = proposal.OrderTime
	if o.orderTime.IsZero() {
		o.orderTime = time.Now()
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by ID.
func (o Order) IsEqual(other Order) bool {
	return o.id == other.id
}

func (o Order) ID() ID {
	return o.id
}

func (o Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the ordered items.
func (o Order) Items() []menu.Item {
	return slices.Clone(o.items)
}

func (o Order) ItemCount() int {
	return len(o.items)
}

// DeliveryAddress returns the address resolved when the order was proposed.
func (o Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

func (o Order) Status() Status {
	return o.status
}

func (o Order) EstimatedTimeMinutes() int {
	return o.estimatedTimeMinutes
}

func (o Order) OrderTime() time.Time {
	return o.orderTime
}

// FormattedOrderTime renders the order time as dd/MM/yyyy HH:mm.
func (o Order) FormattedOrderTime() string {
	return o.orderTime.Format(TimeLayout)
}

// WithStatus returns a copy of the order carrying status.
// Status legality is not checked here.
func (o Order) WithStatus(status Status) Order {
	updated := o
	updated.items = slices.Clone(o.items)
	updated.status = status
	return updated
}

// WithEstimatedTime returns a copy of the order with a new ETA.
func (o Order) WithEstimatedTime(minutes int) (Order, error) {
	updated := o
	updated.items = slices.Clone(o.items)
	if err := updated.setEstimatedTime(minutes); err != nil {
		return Order{}, err
	}
	return updated, nil
}

// String renders the order summary priced in kernel.DefaultCurrencySymbol.
func (o Order) String() string {
	return o.Summary(kernel.DefaultCurrencySymbol)
}

// Summary renders a multi-line order summary with prices behind symbol.
func (o Order) Summary(symbol string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Order #%s ===\n", o.id)
	if o.customer != nil {
		fmt.Fprintf(&b, "Customer: %s\n", o.customer.Name())
	}
	fmt.Fprintf(&b, "Address: %s\n", o.deliveryAddress)
	fmt.Fprintf(&b, "Status: %s\n", o.status)
	fmt.Fprintf(&b, "Order Time: %s\n", o.FormattedOrderTime())
	fmt.Fprintf(&b, "Estimated Delivery: %d minutes\n", o.estimatedTimeMinutes)
	b.WriteString("Items:\n")
	for _, item := range o.items {
		fmt.Fprintf(&b, "  - %s\n", item.Format(symbol))
	}
	fmt.Fprintf(&b, "Total: %s\n", o.totalPrice.Format(symbol))

	return b.String()
}

func (o *Order) setID(id ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer == nil {
		return ErrCustomerIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []menu.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setTotalPrice(total kernel.Money) error {
	if !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total price", fmt.Errorf("%s is not greater than 0", total))
	}
	o.totalPrice = total
	return nil
}

func (o *Order) setEstimatedTime(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated time", fmt.Errorf("%d is not greater than 0", minutes))
	}
	o.estimatedTimeMinutes = minutes
	return nil
}
