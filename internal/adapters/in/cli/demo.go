package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"fooddelivery/internal/core/application/delivery"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

// ManagerFactory builds a fresh, empty Manager.
type ManagerFactory func() (*delivery.Manager, error)

// Demo runs the scripted walk-through of the tracker.
type Demo struct {
	out        *console
	newManager ManagerFactory
	currency   string
	logger     *slog.Logger
}

func NewDemo(out io.Writer, newManager ManagerFactory, currency string, logger *slog.Logger) *Demo {
	if currency == "" {
		currency = kernel.DefaultCurrencySymbol
	}
	return &Demo{
		out:        newConsole(out, currency),
		newManager: newManager,
		currency:   currency,
		logger:     logger.With("component", "cli_demo"),
	}
}

// Run executes both demo sections, each with its own Manager. Expected domain
// errors are printed as part of the script; anything else aborts the run.
func (d *Demo) Run(ctx context.Context) error {
	d.out.printf("=== Smart Food Delivery Tracker ===\n\n")

	if err := d.basics(ctx); err != nil {
		return fmt.Errorf("basic walk-through: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.orderFlow(ctx); err != nil {
		return fmt.Errorf("order flow: %w", err)
	}

	d.logger.InfoContext(ctx, "demo finished")
	return d.out.err
}

func (d *Demo) basics(ctx context.Context) error {
	d.out.printf("\n--- BASIC FEATURES ---\n\n")

	manager, err := d.newManager()
	if err != nil {
		return err
	}
	catalog := menu.NewDefaultMenu()
	d.out.menu(catalog)

	d.out.println("1. Customers:")
	john, err := user.NewCustomer("John Doe", "0871234567", "123 Main St, Dublin")
	if err != nil {
		return err
	}
	jane, err := user.NewCustomerWithoutAddress("Jane Smith", "0879876543")
	if err != nil {
		return err
	}
	d.out.println(john.Details())
	d.out.println(jane.Details())

	d.out.println("\n2. Delivery agents:")
	mike, err := user.NewDeliveryAgent("Mike Driver", "0861234567", "D-123-XY")
	if err != nil {
		return err
	}
	sarah, err := user.NewDeliveryAgent("Sarah Rider", "0869876543", "D-456-ZW")
	if err != nil {
		return err
	}
	for _, a := range []*user.DeliveryAgent{mike, sarah} {
		if err := manager.AddAgent(ctx, a); err != nil {
			return err
		}
		d.out.println(a.Details())
	}

	d.out.println("\n3. Users through the common interface:")
	for _, u := range []user.User{john, mike} {
		d.out.println(u.Details())
	}

	d.out.println("\n4. Order statuses:")
	for _, s := range order.AllStatuses() {
		d.out.printf("%s: %s\n", s, s.Message())
	}

	d.out.println("\n5. Items compare by value:")
	pizza, err := newItem("Pizza", "12.99")
	if err != nil {
		return err
	}
	samePizza, err := newItem("Pizza", "12.99")
	if err != nil {
		return err
	}
	d.out.printf("Item: %s\n", pizza.Format(d.currency))
	d.out.printf("Equal to another %s: %t\n", samePizza.Format(d.currency), pizza.IsEqual(samePizza))

	d.out.println("\n6. Creating an order from menu items:")
	var items []menu.Item
	for _, name := range []string{"Margherita Pizza", "Coca Cola"} {
		item, err := catalog.FindItemByName(name)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	o, err := manager.CreateOrder(ctx, john, items)
	if err != nil {
		return err
	}
	d.out.printf("Created order #%s\n", o.ID())

	d.out.println("\n7. Adding several items at once:")
	extras := []struct{ name, price string }{
		{"French Fries", "4.99"},
		{"Ice Cream", "5.99"},
		{"Coffee", "3.50"},
	}
	extraItems := make([]menu.Item, 0, len(extras))
	for _, e := range extras {
		item, err := newItem(e.name, e.price)
		if err != nil {
			return err
		}
		extraItems = append(extraItems, item)
	}
	extended := menu.NewDefaultMenu()
	if err := extended.AddItems(extraItems...); err != nil {
		return err
	}
	d.out.printf("Added %d items, menu now has %d\n", len(extraItems), extended.Len())

	d.out.println("\n8. Status changes:")
	if o, err = manager.AdvanceStatus(ctx, o); err != nil {
		return err
	}
	if o, err = manager.UpdateStatus(ctx, o, order.Preparing); err != nil {
		return err
	}

	d.out.println("\n9. Validation errors:")
	if _, err := menu.NewItem("", kernel.MoneyFromCents(-500)); err != nil {
		d.out.printf("Caught error: %s\n", oneLine(err))
	}
	if _, err := manager.CreateOrder(ctx, john, nil); err != nil {
		d.out.printf("Caught error: %s\n", oneLine(err))
	}

	d.out.println("\n10. Order details:")
	names := make([]string, 0, o.ItemCount())
	for _, item := range o.Items() {
		names = append(names, item.Name())
	}
	d.out.printf("Customer: %s\n", strings.ToUpper(o.Customer().Name()))
	d.out.printf("Order Summary: %d items, Total: %s\n", o.ItemCount(), o.TotalPrice().Format(d.currency))
	d.out.printf("Items: [%s]\n", strings.Join(names, ", "))
	d.out.printf("Order time: %s\n", o.FormattedOrderTime())
	d.out.printf("Estimated delivery: %d minutes\n", o.EstimatedTimeMinutes())

	return d.out.err
}

func (d *Demo) orderFlow(ctx context.Context) error {
	d.out.printf("\n\n--- ORDER FLOW ---\n\n")

	manager, err := d.newManager()
	if err != nil {
		return err
	}
	catalog := menu.NewDefaultMenu()

	alice, err := user.NewCustomer("Alice Brown", "0851234567", "456 Oak Ave, Cork")
	if err != nil {
		return err
	}
	tom, err := user.NewDeliveryAgent("Tom Wilson", "0862345678", "D-789-AB")
	if err != nil {
		return err
	}
	if err := manager.AddAgent(ctx, tom); err != nil {
		return err
	}

	pizza, err := newItem("Pizza", "12.99")
	if err != nil {
		return err
	}
	salad, err := newItem("Salad", "8.99")
	if err != nil {
		return err
	}
	o, err := manager.CreateOrder(ctx, alice, []menu.Item{pizza, salad})
	if err != nil {
		return err
	}

	d.out.println("1. Orders copy their items:")
	burger, err := catalog.FindItemByName("Burger")
	if err != nil {
		return err
	}
	basket := []menu.Item{burger}
	second, err := manager.CreateOrder(ctx, alice, basket)
	if err != nil {
		return err
	}
	extra, err := newItem("Extra item", "5.00")
	if err != nil {
		return err
	}
	basket = append(basket, extra)
	d.out.printf("Caller list has %d items, order #%s still has %d\n", len(basket), second.ID(), second.ItemCount())

	d.out.println("\n2. Menu queries:")
	over10 := catalog.FindItemsByPriceRange(kernel.MoneyFromCents(1001), kernel.MoneyFromCents(100000))
	under15 := catalog.FindItemsByPriceRange(kernel.MoneyFromCents(1), kernel.MoneyFromCents(1499))
	d.out.printf("Items over %s: %d\n", kernel.MoneyFromCents(1000).Format(d.currency), len(over10))
	d.out.printf("Items under %s: %d\n", kernel.MoneyFromCents(1500).Format(d.currency), len(under15))
	for _, item := range catalog.ViewAllItems()[:3] {
		d.out.println(item.Name())
	}

	d.out.println("\n3. Snapshots are copies:")
	active := manager.ViewActiveOrders()
	d.out.printf("Active orders: %d\n", len(active))
	clear(active)
	d.out.printf("After clearing the copy, manager still has: %d\n", len(manager.ViewActiveOrders()))

	d.out.println("\n4. Complete flow:")
	assignment, err := manager.AssignAgent(ctx, o)
	if err != nil {
		return err
	}
	if _, err := manager.UpdateStatus(ctx, o, order.Dispatched); err != nil {
		return err
	}
	if _, err := manager.CompleteDelivery(ctx, o, assignment.Agent); err != nil {
		return err
	}

	if err := manager.DisplayOrdersByStatus(ctx, order.Placed); err != nil {
		return err
	}

	d.out.printf("\nActive orders: %d\n", len(manager.ViewActiveOrders()))
	d.out.printf("Completed orders: %d\n", len(manager.ViewCompletedOrders()))

	return d.out.err
}

func newItem(name, price string) (menu.Item, error) {
	amount, err := kernel.MoneyFromString(price)
	if err != nil {
		return menu.Item{}, err
	}
	return menu.NewItem(name, amount)
}

// oneLine flattens joined errors for display.
func oneLine(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
