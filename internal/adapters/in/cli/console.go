package cli

import (
	"fmt"
	"io"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
)

// console writes formatted text and keeps the first write error.
// Prices are printed behind symbol.
type console struct {
	w      io.Writer
	symbol string
	err    error
}

func newConsole(w io.Writer, symbol string) *console {
	if symbol == "" {
		symbol = kernel.DefaultCurrencySymbol
	}
	return &console{w: w, symbol: symbol}
}

func (c *console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}

func (c *console) println(args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintln(c.w, args...)
}

func (c *console) menu(m *menu.Menu) {
	c.printf("\n=== MENU ===\n")
	for i, item := range m.ViewAllItems() {
		c.printf("%d. %s\n", i+1, item.Format(c.symbol))
	}
	c.println()
}

func (c *console) activeOrders(orders []order.Order) {
	if len(orders) == 0 {
		c.println("No active orders")
		return
	}
	c.printf("\n=== Active Orders ===\n")
	for _, o := range orders {
		c.printf("%s", o.Summary(c.symbol))
	}
}

func (c *console) agents(agents []*user.DeliveryAgent) {
	if len(agents) == 0 {
		c.println("No agents available")
		return
	}
	c.printf("\n=== Delivery Agents ===\n")
	for _, a := range agents {
		c.println(a.Details())
	}
}
