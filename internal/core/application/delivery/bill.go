package delivery

import (
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/order"
)

const (
	billHeader    = "========== BILL =========="
	billSeparator = "-------------------------"
	billFooter    = "=========================="
)

// RenderBill formats the bill of o. Prices are printed with two decimals after symbol.
func RenderBill(o order.Order, symbol string) string {
	var b strings.Builder

	b.WriteString(billHeader + "\n")
	fmt.Fprintf(&b, "Order #%s\n", o.ID())
	if c := o.Customer(); c != nil {
		fmt.Fprintf(&b, "Customer: %s\n", c.Name())
		fmt.Fprintf(&b, "Phone: %s\n", c.Phone())
	}
	fmt.Fprintf(&b, "Delivery Address: %s\n", o.DeliveryAddress())
	fmt.Fprintf(&b, "Order Time: %s\n", o.FormattedOrderTime())

	b.WriteString("\nItems:\n")
	for _, item := range o.Items() {
		fmt.Fprintf(&b, "  %-20s %s\n", item.Name(), item.Price().Format(symbol))
	}

	b.WriteString(billSeparator + "\n")
	fmt.Fprintf(&b, "Total: %s\n", o.TotalPrice().Format(symbol))
	b.WriteString(billFooter + "\n")

	return b.String()
}
