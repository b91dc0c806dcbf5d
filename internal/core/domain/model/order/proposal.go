package order

import (
	"slices"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// Customer is what an order needs to know about the person who placed it.
type Customer interface {
	ID() kernel.UUID
	Name() string
	Phone() string
	Address() string
}

// Proposal holds the computed contents of an order before it receives a durable ID.
// It is not validated; NewOrder validates when the proposal is materialized.
type Proposal struct {
	Customer             Customer
	Items                []menu.Item
	DeliveryAddress      string
	TotalPrice           kernel.Money
	EstimatedTimeMinutes int
	OrderTime            time.Time
}

// NewProposal prices items, estimates the delivery time and resolves the delivery
// address (deliveryAddress when non-blank, otherwise the customer's own address).
func NewProposal(customer Customer, items []menu.Item, deliveryAddress string, at time.Time) Proposal {
	if strings.TrimSpace(deliveryAddress) == "" && customer != nil {
		deliveryAddress = customer.Address()
	}

	return Proposal{
		Customer:             customer,
		Items:                slices.Clone(items),
		DeliveryAddress:      deliveryAddress,
		TotalPrice:           TotalOf(items),
		EstimatedTimeMinutes: EstimateMinutes(len(items)),
		OrderTime:            at,
	}
}

// TotalOf sums item prices exactly.
func TotalOf(items []menu.Item) kernel.Money {
	prices := make([]kernel.Money, len(items))
	for i, item := range items {
		prices[i] = item.Price()
	}
	return kernel.SumMoney(prices...)
}

// EstimateMinutes maps an item count to a delivery estimate:
// more than 10 items take 60 minutes, more than 5 take 45, anything else 30.
func EstimateMinutes(itemCount int) int {
	switch {
	case itemCount > 10:
		return 60
	case itemCount > 5:
		return 45
	default:
		return 30
	}
}
