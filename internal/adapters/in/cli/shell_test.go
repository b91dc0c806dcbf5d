package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fooddelivery/internal/adapters/in/cli"
	"fooddelivery/internal/core/application/delivery"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShell(t *testing.T, input string, agents int) (*cli.Shell, *delivery.Manager, *bytes.Buffer) {
	t.Helper()
	return newShellWithCurrency(t, input, agents, "")
}

func newShellWithCurrency(t *testing.T, input string, agents int, currency string) (*cli.Shell, *delivery.Manager, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	manager, err := delivery.NewManager(delivery.WithOutput(out), delivery.WithCurrencySymbol(currency))
	require.NoError(t, err)

	for i := 0; i < agents; i++ {
		a, err := user.NewDeliveryAgent("Mike", "0861234567", "D-123")
		require.NoError(t, err)
		require.NoError(t, manager.AddAgent(context.Background(), a))
	}

	shell := cli.NewShell(strings.NewReader(input), out, menu.NewDefaultMenu(), manager, currency, logging.Discard())
	return shell, manager, out
}

func TestShell_Run(t *testing.T) {
	t.Run("should show the menu and exit", func(t *testing.T) {
		shell, _, out := newShell(t, "1\n5\n", 0)

		require.NoError(t, shell.Run(context.Background()))
		assert.Contains(t, out.String(), "=== MENU ===\n1. Margherita Pizza - €12.99\n")
		assert.Contains(t, out.String(), "7. Water - €1.50\n")
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("should place an order and assign an agent", func(t *testing.T) {
		input := "2\nAnn\n0870000000\n1 Rd\nburger\nsushi\nWATER\ndone\n3\n4\n5\n"
		shell, manager, out := newShell(t, input, 1)

		require.NoError(t, shell.Run(context.Background()))

		active := manager.ViewActiveOrders()
		require.Len(t, active, 1)
		assert.Equal(t, order.Preparing, active[0].Status())
		assert.Equal(t, 2, active[0].ItemCount())
		assert.Equal(t, "11.49", active[0].TotalPrice().String())

		assert.Contains(t, out.String(), "Added: Burger - €9.99")
		assert.Contains(t, out.String(), "Item not found")
		assert.Contains(t, out.String(), "Agent Mike assigned to order #1000")
		assert.Contains(t, out.String(), "=== Active Orders ===")
		assert.Contains(t, out.String(), "Available: No")
	})

	t.Run("should keep the order when no agent is free", func(t *testing.T) {
		shell, manager, out := newShell(t, "2\nAnn\n1\n1 Rd\nWater\ndone\n5\n", 0)

		require.NoError(t, shell.Run(context.Background()))
		assert.Len(t, manager.ViewActiveOrders(), 1)
		assert.Contains(t, out.String(), "No available agents at the moment")
	})

	t.Run("should report empty selections and bad customers", func(t *testing.T) {
		shell, manager, out := newShell(t, "2\nAnn\n1\n1 Rd\ndone\n2\n \n1\n1 Rd\n5\n", 1)

		require.NoError(t, shell.Run(context.Background()))
		assert.Empty(t, manager.ViewActiveOrders())
		assert.Contains(t, out.String(), "No items selected")
		assert.Contains(t, out.String(), "Invalid customer: value is required: name")
	})

	t.Run("should print prices in the configured currency", func(t *testing.T) {
		shell, _, out := newShellWithCurrency(t, "2\nAnn\n1\n1 Rd\nWater\ndone\n3\n5\n", 1, "$")

		require.NoError(t, shell.Run(context.Background()))
		assert.Contains(t, out.String(), "7. Water - $1.50\n")
		assert.Contains(t, out.String(), "Added: Water - $1.50\n")
		assert.Contains(t, out.String(), "Total: $1.50\n")
		assert.NotContains(t, out.String(), "€")
	})

	t.Run("should reject invalid options", func(t *testing.T) {
		shell, _, out := newShell(t, "abc\n9\n5\n", 0)

		require.NoError(t, shell.Run(context.Background()))
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid option"))
	})

	t.Run("should list empty collections", func(t *testing.T) {
		shell, _, out := newShell(t, "3\n4\n5\n", 0)

		require.NoError(t, shell.Run(context.Background()))
		assert.Contains(t, out.String(), "No active orders")
		assert.Contains(t, out.String(), "No agents available")
	})

	t.Run("should stop at end of input", func(t *testing.T) {
		shell, manager, _ := newShell(t, "2\nAnn\n1\n1 Rd\nWater\n", 1)

		require.NoError(t, shell.Run(context.Background()))
		assert.Empty(t, manager.ViewActiveOrders(), "an unfinished order is dropped")
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		shell, _, _ := newShell(t, "1\n1\n5\n", 0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, shell.Run(ctx), context.Canceled)
	})
}
