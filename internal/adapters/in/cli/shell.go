package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"fooddelivery/internal/core/application/delivery"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/user"
)

const doneKeyword = "done"

// Shell choices.
const (
	optionViewMenu = iota + 1
	optionPlaceOrder
	optionActiveOrders
	optionAgents
	optionExit
)

// errEndOfInput stops the session when input runs out mid-dialogue.
var errEndOfInput = errors.New("end of input")

// Shell is the interactive numbered menu over line input.
type Shell struct {
	in      *bufio.Scanner
	out     *console
	menu    *menu.Menu
	manager *delivery.Manager
	logger  *slog.Logger
}

// NewShell builds a shell over in and out. Prices are printed behind currency,
// kernel.DefaultCurrencySymbol when empty.
func NewShell(
	in io.Reader,
	out io.Writer,
	m *menu.Menu,
	manager *delivery.Manager,
	currency string,
	logger *slog.Logger,
) *Shell {
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     newConsole(out, currency),
		menu:    m,
		manager: manager,
		logger:  logger.With("component", "cli_shell"),
	}
}

// Run reads choices until the user exits, the input ends or ctx is cancelled.
// Invalid input is reported and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	s.out.printf("\n=== Interactive Demo ===\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.out.printf("\n1. View Menu\n2. Place Order\n3. View Active Orders\n4. View Agents\n5. Exit\n")
		s.out.printf("Choose option: ")
		if s.out.err != nil {
			return s.out.err
		}

		line, err := s.readLine()
		if errors.Is(err, errEndOfInput) {
			s.logger.InfoContext(ctx, "input closed, leaving shell")
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.out.println("Invalid option")
			continue
		}

		switch choice {
		case optionViewMenu:
			s.out.menu(s.menu)
		case optionPlaceOrder:
			if err := s.placeOrder(ctx); err != nil {
				if errors.Is(err, errEndOfInput) {
					return nil
				}
				return err
			}
		case optionActiveOrders:
			s.out.activeOrders(s.manager.ViewActiveOrders())
		case optionAgents:
			s.out.agents(s.manager.ViewAgents())
		case optionExit:
			s.out.println("Goodbye!")
			return s.out.err
		default:
			s.out.println("Invalid option")
		}
	}
}

func (s *Shell) placeOrder(ctx context.Context) error {
	name, err := s.prompt("Enter customer name: ")
	if err != nil {
		return err
	}
	phone, err := s.prompt("Enter phone: ")
	if err != nil {
		return err
	}
	address, err := s.prompt("Enter address: ")
	if err != nil {
		return err
	}

	customer, err := user.NewCustomer(name, phone, address)
	if err != nil {
		s.out.printf("Invalid customer: %v\n", err)
		return nil
	}

	s.out.menu(s.menu)
	s.out.printf("Enter item names (type '%s' to finish):\n", doneKeyword)

	var items []menu.Item
	for {
		itemName, err := s.readLine()
		if err != nil {
			return err
		}
		itemName = strings.TrimSpace(itemName)
		if strings.EqualFold(itemName, doneKeyword) {
			break
		}

		item, err := s.menu.FindItemByName(itemName)
		if err != nil {
			s.out.println("Item not found")
			continue
		}
		items = append(items, item)
		s.out.printf("Added: %s\n", item.Format(s.out.symbol))
	}

	if len(items) == 0 {
		s.out.println("No items selected")
		return nil
	}

	o, err := s.manager.CreateOrder(ctx, customer, items)
	if err != nil {
		s.out.printf("Could not create order: %v\n", err)
		return nil
	}

	if _, err := s.manager.AssignAgent(ctx, o); err != nil && !errors.Is(err, delivery.ErrNoAvailableAgents) {
		s.out.printf("Could not assign agent: %v\n", err)
	}
	return nil
}

func (s *Shell) prompt(label string) (string, error) {
	s.out.printf("%s", label)
	if s.out.err != nil {
		return "", s.out.err
	}
	return s.readLine()
}

func (s *Shell) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", err
	}
	return "", errEndOfInput
}
