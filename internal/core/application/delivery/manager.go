package delivery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/logging"
)

// DefaultFirstOrderID is the number given to the first order of a new Manager.
const DefaultFirstOrderID order.ID = 1000

// ErrNoAvailableAgents is returned by AssignAgent when every registered agent is busy.
var ErrNoAvailableAgents = fmt.Errorf("no available agents at the moment: %w", services.ErrAgentNotFound)

// Assignment is the outcome of a successful AssignAgent call.
type Assignment struct {
	Agent *user.DeliveryAgent
	Order order.Order
}

// Manager orchestrates order creation, status transitions, agent assignment,
// completion and billing. Reads return copies; callers never share its slices.
type Manager struct {
	mu sync.Mutex

	activeOrders    []order.Order
	completedOrders []order.Order
	agents          []*user.DeliveryAgent
	nextOrderID     order.ID

	dispatcher services.AgentDispatcher
	out        io.Writer
	currency   string
	logger     *slog.Logger
}

type Option func(*Manager)

// WithLogger sets the operational logger. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithOutput sets where status notices, reports and bills are written. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(m *Manager) {
		if w != nil {
			m.out = w
		}
	}
}

func WithFirstOrderID(id order.ID) Option {
	return func(m *Manager) {
		m.nextOrderID = id
	}
}

// WithCurrencySymbol sets the symbol printed on bills. Empty is ignored.
func WithCurrencySymbol(symbol string) Option {
	return func(m *Manager) {
		if symbol != "" {
			m.currency = symbol
		}
	}
}

// NewManager creates an empty Manager. Without options it numbers orders from
// DefaultFirstOrderID, prints to io.Discard and logs nowhere.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		nextOrderID: DefaultFirstOrderID,
		dispatcher:  services.NewAgentDispatcher(),
		out:         io.Discard,
		currency:    kernel.DefaultCurrencySymbol,
		logger:      logging.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.nextOrderID < 1 {
		return nil, errs.NewValueIsOutOfRangeError("first order id", m.nextOrderID, order.ID(1), order.ID(math.MaxInt))
	}

	m.logger = m.logger.With("component", "delivery_manager")
	return m, nil
}

// AddAgent registers an agent. Agents are offered orders in registration order.
func (m *Manager) AddAgent(ctx context.Context, agent *user.DeliveryAgent) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.agents = append(m.agents, agent)
	m.logger.InfoContext(ctx, "agent registered", "agent", agent.Name(), "vehicle", agent.VehicleNo())
	return nil
}

// CreateOrder materializes the customer's proposal for items with the next order
// number and stores it as active. The counter advances only when the order is valid.
func (m *Manager) CreateOrder(ctx context.Context, customer *user.Customer, items []menu.Item) (order.Order, error) {
	if err := customer.Validate(); err != nil {
		return order.Order{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	proposal := customer.PlaceOrder(items, customer.Address())
	o, err := order.NewOrder(m.nextOrderID, proposal)
	if err != nil {
		return order.Order{}, err
	}

	m.nextOrderID++
	m.activeOrders = append(m.activeOrders, o)

	m.logger.InfoContext(ctx, "order created",
		"order_id", o.ID(),
		"customer", customer.Name(),
		"items", o.ItemCount(),
		"total", o.TotalPrice().String(),
	)
	m.report(ctx, "Order created:\n%s", o.Summary(m.currency))

	return o, nil
}

// UpdateStatus returns o with status and stores it in place of the active order
// with the same ID. Transitions are not checked. An order that is not active is
// returned updated but not stored.
func (m *Manager) UpdateStatus(ctx context.Context, o order.Order, status order.Status) (order.Order, error) {
	if err := o.Validate(); err != nil {
		return order.Order{}, err
	}
	if err := status.Validate(); err != nil {
		return order.Order{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.updateStatus(ctx, o, status), nil
}

// AdvanceStatus moves o to the next status of the natural sequence.
// A delivered order stays delivered.
func (m *Manager) AdvanceStatus(ctx context.Context, o order.Order) (order.Order, error) {
	return m.UpdateStatus(ctx, o, o.Status().Next())
}

// AssignAgent gives o to the first available agent and moves it to PREPARING.
// When every agent is busy it returns ErrNoAvailableAgents and changes nothing.
func (m *Manager) AssignAgent(ctx context.Context, o order.Order) (Assignment, error) {
	if err := o.Validate(); err != nil {
		return Assignment{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	agent, err := m.dispatcher.Dispatch(o, m.agents)
	if errors.Is(err, services.ErrAgentNotFound) {
		m.logger.WarnContext(ctx, "no available agents at the moment", "order_id", o.ID())
		m.report(ctx, "No available agents at the moment\n")
		return Assignment{}, ErrNoAvailableAgents
	}
	if err != nil {
		return Assignment{}, err
	}

	updated := m.updateStatus(ctx, o, order.Preparing)

	m.logger.InfoContext(ctx, "agent assigned", "order_id", o.ID(), "agent", agent.Name())
	m.report(ctx, "Agent %s assigned to order #%s\n", agent.Name(), o.ID())

	return Assignment{Agent: agent, Order: updated}, nil
}

// CompleteDelivery marks the order delivered by agent, archives it and writes its bill.
//
// The active order with o's ID is used; the status of o itself is ignored. An order
// that is not active returns an ObjectNotFoundError, and one that is not DISPATCHED an
// InvalidStateError. In both cases nothing changes.
// On success the order leaves the active list, its DELIVERED copy is appended to the
// completed list and the agent becomes available again.
func (m *Manager) CompleteDelivery(ctx context.Context, o order.Order, agent *user.DeliveryAgent) (order.Order, error) {
	if err := o.Validate(); err != nil {
		return order.Order{}, err
	}
	if err := agent.Validate(); err != nil {
		return order.Order{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOfActive(o.ID())
	if idx < 0 {
		return order.Order{}, errs.NewObjectNotFoundError("active order", o.ID())
	}
	current := m.activeOrders[idx]

	if err := agent.Deliver(current); err != nil {
		return order.Order{}, err
	}

	delivered := current.WithStatus(order.Delivered)
	m.activeOrders = slices.Delete(m.activeOrders, idx, idx+1)
	m.completedOrders = append(m.completedOrders, delivered)

	m.logger.InfoContext(ctx, "delivery completed", "order_id", delivered.ID(), "agent", agent.Name())
	m.notifyStatus(ctx, delivered)
	m.sendBill(ctx, delivered)

	return delivered, nil
}

// SendBill writes the bill of o to the output.
func (m *Manager) SendBill(ctx context.Context, o order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sendBill(ctx, o)
	return nil
}

// ActiveOrder returns the active order with id.
func (m *Manager) ActiveOrder(id order.ID) (order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOfActive(id)
	if idx < 0 {
		return order.Order{}, errs.NewObjectNotFoundError("order", id)
	}
	return m.activeOrders[idx], nil
}

func (m *Manager) ViewActiveOrders() []order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m.activeOrders)
}

func (m *Manager) ViewCompletedOrders() []order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m.completedOrders)
}

// ViewAgents returns the registered agents. The slice is a copy; the agents are shared.
func (m *Manager) ViewAgents() []*user.DeliveryAgent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m.agents)
}

// NextOrderID returns the number the next created order will get.
func (m *Manager) NextOrderID() order.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextOrderID
}

// FilterOrders returns the active orders satisfying pred, in insertion order.
// pred runs without the Manager's lock held, so it may call back into the Manager.
func (m *Manager) FilterOrders(pred func(order.Order) bool) []order.Order {
	active := m.ViewActiveOrders()
	if pred == nil {
		return active
	}

	filtered := make([]order.Order, 0, len(active))
	for _, o := range active {
		if pred(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func (m *Manager) OrdersByStatus(status order.Status) []order.Order {
	return m.FilterOrders(func(o order.Order) bool {
		return o.Status() == status
	})
}

// DisplayOrdersByStatus writes the summaries of the active orders with status.
func (m *Manager) DisplayOrdersByStatus(ctx context.Context, status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	orders := m.OrdersByStatus(status)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.report(ctx, "\n=== Orders with status: %s ===\n", status)
	for _, o := range orders {
		m.report(ctx, "%s", o.Summary(m.currency))
	}
	return nil
}

func (m *Manager) updateStatus(ctx context.Context, o order.Order, status order.Status) order.Order {
	updated := o.WithStatus(status)

	if idx := m.indexOfActive(o.ID()); idx >= 0 {
		m.activeOrders[idx] = updated
		m.logger.InfoContext(ctx, "order status updated", "order_id", o.ID(), "status", status.String())
	} else {
		m.logger.WarnContext(ctx, "order is not active, status change not stored",
			"order_id", o.ID(),
			"status", status.String(),
		)
	}

	m.notifyStatus(ctx, updated)
	return updated
}

func (m *Manager) notifyStatus(ctx context.Context, o order.Order) {
	m.report(ctx, "Order #%s status updated to: %s\n%s\n", o.ID(), o.Status(), o.Status().Message())
}

func (m *Manager) sendBill(ctx context.Context, o order.Order) {
	m.report(ctx, "\n%s", RenderBill(o, m.currency))
	m.logger.DebugContext(ctx, "bill sent", "order_id", o.ID())
}

// report writes to the output. Write failures are logged, never returned: the
// state change they accompany has already happened.
func (m *Manager) report(ctx context.Context, format string, args ...any) {
	if _, err := fmt.Fprintf(m.out, format, args...); err != nil {
		m.logger.WarnContext(ctx, "failed to write report", "error", err)
	}
}

func (m *Manager) indexOfActive(id order.ID) int {
	return slices.IndexFunc(m.activeOrders, func(o order.Order) bool {
		return o.ID() == id
	})
}

func snapshot[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
