package lifecycle

import (
	"strings"
	"sync"
	"time"

	"concession-stand-api/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultEstimate shown on every new order
const DefaultEstimate = "10-15 minutes"

// Store persists order history and the current order after every
// successful mutation. storage.KVStore satisfies it.
type Store interface {
	SaveOrders(orders []models.Order) error
	SaveCurrentOrder(order *models.Order) error
}

// Notifier receives every order update for live status displays
type Notifier interface {
	OrderUpdated(order models.Order)
}

// Manager owns the order lifecycle: it materializes orders from cart
// snapshots at checkout and advances their status through the
// transition table, either on its timer or through the customer's
// pickup acknowledgment. There is exactly one active lifecycle at a
// time; creating a new order replaces the current one and invalidates
// its pending timer.
type Manager struct {
	mu      sync.Mutex
	orders  []models.Order
	current *models.Order
	store   Store
	notify  Notifier
	sched   *Scheduler
	log     *logrus.Logger
}

// NewManager wires a manager to its persistence, notification and
// timing collaborators. notify may be nil.
func NewManager(store Store, notify Notifier, delays Delays, log *logrus.Logger) *Manager {
	m := &Manager{store: store, notify: notify, log: log}
	m.sched = NewScheduler(delays, func(orderID string) {
		m.AdvanceStatus(orderID)
	})
	return m
}

// Restore loads previously persisted order state at startup. It does
// not re-arm the timer: an order abandoned mid-lifecycle stays where
// it was, like the original demo across page reloads.
func (m *Manager) Restore(orders []models.Order, current *models.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append([]models.Order(nil), orders...)
	m.current = current
}

// CreateOrder materializes an order from a cart snapshot. The caller
// guarantees a non-empty snapshot (an empty cart is rejected at the
// checkout form). The snapshot is frozen: the returned order keeps its
// own copies of the line items. The new order starts confirmed, is
// persisted as the current order at the head of the history, and the
// first automatic transition is scheduled.
func (m *Manager) CreateOrder(items []models.LineItem, seat *models.SeatLocation, method models.DeliveryMethod, payment models.PaymentMethod, tip float64) models.Order {
	snapshot := freezeItems(items)

	var subtotal float64
	for _, item := range snapshot {
		subtotal += item.Subtotal
	}
	tax := subtotal * models.TaxRate

	now := time.Now()
	order := models.Order{
		ID:             "order_" + uuid.NewString(),
		OrderNumber:    newOrderNumber(),
		Items:          snapshot,
		Subtotal:       subtotal,
		Tax:            tax,
		Tip:            tip,
		Total:          subtotal + tax + tip,
		PaymentMethod:  payment,
		DeliveryMethod: method,
		Seat:           copySeat(seat),
		Status:         models.StatusConfirmed,
		EstimatedTime:  DefaultEstimate,
		CreatedAt:      now,
		StatusHistory: []models.StatusChange{
			{To: models.StatusConfirmed, Note: "Order placed", ChangedAt: now},
		},
	}

	m.mu.Lock()
	m.orders = append([]models.Order{order}, m.orders...)
	m.current = &order
	m.persistLocked()
	m.mu.Unlock()

	if m.log != nil {
		m.log.WithFields(logrus.Fields{
			"order":  order.OrderNumber,
			"total":  order.Total,
			"method": order.DeliveryMethod,
		}).Info("order created")
	}
	m.emit(order)
	m.sched.Arm(order.ID, order.Status, order.DeliveryMethod)
	return order
}

// AdvanceStatus applies exactly the next transition from the table for
// the order's current status and delivery method. Calling it at a
// terminal status is a no-op and never moves past the terminal state.
// The updated order is persisted, broadcast and, while it remains the
// current order, re-armed for the following step.
func (m *Manager) AdvanceStatus(orderID string) (models.Order, bool) {
	m.mu.Lock()
	idx := m.indexLocked(orderID)
	if idx < 0 {
		m.mu.Unlock()
		return models.Order{}, false
	}

	order := &m.orders[idx]
	next, ok := NextStatus(order.Status, order.DeliveryMethod)
	if !ok {
		done := *order
		m.mu.Unlock()
		return done, false
	}

	prev := order.Status
	order.Status = next
	order.StatusHistory = append(order.StatusHistory, models.StatusChange{
		From:      prev,
		To:        next,
		ChangedAt: time.Now(),
	})
	if m.current != nil && m.current.ID == order.ID {
		updated := *order
		m.current = &updated
	}
	m.persistLocked()
	updated := *order
	isCurrent := m.current != nil && m.current.ID == order.ID
	m.mu.Unlock()

	if m.log != nil {
		m.log.WithFields(logrus.Fields{
			"order": updated.OrderNumber,
			"from":  prev,
			"to":    next,
		}).Info("order status advanced")
	}
	m.emit(updated)
	if isCurrent {
		m.sched.Arm(updated.ID, updated.Status, updated.DeliveryMethod)
	}
	return updated, true
}

// Acknowledge is the customer's "I'm here" action at the pickup
// window: a ready pickup order converges to completed. It never fires
// from a timer and is a no-op for delivery orders or any other status.
func (m *Manager) Acknowledge(orderID string) (models.Order, bool) {
	m.mu.Lock()
	idx := m.indexLocked(orderID)
	if idx < 0 {
		m.mu.Unlock()
		return models.Order{}, false
	}

	order := &m.orders[idx]
	if order.DeliveryMethod != models.DeliveryPickup || order.Status != models.StatusReady {
		done := *order
		m.mu.Unlock()
		return done, false
	}

	order.Status = models.StatusCompleted
	order.StatusHistory = append(order.StatusHistory, models.StatusChange{
		From:      models.StatusReady,
		To:        models.StatusCompleted,
		Note:      "Customer arrived for pickup",
		ChangedAt: time.Now(),
	})
	if m.current != nil && m.current.ID == order.ID {
		updated := *order
		m.current = &updated
	}
	m.persistLocked()
	updated := *order
	m.mu.Unlock()

	m.emit(updated)
	return updated, true
}

// GetOrder looks an order up in the session history
func (m *Manager) GetOrder(orderID string) (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx := m.indexLocked(orderID); idx >= 0 {
		return m.orders[idx], true
	}
	return models.Order{}, false
}

// Orders returns the session order history, most recent first
func (m *Manager) Orders() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.orders...)
}

// CurrentOrder returns the most recently created or updated order
func (m *Manager) CurrentOrder() (models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.Order{}, false
	}
	return *m.current, true
}

func (m *Manager) indexLocked(orderID string) int {
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func (m *Manager) persistLocked() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveOrders(append([]models.Order(nil), m.orders...)); err != nil && m.log != nil {
		m.log.WithError(err).Error("failed to persist order history")
	}
	if err := m.store.SaveCurrentOrder(m.current); err != nil && m.log != nil {
		m.log.WithError(err).Error("failed to persist current order")
	}
}

func (m *Manager) emit(order models.Order) {
	if m.notify != nil {
		m.notify.OrderUpdated(order)
	}
}

// freezeItems deep-copies a cart snapshot so later cart mutation can
// never reach into a past order.
func freezeItems(items []models.LineItem) []models.LineItem {
	frozen := make([]models.LineItem, len(items))
	for i, item := range items {
		frozen[i] = item
		if item.Modifiers != nil {
			mods := make(map[string][]string, len(item.Modifiers))
			for id, opts := range item.Modifiers {
				mods[id] = append([]string(nil), opts...)
			}
			frozen[i].Modifiers = mods
		}
	}
	return frozen
}

func copySeat(seat *models.SeatLocation) *models.SeatLocation {
	if seat == nil {
		return nil
	}
	s := *seat
	return &s
}

// newOrderNumber produces the short human-readable code printed on the
// pickup screen. It is cosmetic, not a uniqueness guarantee, but it is
// stable once assigned.
func newOrderNumber() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return hex[:6]
}
