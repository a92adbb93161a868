package cart

import (
	"sync"

	"concession-stand-api/models"

	"github.com/google/uuid"
)

// Saver is the persistence port the ledger writes through after every
// mutation. storage.KVStore satisfies it.
type Saver interface {
	SaveCart(items []models.LineItem) error
	SaveSeat(seat *models.SeatLocation) error
	SaveDeliveryMethod(method models.DeliveryMethod) error
}

// Ledger owns the set of line items a shopper intends to purchase,
// plus the selected seat and delivery method. It exclusively owns its
// LineItems: callers only ever see copies. Derived totals are
// recomputed from the live items on every read, never cached.
type Ledger struct {
	mu     sync.Mutex
	items  []models.LineItem
	seat   *models.SeatLocation
	method models.DeliveryMethod
	save   Saver
}

// NewLedger returns an empty ledger writing through the given saver
func NewLedger(save Saver) *Ledger {
	return &Ledger{
		method: models.DeliveryPickup,
		save:   save,
	}
}

// Restore replaces the ledger's state with previously persisted data,
// used at startup to resume a session.
func (l *Ledger) Restore(items []models.LineItem, seat *models.SeatLocation, method models.DeliveryMethod) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]models.LineItem(nil), items...)
	l.seat = seat
	if method != "" {
		l.method = method
	}
}

// AddItem appends a new line item for the given menu item. Re-adding
// an identical item always creates a distinct line, never merges
// quantities. The caller is responsible for quantity >= 1 and for
// required-modifier validation; nil selections mean no options.
func (l *Ledger) AddItem(item models.MenuItem, quantity int, selections map[string][]string, instructions string) models.LineItem {
	if selections == nil {
		selections = map[string][]string{}
	}
	line := models.LineItem{
		ID:                  item.ID + "_" + uuid.NewString(),
		MenuItem:            item,
		Quantity:            quantity,
		Modifiers:           selections,
		SpecialInstructions: instructions,
		Subtotal:            Subtotal(item, quantity, selections),
	}

	l.mu.Lock()
	l.items = append(l.items, line)
	l.persistCartLocked()
	l.mu.Unlock()
	return line
}

// UpdateQuantity changes a line's quantity and recomputes its subtotal
// from the modifier selection fixed at add time. A quantity of zero or
// less removes the line; an unknown id is a no-op, so retries are safe.
func (l *Ledger) UpdateQuantity(lineItemID string, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(lineItemID)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == lineItemID {
			l.items[i].Quantity = quantity
			l.items[i].Subtotal = Subtotal(l.items[i].MenuItem, quantity, l.items[i].Modifiers)
			l.persistCartLocked()
			return
		}
	}
}

// RemoveItem deletes a line item. Removing an absent id is a no-op.
func (l *Ledger) RemoveItem(lineItemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == lineItemID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.persistCartLocked()
			return
		}
	}
}

// Clear empties the cart and the selected seat. The delivery method is
// left as-is.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.seat = nil
	l.persistCartLocked()
	l.persistSeatLocked()
}

// SetSeat records the shopper's seat; nil clears it. Seat range
// validation happens at the entry form, not here.
func (l *Ledger) SetSeat(seat *models.SeatLocation) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seat = seat
	l.persistSeatLocked()
}

// SetDeliveryMethod switches between pickup and seat delivery
func (l *Ledger) SetDeliveryMethod(method models.DeliveryMethod) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.method = method
	if l.save != nil {
		l.save.SaveDeliveryMethod(method)
	}
}

// Items returns a copy of the line items in insertion order
func (l *Ledger) Items() []models.LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.LineItem(nil), l.items...)
}

// Seat returns the currently selected seat, or nil
func (l *Ledger) Seat() *models.SeatLocation {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seat == nil {
		return nil
	}
	seat := *l.seat
	return &seat
}

// DeliveryMethod returns the current delivery method
func (l *Ledger) DeliveryMethod() models.DeliveryMethod {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.method
}

// CartTotal sums the line subtotals of the current items
func (l *Ledger) CartTotal() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var total float64
	for _, item := range l.items {
		total += item.Subtotal
	}
	return total
}

// ItemCount sums the quantities of the current items
func (l *Ledger) ItemCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var count int
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

func (l *Ledger) persistCartLocked() {
	if l.save != nil {
		l.save.SaveCart(append([]models.LineItem(nil), l.items...))
	}
}

func (l *Ledger) persistSeatLocked() {
	if l.save != nil {
		l.save.SaveSeat(l.seat)
	}
}
