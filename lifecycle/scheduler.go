package lifecycle

import (
	"sync"
	"time"

	"concession-stand-api/models"
)

// Delays configures how long each automatic transition waits, keyed by
// the status the order is leaving.
type Delays struct {
	Confirmed      time.Duration
	Preparing      time.Duration
	Ready          time.Duration
	OutForDelivery time.Duration
}

// DemoDelays are the presentation timings of the demo; they are not a
// contract the lifecycle depends on.
func DemoDelays() Delays {
	return Delays{
		Confirmed:      3 * time.Second,
		Preparing:      5 * time.Second,
		Ready:          3 * time.Second,
		OutForDelivery: 4 * time.Second,
	}
}

func (d Delays) after(status models.OrderStatus) time.Duration {
	switch status {
	case models.StatusConfirmed:
		return d.Confirmed
	case models.StatusPreparing:
		return d.Preparing
	case models.StatusReady:
		return d.Ready
	case models.StatusOutForDelivery:
		return d.OutForDelivery
	default:
		return 0
	}
}

// Scheduler drives the timer side of the lifecycle. At most one timer
// is outstanding at any moment: arming cancels the previous timer, and
// a callback that fires for an order the scheduler no longer tracks is
// a no-op. That keeps advances serialized and in table order even when
// a new checkout replaces the current order mid-countdown.
type Scheduler struct {
	mu      sync.Mutex
	timer   *time.Timer
	orderID string
	delays  Delays
	advance func(orderID string)
}

// NewScheduler returns a scheduler that calls advance when a delay
// elapses for the armed order.
func NewScheduler(delays Delays, advance func(orderID string)) *Scheduler {
	return &Scheduler{delays: delays, advance: advance}
}

// Arm schedules the next automatic transition for the given order,
// replacing whatever was pending before. Terminal states arm nothing
// but still cancel the previous timer.
func (s *Scheduler) Arm(orderID string, status models.OrderStatus, method models.DeliveryMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.orderID = orderID

	if _, ok := NextStatus(status, method); !ok {
		return
	}
	s.timer = time.AfterFunc(s.delays.after(status), func() {
		s.fire(orderID)
	})
}

// Cancel drops any pending timer and forgets the tracked order
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.orderID = ""
}

func (s *Scheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) fire(orderID string) {
	s.mu.Lock()
	if s.orderID != orderID {
		// Stale timer from a replaced order.
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()
	s.advance(orderID)
}
